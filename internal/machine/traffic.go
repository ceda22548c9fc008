package machine

import "github.com/luckyComet55/whitebox-sim/internal/fsm"

const (
	LightRed    fsm.State = "Red"
	LightGreen  fsm.State = "Green"
	LightYellow fsm.State = "Yellow"

	EventChangeState fsm.Event = "change_state"
)

// TrafficLight cycles Red -> Green -> Yellow -> Red with no guard.
type TrafficLight struct {
	*machine
}

func NewTrafficLight() *TrafficLight {
	f := fsm.NewFSM(LightRed).
		Transition(LightRed, EventChangeState, LightGreen).
		Transition(LightGreen, EventChangeState, LightYellow).
		Transition(LightYellow, EventChangeState, LightRed)

	m := newMachine("traffic", f, invalidOperation).
		message(EventChangeState, "")

	return &TrafficLight{m}
}

func NewTrafficLightAt(state fsm.State) (*TrafficLight, error) {
	tl := NewTrafficLight()
	if err := tl.restore(state); err != nil {
		return nil, err
	}
	return tl, nil
}

func (tl *TrafficLight) ChangeState() {
	tl.fire(EventChangeState)
}

func (tl *TrafficLight) CurrentState() string {
	return tl.State().String()
}

// Apply reports the new light after change_state, since the operation has
// no message of its own.
func (tl *TrafficLight) Apply(op string) (string, error) {
	if _, err := tl.machine.Apply(op); err != nil {
		return "", err
	}
	return tl.CurrentState(), nil
}
