package machine

import "github.com/luckyComet55/whitebox-sim/internal/fsm"

const (
	ElevatorIdle       fsm.State = "Idle"
	ElevatorMovingUp   fsm.State = "Moving Up"
	ElevatorMovingDown fsm.State = "Moving Down"

	EventMoveUp   fsm.Event = "move_up"
	EventMoveDown fsm.Event = "move_down"
	EventStop     fsm.Event = "stop"
)

type Elevator struct {
	*machine
}

func NewElevator() *Elevator {
	f := fsm.NewFSM(ElevatorIdle).
		Transition(ElevatorIdle, EventMoveUp, ElevatorMovingUp).
		Transition(ElevatorIdle, EventMoveDown, ElevatorMovingDown).
		Transition(ElevatorMovingUp, EventStop, ElevatorIdle).
		Transition(ElevatorMovingDown, EventStop, ElevatorIdle)

	m := newMachine("elevator", f, invalidOperation).
		message(EventMoveUp, "Elevator moving up").
		message(EventMoveDown, "Elevator moving down").
		message(EventStop, "Elevator stopped")

	return &Elevator{m}
}

func NewElevatorAt(state fsm.State) (*Elevator, error) {
	e := NewElevator()
	if err := e.restore(state); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Elevator) MoveUp() string {
	return e.fire(EventMoveUp)
}

func (e *Elevator) MoveDown() string {
	return e.fire(EventMoveDown)
}

func (e *Elevator) Stop() string {
	return e.fire(EventStop)
}
