// Package machine holds the small object style state machines: vending
// machine, traffic light, login session, document editor and elevator.
// Each one is a thin wrapper over an fsm.FSM with a fixed transition table
// and a status message per operation.
package machine

import (
	"errors"
	"fmt"

	"github.com/luckyComet55/whitebox-sim/internal/fsm"
)

const (
	invalidOperation       = "Invalid operation in current state"
	invalidOperationPeriod = "Invalid operation in current state."
)

var ErrUnknownOperation = errors.New("unknown operation")

// Simulator is the uniform surface the command handler drives.
type Simulator interface {
	Name() string
	State() fsm.State
	Operations() []string
	Apply(op string) (string, error)
	OnTransition(cb fsm.TransitionCallback)
}

type machine struct {
	name     string
	fsm      *fsm.FSM
	invalid  string
	ops      []string
	messages map[fsm.Event]string
}

func newMachine(name string, f *fsm.FSM, invalid string) *machine {
	return &machine{
		name:     name,
		fsm:      f,
		invalid:  invalid,
		messages: make(map[fsm.Event]string),
	}
}

func (m *machine) message(event fsm.Event, msg string) *machine {
	m.ops = append(m.ops, string(event))
	m.messages[event] = msg
	return m
}

// fire returns the operation message, or the invalid operation message when
// the current state does not allow the event.
func (m *machine) fire(event fsm.Event) string {
	if err := m.fsm.Trigger(event); err != nil {
		return m.invalid
	}
	return m.messages[event]
}

func (m *machine) Name() string {
	return m.name
}

func (m *machine) State() fsm.State {
	return m.fsm.Current()
}

func (m *machine) Operations() []string {
	return append([]string(nil), m.ops...)
}

func (m *machine) Apply(op string) (string, error) {
	if _, ok := m.messages[fsm.Event(op)]; !ok {
		return "", fmt.Errorf("%w: %s has no %q", ErrUnknownOperation, m.name, op)
	}
	return m.fire(fsm.Event(op)), nil
}

func (m *machine) OnTransition(cb fsm.TransitionCallback) {
	m.fsm.OnTransition(cb)
}

func (m *machine) restore(state fsm.State) error {
	if err := m.fsm.SetState(state); err != nil {
		return fmt.Errorf("restore %s: %w", m.name, err)
	}
	return nil
}
