package fsm

import (
	"errors"
	"sync"
)

var (
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrAmbiguousTransition = errors.New("ambiguous transition")
	ErrUnknownState        = errors.New("unknown state")
)

type (
	State              string
	Event              string
	GuardFunc          func(ctx *FSMContext) bool
	Callback           func(ctx *FSMContext) error
	TransitionCallback func(from, to State, event Event, ctx *FSMContext) error

	transition struct {
		event Event
		to    State
		guard GuardFunc
	}

	FSM struct {
		initial      State
		current      State
		states       map[State]struct{}
		transitions  map[State][]transition
		onExit       map[State][]Callback
		onEnter      map[State][]Callback
		onTransition []TransitionCallback

		ctx *FSMContext
		mu  sync.RWMutex
	}
)

func (s State) String() string {
	return string(s)
}
