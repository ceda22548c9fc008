package fsm

import (
	"fmt"
	"slices"
)

func NewFSM(initial State) *FSM {
	return &FSM{
		initial:      initial,
		current:      initial,
		states:       map[State]struct{}{initial: {}},
		transitions:  make(map[State][]transition),
		onEnter:      make(map[State][]Callback),
		onExit:       make(map[State][]Callback),
		onTransition: make([]TransitionCallback, 0),
		ctx:          newFSMContext(initial),
	}
}

// Copy returns a machine in the initial state that shares the transition
// table and hooks of fsm. Register everything before copying.
func (fsm *FSM) Copy() *FSM {
	fsm.mu.RLock()
	defer fsm.mu.RUnlock()

	return &FSM{
		initial:      fsm.initial,
		current:      fsm.initial,
		states:       fsm.states,
		transitions:  fsm.transitions,
		onEnter:      fsm.onEnter,
		onExit:       fsm.onExit,
		onTransition: fsm.onTransition,
		ctx:          newFSMContext(fsm.initial),
	}
}

func (fsm *FSM) Context() *FSMContext {
	return fsm.ctx
}

func (fsm *FSM) Initial() State {
	return fsm.initial
}

func (fsm *FSM) Current() State {
	fsm.mu.RLock()
	defer fsm.mu.RUnlock()

	return fsm.current
}

// States lists every state the machine declares, sorted.
func (fsm *FSM) States() []State {
	fsm.mu.RLock()
	defer fsm.mu.RUnlock()

	states := make([]State, 0, len(fsm.states))
	for s := range fsm.states {
		states = append(states, s)
	}
	slices.Sort(states)
	return states
}

// SetState moves the machine to state without running hooks. Only declared
// states are accepted.
func (fsm *FSM) SetState(state State) error {
	fsm.mu.Lock()
	defer fsm.mu.Unlock()

	if _, ok := fsm.states[state]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, state)
	}

	fsm.current = state
	fsm.ctx.State = state
	return nil
}

func (fsm *FSM) TransitionWhen(from State, event Event, to State, guard GuardFunc) *FSM {
	fsm.mu.Lock()
	defer fsm.mu.Unlock()

	fsm.states[from] = struct{}{}
	fsm.states[to] = struct{}{}
	fsm.transitions[from] = append(fsm.transitions[from], transition{event, to, guard})

	return fsm
}

func (fsm *FSM) Transition(from State, event Event, to State) *FSM {
	return fsm.TransitionWhen(from, event, to, nil)
}

func (fsm *FSM) OnEnter(state State, cb Callback) *FSM {
	fsm.mu.Lock()
	defer fsm.mu.Unlock()

	fsm.onEnter[state] = append(fsm.onEnter[state], cb)
	return fsm
}

func (fsm *FSM) OnExit(state State, cb Callback) *FSM {
	fsm.mu.Lock()
	defer fsm.mu.Unlock()

	fsm.onExit[state] = append(fsm.onExit[state], cb)
	return fsm
}

func (fsm *FSM) OnTransition(cb TransitionCallback) *FSM {
	fsm.mu.Lock()
	defer fsm.mu.Unlock()

	fsm.onTransition = append(fsm.onTransition, cb)
	return fsm
}

// Can reports whether event would fire from the current state. Guards are
// evaluated against the current context without input.
func (fsm *FSM) Can(event Event) bool {
	fsm.mu.RLock()
	defer fsm.mu.RUnlock()

	return len(fsm.matching(event)) == 1
}

// Trigger fires event. Exactly one transition out of the current state must
// match; otherwise the state is left as is and an error is returned. A hook
// returning an error also leaves the state unchanged.
func (fsm *FSM) Trigger(event Event, input ...any) error {
	fsm.mu.Lock()
	defer fsm.mu.Unlock()

	if len(input) > 0 {
		fsm.ctx.Input = input[0]
	} else {
		fsm.ctx.Input = nil
	}

	mustTransit := fsm.matching(event)
	switch len(mustTransit) {
	case 0:
		return fmt.Errorf("%w: event %q in state %q", ErrInvalidTransition, event, fsm.current)
	case 1:
	default:
		return fmt.Errorf("%w: event %q in state %q matches %d transitions", ErrAmbiguousTransition, event, fsm.current, len(mustTransit))
	}

	prevState := fsm.current
	nextState := mustTransit[0].to

	fsm.ctx.State = prevState

	for _, cb := range fsm.onExit[prevState] {
		if err := cb(fsm.ctx); err != nil {
			return err
		}
	}

	fsm.ctx.State = nextState

	for _, trCb := range fsm.onTransition {
		if err := trCb(prevState, nextState, event, fsm.ctx); err != nil {
			fsm.ctx.State = prevState
			return err
		}
	}

	for _, cb := range fsm.onEnter[nextState] {
		if err := cb(fsm.ctx); err != nil {
			fsm.ctx.State = prevState
			return err
		}
	}

	fsm.current = nextState

	return nil
}

func (fsm *FSM) matching(event Event) []transition {
	mustTransit := make([]transition, 0, 1)
	for _, t := range fsm.transitions[fsm.current] {
		if t.event == event && (t.guard == nil || t.guard(fsm.ctx)) {
			mustTransit = append(mustTransit, t)
		}
	}
	return mustTransit
}
