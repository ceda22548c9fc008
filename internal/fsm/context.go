package fsm

// FSMContext is handed to guards and hooks. Data survives between triggers,
// Meta is for caller supplied values that hooks need (loggers, ids).
type FSMContext struct {
	State State
	Input any
	Data  map[string]any
	Meta  map[string]any
}

func newFSMContext(initial State) *FSMContext {
	return &FSMContext{
		State: initial,
		Input: nil,
		Data:  make(map[string]any),
		Meta:  make(map[string]any),
	}
}
