package loading

import "github.com/ytget/loadstatus/internal/model"

// TransitionFunc is invoked after every effective state change
type TransitionFunc func(prev, next model.ButtonState)

// Machine holds the current button state. It is not safe for concurrent use;
// all calls must come from the UI goroutine.
type Machine struct {
	current      model.ButtonState
	onTransition TransitionFunc
}

// NewMachine returns a machine in the Completed state
func NewMachine(onTransition TransitionFunc) *Machine {
	return &Machine{
		current:      model.ButtonCompleted,
		onTransition: onTransition,
	}
}

// State returns the current state
func (m *Machine) State() model.ButtonState {
	return m.current
}

// SetState switches to next and runs the transition callback before returning.
// It reports false and does nothing when next equals the current state.
func (m *Machine) SetState(next model.ButtonState) bool {
	if next == m.current {
		return false
	}
	prev := m.current
	m.current = next
	if m.onTransition != nil {
		m.onTransition(prev, next)
	}
	return true
}

// Click moves to Clicked. Only accepted from Completed.
func (m *Machine) Click() bool {
	if m.current != model.ButtonCompleted {
		return false
	}
	return m.SetState(model.ButtonClicked)
}
