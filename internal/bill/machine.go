package bill

// Machine owns a State and runs events through Apply, performing the
// resulting effects via its callbacks. It is not safe for concurrent use;
// the host delivers events one at a time.
type Machine struct {
	state State

	// OnCommit receives the trimmed bill text of a successful submit.
	OnCommit func(bill string)
	// OnDismiss is called when the text input should be released.
	OnDismiss func()
	// Observer, if set, sees every transition after effects have run.
	Observer Observer
}

// NewMachine returns a Machine in the initial state.
func NewMachine() *Machine {
	return &Machine{state: New()}
}

// NewMachineFrom returns a Machine starting at s. Derived values are
// recomputed so that s need only carry inputs.
func NewMachineFrom(s State) *Machine {
	return &Machine{state: s.recompute()}
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state
}

// Dispatch applies ev and runs its effects. It returns the new state.
func (m *Machine) Dispatch(ev Event) State {
	before := m.state
	after, effects := Apply(before, ev)
	m.state = after
	for _, eff := range effects {
		switch eff := eff.(type) {
		case Commit:
			if m.OnCommit != nil {
				m.OnCommit(eff.Bill)
			}
		case DismissInput:
			if m.OnDismiss != nil {
				m.OnDismiss()
			}
		}
	}
	if m.Observer != nil {
		m.Observer.OnTransition(ev, before, after, effects)
	}
	return after
}
