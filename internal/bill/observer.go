package bill

// Observer is notified after every dispatched event.
type Observer interface {
	OnTransition(ev Event, before, after State, effects []Effect)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Event, before, after State, effects []Effect)

// OnTransition implements Observer.
func (f ObserverFunc) OnTransition(ev Event, before, after State, effects []Effect) {
	f(ev, before, after, effects)
}

// MultiObserver fans out transitions to several observers.
// Nil observers are dropped at construction.
type MultiObserver struct {
	observers []Observer
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver returns a MultiObserver forwarding to every non-nil observer.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// OnTransition forwards the call to all observers. A panicking observer does
// not stop the others.
func (m *MultiObserver) OnTransition(ev Event, before, after State, effects []Effect) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnTransition(ev, before, after, effects) })
	}
}

func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
