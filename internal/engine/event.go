package engine

// ListenerID identifies a subscription so it can be removed later.
// The zero value never refers to a listener.
type ListenerID uint64

// EventWithArg is a Unity-style multi-cast event carrying one argument.
// Listeners run in subscription order on the invoking goroutine.
type EventWithArg[T any] struct {
	listeners []listener[T]
	nextID    ListenerID
}

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// AddListener subscribes callback. A nil callback is ignored and yields
// the zero ID.
func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

// RemoveListener drops one subscription and reports whether it existed.
func (e *EventWithArg[T]) RemoveListener(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls every listener with arg. Listeners added or removed during
// the call take effect from the next Invoke.
func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range append([]listener[T](nil), e.listeners...) {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}
