// Package event provides typed property-change notification for widgets.
//
// Aura widgets expose their styling and behavior properties as [Value] boxes.
// The owning widget subscribes engine wiring to them, and a host binding
// system can both drive them (Set) and observe them (Subscribe) without the
// widgets depending on any particular reactive framework. All notification is
// synchronous and runs on the caller's goroutine, matching the UI-thread
// confinement the rest of the library assumes.
package event

// Change carries the old and new value of a property update.
type Change[T any] struct {
	Old T
	New T
}

// Value is an observable property holding a single comparable value.
// Listeners fire only when the value actually changes.
type Value[T comparable] struct {
	current   T
	listeners map[int]func(Change[T])
	nextID    int
}

// NewValue creates an observable property with an initial value.
// No notification fires for the initial value.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{current: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.current
}

// Set updates the value and notifies listeners with the old and new values.
// Setting the current value again is a no-op.
func (v *Value[T]) Set(next T) {
	if v.current == next {
		return
	}
	old := v.current
	v.current = next
	for _, listener := range v.listeners {
		listener(Change[T]{Old: old, New: next})
	}
}

// Subscribe adds a change listener and returns an unsubscribe function.
func (v *Value[T]) Subscribe(fn func(Change[T])) func() {
	if v.listeners == nil {
		v.listeners = make(map[int]func(Change[T]))
	}
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	return func() {
		delete(v.listeners, id)
	}
}
