// Package statemachine implements Rob Pike's state-function pattern: states
// are functions over the entity, and each returns the next state function
// (or nil to terminate).
package statemachine

// Fn is a state function for an entity of type T.
type Fn[T any] func(*T) Fn[T]

// Machine drives an entity through a chain of state functions. It has no
// internal locking; callers serialize access the same way they serialize the
// entity itself.
type Machine[T any] struct {
	entity *T
	fn     Fn[T]
}

// New creates a machine positioned at the given initial state.
func New[T any](entity *T, initial Fn[T]) *Machine[T] {
	return &Machine[T]{entity: entity, fn: initial}
}

// Step runs the current state function once and advances to whatever it
// returns. It reports false when the machine has already terminated.
func (m *Machine[T]) Step() bool {
	if m.fn == nil {
		return false
	}
	m.fn = m.fn(m.entity)
	return true
}

// Set repositions the machine at the given state without running it.
func (m *Machine[T]) Set(fn Fn[T]) {
	m.fn = fn
}

// Done reports whether the machine has terminated.
func (m *Machine[T]) Done() bool {
	return m.fn == nil
}
