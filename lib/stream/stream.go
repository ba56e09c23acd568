// Package stream provides the push-based cell primitive backing surf
// bindings: a container with a current value, synchronous notification, and
// subscription in registration order.
package stream

// Cell holds a current value and notifies subscribers on every push.
//
// Cell is not thread-safe. Like the element it backs, it lives on one
// cooperative execution context; re-entrant pushes from inside a handler are
// permitted and run to completion before the outer push returns.
type Cell[T any] struct {
	value  T
	subs   []subscriber[T]
	nextID int
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// New creates a cell holding initial.
func New[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Value returns the current value.
func (c *Cell[T]) Value() T {
	return c.value
}

// Set stores v and synchronously notifies all current subscribers in
// subscription order. Handlers added or removed during notification do not
// affect the in-flight delivery.
func (c *Cell[T]) Set(v T) {
	c.value = v
	subs := make([]subscriber[T], len(c.subs))
	copy(subs, c.subs)
	for _, s := range subs {
		s.fn(v)
	}
}

// Listen subscribes to pushes and returns an unsubscribe function.
// The handler is not called with the current value; read Value for that.
// Unsubscribing twice is a no-op.
func (c *Cell[T]) Listen(fn func(T)) (unsubscribe func()) {
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Source is the read-only view of a cell handed to input subscribers.
type Source[T any] interface {
	Value() T
	Listen(fn func(T)) (unsubscribe func())
}

// Sink is a next/error-shaped stream consumer. Either field may be nil.
type Sink[T any] struct {
	Next  func(T)
	Error func(error)
}
