package surf

import "github.com/phaux/surf/dom"

// Test helpers for exercising elements without a live host loop.

// NewTestElement creates a detached host node with the given tag and an
// element on it. The node is reachable through Element.Node.
func NewTestElement(tag string) *Element {
	return NewElement(dom.New(tag))
}

// EventRecorder captures events delivered to one node.
type EventRecorder struct {
	Events []*dom.Event

	removers []func()
}

// RecordEvents captures all events of the given types reaching node.
// Call Stop to remove the underlying listeners.
func RecordEvents(node *dom.Node, types ...string) *EventRecorder {
	rec := &EventRecorder{}
	for _, typ := range types {
		rec.removers = append(rec.removers, node.AddListener(typ, func(e *dom.Event) {
			rec.Events = append(rec.Events, e)
		}))
	}
	return rec
}

// Count returns how many events of the given type were recorded.
func (rec *EventRecorder) Count(typ string) int {
	n := 0
	for _, e := range rec.Events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

// Last returns the most recent recorded event, or nil.
func (rec *EventRecorder) Last() *dom.Event {
	if len(rec.Events) == 0 {
		return nil
	}
	return rec.Events[len(rec.Events)-1]
}

// Stop removes the recorder's listeners.
func (rec *EventRecorder) Stop() {
	for _, r := range rec.removers {
		r()
	}
	rec.removers = nil
}

// ManualScheduler is a Scheduler whose deferred work runs only when Flush is
// called, making debounce behavior deterministic in tests.
type ManualScheduler struct {
	queue []*manualTask
}

type manualTask struct {
	fn        func()
	cancelled bool
}

// Schedule queues fn until the next Flush.
func (s *ManualScheduler) Schedule(fn func()) (cancel func()) {
	t := &manualTask{fn: fn}
	s.queue = append(s.queue, t)
	return func() {
		t.cancelled = true
	}
}

// Flush runs every scheduled, uncancelled unit of work in order.
func (s *ManualScheduler) Flush() {
	q := s.queue
	s.queue = nil
	for _, t := range q {
		if !t.cancelled {
			t.fn()
		}
	}
}

// Pending returns the number of scheduled, uncancelled units of work.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.queue {
		if !t.cancelled {
			n++
		}
	}
	return n
}
