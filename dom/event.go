package dom

// Event is a host-tree event travelling from a target up its parent chain.
type Event struct {
	// Type is the event name, e.g. "click" or a derived custom-event name.
	Type string
	// Target is the node the event was dispatched on.
	Target *Node
	// Detail is the payload carried by custom events.
	Detail any

	bubbles          bool
	defaultPrevented bool
	stopped          bool
}

// NewEvent creates a bubbling event with the given type and payload.
func NewEvent(typ string, detail any) *Event {
	return &Event{Type: typ, Detail: detail, bubbles: true}
}

// PreventDefault marks the event's default action as cancelled.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation stops the event from bubbling past the current node.
func (e *Event) StopPropagation() {
	e.stopped = true
}

type listener struct {
	id int
	fn func(*Event)
}

// AddListener registers a handler for events of the given type reaching this
// node, either as their target or by bubbling. The returned function removes
// the listener; removing twice is a no-op.
func (nd *Node) AddListener(typ string, fn func(*Event)) (remove func()) {
	if nd.listeners == nil {
		nd.listeners = make(map[string][]*listener)
	}
	nd.nextLID++
	l := &listener{id: nd.nextLID, fn: fn}
	nd.listeners[typ] = append(nd.listeners[typ], l)
	return func() {
		ls := nd.listeners[typ]
		for i, cand := range ls {
			if cand == l {
				nd.listeners[typ] = append(ls[:i], ls[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers the event to this node's listeners and then bubbles it up
// the parent chain. Bubbling stops at a shadow root; events inside a shadow
// tree stay inside it. Dispatch returns false if any listener called
// PreventDefault, mirroring the host convention.
func (nd *Node) Dispatch(e *Event) bool {
	if e.Target == nil {
		e.Target = nd
	}
	for cur := nd; cur != nil && !e.stopped; cur = cur.parent {
		cur.deliver(e)
		if !e.bubbles {
			break
		}
	}
	return !e.defaultPrevented
}

func (nd *Node) deliver(e *Event) {
	ls := nd.listeners[e.Type]
	if len(ls) == 0 {
		return
	}
	// Snapshot so handlers can unsubscribe during delivery.
	snapshot := make([]*listener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		if e.stopped {
			return
		}
		l.fn(e)
	}
}
