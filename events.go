package surf

import "github.com/phaux/surf/dom"

// Match is one delegated-event emission: the host event and the node that
// matched the selector.
type Match struct {
	Event *dom.Event
	Node  *dom.Node
}

// EventStream is a lazy stream of delegated host events. Nothing is
// registered until Listen is called; every Listen registers its own listener
// on the element's shadow root, so distinct subscriptions are independent.
type EventStream struct {
	el       *Element
	selector string
	event    string
}

// Events returns a stream of eventName events delegated through the
// element's shadow root and filtered by selector.
//
// On each firing, the ancestor chain is walked from the event target up
// through parent links, target included. The first node matching selector
// wins: the event's default action is prevented and the match is emitted.
// When no ancestor matches, nothing is emitted. Repeated calls with the same
// arguments create independent streams; there is no de-duplication.
func (el *Element) Events(selector, eventName string) *EventStream {
	return &EventStream{el: el, selector: selector, event: eventName}
}

// Listen registers one listener on the shadow root (attaching it if absent)
// and returns its remover.
func (s *EventStream) Listen(fn func(Match)) (unsubscribe func()) {
	root := s.el.node.AttachShadow()
	return root.AddListener(s.event, func(e *dom.Event) {
		for t := e.Target; t != nil; t = t.Parent() {
			if t.Matches(s.selector) {
				e.PreventDefault()
				fn(Match{Event: e, Node: t})
				return
			}
		}
	})
}
