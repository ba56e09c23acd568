// Package surf synchronizes the three surfaces of a custom element's state:
// a host-tree attribute (text), a typed property, and a reactive cell. A
// write on any one surface propagates to the other two exactly once, without
// echoing back into the surface that caused it.
//
// surf targets host trees modelled in Go. The [dom] package defines the host
// contract (attributes, ancestor links, listeners, bubbling dispatch, shadow
// roots, selector matching) and ships an in-memory implementation, so elements
// are fully usable and testable server-side.
//
// # Core Concepts
//
// Elements embed *Element, which owns the binding table and the reentrancy
// guards for one host node:
//
//	type Counter struct {
//	    *surf.Element
//	}
//
//	func NewCounter(node *dom.Node) *Counter {
//	    return &Counter{Element: surf.NewElement(node)}
//	}
//
// A binding associates one attribute name with a declared kind and a backing
// cell. Bindings are created lazily, exactly once per name, and live as long
// as the element.
//
// # Inputs and Outputs
//
// Input returns the binding's cell as a subscribable stream. The property
// surface reads and writes through the same binding:
//
//	count, err := el.Input("count", surf.Number) // cell starts at 0, or at
//	                                             // the parsed attribute value
//	unsub := count.Listen(func(v any) { ... })
//	el.SetProp("count", 10)                      // attribute becomes "10"
//
// Output returns a sink that fans a pushed value out to the property, the
// attribute, and a bubbling custom event, while the loop guard suppresses the
// echo paths:
//
//	active, err := el.Output("active", surf.Boolean)
//	active.Next(true) // attribute present, property true, "active" event
//
// Writes are idempotent: pushing an unchanged value performs no property
// write, no attribute mutation, and no event dispatch.
//
// # Attribute Bridge
//
// The host invokes AttributeChanged whenever an observed attribute mutates.
// External attribute writes flow into the matching cell; attribute writes that
// surf itself performed are filtered out by the guard, so no update cycle can
// form. ObservedAttributes lists every attribute-backed binding name for the
// host lifecycle.
//
// # Delegated Events
//
// Events returns a stream of host events delegated through the shadow root.
// The ancestor chain of each event target is walked until a node matches the
// selector; the closest match wins, its default action is prevented, and the
// subscriber receives the event together with the matched node:
//
//	clicks := el.Events("button.inc", "click")
//	unsub := clicks.Listen(func(m surf.Match) { ... })
//
// # Rendering
//
// Render converts a stream of templ components into renderer calls against the
// element's shadow root. The sink is debounced: a burst of synchronous pushes
// coalesces into one renderer invocation with the last pushed view. RenderNow
// renders synchronously on every push.
//
// # Snapshots
//
// Snapshot encodes the element's current binding values into a signed (or
// encrypted) msgpack blob; Restore writes them back through the normal
// property path so every surface resynchronizes. Use snapshots to carry
// element state across processes or requests.
//
// # Error Policy
//
// Kind lookups fail fast: Input and Output return an *InvalidTypeError
// synchronously for an unregistered kind. Errors arriving through streams are
// absorbed and reported (see Report and SetReporter), never rethrown; a
// misbehaving stream must not disable the other surfaces.
package surf
