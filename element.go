package surf

import (
	"fmt"
	"sort"

	"github.com/phaux/surf/dom"
	"github.com/phaux/surf/lib/stream"
)

// binding is the durable association between one attribute name, its declared
// kind, and its backing cell. A binding is created at most once per attribute
// name and lives as long as the element; its kind never changes.
type binding struct {
	attr  string
	prop  string
	event string
	kind  Kind
	conv  Converter
	cell  *stream.Cell[any]
}

// Element owns the synchronization state of one host node: the binding table,
// the loop guard, and the plain property store for names without bindings.
//
// User element types embed *Element:
//
//	type Toggle struct {
//	    *surf.Element
//	}
//
// Element is not thread-safe; like the host tree it belongs to, it lives on
// one cooperative execution context.
type Element struct {
	node  *dom.Node
	label string

	bindings map[string]*binding // keyed by derived attribute name
	props    map[string]any      // values for names with no binding
	guard    *loopGuard

	unwatch func()
}

// NewElement creates the synchronization core for a host node and installs
// the attribute-mutation hook on it.
func NewElement(node *dom.Node) *Element {
	el := &Element{
		node:     node,
		label:    fmt.Sprintf("%s[%.8s]", node.Tag(), node.ID()),
		bindings: make(map[string]*binding),
		props:    make(map[string]any),
		guard:    newLoopGuard(),
	}
	el.unwatch = node.WatchAttrs(el.AttributeChanged)
	return el
}

// Node returns the host node this element synchronizes.
func (el *Element) Node() *dom.Node {
	return el.node
}

// Dispose removes the element's attribute-mutation hook. Bindings and cells
// stay valid; they die with the element.
func (el *Element) Dispose() {
	if el.unwatch != nil {
		el.unwatch()
		el.unwatch = nil
	}
}

// ObservedAttributes returns the attribute names of every attribute-backed
// binding, sorted. This is the list the host lifecycle observes.
func (el *Element) ObservedAttributes() []string {
	var names []string
	for _, b := range el.bindings {
		if b.conv.Attribute {
			names = append(names, b.attr)
		}
	}
	sort.Strings(names)
	return names
}

// Prop reads the property surface for name. With a binding, the property is
// the binding cell's current value; without one, it is whatever was stored
// with SetProp.
func (el *Element) Prop(name string) any {
	if b, ok := el.bindings[AttributeName(name)]; ok {
		return b.cell.Value()
	}
	return el.props[PropertyName(name)]
}

// SetProp writes the property surface for name.
//
// With a binding, this is the input-side accessor: the value is cast and
// pushed into the cell, but only while no output write is in flight and the
// cast value differs from the cell's current value. The push runs with the
// attribute name held in the ignored-output set, so a subscribed output
// endpoint updates the attribute without dispatching an echo event.
//
// Without a binding, the value is stored as-is; a later Input call for the
// same name consumes it as the initial value.
func (el *Element) SetProp(name string, v any) {
	if b, ok := el.bindings[AttributeName(name)]; ok {
		el.setBound(b, v)
		return
	}
	el.props[PropertyName(name)] = v
}

func (el *Element) setBound(b *binding, v any) {
	if !el.guard.inputAllowed() {
		return
	}
	cast := b.conv.Cast(v)
	if equalValues(cast, b.cell.Value()) {
		return
	}
	release := el.guard.ignoreOutput(b.attr)
	defer release()
	b.cell.Set(cast)
}

// AttributeChanged is the host's attribute-mutation hook. NewElement wires it
// to the node; hosts driving an element directly may call it themselves.
//
// The hook routes an external attribute write into the matching binding's
// cell. It exits early while an output endpoint is mid-write (the mutation is
// surf's own), when nothing actually changed, and for names without an
// attribute-backed binding.
func (el *Element) AttributeChanged(name string, prev, next dom.AttrValue) {
	if !el.guard.inputAllowed() {
		return
	}
	if prev == next {
		return
	}
	b, ok := el.bindings[name]
	if !ok || !b.conv.Attribute {
		return
	}
	var v any
	if next.Present {
		v = b.conv.Deserialize(next.Text)
	} else {
		v = b.conv.Zero()
	}
	release := el.guard.ignoreOutput(name)
	defer release()
	b.cell.Set(v)
}

// bindingFor returns the existing binding for the derived attribute name or
// creates it with the documented initial-value precedence: a present
// attribute deserializes (attribute-backed kinds), otherwise the kind's zero
// value applies, and a property value stored before the binding existed
// overrides either, after casting.
func (el *Element) bindingFor(name string, kind Kind, conv Converter) *binding {
	attr := AttributeName(name)
	if b, ok := el.bindings[attr]; ok {
		return b
	}

	prop := PropertyName(name)
	var initial any
	if a := el.node.Attr(attr); conv.Attribute && a.Present {
		initial = conv.Deserialize(a.Text)
	} else {
		initial = conv.Zero()
	}
	if own, ok := el.props[prop]; ok {
		initial = conv.Cast(own)
		delete(el.props, prop)
	}

	b := &binding{
		attr:  attr,
		prop:  prop,
		event: EventName(name),
		kind:  kind,
		conv:  conv,
		cell:  stream.New[any](initial),
	}
	el.bindings[attr] = b
	return b
}
