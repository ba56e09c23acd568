package surf

import (
	"github.com/phaux/surf/dom"
	"github.com/phaux/surf/lib/stream"
)

// Output returns a sink that fans each pushed value out to the element's
// three surfaces: the property, the attribute (for attribute-backed kinds),
// and a bubbling custom event named after name. kind defaults to Any when
// empty.
//
// Each push runs as one synchronous block with the process-input flag
// suspended, so the attribute write cannot re-enter the binding's cell
// through the attribute bridge. Pushes are idempotent: when the property
// already holds the cast value and the live attribute already matches the
// serialized value, nothing is written and no event fires. When the push is
// the direct echo of an input-side write to the same name, the event dispatch
// is suppressed while property and attribute still synchronize.
//
// Errors pushed into the sink are reported, never rethrown; a failing
// upstream must not disable the element's other surfaces.
//
// Output fails synchronously with an *InvalidTypeError for a kind missing
// from the coercion registry.
func (el *Element) Output(name string, kind Kind) (stream.Sink[any], error) {
	if kind == "" {
		kind = Any
	}
	conv, ok := converterFor(kind)
	if !ok {
		return stream.Sink[any]{}, &InvalidTypeError{Name: name, Kind: kind}
	}

	// Derived once; the same spellings serve every push.
	attr := AttributeName(name)
	prop := PropertyName(name)
	event := EventName(name)

	return stream.Sink[any]{
		Next: func(v any) {
			el.writeOutput(conv, attr, prop, event, v)
		},
		Error: func(err error) {
			Report("output."+event, el.label, err)
		},
	}, nil
}

// MustOutput is Output for statically known kinds; it panics on registry
// misses, which are programming errors.
func (el *Element) MustOutput(name string, kind Kind) stream.Sink[any] {
	sink, err := el.Output(name, kind)
	if err != nil {
		panic(err)
	}
	return sink
}

func (el *Element) writeOutput(conv Converter, attr, prop, event string, v any) {
	release := el.guard.suspendInput()
	defer release()

	propVal := conv.Cast(v)
	var attrVal string
	var attrPresent bool
	if conv.Attribute {
		attrVal, attrPresent = conv.Serialize(v)
	}

	// Check-then-write: a fully redundant push performs no writes and no
	// dispatch.
	if equalValues(el.Prop(prop), propVal) {
		if !conv.Attribute {
			return
		}
		if cur := el.node.Attr(attr); cur == (dom.AttrValue{Text: attrVal, Present: attrPresent}) {
			return
		}
	}

	// The property assignment goes through the accessor path. With a
	// binding, the suspended flag makes it a no-op against the cell (the
	// cell is the property); without one, it stores the plain value.
	if b, ok := el.bindings[attr]; ok {
		el.setBound(b, propVal)
	} else {
		el.props[prop] = propVal
	}

	if conv.Attribute {
		if attrPresent {
			el.node.SetAttr(attr, attrVal)
		} else {
			el.node.RemoveAttr(attr)
		}
	}

	if el.guard.outputIgnored(attr) {
		// The cell change came from the input side of this same name;
		// the event would be an echo.
		return
	}
	el.node.Dispatch(dom.NewEvent(event, propVal))
}
