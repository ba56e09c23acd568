package surf

import "github.com/phaux/surf/lib/stream"

// Input establishes (or reuses) the binding for name and returns its cell as
// a read-only stream. kind defaults to Any when empty.
//
// The first call for a given name creates the binding and fixes its kind; any
// later call returns the same cell regardless of the kind argument, so
// re-subscription is idempotent and never forks state.
//
// After Input returns, the property surface for name reads the cell and
// writes feed it (see SetProp), and external writes to the derived attribute
// flow in through AttributeChanged.
//
// Input fails synchronously with an *InvalidTypeError for a kind missing from
// the coercion registry.
func (el *Element) Input(name string, kind Kind) (stream.Source[any], error) {
	if kind == "" {
		kind = Any
	}
	conv, ok := converterFor(kind)
	if !ok {
		return nil, &InvalidTypeError{Name: name, Kind: kind}
	}
	return el.bindingFor(name, kind, conv).cell, nil
}

// MustInput is Input for statically known kinds; it panics on registry
// misses, which are programming errors.
func (el *Element) MustInput(name string, kind Kind) stream.Source[any] {
	src, err := el.Input(name, kind)
	if err != nil {
		panic(err)
	}
	return src
}
