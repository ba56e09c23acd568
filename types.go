package surf

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"sync"
)

// Kind is the declared type tag of a binding. It selects the converter used
// to move values between the attribute text, the typed property, and the
// cell. A binding's kind never changes after creation.
type Kind string

const (
	// String values round-trip through the attribute text unchanged.
	String Kind = "string"
	// Number values are float64 properties serialized with strconv.
	Number Kind = "number"
	// Boolean values use attribute presence, not text content.
	Boolean Kind = "boolean"
	// Any values are held as-is and never reflected to an attribute.
	Any Kind = "any"
)

// Converter holds the four coercion functions for one declared kind.
//
// Serialize reports present=false to signal attribute absence (removal).
// Deserialize is only invoked for attribute-backed kinds and only while the
// attribute is present; absence is represented by Zero instead.
type Converter struct {
	// Attribute marks the kind as attribute-backed. Non-attribute kinds
	// never touch the attribute surface and need no Deserialize.
	Attribute bool

	Deserialize func(text string) any
	Serialize   func(v any) (text string, present bool)
	Cast        func(v any) any
	Zero        func() any
}

var (
	convMu     sync.RWMutex
	converters = map[Kind]Converter{
		String: {
			Attribute:   true,
			Deserialize: func(text string) any { return text },
			Serialize: func(v any) (string, bool) {
				if v == nil {
					return "", false
				}
				return castString(v), true
			},
			Cast: func(v any) any { return castString(v) },
			Zero: func() any { return "" },
		},
		Number: {
			Attribute:   true,
			Deserialize: func(text string) any { return parseNumber(text) },
			Serialize: func(v any) (string, bool) {
				if v == nil {
					return "", false
				}
				return formatNumber(castNumber(v)), true
			},
			Cast: func(v any) any { return castNumber(v) },
			Zero: func() any { return float64(0) },
		},
		Boolean: {
			Attribute: true,
			// Presence is the value: any attribute text means true.
			Deserialize: func(string) any { return true },
			Serialize: func(v any) (string, bool) {
				if castBool(v) {
					return "", true
				}
				return "", false
			},
			Cast: func(v any) any { return castBool(v) },
			Zero: func() any { return false },
		},
		Any: {
			Cast: func(v any) any { return v },
			Serialize: func(any) (string, bool) {
				return "", false
			},
			Zero: func() any { return nil },
		},
	}
)

// RegisterKind installs a converter for a custom kind.
// Panics on collision with an existing kind, mirroring explicit registration.
func RegisterKind(k Kind, c Converter) {
	convMu.Lock()
	defer convMu.Unlock()
	if _, exists := converters[k]; exists {
		panic(fmt.Sprintf("surf: kind %q already registered", k))
	}
	converters[k] = c
}

// converterFor looks up the converter for a kind.
func converterFor(k Kind) (Converter, bool) {
	convMu.RLock()
	defer convMu.RUnlock()
	c, ok := converters[k]
	return c, ok
}

func castString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return formatNumber(t)
	default:
		return fmt.Sprint(t)
	}
}

func castNumber(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int8:
		return float64(t)
	case int16:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint8:
		return float64(t)
	case uint16:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		return parseNumber(t)
	default:
		return math.NaN()
	}
}

func castBool(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int:
		return t != 0
	default:
		return true
	}
}

func parseNumber(text string) float64 {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// equalValues compares two property values for the idempotence guards.
// Uncomparable values (slices, maps) are never equal, so fresh composites
// always propagate.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
