package surf

import (
	"errors"
	"fmt"
)

// Sentinel errors for element operations.
var (
	ErrInvalidType     = errors.New("surf: unknown declared kind")
	ErrSnapshotInvalid = errors.New("surf: snapshot payload rejected")
)

// InvalidTypeError reports a binding declared with a kind that is not present
// in the coercion registry. It is returned synchronously from Input and
// Output, never deferred to stream time.
type InvalidTypeError struct {
	// Name is the raw binding name as passed by the caller.
	Name string
	// Kind is the unregistered kind tag.
	Kind Kind
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("surf: binding %q declares unknown kind %q", e.Name, e.Kind)
}

func (e *InvalidTypeError) Unwrap() error {
	return ErrInvalidType
}

// IsInvalidType checks if err is an invalid declared-kind error.
func IsInvalidType(err error) bool {
	return errors.Is(err, ErrInvalidType)
}
