package surf

import (
	"errors"

	"github.com/phaux/surf/lib/encoding"
)

// Codec snapshots and restores element state.
//
// A snapshot captures the current value of every binding, keyed by attribute
// name, as a signed msgpack blob. Restoring writes the values back through
// the normal property path, so all three surfaces of each binding
// resynchronize exactly as if the values had been set live.
//
// By default blobs are signed: visible but tamper-proof. Call Sensitive for
// encrypted, fully opaque blobs.
type Codec struct {
	enc       *encoding.Encoder
	sensitive bool
}

// NewCodec creates a codec with the given key.
func NewCodec(key []byte) (*Codec, error) {
	enc, err := encoding.NewEncoder(key)
	if err != nil {
		return nil, err
	}
	return &Codec{enc: enc}, nil
}

// Sensitive switches the codec to encrypted blobs.
func (c *Codec) Sensitive() *Codec {
	c.sensitive = true
	return c
}

// Snapshot encodes the element's current binding values.
func (c *Codec) Snapshot(el *Element) (string, error) {
	state := make(map[string]any, len(el.bindings))
	for attr, b := range el.bindings {
		state[attr] = b.cell.Value()
	}
	return c.enc.Encode(state, c.sensitive)
}

// Restore decodes a snapshot and applies its values through SetProp. Names
// without a binding become plain property values, picked up as initial
// values by a later Input call. Rejected blobs return ErrSnapshotInvalid.
func (c *Codec) Restore(el *Element, blob string) error {
	state, err := c.enc.Decode(blob, c.sensitive)
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidFormat) ||
			errors.Is(err, encoding.ErrSignatureInvalid) ||
			errors.Is(err, encoding.ErrDecryptFailed) {
			return errors.Join(ErrSnapshotInvalid, err)
		}
		return err
	}
	for name, v := range state {
		el.SetProp(name, v)
	}
	return nil
}
