package wcmp

import (
	"errors"
	"fmt"

	"github.com/pthm/wcmp/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a new snapshot encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// Snapshot serializes the element's public state: the values behind every
// accessor on its bridge. Internal and tracked fields are never included.
//
// Signed snapshots are readable but tamper-proof; sensitive snapshots are
// encrypted.
func (e *HostElement) Snapshot(enc *Encoder, sensitive bool) (string, error) {
	vm := e.VM()
	if vm == nil {
		return "", fmt.Errorf("%w: <%s>", ErrNoVM, e.tag)
	}

	props := make(map[string]any)
	for _, name := range e.Proto().Accessors() {
		if v := vm.Get(name); v != nil {
			props[name] = v
		}
	}
	return enc.Encode(encoding.Snapshot{Component: vm.def.Name, Props: props}, sensitive)
}

// Restore applies a snapshot produced by Snapshot. Properties the bridge
// does not expose are rejected.
func (e *HostElement) Restore(enc *Encoder, encoded string, sensitive bool) error {
	s, err := enc.Decode(encoded, sensitive)
	if err != nil {
		return wrapEncodingError(err)
	}
	for name, v := range s.Props {
		if err := e.Set(name, v); err != nil {
			return err
		}
	}
	return nil
}

// wrapEncodingError wraps encoding package errors with wcmp sentinel errors.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	if errors.Is(err, encoding.ErrDecryptFailed) {
		return ErrDecryptFailed
	}
	return err
}
