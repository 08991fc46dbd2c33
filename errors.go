package wcmp

import (
	"errors"
	"fmt"
)

// Sentinel errors for definition resolution and element operations.
var (
	ErrInvalidAncestry       = errors.New("wcmp: invalid prototype chain")
	ErrUnresolvedPlaceholder = errors.New("wcmp: unresolved circular module placeholder")
	ErrNotComponent          = errors.New("wcmp: not a component constructor")
	ErrInvalidDecorator      = errors.New("wcmp: invalid decorator metadata")
	ErrFrozen                = errors.New("wcmp: prototype is frozen")
	ErrNotExposed            = errors.New("wcmp: property not exposed by bridge")
	ErrNoVM                  = errors.New("wcmp: element has no associated component")

	ErrDecryptFailed    = errors.New("wcmp: snapshot decryption failed")
	ErrSignatureInvalid = errors.New("wcmp: snapshot signature verification failed")
	ErrInvalidFormat    = errors.New("wcmp: invalid snapshot format")
)

// AncestryError reports a class whose prototype chain does not reach
// BaseElement, or whose circular placeholder cannot be resolved.
type AncestryError struct {
	Class string
	Err   error
}

func (e *AncestryError) Error() string {
	if errors.Is(e.Err, ErrUnresolvedPlaceholder) {
		return fmt.Sprintf("wcmp: circular module dependency for %s, must resolve to a constructor that extends wcmp.Element", e.Class)
	}
	return fmt.Sprintf("wcmp: invalid prototype chain for %s, you must extend wcmp.Element", e.Class)
}

func (e *AncestryError) Unwrap() error {
	return e.Err
}

// TypeError reports a value passed where a component constructor was
// expected.
type TypeError struct {
	Value string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("wcmp: %s is not a valid component, or does not extend wcmp.Element; you probably forgot to embed wcmp.Element in the component type", e.Value)
}

func (e *TypeError) Unwrap() error {
	return ErrNotComponent
}

// IsNotComponent checks if err reports a non-component value.
func IsNotComponent(err error) bool {
	return errors.Is(err, ErrNotComponent)
}

// IsAncestryError checks if err is an invalid-ancestry or unresolved
// placeholder error.
func IsAncestryError(err error) bool {
	return errors.Is(err, ErrInvalidAncestry) || errors.Is(err, ErrUnresolvedPlaceholder)
}

// IsDecryptionError checks if err is a snapshot decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}

// describe renders an arbitrary value for error messages.
func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case Class:
		return x.Name()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%T(%v)", v, v)
	}
}
