package wcmp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	errs := []error{
		ErrInvalidAncestry,
		ErrUnresolvedPlaceholder,
		ErrNotComponent,
		ErrInvalidDecorator,
		ErrFrozen,
		ErrNotExposed,
		ErrNoVM,
		ErrDecryptFailed,
		ErrSignatureInvalid,
		ErrInvalidFormat,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestAncestryError(t *testing.T) {
	invalid := &AncestryError{Class: "Widget", Err: ErrInvalidAncestry}
	assert.EqualError(t, invalid, "wcmp: invalid prototype chain for Widget, you must extend wcmp.Element")
	assert.ErrorIs(t, invalid, ErrInvalidAncestry)

	circular := &AncestryError{Class: "Widget", Err: ErrUnresolvedPlaceholder}
	assert.Contains(t, circular.Error(), "circular module dependency for Widget")
	assert.ErrorIs(t, circular, ErrUnresolvedPlaceholder)
	assert.NotErrorIs(t, circular, ErrInvalidAncestry)
}

func TestTypeError(t *testing.T) {
	err := &TypeError{Value: "int(42)"}
	assert.ErrorIs(t, err, ErrNotComponent)
	assert.Contains(t, err.Error(), "int(42) is not a valid component")
}

func TestIsNotComponent(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"TypeError", &TypeError{Value: "x"}, true},
		{"wrapped", fmt.Errorf("wrapped: %w", &TypeError{Value: "x"}), true},
		{"sentinel", ErrNotComponent, true},
		{"ancestry", &AncestryError{Class: "x", Err: ErrInvalidAncestry}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, IsNotComponent(tt.err))
		})
	}
}

func TestIsAncestryError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"invalid", &AncestryError{Class: "x", Err: ErrInvalidAncestry}, true},
		{"circular", &AncestryError{Class: "x", Err: ErrUnresolvedPlaceholder}, true},
		{"wrapped", fmt.Errorf("build: %w", ErrInvalidAncestry), true},
		{"type error", &TypeError{Value: "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, IsAncestryError(tt.err))
		})
	}
}

func TestIsDecryptionError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrDecryptFailed", ErrDecryptFailed, true},
		{"ErrSignatureInvalid", ErrSignatureInvalid, true},
		{"wrapped ErrDecryptFailed", fmt.Errorf("wrapped: %w", ErrDecryptFailed), true},
		{"ErrInvalidFormat", ErrInvalidFormat, false},
		{"other error", errors.New("other error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, IsDecryptionError(tt.err))
		})
	}
}

type named string

func (n named) String() string { return "named:" + string(n) }

func TestDescribe(t *testing.T) {
	assert.Equal(t, "<nil>", describe(nil))
	assert.Equal(t, "Element", describe(BaseElement))
	assert.Equal(t, "Counter", describe(Extend("Counter", BaseElement, Proto{})))
	assert.Equal(t, "named:x", describe(named("x")))
	assert.Equal(t, "bool(true)", describe(true))
}
