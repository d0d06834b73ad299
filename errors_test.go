package funcall

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Message(t *testing.T) {
	tests := []struct {
		name   string
		err    *ValidationError
		expect string
	}{
		{"plain reason", newValidationErrorf("expected string, got %T", 42), "expected string, got int"},
		{"wrapped context", wrapValidationError(`invalid value for parameter "age"`, newValidationErrorf("value %v is less than minimum %v", -1, 0)), `invalid value for parameter "age": value -1 is less than minimum 0`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.err.Error())
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	root := newValidationErrorf("bad value")
	assert.ErrorIs(t, root, ErrValidation)

	wrapped := wrapValidationError("parameter \"x\"", root)
	assert.ErrorIs(t, wrapped, ErrValidation)

	var ve *ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Same(t, wrapped, ve)

	// A ValidationError built without an inner error still reaches the sentinel.
	bare := &ValidationError{Reason: "bare"}
	assert.ErrorIs(t, bare, ErrValidation)
}

func TestInvocationError(t *testing.T) {
	inner := errors.New("connection refused")
	err := &InvocationError{Name: "fetch", Attempts: 3, Err: inner}
	assert.Equal(t, `function "fetch" failed after 3 attempts: connection refused`, err.Error())
	assert.Same(t, inner, err.Unwrap())
	assert.ErrorIs(t, err, inner)
}

func TestIsHelpers(t *testing.T) {
	ve := newValidationErrorf("x")
	ie := &InvocationError{Name: "f", Attempts: 1, Err: errors.New("y")}

	require.True(t, IsValidationError(ve))
	require.False(t, IsValidationError(ie))
	require.True(t, IsInvocationError(ie))
	require.False(t, IsInvocationError(ve))
	require.False(t, IsValidationError(ErrNotRegistered))

	// Wrapping keeps the helpers working.
	require.True(t, IsValidationError(fmt.Errorf("wrap: %w", ve)))
	require.True(t, IsInvocationError(fmt.Errorf("wrap: %w", ie)))
}

func TestSentinelWrapping(t *testing.T) {
	err := fmt.Errorf("register %q: %w", "f", ErrAlreadyRegistered)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.NotErrorIs(t, err, ErrNotRegistered)
}

func TestPanicError(t *testing.T) {
	err := &panicError{p: "oops"}
	assert.Equal(t, "panic: oops", err.Error())
	err = &panicError{p: 42}
	assert.Equal(t, "panic: 42", err.Error())
}
