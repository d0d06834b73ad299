package funcall

import (
	"errors"
	"fmt"
)

// Sentinel errors for funcall. Use errors.Is to check.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotRegistered     = errors.New("function not registered")
	ErrAlreadyRegistered = errors.New("function already registered")
)

// ValidationError reports a schema-definition problem or an argument value
// that does not conform to its schema. It is never retried and its message
// is safe to send back to the LLM for self-correction. Nested failures
// (array elements, object properties, named parameters) wrap the inner
// ValidationError so the full path stays on the errors.Is/As chain.
type ValidationError struct {
	Reason string
	Err    error // wrapped inner error, or ErrValidation at the root
}

func (e *ValidationError) Error() string { return e.Reason }

// Unwrap supports errors.Is(err, ErrValidation) through nesting chains.
func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidation
}

// newValidationErrorf builds a root ValidationError carrying ErrValidation.
func newValidationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...), Err: ErrValidation}
}

// wrapValidationError prefixes an inner validation failure with positional
// context (parameter name, element index, property name).
func wrapValidationError(context string, err error) *ValidationError {
	return &ValidationError{Reason: context + ": " + err.Error(), Err: err}
}

// InvocationError is the terminal error of a dispatched call: every retry
// attempt failed. It wraps only the last attempt's error; earlier failures
// are logged, not aggregated.
type InvocationError struct {
	Name     string
	Attempts int
	Err      error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("function %q failed after %d attempts: %v", e.Name, e.Attempts, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// IsValidationError returns true if err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInvocationError returns true if err is or wraps an InvocationError.
func IsInvocationError(err error) bool {
	var ie *InvocationError
	return errors.As(err, &ie)
}

// panicError wraps a recovered panic value; used by the Caller's retry loop
// and the WithRecovery middleware.
type panicError struct{ p any }

func (e *panicError) Error() string {
	return "panic: " + fmt.Sprint(e.p)
}
