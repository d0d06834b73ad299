// Package testutil provides test helpers for funcall (e.g. MockFunc).
package testutil

import (
	"context"
	"sync/atomic"

	"github.com/modelfuncs/funcall"
)

// MockFunc is a configurable callable for tests. It records how many times
// it was invoked and delegates to Fn when set.
type MockFunc struct {
	ResultVal any
	Fn        func(ctx context.Context, params map[string]any) (any, error)

	calls atomic.Int64
}

// Func returns the funcall.Func backed by this mock.
func (m *MockFunc) Func() funcall.Func {
	return func(ctx context.Context, params map[string]any) (any, error) {
		m.calls.Add(1)
		if m.Fn != nil {
			return m.Fn(ctx, params)
		}
		return m.ResultVal, nil
	}
}

// Calls returns how many times the mock was invoked.
func (m *MockFunc) Calls() int {
	return int(m.calls.Load())
}

// FlakyFunc returns a callable that fails with err for the first failures
// invocations and then succeeds with result. Useful for retry tests.
func FlakyFunc(failures int, result any, err error) funcall.Func {
	var calls atomic.Int64
	return func(context.Context, map[string]any) (any, error) {
		if calls.Add(1) <= int64(failures) {
			return nil, err
		}
		return result, nil
	}
}

// Definition returns a minimal valid FunctionDefinition for tests: one
// optional string parameter named "input".
func Definition(name, description string) funcall.FunctionDefinition {
	return funcall.FunctionDefinition{
		Name:        name,
		Description: description,
		Parameters: map[string]funcall.RawParameter{
			"input": {Type: "string", Description: "Free-form input"},
		},
	}
}
