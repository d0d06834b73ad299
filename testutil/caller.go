package testutil

import (
	"io"
	"log/slog"

	"github.com/modelfuncs/funcall"
)

// NewTestCaller returns a Caller over a fresh Registry with logging
// discarded, suitable for tests.
func NewTestCaller(opts ...funcall.CallerOption) *funcall.Caller {
	base := []funcall.CallerOption{
		funcall.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	return funcall.NewCaller(funcall.NewRegistry(), append(base, opts...)...)
}
