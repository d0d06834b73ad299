package funcall

import (
	"context"
	"log/slog"
	"time"
)

// Middleware wraps a registered callable with cross-cutting behavior
// (logging, recovery, timeouts). The registry applies the chain when a
// function is registered or updated, passing the registration name so
// wrappers can identify the callable. Applied via Registry.Use.
type Middleware func(name string, next Func) Func

// WithLogging returns a middleware that logs start, end, duration, and
// errors of every invocation.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(name string, next Func) Func {
		return func(ctx context.Context, params map[string]any) (any, error) {
			logger.Info("function start", "function", name)
			start := time.Now()
			res, err := next(ctx, params)
			dur := time.Since(start)
			if err != nil {
				logger.Error("function error", "function", name, "duration", dur, "error", err)
				return nil, err
			}
			logger.Info("function end", "function", name, "duration", dur)
			return res, nil
		}
	}
}

// WithRecovery returns a middleware that recovers panics in the callable and
// returns them as errors.
func WithRecovery() Middleware {
	return func(_ string, next Func) Func {
		return func(ctx context.Context, params map[string]any) (res any, err error) {
			defer func() {
				if p := recover(); p != nil {
					res = nil
					err = &panicError{p: p}
				}
			}()
			return next(ctx, params)
		}
	}
}

// WithTimeout returns a middleware that bounds each invocation with a
// deadline. The callable must honor ctx for the bound to take effect.
func WithTimeout(d time.Duration) Middleware {
	return func(_ string, next Func) Func {
		return func(ctx context.Context, params map[string]any) (any, error) {
			if d <= 0 {
				return next(ctx, params)
			}
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, params)
		}
	}
}
