package funcall

import "log/slog"

// callerOptions hold Caller settings (logger, retry budget, panic recovery).
type callerOptions struct {
	logger        *slog.Logger
	maxRetries    int
	recoverPanics bool
}

// CallerOption configures a Caller (e.g. WithLogger, WithMaxRetries).
type CallerOption func(*callerOptions)

// WithLogger sets the logger used for per-attempt and lifecycle logging.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) CallerOption {
	return func(o *callerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxRetries sets the default invocation attempt budget for Call.
// A value of N performs at most N attempts total, the first try included.
// Pass 0 or negative to keep the default of 3.
func WithMaxRetries(n int) CallerOption {
	return func(o *callerOptions) {
		if n > 0 {
			o.maxRetries = n
		}
	}
}

// WithRecoverPanics controls whether a panicking callable is recovered and
// counted as a failed attempt instead of crashing the process. On by default.
func WithRecoverPanics(enabled bool) CallerOption {
	return func(o *callerOptions) {
		o.recoverPanics = enabled
	}
}

// callOptions hold per-call overrides.
type callOptions struct {
	maxRetries int
	callID     string
}

// CallOption configures a single Call.
type CallOption func(*callOptions)

// CallWithMaxRetries overrides the Caller's attempt budget for one call.
func CallWithMaxRetries(n int) CallOption {
	return func(o *callOptions) {
		if n > 0 {
			o.maxRetries = n
		}
	}
}

// CallWithID sets the correlation ID used in this call's log records.
// When unset, the Caller generates a UUID.
func CallWithID(id string) CallOption {
	return func(o *callOptions) {
		o.callID = id
	}
}
