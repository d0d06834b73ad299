package funcall

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// noFunctionsPrompt is the capability listing shown while the registry is empty.
const noFunctionsPrompt = "No functions are currently available."

// defaultMaxRetries is the attempt budget of Call, first try included.
const defaultMaxRetries = 3

// Caller orchestrates dispatch: it validates arguments against the
// registered schema, invokes the callable with bounded retry, and keeps a
// human-readable capability listing (the system prompt) in sync with the
// registry. The prompt cache is rebuilt only by the Caller's own
// registration entry points; mutating the Registry directly leaves it stale
// until RefreshSystemPrompt.
type Caller struct {
	registry *Registry
	opts     callerOptions

	mu     sync.RWMutex
	prompt string
}

// NewCaller creates a Caller bound to registry and builds the initial
// capability listing.
func NewCaller(registry *Registry, opts ...CallerOption) *Caller {
	o := callerOptions{
		logger:        slog.Default(),
		maxRetries:    defaultMaxRetries,
		recoverPanics: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	c := &Caller{registry: registry, opts: o}
	c.RefreshSystemPrompt()
	return c
}

// SystemPrompt returns the cached capability listing: a sentinel when no
// functions are registered, otherwise one "- name: description" line per
// function in registration order.
func (c *Caller) SystemPrompt() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prompt
}

// RefreshSystemPrompt rebuilds the capability listing from the registry.
// Needed only after out-of-band registry mutations; the Caller's own
// Register, Unregister, and Update refresh automatically.
func (c *Caller) RefreshSystemPrompt() {
	prompt := buildSystemPrompt(c.registry.List())
	c.mu.Lock()
	c.prompt = prompt
	c.mu.Unlock()
}

func buildSystemPrompt(functions []FunctionInfo) string {
	if len(functions) == 0 {
		return noFunctionsPrompt
	}
	var b strings.Builder
	b.WriteString("Available functions:\n\n")
	for _, f := range functions {
		fmt.Fprintf(&b, "- %s: %s\n", f.Name, f.Description)
	}
	return b.String()
}

// Call validates params against the schema registered under name and
// invokes the callable with up to maxRetries attempts (default 3, first try
// included, no delay between attempts). Lookup and validation failures are
// returned immediately and never retried. When every attempt fails, the
// returned InvocationError wraps only the last attempt's error.
func (c *Caller) Call(ctx context.Context, name string, params map[string]any, opts ...CallOption) (any, error) {
	co := callOptions{maxRetries: c.opts.maxRetries}
	for _, opt := range opts {
		opt(&co)
	}
	if co.callID == "" {
		co.callID = uuid.NewString()
	}

	fn, ok := c.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("call %q: %w", name, ErrNotRegistered)
	}
	schema, ok := c.registry.Schema(name)
	if !ok {
		// Unreachable while the registry keeps callable and schema paired.
		return nil, fmt.Errorf("call %q: schema missing: %w", name, ErrNotRegistered)
	}

	if err := schema.ValidateParameters(params); err != nil {
		c.opts.logger.Error("parameter validation failed",
			"function", name, "call_id", co.callID, "error", err)
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= co.maxRetries; attempt++ {
		result, err := c.invoke(ctx, fn, params)
		if err == nil {
			c.opts.logger.Info("function call succeeded",
				"function", name, "call_id", co.callID, "attempt", attempt)
			return result, nil
		}
		lastErr = err
		c.opts.logger.Warn("function call attempt failed",
			"function", name, "call_id", co.callID, "attempt", attempt, "error", err)
	}

	c.opts.logger.Error("function call failed",
		"function", name, "call_id", co.callID, "attempts", co.maxRetries, "error", lastErr)
	return nil, &InvocationError{Name: name, Attempts: co.maxRetries, Err: lastErr}
}

// invoke runs one attempt, converting a panic into an attempt failure when
// recovery is enabled.
func (c *Caller) invoke(ctx context.Context, fn Func, params map[string]any) (result any, err error) {
	if c.opts.recoverPanics {
		defer func() {
			if p := recover(); p != nil {
				result = nil
				err = &panicError{p: p}
			}
		}()
	}
	return fn(ctx, params)
}

// Register registers the function and rebuilds the capability listing.
// Registry-level failures propagate unchanged.
func (c *Caller) Register(name string, fn Func, def FunctionDefinition) error {
	if err := c.registry.Register(name, fn, def); err != nil {
		c.opts.logger.Error("failed to register function", "function", name, "error", err)
		return err
	}
	c.opts.logger.Info("registered function", "function", name)
	c.RefreshSystemPrompt()
	return nil
}

// Unregister removes the function and rebuilds the capability listing.
func (c *Caller) Unregister(name string) error {
	if err := c.registry.Unregister(name); err != nil {
		return err
	}
	c.opts.logger.Info("unregistered function", "function", name)
	c.RefreshSystemPrompt()
	return nil
}

// Update replaces an existing function's callable and schema, then rebuilds
// the capability listing.
func (c *Caller) Update(name string, fn Func, def FunctionDefinition) error {
	if err := c.registry.Update(name, fn, def); err != nil {
		c.opts.logger.Error("failed to update function", "function", name, "error", err)
		return err
	}
	c.opts.logger.Info("updated function", "function", name)
	c.RefreshSystemPrompt()
	return nil
}
