package funcall

import (
	"fmt"
	"slices"
	"sync"
)

// entry pairs a callable with its schema. The two always travel together:
// no registry state ever holds one without the other.
type entry struct {
	fn     Func // wrapped with middlewares, used by Lookup
	raw    Func // unwrapped, used by Use to re-apply middlewares from scratch
	schema *FunctionSchema
}

// Registry owns the name → (callable, schema) mapping. All operations are
// safe for concurrent use; a lookup never observes a callable without its
// schema or vice versa.
type Registry struct {
	mu          sync.Mutex
	entries     map[string]*entry
	order       []string // registration order, for List and the system prompt
	middlewares []Middleware
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register validates def, builds its FunctionSchema, and installs the
// (callable, schema) pair under name. It fails with ErrAlreadyRegistered if
// name is taken, and with a ValidationError if def is malformed; either way
// the registry is left unchanged.
func (r *Registry) Register(name string, fn Func, def FunctionDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrAlreadyRegistered)
	}
	e, err := r.buildEntry(name, fn, def)
	if err != nil {
		return err
	}
	r.entries[name] = e
	r.order = append(r.order, name)
	return nil
}

// Unregister removes both the callable and the schema for name.
// Fails with ErrNotRegistered if name is absent.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; !ok {
		return fmt.Errorf("unregister %q: %w", name, ErrNotRegistered)
	}
	delete(r.entries, name)
	r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })
	return nil
}

// Update atomically replaces the callable and schema of an already
// registered function, keeping its position in the listing order. It is an
// update, not an upsert: an absent name fails with ErrNotRegistered. The new
// definition's own declared name is not required to match the registry key.
func (r *Registry) Update(name string, fn Func, def FunctionDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; !ok {
		return fmt.Errorf("update %q: %w", name, ErrNotRegistered)
	}
	e, err := r.buildEntry(name, fn, def)
	if err != nil {
		return err
	}
	r.entries[name] = e
	return nil
}

// buildEntry validates def and wraps fn with the stored middleware chain.
// Caller holds r.mu.
func (r *Registry) buildEntry(name string, fn Func, def FunctionDefinition) (*entry, error) {
	if err := ValidateFunctionDefinition(def); err != nil {
		return nil, err
	}
	schema, err := NewFunctionSchema(def)
	if err != nil {
		return nil, err
	}
	return &entry{fn: r.wrap(name, fn), raw: fn, schema: schema}, nil
}

// wrap applies the stored middleware chain, first middleware outermost.
// Caller holds r.mu.
func (r *Registry) wrap(name string, fn Func) Func {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		fn = r.middlewares[i](name, fn)
	}
	return fn
}

// Lookup returns the callable registered under name (with middlewares
// applied), or (nil, false) if name is unknown.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.fn, true
}

// Schema returns the schema registered under name, or (nil, false) if name
// is unknown.
func (r *Registry) Schema(name string) (*FunctionSchema, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.schema, true
}

// List returns the name and description of every registered function in
// registration order (updates keep their original position).
func (r *Registry) List() []FunctionInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]FunctionInfo, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, FunctionInfo{Name: name, Description: r.entries[name].schema.Description})
	}
	return out
}

// Use stores the given middlewares and reapplies them from scratch to every
// registered callable (onion order: first middleware is outermost).
// Functions registered after Use get the same chain. Calling Use again
// replaces the chain and rewraps from the raw callables, so middlewares are
// never stacked twice.
func (r *Registry) Use(middlewares ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middlewares = middlewares
	for name, e := range r.entries {
		e.fn = r.wrap(name, e.raw)
	}
}
