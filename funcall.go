package funcall

import "context"

// Func is the contract for a registered callable. It receives the argument
// map exactly as it was validated against the function's schema and returns
// an arbitrary result value. Errors (and panics, when recovery is enabled)
// count as failed attempts in the Caller's retry loop.
type Func func(ctx context.Context, params map[string]any) (any, error)

// ParameterKind is the closed set of value categories a parameter may be
// validated against. The string form is what appears in raw definitions.
type ParameterKind string

const (
	KindString  ParameterKind = "string"
	KindNumber  ParameterKind = "number"
	KindBoolean ParameterKind = "boolean"
	KindArray   ParameterKind = "array"
	KindObject  ParameterKind = "object"
	KindEnum    ParameterKind = "enum"
)

// ParseKind converts the raw string form into a ParameterKind.
// Unknown strings fail with a ValidationError.
func ParseKind(s string) (ParameterKind, error) {
	switch k := ParameterKind(s); k {
	case KindString, KindNumber, KindBoolean, KindArray, KindObject, KindEnum:
		return k, nil
	default:
		return "", newValidationErrorf("invalid parameter type: %q", s)
	}
}

// RawParameter is the plain definition of one parameter (or one nested
// value) before it is parsed into a ParameterSchema. Constraint fields are
// only meaningful for their associated kind; no cross-kind checks are done.
type RawParameter struct {
	Type        string                  `json:"type"`
	Description string                  `json:"description"`
	Required    bool                    `json:"required,omitempty"`
	Minimum     *float64                `json:"minimum,omitempty"`
	Maximum     *float64                `json:"maximum,omitempty"`
	Pattern     string                  `json:"pattern,omitempty"`
	EnumValues  []any                   `json:"enum_values,omitempty"`
	Items       *RawParameter           `json:"items,omitempty"`
	Properties  map[string]RawParameter `json:"properties,omitempty"`
}

// FunctionDefinition is the raw registration input for one function.
// Required lists parameter names that must be present in every call; it is
// independent of the per-parameter Required flag on RawParameter.
type FunctionDefinition struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Parameters  map[string]RawParameter `json:"parameters"`
	Required    []string                `json:"required,omitempty"`
}

// FunctionInfo is one entry of Registry.List: the name and description of a
// registered function, in registration order.
type FunctionInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
