package funcall

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
)

// ParameterSchema validates a single value against one parameter kind and
// its constraints. Instances are built from RawParameter definitions and are
// immutable afterwards. Nested Items/Properties definitions stay raw and are
// materialized into ParameterSchema instances only when a value of that
// branch is actually validated.
type ParameterSchema struct {
	Kind        ParameterKind
	Description string
	// Required applies only when the value is nil. It is independent of
	// FunctionSchema.Required: the function-level list decides top-level
	// presence, this flag is honored for nested schemas that set it.
	Required   bool
	Minimum    *float64
	Maximum    *float64
	Pattern    string
	EnumValues []any
	Items      *RawParameter
	Properties map[string]RawParameter

	re *regexp.Regexp
}

// NewParameterSchema parses one raw parameter definition. It fails with a
// ValidationError on an unknown kind string or an uncompilable pattern.
func NewParameterSchema(raw RawParameter) (*ParameterSchema, error) {
	kind, err := ParseKind(raw.Type)
	if err != nil {
		return nil, err
	}
	s := &ParameterSchema{
		Kind:        kind,
		Description: raw.Description,
		Required:    raw.Required,
		Minimum:     raw.Minimum,
		Maximum:     raw.Maximum,
		Pattern:     raw.Pattern,
		EnumValues:  raw.EnumValues,
		Items:       raw.Items,
		Properties:  raw.Properties,
	}
	if raw.Pattern != "" {
		// Match-from-start semantics: the pattern must match at the beginning
		// of the value but need not consume the whole string.
		re, err := regexp.Compile(`\A(?:` + raw.Pattern + `)`)
		if err != nil {
			return nil, newValidationErrorf("invalid pattern %q: %v", raw.Pattern, err)
		}
		s.re = re
	}
	return s, nil
}

// Validate checks value against the schema. A nil value passes unless the
// schema itself is marked Required. Constraint fields of other kinds are
// ignored.
func (s *ParameterSchema) Validate(value any) error {
	if value == nil {
		if s.Required {
			return newValidationErrorf("required parameter is missing")
		}
		return nil
	}

	switch s.Kind {
	case KindString:
		return s.validateString(value)
	case KindNumber:
		return s.validateNumber(value)
	case KindBoolean:
		if _, ok := value.(bool); !ok {
			return newValidationErrorf("expected boolean, got %T", value)
		}
		return nil
	case KindArray:
		return s.validateArray(value)
	case KindObject:
		return s.validateObject(value)
	case KindEnum:
		return s.validateEnum(value)
	default:
		return newValidationErrorf("invalid parameter type: %q", string(s.Kind))
	}
}

func (s *ParameterSchema) validateString(value any) error {
	str, ok := value.(string)
	if !ok {
		return newValidationErrorf("expected string, got %T", value)
	}
	if s.re != nil && !s.re.MatchString(str) {
		return newValidationErrorf("string %q does not match pattern %q", str, s.Pattern)
	}
	return nil
}

func (s *ParameterSchema) validateNumber(value any) error {
	n, ok := numericValue(value)
	if !ok {
		return newValidationErrorf("expected number, got %T", value)
	}
	if s.Minimum != nil && n < *s.Minimum {
		return newValidationErrorf("value %v is less than minimum %v", n, *s.Minimum)
	}
	if s.Maximum != nil && n > *s.Maximum {
		return newValidationErrorf("value %v is greater than maximum %v", n, *s.Maximum)
	}
	return nil
}

func (s *ParameterSchema) validateArray(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return newValidationErrorf("expected array, got %T", value)
	}
	if s.Items == nil {
		return nil
	}
	item, err := NewParameterSchema(*s.Items)
	if err != nil {
		return wrapValidationError("invalid items schema", err)
	}
	for i := 0; i < rv.Len(); i++ {
		if err := item.Validate(rv.Index(i).Interface()); err != nil {
			return wrapValidationError(fmt.Sprintf("invalid array element %d", i), err)
		}
	}
	return nil
}

func (s *ParameterSchema) validateObject(value any) error {
	obj, ok := value.(map[string]any)
	if !ok {
		return newValidationErrorf("expected object, got %T", value)
	}
	// Only listed properties that are present get validated; a listed
	// property that is absent is not an error at this layer, and unlisted
	// properties pass through untouched.
	for _, name := range sortedKeys(s.Properties) {
		v, ok := obj[name]
		if !ok {
			continue
		}
		prop, err := NewParameterSchema(s.Properties[name])
		if err != nil {
			return wrapValidationError(fmt.Sprintf("invalid schema for property %q", name), err)
		}
		if err := prop.Validate(v); err != nil {
			return wrapValidationError(fmt.Sprintf("invalid object property %q", name), err)
		}
	}
	return nil
}

func (s *ParameterSchema) validateEnum(value any) error {
	if s.EnumValues == nil {
		return newValidationErrorf("enum values not specified in schema")
	}
	for _, allowed := range s.EnumValues {
		if reflect.DeepEqual(value, allowed) {
			return nil
		}
	}
	return newValidationErrorf("value %v not in enum values %v", value, s.EnumValues)
}

// numericValue converts value to float64 for bound checks. Booleans are
// explicitly not numbers even where a source type system says otherwise.
func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case bool:
		return 0, false
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// FunctionSchema aggregates the named parameter schemas of one registered
// function plus the set of parameter names every call must supply.
type FunctionSchema struct {
	Name        string
	Description string
	Parameters  map[string]*ParameterSchema
	Required    []string
}

// NewFunctionSchema builds a FunctionSchema from a raw definition. Top-level
// parameter schemas are constructed eagerly; a malformed one fails the whole
// definition with a ValidationError.
func NewFunctionSchema(def FunctionDefinition) (*FunctionSchema, error) {
	params := make(map[string]*ParameterSchema, len(def.Parameters))
	for _, name := range sortedKeys(def.Parameters) {
		p, err := NewParameterSchema(def.Parameters[name])
		if err != nil {
			return nil, wrapValidationError(fmt.Sprintf("invalid schema for parameter %q", name), err)
		}
		params[name] = p
	}
	return &FunctionSchema{
		Name:        def.Name,
		Description: def.Description,
		Parameters:  params,
		Required:    slices.Clone(def.Required),
	}, nil
}

// ValidateParameters checks a full argument map against the schema in three
// ordered passes: required names present, no unknown names, then per-value
// validation. The first failure wins. Map passes visit keys in sorted order
// so error reporting is deterministic.
func (s *FunctionSchema) ValidateParameters(params map[string]any) error {
	for _, name := range s.Required {
		if _, ok := params[name]; !ok {
			return newValidationErrorf("required parameter %q is missing", name)
		}
	}
	keys := sortedKeys(params)
	for _, name := range keys {
		if _, ok := s.Parameters[name]; !ok {
			return newValidationErrorf("unknown parameter: %q", name)
		}
	}
	for _, name := range keys {
		if err := s.Parameters[name].Validate(params[name]); err != nil {
			return wrapValidationError(fmt.Sprintf("invalid value for parameter %q", name), err)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
