package funcall

import "reflect"

// ValidateFunctionDefinition checks that a raw definition is well-formed:
// name, description, and a parameters map are present, and every parameter
// carries a description and one of the six recognized kind strings. The
// Required list is deliberately not cross-checked against parameter names.
func ValidateFunctionDefinition(def FunctionDefinition) error {
	if def.Name == "" {
		return newValidationErrorf("missing required field in function definition: name")
	}
	if def.Description == "" {
		return newValidationErrorf("missing required field in function definition: description")
	}
	if def.Parameters == nil {
		return newValidationErrorf("missing required field in function definition: parameters")
	}
	for _, name := range sortedKeys(def.Parameters) {
		raw := def.Parameters[name]
		if raw.Type == "" {
			return newValidationErrorf("parameter %q missing type", name)
		}
		if raw.Description == "" {
			return newValidationErrorf("parameter %q missing description", name)
		}
		if _, err := ParseKind(raw.Type); err != nil {
			return newValidationErrorf("invalid parameter type for %q: %q", name, raw.Type)
		}
	}
	return nil
}

// SchemaFromExamples infers a raw parameter map from concrete example
// values, one entry per key. The kind is decided by the example's runtime
// type (string, then boolean, then number, then slice, then map); no
// constraints are inferred and the description is a fixed template.
func SchemaFromExamples(examples map[string]any) (map[string]RawParameter, error) {
	schema := make(map[string]RawParameter, len(examples))
	for _, name := range sortedKeys(examples) {
		kind, err := inferKind(examples[name])
		if err != nil {
			return nil, wrapValidationError("parameter "+name, err)
		}
		schema[name] = RawParameter{
			Type:        string(kind),
			Description: "Parameter: " + name,
		}
	}
	return schema, nil
}

func inferKind(value any) (ParameterKind, error) {
	switch value.(type) {
	case string:
		return KindString, nil
	case bool:
		return KindBoolean, nil
	}
	if _, ok := numericValue(value); ok {
		return KindNumber, nil
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray, nil
	case reflect.Map:
		return KindObject, nil
	default:
		return "", newValidationErrorf("unsupported parameter type %T", value)
	}
}
