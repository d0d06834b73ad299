// Package funcall validates and dispatches calls to named functions
// described by a flat parameter-kind schema, as the tool-calling layer of a
// language-model integration.
//
// # Overview
//
// An LLM names a function and supplies an argument map. This package checks
// those arguments against the function's declared schema before the
// underlying Go callable ever runs, retries transient failures, and keeps a
// plain-text listing of registered functions ready for inclusion in the
// model prompt.
//
// Pipeline: FunctionDefinition → Registry (validate definition, build
// schema) → Caller.Call (validate arguments → invoke with bounded retry) →
// result or terminal error.
//
// # Key concepts
//
//   - Six parameter kinds: string, number, boolean, array, object, enum.
//     Arrays and objects nest recursively; nested definitions are
//     materialized lazily when a value of that branch is validated.
//   - Closed top-level parameter set: unknown argument names fail a call,
//     while unlisted properties inside nested objects pass through.
//   - Self-correction: ValidationError messages name the offending
//     parameter, value, and constraint so they can be sent back to the LLM.
//   - Bounded retry: a call performs at most N invocation attempts (first
//     try included, no backoff); the terminal InvocationError wraps only the
//     last failure.
//
// See ParameterSchema, FunctionSchema, Registry, and Caller for the core
// types, and SchemaFromExamples for inferring a definition from example
// values.
//
// # Example
//
//	def := funcall.FunctionDefinition{
//	    Name:        "get_weather",
//	    Description: "Get the current weather for a location",
//	    Parameters: map[string]funcall.RawParameter{
//	        "location": {Type: "string", Description: "City name"},
//	    },
//	    Required: []string{"location"},
//	}
//	reg := funcall.NewRegistry()
//	caller := funcall.NewCaller(reg)
//	if err := caller.Register("get_weather", getWeather, def); err != nil { ... }
//	res, err := caller.Call(ctx, "get_weather", map[string]any{"location": "Moscow"})
package funcall
