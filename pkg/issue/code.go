package issue

// Code classifies a validation failure. Codes are stable identifiers:
// consumers may switch on them to build their own messages.
type Code string

const (
	// CodeInvalidType reports a runtime type-tag mismatch between the input
	// value and the schema's expectation.
	CodeInvalidType Code = "invalid_type"

	// CodeInvalidEnumValue reports a value outside an enum's allowed set.
	CodeInvalidEnumValue Code = "invalid_enum_value"

	// CodeInvalidFunctionArity reports a call with the wrong number of
	// arguments. The user function is never invoked when this is raised.
	CodeInvalidFunctionArity Code = "invalid_function_arity"

	// CodeInvalidFunctionArgument reports one invalid positional argument.
	// Detail from the argument's own schema is nested under Issue.Issues.
	CodeInvalidFunctionArgument Code = "invalid_function_argument"

	// CodeInvalidFunctionReturn reports a return value rejected by the
	// declared output schema, on either the synchronous or future path.
	CodeInvalidFunctionReturn Code = "invalid_function_return"

	// CodeRequired reports a declared object field missing from the input.
	CodeRequired Code = "required"

	// CodeUnknownKey reports a key not declared on a strict object.
	CodeUnknownKey Code = "unknown_key"

	// CodeTooSmall and CodeTooBig report length or range constraint
	// violations.
	CodeTooSmall Code = "too_small"
	CodeTooBig   Code = "too_big"

	// CodeInvalidFormat reports a string that does not match the schema's
	// pattern.
	CodeInvalidFormat Code = "invalid_format"

	// CodeCustom reports a failed user-supplied refinement.
	CodeCustom Code = "custom"
)
