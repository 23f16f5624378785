package rawjson

import "fmt"

// ParseError reports a field that is missing or has the wrong shape.
type ParseError struct {
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// IntegerParseError reports a numeric string that does not hold an unsigned integer.
type IntegerParseError struct {
	Field string
	Value string
	Err   error
}

func (e *IntegerParseError) Error() string {
	return fmt.Sprintf("field %q: %q is not an unsigned integer: %v", e.Field, e.Value, e.Err)
}

func (e *IntegerParseError) Unwrap() error { return e.Err }

// TimeParseError reports a timestamp that does not match the expected layout.
type TimeParseError struct {
	Field  string
	Value  string
	Layout string
	Err    error
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("field %q: %q does not match layout %s: %v", e.Field, e.Value, e.Layout, e.Err)
}

func (e *TimeParseError) Unwrap() error { return e.Err }

func missing(field string) error {
	return &ParseError{Field: field, Reason: "not present"}
}

func wrongType(field, want string, value any) error {
	return &ParseError{Field: field, Reason: fmt.Sprintf("is not %s (got %s)", want, describe(value))}
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any, Object:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "bool"
	default:
		return "number"
	}
}
