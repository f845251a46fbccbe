package errors

// invalid builds a ValidationError whose message names the offending value
// when one is given. Hint, if any, follows the message after a semicolon.
func invalid(attr, msg, hint string, value []string) ValidationError {
	s := msg
	if len(value) > 0 {
		s += " " + InQuotes(value[0])
	}
	if hint != "" {
		s += "; " + hint
	}
	return ValidationError{Field: attr, Value: value, ErrStr: s}
}

func ErrMissingRequiredAttribute(attr string, value ...any) ValidationError {
	return ValidationError{Field: attr, Value: value, ErrStr: "missing required attribute"}
}

func ErrValidationFailed(attr string, value ...any) ValidationError {
	return ValidationError{Field: attr, Value: value, ErrStr: "validation failed"}
}

func ErrInvalidFieldSchema(attr string, value ...any) ValidationError {
	return ValidationError{Field: attr, Value: value, ErrStr: "invalid schema"}
}

func ErrInvalidNameFormat(attr string, value ...string) ValidationError {
	return invalid(attr, "invalid name format", "allowed characters: [A-Za-z0-9_-]", value)
}

func ErrInvalidRouteToken(attr string, value ...string) ValidationError {
	return invalid(attr, "invalid route token", "segments of [A-Za-z0-9_-] separated by '/'", value)
}

func ErrUnsupportedKind(attr string, value ...string) ValidationError {
	return invalid(attr, "unsupported kind", "", value)
}

func ErrUnsupportedScheme(attr string, value ...string) ValidationError {
	return invalid(attr, "unsupported classification scheme", "", value)
}

func ErrInvalidClassification(attr string, value ...string) ValidationError {
	return invalid(attr, "invalid classification", "", value)
}

func ErrInvalidColor(attr string, value ...string) ValidationError {
	return ValidationError{Field: attr, Value: value, ErrStr: "invalid color; expected #RRGGBB"}
}
