package dto

import "strings"

// ValidationError is a single structural problem found in a transfer object.
type ValidationError struct {
	Field  string
	Value  any
	ErrStr string
}

func (v ValidationError) Error() string {
	if v.Field == "" {
		return v.ErrStr
	}
	return v.ErrStr + ": " + v.Field
}

type ValidationErrors []ValidationError

func (ves ValidationErrors) Error() string {
	s := make([]string, 0, len(ves))
	for _, ve := range ves {
		s = append(s, ve.Error())
	}
	return strings.Join(s, "; ")
}

func InQuotes(s string) string {
	return "'" + s + "'"
}

func ErrMissingRequiredAttribute(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "missing required attribute",
	}
}

func ErrValidationFailed(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "validation failed",
	}
}

func ErrUnsupportedPartitionType(attr string, value ...string) ValidationError {
	var errStr string
	if len(value) == 0 {
		errStr = "unsupported partition type"
	} else {
		errStr = "unsupported partition type " + InQuotes(value[0])
	}
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: errStr,
	}
}

func ErrInvalidLiteral(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "invalid literal; type must be 'literal' and dataType must be set",
	}
}

func ErrMismatchedFieldValues(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "identity partition must have one value per field name",
	}
}

func ErrUnexpectedAttribute(attr string, partitionType string) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  partitionType,
		ErrStr: "attribute not allowed for " + InQuotes(partitionType) + " partitions",
	}
}

func ErrEmptyList(attr string) ValidationError {
	return ValidationError{
		Field:  attr,
		ErrStr: "must not be empty",
	}
}

func ErrInvalidResponseCode(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "response code is not a success code",
	}
}
