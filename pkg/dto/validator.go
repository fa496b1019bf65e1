package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// V returns the shared validator used by all transfer objects.
func V() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonTag)
		_ = v.RegisterValidation("partitionTypeValidator", partitionTypeValidator)
		_ = v.RegisterValidation("literalTypeValidator", literalTypeValidator)
		validate = v
	})
	return validate
}

// jsonTag returns the JSON name of a field, or the field name if it has none.
func jsonTag(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	return strings.Split(tag, ",")[0]
}

func partitionTypeValidator(fl validator.FieldLevel) bool {
	switch PartitionType(fl.Field().String()) {
	case PartitionTypeIdentity, PartitionTypeRange, PartitionTypeList:
		return true
	}
	return false
}

func literalTypeValidator(fl validator.FieldLevel) bool {
	return fl.Field().String() == literalType
}

// structErrors runs the validator over s and converts its complaints into
// ValidationErrors keyed by JSON field path relative to prefix.
func structErrors(s any, prefix string) ValidationErrors {
	var ves ValidationErrors
	err := V().Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return append(ves, ErrValidationFailed(prefix, err.Error()))
	}

	for _, e := range ve {
		field := fieldPath(prefix, e.Namespace())
		switch e.Tag() {
		case "required":
			ves = append(ves, ErrMissingRequiredAttribute(field))
		case "partitionTypeValidator":
			val, _ := e.Value().(PartitionType)
			ves = append(ves, ErrUnsupportedPartitionType(field, string(val)))
		case "literalTypeValidator":
			ves = append(ves, ErrInvalidLiteral(field, e.Value()))
		default:
			ves = append(ves, ErrValidationFailed(field, e.Value()))
		}
	}
	return ves
}

// fieldPath drops the struct name the validator puts in front of every namespace.
func fieldPath(prefix, ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if prefix == "" {
		return ns
	}
	return prefix + "." + ns
}

func toError(msg string, ves ValidationErrors) error {
	if len(ves) == 0 {
		return nil
	}
	return catalogerrors.ErrValidation.MsgErr(msg, ves)
}
