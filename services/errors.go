package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// NotFoundError reports that a referenced entity id does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// ConflictError reports a uniqueness violation (duplicate SKU or
// category name).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ValidationError reports input rejected before it reached the store.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Validation failed"
}

func notFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

func conflict(message string) error {
	return &ConflictError{Message: message}
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// validationError translates validator output into a field-keyed
// ValidationError.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Message: err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "is required"
		case "gt":
			fields[fe.Field()] = "must be greater than " + fe.Param()
		case "gte", "min":
			fields[fe.Field()] = "must be at least " + fe.Param()
		case "lte", "max":
			fields[fe.Field()] = "must be at most " + fe.Param()
		case "email":
			fields[fe.Field()] = "must be a valid email address"
		default:
			fields[fe.Field()] = "is invalid"
		}
	}
	return &ValidationError{Fields: fields}
}
