package services

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator builds a validator that reports json field names so error
// maps match the wire format.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}
