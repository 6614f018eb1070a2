package validation

import (
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/kbukum/gofetch/codec"
	"github.com/kbukum/gofetch/errors"
)

// Validator collects validation errors.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Validate returns an UNKNOWN error listing every collected failure, or nil.
func (v *Validator) Validate() error {
	if !v.HasErrors() {
		return nil
	}

	messages := make([]string, len(v.errors))
	for i, e := range v.errors {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}

	return errors.Unknown(strings.Join(messages, "; "), nil).
		WithDetail("fields", v.errors)
}

// HeaderName checks that value is a valid HTTP header field name.
func (v *Validator) HeaderName(field, value string) *Validator {
	if !httpguts.ValidHeaderFieldName(value) {
		v.AddError(field, fmt.Sprintf("%q is not a valid header name", value))
	}
	return v
}

// HeaderValue checks that value is a valid HTTP header field value.
func (v *Validator) HeaderValue(field, value string) *Validator {
	if !httpguts.ValidHeaderFieldValue(value) {
		v.AddError(field, "is not a valid header value")
	}
	return v
}

// Headers checks every name and value of a header map.
func (v *Validator) Headers(field string, headers map[string]string) *Validator {
	for name, value := range headers {
		v.HeaderName(field, name)
		v.HeaderValue(field+"."+name, value)
	}
	return v
}

// ContentType checks that a set content type is one of the supported
// variants. A nil ct means the value was not set.
func (v *Validator) ContentType(field string, ct *codec.ContentType) *Validator {
	if ct != nil && !ct.Valid() {
		v.AddError(field, "must be one of: "+strings.Join(knownContentTypes(), ", "))
	}
	return v
}
