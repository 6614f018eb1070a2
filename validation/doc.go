// Package validation checks gofetch configuration and header input.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Failures are reported as
// UNKNOWN errors from the errors package, with the offending fields listed
// under the "fields" detail.
//
// # Struct Tag Validation
//
// Besides the stock validator tags, three rules are registered:
//
//   - content_type: one of the MIME strings the codec package knows
//   - header_name: a valid HTTP header field name
//   - header_value: a valid HTTP header field value
//
//	type Config struct {
//	    Accept  string            `validate:"omitempty,content_type"`
//	    Headers map[string]string `validate:"dive,keys,header_name,endkeys,header_value"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.HeaderName("header", name).HeaderValue(name, value)
//	err := v.Validate()
package validation
