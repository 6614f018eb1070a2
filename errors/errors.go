package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrInvalidEncoding is the cause attached to deserialization errors raised
// when a text-only codec receives bytes that are not valid UTF-8.
var ErrInvalidEncoding = stderrors.New("response body does not contain valid utf-8")

// Error is the unified gofetch error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Codec names the codec that failed (serialization/deserialization errors).
	Codec string `json:"codec,omitempty"`
	// URL is the offending address (invalid URL errors).
	URL string `json:"url,omitempty"`
	// StatusCode is the response status (network errors, 0 otherwise).
	StatusCode int `json:"status_code,omitempty"`
	// Headers are the response headers (network errors).
	Headers map[string]string `json:"headers,omitempty"`
	// Body is the best-effort response body text (network errors).
	Body string `json:"body,omitempty"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// --- Constructors ---

// InvalidURL creates an error for an address that could not be parsed.
func InvalidURL(raw string, cause error) *Error {
	return &Error{
		Code:    ErrCodeInvalidURL,
		Message: fmt.Sprintf("invalid url %q", raw),
		URL:     raw,
		Cause:   cause,
	}
}

// Serialization creates an error for a body the named codec rejected.
func Serialization(codec string, cause error) *Error {
	return &Error{
		Code:    ErrCodeSerialization,
		Message: fmt.Sprintf("%s codec could not encode request body", codec),
		Codec:   codec,
		Cause:   cause,
	}
}

// Deserialization creates an error for a response body the named codec rejected.
func Deserialization(codec string, cause error) *Error {
	return &Error{
		Code:    ErrCodeDeserialization,
		Message: fmt.Sprintf("%s codec could not decode response body", codec),
		Codec:   codec,
		Cause:   cause,
	}
}

// InvalidEncoding creates a deserialization error for non UTF-8 input.
func InvalidEncoding(codec string) *Error {
	return &Error{
		Code:    ErrCodeDeserialization,
		Message: fmt.Sprintf("%s codec requires utf-8 input", codec),
		Codec:   codec,
		Cause:   ErrInvalidEncoding,
	}
}

// UnableToSendRequest creates an error for a transport-level failure.
func UnableToSendRequest(cause error) *Error {
	msg := "unable to send request"
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{
		Code:    ErrCodeUnableToSendRequest,
		Message: msg,
		Cause:   cause,
	}
}

// Network creates an error for a response with a client or server error status.
func Network(statusCode int, headers map[string]string, body []byte) *Error {
	return &Error{
		Code:       ErrCodeNetwork,
		Message:    fmt.Sprintf("HTTP %d %s", statusCode, http.StatusText(statusCode)),
		StatusCode: statusCode,
		Headers:    headers,
		Body:       string(body),
	}
}

// Unknown creates a catch-all error for configuration and build failures.
func Unknown(message string, cause error) *Error {
	return &Error{
		Code:    ErrCodeUnknown,
		Message: message,
		Cause:   cause,
	}
}

// --- Predicates ---

// As converts an error to an *Error if possible.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HasCode checks if err is an *Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	e, ok := As(err)
	return ok && e.Code == code
}

// IsInvalidURL checks if an error is an invalid URL error.
func IsInvalidURL(err error) bool { return HasCode(err, ErrCodeInvalidURL) }

// IsSerialization checks if an error is a serialization error.
func IsSerialization(err error) bool { return HasCode(err, ErrCodeSerialization) }

// IsDeserialization checks if an error is a deserialization error.
func IsDeserialization(err error) bool { return HasCode(err, ErrCodeDeserialization) }

// IsInvalidEncoding checks if an error is a deserialization error caused by non UTF-8 input.
func IsInvalidEncoding(err error) bool {
	return IsDeserialization(err) && stderrors.Is(err, ErrInvalidEncoding)
}

// IsUnableToSendRequest checks if an error is a transport failure.
func IsUnableToSendRequest(err error) bool { return HasCode(err, ErrCodeUnableToSendRequest) }

// IsNetwork checks if an error is a 4xx/5xx response error.
func IsNetwork(err error) bool { return HasCode(err, ErrCodeNetwork) }

// IsUnknown checks if an error is a configuration or build failure.
func IsUnknown(err error) bool { return HasCode(err, ErrCodeUnknown) }
