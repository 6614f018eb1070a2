package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Request construction errors
const (
	// ErrCodeInvalidURL indicates the assembled request address could not be parsed.
	ErrCodeInvalidURL ErrorCode = "INVALID_URL"
	// ErrCodeSerialization indicates the outgoing body could not be encoded.
	ErrCodeSerialization ErrorCode = "SERIALIZATION_ERROR"
)

// Response handling errors
const (
	// ErrCodeDeserialization indicates the response body could not be decoded.
	ErrCodeDeserialization ErrorCode = "DESERIALIZATION_ERROR"
	// ErrCodeNetwork indicates a response with a 4xx or 5xx status.
	ErrCodeNetwork ErrorCode = "NETWORK_ERROR"
)

// Transport errors
const (
	// ErrCodeUnableToSendRequest indicates the transport failed before a response was received.
	ErrCodeUnableToSendRequest ErrorCode = "UNABLE_TO_SEND_REQUEST"
)

// ErrCodeUnknown is the catch-all for configuration and build failures.
const ErrCodeUnknown ErrorCode = "UNKNOWN"

// String returns the code as a plain string.
func (c ErrorCode) String() string { return string(c) }
