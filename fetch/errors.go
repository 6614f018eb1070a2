package fetch

import "github.com/kbukum/gofetch/errors"

// Error is the error type returned by every fetch operation.
type Error = errors.Error

// Error predicates, re-exported so callers rarely need the errors package.
var (
	IsInvalidURL          = errors.IsInvalidURL
	IsSerialization       = errors.IsSerialization
	IsDeserialization     = errors.IsDeserialization
	IsInvalidEncoding     = errors.IsInvalidEncoding
	IsUnableToSendRequest = errors.IsUnableToSendRequest
	IsNetwork             = errors.IsNetwork
	IsUnknown             = errors.IsUnknown
	AsError               = errors.As
)
