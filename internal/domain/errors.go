package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies every failure the tool can surface. Kinds propagate
// unchanged from where they are detected to the invocation boundary.
type ErrorKind int

const (
	// KindNotFound means the user (or another resource) does not exist.
	KindNotFound ErrorKind = iota + 1
	// KindRateLimited means the comment source is throttling us. Not
	// retried automatically; the error may carry a backoff hint.
	KindRateLimited
	// KindTransientNetwork covers connectivity failures and per-call
	// timeouts. The whole invocation may be retried manually.
	KindTransientNetwork
	// KindProvider is an LLM API failure, surfaced verbatim and never
	// retried to avoid unintended billing.
	KindProvider
	// KindPayloadTooLarge means the serialized prompt exceeded the
	// provider's accepted size.
	KindPayloadTooLarge
	// KindConfiguration means a required credential or setting is missing.
	KindConfiguration
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindRateLimited:
		return "rate limited"
	case KindTransientNetwork:
		return "network error"
	case KindProvider:
		return "provider error"
	case KindPayloadTooLarge:
		return "payload too large"
	case KindConfiguration:
		return "configuration error"
	default:
		return "unknown error"
	}
}

// Error is the single error type crossing package boundaries.
type Error struct {
	Kind    ErrorKind
	Message string

	// RetryAfter is a backoff hint for KindRateLimited when the source
	// provided one; zero otherwise.
	RetryAfter time.Duration

	cause error
}

func (e *Error) Error() string {
	if e.Message == "" {
		if e.cause != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.cause)
		}
		return e.Kind.String()
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// NewError builds a domain error with a formatted message.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError attaches a kind and message to an underlying cause.
func WrapError(kind ErrorKind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// Kind extracts the ErrorKind from err, or 0 if err is not a domain error.
func Kind(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return Kind(err) == kind
}
