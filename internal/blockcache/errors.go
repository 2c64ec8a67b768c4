package blockcache

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by the Service wraps exactly one of
// them and can be matched with errors.Is.
var (
	// ErrConfigurationMissing indicates the provider credential is not set.
	ErrConfigurationMissing = errors.New("configuration missing")

	// ErrUpstreamUnavailable indicates a transport failure talking to the
	// provider (connection error or non-2xx status).
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamRejected indicates the provider answered with an error object.
	ErrUpstreamRejected = errors.New("upstream rejected request")

	// ErrNotFound indicates the provider has no block for the requested number.
	ErrNotFound = errors.New("block not found")

	// ErrMalformedInput indicates the caller supplied an invalid block or range.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnexpected marks any failure that does not fit the kinds above.
	ErrUnexpected = errors.New("unexpected error")
)

// Error is a classified failure. Its Error method returns the user-facing
// message only; the kind and the underlying cause are reachable through
// errors.Is and errors.As.
type Error struct {
	Kind    error  // one of the Err* kinds of this package
	Message string // user-facing message
	Err     error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// NewError builds a classified error.
func NewError(kind error, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     cause,
	}
}

// Unexpected wraps err as an ErrUnexpected failure, unless it is already a
// classified *Error.
func Unexpected(err error) error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return err
	}

	return NewError(ErrUnexpected, fmt.Sprintf("Unexpected error: %s", err.Error()), err)
}

// KindOf returns the kind carried by err, or ErrUnexpected when err is not a
// classified failure.
func KindOf(err error) error {
	var classified *Error
	if errors.As(err, &classified) && classified.Kind != nil {
		return classified.Kind
	}

	return ErrUnexpected
}

// kindLabel names a kind for metrics and logs.
func kindLabel(kind error) string {
	switch kind {
	case ErrConfigurationMissing:
		return "configuration_missing"
	case ErrUpstreamUnavailable:
		return "upstream_unavailable"
	case ErrUpstreamRejected:
		return "upstream_rejected"
	case ErrNotFound:
		return "not_found"
	case ErrMalformedInput:
		return "malformed_input"
	default:
		return "unexpected"
	}
}
