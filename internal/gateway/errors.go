package gateway

import (
	"errors"
	"fmt"
)

// FailureKind classifies a failed exchange with the planning service. Every error
// returned by this package (and by workflow-level validation) maps to
// exactly one kind, so callers can pick user-facing messaging uniformly.
type FailureKind string

const (
	// KindUnreachable: the exchange could not complete at all
	// (connectivity, timeout).
	KindUnreachable FailureKind = "network_unreachable"

	// KindRejected: the service responded with a non-success status.
	KindRejected FailureKind = "server_rejected"

	// KindDecode: the response body could not be parsed into the
	// expected shape.
	KindDecode FailureKind = "decode_failed"

	// KindLocalValidation: the request was refused client-side before
	// any exchange was attempted.
	KindLocalValidation FailureKind = "local_validation"

	// KindNone: not a gateway failure (nil or unrelated error).
	KindNone FailureKind = ""
)

var (
	// ErrUnreachable indicates the planning service could not be reached.
	ErrUnreachable = errors.New("planning service unreachable")

	// ErrDecode indicates the service response could not be decoded.
	ErrDecode = errors.New("unexpected response from planning service")

	// ErrLocalValidation is the base error for client-side refusals.
	ErrLocalValidation = errors.New("invalid request")
)

// RejectedError carries the structured error payload of a non-success
// response. Message holds the service-supplied detail when present.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "planning service rejected the request"
}

// ErrLocalValidationf formats a client-side refusal wrapping
// ErrLocalValidation so it classifies as KindLocalValidation.
func ErrLocalValidationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrLocalValidation, fmt.Sprintf(format, args...))
}

// Kind maps an error from this package to its failure kind.
func Kind(err error) FailureKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrUnreachable):
		return KindUnreachable
	case errors.Is(err, ErrDecode):
		return KindDecode
	case errors.Is(err, ErrLocalValidation):
		return KindLocalValidation
	}
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return KindRejected
	}
	return KindNone
}

// Message returns the human-readable text for a failed exchange, preferring
// the service-supplied message for rejections.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Error()
	}
	return err.Error()
}
