package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for boundary-level reporting
type Kind string

const (
	KindValidation            Kind = "validation"
	KindNotFound              Kind = "not_found"
	KindProvider              Kind = "provider"
	KindCapabilityUnavailable Kind = "capability_unavailable"
	KindFormat                Kind = "format"
	KindPersistence           Kind = "persistence"
)

// Error is a kind-tagged error. All failures crossing a component boundary
// are wrapped in one so callers can classify without string matching.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a kind-tagged error from a format string
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap tags an existing error with a kind. Returns nil if err is nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of an error, or an empty Kind for untagged errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
