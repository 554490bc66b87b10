// Package apperr defines the shared failure taxonomy. Expected validation
// failures never cross the core boundary as errors; everything else degrades
// to "operation did not take effect" with a classified kind the caller can
// report on.
package apperr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindStorage    Kind = "storage"
	KindNetwork    Kind = "network"
	KindPermission Kind = "permission"
	KindUnknown    Kind = "unknown"
)

// Error is a classified failure from a named operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Classify wraps err with a kind inferred from the underlying failure.
// Already-classified errors pass through unchanged.
func Classify(op string, err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, fs.ErrPermission) || os.IsPermission(err):
		return New(KindPermission, op, err)
	default:
		// Everything reaching this point came from a storage operation.
		return New(KindStorage, op, err)
	}
}

// KindOf extracts the kind from a classified error, KindUnknown otherwise.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}
