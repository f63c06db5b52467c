// Package capability defines the external AI and delivery capabilities the
// pipeline consumes and the tagged result returned by every stage call.
package capability

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindTransient     ErrorKind = "transient"
	KindPermanent     ErrorKind = "permanent"
	KindInvalidOutput ErrorKind = "invalid_output"
)

// ErrInvalidOutput marks a provider response that could not be decoded into
// the expected structure. Providers wrap it; the adapter maps it to
// KindInvalidOutput.
var ErrInvalidOutput = errors.New("invalid capability output")

// Error is the failure half of a Result.
type Error struct {
	Kind  ErrorKind
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result is either Ok with a value or Err with a classified failure.
type Result[T any] struct {
	Value T
	Err   *Error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

func Fail[T any](stage Stage, kind ErrorKind, err error) Result[T] {
	return Result[T]{Err: &Error{Kind: kind, Stage: stage, Err: err}}
}

func (r Result[T]) IsOk() bool {
	return r.Err == nil
}

// Kind returns the failure kind, or an empty string for Ok results.
func (r Result[T]) Kind() ErrorKind {
	if r.Err == nil {
		return ""
	}
	return r.Err.Kind
}

// Classify maps a provider error onto an ErrorKind.
func Classify(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidOutput):
		return KindInvalidOutput
	case IsRetryable(err):
		return KindTransient
	default:
		return KindPermanent
	}
}
