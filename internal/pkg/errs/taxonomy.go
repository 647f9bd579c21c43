package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrFatalInconsistency = errors.New("fatal inconsistency")
)

// ValidationError carries every rule an input broke, in the order they were
// detected. Callers render Messages as a list.
type ValidationError struct {
	Messages []string
}

// NewValidationError builds a ValidationError from ready-made messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// Validation collects the non-nil errors into a ValidationError. Joined errors
// are flattened so that each rule becomes its own message. Returns nil when
// every argument is nil.
func Validation(errList ...error) error {
	messages := make([]string, 0, len(errList))
	for _, err := range errList {
		messages = appendMessages(messages, err)
	}
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}

func appendMessages(messages []string, err error) []string {
	if err == nil {
		return messages
	}
	if v, ok := err.(*ValidationError); ok {
		return append(messages, v.Messages...)
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range joined.Unwrap() {
			messages = appendMessages(messages, inner)
		}
		return messages
	}
	return append(messages, err.Error())
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Messages, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConflictError reports a uniqueness, overlap or pricing rule violation.
// It is surfaced as a single message and never retried.
type ConflictError struct {
	Reason string
	Cause  error
}

func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

func NewConflictErrorWithCause(reason string, cause error) *ConflictError {
	return &ConflictError{Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrConflict, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.Reason)
}

func (e *ConflictError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrConflict}
	}
	return []error{ErrConflict, e.Cause}
}

// FatalInconsistencyError means a write that had to succeed did not, or the
// identity store and the domain store diverged. The request fails; the
// process keeps serving.
type FatalInconsistencyError struct {
	Operation string
	Cause     error
}

func NewFatalInconsistencyError(operation string, cause error) *FatalInconsistencyError {
	return &FatalInconsistencyError{Operation: operation, Cause: cause}
}

func (e *FatalInconsistencyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrFatalInconsistency, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrFatalInconsistency, e.Operation)
}

func (e *FatalInconsistencyError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrFatalInconsistency}
	}
	return []error{ErrFatalInconsistency, e.Cause}
}
