/*
Package shared - domain-layer building blocks shared by all subdomains.

Error design:
1. The domain layer defines sentinel errors for type-safe errors.Is() checks
2. DomainError captures the stack at creation time but formats it lazily
3. Domain errors carry no transport concepts such as HTTP status codes
4. Only the standard library is used here
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Sentinel errors used with errors.Is() to classify failures.
var (
	// ErrNotFound - resource does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict - resource conflict (mutual exclusion, unique constraint)
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput - input failed validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden - the action is not allowed in the current state
	ErrForbidden = errors.New("forbidden")
)

// DomainError is a structured error carrying business context and the
// stack of its creation point. Supports errors.Is() and errors.As().
type DomainError struct {
	// Err is the underlying sentinel error, used by errors.Is()
	Err error

	// Entity is the name of the entity the error occurred on (e.g. "order")
	Entity string

	// Message is a human-readable description
	Message string

	// Field optionally names the offending field (validation errors)
	Field string

	// stack holds raw frames captured at creation, formatted on demand
	stack []uintptr
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap supports errors.Is() and errors.As() through the error chain.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Stack formats the captured stack on demand (only when logging).
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// CaptureStack captures the current call stack (exported for subdomain packages).
// skip: number of frames to skip (usually 3: Callers, CaptureStack, NewXxxError).
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack formats stack frames into strings, filtering runtime
// internals and returning at most 10 frames.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// NewNotFoundError creates a "not found" domain error.
func NewNotFoundError(entity string) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: entity + " not found",
		stack:   CaptureStack(3),
	}
}

// NewConflictError creates a "conflict" domain error.
func NewConflictError(entity, message string) error {
	return &DomainError{
		Err:     ErrConflict,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// NewValidationError creates a "validation failed" domain error.
func NewValidationError(entity, field, reason string) error {
	return &DomainError{
		Err:     ErrInvalidInput,
		Entity:  entity,
		Field:   field,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// NewForbiddenError creates a "forbidden" domain error.
func NewForbiddenError(entity, reason string) error {
	return &DomainError{
		Err:     ErrForbidden,
		Entity:  entity,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// Stacker is implemented by errors that can provide a formatted stack.
// The API layer uses it to extract stacks uniformly.
type Stacker interface {
	Stack() []string
}
