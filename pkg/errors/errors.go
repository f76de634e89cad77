package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"
	"github.com/kchelvan55/customer-admin-app-sub000/domain/shared"
)

// ErrorCode is the stable machine-readable code returned to API
// clients. Codes are part of the contract; messages are not.
type ErrorCode string

const (
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest     ErrorCode = "BAD_REQUEST"
	CodeForbidden      ErrorCode = "FORBIDDEN"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeConflict       ErrorCode = "CONFLICT"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"
	CodeValidation     ErrorCode = "VALIDATION_ERROR"

	CodeOrderNotFound           ErrorCode = "ORDER_NOT_FOUND"
	CodeOrderNotModifiable      ErrorCode = "ORDER_NOT_MODIFIABLE"
	CodeInvalidStatusTransition ErrorCode = "INVALID_STATUS_TRANSITION"
	CodeBillingConflict         ErrorCode = "BILLING_CONFLICT"
	CodePriorityConflict        ErrorCode = "PRIORITY_CONFLICT"
	CodeOutsideBillingWindow    ErrorCode = "OUTSIDE_BILLING_WINDOW"
	CodeRequestNotFound         ErrorCode = "REQUEST_NOT_FOUND"
	CodeRequestAlreadyResolved  ErrorCode = "REQUEST_ALREADY_RESOLVED"
	CodeCreditLimitExceeded     ErrorCode = "CREDIT_LIMIT_EXCEEDED"
)

// AppError carries a code for the client and the wrapped cause for the
// logs.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatusCode maps the error code to a response status.
func (e *AppError) HTTPStatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidation:
		return http.StatusBadRequest
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodeOrderNotFound, CodeRequestNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeBillingConflict, CodePriorityConflict, CodeRequestAlreadyResolved:
		return http.StatusConflict
	case CodeTooManyRequest:
		return http.StatusTooManyRequests
	case CodeOrderNotModifiable, CodeInvalidStatusTransition, CodeOutsideBillingWindow, CodeCreditLimitExceeded:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// New creates an error with just a code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func Forbidden(message string) *AppError {
	return New(CodeForbidden, message)
}

func Conflict(message string) *AppError {
	return New(CodeConflict, message)
}

func TooManyRequests(message string) *AppError {
	return New(CodeTooManyRequest, message)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// AsAppError converts any error to an AppError, wrapping unknown
// errors as internal.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeInternal, "internal server error")
}

// MapDomainError translates a domain-layer error into the API error
// taxonomy. Matching is by sentinel, never by message text.
func MapDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		return Wrap(err, CodeOrderNotFound, err.Error())
	case errors.Is(err, order.ErrRequestNotFound), errors.Is(err, order.ErrItemNotFound):
		return Wrap(err, CodeRequestNotFound, err.Error())
	case errors.Is(err, order.ErrRequestAlreadyResolved):
		return Wrap(err, CodeRequestAlreadyResolved, err.Error())
	case errors.Is(err, order.ErrOrderNotModifiable):
		return Wrap(err, CodeOrderNotModifiable, err.Error())
	case errors.Is(err, order.ErrInvalidStatusTransition):
		return Wrap(err, CodeInvalidStatusTransition, err.Error())
	case errors.Is(err, order.ErrBillingConflict):
		return Wrap(err, CodeBillingConflict, err.Error())
	case errors.Is(err, order.ErrEmptyOrderItems),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidDecision):
		return Wrap(err, CodeValidation, err.Error())
	case errors.Is(err, shared.ErrNotFound):
		return Wrap(err, CodeNotFound, err.Error())
	case errors.Is(err, shared.ErrConflict):
		return Wrap(err, CodeConflict, err.Error())
	case errors.Is(err, shared.ErrInvalidInput):
		return Wrap(err, CodeValidation, err.Error())
	case errors.Is(err, shared.ErrForbidden):
		return Wrap(err, CodeForbidden, err.Error())
	default:
		return Wrap(err, CodeInternal, err.Error())
	}
}
