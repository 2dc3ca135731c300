package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string // Error code (e.g., INVALID_INPUT)
	Message    string // User-friendly message
	HTTPStatus int    // HTTP status code
	Details    any    // Optional payload rendered next to the message
	Err        error  // Wrapped original error (optional)

	origin *AppError // sentinel this copy was derived from
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches copies made with WithMessage, WithDetails or WithCause against
// the sentinel they came from. Two sentinels sharing a code stay distinct.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || t == nil {
		return false
	}
	return e.root() == t.root()
}

func (e *AppError) root() *AppError {
	if e.origin != nil {
		return e.origin
	}
	return e
}

func (e *AppError) derive() *AppError {
	cp := *e
	cp.origin = e.root()
	return &cp
}

// WithMessage returns a copy carrying a different user-facing message.
func (e *AppError) WithMessage(message string) *AppError {
	cp := e.derive()
	cp.Message = message
	return cp
}

// WithDetails returns a copy carrying details for the response body.
func (e *AppError) WithDetails(details any) *AppError {
	cp := e.derive()
	cp.Details = details
	return cp
}

// WithCause returns a copy wrapping err, for logging and errors.As.
func (e *AppError) WithCause(err error) *AppError {
	cp := e.derive()
	cp.Err = err
	return cp
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// HTTPError is the rendered form of any error returned by a service.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP flattens err into an HTTPError. Errors that are not AppErrors are
// reported as internal errors without leaking their text.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
}

func RequiredField(field string) *AppError {
	return New(CodeValidation, field+" is required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeValidation, field+" is invalid", http.StatusBadRequest)
}
