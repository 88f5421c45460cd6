package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found
// or does not belong to the requesting owner.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the operation is not allowed for the resource in its current state.
var ErrForbidden = errors.New("operation forbidden")

// ErrConfigurationMissing indicates that required reference data (a status or type code)
// is absent. This is a deployment/seeding defect, not bad user input.
var ErrConfigurationMissing = errors.New("required reference data missing")

// ErrRenderFailure indicates that the document renderer could not produce output.
var ErrRenderFailure = errors.New("report rendering failed")

// AppError pairs an HTTP status code and a client-facing message with the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
