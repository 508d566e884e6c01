package errors

import (
	"fmt"

	"cyberrisk/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeFor(err),
		Message: message,
		Cause:   err,
	}
}

// GetCode returns the error code if it's an AppError, otherwise the
// code mapped from the domain sentinel taxonomy.
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeFor(err)
}

// Predefined error codes
const (
	CodeConfigInvalid     = "CONFIG_INVALID"
	CodeDatabaseError     = "DATABASE_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
	CodeParameterError    = "PARAMETER_ERROR"
	CodeDegenerateInput   = "DEGENERATE_INPUT"
	CodeRegressionError   = "REGRESSION_ERROR"
	CodeOptimizationError = "OPTIMIZATION_ERROR"
)

// CodeFor maps a domain error to its application error code.
func CodeFor(err error) string {
	switch {
	case err == nil:
		return ""
	case core.IsParameterError(err):
		return CodeParameterError
	case core.IsDegenerateInputError(err):
		return CodeDegenerateInput
	case core.IsRegressionError(err):
		return CodeRegressionError
	case core.IsOptimizationError(err):
		return CodeOptimizationError
	case core.IsNotFoundError(err):
		return CodeNotFound
	default:
		return CodeInternalError
	}
}

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func DatabaseError(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeDatabaseError,
		Message: message,
		Cause:   cause,
	}
}
