package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidInput        = 4001
	CodeFormatMismatch      = 4002
	CodeDivisionByZero      = 4003
	CodeInvalidRoundUnit    = 4004
	CodeInvalidRequest      = 4005
	CodeComputationNotFound = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidInput is returned when a timestamp-like argument is missing
	// or cannot be resolved to a valid instant
	ErrInvalidInput = errors.New("invalid timestamp input")

	// ErrFormatMismatch is returned when a duration string does not conform
	// to the compiled format pattern in its entirety
	ErrFormatMismatch = errors.New("input does not match duration format")

	// ErrDivisionByZero is returned when a duration is divided by zero
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidRoundUnit is returned when a rounding unit is not one of
	// hour, minute or second
	ErrInvalidRoundUnit = errors.New("invalid rounding unit")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrComputationNotFound is returned when the requested computation doesn't exist
	ErrComputationNotFound = errors.New("computation not found")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrFormatMismatch):
		return CodeFormatMismatch
	case errors.Is(err, ErrDivisionByZero):
		return CodeDivisionByZero
	case errors.Is(err, ErrInvalidRoundUnit):
		return CodeInvalidRoundUnit
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrComputationNotFound):
		return CodeComputationNotFound
	default:
		return CodeInternalServer
	}
}

// InvalidInputError carries the offending timestamp-like value alongside
// the reason it could not be resolved
type InvalidInputError struct {
	Argument string
	Value    any
	Reason   string
}

// Error implements the error interface for InvalidInputError
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s value %v: %s", e.Argument, e.Value, e.Reason)
}

// Is checks if the target error is an ErrInvalidInput
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// LogFields returns a map of fields for structured logging
func (e *InvalidInputError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_input",
		"argument":   e.Argument,
		"value":      fmt.Sprintf("%v", e.Value),
		"reason":     e.Reason,
		"error_code": CodeInvalidInput,
	}
}

// NewInvalidInputError creates a new detailed invalid input error
func NewInvalidInputError(argument string, value any, reason string) error {
	return &InvalidInputError{
		Argument: argument,
		Value:    value,
		Reason:   reason,
	}
}

// FormatMismatchError reports a parse failure together with the input and
// the format it was matched against
type FormatMismatchError struct {
	Input  string
	Format string
}

// Error implements the error interface for FormatMismatchError
func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("input %q does not match format %q", e.Input, e.Format)
}

// Is checks if the target error is an ErrFormatMismatch
func (e *FormatMismatchError) Is(target error) bool {
	return target == ErrFormatMismatch
}

// LogFields returns a map of fields for structured logging
func (e *FormatMismatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "format_mismatch",
		"input":      e.Input,
		"format":     e.Format,
		"error_code": CodeFormatMismatch,
	}
}

// NewFormatMismatchError creates a new detailed format mismatch error
func NewFormatMismatchError(input, format string) error {
	return &FormatMismatchError{
		Input:  input,
		Format: format,
	}
}

// IsInvalidInputError checks if the error is an invalid input error
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsFormatMismatchError checks if the error is a format mismatch error
func IsFormatMismatchError(err error) bool {
	return errors.Is(err, ErrFormatMismatch)
}

// IsDivisionByZeroError checks if the error is a division by zero error
func IsDivisionByZeroError(err error) bool {
	return errors.Is(err, ErrDivisionByZero)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrComputationNotFound)
}
