package model

import "fmt"

// ErrorCode represents a structured API error code.
type ErrorCode string

const (
	ErrValidation ErrorCode = "VALIDATION_ERROR"
	ErrNotFound   ErrorCode = "NOT_FOUND"
	ErrInternal   ErrorCode = "INTERNAL_ERROR"
)

// Machine-readable reasons attached to FieldError, so clients can react to a
// rejected input without parsing the human message.
const (
	ReasonNotAnInteger     = "not_an_integer"
	ReasonOutOfRange       = "out_of_range"
	ReasonEmptyQueue       = "empty_queue"
	ReasonSampleTooLarge   = "sample_count_too_large"
	ReasonUnknownPolicy    = "unknown_policy"
	ReasonUnknownDirection = "unknown_direction"
)

// APIError is a structured error returned by the GoSeek API.
type APIError struct {
	Code    ErrorCode    `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// FieldError describes a validation error on a specific input field.
type FieldError struct {
	Field   string `json:"field"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

// NewValidationError creates an APIError with validation details.
func NewValidationError(msg string, details ...FieldError) *APIError {
	return &APIError{Code: ErrValidation, Message: msg, Details: details}
}

// NewNotFoundError creates a NOT_FOUND APIError.
func NewNotFoundError(resource, id string) *APIError {
	return &APIError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s '%s' not found", resource, id),
	}
}
