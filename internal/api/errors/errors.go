package errors

import (
	"fmt"
	"net/http"

	apperrors "lucidscript/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation      ErrorKind = "validation"
	KindNotFound        ErrorKind = "not_found"
	KindBadRequest      ErrorKind = "bad_request"
	KindPayloadTooLarge ErrorKind = "payload_too_large"
	KindInternal        ErrorKind = "internal"
)

// Client facing messages.
const (
	MsgNoInput         = "Provide a file or a YouTube URL."
	MsgEmptyTranscript = "No speech detected or empty transcript."
	MsgInvalidURL      = "YouTube URL must start with http:// or https://."
	MsgInvalidFilename = "Invalid filename."
	MsgFileNotFound    = "File not found."
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// FromPipelineError maps a transcription pipeline error to its API form.
// Input problems are 400s. Everything else is reported as a failed
// transcription.
func FromPipelineError(err error) *APIError {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}

	switch {
	case apperrors.Is(err, apperrors.ErrNoInput):
		return NewBadRequestError(MsgNoInput)
	case apperrors.Is(err, apperrors.ErrEmptyTranscript):
		return NewBadRequestError(MsgEmptyTranscript)
	case apperrors.Is(err, apperrors.ErrInvalidURL):
		return NewBadRequestError(MsgInvalidURL)
	default:
		return NewInternalError("Transcription failed: " + err.Error())
	}
}
