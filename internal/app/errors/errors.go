package errors

import (
	stderrors "errors"
	"fmt"
)

// Common error types
var (
	// Input errors
	ErrNoInput         = New("provide a file or a YouTube URL")
	ErrEmptyTranscript = New("no speech detected or empty transcript")
	ErrInvalidFilename = New("invalid filename")
	ErrInvalidURL      = New("URL must start with http:// or https://")

	// Configuration errors
	ErrMissingConfig = New("configuration is required")
	ErrInvalidConfig = New("invalid configuration")

	// Provider errors
	ErrProviderNotFound = New("provider not found")
	ErrBinaryNotFound   = New("binary not found")

	// External tool errors
	ErrConversionFailed  = New("audio conversion failed")
	ErrDownloadFailed    = New("download failed")
	ErrDiarizationFailed = New("diarization failed")

	// Storage errors
	ErrFileNotFound   = New("file not found")
	ErrRecordNotFound = New("record not found")
	ErrCacheMiss      = New("cache miss")
	ErrQueryFailed    = New("query failed")
	ErrInsertFailed   = New("insert failed")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Tag marks err as an instance of kind while keeping its message chain.
// errors.Is(Tag(kind, err), kind) is true.
func Tag(kind *Error, err error) error {
	if err == nil {
		return nil
	}
	return &tagged{kind: kind, cause: err}
}

type tagged struct {
	kind  *Error
	cause error
}

func (t *tagged) Error() string {
	return fmt.Sprintf("%s: %v", t.kind.message, t.cause)
}

func (t *tagged) Unwrap() []error {
	return []error{t.kind, t.cause}
}

// NotFound returns an error for items that were not found
func NotFound(itemType string, identifier string) error {
	return Wrapf(ErrRecordNotFound, "%s %s", itemType, identifier)
}
