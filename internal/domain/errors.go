package domain

import "errors"

// Domain errors
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrNoUpload            = errors.New("no document uploaded")
	ErrSessionNotFound     = errors.New("session not found")
	ErrNoExportableResult  = errors.New("no extracted fields to export")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
