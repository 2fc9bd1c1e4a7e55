package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInternalError = errors.New("internal server error")
)

// Annotation errors
var (
	ErrEmptyTranscript = errors.New("transcript is empty")
	ErrMissingMedia    = errors.New("media file is required")
)

// Transcription errors
var (
	ErrTranscriberUnavailable = errors.New("transcription service not configured")
	ErrTranscriptionFailed    = errors.New("transcription failed")
	ErrQuotaExceeded          = errors.New("transcription quota exceeded")
)
