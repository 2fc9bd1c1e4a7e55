package entities

import (
	"time"

	"github.com/google/uuid"
)

// Transcript source constants
const (
	TranscriptSourceText  = "text"
	TranscriptSourceMedia = "media"
)

// Transcript is a plain-text transcript produced by speech-to-text
type Transcript struct {
	ID             uuid.UUID `json:"id" yaml:"id"`
	Source         string    `json:"source" yaml:"source"`
	FileName       string    `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	Text           string    `json:"text" yaml:"text"`
	Language       string    `json:"language,omitempty" yaml:"language,omitempty"`
	ModelUsed      string    `json:"model_used,omitempty" yaml:"model_used,omitempty"`
	ProcessingTime int64     `json:"processing_time_ms,omitempty" yaml:"processing_time_ms,omitempty"` // in milliseconds
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
}

// NewTranscript creates a new transcript
func NewTranscript(source, text string) *Transcript {
	return &Transcript{
		ID:        uuid.New(),
		Source:    source,
		Text:      text,
		CreatedAt: time.Now(),
	}
}
