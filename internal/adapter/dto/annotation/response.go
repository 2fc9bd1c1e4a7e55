package annotation

import "time"

// AnnotationResponse represents an annotated transcript in responses
type AnnotationResponse struct {
	ID               string              `json:"id"`
	Format           string              `json:"format"`
	Summary          string              `json:"summary"`
	KeyPoints        []string            `json:"key_points"`
	Keywords         []string            `json:"keywords"`
	Actions          []string            `json:"actions"`
	Decisions        []string            `json:"decisions"`
	Topics           []string            `json:"topics"`
	Stats            StatsResponse       `json:"stats"`
	Tone             *ToneResponse       `json:"tone,omitempty"`
	Transcript       *TranscriptResponse `json:"transcript,omitempty"`
	Cached           bool                `json:"cached"`
	ProcessingTimeMs int64               `json:"processing_time_ms"`
	CreatedAt        time.Time           `json:"created_at"`
}

// StatsResponse represents transcript counts
type StatsResponse struct {
	NumSentences int `json:"num_sentences"`
	NumWords     int `json:"num_words"`
}

// ToneResponse represents the overall tone of a transcript
type ToneResponse struct {
	Score float64 `json:"score"`
	Label string  `json:"label"` // positive, neutral, negative
}

// TranscriptResponse represents the speech-to-text output of a media upload
type TranscriptResponse struct {
	ID               string `json:"id"`
	FileName         string `json:"file_name,omitempty"`
	Text             string `json:"text"`
	Language         string `json:"language,omitempty"`
	ModelUsed        string `json:"model_used,omitempty"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
}
