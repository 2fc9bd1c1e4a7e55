package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TranscriptFormat is the detected layout of a raw transcript
type TranscriptFormat string

const (
	FormatPlain TranscriptFormat = "plain"
	FormatSRT   TranscriptFormat = "srt"
	FormatVTT   TranscriptFormat = "vtt"
)

// ParseTranscriptFormat maps a user supplied format name to a TranscriptFormat.
// "txt" and "text" are accepted as aliases of plain.
func ParseTranscriptFormat(s string) (TranscriptFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "txt", "text":
		return FormatPlain, nil
	case "srt":
		return FormatSRT, nil
	case "vtt", "webvtt":
		return FormatVTT, nil
	default:
		return "", ErrInvalidFormat
	}
}

// SummaryLength is the caller-side hint for how long the summary should be
type SummaryLength string

const (
	SummaryShort  SummaryLength = "short"
	SummaryMedium SummaryLength = "medium"
	SummaryLong   SummaryLength = "long"
)

// ParseSummaryLength accepts short, medium or long in any case.
// An empty string maps to medium.
func ParseSummaryLength(s string) (SummaryLength, error) {
	switch l := SummaryLength(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return SummaryMedium, nil
	case SummaryShort, SummaryMedium, SummaryLong:
		return l, nil
	default:
		return "", ErrInvalidLength
	}
}

// Sentences returns the number of summary sentences for the hint.
// Unknown hints fall back to the medium value.
func (l SummaryLength) Sentences() int {
	switch SummaryLength(strings.ToLower(string(l))) {
	case SummaryShort:
		return 3
	case SummaryLong:
		return 8
	default:
		return 5
	}
}

// Sentence is one segment of a cleaned transcript
type Sentence struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// ScoredSentence pairs a sentence index with its salience score
type ScoredSentence struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// AnnotationStats holds basic corpus statistics
type AnnotationStats struct {
	NumSentences int `json:"num_sentences" yaml:"num_sentences"`
	NumWords     int `json:"num_words" yaml:"num_words"`
}

// AnnotationResult is the structured annotation of one transcript
type AnnotationResult struct {
	Summary   string          `json:"summary" yaml:"summary"`
	KeyPoints []string        `json:"key_points" yaml:"key_points"`
	Keywords  []string        `json:"keywords" yaml:"keywords"`
	Actions   []string        `json:"actions" yaml:"actions"`
	Decisions []string        `json:"decisions" yaml:"decisions"`
	Topics    []string        `json:"topics" yaml:"topics"`
	Stats     AnnotationStats `json:"stats" yaml:"stats"`
}

// NewAnnotationResult returns a result with empty, non-nil collections
func NewAnnotationResult() AnnotationResult {
	return AnnotationResult{
		KeyPoints: []string{},
		Keywords:  []string{},
		Actions:   []string{},
		Decisions: []string{},
		Topics:    []string{},
	}
}

// Tone label constants
const (
	ToneLabelPositive = "positive"
	ToneLabelNeutral  = "neutral"
	ToneLabelNegative = "negative"
)

// Tone is the overall lexicon sentiment of a transcript
type Tone struct {
	Score float64 `json:"score" yaml:"score"`
	Label string  `json:"label" yaml:"label"`
}

// Annotation is one annotation run over a transcript
type Annotation struct {
	ID             uuid.UUID        `json:"id" yaml:"id"`
	Format         TranscriptFormat `json:"format" yaml:"format"`
	Transcript     *Transcript      `json:"transcript,omitempty" yaml:"transcript,omitempty"`
	Result         AnnotationResult `json:"result" yaml:"result"`
	Tone           *Tone            `json:"tone,omitempty" yaml:"tone,omitempty"`
	Cached         bool             `json:"cached" yaml:"cached"`
	ProcessingTime int64            `json:"processing_time_ms" yaml:"processing_time_ms"` // in milliseconds
	CreatedAt      time.Time        `json:"created_at" yaml:"created_at"`
}

// NewAnnotation creates a new Annotation entity
func NewAnnotation(format TranscriptFormat) *Annotation {
	return &Annotation{
		ID:        uuid.New(),
		Format:    format,
		Result:    NewAnnotationResult(),
		CreatedAt: time.Now(),
	}
}
