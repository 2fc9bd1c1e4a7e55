package annotation

// AnnotateRequest represents the request to annotate a text transcript
type AnnotateRequest struct {
	Transcript          string `json:"transcript" validate:"notblank"`
	Format              string `json:"format,omitempty" validate:"omitempty,oneof=plain txt text srt vtt webvtt"`
	SummaryLength       string `json:"summary_length,omitempty" validate:"summary_length"`
	MaxSummarySentences *int   `json:"max_summary_sentences,omitempty" validate:"omitempty,min=0,max=100"`
}

// TranscribeAnnotateForm represents the text fields of a media upload.
// max_summary_sentences is read separately since it is optional.
type TranscribeAnnotateForm struct {
	SummaryLength string `form:"summary_length" validate:"summary_length"`
	Language      string `form:"language" validate:"omitempty,max=16"`
	SpeechModel   string `form:"speech_model" validate:"omitempty,oneof=best nano slam-1 universal"`
}
