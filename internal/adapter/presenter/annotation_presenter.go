package presenter

import (
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/annotation"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// ToAnnotationResponse converts an Annotation entity to AnnotationResponse DTO
func ToAnnotationResponse(a *entities.Annotation) *annotation.AnnotationResponse {
	if a == nil {
		return nil
	}

	response := &annotation.AnnotationResponse{
		ID:        a.ID.String(),
		Format:    string(a.Format),
		Summary:   a.Result.Summary,
		KeyPoints: nonNil(a.Result.KeyPoints),
		Keywords:  nonNil(a.Result.Keywords),
		Actions:   nonNil(a.Result.Actions),
		Decisions: nonNil(a.Result.Decisions),
		Topics:    nonNil(a.Result.Topics),
		Stats: annotation.StatsResponse{
			NumSentences: a.Result.Stats.NumSentences,
			NumWords:     a.Result.Stats.NumWords,
		},
		Cached:           a.Cached,
		ProcessingTimeMs: a.ProcessingTime,
		CreatedAt:        a.CreatedAt,
	}

	if a.Tone != nil {
		response.Tone = &annotation.ToneResponse{Score: a.Tone.Score, Label: a.Tone.Label}
	}

	// Include transcript for media uploads
	if a.Transcript != nil {
		response.Transcript = ToTranscriptResponse(a.Transcript)
	}

	return response
}

// ToTranscriptResponse converts a Transcript entity to TranscriptResponse DTO
func ToTranscriptResponse(t *entities.Transcript) *annotation.TranscriptResponse {
	if t == nil {
		return nil
	}
	return &annotation.TranscriptResponse{
		ID:               t.ID.String(),
		FileName:         t.FileName,
		Text:             t.Text,
		Language:         t.Language,
		ModelUsed:        t.ModelUsed,
		ProcessingTimeMs: t.ProcessingTime,
	}
}

// JSON clients expect [] rather than null
func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
