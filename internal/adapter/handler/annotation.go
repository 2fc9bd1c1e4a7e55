package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/annotation"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	annotationUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/annotation"
)

// Annotation handles transcript annotation requests
type Annotation struct {
	svc    annotationUsecase.Service
	logger *zap.Logger
}

// NewAnnotationHandler creates a new annotation handler
func NewAnnotationHandler(svc annotationUsecase.Service, logger *zap.Logger) *Annotation {
	return &Annotation{svc: svc, logger: logger}
}

// Annotate handles POST /annotate
// @Summary      Annotate a transcript
// @Description  Normalizes a plain, SRT or WebVTT transcript and returns an extractive summary, key points, keywords, action items, decisions and topics
// @Tags         Annotation
// @Accept       json
// @Produce      json
// @Param        request  body      annotation.AnnotateRequest  true  "Transcript to annotate"
// @Success      200      {object}  common.SuccessResponse{data=annotation.AnnotationResponse}  "Annotated transcript"
// @Failure      400      {object}  common.ErrorResponse  "Blank transcript or invalid options"
// @Failure      500      {object}  common.ErrorResponse  "Annotation failed"
// @Router       /annotate [post]
func (h *Annotation) Annotate(c echo.Context) error {
	var req annotation.AnnotateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err))
	}

	ann, err := h.svc.Annotate(c.Request().Context(), annotationUsecase.AnnotateInput{
		Transcript:          req.Transcript,
		Format:              req.Format,
		SummaryLength:       req.SummaryLength,
		MaxSummarySentences: req.MaxSummarySentences,
	})
	if err != nil {
		return HandleError(h.logger, c, toAppError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToAnnotationResponse(ann))
}

// TranscribeAnnotate handles POST /transcribe-annotate
// @Summary      Transcribe and annotate a recording
// @Description  Sends an audio or video file to AssemblyAI and annotates the returned transcript
// @Tags         Annotation
// @Accept       multipart/form-data
// @Produce      json
// @Param        file                   formData  file    true   "Audio or video file"
// @Param        summary_length         formData  string  false  "short, medium or long"
// @Param        max_summary_sentences  formData  int     false  "Overrides summary_length"
// @Param        language               formData  string  false  "Language code, detected when empty"
// @Param        speech_model           formData  string  false  "AssemblyAI speech model"
// @Success      200  {object}  common.SuccessResponse{data=annotation.AnnotationResponse}  "Transcribed and annotated recording"
// @Failure      400  {object}  common.ErrorResponse  "Missing file or invalid options"
// @Failure      429  {object}  common.ErrorResponse  "Transcription quota exceeded"
// @Failure      502  {object}  common.ErrorResponse  "Transcription failed"
// @Failure      503  {object}  common.ErrorResponse  "Transcription not configured"
// @Router       /transcribe-annotate [post]
func (h *Annotation) TranscribeAnnotate(c echo.Context) error {
	var form annotation.TranscribeAnnotateForm
	if err := c.Bind(&form); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&form); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err))
	}
	maxSentences, err := formInt(c, "max_summary_sentences")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMissingMediaFile())
	}
	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	defer file.Close()

	if h.logger != nil {
		h.logger.Info("📤 Media upload received",
			zap.String("file_name", fileHeader.Filename),
			zap.Int64("size", fileHeader.Size),
		)
	}

	ann, err := h.svc.TranscribeAndAnnotate(c.Request().Context(), annotationUsecase.TranscribeInput{
		Media:               file,
		FileName:            fileHeader.Filename,
		Language:            form.Language,
		SpeechModel:         form.SpeechModel,
		SummaryLength:       form.SummaryLength,
		MaxSummarySentences: maxSentences,
	})
	if err != nil {
		return HandleError(h.logger, c, toAppError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToAnnotationResponse(ann))
}
