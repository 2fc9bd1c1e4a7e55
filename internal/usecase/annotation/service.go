package annotation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	usecaseerrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/jobcontext"
)

// Service defines annotation orchestration methods
type Service interface {
	Annotate(ctx context.Context, in AnnotateInput) (*entities.Annotation, error)
	TranscribeAndAnnotate(ctx context.Context, in TranscribeInput) (*entities.Annotation, error)
}

// Transcriber turns media into plain text
type Transcriber interface {
	Transcribe(ctx context.Context, media io.Reader, opts pkgai.TranscribeOptions) (*pkgai.Transcription, error)
}

// ResultCache memoizes pipeline output
type ResultCache interface {
	Get(ctx context.Context, key string) (*entities.AnnotationResult, error)
	Set(ctx context.Context, key string, result *entities.AnnotationResult) error
}

// ToneAnalyzer scores the overall tone of a transcript
type ToneAnalyzer interface {
	Analyze(sentences []string) entities.Tone
}

// AnnotateInput is a transcript submitted as text.
// Format forces the subtitle parser; empty means detect.
type AnnotateInput struct {
	Transcript          string
	Format              string
	SummaryLength       string
	MaxSummarySentences *int
}

// TranscribeInput is a media file to transcribe and annotate
type TranscribeInput struct {
	Media               io.Reader
	FileName            string
	Language            string
	SpeechModel         string
	SummaryLength       string
	MaxSummarySentences *int
}

type service struct {
	cfg             *config.Config
	transcriber     Transcriber
	cache           ResultCache
	tone            ToneAnalyzer
	logger          *zap.Logger
	uploadSemaphore chan struct{} // limit concurrent transcriptions
}

// NewService constructs the annotation service. transcriber, cache and tone
// may be nil to disable those features.
func NewService(cfg *config.Config, transcriber Transcriber, cache ResultCache, tone ToneAnalyzer, logger *zap.Logger) Service {
	slots := cfg.Assembly.MaxConcurrentUploads
	if slots < 1 {
		slots = 1
	}
	return &service{
		cfg:             cfg,
		transcriber:     transcriber,
		cache:           cache,
		tone:            tone,
		logger:          logger,
		uploadSemaphore: make(chan struct{}, slots),
	}
}

// Annotate normalizes a text transcript and annotates it
func (s *service) Annotate(ctx context.Context, in AnnotateInput) (*entities.Annotation, error) {
	start := time.Now()
	if strings.TrimSpace(in.Transcript) == "" {
		return nil, usecaseerrors.ErrEmptyTranscript
	}

	format := DetectFormat(in.Transcript)
	if in.Format != "" {
		f, err := entities.ParseTranscriptFormat(in.Format)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, in.Format)
		}
		format = f
	}

	opts, err := s.options(in.SummaryLength, in.MaxSummarySentences)
	if err != nil {
		return nil, err
	}

	cleaned := NormalizeAs(in.Transcript, format)
	ann := s.annotate(ctx, cleaned, format, opts)
	ann.ProcessingTime = time.Since(start).Milliseconds()

	if s.logger != nil {
		s.logger.Info("📝 Transcript annotated",
			zap.String("annotation_id", ann.ID.String()),
			zap.String("format", string(format)),
			zap.Int("num_sentences", ann.Result.Stats.NumSentences),
			zap.Bool("cached", ann.Cached),
			zap.Int64("processing_ms", ann.ProcessingTime),
		)
	}
	return ann, nil
}

// TranscribeAndAnnotate sends media to the transcriber and annotates the
// returned text as plain text.
func (s *service) TranscribeAndAnnotate(ctx context.Context, in TranscribeInput) (*entities.Annotation, error) {
	start := time.Now()
	if s.transcriber == nil {
		return nil, usecaseerrors.ErrTranscriberUnavailable
	}
	if in.Media == nil {
		return nil, usecaseerrors.ErrMissingMedia
	}

	opts, err := s.options(in.SummaryLength, in.MaxSummarySentences)
	if err != nil {
		return nil, err
	}

	jobID := uuid.New()
	jobCtx, cancel := jobcontext.JobBegin(ctx, jobID, jobcontext.JobTypeTranscription, 0, s.cfg.Assembly.RequestTimeout)
	defer cancel()

	// Acquire semaphore slot - blocks while all uploads are running
	select {
	case s.uploadSemaphore <- struct{}{}:
	case <-jobCtx.Done():
		return nil, jobCtx.Err()
	}
	defer func() { <-s.uploadSemaphore }()

	if s.logger != nil {
		s.logger.Info("🔒 Acquired transcription slot",
			zap.String("job_id", jobID.String()),
			zap.String("file_name", in.FileName),
		)
	}

	tr, err := s.transcriber.Transcribe(jobCtx, in.Media, pkgai.TranscribeOptions{
		SpeechModel: in.SpeechModel,
		Language:    in.Language,
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Transcription failed",
				zap.String("job_id", jobID.String()),
				zap.Error(err),
			)
		}
		return nil, mapTranscriberError(err)
	}

	transcript := entities.NewTranscript(entities.TranscriptSourceMedia, tr.Text)
	transcript.FileName = in.FileName
	transcript.Language = tr.Language
	transcript.ModelUsed = tr.Model
	transcript.ProcessingTime = time.Since(start).Milliseconds()

	// speech-to-text output has no subtitle markup to strip
	ann := s.annotate(ctx, tr.Text, entities.FormatPlain, opts)
	ann.Transcript = transcript
	ann.ProcessingTime = time.Since(start).Milliseconds()

	if s.logger != nil {
		s.logger.Info("✅ Media transcribed and annotated",
			zap.String("annotation_id", ann.ID.String()),
			zap.String("job_id", jobID.String()),
			zap.String("language", transcript.Language),
			zap.Int("num_sentences", ann.Result.Stats.NumSentences),
			zap.Int64("processing_ms", ann.ProcessingTime),
		)
	}
	return ann, nil
}

func (s *service) annotate(ctx context.Context, text string, format entities.TranscriptFormat, opts Options) *entities.Annotation {
	ann := entities.NewAnnotation(format)
	key := CacheKey(text, opts)

	if cached := s.lookup(ctx, key); cached != nil {
		ann.Result = *cached
		ann.Cached = true
	} else {
		ann.Result = Annotate(text, opts)
		s.store(ctx, key, &ann.Result)
	}

	if s.tone != nil {
		sentences := SplitSentences(text)
		texts := make([]string, len(sentences))
		for i, sent := range sentences {
			texts[i] = sent.Text
		}
		tone := s.tone.Analyze(texts)
		ann.Tone = &tone
	}
	return ann
}

func (s *service) lookup(ctx context.Context, key string) *entities.AnnotationResult {
	if s.cache == nil {
		return nil
	}
	result, err := s.cache.Get(ctx, key)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Annotation cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	return result
}

func (s *service) store(ctx context.Context, key string, result *entities.AnnotationResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, result); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Annotation cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// options resolves the summary size: an explicit sentence count wins over
// the length hint, and an empty hint uses the configured default.
func (s *service) options(length string, explicit *int) (Options, error) {
	opts := DefaultOptions()
	if s.cfg.Annotation.KeyPointsMultiplier > 0 {
		opts.KeyPointsMultiplier = s.cfg.Annotation.KeyPointsMultiplier
	}

	if explicit != nil {
		if *explicit < 0 {
			return opts, fmt.Errorf("%w: max summary sentences must not be negative", usecaseerrors.ErrInvalidInput)
		}
		opts.MaxSummarySentences = *explicit
		return opts, nil
	}

	if strings.TrimSpace(length) == "" {
		length = s.cfg.Annotation.DefaultLength
	}
	opts.MaxSummarySentences = SentencesForLength(length)
	return opts, nil
}

// SentencesForLength maps short, medium and long to 3, 5 and 8 summary
// sentences. Anything else gets 5.
func SentencesForLength(length string) int {
	return entities.SummaryLength(strings.TrimSpace(length)).Sentences()
}

// CacheKey identifies a pipeline run by its cleaned text and options
func CacheKey(cleaned string, opts Options) string {
	h := sha256.New()
	h.Write([]byte(strconv.Itoa(opts.MaxSummarySentences)))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatFloat(opts.KeyPointsMultiplier, 'g', -1, 64)))
	h.Write([]byte{0})
	h.Write([]byte(cleaned))
	return hex.EncodeToString(h.Sum(nil))
}

func mapTranscriberError(err error) error {
	switch {
	case errors.Is(err, pkgai.ErrEmptyMedia):
		return usecaseerrors.ErrMissingMedia
	case errors.Is(err, pkgai.ErrQuotaExceeded):
		return fmt.Errorf("%w: %w", usecaseerrors.ErrQuotaExceeded, err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %w", usecaseerrors.ErrTranscriptionFailed, err)
	}
}
