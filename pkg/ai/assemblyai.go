package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/jobcontext"
)

var (
	ErrEmptyMedia       = errors.New("media is empty")
	ErrTranscriptFailed = errors.New("assemblyai transcript failed")
	ErrQuotaExceeded    = errors.New("assemblyai quota exceeded")
)

// TranscribeOptions selects the speech model and language of one request.
// An empty Language turns on automatic language detection.
type TranscribeOptions struct {
	SpeechModel string
	Language    string
}

// Transcription is the text AssemblyAI produced for one media file
type Transcription struct {
	ID       string
	Text     string
	Language string
	Model    string
}

// transcriptAPI is the part of the AssemblyAI SDK the client relies on
type transcriptAPI interface {
	Upload(ctx context.Context, data io.Reader) (string, error)
	TranscribeFromURL(ctx context.Context, audioURL string, params *aai.TranscriptOptionalParams) (aai.Transcript, error)
}

type sdkAPI struct {
	client *aai.Client
}

func (s sdkAPI) Upload(ctx context.Context, data io.Reader) (string, error) {
	return s.client.Upload(ctx, data)
}

func (s sdkAPI) TranscribeFromURL(ctx context.Context, audioURL string, params *aai.TranscriptOptionalParams) (aai.Transcript, error) {
	return s.client.Transcripts.TranscribeFromURL(ctx, audioURL, params)
}

// AssemblyAIClient turns uploaded audio or video into plain text
type AssemblyAIClient struct {
	api    transcriptAPI
	cfg    config.AssemblyAIConfig
	logger *zap.Logger

	presetsMu sync.Mutex
	presets   map[string]*aai.TranscriptOptionalParams
}

// NewAssemblyAIClient creates an AssemblyAI client using the official SDK
func NewAssemblyAIClient(cfg config.AssemblyAIConfig, logger *zap.Logger) *AssemblyAIClient {
	opts := []aai.ClientOption{aai.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, aai.WithBaseURL(cfg.BaseURL))
	}
	return newAssemblyAIClient(sdkAPI{client: aai.NewClientWithOptions(opts...)}, cfg, logger)
}

func newAssemblyAIClient(api transcriptAPI, cfg config.AssemblyAIConfig, logger *zap.Logger) *AssemblyAIClient {
	return &AssemblyAIClient{
		api:     api,
		cfg:     cfg,
		logger:  logger,
		presets: make(map[string]*aai.TranscriptOptionalParams),
	}
}

// Transcribe uploads media and waits for its transcript. Upload and
// submission are retried with exponential backoff on transient errors.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, media io.Reader, opts TranscribeOptions) (*Transcription, error) {
	data, err := io.ReadAll(media)
	if err != nil {
		return nil, fmt.Errorf("failed to read media: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyMedia
	}

	model := strings.ToLower(strings.TrimSpace(opts.SpeechModel))
	if model == "" {
		model = strings.ToLower(c.cfg.SpeechModel)
	}
	language := strings.TrimSpace(opts.Language)
	if language == "" {
		language = c.cfg.LanguageCode
	}
	md := jobcontext.GetJobMetadata(ctx)

	if c.logger != nil {
		c.logger.Info("📤 Uploading media to AssemblyAI",
			zap.String("job_id", md.JobID.String()),
			zap.Int("size_bytes", len(data)),
		)
	}

	var uploadURL string
	err = c.retry(ctx, func() error {
		u, err := c.api.Upload(ctx, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to upload to AssemblyAI: %w", err)
		}
		uploadURL = u
		return nil
	})
	if err != nil {
		return nil, c.classify(err)
	}

	params := c.preset(model, language)

	if c.logger != nil {
		c.logger.Info("🎙️ Starting transcription",
			zap.String("job_id", md.JobID.String()),
			zap.String("speech_model", model),
			zap.String("language", language),
		)
	}

	var transcript aai.Transcript
	err = c.retry(ctx, func() error {
		t, err := c.api.TranscribeFromURL(ctx, uploadURL, params)
		if err != nil {
			return err
		}
		transcript = t
		return nil
	})
	if err != nil {
		if c.logger != nil {
			c.logger.Error("❌ AssemblyAI transcription failed",
				zap.String("job_id", md.JobID.String()),
				zap.Error(err),
			)
		}
		return nil, c.classify(err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, fmt.Errorf("%w: %s", ErrTranscriptFailed, msg)
	}

	out := &Transcription{
		ID:       aai.ToString(transcript.ID),
		Text:     aai.ToString(transcript.Text),
		Language: string(transcript.LanguageCode),
		Model:    model,
	}
	if out.Language == "" {
		out.Language = language
	}

	if c.logger != nil {
		c.logger.Info("✅ Transcription completed",
			zap.String("job_id", md.JobID.String()),
			zap.String("transcript_id", out.ID),
			zap.Int("text_length", len(out.Text)),
			zap.Duration("elapsed", jobcontext.Elapsed(ctx)),
		)
	}
	return out, nil
}

// preset returns the shared request parameters for a model and language,
// building them at most once per combination.
func (c *AssemblyAIClient) preset(model, language string) *aai.TranscriptOptionalParams {
	key := model + "|" + language

	c.presetsMu.Lock()
	defer c.presetsMu.Unlock()
	if p, ok := c.presets[key]; ok {
		return p
	}

	p := &aai.TranscriptOptionalParams{
		SpeechModel: aai.SpeechModel(model),
		Punctuate:   aai.Bool(true),
		FormatText:  aai.Bool(true),
	}
	if language == "" {
		p.LanguageDetection = aai.Bool(true)
	} else {
		p.LanguageCode = aai.TranscriptLanguageCode(language)
	}
	c.presets[key] = p

	if c.logger != nil {
		c.logger.Debug("cached transcription preset", zap.String("preset", key))
	}
	return p
}

func (c *AssemblyAIClient) retry(ctx context.Context, fn func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.cfg.RetryInitialInterval
	bo.MaxInterval = c.cfg.RetryMaxInterval
	bo.MaxElapsedTime = c.cfg.RetryMaxElapsedTime
	if bo.InitialInterval <= 0 {
		bo.InitialInterval = 2 * time.Second
	}
	if bo.MaxInterval <= 0 {
		bo.MaxInterval = 10 * time.Second
	}

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := fn()
		if err == nil {
			return nil
		}
		if !jobcontext.IsRetryableError(err) {
			return backoff.Permanent(err)
		}
		if c.logger != nil {
			c.logger.Warn("⚠️ AssemblyAI call failed, retrying",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
		return err
	}, backoff.WithContext(bo, ctx))
}

func (c *AssemblyAIClient) classify(err error) error {
	if jobcontext.IsRateLimitError(err) {
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	}
	return err
}
