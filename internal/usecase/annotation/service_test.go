package annotation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/sentiment"
	usecaseerrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

type fakeTranscriber struct {
	text    string
	err     error
	entered chan struct{}
	release chan struct{}

	active int32
	peak   int32
	calls  int32
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, media io.Reader, opts pkgai.TranscribeOptions) (*pkgai.Transcription, error) {
	atomic.AddInt32(&f.calls, 1)
	n := atomic.AddInt32(&f.active, 1)
	defer atomic.AddInt32(&f.active, -1)
	for {
		peak := atomic.LoadInt32(&f.peak)
		if n <= peak || atomic.CompareAndSwapInt32(&f.peak, peak, n) {
			break
		}
	}

	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	if _, err := io.ReadAll(media); err != nil {
		return nil, err
	}
	return &pkgai.Transcription{ID: "tr_1", Text: f.text, Language: "en", Model: opts.SpeechModel}, nil
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (*entities.AnnotationResult, error) {
	return nil, errors.New("cache down")
}

func (failingCache) Set(context.Context, string, *entities.AnnotationResult) error {
	return errors.New("cache down")
}

func testConfig() *config.Config {
	return &config.Config{
		Annotation: config.AnnotationConfig{KeyPointsMultiplier: 1.6, DefaultLength: "medium"},
		Cache:      config.CacheConfig{Driver: config.CacheDriverMemory, TTL: time.Minute},
		Assembly:   config.AssemblyAIConfig{MaxConcurrentUploads: 1, RequestTimeout: time.Minute},
	}
}

func newTestService(t *testing.T, transcriber Transcriber) Service {
	t.Helper()
	store := cache.NewMemoryStore(time.Minute)
	t.Cleanup(func() { store.Close() })
	return NewService(testConfig(), transcriber, cache.NewAnnotationCache(store, time.Minute), sentiment.NewVaderAnalyzer(), nil)
}

func TestService_Annotate(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	ann, err := svc.Annotate(ctx, AnnotateInput{Transcript: budgetMeetingSRT, SummaryLength: "short"})
	if err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	if ann.Format != entities.FormatSRT {
		t.Errorf("Format = %q, want srt", ann.Format)
	}
	if ann.Cached {
		t.Error("first call reported a cache hit")
	}
	if ann.Tone == nil {
		t.Fatal("Tone not set")
	}
	if ann.Result.Stats.NumSentences != 7 {
		t.Errorf("NumSentences = %d, want 7", ann.Result.Stats.NumSentences)
	}
	if !strings.HasPrefix(ann.Result.Summary, "Bob: The budget for marketing") {
		t.Errorf("Summary = %q", ann.Result.Summary)
	}

	again, err := svc.Annotate(ctx, AnnotateInput{Transcript: budgetMeetingSRT, SummaryLength: "short"})
	if err != nil {
		t.Fatalf("second Annotate() error = %v", err)
	}
	if !again.Cached {
		t.Error("second call missed the cache")
	}
	if again.Result.Summary != ann.Result.Summary {
		t.Errorf("cached summary %q differs from %q", again.Result.Summary, ann.Result.Summary)
	}
	if again.ID == ann.ID {
		t.Error("cached annotation reused the annotation id")
	}

	other, err := svc.Annotate(ctx, AnnotateInput{Transcript: budgetMeetingSRT, SummaryLength: "long"})
	if err != nil {
		t.Fatalf("Annotate(long) error = %v", err)
	}
	if other.Cached {
		t.Error("different options hit the same cache entry")
	}
}

func TestService_AnnotateErrors(t *testing.T) {
	svc := newTestService(t, nil)
	negative := -1

	tests := []struct {
		name string
		in   AnnotateInput
		want error
	}{
		{"blank transcript", AnnotateInput{Transcript: " \n\t"}, usecaseerrors.ErrEmptyTranscript},
		{"unknown format", AnnotateInput{Transcript: "Hello.", Format: "docx"}, entities.ErrInvalidFormat},
		{"negative sentences", AnnotateInput{Transcript: "Hello.", MaxSummarySentences: &negative}, usecaseerrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Annotate(context.Background(), tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("Annotate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestService_AnnotateForcedFormat(t *testing.T) {
	svc := newTestService(t, nil)
	ann, err := svc.Annotate(context.Background(), AnnotateInput{Transcript: budgetMeetingSRT, Format: "plain"})
	if err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	if ann.Format != entities.FormatPlain {
		t.Errorf("Format = %q, want plain", ann.Format)
	}
	// cue numbers and timecodes survive as sentences of their own
	if ann.Result.Stats.NumSentences != 17 {
		t.Errorf("NumSentences = %d, want 17", ann.Result.Stats.NumSentences)
	}
}

func TestService_CacheErrorsAreIgnored(t *testing.T) {
	svc := NewService(testConfig(), nil, failingCache{}, nil, nil)
	ann, err := svc.Annotate(context.Background(), AnnotateInput{Transcript: "We decided to ship."})
	if err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	if ann.Cached {
		t.Error("failing cache reported a hit")
	}
	if ann.Tone != nil {
		t.Error("tone set without an analyzer")
	}
	if len(ann.Result.Decisions) != 1 {
		t.Errorf("Decisions = %q", ann.Result.Decisions)
	}
}

func TestService_Options(t *testing.T) {
	svc := NewService(testConfig(), nil, nil, nil, nil).(*service)
	explicit := 7
	zero := 0

	tests := []struct {
		name     string
		length   string
		explicit *int
		want     int
	}{
		{"short", "short", nil, 3},
		{"medium", "medium", nil, 5},
		{"long", "long", nil, 8},
		{"empty uses config default", "", nil, 5},
		{"explicit wins", "short", &explicit, 7},
		{"explicit zero", "long", &zero, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := svc.options(tt.length, tt.explicit)
			if err != nil {
				t.Fatalf("options() error = %v", err)
			}
			if opts.MaxSummarySentences != tt.want {
				t.Errorf("MaxSummarySentences = %d, want %d", opts.MaxSummarySentences, tt.want)
			}
			if opts.KeyPointsMultiplier != 1.6 {
				t.Errorf("KeyPointsMultiplier = %v, want 1.6", opts.KeyPointsMultiplier)
			}
		})
	}
}

func TestCacheKey(t *testing.T) {
	a := CacheKey("hello", Options{MaxSummarySentences: 3, KeyPointsMultiplier: 1.6})
	if a != CacheKey("hello", Options{MaxSummarySentences: 3, KeyPointsMultiplier: 1.6}) {
		t.Error("CacheKey is not stable")
	}
	if a == CacheKey("hello", Options{MaxSummarySentences: 5, KeyPointsMultiplier: 1.6}) {
		t.Error("CacheKey ignores summary size")
	}
	if a == CacheKey("hello!", Options{MaxSummarySentences: 3, KeyPointsMultiplier: 1.6}) {
		t.Error("CacheKey ignores text")
	}
	if len(a) != 64 {
		t.Errorf("CacheKey length = %d, want 64", len(a))
	}
}

func TestService_TranscribeAndAnnotate(t *testing.T) {
	fake := &fakeTranscriber{text: "We will ship on Friday. The team agreed on the plan."}
	svc := newTestService(t, fake)

	ann, err := svc.TranscribeAndAnnotate(context.Background(), TranscribeInput{
		Media:       strings.NewReader("RIFF...."),
		FileName:    "standup.wav",
		SpeechModel: "nano",
	})
	if err != nil {
		t.Fatalf("TranscribeAndAnnotate() error = %v", err)
	}
	if ann.Transcript == nil {
		t.Fatal("Transcript not attached")
	}
	if ann.Transcript.FileName != "standup.wav" || ann.Transcript.Language != "en" || ann.Transcript.ModelUsed != "nano" {
		t.Errorf("Transcript = %+v", ann.Transcript)
	}
	if ann.Transcript.Source != entities.TranscriptSourceMedia {
		t.Errorf("Source = %q", ann.Transcript.Source)
	}
	if ann.Format != entities.FormatPlain {
		t.Errorf("Format = %q, want plain", ann.Format)
	}
	if len(ann.Result.Actions) != 1 || len(ann.Result.Decisions) != 1 {
		t.Errorf("Actions = %q, Decisions = %q", ann.Result.Actions, ann.Result.Decisions)
	}
}

func TestService_TranscribeAndAnnotateErrors(t *testing.T) {
	tests := []struct {
		name        string
		transcriber Transcriber
		media       io.Reader
		want        error
	}{
		{"no transcriber", nil, strings.NewReader("x"), usecaseerrors.ErrTranscriberUnavailable},
		{"no media", &fakeTranscriber{}, nil, usecaseerrors.ErrMissingMedia},
		{"empty media", &fakeTranscriber{err: pkgai.ErrEmptyMedia}, strings.NewReader(""), usecaseerrors.ErrMissingMedia},
		{"quota", &fakeTranscriber{err: fmt.Errorf("upload: %w", pkgai.ErrQuotaExceeded)}, strings.NewReader("x"), usecaseerrors.ErrQuotaExceeded},
		{"upstream failure", &fakeTranscriber{err: errors.New("boom")}, strings.NewReader("x"), usecaseerrors.ErrTranscriptionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.transcriber)
			_, err := svc.TranscribeAndAnnotate(context.Background(), TranscribeInput{Media: tt.media})
			if !errors.Is(err, tt.want) {
				t.Errorf("TranscribeAndAnnotate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestService_TranscriptionConcurrencyLimit(t *testing.T) {
	fake := &fakeTranscriber{text: "Hello there.", release: make(chan struct{})}
	svc := newTestService(t, fake)

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.TranscribeAndAnnotate(context.Background(), TranscribeInput{Media: strings.NewReader("x")})
			errs <- err
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(fake.release)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("TranscribeAndAnnotate() error = %v", err)
		}
	}
	if peak := atomic.LoadInt32(&fake.peak); peak != 1 {
		t.Errorf("peak concurrent transcriptions = %d, want 1", peak)
	}
	if calls := atomic.LoadInt32(&fake.calls); calls != 4 {
		t.Errorf("transcriber called %d times, want 4", calls)
	}
}

func TestService_TranscriptionWaitHonorsContext(t *testing.T) {
	fake := &fakeTranscriber{text: "Hello.", entered: make(chan struct{}, 1), release: make(chan struct{})}
	svc := newTestService(t, fake)

	done := make(chan error, 1)
	go func() {
		_, err := svc.TranscribeAndAnnotate(context.Background(), TranscribeInput{Media: strings.NewReader("x")})
		done <- err
	}()
	<-fake.entered

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.TranscribeAndAnnotate(ctx, TranscribeInput{Media: strings.NewReader("x")}); !errors.Is(err, context.Canceled) {
		t.Errorf("waiting call error = %v, want context.Canceled", err)
	}

	close(fake.release)
	if err := <-done; err != nil {
		t.Errorf("first call error = %v", err)
	}
}
