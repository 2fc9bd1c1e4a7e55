package ai

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

type fakeAPI struct {
	mu            sync.Mutex
	uploadErrs    []error
	uploads       int
	uploaded      []string
	transcript    aai.Transcript
	transcribeErr error
	params        []*aai.TranscriptOptionalParams
}

func (f *fakeAPI) Upload(_ context.Context, data io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, _ := io.ReadAll(data)
	f.uploaded = append(f.uploaded, string(b))
	f.uploads++
	if len(f.uploadErrs) > 0 {
		err := f.uploadErrs[0]
		f.uploadErrs = f.uploadErrs[1:]
		return "", err
	}
	return "https://cdn.test/upload/1", nil
}

func (f *fakeAPI) TranscribeFromURL(_ context.Context, audioURL string, params *aai.TranscriptOptionalParams) (aai.Transcript, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params = append(f.params, params)
	if f.transcribeErr != nil {
		return aai.Transcript{}, f.transcribeErr
	}
	return f.transcript, nil
}

func testConfig() config.AssemblyAIConfig {
	return config.AssemblyAIConfig{
		SpeechModel:          "best",
		RetryInitialInterval: time.Millisecond,
		RetryMaxInterval:     5 * time.Millisecond,
		RetryMaxElapsedTime:  time.Second,
	}
}

func completed(text string) aai.Transcript {
	return aai.Transcript{
		ID:           aai.String("tr-1"),
		Status:       aai.TranscriptStatusCompleted,
		Text:         aai.String(text),
		LanguageCode: aai.TranscriptLanguageCode("en"),
	}
}

func TestTranscribe_Success(t *testing.T) {
	api := &fakeAPI{transcript: completed("We decided to ship on Friday.")}
	c := newAssemblyAIClient(api, testConfig(), nil)

	got, err := c.Transcribe(context.Background(), strings.NewReader("media-bytes"), TranscribeOptions{})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got.Text != "We decided to ship on Friday." || got.ID != "tr-1" || got.Language != "en" {
		t.Errorf("Transcribe() = %+v", got)
	}
	if got.Model != "best" {
		t.Errorf("Model = %q, want best", got.Model)
	}
	if api.uploaded[0] != "media-bytes" {
		t.Errorf("uploaded %q", api.uploaded[0])
	}
	p := api.params[0]
	if p.LanguageDetection == nil || !*p.LanguageDetection {
		t.Error("expected language detection without a language")
	}
}

func TestTranscribe_RetriesTransientUpload(t *testing.T) {
	api := &fakeAPI{
		uploadErrs: []error{errors.New("connection reset by peer"), errors.New("status 502: bad gateway")},
		transcript: completed("hello"),
	}
	c := newAssemblyAIClient(api, testConfig(), nil)

	if _, err := c.Transcribe(context.Background(), strings.NewReader("x"), TranscribeOptions{}); err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if api.uploads != 3 {
		t.Errorf("uploads = %d, want 3", api.uploads)
	}
	for i, u := range api.uploaded {
		if u != "x" {
			t.Errorf("upload %d sent %q, want full media on every attempt", i, u)
		}
	}
}

func TestTranscribe_PermanentErrorNotRetried(t *testing.T) {
	api := &fakeAPI{uploadErrs: []error{errors.New("invalid api key")}}
	c := newAssemblyAIClient(api, testConfig(), nil)

	_, err := c.Transcribe(context.Background(), strings.NewReader("x"), TranscribeOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
	if api.uploads != 1 {
		t.Errorf("uploads = %d, want 1", api.uploads)
	}
}

func TestTranscribe_StatusError(t *testing.T) {
	api := &fakeAPI{transcript: aai.Transcript{
		ID:     aai.String("tr-2"),
		Status: aai.TranscriptStatusError,
		Error:  aai.String("file does not appear to contain audio"),
	}}
	c := newAssemblyAIClient(api, testConfig(), nil)

	_, err := c.Transcribe(context.Background(), strings.NewReader("x"), TranscribeOptions{})
	if !errors.Is(err, ErrTranscriptFailed) {
		t.Fatalf("error = %v, want ErrTranscriptFailed", err)
	}
	if !strings.Contains(err.Error(), "does not appear to contain audio") {
		t.Errorf("error %q lacks AssemblyAI message", err)
	}
}

func TestTranscribe_QuotaExceeded(t *testing.T) {
	cfg := testConfig()
	cfg.RetryMaxElapsedTime = 20 * time.Millisecond
	api := &fakeAPI{transcribeErr: errors.New("429 Too Many Requests")}
	c := newAssemblyAIClient(api, cfg, nil)

	_, err := c.Transcribe(context.Background(), strings.NewReader("x"), TranscribeOptions{})
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("error = %v, want ErrQuotaExceeded", err)
	}
}

func TestTranscribe_EmptyMedia(t *testing.T) {
	c := newAssemblyAIClient(&fakeAPI{}, testConfig(), nil)
	if _, err := c.Transcribe(context.Background(), strings.NewReader(""), TranscribeOptions{}); !errors.Is(err, ErrEmptyMedia) {
		t.Fatalf("error = %v, want ErrEmptyMedia", err)
	}
}

func TestPreset_SharedPerModelAndLanguage(t *testing.T) {
	c := newAssemblyAIClient(&fakeAPI{}, testConfig(), nil)

	var wg sync.WaitGroup
	got := make([]*aai.TranscriptOptionalParams, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = c.preset("nano", "vi")
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(got); i++ {
		if got[i] != got[0] {
			t.Fatal("preset built more than once for the same model and language")
		}
	}
	if got[0].SpeechModel != aai.SpeechModel("nano") || got[0].LanguageCode != aai.TranscriptLanguageCode("vi") {
		t.Errorf("preset = %+v", got[0])
	}
	if got[0].LanguageDetection != nil {
		t.Error("language detection set with an explicit language")
	}
	if c.preset("best", "vi") == got[0] {
		t.Error("different models share a preset")
	}
}
