package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	annotationUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/annotation"
	usecaseerrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

const vttTranscript = `WEBVTT

00:00:01.000 --> 00:00:03.000
<v Ana>We agreed to hire two engineers.</v>

00:00:03.500 --> 00:00:06.000
<v Ben>I will post the job ads by Monday.</v>
`

func newService() annotationUsecase.Service {
	cfg := &config.Config{
		Annotation: config.AnnotationConfig{KeyPointsMultiplier: 1.6, DefaultLength: "medium"},
		Assembly:   config.AssemblyAIConfig{MaxConcurrentUploads: 1},
	}
	return annotationUsecase.NewService(cfg, nil, nil, nil, zap.NewNop())
}

func TestRunOnce_Stdin(t *testing.T) {
	var out bytes.Buffer
	if err := runOnce(context.Background(), newService(), "", strings.NewReader(vttTranscript), &out, "json", AnnotateArgs{}); err != nil {
		t.Fatalf("runOnce() error = %v", err)
	}

	var doc struct {
		Format string `json:"format"`
		Result struct {
			Actions   []string `json:"actions"`
			Decisions []string `json:"decisions"`
		} `json:"result"`
	}
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid output %q: %v", out.String(), err)
	}
	if doc.Format != "vtt" {
		t.Errorf("format = %q, want vtt", doc.Format)
	}
	if len(doc.Result.Actions) != 1 || len(doc.Result.Decisions) != 1 {
		t.Errorf("actions = %q, decisions = %q", doc.Result.Actions, doc.Result.Decisions)
	}
}

func TestRunOnce_FileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meeting.vtt")
	if err := os.WriteFile(path, []byte(vttTranscript), 0o644); err != nil {
		t.Fatal(err)
	}
	one := 1

	var out bytes.Buffer
	if err := runOnce(context.Background(), newService(), path, nil, &out, "yaml", AnnotateArgs{Sentences: &one}); err != nil {
		t.Fatalf("runOnce() error = %v", err)
	}
	if !strings.Contains(out.String(), "summary: ") || !strings.Contains(out.String(), "format: vtt") {
		t.Errorf("unexpected yaml output:\n%s", out.String())
	}
}

func TestRunOnce_Errors(t *testing.T) {
	err := runOnce(context.Background(), newService(), "", strings.NewReader("  "), &bytes.Buffer{}, "json", AnnotateArgs{})
	if !errors.Is(err, usecaseerrors.ErrEmptyTranscript) {
		t.Errorf("error = %v, want ErrEmptyTranscript", err)
	}

	err = runOnce(context.Background(), newService(), filepath.Join(t.TempDir(), "missing.txt"), nil, &bytes.Buffer{}, "json", AnnotateArgs{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want not exist", err)
	}
}
