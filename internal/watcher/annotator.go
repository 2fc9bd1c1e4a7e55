package watcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	annotationUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/annotation"
)

// Output formats
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Encode writes ann to w as indented JSON or YAML
func Encode(w io.Writer, ann *entities.Annotation, format string) error {
	switch strings.ToLower(format) {
	case OutputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ann)
	case OutputYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ann); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// OutputPath returns where the annotation of inputPath is written
func OutputPath(outputDir, inputPath, format string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	ext := OutputJSON
	if strings.EqualFold(format, OutputYAML) || strings.EqualFold(format, "yml") {
		ext = OutputYAML
	}
	return filepath.Join(outputDir, base+"."+ext)
}

// NewFileAnnotator returns an EventHandler that annotates a transcript file
// and writes the result next to the others in outputDir
func NewFileAnnotator(svc annotationUsecase.Service, outputDir, format, summaryLength string) EventHandler {
	return func(ctx context.Context, path string) error {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read transcript: %w", err)
		}

		ann, err := svc.Annotate(ctx, annotationUsecase.AnnotateInput{
			Transcript:    string(raw),
			SummaryLength: summaryLength,
		})
		if err != nil {
			return fmt.Errorf("annotate %s: %w", filepath.Base(path), err)
		}

		// write to a temp file first so readers never see a partial result
		target := OutputPath(outputDir, path, format)
		tmp, err := os.CreateTemp(outputDir, ".annotate-*")
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer os.Remove(tmp.Name())

		if err := Encode(tmp, ann, format); err != nil {
			tmp.Close()
			return fmt.Errorf("encode output: %w", err)
		}
		if err := tmp.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
		return os.Rename(tmp.Name(), target)
	}
}
