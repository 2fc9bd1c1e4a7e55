// Command annotate annotates a transcript file (or stdin) and prints the
// result, or watches a directory and annotates every transcript dropped in.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/infrastructure/sentiment"
	annotationUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/annotation"
	"github.com/johnquangdev/meeting-notes/internal/watcher"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	pkglogger "github.com/johnquangdev/meeting-notes/pkg/logger"
)

func main() {
	var (
		length    = flag.String("length", "", "summary length: short, medium or long")
		sentences = flag.Int("sentences", -1, "summary sentences, overrides -length")
		format    = flag.String("format", "", "output format: json or yaml (default WATCHER_OUTPUT_FORMAT)")
		input     = flag.String("input-format", "", "force the transcript format: plain, srt or vtt")
		watchDir  = flag.String("watch", "", "directory to watch for new transcripts")
		outDir    = flag.String("out", "", "directory for annotations written in watch mode")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: annotate [flags] [file]\n       annotate -watch <dir> -out <dir> [flags]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *format == "" {
		*format = cfg.Watcher.OutputFormat
	}

	logger, err := pkglogger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	svc := annotationUsecase.NewService(cfg, nil, nil, sentiment.NewVaderAnalyzer(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *watchDir != "" {
		if *outDir == "" {
			log.Fatal("-out is required with -watch")
		}
		if *sentences >= 0 {
			logger.Warn("-sentences is ignored in watch mode, use -length")
		}
		if err := runWatch(ctx, cfg, svc, logger, *watchDir, *outDir, *format, *length); err != nil {
			logger.Fatal("Watcher failed", zap.Error(err))
		}
		return
	}

	in := AnnotateArgs{Length: *length, InputFormat: *input}
	if *sentences >= 0 {
		in.Sentences = sentences
	}
	if err := runOnce(ctx, svc, flag.Arg(0), os.Stdin, os.Stdout, *format, in); err != nil {
		fmt.Fprintf(os.Stderr, "annotate: %v\n", err)
		os.Exit(1)
	}
}

// AnnotateArgs are the pipeline flags of a one-shot run
type AnnotateArgs struct {
	Length      string
	Sentences   *int
	InputFormat string
}

func runOnce(ctx context.Context, svc annotationUsecase.Service, path string, stdin io.Reader, stdout io.Writer, format string, args AnnotateArgs) error {
	var (
		raw []byte
		err error
	)
	if path == "" || path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	ann, err := svc.Annotate(ctx, annotationUsecase.AnnotateInput{
		Transcript:          string(raw),
		Format:              args.InputFormat,
		SummaryLength:       args.Length,
		MaxSummarySentences: args.Sentences,
	})
	if err != nil {
		return err
	}
	return watcher.Encode(stdout, ann, format)
}

func runWatch(ctx context.Context, cfg *config.Config, svc annotationUsecase.Service, logger *zap.Logger, dir, out, format, length string) error {
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	w, err := watcher.New(dir, watcher.NewFileAnnotator(svc, out, format, length), logger, cfg.Watcher.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
