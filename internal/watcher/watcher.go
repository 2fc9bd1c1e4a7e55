package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/pkg/jobcontext"
)

const (
	defaultSettleDelay = 50 * time.Millisecond
	maxSettleAttempts  = 6
)

var transcriptExtensions = []string{".txt", ".srt", ".vtt"}

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        *zap.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
	settleDelay   time.Duration
	workers       int32
}

// Start blocks until ctx is done, handing each created transcript file to
// the handler. It waits for in-flight files before returning.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info("👀 File watcher started",
		zap.String("dir", w.inputDir),
		zap.Int("max_concurrent", w.maxConcurrent),
		zap.Strings("extensions", transcriptExtensions),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info("File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher events channel closed")
			}

			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isTranscriptFile(event.Name) {
				w.logger.Debug("Ignoring non-transcript file", zap.String("path", event.Name))
				continue
			}
			w.logger.Info("📄 New transcript detected", zap.String("path", event.Name))

			// Acquire semaphore slot (blocks if max concurrent reached)
			select {
			case w.semaphore <- struct{}{}:
			case <-ctx.Done():
				w.wg.Wait()
				return ctx.Err()
			}

			w.wg.Add(1)
			go func(path string) {
				defer w.wg.Done()
				defer func() { <-w.semaphore }()
				w.process(ctx, path)
			}(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func (w *implWatcher) process(ctx context.Context, path string) {
	workerID := int(atomic.AddInt32(&w.workers, 1))
	jobCtx, cancel := jobcontext.JobBegin(ctx, uuid.New(), jobcontext.JobTypeWatchFile, workerID, 0)
	defer cancel()

	if err := w.waitForStable(jobCtx, path); err != nil {
		w.logger.Error("File never settled", zap.String("path", path), zap.Error(err))
		return
	}

	meta := jobcontext.GetJobMetadata(jobCtx)
	if err := w.handler(jobCtx, path); err != nil {
		w.logger.Error("❌ Failed to process transcript",
			zap.String("path", path),
			zap.String("job_id", meta.JobID.String()),
			zap.Error(err),
		)
		return
	}
	w.logger.Info("✅ Transcript processed",
		zap.String("path", path),
		zap.String("job_id", meta.JobID.String()),
		zap.Int("worker_id", meta.WorkerID),
		zap.Duration("elapsed", jobcontext.Elapsed(jobCtx)),
	)
}

// waitForStable polls the file size with growing delays until two reads
// agree, so files still being copied in are not read half written
func (w *implWatcher) waitForStable(ctx context.Context, path string) error {
	last := int64(-1)
	for attempt := 0; attempt < maxSettleAttempts; attempt++ {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if info.Size() == last {
			return nil
		}
		last = info.Size()

		select {
		case <-time.After(jobcontext.CalculateBackoff(attempt, w.settleDelay)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isTranscriptFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range transcriptExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
