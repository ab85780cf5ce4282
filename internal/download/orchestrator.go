package download

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Momossini/DeoDer/internal/model"
	"github.com/Momossini/DeoDer/internal/platform"
	"github.com/Momossini/DeoDer/internal/progress"
)

// Orchestrator runs discovered URLs to a terminal state over a bounded pool
type Orchestrator struct {
	extractor   Extractor
	tracker     *progress.Tracker
	failures    FailureLog
	outputDir   string
	maxRetries  int
	maxParallel int
	log         *slog.Logger
}

// NewOrchestrator creates an orchestrator. maxRetries is the per-task attempt
// budget (attempts are numbered 1..maxRetries inclusive); maxParallel bounds
// how many tasks are in flight at once.
func NewOrchestrator(extractor Extractor, tracker *progress.Tracker, failures FailureLog, outputDir string, maxRetries, maxParallel int) *Orchestrator {
	return &Orchestrator{
		extractor:   extractor,
		tracker:     tracker,
		failures:    failures,
		outputDir:   outputDir,
		maxRetries:  maxRetries,
		maxParallel: maxParallel,
		log:         slog.Default(),
	}
}

// Run submits one task per URL and blocks until every task reaches a terminal
// state. A failing task never aborts the run; it is recorded and dropped.
func (o *Orchestrator) Run(ctx context.Context, urls []string) ([]*model.DownloadTask, error) {
	if err := platform.CreateDirectoryIfNotExists(o.outputDir); err != nil {
		return nil, fmt.Errorf("failed to ensure output dir: %w", err)
	}

	tasks := make([]*model.DownloadTask, 0, len(urls))
	for _, url := range urls {
		tasks = append(tasks, model.NewDownloadTask(url))
	}

	g := new(errgroup.Group)
	g.SetLimit(o.maxParallel)

	for _, task := range tasks {
		g.Go(func() error {
			o.runTask(ctx, task)
			// Task failures end as terminal states, never as pool errors
			return nil
		})
	}
	_ = g.Wait()

	return tasks, nil
}

// runTask drives one task through its sequential attempt loop
func (o *Orchestrator) runTask(ctx context.Context, task *model.DownloadTask) {
	task.Status = model.TaskStatusDownloading

	for attempt := 1; ; attempt++ {
		task.Attempts = attempt

		result, err := o.extractor.Download(ctx, task.URL, func(done, total int64) {
			task.BytesDone = done
			if total > 0 {
				task.BytesTotal = total
			}
			o.tracker.Publish(progress.Event{
				URL:        task.URL,
				Status:     progress.StatusDownloading,
				BytesDone:  done,
				BytesTotal: total,
			})
		})
		if err == nil {
			task.Status = model.TaskStatusSucceeded
			task.Title = result.Title
			task.OutputPath = result.OutputPath
			o.log.Info("download complete", "url", task.URL, "attempts", attempt)
			break
		}

		task.LastError = err.Error()
		o.log.Warn("download attempt failed",
			"url", task.URL, "attempt", attempt, "max", o.maxRetries, "err", err)

		if !shouldRetry(attempt, o.maxRetries) {
			task.Status = model.TaskStatusFailed
			if logErr := o.failures.Append(task.URL); logErr != nil {
				o.log.Error("failed to record permanent failure", "url", task.URL, "err", logErr)
			}
			o.log.Warn("all retries failed, skipping", "url", task.URL)
			break
		}
	}

	task.FinishedAt = time.Now()
	o.tracker.Publish(progress.Event{URL: task.URL, Status: progress.StatusFinished})
}

// shouldRetry reports whether another attempt is allowed after the given
// 1-based attempt failed
func shouldRetry(attempt, limit int) bool {
	return attempt < limit
}
