// Package workerproc drives the analysis pipeline from the work queue:
// extract text, analyze it, persist the result, invalidate the dashboard.
package workerproc

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"deckflow-backend/internal/analysis"
	"deckflow-backend/internal/cache"
	"deckflow-backend/internal/decks"
	"deckflow-backend/internal/extract"
	"deckflow-backend/internal/queue"
	"deckflow-backend/internal/shared/metrics"
	"deckflow-backend/internal/shared/telemetry"
)

// ErrInvalidJob indicates a job missing required fields.
type ErrInvalidJob struct {
	Reason string
}

func (e ErrInvalidJob) Error() string { return "invalid job: " + e.Reason }

// ErrExtract indicates the source file could not be read.
type ErrExtract struct {
	Filename string
	Err      error
}

func (e ErrExtract) Error() string {
	if e.Err == nil {
		return "extract " + e.Filename
	}
	return "extract " + e.Filename + ": " + e.Err.Error()
}

func (e ErrExtract) Unwrap() error { return e.Err }

// ErrPersist indicates the store rejected the completed analysis.
type ErrPersist struct {
	Filename string
	Err      error
}

func (e ErrPersist) Error() string {
	if e.Err == nil {
		return "persist " + e.Filename
	}
	return "persist " + e.Filename + ": " + e.Err.Error()
}

func (e ErrPersist) Unwrap() error { return e.Err }

// Processor executes one analysis job end to end.
type Processor struct {
	Repo  decks.Repo
	Cache cache.Store
}

// ProcessJob runs a single job: the record moves pending -> processing ->
// processed, or to failed when extraction or analysis cannot complete. A
// persistence failure leaves the record in processing; there is no retry.
func (p *Processor) ProcessJob(ctx context.Context, job queue.Job) error {
	if strings.TrimSpace(job.Filename) == "" {
		return ErrInvalidJob{Reason: "filename required"}
	}
	if strings.TrimSpace(job.FilePath) == "" {
		return ErrInvalidJob{Reason: "file_path required"}
	}

	if err := p.Repo.MarkStatus(ctx, job.Filename, decks.StatusProcessing); err != nil {
		return ErrPersist{Filename: job.Filename, Err: err}
	}

	text, pageCount, err := extract.Extract(job.FilePath)
	if err != nil {
		p.markFailed(ctx, job.Filename)
		return ErrExtract{Filename: job.Filename, Err: err}
	}

	result := analysis.Analyze(text)

	if err := p.Repo.CompleteAnalysis(ctx, job.Filename, text, pageCount, result); err != nil {
		return ErrPersist{Filename: job.Filename, Err: err}
	}

	if err := p.Cache.Delete(ctx, cache.DashboardKey); err != nil {
		telemetry.Warn("dashboard cache invalidation failed", map[string]any{
			"filename": job.Filename,
			"error":    err.Error(),
		})
	}

	if err := os.Remove(job.FilePath); err != nil {
		telemetry.Warn("uploaded file cleanup failed", map[string]any{
			"file_path": job.FilePath,
			"error":     err.Error(),
		})
	}

	return nil
}

func (p *Processor) markFailed(ctx context.Context, filename string) {
	if err := p.Repo.MarkStatus(ctx, filename, decks.StatusFailed); err != nil {
		telemetry.Error("mark deck failed", map[string]any{
			"filename": filename,
			"error":    err.Error(),
		})
	}
}

// DefaultReceiveWait bounds each queue poll so shutdown is observed
// between polls.
const DefaultReceiveWait = 5 * time.Second

// Runner is the single-consumer worker loop.
type Runner struct {
	Consumer    queue.Consumer
	Processor   *Processor
	ReceiveWait time.Duration
}

// Run polls the queue until ctx is done. Each job is processed exactly
// once per receive; failures are logged and never retried.
func (r *Runner) Run(ctx context.Context) error {
	wait := r.ReceiveWait
	if wait <= 0 {
		wait = DefaultReceiveWait
	}

	telemetry.Info("worker started", map[string]any{"receive_wait": wait.String()})

	for {
		if err := ctx.Err(); err != nil {
			telemetry.Info("worker stopped", nil)
			return nil
		}

		job, ok, err := r.Consumer.Receive(ctx, wait)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				telemetry.Info("worker stopped", nil)
				return nil
			}
			telemetry.Error("receive job", map[string]any{"error": err.Error()})
			continue
		}
		if !ok {
			continue
		}

		metrics.IncJobsReceived()
		started := time.Now()
		if err := r.Processor.ProcessJob(ctx, job); err != nil {
			metrics.IncJobsFailed()
			telemetry.Error("process job", map[string]any{
				"filename": job.Filename,
				"error":    err.Error(),
			})
			continue
		}
		metrics.IncJobsCompleted()
		metrics.ObserveJobDurationMs(float64(time.Since(started)) / float64(time.Millisecond))
		telemetry.Info("job processed", map[string]any{
			"filename":    job.Filename,
			"duration_ms": time.Since(started).Milliseconds(),
		})
	}
}
