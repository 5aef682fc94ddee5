// Package async dispatches pipeline runs to a bounded worker pool. Retry
// policy lives here, not in the pipelines.
package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
	"github.com/evgenyd/docs-metadata-enhancer/internal/pipeline"
)

// Stage selects which pipeline a job runs.
type Stage string

const (
	StageExtraction Stage = "extraction"
	StageEnrichment Stage = "enrichment"
	StageResync     Stage = "resync"
)

// Job is one document pipeline invocation.
type Job struct {
	DocumentID  uuid.UUID
	Stage       Stage
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

type ProcessorQueue struct {
	proc    *pipeline.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration
	retries int

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// WithRetries bounds how many times a transient failure is retried.
func WithRetries(n int) Option {
	return func(q *ProcessorQueue) {
		if n >= 0 {
			q.retries = n
		}
	}
}

func NewProcessorQueue(proc *pipeline.Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 10 * time.Minute,
		retries: 2,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					q.runJob(workerID, job)
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) runJob(workerID int, job Job) {
	for attempt := 0; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		err := q.dispatch(ctx, job)
		cancel()

		if err == nil {
			q.logger.Info("job processed",
				"worker_id", workerID,
				"document_id", job.DocumentID,
				"stage", job.Stage,
				"attempt", attempt+1,
			)
			return
		}

		if attempt < q.retries && errors.Is(err, common.ErrBackendUnavailable) {
			q.logger.Warn("transient failure, retrying",
				"worker_id", workerID,
				"document_id", job.DocumentID,
				"stage", job.Stage,
				"attempt", attempt+1,
				"error", err,
			)
			continue
		}

		q.logger.Error("job failed",
			"worker_id", workerID,
			"document_id", job.DocumentID,
			"stage", job.Stage,
			"attempts", attempt+1,
			"error", err,
		)
		return
	}
}

func (q *ProcessorQueue) dispatch(ctx context.Context, job Job) error {
	switch job.Stage {
	case StageEnrichment:
		return q.proc.RunEnrichment(ctx, job.DocumentID)
	case StageResync:
		return q.proc.RunResync(ctx, job.DocumentID)
	default:
		return q.proc.RunExtraction(ctx, job.DocumentID)
	}
}

func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", job.DocumentID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued document", "document_id", job.DocumentID, "stage", job.Stage)
	default:
		q.logger.Warn("queue full, applying backpressure", "document_id", job.DocumentID)
		q.ch <- job
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
