package queue

import (
	"context"
	"errors"
	"time"
)

const defaultCapacity = 1024

// ErrQueueFull is returned when a push would exceed the queue's capacity.
var ErrQueueFull = errors.New("queue full")

// Memory is an in-process multi-producer/single-consumer FIFO. It backs
// single-node deployments and tests; production uses the SQS adapter.
type Memory struct {
	jobs chan Job
}

// NewMemory constructs a memory queue. capacity <= 0 picks the default.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Memory{jobs: make(chan Job, capacity)}
}

// Push enqueues without blocking; a full queue is an error rather than
// backpressure so the upload request can fail fast.
func (m *Memory) Push(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case m.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Receive blocks until a job arrives, the wait elapses, or ctx is done.
func (m *Memory) Receive(ctx context.Context, wait time.Duration) (Job, bool, error) {
	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case job := <-m.jobs:
		return job, true, nil
	case <-timer.C:
		return Job{}, false, nil
	case <-ctx.Done():
		return Job{}, false, ctx.Err()
	}
}

// Len reports the number of queued jobs. Test helper.
func (m *Memory) Len() int { return len(m.jobs) }

var (
	_ Producer = (*Memory)(nil)
	_ Consumer = (*Memory)(nil)
)
