package queue

import (
	"context"
	"time"
)

// Producer pushes job descriptors onto the work queue.
type Producer interface {
	Push(ctx context.Context, job Job) error
}

// Consumer pops job descriptors. Receive blocks for at most wait so a
// caller can observe shutdown between polls; ok=false means the wait
// elapsed without a job.
type Consumer interface {
	Receive(ctx context.Context, wait time.Duration) (job Job, ok bool, err error)
}
