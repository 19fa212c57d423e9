package scheduler

import "context"

// defaultQueueSize is the number of tasks that may wait for the queue goroutine.
const defaultQueueSize = 16

// queue runs tasks one at a time on a single goroutine.
type queue struct {
	tasks chan func()
}

func newQueue(size int) *queue {
	return &queue{
		tasks: make(chan func(), size),
	}
}

// run executes queued tasks until ctx is done.
func (q *queue) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-q.tasks:
			task()
		}
	}
}

// dispatch enqueues task without waiting for it to run.
func (q *queue) dispatch(ctx context.Context, task func()) error {
	select {
	case q.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// await enqueues task and waits until it has run.
func (q *queue) await(ctx context.Context, task func()) error {
	done := make(chan struct{})

	err := q.dispatch(ctx, func() {
		task()
		close(done)
	})
	if err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
