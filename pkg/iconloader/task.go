package iconloader

import (
	"context"
	"sync"
)

// Task tracks one background icon load.
type Task struct {
	URL string

	once sync.Once
	done chan struct{}
	err  error
}

func newTask(url string) *Task {
	return &Task{URL: url, done: make(chan struct{})}
}

func (t *Task) finish(err error) {
	t.once.Do(func() {
		t.err = err
		close(t.done)
	})
}

// Done is closed once the load failed or its callback has run.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the task completes and returns its error.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// WaitContext is Wait bounded by ctx.
func (t *Task) WaitContext(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the task error, or nil while the task is still running.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}
