package tasks

import (
	"context"
	"fmt"
	"time"
)

// memoryQueue is an in-process Queue for development and tests.
type memoryQueue struct {
	ch chan *Task
}

// NewMemoryQueue returns an in-memory Queue with the given buffer size.
func NewMemoryQueue(size int) Queue {
	if size <= 0 {
		size = 128
	}
	return &memoryQueue{ch: make(chan *Task, size)}
}

func (q *memoryQueue) Enqueue(ctx context.Context, name string, params map[string]string) error {
	return q.push(ctx, newTask(name, params))
}

func (q *memoryQueue) Requeue(ctx context.Context, t *Task) error {
	return q.push(ctx, t)
}

func (q *memoryQueue) push(_ context.Context, t *Task) error {
	select {
	case q.ch <- t:
		return nil
	default:
		return fmt.Errorf("task queue full")
	}
}

func (q *memoryQueue) Dequeue(ctx context.Context, timeout time.Duration) (*Task, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case t := <-q.ch:
		return t, nil
	case <-timer.C:
		return nil, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
