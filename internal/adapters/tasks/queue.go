package tasks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"conferencecentral/internal/domain"
)

// Task is one unit of deferred work on the queue. Attempts counts deliveries
// so the consumer can bound retries of a poison task.
type Task struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Params     map[string]string `json:"params"`
	Attempts   int               `json:"attempts"`
	EnqueuedAt time.Time         `json:"enqueued_at"`
}

// newTask builds a Task with a fresh ID.
func newTask(name string, params map[string]string) *Task {
	return &Task{
		ID:         uuid.NewString(),
		Name:       name,
		Params:     params,
		EnqueuedAt: time.Now(),
	}
}

// Queue is the transport beneath the dispatcher and the consumer. Dequeue
// blocks until a task arrives, the timeout elapses (nil, nil), or ctx is
// done.
type Queue interface {
	domain.TaskDispatcher
	Dequeue(ctx context.Context, timeout time.Duration) (*Task, error)
	// Requeue puts a previously delivered task back for another attempt.
	Requeue(ctx context.Context, t *Task) error
}
