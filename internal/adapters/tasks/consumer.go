package tasks

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"conferencecentral/internal/domain"
)

const (
	// DefaultMaxAttempts bounds deliveries of a failing task before it is dropped.
	DefaultMaxAttempts = 5

	dequeueTimeout = 5 * time.Second
)

// Consumer pulls tasks off a Queue and dispatches them to registered
// handlers. A handler error re-queues the task for another attempt
// (at-least-once delivery); after MaxAttempts deliveries the task is dropped
// and logged.
type Consumer struct {
	queue       Queue
	handlers    map[string]domain.TaskHandler
	logger      *slog.Logger
	MaxAttempts int
}

// NewConsumer creates a Consumer over the given queue.
func NewConsumer(queue Queue, logger *slog.Logger) *Consumer {
	return &Consumer{
		queue:       queue,
		handlers:    make(map[string]domain.TaskHandler),
		logger:      logger,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Register binds a handler to a task name. Not safe to call after Run starts.
func (c *Consumer) Register(name string, handler domain.TaskHandler) {
	c.handlers[name] = handler
}

// Run consumes tasks until ctx is canceled.
func (c *Consumer) Run(ctx context.Context) {
	c.logger.Info("task consumer started")
	for {
		task, err := c.queue.Dequeue(ctx, dequeueTimeout)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("task consumer stopping")
				return
			}
			c.logger.Error("dequeue failed", "err", err)
			// Back off briefly so a broken queue connection does not spin.
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}
		if task == nil {
			if ctx.Err() != nil {
				c.logger.Info("task consumer stopping")
				return
			}
			continue
		}
		c.process(ctx, task)
	}
}

func (c *Consumer) process(ctx context.Context, task *Task) {
	handler, ok := c.handlers[task.Name]
	if !ok {
		c.logger.Error("no handler for task, dropping", "task", task.Name, "task_id", task.ID)
		return
	}

	task.Attempts++
	err := handler(ctx, task.Params)
	if err == nil {
		c.logger.Debug("task done", "task", task.Name, "task_id", task.ID, "attempts", task.Attempts)
		return
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		// Malformed tasks never succeed; retrying is pointless.
		c.logger.Error("task rejected", "task", task.Name, "task_id", task.ID, "err", err)
		return
	}
	if task.Attempts >= c.MaxAttempts {
		c.logger.Error("task failed permanently, dropping", "task", task.Name, "task_id", task.ID, "attempts", task.Attempts, "err", err)
		return
	}
	c.logger.Warn("task failed, re-queueing", "task", task.Name, "task_id", task.ID, "attempts", task.Attempts, "err", err)
	if rqErr := c.queue.Requeue(ctx, task); rqErr != nil {
		c.logger.Error("re-queue failed, task lost", "task", task.Name, "task_id", task.ID, "err", rqErr)
	}
}
