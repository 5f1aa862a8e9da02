package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisQueue implements Queue on a Redis list: LPUSH to enqueue, BRPOP to
// consume. Delivery is at-least-once: a consumer that dies mid-task loses
// nothing the producer cannot re-enqueue, and handlers are idempotent.
type redisQueue struct {
	client *redis.Client
	key    string
}

// NewRedisQueue returns a Queue backed by a Redis list under the given key.
func NewRedisQueue(client *redis.Client, key string) Queue {
	return &redisQueue{client: client, key: key}
}

func (q *redisQueue) Enqueue(ctx context.Context, name string, params map[string]string) error {
	return q.push(ctx, newTask(name, params))
}

func (q *redisQueue) Requeue(ctx context.Context, t *Task) error {
	return q.push(ctx, t)
}

func (q *redisQueue) push(ctx context.Context, t *Task) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("enqueue task %s: %w", t.Name, err)
	}
	return nil
}

func (q *redisQueue) Dequeue(ctx context.Context, timeout time.Duration) (*Task, error) {
	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// BRPOP returns [key, value].
	if len(res) != 2 {
		return nil, fmt.Errorf("unexpected BRPOP reply of length %d", len(res))
	}
	var t Task
	if err := json.Unmarshal([]byte(res[1]), &t); err != nil {
		return nil, fmt.Errorf("unmarshal task: %w", err)
	}
	return &t, nil
}
