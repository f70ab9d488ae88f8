// Package taskqueue implements the per-project ready queue as a Redis
// sorted set. The queue holds task ids only; task state lives in the
// project aggregate, which stays authoritative. A queue lost to Redis
// failure is rebuilt from the aggregate's PENDING and READY tasks.
package taskqueue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clipforge/clipforge/pkg/models"
)

// ErrEmpty indicates a claim attempt on an empty queue.
var ErrEmpty = errors.New("task queue empty")

// Key returns the queue key for a project.
func Key(projectID string) string {
	return "queue:project:" + projectID
}

// priorityBand spaces priority bands far enough apart that no creation
// timestamp in ms can cross into the next band.
const priorityBand = 1e13

// Score orders the queue: higher priority first, older first within a
// priority, member id breaking exact ties via Redis's lexicographic
// ordering of equal scores.
func Score(priority int, createdAt time.Time) float64 {
	if priority < models.PriorityMin {
		priority = models.PriorityMin
	}
	if priority > models.PriorityMax {
		priority = models.PriorityMax
	}
	return float64(models.PriorityMax-priority)*priorityBand + float64(createdAt.UnixMilli())
}

// claimScript pops the first member matching one of the candidate ids.
// Scanning and removing in one script keeps competing scheduler replicas
// from claiming the same task.
var claimScript = redis.NewScript(`
for i, id in ipairs(ARGV) do
	if redis.call("ZREM", KEYS[1], id) == 1 then
		return id
	end
end
return false
`)

// Queue is the Redis-backed ready queue.
type Queue struct {
	rdb *redis.Client
}

// New creates a queue over the given Redis client.
func New(rdb *redis.Client) *Queue {
	return &Queue{rdb: rdb}
}

// Enqueue inserts a task id. Re-enqueueing an id already present is a
// no-op that preserves the original position, so duplicate events cannot
// reorder the queue.
func (q *Queue) Enqueue(ctx context.Context, projectID string, task models.Task) error {
	err := q.rdb.ZAddNX(ctx, Key(projectID), redis.Z{
		Score:  Score(task.Priority, task.CreatedAt),
		Member: task.ID,
	}).Err()
	if err != nil {
		return fmt.Errorf("enqueue task %s: %w", task.ID, err)
	}
	return nil
}

// Peek returns up to n task ids from the head of the queue without
// removing them. The scheduler filters these against the aggregate's
// dependency state before claiming.
func (q *Queue) Peek(ctx context.Context, projectID string, n int64) ([]string, error) {
	ids, err := q.rdb.ZRange(ctx, Key(projectID), 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("peek queue %s: %w", projectID, err)
	}
	return ids, nil
}

// Claim atomically removes and returns the first of the candidate ids
// still present, in the order given. Returns ErrEmpty when none remain;
// a competing replica claimed them first.
func (q *Queue) Claim(ctx context.Context, projectID string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmpty
	}
	args := make([]any, len(candidates))
	for i, id := range candidates {
		args[i] = id
	}
	id, err := claimScript.Run(ctx, q.rdb, []string{Key(projectID)}, args...).Text()
	if err == redis.Nil {
		return "", ErrEmpty
	}
	if err != nil {
		return "", fmt.Errorf("claim from queue %s: %w", projectID, err)
	}
	return id, nil
}

// Requeue puts a task back, bumping nothing: the original priority and
// creation time keep its position stable across retries.
func (q *Queue) Requeue(ctx context.Context, projectID string, task models.Task) error {
	return q.Enqueue(ctx, projectID, task)
}

// Remove deletes task ids from the queue, used on cancellation.
func (q *Queue) Remove(ctx context.Context, projectID string, taskIDs ...string) error {
	if len(taskIDs) == 0 {
		return nil
	}
	members := make([]any, len(taskIDs))
	for i, id := range taskIDs {
		members[i] = id
	}
	if err := q.rdb.ZRem(ctx, Key(projectID), members...).Err(); err != nil {
		return fmt.Errorf("remove from queue %s: %w", projectID, err)
	}
	return nil
}

// Depth returns the number of queued tasks for the project.
func (q *Queue) Depth(ctx context.Context, projectID string) (int64, error) {
	n, err := q.rdb.ZCard(ctx, Key(projectID)).Result()
	if err != nil {
		return 0, fmt.Errorf("queue depth %s: %w", projectID, err)
	}
	return n, nil
}

// Rebuild reconstructs the queue from the aggregate's queueable tasks
// after a Redis loss. The queue is replaced wholesale.
func (q *Queue) Rebuild(ctx context.Context, projectID string, tasks map[string]models.Task) error {
	key := Key(projectID)

	var members []redis.Z
	for _, t := range tasks {
		if !t.Queueable() {
			continue
		}
		members = append(members, redis.Z{Score: Score(t.Priority, t.CreatedAt), Member: t.ID})
	}

	pipe := q.rdb.TxPipeline()
	pipe.Del(ctx, key)
	if len(members) > 0 {
		pipe.ZAdd(ctx, key, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("rebuild queue %s: %w", projectID, err)
	}
	return nil
}

// Drop deletes the project's queue entirely, used on abort and cleanup.
func (q *Queue) Drop(ctx context.Context, projectID string) error {
	if err := q.rdb.Del(ctx, Key(projectID)).Err(); err != nil {
		return fmt.Errorf("drop queue %s: %w", projectID, err)
	}
	return nil
}
