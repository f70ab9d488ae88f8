package taskqueue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipforge/clipforge/pkg/models"
)

func newTestQueue(t *testing.T) *Queue {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb)
}

func task(id string, priority int, createdAt time.Time) models.Task {
	return models.Task{
		ID:        id,
		Type:      models.TaskGenerateKeyframe,
		Status:    models.TaskPending,
		Priority:  priority,
		CreatedAt: createdAt,
	}
}

func TestScoreOrdering(t *testing.T) {
	base := time.Now()

	t.Run("higher priority sorts first", func(t *testing.T) {
		assert.Less(t, Score(5, base), Score(3, base))
		assert.Less(t, Score(3, base), Score(1, base))
	})

	t.Run("older sorts first within a priority", func(t *testing.T) {
		assert.Less(t, Score(3, base), Score(3, base.Add(time.Millisecond)))
	})

	t.Run("timestamps never cross priority bands", func(t *testing.T) {
		// A low-priority task created years earlier must still sort after
		// any higher-priority task.
		old := base.Add(-10 * 365 * 24 * time.Hour)
		assert.Less(t, Score(4, base), Score(3, old))
	})

	t.Run("out-of-range priorities are clamped", func(t *testing.T) {
		assert.Equal(t, Score(models.PriorityMax, base), Score(99, base))
		assert.Equal(t, Score(models.PriorityMin, base), Score(0, base))
	})
}

func TestEnqueuePeek(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, q.Enqueue(ctx, "proj-1", task("low", 1, base)))
	require.NoError(t, q.Enqueue(ctx, "proj-1", task("high", 5, base.Add(time.Second))))
	require.NoError(t, q.Enqueue(ctx, "proj-1", task("mid-old", 3, base)))
	require.NoError(t, q.Enqueue(ctx, "proj-1", task("mid-new", 3, base.Add(time.Second))))

	ids, err := q.Peek(ctx, "proj-1", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "mid-old", "mid-new", "low"}, ids)

	// Peek does not consume.
	depth, err := q.Depth(ctx, "proj-1")
	require.NoError(t, err)
	assert.EqualValues(t, 4, depth)
}

func TestEnqueueIdempotent(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()
	base := time.Now()

	tk := task("t1", 3, base)
	require.NoError(t, q.Enqueue(ctx, "proj-1", tk))

	// A duplicate enqueue with a different priority must not move the task.
	dup := tk
	dup.Priority = 5
	require.NoError(t, q.Enqueue(ctx, "proj-1", dup))
	require.NoError(t, q.Enqueue(ctx, "proj-1", task("t2", 4, base)))

	ids, err := q.Peek(ctx, "proj-1", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"t2", "t1"}, ids)
}

func TestClaim(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, q.Enqueue(ctx, "proj-1", task("t1", 3, base)))
	require.NoError(t, q.Enqueue(ctx, "proj-1", task("t2", 3, base.Add(time.Second))))

	id, err := q.Claim(ctx, "proj-1", []string{"t1", "t2"})
	require.NoError(t, err)
	assert.Equal(t, "t1", id)

	// t1 is gone; a second claim over the same candidates gets t2.
	id, err = q.Claim(ctx, "proj-1", []string{"t1", "t2"})
	require.NoError(t, err)
	assert.Equal(t, "t2", id)

	_, err = q.Claim(ctx, "proj-1", []string{"t1", "t2"})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestClaimSkipsMissing(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "proj-1", task("t2", 3, time.Now())))

	// t1 was claimed by another replica; the claim falls through to t2.
	id, err := q.Claim(ctx, "proj-1", []string{"t1", "t2"})
	require.NoError(t, err)
	assert.Equal(t, "t2", id)
}

func TestRemove(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, q.Enqueue(ctx, "proj-1", task("t1", 3, base)))
	require.NoError(t, q.Enqueue(ctx, "proj-1", task("t2", 3, base)))
	require.NoError(t, q.Remove(ctx, "proj-1", "t1"))

	ids, err := q.Peek(ctx, "proj-1", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"t2"}, ids)
}

func TestRebuild(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, q.Enqueue(ctx, "proj-1", task("stale", 3, base)))

	tasks := map[string]models.Task{
		"pending":  {ID: "pending", Status: models.TaskPending, Priority: 3, CreatedAt: base},
		"ready":    {ID: "ready", Status: models.TaskReady, Priority: 5, CreatedAt: base},
		"running":  {ID: "running", Status: models.TaskInProgress, Priority: 3, CreatedAt: base},
		"done":     {ID: "done", Status: models.TaskCompleted, Priority: 3, CreatedAt: base},
		"gone":     {ID: "gone", Status: models.TaskCancelled, Priority: 3, CreatedAt: base},
		"deferred": {ID: "deferred", Status: models.TaskWaitingApproval, Priority: 3, CreatedAt: base},
	}
	require.NoError(t, q.Rebuild(ctx, "proj-1", tasks))

	ids, err := q.Peek(ctx, "proj-1", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"ready", "pending"}, ids, "only queueable tasks survive a rebuild")
}

func TestDrop(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, q.Enqueue(ctx, "proj-1", task(fmt.Sprintf("t%d", i), 3, time.Now())))
	}
	require.NoError(t, q.Drop(ctx, "proj-1"))

	depth, err := q.Depth(ctx, "proj-1")
	require.NoError(t, err)
	assert.Zero(t, depth)
}
