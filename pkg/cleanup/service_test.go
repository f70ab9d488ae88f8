package cleanup

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipforge/clipforge/pkg/config"
	"github.com/clipforge/clipforge/pkg/eventstore"
	"github.com/clipforge/clipforge/pkg/models"
)

type fakeState struct {
	mu      sync.Mutex
	expired []string
	pruned  [][]string
}

func (f *fakeState) ExpiredProjectIDs(_ context.Context, _ time.Time) ([]string, error) {
	return f.expired, nil
}

func (f *fakeState) PruneChangeEntries(_ context.Context, projectIDs []string, _ time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pruned = append(f.pruned, projectIDs)
	return len(projectIDs) * 3, nil
}

func newSweepEnv(t *testing.T, expired ...string) (*Service, *fakeState, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	state := &fakeState{expired: expired}
	cfg := config.DefaultRetentionConfig()
	return NewService(cfg, state, rdb), state, rdb
}

// seedEvent adds one stream entry with an explicit id so tests control
// the entry's age.
func seedEvent(t *testing.T, rdb *redis.Client, eventType models.EventType, projectID string, at time.Time, seq int) string {
	t.Helper()
	id := strconv.FormatInt(at.UnixMilli(), 10) + "-" + strconv.Itoa(seq)
	_, err := rdb.XAdd(context.Background(), &redis.XAddArgs{
		Stream: eventstore.StreamKey(eventType),
		ID:     id,
		Values: map[string]any{"id": "ev-" + id, "project_id": projectID, "data": "{}"},
	}).Result()
	require.NoError(t, err)
	return id
}

func TestSweepTrimsExpiredProjectEvents(t *testing.T) {
	svc, state, rdb := newSweepEnv(t, "proj-old")
	ctx := context.Background()

	old := time.Now().UTC().Add(-60 * 24 * time.Hour)
	fresh := time.Now().UTC().Add(-time.Hour)

	// Old entries from both an expired and a still-live project, plus a
	// recent entry from the expired project.
	seedEvent(t, rdb, models.EventImageGenerated, "proj-old", old, 1)
	keepLive := seedEvent(t, rdb, models.EventImageGenerated, "proj-live", old, 2)
	keepRecent := seedEvent(t, rdb, models.EventImageGenerated, "proj-old", fresh, 1)

	svc.Sweep(ctx)

	msgs, err := rdb.XRange(ctx, eventstore.StreamKey(models.EventImageGenerated), "-", "+").Result()
	require.NoError(t, err)
	var remaining []string
	for _, m := range msgs {
		remaining = append(remaining, m.ID)
	}
	assert.ElementsMatch(t, []string{keepLive, keepRecent}, remaining,
		"only old entries of expired projects go")

	require.Len(t, state.pruned, 1)
	assert.Equal(t, []string{"proj-old"}, state.pruned[0])
}

func TestSweepNoExpiredProjects(t *testing.T) {
	svc, state, rdb := newSweepEnv(t)
	ctx := context.Background()

	old := time.Now().UTC().Add(-60 * 24 * time.Hour)
	keep := seedEvent(t, rdb, models.EventQAReport, "proj-live", old, 1)

	svc.Sweep(ctx)

	msgs, err := rdb.XRange(ctx, eventstore.StreamKey(models.EventQAReport), "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, keep, msgs[0].ID)
	assert.Empty(t, state.pruned, "nothing to prune")
}

func TestStartStop(t *testing.T) {
	svc, _, _ := newSweepEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.Start(ctx)
	done := make(chan struct{})
	go func() {
		svc.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}
