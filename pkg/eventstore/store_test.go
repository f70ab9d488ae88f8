package eventstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipforge/clipforge/pkg/config"
	"github.com/clipforge/clipforge/pkg/models"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	cfg := config.DefaultEventsConfig()
	return New(rdb, cfg, time.Hour, "test-consumer"), mr
}

type recordingSubscriber struct {
	name string

	mu     sync.Mutex
	events []*models.Event
	fail   bool
}

func (r *recordingSubscriber) Name() string { return r.name }

func (r *recordingSubscriber) HandleEvent(_ context.Context, ev *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return assert.AnError
	}
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingSubscriber) seen() []*models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Event, len(r.events))
	copy(out, r.events)
	return out
}

func TestPublish(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	t.Run("assigns id and timestamp", func(t *testing.T) {
		ev := &models.Event{
			ProjectID: "proj-1",
			Type:      models.EventSceneWritten,
			Actor:     "script_agent",
		}
		id, err := store.Publish(ctx, ev)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, ev.ID)
		assert.False(t, ev.Timestamp.IsZero())
	})

	t.Run("writes stream entry and id index", func(t *testing.T) {
		ev := &models.Event{
			ProjectID: "proj-2",
			Type:      models.EventShotPlanned,
			Actor:     "director_agent",
		}
		id, err := store.Publish(ctx, ev)
		require.NoError(t, err)

		assert.True(t, mr.Exists(StreamKey(models.EventShotPlanned)))
		assert.True(t, mr.Exists(IndexKey(id)))

		got, err := store.GetEvent(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "proj-2", got.ProjectID)
		assert.Equal(t, models.EventShotPlanned, got.Type)
	})

	t.Run("preserves caller-supplied id", func(t *testing.T) {
		ev := &models.Event{
			ID:        "fixed-id",
			ProjectID: "proj-3",
			Type:      models.EventTaskCompleted,
			Actor:     "scheduler",
		}
		id, err := store.Publish(ctx, ev)
		require.NoError(t, err)
		assert.Equal(t, "fixed-id", id)
	})
}

func TestLocalFanout(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sub := &recordingSubscriber{name: "orchestrator"}
	store.Subscribe(sub, []models.EventType{models.EventSceneWritten})

	_, err := store.Publish(ctx, &models.Event{
		ProjectID: "proj-1",
		Type:      models.EventSceneWritten,
		Actor:     "script_agent",
	})
	require.NoError(t, err)

	seen := sub.seen()
	require.Len(t, seen, 1)
	assert.Equal(t, "proj-1", seen[0].ProjectID)

	// Types the subscriber did not register for are not delivered locally.
	_, err = store.Publish(ctx, &models.Event{
		ProjectID: "proj-1",
		Type:      models.EventShotPlanned,
		Actor:     "director_agent",
	})
	require.NoError(t, err)
	assert.Len(t, sub.seen(), 1)
}

func TestLocalFanoutHandlerError(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sub := &recordingSubscriber{name: "orchestrator", fail: true}
	store.Subscribe(sub, []models.EventType{models.EventSceneWritten})

	// Publish succeeds even when the local handler fails; the durable
	// entry is what the redelivery path works from.
	id, err := store.Publish(ctx, &models.Event{
		ProjectID: "proj-1",
		Type:      models.EventSceneWritten,
		Actor:     "script_agent",
	})
	require.NoError(t, err)
	assert.True(t, mr.Exists(IndexKey(id)))
}

func TestSubscribeIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	sub := &recordingSubscriber{name: "orchestrator"}
	store.Subscribe(sub, []models.EventType{models.EventSceneWritten})
	store.Subscribe(sub, []models.EventType{models.EventSceneWritten})

	_, err := store.Publish(context.Background(), &models.Event{
		ProjectID: "proj-1",
		Type:      models.EventSceneWritten,
		Actor:     "script_agent",
	})
	require.NoError(t, err)
	assert.Len(t, sub.seen(), 1, "duplicate registration must not double-deliver")
}

func TestGetEventNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.GetEvent(context.Background(), "no-such-event")
	assert.ErrorIs(t, err, ErrEventNotFound)
}
