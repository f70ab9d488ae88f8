package eventstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipforge/clipforge/pkg/models"
)

func publishAt(t *testing.T, store *Store, ts time.Time, ev *models.Event) string {
	t.Helper()
	ev.Timestamp = ts
	id, err := store.Publish(context.Background(), ev)
	require.NoError(t, err)
	return id
}

func TestReplay(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	publishAt(t, store, base, &models.Event{
		ProjectID: "proj-a", Type: models.EventProjectCreated, Actor: "api"})
	publishAt(t, store, base.Add(1*time.Second), &models.Event{
		ProjectID: "proj-a", Type: models.EventSceneWritten, Actor: "script_agent"})
	publishAt(t, store, base.Add(2*time.Second), &models.Event{
		ProjectID: "proj-b", Type: models.EventSceneWritten, Actor: "script_agent"})
	publishAt(t, store, base.Add(3*time.Second), &models.Event{
		ProjectID: "proj-a", Type: models.EventShotPlanned, Actor: "director_agent"})

	t.Run("filters by project", func(t *testing.T) {
		events, err := store.Replay(ctx, ReplayFilter{ProjectID: "proj-a"})
		require.NoError(t, err)
		require.Len(t, events, 3)
		for _, ev := range events {
			assert.Equal(t, "proj-a", ev.ProjectID)
		}
	})

	t.Run("orders by timestamp", func(t *testing.T) {
		events, err := store.Replay(ctx, ReplayFilter{ProjectID: "proj-a"})
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, models.EventProjectCreated, events[0].Type)
		assert.Equal(t, models.EventSceneWritten, events[1].Type)
		assert.Equal(t, models.EventShotPlanned, events[2].Type)
	})

	t.Run("filters by type", func(t *testing.T) {
		events, err := store.Replay(ctx, ReplayFilter{
			Types: []models.EventType{models.EventSceneWritten},
		})
		require.NoError(t, err)
		require.Len(t, events, 2)
	})

	t.Run("empty result for unknown project", func(t *testing.T) {
		events, err := store.Replay(ctx, ReplayFilter{ProjectID: "proj-z"})
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestCausationChain(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("returns root-first chain", func(t *testing.T) {
		root := publishAt(t, store, time.Now().UTC(), &models.Event{
			ProjectID: "proj-1", Type: models.EventProjectCreated, Actor: "api"})
		mid := publishAt(t, store, time.Now().UTC(), &models.Event{
			ProjectID: "proj-1", Type: models.EventSceneWritten,
			Actor: "script_agent", CausationID: root})
		leaf := publishAt(t, store, time.Now().UTC(), &models.Event{
			ProjectID: "proj-1", Type: models.EventShotPlanned,
			Actor: "director_agent", CausationID: mid})

		chain, err := store.CausationChain(ctx, leaf)
		require.NoError(t, err)
		require.Len(t, chain, 3)
		assert.Equal(t, root, chain[0].ID)
		assert.Equal(t, mid, chain[1].ID)
		assert.Equal(t, leaf, chain[2].ID)
	})

	t.Run("single event is its own root", func(t *testing.T) {
		id := publishAt(t, store, time.Now().UTC(), &models.Event{
			ProjectID: "proj-2", Type: models.EventProjectCreated, Actor: "api"})

		chain, err := store.CausationChain(ctx, id)
		require.NoError(t, err)
		require.Len(t, chain, 1)
		assert.Equal(t, id, chain[0].ID)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := store.CausationChain(ctx, "no-such-event")
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("truncates at expired ancestor", func(t *testing.T) {
		leaf := publishAt(t, store, time.Now().UTC(), &models.Event{
			ProjectID: "proj-3", Type: models.EventSceneWritten,
			Actor: "script_agent", CausationID: "aged-out-id"})

		chain, err := store.CausationChain(ctx, leaf)
		require.NoError(t, err)
		require.Len(t, chain, 1)
		assert.Equal(t, leaf, chain[0].ID)
	})

	t.Run("cycle terminates", func(t *testing.T) {
		// Two events referencing each other must not loop forever.
		a := publishAt(t, store, time.Now().UTC(), &models.Event{
			ID: "cycle-a", ProjectID: "proj-4", Type: models.EventSceneWritten,
			Actor: "script_agent", CausationID: "cycle-b"})
		publishAt(t, store, time.Now().UTC(), &models.Event{
			ID: "cycle-b", ProjectID: "proj-4", Type: models.EventShotPlanned,
			Actor: "director_agent", CausationID: "cycle-a"})

		chain, err := store.CausationChain(ctx, a)
		require.NoError(t, err)
		assert.Len(t, chain, 2)
	})

	t.Run("caps chain length", func(t *testing.T) {
		prev := ""
		var leaf string
		for i := 0; i <= store.cfg.CausationChainCap; i++ {
			leaf = publishAt(t, store, time.Now().UTC(), &models.Event{
				ProjectID: "proj-5", Type: models.EventPromptTuned,
				Actor: "tuning_agent", CausationID: prev})
			prev = leaf
		}

		_, err := store.CausationChain(ctx, leaf)
		assert.ErrorIs(t, err, ErrChainTooLong)
	})
}
