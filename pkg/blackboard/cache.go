package blackboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clipforge/clipforge/pkg/models"
)

// invalidationChannel carries project ids whose cached state is stale.
// Every replica subscribes and drops its local entry on receipt.
const invalidationChannel = "blackboard:invalidate"

func cacheKey(projectID string) string {
	return "project:state:" + projectID
}

// Cache is the two-tier read cache in front of the projects table: a
// per-process map backed by Redis. Writes never go through the cache;
// mutations invalidate after committing, so a stale read is bounded by
// the invalidation publish latency. Version-checked writes stay correct
// regardless because the version predicate runs against the database.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration

	mu    sync.RWMutex
	local map[string]*models.ProjectState
}

// NewCache creates a cache with the given entry TTL.
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		rdb:   rdb,
		ttl:   ttl,
		local: make(map[string]*models.ProjectState),
	}
}

// Get returns the cached state, or nil on a miss. Redis errors read as
// misses; the caller falls through to the database.
func (c *Cache) Get(ctx context.Context, projectID string) *models.ProjectState {
	c.mu.RLock()
	st := c.local[projectID]
	c.mu.RUnlock()
	if st != nil {
		return st
	}

	raw, err := c.rdb.Get(ctx, cacheKey(projectID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Cache read failed", "project_id", projectID, "error", err)
		}
		return nil
	}
	st = &models.ProjectState{}
	if err := json.Unmarshal(raw, st); err != nil {
		slog.Warn("Cache entry corrupt, dropping", "project_id", projectID, "error", err)
		_ = c.rdb.Del(ctx, cacheKey(projectID)).Err()
		return nil
	}

	c.mu.Lock()
	c.local[projectID] = st
	c.mu.Unlock()
	return st
}

// Put stores a freshly loaded state. Best effort.
func (c *Cache) Put(ctx context.Context, st *models.ProjectState) {
	c.mu.Lock()
	c.local[st.ID] = st
	c.mu.Unlock()

	raw, err := json.Marshal(st)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(st.ID), raw, c.ttl).Err(); err != nil {
		slog.Warn("Cache write failed", "project_id", st.ID, "error", err)
	}
}

// Invalidate drops the entry everywhere: local map, Redis key, and a
// publish so other replicas drop their local copies.
func (c *Cache) Invalidate(ctx context.Context, projectID string) {
	c.mu.Lock()
	delete(c.local, projectID)
	c.mu.Unlock()

	pipe := c.rdb.Pipeline()
	pipe.Del(ctx, cacheKey(projectID))
	pipe.Publish(ctx, invalidationChannel, projectID)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("Cache invalidation failed", "project_id", projectID, "error", err)
	}
}

// StartInvalidationListener subscribes to the invalidation channel and
// drops local entries as peers announce writes. Returns after the
// subscription is established; delivery runs until ctx is cancelled.
func (c *Cache) StartInvalidationListener(ctx context.Context) error {
	sub := c.rdb.Subscribe(ctx, invalidationChannel)
	if _, err := sub.Receive(ctx); err != nil {
		return err
	}

	go func() {
		defer func() { _ = sub.Close() }()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				c.mu.Lock()
				delete(c.local, msg.Payload)
				c.mu.Unlock()
			}
		}
	}()
	return nil
}
