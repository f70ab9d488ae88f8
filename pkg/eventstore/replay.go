package eventstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clipforge/clipforge/pkg/models"
)

// ReplayFilter bounds a replay query. Zero-value fields are unbounded;
// empty Types means all types.
type ReplayFilter struct {
	ProjectID string
	Types     []models.EventType
	Since     time.Time
	Until     time.Time
}

// GetEvent fetches one event by id from the index.
func (s *Store) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	raw, err := s.rdb.Get(ctx, IndexKey(eventID)).Result()
	if err == redis.Nil {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", eventID, err)
	}
	var ev models.Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		return nil, fmt.Errorf("unmarshal event %s: %w", eventID, err)
	}
	return &ev, nil
}

// Replay returns matching events ordered by timestamp, event id breaking
// ties. The time bounds translate to stream id ranges, so each stream is
// range-scanned rather than walked end to end.
func (s *Store) Replay(ctx context.Context, filter ReplayFilter) ([]*models.Event, error) {
	types := filter.Types
	if len(types) == 0 {
		types = models.AllEventTypes()
	}

	start, end := "-", "+"
	if !filter.Since.IsZero() {
		start = strconv.FormatInt(filter.Since.UnixMilli(), 10) + "-0"
	}
	if !filter.Until.IsZero() {
		end = strconv.FormatInt(filter.Until.UnixMilli(), 10) + "-18446744073709551615"
	}

	var out []*models.Event
	for _, t := range types {
		msgs, err := s.rdb.XRange(ctx, StreamKey(t), start, end).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("replay %s: %w", t, err)
		}
		for _, msg := range msgs {
			ev, err := decodeMessage(msg)
			if err != nil {
				continue // poisoned entries are handled by the delivery path
			}
			if filter.ProjectID != "" && ev.ProjectID != filter.ProjectID {
				continue
			}
			out = append(out, ev)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CausationChain walks causation ids from the given event back to its
// root and returns the chain root-first. A visited set guards against
// reference cycles, and walks longer than the configured cap fail with
// ErrChainTooLong. A causation id whose event has aged out of the index
// truncates the chain there instead of failing.
func (s *Store) CausationChain(ctx context.Context, eventID string) ([]*models.Event, error) {
	var chain []*models.Event
	visited := make(map[string]bool)

	id := eventID
	for id != "" {
		if len(chain) >= s.cfg.CausationChainCap {
			return nil, ErrChainTooLong
		}
		if visited[id] {
			break
		}
		visited[id] = true

		ev, err := s.GetEvent(ctx, id)
		if err == ErrEventNotFound {
			if len(chain) == 0 {
				return nil, ErrEventNotFound
			}
			break // ancestor expired from the index
		}
		if err != nil {
			return nil, err
		}
		chain = append(chain, ev)
		id = ev.CausationID
	}

	// Walked leaf-to-root, reverse to root-first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}
