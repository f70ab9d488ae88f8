// Package cleanup enforces data retention: events and change history of
// long-finished projects are trimmed on a periodic sweep. All operations
// are idempotent and safe to run from multiple replicas.
package cleanup

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clipforge/clipforge/pkg/config"
	"github.com/clipforge/clipforge/pkg/eventstore"
	"github.com/clipforge/clipforge/pkg/models"
)

// StateStore is the slice of the blackboard the sweeper needs.
type StateStore interface {
	ExpiredProjectIDs(ctx context.Context, cutoff time.Time) ([]string, error)
	PruneChangeEntries(ctx context.Context, projectIDs []string, cutoff time.Time) (int, error)
}

const sweepBatch = 256

// Service runs the retention sweeps.
type Service struct {
	cfg   *config.RetentionConfig
	state StateStore
	rdb   *redis.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention sweeper.
func NewService(cfg *config.RetentionConfig, state StateStore, rdb *redis.Client) *Service {
	return &Service{cfg: cfg, state: state, rdb: rdb}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention sweeper started",
		"event_retention", s.cfg.EventRetention,
		"change_history_retention", s.cfg.ChangeHistoryRetention,
		"interval", s.cfg.SweepInterval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention sweeper stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep(ctx)

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs both retention passes once.
func (s *Service) Sweep(ctx context.Context) {
	s.sweepEvents(ctx)
	s.pruneChangeHistory(ctx)
}

// sweepEvents deletes stream entries of expired projects older than the
// event retention. Streams are shared across projects, so the sweep
// filters by the project_id field rather than trimming by age alone.
func (s *Service) sweepEvents(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.cfg.EventRetention)
	ids, err := s.state.ExpiredProjectIDs(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: expired project scan failed", "error", err)
		return
	}
	if len(ids) == 0 {
		return
	}
	expired := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		expired[id] = struct{}{}
	}

	var deleted int64
	for _, eventType := range models.AllEventTypes() {
		n, err := s.sweepStream(ctx, eventstore.StreamKey(eventType), cutoff, expired)
		if err != nil {
			slog.Error("Retention: stream sweep failed", "stream", eventstore.StreamKey(eventType), "error", err)
			continue
		}
		deleted += n
	}
	if deleted > 0 {
		slog.Info("Retention: trimmed events", "projects", len(ids), "deleted", deleted)
	}
}

// sweepStream walks one stream up to the cutoff and deletes entries
// belonging to expired projects.
func (s *Service) sweepStream(ctx context.Context, stream string, cutoff time.Time, expired map[string]struct{}) (int64, error) {
	var deleted int64
	start := "-"
	end := streamIDAt(cutoff)
	for {
		msgs, err := s.rdb.XRangeN(ctx, stream, start, end, sweepBatch).Result()
		if err != nil {
			return deleted, err
		}
		if len(msgs) == 0 {
			return deleted, nil
		}

		var victims []string
		for _, msg := range msgs {
			projectID, _ := msg.Values["project_id"].(string)
			if _, ok := expired[projectID]; ok {
				victims = append(victims, msg.ID)
			}
		}
		if len(victims) > 0 {
			n, err := s.rdb.XDel(ctx, stream, victims...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += n
		}
		if len(msgs) < sweepBatch {
			return deleted, nil
		}
		start = "(" + msgs[len(msgs)-1].ID
	}
}

func (s *Service) pruneChangeHistory(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.cfg.ChangeHistoryRetention)
	ids, err := s.state.ExpiredProjectIDs(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: expired project scan failed", "error", err)
		return
	}
	if len(ids) == 0 {
		return
	}
	n, err := s.state.PruneChangeEntries(ctx, ids, cutoff)
	if err != nil {
		slog.Error("Retention: change history prune failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Retention: pruned change history", "projects", len(ids), "rows", n)
	}
}

// streamIDAt renders a stream id upper bound covering every entry at or
// before the given instant.
func streamIDAt(t time.Time) string {
	ms := t.UnixMilli()
	if ms < 0 {
		ms = 0
	}
	return strconv.FormatInt(ms, 10) + "-18446744073709551615"
}
