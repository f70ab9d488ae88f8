package eventstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/clipforge/clipforge/pkg/config"
	"github.com/clipforge/clipforge/pkg/models"
)

// Store is the Redis-backed event bus.
type Store struct {
	rdb       *redis.Client
	cfg       *config.EventsConfig
	retention time.Duration
	consumer  string // consumer name within groups, unique per process

	mu    sync.RWMutex
	local map[models.EventType][]Subscriber // in-process fast path
	subs  []subscription

	wg       sync.WaitGroup
	stopCh   chan struct{}
	stopOnce sync.Once
	started  bool
}

type subscription struct {
	sub   Subscriber
	types []models.EventType
}

// New creates an event store. consumer should identify this process
// (pod id); it names the consumer within each group.
func New(rdb *redis.Client, cfg *config.EventsConfig, retention time.Duration, consumer string) *Store {
	return &Store{
		rdb:       rdb,
		cfg:       cfg,
		retention: retention,
		consumer:  consumer,
		local:     make(map[models.EventType][]Subscriber),
		stopCh:    make(chan struct{}),
	}
}

// Publish persists an event and makes it visible to all subscribers.
// The event id is assigned when empty. Co-located subscribers receive the
// event synchronously in addition to the durable path; the durable path
// remains authoritative. Failures are transient; the caller retries.
func (s *Store) Publish(ctx context.Context, ev *models.Event) (string, error) {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal event %s: %w", ev.ID, err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey(ev.Type),
		Values: map[string]any{
			"id":         ev.ID,
			"project_id": ev.ProjectID,
			"data":       data,
		},
	})
	pipe.Set(ctx, IndexKey(ev.ID), data, s.retention)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("publish %s event %s: %w", ev.Type, ev.ID, err)
	}

	s.fanoutLocal(ctx, ev)
	return ev.ID, nil
}

// fanoutLocal delivers the event synchronously to co-located subscribers.
// Handler errors are logged only: the durable consumer-group delivery will
// retry, and idempotent handlers make the duplicate harmless.
func (s *Store) fanoutLocal(ctx context.Context, ev *models.Event) {
	s.mu.RLock()
	subs := s.local[ev.Type]
	s.mu.RUnlock()

	for _, sub := range subs {
		if err := sub.HandleEvent(ctx, ev); err != nil {
			slog.Warn("Local event delivery failed, durable path will retry",
				"subscriber", sub.Name(), "event_type", ev.Type,
				"event_id", ev.ID, "error", err)
		}
	}
}

// Subscribe registers a subscriber for a set of event types. Idempotent
// per subscriber name. Must be called before StartConsuming.
func (s *Store) Subscribe(sub Subscriber, types []models.EventType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.subs {
		if existing.sub.Name() == sub.Name() {
			return
		}
	}
	s.subs = append(s.subs, subscription{sub: sub, types: types})
	for _, t := range types {
		s.local[t] = append(s.local[t], sub)
	}
}

// StartConsuming creates consumer groups and begins durable delivery.
func (s *Store) StartConsuming(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sc := range subs {
		group := sc.sub.Name()
		for _, t := range sc.types {
			stream := StreamKey(t)
			// New groups start at the stream tail: durability begins at
			// registration, not at the dawn of the stream.
			err := s.rdb.XGroupCreateMkStream(ctx, stream, group, "$").Err()
			if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
				return fmt.Errorf("create group %s on %s: %w", group, stream, err)
			}

			s.wg.Add(2)
			go func(stream, group string, sub Subscriber) {
				defer s.wg.Done()
				s.consumeLoop(ctx, stream, group, sub)
			}(stream, group, sc.sub)
			go func(stream, group string, sub Subscriber) {
				defer s.wg.Done()
				s.redeliveryLoop(ctx, stream, group, sub)
			}(stream, group, sc.sub)
		}
	}

	slog.Info("Event store consuming", "subscribers", len(subs), "consumer", s.consumer)
	return nil
}

// Stop signals the delivery loops to exit and waits for them.
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// consumeLoop reads new messages for one (stream, group) and delivers them.
func (s *Store) consumeLoop(ctx context.Context, stream, group string, sub Subscriber) {
	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		res, err := s.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    group,
			Consumer: s.consumer,
			Streams:  []string{stream, ">"},
			Count:    16,
			Block:    s.cfg.BlockInterval,
		}).Result()
		if err != nil {
			if err == redis.Nil {
				continue // block timeout, nothing new
			}
			if ctx.Err() != nil {
				return
			}
			slog.Error("XREADGROUP failed", "stream", stream, "group", group, "error", err)
			s.sleep(time.Second)
			continue
		}

		for _, str := range res {
			for _, msg := range str.Messages {
				s.deliver(ctx, stream, group, sub, msg)
			}
		}
	}
}

// deliver hands one message to the subscriber, acking on success. On
// handler error the message stays pending for the redelivery loop.
func (s *Store) deliver(ctx context.Context, stream, group string, sub Subscriber, msg redis.XMessage) {
	ev, err := decodeMessage(msg)
	if err != nil {
		// Undecodable messages can never succeed, dead-letter directly.
		slog.Error("Dropping undecodable event message",
			"stream", stream, "msg_id", msg.ID, "error", err)
		s.deadLetter(ctx, stream, group, msg, "undecodable payload")
		return
	}

	if err := sub.HandleEvent(ctx, ev); err != nil {
		slog.Warn("Event handler failed, message left pending",
			"subscriber", sub.Name(), "event_id", ev.ID,
			"event_type", ev.Type, "error", err)
		return
	}

	if err := s.rdb.XAck(ctx, stream, group, msg.ID).Err(); err != nil {
		slog.Warn("XACK failed, message may be redelivered",
			"stream", stream, "msg_id", msg.ID, "error", err)
	}
}

// redeliveryLoop claims messages left pending beyond RedeliveryIdle and
// retries them. After MaxDeliveries failed deliveries the message moves to
// the dead-letter stream and an ERROR_OCCURRED event is published.
func (s *Store) redeliveryLoop(ctx context.Context, stream, group string, sub Subscriber) {
	ticker := time.NewTicker(s.cfg.RedeliveryIdle)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		pending, err := s.rdb.XPendingExt(ctx, &redis.XPendingExtArgs{
			Stream: stream,
			Group:  group,
			Idle:   s.cfg.RedeliveryIdle,
			Start:  "-",
			End:    "+",
			Count:  16,
		}).Result()
		if err != nil {
			if ctx.Err() == nil && err != redis.Nil {
				slog.Warn("XPENDING failed", "stream", stream, "group", group, "error", err)
			}
			continue
		}

		for _, p := range pending {
			claimed, err := s.rdb.XClaim(ctx, &redis.XClaimArgs{
				Stream:   stream,
				Group:    group,
				Consumer: s.consumer,
				MinIdle:  s.cfg.RedeliveryIdle,
				Messages: []string{p.ID},
			}).Result()
			if err != nil || len(claimed) == 0 {
				continue // another instance won the claim
			}

			msg := claimed[0]
			if p.RetryCount >= int64(s.cfg.MaxDeliveries) {
				s.deadLetter(ctx, stream, group, msg, "max deliveries exceeded")
				continue
			}
			s.deliver(ctx, stream, group, sub, msg)
		}
	}
}

// deadLetter moves a poisoned message to the dead-letter stream, acks it,
// and publishes ERROR_OCCURRED so the failure enters the normal pipeline.
func (s *Store) deadLetter(ctx context.Context, stream, group string, msg redis.XMessage, reason string) {
	values := map[string]any{
		"origin_stream": stream,
		"origin_group":  group,
		"origin_msg_id": msg.ID,
		"reason":        reason,
	}
	for k, v := range msg.Values {
		values[k] = v
	}
	if err := s.rdb.XAdd(ctx, &redis.XAddArgs{Stream: DeadLetterStream, Values: values}).Err(); err != nil {
		slog.Error("Dead-letter write failed", "stream", stream, "msg_id", msg.ID, "error", err)
		return
	}
	_ = s.rdb.XAck(ctx, stream, group, msg.ID).Err()

	ev, decodeErr := decodeMessage(msg)
	errEvent := &models.Event{
		Type:  models.EventErrorOccurred,
		Actor: "eventstore",
		Payload: map[string]any{
			"reason": reason,
			"stream": stream,
			"group":  group,
		},
	}
	if decodeErr == nil {
		errEvent.ProjectID = ev.ProjectID
		errEvent.CausationID = ev.ID
	}
	if _, err := s.Publish(ctx, errEvent); err != nil {
		slog.Error("Failed to publish dead-letter error event", "error", err)
	}

	slog.Error("Message dead-lettered",
		"stream", stream, "group", group, "msg_id", msg.ID, "reason", reason)
}

func (s *Store) sleep(d time.Duration) {
	select {
	case <-s.stopCh:
	case <-time.After(d):
	}
}

// decodeMessage extracts the event JSON from a stream message.
func decodeMessage(msg redis.XMessage) (*models.Event, error) {
	raw, ok := msg.Values["data"].(string)
	if !ok {
		return nil, fmt.Errorf("message %s has no data field", msg.ID)
	}
	var ev models.Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		return nil, fmt.Errorf("unmarshal message %s: %w", msg.ID, err)
	}
	return &ev, nil
}
