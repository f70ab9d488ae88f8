// Package eventstore implements the durable, causally-ordered event bus.
//
// One Redis Stream exists per event type. Each subscriber forms its own
// consumer group on every stream it watches, so distinct subscribers each
// see every message once while instances of the same subscriber share
// load. Delivery is at-least-once: a message stays pending until the
// handler returns nil and the store acks it. Subscribers must be
// idempotent, keyed by event id.
package eventstore

import (
	"context"
	"errors"

	"github.com/clipforge/clipforge/pkg/models"
)

// Subscriber handles events delivered from the bus. Name doubles as the
// consumer-group name and must be stable across restarts.
type Subscriber interface {
	Name() string
	HandleEvent(ctx context.Context, ev *models.Event) error
}

// Sentinel errors for event store operations.
var (
	// ErrEventNotFound indicates the id index holds no such event.
	ErrEventNotFound = errors.New("event not found")

	// ErrChainTooLong indicates a causation walk exceeded the chain cap
	// without reaching a root.
	ErrChainTooLong = errors.New("causation chain exceeds cap")
)

// DeadLetterStream receives messages that exhausted their redeliveries.
const DeadLetterStream = "events:dead_letter"

// StreamKey returns the Redis Stream key for an event type.
func StreamKey(t models.EventType) string {
	return "events:" + string(t)
}

// IndexKey returns the by-id index key for an event.
func IndexKey(eventID string) string {
	return "event:" + eventID
}
