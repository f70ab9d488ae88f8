// Package locksvc provides TTL-bounded distributed locks over Redis.
// Locks are advisory: writers must name the lock owner on guarded writes
// and the blackboard rejects writes whose owner no longer holds the lock.
package locksvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sentinel errors for lock operations.
var (
	// ErrLockHeld indicates another holder owns the lock.
	ErrLockHeld = errors.New("lock held by another owner")

	// ErrNotHolder indicates a release or extend by a non-owner; the lock
	// likely expired and was re-acquired.
	ErrNotHolder = errors.New("lock not held by this owner")
)

// Named lock scopes within a project. Shot locks cover one shot; the
// shots collection lock covers structural changes (adding or removing
// shots) and does not conflict with per-shot locks.
func GlobalStyleKey(projectID string) string {
	return "lock:project:" + projectID + ":global_style"
}

func DNABankKey(projectID string) string {
	return "lock:project:" + projectID + ":dna_bank"
}

func ShotKey(projectID, shotID string) string {
	return "lock:project:" + projectID + ":shot:" + shotID
}

func ShotsCollectionKey(projectID string) string {
	return "lock:project:" + projectID + ":shots"
}

// releaseScript deletes the lock only when the caller still owns it.
// Checking and deleting in one script closes the window where the lock
// expires and is re-acquired between a GET and a DEL.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// extendScript refreshes the TTL only for the current owner.
var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// Mirror receives best-effort copies of lock transitions for audit.
// Failures are logged and ignored; Redis remains authoritative.
type Mirror interface {
	RecordAcquire(ctx context.Context, key, projectID, holder string, acquiredAt, expiresAt time.Time) error
	RecordRelease(ctx context.Context, key string) error
}

// Service implements distributed locking with a single Redis key per
// lock: SET NX PX to acquire, owner-checked Lua to release.
type Service struct {
	rdb        *redis.Client
	defaultTTL time.Duration
	mirror     Mirror // optional
}

// New creates a lock service. mirror may be nil.
func New(rdb *redis.Client, defaultTTL time.Duration, mirror Mirror) *Service {
	return &Service{rdb: rdb, defaultTTL: defaultTTL, mirror: mirror}
}

// Acquire takes the lock for holder, or fails with ErrLockHeld. A zero
// ttl uses the service default. Re-acquiring a lock the holder already
// owns refreshes its TTL.
func (s *Service) Acquire(ctx context.Context, key, projectID, holder string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	ok, err := s.rdb.SetNX(ctx, key, holder, ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		current, err := s.rdb.Get(ctx, key).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if current != holder {
			return ErrLockHeld
		}
		// Reentrant refresh for the existing owner.
		if err := s.Extend(ctx, key, holder, ttl); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	s.mirrorAcquire(ctx, key, projectID, holder, now, now.Add(ttl))
	return nil
}

// acquirePollInterval paces blocking acquire attempts.
const acquirePollInterval = 100 * time.Millisecond

// AcquireBlocking retries Acquire until it succeeds, timeout elapses, or
// ctx is cancelled. Timeout is reported as ErrLockHeld.
func (s *Service) AcquireBlocking(ctx context.Context, key, projectID, holder string, ttl, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		err := s.Acquire(ctx, key, projectID, holder, ttl)
		if !errors.Is(err, ErrLockHeld) {
			return err
		}
		if time.Now().After(deadline) {
			return ErrLockHeld
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(acquirePollInterval):
		}
	}
}

// Release frees the lock if holder still owns it.
func (s *Service) Release(ctx context.Context, key, holder string) error {
	n, err := releaseScript.Run(ctx, s.rdb, []string{key}, holder).Int()
	if err != nil {
		return fmt.Errorf("release lock %s: %w", key, err)
	}
	if n == 0 {
		return ErrNotHolder
	}
	s.mirrorRelease(ctx, key)
	return nil
}

// Extend refreshes the TTL for the current owner. Long-running work
// extends before expiry instead of taking a long TTL up front.
func (s *Service) Extend(ctx context.Context, key, holder string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	n, err := extendScript.Run(ctx, s.rdb, []string{key}, holder, ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("extend lock %s: %w", key, err)
	}
	if n == 0 {
		return ErrNotHolder
	}
	return nil
}

// Holder returns the current owner of the lock, or "" when free.
func (s *Service) Holder(ctx context.Context, key string) (string, error) {
	holder, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("inspect lock %s: %w", key, err)
	}
	return holder, nil
}

// WithLock runs fn while holding the lock, releasing it afterward. The
// release error is ignored when fn already failed.
func (s *Service) WithLock(ctx context.Context, key, projectID, holder string, ttl time.Duration, fn func(ctx context.Context) error) error {
	if err := s.Acquire(ctx, key, projectID, holder, ttl); err != nil {
		return err
	}
	fnErr := fn(ctx)
	if err := s.Release(ctx, key, holder); err != nil && fnErr == nil {
		return err
	}
	return fnErr
}

func (s *Service) mirrorAcquire(ctx context.Context, key, projectID, holder string, acquiredAt, expiresAt time.Time) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.RecordAcquire(ctx, key, projectID, holder, acquiredAt, expiresAt); err != nil {
		slog.Warn("Lock mirror write failed", "lock", key, "error", err)
	}
}

func (s *Service) mirrorRelease(ctx context.Context, key string) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.RecordRelease(ctx, key); err != nil {
		slog.Warn("Lock mirror write failed", "lock", key, "error", err)
	}
}
