package locksvc

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb, 30*time.Second, nil), mr
}

func TestAcquireRelease(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	key := ShotKey("proj-1", "shot-1")

	require.NoError(t, svc.Acquire(ctx, key, "proj-1", "worker-a", 0))

	holder, err := svc.Holder(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "worker-a", holder)

	// A second holder is refused while the lock is live.
	err = svc.Acquire(ctx, key, "proj-1", "worker-b", 0)
	assert.ErrorIs(t, err, ErrLockHeld)

	require.NoError(t, svc.Release(ctx, key, "worker-a"))

	holder, err = svc.Holder(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, holder)

	// Freed locks are available to anyone.
	require.NoError(t, svc.Acquire(ctx, key, "proj-1", "worker-b", 0))
}

func TestAcquireReentrant(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()
	key := DNABankKey("proj-1")

	require.NoError(t, svc.Acquire(ctx, key, "proj-1", "worker-a", 10*time.Second))
	mr.FastForward(8 * time.Second)

	// Re-acquiring refreshes the TTL rather than failing.
	require.NoError(t, svc.Acquire(ctx, key, "proj-1", "worker-a", 10*time.Second))
	mr.FastForward(8 * time.Second)

	holder, err := svc.Holder(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "worker-a", holder)
}

func TestReleaseOwnerChecked(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	key := GlobalStyleKey("proj-1")

	require.NoError(t, svc.Acquire(ctx, key, "proj-1", "worker-a", 0))

	// A non-owner must not be able to free the lock.
	err := svc.Release(ctx, key, "worker-b")
	assert.ErrorIs(t, err, ErrNotHolder)

	holder, err := svc.Holder(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "worker-a", holder)
}

func TestExpiredLockReacquired(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()
	key := ShotKey("proj-1", "shot-2")

	require.NoError(t, svc.Acquire(ctx, key, "proj-1", "worker-a", 5*time.Second))
	mr.FastForward(6 * time.Second)

	// Lock expired: a new holder may take it, and the stale holder's
	// release must fail.
	require.NoError(t, svc.Acquire(ctx, key, "proj-1", "worker-b", 5*time.Second))
	assert.ErrorIs(t, svc.Release(ctx, key, "worker-a"), ErrNotHolder)

	holder, err := svc.Holder(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "worker-b", holder)
}

func TestExtend(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()
	key := ShotKey("proj-1", "shot-3")

	require.NoError(t, svc.Acquire(ctx, key, "proj-1", "worker-a", 5*time.Second))
	require.NoError(t, svc.Extend(ctx, key, "worker-a", 30*time.Second))

	mr.FastForward(10 * time.Second)
	holder, err := svc.Holder(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "worker-a", holder)

	assert.ErrorIs(t, svc.Extend(ctx, key, "worker-b", time.Minute), ErrNotHolder)
}

func TestAcquireBlocking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	key := ShotKey("proj-1", "shot-4")

	t.Run("free lock acquired immediately", func(t *testing.T) {
		require.NoError(t, svc.AcquireBlocking(ctx, key, "proj-1", "worker-a", 0, time.Second))
		require.NoError(t, svc.Release(ctx, key, "worker-a"))
	})

	t.Run("times out while held", func(t *testing.T) {
		require.NoError(t, svc.Acquire(ctx, key, "proj-1", "worker-a", 0))
		err := svc.AcquireBlocking(ctx, key, "proj-1", "worker-b", 0, 150*time.Millisecond)
		assert.ErrorIs(t, err, ErrLockHeld)
		require.NoError(t, svc.Release(ctx, key, "worker-a"))
	})

	t.Run("acquires once released", func(t *testing.T) {
		require.NoError(t, svc.Acquire(ctx, key, "proj-1", "worker-a", 0))
		go func() {
			time.Sleep(150 * time.Millisecond)
			_ = svc.Release(context.Background(), key, "worker-a")
		}()
		require.NoError(t, svc.AcquireBlocking(ctx, key, "proj-1", "worker-b", 0, 2*time.Second))
	})
}

func TestWithLock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	key := ShotsCollectionKey("proj-1")

	var ran bool
	err := svc.WithLock(ctx, key, "proj-1", "planner", 0, func(ctx context.Context) error {
		ran = true
		holder, err := svc.Holder(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "planner", holder)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)

	holder, err := svc.Holder(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, holder, "lock released after fn returns")
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "lock:project:p:global_style", GlobalStyleKey("p"))
	assert.Equal(t, "lock:project:p:dna_bank", DNABankKey("p"))
	assert.Equal(t, "lock:project:p:shot:s", ShotKey("p", "s"))
	assert.Equal(t, "lock:project:p:shots", ShotsCollectionKey("p"))
}
