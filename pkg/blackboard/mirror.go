package blackboard

import (
	"context"
	"time"

	"github.com/clipforge/clipforge/ent/lockmirror"
	"github.com/clipforge/clipforge/pkg/database"
)

// LockMirror writes lock transitions to the lock_mirrors table. Redis
// stays authoritative; these rows feed the admin API and post-mortems.
// Implements locksvc.Mirror.
type LockMirror struct {
	db *database.Client
}

// NewLockMirror creates the database-backed lock mirror.
func NewLockMirror(db *database.Client) *LockMirror {
	return &LockMirror{db: db}
}

// RecordAcquire upserts the mirror row for an acquired lock.
func (m *LockMirror) RecordAcquire(ctx context.Context, key, projectID, holder string, acquiredAt, expiresAt time.Time) error {
	return m.db.LockMirror.Create().
		SetID(key).
		SetProjectID(projectID).
		SetHolder(holder).
		SetAcquiredAt(acquiredAt).
		SetExpiresAt(expiresAt).
		OnConflictColumns(lockmirror.FieldID).
		UpdateNewValues().
		Exec(ctx)
}

// RecordRelease removes the mirror row for a released lock.
func (m *LockMirror) RecordRelease(ctx context.Context, key string) error {
	_, err := m.db.LockMirror.Delete().
		Where(lockmirror.IDEQ(key)).
		Exec(ctx)
	return err
}
