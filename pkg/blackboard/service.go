// Package blackboard implements the versioned project state store. One
// row per project holds the whole aggregate; every mutation bumps the
// version, appends a change-log entry, and invalidates the read cache.
// Workers never hold references into shared state: reads return
// snapshots and writes go through the partial-update operations here.
package blackboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clipforge/clipforge/ent"
	"github.com/clipforge/clipforge/ent/project"
	"github.com/clipforge/clipforge/pkg/database"
	"github.com/clipforge/clipforge/pkg/locksvc"
	"github.com/clipforge/clipforge/pkg/models"
)

// WriteMeta accompanies every mutation: who wrote, what event caused it,
// and the optional optimistic-concurrency and lock claims.
type WriteMeta struct {
	// Actor identifies the writer (agent name, "scheduler", "admin").
	Actor string

	// CausationEventID links the mutation to the event that triggered it.
	CausationEventID string

	// ExpectedVersion, when non-zero, makes the write conditional: the
	// aggregate must be at exactly this version or the write fails with
	// ErrVersionConflict without retrying.
	ExpectedVersion int64

	// LockOwner names the holder for lock-guarded writes. Ignored by
	// operations that require no lock.
	LockOwner string
}

// Write-retry policy for unconditional compound writes that lose an
// optimistic-concurrency race.
const writeMaxAttempts = 3

var writeBackoff = []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond}

// Service is the blackboard state store.
type Service struct {
	db    *database.Client
	locks *locksvc.Service
	cache *Cache
}

// NewService creates the blackboard over the given database, lock
// service, and cache.
func NewService(db *database.Client, locks *locksvc.Service, cache *Cache) *Service {
	return &Service{db: db, locks: locks, cache: cache}
}

// mutation is one read-modify-write against a project aggregate.
type mutation struct {
	changeType  string
	path        string
	description string

	// lockKey, when set, requires meta.LockOwner to hold this lock.
	lockKey string

	// apply mutates the snapshot in place and returns the before/after
	// images for the change entry. Returning a ValidationError aborts
	// without retrying.
	apply func(st *models.ProjectState) (before, after any, err error)

	// extra, when set, runs inside the same transaction after the
	// aggregate update, for companion-table writes.
	extra func(ctx context.Context, tx *ent.Tx, st *models.ProjectState) error
}

// mutate runs one aggregate mutation with optimistic concurrency. An
// unconditional write that loses the version race reloads and retries up
// to writeMaxAttempts; a version-checked write fails immediately.
func (s *Service) mutate(ctx context.Context, projectID string, meta WriteMeta, m mutation) (*models.ProjectState, error) {
	var lastErr error
	for attempt := 0; attempt < writeMaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(writeBackoff[attempt-1]):
			}
		}

		st, err := s.loadState(ctx, projectID)
		if err != nil {
			return nil, err
		}
		if meta.ExpectedVersion > 0 && st.Version != meta.ExpectedVersion {
			return nil, fmt.Errorf("%w: project %s at version %d, write expected %d",
				ErrVersionConflict, projectID, st.Version, meta.ExpectedVersion)
		}
		if m.lockKey != "" {
			holder, err := s.locks.Holder(ctx, m.lockKey)
			if err != nil {
				return nil, err
			}
			if holder == "" || holder != meta.LockOwner {
				return nil, fmt.Errorf("%w: %s requires lock %s held by %q, holder is %q",
					ErrLockNotHeld, m.changeType, m.lockKey, meta.LockOwner, holder)
			}
		}

		updated, err := s.commit(ctx, st, meta, m)
		if err == nil {
			s.cache.Invalidate(ctx, projectID)
			return updated, nil
		}
		if err != ErrVersionConflict {
			return nil, err
		}
		if meta.ExpectedVersion > 0 {
			return nil, fmt.Errorf("%w: project %s moved past version %d during write",
				ErrVersionConflict, projectID, meta.ExpectedVersion)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: project %s, write lost %d races", lastErr, projectID, writeMaxAttempts)
}

// commit applies the mutation to a loaded snapshot and writes it back
// behind a version predicate. Returns ErrVersionConflict (unwrapped) when
// the predicate matches no row.
func (s *Service) commit(ctx context.Context, st *models.ProjectState, meta WriteMeta, m mutation) (*models.ProjectState, error) {
	loadedVersion := st.Version

	before, after, err := m.apply(st)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newVersion := loadedVersion + 1
	entry := models.ChangeEntry{
		Version:          newVersion,
		Timestamp:        now,
		Actor:            meta.Actor,
		ChangeType:       m.changeType,
		Description:      m.description,
		Path:             m.path,
		CausationEventID: meta.CausationEventID,
		Before:           boundSnapshot(before),
		After:            boundSnapshot(after),
	}
	st.ChangeLog = appendCapped(st.ChangeLog, entry)
	st.Version = newVersion
	st.UpdatedAt = now

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin write tx: %w", err)
	}

	upd := tx.Project.Update().
		Where(project.IDEQ(st.ID), project.VersionEQ(loadedVersion)).
		SetVersion(newVersion).
		SetStatus(project.Status(st.Status)).
		SetSpec(st.Spec).
		SetBudget(st.Budget).
		SetDnaBank(st.DNABank).
		SetShots(st.Shots).
		SetTasks(st.Tasks).
		SetArtifactIndex(st.ArtifactIndex).
		SetErrorLog(st.ErrorLog).
		SetChangeLog(st.ChangeLog).
		SetApprovals(st.Approvals).
		SetUpdatedAt(now)
	if st.CompletedAt != nil {
		upd = upd.SetCompletedAt(*st.CompletedAt)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("update project %s: %w", st.ID, err)
	}
	if n == 0 {
		_ = tx.Rollback()
		return nil, ErrVersionConflict
	}

	_, err = tx.ChangeEntry.Create().
		SetID(uuid.New().String()).
		SetProjectID(st.ID).
		SetVersion(newVersion).
		SetActor(meta.Actor).
		SetChangeType(m.changeType).
		SetDescription(m.description).
		SetPath(m.path).
		SetCausationEventID(meta.CausationEventID).
		SetBefore(entry.Before).
		SetAfter(entry.After).
		SetCreatedAt(now).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("record change entry for %s: %w", st.ID, err)
	}

	if m.extra != nil {
		if err := m.extra(ctx, tx, st); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit write for %s: %w", st.ID, err)
	}
	return st, nil
}

// loadState reads the aggregate from the database, bypassing the cache.
func (s *Service) loadState(ctx context.Context, projectID string) (*models.ProjectState, error) {
	row, err := s.db.Project.Query().
		Where(project.IDEQ(projectID), project.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
		}
		return nil, fmt.Errorf("load project %s: %w", projectID, err)
	}
	return stateFromRow(row), nil
}

// stateFromRow converts an ent row into the aggregate snapshot, filling
// nil collections so callers never branch on them.
func stateFromRow(row *ent.Project) *models.ProjectState {
	st := &models.ProjectState{
		ID:            row.ID,
		Version:       row.Version,
		Status:        models.ProjectStatus(row.Status),
		Spec:          row.Spec,
		Budget:        row.Budget,
		DNABank:       row.DnaBank,
		Shots:         row.Shots,
		Tasks:         row.Tasks,
		Locks:         row.Locks,
		ArtifactIndex: row.ArtifactIndex,
		ErrorLog:      row.ErrorLog,
		ChangeLog:     row.ChangeLog,
		Approvals:     row.Approvals,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		CompletedAt:   row.CompletedAt,
	}
	if st.DNABank == nil {
		st.DNABank = map[string]models.DNAEntry{}
	}
	if st.Shots == nil {
		st.Shots = map[string]models.Shot{}
	}
	if st.Tasks == nil {
		st.Tasks = map[string]models.Task{}
	}
	if st.Locks == nil {
		st.Locks = map[string]models.LockInfo{}
	}
	if st.ArtifactIndex == nil {
		st.ArtifactIndex = map[string]models.ArtifactMeta{}
	}
	if st.Approvals == nil {
		st.Approvals = map[string]models.ApprovalRequest{}
	}
	return st
}

func newChangeID() string {
	return uuid.New().String()
}

// boundSnapshot marshals a change-entry image, summarizing anything over
// the snapshot cap instead of bloating the aggregate.
func boundSnapshot(v any) []byte {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return []byte(fmt.Sprintf(`{"summary":"unmarshalable %T"}`, v))
	}
	if len(raw) <= models.SnapshotByteCap {
		return raw
	}
	summary, _ := json.Marshal(map[string]any{
		"summary": fmt.Sprintf("snapshot truncated, %d bytes", len(raw)),
	})
	return summary
}

// appendCapped appends a change entry, keeping the most recent
// ChangeLogCap entries in the aggregate.
func appendCapped(log []models.ChangeEntry, entry models.ChangeEntry) []models.ChangeEntry {
	log = append(log, entry)
	if len(log) > models.ChangeLogCap {
		log = log[len(log)-models.ChangeLogCap:]
	}
	return log
}
