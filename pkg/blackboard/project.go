package blackboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/clipforge/clipforge/ent"
	"github.com/clipforge/clipforge/ent/project"
	"github.com/clipforge/clipforge/pkg/locksvc"
	"github.com/clipforge/clipforge/pkg/models"
)

// CreateProject inserts a new aggregate at version 1. The budget starts
// empty against the given total, and approval checkpoints default when
// the video spec names none and auto mode is off.
func (s *Service) CreateProject(ctx context.Context, projectID string, spec models.GlobalSpec, total models.Money, meta WriteMeta) (*models.ProjectState, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "must not be empty")
	}
	if total.Amount <= 0 {
		return nil, NewValidationError("budget.total", "must be positive")
	}
	if !spec.UserOptions.AutoMode && len(spec.UserOptions.ApprovalCheckpoints) == 0 {
		spec.UserOptions.ApprovalCheckpoints = models.DefaultApprovalCheckpoints()
	}

	now := time.Now().UTC()
	budget := models.Budget{
		Total:              total,
		Spent:              models.Money{Amount: 0, Currency: total.Currency},
		EstimatedRemaining: total,
		Breakdown:          map[string]models.Money{},
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create tx: %w", err)
	}

	row, err := tx.Project.Create().
		SetID(projectID).
		SetVersion(1).
		SetStatus(project.Status(models.ProjectCreated)).
		SetSpec(spec).
		SetBudget(budget).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: %s", ErrProjectExists, projectID)
		}
		return nil, fmt.Errorf("create project %s: %w", projectID, err)
	}

	_, err = tx.ChangeEntry.Create().
		SetID(newChangeID()).
		SetProjectID(projectID).
		SetVersion(1).
		SetActor(meta.Actor).
		SetChangeType("PROJECT_CREATED").
		SetDescription("project created").
		SetPath("/").
		SetCausationEventID(meta.CausationEventID).
		SetCreatedAt(now).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("record creation of %s: %w", projectID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create for %s: %w", projectID, err)
	}

	st := stateFromRow(row)
	s.cache.Put(ctx, st)
	return st, nil
}

// GetProject returns the aggregate snapshot, cache-aside.
func (s *Service) GetProject(ctx context.Context, projectID string) (*models.ProjectState, error) {
	if st := s.cache.Get(ctx, projectID); st != nil {
		return st, nil
	}
	st, err := s.loadState(ctx, projectID)
	if err != nil {
		return nil, err
	}
	s.cache.Put(ctx, st)
	return st, nil
}

// GetProjectFresh bypasses the cache. The scheduler re-checks
// dependencies through this before claiming a task.
func (s *Service) GetProjectFresh(ctx context.Context, projectID string) (*models.ProjectState, error) {
	return s.loadState(ctx, projectID)
}

// ListProjectIDs returns ids of live projects in any of the given
// statuses; with none given, all live projects.
func (s *Service) ListProjectIDs(ctx context.Context, statuses ...models.ProjectStatus) ([]string, error) {
	q := s.db.Project.Query().Where(project.DeletedAtIsNil())
	if len(statuses) > 0 {
		vals := make([]project.Status, len(statuses))
		for i, st := range statuses {
			vals[i] = project.Status(st)
		}
		q = q.Where(project.StatusIn(vals...))
	}
	ids, err := q.Order(ent.Asc(project.FieldCreatedAt)).IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return ids, nil
}

// UpdateProjectStatus transitions the project lifecycle state. Terminal
// transitions stamp completed_at.
func (s *Service) UpdateProjectStatus(ctx context.Context, projectID string, status models.ProjectStatus, meta WriteMeta) (*models.ProjectState, error) {
	return s.mutate(ctx, projectID, meta, mutation{
		changeType:  "STATUS_CHANGED",
		path:        "/status",
		description: fmt.Sprintf("status -> %s", status),
		apply: func(st *models.ProjectState) (any, any, error) {
			before := st.Status
			st.Status = status
			if status.Terminal() && st.CompletedAt == nil {
				now := time.Now().UTC()
				st.CompletedAt = &now
			}
			return before, status, nil
		},
	})
}

// UpdateGlobalSpec replaces the creative brief. Requires the
// global-style lock: prompt adjustments read the video spec concurrently.
func (s *Service) UpdateGlobalSpec(ctx context.Context, projectID string, spec models.GlobalSpec, meta WriteMeta) (*models.ProjectState, error) {
	return s.mutate(ctx, projectID, meta, mutation{
		changeType:  "SPEC_UPDATED",
		path:        "/spec",
		description: "global spec updated",
		lockKey:     locksvc.GlobalStyleKey(projectID),
		apply: func(st *models.ProjectState) (any, any, error) {
			before := st.Spec
			st.Spec = spec
			return before, spec, nil
		},
	})
}

// UpdateBudget replaces the budget wholesale, used by admin adjustments.
// Incremental spend goes through AddCost.
func (s *Service) UpdateBudget(ctx context.Context, projectID string, budget models.Budget, meta WriteMeta) (*models.ProjectState, error) {
	if budget.Total.Amount <= 0 {
		return nil, NewValidationError("budget.total", "must be positive")
	}
	return s.mutate(ctx, projectID, meta, mutation{
		changeType:  "BUDGET_UPDATED",
		path:        "/budget",
		description: "budget updated",
		apply: func(st *models.ProjectState) (any, any, error) {
			before := st.Budget
			st.Budget = budget
			return before, budget, nil
		},
	})
}

// AppendChange records a caller-supplied change entry: an annotation
// with no aggregate effect beyond the log itself. Workers use it to note
// decisions (model swaps, prompt tweaks) against the version they saw.
func (s *Service) AppendChange(ctx context.Context, projectID string, entry models.ChangeEntry, meta WriteMeta) (*models.ProjectState, error) {
	if entry.ChangeType == "" {
		return nil, NewValidationError("change_type", "must not be empty")
	}
	if entry.Path == "" {
		entry.Path = "/"
	}
	return s.mutate(ctx, projectID, meta, mutation{
		changeType:  entry.ChangeType,
		path:        entry.Path,
		description: entry.Description,
		apply: func(st *models.ProjectState) (any, any, error) {
			var before, after any
			if len(entry.Before) > 0 {
				before = json.RawMessage(entry.Before)
			}
			if len(entry.After) > 0 {
				after = json.RawMessage(entry.After)
			}
			return before, after, nil
		},
	})
}

// AppendError appends to the project's append-only error log.
func (s *Service) AppendError(ctx context.Context, projectID string, entry models.ErrorEntry, meta WriteMeta) (*models.ProjectState, error) {
	if entry.ID == "" {
		entry.ID = newChangeID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	return s.mutate(ctx, projectID, meta, mutation{
		changeType:  "ERROR_APPENDED",
		path:        "/error_log",
		description: entry.Message,
		apply: func(st *models.ProjectState) (any, any, error) {
			st.ErrorLog = append(st.ErrorLog, entry)
			return nil, entry, nil
		},
	})
}
