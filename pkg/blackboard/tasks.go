package blackboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/clipforge/clipforge/pkg/models"
)

// GetTask returns a snapshot of one task.
func (s *Service) GetTask(ctx context.Context, projectID, taskID string) (models.Task, error) {
	st, err := s.GetProject(ctx, projectID)
	if err != nil {
		return models.Task{}, err
	}
	t, ok := st.Tasks[taskID]
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s in project %s", ErrTaskNotFound, taskID, projectID)
	}
	return t, nil
}

// ListTasks returns the project's tasks matching the filter, ordered by
// creation time then id.
func (s *Service) ListTasks(ctx context.Context, projectID string, filter models.TaskFilter) ([]models.Task, error) {
	st, err := s.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var out []models.Task
	for _, t := range st.Tasks {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// PutTasks inserts new tasks into the aggregate in one version bump.
// Re-inserting an existing task id is a no-op, so duplicate event
// deliveries cannot reset task state.
func (s *Service) PutTasks(ctx context.Context, projectID string, tasks []models.Task, meta WriteMeta) (*models.ProjectState, error) {
	for _, t := range tasks {
		if t.ID == "" {
			return nil, NewValidationError("task.id", "must not be empty")
		}
		if t.Type == "" {
			return nil, NewValidationError("task.type", "must not be empty")
		}
	}
	return s.mutate(ctx, projectID, meta, mutation{
		changeType:  "TASKS_ADDED",
		path:        "/tasks",
		description: fmt.Sprintf("%d tasks added", len(tasks)),
		apply: func(st *models.ProjectState) (any, any, error) {
			var added []models.Task
			for _, t := range tasks {
				if _, exists := st.Tasks[t.ID]; exists {
					continue
				}
				for _, dep := range t.DependsOn {
					if dep == t.ID {
						return nil, nil, NewValidationError("task.depends_on", "task cannot depend on itself")
					}
				}
				if t.CreatedAt.IsZero() {
					t.CreatedAt = time.Now().UTC()
				}
				if t.Status == "" {
					t.Status = models.TaskPending
				}
				if t.MaxRetries == 0 {
					t.MaxRetries = models.DefaultMaxRetries
				}
				st.Tasks[t.ID] = t
				added = append(added, t)
			}
			return nil, added, nil
		},
	})
}

// UpdateTask applies fn to one task. fn receives a copy; the mutated
// copy is written back after invariant checks.
func (s *Service) UpdateTask(ctx context.Context, projectID, taskID string, fn func(*models.Task) error, meta WriteMeta) (*models.ProjectState, error) {
	return s.mutate(ctx, projectID, meta, mutation{
		changeType:  "TASK_UPDATED",
		path:        "/tasks/" + taskID,
		description: "task updated",
		apply: func(st *models.ProjectState) (any, any, error) {
			t, ok := st.Tasks[taskID]
			if !ok {
				return nil, nil, fmt.Errorf("%w: %s in project %s", ErrTaskNotFound, taskID, projectID)
			}
			before := t
			if err := fn(&t); err != nil {
				return nil, nil, err
			}
			if err := validateTaskWrite(st, before, t); err != nil {
				return nil, nil, err
			}
			st.Tasks[taskID] = t
			return before, t, nil
		},
	})
}

// CancelPendingTasks moves every PENDING and READY task to CANCELLED,
// returning the cancelled ids. IN_PROGRESS tasks are left to finish;
// their results are recorded but trigger nothing further once the
// project is terminal.
func (s *Service) CancelPendingTasks(ctx context.Context, projectID, reason string, meta WriteMeta) ([]string, error) {
	var cancelled []string
	_, err := s.mutate(ctx, projectID, meta, mutation{
		changeType:  "TASKS_CANCELLED",
		path:        "/tasks",
		description: reason,
		apply: func(st *models.ProjectState) (any, any, error) {
			cancelled = cancelled[:0]
			for id, t := range st.Tasks {
				if t.Status != models.TaskPending && t.Status != models.TaskReady {
					continue
				}
				t.Status = models.TaskCancelled
				t.FailureReason = reason
				st.Tasks[id] = t
				cancelled = append(cancelled, id)
			}
			sort.Strings(cancelled)
			return nil, cancelled, nil
		},
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// validateTaskWrite enforces the task invariants a write must not break.
func validateTaskWrite(st *models.ProjectState, before, after models.Task) error {
	if after.ID != before.ID {
		return NewValidationError("task.id", "task id is immutable")
	}
	if after.Status == models.TaskInProgress && !st.DependenciesCompleted(after) {
		return NewValidationError("task.status", "cannot start with incomplete dependencies")
	}
	if after.Status == models.TaskCompleted {
		if after.CompletedAt == nil {
			return NewValidationError("task.completed_at", "COMPLETED requires completed_at")
		}
		if len(after.Output) == 0 {
			return NewValidationError("task.output", "COMPLETED requires output")
		}
	}
	return nil
}
