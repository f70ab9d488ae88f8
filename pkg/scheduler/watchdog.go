package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/clipforge/clipforge/pkg/models"
)

// watchdogLoop periodically sweeps IN_PROGRESS tasks past their
// per-type deadline and pushes them through the failure path.
func (s *Scheduler) watchdogLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.WatchdogInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		ids, err := s.state.ListProjectIDs(ctx, dispatchableStatuses...)
		if err != nil {
			slog.Error("Watchdog project scan failed", "error", err)
			continue
		}
		for _, projectID := range ids {
			if err := s.sweepProject(ctx, projectID); err != nil {
				slog.Error("Watchdog sweep failed", "project_id", projectID, "error", err)
			}
		}
	}
}

// sweepProject times out expired IN_PROGRESS tasks in one project.
func (s *Scheduler) sweepProject(ctx context.Context, projectID string) error {
	st, err := s.state.GetProjectFresh(ctx, projectID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, task := range st.Tasks {
		if task.Status != models.TaskInProgress || task.StartedAt == nil {
			continue
		}
		deadline := task.StartedAt.Add(s.cfg.TimeoutFor(string(task.Type)))
		if now.Before(deadline) {
			continue
		}

		slog.Warn("Task timed out",
			"project_id", projectID, "task_id", task.ID,
			"type", task.Type, "started_at", task.StartedAt)

		// Synthesize the failure event; the normal failure handler owns
		// retry accounting and lock release.
		_, err := s.events.Publish(ctx, &models.Event{
			ProjectID:   projectID,
			Type:        models.EventTaskFailed,
			Actor:       actorName,
			CausationID: task.CausationEventID,
			Payload: map[string]any{
				"task_id": task.ID,
				"reason":  models.FailureTimeout,
			},
		})
		if err != nil {
			slog.Error("Timeout event publish failed", "task_id", task.ID, "error", err)
		}
	}
	return nil
}
