package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/clipforge/clipforge/pkg/blackboard"
	"github.com/clipforge/clipforge/pkg/models"
)

// statusRank orders the working states so lifecycle transitions only
// move forward. Paused and terminal states are handled separately.
var statusRank = map[models.ProjectStatus]int{
	models.ProjectCreated:   0,
	models.ProjectPlanning:  1,
	models.ProjectRendering: 2,
	models.ProjectQA:        3,
	models.ProjectEditing:   4,
}

// stageFor maps pipeline milestones to the working state they open.
var stageFor = map[models.EventType]models.ProjectStatus{
	models.EventProjectCreated:    models.ProjectPlanning,
	models.EventShotPlanned:       models.ProjectRendering,
	models.EventPreviewVideoReady: models.ProjectQA,
	models.EventFinalVideoReady:   models.ProjectEditing,
}

// advanceStatus moves the project forward when the event marks a stage
// milestone. Regressions never happen here: a re-render after QA keeps
// the project in QA.
func (o *Orchestrator) advanceStatus(ctx context.Context, st *models.ProjectState, ev *models.Event) (*models.ProjectState, error) {
	target, ok := stageFor[ev.Type]
	if !ok {
		return st, nil
	}
	cur, working := statusRank[st.Status]
	if !working || statusRank[target] <= cur {
		return st, nil
	}

	updated, err := o.state.UpdateProjectStatus(ctx, st.ID, target,
		blackboard.WriteMeta{Actor: actorName, CausationEventID: ev.ID})
	if err != nil {
		return nil, fmt.Errorf("advance project %s to %s: %w", st.ID, target, err)
	}
	slog.Info("Project stage advanced", "project_id", st.ID, "from", st.Status, "to", target)
	return updated, nil
}

// finalize marks the project delivered once assembly reports done.
func (o *Orchestrator) finalize(ctx context.Context, ev *models.Event) error {
	st, err := o.state.GetProjectFresh(ctx, ev.ProjectID)
	if err != nil {
		return err
	}
	if st.Status == models.ProjectDelivered {
		return nil // duplicate delivery
	}
	if st.Status.Terminal() {
		slog.Warn("Assembly completed on a dead project, ignoring",
			"project_id", ev.ProjectID, "status", st.Status)
		return nil
	}

	meta := blackboard.WriteMeta{Actor: actorName, CausationEventID: ev.ID}
	if _, err := o.state.UpdateProjectStatus(ctx, ev.ProjectID, models.ProjectDelivered, meta); err != nil {
		return fmt.Errorf("deliver project %s: %w", ev.ProjectID, err)
	}

	_, err = o.events.Publish(ctx, &models.Event{
		ProjectID:   ev.ProjectID,
		Type:        models.EventProjectFinalized,
		Actor:       actorName,
		CausationID: ev.ID,
		Payload: map[string]any{
			"final_video_uri": ev.PayloadString("final_video_uri"),
			"total_cost":      st.Budget.Spent.Amount,
		},
	})
	if err != nil {
		slog.Error("PROJECT_FINALIZED publish failed", "project_id", ev.ProjectID, "error", err)
	}
	slog.Info("Project delivered", "project_id", ev.ProjectID, "spent", st.Budget.Spent.Amount)
	return nil
}

// AbortProject stops a project: status ABORTED, every PENDING and READY
// task cancelled, the ready queue dropped. IN_PROGRESS work is left to
// finish; its results are recorded but never cascade.
func (o *Orchestrator) AbortProject(ctx context.Context, projectID, reason, causationID string) error {
	st, err := o.state.GetProjectFresh(ctx, projectID)
	if err != nil {
		if errors.Is(err, blackboard.ErrProjectNotFound) {
			return err
		}
		return fmt.Errorf("load project %s: %w", projectID, err)
	}
	if st.Status == models.ProjectAborted {
		return nil // duplicate delivery
	}

	if reason == "" {
		reason = "aborted by operator"
	}
	meta := blackboard.WriteMeta{Actor: actorName, CausationEventID: causationID}

	cancelled, err := o.state.CancelPendingTasks(ctx, projectID, reason, meta)
	if err != nil {
		return fmt.Errorf("cancel tasks of %s: %w", projectID, err)
	}
	if _, err := o.state.UpdateProjectStatus(ctx, projectID, models.ProjectAborted, meta); err != nil {
		return fmt.Errorf("abort project %s: %w", projectID, err)
	}
	if err := o.queue.Drop(ctx, projectID); err != nil {
		slog.Error("Queue drop failed on abort", "project_id", projectID, "error", err)
	}

	_, _ = o.events.Publish(ctx, &models.Event{
		ProjectID:   projectID,
		Type:        models.EventProjectAborted,
		Actor:       actorName,
		CausationID: causationID,
		Payload: map[string]any{
			"reason":          reason,
			"cancelled_tasks": len(cancelled),
		},
	})
	slog.Warn("Project aborted", "project_id", projectID, "reason", reason, "cancelled", len(cancelled))
	return nil
}
