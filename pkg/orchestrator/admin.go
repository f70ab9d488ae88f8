package orchestrator

import (
	"context"
	"fmt"

	"github.com/clipforge/clipforge/pkg/blackboard"
	"github.com/clipforge/clipforge/pkg/models"
)

// Administrative operations exposed over the admin API. These mutate
// through the same stores and events as the pipeline itself, so admin
// actions show up in the change history like any other actor.

const adminActor = "admin"

// ListApprovals returns a project's pending approval requests, oldest
// first.
func (o *Orchestrator) ListApprovals(ctx context.Context, projectID string) ([]models.ApprovalRequest, error) {
	return o.state.ListPendingApprovals(ctx, projectID)
}

// Decide injects a human decision as a bus event; the approval gate
// consumes it like a decision from any other channel. Returns the
// published event id.
func (o *Orchestrator) Decide(ctx context.Context, projectID, approvalID string, decision models.ApprovalStatus, decidedBy, notes string) (string, error) {
	var eventType models.EventType
	switch decision {
	case models.ApprovalApproved:
		eventType = models.EventUserApproved
	case models.ApprovalRevisionRequested:
		eventType = models.EventUserRevisionRequested
	case models.ApprovalRejected:
		eventType = models.EventUserRejected
	default:
		return "", blackboard.NewValidationError("decision", fmt.Sprintf("unsupported decision %q", decision))
	}

	// Existence check up front so the admin gets a 404 instead of a
	// decision event that dead-letters.
	if _, err := o.state.GetProjectFresh(ctx, projectID); err != nil {
		return "", err
	}

	return o.events.Publish(ctx, &models.Event{
		ProjectID: projectID,
		Type:      eventType,
		Actor:     adminActor,
		Payload: map[string]any{
			"approval_id": approvalID,
			"decided_by":  decidedBy,
			"notes":       notes,
		},
	})
}

// Tasks lists a project's tasks filtered by status, type, or assignee.
func (o *Orchestrator) Tasks(ctx context.Context, projectID string, filter models.TaskFilter) ([]models.Task, error) {
	return o.state.ListTasks(ctx, projectID, filter)
}

// RetryTask resets a FAILED task and puts it back on the queue. A FAILED
// project resumes rendering so the scheduler picks the task up again.
func (o *Orchestrator) RetryTask(ctx context.Context, projectID, taskID string) error {
	meta := blackboard.WriteMeta{Actor: adminActor}

	var task models.Task
	st, err := o.state.UpdateTask(ctx, projectID, taskID, func(t *models.Task) error {
		if t.Status != models.TaskFailed {
			return blackboard.NewValidationError("task.status",
				fmt.Sprintf("only failed tasks can be retried, %s is %s", taskID, t.Status))
		}
		t.Status = models.TaskPending
		t.RetryCount = 0
		t.FailureReason = ""
		t.StartedAt = nil
		task = *t
		return nil
	}, meta)
	if err != nil {
		return err
	}

	if st.Status == models.ProjectFailed {
		if _, err := o.state.UpdateProjectStatus(ctx, projectID, models.ProjectRendering, meta); err != nil {
			return fmt.Errorf("resume failed project %s: %w", projectID, err)
		}
	}
	return o.queue.Enqueue(ctx, projectID, task)
}
