// Package approval implements the human checkpoint gate: it pauses a
// project at configured pipeline stages, holds the downstream tasks on
// the request, and resumes, revises, or restarts when the decision
// arrives. Pause state lives in the blackboard, so a restart resumes
// waiting projects correctly.
package approval

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clipforge/clipforge/pkg/blackboard"
	"github.com/clipforge/clipforge/pkg/config"
	"github.com/clipforge/clipforge/pkg/models"
)

// StateStore is the slice of the blackboard the gate needs.
type StateStore interface {
	GetProjectFresh(ctx context.Context, projectID string) (*models.ProjectState, error)
	UpdateProjectStatus(ctx context.Context, projectID string, status models.ProjectStatus, meta blackboard.WriteMeta) (*models.ProjectState, error)
	CreateApproval(ctx context.Context, projectID string, req models.ApprovalRequest, meta blackboard.WriteMeta) (*models.ProjectState, error)
	ResolveApproval(ctx context.Context, projectID, approvalID string, status models.ApprovalStatus, resolvedBy, notes string, meta blackboard.WriteMeta) (models.ApprovalRequest, error)
	MarkApprovalReminderSent(ctx context.Context, projectID, approvalID string, meta blackboard.WriteMeta) error
	ListPendingApprovalsAll(ctx context.Context) ([]models.ApprovalRequest, error)
	PutTasks(ctx context.Context, projectID string, tasks []models.Task, meta blackboard.WriteMeta) (*models.ProjectState, error)
}

// TaskQueue enqueues tasks released by a decision.
type TaskQueue interface {
	Enqueue(ctx context.Context, projectID string, task models.Task) error
}

// Publisher publishes gate events to the bus.
type Publisher interface {
	Publish(ctx context.Context, ev *models.Event) (string, error)
}

const actorName = "approval_gate"

// Gate pauses projects at approval checkpoints and applies decisions.
type Gate struct {
	cfg    *config.ApprovalConfig
	state  StateStore
	queue  TaskQueue
	events Publisher
}

// NewGate creates an approval gate.
func NewGate(cfg *config.ApprovalConfig, state StateStore, queue TaskQueue, events Publisher) *Gate {
	return &Gate{cfg: cfg, state: state, queue: queue, events: events}
}

// ShouldGate reports whether the event hits a configured checkpoint for
// this project. Auto mode disables all checkpoints.
func (g *Gate) ShouldGate(st *models.ProjectState, ev *models.Event) bool {
	return st.Spec.UserOptions.CheckpointEnabled(ev.Type)
}

// Trigger pauses the project: the approval request is persisted with the
// deferred downstream tasks, the project moves to APPROVAL_PENDING, and
// USER_APPROVAL_REQUIRED announces the pause.
func (g *Gate) Trigger(ctx context.Context, st *models.ProjectState, ev *models.Event, deferred []models.Task) (models.ApprovalRequest, error) {
	req := models.ApprovalRequest{
		ID:             uuid.NewString(),
		ProjectID:      st.ID,
		Stage:          ev.Type,
		ContentSummary: contentSummary(ev),
		PriorStatus:    st.Status,
		TriggerEventID: ev.ID,
		DeferredTasks:  deferred,
		CreatedAt:      time.Now().UTC(),
	}

	meta := blackboard.WriteMeta{Actor: actorName, CausationEventID: ev.ID}
	if _, err := g.state.CreateApproval(ctx, st.ID, req, meta); err != nil {
		return models.ApprovalRequest{}, fmt.Errorf("create approval at %s: %w", ev.Type, err)
	}
	if st.Status != models.ProjectApprovalPending {
		if _, err := g.state.UpdateProjectStatus(ctx, st.ID, models.ProjectApprovalPending, meta); err != nil {
			return models.ApprovalRequest{}, fmt.Errorf("pause project %s: %w", st.ID, err)
		}
	}

	_, err := g.events.Publish(ctx, &models.Event{
		ProjectID:   st.ID,
		Type:        models.EventUserApprovalRequired,
		Actor:       actorName,
		CausationID: ev.ID,
		Payload: map[string]any{
			"approval_id":     req.ID,
			"stage":           string(req.Stage),
			"content_summary": req.ContentSummary,
			"deferred_tasks":  len(deferred),
		},
	})
	if err != nil {
		slog.Error("USER_APPROVAL_REQUIRED publish failed", "approval_id", req.ID, "error", err)
	}
	slog.Info("Project paused for approval",
		"project_id", st.ID, "approval_id", req.ID, "stage", req.Stage, "deferred", len(deferred))
	return req, nil
}

// Name implements eventstore.Subscriber.
func (g *Gate) Name() string { return actorName }

// SubscribedTypes lists the decision events the gate consumes.
func (g *Gate) SubscribedTypes() []models.EventType {
	return []models.EventType{
		models.EventUserApproved,
		models.EventUserRevisionRequested,
		models.EventUserRejected,
	}
}

// HandleEvent applies a human decision. Implements eventstore.Subscriber.
func (g *Gate) HandleEvent(ctx context.Context, ev *models.Event) error {
	approvalID := ev.PayloadString("approval_id")
	if approvalID == "" {
		slog.Warn("Decision event without approval_id, ignoring", "event_id", ev.ID, "type", ev.Type)
		return nil
	}
	decidedBy := ev.PayloadString("decided_by")
	if decidedBy == "" {
		decidedBy = ev.Actor
	}
	notes := ev.PayloadString("notes")

	switch ev.Type {
	case models.EventUserApproved:
		return g.approve(ctx, ev, approvalID, decidedBy, notes)
	case models.EventUserRevisionRequested:
		return g.revise(ctx, ev, approvalID, decidedBy, notes)
	case models.EventUserRejected:
		return g.reject(ctx, ev, approvalID, decidedBy, notes)
	}
	return nil
}

// approve resumes the project: prior status restored, deferred tasks
// stored and enqueued verbatim.
func (g *Gate) approve(ctx context.Context, ev *models.Event, approvalID, decidedBy, notes string) error {
	meta := blackboard.WriteMeta{Actor: actorName, CausationEventID: ev.ID}
	req, err := g.state.ResolveApproval(ctx, ev.ProjectID, approvalID, models.ApprovalApproved, decidedBy, notes, meta)
	if err != nil {
		return resolveErr(approvalID, err)
	}

	if err := g.resume(ctx, ev, req, meta); err != nil {
		return err
	}
	if err := g.releaseDeferred(ctx, ev.ProjectID, req.DeferredTasks, meta); err != nil {
		return err
	}

	g.recordDecision(ctx, ev, req, "approved", decidedBy)
	return nil
}

// revise resumes the project with a revision task carrying the reviewer's
// notes and the original content. The deferred tasks stay withheld; the
// revised content re-triggers the checkpoint on its way back through.
func (g *Gate) revise(ctx context.Context, ev *models.Event, approvalID, decidedBy, notes string) error {
	meta := blackboard.WriteMeta{Actor: actorName, CausationEventID: ev.ID}
	req, err := g.state.ResolveApproval(ctx, ev.ProjectID, approvalID, models.ApprovalRevisionRequested, decidedBy, notes, meta)
	if err != nil {
		return resolveErr(approvalID, err)
	}

	if err := g.resume(ctx, ev, req, meta); err != nil {
		return err
	}

	task := revisionTask(req, ev.ID)
	task.Input["revision_notes"] = notes
	if err := g.releaseDeferred(ctx, ev.ProjectID, []models.Task{task}, meta); err != nil {
		return err
	}

	g.recordDecision(ctx, ev, req, "revision_requested", decidedBy)
	return nil
}

// reject restarts the gated stage from scratch.
func (g *Gate) reject(ctx context.Context, ev *models.Event, approvalID, decidedBy, notes string) error {
	meta := blackboard.WriteMeta{Actor: actorName, CausationEventID: ev.ID}
	req, err := g.state.ResolveApproval(ctx, ev.ProjectID, approvalID, models.ApprovalRejected, decidedBy, notes, meta)
	if err != nil {
		return resolveErr(approvalID, err)
	}

	if err := g.resume(ctx, ev, req, meta); err != nil {
		return err
	}

	task := redoTask(req, ev.ID)
	task.Input["rejection_notes"] = notes
	if err := g.releaseDeferred(ctx, ev.ProjectID, []models.Task{task}, meta); err != nil {
		return err
	}

	g.recordDecision(ctx, ev, req, "rejected", decidedBy)
	return nil
}

// resume restores the pre-pause status unless another approval still
// holds the project.
func (g *Gate) resume(ctx context.Context, ev *models.Event, req models.ApprovalRequest, meta blackboard.WriteMeta) error {
	st, err := g.state.GetProjectFresh(ctx, ev.ProjectID)
	if err != nil {
		return err
	}
	for _, other := range st.Approvals {
		if other.Status == models.ApprovalPending {
			slog.Info("Project stays paused, another approval pending",
				"project_id", ev.ProjectID, "resolved", req.ID, "pending", other.ID)
			return nil
		}
	}
	if st.Status != models.ProjectApprovalPending {
		return nil
	}
	if _, err := g.state.UpdateProjectStatus(ctx, ev.ProjectID, req.PriorStatus, meta); err != nil {
		return fmt.Errorf("resume project %s: %w", ev.ProjectID, err)
	}
	return nil
}

func (g *Gate) releaseDeferred(ctx context.Context, projectID string, tasks []models.Task, meta blackboard.WriteMeta) error {
	if len(tasks) == 0 {
		return nil
	}
	if _, err := g.state.PutTasks(ctx, projectID, tasks, meta); err != nil {
		return fmt.Errorf("store released tasks: %w", err)
	}
	for _, task := range tasks {
		if err := g.queue.Enqueue(ctx, projectID, task); err != nil {
			return fmt.Errorf("enqueue released task %s: %w", task.ID, err)
		}
	}
	return nil
}

func (g *Gate) recordDecision(ctx context.Context, ev *models.Event, req models.ApprovalRequest, decision, decidedBy string) {
	_, err := g.events.Publish(ctx, &models.Event{
		ProjectID:   ev.ProjectID,
		Type:        models.EventHumanDecisionRecorded,
		Actor:       actorName,
		CausationID: ev.ID,
		Payload: map[string]any{
			"approval_id": req.ID,
			"stage":       string(req.Stage),
			"decision":    decision,
			"decided_by":  decidedBy,
		},
	})
	if err != nil {
		slog.Error("HUMAN_DECISION_RECORDED publish failed", "approval_id", req.ID, "error", err)
	}
}

// timeoutFor returns the effective approval timeout for a project: the
// spec's per-project override, else the configured default.
func (g *Gate) timeoutFor(st *models.ProjectState) time.Duration {
	if m := st.Spec.UserOptions.ApprovalTimeoutMinutes; m > 0 {
		return time.Duration(m) * time.Minute
	}
	return g.cfg.DefaultTimeout
}

// revisionTask maps a checkpoint stage to the task that redoes it with
// reviewer guidance.
func revisionTask(req models.ApprovalRequest, causationID string) models.Task {
	var (
		taskType models.TaskType
		assignee string
	)
	switch req.Stage {
	case models.EventSceneWritten:
		taskType, assignee = models.TaskRewriteScript, "script_agent"
	case models.EventShotPlanned:
		taskType, assignee = models.TaskReplanShots, "director_agent"
	case models.EventPreviewVideoReady:
		taskType, assignee = models.TaskGeneratePreviewVideo, "video_agent"
	case models.EventFinalVideoReady:
		taskType, assignee = models.TaskGenerateFinalVideo, "video_agent"
	default:
		taskType, assignee = models.TaskHumanReviewRequired, "human"
	}
	return models.Task{
		ID:               uuid.NewString(),
		Type:             taskType,
		Status:           models.TaskPending,
		Assignee:         assignee,
		Priority:         models.PriorityMax,
		MaxRetries:       models.DefaultMaxRetries,
		CreatedAt:        time.Now().UTC(),
		CausationEventID: causationID,
		Input: map[string]any{
			"approval_id":      req.ID,
			"stage":            string(req.Stage),
			"original_content": req.ContentSummary,
		},
	}
}

// redoTask restarts the gated stage from its beginning.
func redoTask(req models.ApprovalRequest, causationID string) models.Task {
	var (
		taskType models.TaskType
		assignee string
	)
	switch req.Stage {
	case models.EventSceneWritten:
		taskType, assignee = models.TaskWriteScript, "script_agent"
	case models.EventShotPlanned:
		taskType, assignee = models.TaskPlanShots, "director_agent"
	case models.EventPreviewVideoReady:
		taskType, assignee = models.TaskGenerateKeyframe, "image_agent"
	case models.EventFinalVideoReady:
		taskType, assignee = models.TaskGenerateFinalVideo, "video_agent"
	default:
		taskType, assignee = models.TaskHumanReviewRequired, "human"
	}
	return models.Task{
		ID:               uuid.NewString(),
		Type:             taskType,
		Status:           models.TaskPending,
		Assignee:         assignee,
		Priority:         models.PriorityMax,
		MaxRetries:       models.DefaultMaxRetries,
		CreatedAt:        time.Now().UTC(),
		CausationEventID: causationID,
		Input: map[string]any{
			"approval_id": req.ID,
			"stage":       string(req.Stage),
		},
	}
}

func contentSummary(ev *models.Event) string {
	if s := ev.PayloadString("summary"); s != "" {
		return s
	}
	if s := ev.PayloadString("artifact_uri"); s != "" {
		return s
	}
	return fmt.Sprintf("%s by %s", ev.Type, ev.Actor)
}

func resolveErr(approvalID string, err error) error {
	return fmt.Errorf("resolve approval %s: %w", approvalID, err)
}
