// Package orchestrator is the coordination façade: it consumes every
// pipeline event, maps it to tasks through the rule table, applies the
// budget and approval gates and queue backpressure, and drives project
// lifecycle transitions. Several instances run concurrently against the
// same stores; all shared state lives in the blackboard and Redis.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clipforge/clipforge/pkg/blackboard"
	"github.com/clipforge/clipforge/pkg/config"
	"github.com/clipforge/clipforge/pkg/mapper"
	"github.com/clipforge/clipforge/pkg/models"
)

// StateStore is the slice of the blackboard the orchestrator needs.
type StateStore interface {
	GetProjectFresh(ctx context.Context, projectID string) (*models.ProjectState, error)
	UpdateProjectStatus(ctx context.Context, projectID string, status models.ProjectStatus, meta blackboard.WriteMeta) (*models.ProjectState, error)
	PutTasks(ctx context.Context, projectID string, tasks []models.Task, meta blackboard.WriteMeta) (*models.ProjectState, error)
	UpdateTask(ctx context.Context, projectID, taskID string, fn func(*models.Task) error, meta blackboard.WriteMeta) (*models.ProjectState, error)
	ListTasks(ctx context.Context, projectID string, filter models.TaskFilter) ([]models.Task, error)
	CancelPendingTasks(ctx context.Context, projectID, reason string, meta blackboard.WriteMeta) ([]string, error)
	ListPendingApprovals(ctx context.Context, projectID string) ([]models.ApprovalRequest, error)
	AppendError(ctx context.Context, projectID string, entry models.ErrorEntry, meta blackboard.WriteMeta) (*models.ProjectState, error)
}

// TaskQueue is the slice of the ready queue the orchestrator needs.
type TaskQueue interface {
	Enqueue(ctx context.Context, projectID string, task models.Task) error
	Depth(ctx context.Context, projectID string) (int64, error)
	Drop(ctx context.Context, projectID string) error
}

// EventMapper turns an event into task templates.
type EventMapper interface {
	Map(ev *models.Event, st *models.ProjectState) ([]mapper.TaskTemplate, error)
}

// ApprovalGate pauses projects at configured checkpoints.
type ApprovalGate interface {
	ShouldGate(st *models.ProjectState, ev *models.Event) bool
	Trigger(ctx context.Context, st *models.ProjectState, ev *models.Event, deferred []models.Task) (models.ApprovalRequest, error)
}

// Publisher publishes orchestrator events to the bus.
type Publisher interface {
	Publish(ctx context.Context, ev *models.Event) (string, error)
}

const actorName = "orchestrator"

// Orchestrator routes events through the mapper and gates.
type Orchestrator struct {
	cfg    *config.SchedulerConfig
	state  StateStore
	queue  TaskQueue
	mapper EventMapper
	gate   ApprovalGate
	events Publisher
}

// New creates an orchestrator.
func New(cfg *config.SchedulerConfig, state StateStore, queue TaskQueue, m EventMapper, gate ApprovalGate, events Publisher) *Orchestrator {
	return &Orchestrator{
		cfg:    cfg,
		state:  state,
		queue:  queue,
		mapper: m,
		gate:   gate,
		events: events,
	}
}

// Name implements eventstore.Subscriber.
func (o *Orchestrator) Name() string { return actorName }

// SubscribedTypes lists every event type; the orchestrator watches the
// whole pipeline.
func (o *Orchestrator) SubscribedTypes() []models.EventType {
	return models.AllEventTypes()
}

// HandleEvent routes one event: lifecycle first, then the mapper and its
// gates. Implements eventstore.Subscriber; must stay idempotent per
// event id because the bus delivers at least once.
func (o *Orchestrator) HandleEvent(ctx context.Context, ev *models.Event) error {
	if ev.ProjectID == "" {
		slog.Warn("Event without project_id, ignoring", "event_id", ev.ID, "type", ev.Type)
		return nil
	}

	switch ev.Type {
	case models.EventForceAbort:
		return o.AbortProject(ctx, ev.ProjectID, ev.PayloadString("reason"), ev.ID)
	case models.EventAssemblyComplete:
		return o.finalize(ctx, ev)
	}

	st, err := o.state.GetProjectFresh(ctx, ev.ProjectID)
	if err != nil {
		if errors.Is(err, blackboard.ErrProjectNotFound) {
			slog.Warn("Event for unknown project, ignoring", "event_id", ev.ID, "project_id", ev.ProjectID)
			return nil
		}
		return err
	}
	if st.Status.Terminal() {
		// Late worker results on delivered/aborted projects are recorded by
		// the scheduler but never cascade into new tasks.
		return nil
	}

	if st.Budget.OverHardStop() {
		slog.Error("Budget hard stop crossed, aborting",
			"project_id", st.ID, "spent", st.Budget.Spent.Amount, "total", st.Budget.Total.Amount)
		return o.AbortProject(ctx, st.ID, "budget hard stop exceeded", ev.ID)
	}

	switch ev.Type {
	case models.EventBudgetExhausted:
		// The scheduler refused a task for lack of budget; escalate so
		// an operator decides between raising the budget and aborting.
		_, err := o.events.Publish(ctx, &models.Event{
			ProjectID:   st.ID,
			Type:        models.EventHumanGateTriggered,
			Actor:       actorName,
			CausationID: ev.ID,
			Payload: map[string]any{
				"reason":  "budget exhausted",
				"task_id": ev.PayloadString("task_id"),
			},
		})
		return err
	case models.EventHumanGateTriggered:
		if err := o.pauseForReview(ctx, st, ev); err != nil {
			return err
		}
		// Fall through to the mapper: the rule table turns the gate
		// event into a blocking HUMAN_REVIEW_REQUIRED task.
	case models.EventVideoQAReport:
		// A passing video QA approves the shot; the approval event is
		// what releases the final render. Failures fall through to the
		// mapper's tuning rule.
		if ev.PayloadString("verdict") != string(models.QAFail) {
			if _, err := o.events.Publish(ctx, &models.Event{
				ProjectID:   st.ID,
				Type:        models.EventShotApproved,
				Actor:       actorName,
				CausationID: ev.ID,
				Payload: map[string]any{
					"shot_id":      ev.PayloadString("shot_id"),
					"artifact_uri": ev.PayloadString("artifact_uri"),
				},
			}); err != nil {
				return err
			}
		}
	}

	if st, err = o.advanceStatus(ctx, st, ev); err != nil {
		return err
	}

	templates, err := o.mapper.Map(ev, st)
	if err != nil {
		_, _ = o.state.AppendError(ctx, ev.ProjectID, models.ErrorEntry{
			ID:        uuid.NewString(),
			Timestamp: time.Now().UTC(),
			Severity:  "error",
			Source:    actorName,
			Message:   fmt.Sprintf("mapping %s: %v", ev.Type, err),
		}, blackboard.WriteMeta{Actor: actorName, CausationEventID: ev.ID})
		return fmt.Errorf("map event %s: %w", ev.ID, err)
	}
	if len(templates) == 0 {
		return nil
	}

	depth, err := o.queue.Depth(ctx, ev.ProjectID)
	if err != nil {
		return fmt.Errorf("queue depth for %s: %w", ev.ProjectID, err)
	}
	if depth >= o.cfg.QueueHighWater {
		_, _ = o.events.Publish(ctx, &models.Event{
			ProjectID:   ev.ProjectID,
			Type:        models.EventQueuePressure,
			Actor:       actorName,
			CausationID: ev.ID,
			Payload: map[string]any{
				"depth":      depth,
				"high_water": o.cfg.QueueHighWater,
				"deferred":   len(templates),
			},
		})
		slog.Warn("Queue over high water, task creation deferred",
			"project_id", ev.ProjectID, "depth", depth, "templates", len(templates))
		return fmt.Errorf("queue pressure on %s: depth %d", ev.ProjectID, depth)
	}

	tasks := o.buildTasks(st, ev, templates)

	if o.gate.ShouldGate(st, ev) {
		_, err := o.gate.Trigger(ctx, st, ev, tasks)
		return err
	}

	meta := blackboard.WriteMeta{Actor: actorName, CausationEventID: ev.ID}
	if _, err := o.state.PutTasks(ctx, ev.ProjectID, tasks, meta); err != nil {
		return fmt.Errorf("store tasks for event %s: %w", ev.ID, err)
	}
	for _, task := range tasks {
		if err := o.queue.Enqueue(ctx, ev.ProjectID, task); err != nil {
			return fmt.Errorf("enqueue task %s: %w", task.ID, err)
		}
	}
	slog.Info("Tasks scheduled", "project_id", ev.ProjectID, "event", ev.Type, "count", len(tasks))
	return nil
}

// pauseForReview parks a project behind the approval gate on a human
// escalation. The gate's approval request is what the admin resolves:
// approve resumes the prior status, reject restarts the stage.
func (o *Orchestrator) pauseForReview(ctx context.Context, st *models.ProjectState, ev *models.Event) error {
	if st.Status == models.ProjectApprovalPending {
		return nil
	}
	_, err := o.gate.Trigger(ctx, st, ev, nil)
	return err
}

// buildTasks materializes templates into tasks, substituting the cheaper
// fallback variant when the primary does not fit the remaining budget.
// A task unaffordable even as its fallback is still created; the
// scheduler's dispatch gate fails it with the budget accounting intact.
func (o *Orchestrator) buildTasks(st *models.ProjectState, ev *models.Event, templates []mapper.TaskTemplate) []models.Task {
	now := time.Now().UTC()
	tasks := make([]models.Task, 0, len(templates))
	for _, tpl := range templates {
		chosen := tpl
		if !st.Budget.CanAfford(tpl.EstimatedCost) && tpl.Fallback != nil && st.Budget.CanAfford(tpl.Fallback.EstimatedCost) {
			slog.Info("Budget fallback substituted",
				"project_id", st.ID, "primary", tpl.Type, "fallback", tpl.Fallback.Type,
				"remaining", st.Budget.Remaining())
			chosen = *tpl.Fallback
		}
		tasks = append(tasks, models.Task{
			ID:               uuid.NewString(),
			Type:             chosen.Type,
			Status:           models.TaskPending,
			Assignee:         chosen.Assignee,
			Priority:         chosen.Priority,
			Input:            chosen.Input,
			RetryCount:       ev.Metadata.RetryCount,
			MaxRetries:       chosen.MaxRetries,
			CreatedAt:        now,
			EstimatedCost:    chosen.EstimatedCost,
			CausationEventID: ev.ID,
			RequiredLockKey:  chosen.RequiredLockKey,
		})
	}
	return tasks
}
