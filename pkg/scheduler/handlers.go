package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clipforge/clipforge/pkg/blackboard"
	"github.com/clipforge/clipforge/pkg/models"
)

// Name implements eventstore.Subscriber.
func (s *Scheduler) Name() string { return actorName }

// SubscribedTypes lists the events the scheduler consumes.
func (s *Scheduler) SubscribedTypes() []models.EventType {
	return []models.EventType{models.EventTaskCompleted, models.EventTaskFailed}
}

// HandleEvent routes worker completion reports. Implements
// eventstore.Subscriber; must stay idempotent per event id because the
// bus delivers at least once.
func (s *Scheduler) HandleEvent(ctx context.Context, ev *models.Event) error {
	switch ev.Type {
	case models.EventTaskCompleted:
		return s.handleCompleted(ctx, ev)
	case models.EventTaskFailed:
		return s.handleFailed(ctx, ev)
	}
	return nil
}

// handleCompleted finalizes a successful task: record output, fold the
// actual cost into the budget, release the task lock.
func (s *Scheduler) handleCompleted(ctx context.Context, ev *models.Event) error {
	taskID := ev.PayloadString("task_id")
	if taskID == "" {
		slog.Warn("TASK_COMPLETED without task_id, ignoring", "event_id", ev.ID)
		return nil
	}

	var (
		task    models.Task
		applied bool
	)
	now := time.Now().UTC()
	_, err := s.state.UpdateTask(ctx, ev.ProjectID, taskID, func(t *models.Task) error {
		applied = false
		if t.Status == models.TaskCompleted {
			task = *t
			return nil // duplicate delivery
		}
		t.Status = models.TaskCompleted
		t.CompletedAt = &now
		t.ActualCost = ev.Metadata.Cost
		if output, ok := ev.Payload["output"].(map[string]any); ok {
			t.Output = output
		}
		if len(t.Output) == 0 {
			t.Output = map[string]any{"event_id": ev.ID}
		}
		task = *t
		applied = true
		return nil
	}, blackboard.WriteMeta{Actor: actorName, CausationEventID: ev.ID})
	if err != nil {
		return fmt.Errorf("complete task %s: %w", taskID, err)
	}

	// Cost folds only on the first transition to completed: a redelivered
	// TASK_COMPLETED must not double-charge the budget.
	if applied && ev.Metadata.Cost > 0 {
		budget, _, err := s.state.AddCost(ctx, ev.ProjectID, costCategory(task.Type), ev.Metadata.Cost,
			blackboard.WriteMeta{Actor: actorName, CausationEventID: ev.ID})
		if err != nil {
			return fmt.Errorf("record cost of task %s: %w", taskID, err)
		}
		s.warnOnBudget(ctx, ev, budget)
	}

	s.releaseTaskLock(ctx, task)
	return nil
}

// warnOnBudget announces the crossing of the spend warning threshold.
// It runs only after the once-per-task cost fold, against the budget
// that fold returned, so exactly one completion observes the crossing
// regardless of redelivery or consumer-group ordering.
func (s *Scheduler) warnOnBudget(ctx context.Context, ev *models.Event, b models.Budget) {
	if b.Total.Amount <= 0 {
		return
	}
	after := b.Fraction()
	before := (b.Spent.Amount - ev.Metadata.Cost) / b.Total.Amount
	if before >= s.budget.WarnFraction || after < s.budget.WarnFraction {
		return
	}
	_, _ = s.events.Publish(ctx, &models.Event{
		ProjectID:   ev.ProjectID,
		Type:        models.EventCostOverrunWarning,
		Actor:       actorName,
		CausationID: ev.ID,
		Payload: map[string]any{
			"spent":    b.Spent.Amount,
			"total":    b.Total.Amount,
			"fraction": after,
		},
	})
	slog.Warn("Budget warn threshold crossed",
		"project_id", ev.ProjectID, "spent", b.Spent.Amount, "total", b.Total.Amount)
}

// handleFailed applies the retry policy: transient failures re-enqueue
// at the same priority until the retry budget runs out, then the task
// fails for good and the failure escalates.
func (s *Scheduler) handleFailed(ctx context.Context, ev *models.Event) error {
	taskID := ev.PayloadString("task_id")
	if taskID == "" {
		slog.Warn("TASK_FAILED without task_id, ignoring", "event_id", ev.ID)
		return nil
	}
	reason := ev.PayloadString("reason")

	var (
		task    models.Task
		retried bool
	)
	_, err := s.state.UpdateTask(ctx, ev.ProjectID, taskID, func(t *models.Task) error {
		if t.Status != models.TaskInProgress {
			task, retried = *t, false
			return nil // duplicate delivery or watchdog got here first
		}
		t.RetryCount++
		if t.CanRetry() {
			t.Status = models.TaskPending
			t.StartedAt = nil
			retried = true
		} else {
			t.Status = models.TaskFailed
			t.FailureReason = models.FailureRetriesExceeded
			retried = false
		}
		task = *t
		return nil
	}, blackboard.WriteMeta{Actor: actorName, CausationEventID: ev.ID})
	if err != nil {
		return fmt.Errorf("fail task %s: %w", taskID, err)
	}

	s.releaseTaskLock(ctx, task)

	if retried {
		if err := s.queue.Enqueue(ctx, ev.ProjectID, task); err != nil {
			return fmt.Errorf("requeue task %s: %w", taskID, err)
		}
		slog.Info("Task requeued after failure",
			"task_id", taskID, "retry", task.RetryCount, "max", task.MaxRetries, "reason", reason)
		return nil
	}
	if task.Status != models.TaskFailed {
		return nil
	}

	_, _ = s.events.Publish(ctx, &models.Event{
		ProjectID:   ev.ProjectID,
		Type:        models.EventErrorOccurred,
		Actor:       actorName,
		CausationID: ev.ID,
		Payload: map[string]any{
			"task_id": taskID,
			"reason":  models.FailureRetriesExceeded,
			"detail":  reason,
		},
	})
	_, _ = s.events.Publish(ctx, &models.Event{
		ProjectID:   ev.ProjectID,
		Type:        models.EventHumanGateTriggered,
		Actor:       actorName,
		CausationID: ev.ID,
		Payload: map[string]any{
			"task_id": taskID,
			"reason":  fmt.Sprintf("task %s failed %d times", taskID, task.RetryCount),
		},
	})
	return nil
}

// costCategory buckets spend by the producing task type.
func costCategory(t models.TaskType) string {
	switch t {
	case models.TaskGenerateKeyframe, models.TaskGenerateMotionStill:
		return "image_generation"
	case models.TaskGeneratePreviewVideo, models.TaskGenerateFinalVideo, models.TaskModelSwapRetry:
		return "video_generation"
	case models.TaskGenerateMusic, models.TaskGenerateVoice:
		return "audio_generation"
	case models.TaskRunVisualQA, models.TaskRunVideoQA, models.TaskRunAudioQA:
		return "qa"
	default:
		return "coordination"
	}
}
