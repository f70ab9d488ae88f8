// Package scheduler dispatches ready tasks to worker agents: it claims
// queue heads, enforces dependency, budget, and lock constraints, and
// turns worker completion reports back into task state. Multiple
// replicas run concurrently; the queue's atomic claim keeps dispatch
// exactly-once per task.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/clipforge/clipforge/pkg/blackboard"
	"github.com/clipforge/clipforge/pkg/config"
	"github.com/clipforge/clipforge/pkg/locksvc"
	"github.com/clipforge/clipforge/pkg/models"
	"github.com/clipforge/clipforge/pkg/taskqueue"
)

// StateStore is the slice of the blackboard the scheduler needs.
type StateStore interface {
	GetProjectFresh(ctx context.Context, projectID string) (*models.ProjectState, error)
	ListProjectIDs(ctx context.Context, statuses ...models.ProjectStatus) ([]string, error)
	UpdateTask(ctx context.Context, projectID, taskID string, fn func(*models.Task) error, meta blackboard.WriteMeta) (*models.ProjectState, error)
	AddCost(ctx context.Context, projectID, category string, amount float64, meta blackboard.WriteMeta) (models.Budget, int64, error)
}

// TaskQueue is the slice of the ready queue the scheduler needs.
type TaskQueue interface {
	Peek(ctx context.Context, projectID string, n int64) ([]string, error)
	Claim(ctx context.Context, projectID string, candidates []string) (string, error)
	Enqueue(ctx context.Context, projectID string, task models.Task) error
	Rebuild(ctx context.Context, projectID string, tasks map[string]models.Task) error
}

// LockManager acquires and releases task locks.
type LockManager interface {
	Acquire(ctx context.Context, key, projectID, holder string, ttl time.Duration) error
	Release(ctx context.Context, key, holder string) error
}

// Publisher publishes scheduler events to the bus.
type Publisher interface {
	Publish(ctx context.Context, ev *models.Event) (string, error)
}

const actorName = "scheduler"

// dispatchableStatuses are the project states in which tasks may start.
// APPROVAL_PENDING projects hold their queues until the gate resolves.
var dispatchableStatuses = []models.ProjectStatus{
	models.ProjectCreated,
	models.ProjectPlanning,
	models.ProjectRendering,
	models.ProjectQA,
	models.ProjectEditing,
}

// Scheduler runs the dispatch workers and the timeout watchdog.
type Scheduler struct {
	cfg    *config.SchedulerConfig
	budget *config.BudgetConfig
	state  StateStore
	queue  TaskQueue
	locks  LockManager
	events Publisher

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a scheduler. Call Start to begin dispatching.
func New(cfg *config.SchedulerConfig, budget *config.BudgetConfig, state StateStore, queue TaskQueue, locks LockManager, events Publisher) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		budget: budget,
		state:  state,
		queue:  queue,
		locks:  locks,
		events: events,
		stopCh: make(chan struct{}),
	}
}

// Start rebuilds the ready queues, then launches the dispatch workers
// and the watchdog.
func (s *Scheduler) Start(ctx context.Context) {
	s.recoverQueues(ctx)
	for i := 0; i < s.cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go func(id int) {
			defer s.wg.Done()
			s.dispatchLoop(ctx, id)
		}(i)
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.watchdogLoop(ctx)
	}()
	slog.Info("Scheduler started", "workers", s.cfg.WorkerCount)
}

// recoverQueues rebuilds each live project's ready queue from its
// aggregate. A crash between task persistence and enqueue, or a Redis
// flush, leaves queueable tasks missing from the queue; enqueue is
// idempotent per task id, so rebuilding over a live queue is safe.
func (s *Scheduler) recoverQueues(ctx context.Context) {
	statuses := append([]models.ProjectStatus{models.ProjectApprovalPending}, dispatchableStatuses...)
	ids, err := s.state.ListProjectIDs(ctx, statuses...)
	if err != nil {
		slog.Error("Queue recovery scan failed", "error", err)
		return
	}
	for _, projectID := range ids {
		st, err := s.state.GetProjectFresh(ctx, projectID)
		if err != nil {
			slog.Error("Queue recovery read failed", "project_id", projectID, "error", err)
			continue
		}
		if err := s.queue.Rebuild(ctx, projectID, st.Tasks); err != nil {
			slog.Error("Queue rebuild failed", "project_id", projectID, "error", err)
		}
	}
	if len(ids) > 0 {
		slog.Info("Ready queues rebuilt", "projects", len(ids))
	}
}

// Stop signals all loops and waits for them to drain.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// dispatchLoop scans projects on a jittered interval. Scanning runs
// independently of event arrival: a dependency satisfied out of band
// (approval resume, admin retry) must still dispatch.
func (s *Scheduler) dispatchLoop(ctx context.Context, worker int) {
	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-time.After(s.jitteredPoll()):
		}

		ids, err := s.state.ListProjectIDs(ctx, dispatchableStatuses...)
		if err != nil {
			slog.Error("Project scan failed", "worker", worker, "error", err)
			continue
		}
		for _, projectID := range ids {
			if err := s.DispatchProject(ctx, projectID); err != nil {
				slog.Error("Dispatch pass failed", "project_id", projectID, "error", err)
			}
		}
	}
}

func (s *Scheduler) jitteredPoll() time.Duration {
	base := s.cfg.PollInterval
	j := s.cfg.PollIntervalJitter
	if j <= 0 {
		return base
	}
	return base - j + time.Duration(rand.Int63n(int64(2*j)))
}

// DispatchProject runs one dispatch pass over a project's queue: peek a
// batch, re-check each candidate against fresh state, and start every
// task that clears the gates.
func (s *Scheduler) DispatchProject(ctx context.Context, projectID string) error {
	candidates, err := s.queue.Peek(ctx, projectID, s.cfg.DispatchBatch)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return nil
	}

	// Fresh read: queue membership can lag the aggregate, and dependency
	// state may have moved since enqueue.
	st, err := s.state.GetProjectFresh(ctx, projectID)
	if err != nil {
		return err
	}
	if !dispatchable(st.Status) {
		return nil
	}

	for _, taskID := range candidates {
		s.tryDispatch(ctx, st, taskID)
	}
	return nil
}

// tryDispatch attempts to start one candidate task. Losing the claim
// race or the lock is normal; real failures are logged.
func (s *Scheduler) tryDispatch(ctx context.Context, st *models.ProjectState, taskID string) {
	task, ok := st.Tasks[taskID]
	if !ok || !task.Queueable() {
		// Stale queue entry; drop it via claim so it stops recycling.
		_, _ = s.queue.Claim(ctx, st.ID, []string{taskID})
		return
	}
	if !st.DependenciesCompleted(task) {
		return
	}

	if !st.Budget.CanAfford(task.EstimatedCost) {
		s.failForBudget(ctx, st, task)
		return
	}

	holder := lockHolder(task.ID)
	if task.RequiredLockKey != "" {
		ttl := s.cfg.TimeoutFor(string(task.Type)) + s.cfg.LockTTL
		if err := s.locks.Acquire(ctx, task.RequiredLockKey, st.ID, holder, ttl); err != nil {
			if !errors.Is(err, locksvc.ErrLockHeld) {
				slog.Error("Lock acquire failed", "task_id", task.ID, "lock", task.RequiredLockKey, "error", err)
			}
			return
		}
	}

	claimed, err := s.queue.Claim(ctx, st.ID, []string{task.ID})
	if err != nil || claimed == "" {
		// Another replica won; give the lock back.
		s.releaseTaskLock(ctx, task)
		if err != nil && !errors.Is(err, taskqueue.ErrEmpty) {
			slog.Error("Queue claim failed", "task_id", task.ID, "error", err)
		}
		return
	}

	now := time.Now().UTC()
	_, err = s.state.UpdateTask(ctx, st.ID, task.ID, func(t *models.Task) error {
		t.Status = models.TaskInProgress
		t.StartedAt = &now
		return nil
	}, blackboard.WriteMeta{Actor: actorName, CausationEventID: task.CausationEventID})
	if err != nil {
		slog.Error("Task start write failed, requeueing", "task_id", task.ID, "error", err)
		s.releaseTaskLock(ctx, task)
		_ = s.queue.Enqueue(ctx, st.ID, task)
		return
	}

	_, err = s.events.Publish(ctx, &models.Event{
		ProjectID:   st.ID,
		Type:        models.EventTaskAssigned,
		Actor:       actorName,
		CausationID: task.CausationEventID,
		Payload: map[string]any{
			"task_id":  task.ID,
			"type":     string(task.Type),
			"assignee": task.Assignee,
			"input":    task.Input,
		},
	})
	if err != nil {
		slog.Error("TASK_ASSIGNED publish failed, worker will not start", "task_id", task.ID, "error", err)
	}
}

// failForBudget marks a task failed for budget exhaustion and announces
// it. The task does not consume a retry: no amount of retrying restores
// budget.
func (s *Scheduler) failForBudget(ctx context.Context, st *models.ProjectState, task models.Task) {
	_, _ = s.queue.Claim(ctx, st.ID, []string{task.ID})

	_, err := s.state.UpdateTask(ctx, st.ID, task.ID, func(t *models.Task) error {
		t.Status = models.TaskFailed
		t.FailureReason = models.FailureBudgetExhausted
		return nil
	}, blackboard.WriteMeta{Actor: actorName})
	if err != nil {
		slog.Error("Budget-fail write failed", "task_id", task.ID, "error", err)
		return
	}

	_, _ = s.events.Publish(ctx, &models.Event{
		ProjectID:   st.ID,
		Type:        models.EventBudgetExhausted,
		Actor:       actorName,
		CausationID: task.CausationEventID,
		Payload: map[string]any{
			"task_id":        task.ID,
			"estimated_cost": task.EstimatedCost,
			"remaining":      st.Budget.Remaining(),
		},
	})
}

func (s *Scheduler) releaseTaskLock(ctx context.Context, task models.Task) {
	if task.RequiredLockKey == "" {
		return
	}
	if err := s.locks.Release(ctx, task.RequiredLockKey, lockHolder(task.ID)); err != nil {
		slog.Warn("Task lock release failed, TTL will reap it",
			"task_id", task.ID, "lock", task.RequiredLockKey, "error", err)
	}
}

func dispatchable(status models.ProjectStatus) bool {
	for _, st := range dispatchableStatuses {
		if st == status {
			return true
		}
	}
	return false
}

// lockHolder names the lock owner for a task. Deterministic so any
// replica's completion handler can release it.
func lockHolder(taskID string) string {
	return "task:" + taskID
}
