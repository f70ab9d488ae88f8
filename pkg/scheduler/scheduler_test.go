package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipforge/clipforge/pkg/blackboard"
	"github.com/clipforge/clipforge/pkg/config"
	"github.com/clipforge/clipforge/pkg/locksvc"
	"github.com/clipforge/clipforge/pkg/models"
	"github.com/clipforge/clipforge/pkg/taskqueue"
)

// fakeState is an in-memory StateStore.
type fakeState struct {
	mu       sync.Mutex
	projects map[string]*models.ProjectState
}

func newFakeState() *fakeState {
	return &fakeState{projects: make(map[string]*models.ProjectState)}
}

func (f *fakeState) put(st *models.ProjectState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects[st.ID] = st
}

func (f *fakeState) GetProjectFresh(_ context.Context, projectID string) (*models.ProjectState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.projects[projectID]
	if !ok {
		return nil, blackboard.ErrProjectNotFound
	}
	cp := *st
	cp.Tasks = make(map[string]models.Task, len(st.Tasks))
	for id, t := range st.Tasks {
		cp.Tasks[id] = t
	}
	return &cp, nil
}

func (f *fakeState) ListProjectIDs(_ context.Context, statuses ...models.ProjectStatus) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for id, st := range f.projects {
		for _, s := range statuses {
			if st.Status == s {
				out = append(out, id)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeState) UpdateTask(_ context.Context, projectID, taskID string, fn func(*models.Task) error, _ blackboard.WriteMeta) (*models.ProjectState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.projects[projectID]
	if !ok {
		return nil, blackboard.ErrProjectNotFound
	}
	t, ok := st.Tasks[taskID]
	if !ok {
		return nil, blackboard.ErrTaskNotFound
	}
	if err := fn(&t); err != nil {
		return nil, err
	}
	st.Tasks[taskID] = t
	st.Version++
	return st, nil
}

func (f *fakeState) AddCost(_ context.Context, projectID, category string, amount float64, _ blackboard.WriteMeta) (models.Budget, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.projects[projectID]
	if !ok {
		return models.Budget{}, 0, blackboard.ErrProjectNotFound
	}
	st.Budget.Spent.Amount += amount
	if st.Budget.Breakdown == nil {
		st.Budget.Breakdown = map[string]models.Money{}
	}
	m := st.Budget.Breakdown[category]
	m.Amount += amount
	st.Budget.Breakdown[category] = m
	st.Version++
	return st.Budget, st.Version, nil
}

// fakeQueue is an in-memory TaskQueue preserving insertion order.
type fakeQueue struct {
	mu    sync.Mutex
	items map[string][]string
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{items: make(map[string][]string)}
}

func (f *fakeQueue) Peek(_ context.Context, projectID string, n int64) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := f.items[projectID]
	if int64(len(ids)) > n {
		ids = ids[:n]
	}
	return append([]string(nil), ids...), nil
}

func (f *fakeQueue) Claim(_ context.Context, projectID string, candidates []string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, want := range candidates {
		for i, id := range f.items[projectID] {
			if id == want {
				f.items[projectID] = append(f.items[projectID][:i], f.items[projectID][i+1:]...)
				return id, nil
			}
		}
	}
	return "", taskqueue.ErrEmpty
}

func (f *fakeQueue) Enqueue(_ context.Context, projectID string, task models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.items[projectID] {
		if id == task.ID {
			return nil
		}
	}
	f.items[projectID] = append(f.items[projectID], task.ID)
	return nil
}

func (f *fakeQueue) Rebuild(_ context.Context, projectID string, tasks map[string]models.Task) error {
	for _, task := range tasks {
		if !task.Queueable() {
			continue
		}
		_ = f.Enqueue(context.Background(), projectID, task)
	}
	return nil
}

func (f *fakeQueue) contains(projectID, taskID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.items[projectID] {
		if id == taskID {
			return true
		}
	}
	return false
}

// fakeLocks is an in-memory LockManager.
type fakeLocks struct {
	mu    sync.Mutex
	locks map[string]string
}

func newFakeLocks() *fakeLocks {
	return &fakeLocks{locks: make(map[string]string)}
}

func (f *fakeLocks) Acquire(_ context.Context, key, _, holder string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if h, ok := f.locks[key]; ok && h != holder {
		return locksvc.ErrLockHeld
	}
	f.locks[key] = holder
	return nil
}

func (f *fakeLocks) Release(_ context.Context, key, holder string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locks[key] != holder {
		return locksvc.ErrNotHolder
	}
	delete(f.locks, key)
	return nil
}

func (f *fakeLocks) holder(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locks[key]
}

// fakePublisher records published events.
type fakePublisher struct {
	mu     sync.Mutex
	events []*models.Event
	fail   error
}

func (f *fakePublisher) Publish(_ context.Context, ev *models.Event) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return "", f.fail
	}
	if ev.ID == "" {
		ev.ID = fmt.Sprintf("ev-%d", len(f.events)+1)
	}
	f.events = append(f.events, ev)
	return ev.ID, nil
}

func (f *fakePublisher) byType(t models.EventType) []*models.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Event
	for _, ev := range f.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

type schedEnv struct {
	sched  *Scheduler
	state  *fakeState
	queue  *fakeQueue
	locks  *fakeLocks
	events *fakePublisher
}

func newSchedEnv(t *testing.T) *schedEnv {
	t.Helper()
	env := &schedEnv{
		state:  newFakeState(),
		queue:  newFakeQueue(),
		locks:  newFakeLocks(),
		events: &fakePublisher{},
	}
	env.sched = New(config.DefaultSchedulerConfig(), config.DefaultBudgetConfig(), env.state, env.queue, env.locks, env.events)
	return env
}

func (e *schedEnv) seedProject(t *testing.T, status models.ProjectStatus, remaining float64, tasks ...models.Task) *models.ProjectState {
	t.Helper()
	st := &models.ProjectState{
		ID:      "proj-1",
		Version: 1,
		Status:  status,
		Budget: models.Budget{
			Total: models.Money{Amount: remaining, Currency: "USD"},
			Spent: models.Money{Amount: 0, Currency: "USD"},
		},
		Tasks: map[string]models.Task{},
	}
	for _, task := range tasks {
		st.Tasks[task.ID] = task
		if task.Queueable() {
			require.NoError(t, e.queue.Enqueue(context.Background(), st.ID, task))
		}
	}
	e.state.put(st)
	return st
}

func pendingTask(id string, deps ...string) models.Task {
	return models.Task{
		ID:            id,
		Type:          models.TaskGenerateKeyframe,
		Status:        models.TaskPending,
		Assignee:      "image_agent",
		Priority:      3,
		DependsOn:     deps,
		EstimatedCost: 1,
		MaxRetries:    models.DefaultMaxRetries,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestDispatchStartsReadyTask(t *testing.T) {
	env := newSchedEnv(t)
	ctx := context.Background()

	task := pendingTask("t1")
	task.RequiredLockKey = locksvc.ShotKey("proj-1", "shot-1")
	env.seedProject(t, models.ProjectRendering, 100, task)

	require.NoError(t, env.sched.DispatchProject(ctx, "proj-1"))

	st, _ := env.state.GetProjectFresh(ctx, "proj-1")
	got := st.Tasks["t1"]
	assert.Equal(t, models.TaskInProgress, got.Status)
	require.NotNil(t, got.StartedAt)

	assert.False(t, env.queue.contains("proj-1", "t1"), "claimed off the queue")
	assert.Equal(t, "task:t1", env.locks.holder(task.RequiredLockKey), "lock held for the task")

	assigned := env.events.byType(models.EventTaskAssigned)
	require.Len(t, assigned, 1)
	assert.Equal(t, "t1", assigned[0].PayloadString("task_id"))
	assert.Equal(t, "image_agent", assigned[0].PayloadString("assignee"))
}

func TestDispatchHonorsDependencies(t *testing.T) {
	env := newSchedEnv(t)
	ctx := context.Background()

	dep := pendingTask("t1")
	blocked := pendingTask("t2", "t1")
	env.seedProject(t, models.ProjectRendering, 100, dep, blocked)

	require.NoError(t, env.sched.DispatchProject(ctx, "proj-1"))

	st, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.Equal(t, models.TaskInProgress, st.Tasks["t1"].Status)
	assert.Equal(t, models.TaskPending, st.Tasks["t2"].Status, "dependency incomplete")
	assert.True(t, env.queue.contains("proj-1", "t2"), "blocked task stays queued")
}

func TestDispatchBudgetGate(t *testing.T) {
	env := newSchedEnv(t)
	ctx := context.Background()

	expensive := pendingTask("t1")
	expensive.EstimatedCost = 50
	env.seedProject(t, models.ProjectRendering, 10, expensive)

	require.NoError(t, env.sched.DispatchProject(ctx, "proj-1"))

	st, _ := env.state.GetProjectFresh(ctx, "proj-1")
	got := st.Tasks["t1"]
	assert.Equal(t, models.TaskFailed, got.Status)
	assert.Equal(t, models.FailureBudgetExhausted, got.FailureReason)
	assert.False(t, env.queue.contains("proj-1", "t1"))
	require.Len(t, env.events.byType(models.EventBudgetExhausted), 1)
	assert.Empty(t, env.events.byType(models.EventTaskAssigned))
}

func TestDispatchSkipsHeldLock(t *testing.T) {
	env := newSchedEnv(t)
	ctx := context.Background()

	task := pendingTask("t1")
	task.RequiredLockKey = locksvc.ShotKey("proj-1", "shot-1")
	env.seedProject(t, models.ProjectRendering, 100, task)
	require.NoError(t, env.locks.Acquire(ctx, task.RequiredLockKey, "proj-1", "someone-else", 0))

	require.NoError(t, env.sched.DispatchProject(ctx, "proj-1"))

	st, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.Equal(t, models.TaskPending, st.Tasks["t1"].Status)
	assert.True(t, env.queue.contains("proj-1", "t1"), "skipped, not consumed")
}

func TestDispatchPausedProject(t *testing.T) {
	env := newSchedEnv(t)
	ctx := context.Background()

	env.seedProject(t, models.ProjectApprovalPending, 100, pendingTask("t1"))

	require.NoError(t, env.sched.DispatchProject(ctx, "proj-1"))

	st, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.Equal(t, models.TaskPending, st.Tasks["t1"].Status)
	assert.True(t, env.queue.contains("proj-1", "t1"))
}

func TestDispatchDropsStaleQueueEntry(t *testing.T) {
	env := newSchedEnv(t)
	ctx := context.Background()

	done := pendingTask("t1")
	env.seedProject(t, models.ProjectRendering, 100, done)

	// Task completed elsewhere but its queue entry lingers.
	_, err := env.state.UpdateTask(ctx, "proj-1", "t1", func(tk *models.Task) error {
		now := time.Now().UTC()
		tk.Status = models.TaskCompleted
		tk.CompletedAt = &now
		tk.Output = map[string]any{"x": "y"}
		return nil
	}, blackboard.WriteMeta{})
	require.NoError(t, err)

	require.NoError(t, env.sched.DispatchProject(ctx, "proj-1"))
	assert.False(t, env.queue.contains("proj-1", "t1"), "stale entry purged")
	assert.Empty(t, env.events.byType(models.EventTaskAssigned))
}

func inProgressTask(id string, lockKey string) models.Task {
	started := time.Now().UTC().Add(-time.Minute)
	return models.Task{
		ID:              id,
		Type:            models.TaskGenerateKeyframe,
		Status:          models.TaskInProgress,
		Assignee:        "image_agent",
		Priority:        3,
		MaxRetries:      models.DefaultMaxRetries,
		EstimatedCost:   1,
		StartedAt:       &started,
		RequiredLockKey: lockKey,
		CreatedAt:       time.Now().UTC().Add(-2 * time.Minute),
	}
}

func TestHandleCompleted(t *testing.T) {
	env := newSchedEnv(t)
	ctx := context.Background()

	lockKey := locksvc.ShotKey("proj-1", "shot-1")
	task := inProgressTask("t1", lockKey)
	env.seedProject(t, models.ProjectRendering, 100, task)
	require.NoError(t, env.locks.Acquire(ctx, lockKey, "proj-1", "task:t1", 0))

	ev := &models.Event{
		ID:        "ev-done",
		ProjectID: "proj-1",
		Type:      models.EventTaskCompleted,
		Actor:     "image_agent",
		Payload: map[string]any{
			"task_id": "t1",
			"output":  map[string]any{"artifact_uri": "s3://artifacts/kf.png"},
		},
		Metadata: models.EventMetadata{Cost: 0.08},
	}
	require.NoError(t, env.sched.HandleEvent(ctx, ev))

	st, _ := env.state.GetProjectFresh(ctx, "proj-1")
	got := st.Tasks["t1"]
	assert.Equal(t, models.TaskCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, "s3://artifacts/kf.png", got.Output["artifact_uri"])
	assert.InDelta(t, 0.08, got.ActualCost, 1e-9)
	assert.InDelta(t, 0.08, st.Budget.Spent.Amount, 1e-9)
	assert.InDelta(t, 0.08, st.Budget.Breakdown["image_generation"].Amount, 1e-9)
	assert.Empty(t, env.locks.holder(lockKey), "lock released on completion")

	t.Run("duplicate delivery is harmless", func(t *testing.T) {
		require.NoError(t, env.sched.HandleEvent(ctx, ev))
		st, _ := env.state.GetProjectFresh(ctx, "proj-1")
		assert.InDelta(t, 0.08, st.Budget.Spent.Amount, 1e-9,
			"redelivered completion must not charge the budget twice")
		assert.InDelta(t, 0.08, st.Budget.Breakdown["image_generation"].Amount, 1e-9)
	})
}

func TestHandleCompletedWarnsOnOverrunOnce(t *testing.T) {
	env := newSchedEnv(t)
	ctx := context.Background()

	first := inProgressTask("t1", "")
	second := inProgressTask("t2", "")
	st := env.seedProject(t, models.ProjectRendering, 10, first, second)
	st.Budget.Spent.Amount = 7.9

	completion := func(id, evID string, cost float64) *models.Event {
		return &models.Event{
			ID: evID, ProjectID: "proj-1", Type: models.EventTaskCompleted,
			Actor: "image_agent", Payload: map[string]any{"task_id": id},
			Metadata: models.EventMetadata{Cost: cost},
		}
	}

	// 7.9 -> 8.2 of 10 crosses the 0.8 warn threshold.
	ev := completion("t1", "ev-1", 0.3)
	require.NoError(t, env.sched.HandleEvent(ctx, ev))
	require.Len(t, env.events.byType(models.EventCostOverrunWarning), 1)

	// Redelivery of the crossing event stays silent: the cost fold
	// already happened, so the fraction never re-crosses.
	require.NoError(t, env.sched.HandleEvent(ctx, ev))
	assert.Len(t, env.events.byType(models.EventCostOverrunWarning), 1)

	// Further spend above the threshold stays silent too.
	require.NoError(t, env.sched.HandleEvent(ctx, completion("t2", "ev-2", 0.3)))
	assert.Len(t, env.events.byType(models.EventCostOverrunWarning), 1)
}

func TestHandleFailedRetries(t *testing.T) {
	env := newSchedEnv(t)
	ctx := context.Background()

	lockKey := locksvc.ShotKey("proj-1", "shot-1")
	task := inProgressTask("t1", lockKey)
	env.seedProject(t, models.ProjectRendering, 100, task)
	require.NoError(t, env.locks.Acquire(ctx, lockKey, "proj-1", "task:t1", 0))

	ev := &models.Event{
		ID: "ev-fail", ProjectID: "proj-1", Type: models.EventTaskFailed,
		Actor: "image_agent", Payload: map[string]any{"task_id": "t1", "reason": "model error"},
	}
	require.NoError(t, env.sched.HandleEvent(ctx, ev))

	st, _ := env.state.GetProjectFresh(ctx, "proj-1")
	got := st.Tasks["t1"]
	assert.Equal(t, models.TaskPending, got.Status)
	assert.Equal(t, 1, got.RetryCount)
	assert.Nil(t, got.StartedAt)
	assert.True(t, env.queue.contains("proj-1", "t1"), "requeued for retry")
	assert.Empty(t, env.locks.holder(lockKey))
	assert.Empty(t, env.events.byType(models.EventErrorOccurred))
}

func TestHandleFailedExhaustsRetries(t *testing.T) {
	env := newSchedEnv(t)
	ctx := context.Background()

	task := inProgressTask("t1", "")
	task.RetryCount = task.MaxRetries - 1
	env.seedProject(t, models.ProjectRendering, 100, task)

	ev := &models.Event{
		ID: "ev-fail", ProjectID: "proj-1", Type: models.EventTaskFailed,
		Actor: "image_agent", Payload: map[string]any{"task_id": "t1", "reason": "model error"},
	}
	require.NoError(t, env.sched.HandleEvent(ctx, ev))

	st, _ := env.state.GetProjectFresh(ctx, "proj-1")
	got := st.Tasks["t1"]
	assert.Equal(t, models.TaskFailed, got.Status)
	assert.Equal(t, models.FailureRetriesExceeded, got.FailureReason)
	assert.False(t, env.queue.contains("proj-1", "t1"))
	require.Len(t, env.events.byType(models.EventErrorOccurred), 1)
	require.Len(t, env.events.byType(models.EventHumanGateTriggered), 1)
}

func TestWatchdogTimesOutExpiredTasks(t *testing.T) {
	env := newSchedEnv(t)
	ctx := context.Background()

	stale := inProgressTask("t-stale", "")
	started := time.Now().UTC().Add(-10 * time.Minute)
	stale.StartedAt = &started
	fresh := inProgressTask("t-fresh", "")
	env.seedProject(t, models.ProjectRendering, 100, stale, fresh)

	require.NoError(t, env.sched.sweepProject(ctx, "proj-1"))

	failed := env.events.byType(models.EventTaskFailed)
	require.Len(t, failed, 1)
	assert.Equal(t, "t-stale", failed[0].PayloadString("task_id"))
	assert.Equal(t, models.FailureTimeout, failed[0].PayloadString("reason"))
}

func TestStartRecoversQueues(t *testing.T) {
	env := newSchedEnv(t)
	ctx := context.Background()

	// Aggregate has queueable work but the queue is empty, as after a
	// Redis flush or a crash between PutTasks and Enqueue.
	st := &models.ProjectState{
		ID:      "proj-1",
		Version: 3,
		Status:  models.ProjectRendering,
		Budget:  models.Budget{Total: models.Money{Amount: 100, Currency: "USD"}},
		Tasks: map[string]models.Task{
			"t1": pendingTask("t1"),
			"t2": inProgressTask("t2", ""),
		},
	}
	env.state.put(st)
	require.False(t, env.queue.contains("proj-1", "t1"))

	env.sched.recoverQueues(ctx)

	assert.True(t, env.queue.contains("proj-1", "t1"), "pending task re-enqueued")
	assert.False(t, env.queue.contains("proj-1", "t2"), "in-flight task stays off the queue")
}

func TestStartStop(t *testing.T) {
	env := newSchedEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	env.sched.Start(ctx)
	done := make(chan struct{})
	go func() {
		env.sched.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestPublishFailureSurfacesInHandler(t *testing.T) {
	env := newSchedEnv(t)
	ctx := context.Background()

	task := inProgressTask("t1", "")
	env.seedProject(t, models.ProjectRendering, 100, task)
	env.events.fail = errors.New("redis down")

	ev := &models.Event{
		ID: "ev-done", ProjectID: "proj-1", Type: models.EventTaskCompleted,
		Actor: "image_agent", Payload: map[string]any{"task_id": "t1"},
	}
	// Completion itself does not publish, so it still succeeds.
	require.NoError(t, env.sched.HandleEvent(ctx, ev))
}
