package orchestrator

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipforge/clipforge/pkg/blackboard"
	"github.com/clipforge/clipforge/pkg/config"
	"github.com/clipforge/clipforge/pkg/mapper"
	"github.com/clipforge/clipforge/pkg/models"
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
	if st.Tasks == nil {
		st.Tasks = map[string]models.Task{}
	}
	if st.Approvals == nil {
		st.Approvals = map[string]models.ApprovalRequest{}
	}
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
	return &cp, nil
}

func (f *fakeState) UpdateProjectStatus(_ context.Context, projectID string, status models.ProjectStatus, _ blackboard.WriteMeta) (*models.ProjectState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.projects[projectID]
	if !ok {
		return nil, blackboard.ErrProjectNotFound
	}
	st.Status = status
	st.Version++
	cp := *st
	return &cp, nil
}

func (f *fakeState) PutTasks(_ context.Context, projectID string, tasks []models.Task, _ blackboard.WriteMeta) (*models.ProjectState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.projects[projectID]
	if !ok {
		return nil, blackboard.ErrProjectNotFound
	}
	for _, task := range tasks {
		st.Tasks[task.ID] = task
	}
	st.Version++
	return st, nil
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
	cp := *st
	return &cp, nil
}

func (f *fakeState) ListTasks(_ context.Context, projectID string, filter models.TaskFilter) ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.projects[projectID]
	if !ok {
		return nil, blackboard.ErrProjectNotFound
	}
	var out []models.Task
	for _, t := range st.Tasks {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeState) CancelPendingTasks(_ context.Context, projectID, reason string, _ blackboard.WriteMeta) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.projects[projectID]
	if !ok {
		return nil, blackboard.ErrProjectNotFound
	}
	var cancelled []string
	for id, t := range st.Tasks {
		if t.Queueable() {
			t.Status = models.TaskCancelled
			t.FailureReason = reason
			st.Tasks[id] = t
			cancelled = append(cancelled, id)
		}
	}
	sort.Strings(cancelled)
	return cancelled, nil
}

func (f *fakeState) ListPendingApprovals(_ context.Context, projectID string) ([]models.ApprovalRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.projects[projectID]
	if !ok {
		return nil, blackboard.ErrProjectNotFound
	}
	var out []models.ApprovalRequest
	for _, req := range st.Approvals {
		if req.Status == models.ApprovalPending {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeState) AppendError(_ context.Context, projectID string, entry models.ErrorEntry, _ blackboard.WriteMeta) (*models.ProjectState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.projects[projectID]
	if !ok {
		return nil, blackboard.ErrProjectNotFound
	}
	st.ErrorLog = append(st.ErrorLog, entry)
	return st, nil
}

// fakeQueue is an in-memory TaskQueue.
type fakeQueue struct {
	mu    sync.Mutex
	items map[string][]string
	depth int64 // fixed depth override for backpressure tests
}

func newFakeQueue() *fakeQueue { return &fakeQueue{items: make(map[string][]string)} }

func (f *fakeQueue) Enqueue(_ context.Context, projectID string, task models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[projectID] = append(f.items[projectID], task.ID)
	return nil
}

func (f *fakeQueue) Depth(_ context.Context, projectID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.depth > 0 {
		return f.depth, nil
	}
	return int64(len(f.items[projectID])), nil
}

func (f *fakeQueue) Drop(_ context.Context, projectID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, projectID)
	return nil
}

func (f *fakeQueue) size(projectID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items[projectID])
}

// fakeGate records triggers without persisting anything.
type fakeGate struct {
	mu        sync.Mutex
	gated     map[models.EventType]bool
	triggered []models.ApprovalRequest
	deferred  [][]models.Task
}

func newFakeGate(stages ...models.EventType) *fakeGate {
	g := &fakeGate{gated: map[models.EventType]bool{}}
	for _, s := range stages {
		g.gated[s] = true
	}
	return g
}

func (g *fakeGate) ShouldGate(_ *models.ProjectState, ev *models.Event) bool {
	return g.gated[ev.Type]
}

func (g *fakeGate) Trigger(_ context.Context, st *models.ProjectState, ev *models.Event, deferred []models.Task) (models.ApprovalRequest, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	req := models.ApprovalRequest{ID: fmt.Sprintf("ap-%d", len(g.triggered)+1), ProjectID: st.ID, Stage: ev.Type}
	g.triggered = append(g.triggered, req)
	g.deferred = append(g.deferred, deferred)
	return req, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*models.Event
}

func (f *fakePublisher) Publish(_ context.Context, ev *models.Event) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
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

type orchEnv struct {
	orch   *Orchestrator
	state  *fakeState
	queue  *fakeQueue
	gate   *fakeGate
	events *fakePublisher
}

func newOrchEnv(t *testing.T, gatedStages ...models.EventType) *orchEnv {
	t.Helper()
	m, err := mapper.New("")
	require.NoError(t, err)
	env := &orchEnv{
		state:  newFakeState(),
		queue:  newFakeQueue(),
		gate:   newFakeGate(gatedStages...),
		events: &fakePublisher{},
	}
	env.orch = New(config.DefaultSchedulerConfig(), env.state, env.queue, m, env.gate, env.events)
	return env
}

func (e *orchEnv) seedProject(status models.ProjectStatus, total, spent float64) *models.ProjectState {
	st := &models.ProjectState{
		ID:      "proj-1",
		Version: 1,
		Status:  status,
		Budget: models.Budget{
			Total: models.Money{Amount: total, Currency: "USD"},
			Spent: models.Money{Amount: spent, Currency: "USD"},
		},
	}
	e.state.put(st)
	return st
}

func projectEvent(typ models.EventType, payload map[string]any) *models.Event {
	return &models.Event{
		ID:        "ev-in",
		ProjectID: "proj-1",
		Type:      typ,
		Actor:     "test",
		Payload:   payload,
	}
}

func (e *orchEnv) tasksByType(t *testing.T, typ models.TaskType) []models.Task {
	t.Helper()
	tasks, err := e.state.ListTasks(context.Background(), "proj-1", models.TaskFilter{Type: typ})
	require.NoError(t, err)
	return tasks
}

func TestHandleEventSchedulesTasks(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()

	env.seedProject(models.ProjectCreated, 100, 0)
	ev := projectEvent(models.EventProjectCreated, map[string]any{"brief_uri": "s3://briefs/1"})
	require.NoError(t, env.orch.HandleEvent(ctx, ev))

	scripts := env.tasksByType(t, models.TaskWriteScript)
	require.Len(t, scripts, 1)
	assert.Equal(t, models.TaskPending, scripts[0].Status)
	assert.Equal(t, "ev-in", scripts[0].CausationEventID)
	assert.Equal(t, "s3://briefs/1", scripts[0].Input["brief_uri"])
	assert.Equal(t, 1, env.queue.size("proj-1"))

	st, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.Equal(t, models.ProjectPlanning, st.Status, "creation opens the planning stage")
}

func TestHandleEventFanOut(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()

	env.seedProject(models.ProjectPlanning, 100, 0)
	ev := projectEvent(models.EventShotPlanned, map[string]any{
		"shot_ids": []any{"shot-1", "shot-2"},
	})
	require.NoError(t, env.orch.HandleEvent(ctx, ev))

	assert.Len(t, env.tasksByType(t, models.TaskGenerateKeyframe), 2)
	assert.Len(t, env.tasksByType(t, models.TaskGenerateMusic), 1)
	assert.Equal(t, 3, env.queue.size("proj-1"))

	st, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.Equal(t, models.ProjectRendering, st.Status)
}

func TestHandleEventApprovalGateDefers(t *testing.T) {
	env := newOrchEnv(t, models.EventShotPlanned)
	ctx := context.Background()

	env.seedProject(models.ProjectPlanning, 100, 0)
	ev := projectEvent(models.EventShotPlanned, map[string]any{"shot_ids": []any{"shot-1"}})
	require.NoError(t, env.orch.HandleEvent(ctx, ev))

	require.Len(t, env.gate.triggered, 1)
	assert.Len(t, env.gate.deferred[0], 2, "keyframe and music tasks withheld at the gate")
	assert.Equal(t, 0, env.queue.size("proj-1"), "nothing enqueued while gated")

	tasks, _ := env.state.ListTasks(ctx, "proj-1", models.TaskFilter{})
	assert.Empty(t, tasks, "deferred tasks live on the approval request")
}

func TestHandleEventBudgetFallback(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()

	// Remaining budget covers the motion still but not the preview video.
	env.seedProject(models.ProjectRendering, 10, 9.8)
	ev := projectEvent(models.EventQAReport, map[string]any{
		"shot_id": "shot-1", "verdict": "pass", "artifact_uri": "s3://a/kf.png",
	})
	require.NoError(t, env.orch.HandleEvent(ctx, ev))

	assert.Empty(t, env.tasksByType(t, models.TaskGeneratePreviewVideo))
	stills := env.tasksByType(t, models.TaskGenerateMotionStill)
	require.Len(t, stills, 1, "cheaper variant substituted")
	assert.Equal(t, "shot-1", stills[0].Input["shot_id"])
}

func TestHandleEventQueuePressure(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()

	env.seedProject(models.ProjectPlanning, 100, 0)
	env.queue.depth = env.orch.cfg.QueueHighWater

	ev := projectEvent(models.EventProjectCreated, map[string]any{"brief_uri": "s3://briefs/1"})
	err := env.orch.HandleEvent(ctx, ev)
	require.Error(t, err, "pressure surfaces so the bus redelivers once the queue drains")

	require.Len(t, env.events.byType(models.EventQueuePressure), 1)
	tasks, _ := env.state.ListTasks(ctx, "proj-1", models.TaskFilter{})
	assert.Empty(t, tasks)
}

func TestHandleEventTerminalProject(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()

	env.seedProject(models.ProjectDelivered, 100, 0)
	ev := projectEvent(models.EventImageGenerated, map[string]any{"shot_id": "shot-1"})
	require.NoError(t, env.orch.HandleEvent(ctx, ev))

	tasks, _ := env.state.ListTasks(ctx, "proj-1", models.TaskFilter{})
	assert.Empty(t, tasks, "delivered projects never grow new tasks")
}

func TestHandleEventUnknownProject(t *testing.T) {
	env := newOrchEnv(t)
	err := env.orch.HandleEvent(context.Background(),
		projectEvent(models.EventImageGenerated, map[string]any{"shot_id": "shot-1"}))
	assert.NoError(t, err, "unknown projects are dropped, not retried forever")
}

func TestHardStopAborts(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()

	st := env.seedProject(models.ProjectRendering, 100, 125)
	st.Tasks["t-pending"] = models.Task{ID: "t-pending", Status: models.TaskPending}

	ev := projectEvent(models.EventImageGenerated, map[string]any{"shot_id": "shot-1"})
	require.NoError(t, env.orch.HandleEvent(ctx, ev))

	got, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.Equal(t, models.ProjectAborted, got.Status)
	assert.Equal(t, models.TaskCancelled, got.Tasks["t-pending"].Status)
	require.Len(t, env.events.byType(models.EventProjectAborted), 1)
}

func TestBudgetExhaustedEscalates(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()

	env.seedProject(models.ProjectRendering, 10, 10)
	ev := projectEvent(models.EventBudgetExhausted, map[string]any{"task_id": "t9"})
	require.NoError(t, env.orch.HandleEvent(ctx, ev))

	gates := env.events.byType(models.EventHumanGateTriggered)
	require.Len(t, gates, 1)
	assert.Equal(t, "budget exhausted", gates[0].PayloadString("reason"))
	assert.Equal(t, "t9", gates[0].PayloadString("task_id"))
	assert.Empty(t, env.gate.triggered, "pause happens when the gate event arrives")
}

func TestHumanGateTriggeredPausesProject(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()

	env.seedProject(models.ProjectRendering, 10, 10)
	ev := projectEvent(models.EventHumanGateTriggered, map[string]any{"reason": "retries exhausted"})
	require.NoError(t, env.orch.HandleEvent(ctx, ev))

	require.Len(t, env.gate.triggered, 1)
	assert.Equal(t, models.EventHumanGateTriggered, env.gate.triggered[0].Stage)

	reviews := env.tasksByType(t, models.TaskHumanReviewRequired)
	require.Len(t, reviews, 1)
	assert.Equal(t, "retries exhausted", reviews[0].Input["reason"])
}

func TestVideoQAPassApprovesShot(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()

	env.seedProject(models.ProjectQA, 100, 10)
	ev := projectEvent(models.EventVideoQAReport, map[string]any{
		"shot_id": "shot-1", "verdict": "pass", "artifact_uri": "s3://a/preview.mp4",
	})
	require.NoError(t, env.orch.HandleEvent(ctx, ev))

	approved := env.events.byType(models.EventShotApproved)
	require.Len(t, approved, 1)
	assert.Equal(t, "shot-1", approved[0].PayloadString("shot_id"))
	assert.Equal(t, "ev-in", approved[0].CausationID)
	assert.Empty(t, env.tasksByType(t, models.TaskGenerateFinalVideo),
		"the render waits for the approval event to come back around")
	assert.Empty(t, env.tasksByType(t, models.TaskPromptTuning))
}

func TestShotApprovedSchedulesFinalRender(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()

	env.seedProject(models.ProjectQA, 100, 10)
	ev := projectEvent(models.EventShotApproved, map[string]any{"shot_id": "shot-1"})
	require.NoError(t, env.orch.HandleEvent(ctx, ev))

	finals := env.tasksByType(t, models.TaskGenerateFinalVideo)
	require.Len(t, finals, 1)
	assert.Equal(t, "shot-1", finals[0].Input["shot_id"])
	assert.Empty(t, env.events.byType(models.EventShotApproved), "no re-approval loop")
}

func TestPromptTunedRegeneratesKeyframe(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()

	env.seedProject(models.ProjectRendering, 100, 10)
	ev := projectEvent(models.EventPromptTuned, map[string]any{
		"shot_id": "shot-1", "tuned_prompt": "warmer light",
	})
	ev.Metadata.RetryCount = 1
	require.NoError(t, env.orch.HandleEvent(ctx, ev))

	keyframes := env.tasksByType(t, models.TaskGenerateKeyframe)
	require.Len(t, keyframes, 1)
	assert.Equal(t, "warmer light", keyframes[0].Input["tuned_prompt"])
	assert.Equal(t, 1, keyframes[0].RetryCount, "the regenerated keyframe carries the tuning loop's count")
}

func TestFinalize(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()

	env.seedProject(models.ProjectEditing, 100, 42)
	ev := projectEvent(models.EventAssemblyComplete, map[string]any{"final_video_uri": "s3://final/v.mp4"})
	require.NoError(t, env.orch.HandleEvent(ctx, ev))

	st, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.Equal(t, models.ProjectDelivered, st.Status)

	finalized := env.events.byType(models.EventProjectFinalized)
	require.Len(t, finalized, 1)
	assert.Equal(t, "s3://final/v.mp4", finalized[0].PayloadString("final_video_uri"))

	require.NoError(t, env.orch.HandleEvent(ctx, ev))
	assert.Len(t, env.events.byType(models.EventProjectFinalized), 1, "duplicate delivery is a no-op")
}

func TestAbortProject(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()

	st := env.seedProject(models.ProjectRendering, 100, 10)
	st.Tasks["t-pending"] = models.Task{ID: "t-pending", Status: models.TaskPending}
	st.Tasks["t-running"] = models.Task{ID: "t-running", Status: models.TaskInProgress}
	env.queue.items["proj-1"] = []string{"t-pending"}

	require.NoError(t, env.orch.AbortProject(ctx, "proj-1", "operator stop", "ev-abort"))

	got, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.Equal(t, models.ProjectAborted, got.Status)
	assert.Equal(t, models.TaskCancelled, got.Tasks["t-pending"].Status)
	assert.Equal(t, models.TaskInProgress, got.Tasks["t-running"].Status, "in-flight work finishes")
	assert.Equal(t, 0, env.queue.size("proj-1"))

	aborted := env.events.byType(models.EventProjectAborted)
	require.Len(t, aborted, 1)
	assert.Equal(t, "operator stop", aborted[0].PayloadString("reason"))
}

func TestRetryTask(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()

	st := env.seedProject(models.ProjectFailed, 100, 10)
	st.Tasks["t-failed"] = models.Task{
		ID: "t-failed", Status: models.TaskFailed,
		RetryCount: 3, MaxRetries: 3, FailureReason: models.FailureRetriesExceeded,
	}
	st.Tasks["t-done"] = models.Task{ID: "t-done", Status: models.TaskCompleted}

	require.NoError(t, env.orch.RetryTask(ctx, "proj-1", "t-failed"))

	got, _ := env.state.GetProjectFresh(ctx, "proj-1")
	task := got.Tasks["t-failed"]
	assert.Equal(t, models.TaskPending, task.Status)
	assert.Zero(t, task.RetryCount)
	assert.Empty(t, task.FailureReason)
	assert.Equal(t, models.ProjectRendering, got.Status, "failed project resumes")
	assert.Equal(t, 1, env.queue.size("proj-1"))

	var vErr *blackboard.ValidationError
	assert.ErrorAs(t, env.orch.RetryTask(ctx, "proj-1", "t-done"), &vErr)
}

func TestDecide(t *testing.T) {
	env := newOrchEnv(t)
	ctx := context.Background()
	env.seedProject(models.ProjectApprovalPending, 100, 10)

	id, err := env.orch.Decide(ctx, "proj-1", "ap-1", models.ApprovalApproved, "producer", "ship it")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	approved := env.events.byType(models.EventUserApproved)
	require.Len(t, approved, 1)
	assert.Equal(t, "ap-1", approved[0].PayloadString("approval_id"))
	assert.Equal(t, "producer", approved[0].PayloadString("decided_by"))

	_, err = env.orch.Decide(ctx, "proj-1", "ap-1", models.ApprovalPending, "producer", "")
	assert.Error(t, err, "pending is not a decision")

	_, err = env.orch.Decide(ctx, "proj-nope", "ap-1", models.ApprovalApproved, "producer", "")
	assert.ErrorIs(t, err, blackboard.ErrProjectNotFound)
}
