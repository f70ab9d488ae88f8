package approval

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipforge/clipforge/pkg/blackboard"
	"github.com/clipforge/clipforge/pkg/config"
	"github.com/clipforge/clipforge/pkg/models"
)

// fakeState is an in-memory StateStore covering the gate's surface.
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
	if st.Approvals == nil {
		st.Approvals = map[string]models.ApprovalRequest{}
	}
	if st.Tasks == nil {
		st.Tasks = map[string]models.Task{}
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
	return st, nil
}

func (f *fakeState) CreateApproval(_ context.Context, projectID string, req models.ApprovalRequest, _ blackboard.WriteMeta) (*models.ProjectState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.projects[projectID]
	if !ok {
		return nil, blackboard.ErrProjectNotFound
	}
	req.Status = models.ApprovalPending
	st.Approvals[req.ID] = req
	st.Version++
	return st, nil
}

func (f *fakeState) ResolveApproval(_ context.Context, projectID, approvalID string, status models.ApprovalStatus, resolvedBy, notes string, _ blackboard.WriteMeta) (models.ApprovalRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.projects[projectID]
	if !ok {
		return models.ApprovalRequest{}, blackboard.ErrProjectNotFound
	}
	req, ok := st.Approvals[approvalID]
	if !ok {
		return models.ApprovalRequest{}, fmt.Errorf("%w: %s", blackboard.ErrApprovalNotFound, approvalID)
	}
	now := time.Now().UTC()
	req.Status = status
	req.ResolvedAt = &now
	req.ResolvedBy = resolvedBy
	if notes != "" {
		req.Notes = notes
	}
	delete(st.Approvals, approvalID)
	st.Version++
	return req, nil
}

func (f *fakeState) MarkApprovalReminderSent(_ context.Context, projectID, approvalID string, _ blackboard.WriteMeta) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.projects[projectID]
	if !ok {
		return blackboard.ErrProjectNotFound
	}
	req, ok := st.Approvals[approvalID]
	if !ok {
		return blackboard.ErrApprovalNotFound
	}
	req.ReminderSent = true
	st.Approvals[approvalID] = req
	return nil
}

func (f *fakeState) ListPendingApprovalsAll(_ context.Context) ([]models.ApprovalRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ApprovalRequest
	for _, st := range f.projects {
		for _, req := range st.Approvals {
			if req.Status == models.ApprovalPending {
				out = append(out, req)
			}
		}
	}
	return out, nil
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

type fakeQueue struct {
	mu    sync.Mutex
	items map[string][]string
}

func newFakeQueue() *fakeQueue { return &fakeQueue{items: make(map[string][]string)} }

func (f *fakeQueue) Enqueue(_ context.Context, projectID string, task models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[projectID] = append(f.items[projectID], task.ID)
	return nil
}

func (f *fakeQueue) depth(projectID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items[projectID])
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

type gateEnv struct {
	gate   *Gate
	cfg    *config.ApprovalConfig
	state  *fakeState
	queue  *fakeQueue
	events *fakePublisher
}

func newGateEnv(t *testing.T) *gateEnv {
	t.Helper()
	env := &gateEnv{
		cfg:    config.DefaultApprovalConfig(),
		state:  newFakeState(),
		queue:  newFakeQueue(),
		events: &fakePublisher{},
	}
	env.gate = NewGate(env.cfg, env.state, env.queue, env.events)
	return env
}

func (e *gateEnv) seedProject(status models.ProjectStatus, opts models.UserOptions) *models.ProjectState {
	st := &models.ProjectState{
		ID:      "proj-1",
		Version: 1,
		Status:  status,
		Spec:    models.GlobalSpec{Title: "Ad spot", UserOptions: opts},
	}
	e.state.put(st)
	return st
}

func checkpointOpts() models.UserOptions {
	return models.UserOptions{ApprovalCheckpoints: models.DefaultApprovalCheckpoints()}
}

func sceneEvent() *models.Event {
	return &models.Event{
		ID:        "ev-scene",
		ProjectID: "proj-1",
		Type:      models.EventSceneWritten,
		Actor:     "script_agent",
		Payload:   map[string]any{"summary": "three-act script draft"},
	}
}

func deferredTask(id string) models.Task {
	return models.Task{
		ID:       id,
		Type:     models.TaskPlanShots,
		Status:   models.TaskPending,
		Assignee: "director_agent",
		Priority: 4,
	}
}

func TestShouldGate(t *testing.T) {
	env := newGateEnv(t)

	st := env.seedProject(models.ProjectPlanning, checkpointOpts())
	assert.True(t, env.gate.ShouldGate(st, sceneEvent()))
	assert.False(t, env.gate.ShouldGate(st, &models.Event{Type: models.EventImageGenerated}),
		"only configured checkpoints gate")

	auto := env.seedProject(models.ProjectPlanning, models.UserOptions{
		AutoMode:            true,
		ApprovalCheckpoints: models.DefaultApprovalCheckpoints(),
	})
	assert.False(t, env.gate.ShouldGate(auto, sceneEvent()), "auto mode bypasses every checkpoint")
}

func TestTriggerPausesProject(t *testing.T) {
	env := newGateEnv(t)
	ctx := context.Background()

	st := env.seedProject(models.ProjectPlanning, checkpointOpts())
	req, err := env.gate.Trigger(ctx, st, sceneEvent(), []models.Task{deferredTask("t-plan")})
	require.NoError(t, err)

	assert.Equal(t, models.EventSceneWritten, req.Stage)
	assert.Equal(t, models.ProjectPlanning, req.PriorStatus)
	assert.Equal(t, "three-act script draft", req.ContentSummary)
	require.Len(t, req.DeferredTasks, 1)

	got, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.Equal(t, models.ProjectApprovalPending, got.Status)
	require.Contains(t, got.Approvals, req.ID)

	announced := env.events.byType(models.EventUserApprovalRequired)
	require.Len(t, announced, 1)
	assert.Equal(t, req.ID, announced[0].PayloadString("approval_id"))
	assert.Equal(t, "ev-scene", announced[0].CausationID)

	assert.Equal(t, 0, env.queue.depth("proj-1"), "deferred tasks stay off the queue")
}

func decisionEvent(typ models.EventType, approvalID string) *models.Event {
	return &models.Event{
		ID:        "ev-decision",
		ProjectID: "proj-1",
		Type:      typ,
		Actor:     "producer",
		Payload:   map[string]any{"approval_id": approvalID, "notes": "looks good"},
	}
}

func TestApproveResumesAndReleases(t *testing.T) {
	env := newGateEnv(t)
	ctx := context.Background()

	st := env.seedProject(models.ProjectPlanning, checkpointOpts())
	req, err := env.gate.Trigger(ctx, st, sceneEvent(), []models.Task{deferredTask("t-plan")})
	require.NoError(t, err)

	require.NoError(t, env.gate.HandleEvent(ctx, decisionEvent(models.EventUserApproved, req.ID)))

	got, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.Equal(t, models.ProjectPlanning, got.Status, "prior status restored")
	assert.NotContains(t, got.Approvals, req.ID)
	assert.Contains(t, got.Tasks, "t-plan", "deferred task stored")
	assert.Equal(t, 1, env.queue.depth("proj-1"), "deferred task enqueued")

	recorded := env.events.byType(models.EventHumanDecisionRecorded)
	require.Len(t, recorded, 1)
	assert.Equal(t, "approved", recorded[0].PayloadString("decision"))
	assert.Equal(t, "producer", recorded[0].PayloadString("decided_by"))
}

func TestReviseCreatesRevisionTask(t *testing.T) {
	env := newGateEnv(t)
	ctx := context.Background()

	st := env.seedProject(models.ProjectPlanning, checkpointOpts())
	req, err := env.gate.Trigger(ctx, st, sceneEvent(), []models.Task{deferredTask("t-plan")})
	require.NoError(t, err)

	require.NoError(t, env.gate.HandleEvent(ctx, decisionEvent(models.EventUserRevisionRequested, req.ID)))

	got, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.Equal(t, models.ProjectPlanning, got.Status)
	assert.NotContains(t, got.Tasks, "t-plan", "deferred work stays withheld on revision")

	var revision *models.Task
	for _, task := range got.Tasks {
		if task.Type == models.TaskRewriteScript {
			tk := task
			revision = &tk
		}
	}
	require.NotNil(t, revision, "SCENE_WRITTEN revision rewrites the script")
	assert.Equal(t, "script_agent", revision.Assignee)
	assert.Equal(t, models.PriorityMax, revision.Priority)
	assert.Equal(t, "looks good", revision.Input["revision_notes"])
	assert.Equal(t, "three-act script draft", revision.Input["original_content"])
	assert.Equal(t, 1, env.queue.depth("proj-1"))
}

func TestRejectCreatesRedoTask(t *testing.T) {
	env := newGateEnv(t)
	ctx := context.Background()

	st := env.seedProject(models.ProjectPlanning, checkpointOpts())
	req, err := env.gate.Trigger(ctx, st, sceneEvent(), nil)
	require.NoError(t, err)

	require.NoError(t, env.gate.HandleEvent(ctx, decisionEvent(models.EventUserRejected, req.ID)))

	got, _ := env.state.GetProjectFresh(ctx, "proj-1")
	var redo *models.Task
	for _, task := range got.Tasks {
		if task.Type == models.TaskWriteScript {
			tk := task
			redo = &tk
		}
	}
	require.NotNil(t, redo, "rejection restarts the stage from scratch")
	assert.Equal(t, "script_agent", redo.Assignee)
}

func TestResumeWaitsForOtherApprovals(t *testing.T) {
	env := newGateEnv(t)
	ctx := context.Background()

	st := env.seedProject(models.ProjectPlanning, checkpointOpts())
	first, err := env.gate.Trigger(ctx, st, sceneEvent(), nil)
	require.NoError(t, err)

	st, _ = env.state.GetProjectFresh(ctx, "proj-1")
	shotEv := &models.Event{
		ID: "ev-shots", ProjectID: "proj-1", Type: models.EventShotPlanned, Actor: "director_agent",
	}
	_, err = env.gate.Trigger(ctx, st, shotEv, nil)
	require.NoError(t, err)

	require.NoError(t, env.gate.HandleEvent(ctx, decisionEvent(models.EventUserApproved, first.ID)))

	got, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.Equal(t, models.ProjectApprovalPending, got.Status,
		"project stays paused while the second approval is open")
}

func TestDecisionOnUnknownApproval(t *testing.T) {
	env := newGateEnv(t)
	ctx := context.Background()
	env.seedProject(models.ProjectPlanning, checkpointOpts())

	err := env.gate.HandleEvent(ctx, decisionEvent(models.EventUserApproved, "nope"))
	assert.Error(t, err, "unknown approval surfaces so the bus redelivers")
}
