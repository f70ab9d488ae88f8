package approval

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipforge/clipforge/pkg/models"
)

// backdate moves an approval's creation time so the scanner sees it aged.
func (e *gateEnv) backdate(t *testing.T, approvalID string, age time.Duration) {
	t.Helper()
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	st := e.state.projects["proj-1"]
	req, ok := st.Approvals[approvalID]
	require.True(t, ok)
	req.CreatedAt = time.Now().UTC().Add(-age)
	st.Approvals[approvalID] = req
}

func TestScanReminderFiresOnce(t *testing.T) {
	env := newGateEnv(t)
	ctx := context.Background()
	sc := NewScanner(env.gate)

	st := env.seedProject(models.ProjectPlanning, checkpointOpts())
	req, err := env.gate.Trigger(ctx, st, sceneEvent(), nil)
	require.NoError(t, err)

	require.NoError(t, sc.Scan(ctx))
	assert.Empty(t, env.events.byType(models.EventApprovalReminder), "fresh approval, nothing to remind")

	env.backdate(t, req.ID, env.cfg.DefaultTimeout+time.Minute)
	require.NoError(t, sc.Scan(ctx))
	require.NoError(t, sc.Scan(ctx))

	reminders := env.events.byType(models.EventApprovalReminder)
	require.Len(t, reminders, 1, "reminder fires at most once")
	assert.Equal(t, req.ID, reminders[0].PayloadString("approval_id"))

	got, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.Equal(t, models.ProjectApprovalPending, got.Status, "reminder does not resolve anything")
}

func TestScanTimeoutEscalates(t *testing.T) {
	env := newGateEnv(t)
	ctx := context.Background()
	sc := NewScanner(env.gate)

	st := env.seedProject(models.ProjectPlanning, checkpointOpts())
	req, err := env.gate.Trigger(ctx, st, sceneEvent(), []models.Task{deferredTask("t-plan")})
	require.NoError(t, err)

	env.backdate(t, req.ID, 2*env.cfg.DefaultTimeout+time.Minute)
	require.NoError(t, sc.Scan(ctx))

	got, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.NotContains(t, got.Approvals, req.ID, "request resolved as timed out")
	assert.Equal(t, models.ProjectApprovalPending, got.Status, "escalation keeps the project paused")
	assert.Equal(t, 0, env.queue.depth("proj-1"), "deferred work not released")

	require.Len(t, env.events.byType(models.EventApprovalTimeout), 1)
	require.Len(t, env.events.byType(models.EventHumanGateTriggered), 1)
}

func TestScanTimeoutAutoApproves(t *testing.T) {
	env := newGateEnv(t)
	env.cfg.AutoApproveOnTimeout = true
	ctx := context.Background()
	sc := NewScanner(env.gate)

	st := env.seedProject(models.ProjectPlanning, checkpointOpts())
	req, err := env.gate.Trigger(ctx, st, sceneEvent(), []models.Task{deferredTask("t-plan")})
	require.NoError(t, err)

	env.backdate(t, req.ID, 2*env.cfg.DefaultTimeout+time.Minute)
	require.NoError(t, sc.Scan(ctx))

	got, _ := env.state.GetProjectFresh(ctx, "proj-1")
	assert.Equal(t, models.ProjectPlanning, got.Status, "auto-approve resumes the project")
	assert.Contains(t, got.Tasks, "t-plan")
	assert.Equal(t, 1, env.queue.depth("proj-1"), "deferred work released")
	assert.Empty(t, env.events.byType(models.EventHumanGateTriggered))
}

func TestScanUsesProjectTimeoutOverride(t *testing.T) {
	env := newGateEnv(t)
	ctx := context.Background()
	sc := NewScanner(env.gate)

	opts := checkpointOpts()
	opts.ApprovalTimeoutMinutes = 5
	st := env.seedProject(models.ProjectPlanning, opts)
	req, err := env.gate.Trigger(ctx, st, sceneEvent(), nil)
	require.NoError(t, err)

	// Past the 5m override's reminder mark, far below the 60m default.
	env.backdate(t, req.ID, 6*time.Minute)
	require.NoError(t, sc.Scan(ctx))
	require.Len(t, env.events.byType(models.EventApprovalReminder), 1)

	env.backdate(t, req.ID, 11*time.Minute)
	require.NoError(t, sc.Scan(ctx))
	require.Len(t, env.events.byType(models.EventApprovalTimeout), 1)
}

func TestScannerStartStop(t *testing.T) {
	env := newGateEnv(t)
	sc := NewScanner(env.gate)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sc.Start(ctx)
	done := make(chan struct{})
	go func() {
		sc.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scanner did not stop")
	}
}
