package blackboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipforge/clipforge/pkg/blackboard"
	"github.com/clipforge/clipforge/pkg/database"
	"github.com/clipforge/clipforge/pkg/locksvc"
	"github.com/clipforge/clipforge/pkg/models"
	"github.com/clipforge/clipforge/test/util"
)

type testEnv struct {
	svc   *blackboard.Service
	locks *locksvc.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	entClient, db := util.SetupTestDatabase(t)
	dbc := database.NewClientFromEnt(entClient, db)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	locks := locksvc.New(rdb, 30*time.Second, nil)
	cache := blackboard.NewCache(rdb, time.Hour)
	return &testEnv{
		svc:   blackboard.NewService(dbc, locks, cache),
		locks: locks,
	}
}

func testSpec() models.GlobalSpec {
	return models.GlobalSpec{
		Title:           "Roadtrip teaser",
		DurationSeconds: 30,
		AspectRatio:     "16:9",
		QualityTier:     models.QualityBalanced,
		Resolution:      "1920x1080",
		FPS:             24,
		Style:           models.StyleSpec{Tone: "warm", Palette: []string{"#aa3311", "#ffee99"}},
	}
}

func usd(amount float64) models.Money {
	return models.Money{Amount: amount, Currency: "USD"}
}

func createProject(t *testing.T, env *testEnv, id string) *models.ProjectState {
	t.Helper()
	st, err := env.svc.CreateProject(context.Background(), id, testSpec(), usd(100), blackboard.WriteMeta{Actor: "api"})
	require.NoError(t, err)
	return st
}

func TestCreateProject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("starts at version 1 with empty spend", func(t *testing.T) {
		st := createProject(t, env, "proj-create-1")
		assert.EqualValues(t, 1, st.Version)
		assert.Equal(t, models.ProjectCreated, st.Status)
		assert.Equal(t, 100.0, st.Budget.Total.Amount)
		assert.Zero(t, st.Budget.Spent.Amount)
		assert.Equal(t, 100.0, st.Budget.EstimatedRemaining.Amount)
	})

	t.Run("defaults approval checkpoints", func(t *testing.T) {
		st := createProject(t, env, "proj-create-2")
		assert.Equal(t, models.DefaultApprovalCheckpoints(), st.Spec.UserOptions.ApprovalCheckpoints)
	})

	t.Run("auto mode gets no checkpoints", func(t *testing.T) {
		spec := testSpec()
		spec.UserOptions.AutoMode = true
		st, err := env.svc.CreateProject(ctx, "proj-create-3", spec, usd(100), blackboard.WriteMeta{Actor: "api"})
		require.NoError(t, err)
		assert.Empty(t, st.Spec.UserOptions.ApprovalCheckpoints)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		createProject(t, env, "proj-create-4")
		_, err := env.svc.CreateProject(ctx, "proj-create-4", testSpec(), usd(100), blackboard.WriteMeta{Actor: "api"})
		assert.ErrorIs(t, err, blackboard.ErrProjectExists)
	})

	t.Run("rejects non-positive budget", func(t *testing.T) {
		_, err := env.svc.CreateProject(ctx, "proj-create-5", testSpec(), usd(0), blackboard.WriteMeta{Actor: "api"})
		var verr *blackboard.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestUpdateProjectStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	createProject(t, env, "proj-status")

	st, err := env.svc.UpdateProjectStatus(ctx, "proj-status", models.ProjectPlanning, blackboard.WriteMeta{Actor: "orchestrator"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, st.Version)
	assert.Equal(t, models.ProjectPlanning, st.Status)
	assert.Nil(t, st.CompletedAt)

	// The change log records the mutation at the post-write version.
	last := st.ChangeLog[len(st.ChangeLog)-1]
	assert.EqualValues(t, 2, last.Version)
	assert.Equal(t, "STATUS_CHANGED", last.ChangeType)
	assert.Equal(t, "orchestrator", last.Actor)

	st, err = env.svc.UpdateProjectStatus(ctx, "proj-status", models.ProjectDelivered, blackboard.WriteMeta{Actor: "orchestrator"})
	require.NoError(t, err)
	require.NotNil(t, st.CompletedAt, "terminal status stamps completed_at")
}

func TestAppendChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	createProject(t, env, "proj-annotate")

	st, err := env.svc.AppendChange(ctx, "proj-annotate", models.ChangeEntry{
		ChangeType:  "MODEL_SWAPPED",
		Path:        "/shots/S01",
		Description: "keyframe model downgraded after quota error",
		After:       []byte(`{"model":"sdxl-turbo"}`),
	}, blackboard.WriteMeta{Actor: "image_agent"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, st.Version, "annotations bump the version like any write")

	last := st.ChangeLog[len(st.ChangeLog)-1]
	assert.Equal(t, "MODEL_SWAPPED", last.ChangeType)
	assert.Equal(t, "/shots/S01", last.Path)
	assert.Equal(t, "image_agent", last.Actor)
	assert.JSONEq(t, `{"model":"sdxl-turbo"}`, string(last.After))

	_, err = env.svc.AppendChange(ctx, "proj-annotate", models.ChangeEntry{}, blackboard.WriteMeta{Actor: "image_agent"})
	var verr *blackboard.ValidationError
	assert.ErrorAs(t, err, &verr, "change_type is required")
}

func TestVersionConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	st := createProject(t, env, "proj-conflict")

	// A write conditioned on a stale version fails without applying.
	_, err := env.svc.UpdateProjectStatus(ctx, "proj-conflict", models.ProjectPlanning,
		blackboard.WriteMeta{Actor: "a", ExpectedVersion: st.Version})
	require.NoError(t, err)

	_, err = env.svc.UpdateProjectStatus(ctx, "proj-conflict", models.ProjectRendering,
		blackboard.WriteMeta{Actor: "b", ExpectedVersion: st.Version})
	assert.ErrorIs(t, err, blackboard.ErrVersionConflict)

	got, err := env.svc.GetProjectFresh(ctx, "proj-conflict")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectPlanning, got.Status)
	assert.EqualValues(t, 2, got.Version)
}

func TestUpdateGlobalSpecRequiresLock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	createProject(t, env, "proj-spec")

	spec := testSpec()
	spec.Style.Tone = "noir"

	_, err := env.svc.UpdateGlobalSpec(ctx, "proj-spec", spec, blackboard.WriteMeta{Actor: "style_agent", LockOwner: "style_agent"})
	assert.ErrorIs(t, err, blackboard.ErrLockNotHeld)

	key := locksvc.GlobalStyleKey("proj-spec")
	require.NoError(t, env.locks.Acquire(ctx, key, "proj-spec", "style_agent", 0))
	defer func() { _ = env.locks.Release(ctx, key, "style_agent") }()

	// Holding the lock under a different owner name still fails.
	_, err = env.svc.UpdateGlobalSpec(ctx, "proj-spec", spec, blackboard.WriteMeta{Actor: "other", LockOwner: "other"})
	assert.ErrorIs(t, err, blackboard.ErrLockNotHeld)

	st, err := env.svc.UpdateGlobalSpec(ctx, "proj-spec", spec, blackboard.WriteMeta{Actor: "style_agent", LockOwner: "style_agent"})
	require.NoError(t, err)
	assert.Equal(t, "noir", st.Spec.Style.Tone)
}

func TestShotLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	createProject(t, env, "proj-shots")

	// Planning adds shots under the collection lock.
	collKey := locksvc.ShotsCollectionKey("proj-shots")
	require.NoError(t, env.locks.Acquire(ctx, collKey, "proj-shots", "director_agent", 0))
	_, err := env.svc.BatchUpdateShots(ctx, "proj-shots", func(shots map[string]models.Shot) error {
		shots["shot-1"] = models.Shot{Index: 0, Status: models.ShotInit, DurationSeconds: 4}
		shots["shot-2"] = models.Shot{Index: 1, Status: models.ShotInit, DurationSeconds: 5, Dependencies: []string{"shot-1"}}
		return nil
	}, blackboard.WriteMeta{Actor: "director_agent", LockOwner: "director_agent"})
	require.NoError(t, err)
	require.NoError(t, env.locks.Release(ctx, collKey, "director_agent"))

	shot, err := env.svc.GetShot(ctx, "proj-shots", "shot-1")
	require.NoError(t, err)
	assert.Equal(t, "shot-1", shot.ID, "batch write fills shot ids")

	// Per-shot writes need the per-shot lock.
	shotKey := locksvc.ShotKey("proj-shots", "shot-1")
	require.NoError(t, env.locks.Acquire(ctx, shotKey, "proj-shots", "render_agent", 0))

	_, err = env.svc.UpdateShot(ctx, "proj-shots", "shot-1", func(s *models.Shot) error {
		s.Status = models.ShotFinalRendered
		return nil
	}, blackboard.WriteMeta{Actor: "render_agent", LockOwner: "render_agent"})
	var verr *blackboard.ValidationError
	assert.ErrorAs(t, err, &verr, "FINAL_RENDERED without a video uri is rejected")

	st, err := env.svc.UpdateShot(ctx, "proj-shots", "shot-1", func(s *models.Shot) error {
		s.Status = models.ShotFinalRendered
		s.FinalVideoURI = "s3://artifacts/shot-1-final.mp4"
		return nil
	}, blackboard.WriteMeta{Actor: "render_agent", LockOwner: "render_agent"})
	require.NoError(t, err)
	assert.Equal(t, models.ShotFinalRendered, st.Shots["shot-1"].Status)

	_, err = env.svc.UpdateShot(ctx, "proj-shots", "missing", func(s *models.Shot) error { return nil },
		blackboard.WriteMeta{Actor: "render_agent", LockOwner: "render_agent"})
	assert.ErrorIs(t, err, blackboard.ErrShotNotFound)
}

func TestUpdateDNABank(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	createProject(t, env, "proj-dna")

	key := locksvc.DNABankKey("proj-dna")
	require.NoError(t, env.locks.Acquire(ctx, key, "proj-dna", "consistency_agent", 0))

	st, err := env.svc.UpdateDNABank(ctx, "proj-dna", map[string]models.DNAEntry{
		"hero": {
			MergeStrategy: models.MergeWeightedAverage,
			Versions: []models.EmbeddingVersion{
				{Version: 1, Weight: 3, Confidence: 0.8},
				{Version: 2, Weight: 1, Confidence: 0.4},
			},
		},
	}, blackboard.WriteMeta{Actor: "consistency_agent", LockOwner: "consistency_agent"})
	require.NoError(t, err)

	entry := st.DNABank["hero"]
	assert.InDelta(t, 0.75, entry.Versions[0].Weight, 1e-9, "weights normalized on write")
	assert.InDelta(t, 0.25, entry.Versions[1].Weight, 1e-9)
	assert.InDelta(t, 0.7, entry.Confidence, 1e-9)
}

func TestTasks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	createProject(t, env, "proj-tasks")
	meta := blackboard.WriteMeta{Actor: "orchestrator"}

	tasks := []models.Task{
		{ID: "t1", Type: models.TaskWriteScript, Assignee: "script_agent", Priority: 4},
		{ID: "t2", Type: models.TaskPlanShots, Assignee: "director_agent", Priority: 3, DependsOn: []string{"t1"}},
	}
	st, err := env.svc.PutTasks(ctx, "proj-tasks", tasks, meta)
	require.NoError(t, err)
	assert.Len(t, st.Tasks, 2)
	assert.Equal(t, models.TaskPending, st.Tasks["t1"].Status)
	assert.Equal(t, models.DefaultMaxRetries, st.Tasks["t1"].MaxRetries)

	t.Run("reinsert is a no-op", func(t *testing.T) {
		mutated := tasks[0]
		mutated.Priority = 1
		st, err := env.svc.PutTasks(ctx, "proj-tasks", []models.Task{mutated}, meta)
		require.NoError(t, err)
		assert.Equal(t, 4, st.Tasks["t1"].Priority)
	})

	t.Run("cannot start with incomplete dependencies", func(t *testing.T) {
		_, err := env.svc.UpdateTask(ctx, "proj-tasks", "t2", func(tk *models.Task) error {
			tk.Status = models.TaskInProgress
			return nil
		}, meta)
		var verr *blackboard.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("completion requires output", func(t *testing.T) {
		now := time.Now().UTC()
		_, err := env.svc.UpdateTask(ctx, "proj-tasks", "t1", func(tk *models.Task) error {
			tk.Status = models.TaskCompleted
			tk.CompletedAt = &now
			return nil
		}, meta)
		var verr *blackboard.ValidationError
		assert.ErrorAs(t, err, &verr)

		_, err = env.svc.UpdateTask(ctx, "proj-tasks", "t1", func(tk *models.Task) error {
			tk.Status = models.TaskCompleted
			tk.CompletedAt = &now
			tk.Output = map[string]any{"script_uri": "s3://scripts/1"}
			return nil
		}, meta)
		require.NoError(t, err)
	})

	t.Run("dependency completion unblocks start", func(t *testing.T) {
		_, err := env.svc.UpdateTask(ctx, "proj-tasks", "t2", func(tk *models.Task) error {
			tk.Status = models.TaskInProgress
			return nil
		}, meta)
		require.NoError(t, err)
	})

	t.Run("cancel pending tasks", func(t *testing.T) {
		_, err := env.svc.PutTasks(ctx, "proj-tasks", []models.Task{
			{ID: "t3", Type: models.TaskGenerateKeyframe, Assignee: "image_agent"},
			{ID: "t4", Type: models.TaskGenerateMusic, Assignee: "audio_agent"},
		}, meta)
		require.NoError(t, err)

		cancelled, err := env.svc.CancelPendingTasks(ctx, "proj-tasks", "project aborted", meta)
		require.NoError(t, err)
		assert.Equal(t, []string{"t3", "t4"}, cancelled)

		got, err := env.svc.GetTask(ctx, "proj-tasks", "t2")
		require.NoError(t, err)
		assert.Equal(t, models.TaskInProgress, got.Status, "in-flight tasks are not cancelled")
	})
}

func TestAddCost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	createProject(t, env, "proj-cost")
	meta := blackboard.WriteMeta{Actor: "image_agent"}

	budget, version, err := env.svc.AddCost(ctx, "proj-cost", "image_generation", 2.5, meta)
	require.NoError(t, err)
	assert.EqualValues(t, 2, version)
	assert.InDelta(t, 2.5, budget.Spent.Amount, models.CostTolerance)
	assert.InDelta(t, 97.5, budget.EstimatedRemaining.Amount, models.CostTolerance)
	assert.InDelta(t, 2.5, budget.Breakdown["image_generation"].Amount, models.CostTolerance)

	budget, version, err = env.svc.AddCost(ctx, "proj-cost", "image_generation", 1.25, meta)
	require.NoError(t, err)
	assert.EqualValues(t, 3, version)
	assert.InDelta(t, 3.75, budget.Spent.Amount, models.CostTolerance)
	assert.InDelta(t, 3.75, budget.Breakdown["image_generation"].Amount, models.CostTolerance)

	t.Run("version-checked write", func(t *testing.T) {
		_, _, err := env.svc.AddCost(ctx, "proj-cost", "music", 1,
			blackboard.WriteMeta{Actor: "audio_agent", ExpectedVersion: 1})
		assert.ErrorIs(t, err, blackboard.ErrVersionConflict)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, _, err := env.svc.AddCost(ctx, "proj-cost", "music", -1, meta)
		var verr *blackboard.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, _, err := env.svc.AddCost(ctx, "no-such", "music", 1, meta)
		assert.ErrorIs(t, err, blackboard.ErrProjectNotFound)
	})

	t.Run("change history records cost writes", func(t *testing.T) {
		history, err := env.svc.ChangeHistory(ctx, "proj-cost", 0, 0)
		require.NoError(t, err)
		var costEntries int
		for _, e := range history {
			if e.ChangeType == "COST_ADDED" {
				costEntries++
			}
		}
		assert.Equal(t, 2, costEntries)
	})
}

func TestRegisterArtifact(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	createProject(t, env, "proj-art")
	meta := blackboard.WriteMeta{Actor: "image_agent"}

	uri := "s3://artifacts/kf-1.png"
	art := models.ArtifactMeta{Seed: 42, Model: "imagegen", ModelVersion: "v3", Prompt: "hero on a cliff", Cost: 0.04}

	st, err := env.svc.RegisterArtifact(ctx, "proj-art", uri, art, meta)
	require.NoError(t, err)
	assert.Equal(t, 1, st.ArtifactIndex[uri].UseCount)

	// Re-registration counts reuse instead of duplicating.
	st, err = env.svc.RegisterArtifact(ctx, "proj-art", uri, art, meta)
	require.NoError(t, err)
	assert.Equal(t, 2, st.ArtifactIndex[uri].UseCount)
	assert.EqualValues(t, 42, st.ArtifactIndex[uri].Seed)
}

func TestApprovals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	createProject(t, env, "proj-appr")
	meta := blackboard.WriteMeta{Actor: "approval_gate"}

	req := models.ApprovalRequest{
		ID:             "appr-1",
		Stage:          models.EventSceneWritten,
		ContentSummary: "scene draft ready",
		PriorStatus:    models.ProjectPlanning,
		TriggerEventID: "ev-1",
		DeferredTasks:  []models.Task{{ID: "t-deferred", Type: models.TaskPlanShots, Assignee: "director_agent"}},
	}
	_, err := env.svc.CreateApproval(ctx, "proj-appr", req, meta)
	require.NoError(t, err)

	pending, err := env.svc.ListPendingApprovals(ctx, "proj-appr")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, models.ApprovalPending, pending[0].Status)

	all, err := env.svc.ListPendingApprovalsAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "proj-appr", all[0].ProjectID)
	require.Len(t, all[0].DeferredTasks, 1, "deferred tasks survive the round trip")

	require.NoError(t, env.svc.MarkApprovalReminderSent(ctx, "proj-appr", "appr-1", meta))

	resolved, err := env.svc.ResolveApproval(ctx, "proj-appr", "appr-1", models.ApprovalApproved, "reviewer@example.com", "", meta)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, resolved.Status)
	assert.Equal(t, "t-deferred", resolved.DeferredTasks[0].ID)

	// Resolved requests leave the aggregate and the pending scan.
	pending, err = env.svc.ListPendingApprovals(ctx, "proj-appr")
	require.NoError(t, err)
	assert.Empty(t, pending)

	all, err = env.svc.ListPendingApprovalsAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = env.svc.ResolveApproval(ctx, "proj-appr", "appr-1", models.ApprovalRejected, "x", "", meta)
	assert.ErrorIs(t, err, blackboard.ErrApprovalNotFound)
}

func TestChangeHistoryPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	createProject(t, env, "proj-hist")
	meta := blackboard.WriteMeta{Actor: "orchestrator"}

	statuses := []models.ProjectStatus{models.ProjectPlanning, models.ProjectRendering, models.ProjectQA}
	for _, s := range statuses {
		_, err := env.svc.UpdateProjectStatus(ctx, "proj-hist", s, meta)
		require.NoError(t, err)
	}

	history, err := env.svc.ChangeHistory(ctx, "proj-hist", 0, 0)
	require.NoError(t, err)
	require.Len(t, history, 4, "creation plus three status changes")
	for i, e := range history {
		assert.EqualValues(t, i+1, e.Version, "history is version-ordered and gapless")
	}

	tail, err := env.svc.ChangeHistory(ctx, "proj-hist", 3, 0)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	assert.EqualValues(t, 3, tail[0].Version)
}
