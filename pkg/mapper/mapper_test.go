package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipforge/clipforge/pkg/locksvc"
	"github.com/clipforge/clipforge/pkg/models"
)

func newTestMapper(t *testing.T) *Mapper {
	t.Helper()
	m, err := New("")
	require.NoError(t, err)
	return m
}

func event(typ models.EventType, payload map[string]any) *models.Event {
	return &models.Event{
		ID:        "ev-1",
		ProjectID: "proj-1",
		Type:      typ,
		Actor:     "test",
		Payload:   payload,
	}
}

func typesOf(templates []TaskTemplate) []models.TaskType {
	out := make([]models.TaskType, len(templates))
	for i, tpl := range templates {
		out[i] = tpl.Type
	}
	return out
}

func TestMapProjectCreated(t *testing.T) {
	m := newTestMapper(t)

	templates, err := m.Map(event(models.EventProjectCreated, map[string]any{"brief_uri": "s3://briefs/1"}), nil)
	require.NoError(t, err)
	require.Len(t, templates, 1)

	tpl := templates[0]
	assert.Equal(t, models.TaskWriteScript, tpl.Type)
	assert.Equal(t, "script_agent", tpl.Assignee)
	assert.Equal(t, 4, tpl.Priority)
	assert.Equal(t, 3*time.Minute, tpl.Timeout)
	assert.Equal(t, models.DefaultMaxRetries, tpl.MaxRetries)
	assert.Equal(t, "s3://briefs/1", tpl.Input["brief_uri"])
}

func TestMapShotPlannedFanOut(t *testing.T) {
	m := newTestMapper(t)

	templates, err := m.Map(event(models.EventShotPlanned, map[string]any{
		"shot_ids": []any{"shot-1", "shot-2", "shot-3"},
		"mood_tag": "wistful",
	}), nil)
	require.NoError(t, err)

	var keyframes, music []TaskTemplate
	for _, tpl := range templates {
		switch tpl.Type {
		case models.TaskGenerateKeyframe:
			keyframes = append(keyframes, tpl)
		case models.TaskGenerateMusic:
			music = append(music, tpl)
		}
	}
	require.Len(t, keyframes, 3, "one keyframe per planned shot")
	require.Len(t, music, 1)

	assert.Equal(t, "shot-2", keyframes[1].Input["shot_id"])
	assert.Equal(t, locksvc.ShotKey("proj-1", "shot-2"), keyframes[1].RequiredLockKey)
	assert.Equal(t, "wistful", music[0].Input["mood_tag"])
	assert.Empty(t, music[0].RequiredLockKey)
}

func TestMapImageGeneratedParallel(t *testing.T) {
	m := newTestMapper(t)

	templates, err := m.Map(event(models.EventImageGenerated, map[string]any{
		"shot_id":      "shot-1",
		"artifact_uri": "s3://artifacts/kf.png",
	}), nil)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]models.TaskType{models.TaskExtractFeatures, models.TaskRunVisualQA},
		typesOf(templates))
}

func TestMapQAVerdictBranches(t *testing.T) {
	m := newTestMapper(t)

	t.Run("visual fail tunes prompts", func(t *testing.T) {
		templates, err := m.Map(event(models.EventQAReport, map[string]any{
			"shot_id": "shot-1", "verdict": "fail",
		}), nil)
		require.NoError(t, err)
		assert.Equal(t, []models.TaskType{models.TaskPromptTuning}, typesOf(templates))
	})

	t.Run("visual pass promotes to preview render", func(t *testing.T) {
		templates, err := m.Map(event(models.EventQAReport, map[string]any{
			"shot_id": "shot-1", "verdict": "pass", "artifact_uri": "s3://artifacts/kf.png",
		}), nil)
		require.NoError(t, err)
		require.Len(t, templates, 1)
		tpl := templates[0]
		assert.Equal(t, models.TaskGeneratePreviewVideo, tpl.Type)
		assert.Equal(t, locksvc.ShotKey("proj-1", "shot-1"), tpl.RequiredLockKey)
		require.NotNil(t, tpl.Fallback, "preview generation degrades to a motion still")
		assert.Equal(t, models.TaskGenerateMotionStill, tpl.Fallback.Type)
		assert.Less(t, tpl.Fallback.EstimatedCost, tpl.EstimatedCost)
	})

	t.Run("video pass maps nothing, approval carries the final render", func(t *testing.T) {
		templates, err := m.Map(event(models.EventVideoQAReport, map[string]any{
			"shot_id": "shot-1", "verdict": "pass",
		}), nil)
		require.NoError(t, err)
		assert.Empty(t, templates)
	})

	t.Run("shot approval releases the final render", func(t *testing.T) {
		templates, err := m.Map(event(models.EventShotApproved, map[string]any{
			"shot_id": "shot-1",
		}), nil)
		require.NoError(t, err)
		assert.Equal(t, []models.TaskType{models.TaskGenerateFinalVideo}, typesOf(templates))
	})

	t.Run("tuned prompt regenerates the keyframe", func(t *testing.T) {
		templates, err := m.Map(event(models.EventPromptTuned, map[string]any{
			"shot_id": "shot-1", "tuned_prompt": "warmer light, closer framing",
		}), nil)
		require.NoError(t, err)
		require.Len(t, templates, 1)
		tpl := templates[0]
		assert.Equal(t, models.TaskGenerateKeyframe, tpl.Type)
		assert.Equal(t, "warmer light, closer framing", tpl.Input["tuned_prompt"])
		assert.Equal(t, locksvc.ShotKey("proj-1", "shot-1"), tpl.RequiredLockKey)
	})

	t.Run("video fail tunes with model-swap fallback", func(t *testing.T) {
		templates, err := m.Map(event(models.EventVideoQAReport, map[string]any{
			"shot_id": "shot-1", "verdict": "fail",
		}), nil)
		require.NoError(t, err)
		require.Len(t, templates, 1)
		assert.Equal(t, models.TaskPromptTuning, templates[0].Type)
		require.NotNil(t, templates[0].Fallback)
		assert.Equal(t, models.TaskModelSwapRetry, templates[0].Fallback.Type)
	})
}

func TestMapAssembleWhenAllShotsFinal(t *testing.T) {
	m := newTestMapper(t)
	ev := event(models.EventFinalVideoReady, map[string]any{"shot_id": "shot-2"})

	partial := &models.ProjectState{Shots: map[string]models.Shot{
		"shot-1": {ID: "shot-1", Status: models.ShotFinalRendered},
		"shot-2": {ID: "shot-2", Status: models.ShotPreviewReady},
	}}
	templates, err := m.Map(ev, partial)
	require.NoError(t, err)
	assert.Empty(t, templates, "assembly waits for the last shot")

	done := &models.ProjectState{Shots: map[string]models.Shot{
		"shot-1": {ID: "shot-1", Status: models.ShotFinalRendered},
		"shot-2": {ID: "shot-2", Status: models.ShotFinalRendered},
	}}
	templates, err = m.Map(ev, done)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]models.TaskType{models.TaskAssembleFinal, models.TaskGenerateMusic, models.TaskGenerateVoice},
		typesOf(templates), "audio tracks are caught up alongside assembly")
	for _, tpl := range templates {
		if tpl.Type == models.TaskAssembleFinal {
			assert.Equal(t, 5, tpl.Priority)
		}
	}
}

func TestMapAudioCatchUpSkipsLiveTasks(t *testing.T) {
	m := newTestMapper(t)
	ev := event(models.EventFinalVideoReady, map[string]any{"shot_id": "shot-1"})

	st := &models.ProjectState{
		Shots: map[string]models.Shot{
			"shot-1": {ID: "shot-1", Status: models.ShotFinalRendered},
		},
		Tasks: map[string]models.Task{
			"t-music": {ID: "t-music", Type: models.TaskGenerateMusic, Status: models.TaskCompleted},
		},
	}
	templates, err := m.Map(ev, st)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]models.TaskType{models.TaskAssembleFinal, models.TaskGenerateVoice},
		typesOf(templates), "music already produced, only voice is caught up")

	// A failed track does not count as produced.
	st.Tasks["t-music"] = models.Task{ID: "t-music", Type: models.TaskGenerateMusic, Status: models.TaskFailed}
	templates, err = m.Map(ev, st)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]models.TaskType{models.TaskAssembleFinal, models.TaskGenerateMusic, models.TaskGenerateVoice},
		typesOf(templates))
}

func TestMapUnmappedEvent(t *testing.T) {
	m := newTestMapper(t)

	templates, err := m.Map(event(models.EventCostOverrunWarning, nil), nil)
	require.NoError(t, err)
	assert.Empty(t, templates, "budget warnings inform, they do not schedule")
}

func TestMapFanOutMissingField(t *testing.T) {
	m := newTestMapper(t)

	_, err := m.Map(event(models.EventShotPlanned, map[string]any{"mood_tag": "warm"}), nil)
	assert.Error(t, err, "fan-out without its payload list is a mapping error")
}

func TestHumanGateMapsReviewTask(t *testing.T) {
	m := newTestMapper(t)

	templates, err := m.Map(event(models.EventHumanGateTriggered, map[string]any{"reason": "retries exhausted"}), nil)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, models.TaskHumanReviewRequired, templates[0].Type)
	assert.Equal(t, "human", templates[0].Assignee)
	assert.Equal(t, "retries exhausted", templates[0].Input["reason"])
}

func TestParseRejectsBadTables(t *testing.T) {
	cases := map[string]string{
		"unknown event": `
rules:
  - event: NO_SUCH_EVENT
    tasks:
      - type: WRITE_SCRIPT
`,
		"no tasks": `
rules:
  - event: PROJECT_CREATED
    tasks: []
`,
		"for_each without item_key": `
rules:
  - event: SHOT_PLANNED
    for_each: shot_ids
    tasks:
      - type: GENERATE_KEYFRAME
`,
		"bad lock scope": `
rules:
  - event: PROJECT_CREATED
    tasks:
      - type: WRITE_SCRIPT
        lock_scope: galaxy
`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseRuleTable([]byte(raw))
			assert.Error(t, err)
		})
	}
}
