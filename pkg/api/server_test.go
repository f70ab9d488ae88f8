package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipforge/clipforge/pkg/blackboard"
	"github.com/clipforge/clipforge/pkg/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAdmin records admin calls and serves canned data.
type fakeAdmin struct {
	approvals map[string][]models.ApprovalRequest
	tasks     map[string][]models.Task
	decisions []string
	retried   []string
	aborted   []string
}

func newFakeAdmin() *fakeAdmin {
	return &fakeAdmin{
		approvals: map[string][]models.ApprovalRequest{},
		tasks:     map[string][]models.Task{},
	}
}

func (f *fakeAdmin) ListApprovals(_ context.Context, projectID string) ([]models.ApprovalRequest, error) {
	out, ok := f.approvals[projectID]
	if !ok {
		return nil, blackboard.ErrProjectNotFound
	}
	return out, nil
}

func (f *fakeAdmin) Decide(_ context.Context, projectID, approvalID string, decision models.ApprovalStatus, decidedBy, _ string) (string, error) {
	if _, ok := f.approvals[projectID]; !ok {
		return "", blackboard.ErrProjectNotFound
	}
	f.decisions = append(f.decisions, fmt.Sprintf("%s/%s=%s by %s", projectID, approvalID, decision, decidedBy))
	return "ev-1", nil
}

func (f *fakeAdmin) Tasks(_ context.Context, projectID string, filter models.TaskFilter) ([]models.Task, error) {
	all, ok := f.tasks[projectID]
	if !ok {
		return nil, blackboard.ErrProjectNotFound
	}
	var out []models.Task
	for _, t := range all {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeAdmin) RetryTask(_ context.Context, projectID, taskID string) error {
	for _, t := range f.tasks[projectID] {
		if t.ID == taskID {
			if t.Status != models.TaskFailed {
				return blackboard.NewValidationError("task.status", "only failed tasks can be retried")
			}
			f.retried = append(f.retried, taskID)
			return nil
		}
	}
	return blackboard.ErrTaskNotFound
}

func (f *fakeAdmin) AbortProject(_ context.Context, projectID, reason, _ string) error {
	if _, ok := f.tasks[projectID]; !ok {
		return blackboard.ErrProjectNotFound
	}
	f.aborted = append(f.aborted, projectID+":"+reason)
	return nil
}

func newTestServer(t *testing.T) (*fakeAdmin, *gin.Engine) {
	t.Helper()
	admin := newFakeAdmin()
	return admin, NewServer(admin, nil, nil).Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthWithoutBackends(t *testing.T) {
	_, router := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListApprovals(t *testing.T) {
	admin, router := newTestServer(t)
	admin.approvals["proj-1"] = []models.ApprovalRequest{
		{ID: "ap-1", ProjectID: "proj-1", Stage: models.EventSceneWritten, Status: models.ApprovalPending},
	}

	w := doJSON(t, router, http.MethodGet, "/api/projects/proj-1/approvals", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Approvals []models.ApprovalRequest `json:"approvals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Approvals, 1)
	assert.Equal(t, "ap-1", resp.Approvals[0].ID)

	w = doJSON(t, router, http.MethodGet, "/api/projects/missing/approvals", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDecisionEndpoints(t *testing.T) {
	admin, router := newTestServer(t)
	admin.approvals["proj-1"] = nil

	for path, want := range map[string]models.ApprovalStatus{
		"approve": models.ApprovalApproved,
		"reject":  models.ApprovalRejected,
		"revise":  models.ApprovalRevisionRequested,
	} {
		w := doJSON(t, router, http.MethodPost,
			"/api/projects/proj-1/approvals/ap-1/"+path,
			DecisionRequest{DecidedBy: "producer", Notes: "n"})
		assert.Equal(t, http.StatusAccepted, w.Code, path)
		assert.Contains(t, admin.decisions[len(admin.decisions)-1], string(want))
	}

	w := doJSON(t, router, http.MethodPost,
		"/api/projects/proj-1/approvals/ap-1/approve", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code, "decided_by is required")
}

func TestListTasksFilters(t *testing.T) {
	admin, router := newTestServer(t)
	admin.tasks["proj-1"] = []models.Task{
		{ID: "t1", Type: models.TaskGenerateKeyframe, Status: models.TaskFailed, Assignee: "image_agent"},
		{ID: "t2", Type: models.TaskGenerateMusic, Status: models.TaskPending, Assignee: "audio_agent"},
	}

	w := doJSON(t, router, http.MethodGet, "/api/projects/proj-1/tasks?status=failed", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tasks []models.Task `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "t1", resp.Tasks[0].ID)

	w = doJSON(t, router, http.MethodGet, "/api/projects/proj-1/tasks?assignee=nobody", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Tasks)
}

func TestRetryTaskEndpoint(t *testing.T) {
	admin, router := newTestServer(t)
	admin.tasks["proj-1"] = []models.Task{
		{ID: "t-failed", Status: models.TaskFailed},
		{ID: "t-done", Status: models.TaskCompleted},
	}

	w := doJSON(t, router, http.MethodPost, "/api/projects/proj-1/tasks/t-failed/retry", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, []string{"t-failed"}, admin.retried)

	w = doJSON(t, router, http.MethodPost, "/api/projects/proj-1/tasks/t-done/retry", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/projects/proj-1/tasks/t-nope/retry", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAbortEndpoint(t *testing.T) {
	admin, router := newTestServer(t)
	admin.tasks["proj-1"] = nil

	w := doJSON(t, router, http.MethodPost, "/api/projects/proj-1/abort", AbortRequest{Reason: "client cancelled"})
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, []string{"proj-1:client cancelled"}, admin.aborted)

	w = doJSON(t, router, http.MethodPost, "/api/projects/missing/abort", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
