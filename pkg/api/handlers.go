package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clipforge/clipforge/pkg/blackboard"
	"github.com/clipforge/clipforge/pkg/models"
)

// ListApprovals handles GET /api/projects/:id/approvals.
func (s *Server) ListApprovals(c *gin.Context) {
	approvals, err := s.admin.ListApprovals(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if approvals == nil {
		approvals = []models.ApprovalRequest{}
	}
	c.JSON(http.StatusOK, gin.H{"approvals": approvals})
}

// DecisionRequest is the body for the approval decision endpoints.
type DecisionRequest struct {
	DecidedBy string `json:"decided_by" binding:"required"`
	Notes     string `json:"notes"`
}

// decideHandler handles POST .../approvals/:aid/{approve,reject,revise}.
func (s *Server) decideHandler(decision models.ApprovalStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DecisionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		eventID, err := s.admin.Decide(c.Request.Context(),
			c.Param("id"), c.Param("aid"), decision, req.DecidedBy, req.Notes)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{
			"decision": decision,
			"event_id": eventID,
		})
	}
}

// ListTasks handles GET /api/projects/:id/tasks with optional status,
// type, and assignee query filters.
func (s *Server) ListTasks(c *gin.Context) {
	filter := models.TaskFilter{
		Status:   models.TaskStatus(c.Query("status")),
		Type:     models.TaskType(c.Query("type")),
		Assignee: c.Query("assignee"),
	}
	tasks, err := s.admin.Tasks(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// RetryTask handles POST /api/projects/:id/tasks/:tid/retry.
func (s *Server) RetryTask(c *gin.Context) {
	if err := s.admin.RetryTask(c.Request.Context(), c.Param("id"), c.Param("tid")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"task_id": c.Param("tid"), "status": string(models.TaskPending)})
}

// AbortRequest is the body for POST /api/projects/:id/abort.
type AbortRequest struct {
	Reason string `json:"reason"`
}

// AbortProject handles POST /api/projects/:id/abort.
func (s *Server) AbortProject(c *gin.Context) {
	var req AbortRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := s.admin.AbortProject(c.Request.Context(), c.Param("id"), req.Reason, ""); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"project_id": c.Param("id"), "status": string(models.ProjectAborted)})
}

// abortWithError maps domain errors onto HTTP status codes.
func abortWithError(c *gin.Context, err error) {
	var vErr *blackboard.ValidationError
	switch {
	case errors.Is(err, blackboard.ErrProjectNotFound),
		errors.Is(err, blackboard.ErrTaskNotFound),
		errors.Is(err, blackboard.ErrApprovalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, blackboard.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
