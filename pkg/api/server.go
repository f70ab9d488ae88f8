// Package api exposes the administrative HTTP surface: approvals,
// tasks, abort, and health. Handlers are thin wrappers over the
// orchestrator's admin operations.
package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/clipforge/clipforge/pkg/database"
	"github.com/clipforge/clipforge/pkg/models"
)

// Admin is the orchestrator surface the API serves.
type Admin interface {
	ListApprovals(ctx context.Context, projectID string) ([]models.ApprovalRequest, error)
	Decide(ctx context.Context, projectID, approvalID string, decision models.ApprovalStatus, decidedBy, notes string) (string, error)
	Tasks(ctx context.Context, projectID string, filter models.TaskFilter) ([]models.Task, error)
	RetryTask(ctx context.Context, projectID, taskID string) error
	AbortProject(ctx context.Context, projectID, reason, causationID string) error
}

const healthCheckTimeout = 5 * time.Second

// Server is the admin HTTP server.
type Server struct {
	admin Admin
	db    *sql.DB
	rdb   *redis.Client
	http  *http.Server
}

// NewServer creates an admin API server. db and rdb feed the health
// endpoint; either may be nil in tests.
func NewServer(admin Admin, db *sql.DB, rdb *redis.Client) *Server {
	return &Server{admin: admin, db: db, rdb: rdb}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", s.Health)

	projects := router.Group("/api/projects/:id")
	{
		projects.GET("/approvals", s.ListApprovals)
		projects.POST("/approvals/:aid/approve", s.decideHandler(models.ApprovalApproved))
		projects.POST("/approvals/:aid/reject", s.decideHandler(models.ApprovalRejected))
		projects.POST("/approvals/:aid/revise", s.decideHandler(models.ApprovalRevisionRequested))
		projects.GET("/tasks", s.ListTasks)
		projects.POST("/tasks/:tid/retry", s.RetryTask)
		projects.POST("/abort", s.AbortProject)
	}
	return router
}

// Start serves the API on addr until Shutdown.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("Admin API listening", "addr", addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Health reports database and Redis connectivity.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	body := gin.H{"status": "healthy"}
	code := http.StatusOK

	if s.db != nil {
		dbHealth, err := database.Health(ctx, s.db)
		body["database"] = dbHealth
		if err != nil {
			body["status"] = "unhealthy"
			code = http.StatusServiceUnavailable
		}
	}
	if s.rdb != nil {
		if err := s.rdb.Ping(ctx).Err(); err != nil {
			body["redis"] = "unhealthy"
			body["status"] = "unhealthy"
			code = http.StatusServiceUnavailable
		} else {
			body["redis"] = "healthy"
		}
	}
	c.JSON(code, body)
}
