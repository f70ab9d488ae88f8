// ClipForge coordination daemon: runs the event bus consumers, the
// blackboard state store, the task scheduler, the approval gate, and the
// admin HTTP API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/clipforge/clipforge/pkg/api"
	"github.com/clipforge/clipforge/pkg/approval"
	"github.com/clipforge/clipforge/pkg/blackboard"
	"github.com/clipforge/clipforge/pkg/cleanup"
	"github.com/clipforge/clipforge/pkg/config"
	"github.com/clipforge/clipforge/pkg/database"
	"github.com/clipforge/clipforge/pkg/eventstore"
	"github.com/clipforge/clipforge/pkg/locksvc"
	"github.com/clipforge/clipforge/pkg/mapper"
	"github.com/clipforge/clipforge/pkg/orchestrator"
	"github.com/clipforge/clipforge/pkg/scheduler"
	"github.com/clipforge/clipforge/pkg/taskqueue"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the replica identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting clipforged", "http_port", httpPort, "pod_id", podID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. PostgreSQL (blackboard backing store)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL")

	// 3. Redis (events, locks, queue, cache)
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ReadTimeout:  cfg.Redis.IOTimeout,
		WriteTimeout: cfg.Redis.IOTimeout,
		DialTimeout:  cfg.Redis.IOTimeout,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Error closing Redis client", "error", err)
		}
	}()
	slog.Info("Connected to Redis", "addr", cfg.Redis.Addr)

	// 4. Core services
	locks := locksvc.New(rdb, cfg.Scheduler.LockTTL, blackboard.NewLockMirror(dbClient))
	cache := blackboard.NewCache(rdb, cfg.Cache.TTL)
	if err := cache.StartInvalidationListener(ctx); err != nil {
		// Peers' writes then go unnoticed until the cache TTL expires;
		// survivable, but worth an operator's attention.
		slog.Error("Cache invalidation listener failed to start", "error", err)
	}
	state := blackboard.NewService(dbClient, locks, cache)
	queue := taskqueue.New(rdb)
	events := eventstore.New(rdb, cfg.Events, cfg.Retention.EventRetention, podID)

	eventMapper, err := mapper.New(cfg.MapperRulesPath)
	if err != nil {
		slog.Error("Failed to load mapper rules", "path", cfg.MapperRulesPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Core services initialized")

	// 5. Pipeline components
	gate := approval.NewGate(cfg.Approval, state, queue, events)
	scanner := approval.NewScanner(gate)
	sched := scheduler.New(cfg.Scheduler, cfg.Budget, state, queue, locks, events)
	orch := orchestrator.New(cfg.Scheduler, state, queue, eventMapper, gate, events)
	sweeper := cleanup.NewService(cfg.Retention, state, rdb)

	// 6. Event subscriptions, then durable consumption
	events.Subscribe(orch, orch.SubscribedTypes())
	events.Subscribe(sched, sched.SubscribedTypes())
	events.Subscribe(gate, gate.SubscribedTypes())
	if err := events.StartConsuming(ctx); err != nil {
		slog.Error("Failed to start event consumption", "error", err)
		os.Exit(1)
	}

	// 7. Background loops
	sched.Start(ctx)
	scanner.Start(ctx)
	sweeper.Start(ctx)

	// 8. Admin HTTP API (non-blocking)
	httpServer := api.NewServer(orch, dbClient.DB(), rdb)
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil {
			errCh <- err
		}
	}()

	slog.Info("clipforged started", "pod_id", podID, "workers", cfg.Scheduler.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop intake first, then drain the loops.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Scheduler.GracefulShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown incomplete", "error", err)
	}

	events.Stop()
	slog.Info("Event consumption stopped")

	done := make(chan struct{})
	go func() {
		sched.Stop()
		scanner.Stop()
		sweeper.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Background loops stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded")
	}

	slog.Info("clipforged stopped")
}
