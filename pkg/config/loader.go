package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Load builds the configuration from defaults overridden by environment
// variables. The .env bootstrap (godotenv) happens in main before this
// runs, so plain os.Getenv sees both.
func Load() (*Config, error) {
	cfg := Default()

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.Redis.DB = db
	}

	var err error
	if cfg.Scheduler.WorkerCount, err = intEnv("SCHEDULER_WORKERS", cfg.Scheduler.WorkerCount); err != nil {
		return nil, err
	}
	if cfg.Scheduler.PollInterval, err = durationEnv("SCHEDULER_POLL_INTERVAL", cfg.Scheduler.PollInterval); err != nil {
		return nil, err
	}
	if cfg.Scheduler.TaskTimeout, err = durationEnv("TASK_TIMEOUT", cfg.Scheduler.TaskTimeout); err != nil {
		return nil, err
	}
	if cfg.Scheduler.LockTTL, err = durationEnv("LOCK_TTL", cfg.Scheduler.LockTTL); err != nil {
		return nil, err
	}
	if v := os.Getenv("QUEUE_HIGH_WATER"); v != "" {
		hw, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid QUEUE_HIGH_WATER: %w", err)
		}
		cfg.Scheduler.QueueHighWater = hw
	}

	if cfg.Approval.DefaultTimeout, err = durationEnv("APPROVAL_TIMEOUT", cfg.Approval.DefaultTimeout); err != nil {
		return nil, err
	}
	cfg.Approval.AutoApproveOnTimeout = os.Getenv("APPROVAL_AUTO_APPROVE_ON_TIMEOUT") == "true"

	if cfg.Cache.TTL, err = durationEnv("CACHE_TTL", cfg.Cache.TTL); err != nil {
		return nil, err
	}
	if cfg.Retention.EventRetention, err = durationEnv("EVENT_RETENTION", cfg.Retention.EventRetention); err != nil {
		return nil, err
	}

	cfg.MapperRulesPath = os.Getenv("MAPPER_RULES_PATH")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
