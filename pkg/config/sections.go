package config

import "time"

// RedisConfig locates the key-value store used for event streams, locks,
// the task queue, and the read cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`

	// IOTimeout bounds every Redis round trip.
	IOTimeout time.Duration `yaml:"io_timeout"`
}

// DefaultRedisConfig returns the built-in Redis defaults.
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:      "localhost:6379",
		DB:        0,
		IOTimeout: 5 * time.Second,
	}
}

// SchedulerConfig controls the dispatch loop and watchdog.
type SchedulerConfig struct {
	// WorkerCount is the number of dispatch goroutines per replica.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval between queue scans. The
	// scheduler must re-scan periodically even with no events arriving,
	// because a dependency may be satisfied out of band (e.g. approval
	// resume).
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter randomizes the poll interval to de-synchronize
	// replicas. Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// TaskTimeout is the default deadline for IN_PROGRESS tasks.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// TaskTimeouts overrides the deadline per task type.
	TaskTimeouts map[string]time.Duration `yaml:"task_timeouts"`

	// WatchdogInterval is how often expired IN_PROGRESS tasks are scanned.
	WatchdogInterval time.Duration `yaml:"watchdog_interval"`

	// LockTTL is the default distributed-lock time-to-live.
	LockTTL time.Duration `yaml:"lock_ttl"`

	// QueueHighWater pauses task creation for a project when its queue
	// depth crosses this mark.
	QueueHighWater int64 `yaml:"queue_high_water"`

	// DispatchBatch is how many queue heads are examined per scan.
	DispatchBatch int64 `yaml:"dispatch_batch"`

	// GracefulShutdownTimeout bounds the wait for in-flight dispatches
	// during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		WorkerCount:             3,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      250 * time.Millisecond,
		TaskTimeout:             5 * time.Minute,
		WatchdogInterval:        30 * time.Second,
		LockTTL:                 30 * time.Second,
		QueueHighWater:          1000,
		DispatchBatch:           50,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}

// TimeoutFor returns the deadline for a task type.
func (c *SchedulerConfig) TimeoutFor(taskType string) time.Duration {
	if d, ok := c.TaskTimeouts[taskType]; ok {
		return d
	}
	return c.TaskTimeout
}

// BudgetConfig holds the spend warning thresholds.
type BudgetConfig struct {
	// WarnFraction emits COST_OVERRUN_WARNING when spend crosses it.
	WarnFraction float64 `yaml:"warn_fraction"`

	// ExhaustFraction marks the budget exhausted.
	ExhaustFraction float64 `yaml:"exhaust_fraction"`
}

// DefaultBudgetConfig returns the built-in budget thresholds.
func DefaultBudgetConfig() *BudgetConfig {
	return &BudgetConfig{
		WarnFraction:    0.8,
		ExhaustFraction: 1.0,
	}
}

// ApprovalConfig controls the human approval gate.
type ApprovalConfig struct {
	// DefaultTimeout applies when the project spec sets no approval
	// timeout. A reminder fires at 1×, TIMEOUT at 2×.
	DefaultTimeout time.Duration `yaml:"default_timeout"`

	// ScanInterval is how often pending approvals are checked for
	// reminders and timeouts.
	ScanInterval time.Duration `yaml:"scan_interval"`

	// AutoApproveOnTimeout approves timed-out requests instead of
	// escalating to the human gate.
	AutoApproveOnTimeout bool `yaml:"auto_approve_on_timeout"`
}

// DefaultApprovalConfig returns the built-in approval defaults.
func DefaultApprovalConfig() *ApprovalConfig {
	return &ApprovalConfig{
		DefaultTimeout: 60 * time.Minute,
		ScanInterval:   1 * time.Minute,
	}
}

// CacheConfig controls the read-through project cache.
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// DefaultCacheConfig returns the built-in cache defaults.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{TTL: 1 * time.Hour}
}

// RetentionConfig governs how long completed-project data is kept.
type RetentionConfig struct {
	// EventRetention is how long events of completed projects remain in
	// their streams.
	EventRetention time.Duration `yaml:"event_retention"`

	// ChangeHistoryRetention bounds the change_entries table for
	// delivered/aborted projects.
	ChangeHistoryRetention time.Duration `yaml:"change_history_retention"`

	// SweepInterval is how often the retention sweeper runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventRetention:         30 * 24 * time.Hour,
		ChangeHistoryRetention: 30 * 24 * time.Hour,
		SweepInterval:          1 * time.Hour,
	}
}

// EventsConfig controls event delivery behavior.
type EventsConfig struct {
	// MaxDeliveries is the redelivery cap before a message moves to the
	// dead-letter stream.
	MaxDeliveries int `yaml:"max_deliveries"`

	// RedeliveryIdle is how long a pending message may sit unacked
	// before another consumer claims it.
	RedeliveryIdle time.Duration `yaml:"redelivery_idle"`

	// BlockInterval is the XREADGROUP block duration per poll.
	BlockInterval time.Duration `yaml:"block_interval"`

	// CausationChainCap bounds causation-chain walks.
	CausationChainCap int `yaml:"causation_chain_cap"`
}

// DefaultEventsConfig returns the built-in event delivery defaults.
func DefaultEventsConfig() *EventsConfig {
	return &EventsConfig{
		MaxDeliveries:     3,
		RedeliveryIdle:    30 * time.Second,
		BlockInterval:     2 * time.Second,
		CausationChainCap: 100,
	}
}
