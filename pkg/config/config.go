// Package config holds the coordination core's configuration: store
// endpoints, scheduling knobs, budget thresholds, approval timeouts, and
// retention policy.
package config

// Config is the umbrella configuration object returned by Load and used
// throughout the application.
type Config struct {
	Redis     *RedisConfig
	Scheduler *SchedulerConfig
	Budget    *BudgetConfig
	Approval  *ApprovalConfig
	Cache     *CacheConfig
	Retention *RetentionConfig
	Events    *EventsConfig

	// MapperRulesPath optionally points at a YAML rule table overriding
	// the built-in event→task mapping.
	MapperRulesPath string
}

// Default returns a Config with every section at its defaults.
func Default() *Config {
	return &Config{
		Redis:     DefaultRedisConfig(),
		Scheduler: DefaultSchedulerConfig(),
		Budget:    DefaultBudgetConfig(),
		Approval:  DefaultApprovalConfig(),
		Cache:     DefaultCacheConfig(),
		Retention: DefaultRetentionConfig(),
		Events:    DefaultEventsConfig(),
	}
}
