package mapper

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clipforge/clipforge/pkg/models"
)

// RuleTable is the YAML document driving the event→task mapping. New
// pipeline stages are added here, not in code.
type RuleTable struct {
	// Defaults supplies per-task-type fallbacks for fields a rule omits.
	Defaults map[string]TaskSpec `yaml:"defaults"`

	Rules []Rule `yaml:"rules"`
}

// Rule maps one event type to task templates. Multiple rules may match
// the same event; all of them contribute.
type Rule struct {
	Event string `yaml:"event"`

	// When gates the rule on payload fields. All conditions must hold.
	When []Condition `yaml:"when,omitempty"`

	// AllShotsFinal gates the rule on the project snapshot: every shot
	// FINAL_RENDERED. Used for the final assembly trigger.
	AllShotsFinal bool `yaml:"all_shots_final,omitempty"`

	// UnlessTask suppresses the rule when the project already carries a
	// live task of the given type. Used for the audio catch-up rules so
	// assembly does not re-create tracks produced earlier in the run.
	UnlessTask string `yaml:"unless_task,omitempty"`

	// ForEach names a payload field holding a list; the rule's tasks are
	// instantiated once per element, with the element bound to ItemKey
	// in the task input.
	ForEach string `yaml:"for_each,omitempty"`
	ItemKey string `yaml:"item_key,omitempty"`

	Tasks []TaskSpec `yaml:"tasks"`
}

// Condition is one payload predicate.
type Condition struct {
	Field     string `yaml:"field"`
	Equals    string `yaml:"equals,omitempty"`
	NotEquals string `yaml:"not_equals,omitempty"`
}

// TaskSpec describes one task template in the rule table.
type TaskSpec struct {
	Type           string   `yaml:"type"`
	Assignee       string   `yaml:"assignee,omitempty"`
	Priority       int      `yaml:"priority,omitempty"`
	EstimatedCost  float64  `yaml:"estimated_cost,omitempty"`
	TimeoutSeconds int      `yaml:"timeout_seconds,omitempty"`
	MaxRetries     int      `yaml:"max_retries,omitempty"`
	Inputs         []string `yaml:"inputs,omitempty"`
	LockScope      string   `yaml:"lock_scope,omitempty"`

	// Fallback is the cheaper variant substituted when the budget cannot
	// afford this task.
	Fallback *TaskSpec `yaml:"fallback,omitempty"`
}

// Lock scopes a task template may require.
const (
	LockScopeShot        = "shot"
	LockScopeShots       = "shots"
	LockScopeDNABank     = "dna_bank"
	LockScopeGlobalStyle = "global_style"
)

// validate rejects tables that would misfire at runtime.
func (t *RuleTable) validate() error {
	known := make(map[models.EventType]bool)
	for _, et := range models.AllEventTypes() {
		known[et] = true
	}
	for i, r := range t.Rules {
		if !known[models.EventType(r.Event)] {
			return fmt.Errorf("rule %d: unknown event type %q", i, r.Event)
		}
		if len(r.Tasks) == 0 {
			return fmt.Errorf("rule %d (%s): no tasks", i, r.Event)
		}
		if r.ForEach != "" && r.ItemKey == "" {
			return fmt.Errorf("rule %d (%s): for_each requires item_key", i, r.Event)
		}
		for j, ts := range r.Tasks {
			if err := validateSpec(ts); err != nil {
				return fmt.Errorf("rule %d (%s) task %d: %w", i, r.Event, j, err)
			}
		}
	}
	return nil
}

func validateSpec(ts TaskSpec) error {
	if ts.Type == "" {
		return fmt.Errorf("missing task type")
	}
	switch ts.LockScope {
	case "", LockScopeShot, LockScopeShots, LockScopeDNABank, LockScopeGlobalStyle:
	default:
		return fmt.Errorf("unknown lock scope %q", ts.LockScope)
	}
	if ts.Priority < 0 || ts.Priority > models.PriorityMax {
		return fmt.Errorf("priority %d out of range", ts.Priority)
	}
	if ts.Fallback != nil {
		return validateSpec(*ts.Fallback)
	}
	return nil
}

// parseRuleTable decodes and validates a YAML rule table.
func parseRuleTable(raw []byte) (*RuleTable, error) {
	var table RuleTable
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parse rule table: %w", err)
	}
	if err := table.validate(); err != nil {
		return nil, fmt.Errorf("invalid rule table: %w", err)
	}
	return &table, nil
}

// loadRuleTableFile reads a rule table from disk, for operator overrides
// of the built-in table.
func loadRuleTableFile(path string) (*RuleTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule table %s: %w", path, err)
	}
	return parseRuleTable(raw)
}
