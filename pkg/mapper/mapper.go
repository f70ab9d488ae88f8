// Package mapper turns pipeline events into task templates. The mapping
// lives in a YAML rule table so new stages ship without recompiling; the
// Map function itself is pure and holds no state beyond the table.
package mapper

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"github.com/clipforge/clipforge/pkg/locksvc"
	"github.com/clipforge/clipforge/pkg/models"
)

//go:embed rules.yaml
var defaultRules []byte

// TaskTemplate is an instantiated task before scheduling: the
// orchestrator assigns the id, fills dependencies, and enqueues.
type TaskTemplate struct {
	Type            models.TaskType
	Assignee        string
	Priority        int
	EstimatedCost   float64
	Timeout         time.Duration
	MaxRetries      int
	Input           map[string]any
	RequiredLockKey string

	// Fallback is the cheaper variant the budget gate substitutes when
	// the primary does not fit the remaining budget.
	Fallback *TaskTemplate
}

// Mapper maps events to task templates per its rule table. Safe for
// concurrent use; Reload swaps the table atomically.
type Mapper struct {
	mu    sync.RWMutex
	table *RuleTable
}

// New creates a mapper from the built-in rule table, overridden by the
// file at rulesPath when non-empty.
func New(rulesPath string) (*Mapper, error) {
	var (
		table *RuleTable
		err   error
	)
	if rulesPath != "" {
		table, err = loadRuleTableFile(rulesPath)
	} else {
		table, err = parseRuleTable(defaultRules)
	}
	if err != nil {
		return nil, err
	}
	return &Mapper{table: table}, nil
}

// Reload replaces the rule table from the given path. The old table
// stays in force if the new one fails validation.
func (m *Mapper) Reload(rulesPath string) error {
	table, err := loadRuleTableFile(rulesPath)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.table = table
	m.mu.Unlock()
	return nil
}

// Map returns the task templates the event gives rise to. st is the
// project snapshot for state-gated rules; rules without a state gate
// never read it, so nil is fine for events of stateless types.
func (m *Mapper) Map(ev *models.Event, st *models.ProjectState) ([]TaskTemplate, error) {
	m.mu.RLock()
	table := m.table
	m.mu.RUnlock()

	var out []TaskTemplate
	for _, rule := range table.Rules {
		if rule.Event != string(ev.Type) {
			continue
		}
		if !conditionsHold(rule.When, ev) {
			continue
		}
		if rule.AllShotsFinal && (st == nil || !st.AllShotsFinal()) {
			continue
		}
		if rule.UnlessTask != "" && st != nil && st.HasLiveTask(models.TaskType(rule.UnlessTask)) {
			continue
		}

		templates, err := m.instantiate(table, rule, ev)
		if err != nil {
			return nil, err
		}
		out = append(out, templates...)
	}
	return out, nil
}

// instantiate expands one matched rule, fanning out over the for_each
// list when configured.
func (m *Mapper) instantiate(table *RuleTable, rule Rule, ev *models.Event) ([]TaskTemplate, error) {
	if rule.ForEach == "" {
		var out []TaskTemplate
		for _, spec := range rule.Tasks {
			out = append(out, m.build(table, spec, ev, "", rule.ItemKey))
		}
		return out, nil
	}

	items, err := payloadList(ev, rule.ForEach)
	if err != nil {
		return nil, err
	}
	var out []TaskTemplate
	for _, item := range items {
		for _, spec := range rule.Tasks {
			out = append(out, m.build(table, spec, ev, item, rule.ItemKey))
		}
	}
	return out, nil
}

// build merges a task spec over its per-type defaults and binds the
// event payload into the task input.
func (m *Mapper) build(table *RuleTable, spec TaskSpec, ev *models.Event, item, itemKey string) TaskTemplate {
	merged := mergeSpec(table.Defaults[spec.Type], spec)

	input := map[string]any{}
	for _, key := range merged.Inputs {
		if v, ok := ev.Payload[key]; ok {
			input[key] = v
		}
	}
	if item != "" && itemKey != "" {
		input[itemKey] = item
	}

	tpl := TaskTemplate{
		Type:          models.TaskType(merged.Type),
		Assignee:      merged.Assignee,
		Priority:      merged.Priority,
		EstimatedCost: merged.EstimatedCost,
		Timeout:       time.Duration(merged.TimeoutSeconds) * time.Second,
		MaxRetries:    merged.MaxRetries,
		Input:         input,
	}
	if tpl.Priority == 0 {
		tpl.Priority = models.PriorityDefault
	}
	if tpl.MaxRetries == 0 {
		tpl.MaxRetries = models.DefaultMaxRetries
	}
	tpl.RequiredLockKey = lockKeyFor(merged.LockScope, ev, input, itemKey)

	if merged.Fallback != nil {
		fb := m.build(table, *merged.Fallback, ev, item, itemKey)
		tpl.Fallback = &fb
	}
	return tpl
}

// mergeSpec overlays a rule's spec on the per-type defaults.
func mergeSpec(def, spec TaskSpec) TaskSpec {
	out := def
	out.Type = spec.Type
	if spec.Assignee != "" {
		out.Assignee = spec.Assignee
	}
	if spec.Priority != 0 {
		out.Priority = spec.Priority
	}
	if spec.EstimatedCost != 0 {
		out.EstimatedCost = spec.EstimatedCost
	}
	if spec.TimeoutSeconds != 0 {
		out.TimeoutSeconds = spec.TimeoutSeconds
	}
	if spec.MaxRetries != 0 {
		out.MaxRetries = spec.MaxRetries
	}
	if len(spec.Inputs) != 0 {
		out.Inputs = spec.Inputs
	}
	if spec.LockScope != "" {
		out.LockScope = spec.LockScope
	}
	if spec.Fallback != nil {
		out.Fallback = spec.Fallback
	}
	return out
}

// lockKeyFor resolves a lock scope to the concrete lock key for this
// event. Shot-scoped tasks find their shot id in the bound input.
func lockKeyFor(scope string, ev *models.Event, input map[string]any, itemKey string) string {
	switch scope {
	case LockScopeShot:
		shotID, _ := input["shot_id"].(string)
		if shotID == "" && itemKey != "" {
			shotID, _ = input[itemKey].(string)
		}
		if shotID == "" {
			shotID = ev.PayloadString("shot_id")
		}
		if shotID == "" {
			return ""
		}
		return locksvc.ShotKey(ev.ProjectID, shotID)
	case LockScopeShots:
		return locksvc.ShotsCollectionKey(ev.ProjectID)
	case LockScopeDNABank:
		return locksvc.DNABankKey(ev.ProjectID)
	case LockScopeGlobalStyle:
		return locksvc.GlobalStyleKey(ev.ProjectID)
	}
	return ""
}

// conditionsHold evaluates a rule's payload predicates.
func conditionsHold(conds []Condition, ev *models.Event) bool {
	for _, c := range conds {
		v := ev.PayloadString(c.Field)
		if c.Equals != "" && v != c.Equals {
			return false
		}
		if c.NotEquals != "" && v == c.NotEquals {
			return false
		}
	}
	return true
}

// payloadList reads a payload field as a list of strings.
func payloadList(ev *models.Event, field string) ([]string, error) {
	raw, ok := ev.Payload[field]
	if !ok {
		return nil, fmt.Errorf("event %s payload missing %s", ev.ID, field)
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("event %s payload field %s holds non-string element", ev.ID, field)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("event %s payload field %s is not a list", ev.ID, field)
	}
}
