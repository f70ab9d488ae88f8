// Package models defines the domain types shared across the coordination
// core: the project aggregate, shots, tasks, events, budget, and the DNA
// bank used for visual consistency.
package models

import "time"

// ProjectStatus is the lifecycle state of a project aggregate.
type ProjectStatus string

// Project lifecycle states. DELIVERED and ABORTED are terminal; FAILED is
// terminal unless an admin force-retries the failing task.
const (
	ProjectCreated         ProjectStatus = "created"
	ProjectPlanning        ProjectStatus = "planning"
	ProjectRendering       ProjectStatus = "rendering"
	ProjectQA              ProjectStatus = "qa"
	ProjectEditing         ProjectStatus = "editing"
	ProjectApprovalPending ProjectStatus = "approval_pending"
	ProjectDelivered       ProjectStatus = "delivered"
	ProjectAborted         ProjectStatus = "aborted"
	ProjectFailed          ProjectStatus = "failed"
)

// Terminal reports whether no further tasks may be scheduled for the project.
func (s ProjectStatus) Terminal() bool {
	return s == ProjectDelivered || s == ProjectAborted || s == ProjectFailed
}

// ProjectStatusValues lists every project status, in lifecycle order.
// Used by the ent schema enum definition.
func ProjectStatusValues() []string {
	return []string{
		string(ProjectCreated),
		string(ProjectPlanning),
		string(ProjectRendering),
		string(ProjectQA),
		string(ProjectEditing),
		string(ProjectApprovalPending),
		string(ProjectDelivered),
		string(ProjectAborted),
		string(ProjectFailed),
	}
}

// ProjectState is the full materialized view of a project aggregate as
// stored in the projects row. Workers receive read-only snapshots of this
// type; all mutation goes through the blackboard's partial-update RPCs.
type ProjectState struct {
	ID      string        `json:"id"`
	Version int64         `json:"version"`
	Status  ProjectStatus `json:"status"`

	Spec          GlobalSpec                 `json:"spec"`
	Budget        Budget                     `json:"budget"`
	DNABank       map[string]DNAEntry        `json:"dna_bank"`
	Shots         map[string]Shot            `json:"shots"`
	Tasks         map[string]Task            `json:"tasks"`
	Locks         map[string]LockInfo        `json:"locks"`
	ArtifactIndex map[string]ArtifactMeta    `json:"artifact_index"`
	ErrorLog      []ErrorEntry               `json:"error_log"`
	ChangeLog     []ChangeEntry              `json:"change_log"`
	Approvals     map[string]ApprovalRequest `json:"approvals"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Task returns the task with the given id, if present.
func (p *ProjectState) Task(id string) (Task, bool) {
	t, ok := p.Tasks[id]
	return t, ok
}

// DependenciesCompleted reports whether every dependency of the task is
// COMPLETED in this snapshot. A dependency missing from the aggregate
// counts as not completed: such a task must never start.
func (p *ProjectState) DependenciesCompleted(t Task) bool {
	for _, dep := range t.DependsOn {
		d, ok := p.Tasks[dep]
		if !ok || d.Status != TaskCompleted {
			return false
		}
	}
	return true
}

// HasLiveTask reports whether any task of the given type exists that has
// not failed or been cancelled. Catch-up scheduling uses this to avoid
// duplicating work already done or underway.
func (p *ProjectState) HasLiveTask(tt TaskType) bool {
	for _, t := range p.Tasks {
		if t.Type == tt && t.Status != TaskFailed && t.Status != TaskCancelled {
			return true
		}
	}
	return false
}

// AllShotsFinal reports whether every shot has reached FINAL_RENDERED.
// Returns false for projects with no shots planned yet.
func (p *ProjectState) AllShotsFinal() bool {
	if len(p.Shots) == 0 {
		return false
	}
	for _, s := range p.Shots {
		if s.Status != ShotFinalRendered {
			return false
		}
	}
	return true
}

// LockInfo is the advisory in-aggregate mirror of a distributed lock.
// The lock service owns the authoritative state; this exists for
// observability only.
type LockInfo struct {
	Holder     string            `json:"holder"`
	AcquiredAt time.Time         `json:"acquired_at"`
	ExpiresAt  time.Time         `json:"expires_at"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// ArtifactMeta records provenance for a generated artifact. Contents live
// in blob storage; the core tracks only references and reproduction inputs.
type ArtifactMeta struct {
	Seed         int64     `json:"seed"`
	Model        string    `json:"model"`
	ModelVersion string    `json:"model_version"`
	Prompt       string    `json:"prompt"`
	Cost         float64   `json:"cost"`
	CreatedAt    time.Time `json:"created_at"`
	UseCount     int       `json:"use_count"`
}

// ErrorEntry is one record in the project's append-only error log.
type ErrorEntry struct {
	ID               string    `json:"id"`
	Timestamp        time.Time `json:"timestamp"`
	Severity         string    `json:"severity"`
	Source           string    `json:"source"`
	Message          string    `json:"message"`
	RecoveryAttempts int       `json:"recovery_attempts"`
	Resolution       string    `json:"resolution,omitempty"`
}

// ChangeEntry describes one mutation of the project aggregate. The
// aggregate keeps the most recent ChangeLogCap entries inline; the full
// history lives in the change_entries table.
type ChangeEntry struct {
	Version          int64     `json:"version"`
	Timestamp        time.Time `json:"timestamp"`
	Actor            string    `json:"actor"`
	ChangeType       string    `json:"change_type"`
	Description      string    `json:"description"`
	Path             string    `json:"path"`
	CausationEventID string    `json:"causation_event_id,omitempty"`
	Before           []byte    `json:"before,omitempty"`
	After            []byte    `json:"after,omitempty"`
}

// ChangeLogCap is the number of change entries retained inside the
// aggregate. Older entries remain queryable from the change_entries table.
const ChangeLogCap = 100

// SnapshotByteCap bounds the before/after snapshots in a change entry.
// Larger diffs are summarized instead of stored verbatim.
const SnapshotByteCap = 4096
