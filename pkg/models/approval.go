package models

import "time"

// ApprovalStatus is the lifecycle of a human approval request.
type ApprovalStatus string

// Approval states. PENDING transitions to exactly one of the others.
const (
	ApprovalPending           ApprovalStatus = "pending"
	ApprovalApproved          ApprovalStatus = "approved"
	ApprovalRevisionRequested ApprovalStatus = "revision_requested"
	ApprovalRejected          ApprovalStatus = "rejected"
	ApprovalTimedOut          ApprovalStatus = "timeout"
)

// ApprovalStatusValues lists every approval status for the ent enum.
func ApprovalStatusValues() []string {
	return []string{
		string(ApprovalPending),
		string(ApprovalApproved),
		string(ApprovalRevisionRequested),
		string(ApprovalRejected),
		string(ApprovalTimedOut),
	}
}

// ApprovalRequest pauses a project at a checkpoint until a human decides.
// The pause is persistent state: the system can restart while a project
// awaits approval and resume correctly. DeferredTasks are the downstream
// tasks withheld at the gate, enqueued verbatim on APPROVED.
type ApprovalRequest struct {
	ID               string         `json:"id"`
	ProjectID        string         `json:"project_id"`
	Stage            EventType      `json:"stage"` // the gated checkpoint event type
	Status           ApprovalStatus `json:"status"`
	ContentSummary   string         `json:"content_summary"`
	Notes            string         `json:"notes,omitempty"`
	PriorStatus      ProjectStatus  `json:"prior_status"`
	TriggerEventID   string         `json:"trigger_event_id"`
	DeferredTasks    []Task         `json:"deferred_tasks,omitempty"`
	ReminderSent     bool           `json:"reminder_sent"`
	CreatedAt        time.Time      `json:"created_at"`
	ResolvedAt       *time.Time     `json:"resolved_at,omitempty"`
	ResolvedBy       string         `json:"resolved_by,omitempty"`
}
