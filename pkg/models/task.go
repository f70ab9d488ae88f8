package models

import "time"

// TaskType identifies the kind of work a task carries. New types are added
// here and in the mapper's rule table; the scheduler never switches on them.
type TaskType string

// Task types dispatched to worker agents.
const (
	TaskWriteScript          TaskType = "WRITE_SCRIPT"
	TaskRewriteScript        TaskType = "REWRITE_SCRIPT"
	TaskPlanShots            TaskType = "PLAN_SHOTS"
	TaskReplanShots          TaskType = "REPLAN_SHOTS"
	TaskGenerateKeyframe     TaskType = "GENERATE_KEYFRAME"
	TaskGeneratePreviewVideo TaskType = "GENERATE_PREVIEW_VIDEO"
	TaskGenerateFinalVideo   TaskType = "GENERATE_FINAL_VIDEO"
	TaskGenerateMotionStill  TaskType = "GENERATE_MOTION_STILL"
	TaskGenerateMusic        TaskType = "GENERATE_MUSIC"
	TaskGenerateVoice        TaskType = "GENERATE_VOICE"
	TaskRunVisualQA          TaskType = "RUN_VISUAL_QA"
	TaskRunVideoQA           TaskType = "RUN_VIDEO_QA"
	TaskRunAudioQA           TaskType = "RUN_AUDIO_QA"
	TaskExtractFeatures      TaskType = "EXTRACT_FEATURES"
	TaskUpdateDNABank        TaskType = "UPDATE_DNA_BANK"
	TaskAdjustPrompts        TaskType = "ADJUST_PROMPTS"
	TaskAssembleFinal        TaskType = "ASSEMBLE_FINAL"
	TaskPromptTuning         TaskType = "PROMPT_TUNING"
	TaskModelSwapRetry       TaskType = "MODEL_SWAP_RETRY"
	TaskHumanReviewRequired  TaskType = "HUMAN_REVIEW_REQUIRED"
)

// TaskStatus is the scheduling state of a task.
type TaskStatus string

// Task states. Tasks are never deleted; terminal states are retained for
// audit.
const (
	TaskPending         TaskStatus = "pending"
	TaskReady           TaskStatus = "ready"
	TaskInProgress      TaskStatus = "in_progress"
	TaskCompleted       TaskStatus = "completed"
	TaskFailed          TaskStatus = "failed"
	TaskCancelled       TaskStatus = "cancelled"
	TaskWaitingApproval TaskStatus = "waiting_approval"
)

// Failure reasons recorded on FAILED tasks.
const (
	FailureBudgetExhausted = "BUDGET_EXHAUSTED"
	FailureTimeout         = "TIMEOUT"
	FailureRetriesExceeded = "RETRIES_EXCEEDED"
	FailureValidation      = "VALIDATION"
)

// Priority bounds: 1 lowest, 5 highest.
const (
	PriorityMin     = 1
	PriorityMax     = 5
	PriorityDefault = 3
)

// DefaultMaxRetries applies when a task template does not override it.
const DefaultMaxRetries = 3

// Task is one unit of work assigned to a specific agent.
type Task struct {
	ID               string         `json:"id"`
	Type             TaskType       `json:"type"`
	Status           TaskStatus     `json:"status"`
	Assignee         string         `json:"assignee"`
	Priority         int            `json:"priority"`
	DependsOn        []string       `json:"depends_on,omitempty"`
	Input            map[string]any `json:"input,omitempty"`
	Output           map[string]any `json:"output,omitempty"`
	RetryCount       int            `json:"retry_count"`
	MaxRetries       int            `json:"max_retries"`
	CreatedAt        time.Time      `json:"created_at"`
	StartedAt        *time.Time     `json:"started_at,omitempty"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	EstimatedCost    float64        `json:"estimated_cost"`
	ActualCost       float64        `json:"actual_cost"`
	CausationEventID string         `json:"causation_event_id"`
	RequiredLockKey  string         `json:"required_lock_key,omitempty"`
	FailureReason    string         `json:"failure_reason,omitempty"`
}

// Queueable reports whether the task belongs in the ready queue.
func (t Task) Queueable() bool {
	return t.Status == TaskPending || t.Status == TaskReady
}

// CanRetry reports whether the task has retry budget left.
func (t Task) CanRetry() bool {
	return t.RetryCount < t.MaxRetries
}

// TaskFilter selects tasks in list queries. Zero fields match everything.
type TaskFilter struct {
	Status   TaskStatus
	Type     TaskType
	Assignee string
}

// Matches reports whether the task satisfies the filter.
func (f TaskFilter) Matches(t Task) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Assignee != "" && t.Assignee != f.Assignee {
		return false
	}
	return true
}
