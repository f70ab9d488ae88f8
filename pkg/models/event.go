package models

import "time"

// EventType identifies what happened. One durable stream exists per type.
type EventType string

// Pipeline events published by workers and the orchestrator.
const (
	// External roots and project lifecycle.
	EventProjectCreated   EventType = "PROJECT_CREATED"
	EventProjectFinalized EventType = "PROJECT_FINALIZED"
	EventProjectAborted   EventType = "PROJECT_ABORTED"
	EventForceAbort       EventType = "FORCE_ABORT"

	// Script and planning.
	EventSceneWritten    EventType = "SCENE_WRITTEN"
	EventScriptRewritten EventType = "SCRIPT_REWRITTEN"
	EventShotPlanned     EventType = "SHOT_PLANNED"

	// Generation.
	EventImageGenerated    EventType = "IMAGE_GENERATED"
	EventPreviewVideoReady EventType = "PREVIEW_VIDEO_READY"
	EventFinalVideoReady   EventType = "FINAL_VIDEO_READY"
	EventMusicGenerated    EventType = "MUSIC_GENERATED"
	EventVoiceGenerated    EventType = "VOICE_GENERATED"
	EventAssemblyComplete  EventType = "ASSEMBLY_COMPLETE"

	// Consistency pipeline.
	EventFeaturesExtracted EventType = "FEATURES_EXTRACTED"
	EventDNABankUpdated    EventType = "DNA_BANK_UPDATED"
	EventPromptsAdjusted   EventType = "PROMPTS_ADJUSTED"
	EventPromptTuned       EventType = "PROMPT_TUNED"
	EventModelSwapped      EventType = "MODEL_SWAPPED"

	// Quality.
	EventQAReport      EventType = "QA_REPORT"
	EventVideoQAReport EventType = "VIDEO_QA_REPORT"
	EventAudioQAReport EventType = "AUDIO_QA_REPORT"
	EventShotApproved  EventType = "SHOT_APPROVED"
	EventShotFailed    EventType = "SHOT_FAILED"

	// Scheduling.
	EventTaskAssigned  EventType = "TASK_ASSIGNED"
	EventTaskCompleted EventType = "TASK_COMPLETED"
	EventTaskFailed    EventType = "TASK_FAILED"
	EventTaskCancelled EventType = "TASK_CANCELLED"

	// Budget and backpressure.
	EventCostOverrunWarning EventType = "COST_OVERRUN_WARNING"
	EventBudgetExhausted    EventType = "BUDGET_EXHAUSTED"
	EventQueuePressure      EventType = "QUEUE_PRESSURE"

	// Approvals and human gating.
	EventUserApprovalRequired   EventType = "USER_APPROVAL_REQUIRED"
	EventUserApproved           EventType = "USER_APPROVED"
	EventUserRevisionRequested  EventType = "USER_REVISION_REQUESTED"
	EventUserRejected           EventType = "USER_REJECTED"
	EventApprovalReminder       EventType = "APPROVAL_REMINDER"
	EventApprovalTimeout        EventType = "APPROVAL_TIMEOUT"
	EventHumanGateTriggered     EventType = "HUMAN_GATE_TRIGGERED"
	EventHumanDecisionRecorded  EventType = "HUMAN_DECISION_RECORDED"

	// Failures.
	EventErrorOccurred EventType = "ERROR_OCCURRED"
)

// AllEventTypes lists every event type; the orchestrator subscribes to the
// full set and the event store provisions one stream per entry.
func AllEventTypes() []EventType {
	return []EventType{
		EventProjectCreated, EventProjectFinalized, EventProjectAborted, EventForceAbort,
		EventSceneWritten, EventScriptRewritten, EventShotPlanned,
		EventImageGenerated, EventPreviewVideoReady, EventFinalVideoReady,
		EventMusicGenerated, EventVoiceGenerated, EventAssemblyComplete,
		EventFeaturesExtracted, EventDNABankUpdated, EventPromptsAdjusted,
		EventPromptTuned, EventModelSwapped,
		EventQAReport, EventVideoQAReport, EventAudioQAReport,
		EventShotApproved, EventShotFailed,
		EventTaskAssigned, EventTaskCompleted, EventTaskFailed, EventTaskCancelled,
		EventCostOverrunWarning, EventBudgetExhausted, EventQueuePressure,
		EventUserApprovalRequired, EventUserApproved, EventUserRevisionRequested,
		EventUserRejected, EventApprovalReminder, EventApprovalTimeout,
		EventHumanGateTriggered, EventHumanDecisionRecorded,
		EventErrorOccurred,
	}
}

// EventMetadata carries delivery and cost accounting for an event.
type EventMetadata struct {
	Cost       float64 `json:"cost,omitempty"`
	LatencyMS  int64   `json:"latency_ms,omitempty"`
	RetryCount int     `json:"retry_count,omitempty"`
}

// Event is one entry in the durable log. CausationID points at the event
// that directly triggered this one; external roots carry an empty
// causation id. The causation graph is a DAG reconstructed by id lookup.
type Event struct {
	ID                string         `json:"id"`
	ProjectID         string         `json:"project_id"`
	Type              EventType      `json:"type"`
	Actor             string         `json:"actor"`
	CausationID       string         `json:"causation_id,omitempty"`
	Timestamp         time.Time      `json:"timestamp"`
	Payload           map[string]any `json:"payload,omitempty"`
	BlackboardPointer string         `json:"blackboard_pointer,omitempty"`
	Metadata          EventMetadata  `json:"metadata"`
}

// PayloadString returns a string payload field, or "" when absent.
func (e *Event) PayloadString(key string) string {
	if e.Payload == nil {
		return ""
	}
	s, _ := e.Payload[key].(string)
	return s
}
