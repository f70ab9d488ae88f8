package models

// QualityTier selects the generation cost/quality tradeoff for a project.
type QualityTier string

// Quality tiers, highest cost first.
const (
	QualityHigh     QualityTier = "high"
	QualityBalanced QualityTier = "balanced"
	QualityFast     QualityTier = "fast"
)

// GlobalSpec is the immutable-ish creative brief for a project. Mutations
// require the global-style lock because prompt adjustments read it
// concurrently from several workers.
type GlobalSpec struct {
	Title           string      `json:"title"`
	DurationSeconds int         `json:"duration_seconds"`
	AspectRatio     string      `json:"aspect_ratio"`
	QualityTier     QualityTier `json:"quality_tier"`
	Resolution      string      `json:"resolution"`
	FPS             int         `json:"fps"`
	Style           StyleSpec   `json:"style"`
	Characters      []string    `json:"characters"`
	MoodTag         string      `json:"mood_tag"`
	UserOptions     UserOptions `json:"user_options"`
}

// StyleSpec captures the visual identity shared by all shots.
type StyleSpec struct {
	Tone             string   `json:"tone"`
	Palette          []string `json:"palette"` // ordered hex colors
	VisualDNAVersion int      `json:"visual_dna_version"`
}

// UserOptions holds per-project operator preferences.
type UserOptions struct {
	AutoMode               bool        `json:"auto_mode"`
	ApprovalCheckpoints    []EventType `json:"approval_checkpoints"`
	ApprovalTimeoutMinutes int         `json:"approval_timeout_minutes"`
	AudioPreference        string      `json:"audio_preference"`
}

// CheckpointEnabled reports whether the given event type is a configured
// approval checkpoint. Auto mode bypasses all checkpoints.
func (o UserOptions) CheckpointEnabled(t EventType) bool {
	if o.AutoMode {
		return false
	}
	for _, cp := range o.ApprovalCheckpoints {
		if cp == t {
			return true
		}
	}
	return false
}

// DefaultApprovalCheckpoints is the checkpoint set applied when a project
// is created without an explicit list and auto mode is off.
func DefaultApprovalCheckpoints() []EventType {
	return []EventType{
		EventSceneWritten,
		EventShotPlanned,
		EventPreviewVideoReady,
		EventFinalVideoReady,
	}
}
