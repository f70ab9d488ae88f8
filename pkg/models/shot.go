package models

// ShotStatus is the per-shot generation lifecycle.
type ShotStatus string

// Shot lifecycle states, in forward order.
const (
	ShotInit              ShotStatus = "init"
	ShotKeyframeGenerated ShotStatus = "keyframe_generated"
	ShotPreviewReady      ShotStatus = "preview_ready"
	ShotQAPassed          ShotStatus = "qa_passed"
	ShotApproved          ShotStatus = "approved"
	ShotFinalRendered     ShotStatus = "final_rendered"
	ShotFailed            ShotStatus = "failed"
)

// AudioStrategy selects how a shot's soundtrack is produced.
type AudioStrategy string

// Audio strategies.
const (
	AudioModelEmbedded       AudioStrategy = "model_embedded"
	AudioExternalFull        AudioStrategy = "external_full"
	AudioHybridOverlay       AudioStrategy = "hybrid_overlay"
	AudioExternalFullReplace AudioStrategy = "external_full_replace"
)

// HybridOverlayGain is the fixed gain applied to external BGM when mixed
// over model-embedded audio. Not currently operator-configurable.
const HybridOverlayGain = 0.3

// VoiceLine is one spoken line inside a shot script.
type VoiceLine struct {
	Speaker string  `json:"speaker"`
	Text    string  `json:"text"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
}

// ShotScript is the written content of a shot.
type ShotScript struct {
	Description string      `json:"description"`
	MoodTags    []string    `json:"mood_tags"`
	VoiceLines  []VoiceLine `json:"voice_lines"`
}

// CameraSpec describes framing and motion for a shot.
type CameraSpec struct {
	Type     string `json:"type"`
	Movement string `json:"movement"`
}

// Keyframes holds the optional anchor artifacts for a shot.
type Keyframes struct {
	Start *string `json:"start,omitempty"`
	Mid   *string `json:"mid,omitempty"`
	End   *string `json:"end,omitempty"`
}

// ShotAudio is the audio configuration and produced artifacts for a shot.
type ShotAudio struct {
	Strategy AudioStrategy `json:"strategy"`
	MusicURI string        `json:"music_uri,omitempty"`
	VoiceURI string        `json:"voice_uri,omitempty"`
}

// QAVerdict is the outcome of a QA pass over a generated artifact.
type QAVerdict string

// QA verdicts.
const (
	QAPass QAVerdict = "pass"
	QAWarn QAVerdict = "warn"
	QAFail QAVerdict = "fail"
)

// QAResults stores per-metric scores against the thresholds in force when
// the check ran.
type QAResults struct {
	Status     QAVerdict          `json:"status"`
	Scores     map[string]float64 `json:"scores"`
	Thresholds map[string]float64 `json:"thresholds"`
}

// Shot is one independently generated and QA'd segment of the final video.
type Shot struct {
	ID              string         `json:"id"`
	Index           int            `json:"index"`
	Status          ShotStatus     `json:"status"`
	DurationSeconds float64        `json:"duration_seconds"`
	Dependencies    []string       `json:"dependencies"` // shot ids rendered before this one
	Script          ShotScript     `json:"script"`
	Camera          CameraSpec     `json:"camera"`
	Keyframes       Keyframes      `json:"keyframes"`
	PreviewVideoURI string         `json:"preview_video_uri,omitempty"`
	FinalVideoURI   string         `json:"final_video_uri,omitempty"`
	Audio           ShotAudio      `json:"audio"`
	QA              QAResults      `json:"qa"`
	RenderMeta      map[string]any `json:"render_meta,omitempty"`
}
