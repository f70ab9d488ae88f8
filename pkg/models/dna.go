package models

import "time"

// MergeStrategy selects how multiple embedding versions of an entity are
// combined into the effective visual identity.
type MergeStrategy string

// Merge strategies for DNA bank entries.
const (
	MergeWeightedAverage     MergeStrategy = "weighted_average"
	MergeLatestPriority      MergeStrategy = "latest_priority"
	MergeConfidenceThreshold MergeStrategy = "confidence_threshold"
	MergeManualSelection     MergeStrategy = "manual_selection"
)

// EmbeddingVersion is one versioned embedding of a character or scene.
type EmbeddingVersion struct {
	Version        int       `json:"version"`
	Weight         float64   `json:"weight"`     // in [0,1]; all weights sum to 1 after rebalance
	SourceArtifact string    `json:"source_artifact"`
	Confidence     float64   `json:"confidence"` // in [0,1]
	CreatedAt      time.Time `json:"created_at"`
	Vector         []byte    `json:"vector"`
}

// DNAEntry is the per-entity record in the DNA bank: the ordered embedding
// versions plus the strategy for aggregating them.
type DNAEntry struct {
	Versions      []EmbeddingVersion `json:"versions"`
	MergeStrategy MergeStrategy      `json:"merge_strategy"`
	Confidence    float64            `json:"confidence"`
}

// Rebalance normalizes version weights to sum to 1.0 and recomputes the
// aggregated confidence as the weight-averaged confidence. Entries with a
// zero weight sum fall back to uniform weights.
func (e *DNAEntry) Rebalance() {
	n := len(e.Versions)
	if n == 0 {
		e.Confidence = 0
		return
	}
	var sum float64
	for _, v := range e.Versions {
		sum += v.Weight
	}
	if sum <= 0 {
		uniform := 1.0 / float64(n)
		for i := range e.Versions {
			e.Versions[i].Weight = uniform
		}
		sum = 1.0
	} else {
		for i := range e.Versions {
			e.Versions[i].Weight /= sum
		}
	}
	var conf float64
	for _, v := range e.Versions {
		conf += v.Weight * v.Confidence
	}
	e.Confidence = conf
}

// Latest returns the highest-version embedding, or false if empty.
func (e *DNAEntry) Latest() (EmbeddingVersion, bool) {
	if len(e.Versions) == 0 {
		return EmbeddingVersion{}, false
	}
	best := e.Versions[0]
	for _, v := range e.Versions[1:] {
		if v.Version > best.Version {
			best = v
		}
	}
	return best, true
}
