package blackboard

import (
	"context"
	"fmt"
	"time"

	"github.com/clipforge/clipforge/ent"
	"github.com/clipforge/clipforge/ent/artifactrecord"
	"github.com/clipforge/clipforge/pkg/locksvc"
	"github.com/clipforge/clipforge/pkg/models"
)

// GetShot returns a snapshot of one shot.
func (s *Service) GetShot(ctx context.Context, projectID, shotID string) (models.Shot, error) {
	st, err := s.GetProject(ctx, projectID)
	if err != nil {
		return models.Shot{}, err
	}
	shot, ok := st.Shots[shotID]
	if !ok {
		return models.Shot{}, fmt.Errorf("%w: %s in project %s", ErrShotNotFound, shotID, projectID)
	}
	return shot, nil
}

// GetDNABank returns a snapshot of the project's DNA bank.
func (s *Service) GetDNABank(ctx context.Context, projectID string) (map[string]models.DNAEntry, error) {
	st, err := s.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return st.DNABank, nil
}

// UpdateDNABank merges the given entries into the bank, rebalancing each
// entry's version weights. Requires the dna-bank lock.
func (s *Service) UpdateDNABank(ctx context.Context, projectID string, entries map[string]models.DNAEntry, meta WriteMeta) (*models.ProjectState, error) {
	return s.mutate(ctx, projectID, meta, mutation{
		changeType:  "DNA_BANK_UPDATED",
		path:        "/dna_bank",
		description: fmt.Sprintf("%d dna entries merged", len(entries)),
		lockKey:     locksvc.DNABankKey(projectID),
		apply: func(st *models.ProjectState) (any, any, error) {
			before := st.DNABank
			for entity, entry := range entries {
				entry.Rebalance()
				st.DNABank[entity] = entry
			}
			return before, st.DNABank, nil
		},
	})
}

// UpdateShot applies fn to one shot under the per-shot lock. fn receives
// a copy; the mutated copy is written back.
func (s *Service) UpdateShot(ctx context.Context, projectID, shotID string, fn func(*models.Shot) error, meta WriteMeta) (*models.ProjectState, error) {
	return s.mutate(ctx, projectID, meta, mutation{
		changeType:  "SHOT_UPDATED",
		path:        "/shots/" + shotID,
		description: "shot updated",
		lockKey:     locksvc.ShotKey(projectID, shotID),
		apply: func(st *models.ProjectState) (any, any, error) {
			shot, ok := st.Shots[shotID]
			if !ok {
				return nil, nil, fmt.Errorf("%w: %s in project %s", ErrShotNotFound, shotID, projectID)
			}
			before := shot
			if err := fn(&shot); err != nil {
				return nil, nil, err
			}
			if err := validateShotWrite(before, shot); err != nil {
				return nil, nil, err
			}
			st.Shots[shotID] = shot
			return before, shot, nil
		},
	})
}

// BatchUpdateShots applies fn to the whole shot collection under the
// shots-scope lock, used by planning and replanning to add or restructure
// shots in one version bump.
func (s *Service) BatchUpdateShots(ctx context.Context, projectID string, fn func(map[string]models.Shot) error, meta WriteMeta) (*models.ProjectState, error) {
	return s.mutate(ctx, projectID, meta, mutation{
		changeType:  "SHOTS_RESTRUCTURED",
		path:        "/shots",
		description: "shot collection updated",
		lockKey:     locksvc.ShotsCollectionKey(projectID),
		apply: func(st *models.ProjectState) (any, any, error) {
			before := st.Shots
			next := make(map[string]models.Shot, len(st.Shots))
			for id, shot := range st.Shots {
				next[id] = shot
			}
			if err := fn(next); err != nil {
				return nil, nil, err
			}
			for id, shot := range next {
				if shot.ID == "" {
					shot.ID = id
					next[id] = shot
				}
			}
			st.Shots = next
			return before, next, nil
		},
	})
}

// validateShotWrite enforces the shot invariants a write must not break.
func validateShotWrite(before, after models.Shot) error {
	if after.Status == models.ShotFinalRendered && after.FinalVideoURI == "" {
		return NewValidationError("shot.final_video_uri", "FINAL_RENDERED requires a final video uri")
	}
	if after.ID != before.ID {
		return NewValidationError("shot.id", "shot id is immutable")
	}
	return nil
}

// RegisterArtifact records provenance for a generated artifact: the
// aggregate's artifact index plus a row in the artifacts table, in one
// transaction.
func (s *Service) RegisterArtifact(ctx context.Context, projectID, uri string, artifact models.ArtifactMeta, meta WriteMeta) (*models.ProjectState, error) {
	if uri == "" {
		return nil, NewValidationError("artifact.uri", "must not be empty")
	}
	if artifact.CreatedAt.IsZero() {
		artifact.CreatedAt = time.Now().UTC()
	}
	return s.mutate(ctx, projectID, meta, mutation{
		changeType:  "ARTIFACT_REGISTERED",
		path:        "/artifact_index",
		description: "artifact " + uri,
		apply: func(st *models.ProjectState) (any, any, error) {
			if existing, ok := st.ArtifactIndex[uri]; ok {
				// Re-registration of a reused artifact bumps its use count.
				existing.UseCount++
				st.ArtifactIndex[uri] = existing
				return nil, existing, nil
			}
			artifact.UseCount = 1
			st.ArtifactIndex[uri] = artifact
			return nil, artifact, nil
		},
		extra: func(ctx context.Context, tx *ent.Tx, st *models.ProjectState) error {
			rec := st.ArtifactIndex[uri]
			err := tx.ArtifactRecord.Create().
				SetID(newChangeID()).
				SetProjectID(projectID).
				SetURI(uri).
				SetSeed(rec.Seed).
				SetModel(rec.Model).
				SetModelVersion(rec.ModelVersion).
				SetPrompt(rec.Prompt).
				SetCost(rec.Cost).
				SetUseCount(rec.UseCount).
				SetCreatedAt(rec.CreatedAt).
				OnConflictColumns(artifactrecord.FieldURI).
				UpdateUseCount().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("record artifact %s: %w", uri, err)
			}
			return nil
		},
	})
}
