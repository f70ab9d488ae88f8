package blackboard

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/clipforge/clipforge/pkg/models"
)

// addCostSQL folds a cost increment into the budget JSON in a single
// UPDATE: spent, the per-category breakdown, and the remaining estimate
// all move together under the version predicate, so concurrent cost
// reports from parallel workers serialize without a read-modify-write.
const addCostSQL = `
UPDATE projects
SET budget = jsonb_set(
        jsonb_set(
            jsonb_set(
                budget,
                '{spent,amount}',
                to_jsonb((budget#>>'{spent,amount}')::double precision + $1)
            ),
            ARRAY['breakdown', $2],
            jsonb_build_object(
                'amount', COALESCE((budget#>>ARRAY['breakdown', $2, 'amount'])::double precision, 0) + $1,
                'currency', budget#>>'{total,currency}'
            ),
            true
        ),
        '{estimated_remaining,amount}',
        to_jsonb(GREATEST(
            (budget#>>'{total,amount}')::double precision
                - ((budget#>>'{spent,amount}')::double precision + $1),
            0
        ))
    ),
    version = version + 1,
    updated_at = $3
WHERE project_id = $4
  AND deleted_at IS NULL
  AND ($5::bigint = 0 OR version = $5::bigint)
RETURNING version, budget`

// appendChangeLogSQL appends one change entry to the in-aggregate log,
// evicting the oldest entry at the cap.
const appendChangeLogSQL = `
UPDATE projects
SET change_log = (
        CASE WHEN jsonb_array_length(COALESCE(change_log, '[]'::jsonb)) >= $3::int
             THEN COALESCE(change_log, '[]'::jsonb) - 0
             ELSE COALESCE(change_log, '[]'::jsonb)
        END
    ) || $1::jsonb
WHERE project_id = $2`

const insertChangeEntrySQL = `
INSERT INTO change_entries
    (id, project_id, version, actor, change_type, description, path,
     causation_event_id, before, after, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

// AddCost atomically adds a spend to the budget under the given
// category. Returns the budget and version after the write. Negative
// amounts are rejected; refunds go through UpdateBudget with an audit
// trail.
func (s *Service) AddCost(ctx context.Context, projectID, category string, amount float64, meta WriteMeta) (models.Budget, int64, error) {
	if amount < 0 {
		return models.Budget{}, 0, NewValidationError("cost.amount", "must not be negative")
	}
	if category == "" {
		category = "uncategorized"
	}

	tx, err := s.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return models.Budget{}, 0, fmt.Errorf("begin cost tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	var (
		newVersion int64
		budgetRaw  []byte
	)
	err = tx.QueryRowContext(ctx, addCostSQL,
		amount, category, now, projectID, meta.ExpectedVersion).
		Scan(&newVersion, &budgetRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Budget{}, 0, s.classifyCostMiss(ctx, projectID, meta.ExpectedVersion)
	}
	if err != nil {
		return models.Budget{}, 0, fmt.Errorf("add cost to %s: %w", projectID, err)
	}

	var budget models.Budget
	if err := json.Unmarshal(budgetRaw, &budget); err != nil {
		return models.Budget{}, 0, fmt.Errorf("decode budget of %s: %w", projectID, err)
	}

	entry := models.ChangeEntry{
		Version:          newVersion,
		Timestamp:        now,
		Actor:            meta.Actor,
		ChangeType:       "COST_ADDED",
		Description:      fmt.Sprintf("%.6f added to %s", amount, category),
		Path:             "/budget",
		CausationEventID: meta.CausationEventID,
	}
	entryRaw, err := json.Marshal(entry)
	if err != nil {
		return models.Budget{}, 0, fmt.Errorf("encode change entry: %w", err)
	}
	if _, err := tx.ExecContext(ctx, appendChangeLogSQL, entryRaw, projectID, models.ChangeLogCap); err != nil {
		return models.Budget{}, 0, fmt.Errorf("append change log for %s: %w", projectID, err)
	}
	if _, err := tx.ExecContext(ctx, insertChangeEntrySQL,
		newChangeID(), projectID, newVersion, meta.Actor, entry.ChangeType,
		entry.Description, entry.Path, meta.CausationEventID, nil, nil, now); err != nil {
		return models.Budget{}, 0, fmt.Errorf("record cost change for %s: %w", projectID, err)
	}

	if err := tx.Commit(); err != nil {
		return models.Budget{}, 0, fmt.Errorf("commit cost for %s: %w", projectID, err)
	}

	s.cache.Invalidate(ctx, projectID)
	return budget, newVersion, nil
}

// classifyCostMiss turns an unmatched cost UPDATE into the right error:
// missing project or version conflict.
func (s *Service) classifyCostMiss(ctx context.Context, projectID string, expected int64) error {
	var current int64
	err := s.db.DB().QueryRowContext(ctx,
		`SELECT version FROM projects WHERE project_id = $1 AND deleted_at IS NULL`,
		projectID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}
	if err != nil {
		return fmt.Errorf("inspect project %s: %w", projectID, err)
	}
	return fmt.Errorf("%w: project %s at version %d, cost write expected %d",
		ErrVersionConflict, projectID, current, expected)
}

// GetBudget returns the current budget snapshot.
func (s *Service) GetBudget(ctx context.Context, projectID string) (models.Budget, error) {
	st, err := s.GetProject(ctx, projectID)
	if err != nil {
		return models.Budget{}, err
	}
	return st.Budget, nil
}
