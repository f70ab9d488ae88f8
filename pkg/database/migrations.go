package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates GIN indexes on the JSONB aggregate columns.
// These make numeric JSON-path predicates (budget checks, task status
// scans) efficient without promoting the fields to real columns.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_projects_tasks_gin
		ON projects USING gin (tasks jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create tasks GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_projects_budget_gin
		ON projects USING gin (budget jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create budget GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_projects_shots_gin
		ON projects USING gin (shots jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create shots GIN index: %w", err)
	}

	return nil
}
