package blackboard

import (
	"context"
	"fmt"
	"time"

	"github.com/clipforge/clipforge/ent/changeentry"
	"github.com/clipforge/clipforge/ent/project"
	"github.com/clipforge/clipforge/pkg/models"
)

// ExpiredProjectIDs returns terminal projects that completed before the
// cutoff. The retention sweeper trims their events and change history.
func (s *Service) ExpiredProjectIDs(ctx context.Context, cutoff time.Time) ([]string, error) {
	ids, err := s.db.Project.Query().
		Where(
			project.StatusIn(
				project.Status(models.ProjectDelivered),
				project.Status(models.ProjectAborted),
				project.Status(models.ProjectFailed),
			),
			project.CompletedAtLT(cutoff),
			project.DeletedAtIsNil(),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expired projects: %w", err)
	}
	return ids, nil
}

// PruneChangeEntries deletes change-history rows of the given projects
// older than the cutoff. The in-aggregate change log is untouched; it is
// already capped.
func (s *Service) PruneChangeEntries(ctx context.Context, projectIDs []string, cutoff time.Time) (int, error) {
	if len(projectIDs) == 0 {
		return 0, nil
	}
	n, err := s.db.ChangeEntry.Delete().
		Where(
			changeentry.ProjectIDIn(projectIDs...),
			changeentry.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune change entries: %w", err)
	}
	return n, nil
}
