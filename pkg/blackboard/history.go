package blackboard

import (
	"context"
	"fmt"

	"github.com/clipforge/clipforge/ent"
	"github.com/clipforge/clipforge/ent/changeentry"
	"github.com/clipforge/clipforge/pkg/models"
)

// ChangeHistory returns change entries for a project from the full
// history table, version ascending. sinceVersion of 0 starts at the
// beginning; limit of 0 means no limit. The in-aggregate change_log is
// a convenience window over the same data; queries against history go
// here explicitly.
func (s *Service) ChangeHistory(ctx context.Context, projectID string, sinceVersion int64, limit int) ([]models.ChangeEntry, error) {
	q := s.db.ChangeEntry.Query().
		Where(changeentry.ProjectIDEQ(projectID)).
		Order(ent.Asc(changeentry.FieldVersion))
	if sinceVersion > 0 {
		q = q.Where(changeentry.VersionGTE(sinceVersion))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("change history of %s: %w", projectID, err)
	}

	out := make([]models.ChangeEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.ChangeEntry{
			Version:          r.Version,
			Timestamp:        r.CreatedAt,
			Actor:            r.Actor,
			ChangeType:       r.ChangeType,
			Description:      r.Description,
			Path:             r.Path,
			CausationEventID: r.CausationEventID,
			Before:           r.Before,
			After:            r.After,
		})
	}
	return out, nil
}
