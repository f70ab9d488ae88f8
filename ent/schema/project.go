package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/clipforge/clipforge/pkg/models"
)

// Project holds the schema definition for the project aggregate: one row
// per pipeline run, scalar columns for hot fields and JSON columns for the
// flexible aggregate parts. The version column backs optimistic
// concurrency; every write bumps it by one.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.Int64("version").
			Default(1).
			Comment("Monotonic per-project version, bumped on every write"),
		field.Enum("status").
			Values(models.ProjectStatusValues()...).
			Default(string(models.ProjectCreated)),
		field.JSON("spec", models.GlobalSpec{}),
		field.JSON("budget", models.Budget{}),
		field.JSON("dna_bank", map[string]models.DNAEntry{}).
			Optional(),
		field.JSON("shots", map[string]models.Shot{}).
			Optional(),
		field.JSON("tasks", map[string]models.Task{}).
			Optional(),
		field.JSON("locks", map[string]models.LockInfo{}).
			Optional().
			Comment("Advisory mirror of the lock service, observability only"),
		field.JSON("artifact_index", map[string]models.ArtifactMeta{}).
			Optional(),
		field.JSON("error_log", []models.ErrorEntry{}).
			Optional(),
		field.JSON("change_log", []models.ChangeEntry{}).
			Optional().
			Comment("Most recent 100 entries; full history in change_entries"),
		field.JSON("approvals", map[string]models.ApprovalRequest{}).
			Optional().
			Comment("Pending approval requests keyed by approval id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "updated_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
