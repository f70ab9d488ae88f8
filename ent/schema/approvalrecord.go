package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/clipforge/clipforge/pkg/models"
)

// ApprovalRecord is the append-only approvals history. Pending requests
// live in the project aggregate; every request is also written here and
// updated in place when resolved, so resolved approvals remain queryable
// after they leave the aggregate.
type ApprovalRecord struct {
	ent.Schema
}

// Fields of the ApprovalRecord.
func (ApprovalRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("approval_id").
			Unique().
			Immutable(),
		field.String("project_id"),
		field.String("stage").
			Comment("Checkpoint event type that triggered the gate"),
		field.Enum("status").
			Values(models.ApprovalStatusValues()...).
			Default(string(models.ApprovalPending)),
		field.Text("content_summary"),
		field.Text("notes").
			Optional(),
		field.String("prior_status").
			Comment("Project status to restore on approval"),
		field.String("trigger_event_id"),
		field.JSON("deferred_tasks", []models.Task{}).
			Optional(),
		field.Bool("reminder_sent").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.String("resolved_by").
			Optional(),
	}
}

// Indexes of the ApprovalRecord.
func (ApprovalRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status"),
		index.Fields("status", "created_at"),
	}
}
