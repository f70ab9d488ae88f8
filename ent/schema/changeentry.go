package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChangeEntry is the append-only full change history of project
// aggregates. The in-aggregate change_log keeps only the most recent 100
// entries; this table is unbounded (subject to retention sweeps).
type ChangeEntry struct {
	ent.Schema
}

// Fields of the ChangeEntry.
func (ChangeEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id"),
		field.Int64("version").
			Comment("Project version immediately after the described mutation"),
		field.String("actor"),
		field.String("change_type"),
		field.String("description"),
		field.String("path").
			Comment("JSON-pointer into the project aggregate"),
		field.String("causation_event_id").
			Optional(),
		field.Bytes("before").
			Optional().
			Comment("Bounded to 4 KB; larger diffs summarized"),
		field.Bytes("after").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ChangeEntry.
func (ChangeEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "version"),
		index.Fields("project_id", "created_at"),
	}
}
