package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ArtifactRecord is the artifacts-metadata table: provenance for every
// generated artifact URI. Blob contents live outside the core.
type ArtifactRecord struct {
	ent.Schema
}

// Fields of the ArtifactRecord.
func (ArtifactRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id"),
		field.String("uri").
			Unique(),
		field.Int64("seed"),
		field.String("model"),
		field.String("model_version"),
		field.Text("prompt"),
		field.Float("cost"),
		field.String("currency").
			Default("USD"),
		field.Int("use_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ArtifactRecord.
func (ArtifactRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("project_id", "created_at"),
	}
}
