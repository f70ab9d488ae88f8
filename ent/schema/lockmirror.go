package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LockMirror is the distributed-locks mirror table. Redis owns the
// authoritative lock state; rows here are best-effort upserts written on
// acquire and release for observability and post-mortem audit.
type LockMirror struct {
	ent.Schema
}

// Fields of the LockMirror.
func (LockMirror) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lock_key").
			Unique().
			Immutable(),
		field.String("project_id"),
		field.String("holder"),
		field.Time("acquired_at"),
		field.Time("expires_at"),
		field.JSON("metadata", map[string]string{}).
			Optional(),
	}
}

// Indexes of the LockMirror.
func (LockMirror) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("expires_at"),
	}
}
