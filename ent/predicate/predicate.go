// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApprovalRecord is the predicate function for approvalrecord builders.
type ApprovalRecord func(*sql.Selector)

// ArtifactRecord is the predicate function for artifactrecord builders.
type ArtifactRecord func(*sql.Selector)

// ChangeEntry is the predicate function for changeentry builders.
type ChangeEntry func(*sql.Selector)

// LockMirror is the predicate function for lockmirror builders.
type LockMirror func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)
