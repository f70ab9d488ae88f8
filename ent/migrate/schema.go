// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalRecordsColumns holds the columns for the "approval_records" table.
	ApprovalRecordsColumns = []*schema.Column{
		{Name: "approval_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "revision_requested", "rejected", "timeout"}, Default: "pending"},
		{Name: "content_summary", Type: field.TypeString, Size: 2147483647},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "prior_status", Type: field.TypeString},
		{Name: "trigger_event_id", Type: field.TypeString},
		{Name: "deferred_tasks", Type: field.TypeJSON, Nullable: true},
		{Name: "reminder_sent", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_by", Type: field.TypeString, Nullable: true},
	}
	// ApprovalRecordsTable holds the schema information for the "approval_records" table.
	ApprovalRecordsTable = &schema.Table{
		Name:       "approval_records",
		Columns:    ApprovalRecordsColumns,
		PrimaryKey: []*schema.Column{ApprovalRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approvalrecord_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRecordsColumns[1], ApprovalRecordsColumns[3]},
			},
			{
				Name:    "approvalrecord_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRecordsColumns[3], ApprovalRecordsColumns[10]},
			},
		},
	}
	// ArtifactRecordsColumns holds the columns for the "artifact_records" table.
	ArtifactRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "uri", Type: field.TypeString, Unique: true},
		{Name: "seed", Type: field.TypeInt64},
		{Name: "model", Type: field.TypeString},
		{Name: "model_version", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "cost", Type: field.TypeFloat64},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "use_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ArtifactRecordsTable holds the schema information for the "artifact_records" table.
	ArtifactRecordsTable = &schema.Table{
		Name:       "artifact_records",
		Columns:    ArtifactRecordsColumns,
		PrimaryKey: []*schema.Column{ArtifactRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "artifactrecord_project_id",
				Unique:  false,
				Columns: []*schema.Column{ArtifactRecordsColumns[1]},
			},
			{
				Name:    "artifactrecord_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ArtifactRecordsColumns[1], ArtifactRecordsColumns[10]},
			},
		},
	}
	// ChangeEntriesColumns holds the columns for the "change_entries" table.
	ChangeEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt64},
		{Name: "actor", Type: field.TypeString},
		{Name: "change_type", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "causation_event_id", Type: field.TypeString, Nullable: true},
		{Name: "before", Type: field.TypeBytes, Nullable: true},
		{Name: "after", Type: field.TypeBytes, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChangeEntriesTable holds the schema information for the "change_entries" table.
	ChangeEntriesTable = &schema.Table{
		Name:       "change_entries",
		Columns:    ChangeEntriesColumns,
		PrimaryKey: []*schema.Column{ChangeEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "changeentry_project_id_version",
				Unique:  false,
				Columns: []*schema.Column{ChangeEntriesColumns[1], ChangeEntriesColumns[2]},
			},
			{
				Name:    "changeentry_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChangeEntriesColumns[1], ChangeEntriesColumns[10]},
			},
		},
	}
	// LockMirrorsColumns holds the columns for the "lock_mirrors" table.
	LockMirrorsColumns = []*schema.Column{
		{Name: "lock_key", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "holder", Type: field.TypeString},
		{Name: "acquired_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// LockMirrorsTable holds the schema information for the "lock_mirrors" table.
	LockMirrorsTable = &schema.Table{
		Name:       "lock_mirrors",
		Columns:    LockMirrorsColumns,
		PrimaryKey: []*schema.Column{LockMirrorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lockmirror_project_id",
				Unique:  false,
				Columns: []*schema.Column{LockMirrorsColumns[1]},
			},
			{
				Name:    "lockmirror_expires_at",
				Unique:  false,
				Columns: []*schema.Column{LockMirrorsColumns[4]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "planning", "rendering", "qa", "editing", "approval_pending", "delivered", "aborted", "failed"}, Default: "created"},
		{Name: "spec", Type: field.TypeJSON},
		{Name: "budget", Type: field.TypeJSON},
		{Name: "dna_bank", Type: field.TypeJSON, Nullable: true},
		{Name: "shots", Type: field.TypeJSON, Nullable: true},
		{Name: "tasks", Type: field.TypeJSON, Nullable: true},
		{Name: "locks", Type: field.TypeJSON, Nullable: true},
		{Name: "artifact_index", Type: field.TypeJSON, Nullable: true},
		{Name: "error_log", Type: field.TypeJSON, Nullable: true},
		{Name: "change_log", Type: field.TypeJSON, Nullable: true},
		{Name: "approvals", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_status",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[2]},
			},
			{
				Name:    "project_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[2], ProjectsColumns[14]},
			},
			{
				Name:    "project_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[16]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalRecordsTable,
		ArtifactRecordsTable,
		ChangeEntriesTable,
		LockMirrorsTable,
		ProjectsTable,
	}
)

func init() {
}
