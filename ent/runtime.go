// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/clipforge/clipforge/ent/approvalrecord"
	"github.com/clipforge/clipforge/ent/artifactrecord"
	"github.com/clipforge/clipforge/ent/changeentry"
	"github.com/clipforge/clipforge/ent/project"
	"github.com/clipforge/clipforge/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvalrecordFields := schema.ApprovalRecord{}.Fields()
	_ = approvalrecordFields
	// approvalrecordDescReminderSent is the schema descriptor for reminder_sent field.
	approvalrecordDescReminderSent := approvalrecordFields[9].Descriptor()
	// approvalrecord.DefaultReminderSent holds the default value on creation for the reminder_sent field.
	approvalrecord.DefaultReminderSent = approvalrecordDescReminderSent.Default.(bool)
	// approvalrecordDescCreatedAt is the schema descriptor for created_at field.
	approvalrecordDescCreatedAt := approvalrecordFields[10].Descriptor()
	// approvalrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalrecord.DefaultCreatedAt = approvalrecordDescCreatedAt.Default.(func() time.Time)
	artifactrecordFields := schema.ArtifactRecord{}.Fields()
	_ = artifactrecordFields
	// artifactrecordDescCurrency is the schema descriptor for currency field.
	artifactrecordDescCurrency := artifactrecordFields[8].Descriptor()
	// artifactrecord.DefaultCurrency holds the default value on creation for the currency field.
	artifactrecord.DefaultCurrency = artifactrecordDescCurrency.Default.(string)
	// artifactrecordDescUseCount is the schema descriptor for use_count field.
	artifactrecordDescUseCount := artifactrecordFields[9].Descriptor()
	// artifactrecord.DefaultUseCount holds the default value on creation for the use_count field.
	artifactrecord.DefaultUseCount = artifactrecordDescUseCount.Default.(int)
	// artifactrecordDescCreatedAt is the schema descriptor for created_at field.
	artifactrecordDescCreatedAt := artifactrecordFields[10].Descriptor()
	// artifactrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifactrecord.DefaultCreatedAt = artifactrecordDescCreatedAt.Default.(func() time.Time)
	changeentryFields := schema.ChangeEntry{}.Fields()
	_ = changeentryFields
	// changeentryDescCreatedAt is the schema descriptor for created_at field.
	changeentryDescCreatedAt := changeentryFields[10].Descriptor()
	// changeentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	changeentry.DefaultCreatedAt = changeentryDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescVersion is the schema descriptor for version field.
	projectDescVersion := projectFields[1].Descriptor()
	// project.DefaultVersion holds the default value on creation for the version field.
	project.DefaultVersion = projectDescVersion.Default.(int64)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[13].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[14].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
}
