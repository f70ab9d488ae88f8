// Code generated by ent, DO NOT EDIT.

package approvalrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the approvalrecord type in the database.
	Label = "approval_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "approval_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldContentSummary holds the string denoting the content_summary field in the database.
	FieldContentSummary = "content_summary"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldPriorStatus holds the string denoting the prior_status field in the database.
	FieldPriorStatus = "prior_status"
	// FieldTriggerEventID holds the string denoting the trigger_event_id field in the database.
	FieldTriggerEventID = "trigger_event_id"
	// FieldDeferredTasks holds the string denoting the deferred_tasks field in the database.
	FieldDeferredTasks = "deferred_tasks"
	// FieldReminderSent holds the string denoting the reminder_sent field in the database.
	FieldReminderSent = "reminder_sent"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldResolvedBy holds the string denoting the resolved_by field in the database.
	FieldResolvedBy = "resolved_by"
	// Table holds the table name of the approvalrecord in the database.
	Table = "approval_records"
)

// Columns holds all SQL columns for approvalrecord fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldStage,
	FieldStatus,
	FieldContentSummary,
	FieldNotes,
	FieldPriorStatus,
	FieldTriggerEventID,
	FieldDeferredTasks,
	FieldReminderSent,
	FieldCreatedAt,
	FieldResolvedAt,
	FieldResolvedBy,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultReminderSent holds the default value on creation for the "reminder_sent" field.
	DefaultReminderSent bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending           Status = "pending"
	StatusApproved          Status = "approved"
	StatusRevisionRequested Status = "revision_requested"
	StatusRejected          Status = "rejected"
	StatusTimeout           Status = "timeout"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRevisionRequested, StatusRejected, StatusTimeout:
		return nil
	default:
		return fmt.Errorf("approvalrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ApprovalRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByContentSummary orders the results by the content_summary field.
func ByContentSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentSummary, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByPriorStatus orders the results by the prior_status field.
func ByPriorStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorStatus, opts...).ToFunc()
}

// ByTriggerEventID orders the results by the trigger_event_id field.
func ByTriggerEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerEventID, opts...).ToFunc()
}

// ByReminderSent orders the results by the reminder_sent field.
func ByReminderSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReminderSent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByResolvedBy orders the results by the resolved_by field.
func ByResolvedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedBy, opts...).ToFunc()
}
