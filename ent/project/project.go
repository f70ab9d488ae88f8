// Code generated by ent, DO NOT EDIT.

package project

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the project type in the database.
	Label = "project"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "project_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSpec holds the string denoting the spec field in the database.
	FieldSpec = "spec"
	// FieldBudget holds the string denoting the budget field in the database.
	FieldBudget = "budget"
	// FieldDnaBank holds the string denoting the dna_bank field in the database.
	FieldDnaBank = "dna_bank"
	// FieldShots holds the string denoting the shots field in the database.
	FieldShots = "shots"
	// FieldTasks holds the string denoting the tasks field in the database.
	FieldTasks = "tasks"
	// FieldLocks holds the string denoting the locks field in the database.
	FieldLocks = "locks"
	// FieldArtifactIndex holds the string denoting the artifact_index field in the database.
	FieldArtifactIndex = "artifact_index"
	// FieldErrorLog holds the string denoting the error_log field in the database.
	FieldErrorLog = "error_log"
	// FieldChangeLog holds the string denoting the change_log field in the database.
	FieldChangeLog = "change_log"
	// FieldApprovals holds the string denoting the approvals field in the database.
	FieldApprovals = "approvals"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// Table holds the table name of the project in the database.
	Table = "projects"
)

// Columns holds all SQL columns for project fields.
var Columns = []string{
	FieldID,
	FieldVersion,
	FieldStatus,
	FieldSpec,
	FieldBudget,
	FieldDnaBank,
	FieldShots,
	FieldTasks,
	FieldLocks,
	FieldArtifactIndex,
	FieldErrorLog,
	FieldChangeLog,
	FieldApprovals,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
	FieldDeletedAt,
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
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusCreated is the default value of the Status enum.
const DefaultStatus = StatusCreated

// Status values.
const (
	StatusCreated         Status = "created"
	StatusPlanning        Status = "planning"
	StatusRendering       Status = "rendering"
	StatusQa              Status = "qa"
	StatusEditing         Status = "editing"
	StatusApprovalPending Status = "approval_pending"
	StatusDelivered       Status = "delivered"
	StatusAborted         Status = "aborted"
	StatusFailed          Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCreated, StatusPlanning, StatusRendering, StatusQa, StatusEditing, StatusApprovalPending, StatusDelivered, StatusAborted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("project: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Project queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}
