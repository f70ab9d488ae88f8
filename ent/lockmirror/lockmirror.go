// Code generated by ent, DO NOT EDIT.

package lockmirror

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lockmirror type in the database.
	Label = "lock_mirror"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "lock_key"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldHolder holds the string denoting the holder field in the database.
	FieldHolder = "holder"
	// FieldAcquiredAt holds the string denoting the acquired_at field in the database.
	FieldAcquiredAt = "acquired_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the lockmirror in the database.
	Table = "lock_mirrors"
)

// Columns holds all SQL columns for lockmirror fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldHolder,
	FieldAcquiredAt,
	FieldExpiresAt,
	FieldMetadata,
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

// OrderOption defines the ordering options for the LockMirror queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByHolder orders the results by the holder field.
func ByHolder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHolder, opts...).ToFunc()
}

// ByAcquiredAt orders the results by the acquired_at field.
func ByAcquiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcquiredAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
