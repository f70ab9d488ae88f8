// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clipforge/clipforge/ent/project"
	"github.com/clipforge/clipforge/pkg/models"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Monotonic per-project version, bumped on every write
	Version int64 `json:"version,omitempty"`
	// Status holds the value of the "status" field.
	Status project.Status `json:"status,omitempty"`
	// Spec holds the value of the "spec" field.
	Spec models.GlobalSpec `json:"spec,omitempty"`
	// Budget holds the value of the "budget" field.
	Budget models.Budget `json:"budget,omitempty"`
	// DnaBank holds the value of the "dna_bank" field.
	DnaBank map[string]models.DNAEntry `json:"dna_bank,omitempty"`
	// Shots holds the value of the "shots" field.
	Shots map[string]models.Shot `json:"shots,omitempty"`
	// Tasks holds the value of the "tasks" field.
	Tasks map[string]models.Task `json:"tasks,omitempty"`
	// Advisory mirror of the lock service, observability only
	Locks map[string]models.LockInfo `json:"locks,omitempty"`
	// ArtifactIndex holds the value of the "artifact_index" field.
	ArtifactIndex map[string]models.ArtifactMeta `json:"artifact_index,omitempty"`
	// ErrorLog holds the value of the "error_log" field.
	ErrorLog []models.ErrorEntry `json:"error_log,omitempty"`
	// Most recent 100 entries; full history in change_entries
	ChangeLog []models.ChangeEntry `json:"change_log,omitempty"`
	// Pending approval requests keyed by approval id
	Approvals map[string]models.ApprovalRequest `json:"approvals,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldSpec, project.FieldBudget, project.FieldDnaBank, project.FieldShots, project.FieldTasks, project.FieldLocks, project.FieldArtifactIndex, project.FieldErrorLog, project.FieldChangeLog, project.FieldApprovals:
			values[i] = new([]byte)
		case project.FieldVersion:
			values[i] = new(sql.NullInt64)
		case project.FieldID, project.FieldStatus:
			values[i] = new(sql.NullString)
		case project.FieldCreatedAt, project.FieldUpdatedAt, project.FieldCompletedAt, project.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case project.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case project.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = project.Status(value.String)
			}
		case project.FieldSpec:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field spec", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Spec); err != nil {
					return fmt.Errorf("unmarshal field spec: %w", err)
				}
			}
		case project.FieldBudget:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field budget", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Budget); err != nil {
					return fmt.Errorf("unmarshal field budget: %w", err)
				}
			}
		case project.FieldDnaBank:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dna_bank", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DnaBank); err != nil {
					return fmt.Errorf("unmarshal field dna_bank: %w", err)
				}
			}
		case project.FieldShots:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field shots", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Shots); err != nil {
					return fmt.Errorf("unmarshal field shots: %w", err)
				}
			}
		case project.FieldTasks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tasks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tasks); err != nil {
					return fmt.Errorf("unmarshal field tasks: %w", err)
				}
			}
		case project.FieldLocks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field locks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Locks); err != nil {
					return fmt.Errorf("unmarshal field locks: %w", err)
				}
			}
		case project.FieldArtifactIndex:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_index", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ArtifactIndex); err != nil {
					return fmt.Errorf("unmarshal field artifact_index: %w", err)
				}
			}
		case project.FieldErrorLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field error_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ErrorLog); err != nil {
					return fmt.Errorf("unmarshal field error_log: %w", err)
				}
			}
		case project.FieldChangeLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field change_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChangeLog); err != nil {
					return fmt.Errorf("unmarshal field change_log: %w", err)
				}
			}
		case project.FieldApprovals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field approvals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Approvals); err != nil {
					return fmt.Errorf("unmarshal field approvals: %w", err)
				}
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case project.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case project.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case project.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("spec=")
	builder.WriteString(fmt.Sprintf("%v", _m.Spec))
	builder.WriteString(", ")
	builder.WriteString("budget=")
	builder.WriteString(fmt.Sprintf("%v", _m.Budget))
	builder.WriteString(", ")
	builder.WriteString("dna_bank=")
	builder.WriteString(fmt.Sprintf("%v", _m.DnaBank))
	builder.WriteString(", ")
	builder.WriteString("shots=")
	builder.WriteString(fmt.Sprintf("%v", _m.Shots))
	builder.WriteString(", ")
	builder.WriteString("tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tasks))
	builder.WriteString(", ")
	builder.WriteString("locks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Locks))
	builder.WriteString(", ")
	builder.WriteString("artifact_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArtifactIndex))
	builder.WriteString(", ")
	builder.WriteString("error_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorLog))
	builder.WriteString(", ")
	builder.WriteString("change_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChangeLog))
	builder.WriteString(", ")
	builder.WriteString("approvals=")
	builder.WriteString(fmt.Sprintf("%v", _m.Approvals))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
