// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clipforge/clipforge/ent/approvalrecord"
	"github.com/clipforge/clipforge/pkg/models"
)

// ApprovalRecord is the model entity for the ApprovalRecord schema.
type ApprovalRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Checkpoint event type that triggered the gate
	Stage string `json:"stage,omitempty"`
	// Status holds the value of the "status" field.
	Status approvalrecord.Status `json:"status,omitempty"`
	// ContentSummary holds the value of the "content_summary" field.
	ContentSummary string `json:"content_summary,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// Project status to restore on approval
	PriorStatus string `json:"prior_status,omitempty"`
	// TriggerEventID holds the value of the "trigger_event_id" field.
	TriggerEventID string `json:"trigger_event_id,omitempty"`
	// DeferredTasks holds the value of the "deferred_tasks" field.
	DeferredTasks []models.Task `json:"deferred_tasks,omitempty"`
	// ReminderSent holds the value of the "reminder_sent" field.
	ReminderSent bool `json:"reminder_sent,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// ResolvedBy holds the value of the "resolved_by" field.
	ResolvedBy   string `json:"resolved_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovalRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvalrecord.FieldDeferredTasks:
			values[i] = new([]byte)
		case approvalrecord.FieldReminderSent:
			values[i] = new(sql.NullBool)
		case approvalrecord.FieldID, approvalrecord.FieldProjectID, approvalrecord.FieldStage, approvalrecord.FieldStatus, approvalrecord.FieldContentSummary, approvalrecord.FieldNotes, approvalrecord.FieldPriorStatus, approvalrecord.FieldTriggerEventID, approvalrecord.FieldResolvedBy:
			values[i] = new(sql.NullString)
		case approvalrecord.FieldCreatedAt, approvalrecord.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovalRecord fields.
func (_m *ApprovalRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvalrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approvalrecord.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case approvalrecord.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case approvalrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = approvalrecord.Status(value.String)
			}
		case approvalrecord.FieldContentSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_summary", values[i])
			} else if value.Valid {
				_m.ContentSummary = value.String
			}
		case approvalrecord.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case approvalrecord.FieldPriorStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prior_status", values[i])
			} else if value.Valid {
				_m.PriorStatus = value.String
			}
		case approvalrecord.FieldTriggerEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_event_id", values[i])
			} else if value.Valid {
				_m.TriggerEventID = value.String
			}
		case approvalrecord.FieldDeferredTasks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field deferred_tasks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DeferredTasks); err != nil {
					return fmt.Errorf("unmarshal field deferred_tasks: %w", err)
				}
			}
		case approvalrecord.FieldReminderSent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reminder_sent", values[i])
			} else if value.Valid {
				_m.ReminderSent = value.Bool
			}
		case approvalrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case approvalrecord.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case approvalrecord.FieldResolvedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_by", values[i])
			} else if value.Valid {
				_m.ResolvedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovalRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovalRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ApprovalRecord.
// Note that you need to call ApprovalRecord.Unwrap() before calling this method if this ApprovalRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovalRecord) Update() *ApprovalRecordUpdateOne {
	return NewApprovalRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovalRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovalRecord) Unwrap() *ApprovalRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovalRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovalRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovalRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("content_summary=")
	builder.WriteString(_m.ContentSummary)
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("prior_status=")
	builder.WriteString(_m.PriorStatus)
	builder.WriteString(", ")
	builder.WriteString("trigger_event_id=")
	builder.WriteString(_m.TriggerEventID)
	builder.WriteString(", ")
	builder.WriteString("deferred_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeferredTasks))
	builder.WriteString(", ")
	builder.WriteString("reminder_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReminderSent))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("resolved_by=")
	builder.WriteString(_m.ResolvedBy)
	builder.WriteByte(')')
	return builder.String()
}

// ApprovalRecords is a parsable slice of ApprovalRecord.
type ApprovalRecords []*ApprovalRecord
