// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/clipforge/clipforge/ent/approvalrecord"
	"github.com/clipforge/clipforge/ent/predicate"
	"github.com/clipforge/clipforge/pkg/models"
)

// ApprovalRecordUpdate is the builder for updating ApprovalRecord entities.
type ApprovalRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalRecordMutation
}

// Where appends a list predicates to the ApprovalRecordUpdate builder.
func (_u *ApprovalRecordUpdate) Where(ps ...predicate.ApprovalRecord) *ApprovalRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ApprovalRecordUpdate) SetProjectID(v string) *ApprovalRecordUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ApprovalRecordUpdate) SetNillableProjectID(v *string) *ApprovalRecordUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ApprovalRecordUpdate) SetStage(v string) *ApprovalRecordUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ApprovalRecordUpdate) SetNillableStage(v *string) *ApprovalRecordUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalRecordUpdate) SetStatus(v approvalrecord.Status) *ApprovalRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalRecordUpdate) SetNillableStatus(v *approvalrecord.Status) *ApprovalRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContentSummary sets the "content_summary" field.
func (_u *ApprovalRecordUpdate) SetContentSummary(v string) *ApprovalRecordUpdate {
	_u.mutation.SetContentSummary(v)
	return _u
}

// SetNillableContentSummary sets the "content_summary" field if the given value is not nil.
func (_u *ApprovalRecordUpdate) SetNillableContentSummary(v *string) *ApprovalRecordUpdate {
	if v != nil {
		_u.SetContentSummary(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ApprovalRecordUpdate) SetNotes(v string) *ApprovalRecordUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ApprovalRecordUpdate) SetNillableNotes(v *string) *ApprovalRecordUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ApprovalRecordUpdate) ClearNotes() *ApprovalRecordUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPriorStatus sets the "prior_status" field.
func (_u *ApprovalRecordUpdate) SetPriorStatus(v string) *ApprovalRecordUpdate {
	_u.mutation.SetPriorStatus(v)
	return _u
}

// SetNillablePriorStatus sets the "prior_status" field if the given value is not nil.
func (_u *ApprovalRecordUpdate) SetNillablePriorStatus(v *string) *ApprovalRecordUpdate {
	if v != nil {
		_u.SetPriorStatus(*v)
	}
	return _u
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (_u *ApprovalRecordUpdate) SetTriggerEventID(v string) *ApprovalRecordUpdate {
	_u.mutation.SetTriggerEventID(v)
	return _u
}

// SetNillableTriggerEventID sets the "trigger_event_id" field if the given value is not nil.
func (_u *ApprovalRecordUpdate) SetNillableTriggerEventID(v *string) *ApprovalRecordUpdate {
	if v != nil {
		_u.SetTriggerEventID(*v)
	}
	return _u
}

// SetDeferredTasks sets the "deferred_tasks" field.
func (_u *ApprovalRecordUpdate) SetDeferredTasks(v []models.Task) *ApprovalRecordUpdate {
	_u.mutation.SetDeferredTasks(v)
	return _u
}

// AppendDeferredTasks appends value to the "deferred_tasks" field.
func (_u *ApprovalRecordUpdate) AppendDeferredTasks(v []models.Task) *ApprovalRecordUpdate {
	_u.mutation.AppendDeferredTasks(v)
	return _u
}

// ClearDeferredTasks clears the value of the "deferred_tasks" field.
func (_u *ApprovalRecordUpdate) ClearDeferredTasks() *ApprovalRecordUpdate {
	_u.mutation.ClearDeferredTasks()
	return _u
}

// SetReminderSent sets the "reminder_sent" field.
func (_u *ApprovalRecordUpdate) SetReminderSent(v bool) *ApprovalRecordUpdate {
	_u.mutation.SetReminderSent(v)
	return _u
}

// SetNillableReminderSent sets the "reminder_sent" field if the given value is not nil.
func (_u *ApprovalRecordUpdate) SetNillableReminderSent(v *bool) *ApprovalRecordUpdate {
	if v != nil {
		_u.SetReminderSent(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ApprovalRecordUpdate) SetResolvedAt(v time.Time) *ApprovalRecordUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ApprovalRecordUpdate) SetNillableResolvedAt(v *time.Time) *ApprovalRecordUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ApprovalRecordUpdate) ClearResolvedAt() *ApprovalRecordUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *ApprovalRecordUpdate) SetResolvedBy(v string) *ApprovalRecordUpdate {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *ApprovalRecordUpdate) SetNillableResolvedBy(v *string) *ApprovalRecordUpdate {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *ApprovalRecordUpdate) ClearResolvedBy() *ApprovalRecordUpdate {
	_u.mutation.ClearResolvedBy()
	return _u
}

// Mutation returns the ApprovalRecordMutation object of the builder.
func (_u *ApprovalRecordUpdate) Mutation() *ApprovalRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approvalrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrecord.Table, approvalrecord.Columns, sqlgraph.NewFieldSpec(approvalrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(approvalrecord.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(approvalrecord.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentSummary(); ok {
		_spec.SetField(approvalrecord.FieldContentSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(approvalrecord.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(approvalrecord.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.PriorStatus(); ok {
		_spec.SetField(approvalrecord.FieldPriorStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerEventID(); ok {
		_spec.SetField(approvalrecord.FieldTriggerEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeferredTasks(); ok {
		_spec.SetField(approvalrecord.FieldDeferredTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeferredTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, approvalrecord.FieldDeferredTasks, value)
		})
	}
	if _u.mutation.DeferredTasksCleared() {
		_spec.ClearField(approvalrecord.FieldDeferredTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReminderSent(); ok {
		_spec.SetField(approvalrecord.FieldReminderSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(approvalrecord.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(approvalrecord.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(approvalrecord.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(approvalrecord.FieldResolvedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalRecordUpdateOne is the builder for updating a single ApprovalRecord entity.
type ApprovalRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalRecordMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ApprovalRecordUpdateOne) SetProjectID(v string) *ApprovalRecordUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ApprovalRecordUpdateOne) SetNillableProjectID(v *string) *ApprovalRecordUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ApprovalRecordUpdateOne) SetStage(v string) *ApprovalRecordUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ApprovalRecordUpdateOne) SetNillableStage(v *string) *ApprovalRecordUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalRecordUpdateOne) SetStatus(v approvalrecord.Status) *ApprovalRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalRecordUpdateOne) SetNillableStatus(v *approvalrecord.Status) *ApprovalRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContentSummary sets the "content_summary" field.
func (_u *ApprovalRecordUpdateOne) SetContentSummary(v string) *ApprovalRecordUpdateOne {
	_u.mutation.SetContentSummary(v)
	return _u
}

// SetNillableContentSummary sets the "content_summary" field if the given value is not nil.
func (_u *ApprovalRecordUpdateOne) SetNillableContentSummary(v *string) *ApprovalRecordUpdateOne {
	if v != nil {
		_u.SetContentSummary(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ApprovalRecordUpdateOne) SetNotes(v string) *ApprovalRecordUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ApprovalRecordUpdateOne) SetNillableNotes(v *string) *ApprovalRecordUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ApprovalRecordUpdateOne) ClearNotes() *ApprovalRecordUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPriorStatus sets the "prior_status" field.
func (_u *ApprovalRecordUpdateOne) SetPriorStatus(v string) *ApprovalRecordUpdateOne {
	_u.mutation.SetPriorStatus(v)
	return _u
}

// SetNillablePriorStatus sets the "prior_status" field if the given value is not nil.
func (_u *ApprovalRecordUpdateOne) SetNillablePriorStatus(v *string) *ApprovalRecordUpdateOne {
	if v != nil {
		_u.SetPriorStatus(*v)
	}
	return _u
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (_u *ApprovalRecordUpdateOne) SetTriggerEventID(v string) *ApprovalRecordUpdateOne {
	_u.mutation.SetTriggerEventID(v)
	return _u
}

// SetNillableTriggerEventID sets the "trigger_event_id" field if the given value is not nil.
func (_u *ApprovalRecordUpdateOne) SetNillableTriggerEventID(v *string) *ApprovalRecordUpdateOne {
	if v != nil {
		_u.SetTriggerEventID(*v)
	}
	return _u
}

// SetDeferredTasks sets the "deferred_tasks" field.
func (_u *ApprovalRecordUpdateOne) SetDeferredTasks(v []models.Task) *ApprovalRecordUpdateOne {
	_u.mutation.SetDeferredTasks(v)
	return _u
}

// AppendDeferredTasks appends value to the "deferred_tasks" field.
func (_u *ApprovalRecordUpdateOne) AppendDeferredTasks(v []models.Task) *ApprovalRecordUpdateOne {
	_u.mutation.AppendDeferredTasks(v)
	return _u
}

// ClearDeferredTasks clears the value of the "deferred_tasks" field.
func (_u *ApprovalRecordUpdateOne) ClearDeferredTasks() *ApprovalRecordUpdateOne {
	_u.mutation.ClearDeferredTasks()
	return _u
}

// SetReminderSent sets the "reminder_sent" field.
func (_u *ApprovalRecordUpdateOne) SetReminderSent(v bool) *ApprovalRecordUpdateOne {
	_u.mutation.SetReminderSent(v)
	return _u
}

// SetNillableReminderSent sets the "reminder_sent" field if the given value is not nil.
func (_u *ApprovalRecordUpdateOne) SetNillableReminderSent(v *bool) *ApprovalRecordUpdateOne {
	if v != nil {
		_u.SetReminderSent(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ApprovalRecordUpdateOne) SetResolvedAt(v time.Time) *ApprovalRecordUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ApprovalRecordUpdateOne) SetNillableResolvedAt(v *time.Time) *ApprovalRecordUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ApprovalRecordUpdateOne) ClearResolvedAt() *ApprovalRecordUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *ApprovalRecordUpdateOne) SetResolvedBy(v string) *ApprovalRecordUpdateOne {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *ApprovalRecordUpdateOne) SetNillableResolvedBy(v *string) *ApprovalRecordUpdateOne {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *ApprovalRecordUpdateOne) ClearResolvedBy() *ApprovalRecordUpdateOne {
	_u.mutation.ClearResolvedBy()
	return _u
}

// Mutation returns the ApprovalRecordMutation object of the builder.
func (_u *ApprovalRecordUpdateOne) Mutation() *ApprovalRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalRecordUpdate builder.
func (_u *ApprovalRecordUpdateOne) Where(ps ...predicate.ApprovalRecord) *ApprovalRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalRecordUpdateOne) Select(field string, fields ...string) *ApprovalRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalRecord entity.
func (_u *ApprovalRecordUpdateOne) Save(ctx context.Context) (*ApprovalRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRecordUpdateOne) SaveX(ctx context.Context) *ApprovalRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approvalrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalRecordUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrecord.Table, approvalrecord.Columns, sqlgraph.NewFieldSpec(approvalrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalrecord.FieldID)
		for _, f := range fields {
			if !approvalrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(approvalrecord.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(approvalrecord.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentSummary(); ok {
		_spec.SetField(approvalrecord.FieldContentSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(approvalrecord.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(approvalrecord.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.PriorStatus(); ok {
		_spec.SetField(approvalrecord.FieldPriorStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerEventID(); ok {
		_spec.SetField(approvalrecord.FieldTriggerEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeferredTasks(); ok {
		_spec.SetField(approvalrecord.FieldDeferredTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeferredTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, approvalrecord.FieldDeferredTasks, value)
		})
	}
	if _u.mutation.DeferredTasksCleared() {
		_spec.ClearField(approvalrecord.FieldDeferredTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReminderSent(); ok {
		_spec.SetField(approvalrecord.FieldReminderSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(approvalrecord.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(approvalrecord.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(approvalrecord.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(approvalrecord.FieldResolvedBy, field.TypeString)
	}
	_node = &ApprovalRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
