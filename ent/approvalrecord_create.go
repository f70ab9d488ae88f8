// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clipforge/clipforge/ent/approvalrecord"
	"github.com/clipforge/clipforge/pkg/models"
)

// ApprovalRecordCreate is the builder for creating a ApprovalRecord entity.
type ApprovalRecordCreate struct {
	config
	mutation *ApprovalRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *ApprovalRecordCreate) SetProjectID(v string) *ApprovalRecordCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *ApprovalRecordCreate) SetStage(v string) *ApprovalRecordCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApprovalRecordCreate) SetStatus(v approvalrecord.Status) *ApprovalRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApprovalRecordCreate) SetNillableStatus(v *approvalrecord.Status) *ApprovalRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetContentSummary sets the "content_summary" field.
func (_c *ApprovalRecordCreate) SetContentSummary(v string) *ApprovalRecordCreate {
	_c.mutation.SetContentSummary(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ApprovalRecordCreate) SetNotes(v string) *ApprovalRecordCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ApprovalRecordCreate) SetNillableNotes(v *string) *ApprovalRecordCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetPriorStatus sets the "prior_status" field.
func (_c *ApprovalRecordCreate) SetPriorStatus(v string) *ApprovalRecordCreate {
	_c.mutation.SetPriorStatus(v)
	return _c
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (_c *ApprovalRecordCreate) SetTriggerEventID(v string) *ApprovalRecordCreate {
	_c.mutation.SetTriggerEventID(v)
	return _c
}

// SetDeferredTasks sets the "deferred_tasks" field.
func (_c *ApprovalRecordCreate) SetDeferredTasks(v []models.Task) *ApprovalRecordCreate {
	_c.mutation.SetDeferredTasks(v)
	return _c
}

// SetReminderSent sets the "reminder_sent" field.
func (_c *ApprovalRecordCreate) SetReminderSent(v bool) *ApprovalRecordCreate {
	_c.mutation.SetReminderSent(v)
	return _c
}

// SetNillableReminderSent sets the "reminder_sent" field if the given value is not nil.
func (_c *ApprovalRecordCreate) SetNillableReminderSent(v *bool) *ApprovalRecordCreate {
	if v != nil {
		_c.SetReminderSent(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalRecordCreate) SetCreatedAt(v time.Time) *ApprovalRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalRecordCreate) SetNillableCreatedAt(v *time.Time) *ApprovalRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ApprovalRecordCreate) SetResolvedAt(v time.Time) *ApprovalRecordCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ApprovalRecordCreate) SetNillableResolvedAt(v *time.Time) *ApprovalRecordCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetResolvedBy sets the "resolved_by" field.
func (_c *ApprovalRecordCreate) SetResolvedBy(v string) *ApprovalRecordCreate {
	_c.mutation.SetResolvedBy(v)
	return _c
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_c *ApprovalRecordCreate) SetNillableResolvedBy(v *string) *ApprovalRecordCreate {
	if v != nil {
		_c.SetResolvedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalRecordCreate) SetID(v string) *ApprovalRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalRecordMutation object of the builder.
func (_c *ApprovalRecordCreate) Mutation() *ApprovalRecordMutation {
	return _c.mutation
}

// Save creates the ApprovalRecord in the database.
func (_c *ApprovalRecordCreate) Save(ctx context.Context) (*ApprovalRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalRecordCreate) SaveX(ctx context.Context) *ApprovalRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := approvalrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ReminderSent(); !ok {
		v := approvalrecord.DefaultReminderSent
		_c.mutation.SetReminderSent(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalRecordCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ApprovalRecord.project_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "ApprovalRecord.stage"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ApprovalRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := approvalrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentSummary(); !ok {
		return &ValidationError{Name: "content_summary", err: errors.New(`ent: missing required field "ApprovalRecord.content_summary"`)}
	}
	if _, ok := _c.mutation.PriorStatus(); !ok {
		return &ValidationError{Name: "prior_status", err: errors.New(`ent: missing required field "ApprovalRecord.prior_status"`)}
	}
	if _, ok := _c.mutation.TriggerEventID(); !ok {
		return &ValidationError{Name: "trigger_event_id", err: errors.New(`ent: missing required field "ApprovalRecord.trigger_event_id"`)}
	}
	if _, ok := _c.mutation.ReminderSent(); !ok {
		return &ValidationError{Name: "reminder_sent", err: errors.New(`ent: missing required field "ApprovalRecord.reminder_sent"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalRecord.created_at"`)}
	}
	return nil
}

func (_c *ApprovalRecordCreate) sqlSave(ctx context.Context) (*ApprovalRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ApprovalRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalRecordCreate) createSpec() (*ApprovalRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalrecord.Table, sqlgraph.NewFieldSpec(approvalrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(approvalrecord.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(approvalrecord.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(approvalrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ContentSummary(); ok {
		_spec.SetField(approvalrecord.FieldContentSummary, field.TypeString, value)
		_node.ContentSummary = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(approvalrecord.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.PriorStatus(); ok {
		_spec.SetField(approvalrecord.FieldPriorStatus, field.TypeString, value)
		_node.PriorStatus = value
	}
	if value, ok := _c.mutation.TriggerEventID(); ok {
		_spec.SetField(approvalrecord.FieldTriggerEventID, field.TypeString, value)
		_node.TriggerEventID = value
	}
	if value, ok := _c.mutation.DeferredTasks(); ok {
		_spec.SetField(approvalrecord.FieldDeferredTasks, field.TypeJSON, value)
		_node.DeferredTasks = value
	}
	if value, ok := _c.mutation.ReminderSent(); ok {
		_spec.SetField(approvalrecord.FieldReminderSent, field.TypeBool, value)
		_node.ReminderSent = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(approvalrecord.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.ResolvedBy(); ok {
		_spec.SetField(approvalrecord.FieldResolvedBy, field.TypeString, value)
		_node.ResolvedBy = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovalRecord.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalRecordUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalRecordCreate) OnConflict(opts ...sql.ConflictOption) *ApprovalRecordUpsertOne {
	_c.conflict = opts
	return &ApprovalRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovalRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalRecordCreate) OnConflictColumns(columns ...string) *ApprovalRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalRecordUpsertOne{
		create: _c,
	}
}

type (
	// ApprovalRecordUpsertOne is the builder for "upsert"-ing
	//  one ApprovalRecord node.
	ApprovalRecordUpsertOne struct {
		create *ApprovalRecordCreate
	}

	// ApprovalRecordUpsert is the "OnConflict" setter.
	ApprovalRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetProjectID sets the "project_id" field.
func (u *ApprovalRecordUpsert) SetProjectID(v string) *ApprovalRecordUpsert {
	u.Set(approvalrecord.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ApprovalRecordUpsert) UpdateProjectID() *ApprovalRecordUpsert {
	u.SetExcluded(approvalrecord.FieldProjectID)
	return u
}

// SetStage sets the "stage" field.
func (u *ApprovalRecordUpsert) SetStage(v string) *ApprovalRecordUpsert {
	u.Set(approvalrecord.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *ApprovalRecordUpsert) UpdateStage() *ApprovalRecordUpsert {
	u.SetExcluded(approvalrecord.FieldStage)
	return u
}

// SetStatus sets the "status" field.
func (u *ApprovalRecordUpsert) SetStatus(v approvalrecord.Status) *ApprovalRecordUpsert {
	u.Set(approvalrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalRecordUpsert) UpdateStatus() *ApprovalRecordUpsert {
	u.SetExcluded(approvalrecord.FieldStatus)
	return u
}

// SetContentSummary sets the "content_summary" field.
func (u *ApprovalRecordUpsert) SetContentSummary(v string) *ApprovalRecordUpsert {
	u.Set(approvalrecord.FieldContentSummary, v)
	return u
}

// UpdateContentSummary sets the "content_summary" field to the value that was provided on create.
func (u *ApprovalRecordUpsert) UpdateContentSummary() *ApprovalRecordUpsert {
	u.SetExcluded(approvalrecord.FieldContentSummary)
	return u
}

// SetNotes sets the "notes" field.
func (u *ApprovalRecordUpsert) SetNotes(v string) *ApprovalRecordUpsert {
	u.Set(approvalrecord.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ApprovalRecordUpsert) UpdateNotes() *ApprovalRecordUpsert {
	u.SetExcluded(approvalrecord.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *ApprovalRecordUpsert) ClearNotes() *ApprovalRecordUpsert {
	u.SetNull(approvalrecord.FieldNotes)
	return u
}

// SetPriorStatus sets the "prior_status" field.
func (u *ApprovalRecordUpsert) SetPriorStatus(v string) *ApprovalRecordUpsert {
	u.Set(approvalrecord.FieldPriorStatus, v)
	return u
}

// UpdatePriorStatus sets the "prior_status" field to the value that was provided on create.
func (u *ApprovalRecordUpsert) UpdatePriorStatus() *ApprovalRecordUpsert {
	u.SetExcluded(approvalrecord.FieldPriorStatus)
	return u
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (u *ApprovalRecordUpsert) SetTriggerEventID(v string) *ApprovalRecordUpsert {
	u.Set(approvalrecord.FieldTriggerEventID, v)
	return u
}

// UpdateTriggerEventID sets the "trigger_event_id" field to the value that was provided on create.
func (u *ApprovalRecordUpsert) UpdateTriggerEventID() *ApprovalRecordUpsert {
	u.SetExcluded(approvalrecord.FieldTriggerEventID)
	return u
}

// SetDeferredTasks sets the "deferred_tasks" field.
func (u *ApprovalRecordUpsert) SetDeferredTasks(v []models.Task) *ApprovalRecordUpsert {
	u.Set(approvalrecord.FieldDeferredTasks, v)
	return u
}

// UpdateDeferredTasks sets the "deferred_tasks" field to the value that was provided on create.
func (u *ApprovalRecordUpsert) UpdateDeferredTasks() *ApprovalRecordUpsert {
	u.SetExcluded(approvalrecord.FieldDeferredTasks)
	return u
}

// ClearDeferredTasks clears the value of the "deferred_tasks" field.
func (u *ApprovalRecordUpsert) ClearDeferredTasks() *ApprovalRecordUpsert {
	u.SetNull(approvalrecord.FieldDeferredTasks)
	return u
}

// SetReminderSent sets the "reminder_sent" field.
func (u *ApprovalRecordUpsert) SetReminderSent(v bool) *ApprovalRecordUpsert {
	u.Set(approvalrecord.FieldReminderSent, v)
	return u
}

// UpdateReminderSent sets the "reminder_sent" field to the value that was provided on create.
func (u *ApprovalRecordUpsert) UpdateReminderSent() *ApprovalRecordUpsert {
	u.SetExcluded(approvalrecord.FieldReminderSent)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ApprovalRecordUpsert) SetResolvedAt(v time.Time) *ApprovalRecordUpsert {
	u.Set(approvalrecord.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ApprovalRecordUpsert) UpdateResolvedAt() *ApprovalRecordUpsert {
	u.SetExcluded(approvalrecord.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ApprovalRecordUpsert) ClearResolvedAt() *ApprovalRecordUpsert {
	u.SetNull(approvalrecord.FieldResolvedAt)
	return u
}

// SetResolvedBy sets the "resolved_by" field.
func (u *ApprovalRecordUpsert) SetResolvedBy(v string) *ApprovalRecordUpsert {
	u.Set(approvalrecord.FieldResolvedBy, v)
	return u
}

// UpdateResolvedBy sets the "resolved_by" field to the value that was provided on create.
func (u *ApprovalRecordUpsert) UpdateResolvedBy() *ApprovalRecordUpsert {
	u.SetExcluded(approvalrecord.FieldResolvedBy)
	return u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (u *ApprovalRecordUpsert) ClearResolvedBy() *ApprovalRecordUpsert {
	u.SetNull(approvalrecord.FieldResolvedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ApprovalRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approvalrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalRecordUpsertOne) UpdateNewValues() *ApprovalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(approvalrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(approvalrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovalRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApprovalRecordUpsertOne) Ignore() *ApprovalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalRecordUpsertOne) DoNothing() *ApprovalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalRecordCreate.OnConflict
// documentation for more info.
func (u *ApprovalRecordUpsertOne) Update(set func(*ApprovalRecordUpsert)) *ApprovalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ApprovalRecordUpsertOne) SetProjectID(v string) *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ApprovalRecordUpsertOne) UpdateProjectID() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateProjectID()
	})
}

// SetStage sets the "stage" field.
func (u *ApprovalRecordUpsertOne) SetStage(v string) *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *ApprovalRecordUpsertOne) UpdateStage() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateStage()
	})
}

// SetStatus sets the "status" field.
func (u *ApprovalRecordUpsertOne) SetStatus(v approvalrecord.Status) *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalRecordUpsertOne) UpdateStatus() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetContentSummary sets the "content_summary" field.
func (u *ApprovalRecordUpsertOne) SetContentSummary(v string) *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetContentSummary(v)
	})
}

// UpdateContentSummary sets the "content_summary" field to the value that was provided on create.
func (u *ApprovalRecordUpsertOne) UpdateContentSummary() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateContentSummary()
	})
}

// SetNotes sets the "notes" field.
func (u *ApprovalRecordUpsertOne) SetNotes(v string) *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ApprovalRecordUpsertOne) UpdateNotes() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ApprovalRecordUpsertOne) ClearNotes() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.ClearNotes()
	})
}

// SetPriorStatus sets the "prior_status" field.
func (u *ApprovalRecordUpsertOne) SetPriorStatus(v string) *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetPriorStatus(v)
	})
}

// UpdatePriorStatus sets the "prior_status" field to the value that was provided on create.
func (u *ApprovalRecordUpsertOne) UpdatePriorStatus() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdatePriorStatus()
	})
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (u *ApprovalRecordUpsertOne) SetTriggerEventID(v string) *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetTriggerEventID(v)
	})
}

// UpdateTriggerEventID sets the "trigger_event_id" field to the value that was provided on create.
func (u *ApprovalRecordUpsertOne) UpdateTriggerEventID() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateTriggerEventID()
	})
}

// SetDeferredTasks sets the "deferred_tasks" field.
func (u *ApprovalRecordUpsertOne) SetDeferredTasks(v []models.Task) *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetDeferredTasks(v)
	})
}

// UpdateDeferredTasks sets the "deferred_tasks" field to the value that was provided on create.
func (u *ApprovalRecordUpsertOne) UpdateDeferredTasks() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateDeferredTasks()
	})
}

// ClearDeferredTasks clears the value of the "deferred_tasks" field.
func (u *ApprovalRecordUpsertOne) ClearDeferredTasks() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.ClearDeferredTasks()
	})
}

// SetReminderSent sets the "reminder_sent" field.
func (u *ApprovalRecordUpsertOne) SetReminderSent(v bool) *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetReminderSent(v)
	})
}

// UpdateReminderSent sets the "reminder_sent" field to the value that was provided on create.
func (u *ApprovalRecordUpsertOne) UpdateReminderSent() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateReminderSent()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ApprovalRecordUpsertOne) SetResolvedAt(v time.Time) *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ApprovalRecordUpsertOne) UpdateResolvedAt() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ApprovalRecordUpsertOne) ClearResolvedAt() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.ClearResolvedAt()
	})
}

// SetResolvedBy sets the "resolved_by" field.
func (u *ApprovalRecordUpsertOne) SetResolvedBy(v string) *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetResolvedBy(v)
	})
}

// UpdateResolvedBy sets the "resolved_by" field to the value that was provided on create.
func (u *ApprovalRecordUpsertOne) UpdateResolvedBy() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateResolvedBy()
	})
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (u *ApprovalRecordUpsertOne) ClearResolvedBy() *ApprovalRecordUpsertOne {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.ClearResolvedBy()
	})
}

// Exec executes the query.
func (u *ApprovalRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApprovalRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApprovalRecordUpsertOne.ID is not supported by MySQL driver. Use ApprovalRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApprovalRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApprovalRecordCreateBulk is the builder for creating many ApprovalRecord entities in bulk.
type ApprovalRecordCreateBulk struct {
	config
	err      error
	builders []*ApprovalRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the ApprovalRecord entities in the database.
func (_c *ApprovalRecordCreateBulk) Save(ctx context.Context) ([]*ApprovalRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ApprovalRecordCreateBulk) SaveX(ctx context.Context) []*ApprovalRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovalRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalRecordUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApprovalRecordUpsertBulk {
	_c.conflict = opts
	return &ApprovalRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovalRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalRecordCreateBulk) OnConflictColumns(columns ...string) *ApprovalRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalRecordUpsertBulk{
		create: _c,
	}
}

// ApprovalRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of ApprovalRecord nodes.
type ApprovalRecordUpsertBulk struct {
	create *ApprovalRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ApprovalRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approvalrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalRecordUpsertBulk) UpdateNewValues() *ApprovalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(approvalrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(approvalrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovalRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApprovalRecordUpsertBulk) Ignore() *ApprovalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalRecordUpsertBulk) DoNothing() *ApprovalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalRecordCreateBulk.OnConflict
// documentation for more info.
func (u *ApprovalRecordUpsertBulk) Update(set func(*ApprovalRecordUpsert)) *ApprovalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ApprovalRecordUpsertBulk) SetProjectID(v string) *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ApprovalRecordUpsertBulk) UpdateProjectID() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateProjectID()
	})
}

// SetStage sets the "stage" field.
func (u *ApprovalRecordUpsertBulk) SetStage(v string) *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *ApprovalRecordUpsertBulk) UpdateStage() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateStage()
	})
}

// SetStatus sets the "status" field.
func (u *ApprovalRecordUpsertBulk) SetStatus(v approvalrecord.Status) *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalRecordUpsertBulk) UpdateStatus() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetContentSummary sets the "content_summary" field.
func (u *ApprovalRecordUpsertBulk) SetContentSummary(v string) *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetContentSummary(v)
	})
}

// UpdateContentSummary sets the "content_summary" field to the value that was provided on create.
func (u *ApprovalRecordUpsertBulk) UpdateContentSummary() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateContentSummary()
	})
}

// SetNotes sets the "notes" field.
func (u *ApprovalRecordUpsertBulk) SetNotes(v string) *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ApprovalRecordUpsertBulk) UpdateNotes() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ApprovalRecordUpsertBulk) ClearNotes() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.ClearNotes()
	})
}

// SetPriorStatus sets the "prior_status" field.
func (u *ApprovalRecordUpsertBulk) SetPriorStatus(v string) *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetPriorStatus(v)
	})
}

// UpdatePriorStatus sets the "prior_status" field to the value that was provided on create.
func (u *ApprovalRecordUpsertBulk) UpdatePriorStatus() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdatePriorStatus()
	})
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (u *ApprovalRecordUpsertBulk) SetTriggerEventID(v string) *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetTriggerEventID(v)
	})
}

// UpdateTriggerEventID sets the "trigger_event_id" field to the value that was provided on create.
func (u *ApprovalRecordUpsertBulk) UpdateTriggerEventID() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateTriggerEventID()
	})
}

// SetDeferredTasks sets the "deferred_tasks" field.
func (u *ApprovalRecordUpsertBulk) SetDeferredTasks(v []models.Task) *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetDeferredTasks(v)
	})
}

// UpdateDeferredTasks sets the "deferred_tasks" field to the value that was provided on create.
func (u *ApprovalRecordUpsertBulk) UpdateDeferredTasks() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateDeferredTasks()
	})
}

// ClearDeferredTasks clears the value of the "deferred_tasks" field.
func (u *ApprovalRecordUpsertBulk) ClearDeferredTasks() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.ClearDeferredTasks()
	})
}

// SetReminderSent sets the "reminder_sent" field.
func (u *ApprovalRecordUpsertBulk) SetReminderSent(v bool) *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetReminderSent(v)
	})
}

// UpdateReminderSent sets the "reminder_sent" field to the value that was provided on create.
func (u *ApprovalRecordUpsertBulk) UpdateReminderSent() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateReminderSent()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ApprovalRecordUpsertBulk) SetResolvedAt(v time.Time) *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ApprovalRecordUpsertBulk) UpdateResolvedAt() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ApprovalRecordUpsertBulk) ClearResolvedAt() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.ClearResolvedAt()
	})
}

// SetResolvedBy sets the "resolved_by" field.
func (u *ApprovalRecordUpsertBulk) SetResolvedBy(v string) *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.SetResolvedBy(v)
	})
}

// UpdateResolvedBy sets the "resolved_by" field to the value that was provided on create.
func (u *ApprovalRecordUpsertBulk) UpdateResolvedBy() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.UpdateResolvedBy()
	})
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (u *ApprovalRecordUpsertBulk) ClearResolvedBy() *ApprovalRecordUpsertBulk {
	return u.Update(func(s *ApprovalRecordUpsert) {
		s.ClearResolvedBy()
	})
}

// Exec executes the query.
func (u *ApprovalRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApprovalRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
