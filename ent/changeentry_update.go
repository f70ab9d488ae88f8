// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clipforge/clipforge/ent/changeentry"
	"github.com/clipforge/clipforge/ent/predicate"
)

// ChangeEntryUpdate is the builder for updating ChangeEntry entities.
type ChangeEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ChangeEntryMutation
}

// Where appends a list predicates to the ChangeEntryUpdate builder.
func (_u *ChangeEntryUpdate) Where(ps ...predicate.ChangeEntry) *ChangeEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ChangeEntryUpdate) SetProjectID(v string) *ChangeEntryUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ChangeEntryUpdate) SetNillableProjectID(v *string) *ChangeEntryUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ChangeEntryUpdate) SetVersion(v int64) *ChangeEntryUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ChangeEntryUpdate) SetNillableVersion(v *int64) *ChangeEntryUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ChangeEntryUpdate) AddVersion(v int64) *ChangeEntryUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetActor sets the "actor" field.
func (_u *ChangeEntryUpdate) SetActor(v string) *ChangeEntryUpdate {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *ChangeEntryUpdate) SetNillableActor(v *string) *ChangeEntryUpdate {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetChangeType sets the "change_type" field.
func (_u *ChangeEntryUpdate) SetChangeType(v string) *ChangeEntryUpdate {
	_u.mutation.SetChangeType(v)
	return _u
}

// SetNillableChangeType sets the "change_type" field if the given value is not nil.
func (_u *ChangeEntryUpdate) SetNillableChangeType(v *string) *ChangeEntryUpdate {
	if v != nil {
		_u.SetChangeType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ChangeEntryUpdate) SetDescription(v string) *ChangeEntryUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ChangeEntryUpdate) SetNillableDescription(v *string) *ChangeEntryUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *ChangeEntryUpdate) SetPath(v string) *ChangeEntryUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *ChangeEntryUpdate) SetNillablePath(v *string) *ChangeEntryUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetCausationEventID sets the "causation_event_id" field.
func (_u *ChangeEntryUpdate) SetCausationEventID(v string) *ChangeEntryUpdate {
	_u.mutation.SetCausationEventID(v)
	return _u
}

// SetNillableCausationEventID sets the "causation_event_id" field if the given value is not nil.
func (_u *ChangeEntryUpdate) SetNillableCausationEventID(v *string) *ChangeEntryUpdate {
	if v != nil {
		_u.SetCausationEventID(*v)
	}
	return _u
}

// ClearCausationEventID clears the value of the "causation_event_id" field.
func (_u *ChangeEntryUpdate) ClearCausationEventID() *ChangeEntryUpdate {
	_u.mutation.ClearCausationEventID()
	return _u
}

// SetBefore sets the "before" field.
func (_u *ChangeEntryUpdate) SetBefore(v []byte) *ChangeEntryUpdate {
	_u.mutation.SetBefore(v)
	return _u
}

// ClearBefore clears the value of the "before" field.
func (_u *ChangeEntryUpdate) ClearBefore() *ChangeEntryUpdate {
	_u.mutation.ClearBefore()
	return _u
}

// SetAfter sets the "after" field.
func (_u *ChangeEntryUpdate) SetAfter(v []byte) *ChangeEntryUpdate {
	_u.mutation.SetAfter(v)
	return _u
}

// ClearAfter clears the value of the "after" field.
func (_u *ChangeEntryUpdate) ClearAfter() *ChangeEntryUpdate {
	_u.mutation.ClearAfter()
	return _u
}

// Mutation returns the ChangeEntryMutation object of the builder.
func (_u *ChangeEntryUpdate) Mutation() *ChangeEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChangeEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangeEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChangeEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangeEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChangeEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(changeentry.Table, changeentry.Columns, sqlgraph.NewFieldSpec(changeentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(changeentry.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(changeentry.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(changeentry.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(changeentry.FieldActor, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChangeType(); ok {
		_spec.SetField(changeentry.FieldChangeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(changeentry.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(changeentry.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.CausationEventID(); ok {
		_spec.SetField(changeentry.FieldCausationEventID, field.TypeString, value)
	}
	if _u.mutation.CausationEventIDCleared() {
		_spec.ClearField(changeentry.FieldCausationEventID, field.TypeString)
	}
	if value, ok := _u.mutation.Before(); ok {
		_spec.SetField(changeentry.FieldBefore, field.TypeBytes, value)
	}
	if _u.mutation.BeforeCleared() {
		_spec.ClearField(changeentry.FieldBefore, field.TypeBytes)
	}
	if value, ok := _u.mutation.After(); ok {
		_spec.SetField(changeentry.FieldAfter, field.TypeBytes, value)
	}
	if _u.mutation.AfterCleared() {
		_spec.ClearField(changeentry.FieldAfter, field.TypeBytes)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changeentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChangeEntryUpdateOne is the builder for updating a single ChangeEntry entity.
type ChangeEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChangeEntryMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ChangeEntryUpdateOne) SetProjectID(v string) *ChangeEntryUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ChangeEntryUpdateOne) SetNillableProjectID(v *string) *ChangeEntryUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ChangeEntryUpdateOne) SetVersion(v int64) *ChangeEntryUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ChangeEntryUpdateOne) SetNillableVersion(v *int64) *ChangeEntryUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ChangeEntryUpdateOne) AddVersion(v int64) *ChangeEntryUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetActor sets the "actor" field.
func (_u *ChangeEntryUpdateOne) SetActor(v string) *ChangeEntryUpdateOne {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *ChangeEntryUpdateOne) SetNillableActor(v *string) *ChangeEntryUpdateOne {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetChangeType sets the "change_type" field.
func (_u *ChangeEntryUpdateOne) SetChangeType(v string) *ChangeEntryUpdateOne {
	_u.mutation.SetChangeType(v)
	return _u
}

// SetNillableChangeType sets the "change_type" field if the given value is not nil.
func (_u *ChangeEntryUpdateOne) SetNillableChangeType(v *string) *ChangeEntryUpdateOne {
	if v != nil {
		_u.SetChangeType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ChangeEntryUpdateOne) SetDescription(v string) *ChangeEntryUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ChangeEntryUpdateOne) SetNillableDescription(v *string) *ChangeEntryUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *ChangeEntryUpdateOne) SetPath(v string) *ChangeEntryUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *ChangeEntryUpdateOne) SetNillablePath(v *string) *ChangeEntryUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetCausationEventID sets the "causation_event_id" field.
func (_u *ChangeEntryUpdateOne) SetCausationEventID(v string) *ChangeEntryUpdateOne {
	_u.mutation.SetCausationEventID(v)
	return _u
}

// SetNillableCausationEventID sets the "causation_event_id" field if the given value is not nil.
func (_u *ChangeEntryUpdateOne) SetNillableCausationEventID(v *string) *ChangeEntryUpdateOne {
	if v != nil {
		_u.SetCausationEventID(*v)
	}
	return _u
}

// ClearCausationEventID clears the value of the "causation_event_id" field.
func (_u *ChangeEntryUpdateOne) ClearCausationEventID() *ChangeEntryUpdateOne {
	_u.mutation.ClearCausationEventID()
	return _u
}

// SetBefore sets the "before" field.
func (_u *ChangeEntryUpdateOne) SetBefore(v []byte) *ChangeEntryUpdateOne {
	_u.mutation.SetBefore(v)
	return _u
}

// ClearBefore clears the value of the "before" field.
func (_u *ChangeEntryUpdateOne) ClearBefore() *ChangeEntryUpdateOne {
	_u.mutation.ClearBefore()
	return _u
}

// SetAfter sets the "after" field.
func (_u *ChangeEntryUpdateOne) SetAfter(v []byte) *ChangeEntryUpdateOne {
	_u.mutation.SetAfter(v)
	return _u
}

// ClearAfter clears the value of the "after" field.
func (_u *ChangeEntryUpdateOne) ClearAfter() *ChangeEntryUpdateOne {
	_u.mutation.ClearAfter()
	return _u
}

// Mutation returns the ChangeEntryMutation object of the builder.
func (_u *ChangeEntryUpdateOne) Mutation() *ChangeEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChangeEntryUpdate builder.
func (_u *ChangeEntryUpdateOne) Where(ps ...predicate.ChangeEntry) *ChangeEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChangeEntryUpdateOne) Select(field string, fields ...string) *ChangeEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChangeEntry entity.
func (_u *ChangeEntryUpdateOne) Save(ctx context.Context) (*ChangeEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangeEntryUpdateOne) SaveX(ctx context.Context) *ChangeEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChangeEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangeEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChangeEntryUpdateOne) sqlSave(ctx context.Context) (_node *ChangeEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(changeentry.Table, changeentry.Columns, sqlgraph.NewFieldSpec(changeentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChangeEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, changeentry.FieldID)
		for _, f := range fields {
			if !changeentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != changeentry.FieldID {
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
		_spec.SetField(changeentry.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(changeentry.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(changeentry.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(changeentry.FieldActor, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChangeType(); ok {
		_spec.SetField(changeentry.FieldChangeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(changeentry.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(changeentry.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.CausationEventID(); ok {
		_spec.SetField(changeentry.FieldCausationEventID, field.TypeString, value)
	}
	if _u.mutation.CausationEventIDCleared() {
		_spec.ClearField(changeentry.FieldCausationEventID, field.TypeString)
	}
	if value, ok := _u.mutation.Before(); ok {
		_spec.SetField(changeentry.FieldBefore, field.TypeBytes, value)
	}
	if _u.mutation.BeforeCleared() {
		_spec.ClearField(changeentry.FieldBefore, field.TypeBytes)
	}
	if value, ok := _u.mutation.After(); ok {
		_spec.SetField(changeentry.FieldAfter, field.TypeBytes, value)
	}
	if _u.mutation.AfterCleared() {
		_spec.ClearField(changeentry.FieldAfter, field.TypeBytes)
	}
	_node = &ChangeEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changeentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
