// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clipforge/clipforge/ent/lockmirror"
	"github.com/clipforge/clipforge/ent/predicate"
)

// LockMirrorUpdate is the builder for updating LockMirror entities.
type LockMirrorUpdate struct {
	config
	hooks    []Hook
	mutation *LockMirrorMutation
}

// Where appends a list predicates to the LockMirrorUpdate builder.
func (_u *LockMirrorUpdate) Where(ps ...predicate.LockMirror) *LockMirrorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *LockMirrorUpdate) SetProjectID(v string) *LockMirrorUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *LockMirrorUpdate) SetNillableProjectID(v *string) *LockMirrorUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetHolder sets the "holder" field.
func (_u *LockMirrorUpdate) SetHolder(v string) *LockMirrorUpdate {
	_u.mutation.SetHolder(v)
	return _u
}

// SetNillableHolder sets the "holder" field if the given value is not nil.
func (_u *LockMirrorUpdate) SetNillableHolder(v *string) *LockMirrorUpdate {
	if v != nil {
		_u.SetHolder(*v)
	}
	return _u
}

// SetAcquiredAt sets the "acquired_at" field.
func (_u *LockMirrorUpdate) SetAcquiredAt(v time.Time) *LockMirrorUpdate {
	_u.mutation.SetAcquiredAt(v)
	return _u
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_u *LockMirrorUpdate) SetNillableAcquiredAt(v *time.Time) *LockMirrorUpdate {
	if v != nil {
		_u.SetAcquiredAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *LockMirrorUpdate) SetExpiresAt(v time.Time) *LockMirrorUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *LockMirrorUpdate) SetNillableExpiresAt(v *time.Time) *LockMirrorUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *LockMirrorUpdate) SetMetadata(v map[string]string) *LockMirrorUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *LockMirrorUpdate) ClearMetadata() *LockMirrorUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the LockMirrorMutation object of the builder.
func (_u *LockMirrorUpdate) Mutation() *LockMirrorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LockMirrorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LockMirrorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LockMirrorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LockMirrorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LockMirrorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(lockmirror.Table, lockmirror.Columns, sqlgraph.NewFieldSpec(lockmirror.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(lockmirror.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Holder(); ok {
		_spec.SetField(lockmirror.FieldHolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcquiredAt(); ok {
		_spec.SetField(lockmirror.FieldAcquiredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(lockmirror.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(lockmirror.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(lockmirror.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lockmirror.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LockMirrorUpdateOne is the builder for updating a single LockMirror entity.
type LockMirrorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LockMirrorMutation
}

// SetProjectID sets the "project_id" field.
func (_u *LockMirrorUpdateOne) SetProjectID(v string) *LockMirrorUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *LockMirrorUpdateOne) SetNillableProjectID(v *string) *LockMirrorUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetHolder sets the "holder" field.
func (_u *LockMirrorUpdateOne) SetHolder(v string) *LockMirrorUpdateOne {
	_u.mutation.SetHolder(v)
	return _u
}

// SetNillableHolder sets the "holder" field if the given value is not nil.
func (_u *LockMirrorUpdateOne) SetNillableHolder(v *string) *LockMirrorUpdateOne {
	if v != nil {
		_u.SetHolder(*v)
	}
	return _u
}

// SetAcquiredAt sets the "acquired_at" field.
func (_u *LockMirrorUpdateOne) SetAcquiredAt(v time.Time) *LockMirrorUpdateOne {
	_u.mutation.SetAcquiredAt(v)
	return _u
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_u *LockMirrorUpdateOne) SetNillableAcquiredAt(v *time.Time) *LockMirrorUpdateOne {
	if v != nil {
		_u.SetAcquiredAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *LockMirrorUpdateOne) SetExpiresAt(v time.Time) *LockMirrorUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *LockMirrorUpdateOne) SetNillableExpiresAt(v *time.Time) *LockMirrorUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *LockMirrorUpdateOne) SetMetadata(v map[string]string) *LockMirrorUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *LockMirrorUpdateOne) ClearMetadata() *LockMirrorUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the LockMirrorMutation object of the builder.
func (_u *LockMirrorUpdateOne) Mutation() *LockMirrorMutation {
	return _u.mutation
}

// Where appends a list predicates to the LockMirrorUpdate builder.
func (_u *LockMirrorUpdateOne) Where(ps ...predicate.LockMirror) *LockMirrorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LockMirrorUpdateOne) Select(field string, fields ...string) *LockMirrorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LockMirror entity.
func (_u *LockMirrorUpdateOne) Save(ctx context.Context) (*LockMirror, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LockMirrorUpdateOne) SaveX(ctx context.Context) *LockMirror {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LockMirrorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LockMirrorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LockMirrorUpdateOne) sqlSave(ctx context.Context) (_node *LockMirror, err error) {
	_spec := sqlgraph.NewUpdateSpec(lockmirror.Table, lockmirror.Columns, sqlgraph.NewFieldSpec(lockmirror.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LockMirror.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lockmirror.FieldID)
		for _, f := range fields {
			if !lockmirror.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lockmirror.FieldID {
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
		_spec.SetField(lockmirror.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Holder(); ok {
		_spec.SetField(lockmirror.FieldHolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcquiredAt(); ok {
		_spec.SetField(lockmirror.FieldAcquiredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(lockmirror.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(lockmirror.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(lockmirror.FieldMetadata, field.TypeJSON)
	}
	_node = &LockMirror{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lockmirror.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
