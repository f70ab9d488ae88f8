// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clipforge/clipforge/ent/artifactrecord"
	"github.com/clipforge/clipforge/ent/predicate"
)

// ArtifactRecordUpdate is the builder for updating ArtifactRecord entities.
type ArtifactRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ArtifactRecordMutation
}

// Where appends a list predicates to the ArtifactRecordUpdate builder.
func (_u *ArtifactRecordUpdate) Where(ps ...predicate.ArtifactRecord) *ArtifactRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ArtifactRecordUpdate) SetProjectID(v string) *ArtifactRecordUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ArtifactRecordUpdate) SetNillableProjectID(v *string) *ArtifactRecordUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetURI sets the "uri" field.
func (_u *ArtifactRecordUpdate) SetURI(v string) *ArtifactRecordUpdate {
	_u.mutation.SetURI(v)
	return _u
}

// SetNillableURI sets the "uri" field if the given value is not nil.
func (_u *ArtifactRecordUpdate) SetNillableURI(v *string) *ArtifactRecordUpdate {
	if v != nil {
		_u.SetURI(*v)
	}
	return _u
}

// SetSeed sets the "seed" field.
func (_u *ArtifactRecordUpdate) SetSeed(v int64) *ArtifactRecordUpdate {
	_u.mutation.ResetSeed()
	_u.mutation.SetSeed(v)
	return _u
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_u *ArtifactRecordUpdate) SetNillableSeed(v *int64) *ArtifactRecordUpdate {
	if v != nil {
		_u.SetSeed(*v)
	}
	return _u
}

// AddSeed adds value to the "seed" field.
func (_u *ArtifactRecordUpdate) AddSeed(v int64) *ArtifactRecordUpdate {
	_u.mutation.AddSeed(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *ArtifactRecordUpdate) SetModel(v string) *ArtifactRecordUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ArtifactRecordUpdate) SetNillableModel(v *string) *ArtifactRecordUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetModelVersion sets the "model_version" field.
func (_u *ArtifactRecordUpdate) SetModelVersion(v string) *ArtifactRecordUpdate {
	_u.mutation.SetModelVersion(v)
	return _u
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_u *ArtifactRecordUpdate) SetNillableModelVersion(v *string) *ArtifactRecordUpdate {
	if v != nil {
		_u.SetModelVersion(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ArtifactRecordUpdate) SetPrompt(v string) *ArtifactRecordUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ArtifactRecordUpdate) SetNillablePrompt(v *string) *ArtifactRecordUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetCost sets the "cost" field.
func (_u *ArtifactRecordUpdate) SetCost(v float64) *ArtifactRecordUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *ArtifactRecordUpdate) SetNillableCost(v *float64) *ArtifactRecordUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *ArtifactRecordUpdate) AddCost(v float64) *ArtifactRecordUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ArtifactRecordUpdate) SetCurrency(v string) *ArtifactRecordUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ArtifactRecordUpdate) SetNillableCurrency(v *string) *ArtifactRecordUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetUseCount sets the "use_count" field.
func (_u *ArtifactRecordUpdate) SetUseCount(v int) *ArtifactRecordUpdate {
	_u.mutation.ResetUseCount()
	_u.mutation.SetUseCount(v)
	return _u
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_u *ArtifactRecordUpdate) SetNillableUseCount(v *int) *ArtifactRecordUpdate {
	if v != nil {
		_u.SetUseCount(*v)
	}
	return _u
}

// AddUseCount adds value to the "use_count" field.
func (_u *ArtifactRecordUpdate) AddUseCount(v int) *ArtifactRecordUpdate {
	_u.mutation.AddUseCount(v)
	return _u
}

// Mutation returns the ArtifactRecordMutation object of the builder.
func (_u *ArtifactRecordUpdate) Mutation() *ArtifactRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArtifactRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArtifactRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ArtifactRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(artifactrecord.Table, artifactrecord.Columns, sqlgraph.NewFieldSpec(artifactrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(artifactrecord.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.URI(); ok {
		_spec.SetField(artifactrecord.FieldURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seed(); ok {
		_spec.SetField(artifactrecord.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeed(); ok {
		_spec.AddField(artifactrecord.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(artifactrecord.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelVersion(); ok {
		_spec.SetField(artifactrecord.FieldModelVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(artifactrecord.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(artifactrecord.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(artifactrecord.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(artifactrecord.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.UseCount(); ok {
		_spec.SetField(artifactrecord.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUseCount(); ok {
		_spec.AddField(artifactrecord.FieldUseCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifactrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArtifactRecordUpdateOne is the builder for updating a single ArtifactRecord entity.
type ArtifactRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArtifactRecordMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ArtifactRecordUpdateOne) SetProjectID(v string) *ArtifactRecordUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ArtifactRecordUpdateOne) SetNillableProjectID(v *string) *ArtifactRecordUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetURI sets the "uri" field.
func (_u *ArtifactRecordUpdateOne) SetURI(v string) *ArtifactRecordUpdateOne {
	_u.mutation.SetURI(v)
	return _u
}

// SetNillableURI sets the "uri" field if the given value is not nil.
func (_u *ArtifactRecordUpdateOne) SetNillableURI(v *string) *ArtifactRecordUpdateOne {
	if v != nil {
		_u.SetURI(*v)
	}
	return _u
}

// SetSeed sets the "seed" field.
func (_u *ArtifactRecordUpdateOne) SetSeed(v int64) *ArtifactRecordUpdateOne {
	_u.mutation.ResetSeed()
	_u.mutation.SetSeed(v)
	return _u
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_u *ArtifactRecordUpdateOne) SetNillableSeed(v *int64) *ArtifactRecordUpdateOne {
	if v != nil {
		_u.SetSeed(*v)
	}
	return _u
}

// AddSeed adds value to the "seed" field.
func (_u *ArtifactRecordUpdateOne) AddSeed(v int64) *ArtifactRecordUpdateOne {
	_u.mutation.AddSeed(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *ArtifactRecordUpdateOne) SetModel(v string) *ArtifactRecordUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ArtifactRecordUpdateOne) SetNillableModel(v *string) *ArtifactRecordUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetModelVersion sets the "model_version" field.
func (_u *ArtifactRecordUpdateOne) SetModelVersion(v string) *ArtifactRecordUpdateOne {
	_u.mutation.SetModelVersion(v)
	return _u
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_u *ArtifactRecordUpdateOne) SetNillableModelVersion(v *string) *ArtifactRecordUpdateOne {
	if v != nil {
		_u.SetModelVersion(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ArtifactRecordUpdateOne) SetPrompt(v string) *ArtifactRecordUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ArtifactRecordUpdateOne) SetNillablePrompt(v *string) *ArtifactRecordUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetCost sets the "cost" field.
func (_u *ArtifactRecordUpdateOne) SetCost(v float64) *ArtifactRecordUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *ArtifactRecordUpdateOne) SetNillableCost(v *float64) *ArtifactRecordUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *ArtifactRecordUpdateOne) AddCost(v float64) *ArtifactRecordUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ArtifactRecordUpdateOne) SetCurrency(v string) *ArtifactRecordUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ArtifactRecordUpdateOne) SetNillableCurrency(v *string) *ArtifactRecordUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetUseCount sets the "use_count" field.
func (_u *ArtifactRecordUpdateOne) SetUseCount(v int) *ArtifactRecordUpdateOne {
	_u.mutation.ResetUseCount()
	_u.mutation.SetUseCount(v)
	return _u
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_u *ArtifactRecordUpdateOne) SetNillableUseCount(v *int) *ArtifactRecordUpdateOne {
	if v != nil {
		_u.SetUseCount(*v)
	}
	return _u
}

// AddUseCount adds value to the "use_count" field.
func (_u *ArtifactRecordUpdateOne) AddUseCount(v int) *ArtifactRecordUpdateOne {
	_u.mutation.AddUseCount(v)
	return _u
}

// Mutation returns the ArtifactRecordMutation object of the builder.
func (_u *ArtifactRecordUpdateOne) Mutation() *ArtifactRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArtifactRecordUpdate builder.
func (_u *ArtifactRecordUpdateOne) Where(ps ...predicate.ArtifactRecord) *ArtifactRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArtifactRecordUpdateOne) Select(field string, fields ...string) *ArtifactRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ArtifactRecord entity.
func (_u *ArtifactRecordUpdateOne) Save(ctx context.Context) (*ArtifactRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactRecordUpdateOne) SaveX(ctx context.Context) *ArtifactRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArtifactRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ArtifactRecordUpdateOne) sqlSave(ctx context.Context) (_node *ArtifactRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(artifactrecord.Table, artifactrecord.Columns, sqlgraph.NewFieldSpec(artifactrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ArtifactRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, artifactrecord.FieldID)
		for _, f := range fields {
			if !artifactrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != artifactrecord.FieldID {
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
		_spec.SetField(artifactrecord.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.URI(); ok {
		_spec.SetField(artifactrecord.FieldURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seed(); ok {
		_spec.SetField(artifactrecord.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeed(); ok {
		_spec.AddField(artifactrecord.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(artifactrecord.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelVersion(); ok {
		_spec.SetField(artifactrecord.FieldModelVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(artifactrecord.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(artifactrecord.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(artifactrecord.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(artifactrecord.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.UseCount(); ok {
		_spec.SetField(artifactrecord.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUseCount(); ok {
		_spec.AddField(artifactrecord.FieldUseCount, field.TypeInt, value)
	}
	_node = &ArtifactRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifactrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
