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
	"github.com/clipforge/clipforge/ent/changeentry"
)

// ChangeEntryCreate is the builder for creating a ChangeEntry entity.
type ChangeEntryCreate struct {
	config
	mutation *ChangeEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *ChangeEntryCreate) SetProjectID(v string) *ChangeEntryCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ChangeEntryCreate) SetVersion(v int64) *ChangeEntryCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *ChangeEntryCreate) SetActor(v string) *ChangeEntryCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetChangeType sets the "change_type" field.
func (_c *ChangeEntryCreate) SetChangeType(v string) *ChangeEntryCreate {
	_c.mutation.SetChangeType(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ChangeEntryCreate) SetDescription(v string) *ChangeEntryCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *ChangeEntryCreate) SetPath(v string) *ChangeEntryCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetCausationEventID sets the "causation_event_id" field.
func (_c *ChangeEntryCreate) SetCausationEventID(v string) *ChangeEntryCreate {
	_c.mutation.SetCausationEventID(v)
	return _c
}

// SetNillableCausationEventID sets the "causation_event_id" field if the given value is not nil.
func (_c *ChangeEntryCreate) SetNillableCausationEventID(v *string) *ChangeEntryCreate {
	if v != nil {
		_c.SetCausationEventID(*v)
	}
	return _c
}

// SetBefore sets the "before" field.
func (_c *ChangeEntryCreate) SetBefore(v []byte) *ChangeEntryCreate {
	_c.mutation.SetBefore(v)
	return _c
}

// SetAfter sets the "after" field.
func (_c *ChangeEntryCreate) SetAfter(v []byte) *ChangeEntryCreate {
	_c.mutation.SetAfter(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChangeEntryCreate) SetCreatedAt(v time.Time) *ChangeEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChangeEntryCreate) SetNillableCreatedAt(v *time.Time) *ChangeEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChangeEntryCreate) SetID(v string) *ChangeEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ChangeEntryMutation object of the builder.
func (_c *ChangeEntryCreate) Mutation() *ChangeEntryMutation {
	return _c.mutation
}

// Save creates the ChangeEntry in the database.
func (_c *ChangeEntryCreate) Save(ctx context.Context) (*ChangeEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChangeEntryCreate) SaveX(ctx context.Context) *ChangeEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangeEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangeEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChangeEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := changeentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChangeEntryCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ChangeEntry.project_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ChangeEntry.version"`)}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "ChangeEntry.actor"`)}
	}
	if _, ok := _c.mutation.ChangeType(); !ok {
		return &ValidationError{Name: "change_type", err: errors.New(`ent: missing required field "ChangeEntry.change_type"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ChangeEntry.description"`)}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "ChangeEntry.path"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChangeEntry.created_at"`)}
	}
	return nil
}

func (_c *ChangeEntryCreate) sqlSave(ctx context.Context) (*ChangeEntry, error) {
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
			return nil, fmt.Errorf("unexpected ChangeEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChangeEntryCreate) createSpec() (*ChangeEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ChangeEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(changeentry.Table, sqlgraph.NewFieldSpec(changeentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(changeentry.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(changeentry.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(changeentry.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.ChangeType(); ok {
		_spec.SetField(changeentry.FieldChangeType, field.TypeString, value)
		_node.ChangeType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(changeentry.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(changeentry.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.CausationEventID(); ok {
		_spec.SetField(changeentry.FieldCausationEventID, field.TypeString, value)
		_node.CausationEventID = value
	}
	if value, ok := _c.mutation.Before(); ok {
		_spec.SetField(changeentry.FieldBefore, field.TypeBytes, value)
		_node.Before = value
	}
	if value, ok := _c.mutation.After(); ok {
		_spec.SetField(changeentry.FieldAfter, field.TypeBytes, value)
		_node.After = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(changeentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChangeEntry.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChangeEntryUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChangeEntryCreate) OnConflict(opts ...sql.ConflictOption) *ChangeEntryUpsertOne {
	_c.conflict = opts
	return &ChangeEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChangeEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChangeEntryCreate) OnConflictColumns(columns ...string) *ChangeEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChangeEntryUpsertOne{
		create: _c,
	}
}

type (
	// ChangeEntryUpsertOne is the builder for "upsert"-ing
	//  one ChangeEntry node.
	ChangeEntryUpsertOne struct {
		create *ChangeEntryCreate
	}

	// ChangeEntryUpsert is the "OnConflict" setter.
	ChangeEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetProjectID sets the "project_id" field.
func (u *ChangeEntryUpsert) SetProjectID(v string) *ChangeEntryUpsert {
	u.Set(changeentry.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ChangeEntryUpsert) UpdateProjectID() *ChangeEntryUpsert {
	u.SetExcluded(changeentry.FieldProjectID)
	return u
}

// SetVersion sets the "version" field.
func (u *ChangeEntryUpsert) SetVersion(v int64) *ChangeEntryUpsert {
	u.Set(changeentry.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ChangeEntryUpsert) UpdateVersion() *ChangeEntryUpsert {
	u.SetExcluded(changeentry.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *ChangeEntryUpsert) AddVersion(v int64) *ChangeEntryUpsert {
	u.Add(changeentry.FieldVersion, v)
	return u
}

// SetActor sets the "actor" field.
func (u *ChangeEntryUpsert) SetActor(v string) *ChangeEntryUpsert {
	u.Set(changeentry.FieldActor, v)
	return u
}

// UpdateActor sets the "actor" field to the value that was provided on create.
func (u *ChangeEntryUpsert) UpdateActor() *ChangeEntryUpsert {
	u.SetExcluded(changeentry.FieldActor)
	return u
}

// SetChangeType sets the "change_type" field.
func (u *ChangeEntryUpsert) SetChangeType(v string) *ChangeEntryUpsert {
	u.Set(changeentry.FieldChangeType, v)
	return u
}

// UpdateChangeType sets the "change_type" field to the value that was provided on create.
func (u *ChangeEntryUpsert) UpdateChangeType() *ChangeEntryUpsert {
	u.SetExcluded(changeentry.FieldChangeType)
	return u
}

// SetDescription sets the "description" field.
func (u *ChangeEntryUpsert) SetDescription(v string) *ChangeEntryUpsert {
	u.Set(changeentry.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ChangeEntryUpsert) UpdateDescription() *ChangeEntryUpsert {
	u.SetExcluded(changeentry.FieldDescription)
	return u
}

// SetPath sets the "path" field.
func (u *ChangeEntryUpsert) SetPath(v string) *ChangeEntryUpsert {
	u.Set(changeentry.FieldPath, v)
	return u
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *ChangeEntryUpsert) UpdatePath() *ChangeEntryUpsert {
	u.SetExcluded(changeentry.FieldPath)
	return u
}

// SetCausationEventID sets the "causation_event_id" field.
func (u *ChangeEntryUpsert) SetCausationEventID(v string) *ChangeEntryUpsert {
	u.Set(changeentry.FieldCausationEventID, v)
	return u
}

// UpdateCausationEventID sets the "causation_event_id" field to the value that was provided on create.
func (u *ChangeEntryUpsert) UpdateCausationEventID() *ChangeEntryUpsert {
	u.SetExcluded(changeentry.FieldCausationEventID)
	return u
}

// ClearCausationEventID clears the value of the "causation_event_id" field.
func (u *ChangeEntryUpsert) ClearCausationEventID() *ChangeEntryUpsert {
	u.SetNull(changeentry.FieldCausationEventID)
	return u
}

// SetBefore sets the "before" field.
func (u *ChangeEntryUpsert) SetBefore(v []byte) *ChangeEntryUpsert {
	u.Set(changeentry.FieldBefore, v)
	return u
}

// UpdateBefore sets the "before" field to the value that was provided on create.
func (u *ChangeEntryUpsert) UpdateBefore() *ChangeEntryUpsert {
	u.SetExcluded(changeentry.FieldBefore)
	return u
}

// ClearBefore clears the value of the "before" field.
func (u *ChangeEntryUpsert) ClearBefore() *ChangeEntryUpsert {
	u.SetNull(changeentry.FieldBefore)
	return u
}

// SetAfter sets the "after" field.
func (u *ChangeEntryUpsert) SetAfter(v []byte) *ChangeEntryUpsert {
	u.Set(changeentry.FieldAfter, v)
	return u
}

// UpdateAfter sets the "after" field to the value that was provided on create.
func (u *ChangeEntryUpsert) UpdateAfter() *ChangeEntryUpsert {
	u.SetExcluded(changeentry.FieldAfter)
	return u
}

// ClearAfter clears the value of the "after" field.
func (u *ChangeEntryUpsert) ClearAfter() *ChangeEntryUpsert {
	u.SetNull(changeentry.FieldAfter)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ChangeEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(changeentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChangeEntryUpsertOne) UpdateNewValues() *ChangeEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(changeentry.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(changeentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChangeEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChangeEntryUpsertOne) Ignore() *ChangeEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChangeEntryUpsertOne) DoNothing() *ChangeEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChangeEntryCreate.OnConflict
// documentation for more info.
func (u *ChangeEntryUpsertOne) Update(set func(*ChangeEntryUpsert)) *ChangeEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChangeEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ChangeEntryUpsertOne) SetProjectID(v string) *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ChangeEntryUpsertOne) UpdateProjectID() *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateProjectID()
	})
}

// SetVersion sets the "version" field.
func (u *ChangeEntryUpsertOne) SetVersion(v int64) *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *ChangeEntryUpsertOne) AddVersion(v int64) *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ChangeEntryUpsertOne) UpdateVersion() *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateVersion()
	})
}

// SetActor sets the "actor" field.
func (u *ChangeEntryUpsertOne) SetActor(v string) *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetActor(v)
	})
}

// UpdateActor sets the "actor" field to the value that was provided on create.
func (u *ChangeEntryUpsertOne) UpdateActor() *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateActor()
	})
}

// SetChangeType sets the "change_type" field.
func (u *ChangeEntryUpsertOne) SetChangeType(v string) *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetChangeType(v)
	})
}

// UpdateChangeType sets the "change_type" field to the value that was provided on create.
func (u *ChangeEntryUpsertOne) UpdateChangeType() *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateChangeType()
	})
}

// SetDescription sets the "description" field.
func (u *ChangeEntryUpsertOne) SetDescription(v string) *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ChangeEntryUpsertOne) UpdateDescription() *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateDescription()
	})
}

// SetPath sets the "path" field.
func (u *ChangeEntryUpsertOne) SetPath(v string) *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *ChangeEntryUpsertOne) UpdatePath() *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdatePath()
	})
}

// SetCausationEventID sets the "causation_event_id" field.
func (u *ChangeEntryUpsertOne) SetCausationEventID(v string) *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetCausationEventID(v)
	})
}

// UpdateCausationEventID sets the "causation_event_id" field to the value that was provided on create.
func (u *ChangeEntryUpsertOne) UpdateCausationEventID() *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateCausationEventID()
	})
}

// ClearCausationEventID clears the value of the "causation_event_id" field.
func (u *ChangeEntryUpsertOne) ClearCausationEventID() *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.ClearCausationEventID()
	})
}

// SetBefore sets the "before" field.
func (u *ChangeEntryUpsertOne) SetBefore(v []byte) *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetBefore(v)
	})
}

// UpdateBefore sets the "before" field to the value that was provided on create.
func (u *ChangeEntryUpsertOne) UpdateBefore() *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateBefore()
	})
}

// ClearBefore clears the value of the "before" field.
func (u *ChangeEntryUpsertOne) ClearBefore() *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.ClearBefore()
	})
}

// SetAfter sets the "after" field.
func (u *ChangeEntryUpsertOne) SetAfter(v []byte) *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetAfter(v)
	})
}

// UpdateAfter sets the "after" field to the value that was provided on create.
func (u *ChangeEntryUpsertOne) UpdateAfter() *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateAfter()
	})
}

// ClearAfter clears the value of the "after" field.
func (u *ChangeEntryUpsertOne) ClearAfter() *ChangeEntryUpsertOne {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.ClearAfter()
	})
}

// Exec executes the query.
func (u *ChangeEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChangeEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChangeEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChangeEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChangeEntryUpsertOne.ID is not supported by MySQL driver. Use ChangeEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChangeEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChangeEntryCreateBulk is the builder for creating many ChangeEntry entities in bulk.
type ChangeEntryCreateBulk struct {
	config
	err      error
	builders []*ChangeEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the ChangeEntry entities in the database.
func (_c *ChangeEntryCreateBulk) Save(ctx context.Context) ([]*ChangeEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChangeEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChangeEntryMutation)
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
func (_c *ChangeEntryCreateBulk) SaveX(ctx context.Context) []*ChangeEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangeEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangeEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChangeEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChangeEntryUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChangeEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChangeEntryUpsertBulk {
	_c.conflict = opts
	return &ChangeEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChangeEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChangeEntryCreateBulk) OnConflictColumns(columns ...string) *ChangeEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChangeEntryUpsertBulk{
		create: _c,
	}
}

// ChangeEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of ChangeEntry nodes.
type ChangeEntryUpsertBulk struct {
	create *ChangeEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ChangeEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(changeentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChangeEntryUpsertBulk) UpdateNewValues() *ChangeEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(changeentry.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(changeentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChangeEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChangeEntryUpsertBulk) Ignore() *ChangeEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChangeEntryUpsertBulk) DoNothing() *ChangeEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChangeEntryCreateBulk.OnConflict
// documentation for more info.
func (u *ChangeEntryUpsertBulk) Update(set func(*ChangeEntryUpsert)) *ChangeEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChangeEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ChangeEntryUpsertBulk) SetProjectID(v string) *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ChangeEntryUpsertBulk) UpdateProjectID() *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateProjectID()
	})
}

// SetVersion sets the "version" field.
func (u *ChangeEntryUpsertBulk) SetVersion(v int64) *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *ChangeEntryUpsertBulk) AddVersion(v int64) *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ChangeEntryUpsertBulk) UpdateVersion() *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateVersion()
	})
}

// SetActor sets the "actor" field.
func (u *ChangeEntryUpsertBulk) SetActor(v string) *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetActor(v)
	})
}

// UpdateActor sets the "actor" field to the value that was provided on create.
func (u *ChangeEntryUpsertBulk) UpdateActor() *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateActor()
	})
}

// SetChangeType sets the "change_type" field.
func (u *ChangeEntryUpsertBulk) SetChangeType(v string) *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetChangeType(v)
	})
}

// UpdateChangeType sets the "change_type" field to the value that was provided on create.
func (u *ChangeEntryUpsertBulk) UpdateChangeType() *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateChangeType()
	})
}

// SetDescription sets the "description" field.
func (u *ChangeEntryUpsertBulk) SetDescription(v string) *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ChangeEntryUpsertBulk) UpdateDescription() *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateDescription()
	})
}

// SetPath sets the "path" field.
func (u *ChangeEntryUpsertBulk) SetPath(v string) *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *ChangeEntryUpsertBulk) UpdatePath() *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdatePath()
	})
}

// SetCausationEventID sets the "causation_event_id" field.
func (u *ChangeEntryUpsertBulk) SetCausationEventID(v string) *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetCausationEventID(v)
	})
}

// UpdateCausationEventID sets the "causation_event_id" field to the value that was provided on create.
func (u *ChangeEntryUpsertBulk) UpdateCausationEventID() *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateCausationEventID()
	})
}

// ClearCausationEventID clears the value of the "causation_event_id" field.
func (u *ChangeEntryUpsertBulk) ClearCausationEventID() *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.ClearCausationEventID()
	})
}

// SetBefore sets the "before" field.
func (u *ChangeEntryUpsertBulk) SetBefore(v []byte) *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetBefore(v)
	})
}

// UpdateBefore sets the "before" field to the value that was provided on create.
func (u *ChangeEntryUpsertBulk) UpdateBefore() *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateBefore()
	})
}

// ClearBefore clears the value of the "before" field.
func (u *ChangeEntryUpsertBulk) ClearBefore() *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.ClearBefore()
	})
}

// SetAfter sets the "after" field.
func (u *ChangeEntryUpsertBulk) SetAfter(v []byte) *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.SetAfter(v)
	})
}

// UpdateAfter sets the "after" field to the value that was provided on create.
func (u *ChangeEntryUpsertBulk) UpdateAfter() *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.UpdateAfter()
	})
}

// ClearAfter clears the value of the "after" field.
func (u *ChangeEntryUpsertBulk) ClearAfter() *ChangeEntryUpsertBulk {
	return u.Update(func(s *ChangeEntryUpsert) {
		s.ClearAfter()
	})
}

// Exec executes the query.
func (u *ChangeEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChangeEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChangeEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChangeEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
