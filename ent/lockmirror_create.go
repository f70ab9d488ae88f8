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
	"github.com/clipforge/clipforge/ent/lockmirror"
)

// LockMirrorCreate is the builder for creating a LockMirror entity.
type LockMirrorCreate struct {
	config
	mutation *LockMirrorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *LockMirrorCreate) SetProjectID(v string) *LockMirrorCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetHolder sets the "holder" field.
func (_c *LockMirrorCreate) SetHolder(v string) *LockMirrorCreate {
	_c.mutation.SetHolder(v)
	return _c
}

// SetAcquiredAt sets the "acquired_at" field.
func (_c *LockMirrorCreate) SetAcquiredAt(v time.Time) *LockMirrorCreate {
	_c.mutation.SetAcquiredAt(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *LockMirrorCreate) SetExpiresAt(v time.Time) *LockMirrorCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *LockMirrorCreate) SetMetadata(v map[string]string) *LockMirrorCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LockMirrorCreate) SetID(v string) *LockMirrorCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LockMirrorMutation object of the builder.
func (_c *LockMirrorCreate) Mutation() *LockMirrorMutation {
	return _c.mutation
}

// Save creates the LockMirror in the database.
func (_c *LockMirrorCreate) Save(ctx context.Context) (*LockMirror, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LockMirrorCreate) SaveX(ctx context.Context) *LockMirror {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LockMirrorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LockMirrorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LockMirrorCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "LockMirror.project_id"`)}
	}
	if _, ok := _c.mutation.Holder(); !ok {
		return &ValidationError{Name: "holder", err: errors.New(`ent: missing required field "LockMirror.holder"`)}
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		return &ValidationError{Name: "acquired_at", err: errors.New(`ent: missing required field "LockMirror.acquired_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "LockMirror.expires_at"`)}
	}
	return nil
}

func (_c *LockMirrorCreate) sqlSave(ctx context.Context) (*LockMirror, error) {
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
			return nil, fmt.Errorf("unexpected LockMirror.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LockMirrorCreate) createSpec() (*LockMirror, *sqlgraph.CreateSpec) {
	var (
		_node = &LockMirror{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lockmirror.Table, sqlgraph.NewFieldSpec(lockmirror.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(lockmirror.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Holder(); ok {
		_spec.SetField(lockmirror.FieldHolder, field.TypeString, value)
		_node.Holder = value
	}
	if value, ok := _c.mutation.AcquiredAt(); ok {
		_spec.SetField(lockmirror.FieldAcquiredAt, field.TypeTime, value)
		_node.AcquiredAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(lockmirror.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(lockmirror.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LockMirror.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LockMirrorUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *LockMirrorCreate) OnConflict(opts ...sql.ConflictOption) *LockMirrorUpsertOne {
	_c.conflict = opts
	return &LockMirrorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LockMirror.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LockMirrorCreate) OnConflictColumns(columns ...string) *LockMirrorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LockMirrorUpsertOne{
		create: _c,
	}
}

type (
	// LockMirrorUpsertOne is the builder for "upsert"-ing
	//  one LockMirror node.
	LockMirrorUpsertOne struct {
		create *LockMirrorCreate
	}

	// LockMirrorUpsert is the "OnConflict" setter.
	LockMirrorUpsert struct {
		*sql.UpdateSet
	}
)

// SetProjectID sets the "project_id" field.
func (u *LockMirrorUpsert) SetProjectID(v string) *LockMirrorUpsert {
	u.Set(lockmirror.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *LockMirrorUpsert) UpdateProjectID() *LockMirrorUpsert {
	u.SetExcluded(lockmirror.FieldProjectID)
	return u
}

// SetHolder sets the "holder" field.
func (u *LockMirrorUpsert) SetHolder(v string) *LockMirrorUpsert {
	u.Set(lockmirror.FieldHolder, v)
	return u
}

// UpdateHolder sets the "holder" field to the value that was provided on create.
func (u *LockMirrorUpsert) UpdateHolder() *LockMirrorUpsert {
	u.SetExcluded(lockmirror.FieldHolder)
	return u
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *LockMirrorUpsert) SetAcquiredAt(v time.Time) *LockMirrorUpsert {
	u.Set(lockmirror.FieldAcquiredAt, v)
	return u
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *LockMirrorUpsert) UpdateAcquiredAt() *LockMirrorUpsert {
	u.SetExcluded(lockmirror.FieldAcquiredAt)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *LockMirrorUpsert) SetExpiresAt(v time.Time) *LockMirrorUpsert {
	u.Set(lockmirror.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *LockMirrorUpsert) UpdateExpiresAt() *LockMirrorUpsert {
	u.SetExcluded(lockmirror.FieldExpiresAt)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *LockMirrorUpsert) SetMetadata(v map[string]string) *LockMirrorUpsert {
	u.Set(lockmirror.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *LockMirrorUpsert) UpdateMetadata() *LockMirrorUpsert {
	u.SetExcluded(lockmirror.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *LockMirrorUpsert) ClearMetadata() *LockMirrorUpsert {
	u.SetNull(lockmirror.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LockMirror.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lockmirror.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LockMirrorUpsertOne) UpdateNewValues() *LockMirrorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lockmirror.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LockMirror.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LockMirrorUpsertOne) Ignore() *LockMirrorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LockMirrorUpsertOne) DoNothing() *LockMirrorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LockMirrorCreate.OnConflict
// documentation for more info.
func (u *LockMirrorUpsertOne) Update(set func(*LockMirrorUpsert)) *LockMirrorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LockMirrorUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *LockMirrorUpsertOne) SetProjectID(v string) *LockMirrorUpsertOne {
	return u.Update(func(s *LockMirrorUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *LockMirrorUpsertOne) UpdateProjectID() *LockMirrorUpsertOne {
	return u.Update(func(s *LockMirrorUpsert) {
		s.UpdateProjectID()
	})
}

// SetHolder sets the "holder" field.
func (u *LockMirrorUpsertOne) SetHolder(v string) *LockMirrorUpsertOne {
	return u.Update(func(s *LockMirrorUpsert) {
		s.SetHolder(v)
	})
}

// UpdateHolder sets the "holder" field to the value that was provided on create.
func (u *LockMirrorUpsertOne) UpdateHolder() *LockMirrorUpsertOne {
	return u.Update(func(s *LockMirrorUpsert) {
		s.UpdateHolder()
	})
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *LockMirrorUpsertOne) SetAcquiredAt(v time.Time) *LockMirrorUpsertOne {
	return u.Update(func(s *LockMirrorUpsert) {
		s.SetAcquiredAt(v)
	})
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *LockMirrorUpsertOne) UpdateAcquiredAt() *LockMirrorUpsertOne {
	return u.Update(func(s *LockMirrorUpsert) {
		s.UpdateAcquiredAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *LockMirrorUpsertOne) SetExpiresAt(v time.Time) *LockMirrorUpsertOne {
	return u.Update(func(s *LockMirrorUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *LockMirrorUpsertOne) UpdateExpiresAt() *LockMirrorUpsertOne {
	return u.Update(func(s *LockMirrorUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetMetadata sets the "metadata" field.
func (u *LockMirrorUpsertOne) SetMetadata(v map[string]string) *LockMirrorUpsertOne {
	return u.Update(func(s *LockMirrorUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *LockMirrorUpsertOne) UpdateMetadata() *LockMirrorUpsertOne {
	return u.Update(func(s *LockMirrorUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *LockMirrorUpsertOne) ClearMetadata() *LockMirrorUpsertOne {
	return u.Update(func(s *LockMirrorUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *LockMirrorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LockMirrorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LockMirrorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LockMirrorUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LockMirrorUpsertOne.ID is not supported by MySQL driver. Use LockMirrorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LockMirrorUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LockMirrorCreateBulk is the builder for creating many LockMirror entities in bulk.
type LockMirrorCreateBulk struct {
	config
	err      error
	builders []*LockMirrorCreate
	conflict []sql.ConflictOption
}

// Save creates the LockMirror entities in the database.
func (_c *LockMirrorCreateBulk) Save(ctx context.Context) ([]*LockMirror, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LockMirror, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LockMirrorMutation)
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
func (_c *LockMirrorCreateBulk) SaveX(ctx context.Context) []*LockMirror {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LockMirrorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LockMirrorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LockMirror.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LockMirrorUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *LockMirrorCreateBulk) OnConflict(opts ...sql.ConflictOption) *LockMirrorUpsertBulk {
	_c.conflict = opts
	return &LockMirrorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LockMirror.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LockMirrorCreateBulk) OnConflictColumns(columns ...string) *LockMirrorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LockMirrorUpsertBulk{
		create: _c,
	}
}

// LockMirrorUpsertBulk is the builder for "upsert"-ing
// a bulk of LockMirror nodes.
type LockMirrorUpsertBulk struct {
	create *LockMirrorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LockMirror.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lockmirror.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LockMirrorUpsertBulk) UpdateNewValues() *LockMirrorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lockmirror.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LockMirror.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LockMirrorUpsertBulk) Ignore() *LockMirrorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LockMirrorUpsertBulk) DoNothing() *LockMirrorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LockMirrorCreateBulk.OnConflict
// documentation for more info.
func (u *LockMirrorUpsertBulk) Update(set func(*LockMirrorUpsert)) *LockMirrorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LockMirrorUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *LockMirrorUpsertBulk) SetProjectID(v string) *LockMirrorUpsertBulk {
	return u.Update(func(s *LockMirrorUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *LockMirrorUpsertBulk) UpdateProjectID() *LockMirrorUpsertBulk {
	return u.Update(func(s *LockMirrorUpsert) {
		s.UpdateProjectID()
	})
}

// SetHolder sets the "holder" field.
func (u *LockMirrorUpsertBulk) SetHolder(v string) *LockMirrorUpsertBulk {
	return u.Update(func(s *LockMirrorUpsert) {
		s.SetHolder(v)
	})
}

// UpdateHolder sets the "holder" field to the value that was provided on create.
func (u *LockMirrorUpsertBulk) UpdateHolder() *LockMirrorUpsertBulk {
	return u.Update(func(s *LockMirrorUpsert) {
		s.UpdateHolder()
	})
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *LockMirrorUpsertBulk) SetAcquiredAt(v time.Time) *LockMirrorUpsertBulk {
	return u.Update(func(s *LockMirrorUpsert) {
		s.SetAcquiredAt(v)
	})
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *LockMirrorUpsertBulk) UpdateAcquiredAt() *LockMirrorUpsertBulk {
	return u.Update(func(s *LockMirrorUpsert) {
		s.UpdateAcquiredAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *LockMirrorUpsertBulk) SetExpiresAt(v time.Time) *LockMirrorUpsertBulk {
	return u.Update(func(s *LockMirrorUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *LockMirrorUpsertBulk) UpdateExpiresAt() *LockMirrorUpsertBulk {
	return u.Update(func(s *LockMirrorUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetMetadata sets the "metadata" field.
func (u *LockMirrorUpsertBulk) SetMetadata(v map[string]string) *LockMirrorUpsertBulk {
	return u.Update(func(s *LockMirrorUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *LockMirrorUpsertBulk) UpdateMetadata() *LockMirrorUpsertBulk {
	return u.Update(func(s *LockMirrorUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *LockMirrorUpsertBulk) ClearMetadata() *LockMirrorUpsertBulk {
	return u.Update(func(s *LockMirrorUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *LockMirrorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LockMirrorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LockMirrorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LockMirrorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
