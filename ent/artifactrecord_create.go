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
	"github.com/clipforge/clipforge/ent/artifactrecord"
)

// ArtifactRecordCreate is the builder for creating a ArtifactRecord entity.
type ArtifactRecordCreate struct {
	config
	mutation *ArtifactRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *ArtifactRecordCreate) SetProjectID(v string) *ArtifactRecordCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetURI sets the "uri" field.
func (_c *ArtifactRecordCreate) SetURI(v string) *ArtifactRecordCreate {
	_c.mutation.SetURI(v)
	return _c
}

// SetSeed sets the "seed" field.
func (_c *ArtifactRecordCreate) SetSeed(v int64) *ArtifactRecordCreate {
	_c.mutation.SetSeed(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *ArtifactRecordCreate) SetModel(v string) *ArtifactRecordCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetModelVersion sets the "model_version" field.
func (_c *ArtifactRecordCreate) SetModelVersion(v string) *ArtifactRecordCreate {
	_c.mutation.SetModelVersion(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ArtifactRecordCreate) SetPrompt(v string) *ArtifactRecordCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetCost sets the "cost" field.
func (_c *ArtifactRecordCreate) SetCost(v float64) *ArtifactRecordCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *ArtifactRecordCreate) SetCurrency(v string) *ArtifactRecordCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *ArtifactRecordCreate) SetNillableCurrency(v *string) *ArtifactRecordCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetUseCount sets the "use_count" field.
func (_c *ArtifactRecordCreate) SetUseCount(v int) *ArtifactRecordCreate {
	_c.mutation.SetUseCount(v)
	return _c
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_c *ArtifactRecordCreate) SetNillableUseCount(v *int) *ArtifactRecordCreate {
	if v != nil {
		_c.SetUseCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArtifactRecordCreate) SetCreatedAt(v time.Time) *ArtifactRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArtifactRecordCreate) SetNillableCreatedAt(v *time.Time) *ArtifactRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArtifactRecordCreate) SetID(v string) *ArtifactRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ArtifactRecordMutation object of the builder.
func (_c *ArtifactRecordCreate) Mutation() *ArtifactRecordMutation {
	return _c.mutation
}

// Save creates the ArtifactRecord in the database.
func (_c *ArtifactRecordCreate) Save(ctx context.Context) (*ArtifactRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArtifactRecordCreate) SaveX(ctx context.Context) *ArtifactRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArtifactRecordCreate) defaults() {
	if _, ok := _c.mutation.Currency(); !ok {
		v := artifactrecord.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.UseCount(); !ok {
		v := artifactrecord.DefaultUseCount
		_c.mutation.SetUseCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := artifactrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArtifactRecordCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ArtifactRecord.project_id"`)}
	}
	if _, ok := _c.mutation.URI(); !ok {
		return &ValidationError{Name: "uri", err: errors.New(`ent: missing required field "ArtifactRecord.uri"`)}
	}
	if _, ok := _c.mutation.Seed(); !ok {
		return &ValidationError{Name: "seed", err: errors.New(`ent: missing required field "ArtifactRecord.seed"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ArtifactRecord.model"`)}
	}
	if _, ok := _c.mutation.ModelVersion(); !ok {
		return &ValidationError{Name: "model_version", err: errors.New(`ent: missing required field "ArtifactRecord.model_version"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "ArtifactRecord.prompt"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "ArtifactRecord.cost"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "ArtifactRecord.currency"`)}
	}
	if _, ok := _c.mutation.UseCount(); !ok {
		return &ValidationError{Name: "use_count", err: errors.New(`ent: missing required field "ArtifactRecord.use_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ArtifactRecord.created_at"`)}
	}
	return nil
}

func (_c *ArtifactRecordCreate) sqlSave(ctx context.Context) (*ArtifactRecord, error) {
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
			return nil, fmt.Errorf("unexpected ArtifactRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArtifactRecordCreate) createSpec() (*ArtifactRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ArtifactRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(artifactrecord.Table, sqlgraph.NewFieldSpec(artifactrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(artifactrecord.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.URI(); ok {
		_spec.SetField(artifactrecord.FieldURI, field.TypeString, value)
		_node.URI = value
	}
	if value, ok := _c.mutation.Seed(); ok {
		_spec.SetField(artifactrecord.FieldSeed, field.TypeInt64, value)
		_node.Seed = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(artifactrecord.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.ModelVersion(); ok {
		_spec.SetField(artifactrecord.FieldModelVersion, field.TypeString, value)
		_node.ModelVersion = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(artifactrecord.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(artifactrecord.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(artifactrecord.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.UseCount(); ok {
		_spec.SetField(artifactrecord.FieldUseCount, field.TypeInt, value)
		_node.UseCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(artifactrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ArtifactRecord.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArtifactRecordUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ArtifactRecordCreate) OnConflict(opts ...sql.ConflictOption) *ArtifactRecordUpsertOne {
	_c.conflict = opts
	return &ArtifactRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ArtifactRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArtifactRecordCreate) OnConflictColumns(columns ...string) *ArtifactRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArtifactRecordUpsertOne{
		create: _c,
	}
}

type (
	// ArtifactRecordUpsertOne is the builder for "upsert"-ing
	//  one ArtifactRecord node.
	ArtifactRecordUpsertOne struct {
		create *ArtifactRecordCreate
	}

	// ArtifactRecordUpsert is the "OnConflict" setter.
	ArtifactRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetProjectID sets the "project_id" field.
func (u *ArtifactRecordUpsert) SetProjectID(v string) *ArtifactRecordUpsert {
	u.Set(artifactrecord.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ArtifactRecordUpsert) UpdateProjectID() *ArtifactRecordUpsert {
	u.SetExcluded(artifactrecord.FieldProjectID)
	return u
}

// SetURI sets the "uri" field.
func (u *ArtifactRecordUpsert) SetURI(v string) *ArtifactRecordUpsert {
	u.Set(artifactrecord.FieldURI, v)
	return u
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *ArtifactRecordUpsert) UpdateURI() *ArtifactRecordUpsert {
	u.SetExcluded(artifactrecord.FieldURI)
	return u
}

// SetSeed sets the "seed" field.
func (u *ArtifactRecordUpsert) SetSeed(v int64) *ArtifactRecordUpsert {
	u.Set(artifactrecord.FieldSeed, v)
	return u
}

// UpdateSeed sets the "seed" field to the value that was provided on create.
func (u *ArtifactRecordUpsert) UpdateSeed() *ArtifactRecordUpsert {
	u.SetExcluded(artifactrecord.FieldSeed)
	return u
}

// AddSeed adds v to the "seed" field.
func (u *ArtifactRecordUpsert) AddSeed(v int64) *ArtifactRecordUpsert {
	u.Add(artifactrecord.FieldSeed, v)
	return u
}

// SetModel sets the "model" field.
func (u *ArtifactRecordUpsert) SetModel(v string) *ArtifactRecordUpsert {
	u.Set(artifactrecord.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ArtifactRecordUpsert) UpdateModel() *ArtifactRecordUpsert {
	u.SetExcluded(artifactrecord.FieldModel)
	return u
}

// SetModelVersion sets the "model_version" field.
func (u *ArtifactRecordUpsert) SetModelVersion(v string) *ArtifactRecordUpsert {
	u.Set(artifactrecord.FieldModelVersion, v)
	return u
}

// UpdateModelVersion sets the "model_version" field to the value that was provided on create.
func (u *ArtifactRecordUpsert) UpdateModelVersion() *ArtifactRecordUpsert {
	u.SetExcluded(artifactrecord.FieldModelVersion)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *ArtifactRecordUpsert) SetPrompt(v string) *ArtifactRecordUpsert {
	u.Set(artifactrecord.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *ArtifactRecordUpsert) UpdatePrompt() *ArtifactRecordUpsert {
	u.SetExcluded(artifactrecord.FieldPrompt)
	return u
}

// SetCost sets the "cost" field.
func (u *ArtifactRecordUpsert) SetCost(v float64) *ArtifactRecordUpsert {
	u.Set(artifactrecord.FieldCost, v)
	return u
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *ArtifactRecordUpsert) UpdateCost() *ArtifactRecordUpsert {
	u.SetExcluded(artifactrecord.FieldCost)
	return u
}

// AddCost adds v to the "cost" field.
func (u *ArtifactRecordUpsert) AddCost(v float64) *ArtifactRecordUpsert {
	u.Add(artifactrecord.FieldCost, v)
	return u
}

// SetCurrency sets the "currency" field.
func (u *ArtifactRecordUpsert) SetCurrency(v string) *ArtifactRecordUpsert {
	u.Set(artifactrecord.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *ArtifactRecordUpsert) UpdateCurrency() *ArtifactRecordUpsert {
	u.SetExcluded(artifactrecord.FieldCurrency)
	return u
}

// SetUseCount sets the "use_count" field.
func (u *ArtifactRecordUpsert) SetUseCount(v int) *ArtifactRecordUpsert {
	u.Set(artifactrecord.FieldUseCount, v)
	return u
}

// UpdateUseCount sets the "use_count" field to the value that was provided on create.
func (u *ArtifactRecordUpsert) UpdateUseCount() *ArtifactRecordUpsert {
	u.SetExcluded(artifactrecord.FieldUseCount)
	return u
}

// AddUseCount adds v to the "use_count" field.
func (u *ArtifactRecordUpsert) AddUseCount(v int) *ArtifactRecordUpsert {
	u.Add(artifactrecord.FieldUseCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ArtifactRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(artifactrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ArtifactRecordUpsertOne) UpdateNewValues() *ArtifactRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(artifactrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(artifactrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ArtifactRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ArtifactRecordUpsertOne) Ignore() *ArtifactRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArtifactRecordUpsertOne) DoNothing() *ArtifactRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArtifactRecordCreate.OnConflict
// documentation for more info.
func (u *ArtifactRecordUpsertOne) Update(set func(*ArtifactRecordUpsert)) *ArtifactRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArtifactRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ArtifactRecordUpsertOne) SetProjectID(v string) *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ArtifactRecordUpsertOne) UpdateProjectID() *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateProjectID()
	})
}

// SetURI sets the "uri" field.
func (u *ArtifactRecordUpsertOne) SetURI(v string) *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetURI(v)
	})
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *ArtifactRecordUpsertOne) UpdateURI() *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateURI()
	})
}

// SetSeed sets the "seed" field.
func (u *ArtifactRecordUpsertOne) SetSeed(v int64) *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetSeed(v)
	})
}

// AddSeed adds v to the "seed" field.
func (u *ArtifactRecordUpsertOne) AddSeed(v int64) *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.AddSeed(v)
	})
}

// UpdateSeed sets the "seed" field to the value that was provided on create.
func (u *ArtifactRecordUpsertOne) UpdateSeed() *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateSeed()
	})
}

// SetModel sets the "model" field.
func (u *ArtifactRecordUpsertOne) SetModel(v string) *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ArtifactRecordUpsertOne) UpdateModel() *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateModel()
	})
}

// SetModelVersion sets the "model_version" field.
func (u *ArtifactRecordUpsertOne) SetModelVersion(v string) *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetModelVersion(v)
	})
}

// UpdateModelVersion sets the "model_version" field to the value that was provided on create.
func (u *ArtifactRecordUpsertOne) UpdateModelVersion() *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateModelVersion()
	})
}

// SetPrompt sets the "prompt" field.
func (u *ArtifactRecordUpsertOne) SetPrompt(v string) *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *ArtifactRecordUpsertOne) UpdatePrompt() *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdatePrompt()
	})
}

// SetCost sets the "cost" field.
func (u *ArtifactRecordUpsertOne) SetCost(v float64) *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *ArtifactRecordUpsertOne) AddCost(v float64) *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *ArtifactRecordUpsertOne) UpdateCost() *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateCost()
	})
}

// SetCurrency sets the "currency" field.
func (u *ArtifactRecordUpsertOne) SetCurrency(v string) *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *ArtifactRecordUpsertOne) UpdateCurrency() *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateCurrency()
	})
}

// SetUseCount sets the "use_count" field.
func (u *ArtifactRecordUpsertOne) SetUseCount(v int) *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetUseCount(v)
	})
}

// AddUseCount adds v to the "use_count" field.
func (u *ArtifactRecordUpsertOne) AddUseCount(v int) *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.AddUseCount(v)
	})
}

// UpdateUseCount sets the "use_count" field to the value that was provided on create.
func (u *ArtifactRecordUpsertOne) UpdateUseCount() *ArtifactRecordUpsertOne {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateUseCount()
	})
}

// Exec executes the query.
func (u *ArtifactRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArtifactRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArtifactRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ArtifactRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ArtifactRecordUpsertOne.ID is not supported by MySQL driver. Use ArtifactRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ArtifactRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ArtifactRecordCreateBulk is the builder for creating many ArtifactRecord entities in bulk.
type ArtifactRecordCreateBulk struct {
	config
	err      error
	builders []*ArtifactRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the ArtifactRecord entities in the database.
func (_c *ArtifactRecordCreateBulk) Save(ctx context.Context) ([]*ArtifactRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ArtifactRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArtifactRecordMutation)
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
func (_c *ArtifactRecordCreateBulk) SaveX(ctx context.Context) []*ArtifactRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ArtifactRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArtifactRecordUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ArtifactRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *ArtifactRecordUpsertBulk {
	_c.conflict = opts
	return &ArtifactRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ArtifactRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArtifactRecordCreateBulk) OnConflictColumns(columns ...string) *ArtifactRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArtifactRecordUpsertBulk{
		create: _c,
	}
}

// ArtifactRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of ArtifactRecord nodes.
type ArtifactRecordUpsertBulk struct {
	create *ArtifactRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ArtifactRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(artifactrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ArtifactRecordUpsertBulk) UpdateNewValues() *ArtifactRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(artifactrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(artifactrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ArtifactRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ArtifactRecordUpsertBulk) Ignore() *ArtifactRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArtifactRecordUpsertBulk) DoNothing() *ArtifactRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArtifactRecordCreateBulk.OnConflict
// documentation for more info.
func (u *ArtifactRecordUpsertBulk) Update(set func(*ArtifactRecordUpsert)) *ArtifactRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArtifactRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ArtifactRecordUpsertBulk) SetProjectID(v string) *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ArtifactRecordUpsertBulk) UpdateProjectID() *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateProjectID()
	})
}

// SetURI sets the "uri" field.
func (u *ArtifactRecordUpsertBulk) SetURI(v string) *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetURI(v)
	})
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *ArtifactRecordUpsertBulk) UpdateURI() *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateURI()
	})
}

// SetSeed sets the "seed" field.
func (u *ArtifactRecordUpsertBulk) SetSeed(v int64) *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetSeed(v)
	})
}

// AddSeed adds v to the "seed" field.
func (u *ArtifactRecordUpsertBulk) AddSeed(v int64) *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.AddSeed(v)
	})
}

// UpdateSeed sets the "seed" field to the value that was provided on create.
func (u *ArtifactRecordUpsertBulk) UpdateSeed() *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateSeed()
	})
}

// SetModel sets the "model" field.
func (u *ArtifactRecordUpsertBulk) SetModel(v string) *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ArtifactRecordUpsertBulk) UpdateModel() *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateModel()
	})
}

// SetModelVersion sets the "model_version" field.
func (u *ArtifactRecordUpsertBulk) SetModelVersion(v string) *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetModelVersion(v)
	})
}

// UpdateModelVersion sets the "model_version" field to the value that was provided on create.
func (u *ArtifactRecordUpsertBulk) UpdateModelVersion() *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateModelVersion()
	})
}

// SetPrompt sets the "prompt" field.
func (u *ArtifactRecordUpsertBulk) SetPrompt(v string) *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *ArtifactRecordUpsertBulk) UpdatePrompt() *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdatePrompt()
	})
}

// SetCost sets the "cost" field.
func (u *ArtifactRecordUpsertBulk) SetCost(v float64) *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *ArtifactRecordUpsertBulk) AddCost(v float64) *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *ArtifactRecordUpsertBulk) UpdateCost() *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateCost()
	})
}

// SetCurrency sets the "currency" field.
func (u *ArtifactRecordUpsertBulk) SetCurrency(v string) *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *ArtifactRecordUpsertBulk) UpdateCurrency() *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateCurrency()
	})
}

// SetUseCount sets the "use_count" field.
func (u *ArtifactRecordUpsertBulk) SetUseCount(v int) *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.SetUseCount(v)
	})
}

// AddUseCount adds v to the "use_count" field.
func (u *ArtifactRecordUpsertBulk) AddUseCount(v int) *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.AddUseCount(v)
	})
}

// UpdateUseCount sets the "use_count" field to the value that was provided on create.
func (u *ArtifactRecordUpsertBulk) UpdateUseCount() *ArtifactRecordUpsertBulk {
	return u.Update(func(s *ArtifactRecordUpsert) {
		s.UpdateUseCount()
	})
}

// Exec executes the query.
func (u *ArtifactRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ArtifactRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArtifactRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArtifactRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
