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
	"github.com/clipforge/clipforge/ent/project"
	"github.com/clipforge/clipforge/pkg/models"
)

// ProjectCreate is the builder for creating a Project entity.
type ProjectCreate struct {
	config
	mutation *ProjectMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVersion sets the "version" field.
func (_c *ProjectCreate) SetVersion(v int64) *ProjectCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableVersion(v *int64) *ProjectCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProjectCreate) SetStatus(v project.Status) *ProjectCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableStatus(v *project.Status) *ProjectCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSpec sets the "spec" field.
func (_c *ProjectCreate) SetSpec(v models.GlobalSpec) *ProjectCreate {
	_c.mutation.SetSpec(v)
	return _c
}

// SetBudget sets the "budget" field.
func (_c *ProjectCreate) SetBudget(v models.Budget) *ProjectCreate {
	_c.mutation.SetBudget(v)
	return _c
}

// SetDnaBank sets the "dna_bank" field.
func (_c *ProjectCreate) SetDnaBank(v map[string]models.DNAEntry) *ProjectCreate {
	_c.mutation.SetDnaBank(v)
	return _c
}

// SetShots sets the "shots" field.
func (_c *ProjectCreate) SetShots(v map[string]models.Shot) *ProjectCreate {
	_c.mutation.SetShots(v)
	return _c
}

// SetTasks sets the "tasks" field.
func (_c *ProjectCreate) SetTasks(v map[string]models.Task) *ProjectCreate {
	_c.mutation.SetTasks(v)
	return _c
}

// SetLocks sets the "locks" field.
func (_c *ProjectCreate) SetLocks(v map[string]models.LockInfo) *ProjectCreate {
	_c.mutation.SetLocks(v)
	return _c
}

// SetArtifactIndex sets the "artifact_index" field.
func (_c *ProjectCreate) SetArtifactIndex(v map[string]models.ArtifactMeta) *ProjectCreate {
	_c.mutation.SetArtifactIndex(v)
	return _c
}

// SetErrorLog sets the "error_log" field.
func (_c *ProjectCreate) SetErrorLog(v []models.ErrorEntry) *ProjectCreate {
	_c.mutation.SetErrorLog(v)
	return _c
}

// SetChangeLog sets the "change_log" field.
func (_c *ProjectCreate) SetChangeLog(v []models.ChangeEntry) *ProjectCreate {
	_c.mutation.SetChangeLog(v)
	return _c
}

// SetApprovals sets the "approvals" field.
func (_c *ProjectCreate) SetApprovals(v map[string]models.ApprovalRequest) *ProjectCreate {
	_c.mutation.SetApprovals(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectCreate) SetCreatedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableCreatedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectCreate) SetUpdatedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableUpdatedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ProjectCreate) SetCompletedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableCompletedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ProjectCreate) SetDeletedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableDeletedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectCreate) SetID(v string) *ProjectCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProjectMutation object of the builder.
func (_c *ProjectCreate) Mutation() *ProjectMutation {
	return _c.mutation
}

// Save creates the Project in the database.
func (_c *ProjectCreate) Save(ctx context.Context) (*Project, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectCreate) SaveX(ctx context.Context) *Project {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := project.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := project.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := project.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := project.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectCreate) check() error {
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Project.version"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Project.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Spec(); !ok {
		return &ValidationError{Name: "spec", err: errors.New(`ent: missing required field "Project.spec"`)}
	}
	if _, ok := _c.mutation.Budget(); !ok {
		return &ValidationError{Name: "budget", err: errors.New(`ent: missing required field "Project.budget"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Project.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Project.updated_at"`)}
	}
	return nil
}

func (_c *ProjectCreate) sqlSave(ctx context.Context) (*Project, error) {
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
			return nil, fmt.Errorf("unexpected Project.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectCreate) createSpec() (*Project, *sqlgraph.CreateSpec) {
	var (
		_node = &Project{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(project.Table, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(project.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Spec(); ok {
		_spec.SetField(project.FieldSpec, field.TypeJSON, value)
		_node.Spec = value
	}
	if value, ok := _c.mutation.Budget(); ok {
		_spec.SetField(project.FieldBudget, field.TypeJSON, value)
		_node.Budget = value
	}
	if value, ok := _c.mutation.DnaBank(); ok {
		_spec.SetField(project.FieldDnaBank, field.TypeJSON, value)
		_node.DnaBank = value
	}
	if value, ok := _c.mutation.Shots(); ok {
		_spec.SetField(project.FieldShots, field.TypeJSON, value)
		_node.Shots = value
	}
	if value, ok := _c.mutation.Tasks(); ok {
		_spec.SetField(project.FieldTasks, field.TypeJSON, value)
		_node.Tasks = value
	}
	if value, ok := _c.mutation.Locks(); ok {
		_spec.SetField(project.FieldLocks, field.TypeJSON, value)
		_node.Locks = value
	}
	if value, ok := _c.mutation.ArtifactIndex(); ok {
		_spec.SetField(project.FieldArtifactIndex, field.TypeJSON, value)
		_node.ArtifactIndex = value
	}
	if value, ok := _c.mutation.ErrorLog(); ok {
		_spec.SetField(project.FieldErrorLog, field.TypeJSON, value)
		_node.ErrorLog = value
	}
	if value, ok := _c.mutation.ChangeLog(); ok {
		_spec.SetField(project.FieldChangeLog, field.TypeJSON, value)
		_node.ChangeLog = value
	}
	if value, ok := _c.mutation.Approvals(); ok {
		_spec.SetField(project.FieldApprovals, field.TypeJSON, value)
		_node.Approvals = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(project.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(project.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(project.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Project.Create().
//		SetVersion(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectUpsert) {
//			SetVersion(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectCreate) OnConflict(opts ...sql.ConflictOption) *ProjectUpsertOne {
	_c.conflict = opts
	return &ProjectUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectCreate) OnConflictColumns(columns ...string) *ProjectUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectUpsertOne{
		create: _c,
	}
}

type (
	// ProjectUpsertOne is the builder for "upsert"-ing
	//  one Project node.
	ProjectUpsertOne struct {
		create *ProjectCreate
	}

	// ProjectUpsert is the "OnConflict" setter.
	ProjectUpsert struct {
		*sql.UpdateSet
	}
)

// SetVersion sets the "version" field.
func (u *ProjectUpsert) SetVersion(v int64) *ProjectUpsert {
	u.Set(project.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateVersion() *ProjectUpsert {
	u.SetExcluded(project.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *ProjectUpsert) AddVersion(v int64) *ProjectUpsert {
	u.Add(project.FieldVersion, v)
	return u
}

// SetStatus sets the "status" field.
func (u *ProjectUpsert) SetStatus(v project.Status) *ProjectUpsert {
	u.Set(project.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateStatus() *ProjectUpsert {
	u.SetExcluded(project.FieldStatus)
	return u
}

// SetSpec sets the "spec" field.
func (u *ProjectUpsert) SetSpec(v models.GlobalSpec) *ProjectUpsert {
	u.Set(project.FieldSpec, v)
	return u
}

// UpdateSpec sets the "spec" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateSpec() *ProjectUpsert {
	u.SetExcluded(project.FieldSpec)
	return u
}

// SetBudget sets the "budget" field.
func (u *ProjectUpsert) SetBudget(v models.Budget) *ProjectUpsert {
	u.Set(project.FieldBudget, v)
	return u
}

// UpdateBudget sets the "budget" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateBudget() *ProjectUpsert {
	u.SetExcluded(project.FieldBudget)
	return u
}

// SetDnaBank sets the "dna_bank" field.
func (u *ProjectUpsert) SetDnaBank(v map[string]models.DNAEntry) *ProjectUpsert {
	u.Set(project.FieldDnaBank, v)
	return u
}

// UpdateDnaBank sets the "dna_bank" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateDnaBank() *ProjectUpsert {
	u.SetExcluded(project.FieldDnaBank)
	return u
}

// ClearDnaBank clears the value of the "dna_bank" field.
func (u *ProjectUpsert) ClearDnaBank() *ProjectUpsert {
	u.SetNull(project.FieldDnaBank)
	return u
}

// SetShots sets the "shots" field.
func (u *ProjectUpsert) SetShots(v map[string]models.Shot) *ProjectUpsert {
	u.Set(project.FieldShots, v)
	return u
}

// UpdateShots sets the "shots" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateShots() *ProjectUpsert {
	u.SetExcluded(project.FieldShots)
	return u
}

// ClearShots clears the value of the "shots" field.
func (u *ProjectUpsert) ClearShots() *ProjectUpsert {
	u.SetNull(project.FieldShots)
	return u
}

// SetTasks sets the "tasks" field.
func (u *ProjectUpsert) SetTasks(v map[string]models.Task) *ProjectUpsert {
	u.Set(project.FieldTasks, v)
	return u
}

// UpdateTasks sets the "tasks" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateTasks() *ProjectUpsert {
	u.SetExcluded(project.FieldTasks)
	return u
}

// ClearTasks clears the value of the "tasks" field.
func (u *ProjectUpsert) ClearTasks() *ProjectUpsert {
	u.SetNull(project.FieldTasks)
	return u
}

// SetLocks sets the "locks" field.
func (u *ProjectUpsert) SetLocks(v map[string]models.LockInfo) *ProjectUpsert {
	u.Set(project.FieldLocks, v)
	return u
}

// UpdateLocks sets the "locks" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateLocks() *ProjectUpsert {
	u.SetExcluded(project.FieldLocks)
	return u
}

// ClearLocks clears the value of the "locks" field.
func (u *ProjectUpsert) ClearLocks() *ProjectUpsert {
	u.SetNull(project.FieldLocks)
	return u
}

// SetArtifactIndex sets the "artifact_index" field.
func (u *ProjectUpsert) SetArtifactIndex(v map[string]models.ArtifactMeta) *ProjectUpsert {
	u.Set(project.FieldArtifactIndex, v)
	return u
}

// UpdateArtifactIndex sets the "artifact_index" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateArtifactIndex() *ProjectUpsert {
	u.SetExcluded(project.FieldArtifactIndex)
	return u
}

// ClearArtifactIndex clears the value of the "artifact_index" field.
func (u *ProjectUpsert) ClearArtifactIndex() *ProjectUpsert {
	u.SetNull(project.FieldArtifactIndex)
	return u
}

// SetErrorLog sets the "error_log" field.
func (u *ProjectUpsert) SetErrorLog(v []models.ErrorEntry) *ProjectUpsert {
	u.Set(project.FieldErrorLog, v)
	return u
}

// UpdateErrorLog sets the "error_log" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateErrorLog() *ProjectUpsert {
	u.SetExcluded(project.FieldErrorLog)
	return u
}

// ClearErrorLog clears the value of the "error_log" field.
func (u *ProjectUpsert) ClearErrorLog() *ProjectUpsert {
	u.SetNull(project.FieldErrorLog)
	return u
}

// SetChangeLog sets the "change_log" field.
func (u *ProjectUpsert) SetChangeLog(v []models.ChangeEntry) *ProjectUpsert {
	u.Set(project.FieldChangeLog, v)
	return u
}

// UpdateChangeLog sets the "change_log" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateChangeLog() *ProjectUpsert {
	u.SetExcluded(project.FieldChangeLog)
	return u
}

// ClearChangeLog clears the value of the "change_log" field.
func (u *ProjectUpsert) ClearChangeLog() *ProjectUpsert {
	u.SetNull(project.FieldChangeLog)
	return u
}

// SetApprovals sets the "approvals" field.
func (u *ProjectUpsert) SetApprovals(v map[string]models.ApprovalRequest) *ProjectUpsert {
	u.Set(project.FieldApprovals, v)
	return u
}

// UpdateApprovals sets the "approvals" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateApprovals() *ProjectUpsert {
	u.SetExcluded(project.FieldApprovals)
	return u
}

// ClearApprovals clears the value of the "approvals" field.
func (u *ProjectUpsert) ClearApprovals() *ProjectUpsert {
	u.SetNull(project.FieldApprovals)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectUpsert) SetUpdatedAt(v time.Time) *ProjectUpsert {
	u.Set(project.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateUpdatedAt() *ProjectUpsert {
	u.SetExcluded(project.FieldUpdatedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ProjectUpsert) SetCompletedAt(v time.Time) *ProjectUpsert {
	u.Set(project.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateCompletedAt() *ProjectUpsert {
	u.SetExcluded(project.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ProjectUpsert) ClearCompletedAt() *ProjectUpsert {
	u.SetNull(project.FieldCompletedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ProjectUpsert) SetDeletedAt(v time.Time) *ProjectUpsert {
	u.Set(project.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateDeletedAt() *ProjectUpsert {
	u.SetExcluded(project.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ProjectUpsert) ClearDeletedAt() *ProjectUpsert {
	u.SetNull(project.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(project.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectUpsertOne) UpdateNewValues() *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(project.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(project.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Project.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProjectUpsertOne) Ignore() *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectUpsertOne) DoNothing() *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectCreate.OnConflict
// documentation for more info.
func (u *ProjectUpsertOne) Update(set func(*ProjectUpsert)) *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetVersion sets the "version" field.
func (u *ProjectUpsertOne) SetVersion(v int64) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *ProjectUpsertOne) AddVersion(v int64) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateVersion() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateVersion()
	})
}

// SetStatus sets the "status" field.
func (u *ProjectUpsertOne) SetStatus(v project.Status) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateStatus() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateStatus()
	})
}

// SetSpec sets the "spec" field.
func (u *ProjectUpsertOne) SetSpec(v models.GlobalSpec) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetSpec(v)
	})
}

// UpdateSpec sets the "spec" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateSpec() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateSpec()
	})
}

// SetBudget sets the "budget" field.
func (u *ProjectUpsertOne) SetBudget(v models.Budget) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetBudget(v)
	})
}

// UpdateBudget sets the "budget" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateBudget() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateBudget()
	})
}

// SetDnaBank sets the "dna_bank" field.
func (u *ProjectUpsertOne) SetDnaBank(v map[string]models.DNAEntry) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetDnaBank(v)
	})
}

// UpdateDnaBank sets the "dna_bank" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateDnaBank() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateDnaBank()
	})
}

// ClearDnaBank clears the value of the "dna_bank" field.
func (u *ProjectUpsertOne) ClearDnaBank() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearDnaBank()
	})
}

// SetShots sets the "shots" field.
func (u *ProjectUpsertOne) SetShots(v map[string]models.Shot) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetShots(v)
	})
}

// UpdateShots sets the "shots" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateShots() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateShots()
	})
}

// ClearShots clears the value of the "shots" field.
func (u *ProjectUpsertOne) ClearShots() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearShots()
	})
}

// SetTasks sets the "tasks" field.
func (u *ProjectUpsertOne) SetTasks(v map[string]models.Task) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetTasks(v)
	})
}

// UpdateTasks sets the "tasks" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateTasks() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateTasks()
	})
}

// ClearTasks clears the value of the "tasks" field.
func (u *ProjectUpsertOne) ClearTasks() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearTasks()
	})
}

// SetLocks sets the "locks" field.
func (u *ProjectUpsertOne) SetLocks(v map[string]models.LockInfo) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetLocks(v)
	})
}

// UpdateLocks sets the "locks" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateLocks() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateLocks()
	})
}

// ClearLocks clears the value of the "locks" field.
func (u *ProjectUpsertOne) ClearLocks() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearLocks()
	})
}

// SetArtifactIndex sets the "artifact_index" field.
func (u *ProjectUpsertOne) SetArtifactIndex(v map[string]models.ArtifactMeta) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetArtifactIndex(v)
	})
}

// UpdateArtifactIndex sets the "artifact_index" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateArtifactIndex() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateArtifactIndex()
	})
}

// ClearArtifactIndex clears the value of the "artifact_index" field.
func (u *ProjectUpsertOne) ClearArtifactIndex() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearArtifactIndex()
	})
}

// SetErrorLog sets the "error_log" field.
func (u *ProjectUpsertOne) SetErrorLog(v []models.ErrorEntry) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetErrorLog(v)
	})
}

// UpdateErrorLog sets the "error_log" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateErrorLog() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateErrorLog()
	})
}

// ClearErrorLog clears the value of the "error_log" field.
func (u *ProjectUpsertOne) ClearErrorLog() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearErrorLog()
	})
}

// SetChangeLog sets the "change_log" field.
func (u *ProjectUpsertOne) SetChangeLog(v []models.ChangeEntry) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetChangeLog(v)
	})
}

// UpdateChangeLog sets the "change_log" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateChangeLog() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateChangeLog()
	})
}

// ClearChangeLog clears the value of the "change_log" field.
func (u *ProjectUpsertOne) ClearChangeLog() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearChangeLog()
	})
}

// SetApprovals sets the "approvals" field.
func (u *ProjectUpsertOne) SetApprovals(v map[string]models.ApprovalRequest) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetApprovals(v)
	})
}

// UpdateApprovals sets the "approvals" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateApprovals() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateApprovals()
	})
}

// ClearApprovals clears the value of the "approvals" field.
func (u *ProjectUpsertOne) ClearApprovals() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearApprovals()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectUpsertOne) SetUpdatedAt(v time.Time) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateUpdatedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ProjectUpsertOne) SetCompletedAt(v time.Time) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateCompletedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ProjectUpsertOne) ClearCompletedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ProjectUpsertOne) SetDeletedAt(v time.Time) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateDeletedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ProjectUpsertOne) ClearDeletedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ProjectUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProjectUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProjectUpsertOne.ID is not supported by MySQL driver. Use ProjectUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProjectUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProjectCreateBulk is the builder for creating many Project entities in bulk.
type ProjectCreateBulk struct {
	config
	err      error
	builders []*ProjectCreate
	conflict []sql.ConflictOption
}

// Save creates the Project entities in the database.
func (_c *ProjectCreateBulk) Save(ctx context.Context) ([]*Project, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Project, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectMutation)
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
func (_c *ProjectCreateBulk) SaveX(ctx context.Context) []*Project {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Project.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectUpsert) {
//			SetVersion(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProjectUpsertBulk {
	_c.conflict = opts
	return &ProjectUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectCreateBulk) OnConflictColumns(columns ...string) *ProjectUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectUpsertBulk{
		create: _c,
	}
}

// ProjectUpsertBulk is the builder for "upsert"-ing
// a bulk of Project nodes.
type ProjectUpsertBulk struct {
	create *ProjectCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(project.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectUpsertBulk) UpdateNewValues() *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(project.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(project.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProjectUpsertBulk) Ignore() *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectUpsertBulk) DoNothing() *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectCreateBulk.OnConflict
// documentation for more info.
func (u *ProjectUpsertBulk) Update(set func(*ProjectUpsert)) *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetVersion sets the "version" field.
func (u *ProjectUpsertBulk) SetVersion(v int64) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *ProjectUpsertBulk) AddVersion(v int64) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateVersion() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateVersion()
	})
}

// SetStatus sets the "status" field.
func (u *ProjectUpsertBulk) SetStatus(v project.Status) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateStatus() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateStatus()
	})
}

// SetSpec sets the "spec" field.
func (u *ProjectUpsertBulk) SetSpec(v models.GlobalSpec) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetSpec(v)
	})
}

// UpdateSpec sets the "spec" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateSpec() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateSpec()
	})
}

// SetBudget sets the "budget" field.
func (u *ProjectUpsertBulk) SetBudget(v models.Budget) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetBudget(v)
	})
}

// UpdateBudget sets the "budget" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateBudget() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateBudget()
	})
}

// SetDnaBank sets the "dna_bank" field.
func (u *ProjectUpsertBulk) SetDnaBank(v map[string]models.DNAEntry) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetDnaBank(v)
	})
}

// UpdateDnaBank sets the "dna_bank" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateDnaBank() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateDnaBank()
	})
}

// ClearDnaBank clears the value of the "dna_bank" field.
func (u *ProjectUpsertBulk) ClearDnaBank() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearDnaBank()
	})
}

// SetShots sets the "shots" field.
func (u *ProjectUpsertBulk) SetShots(v map[string]models.Shot) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetShots(v)
	})
}

// UpdateShots sets the "shots" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateShots() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateShots()
	})
}

// ClearShots clears the value of the "shots" field.
func (u *ProjectUpsertBulk) ClearShots() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearShots()
	})
}

// SetTasks sets the "tasks" field.
func (u *ProjectUpsertBulk) SetTasks(v map[string]models.Task) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetTasks(v)
	})
}

// UpdateTasks sets the "tasks" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateTasks() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateTasks()
	})
}

// ClearTasks clears the value of the "tasks" field.
func (u *ProjectUpsertBulk) ClearTasks() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearTasks()
	})
}

// SetLocks sets the "locks" field.
func (u *ProjectUpsertBulk) SetLocks(v map[string]models.LockInfo) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetLocks(v)
	})
}

// UpdateLocks sets the "locks" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateLocks() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateLocks()
	})
}

// ClearLocks clears the value of the "locks" field.
func (u *ProjectUpsertBulk) ClearLocks() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearLocks()
	})
}

// SetArtifactIndex sets the "artifact_index" field.
func (u *ProjectUpsertBulk) SetArtifactIndex(v map[string]models.ArtifactMeta) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetArtifactIndex(v)
	})
}

// UpdateArtifactIndex sets the "artifact_index" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateArtifactIndex() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateArtifactIndex()
	})
}

// ClearArtifactIndex clears the value of the "artifact_index" field.
func (u *ProjectUpsertBulk) ClearArtifactIndex() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearArtifactIndex()
	})
}

// SetErrorLog sets the "error_log" field.
func (u *ProjectUpsertBulk) SetErrorLog(v []models.ErrorEntry) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetErrorLog(v)
	})
}

// UpdateErrorLog sets the "error_log" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateErrorLog() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateErrorLog()
	})
}

// ClearErrorLog clears the value of the "error_log" field.
func (u *ProjectUpsertBulk) ClearErrorLog() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearErrorLog()
	})
}

// SetChangeLog sets the "change_log" field.
func (u *ProjectUpsertBulk) SetChangeLog(v []models.ChangeEntry) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetChangeLog(v)
	})
}

// UpdateChangeLog sets the "change_log" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateChangeLog() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateChangeLog()
	})
}

// ClearChangeLog clears the value of the "change_log" field.
func (u *ProjectUpsertBulk) ClearChangeLog() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearChangeLog()
	})
}

// SetApprovals sets the "approvals" field.
func (u *ProjectUpsertBulk) SetApprovals(v map[string]models.ApprovalRequest) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetApprovals(v)
	})
}

// UpdateApprovals sets the "approvals" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateApprovals() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateApprovals()
	})
}

// ClearApprovals clears the value of the "approvals" field.
func (u *ProjectUpsertBulk) ClearApprovals() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearApprovals()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectUpsertBulk) SetUpdatedAt(v time.Time) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateUpdatedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ProjectUpsertBulk) SetCompletedAt(v time.Time) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateCompletedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ProjectUpsertBulk) ClearCompletedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ProjectUpsertBulk) SetDeletedAt(v time.Time) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateDeletedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ProjectUpsertBulk) ClearDeletedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ProjectUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProjectCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
