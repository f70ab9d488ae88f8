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
	"github.com/clipforge/clipforge/ent/predicate"
	"github.com/clipforge/clipforge/ent/project"
	"github.com/clipforge/clipforge/pkg/models"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProjectUpdate) SetVersion(v int64) *ProjectUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableVersion(v *int64) *ProjectUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProjectUpdate) AddVersion(v int64) *ProjectUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectUpdate) SetStatus(v project.Status) *ProjectUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableStatus(v *project.Status) *ProjectUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSpec sets the "spec" field.
func (_u *ProjectUpdate) SetSpec(v models.GlobalSpec) *ProjectUpdate {
	_u.mutation.SetSpec(v)
	return _u
}

// SetNillableSpec sets the "spec" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableSpec(v *models.GlobalSpec) *ProjectUpdate {
	if v != nil {
		_u.SetSpec(*v)
	}
	return _u
}

// SetBudget sets the "budget" field.
func (_u *ProjectUpdate) SetBudget(v models.Budget) *ProjectUpdate {
	_u.mutation.SetBudget(v)
	return _u
}

// SetNillableBudget sets the "budget" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableBudget(v *models.Budget) *ProjectUpdate {
	if v != nil {
		_u.SetBudget(*v)
	}
	return _u
}

// SetDnaBank sets the "dna_bank" field.
func (_u *ProjectUpdate) SetDnaBank(v map[string]models.DNAEntry) *ProjectUpdate {
	_u.mutation.SetDnaBank(v)
	return _u
}

// ClearDnaBank clears the value of the "dna_bank" field.
func (_u *ProjectUpdate) ClearDnaBank() *ProjectUpdate {
	_u.mutation.ClearDnaBank()
	return _u
}

// SetShots sets the "shots" field.
func (_u *ProjectUpdate) SetShots(v map[string]models.Shot) *ProjectUpdate {
	_u.mutation.SetShots(v)
	return _u
}

// ClearShots clears the value of the "shots" field.
func (_u *ProjectUpdate) ClearShots() *ProjectUpdate {
	_u.mutation.ClearShots()
	return _u
}

// SetTasks sets the "tasks" field.
func (_u *ProjectUpdate) SetTasks(v map[string]models.Task) *ProjectUpdate {
	_u.mutation.SetTasks(v)
	return _u
}

// ClearTasks clears the value of the "tasks" field.
func (_u *ProjectUpdate) ClearTasks() *ProjectUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// SetLocks sets the "locks" field.
func (_u *ProjectUpdate) SetLocks(v map[string]models.LockInfo) *ProjectUpdate {
	_u.mutation.SetLocks(v)
	return _u
}

// ClearLocks clears the value of the "locks" field.
func (_u *ProjectUpdate) ClearLocks() *ProjectUpdate {
	_u.mutation.ClearLocks()
	return _u
}

// SetArtifactIndex sets the "artifact_index" field.
func (_u *ProjectUpdate) SetArtifactIndex(v map[string]models.ArtifactMeta) *ProjectUpdate {
	_u.mutation.SetArtifactIndex(v)
	return _u
}

// ClearArtifactIndex clears the value of the "artifact_index" field.
func (_u *ProjectUpdate) ClearArtifactIndex() *ProjectUpdate {
	_u.mutation.ClearArtifactIndex()
	return _u
}

// SetErrorLog sets the "error_log" field.
func (_u *ProjectUpdate) SetErrorLog(v []models.ErrorEntry) *ProjectUpdate {
	_u.mutation.SetErrorLog(v)
	return _u
}

// AppendErrorLog appends value to the "error_log" field.
func (_u *ProjectUpdate) AppendErrorLog(v []models.ErrorEntry) *ProjectUpdate {
	_u.mutation.AppendErrorLog(v)
	return _u
}

// ClearErrorLog clears the value of the "error_log" field.
func (_u *ProjectUpdate) ClearErrorLog() *ProjectUpdate {
	_u.mutation.ClearErrorLog()
	return _u
}

// SetChangeLog sets the "change_log" field.
func (_u *ProjectUpdate) SetChangeLog(v []models.ChangeEntry) *ProjectUpdate {
	_u.mutation.SetChangeLog(v)
	return _u
}

// AppendChangeLog appends value to the "change_log" field.
func (_u *ProjectUpdate) AppendChangeLog(v []models.ChangeEntry) *ProjectUpdate {
	_u.mutation.AppendChangeLog(v)
	return _u
}

// ClearChangeLog clears the value of the "change_log" field.
func (_u *ProjectUpdate) ClearChangeLog() *ProjectUpdate {
	_u.mutation.ClearChangeLog()
	return _u
}

// SetApprovals sets the "approvals" field.
func (_u *ProjectUpdate) SetApprovals(v map[string]models.ApprovalRequest) *ProjectUpdate {
	_u.mutation.SetApprovals(v)
	return _u
}

// ClearApprovals clears the value of the "approvals" field.
func (_u *ProjectUpdate) ClearApprovals() *ProjectUpdate {
	_u.mutation.ClearApprovals()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableUpdatedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProjectUpdate) SetCompletedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableCompletedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProjectUpdate) ClearCompletedAt() *ProjectUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ProjectUpdate) SetDeletedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableDeletedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ProjectUpdate) ClearDeletedAt() *ProjectUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(project.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(project.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Spec(); ok {
		_spec.SetField(project.FieldSpec, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Budget(); ok {
		_spec.SetField(project.FieldBudget, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DnaBank(); ok {
		_spec.SetField(project.FieldDnaBank, field.TypeJSON, value)
	}
	if _u.mutation.DnaBankCleared() {
		_spec.ClearField(project.FieldDnaBank, field.TypeJSON)
	}
	if value, ok := _u.mutation.Shots(); ok {
		_spec.SetField(project.FieldShots, field.TypeJSON, value)
	}
	if _u.mutation.ShotsCleared() {
		_spec.ClearField(project.FieldShots, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tasks(); ok {
		_spec.SetField(project.FieldTasks, field.TypeJSON, value)
	}
	if _u.mutation.TasksCleared() {
		_spec.ClearField(project.FieldTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.Locks(); ok {
		_spec.SetField(project.FieldLocks, field.TypeJSON, value)
	}
	if _u.mutation.LocksCleared() {
		_spec.ClearField(project.FieldLocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.ArtifactIndex(); ok {
		_spec.SetField(project.FieldArtifactIndex, field.TypeJSON, value)
	}
	if _u.mutation.ArtifactIndexCleared() {
		_spec.ClearField(project.FieldArtifactIndex, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorLog(); ok {
		_spec.SetField(project.FieldErrorLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldErrorLog, value)
		})
	}
	if _u.mutation.ErrorLogCleared() {
		_spec.ClearField(project.FieldErrorLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChangeLog(); ok {
		_spec.SetField(project.FieldChangeLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChangeLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldChangeLog, value)
		})
	}
	if _u.mutation.ChangeLogCleared() {
		_spec.ClearField(project.FieldChangeLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.Approvals(); ok {
		_spec.SetField(project.FieldApprovals, field.TypeJSON, value)
	}
	if _u.mutation.ApprovalsCleared() {
		_spec.ClearField(project.FieldApprovals, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(project.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(project.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(project.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(project.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetVersion sets the "version" field.
func (_u *ProjectUpdateOne) SetVersion(v int64) *ProjectUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableVersion(v *int64) *ProjectUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProjectUpdateOne) AddVersion(v int64) *ProjectUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectUpdateOne) SetStatus(v project.Status) *ProjectUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableStatus(v *project.Status) *ProjectUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSpec sets the "spec" field.
func (_u *ProjectUpdateOne) SetSpec(v models.GlobalSpec) *ProjectUpdateOne {
	_u.mutation.SetSpec(v)
	return _u
}

// SetNillableSpec sets the "spec" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableSpec(v *models.GlobalSpec) *ProjectUpdateOne {
	if v != nil {
		_u.SetSpec(*v)
	}
	return _u
}

// SetBudget sets the "budget" field.
func (_u *ProjectUpdateOne) SetBudget(v models.Budget) *ProjectUpdateOne {
	_u.mutation.SetBudget(v)
	return _u
}

// SetNillableBudget sets the "budget" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableBudget(v *models.Budget) *ProjectUpdateOne {
	if v != nil {
		_u.SetBudget(*v)
	}
	return _u
}

// SetDnaBank sets the "dna_bank" field.
func (_u *ProjectUpdateOne) SetDnaBank(v map[string]models.DNAEntry) *ProjectUpdateOne {
	_u.mutation.SetDnaBank(v)
	return _u
}

// ClearDnaBank clears the value of the "dna_bank" field.
func (_u *ProjectUpdateOne) ClearDnaBank() *ProjectUpdateOne {
	_u.mutation.ClearDnaBank()
	return _u
}

// SetShots sets the "shots" field.
func (_u *ProjectUpdateOne) SetShots(v map[string]models.Shot) *ProjectUpdateOne {
	_u.mutation.SetShots(v)
	return _u
}

// ClearShots clears the value of the "shots" field.
func (_u *ProjectUpdateOne) ClearShots() *ProjectUpdateOne {
	_u.mutation.ClearShots()
	return _u
}

// SetTasks sets the "tasks" field.
func (_u *ProjectUpdateOne) SetTasks(v map[string]models.Task) *ProjectUpdateOne {
	_u.mutation.SetTasks(v)
	return _u
}

// ClearTasks clears the value of the "tasks" field.
func (_u *ProjectUpdateOne) ClearTasks() *ProjectUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// SetLocks sets the "locks" field.
func (_u *ProjectUpdateOne) SetLocks(v map[string]models.LockInfo) *ProjectUpdateOne {
	_u.mutation.SetLocks(v)
	return _u
}

// ClearLocks clears the value of the "locks" field.
func (_u *ProjectUpdateOne) ClearLocks() *ProjectUpdateOne {
	_u.mutation.ClearLocks()
	return _u
}

// SetArtifactIndex sets the "artifact_index" field.
func (_u *ProjectUpdateOne) SetArtifactIndex(v map[string]models.ArtifactMeta) *ProjectUpdateOne {
	_u.mutation.SetArtifactIndex(v)
	return _u
}

// ClearArtifactIndex clears the value of the "artifact_index" field.
func (_u *ProjectUpdateOne) ClearArtifactIndex() *ProjectUpdateOne {
	_u.mutation.ClearArtifactIndex()
	return _u
}

// SetErrorLog sets the "error_log" field.
func (_u *ProjectUpdateOne) SetErrorLog(v []models.ErrorEntry) *ProjectUpdateOne {
	_u.mutation.SetErrorLog(v)
	return _u
}

// AppendErrorLog appends value to the "error_log" field.
func (_u *ProjectUpdateOne) AppendErrorLog(v []models.ErrorEntry) *ProjectUpdateOne {
	_u.mutation.AppendErrorLog(v)
	return _u
}

// ClearErrorLog clears the value of the "error_log" field.
func (_u *ProjectUpdateOne) ClearErrorLog() *ProjectUpdateOne {
	_u.mutation.ClearErrorLog()
	return _u
}

// SetChangeLog sets the "change_log" field.
func (_u *ProjectUpdateOne) SetChangeLog(v []models.ChangeEntry) *ProjectUpdateOne {
	_u.mutation.SetChangeLog(v)
	return _u
}

// AppendChangeLog appends value to the "change_log" field.
func (_u *ProjectUpdateOne) AppendChangeLog(v []models.ChangeEntry) *ProjectUpdateOne {
	_u.mutation.AppendChangeLog(v)
	return _u
}

// ClearChangeLog clears the value of the "change_log" field.
func (_u *ProjectUpdateOne) ClearChangeLog() *ProjectUpdateOne {
	_u.mutation.ClearChangeLog()
	return _u
}

// SetApprovals sets the "approvals" field.
func (_u *ProjectUpdateOne) SetApprovals(v map[string]models.ApprovalRequest) *ProjectUpdateOne {
	_u.mutation.SetApprovals(v)
	return _u
}

// ClearApprovals clears the value of the "approvals" field.
func (_u *ProjectUpdateOne) ClearApprovals() *ProjectUpdateOne {
	_u.mutation.ClearApprovals()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableUpdatedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProjectUpdateOne) SetCompletedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableCompletedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProjectUpdateOne) ClearCompletedAt() *ProjectUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ProjectUpdateOne) SetDeletedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableDeletedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ProjectUpdateOne) ClearDeletedAt() *ProjectUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(project.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(project.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Spec(); ok {
		_spec.SetField(project.FieldSpec, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Budget(); ok {
		_spec.SetField(project.FieldBudget, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DnaBank(); ok {
		_spec.SetField(project.FieldDnaBank, field.TypeJSON, value)
	}
	if _u.mutation.DnaBankCleared() {
		_spec.ClearField(project.FieldDnaBank, field.TypeJSON)
	}
	if value, ok := _u.mutation.Shots(); ok {
		_spec.SetField(project.FieldShots, field.TypeJSON, value)
	}
	if _u.mutation.ShotsCleared() {
		_spec.ClearField(project.FieldShots, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tasks(); ok {
		_spec.SetField(project.FieldTasks, field.TypeJSON, value)
	}
	if _u.mutation.TasksCleared() {
		_spec.ClearField(project.FieldTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.Locks(); ok {
		_spec.SetField(project.FieldLocks, field.TypeJSON, value)
	}
	if _u.mutation.LocksCleared() {
		_spec.ClearField(project.FieldLocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.ArtifactIndex(); ok {
		_spec.SetField(project.FieldArtifactIndex, field.TypeJSON, value)
	}
	if _u.mutation.ArtifactIndexCleared() {
		_spec.ClearField(project.FieldArtifactIndex, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorLog(); ok {
		_spec.SetField(project.FieldErrorLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldErrorLog, value)
		})
	}
	if _u.mutation.ErrorLogCleared() {
		_spec.ClearField(project.FieldErrorLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChangeLog(); ok {
		_spec.SetField(project.FieldChangeLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChangeLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldChangeLog, value)
		})
	}
	if _u.mutation.ChangeLogCleared() {
		_spec.ClearField(project.FieldChangeLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.Approvals(); ok {
		_spec.SetField(project.FieldApprovals, field.TypeJSON, value)
	}
	if _u.mutation.ApprovalsCleared() {
		_spec.ClearField(project.FieldApprovals, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(project.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(project.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(project.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(project.FieldDeletedAt, field.TypeTime)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
