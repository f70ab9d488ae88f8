// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clipforge/clipforge/ent/approvalrecord"
	"github.com/clipforge/clipforge/ent/artifactrecord"
	"github.com/clipforge/clipforge/ent/changeentry"
	"github.com/clipforge/clipforge/ent/lockmirror"
	"github.com/clipforge/clipforge/ent/predicate"
	"github.com/clipforge/clipforge/ent/project"
	"github.com/clipforge/clipforge/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApprovalRecord = "ApprovalRecord"
	TypeArtifactRecord = "ArtifactRecord"
	TypeChangeEntry    = "ChangeEntry"
	TypeLockMirror     = "LockMirror"
	TypeProject        = "Project"
)

// ApprovalRecordMutation represents an operation that mutates the ApprovalRecord nodes in the graph.
type ApprovalRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	project_id           *string
	stage                *string
	status               *approvalrecord.Status
	content_summary      *string
	notes                *string
	prior_status         *string
	trigger_event_id     *string
	deferred_tasks       *[]models.Task
	appenddeferred_tasks []models.Task
	reminder_sent        *bool
	created_at           *time.Time
	resolved_at          *time.Time
	resolved_by          *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*ApprovalRecord, error)
	predicates           []predicate.ApprovalRecord
}

var _ ent.Mutation = (*ApprovalRecordMutation)(nil)

// approvalrecordOption allows management of the mutation configuration using functional options.
type approvalrecordOption func(*ApprovalRecordMutation)

// newApprovalRecordMutation creates new mutation for the ApprovalRecord entity.
func newApprovalRecordMutation(c config, op Op, opts ...approvalrecordOption) *ApprovalRecordMutation {
	m := &ApprovalRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalRecordID sets the ID field of the mutation.
func withApprovalRecordID(id string) approvalrecordOption {
	return func(m *ApprovalRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalRecord
		)
		m.oldValue = func(ctx context.Context) (*ApprovalRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalRecord sets the old ApprovalRecord of the mutation.
func withApprovalRecord(node *ApprovalRecord) approvalrecordOption {
	return func(m *ApprovalRecordMutation) {
		m.oldValue = func(context.Context) (*ApprovalRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApprovalRecord entities.
func (m *ApprovalRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ApprovalRecordMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ApprovalRecordMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ApprovalRecord entity.
// If the ApprovalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRecordMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ApprovalRecordMutation) ResetProjectID() {
	m.project_id = nil
}

// SetStage sets the "stage" field.
func (m *ApprovalRecordMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *ApprovalRecordMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the ApprovalRecord entity.
// If the ApprovalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRecordMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *ApprovalRecordMutation) ResetStage() {
	m.stage = nil
}

// SetStatus sets the "status" field.
func (m *ApprovalRecordMutation) SetStatus(a approvalrecord.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApprovalRecordMutation) Status() (r approvalrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ApprovalRecord entity.
// If the ApprovalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRecordMutation) OldStatus(ctx context.Context) (v approvalrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApprovalRecordMutation) ResetStatus() {
	m.status = nil
}

// SetContentSummary sets the "content_summary" field.
func (m *ApprovalRecordMutation) SetContentSummary(s string) {
	m.content_summary = &s
}

// ContentSummary returns the value of the "content_summary" field in the mutation.
func (m *ApprovalRecordMutation) ContentSummary() (r string, exists bool) {
	v := m.content_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldContentSummary returns the old "content_summary" field's value of the ApprovalRecord entity.
// If the ApprovalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRecordMutation) OldContentSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentSummary: %w", err)
	}
	return oldValue.ContentSummary, nil
}

// ResetContentSummary resets all changes to the "content_summary" field.
func (m *ApprovalRecordMutation) ResetContentSummary() {
	m.content_summary = nil
}

// SetNotes sets the "notes" field.
func (m *ApprovalRecordMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ApprovalRecordMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the ApprovalRecord entity.
// If the ApprovalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRecordMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *ApprovalRecordMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[approvalrecord.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *ApprovalRecordMutation) NotesCleared() bool {
	_, ok := m.clearedFields[approvalrecord.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *ApprovalRecordMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, approvalrecord.FieldNotes)
}

// SetPriorStatus sets the "prior_status" field.
func (m *ApprovalRecordMutation) SetPriorStatus(s string) {
	m.prior_status = &s
}

// PriorStatus returns the value of the "prior_status" field in the mutation.
func (m *ApprovalRecordMutation) PriorStatus() (r string, exists bool) {
	v := m.prior_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorStatus returns the old "prior_status" field's value of the ApprovalRecord entity.
// If the ApprovalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRecordMutation) OldPriorStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorStatus: %w", err)
	}
	return oldValue.PriorStatus, nil
}

// ResetPriorStatus resets all changes to the "prior_status" field.
func (m *ApprovalRecordMutation) ResetPriorStatus() {
	m.prior_status = nil
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (m *ApprovalRecordMutation) SetTriggerEventID(s string) {
	m.trigger_event_id = &s
}

// TriggerEventID returns the value of the "trigger_event_id" field in the mutation.
func (m *ApprovalRecordMutation) TriggerEventID() (r string, exists bool) {
	v := m.trigger_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerEventID returns the old "trigger_event_id" field's value of the ApprovalRecord entity.
// If the ApprovalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRecordMutation) OldTriggerEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerEventID: %w", err)
	}
	return oldValue.TriggerEventID, nil
}

// ResetTriggerEventID resets all changes to the "trigger_event_id" field.
func (m *ApprovalRecordMutation) ResetTriggerEventID() {
	m.trigger_event_id = nil
}

// SetDeferredTasks sets the "deferred_tasks" field.
func (m *ApprovalRecordMutation) SetDeferredTasks(value []models.Task) {
	m.deferred_tasks = &value
	m.appenddeferred_tasks = nil
}

// DeferredTasks returns the value of the "deferred_tasks" field in the mutation.
func (m *ApprovalRecordMutation) DeferredTasks() (r []models.Task, exists bool) {
	v := m.deferred_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldDeferredTasks returns the old "deferred_tasks" field's value of the ApprovalRecord entity.
// If the ApprovalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRecordMutation) OldDeferredTasks(ctx context.Context) (v []models.Task, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeferredTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeferredTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeferredTasks: %w", err)
	}
	return oldValue.DeferredTasks, nil
}

// AppendDeferredTasks adds value to the "deferred_tasks" field.
func (m *ApprovalRecordMutation) AppendDeferredTasks(value []models.Task) {
	m.appenddeferred_tasks = append(m.appenddeferred_tasks, value...)
}

// AppendedDeferredTasks returns the list of values that were appended to the "deferred_tasks" field in this mutation.
func (m *ApprovalRecordMutation) AppendedDeferredTasks() ([]models.Task, bool) {
	if len(m.appenddeferred_tasks) == 0 {
		return nil, false
	}
	return m.appenddeferred_tasks, true
}

// ClearDeferredTasks clears the value of the "deferred_tasks" field.
func (m *ApprovalRecordMutation) ClearDeferredTasks() {
	m.deferred_tasks = nil
	m.appenddeferred_tasks = nil
	m.clearedFields[approvalrecord.FieldDeferredTasks] = struct{}{}
}

// DeferredTasksCleared returns if the "deferred_tasks" field was cleared in this mutation.
func (m *ApprovalRecordMutation) DeferredTasksCleared() bool {
	_, ok := m.clearedFields[approvalrecord.FieldDeferredTasks]
	return ok
}

// ResetDeferredTasks resets all changes to the "deferred_tasks" field.
func (m *ApprovalRecordMutation) ResetDeferredTasks() {
	m.deferred_tasks = nil
	m.appenddeferred_tasks = nil
	delete(m.clearedFields, approvalrecord.FieldDeferredTasks)
}

// SetReminderSent sets the "reminder_sent" field.
func (m *ApprovalRecordMutation) SetReminderSent(b bool) {
	m.reminder_sent = &b
}

// ReminderSent returns the value of the "reminder_sent" field in the mutation.
func (m *ApprovalRecordMutation) ReminderSent() (r bool, exists bool) {
	v := m.reminder_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldReminderSent returns the old "reminder_sent" field's value of the ApprovalRecord entity.
// If the ApprovalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRecordMutation) OldReminderSent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReminderSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReminderSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReminderSent: %w", err)
	}
	return oldValue.ReminderSent, nil
}

// ResetReminderSent resets all changes to the "reminder_sent" field.
func (m *ApprovalRecordMutation) ResetReminderSent() {
	m.reminder_sent = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApprovalRecord entity.
// If the ApprovalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApprovalRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ApprovalRecordMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ApprovalRecordMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the ApprovalRecord entity.
// If the ApprovalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRecordMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ApprovalRecordMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[approvalrecord.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ApprovalRecordMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[approvalrecord.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ApprovalRecordMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, approvalrecord.FieldResolvedAt)
}

// SetResolvedBy sets the "resolved_by" field.
func (m *ApprovalRecordMutation) SetResolvedBy(s string) {
	m.resolved_by = &s
}

// ResolvedBy returns the value of the "resolved_by" field in the mutation.
func (m *ApprovalRecordMutation) ResolvedBy() (r string, exists bool) {
	v := m.resolved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedBy returns the old "resolved_by" field's value of the ApprovalRecord entity.
// If the ApprovalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRecordMutation) OldResolvedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedBy: %w", err)
	}
	return oldValue.ResolvedBy, nil
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (m *ApprovalRecordMutation) ClearResolvedBy() {
	m.resolved_by = nil
	m.clearedFields[approvalrecord.FieldResolvedBy] = struct{}{}
}

// ResolvedByCleared returns if the "resolved_by" field was cleared in this mutation.
func (m *ApprovalRecordMutation) ResolvedByCleared() bool {
	_, ok := m.clearedFields[approvalrecord.FieldResolvedBy]
	return ok
}

// ResetResolvedBy resets all changes to the "resolved_by" field.
func (m *ApprovalRecordMutation) ResetResolvedBy() {
	m.resolved_by = nil
	delete(m.clearedFields, approvalrecord.FieldResolvedBy)
}

// Where appends a list predicates to the ApprovalRecordMutation builder.
func (m *ApprovalRecordMutation) Where(ps ...predicate.ApprovalRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalRecord).
func (m *ApprovalRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalRecordMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.project_id != nil {
		fields = append(fields, approvalrecord.FieldProjectID)
	}
	if m.stage != nil {
		fields = append(fields, approvalrecord.FieldStage)
	}
	if m.status != nil {
		fields = append(fields, approvalrecord.FieldStatus)
	}
	if m.content_summary != nil {
		fields = append(fields, approvalrecord.FieldContentSummary)
	}
	if m.notes != nil {
		fields = append(fields, approvalrecord.FieldNotes)
	}
	if m.prior_status != nil {
		fields = append(fields, approvalrecord.FieldPriorStatus)
	}
	if m.trigger_event_id != nil {
		fields = append(fields, approvalrecord.FieldTriggerEventID)
	}
	if m.deferred_tasks != nil {
		fields = append(fields, approvalrecord.FieldDeferredTasks)
	}
	if m.reminder_sent != nil {
		fields = append(fields, approvalrecord.FieldReminderSent)
	}
	if m.created_at != nil {
		fields = append(fields, approvalrecord.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, approvalrecord.FieldResolvedAt)
	}
	if m.resolved_by != nil {
		fields = append(fields, approvalrecord.FieldResolvedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalrecord.FieldProjectID:
		return m.ProjectID()
	case approvalrecord.FieldStage:
		return m.Stage()
	case approvalrecord.FieldStatus:
		return m.Status()
	case approvalrecord.FieldContentSummary:
		return m.ContentSummary()
	case approvalrecord.FieldNotes:
		return m.Notes()
	case approvalrecord.FieldPriorStatus:
		return m.PriorStatus()
	case approvalrecord.FieldTriggerEventID:
		return m.TriggerEventID()
	case approvalrecord.FieldDeferredTasks:
		return m.DeferredTasks()
	case approvalrecord.FieldReminderSent:
		return m.ReminderSent()
	case approvalrecord.FieldCreatedAt:
		return m.CreatedAt()
	case approvalrecord.FieldResolvedAt:
		return m.ResolvedAt()
	case approvalrecord.FieldResolvedBy:
		return m.ResolvedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalrecord.FieldProjectID:
		return m.OldProjectID(ctx)
	case approvalrecord.FieldStage:
		return m.OldStage(ctx)
	case approvalrecord.FieldStatus:
		return m.OldStatus(ctx)
	case approvalrecord.FieldContentSummary:
		return m.OldContentSummary(ctx)
	case approvalrecord.FieldNotes:
		return m.OldNotes(ctx)
	case approvalrecord.FieldPriorStatus:
		return m.OldPriorStatus(ctx)
	case approvalrecord.FieldTriggerEventID:
		return m.OldTriggerEventID(ctx)
	case approvalrecord.FieldDeferredTasks:
		return m.OldDeferredTasks(ctx)
	case approvalrecord.FieldReminderSent:
		return m.OldReminderSent(ctx)
	case approvalrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case approvalrecord.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case approvalrecord.FieldResolvedBy:
		return m.OldResolvedBy(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalrecord.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case approvalrecord.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case approvalrecord.FieldStatus:
		v, ok := value.(approvalrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case approvalrecord.FieldContentSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentSummary(v)
		return nil
	case approvalrecord.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case approvalrecord.FieldPriorStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorStatus(v)
		return nil
	case approvalrecord.FieldTriggerEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerEventID(v)
		return nil
	case approvalrecord.FieldDeferredTasks:
		v, ok := value.([]models.Task)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeferredTasks(v)
		return nil
	case approvalrecord.FieldReminderSent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReminderSent(v)
		return nil
	case approvalrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case approvalrecord.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case approvalrecord.FieldResolvedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedBy(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApprovalRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalrecord.FieldNotes) {
		fields = append(fields, approvalrecord.FieldNotes)
	}
	if m.FieldCleared(approvalrecord.FieldDeferredTasks) {
		fields = append(fields, approvalrecord.FieldDeferredTasks)
	}
	if m.FieldCleared(approvalrecord.FieldResolvedAt) {
		fields = append(fields, approvalrecord.FieldResolvedAt)
	}
	if m.FieldCleared(approvalrecord.FieldResolvedBy) {
		fields = append(fields, approvalrecord.FieldResolvedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalRecordMutation) ClearField(name string) error {
	switch name {
	case approvalrecord.FieldNotes:
		m.ClearNotes()
		return nil
	case approvalrecord.FieldDeferredTasks:
		m.ClearDeferredTasks()
		return nil
	case approvalrecord.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	case approvalrecord.FieldResolvedBy:
		m.ClearResolvedBy()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalRecordMutation) ResetField(name string) error {
	switch name {
	case approvalrecord.FieldProjectID:
		m.ResetProjectID()
		return nil
	case approvalrecord.FieldStage:
		m.ResetStage()
		return nil
	case approvalrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case approvalrecord.FieldContentSummary:
		m.ResetContentSummary()
		return nil
	case approvalrecord.FieldNotes:
		m.ResetNotes()
		return nil
	case approvalrecord.FieldPriorStatus:
		m.ResetPriorStatus()
		return nil
	case approvalrecord.FieldTriggerEventID:
		m.ResetTriggerEventID()
		return nil
	case approvalrecord.FieldDeferredTasks:
		m.ResetDeferredTasks()
		return nil
	case approvalrecord.FieldReminderSent:
		m.ResetReminderSent()
		return nil
	case approvalrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case approvalrecord.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case approvalrecord.FieldResolvedBy:
		m.ResetResolvedBy()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApprovalRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApprovalRecord edge %s", name)
}

// ArtifactRecordMutation represents an operation that mutates the ArtifactRecord nodes in the graph.
type ArtifactRecordMutation struct {
	config
	op            Op
	typ           string
	id            *string
	project_id    *string
	uri           *string
	seed          *int64
	addseed       *int64
	model         *string
	model_version *string
	prompt        *string
	cost          *float64
	addcost       *float64
	currency      *string
	use_count     *int
	adduse_count  *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ArtifactRecord, error)
	predicates    []predicate.ArtifactRecord
}

var _ ent.Mutation = (*ArtifactRecordMutation)(nil)

// artifactrecordOption allows management of the mutation configuration using functional options.
type artifactrecordOption func(*ArtifactRecordMutation)

// newArtifactRecordMutation creates new mutation for the ArtifactRecord entity.
func newArtifactRecordMutation(c config, op Op, opts ...artifactrecordOption) *ArtifactRecordMutation {
	m := &ArtifactRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeArtifactRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArtifactRecordID sets the ID field of the mutation.
func withArtifactRecordID(id string) artifactrecordOption {
	return func(m *ArtifactRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ArtifactRecord
		)
		m.oldValue = func(ctx context.Context) (*ArtifactRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ArtifactRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArtifactRecord sets the old ArtifactRecord of the mutation.
func withArtifactRecord(node *ArtifactRecord) artifactrecordOption {
	return func(m *ArtifactRecordMutation) {
		m.oldValue = func(context.Context) (*ArtifactRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArtifactRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArtifactRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ArtifactRecord entities.
func (m *ArtifactRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArtifactRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArtifactRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ArtifactRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ArtifactRecordMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ArtifactRecordMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ArtifactRecord entity.
// If the ArtifactRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactRecordMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ArtifactRecordMutation) ResetProjectID() {
	m.project_id = nil
}

// SetURI sets the "uri" field.
func (m *ArtifactRecordMutation) SetURI(s string) {
	m.uri = &s
}

// URI returns the value of the "uri" field in the mutation.
func (m *ArtifactRecordMutation) URI() (r string, exists bool) {
	v := m.uri
	if v == nil {
		return
	}
	return *v, true
}

// OldURI returns the old "uri" field's value of the ArtifactRecord entity.
// If the ArtifactRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactRecordMutation) OldURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURI: %w", err)
	}
	return oldValue.URI, nil
}

// ResetURI resets all changes to the "uri" field.
func (m *ArtifactRecordMutation) ResetURI() {
	m.uri = nil
}

// SetSeed sets the "seed" field.
func (m *ArtifactRecordMutation) SetSeed(i int64) {
	m.seed = &i
	m.addseed = nil
}

// Seed returns the value of the "seed" field in the mutation.
func (m *ArtifactRecordMutation) Seed() (r int64, exists bool) {
	v := m.seed
	if v == nil {
		return
	}
	return *v, true
}

// OldSeed returns the old "seed" field's value of the ArtifactRecord entity.
// If the ArtifactRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactRecordMutation) OldSeed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeed: %w", err)
	}
	return oldValue.Seed, nil
}

// AddSeed adds i to the "seed" field.
func (m *ArtifactRecordMutation) AddSeed(i int64) {
	if m.addseed != nil {
		*m.addseed += i
	} else {
		m.addseed = &i
	}
}

// AddedSeed returns the value that was added to the "seed" field in this mutation.
func (m *ArtifactRecordMutation) AddedSeed() (r int64, exists bool) {
	v := m.addseed
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeed resets all changes to the "seed" field.
func (m *ArtifactRecordMutation) ResetSeed() {
	m.seed = nil
	m.addseed = nil
}

// SetModel sets the "model" field.
func (m *ArtifactRecordMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ArtifactRecordMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ArtifactRecord entity.
// If the ArtifactRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactRecordMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ArtifactRecordMutation) ResetModel() {
	m.model = nil
}

// SetModelVersion sets the "model_version" field.
func (m *ArtifactRecordMutation) SetModelVersion(s string) {
	m.model_version = &s
}

// ModelVersion returns the value of the "model_version" field in the mutation.
func (m *ArtifactRecordMutation) ModelVersion() (r string, exists bool) {
	v := m.model_version
	if v == nil {
		return
	}
	return *v, true
}

// OldModelVersion returns the old "model_version" field's value of the ArtifactRecord entity.
// If the ArtifactRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactRecordMutation) OldModelVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelVersion: %w", err)
	}
	return oldValue.ModelVersion, nil
}

// ResetModelVersion resets all changes to the "model_version" field.
func (m *ArtifactRecordMutation) ResetModelVersion() {
	m.model_version = nil
}

// SetPrompt sets the "prompt" field.
func (m *ArtifactRecordMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *ArtifactRecordMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the ArtifactRecord entity.
// If the ArtifactRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactRecordMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *ArtifactRecordMutation) ResetPrompt() {
	m.prompt = nil
}

// SetCost sets the "cost" field.
func (m *ArtifactRecordMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *ArtifactRecordMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the ArtifactRecord entity.
// If the ArtifactRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactRecordMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *ArtifactRecordMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *ArtifactRecordMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *ArtifactRecordMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetCurrency sets the "currency" field.
func (m *ArtifactRecordMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *ArtifactRecordMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the ArtifactRecord entity.
// If the ArtifactRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactRecordMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *ArtifactRecordMutation) ResetCurrency() {
	m.currency = nil
}

// SetUseCount sets the "use_count" field.
func (m *ArtifactRecordMutation) SetUseCount(i int) {
	m.use_count = &i
	m.adduse_count = nil
}

// UseCount returns the value of the "use_count" field in the mutation.
func (m *ArtifactRecordMutation) UseCount() (r int, exists bool) {
	v := m.use_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUseCount returns the old "use_count" field's value of the ArtifactRecord entity.
// If the ArtifactRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactRecordMutation) OldUseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseCount: %w", err)
	}
	return oldValue.UseCount, nil
}

// AddUseCount adds i to the "use_count" field.
func (m *ArtifactRecordMutation) AddUseCount(i int) {
	if m.adduse_count != nil {
		*m.adduse_count += i
	} else {
		m.adduse_count = &i
	}
}

// AddedUseCount returns the value that was added to the "use_count" field in this mutation.
func (m *ArtifactRecordMutation) AddedUseCount() (r int, exists bool) {
	v := m.adduse_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUseCount resets all changes to the "use_count" field.
func (m *ArtifactRecordMutation) ResetUseCount() {
	m.use_count = nil
	m.adduse_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ArtifactRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArtifactRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ArtifactRecord entity.
// If the ArtifactRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArtifactRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ArtifactRecordMutation builder.
func (m *ArtifactRecordMutation) Where(ps ...predicate.ArtifactRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArtifactRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArtifactRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ArtifactRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArtifactRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArtifactRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ArtifactRecord).
func (m *ArtifactRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArtifactRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.project_id != nil {
		fields = append(fields, artifactrecord.FieldProjectID)
	}
	if m.uri != nil {
		fields = append(fields, artifactrecord.FieldURI)
	}
	if m.seed != nil {
		fields = append(fields, artifactrecord.FieldSeed)
	}
	if m.model != nil {
		fields = append(fields, artifactrecord.FieldModel)
	}
	if m.model_version != nil {
		fields = append(fields, artifactrecord.FieldModelVersion)
	}
	if m.prompt != nil {
		fields = append(fields, artifactrecord.FieldPrompt)
	}
	if m.cost != nil {
		fields = append(fields, artifactrecord.FieldCost)
	}
	if m.currency != nil {
		fields = append(fields, artifactrecord.FieldCurrency)
	}
	if m.use_count != nil {
		fields = append(fields, artifactrecord.FieldUseCount)
	}
	if m.created_at != nil {
		fields = append(fields, artifactrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArtifactRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case artifactrecord.FieldProjectID:
		return m.ProjectID()
	case artifactrecord.FieldURI:
		return m.URI()
	case artifactrecord.FieldSeed:
		return m.Seed()
	case artifactrecord.FieldModel:
		return m.Model()
	case artifactrecord.FieldModelVersion:
		return m.ModelVersion()
	case artifactrecord.FieldPrompt:
		return m.Prompt()
	case artifactrecord.FieldCost:
		return m.Cost()
	case artifactrecord.FieldCurrency:
		return m.Currency()
	case artifactrecord.FieldUseCount:
		return m.UseCount()
	case artifactrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArtifactRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case artifactrecord.FieldProjectID:
		return m.OldProjectID(ctx)
	case artifactrecord.FieldURI:
		return m.OldURI(ctx)
	case artifactrecord.FieldSeed:
		return m.OldSeed(ctx)
	case artifactrecord.FieldModel:
		return m.OldModel(ctx)
	case artifactrecord.FieldModelVersion:
		return m.OldModelVersion(ctx)
	case artifactrecord.FieldPrompt:
		return m.OldPrompt(ctx)
	case artifactrecord.FieldCost:
		return m.OldCost(ctx)
	case artifactrecord.FieldCurrency:
		return m.OldCurrency(ctx)
	case artifactrecord.FieldUseCount:
		return m.OldUseCount(ctx)
	case artifactrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ArtifactRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case artifactrecord.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case artifactrecord.FieldURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURI(v)
		return nil
	case artifactrecord.FieldSeed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeed(v)
		return nil
	case artifactrecord.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case artifactrecord.FieldModelVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelVersion(v)
		return nil
	case artifactrecord.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case artifactrecord.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case artifactrecord.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case artifactrecord.FieldUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseCount(v)
		return nil
	case artifactrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ArtifactRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArtifactRecordMutation) AddedFields() []string {
	var fields []string
	if m.addseed != nil {
		fields = append(fields, artifactrecord.FieldSeed)
	}
	if m.addcost != nil {
		fields = append(fields, artifactrecord.FieldCost)
	}
	if m.adduse_count != nil {
		fields = append(fields, artifactrecord.FieldUseCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArtifactRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case artifactrecord.FieldSeed:
		return m.AddedSeed()
	case artifactrecord.FieldCost:
		return m.AddedCost()
	case artifactrecord.FieldUseCount:
		return m.AddedUseCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case artifactrecord.FieldSeed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeed(v)
		return nil
	case artifactrecord.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case artifactrecord.FieldUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUseCount(v)
		return nil
	}
	return fmt.Errorf("unknown ArtifactRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArtifactRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArtifactRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArtifactRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ArtifactRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArtifactRecordMutation) ResetField(name string) error {
	switch name {
	case artifactrecord.FieldProjectID:
		m.ResetProjectID()
		return nil
	case artifactrecord.FieldURI:
		m.ResetURI()
		return nil
	case artifactrecord.FieldSeed:
		m.ResetSeed()
		return nil
	case artifactrecord.FieldModel:
		m.ResetModel()
		return nil
	case artifactrecord.FieldModelVersion:
		m.ResetModelVersion()
		return nil
	case artifactrecord.FieldPrompt:
		m.ResetPrompt()
		return nil
	case artifactrecord.FieldCost:
		m.ResetCost()
		return nil
	case artifactrecord.FieldCurrency:
		m.ResetCurrency()
		return nil
	case artifactrecord.FieldUseCount:
		m.ResetUseCount()
		return nil
	case artifactrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ArtifactRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArtifactRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArtifactRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArtifactRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArtifactRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArtifactRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArtifactRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArtifactRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ArtifactRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArtifactRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ArtifactRecord edge %s", name)
}

// ChangeEntryMutation represents an operation that mutates the ChangeEntry nodes in the graph.
type ChangeEntryMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	project_id         *string
	version            *int64
	addversion         *int64
	actor              *string
	change_type        *string
	description        *string
	_path              *string
	causation_event_id *string
	before             *[]byte
	after              *[]byte
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ChangeEntry, error)
	predicates         []predicate.ChangeEntry
}

var _ ent.Mutation = (*ChangeEntryMutation)(nil)

// changeentryOption allows management of the mutation configuration using functional options.
type changeentryOption func(*ChangeEntryMutation)

// newChangeEntryMutation creates new mutation for the ChangeEntry entity.
func newChangeEntryMutation(c config, op Op, opts ...changeentryOption) *ChangeEntryMutation {
	m := &ChangeEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeChangeEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChangeEntryID sets the ID field of the mutation.
func withChangeEntryID(id string) changeentryOption {
	return func(m *ChangeEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ChangeEntry
		)
		m.oldValue = func(ctx context.Context) (*ChangeEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChangeEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChangeEntry sets the old ChangeEntry of the mutation.
func withChangeEntry(node *ChangeEntry) changeentryOption {
	return func(m *ChangeEntryMutation) {
		m.oldValue = func(context.Context) (*ChangeEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChangeEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChangeEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChangeEntry entities.
func (m *ChangeEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChangeEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChangeEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChangeEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ChangeEntryMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ChangeEntryMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ChangeEntry entity.
// If the ChangeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeEntryMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ChangeEntryMutation) ResetProjectID() {
	m.project_id = nil
}

// SetVersion sets the "version" field.
func (m *ChangeEntryMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ChangeEntryMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ChangeEntry entity.
// If the ChangeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeEntryMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ChangeEntryMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ChangeEntryMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ChangeEntryMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetActor sets the "actor" field.
func (m *ChangeEntryMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *ChangeEntryMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the ChangeEntry entity.
// If the ChangeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeEntryMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *ChangeEntryMutation) ResetActor() {
	m.actor = nil
}

// SetChangeType sets the "change_type" field.
func (m *ChangeEntryMutation) SetChangeType(s string) {
	m.change_type = &s
}

// ChangeType returns the value of the "change_type" field in the mutation.
func (m *ChangeEntryMutation) ChangeType() (r string, exists bool) {
	v := m.change_type
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeType returns the old "change_type" field's value of the ChangeEntry entity.
// If the ChangeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeEntryMutation) OldChangeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeType: %w", err)
	}
	return oldValue.ChangeType, nil
}

// ResetChangeType resets all changes to the "change_type" field.
func (m *ChangeEntryMutation) ResetChangeType() {
	m.change_type = nil
}

// SetDescription sets the "description" field.
func (m *ChangeEntryMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ChangeEntryMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ChangeEntry entity.
// If the ChangeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeEntryMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ChangeEntryMutation) ResetDescription() {
	m.description = nil
}

// SetPath sets the "path" field.
func (m *ChangeEntryMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *ChangeEntryMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the ChangeEntry entity.
// If the ChangeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeEntryMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *ChangeEntryMutation) ResetPath() {
	m._path = nil
}

// SetCausationEventID sets the "causation_event_id" field.
func (m *ChangeEntryMutation) SetCausationEventID(s string) {
	m.causation_event_id = &s
}

// CausationEventID returns the value of the "causation_event_id" field in the mutation.
func (m *ChangeEntryMutation) CausationEventID() (r string, exists bool) {
	v := m.causation_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCausationEventID returns the old "causation_event_id" field's value of the ChangeEntry entity.
// If the ChangeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeEntryMutation) OldCausationEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCausationEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCausationEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCausationEventID: %w", err)
	}
	return oldValue.CausationEventID, nil
}

// ClearCausationEventID clears the value of the "causation_event_id" field.
func (m *ChangeEntryMutation) ClearCausationEventID() {
	m.causation_event_id = nil
	m.clearedFields[changeentry.FieldCausationEventID] = struct{}{}
}

// CausationEventIDCleared returns if the "causation_event_id" field was cleared in this mutation.
func (m *ChangeEntryMutation) CausationEventIDCleared() bool {
	_, ok := m.clearedFields[changeentry.FieldCausationEventID]
	return ok
}

// ResetCausationEventID resets all changes to the "causation_event_id" field.
func (m *ChangeEntryMutation) ResetCausationEventID() {
	m.causation_event_id = nil
	delete(m.clearedFields, changeentry.FieldCausationEventID)
}

// SetBefore sets the "before" field.
func (m *ChangeEntryMutation) SetBefore(b []byte) {
	m.before = &b
}

// Before returns the value of the "before" field in the mutation.
func (m *ChangeEntryMutation) Before() (r []byte, exists bool) {
	v := m.before
	if v == nil {
		return
	}
	return *v, true
}

// OldBefore returns the old "before" field's value of the ChangeEntry entity.
// If the ChangeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeEntryMutation) OldBefore(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBefore: %w", err)
	}
	return oldValue.Before, nil
}

// ClearBefore clears the value of the "before" field.
func (m *ChangeEntryMutation) ClearBefore() {
	m.before = nil
	m.clearedFields[changeentry.FieldBefore] = struct{}{}
}

// BeforeCleared returns if the "before" field was cleared in this mutation.
func (m *ChangeEntryMutation) BeforeCleared() bool {
	_, ok := m.clearedFields[changeentry.FieldBefore]
	return ok
}

// ResetBefore resets all changes to the "before" field.
func (m *ChangeEntryMutation) ResetBefore() {
	m.before = nil
	delete(m.clearedFields, changeentry.FieldBefore)
}

// SetAfter sets the "after" field.
func (m *ChangeEntryMutation) SetAfter(b []byte) {
	m.after = &b
}

// After returns the value of the "after" field in the mutation.
func (m *ChangeEntryMutation) After() (r []byte, exists bool) {
	v := m.after
	if v == nil {
		return
	}
	return *v, true
}

// OldAfter returns the old "after" field's value of the ChangeEntry entity.
// If the ChangeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeEntryMutation) OldAfter(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfter: %w", err)
	}
	return oldValue.After, nil
}

// ClearAfter clears the value of the "after" field.
func (m *ChangeEntryMutation) ClearAfter() {
	m.after = nil
	m.clearedFields[changeentry.FieldAfter] = struct{}{}
}

// AfterCleared returns if the "after" field was cleared in this mutation.
func (m *ChangeEntryMutation) AfterCleared() bool {
	_, ok := m.clearedFields[changeentry.FieldAfter]
	return ok
}

// ResetAfter resets all changes to the "after" field.
func (m *ChangeEntryMutation) ResetAfter() {
	m.after = nil
	delete(m.clearedFields, changeentry.FieldAfter)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChangeEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChangeEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChangeEntry entity.
// If the ChangeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChangeEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ChangeEntryMutation builder.
func (m *ChangeEntryMutation) Where(ps ...predicate.ChangeEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChangeEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChangeEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChangeEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChangeEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChangeEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChangeEntry).
func (m *ChangeEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChangeEntryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.project_id != nil {
		fields = append(fields, changeentry.FieldProjectID)
	}
	if m.version != nil {
		fields = append(fields, changeentry.FieldVersion)
	}
	if m.actor != nil {
		fields = append(fields, changeentry.FieldActor)
	}
	if m.change_type != nil {
		fields = append(fields, changeentry.FieldChangeType)
	}
	if m.description != nil {
		fields = append(fields, changeentry.FieldDescription)
	}
	if m._path != nil {
		fields = append(fields, changeentry.FieldPath)
	}
	if m.causation_event_id != nil {
		fields = append(fields, changeentry.FieldCausationEventID)
	}
	if m.before != nil {
		fields = append(fields, changeentry.FieldBefore)
	}
	if m.after != nil {
		fields = append(fields, changeentry.FieldAfter)
	}
	if m.created_at != nil {
		fields = append(fields, changeentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChangeEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case changeentry.FieldProjectID:
		return m.ProjectID()
	case changeentry.FieldVersion:
		return m.Version()
	case changeentry.FieldActor:
		return m.Actor()
	case changeentry.FieldChangeType:
		return m.ChangeType()
	case changeentry.FieldDescription:
		return m.Description()
	case changeentry.FieldPath:
		return m.Path()
	case changeentry.FieldCausationEventID:
		return m.CausationEventID()
	case changeentry.FieldBefore:
		return m.Before()
	case changeentry.FieldAfter:
		return m.After()
	case changeentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChangeEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case changeentry.FieldProjectID:
		return m.OldProjectID(ctx)
	case changeentry.FieldVersion:
		return m.OldVersion(ctx)
	case changeentry.FieldActor:
		return m.OldActor(ctx)
	case changeentry.FieldChangeType:
		return m.OldChangeType(ctx)
	case changeentry.FieldDescription:
		return m.OldDescription(ctx)
	case changeentry.FieldPath:
		return m.OldPath(ctx)
	case changeentry.FieldCausationEventID:
		return m.OldCausationEventID(ctx)
	case changeentry.FieldBefore:
		return m.OldBefore(ctx)
	case changeentry.FieldAfter:
		return m.OldAfter(ctx)
	case changeentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChangeEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChangeEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case changeentry.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case changeentry.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case changeentry.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case changeentry.FieldChangeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeType(v)
		return nil
	case changeentry.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case changeentry.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case changeentry.FieldCausationEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCausationEventID(v)
		return nil
	case changeentry.FieldBefore:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBefore(v)
		return nil
	case changeentry.FieldAfter:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfter(v)
		return nil
	case changeentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChangeEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChangeEntryMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, changeentry.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChangeEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case changeentry.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChangeEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case changeentry.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ChangeEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChangeEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(changeentry.FieldCausationEventID) {
		fields = append(fields, changeentry.FieldCausationEventID)
	}
	if m.FieldCleared(changeentry.FieldBefore) {
		fields = append(fields, changeentry.FieldBefore)
	}
	if m.FieldCleared(changeentry.FieldAfter) {
		fields = append(fields, changeentry.FieldAfter)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChangeEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChangeEntryMutation) ClearField(name string) error {
	switch name {
	case changeentry.FieldCausationEventID:
		m.ClearCausationEventID()
		return nil
	case changeentry.FieldBefore:
		m.ClearBefore()
		return nil
	case changeentry.FieldAfter:
		m.ClearAfter()
		return nil
	}
	return fmt.Errorf("unknown ChangeEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChangeEntryMutation) ResetField(name string) error {
	switch name {
	case changeentry.FieldProjectID:
		m.ResetProjectID()
		return nil
	case changeentry.FieldVersion:
		m.ResetVersion()
		return nil
	case changeentry.FieldActor:
		m.ResetActor()
		return nil
	case changeentry.FieldChangeType:
		m.ResetChangeType()
		return nil
	case changeentry.FieldDescription:
		m.ResetDescription()
		return nil
	case changeentry.FieldPath:
		m.ResetPath()
		return nil
	case changeentry.FieldCausationEventID:
		m.ResetCausationEventID()
		return nil
	case changeentry.FieldBefore:
		m.ResetBefore()
		return nil
	case changeentry.FieldAfter:
		m.ResetAfter()
		return nil
	case changeentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChangeEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChangeEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChangeEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChangeEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChangeEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChangeEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChangeEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChangeEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChangeEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChangeEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChangeEntry edge %s", name)
}

// LockMirrorMutation represents an operation that mutates the LockMirror nodes in the graph.
type LockMirrorMutation struct {
	config
	op            Op
	typ           string
	id            *string
	project_id    *string
	holder        *string
	acquired_at   *time.Time
	expires_at    *time.Time
	metadata      *map[string]string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LockMirror, error)
	predicates    []predicate.LockMirror
}

var _ ent.Mutation = (*LockMirrorMutation)(nil)

// lockmirrorOption allows management of the mutation configuration using functional options.
type lockmirrorOption func(*LockMirrorMutation)

// newLockMirrorMutation creates new mutation for the LockMirror entity.
func newLockMirrorMutation(c config, op Op, opts ...lockmirrorOption) *LockMirrorMutation {
	m := &LockMirrorMutation{
		config:        c,
		op:            op,
		typ:           TypeLockMirror,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLockMirrorID sets the ID field of the mutation.
func withLockMirrorID(id string) lockmirrorOption {
	return func(m *LockMirrorMutation) {
		var (
			err   error
			once  sync.Once
			value *LockMirror
		)
		m.oldValue = func(ctx context.Context) (*LockMirror, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LockMirror.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLockMirror sets the old LockMirror of the mutation.
func withLockMirror(node *LockMirror) lockmirrorOption {
	return func(m *LockMirrorMutation) {
		m.oldValue = func(context.Context) (*LockMirror, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LockMirrorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LockMirrorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LockMirror entities.
func (m *LockMirrorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LockMirrorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LockMirrorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LockMirror.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *LockMirrorMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *LockMirrorMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the LockMirror entity.
// If the LockMirror object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockMirrorMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *LockMirrorMutation) ResetProjectID() {
	m.project_id = nil
}

// SetHolder sets the "holder" field.
func (m *LockMirrorMutation) SetHolder(s string) {
	m.holder = &s
}

// Holder returns the value of the "holder" field in the mutation.
func (m *LockMirrorMutation) Holder() (r string, exists bool) {
	v := m.holder
	if v == nil {
		return
	}
	return *v, true
}

// OldHolder returns the old "holder" field's value of the LockMirror entity.
// If the LockMirror object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockMirrorMutation) OldHolder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHolder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHolder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHolder: %w", err)
	}
	return oldValue.Holder, nil
}

// ResetHolder resets all changes to the "holder" field.
func (m *LockMirrorMutation) ResetHolder() {
	m.holder = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *LockMirrorMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *LockMirrorMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the LockMirror entity.
// If the LockMirror object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockMirrorMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *LockMirrorMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *LockMirrorMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *LockMirrorMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the LockMirror entity.
// If the LockMirror object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockMirrorMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *LockMirrorMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetMetadata sets the "metadata" field.
func (m *LockMirrorMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *LockMirrorMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the LockMirror entity.
// If the LockMirror object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockMirrorMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *LockMirrorMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[lockmirror.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *LockMirrorMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[lockmirror.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *LockMirrorMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, lockmirror.FieldMetadata)
}

// Where appends a list predicates to the LockMirrorMutation builder.
func (m *LockMirrorMutation) Where(ps ...predicate.LockMirror) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LockMirrorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LockMirrorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LockMirror, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LockMirrorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LockMirrorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LockMirror).
func (m *LockMirrorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LockMirrorMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.project_id != nil {
		fields = append(fields, lockmirror.FieldProjectID)
	}
	if m.holder != nil {
		fields = append(fields, lockmirror.FieldHolder)
	}
	if m.acquired_at != nil {
		fields = append(fields, lockmirror.FieldAcquiredAt)
	}
	if m.expires_at != nil {
		fields = append(fields, lockmirror.FieldExpiresAt)
	}
	if m.metadata != nil {
		fields = append(fields, lockmirror.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LockMirrorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lockmirror.FieldProjectID:
		return m.ProjectID()
	case lockmirror.FieldHolder:
		return m.Holder()
	case lockmirror.FieldAcquiredAt:
		return m.AcquiredAt()
	case lockmirror.FieldExpiresAt:
		return m.ExpiresAt()
	case lockmirror.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LockMirrorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lockmirror.FieldProjectID:
		return m.OldProjectID(ctx)
	case lockmirror.FieldHolder:
		return m.OldHolder(ctx)
	case lockmirror.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case lockmirror.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case lockmirror.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown LockMirror field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LockMirrorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lockmirror.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case lockmirror.FieldHolder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHolder(v)
		return nil
	case lockmirror.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case lockmirror.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case lockmirror.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown LockMirror field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LockMirrorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LockMirrorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LockMirrorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LockMirror numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LockMirrorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lockmirror.FieldMetadata) {
		fields = append(fields, lockmirror.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LockMirrorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LockMirrorMutation) ClearField(name string) error {
	switch name {
	case lockmirror.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown LockMirror nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LockMirrorMutation) ResetField(name string) error {
	switch name {
	case lockmirror.FieldProjectID:
		m.ResetProjectID()
		return nil
	case lockmirror.FieldHolder:
		m.ResetHolder()
		return nil
	case lockmirror.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case lockmirror.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case lockmirror.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown LockMirror field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LockMirrorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LockMirrorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LockMirrorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LockMirrorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LockMirrorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LockMirrorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LockMirrorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LockMirror unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LockMirrorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LockMirror edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op               Op
	typ              string
	id               *string
	version          *int64
	addversion       *int64
	status           *project.Status
	spec             *models.GlobalSpec
	budget           *models.Budget
	dna_bank         *map[string]models.DNAEntry
	shots            *map[string]models.Shot
	tasks            *map[string]models.Task
	locks            *map[string]models.LockInfo
	artifact_index   *map[string]models.ArtifactMeta
	error_log        *[]models.ErrorEntry
	appenderror_log  []models.ErrorEntry
	change_log       *[]models.ChangeEntry
	appendchange_log []models.ChangeEntry
	approvals        *map[string]models.ApprovalRequest
	created_at       *time.Time
	updated_at       *time.Time
	completed_at     *time.Time
	deleted_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Project, error)
	predicates       []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVersion sets the "version" field.
func (m *ProjectMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ProjectMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ProjectMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ProjectMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ProjectMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetStatus sets the "status" field.
func (m *ProjectMutation) SetStatus(pr project.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProjectMutation) Status() (r project.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldStatus(ctx context.Context) (v project.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProjectMutation) ResetStatus() {
	m.status = nil
}

// SetSpec sets the "spec" field.
func (m *ProjectMutation) SetSpec(ms models.GlobalSpec) {
	m.spec = &ms
}

// Spec returns the value of the "spec" field in the mutation.
func (m *ProjectMutation) Spec() (r models.GlobalSpec, exists bool) {
	v := m.spec
	if v == nil {
		return
	}
	return *v, true
}

// OldSpec returns the old "spec" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldSpec(ctx context.Context) (v models.GlobalSpec, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpec: %w", err)
	}
	return oldValue.Spec, nil
}

// ResetSpec resets all changes to the "spec" field.
func (m *ProjectMutation) ResetSpec() {
	m.spec = nil
}

// SetBudget sets the "budget" field.
func (m *ProjectMutation) SetBudget(value models.Budget) {
	m.budget = &value
}

// Budget returns the value of the "budget" field in the mutation.
func (m *ProjectMutation) Budget() (r models.Budget, exists bool) {
	v := m.budget
	if v == nil {
		return
	}
	return *v, true
}

// OldBudget returns the old "budget" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldBudget(ctx context.Context) (v models.Budget, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudget: %w", err)
	}
	return oldValue.Budget, nil
}

// ResetBudget resets all changes to the "budget" field.
func (m *ProjectMutation) ResetBudget() {
	m.budget = nil
}

// SetDnaBank sets the "dna_bank" field.
func (m *ProjectMutation) SetDnaBank(me map[string]models.DNAEntry) {
	m.dna_bank = &me
}

// DnaBank returns the value of the "dna_bank" field in the mutation.
func (m *ProjectMutation) DnaBank() (r map[string]models.DNAEntry, exists bool) {
	v := m.dna_bank
	if v == nil {
		return
	}
	return *v, true
}

// OldDnaBank returns the old "dna_bank" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDnaBank(ctx context.Context) (v map[string]models.DNAEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDnaBank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDnaBank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDnaBank: %w", err)
	}
	return oldValue.DnaBank, nil
}

// ClearDnaBank clears the value of the "dna_bank" field.
func (m *ProjectMutation) ClearDnaBank() {
	m.dna_bank = nil
	m.clearedFields[project.FieldDnaBank] = struct{}{}
}

// DnaBankCleared returns if the "dna_bank" field was cleared in this mutation.
func (m *ProjectMutation) DnaBankCleared() bool {
	_, ok := m.clearedFields[project.FieldDnaBank]
	return ok
}

// ResetDnaBank resets all changes to the "dna_bank" field.
func (m *ProjectMutation) ResetDnaBank() {
	m.dna_bank = nil
	delete(m.clearedFields, project.FieldDnaBank)
}

// SetShots sets the "shots" field.
func (m *ProjectMutation) SetShots(value map[string]models.Shot) {
	m.shots = &value
}

// Shots returns the value of the "shots" field in the mutation.
func (m *ProjectMutation) Shots() (r map[string]models.Shot, exists bool) {
	v := m.shots
	if v == nil {
		return
	}
	return *v, true
}

// OldShots returns the old "shots" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldShots(ctx context.Context) (v map[string]models.Shot, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShots is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShots requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShots: %w", err)
	}
	return oldValue.Shots, nil
}

// ClearShots clears the value of the "shots" field.
func (m *ProjectMutation) ClearShots() {
	m.shots = nil
	m.clearedFields[project.FieldShots] = struct{}{}
}

// ShotsCleared returns if the "shots" field was cleared in this mutation.
func (m *ProjectMutation) ShotsCleared() bool {
	_, ok := m.clearedFields[project.FieldShots]
	return ok
}

// ResetShots resets all changes to the "shots" field.
func (m *ProjectMutation) ResetShots() {
	m.shots = nil
	delete(m.clearedFields, project.FieldShots)
}

// SetTasks sets the "tasks" field.
func (m *ProjectMutation) SetTasks(value map[string]models.Task) {
	m.tasks = &value
}

// Tasks returns the value of the "tasks" field in the mutation.
func (m *ProjectMutation) Tasks() (r map[string]models.Task, exists bool) {
	v := m.tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldTasks returns the old "tasks" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldTasks(ctx context.Context) (v map[string]models.Task, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasks: %w", err)
	}
	return oldValue.Tasks, nil
}

// ClearTasks clears the value of the "tasks" field.
func (m *ProjectMutation) ClearTasks() {
	m.tasks = nil
	m.clearedFields[project.FieldTasks] = struct{}{}
}

// TasksCleared returns if the "tasks" field was cleared in this mutation.
func (m *ProjectMutation) TasksCleared() bool {
	_, ok := m.clearedFields[project.FieldTasks]
	return ok
}

// ResetTasks resets all changes to the "tasks" field.
func (m *ProjectMutation) ResetTasks() {
	m.tasks = nil
	delete(m.clearedFields, project.FieldTasks)
}

// SetLocks sets the "locks" field.
func (m *ProjectMutation) SetLocks(mi map[string]models.LockInfo) {
	m.locks = &mi
}

// Locks returns the value of the "locks" field in the mutation.
func (m *ProjectMutation) Locks() (r map[string]models.LockInfo, exists bool) {
	v := m.locks
	if v == nil {
		return
	}
	return *v, true
}

// OldLocks returns the old "locks" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldLocks(ctx context.Context) (v map[string]models.LockInfo, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocks: %w", err)
	}
	return oldValue.Locks, nil
}

// ClearLocks clears the value of the "locks" field.
func (m *ProjectMutation) ClearLocks() {
	m.locks = nil
	m.clearedFields[project.FieldLocks] = struct{}{}
}

// LocksCleared returns if the "locks" field was cleared in this mutation.
func (m *ProjectMutation) LocksCleared() bool {
	_, ok := m.clearedFields[project.FieldLocks]
	return ok
}

// ResetLocks resets all changes to the "locks" field.
func (m *ProjectMutation) ResetLocks() {
	m.locks = nil
	delete(m.clearedFields, project.FieldLocks)
}

// SetArtifactIndex sets the "artifact_index" field.
func (m *ProjectMutation) SetArtifactIndex(mm map[string]models.ArtifactMeta) {
	m.artifact_index = &mm
}

// ArtifactIndex returns the value of the "artifact_index" field in the mutation.
func (m *ProjectMutation) ArtifactIndex() (r map[string]models.ArtifactMeta, exists bool) {
	v := m.artifact_index
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactIndex returns the old "artifact_index" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldArtifactIndex(ctx context.Context) (v map[string]models.ArtifactMeta, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactIndex: %w", err)
	}
	return oldValue.ArtifactIndex, nil
}

// ClearArtifactIndex clears the value of the "artifact_index" field.
func (m *ProjectMutation) ClearArtifactIndex() {
	m.artifact_index = nil
	m.clearedFields[project.FieldArtifactIndex] = struct{}{}
}

// ArtifactIndexCleared returns if the "artifact_index" field was cleared in this mutation.
func (m *ProjectMutation) ArtifactIndexCleared() bool {
	_, ok := m.clearedFields[project.FieldArtifactIndex]
	return ok
}

// ResetArtifactIndex resets all changes to the "artifact_index" field.
func (m *ProjectMutation) ResetArtifactIndex() {
	m.artifact_index = nil
	delete(m.clearedFields, project.FieldArtifactIndex)
}

// SetErrorLog sets the "error_log" field.
func (m *ProjectMutation) SetErrorLog(me []models.ErrorEntry) {
	m.error_log = &me
	m.appenderror_log = nil
}

// ErrorLog returns the value of the "error_log" field in the mutation.
func (m *ProjectMutation) ErrorLog() (r []models.ErrorEntry, exists bool) {
	v := m.error_log
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorLog returns the old "error_log" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldErrorLog(ctx context.Context) (v []models.ErrorEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorLog: %w", err)
	}
	return oldValue.ErrorLog, nil
}

// AppendErrorLog adds me to the "error_log" field.
func (m *ProjectMutation) AppendErrorLog(me []models.ErrorEntry) {
	m.appenderror_log = append(m.appenderror_log, me...)
}

// AppendedErrorLog returns the list of values that were appended to the "error_log" field in this mutation.
func (m *ProjectMutation) AppendedErrorLog() ([]models.ErrorEntry, bool) {
	if len(m.appenderror_log) == 0 {
		return nil, false
	}
	return m.appenderror_log, true
}

// ClearErrorLog clears the value of the "error_log" field.
func (m *ProjectMutation) ClearErrorLog() {
	m.error_log = nil
	m.appenderror_log = nil
	m.clearedFields[project.FieldErrorLog] = struct{}{}
}

// ErrorLogCleared returns if the "error_log" field was cleared in this mutation.
func (m *ProjectMutation) ErrorLogCleared() bool {
	_, ok := m.clearedFields[project.FieldErrorLog]
	return ok
}

// ResetErrorLog resets all changes to the "error_log" field.
func (m *ProjectMutation) ResetErrorLog() {
	m.error_log = nil
	m.appenderror_log = nil
	delete(m.clearedFields, project.FieldErrorLog)
}

// SetChangeLog sets the "change_log" field.
func (m *ProjectMutation) SetChangeLog(me []models.ChangeEntry) {
	m.change_log = &me
	m.appendchange_log = nil
}

// ChangeLog returns the value of the "change_log" field in the mutation.
func (m *ProjectMutation) ChangeLog() (r []models.ChangeEntry, exists bool) {
	v := m.change_log
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeLog returns the old "change_log" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldChangeLog(ctx context.Context) (v []models.ChangeEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeLog: %w", err)
	}
	return oldValue.ChangeLog, nil
}

// AppendChangeLog adds me to the "change_log" field.
func (m *ProjectMutation) AppendChangeLog(me []models.ChangeEntry) {
	m.appendchange_log = append(m.appendchange_log, me...)
}

// AppendedChangeLog returns the list of values that were appended to the "change_log" field in this mutation.
func (m *ProjectMutation) AppendedChangeLog() ([]models.ChangeEntry, bool) {
	if len(m.appendchange_log) == 0 {
		return nil, false
	}
	return m.appendchange_log, true
}

// ClearChangeLog clears the value of the "change_log" field.
func (m *ProjectMutation) ClearChangeLog() {
	m.change_log = nil
	m.appendchange_log = nil
	m.clearedFields[project.FieldChangeLog] = struct{}{}
}

// ChangeLogCleared returns if the "change_log" field was cleared in this mutation.
func (m *ProjectMutation) ChangeLogCleared() bool {
	_, ok := m.clearedFields[project.FieldChangeLog]
	return ok
}

// ResetChangeLog resets all changes to the "change_log" field.
func (m *ProjectMutation) ResetChangeLog() {
	m.change_log = nil
	m.appendchange_log = nil
	delete(m.clearedFields, project.FieldChangeLog)
}

// SetApprovals sets the "approvals" field.
func (m *ProjectMutation) SetApprovals(mr map[string]models.ApprovalRequest) {
	m.approvals = &mr
}

// Approvals returns the value of the "approvals" field in the mutation.
func (m *ProjectMutation) Approvals() (r map[string]models.ApprovalRequest, exists bool) {
	v := m.approvals
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovals returns the old "approvals" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldApprovals(ctx context.Context) (v map[string]models.ApprovalRequest, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovals: %w", err)
	}
	return oldValue.Approvals, nil
}

// ClearApprovals clears the value of the "approvals" field.
func (m *ProjectMutation) ClearApprovals() {
	m.approvals = nil
	m.clearedFields[project.FieldApprovals] = struct{}{}
}

// ApprovalsCleared returns if the "approvals" field was cleared in this mutation.
func (m *ProjectMutation) ApprovalsCleared() bool {
	_, ok := m.clearedFields[project.FieldApprovals]
	return ok
}

// ResetApprovals resets all changes to the "approvals" field.
func (m *ProjectMutation) ResetApprovals() {
	m.approvals = nil
	delete(m.clearedFields, project.FieldApprovals)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProjectMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProjectMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ProjectMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[project.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ProjectMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProjectMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, project.FieldCompletedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ProjectMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ProjectMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ProjectMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[project.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ProjectMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ProjectMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, project.FieldDeletedAt)
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.version != nil {
		fields = append(fields, project.FieldVersion)
	}
	if m.status != nil {
		fields = append(fields, project.FieldStatus)
	}
	if m.spec != nil {
		fields = append(fields, project.FieldSpec)
	}
	if m.budget != nil {
		fields = append(fields, project.FieldBudget)
	}
	if m.dna_bank != nil {
		fields = append(fields, project.FieldDnaBank)
	}
	if m.shots != nil {
		fields = append(fields, project.FieldShots)
	}
	if m.tasks != nil {
		fields = append(fields, project.FieldTasks)
	}
	if m.locks != nil {
		fields = append(fields, project.FieldLocks)
	}
	if m.artifact_index != nil {
		fields = append(fields, project.FieldArtifactIndex)
	}
	if m.error_log != nil {
		fields = append(fields, project.FieldErrorLog)
	}
	if m.change_log != nil {
		fields = append(fields, project.FieldChangeLog)
	}
	if m.approvals != nil {
		fields = append(fields, project.FieldApprovals)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, project.FieldCompletedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, project.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldVersion:
		return m.Version()
	case project.FieldStatus:
		return m.Status()
	case project.FieldSpec:
		return m.Spec()
	case project.FieldBudget:
		return m.Budget()
	case project.FieldDnaBank:
		return m.DnaBank()
	case project.FieldShots:
		return m.Shots()
	case project.FieldTasks:
		return m.Tasks()
	case project.FieldLocks:
		return m.Locks()
	case project.FieldArtifactIndex:
		return m.ArtifactIndex()
	case project.FieldErrorLog:
		return m.ErrorLog()
	case project.FieldChangeLog:
		return m.ChangeLog()
	case project.FieldApprovals:
		return m.Approvals()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	case project.FieldCompletedAt:
		return m.CompletedAt()
	case project.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldVersion:
		return m.OldVersion(ctx)
	case project.FieldStatus:
		return m.OldStatus(ctx)
	case project.FieldSpec:
		return m.OldSpec(ctx)
	case project.FieldBudget:
		return m.OldBudget(ctx)
	case project.FieldDnaBank:
		return m.OldDnaBank(ctx)
	case project.FieldShots:
		return m.OldShots(ctx)
	case project.FieldTasks:
		return m.OldTasks(ctx)
	case project.FieldLocks:
		return m.OldLocks(ctx)
	case project.FieldArtifactIndex:
		return m.OldArtifactIndex(ctx)
	case project.FieldErrorLog:
		return m.OldErrorLog(ctx)
	case project.FieldChangeLog:
		return m.OldChangeLog(ctx)
	case project.FieldApprovals:
		return m.OldApprovals(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case project.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case project.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case project.FieldStatus:
		v, ok := value.(project.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case project.FieldSpec:
		v, ok := value.(models.GlobalSpec)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpec(v)
		return nil
	case project.FieldBudget:
		v, ok := value.(models.Budget)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudget(v)
		return nil
	case project.FieldDnaBank:
		v, ok := value.(map[string]models.DNAEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDnaBank(v)
		return nil
	case project.FieldShots:
		v, ok := value.(map[string]models.Shot)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShots(v)
		return nil
	case project.FieldTasks:
		v, ok := value.(map[string]models.Task)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasks(v)
		return nil
	case project.FieldLocks:
		v, ok := value.(map[string]models.LockInfo)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocks(v)
		return nil
	case project.FieldArtifactIndex:
		v, ok := value.(map[string]models.ArtifactMeta)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactIndex(v)
		return nil
	case project.FieldErrorLog:
		v, ok := value.([]models.ErrorEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorLog(v)
		return nil
	case project.FieldChangeLog:
		v, ok := value.([]models.ChangeEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeLog(v)
		return nil
	case project.FieldApprovals:
		v, ok := value.(map[string]models.ApprovalRequest)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovals(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case project.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case project.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, project.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case project.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case project.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDnaBank) {
		fields = append(fields, project.FieldDnaBank)
	}
	if m.FieldCleared(project.FieldShots) {
		fields = append(fields, project.FieldShots)
	}
	if m.FieldCleared(project.FieldTasks) {
		fields = append(fields, project.FieldTasks)
	}
	if m.FieldCleared(project.FieldLocks) {
		fields = append(fields, project.FieldLocks)
	}
	if m.FieldCleared(project.FieldArtifactIndex) {
		fields = append(fields, project.FieldArtifactIndex)
	}
	if m.FieldCleared(project.FieldErrorLog) {
		fields = append(fields, project.FieldErrorLog)
	}
	if m.FieldCleared(project.FieldChangeLog) {
		fields = append(fields, project.FieldChangeLog)
	}
	if m.FieldCleared(project.FieldApprovals) {
		fields = append(fields, project.FieldApprovals)
	}
	if m.FieldCleared(project.FieldCompletedAt) {
		fields = append(fields, project.FieldCompletedAt)
	}
	if m.FieldCleared(project.FieldDeletedAt) {
		fields = append(fields, project.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDnaBank:
		m.ClearDnaBank()
		return nil
	case project.FieldShots:
		m.ClearShots()
		return nil
	case project.FieldTasks:
		m.ClearTasks()
		return nil
	case project.FieldLocks:
		m.ClearLocks()
		return nil
	case project.FieldArtifactIndex:
		m.ClearArtifactIndex()
		return nil
	case project.FieldErrorLog:
		m.ClearErrorLog()
		return nil
	case project.FieldChangeLog:
		m.ClearChangeLog()
		return nil
	case project.FieldApprovals:
		m.ClearApprovals()
		return nil
	case project.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case project.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldVersion:
		m.ResetVersion()
		return nil
	case project.FieldStatus:
		m.ResetStatus()
		return nil
	case project.FieldSpec:
		m.ResetSpec()
		return nil
	case project.FieldBudget:
		m.ResetBudget()
		return nil
	case project.FieldDnaBank:
		m.ResetDnaBank()
		return nil
	case project.FieldShots:
		m.ResetShots()
		return nil
	case project.FieldTasks:
		m.ResetTasks()
		return nil
	case project.FieldLocks:
		m.ResetLocks()
		return nil
	case project.FieldArtifactIndex:
		m.ResetArtifactIndex()
		return nil
	case project.FieldErrorLog:
		m.ResetErrorLog()
		return nil
	case project.FieldChangeLog:
		m.ResetChangeLog()
		return nil
	case project.FieldApprovals:
		m.ResetApprovals()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case project.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case project.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Project edge %s", name)
}
