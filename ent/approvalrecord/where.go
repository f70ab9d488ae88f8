// Code generated by ent, DO NOT EDIT.

package approvalrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/clipforge/clipforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldProjectID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldStage, v))
}

// ContentSummary applies equality check predicate on the "content_summary" field. It's identical to ContentSummaryEQ.
func ContentSummary(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldContentSummary, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldNotes, v))
}

// PriorStatus applies equality check predicate on the "prior_status" field. It's identical to PriorStatusEQ.
func PriorStatus(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldPriorStatus, v))
}

// TriggerEventID applies equality check predicate on the "trigger_event_id" field. It's identical to TriggerEventIDEQ.
func TriggerEventID(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldTriggerEventID, v))
}

// ReminderSent applies equality check predicate on the "reminder_sent" field. It's identical to ReminderSentEQ.
func ReminderSent(v bool) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldReminderSent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedBy applies equality check predicate on the "resolved_by" field. It's identical to ResolvedByEQ.
func ResolvedBy(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldResolvedBy, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContainsFold(FieldProjectID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContainsFold(FieldStage, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// ContentSummaryEQ applies the EQ predicate on the "content_summary" field.
func ContentSummaryEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldContentSummary, v))
}

// ContentSummaryNEQ applies the NEQ predicate on the "content_summary" field.
func ContentSummaryNEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldContentSummary, v))
}

// ContentSummaryIn applies the In predicate on the "content_summary" field.
func ContentSummaryIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldContentSummary, vs...))
}

// ContentSummaryNotIn applies the NotIn predicate on the "content_summary" field.
func ContentSummaryNotIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldContentSummary, vs...))
}

// ContentSummaryGT applies the GT predicate on the "content_summary" field.
func ContentSummaryGT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldContentSummary, v))
}

// ContentSummaryGTE applies the GTE predicate on the "content_summary" field.
func ContentSummaryGTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldContentSummary, v))
}

// ContentSummaryLT applies the LT predicate on the "content_summary" field.
func ContentSummaryLT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldContentSummary, v))
}

// ContentSummaryLTE applies the LTE predicate on the "content_summary" field.
func ContentSummaryLTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldContentSummary, v))
}

// ContentSummaryContains applies the Contains predicate on the "content_summary" field.
func ContentSummaryContains(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContains(FieldContentSummary, v))
}

// ContentSummaryHasPrefix applies the HasPrefix predicate on the "content_summary" field.
func ContentSummaryHasPrefix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasPrefix(FieldContentSummary, v))
}

// ContentSummaryHasSuffix applies the HasSuffix predicate on the "content_summary" field.
func ContentSummaryHasSuffix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasSuffix(FieldContentSummary, v))
}

// ContentSummaryEqualFold applies the EqualFold predicate on the "content_summary" field.
func ContentSummaryEqualFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEqualFold(FieldContentSummary, v))
}

// ContentSummaryContainsFold applies the ContainsFold predicate on the "content_summary" field.
func ContentSummaryContainsFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContainsFold(FieldContentSummary, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContainsFold(FieldNotes, v))
}

// PriorStatusEQ applies the EQ predicate on the "prior_status" field.
func PriorStatusEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldPriorStatus, v))
}

// PriorStatusNEQ applies the NEQ predicate on the "prior_status" field.
func PriorStatusNEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldPriorStatus, v))
}

// PriorStatusIn applies the In predicate on the "prior_status" field.
func PriorStatusIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldPriorStatus, vs...))
}

// PriorStatusNotIn applies the NotIn predicate on the "prior_status" field.
func PriorStatusNotIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldPriorStatus, vs...))
}

// PriorStatusGT applies the GT predicate on the "prior_status" field.
func PriorStatusGT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldPriorStatus, v))
}

// PriorStatusGTE applies the GTE predicate on the "prior_status" field.
func PriorStatusGTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldPriorStatus, v))
}

// PriorStatusLT applies the LT predicate on the "prior_status" field.
func PriorStatusLT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldPriorStatus, v))
}

// PriorStatusLTE applies the LTE predicate on the "prior_status" field.
func PriorStatusLTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldPriorStatus, v))
}

// PriorStatusContains applies the Contains predicate on the "prior_status" field.
func PriorStatusContains(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContains(FieldPriorStatus, v))
}

// PriorStatusHasPrefix applies the HasPrefix predicate on the "prior_status" field.
func PriorStatusHasPrefix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasPrefix(FieldPriorStatus, v))
}

// PriorStatusHasSuffix applies the HasSuffix predicate on the "prior_status" field.
func PriorStatusHasSuffix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasSuffix(FieldPriorStatus, v))
}

// PriorStatusEqualFold applies the EqualFold predicate on the "prior_status" field.
func PriorStatusEqualFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEqualFold(FieldPriorStatus, v))
}

// PriorStatusContainsFold applies the ContainsFold predicate on the "prior_status" field.
func PriorStatusContainsFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContainsFold(FieldPriorStatus, v))
}

// TriggerEventIDEQ applies the EQ predicate on the "trigger_event_id" field.
func TriggerEventIDEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldTriggerEventID, v))
}

// TriggerEventIDNEQ applies the NEQ predicate on the "trigger_event_id" field.
func TriggerEventIDNEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldTriggerEventID, v))
}

// TriggerEventIDIn applies the In predicate on the "trigger_event_id" field.
func TriggerEventIDIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldTriggerEventID, vs...))
}

// TriggerEventIDNotIn applies the NotIn predicate on the "trigger_event_id" field.
func TriggerEventIDNotIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldTriggerEventID, vs...))
}

// TriggerEventIDGT applies the GT predicate on the "trigger_event_id" field.
func TriggerEventIDGT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldTriggerEventID, v))
}

// TriggerEventIDGTE applies the GTE predicate on the "trigger_event_id" field.
func TriggerEventIDGTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldTriggerEventID, v))
}

// TriggerEventIDLT applies the LT predicate on the "trigger_event_id" field.
func TriggerEventIDLT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldTriggerEventID, v))
}

// TriggerEventIDLTE applies the LTE predicate on the "trigger_event_id" field.
func TriggerEventIDLTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldTriggerEventID, v))
}

// TriggerEventIDContains applies the Contains predicate on the "trigger_event_id" field.
func TriggerEventIDContains(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContains(FieldTriggerEventID, v))
}

// TriggerEventIDHasPrefix applies the HasPrefix predicate on the "trigger_event_id" field.
func TriggerEventIDHasPrefix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasPrefix(FieldTriggerEventID, v))
}

// TriggerEventIDHasSuffix applies the HasSuffix predicate on the "trigger_event_id" field.
func TriggerEventIDHasSuffix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasSuffix(FieldTriggerEventID, v))
}

// TriggerEventIDEqualFold applies the EqualFold predicate on the "trigger_event_id" field.
func TriggerEventIDEqualFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEqualFold(FieldTriggerEventID, v))
}

// TriggerEventIDContainsFold applies the ContainsFold predicate on the "trigger_event_id" field.
func TriggerEventIDContainsFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContainsFold(FieldTriggerEventID, v))
}

// DeferredTasksIsNil applies the IsNil predicate on the "deferred_tasks" field.
func DeferredTasksIsNil() predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIsNull(FieldDeferredTasks))
}

// DeferredTasksNotNil applies the NotNil predicate on the "deferred_tasks" field.
func DeferredTasksNotNil() predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotNull(FieldDeferredTasks))
}

// ReminderSentEQ applies the EQ predicate on the "reminder_sent" field.
func ReminderSentEQ(v bool) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldReminderSent, v))
}

// ReminderSentNEQ applies the NEQ predicate on the "reminder_sent" field.
func ReminderSentNEQ(v bool) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldReminderSent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotNull(FieldResolvedAt))
}

// ResolvedByEQ applies the EQ predicate on the "resolved_by" field.
func ResolvedByEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldResolvedBy, v))
}

// ResolvedByNEQ applies the NEQ predicate on the "resolved_by" field.
func ResolvedByNEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldResolvedBy, v))
}

// ResolvedByIn applies the In predicate on the "resolved_by" field.
func ResolvedByIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldResolvedBy, vs...))
}

// ResolvedByNotIn applies the NotIn predicate on the "resolved_by" field.
func ResolvedByNotIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldResolvedBy, vs...))
}

// ResolvedByGT applies the GT predicate on the "resolved_by" field.
func ResolvedByGT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldResolvedBy, v))
}

// ResolvedByGTE applies the GTE predicate on the "resolved_by" field.
func ResolvedByGTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldResolvedBy, v))
}

// ResolvedByLT applies the LT predicate on the "resolved_by" field.
func ResolvedByLT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldResolvedBy, v))
}

// ResolvedByLTE applies the LTE predicate on the "resolved_by" field.
func ResolvedByLTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldResolvedBy, v))
}

// ResolvedByContains applies the Contains predicate on the "resolved_by" field.
func ResolvedByContains(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContains(FieldResolvedBy, v))
}

// ResolvedByHasPrefix applies the HasPrefix predicate on the "resolved_by" field.
func ResolvedByHasPrefix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasPrefix(FieldResolvedBy, v))
}

// ResolvedByHasSuffix applies the HasSuffix predicate on the "resolved_by" field.
func ResolvedByHasSuffix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasSuffix(FieldResolvedBy, v))
}

// ResolvedByIsNil applies the IsNil predicate on the "resolved_by" field.
func ResolvedByIsNil() predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIsNull(FieldResolvedBy))
}

// ResolvedByNotNil applies the NotNil predicate on the "resolved_by" field.
func ResolvedByNotNil() predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotNull(FieldResolvedBy))
}

// ResolvedByEqualFold applies the EqualFold predicate on the "resolved_by" field.
func ResolvedByEqualFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEqualFold(FieldResolvedBy, v))
}

// ResolvedByContainsFold applies the ContainsFold predicate on the "resolved_by" field.
func ResolvedByContainsFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContainsFold(FieldResolvedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalRecord) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalRecord) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalRecord) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.NotPredicates(p))
}
