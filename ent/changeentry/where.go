// Code generated by ent, DO NOT EDIT.

package changeentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/clipforge/clipforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldProjectID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldVersion, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldActor, v))
}

// ChangeType applies equality check predicate on the "change_type" field. It's identical to ChangeTypeEQ.
func ChangeType(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldChangeType, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldDescription, v))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldPath, v))
}

// CausationEventID applies equality check predicate on the "causation_event_id" field. It's identical to CausationEventIDEQ.
func CausationEventID(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldCausationEventID, v))
}

// Before applies equality check predicate on the "before" field. It's identical to BeforeEQ.
func Before(v []byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldBefore, v))
}

// After applies equality check predicate on the "after" field. It's identical to AfterEQ.
func After(v []byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldAfter, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldContainsFold(FieldProjectID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLTE(FieldVersion, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldHasSuffix(FieldActor, v))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldContainsFold(FieldActor, v))
}

// ChangeTypeEQ applies the EQ predicate on the "change_type" field.
func ChangeTypeEQ(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldChangeType, v))
}

// ChangeTypeNEQ applies the NEQ predicate on the "change_type" field.
func ChangeTypeNEQ(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNEQ(FieldChangeType, v))
}

// ChangeTypeIn applies the In predicate on the "change_type" field.
func ChangeTypeIn(vs ...string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldIn(FieldChangeType, vs...))
}

// ChangeTypeNotIn applies the NotIn predicate on the "change_type" field.
func ChangeTypeNotIn(vs ...string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNotIn(FieldChangeType, vs...))
}

// ChangeTypeGT applies the GT predicate on the "change_type" field.
func ChangeTypeGT(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGT(FieldChangeType, v))
}

// ChangeTypeGTE applies the GTE predicate on the "change_type" field.
func ChangeTypeGTE(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGTE(FieldChangeType, v))
}

// ChangeTypeLT applies the LT predicate on the "change_type" field.
func ChangeTypeLT(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLT(FieldChangeType, v))
}

// ChangeTypeLTE applies the LTE predicate on the "change_type" field.
func ChangeTypeLTE(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLTE(FieldChangeType, v))
}

// ChangeTypeContains applies the Contains predicate on the "change_type" field.
func ChangeTypeContains(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldContains(FieldChangeType, v))
}

// ChangeTypeHasPrefix applies the HasPrefix predicate on the "change_type" field.
func ChangeTypeHasPrefix(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldHasPrefix(FieldChangeType, v))
}

// ChangeTypeHasSuffix applies the HasSuffix predicate on the "change_type" field.
func ChangeTypeHasSuffix(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldHasSuffix(FieldChangeType, v))
}

// ChangeTypeEqualFold applies the EqualFold predicate on the "change_type" field.
func ChangeTypeEqualFold(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEqualFold(FieldChangeType, v))
}

// ChangeTypeContainsFold applies the ContainsFold predicate on the "change_type" field.
func ChangeTypeContainsFold(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldContainsFold(FieldChangeType, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldContainsFold(FieldDescription, v))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldHasSuffix(FieldPath, v))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldContainsFold(FieldPath, v))
}

// CausationEventIDEQ applies the EQ predicate on the "causation_event_id" field.
func CausationEventIDEQ(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldCausationEventID, v))
}

// CausationEventIDNEQ applies the NEQ predicate on the "causation_event_id" field.
func CausationEventIDNEQ(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNEQ(FieldCausationEventID, v))
}

// CausationEventIDIn applies the In predicate on the "causation_event_id" field.
func CausationEventIDIn(vs ...string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldIn(FieldCausationEventID, vs...))
}

// CausationEventIDNotIn applies the NotIn predicate on the "causation_event_id" field.
func CausationEventIDNotIn(vs ...string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNotIn(FieldCausationEventID, vs...))
}

// CausationEventIDGT applies the GT predicate on the "causation_event_id" field.
func CausationEventIDGT(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGT(FieldCausationEventID, v))
}

// CausationEventIDGTE applies the GTE predicate on the "causation_event_id" field.
func CausationEventIDGTE(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGTE(FieldCausationEventID, v))
}

// CausationEventIDLT applies the LT predicate on the "causation_event_id" field.
func CausationEventIDLT(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLT(FieldCausationEventID, v))
}

// CausationEventIDLTE applies the LTE predicate on the "causation_event_id" field.
func CausationEventIDLTE(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLTE(FieldCausationEventID, v))
}

// CausationEventIDContains applies the Contains predicate on the "causation_event_id" field.
func CausationEventIDContains(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldContains(FieldCausationEventID, v))
}

// CausationEventIDHasPrefix applies the HasPrefix predicate on the "causation_event_id" field.
func CausationEventIDHasPrefix(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldHasPrefix(FieldCausationEventID, v))
}

// CausationEventIDHasSuffix applies the HasSuffix predicate on the "causation_event_id" field.
func CausationEventIDHasSuffix(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldHasSuffix(FieldCausationEventID, v))
}

// CausationEventIDIsNil applies the IsNil predicate on the "causation_event_id" field.
func CausationEventIDIsNil() predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldIsNull(FieldCausationEventID))
}

// CausationEventIDNotNil applies the NotNil predicate on the "causation_event_id" field.
func CausationEventIDNotNil() predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNotNull(FieldCausationEventID))
}

// CausationEventIDEqualFold applies the EqualFold predicate on the "causation_event_id" field.
func CausationEventIDEqualFold(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEqualFold(FieldCausationEventID, v))
}

// CausationEventIDContainsFold applies the ContainsFold predicate on the "causation_event_id" field.
func CausationEventIDContainsFold(v string) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldContainsFold(FieldCausationEventID, v))
}

// BeforeEQ applies the EQ predicate on the "before" field.
func BeforeEQ(v []byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldBefore, v))
}

// BeforeNEQ applies the NEQ predicate on the "before" field.
func BeforeNEQ(v []byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNEQ(FieldBefore, v))
}

// BeforeIn applies the In predicate on the "before" field.
func BeforeIn(vs ...[]byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldIn(FieldBefore, vs...))
}

// BeforeNotIn applies the NotIn predicate on the "before" field.
func BeforeNotIn(vs ...[]byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNotIn(FieldBefore, vs...))
}

// BeforeGT applies the GT predicate on the "before" field.
func BeforeGT(v []byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGT(FieldBefore, v))
}

// BeforeGTE applies the GTE predicate on the "before" field.
func BeforeGTE(v []byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGTE(FieldBefore, v))
}

// BeforeLT applies the LT predicate on the "before" field.
func BeforeLT(v []byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLT(FieldBefore, v))
}

// BeforeLTE applies the LTE predicate on the "before" field.
func BeforeLTE(v []byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLTE(FieldBefore, v))
}

// BeforeIsNil applies the IsNil predicate on the "before" field.
func BeforeIsNil() predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldIsNull(FieldBefore))
}

// BeforeNotNil applies the NotNil predicate on the "before" field.
func BeforeNotNil() predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNotNull(FieldBefore))
}

// AfterEQ applies the EQ predicate on the "after" field.
func AfterEQ(v []byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldAfter, v))
}

// AfterNEQ applies the NEQ predicate on the "after" field.
func AfterNEQ(v []byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNEQ(FieldAfter, v))
}

// AfterIn applies the In predicate on the "after" field.
func AfterIn(vs ...[]byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldIn(FieldAfter, vs...))
}

// AfterNotIn applies the NotIn predicate on the "after" field.
func AfterNotIn(vs ...[]byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNotIn(FieldAfter, vs...))
}

// AfterGT applies the GT predicate on the "after" field.
func AfterGT(v []byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGT(FieldAfter, v))
}

// AfterGTE applies the GTE predicate on the "after" field.
func AfterGTE(v []byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGTE(FieldAfter, v))
}

// AfterLT applies the LT predicate on the "after" field.
func AfterLT(v []byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLT(FieldAfter, v))
}

// AfterLTE applies the LTE predicate on the "after" field.
func AfterLTE(v []byte) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLTE(FieldAfter, v))
}

// AfterIsNil applies the IsNil predicate on the "after" field.
func AfterIsNil() predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldIsNull(FieldAfter))
}

// AfterNotNil applies the NotNil predicate on the "after" field.
func AfterNotNil() predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNotNull(FieldAfter))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChangeEntry) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChangeEntry) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChangeEntry) predicate.ChangeEntry {
	return predicate.ChangeEntry(sql.NotPredicates(p))
}
