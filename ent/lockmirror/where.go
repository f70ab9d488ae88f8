// Code generated by ent, DO NOT EDIT.

package lockmirror

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/clipforge/clipforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldEQ(FieldProjectID, v))
}

// Holder applies equality check predicate on the "holder" field. It's identical to HolderEQ.
func Holder(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldEQ(FieldHolder, v))
}

// AcquiredAt applies equality check predicate on the "acquired_at" field. It's identical to AcquiredAtEQ.
func AcquiredAt(v time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldEQ(FieldAcquiredAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldEQ(FieldExpiresAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldContainsFold(FieldProjectID, v))
}

// HolderEQ applies the EQ predicate on the "holder" field.
func HolderEQ(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldEQ(FieldHolder, v))
}

// HolderNEQ applies the NEQ predicate on the "holder" field.
func HolderNEQ(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldNEQ(FieldHolder, v))
}

// HolderIn applies the In predicate on the "holder" field.
func HolderIn(vs ...string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldIn(FieldHolder, vs...))
}

// HolderNotIn applies the NotIn predicate on the "holder" field.
func HolderNotIn(vs ...string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldNotIn(FieldHolder, vs...))
}

// HolderGT applies the GT predicate on the "holder" field.
func HolderGT(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldGT(FieldHolder, v))
}

// HolderGTE applies the GTE predicate on the "holder" field.
func HolderGTE(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldGTE(FieldHolder, v))
}

// HolderLT applies the LT predicate on the "holder" field.
func HolderLT(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldLT(FieldHolder, v))
}

// HolderLTE applies the LTE predicate on the "holder" field.
func HolderLTE(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldLTE(FieldHolder, v))
}

// HolderContains applies the Contains predicate on the "holder" field.
func HolderContains(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldContains(FieldHolder, v))
}

// HolderHasPrefix applies the HasPrefix predicate on the "holder" field.
func HolderHasPrefix(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldHasPrefix(FieldHolder, v))
}

// HolderHasSuffix applies the HasSuffix predicate on the "holder" field.
func HolderHasSuffix(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldHasSuffix(FieldHolder, v))
}

// HolderEqualFold applies the EqualFold predicate on the "holder" field.
func HolderEqualFold(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldEqualFold(FieldHolder, v))
}

// HolderContainsFold applies the ContainsFold predicate on the "holder" field.
func HolderContainsFold(v string) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldContainsFold(FieldHolder, v))
}

// AcquiredAtEQ applies the EQ predicate on the "acquired_at" field.
func AcquiredAtEQ(v time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldEQ(FieldAcquiredAt, v))
}

// AcquiredAtNEQ applies the NEQ predicate on the "acquired_at" field.
func AcquiredAtNEQ(v time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldNEQ(FieldAcquiredAt, v))
}

// AcquiredAtIn applies the In predicate on the "acquired_at" field.
func AcquiredAtIn(vs ...time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldIn(FieldAcquiredAt, vs...))
}

// AcquiredAtNotIn applies the NotIn predicate on the "acquired_at" field.
func AcquiredAtNotIn(vs ...time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldNotIn(FieldAcquiredAt, vs...))
}

// AcquiredAtGT applies the GT predicate on the "acquired_at" field.
func AcquiredAtGT(v time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldGT(FieldAcquiredAt, v))
}

// AcquiredAtGTE applies the GTE predicate on the "acquired_at" field.
func AcquiredAtGTE(v time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldGTE(FieldAcquiredAt, v))
}

// AcquiredAtLT applies the LT predicate on the "acquired_at" field.
func AcquiredAtLT(v time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldLT(FieldAcquiredAt, v))
}

// AcquiredAtLTE applies the LTE predicate on the "acquired_at" field.
func AcquiredAtLTE(v time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldLTE(FieldAcquiredAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.LockMirror {
	return predicate.LockMirror(sql.FieldLTE(FieldExpiresAt, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.LockMirror {
	return predicate.LockMirror(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.LockMirror {
	return predicate.LockMirror(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LockMirror) predicate.LockMirror {
	return predicate.LockMirror(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LockMirror) predicate.LockMirror {
	return predicate.LockMirror(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LockMirror) predicate.LockMirror {
	return predicate.LockMirror(sql.NotPredicates(p))
}
