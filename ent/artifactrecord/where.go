// Code generated by ent, DO NOT EDIT.

package artifactrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/clipforge/clipforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldProjectID, v))
}

// URI applies equality check predicate on the "uri" field. It's identical to URIEQ.
func URI(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldURI, v))
}

// Seed applies equality check predicate on the "seed" field. It's identical to SeedEQ.
func Seed(v int64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldSeed, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldModel, v))
}

// ModelVersion applies equality check predicate on the "model_version" field. It's identical to ModelVersionEQ.
func ModelVersion(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldModelVersion, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldPrompt, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldCost, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldCurrency, v))
}

// UseCount applies equality check predicate on the "use_count" field. It's identical to UseCountEQ.
func UseCount(v int) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldUseCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldContainsFold(FieldProjectID, v))
}

// URIEQ applies the EQ predicate on the "uri" field.
func URIEQ(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldURI, v))
}

// URINEQ applies the NEQ predicate on the "uri" field.
func URINEQ(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNEQ(FieldURI, v))
}

// URIIn applies the In predicate on the "uri" field.
func URIIn(vs ...string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldIn(FieldURI, vs...))
}

// URINotIn applies the NotIn predicate on the "uri" field.
func URINotIn(vs ...string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNotIn(FieldURI, vs...))
}

// URIGT applies the GT predicate on the "uri" field.
func URIGT(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGT(FieldURI, v))
}

// URIGTE applies the GTE predicate on the "uri" field.
func URIGTE(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGTE(FieldURI, v))
}

// URILT applies the LT predicate on the "uri" field.
func URILT(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLT(FieldURI, v))
}

// URILTE applies the LTE predicate on the "uri" field.
func URILTE(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLTE(FieldURI, v))
}

// URIContains applies the Contains predicate on the "uri" field.
func URIContains(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldContains(FieldURI, v))
}

// URIHasPrefix applies the HasPrefix predicate on the "uri" field.
func URIHasPrefix(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldHasPrefix(FieldURI, v))
}

// URIHasSuffix applies the HasSuffix predicate on the "uri" field.
func URIHasSuffix(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldHasSuffix(FieldURI, v))
}

// URIEqualFold applies the EqualFold predicate on the "uri" field.
func URIEqualFold(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEqualFold(FieldURI, v))
}

// URIContainsFold applies the ContainsFold predicate on the "uri" field.
func URIContainsFold(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldContainsFold(FieldURI, v))
}

// SeedEQ applies the EQ predicate on the "seed" field.
func SeedEQ(v int64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldSeed, v))
}

// SeedNEQ applies the NEQ predicate on the "seed" field.
func SeedNEQ(v int64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNEQ(FieldSeed, v))
}

// SeedIn applies the In predicate on the "seed" field.
func SeedIn(vs ...int64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldIn(FieldSeed, vs...))
}

// SeedNotIn applies the NotIn predicate on the "seed" field.
func SeedNotIn(vs ...int64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNotIn(FieldSeed, vs...))
}

// SeedGT applies the GT predicate on the "seed" field.
func SeedGT(v int64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGT(FieldSeed, v))
}

// SeedGTE applies the GTE predicate on the "seed" field.
func SeedGTE(v int64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGTE(FieldSeed, v))
}

// SeedLT applies the LT predicate on the "seed" field.
func SeedLT(v int64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLT(FieldSeed, v))
}

// SeedLTE applies the LTE predicate on the "seed" field.
func SeedLTE(v int64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLTE(FieldSeed, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldContainsFold(FieldModel, v))
}

// ModelVersionEQ applies the EQ predicate on the "model_version" field.
func ModelVersionEQ(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldModelVersion, v))
}

// ModelVersionNEQ applies the NEQ predicate on the "model_version" field.
func ModelVersionNEQ(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNEQ(FieldModelVersion, v))
}

// ModelVersionIn applies the In predicate on the "model_version" field.
func ModelVersionIn(vs ...string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldIn(FieldModelVersion, vs...))
}

// ModelVersionNotIn applies the NotIn predicate on the "model_version" field.
func ModelVersionNotIn(vs ...string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNotIn(FieldModelVersion, vs...))
}

// ModelVersionGT applies the GT predicate on the "model_version" field.
func ModelVersionGT(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGT(FieldModelVersion, v))
}

// ModelVersionGTE applies the GTE predicate on the "model_version" field.
func ModelVersionGTE(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGTE(FieldModelVersion, v))
}

// ModelVersionLT applies the LT predicate on the "model_version" field.
func ModelVersionLT(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLT(FieldModelVersion, v))
}

// ModelVersionLTE applies the LTE predicate on the "model_version" field.
func ModelVersionLTE(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLTE(FieldModelVersion, v))
}

// ModelVersionContains applies the Contains predicate on the "model_version" field.
func ModelVersionContains(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldContains(FieldModelVersion, v))
}

// ModelVersionHasPrefix applies the HasPrefix predicate on the "model_version" field.
func ModelVersionHasPrefix(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldHasPrefix(FieldModelVersion, v))
}

// ModelVersionHasSuffix applies the HasSuffix predicate on the "model_version" field.
func ModelVersionHasSuffix(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldHasSuffix(FieldModelVersion, v))
}

// ModelVersionEqualFold applies the EqualFold predicate on the "model_version" field.
func ModelVersionEqualFold(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEqualFold(FieldModelVersion, v))
}

// ModelVersionContainsFold applies the ContainsFold predicate on the "model_version" field.
func ModelVersionContainsFold(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldContainsFold(FieldModelVersion, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldContainsFold(FieldPrompt, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLTE(FieldCost, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldContainsFold(FieldCurrency, v))
}

// UseCountEQ applies the EQ predicate on the "use_count" field.
func UseCountEQ(v int) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldUseCount, v))
}

// UseCountNEQ applies the NEQ predicate on the "use_count" field.
func UseCountNEQ(v int) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNEQ(FieldUseCount, v))
}

// UseCountIn applies the In predicate on the "use_count" field.
func UseCountIn(vs ...int) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldIn(FieldUseCount, vs...))
}

// UseCountNotIn applies the NotIn predicate on the "use_count" field.
func UseCountNotIn(vs ...int) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNotIn(FieldUseCount, vs...))
}

// UseCountGT applies the GT predicate on the "use_count" field.
func UseCountGT(v int) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGT(FieldUseCount, v))
}

// UseCountGTE applies the GTE predicate on the "use_count" field.
func UseCountGTE(v int) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGTE(FieldUseCount, v))
}

// UseCountLT applies the LT predicate on the "use_count" field.
func UseCountLT(v int) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLT(FieldUseCount, v))
}

// UseCountLTE applies the LTE predicate on the "use_count" field.
func UseCountLTE(v int) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLTE(FieldUseCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ArtifactRecord) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ArtifactRecord) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ArtifactRecord) predicate.ArtifactRecord {
	return predicate.ArtifactRecord(sql.NotPredicates(p))
}
