// Code generated by ent, DO NOT EDIT.

package workflow

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chainforge-ai/chainforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldID, id))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldOwner, v))
}

// NlpDescription applies equality check predicate on the "nlp_description" field. It's identical to NlpDescriptionEQ.
func NlpDescription(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldNlpDescription, v))
}

// ContractType applies equality check predicate on the "contract_type" field. It's identical to ContractTypeEQ.
func ContractType(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldContractType, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldProgress, v))
}

// Network applies equality check predicate on the "network" field. It's identical to NetworkEQ.
func Network(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldNetwork, v))
}

// MetisvmEnabled applies equality check predicate on the "metisvm_enabled" field. It's identical to MetisvmEnabledEQ.
func MetisvmEnabled(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldMetisvmEnabled, v))
}

// FloatingPointEnabled applies equality check predicate on the "floating_point_enabled" field. It's identical to FloatingPointEnabledEQ.
func FloatingPointEnabled(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldFloatingPointEnabled, v))
}

// AiInferenceEnabled applies equality check predicate on the "ai_inference_enabled" field. It's identical to AiInferenceEnabledEQ.
func AiInferenceEnabled(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldAiInferenceEnabled, v))
}

// EigendaEnabled applies equality check predicate on the "eigenda_enabled" field. It's identical to EigendaEnabledEQ.
func EigendaEnabled(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldEigendaEnabled, v))
}

// PefBatchEnabled applies equality check predicate on the "pef_batch_enabled" field. It's identical to PefBatchEnabledEQ.
func PefBatchEnabled(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldPefBatchEnabled, v))
}

// AuditLevel applies equality check predicate on the "audit_level" field. It's identical to AuditLevelEQ.
func AuditLevel(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldAuditLevel, v))
}

// SkipAudit applies equality check predicate on the "skip_audit" field. It's identical to SkipAuditEQ.
func SkipAudit(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldSkipAudit, v))
}

// SkipTesting applies equality check predicate on the "skip_testing" field. It's identical to SkipTestingEQ.
func SkipTesting(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldSkipTesting, v))
}

// GasLimit applies equality check predicate on the "gas_limit" field. It's identical to GasLimitEQ.
func GasLimit(v uint64) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldGasLimit, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldErrorMessage, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCancelRequested, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldPodID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCompletedAt, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldLastInteractionAt, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerIsNil applies the IsNil predicate on the "owner" field.
func OwnerIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldOwner))
}

// OwnerNotNil applies the NotNil predicate on the "owner" field.
func OwnerNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldOwner))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldOwner, v))
}

// NlpDescriptionEQ applies the EQ predicate on the "nlp_description" field.
func NlpDescriptionEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldNlpDescription, v))
}

// NlpDescriptionNEQ applies the NEQ predicate on the "nlp_description" field.
func NlpDescriptionNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldNlpDescription, v))
}

// NlpDescriptionIn applies the In predicate on the "nlp_description" field.
func NlpDescriptionIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldNlpDescription, vs...))
}

// NlpDescriptionNotIn applies the NotIn predicate on the "nlp_description" field.
func NlpDescriptionNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldNlpDescription, vs...))
}

// NlpDescriptionGT applies the GT predicate on the "nlp_description" field.
func NlpDescriptionGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldNlpDescription, v))
}

// NlpDescriptionGTE applies the GTE predicate on the "nlp_description" field.
func NlpDescriptionGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldNlpDescription, v))
}

// NlpDescriptionLT applies the LT predicate on the "nlp_description" field.
func NlpDescriptionLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldNlpDescription, v))
}

// NlpDescriptionLTE applies the LTE predicate on the "nlp_description" field.
func NlpDescriptionLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldNlpDescription, v))
}

// NlpDescriptionContains applies the Contains predicate on the "nlp_description" field.
func NlpDescriptionContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldNlpDescription, v))
}

// NlpDescriptionHasPrefix applies the HasPrefix predicate on the "nlp_description" field.
func NlpDescriptionHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldNlpDescription, v))
}

// NlpDescriptionHasSuffix applies the HasSuffix predicate on the "nlp_description" field.
func NlpDescriptionHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldNlpDescription, v))
}

// NlpDescriptionEqualFold applies the EqualFold predicate on the "nlp_description" field.
func NlpDescriptionEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldNlpDescription, v))
}

// NlpDescriptionContainsFold applies the ContainsFold predicate on the "nlp_description" field.
func NlpDescriptionContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldNlpDescription, v))
}

// ContractTypeEQ applies the EQ predicate on the "contract_type" field.
func ContractTypeEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldContractType, v))
}

// ContractTypeNEQ applies the NEQ predicate on the "contract_type" field.
func ContractTypeNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldContractType, v))
}

// ContractTypeIn applies the In predicate on the "contract_type" field.
func ContractTypeIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldContractType, vs...))
}

// ContractTypeNotIn applies the NotIn predicate on the "contract_type" field.
func ContractTypeNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldContractType, vs...))
}

// ContractTypeGT applies the GT predicate on the "contract_type" field.
func ContractTypeGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldContractType, v))
}

// ContractTypeGTE applies the GTE predicate on the "contract_type" field.
func ContractTypeGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldContractType, v))
}

// ContractTypeLT applies the LT predicate on the "contract_type" field.
func ContractTypeLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldContractType, v))
}

// ContractTypeLTE applies the LTE predicate on the "contract_type" field.
func ContractTypeLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldContractType, v))
}

// ContractTypeContains applies the Contains predicate on the "contract_type" field.
func ContractTypeContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldContractType, v))
}

// ContractTypeHasPrefix applies the HasPrefix predicate on the "contract_type" field.
func ContractTypeHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldContractType, v))
}

// ContractTypeHasSuffix applies the HasSuffix predicate on the "contract_type" field.
func ContractTypeHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldContractType, v))
}

// ContractTypeEqualFold applies the EqualFold predicate on the "contract_type" field.
func ContractTypeEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldContractType, v))
}

// ContractTypeContainsFold applies the ContainsFold predicate on the "contract_type" field.
func ContractTypeContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldContractType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldStatus, vs...))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldProgress, v))
}

// NetworkEQ applies the EQ predicate on the "network" field.
func NetworkEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldNetwork, v))
}

// NetworkNEQ applies the NEQ predicate on the "network" field.
func NetworkNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldNetwork, v))
}

// NetworkIn applies the In predicate on the "network" field.
func NetworkIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldNetwork, vs...))
}

// NetworkNotIn applies the NotIn predicate on the "network" field.
func NetworkNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldNetwork, vs...))
}

// NetworkGT applies the GT predicate on the "network" field.
func NetworkGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldNetwork, v))
}

// NetworkGTE applies the GTE predicate on the "network" field.
func NetworkGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldNetwork, v))
}

// NetworkLT applies the LT predicate on the "network" field.
func NetworkLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldNetwork, v))
}

// NetworkLTE applies the LTE predicate on the "network" field.
func NetworkLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldNetwork, v))
}

// NetworkContains applies the Contains predicate on the "network" field.
func NetworkContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldNetwork, v))
}

// NetworkHasPrefix applies the HasPrefix predicate on the "network" field.
func NetworkHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldNetwork, v))
}

// NetworkHasSuffix applies the HasSuffix predicate on the "network" field.
func NetworkHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldNetwork, v))
}

// NetworkEqualFold applies the EqualFold predicate on the "network" field.
func NetworkEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldNetwork, v))
}

// NetworkContainsFold applies the ContainsFold predicate on the "network" field.
func NetworkContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldNetwork, v))
}

// MetisvmEnabledEQ applies the EQ predicate on the "metisvm_enabled" field.
func MetisvmEnabledEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldMetisvmEnabled, v))
}

// MetisvmEnabledNEQ applies the NEQ predicate on the "metisvm_enabled" field.
func MetisvmEnabledNEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldMetisvmEnabled, v))
}

// FloatingPointEnabledEQ applies the EQ predicate on the "floating_point_enabled" field.
func FloatingPointEnabledEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldFloatingPointEnabled, v))
}

// FloatingPointEnabledNEQ applies the NEQ predicate on the "floating_point_enabled" field.
func FloatingPointEnabledNEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldFloatingPointEnabled, v))
}

// AiInferenceEnabledEQ applies the EQ predicate on the "ai_inference_enabled" field.
func AiInferenceEnabledEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldAiInferenceEnabled, v))
}

// AiInferenceEnabledNEQ applies the NEQ predicate on the "ai_inference_enabled" field.
func AiInferenceEnabledNEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldAiInferenceEnabled, v))
}

// EigendaEnabledEQ applies the EQ predicate on the "eigenda_enabled" field.
func EigendaEnabledEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldEigendaEnabled, v))
}

// EigendaEnabledNEQ applies the NEQ predicate on the "eigenda_enabled" field.
func EigendaEnabledNEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldEigendaEnabled, v))
}

// PefBatchEnabledEQ applies the EQ predicate on the "pef_batch_enabled" field.
func PefBatchEnabledEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldPefBatchEnabled, v))
}

// PefBatchEnabledNEQ applies the NEQ predicate on the "pef_batch_enabled" field.
func PefBatchEnabledNEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldPefBatchEnabled, v))
}

// AuditLevelEQ applies the EQ predicate on the "audit_level" field.
func AuditLevelEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldAuditLevel, v))
}

// AuditLevelNEQ applies the NEQ predicate on the "audit_level" field.
func AuditLevelNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldAuditLevel, v))
}

// AuditLevelIn applies the In predicate on the "audit_level" field.
func AuditLevelIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldAuditLevel, vs...))
}

// AuditLevelNotIn applies the NotIn predicate on the "audit_level" field.
func AuditLevelNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldAuditLevel, vs...))
}

// AuditLevelGT applies the GT predicate on the "audit_level" field.
func AuditLevelGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldAuditLevel, v))
}

// AuditLevelGTE applies the GTE predicate on the "audit_level" field.
func AuditLevelGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldAuditLevel, v))
}

// AuditLevelLT applies the LT predicate on the "audit_level" field.
func AuditLevelLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldAuditLevel, v))
}

// AuditLevelLTE applies the LTE predicate on the "audit_level" field.
func AuditLevelLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldAuditLevel, v))
}

// AuditLevelContains applies the Contains predicate on the "audit_level" field.
func AuditLevelContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldAuditLevel, v))
}

// AuditLevelHasPrefix applies the HasPrefix predicate on the "audit_level" field.
func AuditLevelHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldAuditLevel, v))
}

// AuditLevelHasSuffix applies the HasSuffix predicate on the "audit_level" field.
func AuditLevelHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldAuditLevel, v))
}

// AuditLevelEqualFold applies the EqualFold predicate on the "audit_level" field.
func AuditLevelEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldAuditLevel, v))
}

// AuditLevelContainsFold applies the ContainsFold predicate on the "audit_level" field.
func AuditLevelContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldAuditLevel, v))
}

// SkipAuditEQ applies the EQ predicate on the "skip_audit" field.
func SkipAuditEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldSkipAudit, v))
}

// SkipAuditNEQ applies the NEQ predicate on the "skip_audit" field.
func SkipAuditNEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldSkipAudit, v))
}

// SkipTestingEQ applies the EQ predicate on the "skip_testing" field.
func SkipTestingEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldSkipTesting, v))
}

// SkipTestingNEQ applies the NEQ predicate on the "skip_testing" field.
func SkipTestingNEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldSkipTesting, v))
}

// GasLimitEQ applies the EQ predicate on the "gas_limit" field.
func GasLimitEQ(v uint64) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldGasLimit, v))
}

// GasLimitNEQ applies the NEQ predicate on the "gas_limit" field.
func GasLimitNEQ(v uint64) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldGasLimit, v))
}

// GasLimitIn applies the In predicate on the "gas_limit" field.
func GasLimitIn(vs ...uint64) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldGasLimit, vs...))
}

// GasLimitNotIn applies the NotIn predicate on the "gas_limit" field.
func GasLimitNotIn(vs ...uint64) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldGasLimit, vs...))
}

// GasLimitGT applies the GT predicate on the "gas_limit" field.
func GasLimitGT(v uint64) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldGasLimit, v))
}

// GasLimitGTE applies the GTE predicate on the "gas_limit" field.
func GasLimitGTE(v uint64) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldGasLimit, v))
}

// GasLimitLT applies the LT predicate on the "gas_limit" field.
func GasLimitLT(v uint64) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldGasLimit, v))
}

// GasLimitLTE applies the LTE predicate on the "gas_limit" field.
func GasLimitLTE(v uint64) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldGasLimit, v))
}

// WarningsIsNil applies the IsNil predicate on the "warnings" field.
func WarningsIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldWarnings))
}

// WarningsNotNil applies the NotNil predicate on the "warnings" field.
func WarningsNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldWarnings))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldCancelRequested, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldPodID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldCompletedAt))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldLastInteractionAt))
}

// HasContracts applies the HasEdge predicate on the "contracts" edge.
func HasContracts() predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ContractsTable, ContractsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractsWith applies the HasEdge predicate on the "contracts" edge with a given conditions (other predicates).
func HasContractsWith(preds ...predicate.Contract) predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := newContractsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.NotPredicates(p))
}
