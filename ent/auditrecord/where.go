// Code generated by ent, DO NOT EDIT.

package auditrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chainforge-ai/chainforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContainsFold(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldContractID, v))
}

// AuditLevel applies equality check predicate on the "audit_level" field. It's identical to AuditLevelEQ.
func AuditLevel(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldAuditLevel, v))
}

// CriticalCount applies equality check predicate on the "critical_count" field. It's identical to CriticalCountEQ.
func CriticalCount(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldCriticalCount, v))
}

// HighCount applies equality check predicate on the "high_count" field. It's identical to HighCountEQ.
func HighCount(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldHighCount, v))
}

// MediumCount applies equality check predicate on the "medium_count" field. It's identical to MediumCountEQ.
func MediumCount(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldMediumCount, v))
}

// LowCount applies equality check predicate on the "low_count" field. It's identical to LowCountEQ.
func LowCount(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldLowCount, v))
}

// InfoCount applies equality check predicate on the "info_count" field. It's identical to InfoCountEQ.
func InfoCount(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldInfoCount, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldRiskScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldContractID, vs...))
}

// ContractIDGT applies the GT predicate on the "contract_id" field.
func ContractIDGT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldContractID, v))
}

// ContractIDGTE applies the GTE predicate on the "contract_id" field.
func ContractIDGTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldContractID, v))
}

// ContractIDLT applies the LT predicate on the "contract_id" field.
func ContractIDLT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldContractID, v))
}

// ContractIDLTE applies the LTE predicate on the "contract_id" field.
func ContractIDLTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldContractID, v))
}

// ContractIDContains applies the Contains predicate on the "contract_id" field.
func ContractIDContains(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContains(FieldContractID, v))
}

// ContractIDHasPrefix applies the HasPrefix predicate on the "contract_id" field.
func ContractIDHasPrefix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasPrefix(FieldContractID, v))
}

// ContractIDHasSuffix applies the HasSuffix predicate on the "contract_id" field.
func ContractIDHasSuffix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasSuffix(FieldContractID, v))
}

// ContractIDEqualFold applies the EqualFold predicate on the "contract_id" field.
func ContractIDEqualFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEqualFold(FieldContractID, v))
}

// ContractIDContainsFold applies the ContainsFold predicate on the "contract_id" field.
func ContractIDContainsFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContainsFold(FieldContractID, v))
}

// AuditLevelEQ applies the EQ predicate on the "audit_level" field.
func AuditLevelEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldAuditLevel, v))
}

// AuditLevelNEQ applies the NEQ predicate on the "audit_level" field.
func AuditLevelNEQ(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldAuditLevel, v))
}

// AuditLevelIn applies the In predicate on the "audit_level" field.
func AuditLevelIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldAuditLevel, vs...))
}

// AuditLevelNotIn applies the NotIn predicate on the "audit_level" field.
func AuditLevelNotIn(vs ...string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldAuditLevel, vs...))
}

// AuditLevelGT applies the GT predicate on the "audit_level" field.
func AuditLevelGT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldAuditLevel, v))
}

// AuditLevelGTE applies the GTE predicate on the "audit_level" field.
func AuditLevelGTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldAuditLevel, v))
}

// AuditLevelLT applies the LT predicate on the "audit_level" field.
func AuditLevelLT(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldAuditLevel, v))
}

// AuditLevelLTE applies the LTE predicate on the "audit_level" field.
func AuditLevelLTE(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldAuditLevel, v))
}

// AuditLevelContains applies the Contains predicate on the "audit_level" field.
func AuditLevelContains(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContains(FieldAuditLevel, v))
}

// AuditLevelHasPrefix applies the HasPrefix predicate on the "audit_level" field.
func AuditLevelHasPrefix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasPrefix(FieldAuditLevel, v))
}

// AuditLevelHasSuffix applies the HasSuffix predicate on the "audit_level" field.
func AuditLevelHasSuffix(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldHasSuffix(FieldAuditLevel, v))
}

// AuditLevelEqualFold applies the EqualFold predicate on the "audit_level" field.
func AuditLevelEqualFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEqualFold(FieldAuditLevel, v))
}

// AuditLevelContainsFold applies the ContainsFold predicate on the "audit_level" field.
func AuditLevelContainsFold(v string) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldContainsFold(FieldAuditLevel, v))
}

// FindingsIsNil applies the IsNil predicate on the "findings" field.
func FindingsIsNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIsNull(FieldFindings))
}

// FindingsNotNil applies the NotNil predicate on the "findings" field.
func FindingsNotNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotNull(FieldFindings))
}

// CriticalCountEQ applies the EQ predicate on the "critical_count" field.
func CriticalCountEQ(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldCriticalCount, v))
}

// CriticalCountNEQ applies the NEQ predicate on the "critical_count" field.
func CriticalCountNEQ(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldCriticalCount, v))
}

// CriticalCountIn applies the In predicate on the "critical_count" field.
func CriticalCountIn(vs ...int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldCriticalCount, vs...))
}

// CriticalCountNotIn applies the NotIn predicate on the "critical_count" field.
func CriticalCountNotIn(vs ...int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldCriticalCount, vs...))
}

// CriticalCountGT applies the GT predicate on the "critical_count" field.
func CriticalCountGT(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldCriticalCount, v))
}

// CriticalCountGTE applies the GTE predicate on the "critical_count" field.
func CriticalCountGTE(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldCriticalCount, v))
}

// CriticalCountLT applies the LT predicate on the "critical_count" field.
func CriticalCountLT(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldCriticalCount, v))
}

// CriticalCountLTE applies the LTE predicate on the "critical_count" field.
func CriticalCountLTE(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldCriticalCount, v))
}

// HighCountEQ applies the EQ predicate on the "high_count" field.
func HighCountEQ(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldHighCount, v))
}

// HighCountNEQ applies the NEQ predicate on the "high_count" field.
func HighCountNEQ(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldHighCount, v))
}

// HighCountIn applies the In predicate on the "high_count" field.
func HighCountIn(vs ...int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldHighCount, vs...))
}

// HighCountNotIn applies the NotIn predicate on the "high_count" field.
func HighCountNotIn(vs ...int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldHighCount, vs...))
}

// HighCountGT applies the GT predicate on the "high_count" field.
func HighCountGT(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldHighCount, v))
}

// HighCountGTE applies the GTE predicate on the "high_count" field.
func HighCountGTE(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldHighCount, v))
}

// HighCountLT applies the LT predicate on the "high_count" field.
func HighCountLT(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldHighCount, v))
}

// HighCountLTE applies the LTE predicate on the "high_count" field.
func HighCountLTE(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldHighCount, v))
}

// MediumCountEQ applies the EQ predicate on the "medium_count" field.
func MediumCountEQ(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldMediumCount, v))
}

// MediumCountNEQ applies the NEQ predicate on the "medium_count" field.
func MediumCountNEQ(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldMediumCount, v))
}

// MediumCountIn applies the In predicate on the "medium_count" field.
func MediumCountIn(vs ...int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldMediumCount, vs...))
}

// MediumCountNotIn applies the NotIn predicate on the "medium_count" field.
func MediumCountNotIn(vs ...int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldMediumCount, vs...))
}

// MediumCountGT applies the GT predicate on the "medium_count" field.
func MediumCountGT(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldMediumCount, v))
}

// MediumCountGTE applies the GTE predicate on the "medium_count" field.
func MediumCountGTE(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldMediumCount, v))
}

// MediumCountLT applies the LT predicate on the "medium_count" field.
func MediumCountLT(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldMediumCount, v))
}

// MediumCountLTE applies the LTE predicate on the "medium_count" field.
func MediumCountLTE(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldMediumCount, v))
}

// LowCountEQ applies the EQ predicate on the "low_count" field.
func LowCountEQ(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldLowCount, v))
}

// LowCountNEQ applies the NEQ predicate on the "low_count" field.
func LowCountNEQ(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldLowCount, v))
}

// LowCountIn applies the In predicate on the "low_count" field.
func LowCountIn(vs ...int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldLowCount, vs...))
}

// LowCountNotIn applies the NotIn predicate on the "low_count" field.
func LowCountNotIn(vs ...int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldLowCount, vs...))
}

// LowCountGT applies the GT predicate on the "low_count" field.
func LowCountGT(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldLowCount, v))
}

// LowCountGTE applies the GTE predicate on the "low_count" field.
func LowCountGTE(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldLowCount, v))
}

// LowCountLT applies the LT predicate on the "low_count" field.
func LowCountLT(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldLowCount, v))
}

// LowCountLTE applies the LTE predicate on the "low_count" field.
func LowCountLTE(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldLowCount, v))
}

// InfoCountEQ applies the EQ predicate on the "info_count" field.
func InfoCountEQ(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldInfoCount, v))
}

// InfoCountNEQ applies the NEQ predicate on the "info_count" field.
func InfoCountNEQ(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldInfoCount, v))
}

// InfoCountIn applies the In predicate on the "info_count" field.
func InfoCountIn(vs ...int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldInfoCount, vs...))
}

// InfoCountNotIn applies the NotIn predicate on the "info_count" field.
func InfoCountNotIn(vs ...int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldInfoCount, vs...))
}

// InfoCountGT applies the GT predicate on the "info_count" field.
func InfoCountGT(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldInfoCount, v))
}

// InfoCountGTE applies the GTE predicate on the "info_count" field.
func InfoCountGTE(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldInfoCount, v))
}

// InfoCountLT applies the LT predicate on the "info_count" field.
func InfoCountLT(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldInfoCount, v))
}

// InfoCountLTE applies the LTE predicate on the "info_count" field.
func InfoCountLTE(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldInfoCount, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v int) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldRiskScore, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// ToolsRunIsNil applies the IsNil predicate on the "tools_run" field.
func ToolsRunIsNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIsNull(FieldToolsRun))
}

// ToolsRunNotNil applies the NotNil predicate on the "tools_run" field.
func ToolsRunNotNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotNull(FieldToolsRun))
}

// ToolErrorsIsNil applies the IsNil predicate on the "tool_errors" field.
func ToolErrorsIsNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIsNull(FieldToolErrors))
}

// ToolErrorsNotNil applies the NotNil predicate on the "tool_errors" field.
func ToolErrorsNotNil() predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotNull(FieldToolErrors))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AuditRecord {
	return predicate.AuditRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.AuditRecord {
	return predicate.AuditRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.AuditRecord {
	return predicate.AuditRecord(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditRecord) predicate.AuditRecord {
	return predicate.AuditRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditRecord) predicate.AuditRecord {
	return predicate.AuditRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditRecord) predicate.AuditRecord {
	return predicate.AuditRecord(sql.NotPredicates(p))
}
