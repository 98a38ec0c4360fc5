// Code generated by ent, DO NOT EDIT.

package auditrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the auditrecord type in the database.
	Label = "audit_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "audit_id"
	// FieldContractID holds the string denoting the contract_id field in the database.
	FieldContractID = "contract_id"
	// FieldAuditLevel holds the string denoting the audit_level field in the database.
	FieldAuditLevel = "audit_level"
	// FieldFindings holds the string denoting the findings field in the database.
	FieldFindings = "findings"
	// FieldCriticalCount holds the string denoting the critical_count field in the database.
	FieldCriticalCount = "critical_count"
	// FieldHighCount holds the string denoting the high_count field in the database.
	FieldHighCount = "high_count"
	// FieldMediumCount holds the string denoting the medium_count field in the database.
	FieldMediumCount = "medium_count"
	// FieldLowCount holds the string denoting the low_count field in the database.
	FieldLowCount = "low_count"
	// FieldInfoCount holds the string denoting the info_count field in the database.
	FieldInfoCount = "info_count"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldToolsRun holds the string denoting the tools_run field in the database.
	FieldToolsRun = "tools_run"
	// FieldToolErrors holds the string denoting the tool_errors field in the database.
	FieldToolErrors = "tool_errors"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeContract holds the string denoting the contract edge name in mutations.
	EdgeContract = "contract"
	// ContractFieldID holds the string denoting the ID field of the Contract.
	ContractFieldID = "contract_id"
	// Table holds the table name of the auditrecord in the database.
	Table = "audit_records"
	// ContractTable is the table that holds the contract relation/edge.
	ContractTable = "audit_records"
	// ContractInverseTable is the table name for the Contract entity.
	// It exists in this package in order to avoid circular dependency with the "contract" package.
	ContractInverseTable = "contracts"
	// ContractColumn is the table column denoting the contract relation/edge.
	ContractColumn = "contract_id"
)

// Columns holds all SQL columns for auditrecord fields.
var Columns = []string{
	FieldID,
	FieldContractID,
	FieldAuditLevel,
	FieldFindings,
	FieldCriticalCount,
	FieldHighCount,
	FieldMediumCount,
	FieldLowCount,
	FieldInfoCount,
	FieldRiskScore,
	FieldStatus,
	FieldToolsRun,
	FieldToolErrors,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAuditLevel holds the default value on creation for the "audit_level" field.
	DefaultAuditLevel string
	// DefaultCriticalCount holds the default value on creation for the "critical_count" field.
	DefaultCriticalCount int
	// DefaultHighCount holds the default value on creation for the "high_count" field.
	DefaultHighCount int
	// DefaultMediumCount holds the default value on creation for the "medium_count" field.
	DefaultMediumCount int
	// DefaultLowCount holds the default value on creation for the "low_count" field.
	DefaultLowCount int
	// DefaultInfoCount holds the default value on creation for the "info_count" field.
	DefaultInfoCount int
	// DefaultRiskScore holds the default value on creation for the "risk_score" field.
	DefaultRiskScore int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusPassed  Status = "passed"
	StatusWarning Status = "warning"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPassed, StatusWarning, StatusFailed:
		return nil
	default:
		return fmt.Errorf("auditrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AuditRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContractID orders the results by the contract_id field.
func ByContractID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractID, opts...).ToFunc()
}

// ByAuditLevel orders the results by the audit_level field.
func ByAuditLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditLevel, opts...).ToFunc()
}

// ByCriticalCount orders the results by the critical_count field.
func ByCriticalCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriticalCount, opts...).ToFunc()
}

// ByHighCount orders the results by the high_count field.
func ByHighCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHighCount, opts...).ToFunc()
}

// ByMediumCount orders the results by the medium_count field.
func ByMediumCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediumCount, opts...).ToFunc()
}

// ByLowCount orders the results by the low_count field.
func ByLowCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLowCount, opts...).ToFunc()
}

// ByInfoCount orders the results by the info_count field.
func ByInfoCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInfoCount, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByContractField orders the results by contract field.
func ByContractField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContractStep(), sql.OrderByField(field, opts...))
	}
}
func newContractStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContractInverseTable, ContractFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
	)
}
