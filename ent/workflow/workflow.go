// Code generated by ent, DO NOT EDIT.

package workflow

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflow type in the database.
	Label = "workflow"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "workflow_id"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldNlpDescription holds the string denoting the nlp_description field in the database.
	FieldNlpDescription = "nlp_description"
	// FieldContractType holds the string denoting the contract_type field in the database.
	FieldContractType = "contract_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldNetwork holds the string denoting the network field in the database.
	FieldNetwork = "network"
	// FieldMetisvmEnabled holds the string denoting the metisvm_enabled field in the database.
	FieldMetisvmEnabled = "metisvm_enabled"
	// FieldFloatingPointEnabled holds the string denoting the floating_point_enabled field in the database.
	FieldFloatingPointEnabled = "floating_point_enabled"
	// FieldAiInferenceEnabled holds the string denoting the ai_inference_enabled field in the database.
	FieldAiInferenceEnabled = "ai_inference_enabled"
	// FieldEigendaEnabled holds the string denoting the eigenda_enabled field in the database.
	FieldEigendaEnabled = "eigenda_enabled"
	// FieldPefBatchEnabled holds the string denoting the pef_batch_enabled field in the database.
	FieldPefBatchEnabled = "pef_batch_enabled"
	// FieldAuditLevel holds the string denoting the audit_level field in the database.
	FieldAuditLevel = "audit_level"
	// FieldSkipAudit holds the string denoting the skip_audit field in the database.
	FieldSkipAudit = "skip_audit"
	// FieldSkipTesting holds the string denoting the skip_testing field in the database.
	FieldSkipTesting = "skip_testing"
	// FieldGasLimit holds the string denoting the gas_limit field in the database.
	FieldGasLimit = "gas_limit"
	// FieldWarnings holds the string denoting the warnings field in the database.
	FieldWarnings = "warnings"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// EdgeContracts holds the string denoting the contracts edge name in mutations.
	EdgeContracts = "contracts"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// ContractFieldID holds the string denoting the ID field of the Contract.
	ContractFieldID = "contract_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "id"
	// Table holds the table name of the workflow in the database.
	Table = "workflows"
	// ContractsTable is the table that holds the contracts relation/edge.
	ContractsTable = "contracts"
	// ContractsInverseTable is the table name for the Contract entity.
	// It exists in this package in order to avoid circular dependency with the "contract" package.
	ContractsInverseTable = "contracts"
	// ContractsColumn is the table column denoting the contracts relation/edge.
	ContractsColumn = "workflow_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "workflow_id"
)

// Columns holds all SQL columns for workflow fields.
var Columns = []string{
	FieldID,
	FieldOwner,
	FieldNlpDescription,
	FieldContractType,
	FieldStatus,
	FieldProgress,
	FieldNetwork,
	FieldMetisvmEnabled,
	FieldFloatingPointEnabled,
	FieldAiInferenceEnabled,
	FieldEigendaEnabled,
	FieldPefBatchEnabled,
	FieldAuditLevel,
	FieldSkipAudit,
	FieldSkipTesting,
	FieldGasLimit,
	FieldWarnings,
	FieldErrorMessage,
	FieldCancelRequested,
	FieldPodID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastInteractionAt,
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
	// DefaultContractType holds the default value on creation for the "contract_type" field.
	DefaultContractType string
	// DefaultProgress holds the default value on creation for the "progress" field.
	DefaultProgress int
	// DefaultMetisvmEnabled holds the default value on creation for the "metisvm_enabled" field.
	DefaultMetisvmEnabled bool
	// DefaultFloatingPointEnabled holds the default value on creation for the "floating_point_enabled" field.
	DefaultFloatingPointEnabled bool
	// DefaultAiInferenceEnabled holds the default value on creation for the "ai_inference_enabled" field.
	DefaultAiInferenceEnabled bool
	// DefaultEigendaEnabled holds the default value on creation for the "eigenda_enabled" field.
	DefaultEigendaEnabled bool
	// DefaultPefBatchEnabled holds the default value on creation for the "pef_batch_enabled" field.
	DefaultPefBatchEnabled bool
	// DefaultAuditLevel holds the default value on creation for the "audit_level" field.
	DefaultAuditLevel string
	// DefaultSkipAudit holds the default value on creation for the "skip_audit" field.
	DefaultSkipAudit bool
	// DefaultSkipTesting holds the default value on creation for the "skip_testing" field.
	DefaultSkipTesting bool
	// DefaultGasLimit holds the default value on creation for the "gas_limit" field.
	DefaultGasLimit uint64
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusCreated is the default value of the Status enum.
const DefaultStatus = StatusCreated

// Status values.
const (
	StatusCreated    Status = "created"
	StatusGenerating Status = "generating"
	StatusCompiling  Status = "compiling"
	StatusAuditing   Status = "auditing"
	StatusTesting    Status = "testing"
	StatusDeploying  Status = "deploying"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCreated, StatusGenerating, StatusCompiling, StatusAuditing, StatusTesting, StatusDeploying, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("workflow: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Workflow queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
}

// ByNlpDescription orders the results by the nlp_description field.
func ByNlpDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNlpDescription, opts...).ToFunc()
}

// ByContractType orders the results by the contract_type field.
func ByContractType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByNetwork orders the results by the network field.
func ByNetwork(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetwork, opts...).ToFunc()
}

// ByMetisvmEnabled orders the results by the metisvm_enabled field.
func ByMetisvmEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetisvmEnabled, opts...).ToFunc()
}

// ByFloatingPointEnabled orders the results by the floating_point_enabled field.
func ByFloatingPointEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFloatingPointEnabled, opts...).ToFunc()
}

// ByAiInferenceEnabled orders the results by the ai_inference_enabled field.
func ByAiInferenceEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiInferenceEnabled, opts...).ToFunc()
}

// ByEigendaEnabled orders the results by the eigenda_enabled field.
func ByEigendaEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEigendaEnabled, opts...).ToFunc()
}

// ByPefBatchEnabled orders the results by the pef_batch_enabled field.
func ByPefBatchEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPefBatchEnabled, opts...).ToFunc()
}

// ByAuditLevel orders the results by the audit_level field.
func ByAuditLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditLevel, opts...).ToFunc()
}

// BySkipAudit orders the results by the skip_audit field.
func BySkipAudit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipAudit, opts...).ToFunc()
}

// BySkipTesting orders the results by the skip_testing field.
func BySkipTesting(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipTesting, opts...).ToFunc()
}

// ByGasLimit orders the results by the gas_limit field.
func ByGasLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGasLimit, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByContractsCount orders the results by contracts count.
func ByContractsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newContractsStep(), opts...)
	}
}

// ByContracts orders the results by contracts terms.
func ByContracts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContractsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newContractsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContractsInverseTable, ContractFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ContractsTable, ContractsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
