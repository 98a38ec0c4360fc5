// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chainforge-ai/chainforge/ent/workflow"
)

// Workflow is the model entity for the Workflow schema.
type Workflow struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Requesting user reference, if any
	Owner *string `json:"owner,omitempty"`
	// Original natural-language contract description
	NlpDescription string `json:"nlp_description,omitempty"`
	// ContractType holds the value of the "contract_type" field.
	ContractType string `json:"contract_type,omitempty"`
	// Status holds the value of the "status" field.
	Status workflow.Status `json:"status,omitempty"`
	// 0–100; monotonically non-decreasing until terminal
	Progress int `json:"progress,omitempty"`
	// Target network id (e.g., 'hyperion_testnet')
	Network string `json:"network,omitempty"`
	// MetisvmEnabled holds the value of the "metisvm_enabled" field.
	MetisvmEnabled bool `json:"metisvm_enabled,omitempty"`
	// FloatingPointEnabled holds the value of the "floating_point_enabled" field.
	FloatingPointEnabled bool `json:"floating_point_enabled,omitempty"`
	// AiInferenceEnabled holds the value of the "ai_inference_enabled" field.
	AiInferenceEnabled bool `json:"ai_inference_enabled,omitempty"`
	// EigendaEnabled holds the value of the "eigenda_enabled" field.
	EigendaEnabled bool `json:"eigenda_enabled,omitempty"`
	// PefBatchEnabled holds the value of the "pef_batch_enabled" field.
	PefBatchEnabled bool `json:"pef_batch_enabled,omitempty"`
	// AuditLevel holds the value of the "audit_level" field.
	AuditLevel string `json:"audit_level,omitempty"`
	// SkipAudit holds the value of the "skip_audit" field.
	SkipAudit bool `json:"skip_audit,omitempty"`
	// SkipTesting holds the value of the "skip_testing" field.
	SkipTesting bool `json:"skip_testing,omitempty"`
	// 0 means estimate at deploy time
	GasLimit uint64 `json:"gas_limit,omitempty"`
	// Feature-validation warnings shown to the user
	Warnings []string `json:"warnings,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Checked by the orchestrator at stage boundaries
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// For multi-replica claim coordination
	PodID *string `json:"pod_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// When a worker claimed the workflow
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Heartbeat for orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowQuery when eager-loading is set.
	Edges        WorkflowEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowEdges holds the relations/edges for other nodes in the graph.
type WorkflowEdges struct {
	// Contracts holds the value of the contracts edge.
	Contracts []*Contract `json:"contracts,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ContractsOrErr returns the Contracts value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) ContractsOrErr() ([]*Contract, error) {
	if e.loadedTypes[0] {
		return e.Contracts, nil
	}
	return nil, &NotLoadedError{edge: "contracts"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Workflow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflow.FieldWarnings:
			values[i] = new([]byte)
		case workflow.FieldMetisvmEnabled, workflow.FieldFloatingPointEnabled, workflow.FieldAiInferenceEnabled, workflow.FieldEigendaEnabled, workflow.FieldPefBatchEnabled, workflow.FieldSkipAudit, workflow.FieldSkipTesting, workflow.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case workflow.FieldProgress, workflow.FieldGasLimit:
			values[i] = new(sql.NullInt64)
		case workflow.FieldID, workflow.FieldOwner, workflow.FieldNlpDescription, workflow.FieldContractType, workflow.FieldStatus, workflow.FieldNetwork, workflow.FieldAuditLevel, workflow.FieldErrorMessage, workflow.FieldPodID:
			values[i] = new(sql.NullString)
		case workflow.FieldCreatedAt, workflow.FieldUpdatedAt, workflow.FieldStartedAt, workflow.FieldCompletedAt, workflow.FieldLastInteractionAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Workflow fields.
func (_m *Workflow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflow.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflow.FieldOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner", values[i])
			} else if value.Valid {
				_m.Owner = new(string)
				*_m.Owner = value.String
			}
		case workflow.FieldNlpDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nlp_description", values[i])
			} else if value.Valid {
				_m.NlpDescription = value.String
			}
		case workflow.FieldContractType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_type", values[i])
			} else if value.Valid {
				_m.ContractType = value.String
			}
		case workflow.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workflow.Status(value.String)
			}
		case workflow.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case workflow.FieldNetwork:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field network", values[i])
			} else if value.Valid {
				_m.Network = value.String
			}
		case workflow.FieldMetisvmEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field metisvm_enabled", values[i])
			} else if value.Valid {
				_m.MetisvmEnabled = value.Bool
			}
		case workflow.FieldFloatingPointEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field floating_point_enabled", values[i])
			} else if value.Valid {
				_m.FloatingPointEnabled = value.Bool
			}
		case workflow.FieldAiInferenceEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ai_inference_enabled", values[i])
			} else if value.Valid {
				_m.AiInferenceEnabled = value.Bool
			}
		case workflow.FieldEigendaEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field eigenda_enabled", values[i])
			} else if value.Valid {
				_m.EigendaEnabled = value.Bool
			}
		case workflow.FieldPefBatchEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field pef_batch_enabled", values[i])
			} else if value.Valid {
				_m.PefBatchEnabled = value.Bool
			}
		case workflow.FieldAuditLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_level", values[i])
			} else if value.Valid {
				_m.AuditLevel = value.String
			}
		case workflow.FieldSkipAudit:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skip_audit", values[i])
			} else if value.Valid {
				_m.SkipAudit = value.Bool
			}
		case workflow.FieldSkipTesting:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skip_testing", values[i])
			} else if value.Valid {
				_m.SkipTesting = value.Bool
			}
		case workflow.FieldGasLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gas_limit", values[i])
			} else if value.Valid {
				_m.GasLimit = uint64(value.Int64)
			}
		case workflow.FieldWarnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field warnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Warnings); err != nil {
					return fmt.Errorf("unmarshal field warnings: %w", err)
				}
			}
		case workflow.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case workflow.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case workflow.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case workflow.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflow.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case workflow.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case workflow.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case workflow.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Workflow.
// This includes values selected through modifiers, order, etc.
func (_m *Workflow) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContracts queries the "contracts" edge of the Workflow entity.
func (_m *Workflow) QueryContracts() *ContractQuery {
	return NewWorkflowClient(_m.config).QueryContracts(_m)
}

// QueryEvents queries the "events" edge of the Workflow entity.
func (_m *Workflow) QueryEvents() *EventQuery {
	return NewWorkflowClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Workflow.
// Note that you need to call Workflow.Unwrap() before calling this method if this Workflow
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Workflow) Update() *WorkflowUpdateOne {
	return NewWorkflowClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Workflow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Workflow) Unwrap() *Workflow {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Workflow is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Workflow) String() string {
	var builder strings.Builder
	builder.WriteString("Workflow(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.Owner; v != nil {
		builder.WriteString("owner=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("nlp_description=")
	builder.WriteString(_m.NlpDescription)
	builder.WriteString(", ")
	builder.WriteString("contract_type=")
	builder.WriteString(_m.ContractType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("network=")
	builder.WriteString(_m.Network)
	builder.WriteString(", ")
	builder.WriteString("metisvm_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.MetisvmEnabled))
	builder.WriteString(", ")
	builder.WriteString("floating_point_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.FloatingPointEnabled))
	builder.WriteString(", ")
	builder.WriteString("ai_inference_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiInferenceEnabled))
	builder.WriteString(", ")
	builder.WriteString("eigenda_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.EigendaEnabled))
	builder.WriteString(", ")
	builder.WriteString("pef_batch_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.PefBatchEnabled))
	builder.WriteString(", ")
	builder.WriteString("audit_level=")
	builder.WriteString(_m.AuditLevel)
	builder.WriteString(", ")
	builder.WriteString("skip_audit=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipAudit))
	builder.WriteString(", ")
	builder.WriteString("skip_testing=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipTesting))
	builder.WriteString(", ")
	builder.WriteString("gas_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.GasLimit))
	builder.WriteString(", ")
	builder.WriteString("warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Warnings))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Workflows is a parsable slice of Workflow.
type Workflows []*Workflow
