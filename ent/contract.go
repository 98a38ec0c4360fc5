// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chainforge-ai/chainforge/ent/contract"
	"github.com/chainforge-ai/chainforge/ent/workflow"
)

// Contract is the model entity for the Contract schema.
type Contract struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// Contract name extracted from the source
	Name string `json:"name,omitempty"`
	// SourceCode holds the value of the "source_code" field.
	SourceCode string `json:"source_code,omitempty"`
	// Hex SHA-256 of source_code; identical hash ⇒ identical body
	SourceHash string `json:"source_hash,omitempty"`
	// Abi holds the value of the "abi" field.
	Abi []map[string]interface{} `json:"abi,omitempty"`
	// Creation bytecode, 0x-prefixed hex
	Bytecode string `json:"bytecode,omitempty"`
	// Runtime bytecode, 0x-prefixed hex
	DeployedBytecode string `json:"deployed_bytecode,omitempty"`
	// From the source pragma
	SolidityVersion string `json:"solidity_version,omitempty"`
	// Constructor parameter descriptors from the ABI
	ConstructorParams []map[string]interface{} `json:"constructor_params,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContractQuery when eager-loading is set.
	Edges        ContractEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContractEdges holds the relations/edges for other nodes in the graph.
type ContractEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// Audits holds the value of the audits edge.
	Audits []*AuditRecord `json:"audits,omitempty"`
	// Deployments holds the value of the deployments edge.
	Deployments []*Deployment `json:"deployments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContractEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// AuditsOrErr returns the Audits value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) AuditsOrErr() ([]*AuditRecord, error) {
	if e.loadedTypes[1] {
		return e.Audits, nil
	}
	return nil, &NotLoadedError{edge: "audits"}
}

// DeploymentsOrErr returns the Deployments value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) DeploymentsOrErr() ([]*Deployment, error) {
	if e.loadedTypes[2] {
		return e.Deployments, nil
	}
	return nil, &NotLoadedError{edge: "deployments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contract) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contract.FieldAbi, contract.FieldConstructorParams:
			values[i] = new([]byte)
		case contract.FieldID, contract.FieldWorkflowID, contract.FieldName, contract.FieldSourceCode, contract.FieldSourceHash, contract.FieldBytecode, contract.FieldDeployedBytecode, contract.FieldSolidityVersion:
			values[i] = new(sql.NullString)
		case contract.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contract fields.
func (_m *Contract) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contract.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case contract.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case contract.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case contract.FieldSourceCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_code", values[i])
			} else if value.Valid {
				_m.SourceCode = value.String
			}
		case contract.FieldSourceHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_hash", values[i])
			} else if value.Valid {
				_m.SourceHash = value.String
			}
		case contract.FieldAbi:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field abi", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Abi); err != nil {
					return fmt.Errorf("unmarshal field abi: %w", err)
				}
			}
		case contract.FieldBytecode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bytecode", values[i])
			} else if value.Valid {
				_m.Bytecode = value.String
			}
		case contract.FieldDeployedBytecode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deployed_bytecode", values[i])
			} else if value.Valid {
				_m.DeployedBytecode = value.String
			}
		case contract.FieldSolidityVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solidity_version", values[i])
			} else if value.Valid {
				_m.SolidityVersion = value.String
			}
		case contract.FieldConstructorParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field constructor_params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConstructorParams); err != nil {
					return fmt.Errorf("unmarshal field constructor_params: %w", err)
				}
			}
		case contract.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Contract.
// This includes values selected through modifiers, order, etc.
func (_m *Contract) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the Contract entity.
func (_m *Contract) QueryWorkflow() *WorkflowQuery {
	return NewContractClient(_m.config).QueryWorkflow(_m)
}

// QueryAudits queries the "audits" edge of the Contract entity.
func (_m *Contract) QueryAudits() *AuditRecordQuery {
	return NewContractClient(_m.config).QueryAudits(_m)
}

// QueryDeployments queries the "deployments" edge of the Contract entity.
func (_m *Contract) QueryDeployments() *DeploymentQuery {
	return NewContractClient(_m.config).QueryDeployments(_m)
}

// Update returns a builder for updating this Contract.
// Note that you need to call Contract.Unwrap() before calling this method if this Contract
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Contract) Update() *ContractUpdateOne {
	return NewContractClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Contract entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Contract) Unwrap() *Contract {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contract is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Contract) String() string {
	var builder strings.Builder
	builder.WriteString("Contract(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("source_code=")
	builder.WriteString(_m.SourceCode)
	builder.WriteString(", ")
	builder.WriteString("source_hash=")
	builder.WriteString(_m.SourceHash)
	builder.WriteString(", ")
	builder.WriteString("abi=")
	builder.WriteString(fmt.Sprintf("%v", _m.Abi))
	builder.WriteString(", ")
	builder.WriteString("bytecode=")
	builder.WriteString(_m.Bytecode)
	builder.WriteString(", ")
	builder.WriteString("deployed_bytecode=")
	builder.WriteString(_m.DeployedBytecode)
	builder.WriteString(", ")
	builder.WriteString("solidity_version=")
	builder.WriteString(_m.SolidityVersion)
	builder.WriteString(", ")
	builder.WriteString("constructor_params=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConstructorParams))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Contracts is a parsable slice of Contract.
type Contracts []*Contract
