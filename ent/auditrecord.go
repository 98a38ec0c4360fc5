// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chainforge-ai/chainforge/ent/auditrecord"
	"github.com/chainforge-ai/chainforge/ent/contract"
)

// AuditRecord is the model entity for the AuditRecord schema.
type AuditRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID string `json:"contract_id,omitempty"`
	// basic, standard, or comprehensive
	AuditLevel string `json:"audit_level,omitempty"`
	// Deduplicated findings across all tools
	Findings []map[string]interface{} `json:"findings,omitempty"`
	// CriticalCount holds the value of the "critical_count" field.
	CriticalCount int `json:"critical_count,omitempty"`
	// HighCount holds the value of the "high_count" field.
	HighCount int `json:"high_count,omitempty"`
	// MediumCount holds the value of the "medium_count" field.
	MediumCount int `json:"medium_count,omitempty"`
	// LowCount holds the value of the "low_count" field.
	LowCount int `json:"low_count,omitempty"`
	// InfoCount holds the value of the "info_count" field.
	InfoCount int `json:"info_count,omitempty"`
	// Severity-weighted sum capped at 100
	RiskScore int `json:"risk_score,omitempty"`
	// Status holds the value of the "status" field.
	Status auditrecord.Status `json:"status,omitempty"`
	// ToolsRun holds the value of the "tools_run" field.
	ToolsRun []string `json:"tools_run,omitempty"`
	// tool name → error for tools that crashed or timed out
	ToolErrors map[string]string `json:"tool_errors,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditRecordQuery when eager-loading is set.
	Edges        AuditRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditRecordEdges holds the relations/edges for other nodes in the graph.
type AuditRecordEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditRecordEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditrecord.FieldFindings, auditrecord.FieldToolsRun, auditrecord.FieldToolErrors:
			values[i] = new([]byte)
		case auditrecord.FieldCriticalCount, auditrecord.FieldHighCount, auditrecord.FieldMediumCount, auditrecord.FieldLowCount, auditrecord.FieldInfoCount, auditrecord.FieldRiskScore:
			values[i] = new(sql.NullInt64)
		case auditrecord.FieldID, auditrecord.FieldContractID, auditrecord.FieldAuditLevel, auditrecord.FieldStatus:
			values[i] = new(sql.NullString)
		case auditrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditRecord fields.
func (_m *AuditRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case auditrecord.FieldContractID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value.Valid {
				_m.ContractID = value.String
			}
		case auditrecord.FieldAuditLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_level", values[i])
			} else if value.Valid {
				_m.AuditLevel = value.String
			}
		case auditrecord.FieldFindings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field findings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Findings); err != nil {
					return fmt.Errorf("unmarshal field findings: %w", err)
				}
			}
		case auditrecord.FieldCriticalCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field critical_count", values[i])
			} else if value.Valid {
				_m.CriticalCount = int(value.Int64)
			}
		case auditrecord.FieldHighCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field high_count", values[i])
			} else if value.Valid {
				_m.HighCount = int(value.Int64)
			}
		case auditrecord.FieldMediumCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field medium_count", values[i])
			} else if value.Valid {
				_m.MediumCount = int(value.Int64)
			}
		case auditrecord.FieldLowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field low_count", values[i])
			} else if value.Valid {
				_m.LowCount = int(value.Int64)
			}
		case auditrecord.FieldInfoCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field info_count", values[i])
			} else if value.Valid {
				_m.InfoCount = int(value.Int64)
			}
		case auditrecord.FieldRiskScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = int(value.Int64)
			}
		case auditrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = auditrecord.Status(value.String)
			}
		case auditrecord.FieldToolsRun:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tools_run", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolsRun); err != nil {
					return fmt.Errorf("unmarshal field tools_run: %w", err)
				}
			}
		case auditrecord.FieldToolErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolErrors); err != nil {
					return fmt.Errorf("unmarshal field tool_errors: %w", err)
				}
			}
		case auditrecord.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AuditRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AuditRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the AuditRecord entity.
func (_m *AuditRecord) QueryContract() *ContractQuery {
	return NewAuditRecordClient(_m.config).QueryContract(_m)
}

// Update returns a builder for updating this AuditRecord.
// Note that you need to call AuditRecord.Unwrap() before calling this method if this AuditRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditRecord) Update() *AuditRecordUpdateOne {
	return NewAuditRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditRecord) Unwrap() *AuditRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AuditRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_id=")
	builder.WriteString(_m.ContractID)
	builder.WriteString(", ")
	builder.WriteString("audit_level=")
	builder.WriteString(_m.AuditLevel)
	builder.WriteString(", ")
	builder.WriteString("findings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Findings))
	builder.WriteString(", ")
	builder.WriteString("critical_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CriticalCount))
	builder.WriteString(", ")
	builder.WriteString("high_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.HighCount))
	builder.WriteString(", ")
	builder.WriteString("medium_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MediumCount))
	builder.WriteString(", ")
	builder.WriteString("low_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LowCount))
	builder.WriteString(", ")
	builder.WriteString("info_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.InfoCount))
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("tools_run=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolsRun))
	builder.WriteString(", ")
	builder.WriteString("tool_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolErrors))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AuditRecords is a parsable slice of AuditRecord.
type AuditRecords []*AuditRecord
