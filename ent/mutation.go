// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chainforge-ai/chainforge/ent/auditrecord"
	"github.com/chainforge-ai/chainforge/ent/contract"
	"github.com/chainforge-ai/chainforge/ent/deployment"
	"github.com/chainforge-ai/chainforge/ent/event"
	"github.com/chainforge-ai/chainforge/ent/predicate"
	"github.com/chainforge-ai/chainforge/ent/template"
	"github.com/chainforge-ai/chainforge/ent/workflow"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditRecord = "AuditRecord"
	TypeContract    = "Contract"
	TypeDeployment  = "Deployment"
	TypeEvent       = "Event"
	TypeTemplate    = "Template"
	TypeWorkflow    = "Workflow"
)

// AuditRecordMutation represents an operation that mutates the AuditRecord nodes in the graph.
type AuditRecordMutation struct {
	config
	op                Op
	typ               string
	id                *string
	audit_level       *string
	findings          *[]map[string]interface{}
	appendfindings    []map[string]interface{}
	critical_count    *int
	addcritical_count *int
	high_count        *int
	addhigh_count     *int
	medium_count      *int
	addmedium_count   *int
	low_count         *int
	addlow_count      *int
	info_count        *int
	addinfo_count     *int
	risk_score        *int
	addrisk_score     *int
	status            *auditrecord.Status
	tools_run         *[]string
	appendtools_run   []string
	tool_errors       *map[string]string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	contract          *string
	clearedcontract   bool
	done              bool
	oldValue          func(context.Context) (*AuditRecord, error)
	predicates        []predicate.AuditRecord
}

var _ ent.Mutation = (*AuditRecordMutation)(nil)

// auditrecordOption allows management of the mutation configuration using functional options.
type auditrecordOption func(*AuditRecordMutation)

// newAuditRecordMutation creates new mutation for the AuditRecord entity.
func newAuditRecordMutation(c config, op Op, opts ...auditrecordOption) *AuditRecordMutation {
	m := &AuditRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditRecordID sets the ID field of the mutation.
func withAuditRecordID(id string) auditrecordOption {
	return func(m *AuditRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditRecord
		)
		m.oldValue = func(ctx context.Context) (*AuditRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditRecord sets the old AuditRecord of the mutation.
func withAuditRecord(node *AuditRecord) auditrecordOption {
	return func(m *AuditRecordMutation) {
		m.oldValue = func(context.Context) (*AuditRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditRecord entities.
func (m *AuditRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *AuditRecordMutation) SetContractID(s string) {
	m.contract = &s
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *AuditRecordMutation) ContractID() (r string, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldContractID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *AuditRecordMutation) ResetContractID() {
	m.contract = nil
}

// SetAuditLevel sets the "audit_level" field.
func (m *AuditRecordMutation) SetAuditLevel(s string) {
	m.audit_level = &s
}

// AuditLevel returns the value of the "audit_level" field in the mutation.
func (m *AuditRecordMutation) AuditLevel() (r string, exists bool) {
	v := m.audit_level
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditLevel returns the old "audit_level" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldAuditLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditLevel: %w", err)
	}
	return oldValue.AuditLevel, nil
}

// ResetAuditLevel resets all changes to the "audit_level" field.
func (m *AuditRecordMutation) ResetAuditLevel() {
	m.audit_level = nil
}

// SetFindings sets the "findings" field.
func (m *AuditRecordMutation) SetFindings(value []map[string]interface{}) {
	m.findings = &value
	m.appendfindings = nil
}

// Findings returns the value of the "findings" field in the mutation.
func (m *AuditRecordMutation) Findings() (r []map[string]interface{}, exists bool) {
	v := m.findings
	if v == nil {
		return
	}
	return *v, true
}

// OldFindings returns the old "findings" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldFindings(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFindings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFindings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFindings: %w", err)
	}
	return oldValue.Findings, nil
}

// AppendFindings adds value to the "findings" field.
func (m *AuditRecordMutation) AppendFindings(value []map[string]interface{}) {
	m.appendfindings = append(m.appendfindings, value...)
}

// AppendedFindings returns the list of values that were appended to the "findings" field in this mutation.
func (m *AuditRecordMutation) AppendedFindings() ([]map[string]interface{}, bool) {
	if len(m.appendfindings) == 0 {
		return nil, false
	}
	return m.appendfindings, true
}

// ClearFindings clears the value of the "findings" field.
func (m *AuditRecordMutation) ClearFindings() {
	m.findings = nil
	m.appendfindings = nil
	m.clearedFields[auditrecord.FieldFindings] = struct{}{}
}

// FindingsCleared returns if the "findings" field was cleared in this mutation.
func (m *AuditRecordMutation) FindingsCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldFindings]
	return ok
}

// ResetFindings resets all changes to the "findings" field.
func (m *AuditRecordMutation) ResetFindings() {
	m.findings = nil
	m.appendfindings = nil
	delete(m.clearedFields, auditrecord.FieldFindings)
}

// SetCriticalCount sets the "critical_count" field.
func (m *AuditRecordMutation) SetCriticalCount(i int) {
	m.critical_count = &i
	m.addcritical_count = nil
}

// CriticalCount returns the value of the "critical_count" field in the mutation.
func (m *AuditRecordMutation) CriticalCount() (r int, exists bool) {
	v := m.critical_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticalCount returns the old "critical_count" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldCriticalCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticalCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticalCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticalCount: %w", err)
	}
	return oldValue.CriticalCount, nil
}

// AddCriticalCount adds i to the "critical_count" field.
func (m *AuditRecordMutation) AddCriticalCount(i int) {
	if m.addcritical_count != nil {
		*m.addcritical_count += i
	} else {
		m.addcritical_count = &i
	}
}

// AddedCriticalCount returns the value that was added to the "critical_count" field in this mutation.
func (m *AuditRecordMutation) AddedCriticalCount() (r int, exists bool) {
	v := m.addcritical_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCriticalCount resets all changes to the "critical_count" field.
func (m *AuditRecordMutation) ResetCriticalCount() {
	m.critical_count = nil
	m.addcritical_count = nil
}

// SetHighCount sets the "high_count" field.
func (m *AuditRecordMutation) SetHighCount(i int) {
	m.high_count = &i
	m.addhigh_count = nil
}

// HighCount returns the value of the "high_count" field in the mutation.
func (m *AuditRecordMutation) HighCount() (r int, exists bool) {
	v := m.high_count
	if v == nil {
		return
	}
	return *v, true
}

// OldHighCount returns the old "high_count" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldHighCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHighCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHighCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHighCount: %w", err)
	}
	return oldValue.HighCount, nil
}

// AddHighCount adds i to the "high_count" field.
func (m *AuditRecordMutation) AddHighCount(i int) {
	if m.addhigh_count != nil {
		*m.addhigh_count += i
	} else {
		m.addhigh_count = &i
	}
}

// AddedHighCount returns the value that was added to the "high_count" field in this mutation.
func (m *AuditRecordMutation) AddedHighCount() (r int, exists bool) {
	v := m.addhigh_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetHighCount resets all changes to the "high_count" field.
func (m *AuditRecordMutation) ResetHighCount() {
	m.high_count = nil
	m.addhigh_count = nil
}

// SetMediumCount sets the "medium_count" field.
func (m *AuditRecordMutation) SetMediumCount(i int) {
	m.medium_count = &i
	m.addmedium_count = nil
}

// MediumCount returns the value of the "medium_count" field in the mutation.
func (m *AuditRecordMutation) MediumCount() (r int, exists bool) {
	v := m.medium_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMediumCount returns the old "medium_count" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldMediumCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediumCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediumCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediumCount: %w", err)
	}
	return oldValue.MediumCount, nil
}

// AddMediumCount adds i to the "medium_count" field.
func (m *AuditRecordMutation) AddMediumCount(i int) {
	if m.addmedium_count != nil {
		*m.addmedium_count += i
	} else {
		m.addmedium_count = &i
	}
}

// AddedMediumCount returns the value that was added to the "medium_count" field in this mutation.
func (m *AuditRecordMutation) AddedMediumCount() (r int, exists bool) {
	v := m.addmedium_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMediumCount resets all changes to the "medium_count" field.
func (m *AuditRecordMutation) ResetMediumCount() {
	m.medium_count = nil
	m.addmedium_count = nil
}

// SetLowCount sets the "low_count" field.
func (m *AuditRecordMutation) SetLowCount(i int) {
	m.low_count = &i
	m.addlow_count = nil
}

// LowCount returns the value of the "low_count" field in the mutation.
func (m *AuditRecordMutation) LowCount() (r int, exists bool) {
	v := m.low_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLowCount returns the old "low_count" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldLowCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowCount: %w", err)
	}
	return oldValue.LowCount, nil
}

// AddLowCount adds i to the "low_count" field.
func (m *AuditRecordMutation) AddLowCount(i int) {
	if m.addlow_count != nil {
		*m.addlow_count += i
	} else {
		m.addlow_count = &i
	}
}

// AddedLowCount returns the value that was added to the "low_count" field in this mutation.
func (m *AuditRecordMutation) AddedLowCount() (r int, exists bool) {
	v := m.addlow_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLowCount resets all changes to the "low_count" field.
func (m *AuditRecordMutation) ResetLowCount() {
	m.low_count = nil
	m.addlow_count = nil
}

// SetInfoCount sets the "info_count" field.
func (m *AuditRecordMutation) SetInfoCount(i int) {
	m.info_count = &i
	m.addinfo_count = nil
}

// InfoCount returns the value of the "info_count" field in the mutation.
func (m *AuditRecordMutation) InfoCount() (r int, exists bool) {
	v := m.info_count
	if v == nil {
		return
	}
	return *v, true
}

// OldInfoCount returns the old "info_count" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldInfoCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInfoCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInfoCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInfoCount: %w", err)
	}
	return oldValue.InfoCount, nil
}

// AddInfoCount adds i to the "info_count" field.
func (m *AuditRecordMutation) AddInfoCount(i int) {
	if m.addinfo_count != nil {
		*m.addinfo_count += i
	} else {
		m.addinfo_count = &i
	}
}

// AddedInfoCount returns the value that was added to the "info_count" field in this mutation.
func (m *AuditRecordMutation) AddedInfoCount() (r int, exists bool) {
	v := m.addinfo_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetInfoCount resets all changes to the "info_count" field.
func (m *AuditRecordMutation) ResetInfoCount() {
	m.info_count = nil
	m.addinfo_count = nil
}

// SetRiskScore sets the "risk_score" field.
func (m *AuditRecordMutation) SetRiskScore(i int) {
	m.risk_score = &i
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *AuditRecordMutation) RiskScore() (r int, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldRiskScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds i to the "risk_score" field.
func (m *AuditRecordMutation) AddRiskScore(i int) {
	if m.addrisk_score != nil {
		*m.addrisk_score += i
	} else {
		m.addrisk_score = &i
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *AuditRecordMutation) AddedRiskScore() (r int, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *AuditRecordMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetStatus sets the "status" field.
func (m *AuditRecordMutation) SetStatus(a auditrecord.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditRecordMutation) Status() (r auditrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldStatus(ctx context.Context) (v auditrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AuditRecordMutation) ResetStatus() {
	m.status = nil
}

// SetToolsRun sets the "tools_run" field.
func (m *AuditRecordMutation) SetToolsRun(s []string) {
	m.tools_run = &s
	m.appendtools_run = nil
}

// ToolsRun returns the value of the "tools_run" field in the mutation.
func (m *AuditRecordMutation) ToolsRun() (r []string, exists bool) {
	v := m.tools_run
	if v == nil {
		return
	}
	return *v, true
}

// OldToolsRun returns the old "tools_run" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldToolsRun(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolsRun is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolsRun requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolsRun: %w", err)
	}
	return oldValue.ToolsRun, nil
}

// AppendToolsRun adds s to the "tools_run" field.
func (m *AuditRecordMutation) AppendToolsRun(s []string) {
	m.appendtools_run = append(m.appendtools_run, s...)
}

// AppendedToolsRun returns the list of values that were appended to the "tools_run" field in this mutation.
func (m *AuditRecordMutation) AppendedToolsRun() ([]string, bool) {
	if len(m.appendtools_run) == 0 {
		return nil, false
	}
	return m.appendtools_run, true
}

// ClearToolsRun clears the value of the "tools_run" field.
func (m *AuditRecordMutation) ClearToolsRun() {
	m.tools_run = nil
	m.appendtools_run = nil
	m.clearedFields[auditrecord.FieldToolsRun] = struct{}{}
}

// ToolsRunCleared returns if the "tools_run" field was cleared in this mutation.
func (m *AuditRecordMutation) ToolsRunCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldToolsRun]
	return ok
}

// ResetToolsRun resets all changes to the "tools_run" field.
func (m *AuditRecordMutation) ResetToolsRun() {
	m.tools_run = nil
	m.appendtools_run = nil
	delete(m.clearedFields, auditrecord.FieldToolsRun)
}

// SetToolErrors sets the "tool_errors" field.
func (m *AuditRecordMutation) SetToolErrors(value map[string]string) {
	m.tool_errors = &value
}

// ToolErrors returns the value of the "tool_errors" field in the mutation.
func (m *AuditRecordMutation) ToolErrors() (r map[string]string, exists bool) {
	v := m.tool_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldToolErrors returns the old "tool_errors" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldToolErrors(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolErrors: %w", err)
	}
	return oldValue.ToolErrors, nil
}

// ClearToolErrors clears the value of the "tool_errors" field.
func (m *AuditRecordMutation) ClearToolErrors() {
	m.tool_errors = nil
	m.clearedFields[auditrecord.FieldToolErrors] = struct{}{}
}

// ToolErrorsCleared returns if the "tool_errors" field was cleared in this mutation.
func (m *AuditRecordMutation) ToolErrorsCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldToolErrors]
	return ok
}

// ResetToolErrors resets all changes to the "tool_errors" field.
func (m *AuditRecordMutation) ResetToolErrors() {
	m.tool_errors = nil
	delete(m.clearedFields, auditrecord.FieldToolErrors)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *AuditRecordMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[auditrecord.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *AuditRecordMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *AuditRecordMutation) ContractIDs() (ids []string) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *AuditRecordMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the AuditRecordMutation builder.
func (m *AuditRecordMutation) Where(ps ...predicate.AuditRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditRecord).
func (m *AuditRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditRecordMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.contract != nil {
		fields = append(fields, auditrecord.FieldContractID)
	}
	if m.audit_level != nil {
		fields = append(fields, auditrecord.FieldAuditLevel)
	}
	if m.findings != nil {
		fields = append(fields, auditrecord.FieldFindings)
	}
	if m.critical_count != nil {
		fields = append(fields, auditrecord.FieldCriticalCount)
	}
	if m.high_count != nil {
		fields = append(fields, auditrecord.FieldHighCount)
	}
	if m.medium_count != nil {
		fields = append(fields, auditrecord.FieldMediumCount)
	}
	if m.low_count != nil {
		fields = append(fields, auditrecord.FieldLowCount)
	}
	if m.info_count != nil {
		fields = append(fields, auditrecord.FieldInfoCount)
	}
	if m.risk_score != nil {
		fields = append(fields, auditrecord.FieldRiskScore)
	}
	if m.status != nil {
		fields = append(fields, auditrecord.FieldStatus)
	}
	if m.tools_run != nil {
		fields = append(fields, auditrecord.FieldToolsRun)
	}
	if m.tool_errors != nil {
		fields = append(fields, auditrecord.FieldToolErrors)
	}
	if m.created_at != nil {
		fields = append(fields, auditrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditrecord.FieldContractID:
		return m.ContractID()
	case auditrecord.FieldAuditLevel:
		return m.AuditLevel()
	case auditrecord.FieldFindings:
		return m.Findings()
	case auditrecord.FieldCriticalCount:
		return m.CriticalCount()
	case auditrecord.FieldHighCount:
		return m.HighCount()
	case auditrecord.FieldMediumCount:
		return m.MediumCount()
	case auditrecord.FieldLowCount:
		return m.LowCount()
	case auditrecord.FieldInfoCount:
		return m.InfoCount()
	case auditrecord.FieldRiskScore:
		return m.RiskScore()
	case auditrecord.FieldStatus:
		return m.Status()
	case auditrecord.FieldToolsRun:
		return m.ToolsRun()
	case auditrecord.FieldToolErrors:
		return m.ToolErrors()
	case auditrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditrecord.FieldContractID:
		return m.OldContractID(ctx)
	case auditrecord.FieldAuditLevel:
		return m.OldAuditLevel(ctx)
	case auditrecord.FieldFindings:
		return m.OldFindings(ctx)
	case auditrecord.FieldCriticalCount:
		return m.OldCriticalCount(ctx)
	case auditrecord.FieldHighCount:
		return m.OldHighCount(ctx)
	case auditrecord.FieldMediumCount:
		return m.OldMediumCount(ctx)
	case auditrecord.FieldLowCount:
		return m.OldLowCount(ctx)
	case auditrecord.FieldInfoCount:
		return m.OldInfoCount(ctx)
	case auditrecord.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case auditrecord.FieldStatus:
		return m.OldStatus(ctx)
	case auditrecord.FieldToolsRun:
		return m.OldToolsRun(ctx)
	case auditrecord.FieldToolErrors:
		return m.OldToolErrors(ctx)
	case auditrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditrecord.FieldContractID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case auditrecord.FieldAuditLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditLevel(v)
		return nil
	case auditrecord.FieldFindings:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFindings(v)
		return nil
	case auditrecord.FieldCriticalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticalCount(v)
		return nil
	case auditrecord.FieldHighCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHighCount(v)
		return nil
	case auditrecord.FieldMediumCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediumCount(v)
		return nil
	case auditrecord.FieldLowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowCount(v)
		return nil
	case auditrecord.FieldInfoCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInfoCount(v)
		return nil
	case auditrecord.FieldRiskScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case auditrecord.FieldStatus:
		v, ok := value.(auditrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case auditrecord.FieldToolsRun:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolsRun(v)
		return nil
	case auditrecord.FieldToolErrors:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolErrors(v)
		return nil
	case auditrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditRecordMutation) AddedFields() []string {
	var fields []string
	if m.addcritical_count != nil {
		fields = append(fields, auditrecord.FieldCriticalCount)
	}
	if m.addhigh_count != nil {
		fields = append(fields, auditrecord.FieldHighCount)
	}
	if m.addmedium_count != nil {
		fields = append(fields, auditrecord.FieldMediumCount)
	}
	if m.addlow_count != nil {
		fields = append(fields, auditrecord.FieldLowCount)
	}
	if m.addinfo_count != nil {
		fields = append(fields, auditrecord.FieldInfoCount)
	}
	if m.addrisk_score != nil {
		fields = append(fields, auditrecord.FieldRiskScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditrecord.FieldCriticalCount:
		return m.AddedCriticalCount()
	case auditrecord.FieldHighCount:
		return m.AddedHighCount()
	case auditrecord.FieldMediumCount:
		return m.AddedMediumCount()
	case auditrecord.FieldLowCount:
		return m.AddedLowCount()
	case auditrecord.FieldInfoCount:
		return m.AddedInfoCount()
	case auditrecord.FieldRiskScore:
		return m.AddedRiskScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditrecord.FieldCriticalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCriticalCount(v)
		return nil
	case auditrecord.FieldHighCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHighCount(v)
		return nil
	case auditrecord.FieldMediumCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMediumCount(v)
		return nil
	case auditrecord.FieldLowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLowCount(v)
		return nil
	case auditrecord.FieldInfoCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInfoCount(v)
		return nil
	case auditrecord.FieldRiskScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	}
	return fmt.Errorf("unknown AuditRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditrecord.FieldFindings) {
		fields = append(fields, auditrecord.FieldFindings)
	}
	if m.FieldCleared(auditrecord.FieldToolsRun) {
		fields = append(fields, auditrecord.FieldToolsRun)
	}
	if m.FieldCleared(auditrecord.FieldToolErrors) {
		fields = append(fields, auditrecord.FieldToolErrors)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditRecordMutation) ClearField(name string) error {
	switch name {
	case auditrecord.FieldFindings:
		m.ClearFindings()
		return nil
	case auditrecord.FieldToolsRun:
		m.ClearToolsRun()
		return nil
	case auditrecord.FieldToolErrors:
		m.ClearToolErrors()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditRecordMutation) ResetField(name string) error {
	switch name {
	case auditrecord.FieldContractID:
		m.ResetContractID()
		return nil
	case auditrecord.FieldAuditLevel:
		m.ResetAuditLevel()
		return nil
	case auditrecord.FieldFindings:
		m.ResetFindings()
		return nil
	case auditrecord.FieldCriticalCount:
		m.ResetCriticalCount()
		return nil
	case auditrecord.FieldHighCount:
		m.ResetHighCount()
		return nil
	case auditrecord.FieldMediumCount:
		m.ResetMediumCount()
		return nil
	case auditrecord.FieldLowCount:
		m.ResetLowCount()
		return nil
	case auditrecord.FieldInfoCount:
		m.ResetInfoCount()
		return nil
	case auditrecord.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case auditrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case auditrecord.FieldToolsRun:
		m.ResetToolsRun()
		return nil
	case auditrecord.FieldToolErrors:
		m.ResetToolErrors()
		return nil
	case auditrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, auditrecord.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditrecord.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, auditrecord.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case auditrecord.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditRecordMutation) ClearEdge(name string) error {
	switch name {
	case auditrecord.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditRecordMutation) ResetEdge(name string) error {
	switch name {
	case auditrecord.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord edge %s", name)
}

// ContractMutation represents an operation that mutates the Contract nodes in the graph.
type ContractMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	name                     *string
	source_code              *string
	source_hash              *string
	abi                      *[]map[string]interface{}
	appendabi                []map[string]interface{}
	bytecode                 *string
	deployed_bytecode        *string
	solidity_version         *string
	constructor_params       *[]map[string]interface{}
	appendconstructor_params []map[string]interface{}
	created_at               *time.Time
	clearedFields            map[string]struct{}
	workflow                 *string
	clearedworkflow          bool
	audits                   map[string]struct{}
	removedaudits            map[string]struct{}
	clearedaudits            bool
	deployments              map[string]struct{}
	removeddeployments       map[string]struct{}
	cleareddeployments       bool
	done                     bool
	oldValue                 func(context.Context) (*Contract, error)
	predicates               []predicate.Contract
}

var _ ent.Mutation = (*ContractMutation)(nil)

// contractOption allows management of the mutation configuration using functional options.
type contractOption func(*ContractMutation)

// newContractMutation creates new mutation for the Contract entity.
func newContractMutation(c config, op Op, opts ...contractOption) *ContractMutation {
	m := &ContractMutation{
		config:        c,
		op:            op,
		typ:           TypeContract,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractID sets the ID field of the mutation.
func withContractID(id string) contractOption {
	return func(m *ContractMutation) {
		var (
			err   error
			once  sync.Once
			value *Contract
		)
		m.oldValue = func(ctx context.Context) (*Contract, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contract.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContract sets the old Contract of the mutation.
func withContract(node *Contract) contractOption {
	return func(m *ContractMutation) {
		m.oldValue = func(context.Context) (*Contract, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contract entities.
func (m *ContractMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contract.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *ContractMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *ContractMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *ContractMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetName sets the "name" field.
func (m *ContractMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ContractMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ContractMutation) ResetName() {
	m.name = nil
}

// SetSourceCode sets the "source_code" field.
func (m *ContractMutation) SetSourceCode(s string) {
	m.source_code = &s
}

// SourceCode returns the value of the "source_code" field in the mutation.
func (m *ContractMutation) SourceCode() (r string, exists bool) {
	v := m.source_code
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceCode returns the old "source_code" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldSourceCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceCode: %w", err)
	}
	return oldValue.SourceCode, nil
}

// ResetSourceCode resets all changes to the "source_code" field.
func (m *ContractMutation) ResetSourceCode() {
	m.source_code = nil
}

// SetSourceHash sets the "source_hash" field.
func (m *ContractMutation) SetSourceHash(s string) {
	m.source_hash = &s
}

// SourceHash returns the value of the "source_hash" field in the mutation.
func (m *ContractMutation) SourceHash() (r string, exists bool) {
	v := m.source_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceHash returns the old "source_hash" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldSourceHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceHash: %w", err)
	}
	return oldValue.SourceHash, nil
}

// ResetSourceHash resets all changes to the "source_hash" field.
func (m *ContractMutation) ResetSourceHash() {
	m.source_hash = nil
}

// SetAbi sets the "abi" field.
func (m *ContractMutation) SetAbi(value []map[string]interface{}) {
	m.abi = &value
	m.appendabi = nil
}

// Abi returns the value of the "abi" field in the mutation.
func (m *ContractMutation) Abi() (r []map[string]interface{}, exists bool) {
	v := m.abi
	if v == nil {
		return
	}
	return *v, true
}

// OldAbi returns the old "abi" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldAbi(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbi: %w", err)
	}
	return oldValue.Abi, nil
}

// AppendAbi adds value to the "abi" field.
func (m *ContractMutation) AppendAbi(value []map[string]interface{}) {
	m.appendabi = append(m.appendabi, value...)
}

// AppendedAbi returns the list of values that were appended to the "abi" field in this mutation.
func (m *ContractMutation) AppendedAbi() ([]map[string]interface{}, bool) {
	if len(m.appendabi) == 0 {
		return nil, false
	}
	return m.appendabi, true
}

// ClearAbi clears the value of the "abi" field.
func (m *ContractMutation) ClearAbi() {
	m.abi = nil
	m.appendabi = nil
	m.clearedFields[contract.FieldAbi] = struct{}{}
}

// AbiCleared returns if the "abi" field was cleared in this mutation.
func (m *ContractMutation) AbiCleared() bool {
	_, ok := m.clearedFields[contract.FieldAbi]
	return ok
}

// ResetAbi resets all changes to the "abi" field.
func (m *ContractMutation) ResetAbi() {
	m.abi = nil
	m.appendabi = nil
	delete(m.clearedFields, contract.FieldAbi)
}

// SetBytecode sets the "bytecode" field.
func (m *ContractMutation) SetBytecode(s string) {
	m.bytecode = &s
}

// Bytecode returns the value of the "bytecode" field in the mutation.
func (m *ContractMutation) Bytecode() (r string, exists bool) {
	v := m.bytecode
	if v == nil {
		return
	}
	return *v, true
}

// OldBytecode returns the old "bytecode" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldBytecode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBytecode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBytecode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBytecode: %w", err)
	}
	return oldValue.Bytecode, nil
}

// ResetBytecode resets all changes to the "bytecode" field.
func (m *ContractMutation) ResetBytecode() {
	m.bytecode = nil
}

// SetDeployedBytecode sets the "deployed_bytecode" field.
func (m *ContractMutation) SetDeployedBytecode(s string) {
	m.deployed_bytecode = &s
}

// DeployedBytecode returns the value of the "deployed_bytecode" field in the mutation.
func (m *ContractMutation) DeployedBytecode() (r string, exists bool) {
	v := m.deployed_bytecode
	if v == nil {
		return
	}
	return *v, true
}

// OldDeployedBytecode returns the old "deployed_bytecode" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldDeployedBytecode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeployedBytecode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeployedBytecode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeployedBytecode: %w", err)
	}
	return oldValue.DeployedBytecode, nil
}

// ClearDeployedBytecode clears the value of the "deployed_bytecode" field.
func (m *ContractMutation) ClearDeployedBytecode() {
	m.deployed_bytecode = nil
	m.clearedFields[contract.FieldDeployedBytecode] = struct{}{}
}

// DeployedBytecodeCleared returns if the "deployed_bytecode" field was cleared in this mutation.
func (m *ContractMutation) DeployedBytecodeCleared() bool {
	_, ok := m.clearedFields[contract.FieldDeployedBytecode]
	return ok
}

// ResetDeployedBytecode resets all changes to the "deployed_bytecode" field.
func (m *ContractMutation) ResetDeployedBytecode() {
	m.deployed_bytecode = nil
	delete(m.clearedFields, contract.FieldDeployedBytecode)
}

// SetSolidityVersion sets the "solidity_version" field.
func (m *ContractMutation) SetSolidityVersion(s string) {
	m.solidity_version = &s
}

// SolidityVersion returns the value of the "solidity_version" field in the mutation.
func (m *ContractMutation) SolidityVersion() (r string, exists bool) {
	v := m.solidity_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSolidityVersion returns the old "solidity_version" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldSolidityVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolidityVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolidityVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolidityVersion: %w", err)
	}
	return oldValue.SolidityVersion, nil
}

// ResetSolidityVersion resets all changes to the "solidity_version" field.
func (m *ContractMutation) ResetSolidityVersion() {
	m.solidity_version = nil
}

// SetConstructorParams sets the "constructor_params" field.
func (m *ContractMutation) SetConstructorParams(value []map[string]interface{}) {
	m.constructor_params = &value
	m.appendconstructor_params = nil
}

// ConstructorParams returns the value of the "constructor_params" field in the mutation.
func (m *ContractMutation) ConstructorParams() (r []map[string]interface{}, exists bool) {
	v := m.constructor_params
	if v == nil {
		return
	}
	return *v, true
}

// OldConstructorParams returns the old "constructor_params" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldConstructorParams(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstructorParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstructorParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstructorParams: %w", err)
	}
	return oldValue.ConstructorParams, nil
}

// AppendConstructorParams adds value to the "constructor_params" field.
func (m *ContractMutation) AppendConstructorParams(value []map[string]interface{}) {
	m.appendconstructor_params = append(m.appendconstructor_params, value...)
}

// AppendedConstructorParams returns the list of values that were appended to the "constructor_params" field in this mutation.
func (m *ContractMutation) AppendedConstructorParams() ([]map[string]interface{}, bool) {
	if len(m.appendconstructor_params) == 0 {
		return nil, false
	}
	return m.appendconstructor_params, true
}

// ClearConstructorParams clears the value of the "constructor_params" field.
func (m *ContractMutation) ClearConstructorParams() {
	m.constructor_params = nil
	m.appendconstructor_params = nil
	m.clearedFields[contract.FieldConstructorParams] = struct{}{}
}

// ConstructorParamsCleared returns if the "constructor_params" field was cleared in this mutation.
func (m *ContractMutation) ConstructorParamsCleared() bool {
	_, ok := m.clearedFields[contract.FieldConstructorParams]
	return ok
}

// ResetConstructorParams resets all changes to the "constructor_params" field.
func (m *ContractMutation) ResetConstructorParams() {
	m.constructor_params = nil
	m.appendconstructor_params = nil
	delete(m.clearedFields, contract.FieldConstructorParams)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContractMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContractMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContractMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *ContractMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[contract.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *ContractMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *ContractMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *ContractMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// AddAuditIDs adds the "audits" edge to the AuditRecord entity by ids.
func (m *ContractMutation) AddAuditIDs(ids ...string) {
	if m.audits == nil {
		m.audits = make(map[string]struct{})
	}
	for i := range ids {
		m.audits[ids[i]] = struct{}{}
	}
}

// ClearAudits clears the "audits" edge to the AuditRecord entity.
func (m *ContractMutation) ClearAudits() {
	m.clearedaudits = true
}

// AuditsCleared reports if the "audits" edge to the AuditRecord entity was cleared.
func (m *ContractMutation) AuditsCleared() bool {
	return m.clearedaudits
}

// RemoveAuditIDs removes the "audits" edge to the AuditRecord entity by IDs.
func (m *ContractMutation) RemoveAuditIDs(ids ...string) {
	if m.removedaudits == nil {
		m.removedaudits = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.audits, ids[i])
		m.removedaudits[ids[i]] = struct{}{}
	}
}

// RemovedAudits returns the removed IDs of the "audits" edge to the AuditRecord entity.
func (m *ContractMutation) RemovedAuditsIDs() (ids []string) {
	for id := range m.removedaudits {
		ids = append(ids, id)
	}
	return
}

// AuditsIDs returns the "audits" edge IDs in the mutation.
func (m *ContractMutation) AuditsIDs() (ids []string) {
	for id := range m.audits {
		ids = append(ids, id)
	}
	return
}

// ResetAudits resets all changes to the "audits" edge.
func (m *ContractMutation) ResetAudits() {
	m.audits = nil
	m.clearedaudits = false
	m.removedaudits = nil
}

// AddDeploymentIDs adds the "deployments" edge to the Deployment entity by ids.
func (m *ContractMutation) AddDeploymentIDs(ids ...string) {
	if m.deployments == nil {
		m.deployments = make(map[string]struct{})
	}
	for i := range ids {
		m.deployments[ids[i]] = struct{}{}
	}
}

// ClearDeployments clears the "deployments" edge to the Deployment entity.
func (m *ContractMutation) ClearDeployments() {
	m.cleareddeployments = true
}

// DeploymentsCleared reports if the "deployments" edge to the Deployment entity was cleared.
func (m *ContractMutation) DeploymentsCleared() bool {
	return m.cleareddeployments
}

// RemoveDeploymentIDs removes the "deployments" edge to the Deployment entity by IDs.
func (m *ContractMutation) RemoveDeploymentIDs(ids ...string) {
	if m.removeddeployments == nil {
		m.removeddeployments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.deployments, ids[i])
		m.removeddeployments[ids[i]] = struct{}{}
	}
}

// RemovedDeployments returns the removed IDs of the "deployments" edge to the Deployment entity.
func (m *ContractMutation) RemovedDeploymentsIDs() (ids []string) {
	for id := range m.removeddeployments {
		ids = append(ids, id)
	}
	return
}

// DeploymentsIDs returns the "deployments" edge IDs in the mutation.
func (m *ContractMutation) DeploymentsIDs() (ids []string) {
	for id := range m.deployments {
		ids = append(ids, id)
	}
	return
}

// ResetDeployments resets all changes to the "deployments" edge.
func (m *ContractMutation) ResetDeployments() {
	m.deployments = nil
	m.cleareddeployments = false
	m.removeddeployments = nil
}

// Where appends a list predicates to the ContractMutation builder.
func (m *ContractMutation) Where(ps ...predicate.Contract) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contract, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contract).
func (m *ContractMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.workflow != nil {
		fields = append(fields, contract.FieldWorkflowID)
	}
	if m.name != nil {
		fields = append(fields, contract.FieldName)
	}
	if m.source_code != nil {
		fields = append(fields, contract.FieldSourceCode)
	}
	if m.source_hash != nil {
		fields = append(fields, contract.FieldSourceHash)
	}
	if m.abi != nil {
		fields = append(fields, contract.FieldAbi)
	}
	if m.bytecode != nil {
		fields = append(fields, contract.FieldBytecode)
	}
	if m.deployed_bytecode != nil {
		fields = append(fields, contract.FieldDeployedBytecode)
	}
	if m.solidity_version != nil {
		fields = append(fields, contract.FieldSolidityVersion)
	}
	if m.constructor_params != nil {
		fields = append(fields, contract.FieldConstructorParams)
	}
	if m.created_at != nil {
		fields = append(fields, contract.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldWorkflowID:
		return m.WorkflowID()
	case contract.FieldName:
		return m.Name()
	case contract.FieldSourceCode:
		return m.SourceCode()
	case contract.FieldSourceHash:
		return m.SourceHash()
	case contract.FieldAbi:
		return m.Abi()
	case contract.FieldBytecode:
		return m.Bytecode()
	case contract.FieldDeployedBytecode:
		return m.DeployedBytecode()
	case contract.FieldSolidityVersion:
		return m.SolidityVersion()
	case contract.FieldConstructorParams:
		return m.ConstructorParams()
	case contract.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contract.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case contract.FieldName:
		return m.OldName(ctx)
	case contract.FieldSourceCode:
		return m.OldSourceCode(ctx)
	case contract.FieldSourceHash:
		return m.OldSourceHash(ctx)
	case contract.FieldAbi:
		return m.OldAbi(ctx)
	case contract.FieldBytecode:
		return m.OldBytecode(ctx)
	case contract.FieldDeployedBytecode:
		return m.OldDeployedBytecode(ctx)
	case contract.FieldSolidityVersion:
		return m.OldSolidityVersion(ctx)
	case contract.FieldConstructorParams:
		return m.OldConstructorParams(ctx)
	case contract.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contract field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contract.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case contract.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case contract.FieldSourceCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceCode(v)
		return nil
	case contract.FieldSourceHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceHash(v)
		return nil
	case contract.FieldAbi:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbi(v)
		return nil
	case contract.FieldBytecode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBytecode(v)
		return nil
	case contract.FieldDeployedBytecode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeployedBytecode(v)
		return nil
	case contract.FieldSolidityVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolidityVersion(v)
		return nil
	case contract.FieldConstructorParams:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstructorParams(v)
		return nil
	case contract.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Contract numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contract.FieldAbi) {
		fields = append(fields, contract.FieldAbi)
	}
	if m.FieldCleared(contract.FieldDeployedBytecode) {
		fields = append(fields, contract.FieldDeployedBytecode)
	}
	if m.FieldCleared(contract.FieldConstructorParams) {
		fields = append(fields, contract.FieldConstructorParams)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractMutation) ClearField(name string) error {
	switch name {
	case contract.FieldAbi:
		m.ClearAbi()
		return nil
	case contract.FieldDeployedBytecode:
		m.ClearDeployedBytecode()
		return nil
	case contract.FieldConstructorParams:
		m.ClearConstructorParams()
		return nil
	}
	return fmt.Errorf("unknown Contract nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractMutation) ResetField(name string) error {
	switch name {
	case contract.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case contract.FieldName:
		m.ResetName()
		return nil
	case contract.FieldSourceCode:
		m.ResetSourceCode()
		return nil
	case contract.FieldSourceHash:
		m.ResetSourceHash()
		return nil
	case contract.FieldAbi:
		m.ResetAbi()
		return nil
	case contract.FieldBytecode:
		m.ResetBytecode()
		return nil
	case contract.FieldDeployedBytecode:
		m.ResetDeployedBytecode()
		return nil
	case contract.FieldSolidityVersion:
		m.ResetSolidityVersion()
		return nil
	case contract.FieldConstructorParams:
		m.ResetConstructorParams()
		return nil
	case contract.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.workflow != nil {
		edges = append(edges, contract.EdgeWorkflow)
	}
	if m.audits != nil {
		edges = append(edges, contract.EdgeAudits)
	}
	if m.deployments != nil {
		edges = append(edges, contract.EdgeDeployments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	case contract.EdgeAudits:
		ids := make([]ent.Value, 0, len(m.audits))
		for id := range m.audits {
			ids = append(ids, id)
		}
		return ids
	case contract.EdgeDeployments:
		ids := make([]ent.Value, 0, len(m.deployments))
		for id := range m.deployments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedaudits != nil {
		edges = append(edges, contract.EdgeAudits)
	}
	if m.removeddeployments != nil {
		edges = append(edges, contract.EdgeDeployments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeAudits:
		ids := make([]ent.Value, 0, len(m.removedaudits))
		for id := range m.removedaudits {
			ids = append(ids, id)
		}
		return ids
	case contract.EdgeDeployments:
		ids := make([]ent.Value, 0, len(m.removeddeployments))
		for id := range m.removeddeployments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedworkflow {
		edges = append(edges, contract.EdgeWorkflow)
	}
	if m.clearedaudits {
		edges = append(edges, contract.EdgeAudits)
	}
	if m.cleareddeployments {
		edges = append(edges, contract.EdgeDeployments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractMutation) EdgeCleared(name string) bool {
	switch name {
	case contract.EdgeWorkflow:
		return m.clearedworkflow
	case contract.EdgeAudits:
		return m.clearedaudits
	case contract.EdgeDeployments:
		return m.cleareddeployments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractMutation) ClearEdge(name string) error {
	switch name {
	case contract.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Contract unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractMutation) ResetEdge(name string) error {
	switch name {
	case contract.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	case contract.EdgeAudits:
		m.ResetAudits()
		return nil
	case contract.EdgeDeployments:
		m.ResetDeployments()
		return nil
	}
	return fmt.Errorf("unknown Contract edge %s", name)
}

// DeploymentMutation represents an operation that mutates the Deployment nodes in the graph.
type DeploymentMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	network            *string
	address            *string
	tx_hash            *string
	block_number       *int64
	addblock_number    *int64
	gas_used           *uint64
	addgas_used        *int64
	deployer_address   *string
	eigenda_commitment *string
	status             *deployment.Status
	error_message      *string
	submitted_at       *time.Time
	confirmed_at       *time.Time
	clearedFields      map[string]struct{}
	contract           *string
	clearedcontract    bool
	done               bool
	oldValue           func(context.Context) (*Deployment, error)
	predicates         []predicate.Deployment
}

var _ ent.Mutation = (*DeploymentMutation)(nil)

// deploymentOption allows management of the mutation configuration using functional options.
type deploymentOption func(*DeploymentMutation)

// newDeploymentMutation creates new mutation for the Deployment entity.
func newDeploymentMutation(c config, op Op, opts ...deploymentOption) *DeploymentMutation {
	m := &DeploymentMutation{
		config:        c,
		op:            op,
		typ:           TypeDeployment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeploymentID sets the ID field of the mutation.
func withDeploymentID(id string) deploymentOption {
	return func(m *DeploymentMutation) {
		var (
			err   error
			once  sync.Once
			value *Deployment
		)
		m.oldValue = func(ctx context.Context) (*Deployment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Deployment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeployment sets the old Deployment of the mutation.
func withDeployment(node *Deployment) deploymentOption {
	return func(m *DeploymentMutation) {
		m.oldValue = func(context.Context) (*Deployment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeploymentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeploymentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Deployment entities.
func (m *DeploymentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeploymentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeploymentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Deployment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *DeploymentMutation) SetContractID(s string) {
	m.contract = &s
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *DeploymentMutation) ContractID() (r string, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldContractID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *DeploymentMutation) ResetContractID() {
	m.contract = nil
}

// SetNetwork sets the "network" field.
func (m *DeploymentMutation) SetNetwork(s string) {
	m.network = &s
}

// Network returns the value of the "network" field in the mutation.
func (m *DeploymentMutation) Network() (r string, exists bool) {
	v := m.network
	if v == nil {
		return
	}
	return *v, true
}

// OldNetwork returns the old "network" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldNetwork(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetwork is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetwork requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetwork: %w", err)
	}
	return oldValue.Network, nil
}

// ResetNetwork resets all changes to the "network" field.
func (m *DeploymentMutation) ResetNetwork() {
	m.network = nil
}

// SetAddress sets the "address" field.
func (m *DeploymentMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *DeploymentMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *DeploymentMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[deployment.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *DeploymentMutation) AddressCleared() bool {
	_, ok := m.clearedFields[deployment.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *DeploymentMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, deployment.FieldAddress)
}

// SetTxHash sets the "tx_hash" field.
func (m *DeploymentMutation) SetTxHash(s string) {
	m.tx_hash = &s
}

// TxHash returns the value of the "tx_hash" field in the mutation.
func (m *DeploymentMutation) TxHash() (r string, exists bool) {
	v := m.tx_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTxHash returns the old "tx_hash" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldTxHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTxHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTxHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTxHash: %w", err)
	}
	return oldValue.TxHash, nil
}

// ClearTxHash clears the value of the "tx_hash" field.
func (m *DeploymentMutation) ClearTxHash() {
	m.tx_hash = nil
	m.clearedFields[deployment.FieldTxHash] = struct{}{}
}

// TxHashCleared returns if the "tx_hash" field was cleared in this mutation.
func (m *DeploymentMutation) TxHashCleared() bool {
	_, ok := m.clearedFields[deployment.FieldTxHash]
	return ok
}

// ResetTxHash resets all changes to the "tx_hash" field.
func (m *DeploymentMutation) ResetTxHash() {
	m.tx_hash = nil
	delete(m.clearedFields, deployment.FieldTxHash)
}

// SetBlockNumber sets the "block_number" field.
func (m *DeploymentMutation) SetBlockNumber(i int64) {
	m.block_number = &i
	m.addblock_number = nil
}

// BlockNumber returns the value of the "block_number" field in the mutation.
func (m *DeploymentMutation) BlockNumber() (r int64, exists bool) {
	v := m.block_number
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockNumber returns the old "block_number" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldBlockNumber(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockNumber: %w", err)
	}
	return oldValue.BlockNumber, nil
}

// AddBlockNumber adds i to the "block_number" field.
func (m *DeploymentMutation) AddBlockNumber(i int64) {
	if m.addblock_number != nil {
		*m.addblock_number += i
	} else {
		m.addblock_number = &i
	}
}

// AddedBlockNumber returns the value that was added to the "block_number" field in this mutation.
func (m *DeploymentMutation) AddedBlockNumber() (r int64, exists bool) {
	v := m.addblock_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearBlockNumber clears the value of the "block_number" field.
func (m *DeploymentMutation) ClearBlockNumber() {
	m.block_number = nil
	m.addblock_number = nil
	m.clearedFields[deployment.FieldBlockNumber] = struct{}{}
}

// BlockNumberCleared returns if the "block_number" field was cleared in this mutation.
func (m *DeploymentMutation) BlockNumberCleared() bool {
	_, ok := m.clearedFields[deployment.FieldBlockNumber]
	return ok
}

// ResetBlockNumber resets all changes to the "block_number" field.
func (m *DeploymentMutation) ResetBlockNumber() {
	m.block_number = nil
	m.addblock_number = nil
	delete(m.clearedFields, deployment.FieldBlockNumber)
}

// SetGasUsed sets the "gas_used" field.
func (m *DeploymentMutation) SetGasUsed(u uint64) {
	m.gas_used = &u
	m.addgas_used = nil
}

// GasUsed returns the value of the "gas_used" field in the mutation.
func (m *DeploymentMutation) GasUsed() (r uint64, exists bool) {
	v := m.gas_used
	if v == nil {
		return
	}
	return *v, true
}

// OldGasUsed returns the old "gas_used" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldGasUsed(ctx context.Context) (v uint64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGasUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGasUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGasUsed: %w", err)
	}
	return oldValue.GasUsed, nil
}

// AddGasUsed adds u to the "gas_used" field.
func (m *DeploymentMutation) AddGasUsed(u int64) {
	if m.addgas_used != nil {
		*m.addgas_used += u
	} else {
		m.addgas_used = &u
	}
}

// AddedGasUsed returns the value that was added to the "gas_used" field in this mutation.
func (m *DeploymentMutation) AddedGasUsed() (r int64, exists bool) {
	v := m.addgas_used
	if v == nil {
		return
	}
	return *v, true
}

// ClearGasUsed clears the value of the "gas_used" field.
func (m *DeploymentMutation) ClearGasUsed() {
	m.gas_used = nil
	m.addgas_used = nil
	m.clearedFields[deployment.FieldGasUsed] = struct{}{}
}

// GasUsedCleared returns if the "gas_used" field was cleared in this mutation.
func (m *DeploymentMutation) GasUsedCleared() bool {
	_, ok := m.clearedFields[deployment.FieldGasUsed]
	return ok
}

// ResetGasUsed resets all changes to the "gas_used" field.
func (m *DeploymentMutation) ResetGasUsed() {
	m.gas_used = nil
	m.addgas_used = nil
	delete(m.clearedFields, deployment.FieldGasUsed)
}

// SetDeployerAddress sets the "deployer_address" field.
func (m *DeploymentMutation) SetDeployerAddress(s string) {
	m.deployer_address = &s
}

// DeployerAddress returns the value of the "deployer_address" field in the mutation.
func (m *DeploymentMutation) DeployerAddress() (r string, exists bool) {
	v := m.deployer_address
	if v == nil {
		return
	}
	return *v, true
}

// OldDeployerAddress returns the old "deployer_address" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldDeployerAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeployerAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeployerAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeployerAddress: %w", err)
	}
	return oldValue.DeployerAddress, nil
}

// ResetDeployerAddress resets all changes to the "deployer_address" field.
func (m *DeploymentMutation) ResetDeployerAddress() {
	m.deployer_address = nil
}

// SetEigendaCommitment sets the "eigenda_commitment" field.
func (m *DeploymentMutation) SetEigendaCommitment(s string) {
	m.eigenda_commitment = &s
}

// EigendaCommitment returns the value of the "eigenda_commitment" field in the mutation.
func (m *DeploymentMutation) EigendaCommitment() (r string, exists bool) {
	v := m.eigenda_commitment
	if v == nil {
		return
	}
	return *v, true
}

// OldEigendaCommitment returns the old "eigenda_commitment" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldEigendaCommitment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEigendaCommitment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEigendaCommitment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEigendaCommitment: %w", err)
	}
	return oldValue.EigendaCommitment, nil
}

// ClearEigendaCommitment clears the value of the "eigenda_commitment" field.
func (m *DeploymentMutation) ClearEigendaCommitment() {
	m.eigenda_commitment = nil
	m.clearedFields[deployment.FieldEigendaCommitment] = struct{}{}
}

// EigendaCommitmentCleared returns if the "eigenda_commitment" field was cleared in this mutation.
func (m *DeploymentMutation) EigendaCommitmentCleared() bool {
	_, ok := m.clearedFields[deployment.FieldEigendaCommitment]
	return ok
}

// ResetEigendaCommitment resets all changes to the "eigenda_commitment" field.
func (m *DeploymentMutation) ResetEigendaCommitment() {
	m.eigenda_commitment = nil
	delete(m.clearedFields, deployment.FieldEigendaCommitment)
}

// SetStatus sets the "status" field.
func (m *DeploymentMutation) SetStatus(d deployment.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DeploymentMutation) Status() (r deployment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldStatus(ctx context.Context) (v deployment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DeploymentMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DeploymentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DeploymentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DeploymentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[deployment.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DeploymentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[deployment.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DeploymentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, deployment.FieldErrorMessage)
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *DeploymentMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *DeploymentMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldSubmittedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *DeploymentMutation) ResetSubmittedAt() {
	m.submitted_at = nil
}

// SetConfirmedAt sets the "confirmed_at" field.
func (m *DeploymentMutation) SetConfirmedAt(t time.Time) {
	m.confirmed_at = &t
}

// ConfirmedAt returns the value of the "confirmed_at" field in the mutation.
func (m *DeploymentMutation) ConfirmedAt() (r time.Time, exists bool) {
	v := m.confirmed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmedAt returns the old "confirmed_at" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldConfirmedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmedAt: %w", err)
	}
	return oldValue.ConfirmedAt, nil
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (m *DeploymentMutation) ClearConfirmedAt() {
	m.confirmed_at = nil
	m.clearedFields[deployment.FieldConfirmedAt] = struct{}{}
}

// ConfirmedAtCleared returns if the "confirmed_at" field was cleared in this mutation.
func (m *DeploymentMutation) ConfirmedAtCleared() bool {
	_, ok := m.clearedFields[deployment.FieldConfirmedAt]
	return ok
}

// ResetConfirmedAt resets all changes to the "confirmed_at" field.
func (m *DeploymentMutation) ResetConfirmedAt() {
	m.confirmed_at = nil
	delete(m.clearedFields, deployment.FieldConfirmedAt)
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *DeploymentMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[deployment.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *DeploymentMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *DeploymentMutation) ContractIDs() (ids []string) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *DeploymentMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the DeploymentMutation builder.
func (m *DeploymentMutation) Where(ps ...predicate.Deployment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeploymentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeploymentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Deployment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeploymentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeploymentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Deployment).
func (m *DeploymentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeploymentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.contract != nil {
		fields = append(fields, deployment.FieldContractID)
	}
	if m.network != nil {
		fields = append(fields, deployment.FieldNetwork)
	}
	if m.address != nil {
		fields = append(fields, deployment.FieldAddress)
	}
	if m.tx_hash != nil {
		fields = append(fields, deployment.FieldTxHash)
	}
	if m.block_number != nil {
		fields = append(fields, deployment.FieldBlockNumber)
	}
	if m.gas_used != nil {
		fields = append(fields, deployment.FieldGasUsed)
	}
	if m.deployer_address != nil {
		fields = append(fields, deployment.FieldDeployerAddress)
	}
	if m.eigenda_commitment != nil {
		fields = append(fields, deployment.FieldEigendaCommitment)
	}
	if m.status != nil {
		fields = append(fields, deployment.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, deployment.FieldErrorMessage)
	}
	if m.submitted_at != nil {
		fields = append(fields, deployment.FieldSubmittedAt)
	}
	if m.confirmed_at != nil {
		fields = append(fields, deployment.FieldConfirmedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeploymentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deployment.FieldContractID:
		return m.ContractID()
	case deployment.FieldNetwork:
		return m.Network()
	case deployment.FieldAddress:
		return m.Address()
	case deployment.FieldTxHash:
		return m.TxHash()
	case deployment.FieldBlockNumber:
		return m.BlockNumber()
	case deployment.FieldGasUsed:
		return m.GasUsed()
	case deployment.FieldDeployerAddress:
		return m.DeployerAddress()
	case deployment.FieldEigendaCommitment:
		return m.EigendaCommitment()
	case deployment.FieldStatus:
		return m.Status()
	case deployment.FieldErrorMessage:
		return m.ErrorMessage()
	case deployment.FieldSubmittedAt:
		return m.SubmittedAt()
	case deployment.FieldConfirmedAt:
		return m.ConfirmedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeploymentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deployment.FieldContractID:
		return m.OldContractID(ctx)
	case deployment.FieldNetwork:
		return m.OldNetwork(ctx)
	case deployment.FieldAddress:
		return m.OldAddress(ctx)
	case deployment.FieldTxHash:
		return m.OldTxHash(ctx)
	case deployment.FieldBlockNumber:
		return m.OldBlockNumber(ctx)
	case deployment.FieldGasUsed:
		return m.OldGasUsed(ctx)
	case deployment.FieldDeployerAddress:
		return m.OldDeployerAddress(ctx)
	case deployment.FieldEigendaCommitment:
		return m.OldEigendaCommitment(ctx)
	case deployment.FieldStatus:
		return m.OldStatus(ctx)
	case deployment.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case deployment.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	case deployment.FieldConfirmedAt:
		return m.OldConfirmedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Deployment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeploymentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deployment.FieldContractID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case deployment.FieldNetwork:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetwork(v)
		return nil
	case deployment.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case deployment.FieldTxHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTxHash(v)
		return nil
	case deployment.FieldBlockNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockNumber(v)
		return nil
	case deployment.FieldGasUsed:
		v, ok := value.(uint64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGasUsed(v)
		return nil
	case deployment.FieldDeployerAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeployerAddress(v)
		return nil
	case deployment.FieldEigendaCommitment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEigendaCommitment(v)
		return nil
	case deployment.FieldStatus:
		v, ok := value.(deployment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case deployment.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case deployment.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	case deployment.FieldConfirmedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Deployment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeploymentMutation) AddedFields() []string {
	var fields []string
	if m.addblock_number != nil {
		fields = append(fields, deployment.FieldBlockNumber)
	}
	if m.addgas_used != nil {
		fields = append(fields, deployment.FieldGasUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeploymentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deployment.FieldBlockNumber:
		return m.AddedBlockNumber()
	case deployment.FieldGasUsed:
		return m.AddedGasUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeploymentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deployment.FieldBlockNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlockNumber(v)
		return nil
	case deployment.FieldGasUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGasUsed(v)
		return nil
	}
	return fmt.Errorf("unknown Deployment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeploymentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deployment.FieldAddress) {
		fields = append(fields, deployment.FieldAddress)
	}
	if m.FieldCleared(deployment.FieldTxHash) {
		fields = append(fields, deployment.FieldTxHash)
	}
	if m.FieldCleared(deployment.FieldBlockNumber) {
		fields = append(fields, deployment.FieldBlockNumber)
	}
	if m.FieldCleared(deployment.FieldGasUsed) {
		fields = append(fields, deployment.FieldGasUsed)
	}
	if m.FieldCleared(deployment.FieldEigendaCommitment) {
		fields = append(fields, deployment.FieldEigendaCommitment)
	}
	if m.FieldCleared(deployment.FieldErrorMessage) {
		fields = append(fields, deployment.FieldErrorMessage)
	}
	if m.FieldCleared(deployment.FieldConfirmedAt) {
		fields = append(fields, deployment.FieldConfirmedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeploymentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeploymentMutation) ClearField(name string) error {
	switch name {
	case deployment.FieldAddress:
		m.ClearAddress()
		return nil
	case deployment.FieldTxHash:
		m.ClearTxHash()
		return nil
	case deployment.FieldBlockNumber:
		m.ClearBlockNumber()
		return nil
	case deployment.FieldGasUsed:
		m.ClearGasUsed()
		return nil
	case deployment.FieldEigendaCommitment:
		m.ClearEigendaCommitment()
		return nil
	case deployment.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case deployment.FieldConfirmedAt:
		m.ClearConfirmedAt()
		return nil
	}
	return fmt.Errorf("unknown Deployment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeploymentMutation) ResetField(name string) error {
	switch name {
	case deployment.FieldContractID:
		m.ResetContractID()
		return nil
	case deployment.FieldNetwork:
		m.ResetNetwork()
		return nil
	case deployment.FieldAddress:
		m.ResetAddress()
		return nil
	case deployment.FieldTxHash:
		m.ResetTxHash()
		return nil
	case deployment.FieldBlockNumber:
		m.ResetBlockNumber()
		return nil
	case deployment.FieldGasUsed:
		m.ResetGasUsed()
		return nil
	case deployment.FieldDeployerAddress:
		m.ResetDeployerAddress()
		return nil
	case deployment.FieldEigendaCommitment:
		m.ResetEigendaCommitment()
		return nil
	case deployment.FieldStatus:
		m.ResetStatus()
		return nil
	case deployment.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case deployment.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	case deployment.FieldConfirmedAt:
		m.ResetConfirmedAt()
		return nil
	}
	return fmt.Errorf("unknown Deployment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeploymentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, deployment.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeploymentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deployment.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeploymentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeploymentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeploymentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, deployment.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeploymentMutation) EdgeCleared(name string) bool {
	switch name {
	case deployment.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeploymentMutation) ClearEdge(name string) error {
	switch name {
	case deployment.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown Deployment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeploymentMutation) ResetEdge(name string) error {
	switch name {
	case deployment.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown Deployment edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op              Op
	typ             string
	id              *int64
	event_id        *string
	event_type      *string
	payload         *map[string]interface{}
	source_stage    *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	workflow        *string
	clearedworkflow bool
	done            bool
	oldValue        func(context.Context) (*Event, error)
	predicates      []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *EventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventMutation) ResetEventID() {
	m.event_id = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetWorkflowID sets the "workflow_id" field.
func (m *EventMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *EventMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *EventMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetSourceStage sets the "source_stage" field.
func (m *EventMutation) SetSourceStage(s string) {
	m.source_stage = &s
}

// SourceStage returns the value of the "source_stage" field in the mutation.
func (m *EventMutation) SourceStage() (r string, exists bool) {
	v := m.source_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceStage returns the old "source_stage" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSourceStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceStage: %w", err)
	}
	return oldValue.SourceStage, nil
}

// ClearSourceStage clears the value of the "source_stage" field.
func (m *EventMutation) ClearSourceStage() {
	m.source_stage = nil
	m.clearedFields[event.FieldSourceStage] = struct{}{}
}

// SourceStageCleared returns if the "source_stage" field was cleared in this mutation.
func (m *EventMutation) SourceStageCleared() bool {
	_, ok := m.clearedFields[event.FieldSourceStage]
	return ok
}

// ResetSourceStage resets all changes to the "source_stage" field.
func (m *EventMutation) ResetSourceStage() {
	m.source_stage = nil
	delete(m.clearedFields, event.FieldSourceStage)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *EventMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[event.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *EventMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *EventMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *EventMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.event_id != nil {
		fields = append(fields, event.FieldEventID)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.workflow != nil {
		fields = append(fields, event.FieldWorkflowID)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.source_stage != nil {
		fields = append(fields, event.FieldSourceStage)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEventID:
		return m.EventID()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldWorkflowID:
		return m.WorkflowID()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldSourceStage:
		return m.SourceStage()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldEventID:
		return m.OldEventID(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldSourceStage:
		return m.OldSourceStage(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldSourceStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceStage(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldSourceStage) {
		fields = append(fields, event.FieldSourceStage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldSourceStage:
		m.ClearSourceStage()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldEventID:
		m.ResetEventID()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldSourceStage:
		m.ResetSourceStage()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, event.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, event.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// TemplateMutation represents an operation that mutates the Template nodes in the graph.
type TemplateMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	contract_type *string
	source_code   *string
	description   *string
	tags          *[]string
	appendtags    []string
	active        *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Template, error)
	predicates    []predicate.Template
}

var _ ent.Mutation = (*TemplateMutation)(nil)

// templateOption allows management of the mutation configuration using functional options.
type templateOption func(*TemplateMutation)

// newTemplateMutation creates new mutation for the Template entity.
func newTemplateMutation(c config, op Op, opts ...templateOption) *TemplateMutation {
	m := &TemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTemplateID sets the ID field of the mutation.
func withTemplateID(id string) templateOption {
	return func(m *TemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *Template
		)
		m.oldValue = func(ctx context.Context) (*Template, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Template.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTemplate sets the old Template of the mutation.
func withTemplate(node *Template) templateOption {
	return func(m *TemplateMutation) {
		m.oldValue = func(context.Context) (*Template, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Template entities.
func (m *TemplateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TemplateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TemplateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Template.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TemplateMutation) ResetName() {
	m.name = nil
}

// SetContractType sets the "contract_type" field.
func (m *TemplateMutation) SetContractType(s string) {
	m.contract_type = &s
}

// ContractType returns the value of the "contract_type" field in the mutation.
func (m *TemplateMutation) ContractType() (r string, exists bool) {
	v := m.contract_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContractType returns the old "contract_type" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldContractType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractType: %w", err)
	}
	return oldValue.ContractType, nil
}

// ResetContractType resets all changes to the "contract_type" field.
func (m *TemplateMutation) ResetContractType() {
	m.contract_type = nil
}

// SetSourceCode sets the "source_code" field.
func (m *TemplateMutation) SetSourceCode(s string) {
	m.source_code = &s
}

// SourceCode returns the value of the "source_code" field in the mutation.
func (m *TemplateMutation) SourceCode() (r string, exists bool) {
	v := m.source_code
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceCode returns the old "source_code" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldSourceCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceCode: %w", err)
	}
	return oldValue.SourceCode, nil
}

// ResetSourceCode resets all changes to the "source_code" field.
func (m *TemplateMutation) ResetSourceCode() {
	m.source_code = nil
}

// SetDescription sets the "description" field.
func (m *TemplateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TemplateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TemplateMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[template.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TemplateMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[template.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TemplateMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, template.FieldDescription)
}

// SetTags sets the "tags" field.
func (m *TemplateMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *TemplateMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *TemplateMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *TemplateMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *TemplateMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[template.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *TemplateMutation) TagsCleared() bool {
	_, ok := m.clearedFields[template.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *TemplateMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, template.FieldTags)
}

// SetActive sets the "active" field.
func (m *TemplateMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *TemplateMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *TemplateMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TemplateMutation builder.
func (m *TemplateMutation) Where(ps ...predicate.Template) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Template, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Template).
func (m *TemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TemplateMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, template.FieldName)
	}
	if m.contract_type != nil {
		fields = append(fields, template.FieldContractType)
	}
	if m.source_code != nil {
		fields = append(fields, template.FieldSourceCode)
	}
	if m.description != nil {
		fields = append(fields, template.FieldDescription)
	}
	if m.tags != nil {
		fields = append(fields, template.FieldTags)
	}
	if m.active != nil {
		fields = append(fields, template.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, template.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case template.FieldName:
		return m.Name()
	case template.FieldContractType:
		return m.ContractType()
	case template.FieldSourceCode:
		return m.SourceCode()
	case template.FieldDescription:
		return m.Description()
	case template.FieldTags:
		return m.Tags()
	case template.FieldActive:
		return m.Active()
	case template.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case template.FieldName:
		return m.OldName(ctx)
	case template.FieldContractType:
		return m.OldContractType(ctx)
	case template.FieldSourceCode:
		return m.OldSourceCode(ctx)
	case template.FieldDescription:
		return m.OldDescription(ctx)
	case template.FieldTags:
		return m.OldTags(ctx)
	case template.FieldActive:
		return m.OldActive(ctx)
	case template.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Template field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case template.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case template.FieldContractType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractType(v)
		return nil
	case template.FieldSourceCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceCode(v)
		return nil
	case template.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case template.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case template.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case template.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Template field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Template numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(template.FieldDescription) {
		fields = append(fields, template.FieldDescription)
	}
	if m.FieldCleared(template.FieldTags) {
		fields = append(fields, template.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TemplateMutation) ClearField(name string) error {
	switch name {
	case template.FieldDescription:
		m.ClearDescription()
		return nil
	case template.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown Template nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TemplateMutation) ResetField(name string) error {
	switch name {
	case template.FieldName:
		m.ResetName()
		return nil
	case template.FieldContractType:
		m.ResetContractType()
		return nil
	case template.FieldSourceCode:
		m.ResetSourceCode()
		return nil
	case template.FieldDescription:
		m.ResetDescription()
		return nil
	case template.FieldTags:
		m.ResetTags()
		return nil
	case template.FieldActive:
		m.ResetActive()
		return nil
	case template.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Template field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Template unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Template edge %s", name)
}

// WorkflowMutation represents an operation that mutates the Workflow nodes in the graph.
type WorkflowMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	owner                  *string
	nlp_description        *string
	contract_type          *string
	status                 *workflow.Status
	progress               *int
	addprogress            *int
	network                *string
	metisvm_enabled        *bool
	floating_point_enabled *bool
	ai_inference_enabled   *bool
	eigenda_enabled        *bool
	pef_batch_enabled      *bool
	audit_level            *string
	skip_audit             *bool
	skip_testing           *bool
	gas_limit              *uint64
	addgas_limit           *int64
	warnings               *[]string
	appendwarnings         []string
	error_message          *string
	cancel_requested       *bool
	pod_id                 *string
	created_at             *time.Time
	updated_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	last_interaction_at    *time.Time
	clearedFields          map[string]struct{}
	contracts              map[string]struct{}
	removedcontracts       map[string]struct{}
	clearedcontracts       bool
	events                 map[int64]struct{}
	removedevents          map[int64]struct{}
	clearedevents          bool
	done                   bool
	oldValue               func(context.Context) (*Workflow, error)
	predicates             []predicate.Workflow
}

var _ ent.Mutation = (*WorkflowMutation)(nil)

// workflowOption allows management of the mutation configuration using functional options.
type workflowOption func(*WorkflowMutation)

// newWorkflowMutation creates new mutation for the Workflow entity.
func newWorkflowMutation(c config, op Op, opts ...workflowOption) *WorkflowMutation {
	m := &WorkflowMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowID sets the ID field of the mutation.
func withWorkflowID(id string) workflowOption {
	return func(m *WorkflowMutation) {
		var (
			err   error
			once  sync.Once
			value *Workflow
		)
		m.oldValue = func(ctx context.Context) (*Workflow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workflow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflow sets the old Workflow of the mutation.
func withWorkflow(node *Workflow) workflowOption {
	return func(m *WorkflowMutation) {
		m.oldValue = func(context.Context) (*Workflow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workflow entities.
func (m *WorkflowMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workflow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwner sets the "owner" field.
func (m *WorkflowMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *WorkflowMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ClearOwner clears the value of the "owner" field.
func (m *WorkflowMutation) ClearOwner() {
	m.owner = nil
	m.clearedFields[workflow.FieldOwner] = struct{}{}
}

// OwnerCleared returns if the "owner" field was cleared in this mutation.
func (m *WorkflowMutation) OwnerCleared() bool {
	_, ok := m.clearedFields[workflow.FieldOwner]
	return ok
}

// ResetOwner resets all changes to the "owner" field.
func (m *WorkflowMutation) ResetOwner() {
	m.owner = nil
	delete(m.clearedFields, workflow.FieldOwner)
}

// SetNlpDescription sets the "nlp_description" field.
func (m *WorkflowMutation) SetNlpDescription(s string) {
	m.nlp_description = &s
}

// NlpDescription returns the value of the "nlp_description" field in the mutation.
func (m *WorkflowMutation) NlpDescription() (r string, exists bool) {
	v := m.nlp_description
	if v == nil {
		return
	}
	return *v, true
}

// OldNlpDescription returns the old "nlp_description" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldNlpDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNlpDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNlpDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNlpDescription: %w", err)
	}
	return oldValue.NlpDescription, nil
}

// ResetNlpDescription resets all changes to the "nlp_description" field.
func (m *WorkflowMutation) ResetNlpDescription() {
	m.nlp_description = nil
}

// SetContractType sets the "contract_type" field.
func (m *WorkflowMutation) SetContractType(s string) {
	m.contract_type = &s
}

// ContractType returns the value of the "contract_type" field in the mutation.
func (m *WorkflowMutation) ContractType() (r string, exists bool) {
	v := m.contract_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContractType returns the old "contract_type" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldContractType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractType: %w", err)
	}
	return oldValue.ContractType, nil
}

// ResetContractType resets all changes to the "contract_type" field.
func (m *WorkflowMutation) ResetContractType() {
	m.contract_type = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowMutation) SetStatus(w workflow.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowMutation) Status() (r workflow.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldStatus(ctx context.Context) (v workflow.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *WorkflowMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *WorkflowMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *WorkflowMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *WorkflowMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *WorkflowMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetNetwork sets the "network" field.
func (m *WorkflowMutation) SetNetwork(s string) {
	m.network = &s
}

// Network returns the value of the "network" field in the mutation.
func (m *WorkflowMutation) Network() (r string, exists bool) {
	v := m.network
	if v == nil {
		return
	}
	return *v, true
}

// OldNetwork returns the old "network" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldNetwork(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetwork is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetwork requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetwork: %w", err)
	}
	return oldValue.Network, nil
}

// ResetNetwork resets all changes to the "network" field.
func (m *WorkflowMutation) ResetNetwork() {
	m.network = nil
}

// SetMetisvmEnabled sets the "metisvm_enabled" field.
func (m *WorkflowMutation) SetMetisvmEnabled(b bool) {
	m.metisvm_enabled = &b
}

// MetisvmEnabled returns the value of the "metisvm_enabled" field in the mutation.
func (m *WorkflowMutation) MetisvmEnabled() (r bool, exists bool) {
	v := m.metisvm_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldMetisvmEnabled returns the old "metisvm_enabled" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldMetisvmEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetisvmEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetisvmEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetisvmEnabled: %w", err)
	}
	return oldValue.MetisvmEnabled, nil
}

// ResetMetisvmEnabled resets all changes to the "metisvm_enabled" field.
func (m *WorkflowMutation) ResetMetisvmEnabled() {
	m.metisvm_enabled = nil
}

// SetFloatingPointEnabled sets the "floating_point_enabled" field.
func (m *WorkflowMutation) SetFloatingPointEnabled(b bool) {
	m.floating_point_enabled = &b
}

// FloatingPointEnabled returns the value of the "floating_point_enabled" field in the mutation.
func (m *WorkflowMutation) FloatingPointEnabled() (r bool, exists bool) {
	v := m.floating_point_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldFloatingPointEnabled returns the old "floating_point_enabled" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldFloatingPointEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFloatingPointEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFloatingPointEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFloatingPointEnabled: %w", err)
	}
	return oldValue.FloatingPointEnabled, nil
}

// ResetFloatingPointEnabled resets all changes to the "floating_point_enabled" field.
func (m *WorkflowMutation) ResetFloatingPointEnabled() {
	m.floating_point_enabled = nil
}

// SetAiInferenceEnabled sets the "ai_inference_enabled" field.
func (m *WorkflowMutation) SetAiInferenceEnabled(b bool) {
	m.ai_inference_enabled = &b
}

// AiInferenceEnabled returns the value of the "ai_inference_enabled" field in the mutation.
func (m *WorkflowMutation) AiInferenceEnabled() (r bool, exists bool) {
	v := m.ai_inference_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldAiInferenceEnabled returns the old "ai_inference_enabled" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldAiInferenceEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiInferenceEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiInferenceEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiInferenceEnabled: %w", err)
	}
	return oldValue.AiInferenceEnabled, nil
}

// ResetAiInferenceEnabled resets all changes to the "ai_inference_enabled" field.
func (m *WorkflowMutation) ResetAiInferenceEnabled() {
	m.ai_inference_enabled = nil
}

// SetEigendaEnabled sets the "eigenda_enabled" field.
func (m *WorkflowMutation) SetEigendaEnabled(b bool) {
	m.eigenda_enabled = &b
}

// EigendaEnabled returns the value of the "eigenda_enabled" field in the mutation.
func (m *WorkflowMutation) EigendaEnabled() (r bool, exists bool) {
	v := m.eigenda_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEigendaEnabled returns the old "eigenda_enabled" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldEigendaEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEigendaEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEigendaEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEigendaEnabled: %w", err)
	}
	return oldValue.EigendaEnabled, nil
}

// ResetEigendaEnabled resets all changes to the "eigenda_enabled" field.
func (m *WorkflowMutation) ResetEigendaEnabled() {
	m.eigenda_enabled = nil
}

// SetPefBatchEnabled sets the "pef_batch_enabled" field.
func (m *WorkflowMutation) SetPefBatchEnabled(b bool) {
	m.pef_batch_enabled = &b
}

// PefBatchEnabled returns the value of the "pef_batch_enabled" field in the mutation.
func (m *WorkflowMutation) PefBatchEnabled() (r bool, exists bool) {
	v := m.pef_batch_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldPefBatchEnabled returns the old "pef_batch_enabled" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldPefBatchEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPefBatchEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPefBatchEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPefBatchEnabled: %w", err)
	}
	return oldValue.PefBatchEnabled, nil
}

// ResetPefBatchEnabled resets all changes to the "pef_batch_enabled" field.
func (m *WorkflowMutation) ResetPefBatchEnabled() {
	m.pef_batch_enabled = nil
}

// SetAuditLevel sets the "audit_level" field.
func (m *WorkflowMutation) SetAuditLevel(s string) {
	m.audit_level = &s
}

// AuditLevel returns the value of the "audit_level" field in the mutation.
func (m *WorkflowMutation) AuditLevel() (r string, exists bool) {
	v := m.audit_level
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditLevel returns the old "audit_level" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldAuditLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditLevel: %w", err)
	}
	return oldValue.AuditLevel, nil
}

// ResetAuditLevel resets all changes to the "audit_level" field.
func (m *WorkflowMutation) ResetAuditLevel() {
	m.audit_level = nil
}

// SetSkipAudit sets the "skip_audit" field.
func (m *WorkflowMutation) SetSkipAudit(b bool) {
	m.skip_audit = &b
}

// SkipAudit returns the value of the "skip_audit" field in the mutation.
func (m *WorkflowMutation) SkipAudit() (r bool, exists bool) {
	v := m.skip_audit
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipAudit returns the old "skip_audit" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldSkipAudit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipAudit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipAudit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipAudit: %w", err)
	}
	return oldValue.SkipAudit, nil
}

// ResetSkipAudit resets all changes to the "skip_audit" field.
func (m *WorkflowMutation) ResetSkipAudit() {
	m.skip_audit = nil
}

// SetSkipTesting sets the "skip_testing" field.
func (m *WorkflowMutation) SetSkipTesting(b bool) {
	m.skip_testing = &b
}

// SkipTesting returns the value of the "skip_testing" field in the mutation.
func (m *WorkflowMutation) SkipTesting() (r bool, exists bool) {
	v := m.skip_testing
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipTesting returns the old "skip_testing" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldSkipTesting(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipTesting is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipTesting requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipTesting: %w", err)
	}
	return oldValue.SkipTesting, nil
}

// ResetSkipTesting resets all changes to the "skip_testing" field.
func (m *WorkflowMutation) ResetSkipTesting() {
	m.skip_testing = nil
}

// SetGasLimit sets the "gas_limit" field.
func (m *WorkflowMutation) SetGasLimit(u uint64) {
	m.gas_limit = &u
	m.addgas_limit = nil
}

// GasLimit returns the value of the "gas_limit" field in the mutation.
func (m *WorkflowMutation) GasLimit() (r uint64, exists bool) {
	v := m.gas_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldGasLimit returns the old "gas_limit" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldGasLimit(ctx context.Context) (v uint64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGasLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGasLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGasLimit: %w", err)
	}
	return oldValue.GasLimit, nil
}

// AddGasLimit adds u to the "gas_limit" field.
func (m *WorkflowMutation) AddGasLimit(u int64) {
	if m.addgas_limit != nil {
		*m.addgas_limit += u
	} else {
		m.addgas_limit = &u
	}
}

// AddedGasLimit returns the value that was added to the "gas_limit" field in this mutation.
func (m *WorkflowMutation) AddedGasLimit() (r int64, exists bool) {
	v := m.addgas_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetGasLimit resets all changes to the "gas_limit" field.
func (m *WorkflowMutation) ResetGasLimit() {
	m.gas_limit = nil
	m.addgas_limit = nil
}

// SetWarnings sets the "warnings" field.
func (m *WorkflowMutation) SetWarnings(s []string) {
	m.warnings = &s
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *WorkflowMutation) Warnings() (r []string, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds s to the "warnings" field.
func (m *WorkflowMutation) AppendWarnings(s []string) {
	m.appendwarnings = append(m.appendwarnings, s...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *WorkflowMutation) AppendedWarnings() ([]string, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *WorkflowMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[workflow.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *WorkflowMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[workflow.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *WorkflowMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, workflow.FieldWarnings)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflow.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflow.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflow.FieldErrorMessage)
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *WorkflowMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *WorkflowMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *WorkflowMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetPodID sets the "pod_id" field.
func (m *WorkflowMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *WorkflowMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *WorkflowMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[workflow.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *WorkflowMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[workflow.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *WorkflowMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, workflow.FieldPodID)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WorkflowMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[workflow.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WorkflowMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, workflow.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflow.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflow.FieldCompletedAt)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *WorkflowMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *WorkflowMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *WorkflowMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[workflow.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *WorkflowMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *WorkflowMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, workflow.FieldLastInteractionAt)
}

// AddContractIDs adds the "contracts" edge to the Contract entity by ids.
func (m *WorkflowMutation) AddContractIDs(ids ...string) {
	if m.contracts == nil {
		m.contracts = make(map[string]struct{})
	}
	for i := range ids {
		m.contracts[ids[i]] = struct{}{}
	}
}

// ClearContracts clears the "contracts" edge to the Contract entity.
func (m *WorkflowMutation) ClearContracts() {
	m.clearedcontracts = true
}

// ContractsCleared reports if the "contracts" edge to the Contract entity was cleared.
func (m *WorkflowMutation) ContractsCleared() bool {
	return m.clearedcontracts
}

// RemoveContractIDs removes the "contracts" edge to the Contract entity by IDs.
func (m *WorkflowMutation) RemoveContractIDs(ids ...string) {
	if m.removedcontracts == nil {
		m.removedcontracts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.contracts, ids[i])
		m.removedcontracts[ids[i]] = struct{}{}
	}
}

// RemovedContracts returns the removed IDs of the "contracts" edge to the Contract entity.
func (m *WorkflowMutation) RemovedContractsIDs() (ids []string) {
	for id := range m.removedcontracts {
		ids = append(ids, id)
	}
	return
}

// ContractsIDs returns the "contracts" edge IDs in the mutation.
func (m *WorkflowMutation) ContractsIDs() (ids []string) {
	for id := range m.contracts {
		ids = append(ids, id)
	}
	return
}

// ResetContracts resets all changes to the "contracts" edge.
func (m *WorkflowMutation) ResetContracts() {
	m.contracts = nil
	m.clearedcontracts = false
	m.removedcontracts = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *WorkflowMutation) AddEventIDs(ids ...int64) {
	if m.events == nil {
		m.events = make(map[int64]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *WorkflowMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *WorkflowMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *WorkflowMutation) RemoveEventIDs(ids ...int64) {
	if m.removedevents == nil {
		m.removedevents = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *WorkflowMutation) RemovedEventsIDs() (ids []int64) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *WorkflowMutation) EventsIDs() (ids []int64) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *WorkflowMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the WorkflowMutation builder.
func (m *WorkflowMutation) Where(ps ...predicate.Workflow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workflow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workflow).
func (m *WorkflowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.owner != nil {
		fields = append(fields, workflow.FieldOwner)
	}
	if m.nlp_description != nil {
		fields = append(fields, workflow.FieldNlpDescription)
	}
	if m.contract_type != nil {
		fields = append(fields, workflow.FieldContractType)
	}
	if m.status != nil {
		fields = append(fields, workflow.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, workflow.FieldProgress)
	}
	if m.network != nil {
		fields = append(fields, workflow.FieldNetwork)
	}
	if m.metisvm_enabled != nil {
		fields = append(fields, workflow.FieldMetisvmEnabled)
	}
	if m.floating_point_enabled != nil {
		fields = append(fields, workflow.FieldFloatingPointEnabled)
	}
	if m.ai_inference_enabled != nil {
		fields = append(fields, workflow.FieldAiInferenceEnabled)
	}
	if m.eigenda_enabled != nil {
		fields = append(fields, workflow.FieldEigendaEnabled)
	}
	if m.pef_batch_enabled != nil {
		fields = append(fields, workflow.FieldPefBatchEnabled)
	}
	if m.audit_level != nil {
		fields = append(fields, workflow.FieldAuditLevel)
	}
	if m.skip_audit != nil {
		fields = append(fields, workflow.FieldSkipAudit)
	}
	if m.skip_testing != nil {
		fields = append(fields, workflow.FieldSkipTesting)
	}
	if m.gas_limit != nil {
		fields = append(fields, workflow.FieldGasLimit)
	}
	if m.warnings != nil {
		fields = append(fields, workflow.FieldWarnings)
	}
	if m.error_message != nil {
		fields = append(fields, workflow.FieldErrorMessage)
	}
	if m.cancel_requested != nil {
		fields = append(fields, workflow.FieldCancelRequested)
	}
	if m.pod_id != nil {
		fields = append(fields, workflow.FieldPodID)
	}
	if m.created_at != nil {
		fields = append(fields, workflow.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflow.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, workflow.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflow.FieldCompletedAt)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, workflow.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldOwner:
		return m.Owner()
	case workflow.FieldNlpDescription:
		return m.NlpDescription()
	case workflow.FieldContractType:
		return m.ContractType()
	case workflow.FieldStatus:
		return m.Status()
	case workflow.FieldProgress:
		return m.Progress()
	case workflow.FieldNetwork:
		return m.Network()
	case workflow.FieldMetisvmEnabled:
		return m.MetisvmEnabled()
	case workflow.FieldFloatingPointEnabled:
		return m.FloatingPointEnabled()
	case workflow.FieldAiInferenceEnabled:
		return m.AiInferenceEnabled()
	case workflow.FieldEigendaEnabled:
		return m.EigendaEnabled()
	case workflow.FieldPefBatchEnabled:
		return m.PefBatchEnabled()
	case workflow.FieldAuditLevel:
		return m.AuditLevel()
	case workflow.FieldSkipAudit:
		return m.SkipAudit()
	case workflow.FieldSkipTesting:
		return m.SkipTesting()
	case workflow.FieldGasLimit:
		return m.GasLimit()
	case workflow.FieldWarnings:
		return m.Warnings()
	case workflow.FieldErrorMessage:
		return m.ErrorMessage()
	case workflow.FieldCancelRequested:
		return m.CancelRequested()
	case workflow.FieldPodID:
		return m.PodID()
	case workflow.FieldCreatedAt:
		return m.CreatedAt()
	case workflow.FieldUpdatedAt:
		return m.UpdatedAt()
	case workflow.FieldStartedAt:
		return m.StartedAt()
	case workflow.FieldCompletedAt:
		return m.CompletedAt()
	case workflow.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflow.FieldOwner:
		return m.OldOwner(ctx)
	case workflow.FieldNlpDescription:
		return m.OldNlpDescription(ctx)
	case workflow.FieldContractType:
		return m.OldContractType(ctx)
	case workflow.FieldStatus:
		return m.OldStatus(ctx)
	case workflow.FieldProgress:
		return m.OldProgress(ctx)
	case workflow.FieldNetwork:
		return m.OldNetwork(ctx)
	case workflow.FieldMetisvmEnabled:
		return m.OldMetisvmEnabled(ctx)
	case workflow.FieldFloatingPointEnabled:
		return m.OldFloatingPointEnabled(ctx)
	case workflow.FieldAiInferenceEnabled:
		return m.OldAiInferenceEnabled(ctx)
	case workflow.FieldEigendaEnabled:
		return m.OldEigendaEnabled(ctx)
	case workflow.FieldPefBatchEnabled:
		return m.OldPefBatchEnabled(ctx)
	case workflow.FieldAuditLevel:
		return m.OldAuditLevel(ctx)
	case workflow.FieldSkipAudit:
		return m.OldSkipAudit(ctx)
	case workflow.FieldSkipTesting:
		return m.OldSkipTesting(ctx)
	case workflow.FieldGasLimit:
		return m.OldGasLimit(ctx)
	case workflow.FieldWarnings:
		return m.OldWarnings(ctx)
	case workflow.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflow.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case workflow.FieldPodID:
		return m.OldPodID(ctx)
	case workflow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflow.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case workflow.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflow.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case workflow.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workflow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case workflow.FieldNlpDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNlpDescription(v)
		return nil
	case workflow.FieldContractType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractType(v)
		return nil
	case workflow.FieldStatus:
		v, ok := value.(workflow.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflow.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case workflow.FieldNetwork:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetwork(v)
		return nil
	case workflow.FieldMetisvmEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetisvmEnabled(v)
		return nil
	case workflow.FieldFloatingPointEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFloatingPointEnabled(v)
		return nil
	case workflow.FieldAiInferenceEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiInferenceEnabled(v)
		return nil
	case workflow.FieldEigendaEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEigendaEnabled(v)
		return nil
	case workflow.FieldPefBatchEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPefBatchEnabled(v)
		return nil
	case workflow.FieldAuditLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditLevel(v)
		return nil
	case workflow.FieldSkipAudit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipAudit(v)
		return nil
	case workflow.FieldSkipTesting:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipTesting(v)
		return nil
	case workflow.FieldGasLimit:
		v, ok := value.(uint64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGasLimit(v)
		return nil
	case workflow.FieldWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case workflow.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflow.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case workflow.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case workflow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflow.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case workflow.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflow.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case workflow.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, workflow.FieldProgress)
	}
	if m.addgas_limit != nil {
		fields = append(fields, workflow.FieldGasLimit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldProgress:
		return m.AddedProgress()
	case workflow.FieldGasLimit:
		return m.AddedGasLimit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case workflow.FieldGasLimit:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGasLimit(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflow.FieldOwner) {
		fields = append(fields, workflow.FieldOwner)
	}
	if m.FieldCleared(workflow.FieldWarnings) {
		fields = append(fields, workflow.FieldWarnings)
	}
	if m.FieldCleared(workflow.FieldErrorMessage) {
		fields = append(fields, workflow.FieldErrorMessage)
	}
	if m.FieldCleared(workflow.FieldPodID) {
		fields = append(fields, workflow.FieldPodID)
	}
	if m.FieldCleared(workflow.FieldStartedAt) {
		fields = append(fields, workflow.FieldStartedAt)
	}
	if m.FieldCleared(workflow.FieldCompletedAt) {
		fields = append(fields, workflow.FieldCompletedAt)
	}
	if m.FieldCleared(workflow.FieldLastInteractionAt) {
		fields = append(fields, workflow.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowMutation) ClearField(name string) error {
	switch name {
	case workflow.FieldOwner:
		m.ClearOwner()
		return nil
	case workflow.FieldWarnings:
		m.ClearWarnings()
		return nil
	case workflow.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflow.FieldPodID:
		m.ClearPodID()
		return nil
	case workflow.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case workflow.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case workflow.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowMutation) ResetField(name string) error {
	switch name {
	case workflow.FieldOwner:
		m.ResetOwner()
		return nil
	case workflow.FieldNlpDescription:
		m.ResetNlpDescription()
		return nil
	case workflow.FieldContractType:
		m.ResetContractType()
		return nil
	case workflow.FieldStatus:
		m.ResetStatus()
		return nil
	case workflow.FieldProgress:
		m.ResetProgress()
		return nil
	case workflow.FieldNetwork:
		m.ResetNetwork()
		return nil
	case workflow.FieldMetisvmEnabled:
		m.ResetMetisvmEnabled()
		return nil
	case workflow.FieldFloatingPointEnabled:
		m.ResetFloatingPointEnabled()
		return nil
	case workflow.FieldAiInferenceEnabled:
		m.ResetAiInferenceEnabled()
		return nil
	case workflow.FieldEigendaEnabled:
		m.ResetEigendaEnabled()
		return nil
	case workflow.FieldPefBatchEnabled:
		m.ResetPefBatchEnabled()
		return nil
	case workflow.FieldAuditLevel:
		m.ResetAuditLevel()
		return nil
	case workflow.FieldSkipAudit:
		m.ResetSkipAudit()
		return nil
	case workflow.FieldSkipTesting:
		m.ResetSkipTesting()
		return nil
	case workflow.FieldGasLimit:
		m.ResetGasLimit()
		return nil
	case workflow.FieldWarnings:
		m.ResetWarnings()
		return nil
	case workflow.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflow.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case workflow.FieldPodID:
		m.ResetPodID()
		return nil
	case workflow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflow.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case workflow.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflow.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case workflow.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.contracts != nil {
		edges = append(edges, workflow.EdgeContracts)
	}
	if m.events != nil {
		edges = append(edges, workflow.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeContracts:
		ids := make([]ent.Value, 0, len(m.contracts))
		for id := range m.contracts {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcontracts != nil {
		edges = append(edges, workflow.EdgeContracts)
	}
	if m.removedevents != nil {
		edges = append(edges, workflow.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeContracts:
		ids := make([]ent.Value, 0, len(m.removedcontracts))
		for id := range m.removedcontracts {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcontracts {
		edges = append(edges, workflow.EdgeContracts)
	}
	if m.clearedevents {
		edges = append(edges, workflow.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowMutation) EdgeCleared(name string) bool {
	switch name {
	case workflow.EdgeContracts:
		return m.clearedcontracts
	case workflow.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Workflow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowMutation) ResetEdge(name string) error {
	switch name {
	case workflow.EdgeContracts:
		m.ResetContracts()
		return nil
	case workflow.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Workflow edge %s", name)
}
