// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chainforge-ai/chainforge/ent/auditrecord"
	"github.com/chainforge-ai/chainforge/ent/contract"
)

// AuditRecordCreate is the builder for creating a AuditRecord entity.
type AuditRecordCreate struct {
	config
	mutation *AuditRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetContractID sets the "contract_id" field.
func (_c *AuditRecordCreate) SetContractID(v string) *AuditRecordCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetAuditLevel sets the "audit_level" field.
func (_c *AuditRecordCreate) SetAuditLevel(v string) *AuditRecordCreate {
	_c.mutation.SetAuditLevel(v)
	return _c
}

// SetNillableAuditLevel sets the "audit_level" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableAuditLevel(v *string) *AuditRecordCreate {
	if v != nil {
		_c.SetAuditLevel(*v)
	}
	return _c
}

// SetFindings sets the "findings" field.
func (_c *AuditRecordCreate) SetFindings(v []map[string]interface{}) *AuditRecordCreate {
	_c.mutation.SetFindings(v)
	return _c
}

// SetCriticalCount sets the "critical_count" field.
func (_c *AuditRecordCreate) SetCriticalCount(v int) *AuditRecordCreate {
	_c.mutation.SetCriticalCount(v)
	return _c
}

// SetNillableCriticalCount sets the "critical_count" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableCriticalCount(v *int) *AuditRecordCreate {
	if v != nil {
		_c.SetCriticalCount(*v)
	}
	return _c
}

// SetHighCount sets the "high_count" field.
func (_c *AuditRecordCreate) SetHighCount(v int) *AuditRecordCreate {
	_c.mutation.SetHighCount(v)
	return _c
}

// SetNillableHighCount sets the "high_count" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableHighCount(v *int) *AuditRecordCreate {
	if v != nil {
		_c.SetHighCount(*v)
	}
	return _c
}

// SetMediumCount sets the "medium_count" field.
func (_c *AuditRecordCreate) SetMediumCount(v int) *AuditRecordCreate {
	_c.mutation.SetMediumCount(v)
	return _c
}

// SetNillableMediumCount sets the "medium_count" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableMediumCount(v *int) *AuditRecordCreate {
	if v != nil {
		_c.SetMediumCount(*v)
	}
	return _c
}

// SetLowCount sets the "low_count" field.
func (_c *AuditRecordCreate) SetLowCount(v int) *AuditRecordCreate {
	_c.mutation.SetLowCount(v)
	return _c
}

// SetNillableLowCount sets the "low_count" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableLowCount(v *int) *AuditRecordCreate {
	if v != nil {
		_c.SetLowCount(*v)
	}
	return _c
}

// SetInfoCount sets the "info_count" field.
func (_c *AuditRecordCreate) SetInfoCount(v int) *AuditRecordCreate {
	_c.mutation.SetInfoCount(v)
	return _c
}

// SetNillableInfoCount sets the "info_count" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableInfoCount(v *int) *AuditRecordCreate {
	if v != nil {
		_c.SetInfoCount(*v)
	}
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *AuditRecordCreate) SetRiskScore(v int) *AuditRecordCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableRiskScore(v *int) *AuditRecordCreate {
	if v != nil {
		_c.SetRiskScore(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AuditRecordCreate) SetStatus(v auditrecord.Status) *AuditRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetToolsRun sets the "tools_run" field.
func (_c *AuditRecordCreate) SetToolsRun(v []string) *AuditRecordCreate {
	_c.mutation.SetToolsRun(v)
	return _c
}

// SetToolErrors sets the "tool_errors" field.
func (_c *AuditRecordCreate) SetToolErrors(v map[string]string) *AuditRecordCreate {
	_c.mutation.SetToolErrors(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditRecordCreate) SetCreatedAt(v time.Time) *AuditRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableCreatedAt(v *time.Time) *AuditRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditRecordCreate) SetID(v string) *AuditRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *AuditRecordCreate) SetContract(v *Contract) *AuditRecordCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the AuditRecordMutation object of the builder.
func (_c *AuditRecordCreate) Mutation() *AuditRecordMutation {
	return _c.mutation
}

// Save creates the AuditRecord in the database.
func (_c *AuditRecordCreate) Save(ctx context.Context) (*AuditRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditRecordCreate) SaveX(ctx context.Context) *AuditRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditRecordCreate) defaults() {
	if _, ok := _c.mutation.AuditLevel(); !ok {
		v := auditrecord.DefaultAuditLevel
		_c.mutation.SetAuditLevel(v)
	}
	if _, ok := _c.mutation.CriticalCount(); !ok {
		v := auditrecord.DefaultCriticalCount
		_c.mutation.SetCriticalCount(v)
	}
	if _, ok := _c.mutation.HighCount(); !ok {
		v := auditrecord.DefaultHighCount
		_c.mutation.SetHighCount(v)
	}
	if _, ok := _c.mutation.MediumCount(); !ok {
		v := auditrecord.DefaultMediumCount
		_c.mutation.SetMediumCount(v)
	}
	if _, ok := _c.mutation.LowCount(); !ok {
		v := auditrecord.DefaultLowCount
		_c.mutation.SetLowCount(v)
	}
	if _, ok := _c.mutation.InfoCount(); !ok {
		v := auditrecord.DefaultInfoCount
		_c.mutation.SetInfoCount(v)
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		v := auditrecord.DefaultRiskScore
		_c.mutation.SetRiskScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditRecordCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "AuditRecord.contract_id"`)}
	}
	if _, ok := _c.mutation.AuditLevel(); !ok {
		return &ValidationError{Name: "audit_level", err: errors.New(`ent: missing required field "AuditRecord.audit_level"`)}
	}
	if _, ok := _c.mutation.CriticalCount(); !ok {
		return &ValidationError{Name: "critical_count", err: errors.New(`ent: missing required field "AuditRecord.critical_count"`)}
	}
	if _, ok := _c.mutation.HighCount(); !ok {
		return &ValidationError{Name: "high_count", err: errors.New(`ent: missing required field "AuditRecord.high_count"`)}
	}
	if _, ok := _c.mutation.MediumCount(); !ok {
		return &ValidationError{Name: "medium_count", err: errors.New(`ent: missing required field "AuditRecord.medium_count"`)}
	}
	if _, ok := _c.mutation.LowCount(); !ok {
		return &ValidationError{Name: "low_count", err: errors.New(`ent: missing required field "AuditRecord.low_count"`)}
	}
	if _, ok := _c.mutation.InfoCount(); !ok {
		return &ValidationError{Name: "info_count", err: errors.New(`ent: missing required field "AuditRecord.info_count"`)}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "AuditRecord.risk_score"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AuditRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := auditrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditRecord.created_at"`)}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "AuditRecord.contract"`)}
	}
	return nil
}

func (_c *AuditRecordCreate) sqlSave(ctx context.Context) (*AuditRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AuditRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditRecordCreate) createSpec() (*AuditRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditrecord.Table, sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AuditLevel(); ok {
		_spec.SetField(auditrecord.FieldAuditLevel, field.TypeString, value)
		_node.AuditLevel = value
	}
	if value, ok := _c.mutation.Findings(); ok {
		_spec.SetField(auditrecord.FieldFindings, field.TypeJSON, value)
		_node.Findings = value
	}
	if value, ok := _c.mutation.CriticalCount(); ok {
		_spec.SetField(auditrecord.FieldCriticalCount, field.TypeInt, value)
		_node.CriticalCount = value
	}
	if value, ok := _c.mutation.HighCount(); ok {
		_spec.SetField(auditrecord.FieldHighCount, field.TypeInt, value)
		_node.HighCount = value
	}
	if value, ok := _c.mutation.MediumCount(); ok {
		_spec.SetField(auditrecord.FieldMediumCount, field.TypeInt, value)
		_node.MediumCount = value
	}
	if value, ok := _c.mutation.LowCount(); ok {
		_spec.SetField(auditrecord.FieldLowCount, field.TypeInt, value)
		_node.LowCount = value
	}
	if value, ok := _c.mutation.InfoCount(); ok {
		_spec.SetField(auditrecord.FieldInfoCount, field.TypeInt, value)
		_node.InfoCount = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(auditrecord.FieldRiskScore, field.TypeInt, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(auditrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ToolsRun(); ok {
		_spec.SetField(auditrecord.FieldToolsRun, field.TypeJSON, value)
		_node.ToolsRun = value
	}
	if value, ok := _c.mutation.ToolErrors(); ok {
		_spec.SetField(auditrecord.FieldToolErrors, field.TypeJSON, value)
		_node.ToolErrors = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditrecord.ContractTable,
			Columns: []string{auditrecord.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContractID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditRecord.Create().
//		SetContractID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditRecordUpsert) {
//			SetContractID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditRecordCreate) OnConflict(opts ...sql.ConflictOption) *AuditRecordUpsertOne {
	_c.conflict = opts
	return &AuditRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditRecordCreate) OnConflictColumns(columns ...string) *AuditRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditRecordUpsertOne{
		create: _c,
	}
}

type (
	// AuditRecordUpsertOne is the builder for "upsert"-ing
	//  one AuditRecord node.
	AuditRecordUpsertOne struct {
		create *AuditRecordCreate
	}

	// AuditRecordUpsert is the "OnConflict" setter.
	AuditRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetAuditLevel sets the "audit_level" field.
func (u *AuditRecordUpsert) SetAuditLevel(v string) *AuditRecordUpsert {
	u.Set(auditrecord.FieldAuditLevel, v)
	return u
}

// UpdateAuditLevel sets the "audit_level" field to the value that was provided on create.
func (u *AuditRecordUpsert) UpdateAuditLevel() *AuditRecordUpsert {
	u.SetExcluded(auditrecord.FieldAuditLevel)
	return u
}

// SetFindings sets the "findings" field.
func (u *AuditRecordUpsert) SetFindings(v []map[string]interface{}) *AuditRecordUpsert {
	u.Set(auditrecord.FieldFindings, v)
	return u
}

// UpdateFindings sets the "findings" field to the value that was provided on create.
func (u *AuditRecordUpsert) UpdateFindings() *AuditRecordUpsert {
	u.SetExcluded(auditrecord.FieldFindings)
	return u
}

// ClearFindings clears the value of the "findings" field.
func (u *AuditRecordUpsert) ClearFindings() *AuditRecordUpsert {
	u.SetNull(auditrecord.FieldFindings)
	return u
}

// SetCriticalCount sets the "critical_count" field.
func (u *AuditRecordUpsert) SetCriticalCount(v int) *AuditRecordUpsert {
	u.Set(auditrecord.FieldCriticalCount, v)
	return u
}

// UpdateCriticalCount sets the "critical_count" field to the value that was provided on create.
func (u *AuditRecordUpsert) UpdateCriticalCount() *AuditRecordUpsert {
	u.SetExcluded(auditrecord.FieldCriticalCount)
	return u
}

// AddCriticalCount adds v to the "critical_count" field.
func (u *AuditRecordUpsert) AddCriticalCount(v int) *AuditRecordUpsert {
	u.Add(auditrecord.FieldCriticalCount, v)
	return u
}

// SetHighCount sets the "high_count" field.
func (u *AuditRecordUpsert) SetHighCount(v int) *AuditRecordUpsert {
	u.Set(auditrecord.FieldHighCount, v)
	return u
}

// UpdateHighCount sets the "high_count" field to the value that was provided on create.
func (u *AuditRecordUpsert) UpdateHighCount() *AuditRecordUpsert {
	u.SetExcluded(auditrecord.FieldHighCount)
	return u
}

// AddHighCount adds v to the "high_count" field.
func (u *AuditRecordUpsert) AddHighCount(v int) *AuditRecordUpsert {
	u.Add(auditrecord.FieldHighCount, v)
	return u
}

// SetMediumCount sets the "medium_count" field.
func (u *AuditRecordUpsert) SetMediumCount(v int) *AuditRecordUpsert {
	u.Set(auditrecord.FieldMediumCount, v)
	return u
}

// UpdateMediumCount sets the "medium_count" field to the value that was provided on create.
func (u *AuditRecordUpsert) UpdateMediumCount() *AuditRecordUpsert {
	u.SetExcluded(auditrecord.FieldMediumCount)
	return u
}

// AddMediumCount adds v to the "medium_count" field.
func (u *AuditRecordUpsert) AddMediumCount(v int) *AuditRecordUpsert {
	u.Add(auditrecord.FieldMediumCount, v)
	return u
}

// SetLowCount sets the "low_count" field.
func (u *AuditRecordUpsert) SetLowCount(v int) *AuditRecordUpsert {
	u.Set(auditrecord.FieldLowCount, v)
	return u
}

// UpdateLowCount sets the "low_count" field to the value that was provided on create.
func (u *AuditRecordUpsert) UpdateLowCount() *AuditRecordUpsert {
	u.SetExcluded(auditrecord.FieldLowCount)
	return u
}

// AddLowCount adds v to the "low_count" field.
func (u *AuditRecordUpsert) AddLowCount(v int) *AuditRecordUpsert {
	u.Add(auditrecord.FieldLowCount, v)
	return u
}

// SetInfoCount sets the "info_count" field.
func (u *AuditRecordUpsert) SetInfoCount(v int) *AuditRecordUpsert {
	u.Set(auditrecord.FieldInfoCount, v)
	return u
}

// UpdateInfoCount sets the "info_count" field to the value that was provided on create.
func (u *AuditRecordUpsert) UpdateInfoCount() *AuditRecordUpsert {
	u.SetExcluded(auditrecord.FieldInfoCount)
	return u
}

// AddInfoCount adds v to the "info_count" field.
func (u *AuditRecordUpsert) AddInfoCount(v int) *AuditRecordUpsert {
	u.Add(auditrecord.FieldInfoCount, v)
	return u
}

// SetRiskScore sets the "risk_score" field.
func (u *AuditRecordUpsert) SetRiskScore(v int) *AuditRecordUpsert {
	u.Set(auditrecord.FieldRiskScore, v)
	return u
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *AuditRecordUpsert) UpdateRiskScore() *AuditRecordUpsert {
	u.SetExcluded(auditrecord.FieldRiskScore)
	return u
}

// AddRiskScore adds v to the "risk_score" field.
func (u *AuditRecordUpsert) AddRiskScore(v int) *AuditRecordUpsert {
	u.Add(auditrecord.FieldRiskScore, v)
	return u
}

// SetStatus sets the "status" field.
func (u *AuditRecordUpsert) SetStatus(v auditrecord.Status) *AuditRecordUpsert {
	u.Set(auditrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AuditRecordUpsert) UpdateStatus() *AuditRecordUpsert {
	u.SetExcluded(auditrecord.FieldStatus)
	return u
}

// SetToolsRun sets the "tools_run" field.
func (u *AuditRecordUpsert) SetToolsRun(v []string) *AuditRecordUpsert {
	u.Set(auditrecord.FieldToolsRun, v)
	return u
}

// UpdateToolsRun sets the "tools_run" field to the value that was provided on create.
func (u *AuditRecordUpsert) UpdateToolsRun() *AuditRecordUpsert {
	u.SetExcluded(auditrecord.FieldToolsRun)
	return u
}

// ClearToolsRun clears the value of the "tools_run" field.
func (u *AuditRecordUpsert) ClearToolsRun() *AuditRecordUpsert {
	u.SetNull(auditrecord.FieldToolsRun)
	return u
}

// SetToolErrors sets the "tool_errors" field.
func (u *AuditRecordUpsert) SetToolErrors(v map[string]string) *AuditRecordUpsert {
	u.Set(auditrecord.FieldToolErrors, v)
	return u
}

// UpdateToolErrors sets the "tool_errors" field to the value that was provided on create.
func (u *AuditRecordUpsert) UpdateToolErrors() *AuditRecordUpsert {
	u.SetExcluded(auditrecord.FieldToolErrors)
	return u
}

// ClearToolErrors clears the value of the "tool_errors" field.
func (u *AuditRecordUpsert) ClearToolErrors() *AuditRecordUpsert {
	u.SetNull(auditrecord.FieldToolErrors)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuditRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditRecordUpsertOne) UpdateNewValues() *AuditRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(auditrecord.FieldID)
		}
		if _, exists := u.create.mutation.ContractID(); exists {
			s.SetIgnore(auditrecord.FieldContractID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(auditrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditRecordUpsertOne) Ignore() *AuditRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditRecordUpsertOne) DoNothing() *AuditRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditRecordCreate.OnConflict
// documentation for more info.
func (u *AuditRecordUpsertOne) Update(set func(*AuditRecordUpsert)) *AuditRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetAuditLevel sets the "audit_level" field.
func (u *AuditRecordUpsertOne) SetAuditLevel(v string) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetAuditLevel(v)
	})
}

// UpdateAuditLevel sets the "audit_level" field to the value that was provided on create.
func (u *AuditRecordUpsertOne) UpdateAuditLevel() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateAuditLevel()
	})
}

// SetFindings sets the "findings" field.
func (u *AuditRecordUpsertOne) SetFindings(v []map[string]interface{}) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetFindings(v)
	})
}

// UpdateFindings sets the "findings" field to the value that was provided on create.
func (u *AuditRecordUpsertOne) UpdateFindings() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateFindings()
	})
}

// ClearFindings clears the value of the "findings" field.
func (u *AuditRecordUpsertOne) ClearFindings() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.ClearFindings()
	})
}

// SetCriticalCount sets the "critical_count" field.
func (u *AuditRecordUpsertOne) SetCriticalCount(v int) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetCriticalCount(v)
	})
}

// AddCriticalCount adds v to the "critical_count" field.
func (u *AuditRecordUpsertOne) AddCriticalCount(v int) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.AddCriticalCount(v)
	})
}

// UpdateCriticalCount sets the "critical_count" field to the value that was provided on create.
func (u *AuditRecordUpsertOne) UpdateCriticalCount() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateCriticalCount()
	})
}

// SetHighCount sets the "high_count" field.
func (u *AuditRecordUpsertOne) SetHighCount(v int) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetHighCount(v)
	})
}

// AddHighCount adds v to the "high_count" field.
func (u *AuditRecordUpsertOne) AddHighCount(v int) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.AddHighCount(v)
	})
}

// UpdateHighCount sets the "high_count" field to the value that was provided on create.
func (u *AuditRecordUpsertOne) UpdateHighCount() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateHighCount()
	})
}

// SetMediumCount sets the "medium_count" field.
func (u *AuditRecordUpsertOne) SetMediumCount(v int) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetMediumCount(v)
	})
}

// AddMediumCount adds v to the "medium_count" field.
func (u *AuditRecordUpsertOne) AddMediumCount(v int) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.AddMediumCount(v)
	})
}

// UpdateMediumCount sets the "medium_count" field to the value that was provided on create.
func (u *AuditRecordUpsertOne) UpdateMediumCount() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateMediumCount()
	})
}

// SetLowCount sets the "low_count" field.
func (u *AuditRecordUpsertOne) SetLowCount(v int) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetLowCount(v)
	})
}

// AddLowCount adds v to the "low_count" field.
func (u *AuditRecordUpsertOne) AddLowCount(v int) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.AddLowCount(v)
	})
}

// UpdateLowCount sets the "low_count" field to the value that was provided on create.
func (u *AuditRecordUpsertOne) UpdateLowCount() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateLowCount()
	})
}

// SetInfoCount sets the "info_count" field.
func (u *AuditRecordUpsertOne) SetInfoCount(v int) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetInfoCount(v)
	})
}

// AddInfoCount adds v to the "info_count" field.
func (u *AuditRecordUpsertOne) AddInfoCount(v int) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.AddInfoCount(v)
	})
}

// UpdateInfoCount sets the "info_count" field to the value that was provided on create.
func (u *AuditRecordUpsertOne) UpdateInfoCount() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateInfoCount()
	})
}

// SetRiskScore sets the "risk_score" field.
func (u *AuditRecordUpsertOne) SetRiskScore(v int) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetRiskScore(v)
	})
}

// AddRiskScore adds v to the "risk_score" field.
func (u *AuditRecordUpsertOne) AddRiskScore(v int) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.AddRiskScore(v)
	})
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *AuditRecordUpsertOne) UpdateRiskScore() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateRiskScore()
	})
}

// SetStatus sets the "status" field.
func (u *AuditRecordUpsertOne) SetStatus(v auditrecord.Status) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AuditRecordUpsertOne) UpdateStatus() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetToolsRun sets the "tools_run" field.
func (u *AuditRecordUpsertOne) SetToolsRun(v []string) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetToolsRun(v)
	})
}

// UpdateToolsRun sets the "tools_run" field to the value that was provided on create.
func (u *AuditRecordUpsertOne) UpdateToolsRun() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateToolsRun()
	})
}

// ClearToolsRun clears the value of the "tools_run" field.
func (u *AuditRecordUpsertOne) ClearToolsRun() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.ClearToolsRun()
	})
}

// SetToolErrors sets the "tool_errors" field.
func (u *AuditRecordUpsertOne) SetToolErrors(v map[string]string) *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetToolErrors(v)
	})
}

// UpdateToolErrors sets the "tool_errors" field to the value that was provided on create.
func (u *AuditRecordUpsertOne) UpdateToolErrors() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateToolErrors()
	})
}

// ClearToolErrors clears the value of the "tool_errors" field.
func (u *AuditRecordUpsertOne) ClearToolErrors() *AuditRecordUpsertOne {
	return u.Update(func(s *AuditRecordUpsert) {
		s.ClearToolErrors()
	})
}

// Exec executes the query.
func (u *AuditRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditRecordUpsertOne.ID is not supported by MySQL driver. Use AuditRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditRecordCreateBulk is the builder for creating many AuditRecord entities in bulk.
type AuditRecordCreateBulk struct {
	config
	err      error
	builders []*AuditRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the AuditRecord entities in the database.
func (_c *AuditRecordCreateBulk) Save(ctx context.Context) ([]*AuditRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AuditRecordCreateBulk) SaveX(ctx context.Context) []*AuditRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditRecordUpsert) {
//			SetContractID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditRecordUpsertBulk {
	_c.conflict = opts
	return &AuditRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditRecordCreateBulk) OnConflictColumns(columns ...string) *AuditRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditRecordUpsertBulk{
		create: _c,
	}
}

// AuditRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of AuditRecord nodes.
type AuditRecordUpsertBulk struct {
	create *AuditRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuditRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditRecordUpsertBulk) UpdateNewValues() *AuditRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(auditrecord.FieldID)
			}
			if _, exists := b.mutation.ContractID(); exists {
				s.SetIgnore(auditrecord.FieldContractID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(auditrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditRecordUpsertBulk) Ignore() *AuditRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditRecordUpsertBulk) DoNothing() *AuditRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditRecordCreateBulk.OnConflict
// documentation for more info.
func (u *AuditRecordUpsertBulk) Update(set func(*AuditRecordUpsert)) *AuditRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetAuditLevel sets the "audit_level" field.
func (u *AuditRecordUpsertBulk) SetAuditLevel(v string) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetAuditLevel(v)
	})
}

// UpdateAuditLevel sets the "audit_level" field to the value that was provided on create.
func (u *AuditRecordUpsertBulk) UpdateAuditLevel() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateAuditLevel()
	})
}

// SetFindings sets the "findings" field.
func (u *AuditRecordUpsertBulk) SetFindings(v []map[string]interface{}) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetFindings(v)
	})
}

// UpdateFindings sets the "findings" field to the value that was provided on create.
func (u *AuditRecordUpsertBulk) UpdateFindings() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateFindings()
	})
}

// ClearFindings clears the value of the "findings" field.
func (u *AuditRecordUpsertBulk) ClearFindings() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.ClearFindings()
	})
}

// SetCriticalCount sets the "critical_count" field.
func (u *AuditRecordUpsertBulk) SetCriticalCount(v int) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetCriticalCount(v)
	})
}

// AddCriticalCount adds v to the "critical_count" field.
func (u *AuditRecordUpsertBulk) AddCriticalCount(v int) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.AddCriticalCount(v)
	})
}

// UpdateCriticalCount sets the "critical_count" field to the value that was provided on create.
func (u *AuditRecordUpsertBulk) UpdateCriticalCount() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateCriticalCount()
	})
}

// SetHighCount sets the "high_count" field.
func (u *AuditRecordUpsertBulk) SetHighCount(v int) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetHighCount(v)
	})
}

// AddHighCount adds v to the "high_count" field.
func (u *AuditRecordUpsertBulk) AddHighCount(v int) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.AddHighCount(v)
	})
}

// UpdateHighCount sets the "high_count" field to the value that was provided on create.
func (u *AuditRecordUpsertBulk) UpdateHighCount() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateHighCount()
	})
}

// SetMediumCount sets the "medium_count" field.
func (u *AuditRecordUpsertBulk) SetMediumCount(v int) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetMediumCount(v)
	})
}

// AddMediumCount adds v to the "medium_count" field.
func (u *AuditRecordUpsertBulk) AddMediumCount(v int) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.AddMediumCount(v)
	})
}

// UpdateMediumCount sets the "medium_count" field to the value that was provided on create.
func (u *AuditRecordUpsertBulk) UpdateMediumCount() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateMediumCount()
	})
}

// SetLowCount sets the "low_count" field.
func (u *AuditRecordUpsertBulk) SetLowCount(v int) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetLowCount(v)
	})
}

// AddLowCount adds v to the "low_count" field.
func (u *AuditRecordUpsertBulk) AddLowCount(v int) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.AddLowCount(v)
	})
}

// UpdateLowCount sets the "low_count" field to the value that was provided on create.
func (u *AuditRecordUpsertBulk) UpdateLowCount() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateLowCount()
	})
}

// SetInfoCount sets the "info_count" field.
func (u *AuditRecordUpsertBulk) SetInfoCount(v int) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetInfoCount(v)
	})
}

// AddInfoCount adds v to the "info_count" field.
func (u *AuditRecordUpsertBulk) AddInfoCount(v int) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.AddInfoCount(v)
	})
}

// UpdateInfoCount sets the "info_count" field to the value that was provided on create.
func (u *AuditRecordUpsertBulk) UpdateInfoCount() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateInfoCount()
	})
}

// SetRiskScore sets the "risk_score" field.
func (u *AuditRecordUpsertBulk) SetRiskScore(v int) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetRiskScore(v)
	})
}

// AddRiskScore adds v to the "risk_score" field.
func (u *AuditRecordUpsertBulk) AddRiskScore(v int) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.AddRiskScore(v)
	})
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *AuditRecordUpsertBulk) UpdateRiskScore() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateRiskScore()
	})
}

// SetStatus sets the "status" field.
func (u *AuditRecordUpsertBulk) SetStatus(v auditrecord.Status) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AuditRecordUpsertBulk) UpdateStatus() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetToolsRun sets the "tools_run" field.
func (u *AuditRecordUpsertBulk) SetToolsRun(v []string) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetToolsRun(v)
	})
}

// UpdateToolsRun sets the "tools_run" field to the value that was provided on create.
func (u *AuditRecordUpsertBulk) UpdateToolsRun() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateToolsRun()
	})
}

// ClearToolsRun clears the value of the "tools_run" field.
func (u *AuditRecordUpsertBulk) ClearToolsRun() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.ClearToolsRun()
	})
}

// SetToolErrors sets the "tool_errors" field.
func (u *AuditRecordUpsertBulk) SetToolErrors(v map[string]string) *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.SetToolErrors(v)
	})
}

// UpdateToolErrors sets the "tool_errors" field to the value that was provided on create.
func (u *AuditRecordUpsertBulk) UpdateToolErrors() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.UpdateToolErrors()
	})
}

// ClearToolErrors clears the value of the "tool_errors" field.
func (u *AuditRecordUpsertBulk) ClearToolErrors() *AuditRecordUpsertBulk {
	return u.Update(func(s *AuditRecordUpsert) {
		s.ClearToolErrors()
	})
}

// Exec executes the query.
func (u *AuditRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
