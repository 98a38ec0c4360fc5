// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/chainforge-ai/chainforge/ent/auditrecord"
	"github.com/chainforge-ai/chainforge/ent/predicate"
)

// AuditRecordUpdate is the builder for updating AuditRecord entities.
type AuditRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AuditRecordMutation
}

// Where appends a list predicates to the AuditRecordUpdate builder.
func (_u *AuditRecordUpdate) Where(ps ...predicate.AuditRecord) *AuditRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAuditLevel sets the "audit_level" field.
func (_u *AuditRecordUpdate) SetAuditLevel(v string) *AuditRecordUpdate {
	_u.mutation.SetAuditLevel(v)
	return _u
}

// SetNillableAuditLevel sets the "audit_level" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableAuditLevel(v *string) *AuditRecordUpdate {
	if v != nil {
		_u.SetAuditLevel(*v)
	}
	return _u
}

// SetFindings sets the "findings" field.
func (_u *AuditRecordUpdate) SetFindings(v []map[string]interface{}) *AuditRecordUpdate {
	_u.mutation.SetFindings(v)
	return _u
}

// AppendFindings appends value to the "findings" field.
func (_u *AuditRecordUpdate) AppendFindings(v []map[string]interface{}) *AuditRecordUpdate {
	_u.mutation.AppendFindings(v)
	return _u
}

// ClearFindings clears the value of the "findings" field.
func (_u *AuditRecordUpdate) ClearFindings() *AuditRecordUpdate {
	_u.mutation.ClearFindings()
	return _u
}

// SetCriticalCount sets the "critical_count" field.
func (_u *AuditRecordUpdate) SetCriticalCount(v int) *AuditRecordUpdate {
	_u.mutation.ResetCriticalCount()
	_u.mutation.SetCriticalCount(v)
	return _u
}

// SetNillableCriticalCount sets the "critical_count" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableCriticalCount(v *int) *AuditRecordUpdate {
	if v != nil {
		_u.SetCriticalCount(*v)
	}
	return _u
}

// AddCriticalCount adds value to the "critical_count" field.
func (_u *AuditRecordUpdate) AddCriticalCount(v int) *AuditRecordUpdate {
	_u.mutation.AddCriticalCount(v)
	return _u
}

// SetHighCount sets the "high_count" field.
func (_u *AuditRecordUpdate) SetHighCount(v int) *AuditRecordUpdate {
	_u.mutation.ResetHighCount()
	_u.mutation.SetHighCount(v)
	return _u
}

// SetNillableHighCount sets the "high_count" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableHighCount(v *int) *AuditRecordUpdate {
	if v != nil {
		_u.SetHighCount(*v)
	}
	return _u
}

// AddHighCount adds value to the "high_count" field.
func (_u *AuditRecordUpdate) AddHighCount(v int) *AuditRecordUpdate {
	_u.mutation.AddHighCount(v)
	return _u
}

// SetMediumCount sets the "medium_count" field.
func (_u *AuditRecordUpdate) SetMediumCount(v int) *AuditRecordUpdate {
	_u.mutation.ResetMediumCount()
	_u.mutation.SetMediumCount(v)
	return _u
}

// SetNillableMediumCount sets the "medium_count" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableMediumCount(v *int) *AuditRecordUpdate {
	if v != nil {
		_u.SetMediumCount(*v)
	}
	return _u
}

// AddMediumCount adds value to the "medium_count" field.
func (_u *AuditRecordUpdate) AddMediumCount(v int) *AuditRecordUpdate {
	_u.mutation.AddMediumCount(v)
	return _u
}

// SetLowCount sets the "low_count" field.
func (_u *AuditRecordUpdate) SetLowCount(v int) *AuditRecordUpdate {
	_u.mutation.ResetLowCount()
	_u.mutation.SetLowCount(v)
	return _u
}

// SetNillableLowCount sets the "low_count" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableLowCount(v *int) *AuditRecordUpdate {
	if v != nil {
		_u.SetLowCount(*v)
	}
	return _u
}

// AddLowCount adds value to the "low_count" field.
func (_u *AuditRecordUpdate) AddLowCount(v int) *AuditRecordUpdate {
	_u.mutation.AddLowCount(v)
	return _u
}

// SetInfoCount sets the "info_count" field.
func (_u *AuditRecordUpdate) SetInfoCount(v int) *AuditRecordUpdate {
	_u.mutation.ResetInfoCount()
	_u.mutation.SetInfoCount(v)
	return _u
}

// SetNillableInfoCount sets the "info_count" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableInfoCount(v *int) *AuditRecordUpdate {
	if v != nil {
		_u.SetInfoCount(*v)
	}
	return _u
}

// AddInfoCount adds value to the "info_count" field.
func (_u *AuditRecordUpdate) AddInfoCount(v int) *AuditRecordUpdate {
	_u.mutation.AddInfoCount(v)
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *AuditRecordUpdate) SetRiskScore(v int) *AuditRecordUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableRiskScore(v *int) *AuditRecordUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *AuditRecordUpdate) AddRiskScore(v int) *AuditRecordUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditRecordUpdate) SetStatus(v auditrecord.Status) *AuditRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableStatus(v *auditrecord.Status) *AuditRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetToolsRun sets the "tools_run" field.
func (_u *AuditRecordUpdate) SetToolsRun(v []string) *AuditRecordUpdate {
	_u.mutation.SetToolsRun(v)
	return _u
}

// AppendToolsRun appends value to the "tools_run" field.
func (_u *AuditRecordUpdate) AppendToolsRun(v []string) *AuditRecordUpdate {
	_u.mutation.AppendToolsRun(v)
	return _u
}

// ClearToolsRun clears the value of the "tools_run" field.
func (_u *AuditRecordUpdate) ClearToolsRun() *AuditRecordUpdate {
	_u.mutation.ClearToolsRun()
	return _u
}

// SetToolErrors sets the "tool_errors" field.
func (_u *AuditRecordUpdate) SetToolErrors(v map[string]string) *AuditRecordUpdate {
	_u.mutation.SetToolErrors(v)
	return _u
}

// ClearToolErrors clears the value of the "tool_errors" field.
func (_u *AuditRecordUpdate) ClearToolErrors() *AuditRecordUpdate {
	_u.mutation.ClearToolErrors()
	return _u
}

// Mutation returns the AuditRecordMutation object of the builder.
func (_u *AuditRecordUpdate) Mutation() *AuditRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := auditrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditRecord.status": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditRecord.contract"`)
	}
	return nil
}

func (_u *AuditRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditrecord.Table, auditrecord.Columns, sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AuditLevel(); ok {
		_spec.SetField(auditrecord.FieldAuditLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(auditrecord.FieldFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditrecord.FieldFindings, value)
		})
	}
	if _u.mutation.FindingsCleared() {
		_spec.ClearField(auditrecord.FieldFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.CriticalCount(); ok {
		_spec.SetField(auditrecord.FieldCriticalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCriticalCount(); ok {
		_spec.AddField(auditrecord.FieldCriticalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HighCount(); ok {
		_spec.SetField(auditrecord.FieldHighCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHighCount(); ok {
		_spec.AddField(auditrecord.FieldHighCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediumCount(); ok {
		_spec.SetField(auditrecord.FieldMediumCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMediumCount(); ok {
		_spec.AddField(auditrecord.FieldMediumCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LowCount(); ok {
		_spec.SetField(auditrecord.FieldLowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLowCount(); ok {
		_spec.AddField(auditrecord.FieldLowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InfoCount(); ok {
		_spec.SetField(auditrecord.FieldInfoCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInfoCount(); ok {
		_spec.AddField(auditrecord.FieldInfoCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(auditrecord.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(auditrecord.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(auditrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ToolsRun(); ok {
		_spec.SetField(auditrecord.FieldToolsRun, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolsRun(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditrecord.FieldToolsRun, value)
		})
	}
	if _u.mutation.ToolsRunCleared() {
		_spec.ClearField(auditrecord.FieldToolsRun, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolErrors(); ok {
		_spec.SetField(auditrecord.FieldToolErrors, field.TypeJSON, value)
	}
	if _u.mutation.ToolErrorsCleared() {
		_spec.ClearField(auditrecord.FieldToolErrors, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditRecordUpdateOne is the builder for updating a single AuditRecord entity.
type AuditRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditRecordMutation
}

// SetAuditLevel sets the "audit_level" field.
func (_u *AuditRecordUpdateOne) SetAuditLevel(v string) *AuditRecordUpdateOne {
	_u.mutation.SetAuditLevel(v)
	return _u
}

// SetNillableAuditLevel sets the "audit_level" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableAuditLevel(v *string) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetAuditLevel(*v)
	}
	return _u
}

// SetFindings sets the "findings" field.
func (_u *AuditRecordUpdateOne) SetFindings(v []map[string]interface{}) *AuditRecordUpdateOne {
	_u.mutation.SetFindings(v)
	return _u
}

// AppendFindings appends value to the "findings" field.
func (_u *AuditRecordUpdateOne) AppendFindings(v []map[string]interface{}) *AuditRecordUpdateOne {
	_u.mutation.AppendFindings(v)
	return _u
}

// ClearFindings clears the value of the "findings" field.
func (_u *AuditRecordUpdateOne) ClearFindings() *AuditRecordUpdateOne {
	_u.mutation.ClearFindings()
	return _u
}

// SetCriticalCount sets the "critical_count" field.
func (_u *AuditRecordUpdateOne) SetCriticalCount(v int) *AuditRecordUpdateOne {
	_u.mutation.ResetCriticalCount()
	_u.mutation.SetCriticalCount(v)
	return _u
}

// SetNillableCriticalCount sets the "critical_count" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableCriticalCount(v *int) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetCriticalCount(*v)
	}
	return _u
}

// AddCriticalCount adds value to the "critical_count" field.
func (_u *AuditRecordUpdateOne) AddCriticalCount(v int) *AuditRecordUpdateOne {
	_u.mutation.AddCriticalCount(v)
	return _u
}

// SetHighCount sets the "high_count" field.
func (_u *AuditRecordUpdateOne) SetHighCount(v int) *AuditRecordUpdateOne {
	_u.mutation.ResetHighCount()
	_u.mutation.SetHighCount(v)
	return _u
}

// SetNillableHighCount sets the "high_count" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableHighCount(v *int) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetHighCount(*v)
	}
	return _u
}

// AddHighCount adds value to the "high_count" field.
func (_u *AuditRecordUpdateOne) AddHighCount(v int) *AuditRecordUpdateOne {
	_u.mutation.AddHighCount(v)
	return _u
}

// SetMediumCount sets the "medium_count" field.
func (_u *AuditRecordUpdateOne) SetMediumCount(v int) *AuditRecordUpdateOne {
	_u.mutation.ResetMediumCount()
	_u.mutation.SetMediumCount(v)
	return _u
}

// SetNillableMediumCount sets the "medium_count" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableMediumCount(v *int) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetMediumCount(*v)
	}
	return _u
}

// AddMediumCount adds value to the "medium_count" field.
func (_u *AuditRecordUpdateOne) AddMediumCount(v int) *AuditRecordUpdateOne {
	_u.mutation.AddMediumCount(v)
	return _u
}

// SetLowCount sets the "low_count" field.
func (_u *AuditRecordUpdateOne) SetLowCount(v int) *AuditRecordUpdateOne {
	_u.mutation.ResetLowCount()
	_u.mutation.SetLowCount(v)
	return _u
}

// SetNillableLowCount sets the "low_count" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableLowCount(v *int) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetLowCount(*v)
	}
	return _u
}

// AddLowCount adds value to the "low_count" field.
func (_u *AuditRecordUpdateOne) AddLowCount(v int) *AuditRecordUpdateOne {
	_u.mutation.AddLowCount(v)
	return _u
}

// SetInfoCount sets the "info_count" field.
func (_u *AuditRecordUpdateOne) SetInfoCount(v int) *AuditRecordUpdateOne {
	_u.mutation.ResetInfoCount()
	_u.mutation.SetInfoCount(v)
	return _u
}

// SetNillableInfoCount sets the "info_count" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableInfoCount(v *int) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetInfoCount(*v)
	}
	return _u
}

// AddInfoCount adds value to the "info_count" field.
func (_u *AuditRecordUpdateOne) AddInfoCount(v int) *AuditRecordUpdateOne {
	_u.mutation.AddInfoCount(v)
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *AuditRecordUpdateOne) SetRiskScore(v int) *AuditRecordUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableRiskScore(v *int) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *AuditRecordUpdateOne) AddRiskScore(v int) *AuditRecordUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditRecordUpdateOne) SetStatus(v auditrecord.Status) *AuditRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableStatus(v *auditrecord.Status) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetToolsRun sets the "tools_run" field.
func (_u *AuditRecordUpdateOne) SetToolsRun(v []string) *AuditRecordUpdateOne {
	_u.mutation.SetToolsRun(v)
	return _u
}

// AppendToolsRun appends value to the "tools_run" field.
func (_u *AuditRecordUpdateOne) AppendToolsRun(v []string) *AuditRecordUpdateOne {
	_u.mutation.AppendToolsRun(v)
	return _u
}

// ClearToolsRun clears the value of the "tools_run" field.
func (_u *AuditRecordUpdateOne) ClearToolsRun() *AuditRecordUpdateOne {
	_u.mutation.ClearToolsRun()
	return _u
}

// SetToolErrors sets the "tool_errors" field.
func (_u *AuditRecordUpdateOne) SetToolErrors(v map[string]string) *AuditRecordUpdateOne {
	_u.mutation.SetToolErrors(v)
	return _u
}

// ClearToolErrors clears the value of the "tool_errors" field.
func (_u *AuditRecordUpdateOne) ClearToolErrors() *AuditRecordUpdateOne {
	_u.mutation.ClearToolErrors()
	return _u
}

// Mutation returns the AuditRecordMutation object of the builder.
func (_u *AuditRecordUpdateOne) Mutation() *AuditRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditRecordUpdate builder.
func (_u *AuditRecordUpdateOne) Where(ps ...predicate.AuditRecord) *AuditRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditRecordUpdateOne) Select(field string, fields ...string) *AuditRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditRecord entity.
func (_u *AuditRecordUpdateOne) Save(ctx context.Context) (*AuditRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditRecordUpdateOne) SaveX(ctx context.Context) *AuditRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := auditrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditRecord.status": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditRecord.contract"`)
	}
	return nil
}

func (_u *AuditRecordUpdateOne) sqlSave(ctx context.Context) (_node *AuditRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditrecord.Table, auditrecord.Columns, sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditrecord.FieldID)
		for _, f := range fields {
			if !auditrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AuditLevel(); ok {
		_spec.SetField(auditrecord.FieldAuditLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(auditrecord.FieldFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditrecord.FieldFindings, value)
		})
	}
	if _u.mutation.FindingsCleared() {
		_spec.ClearField(auditrecord.FieldFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.CriticalCount(); ok {
		_spec.SetField(auditrecord.FieldCriticalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCriticalCount(); ok {
		_spec.AddField(auditrecord.FieldCriticalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HighCount(); ok {
		_spec.SetField(auditrecord.FieldHighCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHighCount(); ok {
		_spec.AddField(auditrecord.FieldHighCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediumCount(); ok {
		_spec.SetField(auditrecord.FieldMediumCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMediumCount(); ok {
		_spec.AddField(auditrecord.FieldMediumCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LowCount(); ok {
		_spec.SetField(auditrecord.FieldLowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLowCount(); ok {
		_spec.AddField(auditrecord.FieldLowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InfoCount(); ok {
		_spec.SetField(auditrecord.FieldInfoCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInfoCount(); ok {
		_spec.AddField(auditrecord.FieldInfoCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(auditrecord.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(auditrecord.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(auditrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ToolsRun(); ok {
		_spec.SetField(auditrecord.FieldToolsRun, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolsRun(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditrecord.FieldToolsRun, value)
		})
	}
	if _u.mutation.ToolsRunCleared() {
		_spec.ClearField(auditrecord.FieldToolsRun, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolErrors(); ok {
		_spec.SetField(auditrecord.FieldToolErrors, field.TypeJSON, value)
	}
	if _u.mutation.ToolErrorsCleared() {
		_spec.ClearField(auditrecord.FieldToolErrors, field.TypeJSON)
	}
	_node = &AuditRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
