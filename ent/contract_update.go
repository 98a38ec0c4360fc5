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
	"github.com/chainforge-ai/chainforge/ent/contract"
	"github.com/chainforge-ai/chainforge/ent/deployment"
	"github.com/chainforge-ai/chainforge/ent/predicate"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ContractUpdate) SetName(v string) *ContractUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableName(v *string) *ContractUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSourceCode sets the "source_code" field.
func (_u *ContractUpdate) SetSourceCode(v string) *ContractUpdate {
	_u.mutation.SetSourceCode(v)
	return _u
}

// SetNillableSourceCode sets the "source_code" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableSourceCode(v *string) *ContractUpdate {
	if v != nil {
		_u.SetSourceCode(*v)
	}
	return _u
}

// SetSourceHash sets the "source_hash" field.
func (_u *ContractUpdate) SetSourceHash(v string) *ContractUpdate {
	_u.mutation.SetSourceHash(v)
	return _u
}

// SetNillableSourceHash sets the "source_hash" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableSourceHash(v *string) *ContractUpdate {
	if v != nil {
		_u.SetSourceHash(*v)
	}
	return _u
}

// SetAbi sets the "abi" field.
func (_u *ContractUpdate) SetAbi(v []map[string]interface{}) *ContractUpdate {
	_u.mutation.SetAbi(v)
	return _u
}

// AppendAbi appends value to the "abi" field.
func (_u *ContractUpdate) AppendAbi(v []map[string]interface{}) *ContractUpdate {
	_u.mutation.AppendAbi(v)
	return _u
}

// ClearAbi clears the value of the "abi" field.
func (_u *ContractUpdate) ClearAbi() *ContractUpdate {
	_u.mutation.ClearAbi()
	return _u
}

// SetBytecode sets the "bytecode" field.
func (_u *ContractUpdate) SetBytecode(v string) *ContractUpdate {
	_u.mutation.SetBytecode(v)
	return _u
}

// SetNillableBytecode sets the "bytecode" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableBytecode(v *string) *ContractUpdate {
	if v != nil {
		_u.SetBytecode(*v)
	}
	return _u
}

// SetDeployedBytecode sets the "deployed_bytecode" field.
func (_u *ContractUpdate) SetDeployedBytecode(v string) *ContractUpdate {
	_u.mutation.SetDeployedBytecode(v)
	return _u
}

// SetNillableDeployedBytecode sets the "deployed_bytecode" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableDeployedBytecode(v *string) *ContractUpdate {
	if v != nil {
		_u.SetDeployedBytecode(*v)
	}
	return _u
}

// ClearDeployedBytecode clears the value of the "deployed_bytecode" field.
func (_u *ContractUpdate) ClearDeployedBytecode() *ContractUpdate {
	_u.mutation.ClearDeployedBytecode()
	return _u
}

// SetSolidityVersion sets the "solidity_version" field.
func (_u *ContractUpdate) SetSolidityVersion(v string) *ContractUpdate {
	_u.mutation.SetSolidityVersion(v)
	return _u
}

// SetNillableSolidityVersion sets the "solidity_version" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableSolidityVersion(v *string) *ContractUpdate {
	if v != nil {
		_u.SetSolidityVersion(*v)
	}
	return _u
}

// SetConstructorParams sets the "constructor_params" field.
func (_u *ContractUpdate) SetConstructorParams(v []map[string]interface{}) *ContractUpdate {
	_u.mutation.SetConstructorParams(v)
	return _u
}

// AppendConstructorParams appends value to the "constructor_params" field.
func (_u *ContractUpdate) AppendConstructorParams(v []map[string]interface{}) *ContractUpdate {
	_u.mutation.AppendConstructorParams(v)
	return _u
}

// ClearConstructorParams clears the value of the "constructor_params" field.
func (_u *ContractUpdate) ClearConstructorParams() *ContractUpdate {
	_u.mutation.ClearConstructorParams()
	return _u
}

// AddAuditIDs adds the "audits" edge to the AuditRecord entity by IDs.
func (_u *ContractUpdate) AddAuditIDs(ids ...string) *ContractUpdate {
	_u.mutation.AddAuditIDs(ids...)
	return _u
}

// AddAudits adds the "audits" edges to the AuditRecord entity.
func (_u *ContractUpdate) AddAudits(v ...*AuditRecord) *ContractUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditIDs(ids...)
}

// AddDeploymentIDs adds the "deployments" edge to the Deployment entity by IDs.
func (_u *ContractUpdate) AddDeploymentIDs(ids ...string) *ContractUpdate {
	_u.mutation.AddDeploymentIDs(ids...)
	return _u
}

// AddDeployments adds the "deployments" edges to the Deployment entity.
func (_u *ContractUpdate) AddDeployments(v ...*Deployment) *ContractUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeploymentIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearAudits clears all "audits" edges to the AuditRecord entity.
func (_u *ContractUpdate) ClearAudits() *ContractUpdate {
	_u.mutation.ClearAudits()
	return _u
}

// RemoveAuditIDs removes the "audits" edge to AuditRecord entities by IDs.
func (_u *ContractUpdate) RemoveAuditIDs(ids ...string) *ContractUpdate {
	_u.mutation.RemoveAuditIDs(ids...)
	return _u
}

// RemoveAudits removes "audits" edges to AuditRecord entities.
func (_u *ContractUpdate) RemoveAudits(v ...*AuditRecord) *ContractUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditIDs(ids...)
}

// ClearDeployments clears all "deployments" edges to the Deployment entity.
func (_u *ContractUpdate) ClearDeployments() *ContractUpdate {
	_u.mutation.ClearDeployments()
	return _u
}

// RemoveDeploymentIDs removes the "deployments" edge to Deployment entities by IDs.
func (_u *ContractUpdate) RemoveDeploymentIDs(ids ...string) *ContractUpdate {
	_u.mutation.RemoveDeploymentIDs(ids...)
	return _u
}

// RemoveDeployments removes "deployments" edges to Deployment entities.
func (_u *ContractUpdate) RemoveDeployments(v ...*Deployment) *ContractUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeploymentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contract.workflow"`)
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contract.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceCode(); ok {
		_spec.SetField(contract.FieldSourceCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceHash(); ok {
		_spec.SetField(contract.FieldSourceHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Abi(); ok {
		_spec.SetField(contract.FieldAbi, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAbi(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldAbi, value)
		})
	}
	if _u.mutation.AbiCleared() {
		_spec.ClearField(contract.FieldAbi, field.TypeJSON)
	}
	if value, ok := _u.mutation.Bytecode(); ok {
		_spec.SetField(contract.FieldBytecode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeployedBytecode(); ok {
		_spec.SetField(contract.FieldDeployedBytecode, field.TypeString, value)
	}
	if _u.mutation.DeployedBytecodeCleared() {
		_spec.ClearField(contract.FieldDeployedBytecode, field.TypeString)
	}
	if value, ok := _u.mutation.SolidityVersion(); ok {
		_spec.SetField(contract.FieldSolidityVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConstructorParams(); ok {
		_spec.SetField(contract.FieldConstructorParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConstructorParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldConstructorParams, value)
		})
	}
	if _u.mutation.ConstructorParamsCleared() {
		_spec.ClearField(contract.FieldConstructorParams, field.TypeJSON)
	}
	if _u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.AuditsTable,
			Columns: []string{contract.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditsIDs(); len(nodes) > 0 && !_u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.AuditsTable,
			Columns: []string{contract.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.AuditsTable,
			Columns: []string{contract.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DeploymentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.DeploymentsTable,
			Columns: []string{contract.DeploymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeploymentsIDs(); len(nodes) > 0 && !_u.mutation.DeploymentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.DeploymentsTable,
			Columns: []string{contract.DeploymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeploymentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.DeploymentsTable,
			Columns: []string{contract.DeploymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetName sets the "name" field.
func (_u *ContractUpdateOne) SetName(v string) *ContractUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableName(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSourceCode sets the "source_code" field.
func (_u *ContractUpdateOne) SetSourceCode(v string) *ContractUpdateOne {
	_u.mutation.SetSourceCode(v)
	return _u
}

// SetNillableSourceCode sets the "source_code" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableSourceCode(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetSourceCode(*v)
	}
	return _u
}

// SetSourceHash sets the "source_hash" field.
func (_u *ContractUpdateOne) SetSourceHash(v string) *ContractUpdateOne {
	_u.mutation.SetSourceHash(v)
	return _u
}

// SetNillableSourceHash sets the "source_hash" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableSourceHash(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetSourceHash(*v)
	}
	return _u
}

// SetAbi sets the "abi" field.
func (_u *ContractUpdateOne) SetAbi(v []map[string]interface{}) *ContractUpdateOne {
	_u.mutation.SetAbi(v)
	return _u
}

// AppendAbi appends value to the "abi" field.
func (_u *ContractUpdateOne) AppendAbi(v []map[string]interface{}) *ContractUpdateOne {
	_u.mutation.AppendAbi(v)
	return _u
}

// ClearAbi clears the value of the "abi" field.
func (_u *ContractUpdateOne) ClearAbi() *ContractUpdateOne {
	_u.mutation.ClearAbi()
	return _u
}

// SetBytecode sets the "bytecode" field.
func (_u *ContractUpdateOne) SetBytecode(v string) *ContractUpdateOne {
	_u.mutation.SetBytecode(v)
	return _u
}

// SetNillableBytecode sets the "bytecode" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableBytecode(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetBytecode(*v)
	}
	return _u
}

// SetDeployedBytecode sets the "deployed_bytecode" field.
func (_u *ContractUpdateOne) SetDeployedBytecode(v string) *ContractUpdateOne {
	_u.mutation.SetDeployedBytecode(v)
	return _u
}

// SetNillableDeployedBytecode sets the "deployed_bytecode" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableDeployedBytecode(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetDeployedBytecode(*v)
	}
	return _u
}

// ClearDeployedBytecode clears the value of the "deployed_bytecode" field.
func (_u *ContractUpdateOne) ClearDeployedBytecode() *ContractUpdateOne {
	_u.mutation.ClearDeployedBytecode()
	return _u
}

// SetSolidityVersion sets the "solidity_version" field.
func (_u *ContractUpdateOne) SetSolidityVersion(v string) *ContractUpdateOne {
	_u.mutation.SetSolidityVersion(v)
	return _u
}

// SetNillableSolidityVersion sets the "solidity_version" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableSolidityVersion(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetSolidityVersion(*v)
	}
	return _u
}

// SetConstructorParams sets the "constructor_params" field.
func (_u *ContractUpdateOne) SetConstructorParams(v []map[string]interface{}) *ContractUpdateOne {
	_u.mutation.SetConstructorParams(v)
	return _u
}

// AppendConstructorParams appends value to the "constructor_params" field.
func (_u *ContractUpdateOne) AppendConstructorParams(v []map[string]interface{}) *ContractUpdateOne {
	_u.mutation.AppendConstructorParams(v)
	return _u
}

// ClearConstructorParams clears the value of the "constructor_params" field.
func (_u *ContractUpdateOne) ClearConstructorParams() *ContractUpdateOne {
	_u.mutation.ClearConstructorParams()
	return _u
}

// AddAuditIDs adds the "audits" edge to the AuditRecord entity by IDs.
func (_u *ContractUpdateOne) AddAuditIDs(ids ...string) *ContractUpdateOne {
	_u.mutation.AddAuditIDs(ids...)
	return _u
}

// AddAudits adds the "audits" edges to the AuditRecord entity.
func (_u *ContractUpdateOne) AddAudits(v ...*AuditRecord) *ContractUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditIDs(ids...)
}

// AddDeploymentIDs adds the "deployments" edge to the Deployment entity by IDs.
func (_u *ContractUpdateOne) AddDeploymentIDs(ids ...string) *ContractUpdateOne {
	_u.mutation.AddDeploymentIDs(ids...)
	return _u
}

// AddDeployments adds the "deployments" edges to the Deployment entity.
func (_u *ContractUpdateOne) AddDeployments(v ...*Deployment) *ContractUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeploymentIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearAudits clears all "audits" edges to the AuditRecord entity.
func (_u *ContractUpdateOne) ClearAudits() *ContractUpdateOne {
	_u.mutation.ClearAudits()
	return _u
}

// RemoveAuditIDs removes the "audits" edge to AuditRecord entities by IDs.
func (_u *ContractUpdateOne) RemoveAuditIDs(ids ...string) *ContractUpdateOne {
	_u.mutation.RemoveAuditIDs(ids...)
	return _u
}

// RemoveAudits removes "audits" edges to AuditRecord entities.
func (_u *ContractUpdateOne) RemoveAudits(v ...*AuditRecord) *ContractUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditIDs(ids...)
}

// ClearDeployments clears all "deployments" edges to the Deployment entity.
func (_u *ContractUpdateOne) ClearDeployments() *ContractUpdateOne {
	_u.mutation.ClearDeployments()
	return _u
}

// RemoveDeploymentIDs removes the "deployments" edge to Deployment entities by IDs.
func (_u *ContractUpdateOne) RemoveDeploymentIDs(ids ...string) *ContractUpdateOne {
	_u.mutation.RemoveDeploymentIDs(ids...)
	return _u
}

// RemoveDeployments removes "deployments" edges to Deployment entities.
func (_u *ContractUpdateOne) RemoveDeployments(v ...*Deployment) *ContractUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeploymentIDs(ids...)
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contract.workflow"`)
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contract.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceCode(); ok {
		_spec.SetField(contract.FieldSourceCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceHash(); ok {
		_spec.SetField(contract.FieldSourceHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Abi(); ok {
		_spec.SetField(contract.FieldAbi, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAbi(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldAbi, value)
		})
	}
	if _u.mutation.AbiCleared() {
		_spec.ClearField(contract.FieldAbi, field.TypeJSON)
	}
	if value, ok := _u.mutation.Bytecode(); ok {
		_spec.SetField(contract.FieldBytecode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeployedBytecode(); ok {
		_spec.SetField(contract.FieldDeployedBytecode, field.TypeString, value)
	}
	if _u.mutation.DeployedBytecodeCleared() {
		_spec.ClearField(contract.FieldDeployedBytecode, field.TypeString)
	}
	if value, ok := _u.mutation.SolidityVersion(); ok {
		_spec.SetField(contract.FieldSolidityVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConstructorParams(); ok {
		_spec.SetField(contract.FieldConstructorParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConstructorParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldConstructorParams, value)
		})
	}
	if _u.mutation.ConstructorParamsCleared() {
		_spec.ClearField(contract.FieldConstructorParams, field.TypeJSON)
	}
	if _u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.AuditsTable,
			Columns: []string{contract.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditsIDs(); len(nodes) > 0 && !_u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.AuditsTable,
			Columns: []string{contract.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.AuditsTable,
			Columns: []string{contract.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DeploymentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.DeploymentsTable,
			Columns: []string{contract.DeploymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeploymentsIDs(); len(nodes) > 0 && !_u.mutation.DeploymentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.DeploymentsTable,
			Columns: []string{contract.DeploymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeploymentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.DeploymentsTable,
			Columns: []string{contract.DeploymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
