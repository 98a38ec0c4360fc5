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
	"github.com/chainforge-ai/chainforge/ent/deployment"
	"github.com/chainforge-ai/chainforge/ent/workflow"
)

// ContractCreate is the builder for creating a Contract entity.
type ContractCreate struct {
	config
	mutation *ContractMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *ContractCreate) SetWorkflowID(v string) *ContractCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ContractCreate) SetName(v string) *ContractCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSourceCode sets the "source_code" field.
func (_c *ContractCreate) SetSourceCode(v string) *ContractCreate {
	_c.mutation.SetSourceCode(v)
	return _c
}

// SetSourceHash sets the "source_hash" field.
func (_c *ContractCreate) SetSourceHash(v string) *ContractCreate {
	_c.mutation.SetSourceHash(v)
	return _c
}

// SetAbi sets the "abi" field.
func (_c *ContractCreate) SetAbi(v []map[string]interface{}) *ContractCreate {
	_c.mutation.SetAbi(v)
	return _c
}

// SetBytecode sets the "bytecode" field.
func (_c *ContractCreate) SetBytecode(v string) *ContractCreate {
	_c.mutation.SetBytecode(v)
	return _c
}

// SetDeployedBytecode sets the "deployed_bytecode" field.
func (_c *ContractCreate) SetDeployedBytecode(v string) *ContractCreate {
	_c.mutation.SetDeployedBytecode(v)
	return _c
}

// SetNillableDeployedBytecode sets the "deployed_bytecode" field if the given value is not nil.
func (_c *ContractCreate) SetNillableDeployedBytecode(v *string) *ContractCreate {
	if v != nil {
		_c.SetDeployedBytecode(*v)
	}
	return _c
}

// SetSolidityVersion sets the "solidity_version" field.
func (_c *ContractCreate) SetSolidityVersion(v string) *ContractCreate {
	_c.mutation.SetSolidityVersion(v)
	return _c
}

// SetNillableSolidityVersion sets the "solidity_version" field if the given value is not nil.
func (_c *ContractCreate) SetNillableSolidityVersion(v *string) *ContractCreate {
	if v != nil {
		_c.SetSolidityVersion(*v)
	}
	return _c
}

// SetConstructorParams sets the "constructor_params" field.
func (_c *ContractCreate) SetConstructorParams(v []map[string]interface{}) *ContractCreate {
	_c.mutation.SetConstructorParams(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContractCreate) SetCreatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCreatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContractCreate) SetID(v string) *ContractCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *ContractCreate) SetWorkflow(v *Workflow) *ContractCreate {
	return _c.SetWorkflowID(v.ID)
}

// AddAuditIDs adds the "audits" edge to the AuditRecord entity by IDs.
func (_c *ContractCreate) AddAuditIDs(ids ...string) *ContractCreate {
	_c.mutation.AddAuditIDs(ids...)
	return _c
}

// AddAudits adds the "audits" edges to the AuditRecord entity.
func (_c *ContractCreate) AddAudits(v ...*AuditRecord) *ContractCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditIDs(ids...)
}

// AddDeploymentIDs adds the "deployments" edge to the Deployment entity by IDs.
func (_c *ContractCreate) AddDeploymentIDs(ids ...string) *ContractCreate {
	_c.mutation.AddDeploymentIDs(ids...)
	return _c
}

// AddDeployments adds the "deployments" edges to the Deployment entity.
func (_c *ContractCreate) AddDeployments(v ...*Deployment) *ContractCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeploymentIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_c *ContractCreate) Mutation() *ContractMutation {
	return _c.mutation
}

// Save creates the Contract in the database.
func (_c *ContractCreate) Save(ctx context.Context) (*Contract, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractCreate) SaveX(ctx context.Context) *Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractCreate) defaults() {
	if _, ok := _c.mutation.SolidityVersion(); !ok {
		v := contract.DefaultSolidityVersion
		_c.mutation.SetSolidityVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contract.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "Contract.workflow_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Contract.name"`)}
	}
	if _, ok := _c.mutation.SourceCode(); !ok {
		return &ValidationError{Name: "source_code", err: errors.New(`ent: missing required field "Contract.source_code"`)}
	}
	if _, ok := _c.mutation.SourceHash(); !ok {
		return &ValidationError{Name: "source_hash", err: errors.New(`ent: missing required field "Contract.source_hash"`)}
	}
	if _, ok := _c.mutation.Bytecode(); !ok {
		return &ValidationError{Name: "bytecode", err: errors.New(`ent: missing required field "Contract.bytecode"`)}
	}
	if _, ok := _c.mutation.SolidityVersion(); !ok {
		return &ValidationError{Name: "solidity_version", err: errors.New(`ent: missing required field "Contract.solidity_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contract.created_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "Contract.workflow"`)}
	}
	return nil
}

func (_c *ContractCreate) sqlSave(ctx context.Context) (*Contract, error) {
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
			return nil, fmt.Errorf("unexpected Contract.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContractCreate) createSpec() (*Contract, *sqlgraph.CreateSpec) {
	var (
		_node = &Contract{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contract.Table, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(contract.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.SourceCode(); ok {
		_spec.SetField(contract.FieldSourceCode, field.TypeString, value)
		_node.SourceCode = value
	}
	if value, ok := _c.mutation.SourceHash(); ok {
		_spec.SetField(contract.FieldSourceHash, field.TypeString, value)
		_node.SourceHash = value
	}
	if value, ok := _c.mutation.Abi(); ok {
		_spec.SetField(contract.FieldAbi, field.TypeJSON, value)
		_node.Abi = value
	}
	if value, ok := _c.mutation.Bytecode(); ok {
		_spec.SetField(contract.FieldBytecode, field.TypeString, value)
		_node.Bytecode = value
	}
	if value, ok := _c.mutation.DeployedBytecode(); ok {
		_spec.SetField(contract.FieldDeployedBytecode, field.TypeString, value)
		_node.DeployedBytecode = value
	}
	if value, ok := _c.mutation.SolidityVersion(); ok {
		_spec.SetField(contract.FieldSolidityVersion, field.TypeString, value)
		_node.SolidityVersion = value
	}
	if value, ok := _c.mutation.ConstructorParams(); ok {
		_spec.SetField(contract.FieldConstructorParams, field.TypeJSON, value)
		_node.ConstructorParams = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.WorkflowTable,
			Columns: []string{contract.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkflowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuditsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DeploymentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Contract.Create().
//		SetWorkflowID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContractUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *ContractCreate) OnConflict(opts ...sql.ConflictOption) *ContractUpsertOne {
	_c.conflict = opts
	return &ContractUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Contract.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContractCreate) OnConflictColumns(columns ...string) *ContractUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContractUpsertOne{
		create: _c,
	}
}

type (
	// ContractUpsertOne is the builder for "upsert"-ing
	//  one Contract node.
	ContractUpsertOne struct {
		create *ContractCreate
	}

	// ContractUpsert is the "OnConflict" setter.
	ContractUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ContractUpsert) SetName(v string) *ContractUpsert {
	u.Set(contract.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ContractUpsert) UpdateName() *ContractUpsert {
	u.SetExcluded(contract.FieldName)
	return u
}

// SetSourceCode sets the "source_code" field.
func (u *ContractUpsert) SetSourceCode(v string) *ContractUpsert {
	u.Set(contract.FieldSourceCode, v)
	return u
}

// UpdateSourceCode sets the "source_code" field to the value that was provided on create.
func (u *ContractUpsert) UpdateSourceCode() *ContractUpsert {
	u.SetExcluded(contract.FieldSourceCode)
	return u
}

// SetSourceHash sets the "source_hash" field.
func (u *ContractUpsert) SetSourceHash(v string) *ContractUpsert {
	u.Set(contract.FieldSourceHash, v)
	return u
}

// UpdateSourceHash sets the "source_hash" field to the value that was provided on create.
func (u *ContractUpsert) UpdateSourceHash() *ContractUpsert {
	u.SetExcluded(contract.FieldSourceHash)
	return u
}

// SetAbi sets the "abi" field.
func (u *ContractUpsert) SetAbi(v []map[string]interface{}) *ContractUpsert {
	u.Set(contract.FieldAbi, v)
	return u
}

// UpdateAbi sets the "abi" field to the value that was provided on create.
func (u *ContractUpsert) UpdateAbi() *ContractUpsert {
	u.SetExcluded(contract.FieldAbi)
	return u
}

// ClearAbi clears the value of the "abi" field.
func (u *ContractUpsert) ClearAbi() *ContractUpsert {
	u.SetNull(contract.FieldAbi)
	return u
}

// SetBytecode sets the "bytecode" field.
func (u *ContractUpsert) SetBytecode(v string) *ContractUpsert {
	u.Set(contract.FieldBytecode, v)
	return u
}

// UpdateBytecode sets the "bytecode" field to the value that was provided on create.
func (u *ContractUpsert) UpdateBytecode() *ContractUpsert {
	u.SetExcluded(contract.FieldBytecode)
	return u
}

// SetDeployedBytecode sets the "deployed_bytecode" field.
func (u *ContractUpsert) SetDeployedBytecode(v string) *ContractUpsert {
	u.Set(contract.FieldDeployedBytecode, v)
	return u
}

// UpdateDeployedBytecode sets the "deployed_bytecode" field to the value that was provided on create.
func (u *ContractUpsert) UpdateDeployedBytecode() *ContractUpsert {
	u.SetExcluded(contract.FieldDeployedBytecode)
	return u
}

// ClearDeployedBytecode clears the value of the "deployed_bytecode" field.
func (u *ContractUpsert) ClearDeployedBytecode() *ContractUpsert {
	u.SetNull(contract.FieldDeployedBytecode)
	return u
}

// SetSolidityVersion sets the "solidity_version" field.
func (u *ContractUpsert) SetSolidityVersion(v string) *ContractUpsert {
	u.Set(contract.FieldSolidityVersion, v)
	return u
}

// UpdateSolidityVersion sets the "solidity_version" field to the value that was provided on create.
func (u *ContractUpsert) UpdateSolidityVersion() *ContractUpsert {
	u.SetExcluded(contract.FieldSolidityVersion)
	return u
}

// SetConstructorParams sets the "constructor_params" field.
func (u *ContractUpsert) SetConstructorParams(v []map[string]interface{}) *ContractUpsert {
	u.Set(contract.FieldConstructorParams, v)
	return u
}

// UpdateConstructorParams sets the "constructor_params" field to the value that was provided on create.
func (u *ContractUpsert) UpdateConstructorParams() *ContractUpsert {
	u.SetExcluded(contract.FieldConstructorParams)
	return u
}

// ClearConstructorParams clears the value of the "constructor_params" field.
func (u *ContractUpsert) ClearConstructorParams() *ContractUpsert {
	u.SetNull(contract.FieldConstructorParams)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Contract.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contract.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContractUpsertOne) UpdateNewValues() *ContractUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(contract.FieldID)
		}
		if _, exists := u.create.mutation.WorkflowID(); exists {
			s.SetIgnore(contract.FieldWorkflowID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(contract.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Contract.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContractUpsertOne) Ignore() *ContractUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContractUpsertOne) DoNothing() *ContractUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContractCreate.OnConflict
// documentation for more info.
func (u *ContractUpsertOne) Update(set func(*ContractUpsert)) *ContractUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContractUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ContractUpsertOne) SetName(v string) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateName() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateName()
	})
}

// SetSourceCode sets the "source_code" field.
func (u *ContractUpsertOne) SetSourceCode(v string) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetSourceCode(v)
	})
}

// UpdateSourceCode sets the "source_code" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateSourceCode() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateSourceCode()
	})
}

// SetSourceHash sets the "source_hash" field.
func (u *ContractUpsertOne) SetSourceHash(v string) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetSourceHash(v)
	})
}

// UpdateSourceHash sets the "source_hash" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateSourceHash() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateSourceHash()
	})
}

// SetAbi sets the "abi" field.
func (u *ContractUpsertOne) SetAbi(v []map[string]interface{}) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetAbi(v)
	})
}

// UpdateAbi sets the "abi" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateAbi() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateAbi()
	})
}

// ClearAbi clears the value of the "abi" field.
func (u *ContractUpsertOne) ClearAbi() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearAbi()
	})
}

// SetBytecode sets the "bytecode" field.
func (u *ContractUpsertOne) SetBytecode(v string) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetBytecode(v)
	})
}

// UpdateBytecode sets the "bytecode" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateBytecode() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateBytecode()
	})
}

// SetDeployedBytecode sets the "deployed_bytecode" field.
func (u *ContractUpsertOne) SetDeployedBytecode(v string) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetDeployedBytecode(v)
	})
}

// UpdateDeployedBytecode sets the "deployed_bytecode" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateDeployedBytecode() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateDeployedBytecode()
	})
}

// ClearDeployedBytecode clears the value of the "deployed_bytecode" field.
func (u *ContractUpsertOne) ClearDeployedBytecode() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearDeployedBytecode()
	})
}

// SetSolidityVersion sets the "solidity_version" field.
func (u *ContractUpsertOne) SetSolidityVersion(v string) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetSolidityVersion(v)
	})
}

// UpdateSolidityVersion sets the "solidity_version" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateSolidityVersion() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateSolidityVersion()
	})
}

// SetConstructorParams sets the "constructor_params" field.
func (u *ContractUpsertOne) SetConstructorParams(v []map[string]interface{}) *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.SetConstructorParams(v)
	})
}

// UpdateConstructorParams sets the "constructor_params" field to the value that was provided on create.
func (u *ContractUpsertOne) UpdateConstructorParams() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateConstructorParams()
	})
}

// ClearConstructorParams clears the value of the "constructor_params" field.
func (u *ContractUpsertOne) ClearConstructorParams() *ContractUpsertOne {
	return u.Update(func(s *ContractUpsert) {
		s.ClearConstructorParams()
	})
}

// Exec executes the query.
func (u *ContractUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContractCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContractUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContractUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ContractUpsertOne.ID is not supported by MySQL driver. Use ContractUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContractUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContractCreateBulk is the builder for creating many Contract entities in bulk.
type ContractCreateBulk struct {
	config
	err      error
	builders []*ContractCreate
	conflict []sql.ConflictOption
}

// Save creates the Contract entities in the database.
func (_c *ContractCreateBulk) Save(ctx context.Context) ([]*Contract, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contract, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractMutation)
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
func (_c *ContractCreateBulk) SaveX(ctx context.Context) []*Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Contract.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContractUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *ContractCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContractUpsertBulk {
	_c.conflict = opts
	return &ContractUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Contract.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContractCreateBulk) OnConflictColumns(columns ...string) *ContractUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContractUpsertBulk{
		create: _c,
	}
}

// ContractUpsertBulk is the builder for "upsert"-ing
// a bulk of Contract nodes.
type ContractUpsertBulk struct {
	create *ContractCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Contract.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contract.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContractUpsertBulk) UpdateNewValues() *ContractUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(contract.FieldID)
			}
			if _, exists := b.mutation.WorkflowID(); exists {
				s.SetIgnore(contract.FieldWorkflowID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(contract.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Contract.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContractUpsertBulk) Ignore() *ContractUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContractUpsertBulk) DoNothing() *ContractUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContractCreateBulk.OnConflict
// documentation for more info.
func (u *ContractUpsertBulk) Update(set func(*ContractUpsert)) *ContractUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContractUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ContractUpsertBulk) SetName(v string) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateName() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateName()
	})
}

// SetSourceCode sets the "source_code" field.
func (u *ContractUpsertBulk) SetSourceCode(v string) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetSourceCode(v)
	})
}

// UpdateSourceCode sets the "source_code" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateSourceCode() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateSourceCode()
	})
}

// SetSourceHash sets the "source_hash" field.
func (u *ContractUpsertBulk) SetSourceHash(v string) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetSourceHash(v)
	})
}

// UpdateSourceHash sets the "source_hash" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateSourceHash() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateSourceHash()
	})
}

// SetAbi sets the "abi" field.
func (u *ContractUpsertBulk) SetAbi(v []map[string]interface{}) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetAbi(v)
	})
}

// UpdateAbi sets the "abi" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateAbi() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateAbi()
	})
}

// ClearAbi clears the value of the "abi" field.
func (u *ContractUpsertBulk) ClearAbi() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearAbi()
	})
}

// SetBytecode sets the "bytecode" field.
func (u *ContractUpsertBulk) SetBytecode(v string) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetBytecode(v)
	})
}

// UpdateBytecode sets the "bytecode" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateBytecode() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateBytecode()
	})
}

// SetDeployedBytecode sets the "deployed_bytecode" field.
func (u *ContractUpsertBulk) SetDeployedBytecode(v string) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetDeployedBytecode(v)
	})
}

// UpdateDeployedBytecode sets the "deployed_bytecode" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateDeployedBytecode() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateDeployedBytecode()
	})
}

// ClearDeployedBytecode clears the value of the "deployed_bytecode" field.
func (u *ContractUpsertBulk) ClearDeployedBytecode() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearDeployedBytecode()
	})
}

// SetSolidityVersion sets the "solidity_version" field.
func (u *ContractUpsertBulk) SetSolidityVersion(v string) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetSolidityVersion(v)
	})
}

// UpdateSolidityVersion sets the "solidity_version" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateSolidityVersion() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateSolidityVersion()
	})
}

// SetConstructorParams sets the "constructor_params" field.
func (u *ContractUpsertBulk) SetConstructorParams(v []map[string]interface{}) *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.SetConstructorParams(v)
	})
}

// UpdateConstructorParams sets the "constructor_params" field to the value that was provided on create.
func (u *ContractUpsertBulk) UpdateConstructorParams() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.UpdateConstructorParams()
	})
}

// ClearConstructorParams clears the value of the "constructor_params" field.
func (u *ContractUpsertBulk) ClearConstructorParams() *ContractUpsertBulk {
	return u.Update(func(s *ContractUpsert) {
		s.ClearConstructorParams()
	})
}

// Exec executes the query.
func (u *ContractUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ContractCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContractCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContractUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
