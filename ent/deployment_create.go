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
	"github.com/chainforge-ai/chainforge/ent/contract"
	"github.com/chainforge-ai/chainforge/ent/deployment"
)

// DeploymentCreate is the builder for creating a Deployment entity.
type DeploymentCreate struct {
	config
	mutation *DeploymentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetContractID sets the "contract_id" field.
func (_c *DeploymentCreate) SetContractID(v string) *DeploymentCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetNetwork sets the "network" field.
func (_c *DeploymentCreate) SetNetwork(v string) *DeploymentCreate {
	_c.mutation.SetNetwork(v)
	return _c
}

// SetAddress sets the "address" field.
func (_c *DeploymentCreate) SetAddress(v string) *DeploymentCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *DeploymentCreate) SetNillableAddress(v *string) *DeploymentCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetTxHash sets the "tx_hash" field.
func (_c *DeploymentCreate) SetTxHash(v string) *DeploymentCreate {
	_c.mutation.SetTxHash(v)
	return _c
}

// SetNillableTxHash sets the "tx_hash" field if the given value is not nil.
func (_c *DeploymentCreate) SetNillableTxHash(v *string) *DeploymentCreate {
	if v != nil {
		_c.SetTxHash(*v)
	}
	return _c
}

// SetBlockNumber sets the "block_number" field.
func (_c *DeploymentCreate) SetBlockNumber(v int64) *DeploymentCreate {
	_c.mutation.SetBlockNumber(v)
	return _c
}

// SetNillableBlockNumber sets the "block_number" field if the given value is not nil.
func (_c *DeploymentCreate) SetNillableBlockNumber(v *int64) *DeploymentCreate {
	if v != nil {
		_c.SetBlockNumber(*v)
	}
	return _c
}

// SetGasUsed sets the "gas_used" field.
func (_c *DeploymentCreate) SetGasUsed(v uint64) *DeploymentCreate {
	_c.mutation.SetGasUsed(v)
	return _c
}

// SetNillableGasUsed sets the "gas_used" field if the given value is not nil.
func (_c *DeploymentCreate) SetNillableGasUsed(v *uint64) *DeploymentCreate {
	if v != nil {
		_c.SetGasUsed(*v)
	}
	return _c
}

// SetDeployerAddress sets the "deployer_address" field.
func (_c *DeploymentCreate) SetDeployerAddress(v string) *DeploymentCreate {
	_c.mutation.SetDeployerAddress(v)
	return _c
}

// SetEigendaCommitment sets the "eigenda_commitment" field.
func (_c *DeploymentCreate) SetEigendaCommitment(v string) *DeploymentCreate {
	_c.mutation.SetEigendaCommitment(v)
	return _c
}

// SetNillableEigendaCommitment sets the "eigenda_commitment" field if the given value is not nil.
func (_c *DeploymentCreate) SetNillableEigendaCommitment(v *string) *DeploymentCreate {
	if v != nil {
		_c.SetEigendaCommitment(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DeploymentCreate) SetStatus(v deployment.Status) *DeploymentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DeploymentCreate) SetNillableStatus(v *deployment.Status) *DeploymentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DeploymentCreate) SetErrorMessage(v string) *DeploymentCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DeploymentCreate) SetNillableErrorMessage(v *string) *DeploymentCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *DeploymentCreate) SetSubmittedAt(v time.Time) *DeploymentCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *DeploymentCreate) SetNillableSubmittedAt(v *time.Time) *DeploymentCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_c *DeploymentCreate) SetConfirmedAt(v time.Time) *DeploymentCreate {
	_c.mutation.SetConfirmedAt(v)
	return _c
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_c *DeploymentCreate) SetNillableConfirmedAt(v *time.Time) *DeploymentCreate {
	if v != nil {
		_c.SetConfirmedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeploymentCreate) SetID(v string) *DeploymentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *DeploymentCreate) SetContract(v *Contract) *DeploymentCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the DeploymentMutation object of the builder.
func (_c *DeploymentCreate) Mutation() *DeploymentMutation {
	return _c.mutation
}

// Save creates the Deployment in the database.
func (_c *DeploymentCreate) Save(ctx context.Context) (*Deployment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeploymentCreate) SaveX(ctx context.Context) *Deployment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeploymentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeploymentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeploymentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := deployment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		v := deployment.DefaultSubmittedAt()
		_c.mutation.SetSubmittedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeploymentCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "Deployment.contract_id"`)}
	}
	if _, ok := _c.mutation.Network(); !ok {
		return &ValidationError{Name: "network", err: errors.New(`ent: missing required field "Deployment.network"`)}
	}
	if _, ok := _c.mutation.DeployerAddress(); !ok {
		return &ValidationError{Name: "deployer_address", err: errors.New(`ent: missing required field "Deployment.deployer_address"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Deployment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := deployment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Deployment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`ent: missing required field "Deployment.submitted_at"`)}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "Deployment.contract"`)}
	}
	return nil
}

func (_c *DeploymentCreate) sqlSave(ctx context.Context) (*Deployment, error) {
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
			return nil, fmt.Errorf("unexpected Deployment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeploymentCreate) createSpec() (*Deployment, *sqlgraph.CreateSpec) {
	var (
		_node = &Deployment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deployment.Table, sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Network(); ok {
		_spec.SetField(deployment.FieldNetwork, field.TypeString, value)
		_node.Network = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(deployment.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.TxHash(); ok {
		_spec.SetField(deployment.FieldTxHash, field.TypeString, value)
		_node.TxHash = value
	}
	if value, ok := _c.mutation.BlockNumber(); ok {
		_spec.SetField(deployment.FieldBlockNumber, field.TypeInt64, value)
		_node.BlockNumber = value
	}
	if value, ok := _c.mutation.GasUsed(); ok {
		_spec.SetField(deployment.FieldGasUsed, field.TypeUint64, value)
		_node.GasUsed = value
	}
	if value, ok := _c.mutation.DeployerAddress(); ok {
		_spec.SetField(deployment.FieldDeployerAddress, field.TypeString, value)
		_node.DeployerAddress = value
	}
	if value, ok := _c.mutation.EigendaCommitment(); ok {
		_spec.SetField(deployment.FieldEigendaCommitment, field.TypeString, value)
		_node.EigendaCommitment = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(deployment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(deployment.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(deployment.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	if value, ok := _c.mutation.ConfirmedAt(); ok {
		_spec.SetField(deployment.FieldConfirmedAt, field.TypeTime, value)
		_node.ConfirmedAt = &value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deployment.ContractTable,
			Columns: []string{deployment.ContractColumn},
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
//	client.Deployment.Create().
//		SetContractID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeploymentUpsert) {
//			SetContractID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeploymentCreate) OnConflict(opts ...sql.ConflictOption) *DeploymentUpsertOne {
	_c.conflict = opts
	return &DeploymentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Deployment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeploymentCreate) OnConflictColumns(columns ...string) *DeploymentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeploymentUpsertOne{
		create: _c,
	}
}

type (
	// DeploymentUpsertOne is the builder for "upsert"-ing
	//  one Deployment node.
	DeploymentUpsertOne struct {
		create *DeploymentCreate
	}

	// DeploymentUpsert is the "OnConflict" setter.
	DeploymentUpsert struct {
		*sql.UpdateSet
	}
)

// SetNetwork sets the "network" field.
func (u *DeploymentUpsert) SetNetwork(v string) *DeploymentUpsert {
	u.Set(deployment.FieldNetwork, v)
	return u
}

// UpdateNetwork sets the "network" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateNetwork() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldNetwork)
	return u
}

// SetAddress sets the "address" field.
func (u *DeploymentUpsert) SetAddress(v string) *DeploymentUpsert {
	u.Set(deployment.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateAddress() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *DeploymentUpsert) ClearAddress() *DeploymentUpsert {
	u.SetNull(deployment.FieldAddress)
	return u
}

// SetTxHash sets the "tx_hash" field.
func (u *DeploymentUpsert) SetTxHash(v string) *DeploymentUpsert {
	u.Set(deployment.FieldTxHash, v)
	return u
}

// UpdateTxHash sets the "tx_hash" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateTxHash() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldTxHash)
	return u
}

// ClearTxHash clears the value of the "tx_hash" field.
func (u *DeploymentUpsert) ClearTxHash() *DeploymentUpsert {
	u.SetNull(deployment.FieldTxHash)
	return u
}

// SetBlockNumber sets the "block_number" field.
func (u *DeploymentUpsert) SetBlockNumber(v int64) *DeploymentUpsert {
	u.Set(deployment.FieldBlockNumber, v)
	return u
}

// UpdateBlockNumber sets the "block_number" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateBlockNumber() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldBlockNumber)
	return u
}

// AddBlockNumber adds v to the "block_number" field.
func (u *DeploymentUpsert) AddBlockNumber(v int64) *DeploymentUpsert {
	u.Add(deployment.FieldBlockNumber, v)
	return u
}

// ClearBlockNumber clears the value of the "block_number" field.
func (u *DeploymentUpsert) ClearBlockNumber() *DeploymentUpsert {
	u.SetNull(deployment.FieldBlockNumber)
	return u
}

// SetGasUsed sets the "gas_used" field.
func (u *DeploymentUpsert) SetGasUsed(v uint64) *DeploymentUpsert {
	u.Set(deployment.FieldGasUsed, v)
	return u
}

// UpdateGasUsed sets the "gas_used" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateGasUsed() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldGasUsed)
	return u
}

// AddGasUsed adds v to the "gas_used" field.
func (u *DeploymentUpsert) AddGasUsed(v uint64) *DeploymentUpsert {
	u.Add(deployment.FieldGasUsed, v)
	return u
}

// ClearGasUsed clears the value of the "gas_used" field.
func (u *DeploymentUpsert) ClearGasUsed() *DeploymentUpsert {
	u.SetNull(deployment.FieldGasUsed)
	return u
}

// SetDeployerAddress sets the "deployer_address" field.
func (u *DeploymentUpsert) SetDeployerAddress(v string) *DeploymentUpsert {
	u.Set(deployment.FieldDeployerAddress, v)
	return u
}

// UpdateDeployerAddress sets the "deployer_address" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateDeployerAddress() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldDeployerAddress)
	return u
}

// SetEigendaCommitment sets the "eigenda_commitment" field.
func (u *DeploymentUpsert) SetEigendaCommitment(v string) *DeploymentUpsert {
	u.Set(deployment.FieldEigendaCommitment, v)
	return u
}

// UpdateEigendaCommitment sets the "eigenda_commitment" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateEigendaCommitment() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldEigendaCommitment)
	return u
}

// ClearEigendaCommitment clears the value of the "eigenda_commitment" field.
func (u *DeploymentUpsert) ClearEigendaCommitment() *DeploymentUpsert {
	u.SetNull(deployment.FieldEigendaCommitment)
	return u
}

// SetStatus sets the "status" field.
func (u *DeploymentUpsert) SetStatus(v deployment.Status) *DeploymentUpsert {
	u.Set(deployment.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateStatus() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *DeploymentUpsert) SetErrorMessage(v string) *DeploymentUpsert {
	u.Set(deployment.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateErrorMessage() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DeploymentUpsert) ClearErrorMessage() *DeploymentUpsert {
	u.SetNull(deployment.FieldErrorMessage)
	return u
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *DeploymentUpsert) SetSubmittedAt(v time.Time) *DeploymentUpsert {
	u.Set(deployment.FieldSubmittedAt, v)
	return u
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateSubmittedAt() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldSubmittedAt)
	return u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *DeploymentUpsert) SetConfirmedAt(v time.Time) *DeploymentUpsert {
	u.Set(deployment.FieldConfirmedAt, v)
	return u
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateConfirmedAt() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldConfirmedAt)
	return u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *DeploymentUpsert) ClearConfirmedAt() *DeploymentUpsert {
	u.SetNull(deployment.FieldConfirmedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Deployment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deployment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DeploymentUpsertOne) UpdateNewValues() *DeploymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(deployment.FieldID)
		}
		if _, exists := u.create.mutation.ContractID(); exists {
			s.SetIgnore(deployment.FieldContractID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Deployment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DeploymentUpsertOne) Ignore() *DeploymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeploymentUpsertOne) DoNothing() *DeploymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeploymentCreate.OnConflict
// documentation for more info.
func (u *DeploymentUpsertOne) Update(set func(*DeploymentUpsert)) *DeploymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeploymentUpsert{UpdateSet: update})
	}))
	return u
}

// SetNetwork sets the "network" field.
func (u *DeploymentUpsertOne) SetNetwork(v string) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetNetwork(v)
	})
}

// UpdateNetwork sets the "network" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateNetwork() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateNetwork()
	})
}

// SetAddress sets the "address" field.
func (u *DeploymentUpsertOne) SetAddress(v string) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateAddress() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *DeploymentUpsertOne) ClearAddress() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearAddress()
	})
}

// SetTxHash sets the "tx_hash" field.
func (u *DeploymentUpsertOne) SetTxHash(v string) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetTxHash(v)
	})
}

// UpdateTxHash sets the "tx_hash" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateTxHash() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateTxHash()
	})
}

// ClearTxHash clears the value of the "tx_hash" field.
func (u *DeploymentUpsertOne) ClearTxHash() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearTxHash()
	})
}

// SetBlockNumber sets the "block_number" field.
func (u *DeploymentUpsertOne) SetBlockNumber(v int64) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetBlockNumber(v)
	})
}

// AddBlockNumber adds v to the "block_number" field.
func (u *DeploymentUpsertOne) AddBlockNumber(v int64) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.AddBlockNumber(v)
	})
}

// UpdateBlockNumber sets the "block_number" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateBlockNumber() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateBlockNumber()
	})
}

// ClearBlockNumber clears the value of the "block_number" field.
func (u *DeploymentUpsertOne) ClearBlockNumber() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearBlockNumber()
	})
}

// SetGasUsed sets the "gas_used" field.
func (u *DeploymentUpsertOne) SetGasUsed(v uint64) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetGasUsed(v)
	})
}

// AddGasUsed adds v to the "gas_used" field.
func (u *DeploymentUpsertOne) AddGasUsed(v uint64) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.AddGasUsed(v)
	})
}

// UpdateGasUsed sets the "gas_used" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateGasUsed() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateGasUsed()
	})
}

// ClearGasUsed clears the value of the "gas_used" field.
func (u *DeploymentUpsertOne) ClearGasUsed() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearGasUsed()
	})
}

// SetDeployerAddress sets the "deployer_address" field.
func (u *DeploymentUpsertOne) SetDeployerAddress(v string) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetDeployerAddress(v)
	})
}

// UpdateDeployerAddress sets the "deployer_address" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateDeployerAddress() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateDeployerAddress()
	})
}

// SetEigendaCommitment sets the "eigenda_commitment" field.
func (u *DeploymentUpsertOne) SetEigendaCommitment(v string) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetEigendaCommitment(v)
	})
}

// UpdateEigendaCommitment sets the "eigenda_commitment" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateEigendaCommitment() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateEigendaCommitment()
	})
}

// ClearEigendaCommitment clears the value of the "eigenda_commitment" field.
func (u *DeploymentUpsertOne) ClearEigendaCommitment() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearEigendaCommitment()
	})
}

// SetStatus sets the "status" field.
func (u *DeploymentUpsertOne) SetStatus(v deployment.Status) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateStatus() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *DeploymentUpsertOne) SetErrorMessage(v string) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateErrorMessage() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DeploymentUpsertOne) ClearErrorMessage() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearErrorMessage()
	})
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *DeploymentUpsertOne) SetSubmittedAt(v time.Time) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetSubmittedAt(v)
	})
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateSubmittedAt() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateSubmittedAt()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *DeploymentUpsertOne) SetConfirmedAt(v time.Time) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateConfirmedAt() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateConfirmedAt()
	})
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *DeploymentUpsertOne) ClearConfirmedAt() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearConfirmedAt()
	})
}

// Exec executes the query.
func (u *DeploymentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeploymentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeploymentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DeploymentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DeploymentUpsertOne.ID is not supported by MySQL driver. Use DeploymentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DeploymentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DeploymentCreateBulk is the builder for creating many Deployment entities in bulk.
type DeploymentCreateBulk struct {
	config
	err      error
	builders []*DeploymentCreate
	conflict []sql.ConflictOption
}

// Save creates the Deployment entities in the database.
func (_c *DeploymentCreateBulk) Save(ctx context.Context) ([]*Deployment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Deployment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeploymentMutation)
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
func (_c *DeploymentCreateBulk) SaveX(ctx context.Context) []*Deployment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeploymentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeploymentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Deployment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeploymentUpsert) {
//			SetContractID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeploymentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DeploymentUpsertBulk {
	_c.conflict = opts
	return &DeploymentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Deployment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeploymentCreateBulk) OnConflictColumns(columns ...string) *DeploymentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeploymentUpsertBulk{
		create: _c,
	}
}

// DeploymentUpsertBulk is the builder for "upsert"-ing
// a bulk of Deployment nodes.
type DeploymentUpsertBulk struct {
	create *DeploymentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Deployment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deployment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DeploymentUpsertBulk) UpdateNewValues() *DeploymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(deployment.FieldID)
			}
			if _, exists := b.mutation.ContractID(); exists {
				s.SetIgnore(deployment.FieldContractID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Deployment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DeploymentUpsertBulk) Ignore() *DeploymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeploymentUpsertBulk) DoNothing() *DeploymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeploymentCreateBulk.OnConflict
// documentation for more info.
func (u *DeploymentUpsertBulk) Update(set func(*DeploymentUpsert)) *DeploymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeploymentUpsert{UpdateSet: update})
	}))
	return u
}

// SetNetwork sets the "network" field.
func (u *DeploymentUpsertBulk) SetNetwork(v string) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetNetwork(v)
	})
}

// UpdateNetwork sets the "network" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateNetwork() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateNetwork()
	})
}

// SetAddress sets the "address" field.
func (u *DeploymentUpsertBulk) SetAddress(v string) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateAddress() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *DeploymentUpsertBulk) ClearAddress() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearAddress()
	})
}

// SetTxHash sets the "tx_hash" field.
func (u *DeploymentUpsertBulk) SetTxHash(v string) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetTxHash(v)
	})
}

// UpdateTxHash sets the "tx_hash" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateTxHash() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateTxHash()
	})
}

// ClearTxHash clears the value of the "tx_hash" field.
func (u *DeploymentUpsertBulk) ClearTxHash() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearTxHash()
	})
}

// SetBlockNumber sets the "block_number" field.
func (u *DeploymentUpsertBulk) SetBlockNumber(v int64) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetBlockNumber(v)
	})
}

// AddBlockNumber adds v to the "block_number" field.
func (u *DeploymentUpsertBulk) AddBlockNumber(v int64) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.AddBlockNumber(v)
	})
}

// UpdateBlockNumber sets the "block_number" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateBlockNumber() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateBlockNumber()
	})
}

// ClearBlockNumber clears the value of the "block_number" field.
func (u *DeploymentUpsertBulk) ClearBlockNumber() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearBlockNumber()
	})
}

// SetGasUsed sets the "gas_used" field.
func (u *DeploymentUpsertBulk) SetGasUsed(v uint64) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetGasUsed(v)
	})
}

// AddGasUsed adds v to the "gas_used" field.
func (u *DeploymentUpsertBulk) AddGasUsed(v uint64) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.AddGasUsed(v)
	})
}

// UpdateGasUsed sets the "gas_used" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateGasUsed() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateGasUsed()
	})
}

// ClearGasUsed clears the value of the "gas_used" field.
func (u *DeploymentUpsertBulk) ClearGasUsed() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearGasUsed()
	})
}

// SetDeployerAddress sets the "deployer_address" field.
func (u *DeploymentUpsertBulk) SetDeployerAddress(v string) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetDeployerAddress(v)
	})
}

// UpdateDeployerAddress sets the "deployer_address" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateDeployerAddress() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateDeployerAddress()
	})
}

// SetEigendaCommitment sets the "eigenda_commitment" field.
func (u *DeploymentUpsertBulk) SetEigendaCommitment(v string) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetEigendaCommitment(v)
	})
}

// UpdateEigendaCommitment sets the "eigenda_commitment" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateEigendaCommitment() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateEigendaCommitment()
	})
}

// ClearEigendaCommitment clears the value of the "eigenda_commitment" field.
func (u *DeploymentUpsertBulk) ClearEigendaCommitment() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearEigendaCommitment()
	})
}

// SetStatus sets the "status" field.
func (u *DeploymentUpsertBulk) SetStatus(v deployment.Status) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateStatus() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *DeploymentUpsertBulk) SetErrorMessage(v string) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateErrorMessage() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DeploymentUpsertBulk) ClearErrorMessage() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearErrorMessage()
	})
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *DeploymentUpsertBulk) SetSubmittedAt(v time.Time) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetSubmittedAt(v)
	})
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateSubmittedAt() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateSubmittedAt()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *DeploymentUpsertBulk) SetConfirmedAt(v time.Time) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateConfirmedAt() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateConfirmedAt()
	})
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *DeploymentUpsertBulk) ClearConfirmedAt() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearConfirmedAt()
	})
}

// Exec executes the query.
func (u *DeploymentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DeploymentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeploymentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeploymentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
