// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chainforge-ai/chainforge/ent/deployment"
	"github.com/chainforge-ai/chainforge/ent/predicate"
)

// DeploymentUpdate is the builder for updating Deployment entities.
type DeploymentUpdate struct {
	config
	hooks    []Hook
	mutation *DeploymentMutation
}

// Where appends a list predicates to the DeploymentUpdate builder.
func (_u *DeploymentUpdate) Where(ps ...predicate.Deployment) *DeploymentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNetwork sets the "network" field.
func (_u *DeploymentUpdate) SetNetwork(v string) *DeploymentUpdate {
	_u.mutation.SetNetwork(v)
	return _u
}

// SetNillableNetwork sets the "network" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableNetwork(v *string) *DeploymentUpdate {
	if v != nil {
		_u.SetNetwork(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *DeploymentUpdate) SetAddress(v string) *DeploymentUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableAddress(v *string) *DeploymentUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *DeploymentUpdate) ClearAddress() *DeploymentUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetTxHash sets the "tx_hash" field.
func (_u *DeploymentUpdate) SetTxHash(v string) *DeploymentUpdate {
	_u.mutation.SetTxHash(v)
	return _u
}

// SetNillableTxHash sets the "tx_hash" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableTxHash(v *string) *DeploymentUpdate {
	if v != nil {
		_u.SetTxHash(*v)
	}
	return _u
}

// ClearTxHash clears the value of the "tx_hash" field.
func (_u *DeploymentUpdate) ClearTxHash() *DeploymentUpdate {
	_u.mutation.ClearTxHash()
	return _u
}

// SetBlockNumber sets the "block_number" field.
func (_u *DeploymentUpdate) SetBlockNumber(v int64) *DeploymentUpdate {
	_u.mutation.ResetBlockNumber()
	_u.mutation.SetBlockNumber(v)
	return _u
}

// SetNillableBlockNumber sets the "block_number" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableBlockNumber(v *int64) *DeploymentUpdate {
	if v != nil {
		_u.SetBlockNumber(*v)
	}
	return _u
}

// AddBlockNumber adds value to the "block_number" field.
func (_u *DeploymentUpdate) AddBlockNumber(v int64) *DeploymentUpdate {
	_u.mutation.AddBlockNumber(v)
	return _u
}

// ClearBlockNumber clears the value of the "block_number" field.
func (_u *DeploymentUpdate) ClearBlockNumber() *DeploymentUpdate {
	_u.mutation.ClearBlockNumber()
	return _u
}

// SetGasUsed sets the "gas_used" field.
func (_u *DeploymentUpdate) SetGasUsed(v uint64) *DeploymentUpdate {
	_u.mutation.ResetGasUsed()
	_u.mutation.SetGasUsed(v)
	return _u
}

// SetNillableGasUsed sets the "gas_used" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableGasUsed(v *uint64) *DeploymentUpdate {
	if v != nil {
		_u.SetGasUsed(*v)
	}
	return _u
}

// AddGasUsed adds value to the "gas_used" field.
func (_u *DeploymentUpdate) AddGasUsed(v int64) *DeploymentUpdate {
	_u.mutation.AddGasUsed(v)
	return _u
}

// ClearGasUsed clears the value of the "gas_used" field.
func (_u *DeploymentUpdate) ClearGasUsed() *DeploymentUpdate {
	_u.mutation.ClearGasUsed()
	return _u
}

// SetDeployerAddress sets the "deployer_address" field.
func (_u *DeploymentUpdate) SetDeployerAddress(v string) *DeploymentUpdate {
	_u.mutation.SetDeployerAddress(v)
	return _u
}

// SetNillableDeployerAddress sets the "deployer_address" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableDeployerAddress(v *string) *DeploymentUpdate {
	if v != nil {
		_u.SetDeployerAddress(*v)
	}
	return _u
}

// SetEigendaCommitment sets the "eigenda_commitment" field.
func (_u *DeploymentUpdate) SetEigendaCommitment(v string) *DeploymentUpdate {
	_u.mutation.SetEigendaCommitment(v)
	return _u
}

// SetNillableEigendaCommitment sets the "eigenda_commitment" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableEigendaCommitment(v *string) *DeploymentUpdate {
	if v != nil {
		_u.SetEigendaCommitment(*v)
	}
	return _u
}

// ClearEigendaCommitment clears the value of the "eigenda_commitment" field.
func (_u *DeploymentUpdate) ClearEigendaCommitment() *DeploymentUpdate {
	_u.mutation.ClearEigendaCommitment()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeploymentUpdate) SetStatus(v deployment.Status) *DeploymentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableStatus(v *deployment.Status) *DeploymentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DeploymentUpdate) SetErrorMessage(v string) *DeploymentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableErrorMessage(v *string) *DeploymentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DeploymentUpdate) ClearErrorMessage() *DeploymentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *DeploymentUpdate) SetSubmittedAt(v time.Time) *DeploymentUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableSubmittedAt(v *time.Time) *DeploymentUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *DeploymentUpdate) SetConfirmedAt(v time.Time) *DeploymentUpdate {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableConfirmedAt(v *time.Time) *DeploymentUpdate {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *DeploymentUpdate) ClearConfirmedAt() *DeploymentUpdate {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// Mutation returns the DeploymentMutation object of the builder.
func (_u *DeploymentUpdate) Mutation() *DeploymentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeploymentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeploymentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeploymentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeploymentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeploymentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deployment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Deployment.status": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Deployment.contract"`)
	}
	return nil
}

func (_u *DeploymentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deployment.Table, deployment.Columns, sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Network(); ok {
		_spec.SetField(deployment.FieldNetwork, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(deployment.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(deployment.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.TxHash(); ok {
		_spec.SetField(deployment.FieldTxHash, field.TypeString, value)
	}
	if _u.mutation.TxHashCleared() {
		_spec.ClearField(deployment.FieldTxHash, field.TypeString)
	}
	if value, ok := _u.mutation.BlockNumber(); ok {
		_spec.SetField(deployment.FieldBlockNumber, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBlockNumber(); ok {
		_spec.AddField(deployment.FieldBlockNumber, field.TypeInt64, value)
	}
	if _u.mutation.BlockNumberCleared() {
		_spec.ClearField(deployment.FieldBlockNumber, field.TypeInt64)
	}
	if value, ok := _u.mutation.GasUsed(); ok {
		_spec.SetField(deployment.FieldGasUsed, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedGasUsed(); ok {
		_spec.AddField(deployment.FieldGasUsed, field.TypeUint64, value)
	}
	if _u.mutation.GasUsedCleared() {
		_spec.ClearField(deployment.FieldGasUsed, field.TypeUint64)
	}
	if value, ok := _u.mutation.DeployerAddress(); ok {
		_spec.SetField(deployment.FieldDeployerAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.EigendaCommitment(); ok {
		_spec.SetField(deployment.FieldEigendaCommitment, field.TypeString, value)
	}
	if _u.mutation.EigendaCommitmentCleared() {
		_spec.ClearField(deployment.FieldEigendaCommitment, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deployment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(deployment.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(deployment.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(deployment.FieldSubmittedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(deployment.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(deployment.FieldConfirmedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deployment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeploymentUpdateOne is the builder for updating a single Deployment entity.
type DeploymentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeploymentMutation
}

// SetNetwork sets the "network" field.
func (_u *DeploymentUpdateOne) SetNetwork(v string) *DeploymentUpdateOne {
	_u.mutation.SetNetwork(v)
	return _u
}

// SetNillableNetwork sets the "network" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableNetwork(v *string) *DeploymentUpdateOne {
	if v != nil {
		_u.SetNetwork(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *DeploymentUpdateOne) SetAddress(v string) *DeploymentUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableAddress(v *string) *DeploymentUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *DeploymentUpdateOne) ClearAddress() *DeploymentUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetTxHash sets the "tx_hash" field.
func (_u *DeploymentUpdateOne) SetTxHash(v string) *DeploymentUpdateOne {
	_u.mutation.SetTxHash(v)
	return _u
}

// SetNillableTxHash sets the "tx_hash" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableTxHash(v *string) *DeploymentUpdateOne {
	if v != nil {
		_u.SetTxHash(*v)
	}
	return _u
}

// ClearTxHash clears the value of the "tx_hash" field.
func (_u *DeploymentUpdateOne) ClearTxHash() *DeploymentUpdateOne {
	_u.mutation.ClearTxHash()
	return _u
}

// SetBlockNumber sets the "block_number" field.
func (_u *DeploymentUpdateOne) SetBlockNumber(v int64) *DeploymentUpdateOne {
	_u.mutation.ResetBlockNumber()
	_u.mutation.SetBlockNumber(v)
	return _u
}

// SetNillableBlockNumber sets the "block_number" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableBlockNumber(v *int64) *DeploymentUpdateOne {
	if v != nil {
		_u.SetBlockNumber(*v)
	}
	return _u
}

// AddBlockNumber adds value to the "block_number" field.
func (_u *DeploymentUpdateOne) AddBlockNumber(v int64) *DeploymentUpdateOne {
	_u.mutation.AddBlockNumber(v)
	return _u
}

// ClearBlockNumber clears the value of the "block_number" field.
func (_u *DeploymentUpdateOne) ClearBlockNumber() *DeploymentUpdateOne {
	_u.mutation.ClearBlockNumber()
	return _u
}

// SetGasUsed sets the "gas_used" field.
func (_u *DeploymentUpdateOne) SetGasUsed(v uint64) *DeploymentUpdateOne {
	_u.mutation.ResetGasUsed()
	_u.mutation.SetGasUsed(v)
	return _u
}

// SetNillableGasUsed sets the "gas_used" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableGasUsed(v *uint64) *DeploymentUpdateOne {
	if v != nil {
		_u.SetGasUsed(*v)
	}
	return _u
}

// AddGasUsed adds value to the "gas_used" field.
func (_u *DeploymentUpdateOne) AddGasUsed(v int64) *DeploymentUpdateOne {
	_u.mutation.AddGasUsed(v)
	return _u
}

// ClearGasUsed clears the value of the "gas_used" field.
func (_u *DeploymentUpdateOne) ClearGasUsed() *DeploymentUpdateOne {
	_u.mutation.ClearGasUsed()
	return _u
}

// SetDeployerAddress sets the "deployer_address" field.
func (_u *DeploymentUpdateOne) SetDeployerAddress(v string) *DeploymentUpdateOne {
	_u.mutation.SetDeployerAddress(v)
	return _u
}

// SetNillableDeployerAddress sets the "deployer_address" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableDeployerAddress(v *string) *DeploymentUpdateOne {
	if v != nil {
		_u.SetDeployerAddress(*v)
	}
	return _u
}

// SetEigendaCommitment sets the "eigenda_commitment" field.
func (_u *DeploymentUpdateOne) SetEigendaCommitment(v string) *DeploymentUpdateOne {
	_u.mutation.SetEigendaCommitment(v)
	return _u
}

// SetNillableEigendaCommitment sets the "eigenda_commitment" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableEigendaCommitment(v *string) *DeploymentUpdateOne {
	if v != nil {
		_u.SetEigendaCommitment(*v)
	}
	return _u
}

// ClearEigendaCommitment clears the value of the "eigenda_commitment" field.
func (_u *DeploymentUpdateOne) ClearEigendaCommitment() *DeploymentUpdateOne {
	_u.mutation.ClearEigendaCommitment()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeploymentUpdateOne) SetStatus(v deployment.Status) *DeploymentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableStatus(v *deployment.Status) *DeploymentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DeploymentUpdateOne) SetErrorMessage(v string) *DeploymentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableErrorMessage(v *string) *DeploymentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DeploymentUpdateOne) ClearErrorMessage() *DeploymentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *DeploymentUpdateOne) SetSubmittedAt(v time.Time) *DeploymentUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableSubmittedAt(v *time.Time) *DeploymentUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *DeploymentUpdateOne) SetConfirmedAt(v time.Time) *DeploymentUpdateOne {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableConfirmedAt(v *time.Time) *DeploymentUpdateOne {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *DeploymentUpdateOne) ClearConfirmedAt() *DeploymentUpdateOne {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// Mutation returns the DeploymentMutation object of the builder.
func (_u *DeploymentUpdateOne) Mutation() *DeploymentMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeploymentUpdate builder.
func (_u *DeploymentUpdateOne) Where(ps ...predicate.Deployment) *DeploymentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeploymentUpdateOne) Select(field string, fields ...string) *DeploymentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Deployment entity.
func (_u *DeploymentUpdateOne) Save(ctx context.Context) (*Deployment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeploymentUpdateOne) SaveX(ctx context.Context) *Deployment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeploymentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeploymentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeploymentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deployment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Deployment.status": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Deployment.contract"`)
	}
	return nil
}

func (_u *DeploymentUpdateOne) sqlSave(ctx context.Context) (_node *Deployment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deployment.Table, deployment.Columns, sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Deployment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deployment.FieldID)
		for _, f := range fields {
			if !deployment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deployment.FieldID {
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
	if value, ok := _u.mutation.Network(); ok {
		_spec.SetField(deployment.FieldNetwork, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(deployment.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(deployment.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.TxHash(); ok {
		_spec.SetField(deployment.FieldTxHash, field.TypeString, value)
	}
	if _u.mutation.TxHashCleared() {
		_spec.ClearField(deployment.FieldTxHash, field.TypeString)
	}
	if value, ok := _u.mutation.BlockNumber(); ok {
		_spec.SetField(deployment.FieldBlockNumber, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBlockNumber(); ok {
		_spec.AddField(deployment.FieldBlockNumber, field.TypeInt64, value)
	}
	if _u.mutation.BlockNumberCleared() {
		_spec.ClearField(deployment.FieldBlockNumber, field.TypeInt64)
	}
	if value, ok := _u.mutation.GasUsed(); ok {
		_spec.SetField(deployment.FieldGasUsed, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedGasUsed(); ok {
		_spec.AddField(deployment.FieldGasUsed, field.TypeUint64, value)
	}
	if _u.mutation.GasUsedCleared() {
		_spec.ClearField(deployment.FieldGasUsed, field.TypeUint64)
	}
	if value, ok := _u.mutation.DeployerAddress(); ok {
		_spec.SetField(deployment.FieldDeployerAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.EigendaCommitment(); ok {
		_spec.SetField(deployment.FieldEigendaCommitment, field.TypeString, value)
	}
	if _u.mutation.EigendaCommitmentCleared() {
		_spec.ClearField(deployment.FieldEigendaCommitment, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deployment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(deployment.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(deployment.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(deployment.FieldSubmittedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(deployment.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(deployment.FieldConfirmedAt, field.TypeTime)
	}
	_node = &Deployment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deployment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
