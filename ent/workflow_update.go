// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/chainforge-ai/chainforge/ent/contract"
	"github.com/chainforge-ai/chainforge/ent/event"
	"github.com/chainforge-ai/chainforge/ent/predicate"
	"github.com/chainforge-ai/chainforge/ent/workflow"
)

// WorkflowUpdate is the builder for updating Workflow entities.
type WorkflowUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowMutation
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdate) Where(ps ...predicate.Workflow) *WorkflowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *WorkflowUpdate) SetOwner(v string) *WorkflowUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableOwner(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *WorkflowUpdate) ClearOwner() *WorkflowUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *WorkflowUpdate) SetContractType(v string) *WorkflowUpdate {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableContractType(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowUpdate) SetStatus(v workflow.Status) *WorkflowUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableStatus(v *workflow.Status) *WorkflowUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *WorkflowUpdate) SetProgress(v int) *WorkflowUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableProgress(v *int) *WorkflowUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *WorkflowUpdate) AddProgress(v int) *WorkflowUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetNetwork sets the "network" field.
func (_u *WorkflowUpdate) SetNetwork(v string) *WorkflowUpdate {
	_u.mutation.SetNetwork(v)
	return _u
}

// SetNillableNetwork sets the "network" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableNetwork(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetNetwork(*v)
	}
	return _u
}

// SetMetisvmEnabled sets the "metisvm_enabled" field.
func (_u *WorkflowUpdate) SetMetisvmEnabled(v bool) *WorkflowUpdate {
	_u.mutation.SetMetisvmEnabled(v)
	return _u
}

// SetNillableMetisvmEnabled sets the "metisvm_enabled" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableMetisvmEnabled(v *bool) *WorkflowUpdate {
	if v != nil {
		_u.SetMetisvmEnabled(*v)
	}
	return _u
}

// SetFloatingPointEnabled sets the "floating_point_enabled" field.
func (_u *WorkflowUpdate) SetFloatingPointEnabled(v bool) *WorkflowUpdate {
	_u.mutation.SetFloatingPointEnabled(v)
	return _u
}

// SetNillableFloatingPointEnabled sets the "floating_point_enabled" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableFloatingPointEnabled(v *bool) *WorkflowUpdate {
	if v != nil {
		_u.SetFloatingPointEnabled(*v)
	}
	return _u
}

// SetAiInferenceEnabled sets the "ai_inference_enabled" field.
func (_u *WorkflowUpdate) SetAiInferenceEnabled(v bool) *WorkflowUpdate {
	_u.mutation.SetAiInferenceEnabled(v)
	return _u
}

// SetNillableAiInferenceEnabled sets the "ai_inference_enabled" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableAiInferenceEnabled(v *bool) *WorkflowUpdate {
	if v != nil {
		_u.SetAiInferenceEnabled(*v)
	}
	return _u
}

// SetEigendaEnabled sets the "eigenda_enabled" field.
func (_u *WorkflowUpdate) SetEigendaEnabled(v bool) *WorkflowUpdate {
	_u.mutation.SetEigendaEnabled(v)
	return _u
}

// SetNillableEigendaEnabled sets the "eigenda_enabled" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableEigendaEnabled(v *bool) *WorkflowUpdate {
	if v != nil {
		_u.SetEigendaEnabled(*v)
	}
	return _u
}

// SetPefBatchEnabled sets the "pef_batch_enabled" field.
func (_u *WorkflowUpdate) SetPefBatchEnabled(v bool) *WorkflowUpdate {
	_u.mutation.SetPefBatchEnabled(v)
	return _u
}

// SetNillablePefBatchEnabled sets the "pef_batch_enabled" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillablePefBatchEnabled(v *bool) *WorkflowUpdate {
	if v != nil {
		_u.SetPefBatchEnabled(*v)
	}
	return _u
}

// SetAuditLevel sets the "audit_level" field.
func (_u *WorkflowUpdate) SetAuditLevel(v string) *WorkflowUpdate {
	_u.mutation.SetAuditLevel(v)
	return _u
}

// SetNillableAuditLevel sets the "audit_level" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableAuditLevel(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetAuditLevel(*v)
	}
	return _u
}

// SetSkipAudit sets the "skip_audit" field.
func (_u *WorkflowUpdate) SetSkipAudit(v bool) *WorkflowUpdate {
	_u.mutation.SetSkipAudit(v)
	return _u
}

// SetNillableSkipAudit sets the "skip_audit" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableSkipAudit(v *bool) *WorkflowUpdate {
	if v != nil {
		_u.SetSkipAudit(*v)
	}
	return _u
}

// SetSkipTesting sets the "skip_testing" field.
func (_u *WorkflowUpdate) SetSkipTesting(v bool) *WorkflowUpdate {
	_u.mutation.SetSkipTesting(v)
	return _u
}

// SetNillableSkipTesting sets the "skip_testing" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableSkipTesting(v *bool) *WorkflowUpdate {
	if v != nil {
		_u.SetSkipTesting(*v)
	}
	return _u
}

// SetGasLimit sets the "gas_limit" field.
func (_u *WorkflowUpdate) SetGasLimit(v uint64) *WorkflowUpdate {
	_u.mutation.ResetGasLimit()
	_u.mutation.SetGasLimit(v)
	return _u
}

// SetNillableGasLimit sets the "gas_limit" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableGasLimit(v *uint64) *WorkflowUpdate {
	if v != nil {
		_u.SetGasLimit(*v)
	}
	return _u
}

// AddGasLimit adds value to the "gas_limit" field.
func (_u *WorkflowUpdate) AddGasLimit(v int64) *WorkflowUpdate {
	_u.mutation.AddGasLimit(v)
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *WorkflowUpdate) SetWarnings(v []string) *WorkflowUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *WorkflowUpdate) AppendWarnings(v []string) *WorkflowUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *WorkflowUpdate) ClearWarnings() *WorkflowUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowUpdate) SetErrorMessage(v string) *WorkflowUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableErrorMessage(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowUpdate) ClearErrorMessage() *WorkflowUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *WorkflowUpdate) SetCancelRequested(v bool) *WorkflowUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableCancelRequested(v *bool) *WorkflowUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowUpdate) SetPodID(v string) *WorkflowUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillablePodID(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowUpdate) ClearPodID() *WorkflowUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdate) SetUpdatedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowUpdate) SetStartedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableStartedAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowUpdate) ClearStartedAt() *WorkflowUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowUpdate) SetCompletedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowUpdate) ClearCompletedAt() *WorkflowUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *WorkflowUpdate) SetLastInteractionAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableLastInteractionAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *WorkflowUpdate) ClearLastInteractionAt() *WorkflowUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddContractIDs adds the "contracts" edge to the Contract entity by IDs.
func (_u *WorkflowUpdate) AddContractIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.AddContractIDs(ids...)
	return _u
}

// AddContracts adds the "contracts" edges to the Contract entity.
func (_u *WorkflowUpdate) AddContracts(v ...*Contract) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContractIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *WorkflowUpdate) AddEventIDs(ids ...int64) *WorkflowUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *WorkflowUpdate) AddEvents(v ...*Event) *WorkflowUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdate) Mutation() *WorkflowMutation {
	return _u.mutation
}

// ClearContracts clears all "contracts" edges to the Contract entity.
func (_u *WorkflowUpdate) ClearContracts() *WorkflowUpdate {
	_u.mutation.ClearContracts()
	return _u
}

// RemoveContractIDs removes the "contracts" edge to Contract entities by IDs.
func (_u *WorkflowUpdate) RemoveContractIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.RemoveContractIDs(ids...)
	return _u
}

// RemoveContracts removes "contracts" edges to Contract entities.
func (_u *WorkflowUpdate) RemoveContracts(v ...*Contract) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContractIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *WorkflowUpdate) ClearEvents() *WorkflowUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *WorkflowUpdate) RemoveEventIDs(ids ...int64) *WorkflowUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *WorkflowUpdate) RemoveEvents(v ...*Event) *WorkflowUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(workflow.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(workflow.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(workflow.FieldContractType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(workflow.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(workflow.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Network(); ok {
		_spec.SetField(workflow.FieldNetwork, field.TypeString, value)
	}
	if value, ok := _u.mutation.MetisvmEnabled(); ok {
		_spec.SetField(workflow.FieldMetisvmEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FloatingPointEnabled(); ok {
		_spec.SetField(workflow.FieldFloatingPointEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AiInferenceEnabled(); ok {
		_spec.SetField(workflow.FieldAiInferenceEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EigendaEnabled(); ok {
		_spec.SetField(workflow.FieldEigendaEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PefBatchEnabled(); ok {
		_spec.SetField(workflow.FieldPefBatchEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AuditLevel(); ok {
		_spec.SetField(workflow.FieldAuditLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkipAudit(); ok {
		_spec.SetField(workflow.FieldSkipAudit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SkipTesting(); ok {
		_spec.SetField(workflow.FieldSkipTesting, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GasLimit(); ok {
		_spec.SetField(workflow.FieldGasLimit, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedGasLimit(); ok {
		_spec.AddField(workflow.FieldGasLimit, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(workflow.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflow.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(workflow.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflow.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflow.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(workflow.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflow.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflow.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflow.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflow.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflow.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(workflow.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(workflow.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.ContractsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ContractsTable,
			Columns: []string{workflow.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContractsIDs(); len(nodes) > 0 && !_u.mutation.ContractsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ContractsTable,
			Columns: []string{workflow.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ContractsTable,
			Columns: []string{workflow.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowUpdateOne is the builder for updating a single Workflow entity.
type WorkflowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowMutation
}

// SetOwner sets the "owner" field.
func (_u *WorkflowUpdateOne) SetOwner(v string) *WorkflowUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableOwner(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *WorkflowUpdateOne) ClearOwner() *WorkflowUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *WorkflowUpdateOne) SetContractType(v string) *WorkflowUpdateOne {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableContractType(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowUpdateOne) SetStatus(v workflow.Status) *WorkflowUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableStatus(v *workflow.Status) *WorkflowUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *WorkflowUpdateOne) SetProgress(v int) *WorkflowUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableProgress(v *int) *WorkflowUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *WorkflowUpdateOne) AddProgress(v int) *WorkflowUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetNetwork sets the "network" field.
func (_u *WorkflowUpdateOne) SetNetwork(v string) *WorkflowUpdateOne {
	_u.mutation.SetNetwork(v)
	return _u
}

// SetNillableNetwork sets the "network" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableNetwork(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetNetwork(*v)
	}
	return _u
}

// SetMetisvmEnabled sets the "metisvm_enabled" field.
func (_u *WorkflowUpdateOne) SetMetisvmEnabled(v bool) *WorkflowUpdateOne {
	_u.mutation.SetMetisvmEnabled(v)
	return _u
}

// SetNillableMetisvmEnabled sets the "metisvm_enabled" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableMetisvmEnabled(v *bool) *WorkflowUpdateOne {
	if v != nil {
		_u.SetMetisvmEnabled(*v)
	}
	return _u
}

// SetFloatingPointEnabled sets the "floating_point_enabled" field.
func (_u *WorkflowUpdateOne) SetFloatingPointEnabled(v bool) *WorkflowUpdateOne {
	_u.mutation.SetFloatingPointEnabled(v)
	return _u
}

// SetNillableFloatingPointEnabled sets the "floating_point_enabled" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableFloatingPointEnabled(v *bool) *WorkflowUpdateOne {
	if v != nil {
		_u.SetFloatingPointEnabled(*v)
	}
	return _u
}

// SetAiInferenceEnabled sets the "ai_inference_enabled" field.
func (_u *WorkflowUpdateOne) SetAiInferenceEnabled(v bool) *WorkflowUpdateOne {
	_u.mutation.SetAiInferenceEnabled(v)
	return _u
}

// SetNillableAiInferenceEnabled sets the "ai_inference_enabled" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableAiInferenceEnabled(v *bool) *WorkflowUpdateOne {
	if v != nil {
		_u.SetAiInferenceEnabled(*v)
	}
	return _u
}

// SetEigendaEnabled sets the "eigenda_enabled" field.
func (_u *WorkflowUpdateOne) SetEigendaEnabled(v bool) *WorkflowUpdateOne {
	_u.mutation.SetEigendaEnabled(v)
	return _u
}

// SetNillableEigendaEnabled sets the "eigenda_enabled" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableEigendaEnabled(v *bool) *WorkflowUpdateOne {
	if v != nil {
		_u.SetEigendaEnabled(*v)
	}
	return _u
}

// SetPefBatchEnabled sets the "pef_batch_enabled" field.
func (_u *WorkflowUpdateOne) SetPefBatchEnabled(v bool) *WorkflowUpdateOne {
	_u.mutation.SetPefBatchEnabled(v)
	return _u
}

// SetNillablePefBatchEnabled sets the "pef_batch_enabled" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillablePefBatchEnabled(v *bool) *WorkflowUpdateOne {
	if v != nil {
		_u.SetPefBatchEnabled(*v)
	}
	return _u
}

// SetAuditLevel sets the "audit_level" field.
func (_u *WorkflowUpdateOne) SetAuditLevel(v string) *WorkflowUpdateOne {
	_u.mutation.SetAuditLevel(v)
	return _u
}

// SetNillableAuditLevel sets the "audit_level" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableAuditLevel(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetAuditLevel(*v)
	}
	return _u
}

// SetSkipAudit sets the "skip_audit" field.
func (_u *WorkflowUpdateOne) SetSkipAudit(v bool) *WorkflowUpdateOne {
	_u.mutation.SetSkipAudit(v)
	return _u
}

// SetNillableSkipAudit sets the "skip_audit" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableSkipAudit(v *bool) *WorkflowUpdateOne {
	if v != nil {
		_u.SetSkipAudit(*v)
	}
	return _u
}

// SetSkipTesting sets the "skip_testing" field.
func (_u *WorkflowUpdateOne) SetSkipTesting(v bool) *WorkflowUpdateOne {
	_u.mutation.SetSkipTesting(v)
	return _u
}

// SetNillableSkipTesting sets the "skip_testing" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableSkipTesting(v *bool) *WorkflowUpdateOne {
	if v != nil {
		_u.SetSkipTesting(*v)
	}
	return _u
}

// SetGasLimit sets the "gas_limit" field.
func (_u *WorkflowUpdateOne) SetGasLimit(v uint64) *WorkflowUpdateOne {
	_u.mutation.ResetGasLimit()
	_u.mutation.SetGasLimit(v)
	return _u
}

// SetNillableGasLimit sets the "gas_limit" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableGasLimit(v *uint64) *WorkflowUpdateOne {
	if v != nil {
		_u.SetGasLimit(*v)
	}
	return _u
}

// AddGasLimit adds value to the "gas_limit" field.
func (_u *WorkflowUpdateOne) AddGasLimit(v int64) *WorkflowUpdateOne {
	_u.mutation.AddGasLimit(v)
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *WorkflowUpdateOne) SetWarnings(v []string) *WorkflowUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *WorkflowUpdateOne) AppendWarnings(v []string) *WorkflowUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *WorkflowUpdateOne) ClearWarnings() *WorkflowUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowUpdateOne) SetErrorMessage(v string) *WorkflowUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableErrorMessage(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowUpdateOne) ClearErrorMessage() *WorkflowUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *WorkflowUpdateOne) SetCancelRequested(v bool) *WorkflowUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableCancelRequested(v *bool) *WorkflowUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowUpdateOne) SetPodID(v string) *WorkflowUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillablePodID(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowUpdateOne) ClearPodID() *WorkflowUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdateOne) SetUpdatedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowUpdateOne) SetStartedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowUpdateOne) ClearStartedAt() *WorkflowUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowUpdateOne) SetCompletedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowUpdateOne) ClearCompletedAt() *WorkflowUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *WorkflowUpdateOne) SetLastInteractionAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableLastInteractionAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *WorkflowUpdateOne) ClearLastInteractionAt() *WorkflowUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddContractIDs adds the "contracts" edge to the Contract entity by IDs.
func (_u *WorkflowUpdateOne) AddContractIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.AddContractIDs(ids...)
	return _u
}

// AddContracts adds the "contracts" edges to the Contract entity.
func (_u *WorkflowUpdateOne) AddContracts(v ...*Contract) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContractIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *WorkflowUpdateOne) AddEventIDs(ids ...int64) *WorkflowUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *WorkflowUpdateOne) AddEvents(v ...*Event) *WorkflowUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdateOne) Mutation() *WorkflowMutation {
	return _u.mutation
}

// ClearContracts clears all "contracts" edges to the Contract entity.
func (_u *WorkflowUpdateOne) ClearContracts() *WorkflowUpdateOne {
	_u.mutation.ClearContracts()
	return _u
}

// RemoveContractIDs removes the "contracts" edge to Contract entities by IDs.
func (_u *WorkflowUpdateOne) RemoveContractIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.RemoveContractIDs(ids...)
	return _u
}

// RemoveContracts removes "contracts" edges to Contract entities.
func (_u *WorkflowUpdateOne) RemoveContracts(v ...*Contract) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContractIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *WorkflowUpdateOne) ClearEvents() *WorkflowUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *WorkflowUpdateOne) RemoveEventIDs(ids ...int64) *WorkflowUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *WorkflowUpdateOne) RemoveEvents(v ...*Event) *WorkflowUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdateOne) Where(ps ...predicate.Workflow) *WorkflowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowUpdateOne) Select(field string, fields ...string) *WorkflowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workflow entity.
func (_u *WorkflowUpdateOne) Save(ctx context.Context) (*Workflow, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdateOne) SaveX(ctx context.Context) *Workflow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowUpdateOne) sqlSave(ctx context.Context) (_node *Workflow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workflow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflow.FieldID)
		for _, f := range fields {
			if !workflow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflow.FieldID {
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
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(workflow.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(workflow.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(workflow.FieldContractType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(workflow.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(workflow.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Network(); ok {
		_spec.SetField(workflow.FieldNetwork, field.TypeString, value)
	}
	if value, ok := _u.mutation.MetisvmEnabled(); ok {
		_spec.SetField(workflow.FieldMetisvmEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FloatingPointEnabled(); ok {
		_spec.SetField(workflow.FieldFloatingPointEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AiInferenceEnabled(); ok {
		_spec.SetField(workflow.FieldAiInferenceEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EigendaEnabled(); ok {
		_spec.SetField(workflow.FieldEigendaEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PefBatchEnabled(); ok {
		_spec.SetField(workflow.FieldPefBatchEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AuditLevel(); ok {
		_spec.SetField(workflow.FieldAuditLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkipAudit(); ok {
		_spec.SetField(workflow.FieldSkipAudit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SkipTesting(); ok {
		_spec.SetField(workflow.FieldSkipTesting, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GasLimit(); ok {
		_spec.SetField(workflow.FieldGasLimit, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedGasLimit(); ok {
		_spec.AddField(workflow.FieldGasLimit, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(workflow.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflow.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(workflow.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflow.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflow.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(workflow.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflow.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflow.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflow.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflow.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflow.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(workflow.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(workflow.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.ContractsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ContractsTable,
			Columns: []string{workflow.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContractsIDs(); len(nodes) > 0 && !_u.mutation.ContractsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ContractsTable,
			Columns: []string{workflow.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ContractsTable,
			Columns: []string{workflow.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Workflow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
