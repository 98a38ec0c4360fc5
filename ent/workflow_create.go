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
	"github.com/chainforge-ai/chainforge/ent/event"
	"github.com/chainforge-ai/chainforge/ent/workflow"
)

// WorkflowCreate is the builder for creating a Workflow entity.
type WorkflowCreate struct {
	config
	mutation *WorkflowMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOwner sets the "owner" field.
func (_c *WorkflowCreate) SetOwner(v string) *WorkflowCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableOwner(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetOwner(*v)
	}
	return _c
}

// SetNlpDescription sets the "nlp_description" field.
func (_c *WorkflowCreate) SetNlpDescription(v string) *WorkflowCreate {
	_c.mutation.SetNlpDescription(v)
	return _c
}

// SetContractType sets the "contract_type" field.
func (_c *WorkflowCreate) SetContractType(v string) *WorkflowCreate {
	_c.mutation.SetContractType(v)
	return _c
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableContractType(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetContractType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowCreate) SetStatus(v workflow.Status) *WorkflowCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableStatus(v *workflow.Status) *WorkflowCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *WorkflowCreate) SetProgress(v int) *WorkflowCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableProgress(v *int) *WorkflowCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetNetwork sets the "network" field.
func (_c *WorkflowCreate) SetNetwork(v string) *WorkflowCreate {
	_c.mutation.SetNetwork(v)
	return _c
}

// SetMetisvmEnabled sets the "metisvm_enabled" field.
func (_c *WorkflowCreate) SetMetisvmEnabled(v bool) *WorkflowCreate {
	_c.mutation.SetMetisvmEnabled(v)
	return _c
}

// SetNillableMetisvmEnabled sets the "metisvm_enabled" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableMetisvmEnabled(v *bool) *WorkflowCreate {
	if v != nil {
		_c.SetMetisvmEnabled(*v)
	}
	return _c
}

// SetFloatingPointEnabled sets the "floating_point_enabled" field.
func (_c *WorkflowCreate) SetFloatingPointEnabled(v bool) *WorkflowCreate {
	_c.mutation.SetFloatingPointEnabled(v)
	return _c
}

// SetNillableFloatingPointEnabled sets the "floating_point_enabled" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableFloatingPointEnabled(v *bool) *WorkflowCreate {
	if v != nil {
		_c.SetFloatingPointEnabled(*v)
	}
	return _c
}

// SetAiInferenceEnabled sets the "ai_inference_enabled" field.
func (_c *WorkflowCreate) SetAiInferenceEnabled(v bool) *WorkflowCreate {
	_c.mutation.SetAiInferenceEnabled(v)
	return _c
}

// SetNillableAiInferenceEnabled sets the "ai_inference_enabled" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableAiInferenceEnabled(v *bool) *WorkflowCreate {
	if v != nil {
		_c.SetAiInferenceEnabled(*v)
	}
	return _c
}

// SetEigendaEnabled sets the "eigenda_enabled" field.
func (_c *WorkflowCreate) SetEigendaEnabled(v bool) *WorkflowCreate {
	_c.mutation.SetEigendaEnabled(v)
	return _c
}

// SetNillableEigendaEnabled sets the "eigenda_enabled" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableEigendaEnabled(v *bool) *WorkflowCreate {
	if v != nil {
		_c.SetEigendaEnabled(*v)
	}
	return _c
}

// SetPefBatchEnabled sets the "pef_batch_enabled" field.
func (_c *WorkflowCreate) SetPefBatchEnabled(v bool) *WorkflowCreate {
	_c.mutation.SetPefBatchEnabled(v)
	return _c
}

// SetNillablePefBatchEnabled sets the "pef_batch_enabled" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillablePefBatchEnabled(v *bool) *WorkflowCreate {
	if v != nil {
		_c.SetPefBatchEnabled(*v)
	}
	return _c
}

// SetAuditLevel sets the "audit_level" field.
func (_c *WorkflowCreate) SetAuditLevel(v string) *WorkflowCreate {
	_c.mutation.SetAuditLevel(v)
	return _c
}

// SetNillableAuditLevel sets the "audit_level" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableAuditLevel(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetAuditLevel(*v)
	}
	return _c
}

// SetSkipAudit sets the "skip_audit" field.
func (_c *WorkflowCreate) SetSkipAudit(v bool) *WorkflowCreate {
	_c.mutation.SetSkipAudit(v)
	return _c
}

// SetNillableSkipAudit sets the "skip_audit" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableSkipAudit(v *bool) *WorkflowCreate {
	if v != nil {
		_c.SetSkipAudit(*v)
	}
	return _c
}

// SetSkipTesting sets the "skip_testing" field.
func (_c *WorkflowCreate) SetSkipTesting(v bool) *WorkflowCreate {
	_c.mutation.SetSkipTesting(v)
	return _c
}

// SetNillableSkipTesting sets the "skip_testing" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableSkipTesting(v *bool) *WorkflowCreate {
	if v != nil {
		_c.SetSkipTesting(*v)
	}
	return _c
}

// SetGasLimit sets the "gas_limit" field.
func (_c *WorkflowCreate) SetGasLimit(v uint64) *WorkflowCreate {
	_c.mutation.SetGasLimit(v)
	return _c
}

// SetNillableGasLimit sets the "gas_limit" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableGasLimit(v *uint64) *WorkflowCreate {
	if v != nil {
		_c.SetGasLimit(*v)
	}
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *WorkflowCreate) SetWarnings(v []string) *WorkflowCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkflowCreate) SetErrorMessage(v string) *WorkflowCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableErrorMessage(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *WorkflowCreate) SetCancelRequested(v bool) *WorkflowCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCancelRequested(v *bool) *WorkflowCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *WorkflowCreate) SetPodID(v string) *WorkflowCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillablePodID(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowCreate) SetCreatedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCreatedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowCreate) SetUpdatedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *WorkflowCreate) SetStartedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableStartedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *WorkflowCreate) SetCompletedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCompletedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *WorkflowCreate) SetLastInteractionAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableLastInteractionAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowCreate) SetID(v string) *WorkflowCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddContractIDs adds the "contracts" edge to the Contract entity by IDs.
func (_c *WorkflowCreate) AddContractIDs(ids ...string) *WorkflowCreate {
	_c.mutation.AddContractIDs(ids...)
	return _c
}

// AddContracts adds the "contracts" edges to the Contract entity.
func (_c *WorkflowCreate) AddContracts(v ...*Contract) *WorkflowCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContractIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *WorkflowCreate) AddEventIDs(ids ...int64) *WorkflowCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *WorkflowCreate) AddEvents(v ...*Event) *WorkflowCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_c *WorkflowCreate) Mutation() *WorkflowMutation {
	return _c.mutation
}

// Save creates the Workflow in the database.
func (_c *WorkflowCreate) Save(ctx context.Context) (*Workflow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowCreate) SaveX(ctx context.Context) *Workflow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowCreate) defaults() {
	if _, ok := _c.mutation.ContractType(); !ok {
		v := workflow.DefaultContractType
		_c.mutation.SetContractType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := workflow.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := workflow.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.MetisvmEnabled(); !ok {
		v := workflow.DefaultMetisvmEnabled
		_c.mutation.SetMetisvmEnabled(v)
	}
	if _, ok := _c.mutation.FloatingPointEnabled(); !ok {
		v := workflow.DefaultFloatingPointEnabled
		_c.mutation.SetFloatingPointEnabled(v)
	}
	if _, ok := _c.mutation.AiInferenceEnabled(); !ok {
		v := workflow.DefaultAiInferenceEnabled
		_c.mutation.SetAiInferenceEnabled(v)
	}
	if _, ok := _c.mutation.EigendaEnabled(); !ok {
		v := workflow.DefaultEigendaEnabled
		_c.mutation.SetEigendaEnabled(v)
	}
	if _, ok := _c.mutation.PefBatchEnabled(); !ok {
		v := workflow.DefaultPefBatchEnabled
		_c.mutation.SetPefBatchEnabled(v)
	}
	if _, ok := _c.mutation.AuditLevel(); !ok {
		v := workflow.DefaultAuditLevel
		_c.mutation.SetAuditLevel(v)
	}
	if _, ok := _c.mutation.SkipAudit(); !ok {
		v := workflow.DefaultSkipAudit
		_c.mutation.SetSkipAudit(v)
	}
	if _, ok := _c.mutation.SkipTesting(); !ok {
		v := workflow.DefaultSkipTesting
		_c.mutation.SetSkipTesting(v)
	}
	if _, ok := _c.mutation.GasLimit(); !ok {
		v := workflow.DefaultGasLimit
		_c.mutation.SetGasLimit(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := workflow.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflow.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflow.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowCreate) check() error {
	if _, ok := _c.mutation.NlpDescription(); !ok {
		return &ValidationError{Name: "nlp_description", err: errors.New(`ent: missing required field "Workflow.nlp_description"`)}
	}
	if _, ok := _c.mutation.ContractType(); !ok {
		return &ValidationError{Name: "contract_type", err: errors.New(`ent: missing required field "Workflow.contract_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Workflow.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Workflow.progress"`)}
	}
	if _, ok := _c.mutation.Network(); !ok {
		return &ValidationError{Name: "network", err: errors.New(`ent: missing required field "Workflow.network"`)}
	}
	if _, ok := _c.mutation.MetisvmEnabled(); !ok {
		return &ValidationError{Name: "metisvm_enabled", err: errors.New(`ent: missing required field "Workflow.metisvm_enabled"`)}
	}
	if _, ok := _c.mutation.FloatingPointEnabled(); !ok {
		return &ValidationError{Name: "floating_point_enabled", err: errors.New(`ent: missing required field "Workflow.floating_point_enabled"`)}
	}
	if _, ok := _c.mutation.AiInferenceEnabled(); !ok {
		return &ValidationError{Name: "ai_inference_enabled", err: errors.New(`ent: missing required field "Workflow.ai_inference_enabled"`)}
	}
	if _, ok := _c.mutation.EigendaEnabled(); !ok {
		return &ValidationError{Name: "eigenda_enabled", err: errors.New(`ent: missing required field "Workflow.eigenda_enabled"`)}
	}
	if _, ok := _c.mutation.PefBatchEnabled(); !ok {
		return &ValidationError{Name: "pef_batch_enabled", err: errors.New(`ent: missing required field "Workflow.pef_batch_enabled"`)}
	}
	if _, ok := _c.mutation.AuditLevel(); !ok {
		return &ValidationError{Name: "audit_level", err: errors.New(`ent: missing required field "Workflow.audit_level"`)}
	}
	if _, ok := _c.mutation.SkipAudit(); !ok {
		return &ValidationError{Name: "skip_audit", err: errors.New(`ent: missing required field "Workflow.skip_audit"`)}
	}
	if _, ok := _c.mutation.SkipTesting(); !ok {
		return &ValidationError{Name: "skip_testing", err: errors.New(`ent: missing required field "Workflow.skip_testing"`)}
	}
	if _, ok := _c.mutation.GasLimit(); !ok {
		return &ValidationError{Name: "gas_limit", err: errors.New(`ent: missing required field "Workflow.gas_limit"`)}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "Workflow.cancel_requested"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Workflow.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Workflow.updated_at"`)}
	}
	return nil
}

func (_c *WorkflowCreate) sqlSave(ctx context.Context) (*Workflow, error) {
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
			return nil, fmt.Errorf("unexpected Workflow.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowCreate) createSpec() (*Workflow, *sqlgraph.CreateSpec) {
	var (
		_node = &Workflow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflow.Table, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(workflow.FieldOwner, field.TypeString, value)
		_node.Owner = &value
	}
	if value, ok := _c.mutation.NlpDescription(); ok {
		_spec.SetField(workflow.FieldNlpDescription, field.TypeString, value)
		_node.NlpDescription = value
	}
	if value, ok := _c.mutation.ContractType(); ok {
		_spec.SetField(workflow.FieldContractType, field.TypeString, value)
		_node.ContractType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(workflow.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Network(); ok {
		_spec.SetField(workflow.FieldNetwork, field.TypeString, value)
		_node.Network = value
	}
	if value, ok := _c.mutation.MetisvmEnabled(); ok {
		_spec.SetField(workflow.FieldMetisvmEnabled, field.TypeBool, value)
		_node.MetisvmEnabled = value
	}
	if value, ok := _c.mutation.FloatingPointEnabled(); ok {
		_spec.SetField(workflow.FieldFloatingPointEnabled, field.TypeBool, value)
		_node.FloatingPointEnabled = value
	}
	if value, ok := _c.mutation.AiInferenceEnabled(); ok {
		_spec.SetField(workflow.FieldAiInferenceEnabled, field.TypeBool, value)
		_node.AiInferenceEnabled = value
	}
	if value, ok := _c.mutation.EigendaEnabled(); ok {
		_spec.SetField(workflow.FieldEigendaEnabled, field.TypeBool, value)
		_node.EigendaEnabled = value
	}
	if value, ok := _c.mutation.PefBatchEnabled(); ok {
		_spec.SetField(workflow.FieldPefBatchEnabled, field.TypeBool, value)
		_node.PefBatchEnabled = value
	}
	if value, ok := _c.mutation.AuditLevel(); ok {
		_spec.SetField(workflow.FieldAuditLevel, field.TypeString, value)
		_node.AuditLevel = value
	}
	if value, ok := _c.mutation.SkipAudit(); ok {
		_spec.SetField(workflow.FieldSkipAudit, field.TypeBool, value)
		_node.SkipAudit = value
	}
	if value, ok := _c.mutation.SkipTesting(); ok {
		_spec.SetField(workflow.FieldSkipTesting, field.TypeBool, value)
		_node.SkipTesting = value
	}
	if value, ok := _c.mutation.GasLimit(); ok {
		_spec.SetField(workflow.FieldGasLimit, field.TypeUint64, value)
		_node.GasLimit = value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(workflow.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workflow.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(workflow.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(workflow.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflow.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(workflow.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(workflow.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if nodes := _c.mutation.ContractsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Workflow.Create().
//		SetOwner(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowUpsert) {
//			SetOwner(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowCreate) OnConflict(opts ...sql.ConflictOption) *WorkflowUpsertOne {
	_c.conflict = opts
	return &WorkflowUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowCreate) OnConflictColumns(columns ...string) *WorkflowUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowUpsertOne{
		create: _c,
	}
}

type (
	// WorkflowUpsertOne is the builder for "upsert"-ing
	//  one Workflow node.
	WorkflowUpsertOne struct {
		create *WorkflowCreate
	}

	// WorkflowUpsert is the "OnConflict" setter.
	WorkflowUpsert struct {
		*sql.UpdateSet
	}
)

// SetOwner sets the "owner" field.
func (u *WorkflowUpsert) SetOwner(v string) *WorkflowUpsert {
	u.Set(workflow.FieldOwner, v)
	return u
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateOwner() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldOwner)
	return u
}

// ClearOwner clears the value of the "owner" field.
func (u *WorkflowUpsert) ClearOwner() *WorkflowUpsert {
	u.SetNull(workflow.FieldOwner)
	return u
}

// SetContractType sets the "contract_type" field.
func (u *WorkflowUpsert) SetContractType(v string) *WorkflowUpsert {
	u.Set(workflow.FieldContractType, v)
	return u
}

// UpdateContractType sets the "contract_type" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateContractType() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldContractType)
	return u
}

// SetStatus sets the "status" field.
func (u *WorkflowUpsert) SetStatus(v workflow.Status) *WorkflowUpsert {
	u.Set(workflow.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateStatus() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldStatus)
	return u
}

// SetProgress sets the "progress" field.
func (u *WorkflowUpsert) SetProgress(v int) *WorkflowUpsert {
	u.Set(workflow.FieldProgress, v)
	return u
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateProgress() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldProgress)
	return u
}

// AddProgress adds v to the "progress" field.
func (u *WorkflowUpsert) AddProgress(v int) *WorkflowUpsert {
	u.Add(workflow.FieldProgress, v)
	return u
}

// SetNetwork sets the "network" field.
func (u *WorkflowUpsert) SetNetwork(v string) *WorkflowUpsert {
	u.Set(workflow.FieldNetwork, v)
	return u
}

// UpdateNetwork sets the "network" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateNetwork() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldNetwork)
	return u
}

// SetMetisvmEnabled sets the "metisvm_enabled" field.
func (u *WorkflowUpsert) SetMetisvmEnabled(v bool) *WorkflowUpsert {
	u.Set(workflow.FieldMetisvmEnabled, v)
	return u
}

// UpdateMetisvmEnabled sets the "metisvm_enabled" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateMetisvmEnabled() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldMetisvmEnabled)
	return u
}

// SetFloatingPointEnabled sets the "floating_point_enabled" field.
func (u *WorkflowUpsert) SetFloatingPointEnabled(v bool) *WorkflowUpsert {
	u.Set(workflow.FieldFloatingPointEnabled, v)
	return u
}

// UpdateFloatingPointEnabled sets the "floating_point_enabled" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateFloatingPointEnabled() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldFloatingPointEnabled)
	return u
}

// SetAiInferenceEnabled sets the "ai_inference_enabled" field.
func (u *WorkflowUpsert) SetAiInferenceEnabled(v bool) *WorkflowUpsert {
	u.Set(workflow.FieldAiInferenceEnabled, v)
	return u
}

// UpdateAiInferenceEnabled sets the "ai_inference_enabled" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateAiInferenceEnabled() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldAiInferenceEnabled)
	return u
}

// SetEigendaEnabled sets the "eigenda_enabled" field.
func (u *WorkflowUpsert) SetEigendaEnabled(v bool) *WorkflowUpsert {
	u.Set(workflow.FieldEigendaEnabled, v)
	return u
}

// UpdateEigendaEnabled sets the "eigenda_enabled" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateEigendaEnabled() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldEigendaEnabled)
	return u
}

// SetPefBatchEnabled sets the "pef_batch_enabled" field.
func (u *WorkflowUpsert) SetPefBatchEnabled(v bool) *WorkflowUpsert {
	u.Set(workflow.FieldPefBatchEnabled, v)
	return u
}

// UpdatePefBatchEnabled sets the "pef_batch_enabled" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdatePefBatchEnabled() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldPefBatchEnabled)
	return u
}

// SetAuditLevel sets the "audit_level" field.
func (u *WorkflowUpsert) SetAuditLevel(v string) *WorkflowUpsert {
	u.Set(workflow.FieldAuditLevel, v)
	return u
}

// UpdateAuditLevel sets the "audit_level" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateAuditLevel() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldAuditLevel)
	return u
}

// SetSkipAudit sets the "skip_audit" field.
func (u *WorkflowUpsert) SetSkipAudit(v bool) *WorkflowUpsert {
	u.Set(workflow.FieldSkipAudit, v)
	return u
}

// UpdateSkipAudit sets the "skip_audit" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateSkipAudit() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldSkipAudit)
	return u
}

// SetSkipTesting sets the "skip_testing" field.
func (u *WorkflowUpsert) SetSkipTesting(v bool) *WorkflowUpsert {
	u.Set(workflow.FieldSkipTesting, v)
	return u
}

// UpdateSkipTesting sets the "skip_testing" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateSkipTesting() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldSkipTesting)
	return u
}

// SetGasLimit sets the "gas_limit" field.
func (u *WorkflowUpsert) SetGasLimit(v uint64) *WorkflowUpsert {
	u.Set(workflow.FieldGasLimit, v)
	return u
}

// UpdateGasLimit sets the "gas_limit" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateGasLimit() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldGasLimit)
	return u
}

// AddGasLimit adds v to the "gas_limit" field.
func (u *WorkflowUpsert) AddGasLimit(v uint64) *WorkflowUpsert {
	u.Add(workflow.FieldGasLimit, v)
	return u
}

// SetWarnings sets the "warnings" field.
func (u *WorkflowUpsert) SetWarnings(v []string) *WorkflowUpsert {
	u.Set(workflow.FieldWarnings, v)
	return u
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateWarnings() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldWarnings)
	return u
}

// ClearWarnings clears the value of the "warnings" field.
func (u *WorkflowUpsert) ClearWarnings() *WorkflowUpsert {
	u.SetNull(workflow.FieldWarnings)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkflowUpsert) SetErrorMessage(v string) *WorkflowUpsert {
	u.Set(workflow.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateErrorMessage() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkflowUpsert) ClearErrorMessage() *WorkflowUpsert {
	u.SetNull(workflow.FieldErrorMessage)
	return u
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *WorkflowUpsert) SetCancelRequested(v bool) *WorkflowUpsert {
	u.Set(workflow.FieldCancelRequested, v)
	return u
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateCancelRequested() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldCancelRequested)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowUpsert) SetPodID(v string) *WorkflowUpsert {
	u.Set(workflow.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdatePodID() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowUpsert) ClearPodID() *WorkflowUpsert {
	u.SetNull(workflow.FieldPodID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowUpsert) SetUpdatedAt(v time.Time) *WorkflowUpsert {
	u.Set(workflow.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateUpdatedAt() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldUpdatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowUpsert) SetStartedAt(v time.Time) *WorkflowUpsert {
	u.Set(workflow.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateStartedAt() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *WorkflowUpsert) ClearStartedAt() *WorkflowUpsert {
	u.SetNull(workflow.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowUpsert) SetCompletedAt(v time.Time) *WorkflowUpsert {
	u.Set(workflow.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateCompletedAt() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowUpsert) ClearCompletedAt() *WorkflowUpsert {
	u.SetNull(workflow.FieldCompletedAt)
	return u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *WorkflowUpsert) SetLastInteractionAt(v time.Time) *WorkflowUpsert {
	u.Set(workflow.FieldLastInteractionAt, v)
	return u
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateLastInteractionAt() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldLastInteractionAt)
	return u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *WorkflowUpsert) ClearLastInteractionAt() *WorkflowUpsert {
	u.SetNull(workflow.FieldLastInteractionAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflow.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowUpsertOne) UpdateNewValues() *WorkflowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workflow.FieldID)
		}
		if _, exists := u.create.mutation.NlpDescription(); exists {
			s.SetIgnore(workflow.FieldNlpDescription)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workflow.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Workflow.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkflowUpsertOne) Ignore() *WorkflowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowUpsertOne) DoNothing() *WorkflowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowCreate.OnConflict
// documentation for more info.
func (u *WorkflowUpsertOne) Update(set func(*WorkflowUpsert)) *WorkflowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwner sets the "owner" field.
func (u *WorkflowUpsertOne) SetOwner(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateOwner() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateOwner()
	})
}

// ClearOwner clears the value of the "owner" field.
func (u *WorkflowUpsertOne) ClearOwner() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearOwner()
	})
}

// SetContractType sets the "contract_type" field.
func (u *WorkflowUpsertOne) SetContractType(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetContractType(v)
	})
}

// UpdateContractType sets the "contract_type" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateContractType() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateContractType()
	})
}

// SetStatus sets the "status" field.
func (u *WorkflowUpsertOne) SetStatus(v workflow.Status) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateStatus() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateStatus()
	})
}

// SetProgress sets the "progress" field.
func (u *WorkflowUpsertOne) SetProgress(v int) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *WorkflowUpsertOne) AddProgress(v int) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateProgress() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateProgress()
	})
}

// SetNetwork sets the "network" field.
func (u *WorkflowUpsertOne) SetNetwork(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetNetwork(v)
	})
}

// UpdateNetwork sets the "network" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateNetwork() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateNetwork()
	})
}

// SetMetisvmEnabled sets the "metisvm_enabled" field.
func (u *WorkflowUpsertOne) SetMetisvmEnabled(v bool) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetMetisvmEnabled(v)
	})
}

// UpdateMetisvmEnabled sets the "metisvm_enabled" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateMetisvmEnabled() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateMetisvmEnabled()
	})
}

// SetFloatingPointEnabled sets the "floating_point_enabled" field.
func (u *WorkflowUpsertOne) SetFloatingPointEnabled(v bool) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetFloatingPointEnabled(v)
	})
}

// UpdateFloatingPointEnabled sets the "floating_point_enabled" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateFloatingPointEnabled() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateFloatingPointEnabled()
	})
}

// SetAiInferenceEnabled sets the "ai_inference_enabled" field.
func (u *WorkflowUpsertOne) SetAiInferenceEnabled(v bool) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetAiInferenceEnabled(v)
	})
}

// UpdateAiInferenceEnabled sets the "ai_inference_enabled" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateAiInferenceEnabled() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateAiInferenceEnabled()
	})
}

// SetEigendaEnabled sets the "eigenda_enabled" field.
func (u *WorkflowUpsertOne) SetEigendaEnabled(v bool) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetEigendaEnabled(v)
	})
}

// UpdateEigendaEnabled sets the "eigenda_enabled" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateEigendaEnabled() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateEigendaEnabled()
	})
}

// SetPefBatchEnabled sets the "pef_batch_enabled" field.
func (u *WorkflowUpsertOne) SetPefBatchEnabled(v bool) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetPefBatchEnabled(v)
	})
}

// UpdatePefBatchEnabled sets the "pef_batch_enabled" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdatePefBatchEnabled() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdatePefBatchEnabled()
	})
}

// SetAuditLevel sets the "audit_level" field.
func (u *WorkflowUpsertOne) SetAuditLevel(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetAuditLevel(v)
	})
}

// UpdateAuditLevel sets the "audit_level" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateAuditLevel() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateAuditLevel()
	})
}

// SetSkipAudit sets the "skip_audit" field.
func (u *WorkflowUpsertOne) SetSkipAudit(v bool) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetSkipAudit(v)
	})
}

// UpdateSkipAudit sets the "skip_audit" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateSkipAudit() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateSkipAudit()
	})
}

// SetSkipTesting sets the "skip_testing" field.
func (u *WorkflowUpsertOne) SetSkipTesting(v bool) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetSkipTesting(v)
	})
}

// UpdateSkipTesting sets the "skip_testing" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateSkipTesting() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateSkipTesting()
	})
}

// SetGasLimit sets the "gas_limit" field.
func (u *WorkflowUpsertOne) SetGasLimit(v uint64) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetGasLimit(v)
	})
}

// AddGasLimit adds v to the "gas_limit" field.
func (u *WorkflowUpsertOne) AddGasLimit(v uint64) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.AddGasLimit(v)
	})
}

// UpdateGasLimit sets the "gas_limit" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateGasLimit() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateGasLimit()
	})
}

// SetWarnings sets the "warnings" field.
func (u *WorkflowUpsertOne) SetWarnings(v []string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetWarnings(v)
	})
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateWarnings() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateWarnings()
	})
}

// ClearWarnings clears the value of the "warnings" field.
func (u *WorkflowUpsertOne) ClearWarnings() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearWarnings()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkflowUpsertOne) SetErrorMessage(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateErrorMessage() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkflowUpsertOne) ClearErrorMessage() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *WorkflowUpsertOne) SetCancelRequested(v bool) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateCancelRequested() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowUpsertOne) SetPodID(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdatePodID() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowUpsertOne) ClearPodID() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearPodID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowUpsertOne) SetUpdatedAt(v time.Time) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateUpdatedAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowUpsertOne) SetStartedAt(v time.Time) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateStartedAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *WorkflowUpsertOne) ClearStartedAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowUpsertOne) SetCompletedAt(v time.Time) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateCompletedAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowUpsertOne) ClearCompletedAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *WorkflowUpsertOne) SetLastInteractionAt(v time.Time) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateLastInteractionAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *WorkflowUpsertOne) ClearLastInteractionAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearLastInteractionAt()
	})
}

// Exec executes the query.
func (u *WorkflowUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkflowUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkflowUpsertOne.ID is not supported by MySQL driver. Use WorkflowUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkflowUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkflowCreateBulk is the builder for creating many Workflow entities in bulk.
type WorkflowCreateBulk struct {
	config
	err      error
	builders []*WorkflowCreate
	conflict []sql.ConflictOption
}

// Save creates the Workflow entities in the database.
func (_c *WorkflowCreateBulk) Save(ctx context.Context) ([]*Workflow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Workflow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowMutation)
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
func (_c *WorkflowCreateBulk) SaveX(ctx context.Context) []*Workflow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Workflow.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowUpsert) {
//			SetOwner(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkflowUpsertBulk {
	_c.conflict = opts
	return &WorkflowUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowCreateBulk) OnConflictColumns(columns ...string) *WorkflowUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowUpsertBulk{
		create: _c,
	}
}

// WorkflowUpsertBulk is the builder for "upsert"-ing
// a bulk of Workflow nodes.
type WorkflowUpsertBulk struct {
	create *WorkflowCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflow.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowUpsertBulk) UpdateNewValues() *WorkflowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workflow.FieldID)
			}
			if _, exists := b.mutation.NlpDescription(); exists {
				s.SetIgnore(workflow.FieldNlpDescription)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workflow.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkflowUpsertBulk) Ignore() *WorkflowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowUpsertBulk) DoNothing() *WorkflowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowCreateBulk.OnConflict
// documentation for more info.
func (u *WorkflowUpsertBulk) Update(set func(*WorkflowUpsert)) *WorkflowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwner sets the "owner" field.
func (u *WorkflowUpsertBulk) SetOwner(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateOwner() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateOwner()
	})
}

// ClearOwner clears the value of the "owner" field.
func (u *WorkflowUpsertBulk) ClearOwner() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearOwner()
	})
}

// SetContractType sets the "contract_type" field.
func (u *WorkflowUpsertBulk) SetContractType(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetContractType(v)
	})
}

// UpdateContractType sets the "contract_type" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateContractType() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateContractType()
	})
}

// SetStatus sets the "status" field.
func (u *WorkflowUpsertBulk) SetStatus(v workflow.Status) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateStatus() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateStatus()
	})
}

// SetProgress sets the "progress" field.
func (u *WorkflowUpsertBulk) SetProgress(v int) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *WorkflowUpsertBulk) AddProgress(v int) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateProgress() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateProgress()
	})
}

// SetNetwork sets the "network" field.
func (u *WorkflowUpsertBulk) SetNetwork(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetNetwork(v)
	})
}

// UpdateNetwork sets the "network" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateNetwork() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateNetwork()
	})
}

// SetMetisvmEnabled sets the "metisvm_enabled" field.
func (u *WorkflowUpsertBulk) SetMetisvmEnabled(v bool) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetMetisvmEnabled(v)
	})
}

// UpdateMetisvmEnabled sets the "metisvm_enabled" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateMetisvmEnabled() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateMetisvmEnabled()
	})
}

// SetFloatingPointEnabled sets the "floating_point_enabled" field.
func (u *WorkflowUpsertBulk) SetFloatingPointEnabled(v bool) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetFloatingPointEnabled(v)
	})
}

// UpdateFloatingPointEnabled sets the "floating_point_enabled" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateFloatingPointEnabled() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateFloatingPointEnabled()
	})
}

// SetAiInferenceEnabled sets the "ai_inference_enabled" field.
func (u *WorkflowUpsertBulk) SetAiInferenceEnabled(v bool) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetAiInferenceEnabled(v)
	})
}

// UpdateAiInferenceEnabled sets the "ai_inference_enabled" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateAiInferenceEnabled() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateAiInferenceEnabled()
	})
}

// SetEigendaEnabled sets the "eigenda_enabled" field.
func (u *WorkflowUpsertBulk) SetEigendaEnabled(v bool) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetEigendaEnabled(v)
	})
}

// UpdateEigendaEnabled sets the "eigenda_enabled" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateEigendaEnabled() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateEigendaEnabled()
	})
}

// SetPefBatchEnabled sets the "pef_batch_enabled" field.
func (u *WorkflowUpsertBulk) SetPefBatchEnabled(v bool) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetPefBatchEnabled(v)
	})
}

// UpdatePefBatchEnabled sets the "pef_batch_enabled" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdatePefBatchEnabled() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdatePefBatchEnabled()
	})
}

// SetAuditLevel sets the "audit_level" field.
func (u *WorkflowUpsertBulk) SetAuditLevel(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetAuditLevel(v)
	})
}

// UpdateAuditLevel sets the "audit_level" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateAuditLevel() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateAuditLevel()
	})
}

// SetSkipAudit sets the "skip_audit" field.
func (u *WorkflowUpsertBulk) SetSkipAudit(v bool) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetSkipAudit(v)
	})
}

// UpdateSkipAudit sets the "skip_audit" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateSkipAudit() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateSkipAudit()
	})
}

// SetSkipTesting sets the "skip_testing" field.
func (u *WorkflowUpsertBulk) SetSkipTesting(v bool) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetSkipTesting(v)
	})
}

// UpdateSkipTesting sets the "skip_testing" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateSkipTesting() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateSkipTesting()
	})
}

// SetGasLimit sets the "gas_limit" field.
func (u *WorkflowUpsertBulk) SetGasLimit(v uint64) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetGasLimit(v)
	})
}

// AddGasLimit adds v to the "gas_limit" field.
func (u *WorkflowUpsertBulk) AddGasLimit(v uint64) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.AddGasLimit(v)
	})
}

// UpdateGasLimit sets the "gas_limit" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateGasLimit() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateGasLimit()
	})
}

// SetWarnings sets the "warnings" field.
func (u *WorkflowUpsertBulk) SetWarnings(v []string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetWarnings(v)
	})
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateWarnings() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateWarnings()
	})
}

// ClearWarnings clears the value of the "warnings" field.
func (u *WorkflowUpsertBulk) ClearWarnings() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearWarnings()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkflowUpsertBulk) SetErrorMessage(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateErrorMessage() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkflowUpsertBulk) ClearErrorMessage() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *WorkflowUpsertBulk) SetCancelRequested(v bool) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateCancelRequested() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowUpsertBulk) SetPodID(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdatePodID() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowUpsertBulk) ClearPodID() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearPodID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowUpsertBulk) SetUpdatedAt(v time.Time) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateUpdatedAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowUpsertBulk) SetStartedAt(v time.Time) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateStartedAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *WorkflowUpsertBulk) ClearStartedAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowUpsertBulk) SetCompletedAt(v time.Time) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateCompletedAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowUpsertBulk) ClearCompletedAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *WorkflowUpsertBulk) SetLastInteractionAt(v time.Time) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateLastInteractionAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *WorkflowUpsertBulk) ClearLastInteractionAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearLastInteractionAt()
	})
}

// Exec executes the query.
func (u *WorkflowUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkflowCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
