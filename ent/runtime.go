// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/chainforge-ai/chainforge/ent/auditrecord"
	"github.com/chainforge-ai/chainforge/ent/contract"
	"github.com/chainforge-ai/chainforge/ent/deployment"
	"github.com/chainforge-ai/chainforge/ent/event"
	"github.com/chainforge-ai/chainforge/ent/schema"
	"github.com/chainforge-ai/chainforge/ent/template"
	"github.com/chainforge-ai/chainforge/ent/workflow"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditrecordFields := schema.AuditRecord{}.Fields()
	_ = auditrecordFields
	// auditrecordDescAuditLevel is the schema descriptor for audit_level field.
	auditrecordDescAuditLevel := auditrecordFields[2].Descriptor()
	// auditrecord.DefaultAuditLevel holds the default value on creation for the audit_level field.
	auditrecord.DefaultAuditLevel = auditrecordDescAuditLevel.Default.(string)
	// auditrecordDescCriticalCount is the schema descriptor for critical_count field.
	auditrecordDescCriticalCount := auditrecordFields[4].Descriptor()
	// auditrecord.DefaultCriticalCount holds the default value on creation for the critical_count field.
	auditrecord.DefaultCriticalCount = auditrecordDescCriticalCount.Default.(int)
	// auditrecordDescHighCount is the schema descriptor for high_count field.
	auditrecordDescHighCount := auditrecordFields[5].Descriptor()
	// auditrecord.DefaultHighCount holds the default value on creation for the high_count field.
	auditrecord.DefaultHighCount = auditrecordDescHighCount.Default.(int)
	// auditrecordDescMediumCount is the schema descriptor for medium_count field.
	auditrecordDescMediumCount := auditrecordFields[6].Descriptor()
	// auditrecord.DefaultMediumCount holds the default value on creation for the medium_count field.
	auditrecord.DefaultMediumCount = auditrecordDescMediumCount.Default.(int)
	// auditrecordDescLowCount is the schema descriptor for low_count field.
	auditrecordDescLowCount := auditrecordFields[7].Descriptor()
	// auditrecord.DefaultLowCount holds the default value on creation for the low_count field.
	auditrecord.DefaultLowCount = auditrecordDescLowCount.Default.(int)
	// auditrecordDescInfoCount is the schema descriptor for info_count field.
	auditrecordDescInfoCount := auditrecordFields[8].Descriptor()
	// auditrecord.DefaultInfoCount holds the default value on creation for the info_count field.
	auditrecord.DefaultInfoCount = auditrecordDescInfoCount.Default.(int)
	// auditrecordDescRiskScore is the schema descriptor for risk_score field.
	auditrecordDescRiskScore := auditrecordFields[9].Descriptor()
	// auditrecord.DefaultRiskScore holds the default value on creation for the risk_score field.
	auditrecord.DefaultRiskScore = auditrecordDescRiskScore.Default.(int)
	// auditrecordDescCreatedAt is the schema descriptor for created_at field.
	auditrecordDescCreatedAt := auditrecordFields[13].Descriptor()
	// auditrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditrecord.DefaultCreatedAt = auditrecordDescCreatedAt.Default.(func() time.Time)
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescSolidityVersion is the schema descriptor for solidity_version field.
	contractDescSolidityVersion := contractFields[8].Descriptor()
	// contract.DefaultSolidityVersion holds the default value on creation for the solidity_version field.
	contract.DefaultSolidityVersion = contractDescSolidityVersion.Default.(string)
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractFields[10].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	deploymentFields := schema.Deployment{}.Fields()
	_ = deploymentFields
	// deploymentDescSubmittedAt is the schema descriptor for submitted_at field.
	deploymentDescSubmittedAt := deploymentFields[11].Descriptor()
	// deployment.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	deployment.DefaultSubmittedAt = deploymentDescSubmittedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[6].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	templateFields := schema.Template{}.Fields()
	_ = templateFields
	// templateDescActive is the schema descriptor for active field.
	templateDescActive := templateFields[6].Descriptor()
	// template.DefaultActive holds the default value on creation for the active field.
	template.DefaultActive = templateDescActive.Default.(bool)
	// templateDescCreatedAt is the schema descriptor for created_at field.
	templateDescCreatedAt := templateFields[7].Descriptor()
	// template.DefaultCreatedAt holds the default value on creation for the created_at field.
	template.DefaultCreatedAt = templateDescCreatedAt.Default.(func() time.Time)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescContractType is the schema descriptor for contract_type field.
	workflowDescContractType := workflowFields[3].Descriptor()
	// workflow.DefaultContractType holds the default value on creation for the contract_type field.
	workflow.DefaultContractType = workflowDescContractType.Default.(string)
	// workflowDescProgress is the schema descriptor for progress field.
	workflowDescProgress := workflowFields[5].Descriptor()
	// workflow.DefaultProgress holds the default value on creation for the progress field.
	workflow.DefaultProgress = workflowDescProgress.Default.(int)
	// workflowDescMetisvmEnabled is the schema descriptor for metisvm_enabled field.
	workflowDescMetisvmEnabled := workflowFields[7].Descriptor()
	// workflow.DefaultMetisvmEnabled holds the default value on creation for the metisvm_enabled field.
	workflow.DefaultMetisvmEnabled = workflowDescMetisvmEnabled.Default.(bool)
	// workflowDescFloatingPointEnabled is the schema descriptor for floating_point_enabled field.
	workflowDescFloatingPointEnabled := workflowFields[8].Descriptor()
	// workflow.DefaultFloatingPointEnabled holds the default value on creation for the floating_point_enabled field.
	workflow.DefaultFloatingPointEnabled = workflowDescFloatingPointEnabled.Default.(bool)
	// workflowDescAiInferenceEnabled is the schema descriptor for ai_inference_enabled field.
	workflowDescAiInferenceEnabled := workflowFields[9].Descriptor()
	// workflow.DefaultAiInferenceEnabled holds the default value on creation for the ai_inference_enabled field.
	workflow.DefaultAiInferenceEnabled = workflowDescAiInferenceEnabled.Default.(bool)
	// workflowDescEigendaEnabled is the schema descriptor for eigenda_enabled field.
	workflowDescEigendaEnabled := workflowFields[10].Descriptor()
	// workflow.DefaultEigendaEnabled holds the default value on creation for the eigenda_enabled field.
	workflow.DefaultEigendaEnabled = workflowDescEigendaEnabled.Default.(bool)
	// workflowDescPefBatchEnabled is the schema descriptor for pef_batch_enabled field.
	workflowDescPefBatchEnabled := workflowFields[11].Descriptor()
	// workflow.DefaultPefBatchEnabled holds the default value on creation for the pef_batch_enabled field.
	workflow.DefaultPefBatchEnabled = workflowDescPefBatchEnabled.Default.(bool)
	// workflowDescAuditLevel is the schema descriptor for audit_level field.
	workflowDescAuditLevel := workflowFields[12].Descriptor()
	// workflow.DefaultAuditLevel holds the default value on creation for the audit_level field.
	workflow.DefaultAuditLevel = workflowDescAuditLevel.Default.(string)
	// workflowDescSkipAudit is the schema descriptor for skip_audit field.
	workflowDescSkipAudit := workflowFields[13].Descriptor()
	// workflow.DefaultSkipAudit holds the default value on creation for the skip_audit field.
	workflow.DefaultSkipAudit = workflowDescSkipAudit.Default.(bool)
	// workflowDescSkipTesting is the schema descriptor for skip_testing field.
	workflowDescSkipTesting := workflowFields[14].Descriptor()
	// workflow.DefaultSkipTesting holds the default value on creation for the skip_testing field.
	workflow.DefaultSkipTesting = workflowDescSkipTesting.Default.(bool)
	// workflowDescGasLimit is the schema descriptor for gas_limit field.
	workflowDescGasLimit := workflowFields[15].Descriptor()
	// workflow.DefaultGasLimit holds the default value on creation for the gas_limit field.
	workflow.DefaultGasLimit = workflowDescGasLimit.Default.(uint64)
	// workflowDescCancelRequested is the schema descriptor for cancel_requested field.
	workflowDescCancelRequested := workflowFields[18].Descriptor()
	// workflow.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	workflow.DefaultCancelRequested = workflowDescCancelRequested.Default.(bool)
	// workflowDescCreatedAt is the schema descriptor for created_at field.
	workflowDescCreatedAt := workflowFields[20].Descriptor()
	// workflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflow.DefaultCreatedAt = workflowDescCreatedAt.Default.(func() time.Time)
	// workflowDescUpdatedAt is the schema descriptor for updated_at field.
	workflowDescUpdatedAt := workflowFields[21].Descriptor()
	// workflow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflow.DefaultUpdatedAt = workflowDescUpdatedAt.Default.(func() time.Time)
	// workflow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflow.UpdateDefaultUpdatedAt = workflowDescUpdatedAt.UpdateDefault.(func() time.Time)
}
