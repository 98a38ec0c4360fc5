// Package coordinator sits between the HTTP layer and the pipeline. It
// validates creation requests against the network registry, owns the worker
// pool that claims queued workflows, and turns a claimed row back into a
// stage pipeline for the orchestrator.
package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chainforge-ai/chainforge/ent"
	"github.com/chainforge-ai/chainforge/pkg/audit"
	"github.com/chainforge-ai/chainforge/pkg/deploy"
	"github.com/chainforge-ai/chainforge/pkg/events"
	"github.com/chainforge-ai/chainforge/pkg/models"
	"github.com/chainforge-ai/chainforge/pkg/orchestrator"
	"github.com/chainforge-ai/chainforge/pkg/registry"
	"github.com/chainforge-ai/chainforge/pkg/services"
	"github.com/chainforge-ai/chainforge/pkg/stages"
)

// defaultBatchParallel caps concurrent deployments within one batch layer
// when the request does not say otherwise.
const defaultBatchParallel = 5

// WorkflowStore is the slice of workflow persistence the coordinator needs.
// Implemented by services.WorkflowService.
type WorkflowStore interface {
	Create(ctx context.Context, in services.CreateWorkflowInput) (*ent.Workflow, error)
	Get(ctx context.Context, id string) (*ent.Workflow, error)
	RequestCancel(ctx context.Context, id string) (string, error)
}

// Canceller cancels a locally running workflow's context. Implemented by
// *Pool; nil when this process runs no workers.
type Canceller interface {
	CancelWorkflow(id string) bool
}

// Stages bundles the five pipeline stages. Deployment is concrete because
// batch deployment calls it outside the pipeline.
type Stages struct {
	Generation  stages.Stage
	Compilation stages.Stage
	Audit       stages.Stage
	Testing     stages.Stage
	Deployment  *stages.DeploymentStage
}

// Coordinator validates requests, enqueues workflows, and executes claimed
// rows through the orchestrator.
type Coordinator struct {
	registry  *registry.Registry
	workflows WorkflowStore
	orch      *orchestrator.Orchestrator
	stages    Stages
	bus       orchestrator.Publisher
	canceller Canceller
}

// New creates a coordinator. bus may be nil; publishing is best-effort.
func New(reg *registry.Registry, workflows WorkflowStore, orch *orchestrator.Orchestrator, st Stages, bus orchestrator.Publisher) *Coordinator {
	return &Coordinator{
		registry:  reg,
		workflows: workflows,
		orch:      orch,
		stages:    st,
		bus:       bus,
	}
}

// SetCanceller wires the local worker pool for in-process cancellation.
// Called once during startup, after the pool exists.
func (c *Coordinator) SetCanceller(canceller Canceller) {
	c.canceller = canceller
}

// Create validates the request, reconciles feature toggles against the
// network registry, and enqueues the workflow. Unavailable features are
// disabled with a warning rather than rejected.
func (c *Coordinator) Create(ctx context.Context, req models.CreateWorkflowRequest) (*models.CreateWorkflowResponse, error) {
	if len(strings.TrimSpace(req.NLPInput)) < stages.MinDescriptionLength {
		return nil, services.NewValidationError("nlp_input",
			fmt.Sprintf("must be at least %d characters", stages.MinDescriptionLength))
	}
	if _, ok := c.registry.Network(req.Network); !ok {
		return nil, services.NewValidationError("network", "unknown network "+req.Network)
	}
	level, err := auditLevel(req.AuditLevel)
	if err != nil {
		return nil, err
	}

	var warnings []string
	granted := func(requested bool, feature registry.Feature) bool {
		if !requested {
			return false
		}
		if c.registry.Supports(req.Network, feature) {
			return true
		}
		warnings = append(warnings, c.registry.Fallback(req.Network, feature))
		return false
	}

	features := models.FeaturesUsed{
		MetisVM:       granted(req.OptimizeForMetisVM, registry.FeatureMetisVM),
		FloatingPoint: granted(req.EnableFloatingPoint, registry.FeatureFloatingPoint),
		AIInference:   granted(req.EnableAIInference, registry.FeatureAIInference),
		EigenDA:       granted(req.EnableEigenDA, registry.FeatureEigenDA),
	}

	wf, err := c.workflows.Create(ctx, services.CreateWorkflowInput{
		Description:   req.NLPInput,
		ContractType:  req.ContractType,
		Network:       req.Network,
		Owner:         req.Owner,
		MetisVM:       features.MetisVM,
		FloatingPoint: features.FloatingPoint,
		AIInference:   features.AIInference,
		EigenDA:       features.EigenDA,
		PEFBatch:      c.registry.Supports(req.Network, registry.FeaturePEF),
		AuditLevel:    string(level),
		SkipAudit:     req.SkipAudit,
		SkipTesting:   req.SkipTesting,
		GasLimit:      req.GasLimit,
		Warnings:      warnings,
	})
	if err != nil {
		return nil, err
	}

	c.publish(ctx, events.New(events.EventTypeWorkflowCreated, wf.ID, "",
		events.ToMap(events.WorkflowStatusData{Status: orchestrator.StatusCreated, Network: wf.Network, Warnings: warnings})))

	slog.Info("Workflow created",
		"workflow_id", wf.ID, "network", wf.Network, "contract_type", wf.ContractType,
		"warnings", len(warnings))

	return &models.CreateWorkflowResponse{
		WorkflowID:   wf.ID,
		Status:       string(wf.Status),
		Warnings:     warnings,
		FeaturesUsed: features,
	}, nil
}

// Execute runs a claimed workflow through the pipeline. Called by pool
// workers; terminal status writes happen inside the orchestrator.
func (c *Coordinator) Execute(ctx context.Context, wf *ent.Workflow) error {
	sc := &stages.Context{
		WorkflowID:      wf.ID,
		Description:     wf.NlpDescription,
		ContractType:    wf.ContractType,
		Network:         wf.Network,
		AuditLevel:      audit.Level(wf.AuditLevel),
		OptimizeMetisVM: wf.MetisvmEnabled,
		FloatingPoint:   wf.FloatingPointEnabled,
		AIInference:     wf.AiInferenceEnabled,
		EigenDA:         wf.EigendaEnabled,
		GasLimit:        wf.GasLimit,
		Warnings:        wf.Warnings,
	}

	pipeline := orchestrator.BuildPipeline(
		c.stages.Generation, c.stages.Compilation, c.stages.Audit, c.stages.Testing, c.stages.Deployment,
		orchestrator.Options{SkipAudit: wf.SkipAudit, SkipTesting: wf.SkipTesting})

	return c.orch.Run(ctx, sc, pipeline)
}

// Cancel requests cooperative cancellation. The persisted flag stops the
// workflow at its next stage boundary on whichever pod runs it; if it runs
// here, the context is cancelled immediately too. Returns the workflow
// status after the request.
func (c *Coordinator) Cancel(ctx context.Context, id string) (string, error) {
	status, err := c.workflows.RequestCancel(ctx, id)
	if err != nil {
		return "", err
	}

	if c.canceller != nil && c.canceller.CancelWorkflow(id) {
		slog.Info("Cancelled locally running workflow", "workflow_id", id)
	}
	return status, nil
}

// DeployBatch deploys pre-compiled contracts as one dependency-ordered
// batch. Returns the per-contract outcomes plus any feature-degradation
// warnings.
func (c *Coordinator) DeployBatch(ctx context.Context, req models.BatchDeployRequest) (*deploy.BatchResult, []string, error) {
	if len(req.Contracts) == 0 {
		return nil, nil, services.NewValidationError("contracts", "at least one contract required")
	}

	maxParallel := req.MaxParallel
	if maxParallel <= 0 {
		maxParallel = defaultBatchParallel
	}

	contracts := make([]deploy.BatchContract, 0, len(req.Contracts))
	for _, in := range req.Contracts {
		contracts = append(contracts, deploy.BatchContract{
			ContractName:    in.ContractName,
			ABI:             in.ABI,
			Bytecode:        in.Bytecode,
			ConstructorArgs: in.ConstructorArgs,
			GasLimit:        in.GasLimit,
			SourceCode:      in.SourceCode,
			Dependencies:    in.Dependencies,
		})
	}

	return c.stages.Deployment.DeployBatch(ctx, req.Network, contracts, req.UsePEF, maxParallel)
}

func (c *Coordinator) publish(ctx context.Context, evt events.Event) {
	if c.bus == nil {
		return
	}
	if err := c.bus.Publish(ctx, evt); err != nil {
		slog.Warn("Event publish failed", "type", evt.Type, "workflow_id", evt.WorkflowID, "error", err)
	}
}

// auditLevel validates and defaults the requested audit level.
func auditLevel(s string) (audit.Level, error) {
	switch audit.Level(s) {
	case "":
		return audit.LevelStandard, nil
	case audit.LevelBasic, audit.LevelStandard, audit.LevelComprehensive:
		return audit.Level(s), nil
	default:
		return "", services.NewValidationError("audit_level",
			"must be one of basic, standard, comprehensive")
	}
}
