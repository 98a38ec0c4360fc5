// Package orchestrator drives one workflow through its stage pipeline. The
// pipeline is data, not control flow: the coordinator builds the stage list
// (feature flags remove entries) and the orchestrator walks it, owning
// status transitions, progress milestones, event publishing, and the
// cooperative cancellation checks at stage boundaries.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chainforge-ai/chainforge/pkg/events"
	"github.com/chainforge-ai/chainforge/pkg/stages"
)

// Workflow statuses. Terminal statuses are never left once entered.
const (
	StatusCreated    = "created"
	StatusGenerating = "generating"
	StatusCompiling  = "compiling"
	StatusAuditing   = "auditing"
	StatusTesting    = "testing"
	StatusDeploying  = "deploying"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusCancelled  = "cancelled"
)

// StageEntry is one pipeline slot.
type StageEntry struct {
	Stage stages.Stage

	// Status is the workflow status while this stage runs.
	Status string

	// ProgressAfter is the milestone written on stage success.
	ProgressAfter int

	// NonFatal stages record their failure and let the pipeline continue.
	NonFatal bool
}

// Options tailor the pipeline for one workflow.
type Options struct {
	SkipAudit   bool
	SkipTesting bool
}

// BuildPipeline assembles the five-stage pipeline in order. Skip flags
// remove entries; milestones stay fixed so progress stays comparable across
// workflows.
func BuildPipeline(generation, compilation, audit, testing, deployment stages.Stage, opts Options) []StageEntry {
	pipeline := []StageEntry{
		{Stage: generation, Status: StatusGenerating, ProgressAfter: 20},
		{Stage: compilation, Status: StatusCompiling, ProgressAfter: 40},
	}
	if !opts.SkipAudit {
		pipeline = append(pipeline, StageEntry{Stage: audit, Status: StatusAuditing, ProgressAfter: 60, NonFatal: true})
	}
	if !opts.SkipTesting {
		pipeline = append(pipeline, StageEntry{Stage: testing, Status: StatusTesting, ProgressAfter: 80, NonFatal: true})
	}
	return append(pipeline, StageEntry{Stage: deployment, Status: StatusDeploying, ProgressAfter: 100})
}

// WorkflowStore is the slice of workflow persistence the orchestrator
// needs. Implemented by services.WorkflowService. Terminal writes receive a
// background context so a cancelled workflow context cannot lose them.
type WorkflowStore interface {
	SetStatus(ctx context.Context, id, status string) error
	SetProgress(ctx context.Context, id string, progress int) error
	CancelRequested(ctx context.Context, id string) (bool, error)
	MarkCompleted(ctx context.Context, id string, warnings []string) error
	MarkFailed(ctx context.Context, id, message string, warnings []string) error
	MarkCancelled(ctx context.Context, id string) error
}

// Publisher publishes workflow events. *events.Bus implements it.
type Publisher interface {
	Publish(ctx context.Context, evt events.Event) error
}

// Orchestrator runs pipelines. Stateless; one instance serves all workers.
type Orchestrator struct {
	store WorkflowStore
	bus   Publisher
}

// New creates an orchestrator. bus may be nil; publishing is best-effort.
func New(store WorkflowStore, bus Publisher) *Orchestrator {
	return &Orchestrator{store: store, bus: bus}
}

// Run walks the pipeline for one workflow. The returned error is the fatal
// stage error, if any; cancellation returns nil after the workflow is
// marked cancelled.
func (o *Orchestrator) Run(ctx context.Context, sc *stages.Context, pipeline []StageEntry) error {
	logger := slog.With("workflow_id", sc.WorkflowID)

	o.publish(ctx, events.New(events.EventTypeWorkflowStarted, sc.WorkflowID, "",
		events.ToMap(events.WorkflowStatusData{Status: StatusGenerating, Network: sc.Network})))

	for _, entry := range pipeline {
		cancelled, err := o.cancellationRequested(ctx, sc.WorkflowID)
		if err != nil {
			logger.Warn("Cancellation check failed; continuing", "error", err)
		}
		if cancelled {
			return o.finishCancelled(sc, logger)
		}

		if err := o.runStage(ctx, sc, entry, logger); err != nil {
			if stages.Classify(err) == stages.KindCancelled {
				return o.finishCancelled(sc, logger)
			}
			if entry.NonFatal {
				sc.Warn(fmt.Sprintf("%s stage failed: %v", entry.Stage.Name(), err))
				logger.Warn("Non-fatal stage failed; pipeline continues",
					"stage", entry.Stage.Name(), "error", err)
				continue
			}
			return o.finishFailed(sc, entry.Stage.Name(), err, logger)
		}
	}

	return o.finishCompleted(sc, logger)
}

// runStage transitions status, publishes the started/completed/failed pair,
// and executes Validate then Process.
func (o *Orchestrator) runStage(ctx context.Context, sc *stages.Context, entry StageEntry, logger *slog.Logger) error {
	name := entry.Stage.Name()
	startedType, completedType, failedType := stageEventTypes(name)

	if err := o.store.SetStatus(ctx, sc.WorkflowID, entry.Status); err != nil {
		return err
	}
	o.publish(ctx, events.New(startedType, sc.WorkflowID, name,
		events.ToMap(events.StageStatusData{Stage: name, Status: "started"})))

	start := time.Now()
	err := entry.Stage.Validate(ctx, sc)
	if err == nil {
		err = entry.Stage.Process(ctx, sc)
	}
	duration := time.Since(start)

	if err != nil {
		kind := stages.Classify(err)
		logger.Error("Stage failed",
			"stage", name, "kind", string(kind), "duration_ms", duration.Milliseconds(), "error", err)
		o.publish(ctx, events.New(failedType, sc.WorkflowID, name, events.ToMap(events.StageStatusData{
			Stage:      name,
			Status:     "failed",
			DurationMS: duration.Milliseconds(),
			Error:      fmt.Sprintf("%s: %v", kind, err),
			NonFatal:   entry.NonFatal,
		})))
		return err
	}

	if err := o.store.SetProgress(ctx, sc.WorkflowID, entry.ProgressAfter); err != nil {
		logger.Warn("Progress update failed", "stage", name, "error", err)
	}
	o.publish(ctx, events.New(completedType, sc.WorkflowID, name, o.completedPayload(sc, entry, duration)))

	logger.Info("Stage completed",
		"stage", name, "progress", entry.ProgressAfter, "duration_ms", duration.Milliseconds())
	return nil
}

// completedPayload builds the success payload. Deployment success is a
// deployment.confirmed event carrying the on-chain details.
func (o *Orchestrator) completedPayload(sc *stages.Context, entry StageEntry, duration time.Duration) map[string]any {
	if entry.Stage.Name() == "deployment" && sc.Deployment != nil {
		return events.ToMap(events.DeploymentData{
			ContractName: sc.Deployment.ContractName,
			Network:      sc.Deployment.Network,
			Address:      sc.Deployment.Address.Hex(),
			TxHash:       sc.Deployment.TxHash.Hex(),
			BlockNumber:  sc.Deployment.BlockNumber,
			GasUsed:      sc.Deployment.GasUsed,
		})
	}
	return events.ToMap(events.StageStatusData{
		Stage:      entry.Stage.Name(),
		Status:     "completed",
		Progress:   entry.ProgressAfter,
		DurationMS: duration.Milliseconds(),
	})
}

// cancellationRequested checks both the local context and the persisted
// cancel flag, so a cancel issued on another pod is honored too.
func (o *Orchestrator) cancellationRequested(ctx context.Context, id string) (bool, error) {
	if ctx.Err() != nil {
		return true, nil
	}
	return o.store.CancelRequested(ctx, id)
}

// Terminal writes below use context.Background(): the workflow context may
// already be cancelled, and terminal state must land regardless.

func (o *Orchestrator) finishCompleted(sc *stages.Context, logger *slog.Logger) error {
	ctx := context.Background()
	if err := o.store.MarkCompleted(ctx, sc.WorkflowID, sc.Warnings); err != nil {
		return fmt.Errorf("failed to mark workflow completed: %w", err)
	}
	o.publish(ctx, events.New(events.EventTypeWorkflowCompleted, sc.WorkflowID, "",
		events.ToMap(events.WorkflowStatusData{Status: StatusCompleted, Progress: 100, Warnings: sc.Warnings})))
	logger.Info("Workflow completed", "warnings", len(sc.Warnings))
	return nil
}

func (o *Orchestrator) finishFailed(sc *stages.Context, stage string, stageErr error, logger *slog.Logger) error {
	ctx := context.Background()
	message := fmt.Sprintf("%s stage failed: %v", stage, stageErr)
	if err := o.store.MarkFailed(ctx, sc.WorkflowID, message, sc.Warnings); err != nil {
		logger.Error("Failed to mark workflow failed", "error", err)
	}
	o.publish(ctx, events.New(events.EventTypeWorkflowFailed, sc.WorkflowID, stage,
		events.ToMap(events.WorkflowStatusData{Status: StatusFailed, Error: message, Warnings: sc.Warnings})))
	logger.Error("Workflow failed", "stage", stage, "error", stageErr)
	return stageErr
}

func (o *Orchestrator) finishCancelled(sc *stages.Context, logger *slog.Logger) error {
	ctx := context.Background()
	if err := o.store.MarkCancelled(ctx, sc.WorkflowID); err != nil {
		logger.Error("Failed to mark workflow cancelled", "error", err)
	}
	o.publish(ctx, events.New(events.EventTypeWorkflowCancelled, sc.WorkflowID, "",
		events.ToMap(events.WorkflowStatusData{Status: StatusCancelled})))
	logger.Info("Workflow cancelled at stage boundary")
	return nil
}

// publish is best-effort: a bus outage degrades streaming, never a workflow.
func (o *Orchestrator) publish(ctx context.Context, evt events.Event) {
	if o.bus == nil {
		return
	}
	if err := o.bus.Publish(ctx, evt); err != nil {
		slog.Warn("Event publish failed", "type", evt.Type, "workflow_id", evt.WorkflowID, "error", err)
	}
}

// stageEventTypes maps a stage name to its lifecycle event types.
func stageEventTypes(stage string) (started, completed, failed string) {
	switch stage {
	case "generation":
		return events.EventTypeGenerationStarted, events.EventTypeGenerationCompleted, events.EventTypeGenerationFailed
	case "compilation":
		return events.EventTypeCompilationStarted, events.EventTypeCompilationCompleted, events.EventTypeCompilationFailed
	case "audit":
		return events.EventTypeAuditStarted, events.EventTypeAuditCompleted, events.EventTypeAuditFailed
	case "testing":
		return events.EventTypeTestingStarted, events.EventTypeTestingCompleted, events.EventTypeTestingFailed
	case "deployment":
		return events.EventTypeDeploymentStarted, events.EventTypeDeploymentConfirmed, events.EventTypeDeploymentFailed
	default:
		return stage + ".started", stage + ".completed", stage + ".failed"
	}
}
