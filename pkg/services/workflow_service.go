package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/chainforge-ai/chainforge/ent"
	"github.com/chainforge-ai/chainforge/ent/workflow"
)

// terminalStatuses are never left once entered.
var terminalStatuses = []workflow.Status{
	workflow.StatusCompleted,
	workflow.StatusFailed,
	workflow.StatusCancelled,
}

// WorkflowService manages workflow rows: creation, the status writes the
// orchestrator performs, claim coordination for the worker pool, and
// cancellation.
type WorkflowService struct {
	client *ent.Client
}

// NewWorkflowService creates a new WorkflowService.
func NewWorkflowService(client *ent.Client) *WorkflowService {
	return &WorkflowService{client: client}
}

// CreateWorkflowInput is the validated input to Create. Feature toggles
// arrive post-registry-validation: a true toggle means the network grants
// the feature.
type CreateWorkflowInput struct {
	Description  string
	ContractType string
	Network      string
	Owner        string

	MetisVM       bool
	FloatingPoint bool
	AIInference   bool
	EigenDA       bool
	PEFBatch      bool

	AuditLevel  string
	SkipAudit   bool
	SkipTesting bool
	GasLimit    uint64

	Warnings []string
}

// Create inserts a workflow row with status created and progress 0.
func (s *WorkflowService) Create(ctx context.Context, in CreateWorkflowInput) (*ent.Workflow, error) {
	if in.Description == "" {
		return nil, NewValidationError("nlp_description", "required")
	}
	if in.Network == "" {
		return nil, NewValidationError("network", "required")
	}
	if in.ContractType == "" {
		in.ContractType = "Custom"
	}
	if in.AuditLevel == "" {
		in.AuditLevel = "standard"
	}

	builder := s.client.Workflow.Create().
		SetID(uuid.New().String()).
		SetNlpDescription(in.Description).
		SetContractType(in.ContractType).
		SetNetwork(in.Network).
		SetStatus(workflow.StatusCreated).
		SetProgress(0).
		SetMetisvmEnabled(in.MetisVM).
		SetFloatingPointEnabled(in.FloatingPoint).
		SetAiInferenceEnabled(in.AIInference).
		SetEigendaEnabled(in.EigenDA).
		SetPefBatchEnabled(in.PEFBatch).
		SetAuditLevel(in.AuditLevel).
		SetSkipAudit(in.SkipAudit).
		SetSkipTesting(in.SkipTesting).
		SetGasLimit(in.GasLimit)

	if in.Owner != "" {
		builder.SetOwner(in.Owner)
	}
	if len(in.Warnings) > 0 {
		builder.SetWarnings(in.Warnings)
	}

	wf, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}
	return wf, nil
}

// Get returns one workflow.
func (s *WorkflowService) Get(ctx context.Context, id string) (*ent.Workflow, error) {
	wf, err := s.client.Workflow.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}
	return wf, nil
}

// SetStatus writes a non-terminal status transition. Writes against a
// workflow already in a terminal status are rejected with ErrTerminal.
func (s *WorkflowService) SetStatus(ctx context.Context, id, status string) error {
	n, err := s.client.Workflow.Update().
		Where(workflow.IDEQ(id), workflow.StatusNotIn(terminalStatuses...)).
		SetStatus(workflow.Status(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update workflow status: %w", err)
	}
	if n == 0 {
		return s.missingOrTerminal(ctx, id)
	}
	return nil
}

// SetProgress advances the progress milestone. Progress is monotone: a
// smaller value than the stored one is silently ignored.
func (s *WorkflowService) SetProgress(ctx context.Context, id string, progress int) error {
	_, err := s.client.Workflow.Update().
		Where(
			workflow.IDEQ(id),
			workflow.ProgressLTE(progress),
			workflow.StatusNotIn(terminalStatuses...),
		).
		SetProgress(progress).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update workflow progress: %w", err)
	}
	return nil
}

// CancelRequested reports whether a cancel has been requested for the
// workflow. Checked by the orchestrator at stage boundaries.
func (s *WorkflowService) CancelRequested(ctx context.Context, id string) (bool, error) {
	wf, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return wf.CancelRequested, nil
}

// MarkCompleted writes the completed terminal state.
func (s *WorkflowService) MarkCompleted(ctx context.Context, id string, warnings []string) error {
	update := s.client.Workflow.Update().
		Where(workflow.IDEQ(id), workflow.StatusNotIn(terminalStatuses...)).
		SetStatus(workflow.StatusCompleted).
		SetProgress(100).
		SetCompletedAt(time.Now())
	if len(warnings) > 0 {
		update.SetWarnings(warnings)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark workflow completed: %w", err)
	}
	if n == 0 {
		return s.missingOrTerminal(ctx, id)
	}
	return nil
}

// MarkFailed writes the failed terminal state with a one-line summary.
func (s *WorkflowService) MarkFailed(ctx context.Context, id, message string, warnings []string) error {
	update := s.client.Workflow.Update().
		Where(workflow.IDEQ(id), workflow.StatusNotIn(terminalStatuses...)).
		SetStatus(workflow.StatusFailed).
		SetErrorMessage(message).
		SetCompletedAt(time.Now())
	if len(warnings) > 0 {
		update.SetWarnings(warnings)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark workflow failed: %w", err)
	}
	if n == 0 {
		return s.missingOrTerminal(ctx, id)
	}
	return nil
}

// MarkCancelled writes the cancelled terminal state.
func (s *WorkflowService) MarkCancelled(ctx context.Context, id string) error {
	n, err := s.client.Workflow.Update().
		Where(workflow.IDEQ(id), workflow.StatusNotIn(terminalStatuses...)).
		SetStatus(workflow.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark workflow cancelled: %w", err)
	}
	if n == 0 {
		return s.missingOrTerminal(ctx, id)
	}
	return nil
}

// RequestCancel flips the cancel flag. A workflow still in created has no
// orchestrator to observe the flag, so it transitions to cancelled
// directly. Returns the status after the request.
func (s *WorkflowService) RequestCancel(ctx context.Context, id string) (string, error) {
	// Direct transition for unclaimed workflows.
	n, err := s.client.Workflow.Update().
		Where(workflow.IDEQ(id), workflow.StatusEQ(workflow.StatusCreated)).
		SetStatus(workflow.StatusCancelled).
		SetCancelRequested(true).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to cancel workflow: %w", err)
	}
	if n > 0 {
		return string(workflow.StatusCancelled), nil
	}

	// Running workflow: flag it and let the orchestrator stop at the next
	// stage boundary. Terminal workflows reject the request.
	n, err = s.client.Workflow.Update().
		Where(workflow.IDEQ(id), workflow.StatusNotIn(terminalStatuses...)).
		SetCancelRequested(true).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to request workflow cancellation: %w", err)
	}
	if n == 0 {
		return "", s.missingOrTerminal(ctx, id)
	}

	wf, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return string(wf.Status), nil
}

// ClaimNext atomically claims the oldest created workflow for a worker
// using FOR UPDATE SKIP LOCKED, so concurrent workers on any pod never
// claim the same row. Returns ErrNotFound when nothing is pending.
func (s *WorkflowService) ClaimNext(ctx context.Context, podID string) (*ent.Workflow, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	wf, err := tx.Workflow.Query().
		Where(workflow.StatusEQ(workflow.StatusCreated)).
		Order(ent.Asc(workflow.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query pending workflow: %w", err)
	}

	now := time.Now()
	wf, err = wf.Update().
		SetStatus(workflow.StatusGenerating).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim workflow: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return wf, nil
}

// Heartbeat refreshes last_interaction_at for orphan detection.
func (s *WorkflowService) Heartbeat(ctx context.Context, id string) error {
	return s.client.Workflow.UpdateOneID(id).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
}

// FailOrphans marks claimed-but-silent workflows failed. A workflow is
// orphaned when it sits in a running status with no heartbeat since the
// cutoff; its worker (possibly on another pod) is presumed dead. Returns
// the ids of the workflows it failed.
func (s *WorkflowService) FailOrphans(ctx context.Context, cutoff time.Time) ([]string, error) {
	orphans, err := s.client.Workflow.Query().
		Where(
			workflow.StatusNotIn(append(terminalStatuses, workflow.StatusCreated)...),
			workflow.LastInteractionAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query orphaned workflows: %w", err)
	}

	var failed []string
	for _, wf := range orphans {
		if err := s.MarkFailed(ctx, wf.ID, "workflow orphaned: worker stopped responding", wf.Warnings); err != nil {
			return failed, err
		}
		failed = append(failed, wf.ID)
	}
	return failed, nil
}

// QueueDepth counts workflows waiting to be claimed.
func (s *WorkflowService) QueueDepth(ctx context.Context) (int, error) {
	n, err := s.client.Workflow.Query().
		Where(workflow.StatusEQ(workflow.StatusCreated)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending workflows: %w", err)
	}
	return n, nil
}

// ActiveCount counts running workflows claimed by a pod.
func (s *WorkflowService) ActiveCount(ctx context.Context, podID string) (int, error) {
	n, err := s.client.Workflow.Query().
		Where(
			workflow.StatusNotIn(append(terminalStatuses, workflow.StatusCreated)...),
			workflow.PodIDEQ(podID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active workflows: %w", err)
	}
	return n, nil
}

// AppendWarnings merges new warnings onto the workflow row.
func (s *WorkflowService) AppendWarnings(ctx context.Context, id string, warnings []string) error {
	if len(warnings) == 0 {
		return nil
	}
	wf, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.client.Workflow.UpdateOneID(id).
		SetWarnings(append(wf.Warnings, warnings...)).
		Exec(ctx)
}

func (s *WorkflowService) missingOrTerminal(ctx context.Context, id string) error {
	exists, err := s.client.Workflow.Query().Where(workflow.IDEQ(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check workflow existence: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrTerminal
}
