package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/ent"
	"github.com/chainforge-ai/chainforge/ent/workflow"
	"github.com/chainforge-ai/chainforge/pkg/services"
	testdb "github.com/chainforge-ai/chainforge/test/database"
)

const testDescription = "An ERC20 token with a capped supply and owner minting"

func createTestWorkflow(t *testing.T, svc *services.WorkflowService) *ent.Workflow {
	t.Helper()
	wf, err := svc.Create(context.Background(), services.CreateWorkflowInput{
		Description: testDescription,
		Network:     "hyperion_testnet",
	})
	require.NoError(t, err)
	return wf
}

func TestWorkflowCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewWorkflowService(client.Client)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		wf := createTestWorkflow(t, svc)
		assert.Equal(t, workflow.StatusCreated, wf.Status)
		assert.Equal(t, 0, wf.Progress)
		assert.Equal(t, "Custom", wf.ContractType)
		assert.Equal(t, "standard", wf.AuditLevel)
		assert.False(t, wf.CancelRequested)
		assert.Nil(t, wf.StartedAt)
	})

	t.Run("features and options round-trip", func(t *testing.T) {
		wf, err := svc.Create(ctx, services.CreateWorkflowInput{
			Description:  testDescription,
			ContractType: "Token",
			Network:      "hyperion_mainnet",
			Owner:        "0xabc",
			MetisVM:      true,
			EigenDA:      true,
			PEFBatch:     true,
			AuditLevel:   "comprehensive",
			SkipTesting:  true,
			GasLimit:     3_000_000,
			Warnings:     []string{"requested feature degraded"},
		})
		require.NoError(t, err)

		got, err := svc.Get(ctx, wf.ID)
		require.NoError(t, err)
		assert.True(t, got.MetisvmEnabled)
		assert.True(t, got.EigendaEnabled)
		assert.True(t, got.PefBatchEnabled)
		assert.False(t, got.FloatingPointEnabled)
		assert.Equal(t, "comprehensive", got.AuditLevel)
		assert.True(t, got.SkipTesting)
		assert.False(t, got.SkipAudit)
		assert.Equal(t, uint64(3_000_000), got.GasLimit)
		assert.Equal(t, []string{"requested feature degraded"}, got.Warnings)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Create(ctx, services.CreateWorkflowInput{Network: "hyperion_testnet"})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.Create(ctx, services.CreateWorkflowInput{Description: testDescription})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestWorkflowClaimNext(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewWorkflowService(client.Client)
	ctx := context.Background()

	first := createTestWorkflow(t, svc)
	second := createTestWorkflow(t, svc)

	claimed, err := svc.ClaimNext(ctx, "pod-a")
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID, "oldest workflow claims first")
	assert.Equal(t, workflow.StatusGenerating, claimed.Status)
	assert.Equal(t, "pod-a", claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)
	assert.NotNil(t, claimed.LastInteractionAt)

	claimed, err = svc.ClaimNext(ctx, "pod-b")
	require.NoError(t, err)
	assert.Equal(t, second.ID, claimed.ID)

	_, err = svc.ClaimNext(ctx, "pod-a")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestWorkflowStatusTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewWorkflowService(client.Client)
	ctx := context.Background()

	t.Run("terminal states are sticky", func(t *testing.T) {
		wf := createTestWorkflow(t, svc)
		require.NoError(t, svc.SetStatus(ctx, wf.ID, string(workflow.StatusGenerating)))
		require.NoError(t, svc.MarkCompleted(ctx, wf.ID, []string{"one warning"}))

		got, err := svc.Get(ctx, wf.ID)
		require.NoError(t, err)
		assert.Equal(t, workflow.StatusCompleted, got.Status)
		assert.Equal(t, 100, got.Progress)
		assert.NotNil(t, got.CompletedAt)
		assert.Equal(t, []string{"one warning"}, got.Warnings)

		err = svc.SetStatus(ctx, wf.ID, string(workflow.StatusDeploying))
		assert.ErrorIs(t, err, services.ErrTerminal)
		err = svc.MarkFailed(ctx, wf.ID, "late failure", nil)
		assert.ErrorIs(t, err, services.ErrTerminal)
	})

	t.Run("failed records the message", func(t *testing.T) {
		wf := createTestWorkflow(t, svc)
		require.NoError(t, svc.MarkFailed(ctx, wf.ID, "generation failed: empty response", nil))

		got, err := svc.Get(ctx, wf.ID)
		require.NoError(t, err)
		assert.Equal(t, workflow.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "generation failed: empty response", *got.ErrorMessage)
	})

	t.Run("missing workflow", func(t *testing.T) {
		err := svc.SetStatus(ctx, "no-such-id", string(workflow.StatusGenerating))
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestWorkflowProgressMonotone(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewWorkflowService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, svc)
	require.NoError(t, svc.SetProgress(ctx, wf.ID, 40))
	require.NoError(t, svc.SetProgress(ctx, wf.ID, 20)) // regression ignored

	got, err := svc.Get(ctx, wf.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, got.Progress)
}

func TestWorkflowRequestCancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewWorkflowService(client.Client)
	ctx := context.Background()

	t.Run("unclaimed cancels directly", func(t *testing.T) {
		wf := createTestWorkflow(t, svc)
		status, err := svc.RequestCancel(ctx, wf.ID)
		require.NoError(t, err)
		assert.Equal(t, string(workflow.StatusCancelled), status)

		got, err := svc.Get(ctx, wf.ID)
		require.NoError(t, err)
		assert.Equal(t, workflow.StatusCancelled, got.Status)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("running gets flagged only", func(t *testing.T) {
		wf := createTestWorkflow(t, svc)
		_, err := svc.ClaimNext(ctx, "pod-a")
		require.NoError(t, err)

		status, err := svc.RequestCancel(ctx, wf.ID)
		require.NoError(t, err)
		assert.Equal(t, string(workflow.StatusGenerating), status)

		flagged, err := svc.CancelRequested(ctx, wf.ID)
		require.NoError(t, err)
		assert.True(t, flagged)
	})

	t.Run("terminal rejects", func(t *testing.T) {
		wf := createTestWorkflow(t, svc)
		require.NoError(t, svc.MarkCompleted(ctx, wf.ID, nil))

		_, err := svc.RequestCancel(ctx, wf.ID)
		assert.ErrorIs(t, err, services.ErrTerminal)
	})
}

func TestWorkflowFailOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewWorkflowService(client.Client)
	ctx := context.Background()

	orphan := createTestWorkflow(t, svc)
	pending := createTestWorkflow(t, svc)

	claimed, err := svc.ClaimNext(ctx, "pod-dead")
	require.NoError(t, err)
	require.Equal(t, orphan.ID, claimed.ID)

	// Backdate the heartbeat past any realistic threshold.
	err = client.Workflow.UpdateOneID(orphan.ID).
		SetLastInteractionAt(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	failed, err := svc.FailOrphans(ctx, time.Now().Add(-2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, []string{orphan.ID}, failed)

	got, err := svc.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "orphaned")

	// Unclaimed workflows are not orphans regardless of age.
	got, err = svc.Get(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusCreated, got.Status)
}

func TestWorkflowCounters(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewWorkflowService(client.Client)
	ctx := context.Background()

	createTestWorkflow(t, svc)
	createTestWorkflow(t, svc)
	createTestWorkflow(t, svc)

	depth, err := svc.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, depth)

	_, err = svc.ClaimNext(ctx, "pod-a")
	require.NoError(t, err)
	_, err = svc.ClaimNext(ctx, "pod-b")
	require.NoError(t, err)

	depth, err = svc.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)

	active, err := svc.ActiveCount(ctx, "pod-a")
	require.NoError(t, err)
	assert.Equal(t, 1, active)
}

func TestWorkflowAppendWarnings(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewWorkflowService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, svc)
	require.NoError(t, svc.AppendWarnings(ctx, wf.ID, []string{"first"}))
	require.NoError(t, svc.AppendWarnings(ctx, wf.ID, nil)) // no-op
	require.NoError(t, svc.AppendWarnings(ctx, wf.ID, []string{"second"}))

	got, err := svc.Get(ctx, wf.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, got.Warnings)
}
