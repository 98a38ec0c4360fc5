package coordinator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/ent"
	"github.com/chainforge-ai/chainforge/ent/workflow"
	"github.com/chainforge-ai/chainforge/pkg/events"
	"github.com/chainforge-ai/chainforge/pkg/models"
	"github.com/chainforge-ai/chainforge/pkg/registry"
	"github.com/chainforge-ai/chainforge/pkg/services"
)

type fakeStore struct {
	created      []services.CreateWorkflowInput
	createErr    error
	cancelStatus string
	cancelErr    error
	cancelled    []string
}

func (f *fakeStore) Create(_ context.Context, in services.CreateWorkflowInput) (*ent.Workflow, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, in)
	return &ent.Workflow{
		ID:       "wf-1",
		Status:   workflow.StatusCreated,
		Network:  in.Network,
		Warnings: in.Warnings,
	}, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (*ent.Workflow, error) {
	return nil, services.ErrNotFound
}

func (f *fakeStore) RequestCancel(_ context.Context, id string) (string, error) {
	if f.cancelErr != nil {
		return "", f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	return f.cancelStatus, nil
}

type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, evt events.Event) error {
	b.published = append(b.published, evt)
	return nil
}

type fakeCanceller struct {
	known     map[string]bool
	cancelled []string
}

func (f *fakeCanceller) CancelWorkflow(id string) bool {
	if f.known[id] {
		f.cancelled = append(f.cancelled, id)
		return true
	}
	return false
}

const validDescription = "An ERC20 token with minting, burning and a supply cap"

func TestCreateValidation(t *testing.T) {
	c := New(registry.New(), &fakeStore{}, nil, Stages{}, nil)

	t.Run("short description rejected", func(t *testing.T) {
		_, err := c.Create(context.Background(), models.CreateWorkflowRequest{
			NLPInput: "token",
			Network:  "hyperion_testnet",
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("unknown network rejected", func(t *testing.T) {
		_, err := c.Create(context.Background(), models.CreateWorkflowRequest{
			NLPInput: validDescription,
			Network:  "sepolia",
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
		assert.Contains(t, err.Error(), "unknown network")
	})

	t.Run("bad audit level rejected", func(t *testing.T) {
		_, err := c.Create(context.Background(), models.CreateWorkflowRequest{
			NLPInput:   validDescription,
			Network:    "hyperion_testnet",
			AuditLevel: "paranoid",
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})
}

func TestCreateGrantsSupportedFeatures(t *testing.T) {
	store := &fakeStore{}
	bus := &recordingBus{}
	c := New(registry.New(), store, nil, Stages{}, bus)

	resp, err := c.Create(context.Background(), models.CreateWorkflowRequest{
		NLPInput:            validDescription,
		Network:             "hyperion_testnet",
		ContractType:        "Token",
		OptimizeForMetisVM:  true,
		EnableFloatingPoint: true,
		EnableEigenDA:       true,
	})
	require.NoError(t, err)

	assert.Equal(t, "wf-1", resp.WorkflowID)
	assert.Equal(t, "created", resp.Status)
	assert.Empty(t, resp.Warnings)
	assert.True(t, resp.FeaturesUsed.MetisVM)
	assert.True(t, resp.FeaturesUsed.FloatingPoint)
	assert.False(t, resp.FeaturesUsed.AIInference) // not requested
	assert.True(t, resp.FeaturesUsed.EigenDA)

	require.Len(t, store.created, 1)
	in := store.created[0]
	assert.True(t, in.MetisVM)
	assert.True(t, in.PEFBatch)
	assert.Equal(t, "standard", in.AuditLevel)

	require.Len(t, bus.published, 1)
	assert.Equal(t, events.EventTypeWorkflowCreated, bus.published[0].Type)
	assert.Equal(t, "wf-1", bus.published[0].WorkflowID)
}

func TestCreateDegradesUnsupportedFeatures(t *testing.T) {
	store := &fakeStore{}
	c := New(registry.New(), store, nil, Stages{}, nil)

	resp, err := c.Create(context.Background(), models.CreateWorkflowRequest{
		NLPInput:           validDescription,
		Network:            "mantle_testnet",
		OptimizeForMetisVM: true,
		EnableEigenDA:      true,
	})
	require.NoError(t, err)

	// The request succeeds; the features are disabled with warnings.
	assert.False(t, resp.FeaturesUsed.MetisVM)
	assert.False(t, resp.FeaturesUsed.EigenDA)
	require.Len(t, resp.Warnings, 2)
	assert.Contains(t, resp.Warnings[0], "MetisVM")
	assert.Contains(t, resp.Warnings[1], "EigenDA")

	require.Len(t, store.created, 1)
	assert.False(t, store.created[0].MetisVM)
	assert.False(t, store.created[0].EigenDA)
	assert.False(t, store.created[0].PEFBatch)
}

func TestCancel(t *testing.T) {
	t.Run("cancels locally running workflow", func(t *testing.T) {
		store := &fakeStore{cancelStatus: "generating"}
		canceller := &fakeCanceller{known: map[string]bool{"wf-1": true}}
		c := New(registry.New(), store, nil, Stages{}, nil)
		c.SetCanceller(canceller)

		status, err := c.Cancel(context.Background(), "wf-1")
		require.NoError(t, err)
		assert.Equal(t, "generating", status)
		assert.Equal(t, []string{"wf-1"}, canceller.cancelled)
	})

	t.Run("remote workflow only flips the flag", func(t *testing.T) {
		store := &fakeStore{cancelStatus: "auditing"}
		canceller := &fakeCanceller{known: map[string]bool{}}
		c := New(registry.New(), store, nil, Stages{}, nil)
		c.SetCanceller(canceller)

		status, err := c.Cancel(context.Background(), "wf-2")
		require.NoError(t, err)
		assert.Equal(t, "auditing", status)
		assert.Empty(t, canceller.cancelled)
		assert.Equal(t, []string{"wf-2"}, store.cancelled)
	})

	t.Run("unknown workflow", func(t *testing.T) {
		store := &fakeStore{cancelErr: services.ErrNotFound}
		c := New(registry.New(), store, nil, Stages{}, nil)

		_, err := c.Cancel(context.Background(), "missing")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestDeployBatchValidation(t *testing.T) {
	c := New(registry.New(), &fakeStore{}, nil, Stages{}, nil)

	_, _, err := c.DeployBatch(context.Background(), models.BatchDeployRequest{
		Network: "hyperion_testnet",
	})
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
}
