package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/ent/deployment"
	"github.com/chainforge-ai/chainforge/pkg/deploy"
	"github.com/chainforge-ai/chainforge/pkg/services"
	"github.com/chainforge-ai/chainforge/pkg/solc"
	testdb "github.com/chainforge-ai/chainforge/test/database"
)

func compiledToken() *solc.Result {
	return &solc.Result{
		ContractName:     "CappedToken",
		ABI:              []map[string]any{{"type": "constructor", "inputs": []any{}}},
		Bytecode:         "0x6080604052",
		DeployedBytecode: "0x6080",
		SolidityVersion:  "0.8.27",
		SourceHash:       "deadbeef",
	}
}

func TestContractSaveAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	workflows := services.NewWorkflowService(client.Client)
	svc := services.NewContractService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, workflows)

	id, err := svc.SaveContract(ctx, wf.ID, compiledToken(), "pragma solidity ^0.8.27; contract CappedToken {}")
	require.NoError(t, err)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "CappedToken", got.Name)
	assert.Equal(t, "0x6080604052", got.Bytecode)
	assert.Equal(t, "0.8.27", got.SolidityVersion)
	assert.Equal(t, "deadbeef", got.SourceHash)

	rows, err := svc.ListByWorkflow(ctx, wf.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID)

	t.Run("validation", func(t *testing.T) {
		_, err := svc.SaveContract(ctx, "", compiledToken(), "src")
		assert.True(t, services.IsValidationError(err))
		_, err = svc.SaveContract(ctx, wf.ID, nil, "src")
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("missing contract", func(t *testing.T) {
		_, err := svc.Get(ctx, "no-such-id")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestDeploymentLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	workflows := services.NewWorkflowService(client.Client)
	contracts := services.NewContractService(client.Client)
	svc := services.NewDeploymentService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, workflows)
	contractID, err := contracts.SaveContract(ctx, wf.ID, compiledToken(), "contract CappedToken {}")
	require.NoError(t, err)

	now := time.Now()
	depID, err := svc.SaveDeployment(ctx, contractID, &deploy.Result{
		ContractName: "CappedToken",
		Network:      "hyperion_testnet",
		Address:      common.HexToAddress("0x1111111111111111111111111111111111111111"),
		TxHash:       common.HexToHash("0xaaaa"),
		BlockNumber:  42,
		GasUsed:      21000,
		Deployer:     common.HexToAddress("0x2222222222222222222222222222222222222222"),
		SubmittedAt:  now,
		ConfirmedAt:  now.Add(2 * time.Second),
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetEigenDACommitment(ctx, depID, "0xc0ffee"))

	rows, err := svc.ListByWorkflow(ctx, wf.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, deployment.StatusConfirmed, rows[0].Status)
	assert.Equal(t, int64(42), rows[0].BlockNumber)
	require.NotNil(t, rows[0].EigendaCommitment)
	assert.Equal(t, "0xc0ffee", *rows[0].EigendaCommitment)

	t.Run("failed attempt is recorded", func(t *testing.T) {
		_, err := svc.SaveFailedDeployment(ctx, contractID, "hyperion_testnet",
			"0x2222222222222222222222222222222222222222", "insufficient funds for gas")
		require.NoError(t, err)

		rows, err := svc.ListByWorkflow(ctx, wf.ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
	})

	t.Run("commitment on missing deployment", func(t *testing.T) {
		err := svc.SetEigenDACommitment(ctx, "no-such-id", "0x00")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
