package stages

import (
	"context"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"

	"github.com/chainforge-ai/chainforge/pkg/deploy"
	"github.com/chainforge-ai/chainforge/pkg/registry"
)

// instantChain is a success-only deploy.Backend: every transaction confirms
// immediately.
type instantChain struct {
	mu       sync.Mutex
	sent     []*types.Transaction
	receipts map[common.Hash]*types.Receipt
	block    int64
}

func newInstantChain() *instantChain {
	return &instantChain{receipts: make(map[common.Hash]*types.Receipt)}
}

func (c *instantChain) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 0, nil
}

func (c *instantChain) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (c *instantChain) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 500_000, nil
}

func (c *instantChain) SendTransaction(_ context.Context, tx *types.Transaction) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	sender, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil {
		return err
	}
	c.block++
	c.sent = append(c.sent, tx)
	c.receipts[tx.Hash()] = &types.Receipt{
		Status:          types.ReceiptStatusSuccessful,
		ContractAddress: crypto.CreateAddress(sender, tx.Nonce()),
		BlockNumber:     big.NewInt(c.block),
		GasUsed:         tx.Gas() / 2,
		TxHash:          tx.Hash(),
	}
	return nil
}

func (c *instantChain) TransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.receipts[txHash]; ok {
		return r, nil
	}
	return nil, ethereum.NotFound
}

func (c *instantChain) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

type staticProvider struct {
	deployer *deploy.Deployer
}

func (p staticProvider) Deployer(context.Context, string) (*deploy.Deployer, error) {
	return p.deployer, nil
}

func newDeploymentStage(t *testing.T, network string) (*DeploymentStage, *instantChain) {
	t.Helper()
	chain := newInstantChain()
	signer, err := deploy.NewSigner("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80", 133717)
	require.NoError(t, err)
	deployer := deploy.NewDeployer(chain, signer, deploy.NewNonceManager(), network, semaphore.NewWeighted(50))
	return NewDeploymentStage(staticProvider{deployer}, registry.New(), nil, nil), chain
}

func TestDeploymentStage(t *testing.T) {
	t.Run("unknown network fails validation", func(t *testing.T) {
		stage, _ := newDeploymentStage(t, "hyperion_testnet")
		sc := &Context{Network: "unknown_net", Compiled: completeArtifact()}
		err := stage.Validate(context.Background(), sc)
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
	})

	t.Run("incomplete artifact fails validation", func(t *testing.T) {
		stage, _ := newDeploymentStage(t, "hyperion_testnet")
		artifact := completeArtifact()
		artifact.Bytecode = ""
		err := stage.Validate(context.Background(), &Context{Network: "hyperion_testnet", Compiled: artifact})
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
	})

	t.Run("deploys and records the result", func(t *testing.T) {
		stage, chain := newDeploymentStage(t, "hyperion_testnet")
		sc := &Context{
			WorkflowID: "wf-1",
			Network:    "hyperion_testnet",
			Compiled:   completeArtifact(),
		}
		require.NoError(t, stage.Validate(context.Background(), sc))
		require.NoError(t, stage.Process(context.Background(), sc))

		require.NotNil(t, sc.Deployment)
		assert.Equal(t, "hyperion_testnet", sc.Deployment.Network)
		assert.NotEqual(t, common.Address{}, sc.Deployment.Address)
		require.Len(t, chain.sent, 1)
	})
}

func TestDeployBatchFeaturePolicy(t *testing.T) {
	contracts := []deploy.BatchContract{
		{ContractName: "Token", ABI: completeArtifact().ABI, Bytecode: "0x6080604052"},
		{ContractName: "Vault", ABI: completeArtifact().ABI, Bytecode: "0x6080604052", Dependencies: []string{"Token"}},
	}

	t.Run("pef network uses the parallel scheduler", func(t *testing.T) {
		stage, chain := newDeploymentStage(t, "hyperion_testnet")

		result, warnings, err := stage.DeployBatch(context.Background(), "hyperion_testnet", contracts, true, 10)
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, 2, result.SuccessCount)
		assert.Equal(t, 2, result.BatchesDeployed)
		require.Len(t, chain.sent, 2)
	})

	t.Run("non-pef network degrades to sequential with a warning", func(t *testing.T) {
		stage, chain := newDeploymentStage(t, "mantle_testnet")

		result, warnings, err := stage.DeployBatch(context.Background(), "mantle_testnet", contracts, true, 10)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "PEF")
		assert.Equal(t, 2, result.SuccessCount)
		require.Len(t, chain.sent, 2)
		assert.Equal(t, uint64(0), chain.sent[0].Nonce())
		assert.Equal(t, uint64(1), chain.sent[1].Nonce())
	})

	t.Run("unknown network is rejected", func(t *testing.T) {
		stage, _ := newDeploymentStage(t, "hyperion_testnet")
		_, _, err := stage.DeployBatch(context.Background(), "unknown_net", contracts, true, 10)
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
	})
}
