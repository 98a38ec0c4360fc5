package deploy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"
)

// Throwaway key for signing in tests. Never funded anywhere.
const testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

const testChainID = 133717

var emptyConstructorABI = []map[string]any{
	{"type": "function", "name": "value", "inputs": []any{}, "outputs": []any{
		map[string]any{"name": "", "type": "uint256"},
	}, "stateMutability": "view"},
}

var parameterizedConstructorABI = []map[string]any{
	{"type": "constructor", "stateMutability": "nonpayable", "inputs": []any{
		map[string]any{"name": "name_", "type": "string"},
		map[string]any{"name": "supply", "type": "uint256"},
		map[string]any{"name": "owner", "type": "address"},
		map[string]any{"name": "mintable", "type": "bool"},
	}},
}

func newTestDeployer(t *testing.T) (*Deployer, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	signer, err := NewSigner(testPrivateKey, testChainID)
	require.NoError(t, err)
	return NewDeployer(backend, signer, NewNonceManager(), "hyperion_testnet", semaphore.NewWeighted(10)), backend
}

func TestDeploy(t *testing.T) {
	t.Run("confirmed deployment returns address and receipt details", func(t *testing.T) {
		deployer, backend := newTestDeployer(t)

		res, err := deployer.Deploy(context.Background(), Request{
			ContractName: "SimpleStorage",
			ABI:          emptyConstructorABI,
			Bytecode:     "0x6080604052600a600055",
		})
		require.NoError(t, err)

		assert.Equal(t, "SimpleStorage", res.ContractName)
		assert.Equal(t, "hyperion_testnet", res.Network)
		assert.NotEmpty(t, res.Address.Hex())
		assert.Equal(t, deployer.Signer().Address(), res.Deployer)
		assert.Equal(t, int64(1), res.BlockNumber)
		assert.NotZero(t, res.GasUsed)
		assert.False(t, res.ConfirmedAt.Before(res.SubmittedAt))
		require.Len(t, backend.sent, 1)
		assert.Equal(t, uint64(0), backend.sent[0].Nonce())
	})

	t.Run("constructor arguments are coerced and appended", func(t *testing.T) {
		deployer, backend := newTestDeployer(t)

		// Values arrive as decoded JSON: numbers are float64.
		_, err := deployer.Deploy(context.Background(), Request{
			ContractName: "Token",
			ABI:          parameterizedConstructorABI,
			Bytecode:     "0x6080604052",
			ConstructorArgs: []any{
				"MyToken",
				float64(1_000_000),
				"0x000000000000000000000000000000000000dEaD",
				true,
			},
		})
		require.NoError(t, err)
		require.Len(t, backend.sent, 1)
		assert.Greater(t, len(backend.sent[0].Data()), 5, "payload carries encoded args after the bytecode")
	})

	t.Run("explicit nonce overrides the manager", func(t *testing.T) {
		deployer, backend := newTestDeployer(t)

		nonce := uint64(7)
		_, err := deployer.Deploy(context.Background(), Request{
			ContractName: "Token",
			ABI:          emptyConstructorABI,
			Bytecode:     "0x6080",
			Nonce:        &nonce,
		})
		require.NoError(t, err)
		require.Len(t, backend.sent, 1)
		assert.Equal(t, uint64(7), backend.sent[0].Nonce())
	})

	t.Run("explicit gas limit skips estimation", func(t *testing.T) {
		deployer, backend := newTestDeployer(t)
		backend.estimateErr = errors.New("should not be called")

		_, err := deployer.Deploy(context.Background(), Request{
			ContractName: "Token",
			ABI:          emptyConstructorABI,
			Bytecode:     "0x6080",
			GasLimit:     2_000_000,
		})
		require.NoError(t, err)
		require.Len(t, backend.sent, 1)
		assert.Equal(t, uint64(2_000_000), backend.sent[0].Gas())
	})

	t.Run("gas estimation failure is fatal with the original error", func(t *testing.T) {
		deployer, backend := newTestDeployer(t)
		backend.estimateErr = errors.New("execution reverted: constructor requires owner")

		_, err := deployer.Deploy(context.Background(), Request{
			ContractName: "Token",
			ABI:          emptyConstructorABI,
			Bytecode:     "0x6080",
		})
		var gasErr *GasEstimationError
		require.ErrorAs(t, err, &gasErr)
		assert.Contains(t, gasErr.Error(), "constructor requires owner")
		assert.Empty(t, backend.sent, "nothing submitted after a failed estimate")
	})

	t.Run("insufficient funds is fatal with no retry", func(t *testing.T) {
		deployer, backend := newTestDeployer(t)
		backend.sendErrs = []error{errors.New("insufficient funds for gas * price + value")}

		_, err := deployer.Deploy(context.Background(), Request{
			ContractName: "Token",
			ABI:          emptyConstructorABI,
			Bytecode:     "0x6080",
		})
		var fatal *FatalError
		require.ErrorAs(t, err, &fatal)
		assert.Equal(t, "insufficient balance", fatal.Reason)
		assert.Empty(t, backend.sent, "fatal submission failures consume no retry budget")
	})

	t.Run("transient submission failure is retried", func(t *testing.T) {
		if testing.Short() {
			t.Skip("retry backoff sleeps for seconds")
		}
		deployer, backend := newTestDeployer(t)
		backend.sendErrs = []error{errors.New("503 service unavailable"), nil}

		res, err := deployer.Deploy(context.Background(), Request{
			ContractName: "Token",
			ABI:          emptyConstructorABI,
			Bytecode:     "0x6080",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.TxHash.Hex())
		require.Len(t, backend.sent, 1, "second attempt landed")
	})

	t.Run("reverted receipt is fatal", func(t *testing.T) {
		deployer, backend := newTestDeployer(t)
		backend.revertAll = true

		_, err := deployer.Deploy(context.Background(), Request{
			ContractName: "Token",
			ABI:          emptyConstructorABI,
			Bytecode:     "0x6080",
		})
		var fatal *FatalError
		require.ErrorAs(t, err, &fatal)
		assert.Equal(t, "revert", fatal.Reason)
	})

	t.Run("validation failures never reach the network", func(t *testing.T) {
		deployer, backend := newTestDeployer(t)

		cases := []struct {
			name string
			req  Request
		}{
			{"missing abi", Request{ContractName: "T", Bytecode: "0x6080"}},
			{"missing bytecode", Request{ContractName: "T", ABI: emptyConstructorABI}},
			{"bytecode not hex", Request{ContractName: "T", ABI: emptyConstructorABI, Bytecode: "0xzzzz"}},
			{"unexpected args", Request{ContractName: "T", ABI: emptyConstructorABI, Bytecode: "0x6080", ConstructorArgs: []any{"x"}}},
			{"wrong arg count", Request{ContractName: "T", ABI: parameterizedConstructorABI, Bytecode: "0x6080", ConstructorArgs: []any{"only one"}}},
			{"fractional supply", Request{ContractName: "T", ABI: parameterizedConstructorABI, Bytecode: "0x6080",
				ConstructorArgs: []any{"MyToken", 1.5, "0x000000000000000000000000000000000000dEaD", true}}},
			{"bad address", Request{ContractName: "T", ABI: parameterizedConstructorABI, Bytecode: "0x6080",
				ConstructorArgs: []any{"MyToken", float64(1), "not-an-address", true}}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := deployer.Deploy(context.Background(), tc.req)
				var valErr *ValidationError
				assert.ErrorAs(t, err, &valErr)
			})
		}
		assert.Empty(t, backend.sent)
	})
}

func TestSigner(t *testing.T) {
	t.Run("address derives from the key with or without 0x prefix", func(t *testing.T) {
		withPrefix, err := NewSigner(testPrivateKey, testChainID)
		require.NoError(t, err)
		withoutPrefix, err := NewSigner(testPrivateKey[2:], testChainID)
		require.NoError(t, err)
		assert.Equal(t, withPrefix.Address(), withoutPrefix.Address())
		assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", withPrefix.Address().Hex())
	})

	t.Run("invalid key is rejected", func(t *testing.T) {
		_, err := NewSigner("0x1234", testChainID)
		assert.Error(t, err)
	})

	t.Run("chain id copy cannot mutate the signer", func(t *testing.T) {
		signer, err := NewSigner(testPrivateKey, testChainID)
		require.NoError(t, err)
		signer.ChainID().SetInt64(1)
		assert.Equal(t, int64(testChainID), signer.ChainID().Int64())
	})
}
