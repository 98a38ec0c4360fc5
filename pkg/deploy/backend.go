package deploy

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/chainforge-ai/chainforge/pkg/registry"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Backend is the slice of the Ethereum JSON-RPC surface the deployer needs.
// *ethclient.Client implements it; tests substitute a fake chain.
type Backend interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
}

// ClientCache holds one RPC client per network, dialed lazily from the
// registry's endpoint and reused for the process lifetime.
type ClientCache struct {
	registry *registry.Registry

	mu      sync.Mutex
	clients map[string]*ethclient.Client
}

// NewClientCache creates a cache over the network registry.
func NewClientCache(reg *registry.Registry) *ClientCache {
	return &ClientCache{
		registry: reg,
		clients:  make(map[string]*ethclient.Client),
	}
}

// Get returns the cached client for a network, dialing on first use.
// Unknown networks are an error: the registry is the source of truth.
func (c *ClientCache) Get(ctx context.Context, network string) (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[network]; ok {
		return client, nil
	}

	cfg, ok := c.registry.Network(network)
	if !ok {
		return nil, fmt.Errorf("unknown network %q", network)
	}

	client, err := ethclient.DialContext(ctx, cfg.RPCEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s rpc: %w", network, err)
	}
	c.clients[network] = client
	return client, nil
}

// Close closes all dialed clients.
func (c *ClientCache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, client := range c.clients {
		client.Close()
	}
	c.clients = make(map[string]*ethclient.Client)
}
