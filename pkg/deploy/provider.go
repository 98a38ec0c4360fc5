package deploy

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/chainforge-ai/chainforge/pkg/registry"
)

// Provider builds one Deployer per network on demand and caches it. All
// deployers share the nonce manager and the in-flight semaphore so the
// global transaction budget holds across networks.
type Provider struct {
	cache      *ClientCache
	registry   *registry.Registry
	privateKey string
	nonces     *NonceManager
	inflight   *semaphore.Weighted

	mu        sync.Mutex
	deployers map[string]*Deployer
}

// NewProvider creates a provider. privateKeyHex stays in memory only; it is
// handed to per-network signers and never logged.
func NewProvider(cache *ClientCache, reg *registry.Registry, privateKeyHex string, maxInflight int64) *Provider {
	return &Provider{
		cache:      cache,
		registry:   reg,
		privateKey: privateKeyHex,
		nonces:     NewNonceManager(),
		inflight:   semaphore.NewWeighted(maxInflight),
		deployers:  make(map[string]*Deployer),
	}
}

// Deployer returns the deployer for a network, constructing it on first use.
func (p *Provider) Deployer(ctx context.Context, network string) (*Deployer, error) {
	p.mu.Lock()
	if d, ok := p.deployers[network]; ok {
		p.mu.Unlock()
		return d, nil
	}
	p.mu.Unlock()

	cfg, ok := p.registry.Network(network)
	if !ok {
		return nil, fmt.Errorf("unknown network %q", network)
	}

	backend, err := p.cache.Get(ctx, network)
	if err != nil {
		return nil, err
	}

	signer, err := NewSigner(p.privateKey, cfg.ChainID)
	if err != nil {
		return nil, fmt.Errorf("failed to build signer for %s: %w", network, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if d, ok := p.deployers[network]; ok {
		return d, nil
	}
	d := NewDeployer(backend, signer, p.nonces, network, p.inflight)
	p.deployers[network] = d
	return d, nil
}

// Close releases the underlying RPC clients.
func (p *Provider) Close() {
	p.cache.Close()
}
