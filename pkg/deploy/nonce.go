package deploy

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// NonceManager hands out distinct nonces per (network, deployer). One
// counter is seeded from the chain's pending nonce on first use and then
// advanced atomically, so concurrent batch tasks never collide.
type NonceManager struct {
	mu       sync.Mutex
	counters map[string]*nonceCounter
}

type nonceCounter struct {
	mu   sync.Mutex
	next uint64
}

// NewNonceManager creates an empty manager.
func NewNonceManager() *NonceManager {
	return &NonceManager{counters: make(map[string]*nonceCounter)}
}

// Next reserves the next nonce for a deployer on a network. The first call
// per (network, deployer) seeds the counter from PendingNonceAt.
func (m *NonceManager) Next(ctx context.Context, backend Backend, network string, deployer common.Address) (uint64, error) {
	key := network + "/" + deployer.Hex()

	m.mu.Lock()
	counter, ok := m.counters[key]
	if !ok {
		counter = &nonceCounter{}
		counter.mu.Lock() // hold until seeded so racers wait for the seed
		m.counters[key] = counter
		m.mu.Unlock()

		seed, err := backend.PendingNonceAt(ctx, deployer)
		if err != nil {
			counter.mu.Unlock()
			m.forget(key)
			return 0, fmt.Errorf("failed to seed nonce for %s on %s: %w", deployer.Hex(), network, classifyRPCError(err))
		}
		counter.next = seed + 1
		counter.mu.Unlock()
		return seed, nil
	}
	m.mu.Unlock()

	counter.mu.Lock()
	defer counter.mu.Unlock()
	n := counter.next
	counter.next++
	return n, nil
}

// Reset drops the counter for a (network, deployer) so the next call
// reseeds from the chain. Used after fatal nonce divergence.
func (m *NonceManager) Reset(network string, deployer common.Address) {
	m.forget(network + "/" + deployer.Hex())
}

func (m *NonceManager) forget(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.counters, key)
}
