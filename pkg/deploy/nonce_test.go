package deploy

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonceManager(t *testing.T) {
	addr := common.HexToAddress("0x000000000000000000000000000000000000dEaD")

	t.Run("first call seeds from the pending nonce", func(t *testing.T) {
		backend := newFakeBackend()
		backend.pendingNonce = 5
		m := NewNonceManager()

		for want := uint64(5); want < 8; want++ {
			n, err := m.Next(context.Background(), backend, "hyperion_testnet", addr)
			require.NoError(t, err)
			assert.Equal(t, want, n)
		}
	})

	t.Run("counters are independent per network and deployer", func(t *testing.T) {
		backend := newFakeBackend()
		m := NewNonceManager()
		other := common.HexToAddress("0x000000000000000000000000000000000000bEEF")

		n1, err := m.Next(context.Background(), backend, "hyperion_testnet", addr)
		require.NoError(t, err)
		n2, err := m.Next(context.Background(), backend, "mantle_testnet", addr)
		require.NoError(t, err)
		n3, err := m.Next(context.Background(), backend, "hyperion_testnet", other)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), n1)
		assert.Equal(t, uint64(0), n2)
		assert.Equal(t, uint64(0), n3)
	})

	t.Run("concurrent callers receive distinct nonces", func(t *testing.T) {
		backend := newFakeBackend()
		m := NewNonceManager()

		const workers = 32
		got := make([]uint64, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				n, err := m.Next(context.Background(), backend, "hyperion_testnet", addr)
				assert.NoError(t, err)
				got[i] = n
			}(i)
		}
		wg.Wait()

		seen := make(map[uint64]bool, workers)
		for _, n := range got {
			assert.False(t, seen[n], "nonce %d handed out twice", n)
			seen[n] = true
			assert.Less(t, n, uint64(workers))
		}
	})

	t.Run("reset reseeds from the chain", func(t *testing.T) {
		backend := newFakeBackend()
		m := NewNonceManager()

		_, err := m.Next(context.Background(), backend, "hyperion_testnet", addr)
		require.NoError(t, err)
		_, err = m.Next(context.Background(), backend, "hyperion_testnet", addr)
		require.NoError(t, err)

		backend.pendingNonce = 42
		m.Reset("hyperion_testnet", addr)

		n, err := m.Next(context.Background(), backend, "hyperion_testnet", addr)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), n)
	})

	t.Run("seed failure does not poison the counter", func(t *testing.T) {
		backend := newFakeBackend()
		backend.nonceErr = errors.New("connection refused")
		m := NewNonceManager()

		_, err := m.Next(context.Background(), backend, "hyperion_testnet", addr)
		require.Error(t, err)
		assert.True(t, IsTransient(err))

		backend.nonceErr = nil
		backend.pendingNonce = 3
		n, err := m.Next(context.Background(), backend, "hyperion_testnet", addr)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), n)
	})
}
