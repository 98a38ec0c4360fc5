package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalog(t *testing.T) {
	r := New()

	tests := []struct {
		network string
		chainID int64
	}{
		{"hyperion_testnet", 133717},
		{"hyperion_mainnet", 133718},
		{"mantle_testnet", 5003},
		{"mantle_mainnet", 5000},
	}

	for _, tt := range tests {
		t.Run(tt.network, func(t *testing.T) {
			cfg, ok := r.Network(tt.network)
			require.True(t, ok)
			assert.Equal(t, tt.chainID, cfg.ChainID)
			assert.NotEmpty(t, cfg.RPCEndpoint)
		})
	}
}

func TestSupports(t *testing.T) {
	r := New()

	assert.True(t, r.Supports("hyperion_testnet", FeaturePEF))
	assert.False(t, r.Supports("mantle_testnet", FeaturePEF))
	assert.False(t, r.Supports("unknown_net", FeaturePEF))
	assert.False(t, r.Supports("hyperion_testnet", Feature("NotAFeature")))
}

func TestFeaturesTotalForUnknownNetwork(t *testing.T) {
	r := New()

	features := r.Features("unknown_net")
	require.Len(t, features, len(AllFeatures))
	for f, supported := range features {
		assert.False(t, supported, "feature %s should be false for unknown network", f)
	}
}

func TestFallbackTotality(t *testing.T) {
	r := New()

	// Every (network, feature) pair returns a non-empty string, including
	// unknown networks and features.
	networks := append(r.Networks(), "unknown_net")
	for _, n := range networks {
		for _, f := range AllFeatures {
			assert.NotEmpty(t, r.Fallback(n, f), "fallback for (%s, %s)", n, f)
		}
	}
	assert.NotEmpty(t, r.Fallback("unknown_net", Feature("NotAFeature")))
}

func TestFallbackDescribesMantleDegradation(t *testing.T) {
	r := New()

	fb := r.Fallback("mantle_testnet", FeatureMetisVM)
	assert.Contains(t, fb, "MetisVM")
}

func TestRegisterIdempotent(t *testing.T) {
	r := New()

	cfg := NetworkConfig{
		ChainID:     31337,
		RPCEndpoint: "http://localhost:8545",
		Features:    map[Feature]bool{FeaturePEF: true},
	}

	r.Register("local_devnet", cfg)
	r.Register("local_devnet", cfg)

	got, ok := r.Network("local_devnet")
	require.True(t, ok)
	assert.Equal(t, int64(31337), got.ChainID)
	assert.True(t, r.Supports("local_devnet", FeaturePEF))
}

func TestRegisterReplacesConflicting(t *testing.T) {
	r := New()

	r.Register("local_devnet", NetworkConfig{ChainID: 1})
	r.Register("local_devnet", NetworkConfig{ChainID: 2})

	got, ok := r.Network("local_devnet")
	require.True(t, ok)
	assert.Equal(t, int64(2), got.ChainID)
}

func TestLoadFile(t *testing.T) {
	catalog := `
custom_net:
  chain_id: 424242
  rpc_endpoint: "https://rpc.custom.example"
  features:
    PEF: true
    EigenDA: false
  fallbacks:
    EigenDA: "metadata stays local on custom_net"
`
	path := filepath.Join(t.TempDir(), "networks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o600))

	r := New()
	require.NoError(t, r.LoadFile(path))

	assert.True(t, r.Supports("custom_net", FeaturePEF))
	assert.False(t, r.Supports("custom_net", FeatureEigenDA))
	assert.Equal(t, "metadata stays local on custom_net", r.Fallback("custom_net", FeatureEigenDA))

	// Built-ins survive the merge.
	assert.True(t, r.Supports("hyperion_testnet", FeatureMetisVM))
}

func TestHyperionFamily(t *testing.T) {
	assert.True(t, HyperionFamily("hyperion_testnet"))
	assert.True(t, HyperionFamily("hyperion_mainnet"))
	assert.False(t, HyperionFamily("mantle_testnet"))
	assert.False(t, HyperionFamily(""))
}
