// Package registry implements the network feature registry: a read-only
// table mapping network identifiers to chain parameters, feature support,
// and fallback strategies for unsupported features.
package registry

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Feature identifies one network capability the engine conditions on.
type Feature string

const (
	FeaturePEF             Feature = "PEF"
	FeatureMetisVM         Feature = "MetisVM"
	FeatureEigenDA         Feature = "EigenDA"
	FeatureBatchDeployment Feature = "BatchDeployment"
	FeatureFloatingPoint   Feature = "FloatingPoint"
	FeatureAIInference     Feature = "AIInference"
)

// AllFeatures is the closed feature set, in stable order.
var AllFeatures = []Feature{
	FeaturePEF,
	FeatureMetisVM,
	FeatureEigenDA,
	FeatureBatchDeployment,
	FeatureFloatingPoint,
	FeatureAIInference,
}

// NetworkConfig describes one network entry. Immutable after registration.
type NetworkConfig struct {
	ChainID     int64               `yaml:"chain_id"`
	RPCEndpoint string              `yaml:"rpc_endpoint"`
	Explorer    string              `yaml:"explorer"`
	Features    map[Feature]bool    `yaml:"features"`
	Fallbacks   map[Feature]string  `yaml:"fallbacks"`
}

// Registry answers capability queries for registered networks. All query
// methods are total: unknown networks and features return defined values.
type Registry struct {
	mu       sync.RWMutex
	networks map[string]NetworkConfig
}

// New returns a registry populated with the built-in network catalog.
func New() *Registry {
	r := &Registry{networks: make(map[string]NetworkConfig)}
	for id, cfg := range builtinNetworks() {
		r.networks[id] = cfg
	}
	return r
}

// LoadFile merges networks from a YAML catalog file into the registry.
// File entries replace built-in entries with the same id.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read network catalog: %w", err)
	}

	var catalog map[string]NetworkConfig
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("failed to parse network catalog: %w", err)
	}

	for id, cfg := range catalog {
		r.Register(id, cfg)
	}
	return nil
}

// Register adds a network. Idempotent; a conflicting entry replaces the
// previous one.
func (r *Registry) Register(network string, cfg NetworkConfig) {
	if cfg.Features == nil {
		cfg.Features = map[Feature]bool{}
	}
	if cfg.Fallbacks == nil {
		cfg.Fallbacks = map[Feature]string{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.networks[network] = cfg
}

// Features returns the full feature map for a network. Unknown networks
// return all-false.
func (r *Registry) Features(network string) map[Feature]bool {
	r.mu.RLock()
	cfg, ok := r.networks[network]
	r.mu.RUnlock()

	out := make(map[Feature]bool, len(AllFeatures))
	for _, f := range AllFeatures {
		out[f] = ok && cfg.Features[f]
	}
	return out
}

// Supports reports whether a network supports a feature. Unknown networks
// and unknown features return false.
func (r *Registry) Supports(network string, feature Feature) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.networks[network]
	if !ok {
		return false
	}
	return cfg.Features[feature]
}

// Fallback returns the human-readable fallback strategy for a feature on a
// network. Total: unknown pairs get a generic description.
func (r *Registry) Fallback(network string, feature Feature) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if cfg, ok := r.networks[network]; ok {
		if s, ok := cfg.Fallbacks[feature]; ok && s != "" {
			return s
		}
		if cfg.Features[feature] {
			return "supported natively"
		}
	}
	return fmt.Sprintf("%s is not available on %s; the feature is disabled", feature, network)
}

// Network returns the config for a network and whether it is registered.
func (r *Registry) Network(network string) (NetworkConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.networks[network]
	return cfg, ok
}

// Networks returns all registered network ids in sorted order.
func (r *Registry) Networks() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.networks))
	for id := range r.networks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
