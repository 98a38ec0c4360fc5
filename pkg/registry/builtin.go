package registry

// builtinNetworks is the static catalog the registry starts from. A config
// file may extend or override these entries at startup.
func builtinNetworks() map[string]NetworkConfig {
	hyperionFallbacks := map[Feature]string{}

	mantleFallbacks := map[Feature]string{
		FeaturePEF:             "PEF is not available on Mantle; batch deployments run sequentially",
		FeatureMetisVM:         "MetisVM optimization is not available on Mantle; standard EVM bytecode is generated",
		FeatureEigenDA:         "EigenDA is not available on Mantle; contract metadata is stored in PostgreSQL only",
		FeatureBatchDeployment: "batch deployment is not available on Mantle; contracts deploy one at a time",
		FeatureFloatingPoint:   "floating-point pragmas are not available on Mantle; fixed-point arithmetic is used",
		FeatureAIInference:     "on-chain AI inference is not available on Mantle; the pragma is omitted",
	}

	return map[string]NetworkConfig{
		"hyperion_testnet": {
			ChainID:     133717,
			RPCEndpoint: "https://hyperion-testnet.metisdevops.link",
			Explorer:    "https://hyperion-testnet-explorer.metisdevops.link",
			Features: map[Feature]bool{
				FeaturePEF:             true,
				FeatureMetisVM:         true,
				FeatureEigenDA:         true,
				FeatureBatchDeployment: true,
				FeatureFloatingPoint:   true,
				FeatureAIInference:     true,
			},
			Fallbacks: hyperionFallbacks,
		},
		"hyperion_mainnet": {
			ChainID:     133718,
			RPCEndpoint: "https://hyperion.metis.io",
			Explorer:    "https://hyperion-explorer.metis.io",
			Features: map[Feature]bool{
				FeaturePEF:             true,
				FeatureMetisVM:         true,
				FeatureEigenDA:         true,
				FeatureBatchDeployment: true,
				FeatureFloatingPoint:   true,
				FeatureAIInference:     true,
			},
			Fallbacks: hyperionFallbacks,
		},
		"mantle_testnet": {
			ChainID:     5003,
			RPCEndpoint: "https://rpc.sepolia.mantle.xyz",
			Explorer:    "https://sepolia.mantlescan.xyz",
			Features: map[Feature]bool{
				FeaturePEF:             false,
				FeatureMetisVM:         false,
				FeatureEigenDA:         false,
				FeatureBatchDeployment: false,
				FeatureFloatingPoint:   false,
				FeatureAIInference:     false,
			},
			Fallbacks: mantleFallbacks,
		},
		"mantle_mainnet": {
			ChainID:     5000,
			RPCEndpoint: "https://rpc.mantle.xyz",
			Explorer:    "https://mantlescan.xyz",
			Features: map[Feature]bool{
				FeaturePEF:             false,
				FeatureMetisVM:         false,
				FeatureEigenDA:         false,
				FeatureBatchDeployment: false,
				FeatureFloatingPoint:   false,
				FeatureAIInference:     false,
			},
			Fallbacks: mantleFallbacks,
		},
	}
}

// HyperionFamily reports whether a network id belongs to the Hyperion
// family, which is the only family carrying MetisVM pragma support.
func HyperionFamily(network string) bool {
	switch network {
	case "hyperion_testnet", "hyperion_mainnet":
		return true
	}
	return false
}
