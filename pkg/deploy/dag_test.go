package deploy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLayers(t *testing.T) {
	t.Run("independent contracts share one layer", func(t *testing.T) {
		layers, cyclic, err := BuildLayers([]BatchContract{
			{ContractName: "Token"},
			{ContractName: "Registry"},
			{ContractName: "Oracle"},
		})
		require.NoError(t, err)
		assert.False(t, cyclic)
		require.Len(t, layers, 1)
		assert.ElementsMatch(t, []int{0, 1, 2}, layers[0])
	})

	t.Run("dependent contract lands in a later layer", func(t *testing.T) {
		layers, cyclic, err := BuildLayers([]BatchContract{
			{ContractName: "Token"},
			{ContractName: "Vault", Dependencies: []string{"Token"}},
			{ContractName: "Oracle"},
		})
		require.NoError(t, err)
		assert.False(t, cyclic)
		require.Len(t, layers, 2)
		assert.ElementsMatch(t, []int{0, 2}, layers[0], "Token and Oracle have no unmet dependencies")
		assert.Equal(t, []int{1}, layers[1])
	})

	t.Run("diamond produces three layers", func(t *testing.T) {
		layers, cyclic, err := BuildLayers([]BatchContract{
			{ContractName: "Base"},
			{ContractName: "Left", Dependencies: []string{"Base"}},
			{ContractName: "Right", Dependencies: []string{"Base"}},
			{ContractName: "Top", Dependencies: []string{"Left", "Right"}},
		})
		require.NoError(t, err)
		assert.False(t, cyclic)
		require.Len(t, layers, 3)
		assert.Equal(t, []int{0}, layers[0])
		assert.ElementsMatch(t, []int{1, 2}, layers[1])
		assert.Equal(t, []int{3}, layers[2])
	})

	t.Run("cycle falls back to sequential input order", func(t *testing.T) {
		layers, cyclic, err := BuildLayers([]BatchContract{
			{ContractName: "Alpha", Dependencies: []string{"Beta"}},
			{ContractName: "Beta", Dependencies: []string{"Alpha"}},
			{ContractName: "Gamma"},
		})
		require.NoError(t, err)
		assert.True(t, cyclic)
		require.Len(t, layers, 3)
		for i, layer := range layers {
			assert.Equal(t, []int{i}, layer)
		}
	})

	t.Run("dependencies outside the batch are ignored", func(t *testing.T) {
		layers, cyclic, err := BuildLayers([]BatchContract{
			{ContractName: "Vault", Dependencies: []string{"AlreadyDeployed"}},
		})
		require.NoError(t, err)
		assert.False(t, cyclic)
		require.Len(t, layers, 1)
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		_, _, err := BuildLayers(nil)
		assert.Error(t, err)
	})

	t.Run("duplicate names are rejected", func(t *testing.T) {
		_, _, err := BuildLayers([]BatchContract{
			{ContractName: "Token"},
			{ContractName: "Token"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("unnamed contract is rejected", func(t *testing.T) {
		_, _, err := BuildLayers([]BatchContract{{ContractName: ""}})
		assert.Error(t, err)
	})
}

func TestInferDependencies(t *testing.T) {
	known := map[string]string{
		"token":  "Token",
		"vault":  "Vault",
		"oracle": "Oracle",
	}

	t.Run("explicit dependencies are case-insensitive", func(t *testing.T) {
		deps := InferDependencies(BatchContract{
			ContractName: "Vault",
			Dependencies: []string{"token", "ORACLE"},
		}, known)
		assert.Equal(t, []string{"Oracle", "Token"}, deps)
	})

	t.Run("imports of sibling sources are inferred", func(t *testing.T) {
		deps := InferDependencies(BatchContract{
			ContractName: "Vault",
			SourceCode: `pragma solidity ^0.8.27;
import "./Token.sol";
contract Vault {}`,
		}, known)
		assert.Equal(t, []string{"Token"}, deps)
	})

	t.Run("named imports are inferred", func(t *testing.T) {
		deps := InferDependencies(BatchContract{
			ContractName: "Vault",
			SourceCode:   `import {Token} from "../tokens/Token.sol";`,
		}, known)
		assert.Equal(t, []string{"Token"}, deps)
	})

	t.Run("type references are inferred", func(t *testing.T) {
		deps := InferDependencies(BatchContract{
			ContractName: "Vault",
			SourceCode: `contract Vault {
    Token public asset;
    constructor(address t) { asset = Token(t); }
}`,
		}, known)
		assert.Equal(t, []string{"Token"}, deps)
	})

	t.Run("self references are excluded", func(t *testing.T) {
		deps := InferDependencies(BatchContract{
			ContractName: "Token",
			Dependencies: []string{"Token"},
			SourceCode:   `contract Token { Token public self; }`,
		}, known)
		assert.Empty(t, deps)
	})

	t.Run("names outside the batch are dropped", func(t *testing.T) {
		deps := InferDependencies(BatchContract{
			ContractName: "Vault",
			Dependencies: []string{"IERC20"},
			SourceCode:   `import "@openzeppelin/contracts/token/ERC20/IERC20.sol";`,
		}, known)
		assert.Empty(t, deps)
	})

	t.Run("explicit and inferred dependencies merge without duplicates", func(t *testing.T) {
		deps := InferDependencies(BatchContract{
			ContractName: "Vault",
			Dependencies: []string{"Token"},
			SourceCode:   `import "./Token.sol"; contract Vault { Oracle o; }`,
		}, known)
		assert.Equal(t, []string{"Oracle", "Token"}, deps)
	})
}
