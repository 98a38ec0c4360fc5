package solc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"exact pragma", "pragma solidity 0.8.27;\ncontract A {}", "0.8.27"},
		{"caret pragma", "pragma solidity ^0.8.20;\ncontract A {}", "0.8.20"},
		{"range pragma", "pragma solidity >=0.8.21;\ncontract A {}", "0.8.21"},
		{"no pragma defaults", "contract A {}", DefaultVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVersion(tt.source))
		})
	}
}

func TestCompareVersions(t *testing.T) {
	assert.Equal(t, 0, compareVersions("0.8.27", "0.8.27"))
	assert.Equal(t, -1, compareVersions("0.8.20", "0.8.27"))
	assert.Equal(t, 1, compareVersions("0.8.27", "0.8.20"))
	assert.Equal(t, 1, compareVersions("0.9.0", "0.8.27"))
}

func TestResolveBinaryExactMatch(t *testing.T) {
	dir := t.TempDir()
	exact := filepath.Join(dir, "solc-0.8.27")
	require.NoError(t, os.WriteFile(exact, []byte("#!/bin/sh\n"), 0o755))

	c := New(Config{BinDir: dir})
	binary, resolved := c.resolveBinary("0.8.27")
	assert.Equal(t, exact, binary)
	assert.Equal(t, "0.8.27", resolved)
}

func TestResolveBinaryFallsBackToNewestInstalled(t *testing.T) {
	dir := t.TempDir()
	for _, v := range []string{"0.8.19", "0.8.21", "0.8.24"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "solc-"+v), []byte("#!/bin/sh\n"), 0o755))
	}

	c := New(Config{BinDir: dir})
	binary, resolved := c.resolveBinary("0.8.27")
	// 0.8.19 is below the fallback floor; 0.8.24 is the newest eligible.
	assert.Equal(t, filepath.Join(dir, "solc-0.8.24"), binary)
	assert.Equal(t, "0.8.24", resolved)
}

func TestResolveBinaryDefaultWhenDirEmpty(t *testing.T) {
	c := New(Config{BinDir: t.TempDir(), DefaultBinary: "solc"})
	binary, resolved := c.resolveBinary("0.8.27")
	assert.Equal(t, "solc", binary)
	assert.Equal(t, "0.8.27", resolved)
}

func TestParseOutputSuccess(t *testing.T) {
	source := "pragma solidity 0.8.27;\ncontract MyToken {}"
	output := `{
		"contracts": {
			"Contract.sol": {
				"MyToken": {
					"abi": [
						{"type": "constructor", "inputs": [
							{"name": "name_", "type": "string"},
							{"name": "supply_", "type": "uint256"}
						]}
					],
					"evm": {
						"bytecode": {"object": "6080"},
						"deployedBytecode": {"object": "6001"}
					}
				}
			}
		}
	}`

	res, err := parseOutput(source, []byte(output), "0.8.27")
	require.NoError(t, err)
	assert.Equal(t, "MyToken", res.ContractName)
	assert.Equal(t, "0x6080", res.Bytecode)
	assert.Equal(t, "0x6001", res.DeployedBytecode)
	assert.Equal(t, "0.8.27", res.SolidityVersion)
	assert.Len(t, res.SourceHash, 64)
	require.Len(t, res.ConstructorInputs, 2)
	assert.Equal(t, "name_", res.ConstructorInputs[0]["name"])
}

func TestParseOutputSurfacesDiagnosticsVerbatim(t *testing.T) {
	output := `{
		"errors": [
			{"severity": "warning", "formattedMessage": "Warning: unused variable"},
			{"severity": "error", "formattedMessage": "ParserError: Expected ';' but got '}'"}
		]
	}`

	_, err := parseOutput("contract A {}", []byte(output), "0.8.27")
	require.Error(t, err)

	var cerr *CompilationError
	require.ErrorAs(t, err, &cerr)
	require.Len(t, cerr.Diagnostics, 1, "warnings are not fatal")
	assert.Contains(t, cerr.Diagnostics[0], "ParserError")
	assert.Contains(t, err.Error(), "Expected ';'")
}

func TestMainContractNamePicksLastConcreteDeclaration(t *testing.T) {
	source := `pragma solidity 0.8.27;
abstract contract Base {}
contract Helper {}
contract MyToken is Base {}`

	contracts := map[string]struct{}{
		"Base":    {},
		"Helper":  {},
		"MyToken": {},
	}
	assert.Equal(t, "MyToken", mainContractName(source, contracts))
}

func TestSourceHashMatchesSource(t *testing.T) {
	source := "pragma solidity 0.8.27;\ncontract A {}"
	output := `{"contracts": {"Contract.sol": {"A": {"abi": [], "evm": {"bytecode": {"object": "60"}, "deployedBytecode": {"object": "60"}}}}}}`

	res, err := parseOutput(source, []byte(output), "0.8.27")
	require.NoError(t, err)

	res2, err := parseOutput(source, []byte(output), "0.8.27")
	require.NoError(t, err)
	assert.Equal(t, res.SourceHash, res2.SourceHash)
}
