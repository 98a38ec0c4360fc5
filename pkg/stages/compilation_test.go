package stages

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/pkg/solc"
)

type recordingContractStore struct {
	workflowID string
	source     string
	result     *solc.Result
	err        error
}

func (s *recordingContractStore) SaveContract(_ context.Context, workflowID string, res *solc.Result, source string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.workflowID = workflowID
	s.source = source
	s.result = res
	return "contract-1", nil
}

// fakeSolc writes a shell script that ignores stdin and prints the given
// standard-JSON output, then returns a compiler configured to use it.
func fakeSolc(t *testing.T, output string) *solc.Compiler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solc")
	script := "#!/bin/sh\ncat >/dev/null\ncat <<'EOF'\n" + output + "\nEOF\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return solc.New(solc.Config{DefaultBinary: path})
}

const tokenOutput = `{
	"contracts": {
		"Contract.sol": {
			"CappedToken": {
				"abi": [{"type": "constructor", "inputs": [{"name": "cap_", "type": "uint256"}]}],
				"evm": {
					"bytecode": {"object": "6080604052"},
					"deployedBytecode": {"object": "6080"}
				}
			}
		}
	}
}`

func TestCompilationStage(t *testing.T) {
	source := "pragma solidity 0.8.27;\ncontract CappedToken {}"

	t.Run("compiles and persists", func(t *testing.T) {
		store := &recordingContractStore{}
		stage := NewCompilationStage(fakeSolc(t, tokenOutput), store)
		sc := &Context{WorkflowID: "wf-1", ContractCode: source}

		require.NoError(t, stage.Validate(context.Background(), sc))
		require.NoError(t, stage.Process(context.Background(), sc))

		require.NotNil(t, sc.Compiled)
		assert.Equal(t, "CappedToken", sc.Compiled.ContractName)
		assert.Equal(t, "0x6080604052", sc.Compiled.Bytecode)
		assert.Equal(t, "0.8.27", sc.Compiled.SolidityVersion)
		assert.Len(t, sc.Compiled.SourceHash, 64)

		assert.Equal(t, "contract-1", sc.ContractID)
		assert.Equal(t, "wf-1", store.workflowID)
		assert.Equal(t, source, store.source)
	})

	t.Run("nil store skips persistence", func(t *testing.T) {
		stage := NewCompilationStage(fakeSolc(t, tokenOutput), nil)
		sc := &Context{WorkflowID: "wf-1", ContractCode: source}

		require.NoError(t, stage.Process(context.Background(), sc))
		assert.Empty(t, sc.ContractID)
	})

	t.Run("empty source fails validation", func(t *testing.T) {
		stage := NewCompilationStage(fakeSolc(t, tokenOutput), nil)
		err := stage.Validate(context.Background(), &Context{WorkflowID: "wf-1"})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "compilation", verr.Stage)
	})

	t.Run("compiler diagnostics surface verbatim", func(t *testing.T) {
		broken := `{"errors": [{"severity": "error", "formattedMessage": "ParserError: Expected ';' but got '}'"}]}`
		store := &recordingContractStore{}
		stage := NewCompilationStage(fakeSolc(t, broken), store)
		sc := &Context{WorkflowID: "wf-1", ContractCode: source}

		err := stage.Process(context.Background(), sc)
		var cerr *solc.CompilationError
		require.ErrorAs(t, err, &cerr)
		assert.Contains(t, err.Error(), "ParserError")
		assert.Nil(t, store.result, "nothing persisted on failure")
	})
}
