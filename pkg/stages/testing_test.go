package stages

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/pkg/solc"
)

func completeArtifact() *solc.Result {
	return &solc.Result{
		ContractName:     "MyToken",
		ABI:              []map[string]any{{"type": "constructor", "inputs": []any{}}},
		Bytecode:         "0x6080604052",
		DeployedBytecode: "0x6080",
		SolidityVersion:  "0.8.27",
		SourceHash:       "ab12",
	}
}

func TestArtifactChecker(t *testing.T) {
	t.Run("complete artifact passes every check", func(t *testing.T) {
		res, err := ArtifactChecker{}.Run(context.Background(), "pragma solidity 0.8.27;\ncontract MyToken {}", completeArtifact())
		require.NoError(t, err)
		assert.Zero(t, res.Failed)
		assert.Zero(t, res.Skipped)
		assert.Equal(t, 6, res.Passed)
		assert.InDelta(t, 100.0, res.CoveragePercent, 0.01)
	})

	t.Run("missing pieces fail their checks", func(t *testing.T) {
		artifact := completeArtifact()
		artifact.Bytecode = "0x"
		artifact.ABI = nil

		res, err := ArtifactChecker{}.Run(context.Background(), "contract MyToken {}", artifact)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Failed, "bytecode, abi, and pragma checks fail")
		assert.Equal(t, 3, res.Passed)
		assert.Less(t, res.CoveragePercent, 100.0)
	})
}

type fakeTestRunner struct {
	result *TestResult
	err    error
}

func (f fakeTestRunner) Run(context.Context, string, *solc.Result) (*TestResult, error) {
	return f.result, f.err
}

func TestTestingStage(t *testing.T) {
	t.Run("requires a compiled artifact", func(t *testing.T) {
		stage := NewTestingStage(fakeTestRunner{}, false)
		err := stage.Validate(context.Background(), &Context{})
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
	})

	t.Run("failures are advisory by default", func(t *testing.T) {
		stage := NewTestingStage(fakeTestRunner{result: &TestResult{Passed: 4, Failed: 2}}, false)
		sc := &Context{Compiled: completeArtifact()}

		require.NoError(t, stage.Process(context.Background(), sc))
		assert.Equal(t, 2, sc.TestResult.Failed)
		require.Len(t, sc.Warnings, 1)
		assert.Contains(t, sc.Warnings[0], "advisory")
	})

	t.Run("strict mode fails the stage", func(t *testing.T) {
		stage := NewTestingStage(fakeTestRunner{result: &TestResult{Passed: 4, Failed: 2}}, true)
		sc := &Context{Compiled: completeArtifact()}
		assert.Error(t, stage.Process(context.Background(), sc))
	})

	t.Run("runner errors propagate", func(t *testing.T) {
		stage := NewTestingStage(fakeTestRunner{err: errors.New("runner crashed")}, false)
		sc := &Context{Compiled: completeArtifact()}
		assert.Error(t, stage.Process(context.Background(), sc))
	})
}
