package stages

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chainforge-ai/chainforge/pkg/solc"
)

// TestResult summarizes one test run against a compiled contract.
type TestResult struct {
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Skipped         int     `json:"skipped"`
	CoveragePercent float64 `json:"coverage_percent"`
}

// TestRunner executes tests against a compiled artifact. The default
// ArtifactChecker runs structural checks; a real framework runner can be
// plugged in through config.
type TestRunner interface {
	Run(ctx context.Context, source string, compiled *solc.Result) (*TestResult, error)
}

// TestingStage runs the configured test runner. Failures are advisory
// unless strict mode is set.
type TestingStage struct {
	runner TestRunner
	strict bool
}

// NewTestingStage creates the stage.
func NewTestingStage(runner TestRunner, strict bool) *TestingStage {
	return &TestingStage{runner: runner, strict: strict}
}

func (s *TestingStage) Name() string { return "testing" }

// Validate requires a compiled artifact.
func (s *TestingStage) Validate(_ context.Context, sc *Context) error {
	if sc.Compiled == nil {
		return &ValidationError{Stage: s.Name(), Reason: "no compiled contract to test"}
	}
	return nil
}

func (s *TestingStage) Process(ctx context.Context, sc *Context) error {
	result, err := s.runner.Run(ctx, sc.ContractCode, sc.Compiled)
	if err != nil {
		return err
	}
	sc.TestResult = result

	slog.Info("Testing finished",
		"workflow_id", sc.WorkflowID, "passed", result.Passed,
		"failed", result.Failed, "skipped", result.Skipped,
		"coverage_percent", result.CoveragePercent)

	if result.Failed > 0 {
		if s.strict {
			return fmt.Errorf("%d contract tests failed", result.Failed)
		}
		sc.Warn(fmt.Sprintf("%d contract tests failed; proceeding because testing is advisory", result.Failed))
	}
	return nil
}

// ArtifactChecker is the built-in test runner: a fixed battery of structural
// checks on the compiled artifact. It never skips and reports coverage as
// the fraction of checks that passed.
type ArtifactChecker struct{}

func (ArtifactChecker) Run(_ context.Context, source string, compiled *solc.Result) (*TestResult, error) {
	checks := []struct {
		name string
		ok   bool
	}{
		{"creation bytecode present", compiled.Bytecode != "" && compiled.Bytecode != "0x"},
		{"runtime bytecode present", compiled.DeployedBytecode != "" && compiled.DeployedBytecode != "0x"},
		{"abi present", len(compiled.ABI) > 0},
		{"contract name resolved", compiled.ContractName != ""},
		{"source hash recorded", compiled.SourceHash != ""},
		{"solidity pragma declared", strings.Contains(source, "pragma solidity")},
	}

	result := &TestResult{}
	for _, c := range checks {
		if c.ok {
			result.Passed++
		} else {
			result.Failed++
			slog.Debug("Artifact check failed", "check", c.name, "contract", compiled.ContractName)
		}
	}
	if total := result.Passed + result.Failed; total > 0 {
		result.CoveragePercent = float64(result.Passed) / float64(total) * 100
	}
	return result, nil
}
