package stages

import (
	"context"
	"log/slog"

	"github.com/chainforge-ai/chainforge/pkg/solc"
)

// ContractStore persists the compiled contract. Implemented by
// services.ContractService; nil disables persistence (unit tests).
type ContractStore interface {
	SaveContract(ctx context.Context, workflowID string, res *solc.Result, sourceCode string) (string, error)
}

// CompilationStage compiles the generated source with solc and persists the
// resulting contract row.
type CompilationStage struct {
	compiler  *solc.Compiler
	contracts ContractStore
}

// NewCompilationStage creates the stage.
func NewCompilationStage(compiler *solc.Compiler, contracts ContractStore) *CompilationStage {
	return &CompilationStage{compiler: compiler, contracts: contracts}
}

func (s *CompilationStage) Name() string { return "compilation" }

// Validate requires generated source.
func (s *CompilationStage) Validate(_ context.Context, sc *Context) error {
	if sc.ContractCode == "" {
		return &ValidationError{Stage: s.Name(), Reason: "no contract source to compile"}
	}
	return nil
}

// Process compiles and persists. Compiler diagnostics pass through verbatim
// in the returned error.
func (s *CompilationStage) Process(ctx context.Context, sc *Context) error {
	result, err := s.compiler.Compile(ctx, sc.ContractCode)
	if err != nil {
		return err
	}
	sc.Compiled = result

	if s.contracts != nil {
		id, err := s.contracts.SaveContract(ctx, sc.WorkflowID, result, sc.ContractCode)
		if err != nil {
			return err
		}
		sc.ContractID = id
	}

	slog.Info("Contract compiled",
		"workflow_id", sc.WorkflowID, "contract", result.ContractName,
		"solidity_version", result.SolidityVersion, "source_hash", result.SourceHash)
	return nil
}
