package stages

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/pkg/llm"
	"github.com/chainforge-ai/chainforge/pkg/rag"
	"github.com/chainforge-ai/chainforge/pkg/registry"
)

// fakeGenerator scripts responses per call in order.
type fakeGenerator struct {
	responses []string
	errs      []error
	prompts   []llm.GenerateRequest
}

func (f *fakeGenerator) Name() string { return "fake" }

func (f *fakeGenerator) Generate(ctx context.Context, req llm.GenerateRequest) (string, error) {
	return f.GenerateWithTimeout(ctx, req, time.Second)
}

func (f *fakeGenerator) GenerateWithTimeout(_ context.Context, req llm.GenerateRequest, _ time.Duration) (string, error) {
	call := len(f.prompts)
	f.prompts = append(f.prompts, req)
	if call < len(f.errs) && f.errs[call] != nil {
		return "", f.errs[call]
	}
	if call < len(f.responses) {
		return f.responses[call], nil
	}
	return "", errors.New("no scripted response")
}

type fakeRetriever struct {
	templates []rag.Template
}

func (f *fakeRetriever) Retrieve(context.Context, string, string) []rag.Template {
	return f.templates
}

const tokenSource = "```solidity\npragma solidity 0.8.27;\n\ncontract MyToken {\n    constructor(string memory name_, uint256 supply) {}\n}\n```"

func TestGenerationValidate(t *testing.T) {
	stage := NewGenerationStage(&fakeGenerator{}, nil, registry.New())

	t.Run("short description is rejected", func(t *testing.T) {
		err := stage.Validate(context.Background(), &Context{Description: "too short"})
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
	})

	t.Run("missing contract type defaults to Custom", func(t *testing.T) {
		sc := &Context{Description: "Create an ERC20 token named MyToken"}
		require.NoError(t, stage.Validate(context.Background(), sc))
		assert.Equal(t, "Custom", sc.ContractType)
	})
}

func TestGenerationProcess(t *testing.T) {
	t.Run("extracts source and derives constructor args", func(t *testing.T) {
		gen := &fakeGenerator{responses: []string{tokenSource, `["MyToken", 1000000]`}}
		stage := NewGenerationStage(gen, nil, registry.New())

		sc := &Context{
			WorkflowID:  "wf-1",
			Description: "Create an ERC20 token named MyToken with supply 1000000",
			Network:     "hyperion_testnet",
		}
		require.NoError(t, stage.Process(context.Background(), sc))

		assert.Contains(t, sc.ContractCode, "contract MyToken")
		assert.NotContains(t, sc.ContractCode, "```")
		assert.Equal(t, []any{"MyToken", float64(1_000_000)}, sc.ConstructorArgs)
	})

	t.Run("prompt cites at most three templates", func(t *testing.T) {
		gen := &fakeGenerator{responses: []string{tokenSource, `["T", 1]`}}
		retriever := &fakeRetriever{templates: []rag.Template{
			{Name: "T1", SourceCode: "contract T1 {}", Similarity: 0.95},
			{Name: "T2", SourceCode: "contract T2 {}", Similarity: 0.9},
			{Name: "T3", SourceCode: "contract T3 {}", Similarity: 0.85},
			{Name: "T4", SourceCode: "contract T4 {}", Similarity: 0.8},
		}}
		stage := NewGenerationStage(gen, retriever, registry.New())

		sc := &Context{Description: "Create an ERC20 token", Network: "hyperion_testnet"}
		require.NoError(t, stage.Process(context.Background(), sc))

		prompt := gen.prompts[0].Prompt
		assert.Contains(t, prompt, "T3")
		assert.NotContains(t, prompt, "T4")
		assert.Contains(t, prompt, "pragma solidity 0.8.27")
		assert.Contains(t, prompt, "OpenZeppelin")
	})

	t.Run("llm failure surfaces as an llm error", func(t *testing.T) {
		gen := &fakeGenerator{errs: []error{errors.New("rate limit")}}
		stage := NewGenerationStage(gen, nil, registry.New())

		err := stage.Process(context.Background(), &Context{Description: "Create an ERC20 token"})
		var llmErr *LLMError
		require.ErrorAs(t, err, &llmErr)
	})

	t.Run("constructor args fall back to typed defaults", func(t *testing.T) {
		source := "```solidity\npragma solidity 0.8.27;\ncontract Escrow {\n    constructor(string memory label, uint256 amount, address payee, bool locked) {}\n}\n```"
		gen := &fakeGenerator{
			responses: []string{source, "not json at all"},
		}
		stage := NewGenerationStage(gen, nil, registry.New())

		sc := &Context{Description: "Create an escrow contract holding funds"}
		require.NoError(t, stage.Process(context.Background(), sc))
		assert.Equal(t, []any{"", 0, "0x0000000000000000000000000000000000000000", false}, sc.ConstructorArgs)
	})

	t.Run("no constructor means no args and no second call", func(t *testing.T) {
		source := "```solidity\npragma solidity 0.8.27;\ncontract Counter { uint256 public n; }\n```"
		gen := &fakeGenerator{responses: []string{source}}
		stage := NewGenerationStage(gen, nil, registry.New())

		sc := &Context{Description: "Create a simple counter contract"}
		require.NoError(t, stage.Process(context.Background(), sc))
		assert.Empty(t, sc.ConstructorArgs)
		assert.Len(t, gen.prompts, 1)
	})
}

func TestMetisVMPragmaInjection(t *testing.T) {
	newStage := func() *GenerationStage {
		return NewGenerationStage(&fakeGenerator{}, nil, registry.New())
	}
	base := "pragma solidity 0.8.27;\n\ncontract MyToken {}"

	t.Run("injected on hyperion when requested", func(t *testing.T) {
		sc := &Context{Network: "hyperion_testnet", OptimizeMetisVM: true}
		code, report := newStage().applyMetisVMPragmas(base, sc)

		lines := strings.Split(code, "\n")
		require.GreaterOrEqual(t, len(lines), 2)
		assert.Equal(t, "pragma solidity 0.8.27;", lines[0])
		assert.Equal(t, `pragma metisvm ">=0.1.0";`, lines[1])
		assert.NotContains(t, code, "floating_point")
		assert.Contains(t, report, "metisvm")
	})

	t.Run("floating point pragma on request", func(t *testing.T) {
		sc := &Context{Network: "hyperion_testnet", OptimizeMetisVM: true, FloatingPoint: true}
		code, _ := newStage().applyMetisVMPragmas(base, sc)
		assert.Contains(t, code, `pragma metisvm_floating_point ">=0.1.0";`)
	})

	t.Run("floating point pragma on textual detection", func(t *testing.T) {
		sc := &Context{Network: "hyperion_testnet", OptimizeMetisVM: true}
		code, _ := newStage().applyMetisVMPragmas(base+"\n// uses fixed-point math", sc)
		assert.Contains(t, code, `pragma metisvm_floating_point ">=0.1.0";`)
	})

	t.Run("ai quantization pragma on request", func(t *testing.T) {
		sc := &Context{Network: "hyperion_testnet", OptimizeMetisVM: true, AIInference: true}
		code, _ := newStage().applyMetisVMPragmas(base, sc)
		assert.Contains(t, code, `pragma metisvm_ai_quantization ">=0.1.0";`)
	})

	t.Run("never injected on mantle", func(t *testing.T) {
		sc := &Context{Network: "mantle_testnet", OptimizeMetisVM: true, FloatingPoint: true}
		code, report := newStage().applyMetisVMPragmas(base, sc)
		assert.NotContains(t, code, "pragma metisvm")
		assert.Contains(t, report, "unavailable")
	})

	t.Run("never injected without the request flag", func(t *testing.T) {
		sc := &Context{Network: "hyperion_testnet"}
		code, _ := newStage().applyMetisVMPragmas(base, sc)
		assert.NotContains(t, code, "pragma metisvm")
	})
}

func TestConstructorParamTypes(t *testing.T) {
	t.Run("types in declaration order", func(t *testing.T) {
		types := constructorParamTypes(`contract T {
    constructor(string memory name_, uint256 supply, address owner) {}
}`)
		assert.Equal(t, []string{"string", "uint256", "address"}, types)
	})

	t.Run("no constructor", func(t *testing.T) {
		assert.Empty(t, constructorParamTypes("contract T {}"))
	})

	t.Run("empty parameter list", func(t *testing.T) {
		assert.Empty(t, constructorParamTypes("contract T { constructor() {} }"))
	})
}
