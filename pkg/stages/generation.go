package stages

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/chainforge-ai/chainforge/pkg/llm"
	"github.com/chainforge-ai/chainforge/pkg/rag"
	"github.com/chainforge-ai/chainforge/pkg/registry"
)

// MinDescriptionLength is the shortest accepted contract description.
const MinDescriptionLength = 10

// maxPromptTemplates caps how many retrieved templates the prompt cites.
const maxPromptTemplates = 3

// constructorArgsTimeout bounds the secondary constructor-value call.
const constructorArgsTimeout = 20 * time.Second

const generationTemperature = 0.3

const systemRole = `You are an expert Solidity smart contract developer. You write secure,
gas-efficient, production-ready contracts targeting the EVM.`

// Generator is the LLM surface the stage needs. *llm.Retrier implements it.
type Generator interface {
	Name() string
	Generate(ctx context.Context, req llm.GenerateRequest) (string, error)
	GenerateWithTimeout(ctx context.Context, req llm.GenerateRequest, timeout time.Duration) (string, error)
}

// TemplateRetriever is the RAG surface. *rag.Retriever implements it.
type TemplateRetriever interface {
	Retrieve(ctx context.Context, query, contractType string) []rag.Template
}

// GenerationStage turns the natural-language description into Solidity
// source plus concrete constructor argument values.
type GenerationStage struct {
	generator Generator
	retriever TemplateRetriever
	registry  *registry.Registry
}

// NewGenerationStage creates the stage. retriever may be nil when no
// template store is configured; generation then runs template-free.
func NewGenerationStage(generator Generator, retriever TemplateRetriever, reg *registry.Registry) *GenerationStage {
	return &GenerationStage{generator: generator, retriever: retriever, registry: reg}
}

func (s *GenerationStage) Name() string { return "generation" }

// Validate enforces the minimum description length.
func (s *GenerationStage) Validate(_ context.Context, sc *Context) error {
	if len(strings.TrimSpace(sc.Description)) < MinDescriptionLength {
		return &ValidationError{Stage: s.Name(), Reason: fmt.Sprintf(
			"description must be at least %d characters", MinDescriptionLength)}
	}
	if sc.ContractType == "" {
		sc.ContractType = "Custom"
	}
	return nil
}

// Process generates the contract source and constructor arguments.
func (s *GenerationStage) Process(ctx context.Context, sc *Context) error {
	var templates []rag.Template
	if s.retriever != nil {
		templates = s.retriever.Retrieve(ctx, sc.Description, sc.ContractType)
	}

	response, err := s.generator.Generate(ctx, llm.GenerateRequest{
		System:      systemRole,
		Prompt:      buildGenerationPrompt(sc.Description, sc.ContractType, templates),
		Temperature: generationTemperature,
	})
	if err != nil {
		return &LLMError{Provider: s.generator.Name(), Err: err}
	}

	code := llm.ExtractSolidity(response)
	if code == "" {
		return &LLMError{Provider: s.generator.Name(), Err: fmt.Errorf("empty response")}
	}

	code, report := s.applyMetisVMPragmas(code, sc)
	sc.ContractCode = code
	sc.OptimizationReport = report

	sc.ConstructorArgs = s.deriveConstructorArgs(ctx, sc.Description, code)

	slog.Info("Contract source generated",
		"workflow_id", sc.WorkflowID, "provider", s.generator.Name(),
		"templates_used", len(templates), "source_bytes", len(code),
		"constructor_args", len(sc.ConstructorArgs))
	return nil
}

// buildGenerationPrompt assembles the user prompt: retrieved reference
// templates first, then the description, then the hard requirements.
func buildGenerationPrompt(description, contractType string, templates []rag.Template) string {
	var b strings.Builder

	if len(templates) > maxPromptTemplates {
		templates = templates[:maxPromptTemplates]
	}
	for i, tpl := range templates {
		fmt.Fprintf(&b, "Reference template %d (%s, similarity %.2f):\n```solidity\n%s\n```\n\n",
			i+1, tpl.Name, tpl.Similarity, tpl.SourceCode)
	}

	fmt.Fprintf(&b, "Generate a %s smart contract for the following description:\n\n%s\n\n", contractType, description)

	b.WriteString(`Requirements:
- Follow OpenZeppelin conventions and inherit OpenZeppelin base contracts where applicable.
- Add reentrancy guards on functions that transfer value.
- Document every public function and state variable with NatSpec comments.
- Use exactly "pragma solidity 0.8.27;".
- Target: EVM.
- Respond with a single fenced Solidity code block and nothing else.`)
	return b.String()
}

var (
	solidityPragmaLine = regexp.MustCompile(`(?m)^\s*pragma\s+solidity[^;]*;`)
	floatIndicators    = regexp.MustCompile(`(?i)float|fixed[\s_-]?point|decimal arithmetic`)
	aiIndicators       = regexp.MustCompile(`(?i)ai[\s_-]?inference|neural|quantiz|machine[\s_-]?learning|model weights`)
)

// applyMetisVMPragmas injects the MetisVM pragma family after the Solidity
// pragma when optimization was requested, the network is in the Hyperion
// family, and the registry grants MetisVM. The returned report describes
// what was injected and why.
func (s *GenerationStage) applyMetisVMPragmas(code string, sc *Context) (string, string) {
	if !sc.OptimizeMetisVM {
		return code, "metisvm optimization not requested"
	}
	if !registry.HyperionFamily(sc.Network) || !s.registry.Supports(sc.Network, registry.FeatureMetisVM) {
		return code, "metisvm optimization unavailable on " + sc.Network
	}

	pragmas := []string{`pragma metisvm ">=0.1.0";`}
	notes := []string{"metisvm"}

	if sc.FloatingPoint || floatIndicators.MatchString(code) {
		pragmas = append(pragmas, `pragma metisvm_floating_point ">=0.1.0";`)
		notes = append(notes, "floating_point")
	}
	if sc.AIInference || aiIndicators.MatchString(code) {
		pragmas = append(pragmas, `pragma metisvm_ai_quantization ">=0.1.0";`)
		notes = append(notes, "ai_quantization")
	}

	loc := solidityPragmaLine.FindStringIndex(code)
	if loc == nil {
		// No solidity pragma to anchor on; prepend the block instead.
		return strings.Join(pragmas, "\n") + "\n" + code,
			"injected pragmas (prepended): " + strings.Join(notes, ", ")
	}
	injected := code[:loc[1]] + "\n" + strings.Join(pragmas, "\n") + code[loc[1]:]
	return injected, "injected pragmas: " + strings.Join(notes, ", ")
}

// constructorParamRe captures the parameter list of the contract's
// constructor so argument defaults can be typed.
var constructorParamRe = regexp.MustCompile(`constructor\s*\(([^)]*)\)`)

// deriveConstructorArgs asks the model for concrete constructor values
// matching the description. On any failure it falls back to type-appropriate
// defaults so deployment can still proceed.
func (s *GenerationStage) deriveConstructorArgs(ctx context.Context, description, code string) []any {
	paramTypes := constructorParamTypes(code)
	if len(paramTypes) == 0 {
		return nil
	}

	prompt := fmt.Sprintf(`A Solidity constructor takes these parameter types in order: %s.
Derive concrete argument values from this description: %q.
Respond with a JSON array only, one element per parameter, in order.
Use strings for string and address parameters and plain numbers for integers.`,
		strings.Join(paramTypes, ", "), description)

	response, err := s.generator.GenerateWithTimeout(ctx, llm.GenerateRequest{
		System:      systemRole,
		Prompt:      prompt,
		Temperature: 0,
	}, constructorArgsTimeout)
	if err == nil {
		if args, ok := parseArgsArray(response, len(paramTypes)); ok {
			return args
		}
	} else {
		slog.Warn("Constructor argument derivation failed; using defaults", "error", err)
	}
	return defaultArgs(paramTypes)
}

// constructorParamTypes returns the Solidity types of the constructor
// parameters, in declaration order. No constructor means no arguments.
func constructorParamTypes(code string) []string {
	m := constructorParamRe.FindStringSubmatch(code)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return nil
	}
	var types []string
	for _, param := range strings.Split(m[1], ",") {
		fields := strings.Fields(strings.TrimSpace(param))
		if len(fields) == 0 {
			continue
		}
		types = append(types, fields[0])
	}
	return types
}

var jsonArrayRe = regexp.MustCompile(`(?s)\[.*\]`)

// parseArgsArray pulls a JSON array out of the model response and checks it
// has the expected arity.
func parseArgsArray(response string, want int) ([]any, bool) {
	m := jsonArrayRe.FindString(response)
	if m == "" {
		return nil, false
	}
	var args []any
	if err := json.Unmarshal([]byte(m), &args); err != nil {
		return nil, false
	}
	if len(args) != want {
		return nil, false
	}
	return args, true
}

// defaultArgs builds type-appropriate zero values: empty string, 0, the
// zero address, false.
func defaultArgs(paramTypes []string) []any {
	args := make([]any, len(paramTypes))
	for i, t := range paramTypes {
		switch {
		case t == "string":
			args[i] = ""
		case t == "address":
			args[i] = "0x0000000000000000000000000000000000000000"
		case t == "bool":
			args[i] = false
		case strings.HasPrefix(t, "uint"), strings.HasPrefix(t, "int"):
			args[i] = 0
		default:
			args[i] = ""
		}
	}
	return args
}
