// Package solc wraps the Solidity compiler as a subprocess speaking the
// standard-JSON protocol on stdin/stdout.
package solc

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultVersion is assumed when the source carries no solidity pragma.
const DefaultVersion = "0.8.27"

// minFallbackVersion is the oldest compiler the fallback path accepts.
const minFallbackVersion = "0.8.20"

// sourceFileName is the virtual filename used in standard-JSON input.
const sourceFileName = "Contract.sol"

var pragmaRe = regexp.MustCompile(`pragma\s+solidity\s*[\^>=<~]*\s*([0-9]+\.[0-9]+\.[0-9]+)`)

var contractNameRe = regexp.MustCompile(`(?m)^\s*(?:abstract\s+)?contract\s+([A-Za-z_][A-Za-z0-9_]*)`)

// CompilationError carries the compiler's diagnostics verbatim.
type CompilationError struct {
	Diagnostics []string
}

func (e *CompilationError) Error() string {
	return "compilation failed:\n" + strings.Join(e.Diagnostics, "\n")
}

// Result is one successful compilation.
type Result struct {
	ContractName      string
	ABI               []map[string]any
	Bytecode          string // creation bytecode, 0x-prefixed
	DeployedBytecode  string // runtime bytecode, 0x-prefixed
	SolidityVersion   string
	SourceHash        string // hex SHA-256 of the source
	ConstructorInputs []map[string]any
}

// Config holds compiler invocation settings.
type Config struct {
	// BinDir holds versioned compiler binaries named "solc-<version>".
	// Empty means only the PATH binary is used.
	BinDir string

	// DefaultBinary is the fallback binary when no versioned one matches.
	DefaultBinary string

	// Timeout bounds one compiler run.
	Timeout time.Duration

	OptimizerRuns int
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		DefaultBinary: "solc",
		Timeout:       60 * time.Second,
		OptimizerRuns: 200,
	}
}

// Compiler invokes solc.
type Compiler struct {
	cfg Config
}

// New creates a compiler.
func New(cfg Config) *Compiler {
	if cfg.DefaultBinary == "" {
		cfg.DefaultBinary = "solc"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Compiler{cfg: cfg}
}

// ExtractVersion returns the solidity version named by the source pragma,
// or DefaultVersion when no pragma is present.
func ExtractVersion(source string) string {
	if m := pragmaRe.FindStringSubmatch(source); m != nil {
		return m[1]
	}
	return DefaultVersion
}

// Compile runs the compiler for the source's pragma version and returns the
// artifacts of the main contract. Compiler diagnostics surface verbatim in
// CompilationError.
func (c *Compiler) Compile(ctx context.Context, source string) (*Result, error) {
	version := ExtractVersion(source)
	binary, resolved := c.resolveBinary(version)
	if resolved != version {
		slog.Info("Requested compiler version unavailable, using fallback",
			"requested", version, "using", resolved)
	}

	input := map[string]any{
		"language": "Solidity",
		"sources": map[string]any{
			sourceFileName: map[string]any{"content": source},
		},
		"settings": map[string]any{
			"optimizer": map[string]any{
				"enabled": true,
				"runs":    c.cfg.OptimizerRuns,
			},
			"outputSelection": map[string]any{
				"*": map[string]any{
					"*": []string{"abi", "evm.bytecode.object", "evm.deployedBytecode.object"},
				},
			},
		},
	}
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal compiler input: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, binary, "--standard-json")
	cmd.Stdin = bytes.NewReader(inputJSON)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("compiler timed out after %s", c.cfg.Timeout)
		}
		return nil, fmt.Errorf("compiler invocation failed: %w (stderr: %s)", err, stderr.String())
	}

	return parseOutput(source, stdout.Bytes(), version)
}

// resolveBinary picks the binary for a version: an exact versioned binary
// from BinDir, else the newest installed version at or above the fallback
// floor, else the default PATH binary.
func (c *Compiler) resolveBinary(version string) (binary, resolved string) {
	if c.cfg.BinDir == "" {
		return c.cfg.DefaultBinary, version
	}

	exact := filepath.Join(c.cfg.BinDir, "solc-"+version)
	if _, err := os.Stat(exact); err == nil {
		return exact, version
	}

	entries, err := os.ReadDir(c.cfg.BinDir)
	if err != nil {
		return c.cfg.DefaultBinary, version
	}

	type candidate struct {
		version string
		path    string
	}
	var candidates []candidate
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "solc-") {
			continue
		}
		v := strings.TrimPrefix(name, "solc-")
		if compareVersions(v, minFallbackVersion) >= 0 {
			candidates = append(candidates, candidate{v, filepath.Join(c.cfg.BinDir, name)})
		}
	}
	if len(candidates) == 0 {
		return c.cfg.DefaultBinary, version
	}

	sort.Slice(candidates, func(i, j int) bool {
		return compareVersions(candidates[i].version, candidates[j].version) > 0
	})
	return candidates[0].path, candidates[0].version
}

// compareVersions compares dotted numeric versions: -1, 0, or 1.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		ai, _ := strconv.Atoi(as[i])
		bi, _ := strconv.Atoi(bs[i])
		if ai != bi {
			if ai < bi {
				return -1
			}
			return 1
		}
	}
	if len(as) != len(bs) {
		if len(as) < len(bs) {
			return -1
		}
		return 1
	}
	return 0
}

// standardOutput is the subset of the standard-JSON output we read.
type standardOutput struct {
	Errors []struct {
		Severity         string `json:"severity"`
		FormattedMessage string `json:"formattedMessage"`
		Message          string `json:"message"`
	} `json:"errors"`
	Contracts map[string]map[string]struct {
		ABI []map[string]any `json:"abi"`
		EVM struct {
			Bytecode struct {
				Object string `json:"object"`
			} `json:"bytecode"`
			DeployedBytecode struct {
				Object string `json:"object"`
			} `json:"deployedBytecode"`
		} `json:"evm"`
	} `json:"contracts"`
}

func parseOutput(source string, outputJSON []byte, version string) (*Result, error) {
	var out standardOutput
	if err := json.Unmarshal(outputJSON, &out); err != nil {
		return nil, fmt.Errorf("failed to parse compiler output: %w", err)
	}

	var diagnostics []string
	for _, e := range out.Errors {
		if e.Severity == "error" {
			msg := e.FormattedMessage
			if msg == "" {
				msg = e.Message
			}
			diagnostics = append(diagnostics, msg)
		}
	}
	if len(diagnostics) > 0 {
		return nil, &CompilationError{Diagnostics: diagnostics}
	}

	contracts := out.Contracts[sourceFileName]
	if len(contracts) == 0 {
		return nil, fmt.Errorf("compiler produced no contracts")
	}

	name := mainContractName(source, contracts)
	artifact := contracts[name]

	hash := sha256.Sum256([]byte(source))

	return &Result{
		ContractName:      name,
		ABI:               artifact.ABI,
		Bytecode:          "0x" + artifact.EVM.Bytecode.Object,
		DeployedBytecode:  "0x" + artifact.EVM.DeployedBytecode.Object,
		SolidityVersion:   version,
		SourceHash:        hex.EncodeToString(hash[:]),
		ConstructorInputs: constructorInputs(artifact.ABI),
	}, nil
}

// mainContractName picks the deployable contract: the last concrete contract
// declared in the source. Falls back to any contract with creation bytecode.
func mainContractName[T any](source string, contracts map[string]T) string {
	matches := contractNameRe.FindAllStringSubmatch(source, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		if strings.Contains(matches[i][0], "abstract") {
			continue
		}
		if _, ok := contracts[matches[i][1]]; ok {
			return matches[i][1]
		}
	}
	// Deterministic fallback when declaration scanning finds nothing.
	names := make([]string, 0, len(contracts))
	for n := range contracts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names[0]
}

// constructorInputs extracts the constructor parameter descriptors from the ABI.
func constructorInputs(abi []map[string]any) []map[string]any {
	for _, entry := range abi {
		if entry["type"] == "constructor" {
			if inputs, ok := entry["inputs"].([]any); ok {
				out := make([]map[string]any, 0, len(inputs))
				for _, in := range inputs {
					if m, ok := in.(map[string]any); ok {
						out = append(out, m)
					}
				}
				return out
			}
		}
	}
	return nil
}
