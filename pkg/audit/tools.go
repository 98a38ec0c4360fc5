package audit

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Tool is one external analyzer. Implementations build the argv for a run;
// execution, isolation, and timeouts are shared.
type Tool interface {
	Name() string
	// MinLevel is the lowest audit level that runs this tool.
	MinLevel() Level
	Timeout() time.Duration
	// Command materializes the invocation for the given input inside the
	// private working directory (e.g. writes the source file) and returns
	// the argv. args[0] must be an absolute binary path.
	Command(workDir string, input Input) ([]string, error)
	// Parse converts the tool's stdout into findings.
	Parse(stdout []byte) ([]Finding, error)
}

// toolOutput captures one subprocess run.
type toolOutput struct {
	stdout []byte
	stderr []byte
}

// runTool executes a tool in a private temp working directory with an
// explicit argv and a hard timeout. Stdout and stderr are captured and
// attached to failures so the per-tool result carries full diagnostics.
func runTool(ctx context.Context, tool Tool, input Input) ([]Finding, error) {
	workDir, err := os.MkdirTemp("", "audit-"+tool.Name()+"-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	argv, err := tool.Command(workDir, input)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s command: %w", tool.Name(), err)
	}
	if len(argv) == 0 || !filepath.IsAbs(argv[0]) {
		return nil, fmt.Errorf("%s: binary path must be absolute", tool.Name())
	}

	runCtx, cancel := context.WithTimeout(ctx, tool.Timeout())
	defer cancel()

	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	cmd.Dir = workDir
	var out toolOutput
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	out.stdout = stdout.Bytes()
	out.stderr = stderr.Bytes()

	if runCtx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("%s timed out after %s", tool.Name(), tool.Timeout())
	}
	if runErr != nil {
		// Analyzers exit non-zero when they find issues; trust the parser
		// when stdout holds a usable report.
		if findings, perr := tool.Parse(out.stdout); perr == nil {
			return findings, nil
		}
		return nil, fmt.Errorf("%s crashed: %w (stderr: %s)", tool.Name(), runErr, truncate(out.stderr, 2048))
	}

	findings, err := tool.Parse(out.stdout)
	if err != nil {
		return nil, fmt.Errorf("%s output unparseable: %w (stderr: %s)", tool.Name(), err, truncate(out.stderr, 2048))
	}
	return findings, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "...(truncated)"
}

// writeSource writes contract source into the tool's private work dir and
// returns the absolute file path.
func writeSource(workDir, source string) (string, error) {
	path := filepath.Join(workDir, "Contract.sol")
	if err := os.WriteFile(path, []byte(source), 0o600); err != nil {
		return "", fmt.Errorf("failed to write source file: %w", err)
	}
	return path, nil
}
