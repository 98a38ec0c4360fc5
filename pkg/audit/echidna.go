package audit

import (
	"encoding/json"
	"fmt"
	"time"
)

// Echidna is the property fuzzer, run only at the comprehensive level.
type Echidna struct {
	BinaryPath string
	RunTimeout time.Duration
}

// NewEchidna creates an echidna tool with the default 300 s timeout.
func NewEchidna(binaryPath string) *Echidna {
	return &Echidna{BinaryPath: binaryPath, RunTimeout: 300 * time.Second}
}

func (e *Echidna) Name() string           { return "echidna" }
func (e *Echidna) MinLevel() Level        { return LevelComprehensive }
func (e *Echidna) Timeout() time.Duration { return e.RunTimeout }

func (e *Echidna) Command(workDir string, input Input) ([]string, error) {
	path, err := writeSource(workDir, input.SourceCode)
	if err != nil {
		return nil, err
	}
	return []string{e.BinaryPath, path, "--format", "json"}, nil
}

// echidnaOutput is the subset of echidna's JSON report we read.
type echidnaOutput struct {
	Tests []struct {
		Name   string `json:"name"`
		Status string `json:"status"` // passed, failed, solved, error
		Error  string `json:"error"`
	} `json:"tests"`
}

func (e *Echidna) Parse(stdout []byte) ([]Finding, error) {
	var out echidnaOutput
	if err := json.Unmarshal(stdout, &out); err != nil {
		return nil, fmt.Errorf("invalid echidna json: %w", err)
	}

	var findings []Finding
	for _, test := range out.Tests {
		if test.Status != "failed" && test.Status != "solved" {
			continue
		}
		desc := fmt.Sprintf("fuzzing falsified property %q", test.Name)
		if test.Error != "" {
			desc += ": " + test.Error
		}
		findings = append(findings, Finding{
			Tool:        e.Name(),
			Severity:    SeverityHigh,
			Title:       "property violation: " + test.Name,
			Description: desc,
		})
	}
	return findings, nil
}
