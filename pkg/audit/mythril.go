package audit

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Mythril is the symbolic executor, run at standard level and above. It
// analyzes bytecode rather than source.
type Mythril struct {
	BinaryPath string
	RunTimeout time.Duration
}

// NewMythril creates a mythril tool with the default 180 s timeout.
func NewMythril(binaryPath string) *Mythril {
	return &Mythril{BinaryPath: binaryPath, RunTimeout: 180 * time.Second}
}

func (m *Mythril) Name() string           { return "mythril" }
func (m *Mythril) MinLevel() Level        { return LevelStandard }
func (m *Mythril) Timeout() time.Duration { return m.RunTimeout }

func (m *Mythril) Command(_ string, input Input) ([]string, error) {
	if input.Bytecode == "" {
		return nil, fmt.Errorf("mythril requires bytecode")
	}
	code := strings.TrimPrefix(input.Bytecode, "0x")
	return []string{m.BinaryPath, "analyze", "-c", code, "-o", "json"}, nil
}

// mythrilOutput is the subset of mythril's JSON report we read.
type mythrilOutput struct {
	Issues []struct {
		Severity    string `json:"severity"`
		Title       string `json:"title"`
		Description string `json:"description"`
		SWCID       string `json:"swc-id"`
		Address     int    `json:"address"`
	} `json:"issues"`
}

func (m *Mythril) Parse(stdout []byte) ([]Finding, error) {
	var out mythrilOutput
	if err := json.Unmarshal(stdout, &out); err != nil {
		return nil, fmt.Errorf("invalid mythril json: %w", err)
	}

	findings := make([]Finding, 0, len(out.Issues))
	for _, issue := range out.Issues {
		location := ""
		if issue.Address > 0 {
			location = fmt.Sprintf("bytecode:%d", issue.Address)
		}
		title := issue.Title
		if issue.SWCID != "" {
			title = fmt.Sprintf("%s (SWC-%s)", issue.Title, strings.TrimPrefix(issue.SWCID, "SWC-"))
		}
		findings = append(findings, Finding{
			Tool:        m.Name(),
			Severity:    mythrilSeverity(issue.Severity),
			Title:       title,
			Description: issue.Description,
			Location:    location,
		})
	}
	return findings, nil
}

// mythrilSeverity maps mythril severities onto our scale. Mythril's High
// marks directly exploitable issues, which we treat as critical.
func mythrilSeverity(severity string) Severity {
	switch severity {
	case "High":
		return SeverityCritical
	case "Medium":
		return SeverityHigh
	case "Low":
		return SeverityLow
	default:
		return SeverityInfo
	}
}
