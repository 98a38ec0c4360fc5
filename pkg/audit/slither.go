package audit

import (
	"encoding/json"
	"fmt"
	"time"
)

// Slither is the static analyzer, run at standard level and above.
type Slither struct {
	BinaryPath string
	RunTimeout time.Duration
}

// NewSlither creates a slither tool with the default 120 s timeout.
func NewSlither(binaryPath string) *Slither {
	return &Slither{BinaryPath: binaryPath, RunTimeout: 120 * time.Second}
}

func (s *Slither) Name() string           { return "slither" }
func (s *Slither) MinLevel() Level        { return LevelStandard }
func (s *Slither) Timeout() time.Duration { return s.RunTimeout }

func (s *Slither) Command(workDir string, input Input) ([]string, error) {
	path, err := writeSource(workDir, input.SourceCode)
	if err != nil {
		return nil, err
	}
	return []string{s.BinaryPath, path, "--json", "-"}, nil
}

// slitherOutput is the subset of slither's JSON report we read.
type slitherOutput struct {
	Success bool `json:"success"`
	Results struct {
		Detectors []struct {
			Check       string `json:"check"`
			Impact      string `json:"impact"`
			Description string `json:"description"`
			Elements    []struct {
				SourceMapping struct {
					Filename string `json:"filename_short"`
					Lines    []int  `json:"lines"`
				} `json:"source_mapping"`
			} `json:"elements"`
		} `json:"detectors"`
	} `json:"results"`
}

func (s *Slither) Parse(stdout []byte) ([]Finding, error) {
	var out slitherOutput
	if err := json.Unmarshal(stdout, &out); err != nil {
		return nil, fmt.Errorf("invalid slither json: %w", err)
	}

	findings := make([]Finding, 0, len(out.Results.Detectors))
	for _, d := range out.Results.Detectors {
		location := ""
		if len(d.Elements) > 0 && len(d.Elements[0].SourceMapping.Lines) > 0 {
			location = fmt.Sprintf("%s:%d",
				d.Elements[0].SourceMapping.Filename,
				d.Elements[0].SourceMapping.Lines[0])
		}
		findings = append(findings, Finding{
			Tool:        s.Name(),
			Severity:    slitherSeverity(d.Impact),
			Title:       d.Check,
			Description: d.Description,
			Location:    location,
		})
	}
	return findings, nil
}

// slitherSeverity maps slither impact levels onto our severity scale.
// Slither has no "critical" impact; its High is the ceiling.
func slitherSeverity(impact string) Severity {
	switch impact {
	case "High":
		return SeverityHigh
	case "Medium":
		return SeverityMedium
	case "Low":
		return SeverityLow
	default: // Informational, Optimization
		return SeverityInfo
	}
}
