// Package audit runs security analysis tools against generated contracts
// as isolated subprocesses and aggregates their findings into a risk score.
package audit

import "time"

// Severity of one finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// severityWeights drive the risk score. Info findings carry no weight.
var severityWeights = map[Severity]int{
	SeverityCritical: 25,
	SeverityHigh:     15,
	SeverityMedium:   5,
	SeverityLow:      1,
	SeverityInfo:     0,
}

// Level selects which tools run.
type Level string

const (
	LevelBasic         Level = "basic"
	LevelStandard      Level = "standard"
	LevelComprehensive Level = "comprehensive"
)

// rank orders levels so tools can declare a minimum.
func (l Level) rank() int {
	switch l {
	case LevelBasic:
		return 0
	case LevelStandard:
		return 1
	case LevelComprehensive:
		return 2
	}
	return 1
}

// Includes reports whether this level runs tools requiring min.
func (l Level) Includes(min Level) bool {
	return l.rank() >= min.rank()
}

// Status classifies an aggregated report.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusWarning Status = "warning"
	StatusFailed  Status = "failed"
)

// Finding is one vulnerability reported by one tool.
type Finding struct {
	Tool        string   `json:"tool"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location,omitempty"`
}

// Input is what tools analyze. Source-based tools read SourceCode; the
// symbolic executor reads Bytecode.
type Input struct {
	SourceCode string
	Bytecode   string
}

// Report is the aggregated outcome of one audit run.
type Report struct {
	Level         Level             `json:"level"`
	Findings      []Finding         `json:"findings"`
	CriticalCount int               `json:"critical_count"`
	HighCount     int               `json:"high_count"`
	MediumCount   int               `json:"medium_count"`
	LowCount      int               `json:"low_count"`
	InfoCount     int               `json:"info_count"`
	RiskScore     int               `json:"risk_score"` // [0, 100]
	Status        Status            `json:"status"`
	ToolsRun      []string          `json:"tools_run"`
	ToolErrors    map[string]string `json:"tool_errors,omitempty"`
	Duration      time.Duration     `json:"-"`
}
