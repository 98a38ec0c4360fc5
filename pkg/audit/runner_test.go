package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		want  Status
	}{
		{0, StatusPassed},
		{29, StatusPassed},
		{30, StatusWarning},
		{69, StatusWarning},
		{70, StatusFailed},
		{100, StatusFailed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classify(tt.score), "score %d", tt.score)
	}
}

func TestAggregateScoresAndCounts(t *testing.T) {
	findings := []Finding{
		{Tool: "mythril", Severity: SeverityCritical, Title: "reentrancy"},
		{Tool: "slither", Severity: SeverityHigh, Title: "tx-origin"},
		{Tool: "slither", Severity: SeverityMedium, Title: "unchecked-call"},
		{Tool: "slither", Severity: SeverityLow, Title: "naming"},
		{Tool: "slither", Severity: SeverityInfo, Title: "pragma"},
	}

	report := aggregate(LevelStandard, findings, []string{"slither", "mythril"}, nil, time.Second)

	// 25 + 15 + 5 + 1 + 0
	assert.Equal(t, 46, report.RiskScore)
	assert.Equal(t, StatusWarning, report.Status)
	assert.Equal(t, 1, report.CriticalCount)
	assert.Equal(t, 1, report.HighCount)
	assert.Equal(t, 1, report.MediumCount)
	assert.Equal(t, 1, report.LowCount)
	assert.Equal(t, 1, report.InfoCount)
}

func TestAggregateCapsScoreAt100(t *testing.T) {
	var findings []Finding
	for i := 0; i < 10; i++ {
		findings = append(findings, Finding{
			Tool:     "mythril",
			Severity: SeverityCritical,
			Title:    "issue",
			Location: string(rune('a' + i)),
		})
	}

	report := aggregate(LevelStandard, findings, nil, nil, 0)
	assert.Equal(t, 100, report.RiskScore)
	assert.Equal(t, StatusFailed, report.Status)
}

func TestDeduplicate(t *testing.T) {
	findings := []Finding{
		{Tool: "slither", Severity: SeverityHigh, Title: "reentrancy", Location: "Contract.sol:10"},
		{Tool: "mythril", Severity: SeverityHigh, Title: "reentrancy", Location: "Contract.sol:10"},
		{Tool: "mythril", Severity: SeverityHigh, Title: "reentrancy", Location: "Contract.sol:42"},
		{Tool: "slither", Severity: SeverityLow, Title: "reentrancy", Location: "Contract.sol:10"},
	}

	out := Deduplicate(findings)
	// Same (title, severity, location) collapses; different location or
	// severity stays.
	require.Len(t, out, 3)
}

func TestDeduplicateOrdersBySeverity(t *testing.T) {
	findings := []Finding{
		{Severity: SeverityLow, Title: "a"},
		{Severity: SeverityCritical, Title: "b"},
		{Severity: SeverityMedium, Title: "c"},
	}

	out := Deduplicate(findings)
	require.Len(t, out, 3)
	assert.Equal(t, SeverityCritical, out[0].Severity)
	assert.Equal(t, SeverityLow, out[2].Severity)
}

func TestLevelIncludes(t *testing.T) {
	assert.False(t, LevelBasic.Includes(LevelStandard))
	assert.True(t, LevelStandard.Includes(LevelStandard))
	assert.False(t, LevelStandard.Includes(LevelComprehensive))
	assert.True(t, LevelComprehensive.Includes(LevelStandard))
	assert.True(t, LevelComprehensive.Includes(LevelComprehensive))
}

func TestRunBasicLevelRunsNoTools(t *testing.T) {
	r := NewRunner(NewSlither("/usr/bin/slither"), NewMythril("/usr/bin/myth"))

	report, err := r.Run(context.Background(), LevelBasic, Input{SourceCode: "contract A {}"})
	require.NoError(t, err)
	assert.Equal(t, StatusPassed, report.Status)
	assert.Empty(t, report.ToolsRun)
	assert.Empty(t, report.Findings)
}

func TestSlitherParse(t *testing.T) {
	stdout := []byte(`{
		"success": true,
		"results": {
			"detectors": [
				{
					"check": "reentrancy-eth",
					"impact": "High",
					"description": "Reentrancy in withdraw()",
					"elements": [{"source_mapping": {"filename_short": "Contract.sol", "lines": [42]}}]
				},
				{
					"check": "naming-convention",
					"impact": "Informational",
					"description": "Parameter is not in mixedCase",
					"elements": []
				}
			]
		}
	}`)

	s := NewSlither("/usr/bin/slither")
	findings, err := s.Parse(stdout)
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, SeverityHigh, findings[0].Severity)
	assert.Equal(t, "Contract.sol:42", findings[0].Location)
	assert.Equal(t, SeverityInfo, findings[1].Severity)
}

func TestMythrilParse(t *testing.T) {
	stdout := []byte(`{
		"issues": [
			{"severity": "High", "title": "Integer Overflow", "description": "...", "swc-id": "101", "address": 1234},
			{"severity": "Low", "title": "Assert Violation", "description": "...", "swc-id": "110"}
		]
	}`)

	m := NewMythril("/usr/bin/myth")
	findings, err := m.Parse(stdout)
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, SeverityCritical, findings[0].Severity)
	assert.Equal(t, "Integer Overflow (SWC-101)", findings[0].Title)
	assert.Equal(t, "bytecode:1234", findings[0].Location)
	assert.Equal(t, SeverityLow, findings[1].Severity)
}

func TestMythrilRequiresBytecode(t *testing.T) {
	m := NewMythril("/usr/bin/myth")
	_, err := m.Command(t.TempDir(), Input{SourceCode: "contract A {}"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bytecode")
}

func TestEchidnaParse(t *testing.T) {
	stdout := []byte(`{
		"tests": [
			{"name": "echidna_balance_invariant", "status": "failed", "error": "call sequence found"},
			{"name": "echidna_supply_constant", "status": "passed"}
		]
	}`)

	e := NewEchidna("/usr/bin/echidna")
	findings, err := e.Parse(stdout)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityHigh, findings[0].Severity)
	assert.Contains(t, findings[0].Title, "echidna_balance_invariant")
}
