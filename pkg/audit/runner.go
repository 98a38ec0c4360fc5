package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// Runner executes the configured tools in parallel and aggregates their
// findings.
type Runner struct {
	tools []Tool
}

// NewRunner creates a runner over the given tools.
func NewRunner(tools ...Tool) *Runner {
	return &Runner{tools: tools}
}

// Run audits the input at the requested level. Each eligible tool runs as
// an isolated subprocess; individual tool failures (crash, timeout) are
// recorded but do not fail the audit. Only an all-tools-failed outcome
// returns an error.
func (r *Runner) Run(ctx context.Context, level Level, input Input) (*Report, error) {
	start := time.Now()

	var eligible []Tool
	for _, tool := range r.tools {
		if level.Includes(tool.MinLevel()) {
			eligible = append(eligible, tool)
		}
	}
	if len(eligible) == 0 {
		// Basic level runs no subprocess tools; report a clean pass.
		return aggregate(level, nil, nil, nil, time.Since(start)), nil
	}

	type toolResult struct {
		tool     string
		findings []Finding
		err      error
	}
	results := make([]toolResult, len(eligible))

	g, gctx := errgroup.WithContext(ctx)
	for i, tool := range eligible {
		g.Go(func() error {
			findings, err := runTool(gctx, tool, input)
			results[i] = toolResult{tool: tool.Name(), findings: findings, err: err}
			if err != nil {
				slog.Warn("Audit tool failed", "tool", tool.Name(), "error", err)
			}
			return nil // tool failures are per-tool, never group-fatal
		})
	}
	_ = g.Wait()

	var all []Finding
	var toolsRun []string
	toolErrors := make(map[string]string)
	for _, res := range results {
		toolsRun = append(toolsRun, res.tool)
		if res.err != nil {
			toolErrors[res.tool] = res.err.Error()
			continue
		}
		all = append(all, res.findings...)
	}

	if len(toolErrors) == len(eligible) {
		return nil, fmt.Errorf("all %d audit tools failed", len(eligible))
	}

	return aggregate(level, all, toolsRun, toolErrors, time.Since(start)), nil
}

// aggregate merges findings, deduplicates, scores, and classifies.
func aggregate(level Level, findings []Finding, toolsRun []string, toolErrors map[string]string, dur time.Duration) *Report {
	deduped := Deduplicate(findings)

	report := &Report{
		Level:      level,
		Findings:   deduped,
		ToolsRun:   toolsRun,
		ToolErrors: toolErrors,
		Duration:   dur,
	}

	score := 0
	for _, f := range deduped {
		switch f.Severity {
		case SeverityCritical:
			report.CriticalCount++
		case SeverityHigh:
			report.HighCount++
		case SeverityMedium:
			report.MediumCount++
		case SeverityLow:
			report.LowCount++
		case SeverityInfo:
			report.InfoCount++
		}
		score += severityWeights[f.Severity]
	}
	if score > 100 {
		score = 100
	}
	report.RiskScore = score
	report.Status = classify(score)
	return report
}

// classify maps a risk score to an audit status. The status is advisory:
// policy above this package decides whether "failed" stops a workflow.
func classify(score int) Status {
	switch {
	case score < 30:
		return StatusPassed
	case score < 70:
		return StatusWarning
	default:
		return StatusFailed
	}
}

// Deduplicate removes findings sharing (title, severity, location),
// preserving first-seen order within a stable sort by severity weight.
func Deduplicate(findings []Finding) []Finding {
	type key struct {
		title    string
		severity Severity
		location string
	}
	seen := make(map[key]bool, len(findings))
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		k := key{f.Title, f.Severity, f.Location}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, f)
	}
	// Highest severity first for readability of persisted reports.
	sort.SliceStable(out, func(i, j int) bool {
		return severityWeights[out[i].Severity] > severityWeights[out[j].Severity]
	})
	return out
}
