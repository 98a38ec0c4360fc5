package stages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chainforge-ai/chainforge/pkg/audit"
)

// AuditStore persists the audit report. Implemented by
// services.AuditService; nil disables persistence.
type AuditStore interface {
	SaveAudit(ctx context.Context, contractID string, report *audit.Report) (string, error)
}

// AuditStage runs the security tools against the generated contract. The
// audit verdict is advisory by default: a failed audit records a warning and
// the pipeline continues. Strict mode turns a failed verdict into a stage
// error.
type AuditStage struct {
	runner  *audit.Runner
	records AuditStore
	strict  bool
}

// NewAuditStage creates the stage.
func NewAuditStage(runner *audit.Runner, records AuditStore, strict bool) *AuditStage {
	return &AuditStage{runner: runner, records: records, strict: strict}
}

func (s *AuditStage) Name() string { return "audit" }

// Validate requires generated source.
func (s *AuditStage) Validate(_ context.Context, sc *Context) error {
	if sc.ContractCode == "" {
		return &ValidationError{Stage: s.Name(), Reason: "no contract source to audit"}
	}
	return nil
}

// Process runs the eligible tools in parallel and persists the aggregated
// report. Only the all-tools-failed outcome is a stage error.
func (s *AuditStage) Process(ctx context.Context, sc *Context) error {
	level := sc.AuditLevel
	if level == "" {
		level = audit.LevelStandard
	}

	input := audit.Input{SourceCode: sc.ContractCode}
	if sc.Compiled != nil {
		input.Bytecode = sc.Compiled.Bytecode
	}

	report, err := s.runner.Run(ctx, level, input)
	if err != nil {
		return &AuditToolError{Err: err}
	}
	sc.AuditReport = report

	if s.records != nil && sc.ContractID != "" {
		id, err := s.records.SaveAudit(ctx, sc.ContractID, report)
		if err != nil {
			return err
		}
		sc.AuditRecordID = id
	}

	slog.Info("Audit finished",
		"workflow_id", sc.WorkflowID, "level", level,
		"risk_score", report.RiskScore, "status", report.Status,
		"findings", len(report.Findings), "tools_run", len(report.ToolsRun))

	if report.Status == audit.StatusFailed {
		if s.strict {
			return fmt.Errorf("audit verdict failed with risk score %d", report.RiskScore)
		}
		sc.Warn(fmt.Sprintf("audit verdict is failed (risk score %d); proceeding because audits are advisory", report.RiskScore))
	}
	return nil
}
