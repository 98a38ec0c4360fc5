package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/chainforge-ai/chainforge/ent"
	"github.com/chainforge-ai/chainforge/ent/auditrecord"
	"github.com/chainforge-ai/chainforge/pkg/audit"
)

// AuditService persists audit reports.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// SaveAudit persists one aggregated audit report and returns the row id.
// Implements the audit stage's store contract.
func (s *AuditService) SaveAudit(ctx context.Context, contractID string, report *audit.Report) (string, error) {
	if contractID == "" {
		return "", NewValidationError("contract_id", "required")
	}
	if report == nil {
		return "", NewValidationError("report", "required")
	}

	findings, err := findingsJSON(report.Findings)
	if err != nil {
		return "", err
	}

	builder := s.client.AuditRecord.Create().
		SetID(uuid.New().String()).
		SetContractID(contractID).
		SetAuditLevel(string(report.Level)).
		SetCriticalCount(report.CriticalCount).
		SetHighCount(report.HighCount).
		SetMediumCount(report.MediumCount).
		SetLowCount(report.LowCount).
		SetInfoCount(report.InfoCount).
		SetRiskScore(report.RiskScore).
		SetStatus(auditrecord.Status(report.Status))

	if len(findings) > 0 {
		builder.SetFindings(findings)
	}
	if len(report.ToolsRun) > 0 {
		builder.SetToolsRun(report.ToolsRun)
	}
	if len(report.ToolErrors) > 0 {
		builder.SetToolErrors(report.ToolErrors)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to save audit record: %w", err)
	}
	return row.ID, nil
}

// ListByContract returns a contract's audit records, newest first.
func (s *AuditService) ListByContract(ctx context.Context, contractID string) ([]*ent.AuditRecord, error) {
	rows, err := s.client.AuditRecord.Query().
		Where(auditrecord.ContractIDEQ(contractID)).
		Order(ent.Desc(auditrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	return rows, nil
}

// findingsJSON converts typed findings into the generic row form.
func findingsJSON(findings []audit.Finding) ([]map[string]any, error) {
	if len(findings) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(findings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal findings: %w", err)
	}
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to convert findings: %w", err)
	}
	return out, nil
}
