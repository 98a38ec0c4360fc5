package stages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/pkg/audit"
)

// scriptedTool runs a harmless real binary and returns canned findings from
// Parse, so the runner's subprocess path is exercised without the analyzers
// installed.
type scriptedTool struct {
	name     string
	findings []audit.Finding
	parseErr error
}

func (t *scriptedTool) Name() string           { return t.name }
func (t *scriptedTool) MinLevel() audit.Level  { return audit.LevelStandard }
func (t *scriptedTool) Timeout() time.Duration { return 5 * time.Second }

func (t *scriptedTool) Command(string, audit.Input) ([]string, error) {
	return []string{"/bin/echo", "{}"}, nil
}

func (t *scriptedTool) Parse([]byte) ([]audit.Finding, error) {
	return t.findings, t.parseErr
}

type recordingAuditStore struct {
	contractID string
	report     *audit.Report
}

func (s *recordingAuditStore) SaveAudit(_ context.Context, contractID string, report *audit.Report) (string, error) {
	s.contractID = contractID
	s.report = report
	return "audit-1", nil
}

func TestAuditStage(t *testing.T) {
	source := "pragma solidity 0.8.27;\ncontract CappedToken {}"

	t.Run("aggregates and persists", func(t *testing.T) {
		runner := audit.NewRunner(&scriptedTool{name: "slither", findings: []audit.Finding{
			{Tool: "slither", Severity: audit.SeverityHigh, Title: "reentrancy", Location: "Contract.sol:10"},
			{Tool: "slither", Severity: audit.SeverityMedium, Title: "unchecked call", Location: "Contract.sol:20"},
		}})
		store := &recordingAuditStore{}
		stage := NewAuditStage(runner, store, false)
		sc := &Context{WorkflowID: "wf-1", ContractCode: source, ContractID: "contract-1", AuditLevel: audit.LevelStandard}

		require.NoError(t, stage.Validate(context.Background(), sc))
		require.NoError(t, stage.Process(context.Background(), sc))

		require.NotNil(t, sc.AuditReport)
		assert.Equal(t, 20, sc.AuditReport.RiskScore)
		assert.Equal(t, audit.StatusPassed, sc.AuditReport.Status)
		assert.Equal(t, 1, sc.AuditReport.HighCount)
		assert.Equal(t, 1, sc.AuditReport.MediumCount)

		assert.Equal(t, "audit-1", sc.AuditRecordID)
		assert.Equal(t, "contract-1", store.contractID)
		assert.Empty(t, sc.Warnings)
	})

	t.Run("failed verdict is advisory by default", func(t *testing.T) {
		criticals := make([]audit.Finding, 4)
		for i := range criticals {
			criticals[i] = audit.Finding{
				Tool: "mythril", Severity: audit.SeverityCritical,
				Title: "exploit path", Location: string(rune('a' + i)),
			}
		}
		runner := audit.NewRunner(&scriptedTool{name: "mythril", findings: criticals})
		stage := NewAuditStage(runner, nil, false)
		sc := &Context{WorkflowID: "wf-1", ContractCode: source, AuditLevel: audit.LevelStandard}

		require.NoError(t, stage.Process(context.Background(), sc))
		assert.Equal(t, audit.StatusFailed, sc.AuditReport.Status)
		assert.Equal(t, 100, sc.AuditReport.RiskScore)
		require.Len(t, sc.Warnings, 1)
		assert.Contains(t, sc.Warnings[0], "advisory")
	})

	t.Run("strict mode stops on failed verdict", func(t *testing.T) {
		criticals := make([]audit.Finding, 4)
		for i := range criticals {
			criticals[i] = audit.Finding{
				Tool: "mythril", Severity: audit.SeverityCritical,
				Title: "exploit path", Location: string(rune('a' + i)),
			}
		}
		runner := audit.NewRunner(&scriptedTool{name: "mythril", findings: criticals})
		stage := NewAuditStage(runner, nil, true)
		sc := &Context{WorkflowID: "wf-1", ContractCode: source, AuditLevel: audit.LevelStandard}

		err := stage.Process(context.Background(), sc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "risk score 100")
	})

	t.Run("all tools failing is a stage error", func(t *testing.T) {
		runner := audit.NewRunner(
			&scriptedTool{name: "slither", parseErr: errors.New("bad json")},
			&scriptedTool{name: "mythril", parseErr: errors.New("bad json")},
		)
		stage := NewAuditStage(runner, nil, false)
		sc := &Context{WorkflowID: "wf-1", ContractCode: source, AuditLevel: audit.LevelStandard}

		err := stage.Process(context.Background(), sc)
		var terr *AuditToolError
		require.ErrorAs(t, err, &terr)
	})

	t.Run("empty source fails validation", func(t *testing.T) {
		stage := NewAuditStage(audit.NewRunner(), nil, false)
		err := stage.Validate(context.Background(), &Context{WorkflowID: "wf-1"})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "audit", verr.Stage)
	})
}
