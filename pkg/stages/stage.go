// Package stages implements the five workflow stages: generation,
// compilation, audit, testing, and deployment. Each stage reads its inputs
// from the shared Context and writes typed outputs back; the orchestrator
// owns event publishing and failure classification around Process.
package stages

import (
	"context"

	"github.com/chainforge-ai/chainforge/pkg/audit"
	"github.com/chainforge-ai/chainforge/pkg/deploy"
	"github.com/chainforge-ai/chainforge/pkg/solc"
)

// Stage is the common contract. Stages are stateless between invocations:
// everything workflow-specific lives in the Context.
type Stage interface {
	Name() string

	// Validate checks structural and semantic preconditions without side
	// effects. A validation failure is fatal to the workflow.
	Validate(ctx context.Context, sc *Context) error

	// Process does the work and writes outputs into the Context.
	Process(ctx context.Context, sc *Context) error
}

// Context carries one workflow's state through the pipeline. Each stage
// declares which fields it reads and which it writes; no stage mutates
// another stage's outputs.
type Context struct {
	WorkflowID string

	// Creation inputs.
	Description  string
	ContractType string // defaults to "Custom"
	Network      string
	AuditLevel   audit.Level

	// Feature toggles, already validated against the registry by the
	// coordinator. A toggle is true only when the network grants it.
	OptimizeMetisVM bool
	FloatingPoint   bool
	AIInference     bool
	EigenDA         bool

	// Deployment inputs.
	GasLimit uint64

	// Generation outputs.
	ContractCode       string
	ConstructorArgs    []any
	OptimizationReport string

	// Compilation outputs.
	Compiled   *solc.Result
	ContractID string // persisted contract row id

	// Audit outputs.
	AuditReport   *audit.Report
	AuditRecordID string

	// Testing outputs.
	TestResult *TestResult

	// Deployment outputs.
	Deployment   *deploy.Result
	DeploymentID string

	// Warnings accumulated across stages, surfaced on the workflow row.
	Warnings []string
}

// Warn records a user-visible warning.
func (sc *Context) Warn(msg string) {
	sc.Warnings = append(sc.Warnings, msg)
}
