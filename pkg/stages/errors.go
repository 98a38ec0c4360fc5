package stages

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainforge-ai/chainforge/pkg/deploy"
	"github.com/chainforge-ai/chainforge/pkg/solc"
)

// Kind classifies a stage failure for the orchestrator and for event
// payloads. The set is closed; anything unrecognized is an internal error.
type Kind string

const (
	KindValidation         Kind = "validation_error"
	KindLLM                Kind = "llm_error"
	KindCompilation        Kind = "compilation_error"
	KindAuditTool          Kind = "audit_tool_error"
	KindNetworkTransient   Kind = "network_transient_error"
	KindNetworkFatal       Kind = "network_fatal_error"
	KindFeatureUnavailable Kind = "feature_unavailable"
	KindCancelled          Kind = "cancellation_requested"
	KindInternal           Kind = "internal_error"
)

// ValidationError marks a failed stage precondition. Fatal, never retried.
type ValidationError struct {
	Stage  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Stage + " validation failed: " + e.Reason
}

// LLMError marks a generation failure after the retry budget is exhausted.
type LLMError struct {
	Provider string
	Err      error
}

func (e *LLMError) Error() string {
	return fmt.Sprintf("llm generation failed (%s): %v", e.Provider, e.Err)
}

func (e *LLMError) Unwrap() error { return e.Err }

// AuditToolError marks the all-tools-failed audit outcome. Individual tool
// failures never surface as errors.
type AuditToolError struct {
	Err error
}

func (e *AuditToolError) Error() string {
	return "audit failed: " + e.Err.Error()
}

func (e *AuditToolError) Unwrap() error { return e.Err }

// FeatureUnavailableError marks a request for a feature the target network
// does not grant. Non-fatal at creation (the coordinator degrades and
// warns); fatal when a stage cannot proceed without it.
type FeatureUnavailableError struct {
	Network  string
	Feature  string
	Fallback string
}

func (e *FeatureUnavailableError) Error() string {
	return fmt.Sprintf("%s is not available on %s: %s", e.Feature, e.Network, e.Fallback)
}

// Classify maps any stage error onto the failure taxonomy.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return KindCancelled
	}

	var (
		valErr     *ValidationError
		llmErr     *LLMError
		compErr    *solc.CompilationError
		auditErr   *AuditToolError
		featErr    *FeatureUnavailableError
		depValErr  *deploy.ValidationError
		gasErr     *deploy.GasEstimationError
		fatalErr   *deploy.FatalError
		transErr   *deploy.TransientError
	)
	switch {
	case errors.As(err, &valErr):
		return KindValidation
	case errors.As(err, &llmErr):
		return KindLLM
	case errors.As(err, &compErr):
		return KindCompilation
	case errors.As(err, &auditErr):
		return KindAuditTool
	case errors.As(err, &featErr):
		return KindFeatureUnavailable
	case errors.As(err, &depValErr):
		return KindValidation
	case errors.As(err, &gasErr), errors.As(err, &fatalErr):
		return KindNetworkFatal
	case errors.As(err, &transErr):
		return KindNetworkTransient
	default:
		return KindInternal
	}
}
