package stages

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chainforge-ai/chainforge/pkg/deploy"
	"github.com/chainforge-ai/chainforge/pkg/solc"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, Kind("")},
		{"stage validation", &ValidationError{Stage: "generation", Reason: "too short"}, KindValidation},
		{"llm", &LLMError{Provider: "gemini", Err: errors.New("rate limit")}, KindLLM},
		{"compilation", &solc.CompilationError{Diagnostics: []string{"ParserError"}}, KindCompilation},
		{"audit tools", &AuditToolError{Err: errors.New("all 2 audit tools failed")}, KindAuditTool},
		{"feature unavailable", &FeatureUnavailableError{Network: "mantle_testnet", Feature: "MetisVM"}, KindFeatureUnavailable},
		{"deploy validation", &deploy.ValidationError{Reason: "missing abi"}, KindValidation},
		{"gas estimation", &deploy.GasEstimationError{Err: errors.New("revert")}, KindNetworkFatal},
		{"deploy fatal", &deploy.FatalError{Reason: "insufficient balance"}, KindNetworkFatal},
		{"deploy transient", &deploy.TransientError{Err: errors.New("timeout")}, KindNetworkTransient},
		{"cancelled", context.Canceled, KindCancelled},
		{"wrapped cancellation", fmt.Errorf("stage aborted: %w", context.Canceled), KindCancelled},
		{"wrapped typed error", fmt.Errorf("deploy: %w", &deploy.TransientError{Err: errors.New("503")}), KindNetworkTransient},
		{"unknown", errors.New("nil pointer dereference"), KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.err))
		})
	}
}
