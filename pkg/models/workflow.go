// Package models holds the request and response structures shared by the
// coordinator, the persistence services, and the HTTP layer.
package models

// CreateWorkflowRequest is the input to workflow creation.
type CreateWorkflowRequest struct {
	NLPInput            string `json:"nlp_input"`
	Network             string `json:"network"`
	ContractType        string `json:"contract_type,omitempty"`
	Owner               string `json:"owner,omitempty"`
	OptimizeForMetisVM  bool   `json:"optimize_for_metisvm,omitempty"`
	EnableFloatingPoint bool   `json:"enable_floating_point,omitempty"`
	EnableAIInference   bool   `json:"enable_ai_inference,omitempty"`
	EnableEigenDA       bool   `json:"enable_eigenda,omitempty"`
	AuditLevel          string `json:"audit_level,omitempty"`
	SkipAudit           bool   `json:"skip_audit,omitempty"`
	SkipTesting         bool   `json:"skip_testing,omitempty"`
	GasLimit            uint64 `json:"gas_limit,omitempty"`
}

// FeaturesUsed reports which requested features survived validation against
// the network registry.
type FeaturesUsed struct {
	MetisVM       bool `json:"metisvm"`
	FloatingPoint bool `json:"floating_point"`
	AIInference   bool `json:"ai_inference"`
	EigenDA       bool `json:"eigenda"`
}

// CreateWorkflowResponse is returned by workflow creation.
type CreateWorkflowResponse struct {
	WorkflowID   string       `json:"workflow_id"`
	Status       string       `json:"status"`
	Warnings     []string     `json:"warnings"`
	FeaturesUsed FeaturesUsed `json:"features_used"`
}
