package events

import "encoding/json"

// Typed payloads for the Data field of published events. They are converted
// to the generic map form at publish time so the wire schema stays uniform.

// WorkflowStatusData is the payload for workflow.* events.
type WorkflowStatusData struct {
	Status   string   `json:"status"`
	Progress int      `json:"progress"`
	Network  string   `json:"network,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// StageStatusData is the payload for <stage>.started/.completed/.failed
// events.
type StageStatusData struct {
	Stage      string `json:"stage"`
	Status     string `json:"status"` // started, completed, failed
	Progress   int    `json:"progress,omitempty"`
	DurationMS int64  `json:"duration_ms,omitempty"`
	Error      string `json:"error,omitempty"`
	NonFatal   bool   `json:"non_fatal,omitempty"`
}

// DeploymentData is the payload for deployment.confirmed events.
type DeploymentData struct {
	ContractName string `json:"contract_name"`
	Network      string `json:"network"`
	Address      string `json:"address"`
	TxHash       string `json:"tx_hash"`
	BlockNumber  int64  `json:"block_number"`
	GasUsed      uint64 `json:"gas_used"`
}

// BatchDeployData summarizes a parallel batch deployment.
type BatchDeployData struct {
	SuccessCount    int   `json:"success_count"`
	FailedCount     int   `json:"failed_count"`
	BatchesDeployed int   `json:"batches_deployed"`
	TotalTimeMS     int64 `json:"total_time_ms"`
}

// ToMap converts a typed payload to the generic event data form.
func ToMap(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
