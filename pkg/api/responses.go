package api

import (
	"time"

	"github.com/chainforge-ai/chainforge/ent"
	"github.com/chainforge-ai/chainforge/pkg/models"
)

// WorkflowResponse is the REST shape of one workflow.
type WorkflowResponse struct {
	WorkflowID   string              `json:"workflow_id"`
	Status       string              `json:"status"`
	Progress     int                 `json:"progress"`
	Network      string              `json:"network"`
	ContractType string              `json:"contract_type"`
	Owner        string              `json:"owner,omitempty"`
	Features     models.FeaturesUsed `json:"features"`
	AuditLevel   string              `json:"audit_level"`
	Warnings     []string            `json:"warnings,omitempty"`
	ErrorMessage string              `json:"error_message,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	StartedAt    *time.Time          `json:"started_at,omitempty"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
}

func workflowResponse(wf *ent.Workflow) WorkflowResponse {
	resp := WorkflowResponse{
		WorkflowID:   wf.ID,
		Status:       string(wf.Status),
		Progress:     wf.Progress,
		Network:      wf.Network,
		ContractType: wf.ContractType,
		Features: models.FeaturesUsed{
			MetisVM:       wf.MetisvmEnabled,
			FloatingPoint: wf.FloatingPointEnabled,
			AIInference:   wf.AiInferenceEnabled,
			EigenDA:       wf.EigendaEnabled,
		},
		AuditLevel:  wf.AuditLevel,
		Warnings:    wf.Warnings,
		CreatedAt:   wf.CreatedAt,
		StartedAt:   wf.StartedAt,
		CompletedAt: wf.CompletedAt,
	}
	if wf.Owner != nil {
		resp.Owner = *wf.Owner
	}
	if wf.ErrorMessage != nil {
		resp.ErrorMessage = *wf.ErrorMessage
	}
	return resp
}

// ContractResponse is the REST shape of one generated contract.
type ContractResponse struct {
	ContractID        string           `json:"contract_id"`
	Name              string           `json:"name"`
	SourceCode        string           `json:"source_code"`
	SourceHash        string           `json:"source_hash"`
	ABI               []map[string]any `json:"abi,omitempty"`
	Bytecode          string           `json:"bytecode"`
	SolidityVersion   string           `json:"solidity_version"`
	ConstructorParams []map[string]any `json:"constructor_params,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

func contractResponses(rows []*ent.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, ContractResponse{
			ContractID:        row.ID,
			Name:              row.Name,
			SourceCode:        row.SourceCode,
			SourceHash:        row.SourceHash,
			ABI:               row.Abi,
			Bytecode:          row.Bytecode,
			SolidityVersion:   row.SolidityVersion,
			ConstructorParams: row.ConstructorParams,
			CreatedAt:         row.CreatedAt,
		})
	}
	return out
}

// DeploymentResponse is the REST shape of one deployment.
type DeploymentResponse struct {
	DeploymentID      string     `json:"deployment_id"`
	ContractID        string     `json:"contract_id"`
	Network           string     `json:"network"`
	Address           string     `json:"address,omitempty"`
	TxHash            string     `json:"tx_hash,omitempty"`
	BlockNumber       int64      `json:"block_number,omitempty"`
	GasUsed           uint64     `json:"gas_used,omitempty"`
	DeployerAddress   string     `json:"deployer_address"`
	EigenDACommitment string     `json:"eigenda_commitment,omitempty"`
	Status            string     `json:"status"`
	ErrorMessage      string     `json:"error_message,omitempty"`
	SubmittedAt       time.Time  `json:"submitted_at"`
	ConfirmedAt       *time.Time `json:"confirmed_at,omitempty"`
}

func deploymentResponses(rows []*ent.Deployment) []DeploymentResponse {
	out := make([]DeploymentResponse, 0, len(rows))
	for _, row := range rows {
		resp := DeploymentResponse{
			DeploymentID:    row.ID,
			ContractID:      row.ContractID,
			Network:         row.Network,
			Address:         row.Address,
			TxHash:          row.TxHash,
			BlockNumber:     row.BlockNumber,
			GasUsed:         row.GasUsed,
			DeployerAddress: row.DeployerAddress,
			Status:          string(row.Status),
			SubmittedAt:     row.SubmittedAt,
			ConfirmedAt:     row.ConfirmedAt,
		}
		if row.EigendaCommitment != nil {
			resp.EigenDACommitment = *row.EigendaCommitment
		}
		if row.ErrorMessage != nil {
			resp.ErrorMessage = *row.ErrorMessage
		}
		out = append(out, resp)
	}
	return out
}

// NetworkResponse is one entry of the network catalog.
type NetworkResponse struct {
	Network     string          `json:"network"`
	ChainID     int64           `json:"chain_id"`
	RPCEndpoint string          `json:"rpc_endpoint"`
	Explorer    string          `json:"explorer"`
	Features    map[string]bool `json:"features"`
}
