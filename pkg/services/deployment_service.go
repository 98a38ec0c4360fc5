package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chainforge-ai/chainforge/ent"
	"github.com/chainforge-ai/chainforge/ent/contract"
	"github.com/chainforge-ai/chainforge/ent/deployment"
	"github.com/chainforge-ai/chainforge/pkg/deploy"
)

// DeploymentService persists deployment records.
type DeploymentService struct {
	client *ent.Client
}

// NewDeploymentService creates a new DeploymentService.
func NewDeploymentService(client *ent.Client) *DeploymentService {
	return &DeploymentService{client: client}
}

// SaveDeployment persists one confirmed deployment and returns the row id.
// Implements the deployment stage's store contract.
func (s *DeploymentService) SaveDeployment(ctx context.Context, contractID string, res *deploy.Result) (string, error) {
	if contractID == "" {
		return "", NewValidationError("contract_id", "required")
	}
	if res == nil {
		return "", NewValidationError("result", "required")
	}

	row, err := s.client.Deployment.Create().
		SetID(uuid.New().String()).
		SetContractID(contractID).
		SetNetwork(res.Network).
		SetAddress(res.Address.Hex()).
		SetTxHash(res.TxHash.Hex()).
		SetBlockNumber(res.BlockNumber).
		SetGasUsed(res.GasUsed).
		SetDeployerAddress(res.Deployer.Hex()).
		SetStatus(deployment.StatusConfirmed).
		SetSubmittedAt(res.SubmittedAt).
		SetConfirmedAt(res.ConfirmedAt).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to save deployment: %w", err)
	}
	return row.ID, nil
}

// SaveFailedDeployment records a deployment attempt that did not confirm.
func (s *DeploymentService) SaveFailedDeployment(ctx context.Context, contractID, network, deployerAddress, message string) (string, error) {
	row, err := s.client.Deployment.Create().
		SetID(uuid.New().String()).
		SetContractID(contractID).
		SetNetwork(network).
		SetDeployerAddress(deployerAddress).
		SetStatus(deployment.StatusFailed).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to save failed deployment: %w", err)
	}
	return row.ID, nil
}

// SetEigenDACommitment records the blob commitment once background
// dispersal finishes.
func (s *DeploymentService) SetEigenDACommitment(ctx context.Context, deploymentID, commitment string) error {
	err := s.client.Deployment.UpdateOneID(deploymentID).
		SetEigendaCommitment(commitment).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set eigenda commitment: %w", err)
	}
	return nil
}

// ListByWorkflow returns every deployment of a workflow's contracts in
// submission order.
func (s *DeploymentService) ListByWorkflow(ctx context.Context, workflowID string) ([]*ent.Deployment, error) {
	rows, err := s.client.Deployment.Query().
		Where(deployment.HasContractWith(contract.WorkflowIDEQ(workflowID))).
		Order(ent.Asc(deployment.FieldSubmittedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}
	return rows, nil
}
