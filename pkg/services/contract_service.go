package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chainforge-ai/chainforge/ent"
	"github.com/chainforge-ai/chainforge/ent/contract"
	"github.com/chainforge-ai/chainforge/pkg/solc"
)

// ContractService persists generated contracts. Rows are immutable after
// creation.
type ContractService struct {
	client *ent.Client
}

// NewContractService creates a new ContractService.
func NewContractService(client *ent.Client) *ContractService {
	return &ContractService{client: client}
}

// SaveContract persists one compiled contract and returns the row id.
// Implements the compilation stage's store contract.
func (s *ContractService) SaveContract(ctx context.Context, workflowID string, res *solc.Result, sourceCode string) (string, error) {
	if workflowID == "" {
		return "", NewValidationError("workflow_id", "required")
	}
	if res == nil {
		return "", NewValidationError("compiled_contract", "required")
	}

	builder := s.client.Contract.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(workflowID).
		SetName(res.ContractName).
		SetSourceCode(sourceCode).
		SetSourceHash(res.SourceHash).
		SetBytecode(res.Bytecode).
		SetDeployedBytecode(res.DeployedBytecode).
		SetSolidityVersion(res.SolidityVersion)

	if len(res.ABI) > 0 {
		builder.SetAbi(res.ABI)
	}
	if len(res.ConstructorInputs) > 0 {
		builder.SetConstructorParams(res.ConstructorInputs)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to save contract: %w", err)
	}
	return row.ID, nil
}

// Get returns one contract row.
func (s *ContractService) Get(ctx context.Context, id string) (*ent.Contract, error) {
	row, err := s.client.Contract.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return row, nil
}

// ListByWorkflow returns a workflow's contracts in creation order.
func (s *ContractService) ListByWorkflow(ctx context.Context, workflowID string) ([]*ent.Contract, error) {
	rows, err := s.client.Contract.Query().
		Where(contract.WorkflowIDEQ(workflowID)).
		Order(ent.Asc(contract.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return rows, nil
}
