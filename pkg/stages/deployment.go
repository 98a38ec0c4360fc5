package stages

import (
	"context"
	"log/slog"
	"time"

	"github.com/chainforge-ai/chainforge/pkg/deploy"
	"github.com/chainforge-ai/chainforge/pkg/registry"
)

// eigenDADisperseTimeout bounds the background metadata dispersal.
const eigenDADisperseTimeout = 60 * time.Second

// DeployerProvider hands out the per-network deployer. Implemented by the
// coordinator wiring over deploy.ClientCache plus the configured key.
type DeployerProvider interface {
	Deployer(ctx context.Context, network string) (*deploy.Deployer, error)
}

// DeploymentStore persists deployment records. Implemented by
// services.DeploymentService; nil disables persistence.
type DeploymentStore interface {
	SaveDeployment(ctx context.Context, contractID string, res *deploy.Result) (string, error)
	SetEigenDACommitment(ctx context.Context, deploymentID, commitment string) error
}

// DeploymentStage submits the compiled contract to the target network and
// waits for on-chain confirmation.
type DeploymentStage struct {
	provider    DeployerProvider
	registry    *registry.Registry
	eigenda     *deploy.EigenDAClient
	deployments DeploymentStore
}

// NewDeploymentStage creates the stage. eigenda may be nil when no disperser
// proxy is configured.
func NewDeploymentStage(provider DeployerProvider, reg *registry.Registry, eigenda *deploy.EigenDAClient, deployments DeploymentStore) *DeploymentStage {
	return &DeploymentStage{provider: provider, registry: reg, eigenda: eigenda, deployments: deployments}
}

func (s *DeploymentStage) Name() string { return "deployment" }

// Validate requires a complete compiled artifact and a registered network.
func (s *DeploymentStage) Validate(_ context.Context, sc *Context) error {
	if sc.Compiled == nil || len(sc.Compiled.ABI) == 0 || sc.Compiled.Bytecode == "" {
		return &ValidationError{Stage: s.Name(), Reason: "compiled contract must contain abi and bytecode"}
	}
	if _, ok := s.registry.Network(sc.Network); !ok {
		return &ValidationError{Stage: s.Name(), Reason: "unknown network " + sc.Network}
	}
	return nil
}

func (s *DeploymentStage) Process(ctx context.Context, sc *Context) error {
	deployer, err := s.provider.Deployer(ctx, sc.Network)
	if err != nil {
		return err
	}

	res, err := deployer.Deploy(ctx, deploy.Request{
		ContractName:    sc.Compiled.ContractName,
		ABI:             sc.Compiled.ABI,
		Bytecode:        sc.Compiled.Bytecode,
		ConstructorArgs: sc.ConstructorArgs,
		GasLimit:        sc.GasLimit,
	})
	if err != nil {
		return err
	}
	sc.Deployment = res

	if s.deployments != nil && sc.ContractID != "" {
		id, err := s.deployments.SaveDeployment(ctx, sc.ContractID, res)
		if err != nil {
			return err
		}
		sc.DeploymentID = id
	}

	s.disperseMetadata(sc, res)

	slog.Info("Contract deployed",
		"workflow_id", sc.WorkflowID, "contract", res.ContractName,
		"network", res.Network, "address", res.Address.Hex(),
		"tx_hash", res.TxHash.Hex(), "block", res.BlockNumber)
	return nil
}

// disperseMetadata submits the EigenDA metadata blob in the background after
// confirmation. Dispersal failures never affect the deployment.
func (s *DeploymentStage) disperseMetadata(sc *Context, res *deploy.Result) {
	if s.eigenda == nil || !sc.EigenDA || !s.registry.Supports(sc.Network, registry.FeatureEigenDA) {
		return
	}

	deploymentID := sc.DeploymentID
	store := s.deployments
	s.eigenda.DisperseInBackground(deploy.MetadataBlob{
		ContractName: res.ContractName,
		Network:      res.Network,
		Address:      res.Address.Hex(),
		TxHash:       res.TxHash.Hex(),
		ABI:          sc.Compiled.ABI,
		SourceCode:   sc.ContractCode,
		DeployedAt:   res.ConfirmedAt,
	}, eigenDADisperseTimeout, func(commitment string) {
		if store == nil || deploymentID == "" {
			return
		}
		if err := store.SetEigenDACommitment(context.Background(), deploymentID, commitment); err != nil {
			slog.Warn("Failed to record EigenDA commitment",
				"deployment_id", deploymentID, "error", err)
		}
	})
}

// DeployBatch deploys many contracts to one network. PEF networks use the
// parallel scheduler; on other networks the batch degrades to sequential
// deployment in input order with a recorded warning.
func (s *DeploymentStage) DeployBatch(ctx context.Context, network string, contracts []deploy.BatchContract, usePEF bool, maxParallel int) (*deploy.BatchResult, []string, error) {
	if _, ok := s.registry.Network(network); !ok {
		return nil, nil, &ValidationError{Stage: s.Name(), Reason: "unknown network " + network}
	}

	deployer, err := s.provider.Deployer(ctx, network)
	if err != nil {
		return nil, nil, err
	}

	var warnings []string
	parallel := maxParallel
	if usePEF && !s.registry.Supports(network, registry.FeaturePEF) {
		warnings = append(warnings, s.registry.Fallback(network, registry.FeaturePEF))
		usePEF = false
	}
	if !usePEF {
		parallel = 1
	}

	result, err := deploy.NewScheduler(deployer, parallel).DeployBatch(ctx, contracts)
	if err != nil {
		return nil, warnings, err
	}
	return result, warnings, nil
}
