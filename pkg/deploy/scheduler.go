package deploy

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxParallel bounds concurrent deployments within one batch cohort.
const DefaultMaxParallel = 10

// ContractResult is the per-contract outcome of a batch deployment.
type ContractResult struct {
	ContractName string    `json:"contract_name"`
	Status       string    `json:"status"` // confirmed, failed, skipped
	Address      string    `json:"address,omitempty"`
	TxHash       string    `json:"tx_hash,omitempty"`
	BlockNumber  int64     `json:"block_number,omitempty"`
	GasUsed      uint64    `json:"gas_used,omitempty"`
	Error        string    `json:"error,omitempty"`
	Layer        int       `json:"layer"`
	ConfirmedAt  time.Time `json:"confirmed_at,omitzero"`
}

// BatchResult summarizes a batch deployment.
type BatchResult struct {
	Deployments     []ContractResult `json:"deployments"`
	TotalTime       time.Duration    `json:"-"`
	TotalTimeMS     int64            `json:"total_time_ms"`
	SuccessCount    int              `json:"success_count"`
	FailedCount     int              `json:"failed_count"`
	BatchesDeployed int              `json:"batches_deployed"`
	CycleDetected   bool             `json:"cycle_detected,omitempty"`
}

// Scheduler deploys a batch of contracts layer by layer: dependencies
// first, independent contracts in parallel up to maxParallel, each task the
// single-contract deployment algorithm. One deployer (one key, one nonce
// counter) submits every contract.
type Scheduler struct {
	deployer    *Deployer
	maxParallel int
}

// NewScheduler creates a scheduler over a deployer. maxParallel ≤ 0 uses
// the default; maxParallel = 1 degrades to strictly sequential behavior.
func NewScheduler(deployer *Deployer, maxParallel int) *Scheduler {
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}
	return &Scheduler{deployer: deployer, maxParallel: maxParallel}
}

// DeployBatch deploys the contracts respecting their dependency DAG.
// A failure in layer k aborts layers beyond k; contracts already deployed
// stay on-chain and are reported per-contract so callers can retry the
// rest.
func (s *Scheduler) DeployBatch(ctx context.Context, contracts []BatchContract) (*BatchResult, error) {
	start := time.Now()

	layers, cyclic, err := BuildLayers(contracts)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	if cyclic {
		slog.Warn("Dependency cycle detected in batch; deploying sequentially in input order",
			"network", s.deployer.Network(), "contracts", len(contracts))
	}

	results := make([]ContractResult, len(contracts))
	for i, c := range contracts {
		results[i] = ContractResult{ContractName: c.ContractName, Status: "skipped"}
	}

	aborted := false
	batchesDeployed := 0
	for layerIdx, layer := range layers {
		if aborted {
			break
		}

		// Nonces are reserved in cohort order before fan-out, so the
		// assignment is deterministic regardless of task interleaving.
		nonces := make([]uint64, len(layer))
		for slot, ci := range layer {
			n, err := s.deployer.nonces.Next(ctx, s.deployer.backend, s.deployer.Network(), s.deployer.Signer().Address())
			if err != nil {
				results[layer[slot]] = ContractResult{
					ContractName: contracts[ci].ContractName,
					Status:       "failed",
					Error:        err.Error(),
					Layer:        layerIdx,
				}
				aborted = true
				break
			}
			nonces[slot] = n
		}
		if aborted {
			break
		}

		// A failure only aborts LATER layers. Siblings already in flight
		// run to completion so transactions that land on-chain are never
		// misreported as failed.
		var g errgroup.Group
		g.SetLimit(s.maxParallel)
		for slot, ci := range layer {
			nonce := nonces[slot]
			contract := contracts[ci]
			g.Go(func() error {
				res, err := s.deployer.Deploy(ctx, Request{
					ContractName:    contract.ContractName,
					ABI:             contract.ABI,
					Bytecode:        contract.Bytecode,
					ConstructorArgs: contract.ConstructorArgs,
					GasLimit:        contract.GasLimit,
					Nonce:           &nonce,
				})
				if err != nil {
					results[ci] = ContractResult{
						ContractName: contract.ContractName,
						Status:       "failed",
						Error:        err.Error(),
						Layer:        layerIdx,
					}
					return nil
				}
				results[ci] = ContractResult{
					ContractName: contract.ContractName,
					Status:       "confirmed",
					Address:      res.Address.Hex(),
					TxHash:       res.TxHash.Hex(),
					BlockNumber:  res.BlockNumber,
					GasUsed:      res.GasUsed,
					Layer:        layerIdx,
					ConfirmedAt:  res.ConfirmedAt,
				}
				return nil
			})
		}

		// Wait for the full cohort before starting the next layer.
		_ = g.Wait()
		batchesDeployed++
		for _, ci := range layer {
			if results[ci].Status == "failed" {
				aborted = true
				break
			}
		}
	}

	result := &BatchResult{
		Deployments:     results,
		TotalTime:       time.Since(start),
		BatchesDeployed: batchesDeployed,
		CycleDetected:   cyclic,
	}
	result.TotalTimeMS = result.TotalTime.Milliseconds()
	for _, r := range results {
		switch r.Status {
		case "confirmed":
			result.SuccessCount++
		case "failed":
			result.FailedCount++
		}
	}
	return result, nil
}
