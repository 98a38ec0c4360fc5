package deploy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T, maxParallel int) (*Scheduler, *fakeBackend) {
	t.Helper()
	deployer, backend := newTestDeployer(t)
	return NewScheduler(deployer, maxParallel), backend
}

func batchContract(name string, deps ...string) BatchContract {
	return BatchContract{
		ContractName: name,
		ABI:          emptyConstructorABI,
		Bytecode:     "0x6080604052",
		Dependencies: deps,
	}
}

func TestDeployBatch(t *testing.T) {
	t.Run("dependent contract deploys after its cohort", func(t *testing.T) {
		scheduler, backend := newTestScheduler(t, 0)

		res, err := scheduler.DeployBatch(context.Background(), []BatchContract{
			batchContract("Token"),
			batchContract("Vault", "Token"),
			batchContract("Oracle"),
		})
		require.NoError(t, err)

		assert.Equal(t, 3, res.SuccessCount)
		assert.Zero(t, res.FailedCount)
		assert.Equal(t, 2, res.BatchesDeployed)
		assert.False(t, res.CycleDetected)

		require.Len(t, res.Deployments, 3)
		for _, d := range res.Deployments {
			assert.Equal(t, "confirmed", d.Status, d.ContractName)
			assert.NotEmpty(t, d.Address)
		}
		assert.Equal(t, 0, res.Deployments[0].Layer)
		assert.Equal(t, 1, res.Deployments[1].Layer)
		assert.Equal(t, 0, res.Deployments[2].Layer)
		assert.False(t, res.Deployments[1].ConfirmedAt.Before(res.Deployments[0].ConfirmedAt),
			"Vault confirms no earlier than Token")

		// Nonces cover 0..2 exactly and the dependent contract submits last.
		nonces := backend.sentNonces()
		require.Len(t, nonces, 3)
		assert.ElementsMatch(t, []uint64{0, 1, 2}, nonces)
		assert.Equal(t, uint64(2), nonces[2], "layer 1 waits for the full first cohort")
	})

	t.Run("max parallel of one deploys in input order", func(t *testing.T) {
		scheduler, backend := newTestScheduler(t, 1)

		res, err := scheduler.DeployBatch(context.Background(), []BatchContract{
			batchContract("A"),
			batchContract("B"),
			batchContract("C"),
		})
		require.NoError(t, err)
		assert.Equal(t, 3, res.SuccessCount)
		assert.Equal(t, 1, res.BatchesDeployed)
		assert.Equal(t, []uint64{0, 1, 2}, backend.sentNonces())
	})

	t.Run("nonces stay unique under wide fan-out", func(t *testing.T) {
		scheduler, backend := newTestScheduler(t, 10)

		contracts := make([]BatchContract, 20)
		for i := range contracts {
			contracts[i] = batchContract(string(rune('A' + i)))
		}
		res, err := scheduler.DeployBatch(context.Background(), contracts)
		require.NoError(t, err)
		assert.Equal(t, 20, res.SuccessCount)

		seen := make(map[uint64]bool)
		for _, n := range backend.sentNonces() {
			assert.False(t, seen[n], "nonce reused")
			seen[n] = true
		}
		assert.Len(t, seen, 20)
	})

	t.Run("failure in a layer skips later layers", func(t *testing.T) {
		scheduler, backend := newTestScheduler(t, 1)
		backend.sendErrs = []error{errors.New("insufficient funds for gas * price + value")}

		res, err := scheduler.DeployBatch(context.Background(), []BatchContract{
			batchContract("Token"),
			batchContract("Vault", "Token"),
		})
		require.NoError(t, err, "partial failure is reported per contract, not as a batch error")

		assert.Equal(t, 0, res.SuccessCount)
		assert.Equal(t, 1, res.FailedCount)
		assert.Equal(t, 1, res.BatchesDeployed)

		assert.Equal(t, "failed", res.Deployments[0].Status)
		assert.Contains(t, res.Deployments[0].Error, "insufficient balance")
		assert.Equal(t, "skipped", res.Deployments[1].Status)
	})

	t.Run("failure lets in-flight cohort siblings finish", func(t *testing.T) {
		scheduler, backend := newTestScheduler(t, 10)
		backend.sendHooks = map[uint64]func(ctx context.Context) error{
			// Fast (nonce 0) fails immediately and fatally.
			0: func(context.Context) error {
				return errors.New("insufficient funds for gas * price + value")
			},
			// Slow (nonce 1) is still in flight when Fast fails. Its
			// transaction must land and be reported confirmed, not be
			// cancelled along with its cohort-mate.
			1: func(ctx context.Context) error {
				select {
				case <-time.After(100 * time.Millisecond):
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			},
		}

		res, err := scheduler.DeployBatch(context.Background(), []BatchContract{
			batchContract("Fast"),
			batchContract("Slow"),
			batchContract("Dependent", "Slow"),
		})
		require.NoError(t, err)

		assert.Equal(t, "failed", res.Deployments[0].Status)
		assert.Contains(t, res.Deployments[0].Error, "insufficient balance")
		assert.Equal(t, "confirmed", res.Deployments[1].Status, "sibling in the same cohort runs to completion")
		assert.NotEmpty(t, res.Deployments[1].Address)
		assert.Equal(t, "skipped", res.Deployments[2].Status, "only later layers are aborted")

		assert.Equal(t, 1, res.SuccessCount)
		assert.Equal(t, 1, res.FailedCount)
		assert.Equal(t, 1, res.BatchesDeployed)
	})

	t.Run("cycle degrades to sequential and still deploys", func(t *testing.T) {
		scheduler, backend := newTestScheduler(t, 10)

		res, err := scheduler.DeployBatch(context.Background(), []BatchContract{
			batchContract("Alpha", "Beta"),
			batchContract("Beta", "Alpha"),
		})
		require.NoError(t, err)

		assert.True(t, res.CycleDetected)
		assert.Equal(t, 2, res.SuccessCount)
		assert.Equal(t, 2, res.BatchesDeployed)
		assert.Equal(t, []uint64{0, 1}, backend.sentNonces(), "input order under the sequential fallback")
	})

	t.Run("duplicate contract names are a validation error", func(t *testing.T) {
		scheduler, _ := newTestScheduler(t, 0)

		_, err := scheduler.DeployBatch(context.Background(), []BatchContract{
			batchContract("Token"),
			batchContract("Token"),
		})
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
	})
}
