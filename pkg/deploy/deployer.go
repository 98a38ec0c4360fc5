package deploy

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/sync/semaphore"
)

// transientRetries is how many times a transient submission failure is
// retried (2 s, 4 s, 8 s).
const transientRetries = 3

// DefaultReceiptTimeout bounds receipt polling for one deployment.
const DefaultReceiptTimeout = 300 * time.Second

// Request describes one contract deployment.
type Request struct {
	ContractName    string
	ABI             []map[string]any
	Bytecode        string // creation bytecode, 0x-prefixed hex
	ConstructorArgs []any
	GasLimit        uint64  // 0 means estimate
	Nonce           *uint64 // nil means ask the nonce manager
}

// Result is one confirmed deployment.
type Result struct {
	ContractName string
	Network      string
	Address      common.Address
	TxHash       common.Hash
	BlockNumber  int64
	GasUsed      uint64
	Deployer     common.Address
	SubmittedAt  time.Time
	ConfirmedAt  time.Time
}

// Deployer submits contract-creation transactions to one network and waits
// for receipts. Safe for concurrent use; the in-flight semaphore is shared
// process-wide so batch deploys and single deploys share one cap.
type Deployer struct {
	backend        Backend
	signer         *Signer
	nonces         *NonceManager
	network        string
	receiptTimeout time.Duration
	inflight       *semaphore.Weighted
}

// NewDeployer creates a deployer for one network. inflight caps concurrent
// deployments process-wide; pass the shared semaphore.
func NewDeployer(backend Backend, signer *Signer, nonces *NonceManager, network string, inflight *semaphore.Weighted) *Deployer {
	return &Deployer{
		backend:        backend,
		signer:         signer,
		nonces:         nonces,
		network:        network,
		receiptTimeout: DefaultReceiptTimeout,
		inflight:       inflight,
	}
}

// Network returns the target network id.
func (d *Deployer) Network() string { return d.network }

// Signer returns the deployer's signer.
func (d *Deployer) Signer() *Signer { return d.signer }

// Deploy runs the single-contract deployment algorithm: build the creation
// transaction, sign, submit with transient retry, and poll for the receipt.
func (d *Deployer) Deploy(ctx context.Context, req Request) (*Result, error) {
	if err := d.inflight.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer d.inflight.Release(1)

	data, err := buildCreationData(req)
	if err != nil {
		return nil, err
	}

	var nonce uint64
	if req.Nonce != nil {
		nonce = *req.Nonce
	} else {
		nonce, err = d.nonces.Next(ctx, d.backend, d.network, d.signer.Address())
		if err != nil {
			return nil, err
		}
	}

	gasPrice, err := d.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, classifyRPCError(err)
	}

	gas := req.GasLimit
	if gas == 0 {
		gas, err = d.backend.EstimateGas(ctx, ethereum.CallMsg{
			From: d.signer.Address(),
			Data: data,
		})
		if err != nil {
			// Estimation failures surface the original RPC error; no retry.
			return nil, &GasEstimationError{Err: err}
		}
	}

	tx := types.NewContractCreation(nonce, big.NewInt(0), gas, gasPrice, data)
	signed, err := d.signer.SignTx(tx)
	if err != nil {
		return nil, &FatalError{Reason: "signing failed", Err: err}
	}

	submittedAt := time.Now().UTC()
	if err := d.submit(ctx, signed); err != nil {
		return nil, err
	}

	slog.Info("Deployment transaction submitted",
		"network", d.network, "contract", req.ContractName,
		"tx_hash", signed.Hash().Hex(), "nonce", nonce)

	receipt, err := d.waitReceipt(ctx, signed)
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, &FatalError{Reason: "revert", Err: fmt.Errorf("transaction %s reverted", signed.Hash().Hex())}
	}

	return &Result{
		ContractName: req.ContractName,
		Network:      d.network,
		Address:      receipt.ContractAddress,
		TxHash:       signed.Hash(),
		BlockNumber:  receipt.BlockNumber.Int64(),
		GasUsed:      receipt.GasUsed,
		Deployer:     d.signer.Address(),
		SubmittedAt:  submittedAt,
		ConfirmedAt:  time.Now().UTC(),
	}, nil
}

// submit sends the signed transaction, retrying transient failures with
// exponential backoff. Fatal classifications stop immediately.
func (d *Deployer) submit(ctx context.Context, signed *types.Transaction) error {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = 2 * time.Second
	expo.RandomizationFactor = 0
	expo.Multiplier = 2
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, transientRetries), ctx)

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := d.backend.SendTransaction(ctx, signed)
		if err == nil {
			return nil
		}
		classified := classifyRPCError(err)
		if !IsTransient(classified) {
			return backoff.Permanent(classified)
		}
		slog.Warn("Transaction submission failed, will retry",
			"network", d.network, "attempt", attempt, "error", err)
		return classified
	}, policy)
}

// waitReceipt polls until the transaction is mined or the receipt timeout
// elapses.
func (d *Deployer) waitReceipt(ctx context.Context, signed *types.Transaction) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, d.receiptTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, d.backend, signed)
	if err != nil {
		if waitCtx.Err() == context.DeadlineExceeded {
			return nil, &TransientError{Err: fmt.Errorf("no receipt for %s after %s", signed.Hash().Hex(), d.receiptTimeout)}
		}
		return nil, classifyRPCError(err)
	}
	return receipt, nil
}

// buildCreationData validates the request and produces the transaction
// payload: creation bytecode followed by ABI-encoded constructor args.
func buildCreationData(req Request) ([]byte, error) {
	if len(req.ABI) == 0 {
		return nil, &ValidationError{Reason: "compiled contract is missing its ABI"}
	}
	code := strings.TrimPrefix(req.Bytecode, "0x")
	if code == "" {
		return nil, &ValidationError{Reason: "compiled contract is missing bytecode"}
	}
	data, err := hex.DecodeString(code)
	if err != nil {
		return nil, &ValidationError{Reason: "bytecode is not valid hex"}
	}

	abiJSON, err := json.Marshal(req.ABI)
	if err != nil {
		return nil, &ValidationError{Reason: "abi is not serializable"}
	}
	parsed, err := abi.JSON(strings.NewReader(string(abiJSON)))
	if err != nil {
		return nil, &ValidationError{Reason: "abi is not parseable: " + err.Error()}
	}

	inputs := parsed.Constructor.Inputs
	if len(inputs) == 0 {
		if len(req.ConstructorArgs) > 0 {
			return nil, &ValidationError{Reason: "constructor takes no arguments"}
		}
		return data, nil
	}
	if len(req.ConstructorArgs) != len(inputs) {
		return nil, &ValidationError{Reason: fmt.Sprintf(
			"constructor expects %d arguments, got %d", len(inputs), len(req.ConstructorArgs))}
	}

	converted, err := convertArgs(inputs, req.ConstructorArgs)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	packed, err := parsed.Pack("", converted...)
	if err != nil {
		return nil, &ValidationError{Reason: "constructor argument encoding failed: " + err.Error()}
	}
	return append(data, packed...), nil
}

// convertArgs coerces loosely-typed argument values (decoded JSON, LLM
// output) into the Go representations the ABI encoder expects.
func convertArgs(inputs abi.Arguments, args []any) ([]any, error) {
	out := make([]any, len(inputs))
	for i, input := range inputs {
		v, err := convertArg(input.Type, args[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s %s): %w", i, input.Name, input.Type.String(), err)
		}
		out[i] = v
	}
	return out, nil
}

func convertArg(t abi.Type, value any) (any, error) {
	switch t.T {
	case abi.StringTy:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", value)
		}
		return s, nil

	case abi.UintTy, abi.IntTy:
		n, err := toBigInt(value)
		if err != nil {
			return nil, err
		}
		// Narrow widths use native Go types in go-ethereum's encoder.
		if t.T == abi.IntTy {
			switch t.Size {
			case 8:
				return int8(n.Int64()), nil
			case 16:
				return int16(n.Int64()), nil
			case 32:
				return int32(n.Int64()), nil
			case 64:
				return n.Int64(), nil
			default:
				return n, nil
			}
		}
		switch t.Size {
		case 8:
			return uint8(n.Uint64()), nil
		case 16:
			return uint16(n.Uint64()), nil
		case 32:
			return uint32(n.Uint64()), nil
		case 64:
			return n.Uint64(), nil
		default:
			return n, nil
		}

	case abi.AddressTy:
		s, ok := value.(string)
		if !ok || !common.IsHexAddress(s) {
			return nil, fmt.Errorf("expected hex address, got %v", value)
		}
		return common.HexToAddress(s), nil

	case abi.BoolTy:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", value)
		}
		return b, nil

	default:
		return nil, fmt.Errorf("unsupported constructor argument type %s", t.String())
	}
}

func toBigInt(value any) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return v, nil
	case int:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case float64:
		// JSON numbers decode as float64. Reject fractional values rather
		// than silently truncating supply-like arguments.
		if v != float64(int64(v)) {
			return nil, fmt.Errorf("expected integer, got %v", v)
		}
		return big.NewInt(int64(v)), nil
	case string:
		n, ok := new(big.Int).SetString(strings.TrimSpace(v), 10)
		if !ok {
			return nil, fmt.Errorf("expected integer, got %q", v)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("expected integer, got %T", value)
	}
}
