// Package deploy submits compiled contracts to EVM networks: single
// deployments with receipt polling, and parallel batch deployments scheduled
// over a dependency DAG.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Deployment failures fall into a small taxonomy that decides retry
// behavior: validation and gas-estimation failures are fatal with no retry,
// reverts and funding problems are fatal, and transient network failures
// get the retry budget.

// ValidationError marks bad deployment input. Never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "deployment validation failed: " + e.Reason
}

// GasEstimationError wraps the RPC error from a failed estimate. The
// original error text is preserved verbatim for the user.
type GasEstimationError struct {
	Err error
}

func (e *GasEstimationError) Error() string {
	return "gas estimation failed: " + e.Err.Error()
}

func (e *GasEstimationError) Unwrap() error { return e.Err }

// FatalError marks an unretryable on-chain failure: a revert, insufficient
// balance, or a bad signature.
type FatalError struct {
	Reason string
	Err    error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deployment failed (%s): %v", e.Reason, e.Err)
	}
	return "deployment failed: " + e.Reason
}

func (e *FatalError) Unwrap() error { return e.Err }

// TransientError marks a failure worth retrying: timeouts, 5xx responses,
// rate limits, connection drops.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return "transient network error: " + e.Err.Error()
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether an error should consume a retry attempt.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// classifyRPCError sorts a raw RPC failure into the taxonomy.
func classifyRPCError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &TransientError{Err: err}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient funds"):
		return &FatalError{Reason: "insufficient balance", Err: err}
	case strings.Contains(msg, "execution reverted"), strings.Contains(msg, "revert"):
		return &FatalError{Reason: "revert", Err: err}
	case strings.Contains(msg, "invalid sender"), strings.Contains(msg, "invalid signature"):
		return &FatalError{Reason: "bad signature", Err: err}
	case strings.Contains(msg, "nonce too low"), strings.Contains(msg, "replacement transaction underpriced"):
		// A competing transaction consumed the nonce. Retrying with a
		// refreshed nonce can succeed.
		return &TransientError{Err: err}
	case strings.Contains(msg, "timeout"),
		strings.Contains(msg, "deadline exceeded"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "429"),
		strings.Contains(msg, "500"),
		strings.Contains(msg, "502"),
		strings.Contains(msg, "503"),
		strings.Contains(msg, "504"):
		return &TransientError{Err: err}
	default:
		return &FatalError{Reason: "rpc error", Err: err}
	}
}
