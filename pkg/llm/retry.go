package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/semaphore"
)

// retryAttempts is the total generation attempt budget.
const retryAttempts = 3

// retryBaseInterval is the first backoff delay; subsequent delays double.
const retryBaseInterval = 2 * time.Second

// Retrier wraps a Provider with a retry budget, per-call timeout, and a
// global in-flight cap shared by every caller in the process.
type Retrier struct {
	provider Provider
	timeout  time.Duration
	inflight *semaphore.Weighted
}

// NewRetrier wraps a provider. maxInFlight caps concurrent calls across all
// workflows (default 20 from config).
func NewRetrier(provider Provider, timeout time.Duration, maxInFlight int64) *Retrier {
	return &Retrier{
		provider: provider,
		timeout:  timeout,
		inflight: semaphore.NewWeighted(maxInFlight),
	}
}

// Name returns the wrapped provider's name.
func (r *Retrier) Name() string { return r.provider.Name() }

// Generate calls the provider with up to three attempts, exponential backoff
// starting at two seconds, and the configured per-call timeout. Only
// transient failures are retried.
func (r *Retrier) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	return r.GenerateWithTimeout(ctx, req, r.timeout)
}

// GenerateWithTimeout is Generate with a caller-chosen per-call timeout.
// The constructor-args call uses a shorter one than the main generation.
func (r *Retrier) GenerateWithTimeout(ctx context.Context, req GenerateRequest, timeout time.Duration) (string, error) {
	if err := r.inflight.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer r.inflight.Release(1)

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = retryBaseInterval
	expo.RandomizationFactor = 0
	expo.Multiplier = 2
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, retryAttempts-1), ctx)

	attempt := 0
	return backoff.RetryWithData(func() (string, error) {
		attempt++
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		out, err := r.provider.Generate(callCtx, req)
		if err == nil {
			return out, nil
		}
		if !isTransient(err) {
			return "", backoff.Permanent(err)
		}
		slog.Warn("LLM call failed, will retry",
			"provider", r.provider.Name(), "attempt", attempt, "error", err)
		return "", err
	}, policy)
}

// isTransient classifies provider failures worth another attempt: timeouts,
// rate limits, and upstream 5xx responses.
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"timeout",
		"deadline exceeded",
		"connection reset",
		"connection refused",
		"network",
		"rate limit",
		"429",
		"500",
		"502",
		"503",
		"504",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
