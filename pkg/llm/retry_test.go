package llm

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider scripts a sequence of responses for retry testing.
type fakeProvider struct {
	calls   atomic.Int32
	results []fakeResult
}

type fakeResult struct {
	out string
	err error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(context.Context, GenerateRequest) (string, error) {
	n := int(f.calls.Add(1)) - 1
	if n >= len(f.results) {
		n = len(f.results) - 1
	}
	r := f.results[n]
	return r.out, r.err
}

func newFastRetrier(p Provider) *Retrier {
	r := NewRetrier(p, time.Second, 20)
	return r
}

func TestRetrierSucceedsFirstAttempt(t *testing.T) {
	p := &fakeProvider{results: []fakeResult{{out: "contract A {}"}}}
	r := newFastRetrier(p)

	out, err := r.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "contract A {}", out)
	assert.Equal(t, int32(1), p.calls.Load())
}

func TestRetrierRetriesTransientErrors(t *testing.T) {
	if testing.Short() {
		t.Skip("retry backoff sleeps for seconds")
	}
	p := &fakeProvider{results: []fakeResult{
		{err: errors.New("503 service unavailable")},
		{err: errors.New("rate limit exceeded")},
		{out: "contract A {}"},
	}}
	r := newFastRetrier(p)

	out, err := r.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "contract A {}", out)
	assert.Equal(t, int32(3), p.calls.Load())
}

func TestRetrierStopsOnPermanentError(t *testing.T) {
	p := &fakeProvider{results: []fakeResult{
		{err: errors.New("invalid api key")},
	}}
	r := newFastRetrier(p)

	_, err := r.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Equal(t, int32(1), p.calls.Load(), "permanent errors must not be retried")
}

func TestRetrierExhaustsBudget(t *testing.T) {
	if testing.Short() {
		t.Skip("retry backoff sleeps for seconds")
	}
	p := &fakeProvider{results: []fakeResult{
		{err: errors.New("gateway timeout 504")},
	}}
	r := newFastRetrier(p)

	_, err := r.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Equal(t, int32(retryAttempts), p.calls.Load())
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("request timeout"), true},
		{errors.New("got 429 Too Many Requests"), true},
		{errors.New("upstream returned 502"), true},
		{context.DeadlineExceeded, true},
		{errors.New("invalid api key"), false},
		{errors.New("model not found"), false},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, isTransient(tt.err))
		})
	}
}
