package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/pkg/config"
)

type fakePruner struct {
	mu     sync.Mutex
	calls  int
	ttls   []time.Duration
	err    error
	notify chan struct{}
}

func (f *fakePruner) CleanupExpiredEvents(_ context.Context, ttl time.Duration) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.ttls = append(f.ttls, ttl)
	if f.notify != nil {
		select {
		case f.notify <- struct{}{}:
		default:
		}
	}
	if f.err != nil {
		return 0, f.err
	}
	return 3, nil
}

func (f *fakePruner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestServiceSweepsImmediatelyOnStart(t *testing.T) {
	pruner := &fakePruner{notify: make(chan struct{}, 1)}
	svc := NewService(config.RetentionConfig{
		Enabled:  true,
		EventTTL: 24 * time.Hour,
		Interval: time.Hour,
	}, pruner)

	svc.Start(context.Background())
	defer svc.Stop()

	select {
	case <-pruner.notify:
	case <-time.After(2 * time.Second):
		t.Fatal("no sweep observed after start")
	}

	pruner.mu.Lock()
	defer pruner.mu.Unlock()
	require.NotEmpty(t, pruner.ttls)
	assert.Equal(t, 24*time.Hour, pruner.ttls[0])
}

func TestServiceSweepsOnInterval(t *testing.T) {
	pruner := &fakePruner{notify: make(chan struct{}, 10)}
	svc := NewService(config.RetentionConfig{
		Enabled:  true,
		EventTTL: time.Hour,
		Interval: 10 * time.Millisecond,
	}, pruner)

	svc.Start(context.Background())
	defer svc.Stop()

	deadline := time.After(2 * time.Second)
	for pruner.callCount() < 3 {
		select {
		case <-pruner.notify:
		case <-deadline:
			t.Fatalf("expected at least 3 sweeps, saw %d", pruner.callCount())
		}
	}
}

func TestServiceStopIsIdempotent(t *testing.T) {
	svc := NewService(config.RetentionConfig{
		EventTTL: time.Hour,
		Interval: time.Hour,
	}, &fakePruner{})

	svc.Start(context.Background())
	svc.Stop()
	svc.Stop() // second call must not panic or block
}

func TestServiceSurvivesPrunerErrors(t *testing.T) {
	pruner := &fakePruner{err: assert.AnError, notify: make(chan struct{}, 10)}
	svc := NewService(config.RetentionConfig{
		EventTTL: time.Hour,
		Interval: 5 * time.Millisecond,
	}, pruner)

	svc.Start(context.Background())
	defer svc.Stop()

	deadline := time.After(2 * time.Second)
	for pruner.callCount() < 2 {
		select {
		case <-pruner.notify:
		case <-deadline:
			t.Fatal("loop stopped after pruner error")
		}
	}
}
