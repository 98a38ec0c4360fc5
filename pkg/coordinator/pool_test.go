package coordinator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/ent"
	"github.com/chainforge-ai/chainforge/pkg/services"
)

type fakeQueue struct {
	mu         sync.Mutex
	pending    []*ent.Workflow
	claimed    []string
	heartbeats int
	orphanIDs  []string // returned by the first FailOrphans call
	scans      int
	active     int
}

func (q *fakeQueue) ClaimNext(_ context.Context, podID string) (*ent.Workflow, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil, services.ErrNotFound
	}
	wf := q.pending[0]
	q.pending = q.pending[1:]
	q.claimed = append(q.claimed, wf.ID)
	return wf, nil
}

func (q *fakeQueue) Heartbeat(_ context.Context, _ string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.heartbeats++
	return nil
}

func (q *fakeQueue) FailOrphans(_ context.Context, _ time.Time) ([]string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.scans++
	ids := q.orphanIDs
	q.orphanIDs = nil
	return ids, nil
}

func (q *fakeQueue) QueueDepth(_ context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending), nil
}

func (q *fakeQueue) ActiveCount(_ context.Context, _ string) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.active, nil
}

type recordingExecutor struct {
	mu       sync.Mutex
	executed []string
	done     chan string

	// block makes Execute wait for context cancellation.
	block   bool
	started chan string
}

func (e *recordingExecutor) Execute(ctx context.Context, wf *ent.Workflow) error {
	if e.block {
		e.started <- wf.ID
		<-ctx.Done()
	}
	e.mu.Lock()
	e.executed = append(e.executed, wf.ID)
	e.mu.Unlock()
	if e.done != nil {
		e.done <- wf.ID
	}
	return nil
}

func testPoolConfig() PoolConfig {
	return PoolConfig{
		WorkerCount:        2,
		MaxConcurrent:      4,
		PollInterval:       5 * time.Millisecond,
		WorkflowTimeout:    time.Second,
		HeartbeatInterval:  10 * time.Millisecond,
		OrphanThreshold:    time.Minute,
		OrphanScanInterval: time.Hour,
	}
}

func waitFor(t *testing.T, ch <-chan string, n int) []string {
	t.Helper()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		select {
		case id := <-ch:
			out = append(out, id)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for workflow %d of %d", i+1, n)
		}
	}
	return out
}

func TestPoolProcessesQueuedWorkflows(t *testing.T) {
	queue := &fakeQueue{pending: []*ent.Workflow{
		{ID: "wf-1"}, {ID: "wf-2"}, {ID: "wf-3"},
	}}
	executor := &recordingExecutor{done: make(chan string, 3)}
	pool := NewPool("pod-a", queue, executor, testPoolConfig())

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	done := waitFor(t, executor.done, 3)
	assert.ElementsMatch(t, []string{"wf-1", "wf-2", "wf-3"}, done)

	queue.mu.Lock()
	defer queue.mu.Unlock()
	assert.Len(t, queue.claimed, 3)
	assert.Empty(t, queue.pending)
}

func TestPoolCancelWorkflow(t *testing.T) {
	queue := &fakeQueue{pending: []*ent.Workflow{{ID: "wf-1"}}}
	executor := &recordingExecutor{
		block:   true,
		started: make(chan string, 1),
		done:    make(chan string, 1),
	}
	pool := NewPool("pod-a", queue, executor, testPoolConfig())

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	waitFor(t, executor.started, 1)
	assert.True(t, pool.CancelWorkflow("wf-1"))
	waitFor(t, executor.done, 1)

	// Once finished the workflow is unregistered.
	assert.False(t, pool.CancelWorkflow("wf-1"))
	assert.False(t, pool.CancelWorkflow("never-seen"))
}

func TestPoolRespectsCapacity(t *testing.T) {
	queue := &fakeQueue{
		pending: []*ent.Workflow{{ID: "wf-1"}},
		active:  4, // at the limit already
	}
	executor := &recordingExecutor{}
	pool := NewPool("pod-a", queue, executor, testPoolConfig())

	require.NoError(t, pool.Start(context.Background()))
	time.Sleep(50 * time.Millisecond)
	pool.Stop()

	queue.mu.Lock()
	defer queue.mu.Unlock()
	assert.Empty(t, queue.claimed, "no workflow should be claimed at capacity")
}

func TestPoolStartupOrphanScan(t *testing.T) {
	queue := &fakeQueue{orphanIDs: []string{"wf-dead-1", "wf-dead-2"}}
	executor := &recordingExecutor{}
	pool := NewPool("pod-a", queue, executor, testPoolConfig())

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	health := pool.Health()
	assert.Equal(t, 2, health.OrphansRecovered)
	assert.False(t, health.LastOrphanScan.IsZero())
}

func TestPoolHealth(t *testing.T) {
	queue := &fakeQueue{pending: []*ent.Workflow{{ID: "wf-1"}}, active: 1}
	executor := &recordingExecutor{done: make(chan string, 1)}
	pool := NewPool("pod-a", queue, executor, testPoolConfig())

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()
	waitFor(t, executor.done, 1)

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-a", health.PodID)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Equal(t, 1, health.ActiveWorkflows)
	assert.Len(t, health.WorkerStats, 2)

	processed := 0
	for _, w := range health.WorkerStats {
		processed += w.WorkflowsProcessed
	}
	assert.Equal(t, 1, processed)
}
