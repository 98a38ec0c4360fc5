package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/chainforge-ai/chainforge/ent"
	"github.com/chainforge-ai/chainforge/pkg/services"
)

// Sentinel errors for the claim loop.
var (
	// errNoWorkflows indicates the queue is empty.
	errNoWorkflows = errors.New("no workflows available")

	// errAtCapacity indicates this pod reached its concurrent workflow limit.
	errAtCapacity = errors.New("at capacity")
)

// PoolConfig tunes the worker pool.
type PoolConfig struct {
	WorkerCount        int
	MaxConcurrent      int
	PollInterval       time.Duration
	PollIntervalJitter time.Duration
	WorkflowTimeout    time.Duration
	HeartbeatInterval  time.Duration
	OrphanThreshold    time.Duration
	OrphanScanInterval time.Duration
}

// WorkflowQueue is the claim and heartbeat surface the pool uses.
// Implemented by services.WorkflowService.
type WorkflowQueue interface {
	ClaimNext(ctx context.Context, podID string) (*ent.Workflow, error)
	Heartbeat(ctx context.Context, id string) error
	FailOrphans(ctx context.Context, cutoff time.Time) ([]string, error)
	QueueDepth(ctx context.Context) (int, error)
	ActiveCount(ctx context.Context, podID string) (int, error)
}

// Executor runs one claimed workflow to a terminal state. Implemented by
// *Coordinator.
type Executor interface {
	Execute(ctx context.Context, wf *ent.Workflow) error
}

// Pool runs N workers that claim queued workflows and execute them. All
// pods poll the same table; FOR UPDATE SKIP LOCKED in the claim query keeps
// them from stepping on each other.
type Pool struct {
	podID    string
	queue    WorkflowQueue
	executor Executor
	config   PoolConfig

	workers  []*worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Workflow cancel registry: workflow_id → cancel function.
	mu      sync.RWMutex
	active  map[string]context.CancelFunc
	started bool

	orphanMu         sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// NewPool creates a worker pool.
func NewPool(podID string, queue WorkflowQueue, executor Executor, cfg PoolConfig) *Pool {
	return &Pool{
		podID:    podID,
		queue:    queue,
		executor: executor,
		config:   cfg,
		workers:  make([]*worker, 0, cfg.WorkerCount),
		stopCh:   make(chan struct{}),
		active:   make(map[string]context.CancelFunc),
	}
}

// Start spawns the workers and the orphan scan loop. Safe to call more than
// once; later calls are no-ops.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	// Fail anything this pod (or a dead one) left mid-run before claiming
	// new work. Idempotent across pods.
	if err := p.scanOrphans(ctx); err != nil {
		slog.Error("Startup orphan scan failed", "error", err)
	}

	for i := 0; i < p.config.WorkerCount; i++ {
		w := &worker{
			id:   fmt.Sprintf("%s-worker-%d", p.podID, i),
			pool: p,
		}
		p.workers = append(p.workers, w)
		w.start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanScans(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them. Workers finish their
// current workflows before exiting.
func (p *Pool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	if active := p.activeWorkflowIDs(); len(active) > 0 {
		slog.Info("Waiting for active workflows to complete",
			"count", len(active), "workflow_ids", active)
	}

	for _, w := range p.workers {
		w.stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// CancelWorkflow cancels a workflow running on this pod. Returns true when
// the workflow was found locally.
func (p *Pool) CancelWorkflow(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.active[id]; ok {
		cancel()
		return true
	}
	return false
}

func (p *Pool) register(id string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active[id] = cancel
}

func (p *Pool) unregister(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.active, id)
}

func (p *Pool) activeWorkflowIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.active))
	for id := range p.active {
		ids = append(ids, id)
	}
	return ids
}

// runOrphanScans periodically fails workflows whose worker stopped
// heartbeating. Every pod runs this; the operation is idempotent.
func (p *Pool) runOrphanScans(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.scanOrphans(ctx); err != nil {
				slog.Error("Orphan scan failed", "error", err)
			}
		}
	}
}

func (p *Pool) scanOrphans(ctx context.Context) error {
	cutoff := time.Now().Add(-p.config.OrphanThreshold)
	failed, err := p.queue.FailOrphans(ctx, cutoff)
	if err != nil {
		return err
	}

	p.orphanMu.Lock()
	p.lastOrphanScan = time.Now()
	p.orphansRecovered += len(failed)
	p.orphanMu.Unlock()

	if len(failed) > 0 {
		slog.Warn("Recovered orphaned workflows", "count", len(failed), "workflow_ids", failed)
	}
	return nil
}

// worker is one claim-and-execute loop.
type worker struct {
	id       string
	pool     *Pool
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu                 sync.RWMutex
	currentWorkflowID  string
	workflowsProcessed int
	lastActivity       time.Time
}

func (w *worker) start(ctx context.Context) {
	w.stopCh = make(chan struct{})
	w.lastActivity = time.Now()
	w.wg.Add(1)
	go w.run(ctx)
}

func (w *worker) stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.pool.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, errNoWorkflows) || errors.Is(err, errAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing workflow", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the duration or until stop is signalled.
func (w *worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a workflow, and runs it.
func (w *worker) pollAndProcess(ctx context.Context) error {
	// Best-effort capacity check; racy with sibling workers but bounded by
	// WorkerCount and absorbed by poll jitter.
	if w.pool.config.MaxConcurrent > 0 {
		active, err := w.pool.queue.ActiveCount(ctx, w.pool.podID)
		if err != nil {
			return fmt.Errorf("checking active workflows: %w", err)
		}
		if active >= w.pool.config.MaxConcurrent {
			return errAtCapacity
		}
	}

	wf, err := w.pool.queue.ClaimNext(ctx, w.pool.podID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return errNoWorkflows
		}
		return err
	}

	log := slog.With("workflow_id", wf.ID, "worker_id", w.id)
	log.Info("Workflow claimed", "network", wf.Network)

	w.setCurrent(wf.ID)
	defer w.setCurrent("")

	wfCtx, cancel := context.WithTimeout(ctx, w.pool.config.WorkflowTimeout)
	defer cancel()

	// Register for API-triggered cancellation on this pod.
	w.pool.register(wf.ID, cancel)
	defer w.pool.unregister(wf.ID)

	heartbeatCtx, stopHeartbeat := context.WithCancel(wfCtx)
	defer stopHeartbeat()
	go w.runHeartbeat(heartbeatCtx, wf.ID)

	// The executor owns terminal status writes; the worker only claims,
	// heartbeats, and reports.
	if err := w.pool.executor.Execute(wfCtx, wf); err != nil {
		log.Warn("Workflow finished with error", "error", err)
	}

	w.mu.Lock()
	w.workflowsProcessed++
	w.mu.Unlock()

	log.Info("Workflow processing complete")
	return nil
}

// runHeartbeat refreshes last_interaction_at so other pods' orphan scans
// leave this workflow alone.
func (w *worker) runHeartbeat(ctx context.Context, id string) {
	ticker := time.NewTicker(w.pool.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.pool.queue.Heartbeat(ctx, id); err != nil {
				slog.Warn("Heartbeat update failed", "workflow_id", id, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *worker) pollInterval() time.Duration {
	base := w.pool.config.PollInterval
	jitter := w.pool.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

func (w *worker) setCurrent(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.currentWorkflowID = id
	w.lastActivity = time.Now()
}
