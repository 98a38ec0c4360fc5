package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// PoolHealth is the worker pool section of the detailed health report.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveWorkflows  int            `json:"active_workflows"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth describes one worker.
type WorkerHealth struct {
	ID                 string    `json:"id"`
	Status             string    `json:"status"` // idle or working
	CurrentWorkflowID  string    `json:"current_workflow_id,omitempty"`
	WorkflowsProcessed int       `json:"workflows_processed"`
	LastActivity       time.Time `json:"last_activity"`
}

// Health reports the pool's current state. DB errors degrade the report
// rather than failing it.
func (p *Pool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.queue.QueueDepth(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "pod_id", p.podID, "error", errQ)
	}
	activeWorkflows, errA := p.queue.ActiveCount(ctx, p.podID)
	if errA != nil {
		slog.Error("Failed to query active workflows for health check", "pod_id", p.podID, "error", errA)
	}

	stats := make([]WorkerHealth, len(p.workers))
	for i, w := range p.workers {
		stats[i] = w.health()
	}

	dbHealthy := errQ == nil && errA == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	} else if errA != nil {
		dbError = fmt.Sprintf("active workflows query failed: %v", errA)
	}

	withinCapacity := p.config.MaxConcurrent <= 0 || activeWorkflows <= p.config.MaxConcurrent

	p.orphanMu.Lock()
	lastScan := p.lastOrphanScan
	recovered := p.orphansRecovered
	p.orphanMu.Unlock()

	return &PoolHealth{
		IsHealthy:        len(p.workers) > 0 && dbHealthy && withinCapacity,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		TotalWorkers:     len(p.workers),
		ActiveWorkflows:  activeWorkflows,
		MaxConcurrent:    p.config.MaxConcurrent,
		QueueDepth:       queueDepth,
		WorkerStats:      stats,
		LastOrphanScan:   lastScan,
		OrphansRecovered: recovered,
	}
}

func (w *worker) health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()

	status := "idle"
	if w.currentWorkflowID != "" {
		status = "working"
	}
	return WorkerHealth{
		ID:                 w.id,
		Status:             status,
		CurrentWorkflowID:  w.currentWorkflowID,
		WorkflowsProcessed: w.workflowsProcessed,
		LastActivity:       w.lastActivity,
	}
}
