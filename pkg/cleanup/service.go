// Package cleanup enforces the event log retention policy.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/chainforge-ai/chainforge/pkg/config"
)

// EventPruner deletes expired event rows. Implemented by
// services.EventService.
type EventPruner interface {
	CleanupExpiredEvents(ctx context.Context, ttl time.Duration) (int, error)
}

// Service periodically prunes event logs of workflows that have been in a
// terminal state longer than the configured TTL. Deletes are idempotent and
// safe to run from multiple pods.
type Service struct {
	config config.RetentionConfig
	events EventPruner

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention service.
func NewService(cfg config.RetentionConfig, events EventPruner) *Service {
	return &Service{config: cfg, events: events}
}

// Start launches the background retention loop. One sweep runs immediately.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"event_ttl", s.config.EventTTL, "interval", s.config.Interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	count, err := s.events.CleanupExpiredEvents(ctx, s.config.EventTTL)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("Retention: event cleanup failed", "error", err)
		}
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned expired events", "count", count)
	}
}
