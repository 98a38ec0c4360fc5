package events

import (
	"context"
	"log/slog"
	"sync"
)

// EventStore appends published events to the durable event table.
// Implemented by services.EventService. Append must be idempotent on the
// event UUID: consumer groups deliver at-least-once.
type EventStore interface {
	AppendEvent(ctx context.Context, evt Event) (int64, error)
}

// Persister consumes every event type through a shared consumer group and
// appends each event to Postgres. The table is the WebSocket catch-up
// source and the durable audit trail. One group across all pods, so each
// event is persisted once (modulo redelivery, absorbed by the UUID
// constraint).
type Persister struct {
	bus   *Bus
	store EventStore
	pod   string
}

// NewPersister creates a persister identified by this pod's id.
func NewPersister(bus *Bus, store EventStore, podID string) *Persister {
	return &Persister{bus: bus, store: store, pod: podID}
}

// Start launches one consumer per event type. Consumers stop when ctx is
// cancelled; the WaitGroup lets callers drain on shutdown.
func (p *Persister) Start(ctx context.Context, wg *sync.WaitGroup) error {
	const group = "persist"
	for _, eventType := range AllTypes {
		msgs, err := p.bus.Consume(ctx, eventType, group, p.pod)
		if err != nil {
			return err
		}
		wg.Add(1)
		go func(eventType string, msgs <-chan Message) {
			defer wg.Done()
			for msg := range msgs {
				if _, err := p.store.AppendEvent(ctx, msg.Event); err != nil {
					// Leave unacked so the group redelivers after the
					// visibility timeout.
					slog.Error("Failed to persist event",
						"event_type", eventType, "workflow_id", msg.Event.WorkflowID, "error", err)
					continue
				}
				if err := p.bus.Ack(ctx, eventType, group, msg.StreamID); err != nil && ctx.Err() == nil {
					slog.Warn("Failed to ack persisted event",
						"event_type", eventType, "stream_id", msg.StreamID, "error", err)
				}
			}
		}(eventType, msgs)
	}
	return nil
}

// ChannelBroadcaster receives relayed events for local WebSocket clients.
// Implemented by ConnectionManager.
type ChannelBroadcaster interface {
	Broadcast(channel string, event []byte)
	CloseChannel(channel string)
}

// StreamRelay consumes every event type through a per-pod consumer group
// and fans events out to this pod's WebSocket clients. Every pod sees every
// event, so a client may connect to any replica.
type StreamRelay struct {
	bus     *Bus
	manager ChannelBroadcaster
	pod     string
}

// NewStreamRelay creates a relay feeding the given connection manager.
func NewStreamRelay(bus *Bus, manager ChannelBroadcaster, podID string) *StreamRelay {
	return &StreamRelay{bus: bus, manager: manager, pod: podID}
}

// Start launches one consumer per event type.
func (r *StreamRelay) Start(ctx context.Context, wg *sync.WaitGroup) error {
	group := "ws:" + r.pod
	for _, eventType := range AllTypes {
		msgs, err := r.bus.Consume(ctx, eventType, group, r.pod)
		if err != nil {
			return err
		}
		wg.Add(1)
		go func(eventType string, msgs <-chan Message) {
			defer wg.Done()
			for msg := range msgs {
				r.handle(ctx, msg.Event)
				if err := r.bus.Ack(ctx, eventType, group, msg.StreamID); err != nil && ctx.Err() == nil {
					slog.Warn("Failed to ack relayed event",
						"event_type", eventType, "stream_id", msg.StreamID, "error", err)
				}
			}
		}(eventType, msgs)
	}
	return nil
}

func (r *StreamRelay) handle(_ context.Context, evt Event) {
	payload, err := evt.Marshal()
	if err != nil {
		slog.Warn("Failed to marshal event for WebSocket delivery",
			"event_type", evt.Type, "workflow_id", evt.WorkflowID, "error", err)
		return
	}

	channel := WorkflowChannel(evt.WorkflowID)
	r.manager.Broadcast(channel, payload)

	// The per-workflow stream ends at the terminal event.
	if IsTerminal(evt.Type) {
		r.manager.CloseChannel(channel)
	}
}
