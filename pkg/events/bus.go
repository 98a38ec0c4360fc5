package events

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Handler is an in-process subscriber callback. Handlers run synchronously
// on the publisher's goroutine; failures are logged and isolated, never
// returned to the publisher.
type Handler func(ctx context.Context, evt Event)

// Message pairs a consumed event with its stream id for acking.
type Message struct {
	StreamID string
	Event    Event
}

// Config holds event bus tuning knobs.
type Config struct {
	// VisibilityTimeout is how long a consumed-but-unacked message stays
	// invisible before being redelivered to another consumer in the group.
	VisibilityTimeout time.Duration

	// ReadBlock bounds each XREADGROUP call so consumers notice context
	// cancellation promptly.
	ReadBlock time.Duration

	// ClaimInterval is how often a consumer scans for stale pending
	// messages from dead consumers.
	ClaimInterval time.Duration
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		VisibilityTimeout: 30 * time.Second,
		ReadBlock:         5 * time.Second,
		ClaimInterval:     15 * time.Second,
	}
}

// Bus is the event log. Publish appends to the Redis stream for the event's
// type and then fans out to in-process subscribers; Consume reads through a
// consumer group with explicit acks.
type Bus struct {
	rdb redis.UniversalClient
	cfg Config

	mu       sync.RWMutex
	handlers map[string][]Handler
	allTypes []Handler // subscribers to every type
}

// NewBus creates an event bus over an existing Redis client.
func NewBus(rdb redis.UniversalClient, cfg Config) *Bus {
	return &Bus{
		rdb:      rdb,
		cfg:      cfg,
		handlers: make(map[string][]Handler),
	}
}

// Publish appends the event to its type's stream and invokes in-process
// subscribers. Returns only after Redis acknowledges the append, so an
// event is visible to consumers once Publish returns. Subscriber errors
// and panics never propagate to the publisher.
func (b *Bus) Publish(ctx context.Context, evt Event) error {
	payload, err := evt.Marshal()
	if err != nil {
		return err
	}

	if err := b.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey(evt.Type),
		Values: map[string]any{"event": payload},
	}).Err(); err != nil {
		return err
	}

	b.fanOut(ctx, evt)
	return nil
}

// Subscribe registers an in-process handler for one event type. Within a
// type, handlers observe events in publish order.
func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
}

// SubscribeAll registers a handler invoked for every published event.
func (b *Bus) SubscribeAll(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.allTypes = append(b.allTypes, h)
}

func (b *Bus) fanOut(ctx context.Context, evt Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[evt.Type])+len(b.allTypes))
	handlers = append(handlers, b.handlers[evt.Type]...)
	handlers = append(handlers, b.allTypes...)
	b.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Event subscriber panicked",
						"event_type", evt.Type, "workflow_id", evt.WorkflowID, "panic", r)
				}
			}()
			h(ctx, evt)
		}()
	}
}

// Consume reads events of one type through a consumer group. The returned
// channel delivers messages until ctx is cancelled. Messages must be acked
// with Ack; unacked messages are redelivered (to any consumer in the group)
// after the visibility timeout. Delivery is at-least-once.
func (b *Bus) Consume(ctx context.Context, eventType, group, consumer string) (<-chan Message, error) {
	stream := StreamKey(eventType)

	// Create the group at the start of the stream so consumers see events
	// published before the group existed. BUSYGROUP means it already exists.
	err := b.rdb.XGroupCreateMkStream(ctx, stream, group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return nil, err
	}

	out := make(chan Message)
	go b.consumeLoop(ctx, stream, group, consumer, out)
	return out, nil
}

func (b *Bus) consumeLoop(ctx context.Context, stream, group, consumer string, out chan<- Message) {
	defer close(out)

	lastClaim := time.Now()
	for {
		if ctx.Err() != nil {
			return
		}

		// Periodically reclaim messages whose consumer died mid-flight.
		if time.Since(lastClaim) >= b.cfg.ClaimInterval {
			b.claimStale(ctx, stream, group, consumer, out)
			lastClaim = time.Now()
		}

		res, err := b.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    group,
			Consumer: consumer,
			Streams:  []string{stream, ">"},
			Count:    16,
			Block:    b.cfg.ReadBlock,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			slog.Warn("Event consumer read failed",
				"stream", stream, "group", group, "error", err)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}

		for _, str := range res {
			b.deliver(ctx, str.Messages, out)
		}
	}
}

// claimStale transfers messages pending longer than the visibility timeout
// to this consumer and redelivers them.
func (b *Bus) claimStale(ctx context.Context, stream, group, consumer string, out chan<- Message) {
	msgs, _, err := b.rdb.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   stream,
		Group:    group,
		Consumer: consumer,
		MinIdle:  b.cfg.VisibilityTimeout,
		Start:    "0-0",
		Count:    16,
	}).Result()
	if err != nil {
		if ctx.Err() == nil {
			slog.Warn("Event consumer claim failed",
				"stream", stream, "group", group, "error", err)
		}
		return
	}
	b.deliver(ctx, msgs, out)
}

func (b *Bus) deliver(ctx context.Context, msgs []redis.XMessage, out chan<- Message) {
	for _, msg := range msgs {
		raw, ok := msg.Values["event"].(string)
		if !ok {
			slog.Warn("Skipping malformed stream entry", "stream_id", msg.ID)
			continue
		}
		evt, err := Unmarshal([]byte(raw))
		if err != nil {
			slog.Warn("Skipping undecodable stream entry", "stream_id", msg.ID, "error", err)
			continue
		}
		select {
		case out <- Message{StreamID: msg.ID, Event: evt}:
		case <-ctx.Done():
			return
		}
	}
}

// Ack acknowledges a consumed message so the group never redelivers it.
func (b *Bus) Ack(ctx context.Context, eventType, group, streamID string) error {
	return b.rdb.XAck(ctx, StreamKey(eventType), group, streamID).Err()
}

// Health pings the underlying Redis connection.
func (b *Bus) Health(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}
