package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) (*Bus, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := DefaultConfig()
	cfg.VisibilityTimeout = 50 * time.Millisecond
	cfg.ReadBlock = 20 * time.Millisecond
	cfg.ClaimInterval = 30 * time.Millisecond
	return NewBus(rdb, cfg), mr
}

func TestPublishAppendsToTypeStream(t *testing.T) {
	bus, mr := newTestBus(t)
	ctx := context.Background()

	evt := New(EventTypeWorkflowCreated, "wf-1", "", map[string]any{"status": "created"})
	require.NoError(t, bus.Publish(ctx, evt))

	assert.Equal(t, 1, len(mr.Keys()))
	assert.True(t, mr.Exists(StreamKey(EventTypeWorkflowCreated)))
}

func TestPublishInvokesSubscribersInOrder(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx := context.Background()

	var mu sync.Mutex
	var seen []string
	bus.Subscribe(EventTypeGenerationCompleted, func(_ context.Context, evt Event) {
		mu.Lock()
		seen = append(seen, evt.WorkflowID)
		mu.Unlock()
	})

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, bus.Publish(ctx, New(EventTypeGenerationCompleted, id, "generation", nil)))
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestSubscriberPanicIsolated(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx := context.Background()

	called := false
	bus.Subscribe(EventTypeWorkflowFailed, func(context.Context, Event) {
		panic("subscriber bug")
	})
	bus.Subscribe(EventTypeWorkflowFailed, func(context.Context, Event) {
		called = true
	})

	// Publish succeeds and the second subscriber still runs.
	require.NoError(t, bus.Publish(ctx, New(EventTypeWorkflowFailed, "wf-1", "", nil)))
	assert.True(t, called)
}

func TestSubscribeAllSeesEveryType(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx := context.Background()

	var mu sync.Mutex
	var types []string
	bus.SubscribeAll(func(_ context.Context, evt Event) {
		mu.Lock()
		types = append(types, evt.Type)
		mu.Unlock()
	})

	require.NoError(t, bus.Publish(ctx, New(EventTypeWorkflowCreated, "wf-1", "", nil)))
	require.NoError(t, bus.Publish(ctx, New(EventTypeDeploymentConfirmed, "wf-1", "deployment", nil)))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{EventTypeWorkflowCreated, EventTypeDeploymentConfirmed}, types)
}

func TestConsumeDeliversInPublishOrder(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, id := range []string{"wf-1", "wf-2", "wf-3"} {
		require.NoError(t, bus.Publish(ctx, New(EventTypeAuditCompleted, id, "audit", nil)))
	}

	msgs, err := bus.Consume(ctx, EventTypeAuditCompleted, "testgroup", "c1")
	require.NoError(t, err)

	var got []string
	for i := 0; i < 3; i++ {
		select {
		case msg := <-msgs:
			got = append(got, msg.Event.WorkflowID)
			require.NoError(t, bus.Ack(ctx, EventTypeAuditCompleted, "testgroup", msg.StreamID))
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for message %d", i)
		}
	}
	assert.Equal(t, []string{"wf-1", "wf-2", "wf-3"}, got)
}

func TestConsumeSeesEventsPublishedBeforeGroupExisted(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, bus.Publish(ctx, New(EventTypeTestingCompleted, "early", "testing", nil)))

	msgs, err := bus.Consume(ctx, EventTypeTestingCompleted, "lategroup", "c1")
	require.NoError(t, err)

	select {
	case msg := <-msgs:
		assert.Equal(t, "early", msg.Event.WorkflowID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for pre-group event")
	}
}

func TestUnackedMessageRedelivered(t *testing.T) {
	bus, mr := newTestBus(t)

	// First consumer reads but never acks, then goes away.
	ctx1, cancel1 := context.WithCancel(context.Background())
	require.NoError(t, bus.Publish(ctx1, New(EventTypeDeploymentFailed, "wf-1", "deployment", nil)))

	msgs1, err := bus.Consume(ctx1, EventTypeDeploymentFailed, "g", "dead-consumer")
	require.NoError(t, err)
	select {
	case <-msgs1:
	case <-time.After(2 * time.Second):
		t.Fatal("first consumer never received the message")
	}
	cancel1()

	// Advance idle time past the visibility timeout so XAUTOCLAIM fires.
	mr.FastForward(time.Second)

	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	msgs2, err := bus.Consume(ctx2, EventTypeDeploymentFailed, "g", "live-consumer")
	require.NoError(t, err)

	select {
	case msg := <-msgs2:
		assert.Equal(t, "wf-1", msg.Event.WorkflowID)
		require.NoError(t, bus.Ack(ctx2, EventTypeDeploymentFailed, "g", msg.StreamID))
	case <-time.After(3 * time.Second):
		t.Fatal("unacked message was never redelivered")
	}
}

func TestAckedMessageNotRedelivered(t *testing.T) {
	bus, mr := newTestBus(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, bus.Publish(ctx, New(EventTypeCompilationCompleted, "wf-1", "compilation", nil)))

	msgs, err := bus.Consume(ctx, EventTypeCompilationCompleted, "g", "c1")
	require.NoError(t, err)

	select {
	case msg := <-msgs:
		require.NoError(t, bus.Ack(ctx, EventTypeCompilationCompleted, "g", msg.StreamID))
	case <-time.After(2 * time.Second):
		t.Fatal("message never delivered")
	}

	mr.FastForward(time.Second)

	select {
	case msg := <-msgs:
		t.Fatalf("acked message redelivered: %v", msg.Event)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestEventRoundTrip(t *testing.T) {
	evt := New(EventTypeWorkflowCompleted, "wf-9", "deployment", map[string]any{
		"status":   "completed",
		"progress": float64(100),
	})

	raw, err := evt.Marshal()
	require.NoError(t, err)

	got, err := Unmarshal(raw)
	require.NoError(t, err)
	assert.Equal(t, evt.ID, got.ID)
	assert.Equal(t, evt.Type, got.Type)
	assert.Equal(t, evt.WorkflowID, got.WorkflowID)
	assert.Equal(t, evt.Data, got.Data)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(EventTypeWorkflowCompleted))
	assert.True(t, IsTerminal(EventTypeWorkflowFailed))
	assert.True(t, IsTerminal(EventTypeWorkflowCancelled))
	assert.False(t, IsTerminal(EventTypeWorkflowStarted))
	assert.False(t, IsTerminal(EventTypeDeploymentConfirmed))
}
