package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu      sync.Mutex
	nextID  int64
	rows    map[string]int64 // event UUID -> row id
	failing bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: make(map[string]int64)}
}

func (s *memoryStore) AppendEvent(_ context.Context, evt Event) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return 0, errors.New("connection refused")
	}
	if id, ok := s.rows[evt.ID]; ok {
		return id, nil
	}
	s.nextID++
	s.rows[evt.ID] = s.nextID
	return s.nextID, nil
}

func (s *memoryStore) setFailing(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = v
}

func (s *memoryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition never held")
}

func TestPersisterAppendsPublishedEvents(t *testing.T) {
	bus, _ := newTestBus(t)
	store := newMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	require.NoError(t, NewPersister(bus, store, "pod-a").Start(ctx, &wg))

	require.NoError(t, bus.Publish(ctx, New(EventTypeWorkflowCreated, "wf-1", "", nil)))
	require.NoError(t, bus.Publish(ctx, New(EventTypeGenerationStarted, "wf-1", "generation", nil)))

	waitFor(t, 2*time.Second, func() bool { return store.count() == 2 })
}

func TestPersisterRetriesAfterStoreOutage(t *testing.T) {
	bus, mr := newTestBus(t)
	store := newMemoryStore()
	store.setFailing(true)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	require.NoError(t, NewPersister(bus, store, "pod-a").Start(ctx, &wg))

	require.NoError(t, bus.Publish(ctx, New(EventTypeWorkflowFailed, "wf-1", "", nil)))

	// The append failed, so the message stays unacked. Once the store is
	// back and the visibility timeout passes, the group redelivers it.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, store.count())
	store.setFailing(false)
	mr.FastForward(time.Second)

	waitFor(t, 3*time.Second, func() bool { return store.count() == 1 })
}

type recordingBroadcaster struct {
	mu        sync.Mutex
	broadcast map[string][][]byte
	closed    []string
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{broadcast: make(map[string][][]byte)}
}

func (b *recordingBroadcaster) Broadcast(channel string, event []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.broadcast[channel] = append(b.broadcast[channel], event)
}

func (b *recordingBroadcaster) CloseChannel(channel string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = append(b.closed, channel)
}

func (b *recordingBroadcaster) events(channel string) [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([][]byte(nil), b.broadcast[channel]...)
}

func (b *recordingBroadcaster) closedChannels() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.closed...)
}

func TestStreamRelayDeliversToWorkflowChannel(t *testing.T) {
	bus, _ := newTestBus(t)
	sink := newRecordingBroadcaster()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	require.NoError(t, NewStreamRelay(bus, sink, "pod-a").Start(ctx, &wg))

	require.NoError(t, bus.Publish(ctx, New(EventTypeDeploymentConfirmed, "wf-1", "deployment", map[string]any{
		"address": "0x1111111111111111111111111111111111111111",
	})))

	channel := WorkflowChannel("wf-1")
	waitFor(t, 2*time.Second, func() bool { return len(sink.events(channel)) == 1 })

	evt, err := Unmarshal(sink.events(channel)[0])
	require.NoError(t, err)
	assert.Equal(t, EventTypeDeploymentConfirmed, evt.Type)
	assert.Equal(t, "wf-1", evt.WorkflowID)
	assert.Empty(t, sink.closedChannels())
}

func TestStreamRelayClosesChannelOnTerminalEvent(t *testing.T) {
	bus, _ := newTestBus(t)
	sink := newRecordingBroadcaster()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	require.NoError(t, NewStreamRelay(bus, sink, "pod-a").Start(ctx, &wg))

	require.NoError(t, bus.Publish(ctx, New(EventTypeWorkflowCompleted, "wf-1", "", nil)))

	channel := WorkflowChannel("wf-1")
	waitFor(t, 2*time.Second, func() bool { return len(sink.closedChannels()) == 1 })

	// The terminal event itself is still delivered before the close.
	require.Len(t, sink.events(channel), 1)
	assert.Equal(t, []string{channel}, sink.closedChannels())
}
