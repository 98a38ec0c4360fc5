package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/pkg/events"
	"github.com/chainforge-ai/chainforge/pkg/services"
	testdb "github.com/chainforge-ai/chainforge/test/database"
)

func TestEventAppendIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	workflows := services.NewWorkflowService(client.Client)
	svc := services.NewEventService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, workflows)
	evt := events.New(events.EventTypeWorkflowCreated, wf.ID, "", map[string]any{"status": "created"})

	first, err := svc.AppendEvent(ctx, evt)
	require.NoError(t, err)

	// A redelivered message resolves to the same row.
	second, err := svc.AppendEvent(ctx, evt)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	count, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEventAppendValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewEventService(client.Client)
	ctx := context.Background()

	_, err := svc.AppendEvent(ctx, events.Event{WorkflowID: "wf-1", Type: events.EventTypeWorkflowCreated})
	assert.True(t, services.IsValidationError(err))

	_, err = svc.AppendEvent(ctx, events.Event{ID: "some-uuid", Type: events.EventTypeWorkflowCreated})
	assert.True(t, services.IsValidationError(err))
}

func TestEventCatchup(t *testing.T) {
	client := testdb.NewTestClient(t)
	workflows := services.NewWorkflowService(client.Client)
	svc := services.NewEventService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, workflows)
	other := createTestWorkflow(t, workflows)

	var ids []int64
	for _, eventType := range []string{
		events.EventTypeWorkflowCreated,
		events.EventTypeGenerationStarted,
		events.EventTypeGenerationCompleted,
	} {
		id, err := svc.AppendEvent(ctx, events.New(eventType, wf.ID, "generation", map[string]any{}))
		require.NoError(t, err)
		ids = append(ids, id)
	}
	_, err := svc.AppendEvent(ctx, events.New(events.EventTypeWorkflowCreated, other.ID, "", map[string]any{}))
	require.NoError(t, err)

	t.Run("full replay in append order", func(t *testing.T) {
		got, err := svc.GetCatchupEvents(ctx, wf.ID, 0, 100)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, ids[0], got[0].ID)
		assert.Equal(t, ids[2], got[2].ID)
		assert.Equal(t, events.EventTypeWorkflowCreated, got[0].Payload["type"])
	})

	t.Run("cursor resumes after sinceID", func(t *testing.T) {
		got, err := svc.GetCatchupEvents(ctx, wf.ID, ids[0], 100)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, ids[1], got[0].ID)
	})

	t.Run("limit caps the page", func(t *testing.T) {
		got, err := svc.GetCatchupEvents(ctx, wf.ID, 0, 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestEventCleanupExpired(t *testing.T) {
	client := testdb.NewTestClient(t)
	workflows := services.NewWorkflowService(client.Client)
	svc := services.NewEventService(client.Client)
	ctx := context.Background()

	appendAged := func(workflowID string, age time.Duration) {
		evt := events.New(events.EventTypeWorkflowCreated, workflowID, "", map[string]any{})
		evt.Timestamp = time.Now().Add(-age)
		_, err := svc.AppendEvent(ctx, evt)
		require.NoError(t, err)
	}

	done := createTestWorkflow(t, workflows)
	appendAged(done.ID, 48*time.Hour)
	appendAged(done.ID, time.Minute)
	require.NoError(t, workflows.MarkCompleted(ctx, done.ID, nil))

	running := createTestWorkflow(t, workflows)
	appendAged(running.ID, 48*time.Hour)

	deleted, err := svc.CleanupExpiredEvents(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted, "only the terminal workflow's aged event goes")

	remaining, err := svc.GetCatchupEvents(ctx, done.ID, 0, 100)
	require.NoError(t, err)
	assert.Len(t, remaining, 1, "recent events survive")

	kept, err := svc.GetCatchupEvents(ctx, running.ID, 0, 100)
	require.NoError(t, err)
	assert.Len(t, kept, 1, "live workflows keep their full log")
}
