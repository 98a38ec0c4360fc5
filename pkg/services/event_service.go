package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chainforge-ai/chainforge/ent"
	"github.com/chainforge-ai/chainforge/ent/event"
	"github.com/chainforge-ai/chainforge/ent/workflow"
	"github.com/chainforge-ai/chainforge/pkg/events"
)

// EventService is the durable side of the event bus: the persister appends
// every published event here, and WebSocket reconnects read the log back
// for catchup. Rows are append-only until the retention job prunes logs of
// long-terminal workflows.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// AppendEvent stores one event and returns its row id. Idempotent on the
// event UUID: a redelivered event resolves to the existing row's id.
// Implements the persister's store contract.
func (s *EventService) AppendEvent(ctx context.Context, evt events.Event) (int64, error) {
	if evt.ID == "" {
		return 0, NewValidationError("event_id", "required")
	}
	if evt.WorkflowID == "" {
		return 0, NewValidationError("workflow_id", "required")
	}

	payload, err := eventPayload(evt)
	if err != nil {
		return 0, err
	}

	id, err := s.client.Event.Create().
		SetEventID(evt.ID).
		SetEventType(evt.Type).
		SetWorkflowID(evt.WorkflowID).
		SetPayload(payload).
		SetSourceStage(evt.SourceStage).
		SetCreatedAt(evt.Timestamp).
		OnConflictColumns(event.FieldEventID).
		Ignore().
		ID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to append event %s: %w", evt.ID, err)
	}
	return id, nil
}

// GetCatchupEvents returns up to limit events of a workflow with row id
// greater than sinceID, in append order. Implements the connection
// manager's catchup contract.
func (s *EventService) GetCatchupEvents(ctx context.Context, workflowID string, sinceID int64, limit int) ([]events.CatchupEvent, error) {
	rows, err := s.client.Event.Query().
		Where(event.WorkflowIDEQ(workflowID), event.IDGT(sinceID)).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}

	out := make([]events.CatchupEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, events.CatchupEvent{ID: row.ID, Payload: row.Payload})
	}
	return out, nil
}

// CleanupExpiredEvents deletes event rows older than ttl whose workflow
// has reached a terminal state. Live workflows keep their full log so a
// reconnecting client can always catch up. Returns the number of rows
// removed. Safe to run from multiple pods.
func (s *EventService) CleanupExpiredEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	n, err := s.client.Event.Delete().
		Where(
			event.CreatedAtLT(cutoff),
			event.HasWorkflowWith(workflow.StatusIn(terminalStatuses...)),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired events: %w", err)
	}
	return n, nil
}

// eventPayload stores the full wire form so catchup replays exactly what
// the live channel delivered.
func eventPayload(evt events.Event) (map[string]any, error) {
	raw, err := evt.Marshal()
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to convert event payload: %w", err)
	}
	return payload, nil
}
