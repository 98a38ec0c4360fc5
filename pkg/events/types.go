// Package events provides the workflow event bus: a partitioned append-only
// log over Redis Streams with in-process fan-out, plus WebSocket delivery to
// external streaming clients.
//
// Each event type is its own partition (stream "events:<type>"). Within one
// type, delivery order matches publish order; no ordering holds across types.
// Consumer groups give at-least-once delivery with explicit acks; unacked
// messages are redelivered after the visibility timeout.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Workflow lifecycle event types.
const (
	EventTypeWorkflowCreated   = "workflow.created"
	EventTypeWorkflowStarted   = "workflow.started"
	EventTypeWorkflowCompleted = "workflow.completed"
	EventTypeWorkflowFailed    = "workflow.failed"
	EventTypeWorkflowCancelled = "workflow.cancelled"
)

// Stage lifecycle event types. Deployment uses "confirmed" rather than
// "completed": success means an on-chain receipt, not just stage exit.
const (
	EventTypeGenerationStarted   = "generation.started"
	EventTypeGenerationCompleted = "generation.completed"
	EventTypeGenerationFailed    = "generation.failed"

	EventTypeCompilationStarted   = "compilation.started"
	EventTypeCompilationCompleted = "compilation.completed"
	EventTypeCompilationFailed    = "compilation.failed"

	EventTypeAuditStarted   = "audit.started"
	EventTypeAuditCompleted = "audit.completed"
	EventTypeAuditFailed    = "audit.failed"

	EventTypeTestingStarted   = "testing.started"
	EventTypeTestingCompleted = "testing.completed"
	EventTypeTestingFailed    = "testing.failed"

	EventTypeDeploymentStarted   = "deployment.started"
	EventTypeDeploymentConfirmed = "deployment.confirmed"
	EventTypeDeploymentFailed    = "deployment.failed"
)

// AllTypes is the closed set of event types, one stream partition each.
var AllTypes = []string{
	EventTypeWorkflowCreated,
	EventTypeWorkflowStarted,
	EventTypeWorkflowCompleted,
	EventTypeWorkflowFailed,
	EventTypeWorkflowCancelled,
	EventTypeGenerationStarted,
	EventTypeGenerationCompleted,
	EventTypeGenerationFailed,
	EventTypeCompilationStarted,
	EventTypeCompilationCompleted,
	EventTypeCompilationFailed,
	EventTypeAuditStarted,
	EventTypeAuditCompleted,
	EventTypeAuditFailed,
	EventTypeTestingStarted,
	EventTypeTestingCompleted,
	EventTypeTestingFailed,
	EventTypeDeploymentStarted,
	EventTypeDeploymentConfirmed,
	EventTypeDeploymentFailed,
}

// IsTerminal reports whether an event type ends a workflow's event stream.
// WebSocket channels close after delivering a terminal event.
func IsTerminal(eventType string) bool {
	switch eventType {
	case EventTypeWorkflowCompleted, EventTypeWorkflowFailed, EventTypeWorkflowCancelled:
		return true
	}
	return false
}

// StreamKey returns the Redis stream key for an event type.
func StreamKey(eventType string) string {
	return "events:" + eventType
}

// WorkflowChannel returns the WebSocket channel name for a workflow's events.
// Format: "workflow:{workflow_id}"
func WorkflowChannel(workflowID string) string {
	return "workflow:" + workflowID
}

// Event is the wire format shared by the Redis log, the Postgres event
// table, and WebSocket delivery.
type Event struct {
	ID          string         `json:"id"` // event UUID, assigned at publish
	Type        string         `json:"type"`
	WorkflowID  string         `json:"workflow_id"`
	Timestamp   time.Time      `json:"timestamp"` // RFC 3339
	Data        map[string]any `json:"data,omitempty"`
	SourceStage string         `json:"source_agent,omitempty"` // producing stage name
}

// New builds an event with a fresh UUID and the current timestamp.
func New(eventType, workflowID, sourceStage string, data map[string]any) Event {
	return Event{
		ID:          uuid.New().String(),
		Type:        eventType,
		WorkflowID:  workflowID,
		Timestamp:   time.Now().UTC(),
		Data:        data,
		SourceStage: sourceStage,
	}
}

// Marshal encodes the event as JSON.
func (e Event) Marshal() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event %s: %w", e.Type, err)
	}
	return data, nil
}

// Unmarshal decodes an event from JSON.
func Unmarshal(data []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return Event{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return e, nil
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "workflow:abc-123")
	LastEventID *int64 `json:"last_event_id,omitempty"` // For catchup
}
