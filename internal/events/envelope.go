package events

import (
	"encoding/json"
	"time"
)

// Envelope is the wire form of every published event.
type Envelope struct {
	ID            string          `json:"id"`
	EventType     string          `json:"event_type"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// Channel groups events by aggregate, e.g. "events:message". Subscribers
// filter on AggregateID themselves.
func (e Envelope) Channel() string {
	return "events:" + e.AggregateType
}
