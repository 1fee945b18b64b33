package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Publisher announces domain events. Implementations must not block a
// request for long; callers treat failures as non-fatal.
type Publisher interface {
	Publish(ctx context.Context, eventType, aggregateType, aggregateID string, payload any) error
}

// Broker delivers raw payloads to a named channel. *redis.Broker satisfies it.
type Broker interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// BrokerPublisher wraps events in an Envelope and hands them to a Broker.
type BrokerPublisher struct {
	broker Broker
	now    func() time.Time
	newID  func() string
}

func NewBrokerPublisher(broker Broker) *BrokerPublisher {
	return &BrokerPublisher{broker: broker, now: time.Now, newID: uuid.NewString}
}

func (p *BrokerPublisher) Publish(ctx context.Context, eventType, aggregateType, aggregateID string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	env := Envelope{
		ID:            p.newID(),
		EventType:     eventType,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		OccurredAt:    p.now().UTC(),
		Payload:       body,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	if err := p.broker.Publish(ctx, env.Channel(), data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}
	return nil
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, string, any) error {
	return nil
}
