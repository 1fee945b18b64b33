package mocks

import (
	"context"

	"chatter-api/internal/events"

	"github.com/stretchr/testify/mock"
)

type Publisher struct {
	mock.Mock
}

var _ events.Publisher = (*Publisher)(nil)

func (m *Publisher) Publish(ctx context.Context, eventType, aggregateType, aggregateID string, payload any) error {
	args := m.Called(ctx, eventType, aggregateType, aggregateID, payload)
	return args.Error(0)
}
