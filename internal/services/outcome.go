package services

import (
	"context"
	"time"

	"chatter-api/internal/events"
	"chatter-api/pkg/logger"
)

// Informational notices. They are successful responses, not errors.
const (
	NoticeNoUser           = "No user found"
	NoticeNoUsers          = "No users found"
	NoticeNoMessages       = "No messages found"
	NoticeNoConversation   = "No conversation found"
	NoticeNoMessageDeleted = "No message was deleted"
	NoticeNothingDeleted   = "No messages were deleted"
	WarningNoUsers         = "No users exist yet; the group was created anyway"
)

// Outcome carries either Data or, when the lookup came back empty, a Notice
// for the caller to show instead.
type Outcome[T any] struct {
	Data   T
	Notice string
}

func Found[T any](data T) Outcome[T] {
	return Outcome[T]{Data: data}
}

func Notice[T any](notice string) Outcome[T] {
	return Outcome[T]{Notice: notice}
}

func (o Outcome[T]) HasNotice() bool {
	return o.Notice != ""
}

// Deleted is the acknowledgement body of delete operations.
type Deleted struct {
	Deleted bool `json:"deleted"`
}

var now = func() time.Time {
	return time.Now().UTC()
}

// publish sends an event and only logs when the broker is unavailable.
func publish(ctx context.Context, p events.Publisher, l *logger.Logger, eventType, aggregateType, aggregateID string, payload any) {
	if err := p.Publish(ctx, eventType, aggregateType, aggregateID, payload); err != nil {
		l.WithContext(ctx).Warnf("event %s for %s not published: %s", eventType, aggregateID, err)
	}
}

func orNop(p events.Publisher) events.Publisher {
	if p == nil {
		return events.NopPublisher{}
	}
	return p
}

func orNopLogger(l *logger.Logger) *logger.Logger {
	if l == nil {
		return logger.NewNop()
	}
	return l
}
