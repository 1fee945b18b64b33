package services

import (
	"context"
	"strings"

	"chatter-api/internal/domain/message"
	"chatter-api/internal/events"
	"chatter-api/internal/repository"
	chatter_errors "chatter-api/pkg/errors"
	"chatter-api/pkg/logger"
)

type MessageService struct {
	messageRepo repository.MessageRepository
	publisher   events.Publisher
	logger      *logger.Logger
}

func NewMessageService(messageRepo repository.MessageRepository, publisher events.Publisher, l *logger.Logger) *MessageService {
	return &MessageService{messageRepo: messageRepo, publisher: orNop(publisher), logger: orNopLogger(l)}
}

func (s *MessageService) CreateMessage(ctx context.Context, input message.Message) (message.Message, error) {
	if strings.TrimSpace(input.Message) == "" {
		return message.Message{}, chatter_errors.Validation("Message is required")
	}
	if strings.TrimSpace(input.SenderID) == "" {
		return message.Message{}, chatter_errors.Validation("Sender id is required")
	}
	if strings.TrimSpace(input.ReceiverID) == "" {
		return message.Message{}, chatter_errors.Validation("Receiver id is required")
	}

	input.DateCreated = now()
	if _, err := s.messageRepo.Create(ctx, &input); err != nil {
		return message.Message{}, err
	}
	publish(ctx, s.publisher, s.logger, events.EventTypeMessageCreated, events.AggregateMessage, input.ID, input)
	return input, nil
}

func (s *MessageService) GetAllMessagesReceived(ctx context.Context, receiverID string) (Outcome[[]message.WithSender], error) {
	msgs, err := s.messageRepo.Received(ctx, receiverID)
	if err != nil {
		return Outcome[[]message.WithSender]{}, err
	}
	if len(msgs) == 0 {
		return Notice[[]message.WithSender](NoticeNoMessages), nil
	}
	return Found(msgs), nil
}

// GetConvoOfReceiverSender returns both directions between the two ids,
// oldest first. Swapping the arguments yields the same messages.
func (s *MessageService) GetConvoOfReceiverSender(ctx context.Context, receiverID, senderID string) (Outcome[[]message.WithSender], error) {
	msgs, err := s.messageRepo.Conversation(ctx, receiverID, senderID)
	if err != nil {
		return Outcome[[]message.WithSender]{}, err
	}
	if len(msgs) == 0 {
		return Notice[[]message.WithSender](NoticeNoConversation), nil
	}
	return Found(msgs), nil
}

// DeleteSpecMessage removes one message and answers with what is left in
// the receiver's inbox.
func (s *MessageService) DeleteSpecMessage(ctx context.Context, messageID, receiverID string) (Outcome[[]message.WithSender], error) {
	n, err := s.messageRepo.Delete(ctx, messageID)
	if err != nil {
		return Outcome[[]message.WithSender]{}, err
	}
	if n == 0 {
		return Notice[[]message.WithSender](NoticeNoMessageDeleted), nil
	}
	publish(ctx, s.publisher, s.logger, events.EventTypeMessageDeleted, events.AggregateMessage, messageID, map[string]string{"id": messageID})
	return s.GetAllMessagesReceived(ctx, receiverID)
}

// DeleteConvoRecSen deletes what senderID sent to receiverID. Replies in the
// other direction are kept.
func (s *MessageService) DeleteConvoRecSen(ctx context.Context, receiverID, senderID string) (Outcome[Deleted], error) {
	n, err := s.messageRepo.DeleteFromSender(ctx, receiverID, senderID)
	if err != nil {
		return Outcome[Deleted]{}, err
	}
	if n == 0 {
		return Notice[Deleted](NoticeNothingDeleted), nil
	}
	publish(ctx, s.publisher, s.logger, events.EventTypeMessageDeleted, events.AggregateMessage, receiverID,
		map[string]any{"receiver_id": receiverID, "sender_id": senderID, "count": n})
	return Found(Deleted{Deleted: true}), nil
}
