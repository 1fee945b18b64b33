package services

import (
	"context"
	"testing"
	"time"

	"chatter-api/internal/domain/message"
	"chatter-api/internal/domain/user"
	"chatter-api/internal/mocks"
	chatter_errors "chatter-api/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMessageService() (*MessageService, *mocks.MessageRepository) {
	repo := &mocks.MessageRepository{}
	return NewMessageService(repo, nil, nil), repo
}

func TestMessageService_CreateMessage_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input message.Message
		want  string
	}{
		{"missing message", message.Message{SenderID: "u1", ReceiverID: "u2"}, "Message is required"},
		{"missing sender", message.Message{Message: "hi", ReceiverID: "u2"}, "Sender id is required"},
		{"missing receiver", message.Message{Message: "hi", SenderID: "u1"}, "Receiver id is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newMessageService()

			_, err := svc.CreateMessage(context.Background(), tt.input)

			assert.ErrorIs(t, err, chatter_errors.ErrValidation)
			assert.Equal(t, tt.want, err.Error())
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestMessageService_CreateMessage(t *testing.T) {
	fixed := fixClock(t)
	svc, repo := newMessageService()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*message.Message")).Return("m1", nil)

	created, err := svc.CreateMessage(context.Background(), message.Message{Message: "hi", SenderID: "u1", ReceiverID: "u2"})

	require.NoError(t, err)
	assert.Equal(t, "m1", created.ID)
	assert.Equal(t, fixed, created.DateCreated)
}

func TestMessageService_GetAllMessagesReceived(t *testing.T) {
	svc, repo := newMessageService()
	sender := &user.User{ID: "u1", Email: "a@x.com"}
	repo.On("Received", mock.Anything, "u2").
		Return([]message.WithSender{{Message: message.Message{ID: "m1", SenderID: "u1", ReceiverID: "u2"}, Sender: sender}}, nil)
	repo.On("Received", mock.Anything, "lonely").Return([]message.WithSender{}, nil)

	out, err := svc.GetAllMessagesReceived(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "a@x.com", out.Data[0].Sender.Email)

	empty, err := svc.GetAllMessagesReceived(context.Background(), "lonely")
	require.NoError(t, err)
	assert.Equal(t, NoticeNoMessages, empty.Notice)
}

func TestMessageService_GetConvoOfReceiverSender(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	convo := []message.WithSender{
		{Message: message.Message{ID: "m1", SenderID: "a", ReceiverID: "b", DateCreated: t0}},
		{Message: message.Message{ID: "m2", SenderID: "b", ReceiverID: "a", DateCreated: t0.Add(time.Minute)}},
	}

	svc, repo := newMessageService()
	repo.On("Conversation", mock.Anything, "a", "b").Return(convo, nil)
	repo.On("Conversation", mock.Anything, "b", "a").Return(convo, nil)
	repo.On("Conversation", mock.Anything, "a", "z").Return([]message.WithSender{}, nil)

	ab, err := svc.GetConvoOfReceiverSender(context.Background(), "a", "b")
	require.NoError(t, err)
	ba, err := svc.GetConvoOfReceiverSender(context.Background(), "b", "a")
	require.NoError(t, err)
	assert.Equal(t, ab.Data, ba.Data)

	none, err := svc.GetConvoOfReceiverSender(context.Background(), "a", "z")
	require.NoError(t, err)
	assert.Equal(t, NoticeNoConversation, none.Notice)
}

func TestMessageService_DeleteSpecMessage(t *testing.T) {
	t.Run("nothing deleted", func(t *testing.T) {
		svc, repo := newMessageService()
		repo.On("Delete", mock.Anything, "m404").Return(int64(0), nil)

		out, err := svc.DeleteSpecMessage(context.Background(), "m404", "u2")
		require.NoError(t, err)
		assert.Equal(t, NoticeNoMessageDeleted, out.Notice)
		repo.AssertNotCalled(t, "Received", mock.Anything, mock.Anything)
	})

	t.Run("returns remaining inbox", func(t *testing.T) {
		svc, repo := newMessageService()
		repo.On("Delete", mock.Anything, "m1").Return(int64(1), nil)
		repo.On("Received", mock.Anything, "u2").
			Return([]message.WithSender{{Message: message.Message{ID: "m2", ReceiverID: "u2"}}}, nil)

		out, err := svc.DeleteSpecMessage(context.Background(), "m1", "u2")
		require.NoError(t, err)
		require.Len(t, out.Data, 1)
		assert.Equal(t, "m2", out.Data[0].ID)
	})
}

func TestMessageService_DeleteConvoRecSen_OneDirectionOnly(t *testing.T) {
	svc, repo := newMessageService()
	repo.On("DeleteFromSender", mock.Anything, "u2", "u1").Return(int64(2), nil).Once()
	repo.On("DeleteFromSender", mock.Anything, "u2", "u9").Return(int64(0), nil).Once()

	out, err := svc.DeleteConvoRecSen(context.Background(), "u2", "u1")
	require.NoError(t, err)
	assert.True(t, out.Data.Deleted)

	none, err := svc.DeleteConvoRecSen(context.Background(), "u2", "u9")
	require.NoError(t, err)
	assert.Equal(t, NoticeNothingDeleted, none.Notice)

	repo.AssertNotCalled(t, "DeleteFromSender", mock.Anything, "u1", "u2")
	repo.AssertExpectations(t)
}
