// Package mocks holds testify mocks of the repository and event interfaces.
package mocks

import (
	"context"

	"chatter-api/internal/domain"
	"chatter-api/internal/domain/group"
	"chatter-api/internal/domain/message"
	"chatter-api/internal/domain/user"
	"chatter-api/internal/repository"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) Create(ctx context.Context, u *user.User) (string, error) {
	args := m.Called(ctx, u)
	id := args.String(0)
	if id != "" {
		u.ID = id
	}
	return id, args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) GetAll(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

func (m *UserRepository) GetByIDs(ctx context.Context, ids []string) ([]user.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

func (m *UserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, id string, fields domain.Fields) (repository.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type GroupRepository struct {
	mock.Mock
}

var _ repository.GroupRepository = (*GroupRepository)(nil)

func (m *GroupRepository) Create(ctx context.Context, g *group.Group) (string, error) {
	args := m.Called(ctx, g)
	id := args.String(0)
	if id != "" {
		g.ID = id
	}
	return id, args.Error(1)
}

func (m *GroupRepository) GetByID(ctx context.Context, id string) (group.Group, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(group.Group), args.Error(1)
}

type UserGroupRepository struct {
	mock.Mock
}

var _ repository.UserGroupRepository = (*UserGroupRepository)(nil)

func (m *UserGroupRepository) Create(ctx context.Context, ug *group.UserGroup) (string, error) {
	args := m.Called(ctx, ug)
	id := args.String(0)
	if id != "" {
		ug.ID = id
	}
	return id, args.Error(1)
}

func (m *UserGroupRepository) FindByGroupID(ctx context.Context, groupID string) ([]group.UserGroup, error) {
	args := m.Called(ctx, groupID)
	ugs, _ := args.Get(0).([]group.UserGroup)
	return ugs, args.Error(1)
}

func (m *UserGroupRepository) GroupsOfMember(ctx context.Context, memberID string) ([]group.Group, error) {
	args := m.Called(ctx, memberID)
	groups, _ := args.Get(0).([]group.Group)
	return groups, args.Error(1)
}

func (m *UserGroupRepository) Replace(ctx context.Context, ug group.UserGroup) (repository.UpdateResult, error) {
	args := m.Called(ctx, ug)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

type MessageRepository struct {
	mock.Mock
}

var _ repository.MessageRepository = (*MessageRepository)(nil)

func (m *MessageRepository) Create(ctx context.Context, msg *message.Message) (string, error) {
	args := m.Called(ctx, msg)
	id := args.String(0)
	if id != "" {
		msg.ID = id
	}
	return id, args.Error(1)
}

func (m *MessageRepository) Received(ctx context.Context, receiverID string) ([]message.WithSender, error) {
	args := m.Called(ctx, receiverID)
	msgs, _ := args.Get(0).([]message.WithSender)
	return msgs, args.Error(1)
}

func (m *MessageRepository) Conversation(ctx context.Context, a, b string) ([]message.WithSender, error) {
	args := m.Called(ctx, a, b)
	msgs, _ := args.Get(0).([]message.WithSender)
	return msgs, args.Error(1)
}

func (m *MessageRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MessageRepository) DeleteFromSender(ctx context.Context, receiverID, senderID string) (int64, error) {
	args := m.Called(ctx, receiverID, senderID)
	return args.Get(0).(int64), args.Error(1)
}
