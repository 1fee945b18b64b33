package repository

import (
	"context"

	"chatter-api/internal/domain"
	"chatter-api/internal/domain/group"
	"chatter-api/internal/domain/message"
	"chatter-api/internal/domain/user"
)

// UpdateResult splits matched documents into those the write changed and
// those it left as they were.
type UpdateResult struct {
	Replaced  int64
	Unchanged int64
}

// Matched is the number of documents the update selected.
func (r UpdateResult) Matched() int64 {
	return r.Replaced + r.Unchanged
}

type UserRepository interface {
	// Create assigns a fresh id to u, inserts it and returns the id.
	Create(ctx context.Context, u *user.User) (string, error)
	GetByID(ctx context.Context, id string) (user.User, error)
	GetAll(ctx context.Context) ([]user.User, error)
	// GetByIDs returns the users for ids in the order of ids, repeating a
	// document for repeated ids and skipping ids with no document.
	GetByIDs(ctx context.Context, ids []string) ([]user.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id string, fields domain.Fields) (UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type GroupRepository interface {
	Create(ctx context.Context, g *group.Group) (string, error)
	GetByID(ctx context.Context, id string) (group.Group, error)
}

type UserGroupRepository interface {
	Create(ctx context.Context, ug *group.UserGroup) (string, error)
	FindByGroupID(ctx context.Context, groupID string) ([]group.UserGroup, error)
	// GroupsOfMember joins every membership record containing memberID to
	// its group document.
	GroupsOfMember(ctx context.Context, memberID string) ([]group.Group, error)
	// Replace writes ug back in full, keyed by ug.ID.
	Replace(ctx context.Context, ug group.UserGroup) (UpdateResult, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *message.Message) (string, error)
	// Received lists messages addressed to receiverID with senders joined.
	Received(ctx context.Context, receiverID string) ([]message.WithSender, error)
	// Conversation lists both directions between a and b, oldest first,
	// with senders joined.
	Conversation(ctx context.Context, a, b string) ([]message.WithSender, error)
	Delete(ctx context.Context, id string) (int64, error)
	// DeleteFromSender removes messages sent by senderID to receiverID only.
	DeleteFromSender(ctx context.Context, receiverID, senderID string) (int64, error)
}
