package services

import (
	"context"
	"errors"
	"strings"

	"chatter-api/internal/domain"
	"chatter-api/internal/domain/group"
	"chatter-api/internal/domain/user"
	"chatter-api/internal/events"
	"chatter-api/internal/repository"
	chatter_errors "chatter-api/pkg/errors"
	"chatter-api/pkg/logger"
)

type UserService struct {
	repo       repository.UserRepository
	userGroups repository.UserGroupRepository
	publisher  events.Publisher
	logger     *logger.Logger
}

func NewUserService(repo repository.UserRepository, userGroups repository.UserGroupRepository, publisher events.Publisher, l *logger.Logger) *UserService {
	return &UserService{repo: repo, userGroups: userGroups, publisher: orNop(publisher), logger: orNopLogger(l)}
}

func (s *UserService) CreateUser(ctx context.Context, input user.User) (user.User, error) {
	if strings.TrimSpace(input.Email) == "" {
		return user.User{}, chatter_errors.Validation("Email is required")
	}
	if strings.TrimSpace(input.FName) == "" {
		return user.User{}, chatter_errors.Validation("First name is required")
	}
	if strings.TrimSpace(input.LName) == "" {
		return user.User{}, chatter_errors.Validation("Last name is required")
	}

	input.DateCreated = now()
	if _, err := s.repo.Create(ctx, &input); err != nil {
		return user.User{}, err
	}
	publish(ctx, s.publisher, s.logger, events.EventTypeUserCreated, events.AggregateUser, input.ID, input)
	return input, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (Outcome[user.User], error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, chatter_errors.ErrNotFound) {
			return Notice[user.User](NoticeNoUser), nil
		}
		return Outcome[user.User]{}, err
	}
	return Found(u), nil
}

func (s *UserService) GetAllUsers(ctx context.Context) (Outcome[[]user.User], error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return Outcome[[]user.User]{}, err
	}
	if len(users) == 0 {
		return Notice[[]user.User](NoticeNoUsers), nil
	}
	return Found(users), nil
}

var requiredUserFields = []struct{ key, label string }{
	{"email", "Email"},
	{"fname", "First name"},
	{"lname", "Last name"},
}

// UpdateUser applies a partial update. fields must carry the target "id";
// date_created is never rewritten.
func (s *UserService) UpdateUser(ctx context.Context, fields domain.Fields) (user.User, error) {
	id := fields.String("id")
	if id == "" {
		return user.User{}, chatter_errors.Validation("User id is required")
	}
	for _, f := range requiredUserFields {
		if v, present := fields[f.key]; present {
			if str, ok := v.(string); !ok || strings.TrimSpace(str) == "" {
				return user.User{}, chatter_errors.Validation(f.label + " must be a non-empty string")
			}
		}
	}

	res, err := s.repo.Update(ctx, id, fields.Without("id", "date_created"))
	if err != nil {
		return user.User{}, err
	}
	if res.Matched() != 1 {
		return user.User{}, chatter_errors.Validation("No user matched the given id")
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	publish(ctx, s.publisher, s.logger, events.EventTypeUserUpdated, events.AggregateUser, id, updated)
	return updated, nil
}

// DeleteUser reports success whether or not a document matched.
func (s *UserService) DeleteUser(ctx context.Context, id string) (Deleted, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return Deleted{}, err
	}
	if n > 0 {
		publish(ctx, s.publisher, s.logger, events.EventTypeUserDeleted, events.AggregateUser, id, map[string]string{"id": id})
	}
	return Deleted{Deleted: true}, nil
}

func (s *UserService) GetUserGroups(ctx context.Context, id string) ([]group.Group, error) {
	return s.userGroups.GroupsOfMember(ctx, id)
}

// RemoveMemberFromGroup writes back the group's membership without memberID.
// When the group has no membership record the write matches nothing.
func (s *UserService) RemoveMemberFromGroup(ctx context.Context, groupID, memberID string) (Deleted, error) {
	ugs, err := s.userGroups.FindByGroupID(ctx, groupID)
	if err != nil {
		return Deleted{}, err
	}

	var ug group.UserGroup
	if len(ugs) > 0 {
		ug = ugs[0]
	}
	ug.RemoveMember(memberID)

	res, err := s.userGroups.Replace(ctx, ug)
	if err != nil {
		return Deleted{}, err
	}
	if res.Matched() > 0 {
		publish(ctx, s.publisher, s.logger, events.EventTypeGroupMemberRemoved, events.AggregateGroup, groupID,
			group.Membership{ID: groupID, MemberIDs: ug.MemberIDs})
	}
	return Deleted{Deleted: true}, nil
}
