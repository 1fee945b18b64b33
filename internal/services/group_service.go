package services

import (
	"context"
	"strings"

	"chatter-api/internal/domain/group"
	"chatter-api/internal/domain/user"
	"chatter-api/internal/events"
	"chatter-api/internal/repository"
	chatter_errors "chatter-api/pkg/errors"
	"chatter-api/pkg/logger"
)

type GroupService struct {
	groups     repository.GroupRepository
	userGroups repository.UserGroupRepository
	users      repository.UserRepository
	publisher  events.Publisher
	logger     *logger.Logger
}

func NewGroupService(groups repository.GroupRepository, userGroups repository.UserGroupRepository, users repository.UserRepository, publisher events.Publisher, l *logger.Logger) *GroupService {
	return &GroupService{groups: groups, userGroups: userGroups, users: users, publisher: orNop(publisher), logger: orNopLogger(l)}
}

// CreateGroup inserts the group and its membership record holding only the
// creator. An empty user table produces a warning, not a failure.
func (s *GroupService) CreateGroup(ctx context.Context, input group.Group) (group.Created, error) {
	if strings.TrimSpace(input.GroupName) == "" {
		return group.Created{}, chatter_errors.Validation("Group name is required")
	}
	if strings.TrimSpace(input.CreatorID) == "" {
		return group.Created{}, chatter_errors.Validation("Creator id is required")
	}

	var warning string
	count, err := s.users.Count(ctx)
	if err != nil {
		return group.Created{}, err
	}
	if count == 0 {
		warning = WarningNoUsers
		s.logger.WithContext(ctx).Warnf("creating group %q for creator %s while no users exist", input.GroupName, input.CreatorID)
	}

	input.DateCreated = now()
	input.Status = group.StatusActive
	if _, err := s.groups.Create(ctx, &input); err != nil {
		return group.Created{}, err
	}

	ug := group.UserGroup{GroupID: input.ID, MemberIDs: []string{input.CreatorID}}
	if _, err := s.userGroups.Create(ctx, &ug); err != nil {
		return group.Created{}, err
	}

	created := group.Created{Group: input, UserGroupID: ug.ID, MemberIDs: ug.MemberIDs, Warning: warning}
	publish(ctx, s.publisher, s.logger, events.EventTypeGroupCreated, events.AggregateGroup, input.ID, created)
	return created, nil
}

// AddUserToGroup appends userID to the membership when memberID already
// belongs to it. Repeated adds produce repeated ids.
func (s *GroupService) AddUserToGroup(ctx context.Context, groupID, memberID, userID string) (group.Membership, error) {
	if strings.TrimSpace(memberID) == "" {
		return group.Membership{}, chatter_errors.Validation("Member id is required")
	}
	if strings.TrimSpace(userID) == "" {
		return group.Membership{}, chatter_errors.Validation("User id is required")
	}

	ugs, err := s.userGroups.FindByGroupID(ctx, groupID)
	if err != nil {
		return group.Membership{}, err
	}
	if len(ugs) == 0 || !ugs[0].HasMember(memberID) {
		return group.Membership{}, chatter_errors.Authorization("You are not a member of this group")
	}

	ug := ugs[0]
	ug.MemberIDs = append(ug.MemberIDs, userID)
	if _, err := s.userGroups.Replace(ctx, ug); err != nil {
		return group.Membership{}, err
	}

	membership := group.Membership{ID: groupID, MemberIDs: ug.MemberIDs}
	publish(ctx, s.publisher, s.logger, events.EventTypeGroupMemberAdded, events.AggregateGroup, groupID, membership)
	return membership, nil
}

// GetUsersOfSpecGroup expands the group's member ids into user documents.
func (s *GroupService) GetUsersOfSpecGroup(ctx context.Context, groupID string) ([]user.User, error) {
	ugs, err := s.userGroups.FindByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if len(ugs) == 0 {
		return []user.User{}, nil
	}
	return s.users.GetByIDs(ctx, ugs[0].MemberIDs)
}
