package events

// Event types follow the format: domain.action

const (
	EventTypeUserCreated = "user.created"
	EventTypeUserUpdated = "user.updated"
	EventTypeUserDeleted = "user.deleted"
)

const (
	EventTypeGroupCreated       = "group.created"
	EventTypeGroupMemberAdded   = "group.member_added"
	EventTypeGroupMemberRemoved = "group.member_removed"
)

const (
	EventTypeMessageCreated = "message.created"
	EventTypeMessageDeleted = "message.deleted"
)

const (
	AggregateUser    = "user"
	AggregateGroup   = "group"
	AggregateMessage = "message"
)
