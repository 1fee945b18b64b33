package group

import (
	"time"

	"chatter-api/internal/domain"
)

const StatusActive = "Active"

// Group represents the tbl_Group documents
type Group struct {
	ID          string        `json:"id" bson:"_id"`
	GroupName   string        `json:"group_name" bson:"group_name"`
	CreatorID   string        `json:"creator_id" bson:"creator_id"`
	DateCreated time.Time     `json:"date_created" bson:"date_created"`
	Status      string        `json:"status" bson:"status"`
	Extra       domain.Fields `json:"-" bson:",inline"`
}

var knownKeys = []string{"id", "group_name", "creator_id", "date_created", "status"}

type groupAlias Group

func (g Group) MarshalJSON() ([]byte, error) {
	return domain.MarshalFlat(groupAlias(g), g.Extra)
}

func (g *Group) UnmarshalJSON(data []byte) error {
	var a groupAlias
	extra, err := domain.UnmarshalFlat(data, &a, knownKeys...)
	if err != nil {
		return err
	}
	*g = Group(a)
	g.Extra = extra
	return nil
}

// UserGroup is the membership record of a group. There is one per group and
// MemberIDs keeps insertion order, duplicates included.
type UserGroup struct {
	ID        string   `json:"id" bson:"_id"`
	GroupID   string   `json:"group_id" bson:"group_id"`
	MemberIDs []string `json:"member_ids" bson:"member_ids"`
}

// HasMember reports whether id appears in the membership list.
func (ug UserGroup) HasMember(id string) bool {
	for _, m := range ug.MemberIDs {
		if m == id {
			return true
		}
	}
	return false
}

// RemoveMember drops every occurrence of id from the membership list.
func (ug *UserGroup) RemoveMember(id string) {
	kept := make([]string, 0, len(ug.MemberIDs))
	for _, m := range ug.MemberIDs {
		if m != id {
			kept = append(kept, m)
		}
	}
	ug.MemberIDs = kept
}

// Created is what creating a group returns: the group itself plus its
// companion membership record.
type Created struct {
	Group
	UserGroupID string   `json:"user_group_id"`
	MemberIDs   []string `json:"member_ids"`
	Warning     string   `json:"warning,omitempty"`
}

func (c Created) MarshalJSON() ([]byte, error) {
	extra := domain.Fields{}
	for k, v := range c.Extra {
		extra[k] = v
	}
	extra["user_group_id"] = c.UserGroupID
	extra["member_ids"] = c.MemberIDs
	if c.Warning != "" {
		extra["warning"] = c.Warning
	}
	return domain.MarshalFlat(groupAlias(c.Group), extra)
}

// Membership is the response of adding a user to a group.
type Membership struct {
	ID        string   `json:"id"`
	MemberIDs []string `json:"member_ids"`
}
