package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"chatter-api/internal/domain"
	"chatter-api/internal/domain/group"
	"chatter-api/internal/domain/message"
	"chatter-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_PassthroughFields(t *testing.T) {
	var u user.User
	err := json.Unmarshal([]byte(`{"id":"u1","email":"a@x.com","fname":"A","lname":"B","nickname":"ab","age":30,"_id":"sneaky"}`), &u)
	require.NoError(t, err)

	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, domain.Fields{"nickname": "ab", "age": float64(30)}, u.Extra)

	out, err := json.Marshal(u)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "ab", got["nickname"])
	assert.Equal(t, float64(30), got["age"])
	assert.Equal(t, "A", got["fname"])
	assert.NotContains(t, got, "_id")
}

func TestUser_TypedFieldsWinOverExtras(t *testing.T) {
	u := user.User{ID: "u1", Email: "real@x.com", Extra: domain.Fields{"email": "fake@x.com"}}

	out, err := json.Marshal(u)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "real@x.com", got["email"])
}

func TestGroupCreated_JSON(t *testing.T) {
	created := group.Created{
		Group:       group.Group{ID: "g1", GroupName: "G", CreatorID: "u1", Status: group.StatusActive, DateCreated: time.Unix(0, 0).UTC()},
		UserGroupID: "ug1",
		MemberIDs:   []string{"u1"},
	}

	out, err := json.Marshal(created)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "g1", got["id"])
	assert.Equal(t, "ug1", got["user_group_id"])
	assert.Equal(t, []any{"u1"}, got["member_ids"])
	assert.Equal(t, "Active", got["status"])
	assert.NotContains(t, got, "warning")
}

func TestMessageWithSender_JSON(t *testing.T) {
	w := message.WithSender{
		Message: message.Message{ID: "m1", SenderID: "u1", ReceiverID: "u2", Message: "hi"},
		Sender:  &user.User{ID: "u1", Email: "a@x.com", FName: "A", LName: "B"},
	}

	out, err := json.Marshal(w)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "hi", got["message"])
	sender, ok := got["sender"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", sender["email"])
}

func TestFields_Without(t *testing.T) {
	f := domain.Fields{"id": "u1", "_id": "u1", "fname": "A"}
	assert.Equal(t, domain.Fields{"fname": "A"}, f.Without("id"))
	assert.Equal(t, "A", f.String("fname"))
	assert.Equal(t, "", f.String("missing"))
}

func TestUserGroup_Membership(t *testing.T) {
	ug := group.UserGroup{MemberIDs: []string{"u1", "u2", "u1"}}
	assert.True(t, ug.HasMember("u2"))
	ug.RemoveMember("u1")
	assert.Equal(t, []string{"u2"}, ug.MemberIDs)
	assert.False(t, ug.HasMember("u1"))
}
