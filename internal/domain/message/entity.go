package message

import (
	"encoding/json"
	"time"

	"chatter-api/internal/domain"
	"chatter-api/internal/domain/user"
)

// Message represents the tbl_Message documents. ReceiverID names either a
// user or a group.
type Message struct {
	ID          string        `json:"id" bson:"_id"`
	SenderID    string        `json:"sender_id" bson:"sender_id"`
	ReceiverID  string        `json:"receiver_id" bson:"receiver_id"`
	Message     string        `json:"message" bson:"message"`
	DateCreated time.Time     `json:"date_created" bson:"date_created"`
	Extra       domain.Fields `json:"-" bson:",inline"`
}

var knownKeys = []string{"id", "sender_id", "receiver_id", "message", "date_created"}

type messageAlias Message

func (m Message) MarshalJSON() ([]byte, error) {
	return domain.MarshalFlat(messageAlias(m), m.Extra)
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var a messageAlias
	extra, err := domain.UnmarshalFlat(data, &a, knownKeys...)
	if err != nil {
		return err
	}
	*m = Message(a)
	m.Extra = extra
	return nil
}

// WithSender is a message with its sender's user document joined in. Sender
// is nil when the sender id has no user document.
type WithSender struct {
	Message
	Sender *user.User
}

func (w WithSender) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(w.Message)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	sender, err := json.Marshal(w.Sender)
	if err != nil {
		return nil, err
	}
	fields["sender"] = sender
	return json.Marshal(fields)
}
