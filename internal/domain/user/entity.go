package user

import (
	"time"

	"chatter-api/internal/domain"
)

// User represents the tbl_User documents
type User struct {
	ID          string        `json:"id" bson:"_id"`
	Email       string        `json:"email" bson:"email"`
	FName       string        `json:"fname" bson:"fname"`
	LName       string        `json:"lname" bson:"lname"`
	DateCreated time.Time     `json:"date_created" bson:"date_created"`
	Extra       domain.Fields `json:"-" bson:",inline"`
}

var knownKeys = []string{"id", "email", "fname", "lname", "date_created"}

type userAlias User

func (u User) MarshalJSON() ([]byte, error) {
	return domain.MarshalFlat(userAlias(u), u.Extra)
}

func (u *User) UnmarshalJSON(data []byte) error {
	var a userAlias
	extra, err := domain.UnmarshalFlat(data, &a, knownKeys...)
	if err != nil {
		return err
	}
	*u = User(a)
	u.Extra = extra
	return nil
}
