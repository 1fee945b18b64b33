package httpdto

// AddGroupUserRequest is used for PUT /group/:id/user. MemberID is the
// existing member vouching for UserID.
type AddGroupUserRequest struct {
	MemberID string `json:"member_id"`
	UserID   string `json:"user_id"`
}
