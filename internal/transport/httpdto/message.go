package httpdto

// DeleteMessageRequest is the body of DELETE /message/:id
type DeleteMessageRequest struct {
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
}
