package handler

import (
	"net/http"

	"chatter-api/internal/domain/message"
	"chatter-api/internal/services"
	"chatter-api/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	service *services.MessageService
}

func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req message.Message
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.service.CreateMessage(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *MessageHandler) Inbox(c *gin.Context) {
	out, err := h.service.GetAllMessagesReceived(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, out)
}

func (h *MessageHandler) Conversation(c *gin.Context) {
	out, err := h.service.GetConvoOfReceiverSender(c.Request.Context(), c.Param("id"), c.Param("sid"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, out)
}

// Delete serves DELETE /message/:id; the body names the inbox to return.
func (h *MessageHandler) Delete(c *gin.Context) {
	var req httpdto.DeleteMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.service.DeleteSpecMessage(c.Request.Context(), c.Param("id"), req.ReceiverID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, out)
}

func (h *MessageHandler) DeleteConversation(c *gin.Context) {
	out, err := h.service.DeleteConvoRecSen(c.Request.Context(), c.Param("id"), c.Param("sid"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, out)
}
