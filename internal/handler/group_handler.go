package handler

import (
	"net/http"

	"chatter-api/internal/domain/group"
	"chatter-api/internal/services"
	"chatter-api/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	service *services.GroupService
}

func NewGroupHandler(service *services.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

func (h *GroupHandler) Create(c *gin.Context) {
	var req group.Group
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.service.CreateGroup(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *GroupHandler) AddUser(c *gin.Context) {
	var req httpdto.AddGroupUserRequest
	if !bindJSON(c, &req) {
		return
	}

	membership, err := h.service.AddUserToGroup(c.Request.Context(), c.Param("id"), req.MemberID, req.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

func (h *GroupHandler) Members(c *gin.Context) {
	members, err := h.service.GetUsersOfSpecGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}
