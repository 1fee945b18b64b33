package handler

import (
	"net/http"

	"chatter-api/internal/domain"
	"chatter-api/internal/domain/user"
	"chatter-api/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req user.User
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *UserHandler) Get(c *gin.Context) {
	out, err := h.service.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, out)
}

func (h *UserHandler) List(c *gin.Context) {
	out, err := h.service.GetAllUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, out)
}

func (h *UserHandler) Update(c *gin.Context) {
	req := domain.Fields{}
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.service.UpdateUser(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) Delete(c *gin.Context) {
	out, err := h.service.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Groups(c *gin.Context) {
	groups, err := h.service.GetUserGroups(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// LeaveGroup serves DELETE /user/:id/group/:group_id where :id is the member.
func (h *UserHandler) LeaveGroup(c *gin.Context) {
	out, err := h.service.RemoveMemberFromGroup(c.Request.Context(), c.Param("group_id"), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
