package handler

import (
	"net/http"

	"github.com/devfolio/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetAllUsers backs the public landing page. No pagination; failures
// degrade to an empty list.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users := h.userService.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"users": users})
}
