package handler

import (
	"net/http"

	"github.com/devfolio/devfolio/internal/dto"
	"github.com/devfolio/devfolio/internal/service"
	"github.com/devfolio/devfolio/internal/session"
	"github.com/devfolio/devfolio/pkg/response"
	"github.com/devfolio/devfolio/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var input dto.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := h.authService.Verify(c.Request.Context(), input.UserID, input.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	// The cookie caches the credentials themselves; it is re-verified
	// against the store on every dashboard visit.
	session.Write(c, session.Session{
		UserID:   user.ID,
		Username: user.Username,
		Password: input.Password,
	})

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session.Clear(c)
	c.Status(http.StatusNoContent)
}

// Session re-verifies the cookie credentials and reports the active user.
// A stale or forged cookie is cleared and answered with 401.
func (h *AuthHandler) Session(c *gin.Context) {
	s, ok := session.Read(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}

	user, err := h.authService.Verify(c.Request.Context(), s.UserID, s.Password)
	if err != nil {
		session.Clear(c)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
