package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mergington/school-backend/internal/auth"
	"github.com/mergington/school-backend/internal/teacher"
)

// AuthHandler exposes teacher login, issuing short-lived access tokens.
type AuthHandler struct {
	teacherService teacher.Service
	jwtManager     *auth.JWTManager
}

func NewAuthHandler(teacherService teacher.Service, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		teacherService: teacherService,
		jwtManager:     jwtManager,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	t, err := h.teacherService.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, teacher.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": teacher.ErrInvalidCredentials.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(t.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		Username:    t.Username,
		DisplayName: t.DisplayName,
	})
}
