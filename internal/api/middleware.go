package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mergington/school-backend/internal/auth"
	"github.com/mergington/school-backend/internal/teacher"
)

// RequireTeacher guards management endpoints. The caller asserts a teacher
// identity either with a Bearer token issued by /auth/login or with the
// teacher_username query parameter; either way the username must exist in
// the teacher store.
func RequireTeacher(teacherService teacher.Service, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := resolveIdentity(c, jwtManager)
		if username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		exists, err := teacherService.Exists(c.Request.Context(), username)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to verify teacher"})
			return
		}
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid teacher credentials"})
			return
		}

		auth.SetTeacherUsername(c, username)
		c.Next()
	}
}

func resolveIdentity(c *gin.Context, jwtManager *auth.JWTManager) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return ""
		}
		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			return ""
		}
		return claims.Username
	}

	return c.Query("teacher_username")
}
