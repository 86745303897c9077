package auth

import "github.com/gin-gonic/gin"

const teacherUsernameKey = "teacherUsername"

// SetTeacherUsername stores the authenticated teacher's username in the Gin context.
func SetTeacherUsername(c *gin.Context, username string) {
	c.Set(teacherUsernameKey, username)
}

// GetTeacherUsername returns the authenticated teacher's username or empty string.
func GetTeacherUsername(c *gin.Context) string {
	if v, ok := c.Get(teacherUsernameKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
