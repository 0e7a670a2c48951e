package middleware

import (
	"net/http"
	"strings"

	"mycare/services/session"

	"github.com/gin-gonic/gin"
)

// RequireRol allows only the listed roles past. Runs after JWTAuthMiddleware.
func RequireRol(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rol := CurrentRol(c)
		for _, allowed := range roles {
			if rol == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	}
}

// OptionalAuth resolves the session when a valid bearer token is present but
// never rejects the request: a missing, malformed or expired token just means
// an anonymous caller. The agenda endpoint uses it so an identified user sees
// their own-day conflicts while anonymous visitors still get the slot grid.
func OptionalAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sess, err := sessions.FromToken(c.Request.Context(), tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set(CtxUserID, sess.UserID)
		c.Set(CtxRol, sess.Rol)
		c.Set(CtxToken, tokenString)
		c.Next()
	}
}
