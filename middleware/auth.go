package middleware

import (
	"net/http"
	"strings"

	"mycare/services/session"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxUserID = "userID"
	CtxRol    = "rol"
	CtxToken  = "token"
)

// JWTAuthMiddleware resolves the bearer token to a session (cache first,
// full validation on a miss) and stores the identity in the gin context.
func JWTAuthMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		sess, err := sessions.FromToken(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		c.Set(CtxUserID, sess.UserID)
		c.Set(CtxRol, sess.Rol)
		c.Set(CtxToken, tokenString)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the gin context.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(CtxUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}

// CurrentRol returns the authenticated user's role from the gin context.
func CurrentRol(c *gin.Context) string {
	v, exists := c.Get(CtxRol)
	if !exists {
		return ""
	}
	rol, _ := v.(string)
	return rol
}
