package middleware

import (
	"net/http"
	"strings"

	"communityhub/internal/pkg"
	"communityhub/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// AuthRequired verifies the bearer token, checks it against the session
// store and injects the caller's user id into the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthenticated(c, "invalid authorization format")
			return
		}

		tokenStr := parts[1]
		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			abortUnauthenticated(c, "invalid or expired token")
			return
		}

		// A token that no longer matches the session store means the user
		// signed in elsewhere since it was issued.
		sessions := &redis.SessionRepository{}
		originToken, err := sessions.GetUserToken(c.Request.Context(), claims.UserID)
		if err != nil || originToken != tokenStr {
			abortUnauthenticated(c, "session expired")
			return
		}

		if err := sessions.ExtendUserToken(c.Request.Context(), claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"status": false, "error": pkg.ErrInternal.Code, "message": pkg.ErrInternal.Message,
			})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// CallerID returns the verified caller identity set by AuthRequired.
func CallerID(c *gin.Context) string {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok2 := v.(string); ok2 {
			return id
		}
	}
	return ""
}

func abortUnauthenticated(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status": false, "error": pkg.ErrUnauthenticated.Code, "message": msg,
	})
}
