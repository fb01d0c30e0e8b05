package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles lets the request through only when JWTAuthMiddleware recorded one of roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "Forbidden",
				"message": "your role may not perform this action",
			})
			return
		}
		c.Next()
	}
}
