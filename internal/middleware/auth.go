// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/technsat/storefront/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminRequired gates the management routes behind a valid bearer token.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}

		claims, err := utils.ValidateAdminToken(parts[1])
		if err != nil {
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}

		c.Set("admin_username", claims.Username)
		c.Next()
	}
}
