package middleware

import (
	"net/http"

	"auction_platform/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Role not found in token, ensure JWT middleware runs first"})
			return
		}

		userRole, ok := roleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Invalid role type in token"})
			return
		}

		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "You do not have permission to access this resource"})
	}
}

// AuctioneerMiddleware restricts a route to auctioneers and super admins
func AuctioneerMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAuctioneer, model.RoleSuperAdmin)
}

// SuperAdminMiddleware restricts a route to super admins
func SuperAdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleSuperAdmin)
}
