package middleware

import (
	"errors"
	"log"
	"net/http"

	"auction_platform/internal/service"

	"github.com/gin-gonic/gin"
)

// CommissionGateMessage is returned when a user with outstanding commission
// attempts a guarded action.
const CommissionGateMessage = "You have unpaid commission. Please pay your commission first"

// CommissionGateMiddleware blocks guarded actions for users who still owe
// commission to the platform. Runs after JWTAuthMiddleware.
func CommissionGateMiddleware(users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get(AuthUserKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
			return
		}
		userID, ok := userIDVal.(int64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid user ID type in context"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
				return
			}
			log.Printf("Error loading user for commission check: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to verify commission status"})
			return
		}

		if user.UnpaidCommission > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": CommissionGateMessage})
			return
		}

		c.Next()
	}
}
