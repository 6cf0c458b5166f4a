package handler

import (
	"errors"
	"log"
	"net/http"

	"auction_platform/internal/middleware"
	"auction_platform/internal/model"
	"auction_platform/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles profile, leaderboard and payout-detail requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Helper to get authenticated user ID from context
func getAuthUserID(c *gin.Context) (int64, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int64)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Printf("Error loading profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *UserHandler) FetchLeaderboard(c *gin.Context) {
	leaderboard, err := h.service.Leaderboard(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching leaderboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "leaderboard": leaderboard})
}

func (h *UserHandler) UpdatePaymentMethods(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
		return
	}

	var req model.UpdatePaymentMethodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.service.UpdatePaymentMethods(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingBankDetails),
			errors.Is(err, service.ErrMissingEasypaisa),
			errors.Is(err, service.ErrMissingPaypal):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, service.ErrNotAuctioneer):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		default:
			log.Printf("Error updating payment methods: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update payment methods"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user, "message": "Payment methods updated successfully"})
}

// RegisterUserRoutes registers user routes. The payment-method update is
// gated on both role and outstanding commission.
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, jwtAuthMW, commissionMW, auctioneerMW gin.HandlerFunc) {
	userGroup := rg.Group("/users")
	{
		userGroup.GET("/me", jwtAuthMW, h.GetProfile)
		userGroup.GET("/leaderboard", h.FetchLeaderboard)
		userGroup.PUT("/me/payment-methods", jwtAuthMW, auctioneerMW, commissionMW, h.UpdatePaymentMethods)
	}
}
