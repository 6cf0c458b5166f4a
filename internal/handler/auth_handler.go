package handler

import (
	"errors"
	"log"
	"net/http"

	"auction_platform/internal/model"
	"auction_platform/internal/service"
	"auction_platform/internal/utils"

	"github.com/gin-gonic/gin"
)

// ProfileImageField is the multipart form field carrying the avatar
const ProfileImageField = "profileImage"

// MaxImageSize bounds profile image uploads
const MaxImageSize = 5 * 1024 * 1024 // 5MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	service service.AuthService
	jwtUtil *utils.JWTUtil
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, jwtUtil *utils.JWTUtil) *AuthHandler {
	return &AuthHandler{service: s, jwtUtil: jwtUtil}
}

func (h *AuthHandler) Register(c *gin.Context) {
	fileHeader, err := c.FormFile(ProfileImageField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No files were uploaded"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid file format"})
		return
	}

	if fileHeader.Size > MaxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image size exceeds the 5MB limit"})
		return
	}

	req := model.RegisterRequest{
		UserName:               c.PostForm("userName"),
		Email:                  c.PostForm("email"),
		Password:               c.PostForm("password"),
		Phone:                  c.PostForm("phone"),
		Address:                c.PostForm("address"),
		Role:                   c.PostForm("role"),
		BankAccountNumber:      c.PostForm("bankAccountNumber"),
		BankAccountName:        c.PostForm("bankAccountName"),
		BankName:               c.PostForm("bankName"),
		EasypaisaAccountNumber: c.PostForm("easypaisaAccountNumber"),
		PaypalEmail:            c.PostForm("paypalEmail"),
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to read uploaded file"})
		return
	}
	defer src.Close()

	user, token, err := h.service.Register(c.Request.Context(), req, src, contentType)
	if err != nil {
		status, message := registerErrorResponse(err)
		if status == http.StatusInternalServerError {
			log.Printf("Error during registration: %v", err)
		}
		c.JSON(status, gin.H{"success": false, "message": message})
		return
	}

	sendToken(c, h.jwtUtil, user, token, http.StatusCreated, "User registered successfully")
}

// registerErrorResponse maps service errors to status and API message
func registerErrorResponse(err error) (int, string) {
	for _, sentinel := range []error{
		service.ErrMissingFields,
		service.ErrInvalidRole,
		service.ErrMissingBankDetails,
		service.ErrMissingEasypaisa,
		service.ErrMissingPaypal,
		service.ErrUserAlreadyExists,
	} {
		if errors.Is(err, sentinel) {
			return http.StatusBadRequest, sentinel.Error()
		}
	}
	if errors.Is(err, service.ErrImageUpload) {
		return http.StatusInternalServerError, service.ErrImageUpload.Error()
	}
	return http.StatusInternalServerError, "Failed to register user"
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": service.ErrMissingCredentials.Error()})
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
		default:
			log.Printf("Error during login: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to login"})
		}
		return
	}

	sendToken(c, h.jwtUtil, user, token, http.StatusOK, "User logged in successfully")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	clearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, jwtAuthMW gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/logout", jwtAuthMW, h.Logout)
	}
}
