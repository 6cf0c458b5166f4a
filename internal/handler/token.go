package handler

import (
	"net/http"

	"auction_platform/internal/middleware"
	"auction_platform/internal/model"
	"auction_platform/internal/utils"

	"github.com/gin-gonic/gin"
)

// sendToken attaches the session token as an HttpOnly cookie and echoes it
// in the JSON body. The cookie must survive cross-site requests from the
// frontend, hence SameSite=None + Secure.
func sendToken(c *gin.Context, jwtUtil *utils.JWTUtil, user *model.User, token string, status int, message string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.TokenCookieName, token, int(jwtUtil.TokenTTL().Seconds()), "/", "", true, true)

	c.JSON(status, gin.H{
		"success": true,
		"user":    user,
		"token":   token,
		"message": message,
	})
}

// clearTokenCookie expires the session cookie immediately. Safe to call on
// requests that carry no cookie, which keeps logout idempotent.
func clearTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", true, true)
}
