package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"auction_platform/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rolesRouter(role string, mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/restricted", func(c *gin.Context) {
		if role != "" {
			c.Set(AuthRoleKey, role)
		}
		c.Next()
	}, mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestAuctioneerMiddleware(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{model.RoleAuctioneer, http.StatusOK},
		{model.RoleSuperAdmin, http.StatusOK},
		{model.RoleBidder, http.StatusForbidden},
		{"", http.StatusForbidden},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		rolesRouter(tc.role, AuctioneerMiddleware()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restricted", nil))
		assert.Equal(t, tc.want, w.Code, "role %q", tc.role)
	}
}

func TestSuperAdminMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	rolesRouter(model.RoleAuctioneer, SuperAdminMiddleware()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restricted", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
