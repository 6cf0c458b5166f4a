package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction_platform/internal/model"
	"auction_platform/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubUserService struct {
	user *model.User
	err  error
}

func (s *stubUserService) GetByID(_ context.Context, _ int64) (*model.User, error) {
	return s.user, s.err
}

func (s *stubUserService) Leaderboard(_ context.Context) ([]model.User, error) {
	return nil, nil
}

func (s *stubUserService) UpdatePaymentMethods(_ context.Context, _ int64, _ model.UpdatePaymentMethodsRequest) (*model.User, error) {
	return nil, nil
}

func commissionRouter(users service.UserService, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := []gin.HandlerFunc{}
	if authed {
		handlers = append(handlers, func(c *gin.Context) {
			c.Set(AuthUserKey, int64(1))
			c.Next()
		})
	}
	handlers = append(handlers, CommissionGateMiddleware(users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	router.POST("/guarded", handlers...)
	return router
}

func TestCommissionGate_BlocksUnpaidCommission(t *testing.T) {
	router := commissionRouter(&stubUserService{user: &model.User{ID: 1, UnpaidCommission: 5}}, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/guarded", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), CommissionGateMessage)
}

func TestCommissionGate_AllowsZeroCommission(t *testing.T) {
	router := commissionRouter(&stubUserService{user: &model.User{ID: 1, UnpaidCommission: 0}}, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/guarded", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestCommissionGate_UnknownUser(t *testing.T) {
	router := commissionRouter(&stubUserService{err: service.ErrUserNotFound}, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/guarded", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCommissionGate_MissingAuthContext(t *testing.T) {
	router := commissionRouter(&stubUserService{}, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/guarded", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
