package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"happybrother-backend/pkg/jwt"
)

func protectedRouter(manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(AuthMiddleware(manager), AdminMiddleware())
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return router
}

func TestAuthMiddlewareAllowsValidAdminToken(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	token, err := manager.GenerateSessionToken("admin@happybrotherac.com", "admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedRouter(manager).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@happybrotherac.com")
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	protectedRouter(manager).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Token abc123")
	protectedRouter(manager).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsForgedToken(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	forged, err := jwt.NewManager("other-secret", time.Hour).GenerateSessionToken("admin@happybrotherac.com", "admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	protectedRouter(manager).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminMiddlewareRejectsNonAdminRole(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	token, err := manager.GenerateSessionToken("viewer@happybrotherac.com", "viewer")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedRouter(manager).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
