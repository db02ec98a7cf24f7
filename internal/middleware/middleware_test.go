package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Arjit-Adhikari/qr-order/internal/auth"
	"github.com/Arjit-Adhikari/qr-order/internal/config"
	"github.com/Arjit-Adhikari/qr-order/internal/logger"
	"github.com/Arjit-Adhikari/qr-order/internal/middleware"
)

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	authn := auth.NewStaticAuthenticator(config.AdminConfig{
		Username: "admin",
		Password: "secret",
	})

	router := gin.New()
	router.GET("/protected", middleware.RequireAdmin(authn, logger.NewLogger()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireAdminWithoutCredentials(t *testing.T) {
	router := adminRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")
}

func TestRequireAdminWithMalformedHeader(t *testing.T) {
	router := adminRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic not-base64!!!")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")
}

func TestRequireAdminWithWrongCredentials(t *testing.T) {
	router := adminRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.SetBasicAuth("admin", "wrong")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminWithValidCredentials(t *testing.T) {
	router := adminRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.SetBasicAuth("admin", "secret")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}
