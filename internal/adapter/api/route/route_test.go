package route

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/parceiros-api/internal/adapter/api/controller"
	"github.com/hugohenrick/parceiros-api/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w.Code
}

func TestHealth(t *testing.T) {
	r := gin.New()
	SetupSystemRoutes(r, func() error { return nil })
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health"))
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/metrics"))

	down := gin.New()
	SetupSystemRoutes(down, func() error { return errors.New("banco indisponível") })
	assert.Equal(t, http.StatusServiceUnavailable, serve(down, http.MethodGet, "/health"))
}

func TestParceiroRoutesRequireToken(t *testing.T) {
	log := logger.New(io.Discard, "off")
	r := gin.New()
	api := r.Group("/api/v1")
	RegisterParceiroRoutes(api, controller.NewParceiroController(nil, log))
	SetupAuthRoutes(api, controller.NewAuthController(controller.AdminCredentials{}, log))

	for _, path := range []string{"/api/v1/parceiros", "/api/v1/parceiros/expirando", "/api/v1/parceiros/1", "/api/v1/auth/me"} {
		assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, path), path)
	}
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodDelete, "/api/v1/parceiros/1"))
}
