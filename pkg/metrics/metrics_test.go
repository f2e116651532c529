package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/parceiros/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/parceiros/:id", "200"))
	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/parceiros/"+id, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nada", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/parceiros/:id", "200")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unmatched", "404")), float64(1))
	assert.Equal(t, float64(0), testutil.ToFloat64(httpInFlight))
}

func TestObserveEmbeddedCall(t *testing.T) {
	before := testutil.ToFloat64(embeddedCallsTotal.WithLabelValues("POST", "201"))
	ObserveEmbeddedCall("POST", 201, 20*time.Millisecond)
	ObserveEmbeddedCall("POST", 201, 30*time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(embeddedCallsTotal.WithLabelValues("POST", "201")))
}

func TestHandlerExposesRegisteredMetrics(t *testing.T) {
	Init()
	Init()
	SetParceirosExpirando(4)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "parceiros_expirando 4"))
}
