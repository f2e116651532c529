package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "Requisições HTTP em andamento.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de requisições HTTP.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latência das requisições HTTP em segundos.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	embeddedCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "embedded_api_calls_total",
			Help: "Chamadas à API Embedded por operação e status HTTP (0 para falha de conexão).",
		},
		[]string{"operation", "status"},
	)

	embeddedCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "embedded_api_call_duration_seconds",
			Help:    "Latência das chamadas à API Embedded em segundos.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	parceirosExpirando = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "parceiros_expirando",
		Help: "Parceiros ativos com data de saída dentro da janela monitorada.",
	})

	registerOnce sync.Once
)

// Init registra as métricas no registro padrão
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpInFlight,
			httpRequestsTotal,
			httpRequestDuration,
			embeddedCallsTotal,
			embeddedCallDuration,
			parceirosExpirando,
		)
	})
}

// Handler expõe as métricas no formato Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware mede quantidade, latência e requisições em andamento
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		httpInFlight.Inc()
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpInFlight.Dec()
	}
}

// ObserveEmbeddedCall registra uma chamada à API Embedded
func ObserveEmbeddedCall(operation string, status int, duration time.Duration) {
	embeddedCallsTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	embeddedCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetParceirosExpirando atualiza a quantidade de parceiros perto de expirar
func SetParceirosExpirando(total int) {
	parceirosExpirando.Set(float64(total))
}

// ParceirosExpirando expõe o gauge de parceiros perto de expirar
func ParceirosExpirando() prometheus.Gauge {
	return parceirosExpirando
}
