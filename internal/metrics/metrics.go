package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts all HTTP requests with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	// RequestDurationHistogram records request duration in seconds
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	// OrdersSettledCounter counts completed checkouts per payment method
	OrdersSettledCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_orders_settled_total",
			Help: "Total number of settled orders",
		},
		[]string{"service", "payment_method"},
	)

	// RevenueCounter accumulates settled order totals
	RevenueCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_revenue_total",
			Help: "Total settled revenue",
		},
		[]string{"service"},
	)
)

// HTTPMetrics holds configuration and state for HTTP metrics collection
type HTTPMetrics struct {
	ServiceName string
	initialized bool
}

// NewHTTPMetrics creates a new HTTP metrics collector for a specific service
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	m := &HTTPMetrics{ServiceName: serviceName}
	m.register()
	return m
}

func (m *HTTPMetrics) register() {
	if !m.initialized {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDurationHistogram)
		prometheus.MustRegister(OrdersSettledCounter)
		prometheus.MustRegister(RevenueCounter)
		m.initialized = true
	}
}

// RecordSettlement feeds the business counters after a successful checkout.
func (m *HTTPMetrics) RecordSettlement(paymentMethod string, total float64) {
	OrdersSettledCounter.WithLabelValues(m.ServiceName, paymentMethod).Inc()
	RevenueCounter.WithLabelValues(m.ServiceName).Add(total)
}

// Middleware creates a gin middleware that records HTTP request metrics
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		statusStr := strconv.Itoa(status)

		RequestCounter.WithLabelValues(m.ServiceName, method, path, statusStr).Inc()
		RequestDurationHistogram.WithLabelValues(m.ServiceName, method, path, statusStr).
			Observe(time.Since(start).Seconds())
	}
}

// GetPrometheusHandler returns an HTTP handler for exposing Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}
