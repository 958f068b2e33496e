package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records HTTP request metrics using Prometheus
type Collector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	serviceInfo      *prometheus.GaugeVec
}

// NewCollector creates a new Prometheus metrics collector registered on reg.
// A nil reg registers on the default registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nijouzu_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nijouzu_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route"},
		),
		requestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "nijouzu_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		serviceInfo: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "nijouzu_service_info",
				Help: "Service metadata, always 1",
			},
			[]string{"service", "version"},
		),
	}
}

// SetServiceInfo publishes the service name and version
func (c *Collector) SetServiceInfo(service, version string) {
	c.serviceInfo.WithLabelValues(service, version).Set(1)
}

// IncInFlight marks the start of a request
func (c *Collector) IncInFlight() {
	c.requestsInFlight.Inc()
}

// DecInFlight marks the end of a request
func (c *Collector) DecInFlight() {
	c.requestsInFlight.Dec()
}

// ObserveRequest records a completed request
func (c *Collector) ObserveRequest(method, route string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
