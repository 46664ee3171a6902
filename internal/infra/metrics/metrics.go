package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "containerview"

// Metrics owns a dedicated registry so tests and multiple instances never
// collide on the global default registerer.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	loginAttempts        *prometheus.CounterVec
	verificationAttempts *prometheus.CounterVec
	codesIssued          prometheus.Counter
	codeDeliveryFailures prometheus.Counter
	codesPurged          prometheus.Counter
}

// New registers the HTTP and authentication collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		verificationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "verification_attempts_total",
			Help:      "Second factor verification attempts by method and outcome.",
		}, []string{"method", "outcome"}),
		codesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "codes_issued_total",
			Help:      "One-time codes stored and handed to the delivery channel.",
		}),
		codeDeliveryFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "code_delivery_failures_total",
			Help:      "One-time codes the delivery channel failed to send.",
		}),
		codesPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "codes_purged_total",
			Help:      "Expired one-time codes removed by the sweeper.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpInFlight,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.loginAttempts,
		m.verificationAttempts,
		m.codesIssued,
		m.codeDeliveryFailures,
		m.codesPurged,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests that gather directly.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// TrackInFlight increments the in-flight gauge and returns its release func.
func (m *Metrics) TrackInFlight() func() {
	m.httpInFlight.Inc()

	return m.httpInFlight.Dec
}

// ObserveHTTP records one served request. path should be the route template.
func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequestsTotal.WithLabelValues(method, path, code).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

func (m *Metrics) LoginAttempt(outcome string) {
	m.loginAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) VerificationAttempt(method, outcome string) {
	m.verificationAttempts.WithLabelValues(method, outcome).Inc()
}

func (m *Metrics) CodeIssued() {
	m.codesIssued.Inc()
}

func (m *Metrics) CodeDeliveryFailed() {
	m.codeDeliveryFailures.Inc()
}

func (m *Metrics) CodesPurged(count int64) {
	if count > 0 {
		m.codesPurged.Add(float64(count))
	}
}
