// Package metrics exposes Prometheus instrumentation for the HTTP API and
// the marketplace workflows.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bazaar"

// Metrics owns a private registry with the HTTP and business collectors.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	inFlight        prometheus.Gauge

	offersPublished    prometheus.Counter
	ordersPlaced       *prometheus.CounterVec
	orderStatusChanges *prometheus.CounterVec
	reviewsWritten     *prometheus.CounterVec
}

// New builds and registers every collector.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		offersPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "offers",
			Name:      "published_total",
			Help:      "Offers published.",
		}),
		ordersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Orders placed, by tier.",
		}, []string{"offer_type"}),
		orderStatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Order status writes, by source and target status.",
		}, []string{"from", "to"}),
		reviewsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reviews",
			Name:      "written_total",
			Help:      "Reviews created, by rating.",
		}, []string{"rating"}),
	}

	collectorsToRegister := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.requestTotal,
		m.inFlight,
		m.offersPublished,
		m.ordersPlaced,
		m.orderStatusChanges,
		m.reviewsWritten,
	}
	for _, c := range collectorsToRegister {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records duration and count per route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m.inFlight.Inc()
			defer m.inFlight.Dec()

			start := time.Now()
			err := next(c)
			if err != nil {
				// Render now so the recorded status matches the response.
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)

			m.requestDuration.WithLabelValues(c.Request().Method, path, status).Observe(time.Since(start).Seconds())
			m.requestTotal.WithLabelValues(c.Request().Method, path, status).Inc()

			return nil
		}
	}
}

func (m *Metrics) OfferPublished() {
	m.offersPublished.Inc()
}

func (m *Metrics) OrderPlaced(offerType entity.OfferType) {
	m.ordersPlaced.WithLabelValues(offerType.String()).Inc()
}

func (m *Metrics) OrderStatusChanged(from, to entity.OrderStatus) {
	m.orderStatusChanges.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *Metrics) ReviewWritten(rating int) {
	m.reviewsWritten.WithLabelValues(strconv.Itoa(rating)).Inc()
}

// Recorder exposes m as the domain recorder.
func Recorder(m *Metrics) service.MetricsRecorder {
	return m
}

type noopRecorder struct{}

// NewNoopRecorder returns a recorder that drops every event.
func NewNoopRecorder() service.MetricsRecorder {
	return noopRecorder{}
}

func (noopRecorder) OfferPublished() {}

func (noopRecorder) OrderPlaced(entity.OfferType) {}

func (noopRecorder) OrderStatusChanged(_, _ entity.OrderStatus) {}

func (noopRecorder) ReviewWritten(int) {}
