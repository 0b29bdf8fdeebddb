package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "skulab"

type Metrics struct {
	registry *prometheus.Registry

	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	interpretations *prometheus.HistogramVec
	aiCalls         *prometheus.HistogramVec
	events          *prometheus.HistogramVec
	catalogBatches  prometheus.Gauge
	catalogMaxPrice prometheus.Gauge
	catalogMaxMOQ   prometheus.Gauge
	sessions        prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		interpretations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_interpretation_duration_seconds",
				Help:      "Natural-language search interpretations by outcome",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2, 4, 8},
			},
			[]string{"outcome"},
		),
		aiCalls: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ai_call_duration_seconds",
				Help:      "Generative model calls by operation and result",
				Buckets:   []float64{.1, .25, .5, 1, 2, 4, 8, 16},
			},
			[]string{"operation", "result"},
		),
		events: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "kafka_message_duration_seconds",
				Help:      "Consumed Kafka messages by topic and result",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"topic", "result"},
		),
		catalogBatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_batches",
			Help:      "Number of product batches in the catalog",
		}),
		catalogMaxPrice: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_max_price_usd",
			Help:      "Derived upper bound of the price slider",
		}),
		catalogMaxMOQ: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_max_moq",
			Help:      "Derived upper bound of the MOQ slider",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "filter_sessions",
			Help:      "Live filter sessions",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestCounter,
		m.requestLatency,
		m.interpretations,
		m.aiCalls,
		m.events,
		m.catalogBatches,
		m.catalogMaxPrice,
		m.catalogMaxMOQ,
		m.sessions,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Middleware records request count and latency labelled by the chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requestCounter.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.requestLatency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) ObserveInterpretation(outcome string, took time.Duration) {
	m.interpretations.WithLabelValues(outcome).Observe(took.Seconds())
}

func (m *Metrics) ObserveAICall(operation string, err error, took time.Duration) {
	m.aiCalls.WithLabelValues(operation, result(err)).Observe(took.Seconds())
}

func (m *Metrics) ObserveMessage(topic string, err error, took time.Duration) {
	m.events.WithLabelValues(topic, result(err)).Observe(took.Seconds())
}

func (m *Metrics) SetCatalog(batches int, maxPrice float64, maxMOQ int64) {
	m.catalogBatches.Set(float64(batches))
	m.catalogMaxPrice.Set(maxPrice)
	m.catalogMaxMOQ.Set(float64(maxMOQ))
}

func (m *Metrics) SetSessions(n int) {
	m.sessions.Set(float64(n))
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
