package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "gigifypro"

// Metrics owns a private Prometheus registry. A nil *Metrics is a valid no-op.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
	httpInflight    prometheus.Gauge
	scoreComputed   *prometheus.CounterVec
	scoreLatency    *prometheus.HistogramVec
	scoreTotals     prometheus.Histogram
	badgeAwards     *prometheus.CounterVec
	recomputeResult *prometheus.CounterVec
	busPublish      *prometheus.CounterVec
}

type MetricsOption func(*metricsOptions)

type metricsOptions struct {
	namespace      string
	latencyBuckets []float64
	goCollectors   bool
}

func WithNamespace(ns string) MetricsOption {
	return func(o *metricsOptions) {
		if ns != "" {
			o.namespace = ns
		}
	}
}

func WithLatencyBuckets(b []float64) MetricsOption {
	return func(o *metricsOptions) {
		if len(b) > 0 {
			o.latencyBuckets = b
		}
	}
}

// WithRuntimeCollectors adds the Go runtime and process collectors.
func WithRuntimeCollectors() MetricsOption {
	return func(o *metricsOptions) { o.goCollectors = true }
}

func NewMetrics(opts ...MetricsOption) *Metrics {
	o := metricsOptions{namespace: defaultNamespace, latencyBuckets: prometheus.DefBuckets}
	for _, opt := range opts {
		opt(&o)
	}

	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace, Subsystem: "http", Name: "requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help: "HTTP request latency.", Buckets: o.latencyBuckets,
		}, []string{"method", "route"}),
		httpInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: o.namespace, Subsystem: "http", Name: "inflight_requests",
			Help: "HTTP requests currently being served.",
		}),
		scoreComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace, Subsystem: "scoring", Name: "computations_total",
			Help: "Score computations by kind and outcome.",
		}, []string{"kind", "outcome"}),
		scoreLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace, Subsystem: "scoring", Name: "computation_duration_seconds",
			Help: "Score computation latency including signal reads.", Buckets: o.latencyBuckets,
		}, []string{"kind"}),
		scoreTotals: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: o.namespace, Subsystem: "scoring", Name: "persisted_gigscore",
			Help: "Distribution of persisted GigScore totals.",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
		badgeAwards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace, Subsystem: "badges", Name: "awards_total",
			Help: "Newly awarded badges by type.",
		}, []string{"badge"}),
		recomputeResult: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace, Subsystem: "scoring", Name: "recompute_profiles_total",
			Help: "Batch recompute results per profile.",
		}, []string{"outcome"}),
		busPublish: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace, Subsystem: "bus", Name: "publish_total",
			Help: "Score bus publishes by event and outcome.",
		}, []string{"event", "outcome"}),
	}
	reg.MustRegister(
		m.httpRequests, m.httpLatency, m.httpInflight,
		m.scoreComputed, m.scoreLatency, m.scoreTotals,
		m.badgeAwards, m.recomputeResult, m.busPublish,
	)
	if o.goCollectors {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) IncInflight() {
	if m == nil {
		return
	}
	m.httpInflight.Inc()
}

func (m *Metrics) DecInflight() {
	if m == nil {
		return
	}
	m.httpInflight.Dec()
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(dur.Seconds())
}

// ObserveScore records one computation of kind (gigscore, community, volunteer).
func (m *Metrics) ObserveScore(kind string, dur time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.scoreComputed.WithLabelValues(kind, outcome).Inc()
	m.scoreLatency.WithLabelValues(kind).Observe(dur.Seconds())
}

func (m *Metrics) ObservePersistedScore(total int) {
	if m == nil {
		return
	}
	m.scoreTotals.Observe(float64(total))
}

func (m *Metrics) IncBadgeAward(badge string) {
	if m == nil {
		return
	}
	m.badgeAwards.WithLabelValues(badge).Inc()
}

func (m *Metrics) IncRecompute(outcome string) {
	if m == nil {
		return
	}
	m.recomputeResult.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncBusPublish(event string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.busPublish.WithLabelValues(event, outcome).Inc()
}
