package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collectors of the service
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SlotSelectionsTotal  *prometheus.CounterVec
	DateSelectionsTotal  *prometheus.CounterVec
	StaleRefreshesTotal  *prometheus.CounterVec
	SubmissionsTotal     *prometheus.CounterVec
	UpstreamCallDuration *prometheus.HistogramVec
	CacheLookupsTotal    *prometheus.CounterVec

	DBQueryDuration *prometheus.HistogramVec
	DBConnections   *prometheus.GaugeVec
}

// New registers collectors in the default Prometheus registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry registers collectors in reg
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		SlotSelectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_selections_total",
			Help:        "Mentoring slot selections by outcome",
			ConstLabels: labels,
		}, []string{"result", "reason"}),

		DateSelectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "session_date_selections_total",
			Help:        "Calendar date selections by outcome",
			ConstLabels: labels,
		}, []string{"lesson_type", "result", "reason"}),

		StaleRefreshesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "stale_refreshes_total",
			Help:        "Schedule refreshes discarded because a newer request superseded them",
			ConstLabels: labels,
		}, []string{"view"}),

		SubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Booking submissions by outcome",
			ConstLabels: labels,
		}, []string{"lesson_type", "result"}),

		UpstreamCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "lesson_service_call_duration_seconds",
			Help:        "Latency of calls to the lesson backend",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation", "outcome"}),

		CacheLookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "lesson_cache_lookups_total",
			Help:        "Lesson detail cache lookups",
			ConstLabels: labels,
		}, []string{"result"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "outcome"}),

		DBConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: labels,
		}, []string{"state"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SlotSelectionsTotal,
		m.DateSelectionsTotal,
		m.StaleRefreshesTotal,
		m.SubmissionsTotal,
		m.UpstreamCallDuration,
		m.CacheLookupsTotal,
		m.DBQueryDuration,
		m.DBConnections,
	)

	return m
}

// Helper methods are safe on a nil *Metrics (metrics disabled).

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// SlotSelection records a quantizer outcome; reason is empty for accepted slots
func (m *Metrics) SlotSelection(accepted bool, reason string) {
	if m == nil {
		return
	}
	m.SlotSelectionsTotal.WithLabelValues(result(accepted), reason).Inc()
}

// DateSelection records a calendar-cell transition outcome
func (m *Metrics) DateSelection(lessonType string, accepted bool, reason string) {
	if m == nil {
		return
	}
	m.DateSelectionsTotal.WithLabelValues(lessonType, result(accepted), reason).Inc()
}

// StaleRefresh records a discarded refresh for the given view
func (m *Metrics) StaleRefresh(view string) {
	if m == nil {
		return
	}
	m.StaleRefreshesTotal.WithLabelValues(view).Inc()
}

// Submission records a booking submission outcome
func (m *Metrics) Submission(lessonType, outcome string) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(lessonType, outcome).Inc()
}

// UpstreamCall records the latency of a lesson backend call
func (m *Metrics) UpstreamCall(operation string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamCallDuration.WithLabelValues(operation, outcome(err)).Observe(elapsed.Seconds())
}

// CacheLookup records a lesson cache hit or miss
func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return
	}
	m.CacheLookupsTotal.WithLabelValues("miss").Inc()
}

// DBQuery records the latency of one database call
func (m *Metrics) DBQuery(operation string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation, outcome(err)).Observe(elapsed.Seconds())
}

// DBPool records connection pool gauges
func (m *Metrics) DBPool(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues("open").Set(float64(open))
	m.DBConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.DBConnections.WithLabelValues("idle").Set(float64(idle))
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func result(accepted bool) string {
	if accepted {
		return "accepted"
	}
	return "rejected"
}
