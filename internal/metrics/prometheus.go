package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the service's metrics and the registry they live on.
// All recording methods are safe to call on a nil *Manager.
type Manager struct {
	namespace         string
	subsystem         string
	histogramBuckets  []float64
	enabled           bool
	runtimeCollectors bool
	registry          *prometheus.Registry

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Questions
	questionsCreated prometheus.Counter
	questionsDeleted prometheus.Counter
	questionSearches prometheus.Counter
	storeErrors      *prometheus.CounterVec

	// Quiz
	quizQuestionsServed prometheus.Counter
	quizzesCompleted    prometheus.Counter
}

// NewManager creates a metrics manager on its own registry unless
// WithPrometheusRegistry is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "trivia",
		subsystem:        "api",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	if m.runtimeCollectors {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"route", "method"},
	)

	m.questionsCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "questions_created_total",
		Help:      "Total number of questions created",
	})

	m.questionsDeleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "questions_deleted_total",
		Help:      "Total number of questions deleted",
	})

	m.questionSearches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "question_searches_total",
		Help:      "Total number of question searches",
	})

	m.storeErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "store_errors_total",
			Help:      "Total number of failed store operations by operation",
		},
		[]string{"operation"},
	)

	m.quizQuestionsServed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "quiz_questions_served_total",
		Help:      "Total number of quiz questions served",
	})

	m.quizzesCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "quizzes_completed_total",
		Help:      "Total number of quiz requests with no question left",
	})
}

func (m *Manager) active() bool {
	return m != nil && m.enabled
}

// ObserveHTTPRequest records one handled request. route is the matched
// route pattern, not the raw path.
func (m *Manager) ObserveHTTPRequest(route, method string, status int, duration time.Duration) {
	if !m.active() {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

func (m *Manager) RecordQuestionCreated() {
	if m.active() {
		m.questionsCreated.Inc()
	}
}

func (m *Manager) RecordQuestionDeleted() {
	if m.active() {
		m.questionsDeleted.Inc()
	}
}

func (m *Manager) RecordQuestionSearch() {
	if m.active() {
		m.questionSearches.Inc()
	}
}

func (m *Manager) RecordStoreError(operation string) {
	if m.active() {
		m.storeErrors.WithLabelValues(operation).Inc()
	}
}

func (m *Manager) RecordQuizQuestionServed() {
	if m.active() {
		m.quizQuestionsServed.Inc()
	}
}

func (m *Manager) RecordQuizCompleted() {
	if m.active() {
		m.quizzesCompleted.Inc()
	}
}

// Registry returns the registry backing this manager.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
