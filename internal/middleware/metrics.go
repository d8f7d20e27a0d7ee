package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UnresolvedController - значение метки controller для запросов,
// не дошедших до контроллера (служебные маршруты, ошибки разбора).
const UnresolvedController = "-"

// MetricsConfig настраивает метрики Prometheus.
type MetricsConfig struct {
	// Namespace - префикс имен метрик (по умолчанию "gyg").
	Namespace string

	// Buckets - границы гистограммы длительности запросов.
	Buckets []float64

	// Registry - реестр, в котором регистрируются метрики.
	// По умолчанию prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption изменяет MetricsConfig
type MetricsOption func(*MetricsConfig)

// WithNamespace задает префикс имен метрик
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithBuckets задает границы гистограммы
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry задает реестр Prometheus
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "gyg",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics собирает метрики HTTP запросов в разрезе контроллеров
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics регистрирует метрики. Повторная регистрация в одном реестре
// приводит к панике, поэтому для каждого реестра Metrics создается один раз.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by controller and status",
		}, []string{"controller", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds by controller",
			Buckets:   config.Buckets,
		}, []string{"controller"}),
	}
}

// controllerLabel заполняется обработчиком после разрешения запроса
type controllerLabel struct {
	value string
}

type controllerLabelKey struct{}

// SetController сообщает метрикам, какой контроллер обработал запрос.
// Вне Metrics.Middleware ничего не делает.
func SetController(ctx context.Context, controllerID string) {
	if l, ok := ctx.Value(controllerLabelKey{}).(*controllerLabel); ok {
		l.value = controllerID
	}
}

// Middleware считает запросы и их длительность
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		label := &controllerLabel{value: UnresolvedController}
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), controllerLabelKey{}, label)))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.Observe(label.value, status, time.Since(start))
	})
}

// Observe учитывает один обработанный запрос
func (m *Metrics) Observe(controllerID string, status int, d time.Duration) {
	m.requestsTotal.WithLabelValues(controllerID, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(controllerID).Observe(d.Seconds())
}
