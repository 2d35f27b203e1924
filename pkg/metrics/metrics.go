package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллектор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	QuoteCacheTotal     *prometheus.CounterVec
	QuoteTotal          *prometheus.HistogramVec
	SlotBookingsTotal   *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре.
// В тестах используется отдельный prometheus.NewRegistry().
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "endpoint", "status"},
		),
		QuoteCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "quote_cache_requests_total",
				Help:        "Quote cache lookups by result (hit, miss)",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		QuoteTotal: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "quote_total_pounds",
				Help:        "Distribution of computed quote totals in pounds",
				ConstLabels: constLabels,
				Buckets:     []float64{100, 200, 350, 500, 750, 1000, 1500, 2500, 5000},
			},
			[]string{"service_type"},
		),
		SlotBookingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "slot_bookings_total",
				Help:        "Slot booking attempts by outcome",
				ConstLabels: constLabels,
			},
			[]string{"outcome"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.QuoteCacheTotal,
		m.QuoteTotal,
		m.SlotBookingsTotal,
	)

	return m
}

// CacheHit фиксирует попадание в кэш расчетов
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.QuoteCacheTotal.WithLabelValues("hit").Inc()
}

// CacheMiss фиксирует промах кэша расчетов
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.QuoteCacheTotal.WithLabelValues("miss").Inc()
}

// QuoteCalculated фиксирует итоговую сумму расчета
func (m *Metrics) QuoteCalculated(serviceType string, totalPounds float64) {
	if m == nil {
		return
	}
	m.QuoteTotal.WithLabelValues(serviceType).Observe(totalPounds)
}

// SlotBooking фиксирует результат попытки бронирования слота
func (m *Metrics) SlotBooking(outcome string) {
	if m == nil {
		return
	}
	m.SlotBookingsTotal.WithLabelValues(outcome).Inc()
}

// ObserveHTTPRequest фиксирует HTTP запрос и его длительность
func (m *Metrics) ObserveHTTPRequest(method, endpoint, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}
