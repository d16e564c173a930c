package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	searchesTotal          *prometheus.CounterVec
	bookingsConfirmedTotal *prometheus.CounterVec
	favoritesToggledTotal  *prometheus.CounterVec

	dbOpenConnections *prometheus.GaugeVec
	dbWaitCount       prometheus.Gauge
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpRequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests being served",
			ConstLabels: labels,
		}),
		searchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "catalog_searches_total",
			Help:        "Catalog searches by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		bookingsConfirmedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_confirmed_total",
			Help:        "Bookings handed to the booking sink",
			ConstLabels: labels,
		}, []string{"category"}),
		favoritesToggledTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "favorites_toggled_total",
			Help:        "Favorite toggles by direction",
			ConstLabels: labels,
		}, []string{"direction"}),
		dbOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database pool connections by state",
			ConstLabels: labels,
		}, []string{"state"}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.httpRequestsInFlight,
		m.searchesTotal,
		m.bookingsConfirmedTotal,
		m.favoritesToggledTotal,
		m.dbOpenConnections,
		m.dbWaitCount,
	)

	return m
}

// ObserveHTTPRequest учитывает завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncInFlight / DecInFlight отслеживают запросы в обработке
func (m *Metrics) IncInFlight() { m.httpRequestsInFlight.Inc() }
func (m *Metrics) DecInFlight() { m.httpRequestsInFlight.Dec() }

// ObserveSearch учитывает поиск по каталогу
func (m *Metrics) ObserveSearch(found int) {
	outcome := "found"
	if found == 0 {
		outcome = "empty"
	}
	m.searchesTotal.WithLabelValues(outcome).Inc()
}

// ObserveBookingConfirmed учитывает подтвержденное бронирование
func (m *Metrics) ObserveBookingConfirmed(category string) {
	m.bookingsConfirmedTotal.WithLabelValues(category).Inc()
}

// ObserveFavoriteToggled учитывает добавление/удаление избранного
func (m *Metrics) ObserveFavoriteToggled(added bool) {
	direction := "removed"
	if added {
		direction = "added"
	}
	m.favoritesToggledTotal.WithLabelValues(direction).Inc()
}

// SetDBStats обновляет метрики пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	m.dbOpenConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.dbOpenConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.dbOpenConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}
