package bot

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics: счётчики роутера и обработчиков
type Metrics struct {
	updates        *prometheus.CounterVec
	routed         *prometheus.CounterVec
	dropped        prometheus.Counter
	handlerErrors  *prometheus.CounterVec
	userErrors     *prometheus.CounterVec
	fetchLatency   prometheus.Histogram
	dialogueStates prometheus.Gauge
	users          prometheus.Gauge
}

// NewMetrics создаёт метрики и регистрирует их в reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "weatherhub_updates_total",
			Help: "Входящие апдейты по виду",
		}, []string{"kind"}),
		routed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "weatherhub_routed_updates_total",
			Help: "Апдейты, переданные обработчику",
		}, []string{"route"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "weatherhub_dropped_updates_total",
			Help: "Апдейты без подходящего обработчика",
		}),
		handlerErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "weatherhub_handler_errors_total",
			Help: "Ошибки обработчиков, дошедшие до транспорта",
		}, []string{"route"}),
		userErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "weatherhub_user_errors_total",
			Help: "Ошибки, показанные пользователю",
		}, []string{"kind"}),
		fetchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "weatherhub_forecast_fetch_seconds",
			Help:    "Время запроса прогноза",
			Buckets: prometheus.DefBuckets,
		}),
		dialogueStates: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "weatherhub_dialogue_states",
			Help: "Пользователи, от которых ждём город",
		}),
		users: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "weatherhub_users",
			Help: "Пользователи с сохранённым городом",
		}),
	}

	reg.MustRegister(
		m.updates,
		m.routed,
		m.dropped,
		m.handlerErrors,
		m.userErrors,
		m.fetchLatency,
		m.dialogueStates,
		m.users,
	)

	return m
}

func (m *Metrics) RecordUpdate(kind Kind) {
	m.updates.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) RecordRouted(route string) {
	m.routed.WithLabelValues(route).Inc()
}

func (m *Metrics) RecordDropped() {
	m.dropped.Inc()
}

func (m *Metrics) RecordHandlerError(route string) {
	m.handlerErrors.WithLabelValues(route).Inc()
}

func (m *Metrics) RecordUserError(kind ErrorKind) {
	m.userErrors.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) ObserveFetch(d time.Duration) {
	m.fetchLatency.Observe(d.Seconds())
}

// SetDialogueStates обновляется планировщиком
func (m *Metrics) SetDialogueStates(n int) {
	m.dialogueStates.Set(float64(n))
}

func (m *Metrics) SetUsers(n int64) {
	m.users.Set(float64(n))
}
