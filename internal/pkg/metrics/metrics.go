package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// 登録結果のラベル値
const (
	RegistrationSuccess       = "success"
	RegistrationConflict      = "conflict"
	RegistrationEventNotFound = "event_not_found"
	RegistrationError         = "error"
)

// Metrics はアプリケーションのメトリクスを管理する
type Metrics struct {
	// HTTPリクエストの総数（method, path, status_code）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPリクエストのレイテンシ（method, path）
	HTTPRequestDuration *prometheus.HistogramVec

	// 登録の総数（status: success, conflict, event_not_found, error）
	RegistrationsTotal *prometheus.CounterVec

	// 登録処理にかかった時間
	RegistrationLatency prometheus.Histogram

	// 保持しているセッション数
	ActiveSessions prometheus.Gauge

	// アイドルで破棄されたセッション数
	SessionsEvictedTotal prometheus.Counter
}

// New は新しいMetricsインスタンスを作成し、デフォルトレジストリに登録する
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry は指定したレジストリにメトリクスを登録する
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RegistrationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "registrations_total",
				Help: "Total number of registration attempts",
			},
			[]string{"status"},
		),
		RegistrationLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "registration_latency_seconds",
				Help:    "Time spent completing a registration",
				Buckets: []float64{.01, .05, .1, .25, .5, .75, 1, 2.5, 5},
			},
		),
		ActiveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_sessions",
				Help: "Current number of tracked sessions",
			},
		),
		SessionsEvictedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sessions_evicted_total",
				Help: "Total number of sessions evicted after idling",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.RegistrationsTotal,
		m.RegistrationLatency,
		m.ActiveSessions,
		m.SessionsEvictedTotal,
	)

	return m
}

// ObserveRegistration は登録結果と所要時間を記録する
func (m *Metrics) ObserveRegistration(status string, seconds float64) {
	if m == nil {
		return
	}
	m.RegistrationsTotal.WithLabelValues(status).Inc()
	if status == RegistrationSuccess {
		m.RegistrationLatency.Observe(seconds)
	}
}

// SetActiveSessions はセッション数を更新する
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}

// AddEvictedSessions は破棄したセッション数を加算する
func (m *Metrics) AddEvictedSessions(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SessionsEvictedTotal.Add(float64(n))
}
