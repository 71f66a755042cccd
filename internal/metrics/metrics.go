package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors of the service. All Record methods
// are safe to call on a nil *Metrics.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Clock metrics
	ClockTicksTotal prometheus.Counter
	ClockDay        prometheus.Gauge

	// Executor metrics
	ExecutionsTotal      *prometheus.CounterVec
	ExecutionDuration    *prometheus.HistogramVec
	ExecutionsInFlight   prometheus.Gauge
	PublishAttemptsTotal *prometheus.CounterVec

	// Rebalancer metrics
	RebalanceRunsTotal *prometheus.CounterVec
	CampaignBudget     *prometheus.GaugeVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		ClockTicksTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "game_clock_ticks_total",
				Help: "Number of simulated days advanced by the game clock",
			},
		),
		ClockDay: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "game_clock_current_date_seconds",
				Help: "Current game date as a unix timestamp",
			},
		),

		ExecutionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_executions_total",
				Help: "Schedule entries executed, by channel and outcome",
			},
			[]string{"channel", "status"},
		),
		ExecutionDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campaign_execution_duration_seconds",
				Help:    "Duration of the execution pipeline per entry",
				Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"channel"},
		),
		ExecutionsInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "campaign_executions_in_flight",
				Help: "Number of schedule entries currently executing",
			},
		),
		PublishAttemptsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_publish_attempts_total",
				Help: "Publish attempts, by channel and outcome",
			},
			[]string{"channel", "outcome"},
		),

		RebalanceRunsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_rebalance_runs_total",
				Help: "Rebalancing cycles, by outcome",
			},
			[]string{"outcome"},
		),
		CampaignBudget: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "campaign_assigned_budget",
				Help: "Assigned budget per campaign in minor currency units",
			},
			[]string{"campaign_id"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) RecordTick(date time.Time) {
	if m == nil {
		return
	}
	m.ClockTicksTotal.Inc()
	m.ClockDay.Set(float64(date.Unix()))
}

func (m *Metrics) ExecutionStarted() {
	if m == nil {
		return
	}
	m.ExecutionsInFlight.Inc()
}

func (m *Metrics) RecordExecution(channel, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.ExecutionsInFlight.Dec()
	m.ExecutionsTotal.WithLabelValues(channel, status).Inc()
	m.ExecutionDuration.WithLabelValues(channel).Observe(d.Seconds())
}

func (m *Metrics) RecordPublishAttempt(channel, outcome string) {
	if m == nil {
		return
	}
	m.PublishAttemptsTotal.WithLabelValues(channel, outcome).Inc()
}

func (m *Metrics) RecordRebalance(outcome string) {
	if m == nil {
		return
	}
	m.RebalanceRunsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordBudget(campaignID string, budget int64) {
	if m == nil {
		return
	}
	m.CampaignBudget.WithLabelValues(campaignID).Set(float64(budget))
}
