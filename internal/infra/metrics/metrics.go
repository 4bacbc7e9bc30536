// Package metrics exposes alert engine activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"fleetalert/config"
	"fleetalert/internal/domain/entity"
	"fleetalert/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fleetalert"

type prometheusMetrics struct {
	deliveriesTotal *prometheus.CounterVec
	runsTotal       *prometheus.CounterVec
	runDuration     prometheus.Histogram
	lastRunAlerts   prometheus.Gauge
	lastRunSent     prometheus.Gauge
	activeAlerts    *prometheus.GaugeVec
	dashboardCache  *prometheus.CounterVec
}

// New creates the Prometheus-backed metrics, or a no-op implementation when metrics are disabled.
func New(cfg *config.Config) service.Metrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return &noopMetrics{}
	}

	return newPrometheusMetrics(prometheus.DefaultRegisterer)
}

func newPrometheusMetrics(registerer prometheus.Registerer) *prometheusMetrics {
	factory := promauto.With(registerer)

	return &prometheusMetrics{
		deliveriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_deliveries_total",
			Help:      "Push delivery attempts by outcome",
		}, []string{"outcome"}),

		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_runs_total",
			Help:      "Alert runs by result",
		}, []string{"result"}),

		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "alert_run_duration_seconds",
			Help:      "Duration of alert runs in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		lastRunAlerts: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "alert_run_last_alerts",
			Help:      "Number of alerts found by the last successful run",
		}),

		lastRunSent: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "alert_run_last_sent",
			Help:      "Number of successful deliveries in the last successful run",
		}),

		activeAlerts: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_alerts",
			Help:      "Alerts currently shown on the dashboard by urgency",
		}, []string{"urgency"}),

		dashboardCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_cache_requests_total",
			Help:      "Dashboard alert cache lookups by result",
		}, []string{"result"}),
	}
}

func (m *prometheusMetrics) ObserveDelivery(outcome string) {
	m.deliveriesTotal.WithLabelValues(outcome).Inc()
}

func (m *prometheusMetrics) ObserveRun(report *entity.RunReport, err error, duration time.Duration) {
	m.runDuration.Observe(duration.Seconds())

	if err != nil {
		m.runsTotal.WithLabelValues("error").Inc()

		return
	}

	m.runsTotal.WithLabelValues("ok").Inc()
	if report != nil {
		m.lastRunAlerts.Set(float64(report.AlertsCount))
		m.lastRunSent.Set(float64(report.Sent))
	}
}

func (m *prometheusMetrics) SetActiveAlerts(summary entity.AlertSummary) {
	m.activeAlerts.WithLabelValues(string(entity.UrgencyExpired)).Set(float64(summary.Expired))
	m.activeAlerts.WithLabelValues(string(entity.UrgencyDueToday)).Set(float64(summary.DueToday))
	m.activeAlerts.WithLabelValues(string(entity.UrgencyUpcoming)).Set(float64(summary.Upcoming))
	m.activeAlerts.WithLabelValues(string(entity.UrgencyScheduled)).Set(float64(summary.Scheduled))
}

func (m *prometheusMetrics) IncDashboardCache(hit bool) {
	if hit {
		m.dashboardCache.WithLabelValues("hit").Inc()
	} else {
		m.dashboardCache.WithLabelValues("miss").Inc()
	}
}

// Handler serves the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) ObserveDelivery(_ string)                                 {}
func (n *noopMetrics) ObserveRun(_ *entity.RunReport, _ error, _ time.Duration) {}
func (n *noopMetrics) SetActiveAlerts(_ entity.AlertSummary)                    {}
func (n *noopMetrics) IncDashboardCache(_ bool)                                 {}
