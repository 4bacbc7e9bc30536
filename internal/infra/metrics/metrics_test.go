package metrics

import (
	"testing"
	"time"

	"fleetalert/config"
	"fleetalert/internal/domain/entity"
	"fleetalert/internal/domain/service"
	"fleetalert/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNew_DisabledReturnsNoop(t *testing.T) {
	m := New(&config.Config{Metrics: &config.MetricsConfig{Enabled: false}})

	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	m.ObserveDelivery(service.DeliveryOutcomeSucceeded)
	m.ObserveRun(&entity.RunReport{}, nil, time.Second)
	m.SetActiveAlerts(entity.AlertSummary{Expired: 1})
	m.IncDashboardCache(true)
}

func TestPrometheusMetrics(t *testing.T) {
	m := newPrometheusMetrics(prometheus.NewRegistry())

	m.ObserveDelivery(service.DeliveryOutcomeSucceeded)
	m.ObserveDelivery(service.DeliveryOutcomeSucceeded)
	m.ObserveDelivery(service.DeliveryOutcomePruned)
	assert.InDelta(t, 2, testutil.ToFloat64(m.deliveriesTotal.WithLabelValues(service.DeliveryOutcomeSucceeded)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.deliveriesTotal.WithLabelValues(service.DeliveryOutcomePruned)), 0)

	m.ObserveRun(&entity.RunReport{AlertsCount: 4, Sent: 3}, nil, 2*time.Second)
	m.ObserveRun(nil, errors.New("fetch failed"), time.Second)
	assert.InDelta(t, 1, testutil.ToFloat64(m.runsTotal.WithLabelValues("ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.runsTotal.WithLabelValues("error")), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(m.lastRunAlerts), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.lastRunSent), 0)

	m.SetActiveAlerts(entity.AlertSummary{Expired: 2, DueToday: 1, Upcoming: 5})
	assert.InDelta(t, 2, testutil.ToFloat64(m.activeAlerts.WithLabelValues(string(entity.UrgencyExpired))), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(m.activeAlerts.WithLabelValues(string(entity.UrgencyUpcoming))), 0)

	m.IncDashboardCache(true)
	m.IncDashboardCache(false)
	m.IncDashboardCache(false)
	assert.InDelta(t, 1, testutil.ToFloat64(m.dashboardCache.WithLabelValues("hit")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.dashboardCache.WithLabelValues("miss")), 0)
}
