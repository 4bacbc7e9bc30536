package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultHTTPPort, cfg.HTTP.Port)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
	assert.Equal(t, defaultSlowQuery, cfg.Storage.SlowQueryThreshold)
	assert.Equal(t, defaultPoolMonitor, cfg.Storage.PoolMonitorInterval)
	assert.Equal(t, defaultPoolWaitWarn, cfg.Storage.PoolWaitWarnThreshold)
	assert.False(t, cfg.Storage.MigrateSubscriptions)
	assert.Equal(t, entity.DefaultThresholds(), cfg.Thresholds())
	assert.Equal(t, defaultDashboardLimit, cfg.Alerts.DashboardLimit)
	assert.Equal(t, time.UTC.String(), cfg.Location().String())
	assert.Equal(t, defaultDispatchWorkers, cfg.Dispatch.Workers)
	assert.Equal(t, defaultSendTimeout, cfg.Dispatch.SendTimeout)
	assert.Equal(t, defaultRunTimeout, cfg.Dispatch.RunTimeout)
	assert.Equal(t, constants.PushTransportWebPush, cfg.Push.Transport)
	assert.Equal(t, defaultPushTTL, cfg.Push.TTL)
	assert.False(t, cfg.Registration.AllowAnonymous)
	assert.Equal(t, defaultCacheTTL, cfg.Cache.TTL)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsConfiguredThresholds(t *testing.T) {
	cfg := &Config{
		Alerts: &AlertsConfig{
			Thresholds: &entity.Thresholds{Insurance: 5, TechnicalInspection: 7, RegistrationTax: 0, Appointment: 2},
			Timezone:   "America/Argentina/Buenos_Aires",
		},
	}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, 5, cfg.Thresholds().Insurance)
	assert.Equal(t, 2, cfg.Thresholds().Appointment)
	assert.Equal(t, "America/Argentina/Buenos_Aires", cfg.Location().String())
}

func TestApplyDefaults_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{
			name: "negative threshold",
			cfg:  &Config{Alerts: &AlertsConfig{Thresholds: &entity.Thresholds{Insurance: -1}}},
		},
		{
			name: "unknown timezone",
			cfg:  &Config{Alerts: &AlertsConfig{Timezone: "Mars/Olympus"}},
		},
		{
			name: "unknown transport",
			cfg:  &Config{Push: &PushConfig{Transport: "carrier-pigeon"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.applyDefaults())
		})
	}
}
