package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"fleetalert/config"
	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/entity"

	"github.com/google/uuid"
)

func newTestConfig() *config.Config {
	thresholds := entity.DefaultThresholds()

	return &config.Config{
		Alerts: &config.AlertsConfig{
			Thresholds:     &thresholds,
			DashboardLimit: 5,
			Timezone:       "UTC",
		},
		Dispatch: &config.DispatchConfig{
			Workers:     4,
			SendTimeout: time.Second,
			RunTimeout:  time.Minute,
			Title:       "Fleet compliance alert",
		},
		Push:         &config.PushConfig{Transport: constants.PushTransportWebPush, TTL: 60},
		Registration: &config.RegistrationConfig{AllowAnonymous: true},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		t.Fatalf("invalid date %q: %v", value, err)
	}

	return parsed
}

func vehicleExpiring(t *testing.T, name string, kind entity.ComplianceKind, expiresOn string) *entity.VehicleRecord {
	t.Helper()

	due := mustDate(t, expiresOn)

	return &entity.VehicleRecord{
		ID:     uuid.New(),
		Name:   name,
		Status: entity.VehicleStatusActive,
		Compliance: map[entity.ComplianceKind]entity.ComplianceField{
			kind: {ExpiresOn: &due},
		},
	}
}

func newSubscriptions(n int) []*entity.PushSubscription {
	subscriptions := make([]*entity.PushSubscription, 0, n)
	for i := range n {
		subscriptions = append(subscriptions, &entity.PushSubscription{
			ID:       uuid.New(),
			OwnerID:  entity.SystemOwnerID,
			Endpoint: "https://push.example.com/" + string(rune('a'+i)),
			P256dh:   "key",
			Auth:     "auth",
		})
	}

	return subscriptions
}
