package impl

import (
	"context"
	"testing"
	"time"

	"fleetalert/internal/domain/entity"
	mockRepo "fleetalert/internal/mocks/repository"
	mockService "fleetalert/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// alertServiceFixtures holds all test dependencies for alert service tests.
type alertServiceFixtures struct {
	service     *alertService
	vehicleRepo *mockRepo.MockVehicleRepository
	cache       *mockService.MockAlertBoardCache
	metrics     *mockService.MockMetrics
}

func createTestAlertService(t *testing.T, now time.Time) alertServiceFixtures {
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)
	cache := mockService.NewMockAlertBoardCache(t)
	metrics := mockService.NewMockMetrics(t)
	cfg := newTestConfig()

	srv := NewAlertService(AlertServiceParams{
		VehicleRepo: vehicleRepo,
		Cache:       cache,
		Metrics:     metrics,
		Thresholds:  cfg.Alerts.Thresholds,
		Config:      cfg,
		Logger:      discardLogger(),
	}).(*alertService)
	srv.clock.now = func() time.Time { return now }

	return alertServiceFixtures{
		service:     srv,
		vehicleRepo: vehicleRepo,
		cache:       cache,
		metrics:     metrics,
	}
}

func TestAlertService_GetDashboardAlerts_RanksAndTruncates(t *testing.T) {
	ref := mustDate(t, "2024-06-01")
	fx := createTestAlertService(t, ref.Add(15*time.Hour))
	ctx := context.Background()

	vehicles := []*entity.VehicleRecord{
		vehicleExpiring(t, "V1", entity.ComplianceTechnicalInspection, "2024-06-10"),
		vehicleExpiring(t, "V2", entity.ComplianceInsurance, "2024-05-20"),
		vehicleExpiring(t, "V3", entity.ComplianceRegistrationTax, "2024-06-01"),
		vehicleExpiring(t, "V4", entity.ComplianceInsurance, "2024-06-05"),
		vehicleExpiring(t, "V5", entity.ComplianceInsurance, "2024-06-07"),
		vehicleExpiring(t, "V6", entity.ComplianceTechnicalInspection, "2024-06-20"),
		vehicleExpiring(t, "V7", entity.ComplianceInsurance, "2024-12-31"),
	}

	fx.cache.EXPECT().Get(ref).Return(nil, false)
	fx.metrics.EXPECT().IncDashboardCache(false).Return()
	fx.vehicleRepo.EXPECT().ListActiveVehicles(ctx).Return(vehicles, nil)
	fx.metrics.EXPECT().SetActiveAlerts(mock.AnythingOfType("entity.AlertSummary")).Return()
	fx.cache.EXPECT().Set(ref, mock.AnythingOfType("*entity.AlertBoard")).Return()

	// Zero reference date resolves to today
	board, err := fx.service.GetDashboardAlerts(ctx, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, ref, board.ReferenceDate)
	assert.Equal(t, 6, board.Total)
	assert.Len(t, board.Alerts, 5)
	assert.Equal(t, 1, board.Remaining)
	assert.False(t, board.Degraded)

	assert.Equal(t, "V2", board.Alerts[0].VehicleName)
	assert.Equal(t, -12, board.Alerts[0].DayOffset)
	assert.Equal(t, "V3", board.Alerts[1].VehicleName)
	assert.Equal(t, entity.UrgencyDueToday, board.Alerts[1].Urgency)

	assert.Equal(t, entity.AlertSummary{Expired: 1, DueToday: 1, Upcoming: 4, Total: 6}, board.Summary)
}

func TestAlertService_GetDashboardAlerts_CacheHit(t *testing.T) {
	ref := mustDate(t, "2024-06-01")
	fx := createTestAlertService(t, ref)

	cached := &entity.AlertBoard{ReferenceDate: ref, Total: 3}
	fx.cache.EXPECT().Get(ref).Return(cached, true)
	fx.metrics.EXPECT().IncDashboardCache(true).Return()

	board, err := fx.service.GetDashboardAlerts(context.Background(), ref.Add(9*time.Hour))
	require.NoError(t, err)
	assert.Same(t, cached, board)
}

func TestAlertService_GetDashboardAlerts_DegradesOnFetchFailure(t *testing.T) {
	ref := mustDate(t, "2024-06-01")
	fx := createTestAlertService(t, ref)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ref).Return(nil, false)
	fx.metrics.EXPECT().IncDashboardCache(false).Return()
	fx.vehicleRepo.EXPECT().ListActiveVehicles(ctx).Return(nil, errors.New("connection refused"))

	board, err := fx.service.GetDashboardAlerts(ctx, ref)
	require.NoError(t, err)

	assert.True(t, board.Degraded)
	assert.Empty(t, board.Alerts)
	assert.NotNil(t, board.Alerts)
	assert.Zero(t, board.Total)
}

func TestAlertService_GetDashboardAlerts_PastDateDoesNotTouchGauges(t *testing.T) {
	today := mustDate(t, "2024-06-01")
	past := mustDate(t, "2024-05-01")
	fx := createTestAlertService(t, today)
	ctx := context.Background()

	fx.cache.EXPECT().Get(past).Return(nil, false)
	fx.metrics.EXPECT().IncDashboardCache(false).Return()
	fx.vehicleRepo.EXPECT().ListActiveVehicles(ctx).Return([]*entity.VehicleRecord{}, nil)
	fx.cache.EXPECT().Set(past, mock.AnythingOfType("*entity.AlertBoard")).Return()

	board, err := fx.service.GetDashboardAlerts(ctx, past)
	require.NoError(t, err)
	assert.Zero(t, board.Total)
	assert.NotNil(t, board.Alerts)
}
