package impl

import (
	"context"
	"testing"
	"time"

	"fleetalert/internal/domain/entity"
	domainerrors "fleetalert/internal/domain/errors"
	mockRepo "fleetalert/internal/mocks/repository"
	mockService "fleetalert/internal/mocks/service"
	mockUsecase "fleetalert/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// runnerServiceFixtures holds all test dependencies for runner service tests.
type runnerServiceFixtures struct {
	service          *runnerService
	vehicleRepo      *mockRepo.MockVehicleRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	dispatcher       *mockUsecase.MockDispatchUsecase
	metrics          *mockService.MockMetrics
}

func createTestRunnerService(t *testing.T, now time.Time) runnerServiceFixtures {
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	dispatcher := mockUsecase.NewMockDispatchUsecase(t)
	metrics := mockService.NewMockMetrics(t)
	cfg := newTestConfig()

	srv := NewRunnerService(RunnerServiceParams{
		VehicleRepo:      vehicleRepo,
		SubscriptionRepo: subscriptionRepo,
		Dispatcher:       dispatcher,
		Metrics:          metrics,
		Thresholds:       cfg.Alerts.Thresholds,
		Config:           cfg,
		Logger:           discardLogger(),
	}).(*runnerService)
	srv.clock.now = func() time.Time { return now }

	return runnerServiceFixtures{
		service:          srv,
		vehicleRepo:      vehicleRepo,
		subscriptionRepo: subscriptionRepo,
		dispatcher:       dispatcher,
		metrics:          metrics,
	}
}

func TestRunnerService_Run(t *testing.T) {
	ref := mustDate(t, "2024-06-01")
	fx := createTestRunnerService(t, ref)

	v1 := vehicleExpiring(t, "V1", entity.ComplianceTechnicalInspection, "2024-06-10")
	v2 := vehicleExpiring(t, "V2", entity.ComplianceInsurance, "2024-05-20")
	subscriptions := newSubscriptions(3)

	fx.vehicleRepo.EXPECT().ListActiveVehicles(mock.Anything).Return([]*entity.VehicleRecord{v1, v2}, nil)
	fx.subscriptionRepo.EXPECT().ListAll(mock.Anything).Return(subscriptions, nil)
	fx.dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything, subscriptions).
		RunAndReturn(func(_ context.Context, alerts []entity.AlertEvent, subs []*entity.PushSubscription) (*entity.DispatchReport, error) {
			// Dispatch receives the untruncated ranked list
			require.Len(t, alerts, 2)
			assert.Equal(t, v2.ID, alerts[0].VehicleID)
			assert.Equal(t, v1.ID, alerts[1].VehicleID)

			return &entity.DispatchReport{Attempted: len(subs), Succeeded: 2, PrunedInvalid: 1, Alerts: alerts}, nil
		})
	fx.metrics.EXPECT().ObserveRun(mock.AnythingOfType("*entity.RunReport"), nil, mock.AnythingOfType("time.Duration")).Return()

	report, err := fx.service.Run(context.Background(), time.Time{})
	require.NoError(t, err)

	assert.Equal(t, ref, report.ReferenceDate)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 3, report.TotalSubscriptions)
	assert.Equal(t, 2, report.AlertsCount)
	assert.Equal(t, 1, report.Pruned)
	assert.Zero(t, report.Failed)
	require.Len(t, report.Details, 2)
	assert.Equal(t, -12, report.Details[0].DayOffset)
	assert.Equal(t, entity.UrgencyExpired, report.Details[0].Urgency)
	assert.Equal(t, 9, report.Details[1].DayOffset)
	assert.Equal(t, entity.UrgencyUpcoming, report.Details[1].Urgency)
}

func TestRunnerService_VehicleFetchFailureAbortsBeforeDispatch(t *testing.T) {
	ref := mustDate(t, "2024-06-01")
	fx := createTestRunnerService(t, ref)

	fx.vehicleRepo.EXPECT().ListActiveVehicles(mock.Anything).Return(nil, errors.New("timeout"))
	fx.metrics.EXPECT().ObserveRun((*entity.RunReport)(nil), mock.Anything, mock.Anything).Return()

	report, err := fx.service.Run(context.Background(), ref)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, domainerrors.ErrVehicleFetchFailed))
	assert.Contains(t, err.Error(), "timeout")

	fx.subscriptionRepo.AssertNotCalled(t, "ListAll", mock.Anything)
	fx.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunnerService_SubscriptionFetchFailureAbortsBeforeDispatch(t *testing.T) {
	ref := mustDate(t, "2024-06-01")
	fx := createTestRunnerService(t, ref)

	fx.vehicleRepo.EXPECT().ListActiveVehicles(mock.Anything).Return([]*entity.VehicleRecord{
		vehicleExpiring(t, "V1", entity.ComplianceInsurance, "2024-06-02"),
	}, nil)
	fx.subscriptionRepo.EXPECT().ListAll(mock.Anything).Return(nil, errors.New("timeout"))
	fx.metrics.EXPECT().ObserveRun((*entity.RunReport)(nil), mock.Anything, mock.Anything).Return()

	_, err := fx.service.Run(context.Background(), ref)
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionFetchFailed))
	fx.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunnerService_MissingTransportIsFatal(t *testing.T) {
	ref := mustDate(t, "2024-06-01")
	fx := createTestRunnerService(t, ref)

	fx.vehicleRepo.EXPECT().ListActiveVehicles(mock.Anything).Return([]*entity.VehicleRecord{}, nil)
	fx.subscriptionRepo.EXPECT().ListAll(mock.Anything).Return(newSubscriptions(1), nil)
	fx.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrPushCredentialsMissing)
	fx.metrics.EXPECT().ObserveRun((*entity.RunReport)(nil), domainerrors.ErrPushCredentialsMissing, mock.Anything).Return()

	_, err := fx.service.Run(context.Background(), ref)
	assert.True(t, errors.Is(err, domainerrors.ErrPushCredentialsMissing))
}

func TestRunnerService_AppliesRunTimeout(t *testing.T) {
	ref := mustDate(t, "2024-06-01")
	fx := createTestRunnerService(t, ref)

	fx.vehicleRepo.EXPECT().ListActiveVehicles(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]*entity.VehicleRecord, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)

			return []*entity.VehicleRecord{}, nil
		})
	fx.subscriptionRepo.EXPECT().ListAll(mock.Anything).Return([]*entity.PushSubscription{}, nil)
	fx.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.DispatchReport{}, nil)
	fx.metrics.EXPECT().ObserveRun(mock.Anything, nil, mock.Anything).Return()

	report, err := fx.service.Run(context.Background(), ref)
	require.NoError(t, err)
	assert.Zero(t, report.AlertsCount)
	assert.NotNil(t, report.Details)
}
