package impl

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/entity"
	domainerrors "fleetalert/internal/domain/errors"
	"fleetalert/internal/domain/repository"
	"fleetalert/internal/domain/service"
	mockRepo "fleetalert/internal/mocks/repository"
	mockService "fleetalert/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dispatchServiceFixtures holds all test dependencies for dispatch service tests.
type dispatchServiceFixtures struct {
	service          *dispatchService
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	sender           *mockService.MockPushSender
	metrics          *mockService.MockMetrics
}

func createTestDispatchService(t *testing.T) dispatchServiceFixtures {
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	sender := mockService.NewMockPushSender(t)
	metrics := mockService.NewMockMetrics(t)

	srv := NewDispatchService(DispatchServiceParams{
		SubscriptionRepo: subscriptionRepo,
		Sender:           sender,
		Metrics:          metrics,
		Config:           newTestConfig(),
		Logger:           discardLogger(),
	}).(*dispatchService)

	sender.EXPECT().Transport().Return(constants.PushTransportWebPush).Maybe()

	return dispatchServiceFixtures{
		service:          srv,
		subscriptionRepo: subscriptionRepo,
		sender:           sender,
		metrics:          metrics,
	}
}

func sampleAlerts(t *testing.T, n int) []entity.AlertEvent {
	ref := mustDate(t, "2024-06-01")
	events := make([]entity.AlertEvent, 0, n)
	for i := range n {
		events = append(events, entity.AlertEvent{
			VehicleName: "Truck",
			Kind:        entity.ComplianceInsurance,
			Category:    entity.AlertCategoryExpiration,
			DueOn:       ref.AddDate(0, 0, i),
			DayOffset:   i,
			Urgency:     entity.UrgencyUpcoming,
		})
	}

	return events
}

func TestDispatchService_NoAlertsMakesNoTransportCalls(t *testing.T) {
	fx := createTestDispatchService(t)

	report, err := fx.service.Dispatch(context.Background(), nil, newSubscriptions(3))
	require.NoError(t, err)

	assert.Nil(t, report.Message)
	assert.Zero(t, report.Attempted)
	fx.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchService_NoSubscriptions(t *testing.T) {
	fx := createTestDispatchService(t)

	report, err := fx.service.Dispatch(context.Background(), sampleAlerts(t, 2), nil)
	require.NoError(t, err)

	require.NotNil(t, report.Message)
	assert.Zero(t, report.Attempted)
}

func TestDispatchService_MissingTransport(t *testing.T) {
	srv := NewDispatchService(DispatchServiceParams{
		SubscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		Metrics:          mockService.NewMockMetrics(t),
		Config:           newTestConfig(),
		Logger:           discardLogger(),
	})

	report, err := srv.Dispatch(context.Background(), sampleAlerts(t, 1), newSubscriptions(1))
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, domainerrors.ErrPushCredentialsMissing))
}

func TestDispatchService_NoAlertsWithoutTransport(t *testing.T) {
	srv := NewDispatchService(DispatchServiceParams{
		SubscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		Metrics:          mockService.NewMockMetrics(t),
		Config:           newTestConfig(),
		Logger:           discardLogger(),
	})

	report, err := srv.Dispatch(context.Background(), nil, newSubscriptions(2))
	require.NoError(t, err)

	require.NotNil(t, report)
	assert.Nil(t, report.Message)
	assert.Zero(t, report.Attempted)
}

func TestDispatchService_PerRecipientOutcomes(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	subscriptions := newSubscriptions(4)
	alerts := sampleAlerts(t, 2)

	fx.sender.EXPECT().Send(mock.Anything, subscriptions[0], mock.Anything).Return(nil)
	fx.sender.EXPECT().Send(mock.Anything, subscriptions[1], mock.Anything).
		Return(service.NewDeliveryError(http.StatusGone, "expired", nil))
	fx.sender.EXPECT().Send(mock.Anything, subscriptions[2], mock.Anything).
		Return(service.NewDeliveryError(http.StatusInternalServerError, "boom", nil))
	fx.sender.EXPECT().Send(mock.Anything, subscriptions[3], mock.Anything).
		Return(service.NewDeliveryError(http.StatusNotFound, "unknown", nil))

	fx.subscriptionRepo.EXPECT().Remove(mock.Anything, subscriptions[1].ID).Return(nil)
	fx.subscriptionRepo.EXPECT().Remove(mock.Anything, subscriptions[3].ID).Return(repository.ErrSubscriptionNotFound)

	fx.metrics.EXPECT().ObserveDelivery(service.DeliveryOutcomeSucceeded).Return().Once()
	fx.metrics.EXPECT().ObserveDelivery(service.DeliveryOutcomePruned).Return().Twice()
	fx.metrics.EXPECT().ObserveDelivery(service.DeliveryOutcomeFailed).Return().Once()

	report, err := fx.service.Dispatch(ctx, alerts, subscriptions)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Attempted)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 2, report.PrunedInvalid)
	assert.Equal(t, 1, report.OtherFailures)
	assert.Equal(t, report.Attempted, report.Succeeded+report.PrunedInvalid+report.OtherFailures)
	require.NotNil(t, report.Message)
	assert.Equal(t, "2", report.Message.Data["alerts_count"])
	assert.Len(t, report.Alerts, 2)
}

func TestDispatchService_SameMessageForEveryRecipient(t *testing.T) {
	fx := createTestDispatchService(t)
	subscriptions := newSubscriptions(3)

	var messages []*entity.PushMessage
	messageCh := make(chan *entity.PushMessage, len(subscriptions))
	fx.sender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.PushSubscription, msg *entity.PushMessage) error {
			messageCh <- msg

			return nil
		}).Times(3)
	fx.metrics.EXPECT().ObserveDelivery(service.DeliveryOutcomeSucceeded).Return().Times(3)

	_, err := fx.service.Dispatch(context.Background(), sampleAlerts(t, 5), subscriptions)
	require.NoError(t, err)

	close(messageCh)
	for msg := range messageCh {
		messages = append(messages, msg)
	}
	require.Len(t, messages, 3)
	assert.Same(t, messages[0], messages[1])
	assert.Same(t, messages[1], messages[2])
}

func TestDispatchService_FailedPruneCountsAsFailure(t *testing.T) {
	fx := createTestDispatchService(t)
	subscriptions := newSubscriptions(1)

	fx.sender.EXPECT().Send(mock.Anything, subscriptions[0], mock.Anything).
		Return(service.NewDeliveryError(http.StatusGone, "expired", nil))
	fx.subscriptionRepo.EXPECT().Remove(mock.Anything, subscriptions[0].ID).Return(errors.New("db down"))
	fx.metrics.EXPECT().ObserveDelivery(service.DeliveryOutcomeFailed).Return()

	report, err := fx.service.Dispatch(context.Background(), sampleAlerts(t, 1), subscriptions)
	require.NoError(t, err)

	assert.Zero(t, report.PrunedInvalid)
	assert.Equal(t, 1, report.OtherFailures)
}

func TestDispatchService_TransientErrorsNeverPrune(t *testing.T) {
	fx := createTestDispatchService(t)
	subscriptions := newSubscriptions(3)

	fx.sender.EXPECT().Send(mock.Anything, subscriptions[0], mock.Anything).
		Return(service.NewDeliveryError(http.StatusTooManyRequests, "slow down", nil))
	fx.sender.EXPECT().Send(mock.Anything, subscriptions[1], mock.Anything).
		Return(service.NewDeliveryError(0, "request failed", context.DeadlineExceeded))
	fx.sender.EXPECT().Send(mock.Anything, subscriptions[2], mock.Anything).
		Return(errors.New("unexpected"))
	fx.metrics.EXPECT().ObserveDelivery(service.DeliveryOutcomeFailed).Return().Times(3)

	report, err := fx.service.Dispatch(context.Background(), sampleAlerts(t, 1), subscriptions)
	require.NoError(t, err)

	assert.Equal(t, 3, report.OtherFailures)
	fx.subscriptionRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestDispatchService_BoundedConcurrency(t *testing.T) {
	fx := createTestDispatchService(t)
	fx.service.workers = 2
	subscriptions := newSubscriptions(10)

	var inFlight, maxInFlight atomic.Int32
	fx.sender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.PushSubscription, _ *entity.PushMessage) error {
			current := inFlight.Add(1)
			for {
				seen := maxInFlight.Load()
				if current <= seen || maxInFlight.CompareAndSwap(seen, current) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)

			return nil
		}).Times(10)
	fx.metrics.EXPECT().ObserveDelivery(service.DeliveryOutcomeSucceeded).Return().Times(10)

	report, err := fx.service.Dispatch(context.Background(), sampleAlerts(t, 1), subscriptions)
	require.NoError(t, err)

	assert.Equal(t, 10, report.Succeeded)
	assert.LessOrEqual(t, maxInFlight.Load(), int32(2))
}

func TestDispatchService_PerSendTimeout(t *testing.T) {
	fx := createTestDispatchService(t)
	fx.service.sendTimeout = 10 * time.Millisecond
	subscriptions := newSubscriptions(1)

	fx.sender.EXPECT().Send(mock.Anything, subscriptions[0], mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *entity.PushSubscription, _ *entity.PushMessage) error {
			<-ctx.Done()

			return service.NewDeliveryError(0, "request failed", ctx.Err())
		})
	fx.metrics.EXPECT().ObserveDelivery(service.DeliveryOutcomeFailed).Return()

	report, err := fx.service.Dispatch(context.Background(), sampleAlerts(t, 1), subscriptions)
	require.NoError(t, err)
	assert.Equal(t, 1, report.OtherFailures)
}

func TestDispatchService_CancelledRunAbandonsDeliveries(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fx.metrics.EXPECT().ObserveDelivery(service.DeliveryOutcomeFailed).Return().Times(3)

	report, err := fx.service.Dispatch(ctx, sampleAlerts(t, 1), newSubscriptions(3))
	require.NoError(t, err)

	assert.Equal(t, 3, report.Attempted)
	assert.Equal(t, 3, report.OtherFailures)
	fx.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}
