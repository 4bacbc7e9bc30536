package impl

import (
	"context"
	"testing"

	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/entity"
	domainerrors "fleetalert/internal/domain/errors"
	"fleetalert/internal/domain/repository"
	mockRepo "fleetalert/internal/mocks/repository"
	"fleetalert/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushSubscriptionServiceFixtures holds all test dependencies for push subscription service tests.
type pushSubscriptionServiceFixtures struct {
	service          usecase.SubscriptionUsecase
	subscriptionRepo *mockRepo.MockSubscriptionRepository
}

func createTestPushSubscriptionService(t *testing.T, transport string, allowAnonymous bool) pushSubscriptionServiceFixtures {
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	cfg := newTestConfig()
	cfg.Push.Transport = transport
	cfg.Registration.AllowAnonymous = allowAnonymous

	return pushSubscriptionServiceFixtures{
		service: NewPushSubscriptionService(PushSubscriptionServiceParams{
			SubscriptionRepo: subscriptionRepo,
			Config:           cfg,
			Logger:           discardLogger(),
		}),
		subscriptionRepo: subscriptionRepo,
	}
}

var webPushInput = &usecase.RegisterSubscriptionInput{
	Endpoint:  " https://push.example.com/abc ",
	P256dh:    "BNcRdreALRFXTkOOUHK1EtK2wtaz5Ry4YfYCA_0QTpQtUbVlUls0VJXg7A8u-Ts1XbjhazAkj7I99e8QcYP7DkM",
	Auth:      "tBHItJI5svbpez7KI4CCXg",
	UserAgent: "Mozilla/5.0",
}

func TestPushSubscriptionService_Register_Anonymous(t *testing.T) {
	fx := createTestPushSubscriptionService(t, constants.PushTransportWebPush, true)
	ctx := context.Background()
	storedID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.PushSubscription")).
		Run(func(_ context.Context, sub *entity.PushSubscription) {
			sub.ID = storedID
		}).
		Return(nil)

	subscription, err := fx.service.Register(ctx, nil, webPushInput)
	require.NoError(t, err)

	assert.Equal(t, storedID, subscription.ID)
	assert.Equal(t, entity.SystemOwnerID, subscription.OwnerID)
	assert.True(t, subscription.IsSystemOwned())
	assert.Equal(t, "https://push.example.com/abc", subscription.Endpoint)
}

func TestPushSubscriptionService_Register_WithOwner(t *testing.T) {
	fx := createTestPushSubscriptionService(t, constants.PushTransportWebPush, false)
	ctx := context.Background()
	owner := uuid.New()

	fx.subscriptionRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(sub *entity.PushSubscription) bool {
			return sub.OwnerID == owner
		})).
		Return(nil)

	subscription, err := fx.service.Register(ctx, &owner, webPushInput)
	require.NoError(t, err)
	assert.Equal(t, owner, subscription.OwnerID)
}

func TestPushSubscriptionService_Register_Rejections(t *testing.T) {
	tests := []struct {
		name           string
		transport      string
		allowAnonymous bool
		input          *usecase.RegisterSubscriptionInput
		wantErr        error
	}{
		{
			name:           "anonymous registration disabled",
			transport:      constants.PushTransportWebPush,
			allowAnonymous: false,
			input:          webPushInput,
			wantErr:        domainerrors.ErrSubscriptionOwnerRequired,
		},
		{
			name:           "web push without keys",
			transport:      constants.PushTransportWebPush,
			allowAnonymous: true,
			input:          &usecase.RegisterSubscriptionInput{Endpoint: "https://push.example.com/abc"},
			wantErr:        domainerrors.ErrSubscriptionKeysRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushSubscriptionService(t, tt.transport, tt.allowAnonymous)

			subscription, err := fx.service.Register(context.Background(), nil, tt.input)
			assert.Nil(t, subscription)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestPushSubscriptionService_Register_FCMTokenNeedsNoKeys(t *testing.T) {
	fx := createTestPushSubscriptionService(t, constants.PushTransportFCM, true)
	ctx := context.Background()

	fx.subscriptionRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.PushSubscription")).Return(nil)

	subscription, err := fx.service.Register(ctx, nil, &usecase.RegisterSubscriptionInput{Endpoint: "fcm-token"})
	require.NoError(t, err)
	assert.Equal(t, "fcm-token", subscription.Endpoint)
}

func TestPushSubscriptionService_Unregister(t *testing.T) {
	fx := createTestPushSubscriptionService(t, constants.PushTransportWebPush, true)
	ctx := context.Background()

	fx.subscriptionRepo.EXPECT().RemoveByEndpoint(ctx, "https://push.example.com/abc").Return(nil).Once()
	fx.subscriptionRepo.EXPECT().RemoveByEndpoint(ctx, "https://push.example.com/gone").Return(repository.ErrSubscriptionNotFound).Once()

	require.NoError(t, fx.service.Unregister(ctx, "https://push.example.com/abc"))

	err := fx.service.Unregister(ctx, "https://push.example.com/gone")
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionNotFound))

	err = fx.service.Unregister(ctx, "  ")
	assert.Error(t, err)
}
