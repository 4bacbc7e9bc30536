package impl

import (
	"context"
	"log/slog"
	"strings"

	"fleetalert/config"
	deliverycontext "fleetalert/internal/delivery/context"
	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/entity"
	domainerrors "fleetalert/internal/domain/errors"
	"fleetalert/internal/domain/repository"
	"fleetalert/internal/errors"
	"fleetalert/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// pushSubscriptionService implements the SubscriptionUsecase interface.
type pushSubscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	transport        string
	allowAnonymous   bool
	logger           *slog.Logger
}

// PushSubscriptionServiceParams holds dependencies for PushSubscriptionService, injected by Fx.
type PushSubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewPushSubscriptionService is the constructor for pushSubscriptionService.
func NewPushSubscriptionService(params PushSubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &pushSubscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		transport:        params.Config.Push.Transport,
		allowAnonymous:   params.Config.Registration.AllowAnonymous,
		logger:           params.Logger,
	}
}

func (srv *pushSubscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register upserts the subscription keyed by its endpoint.
func (srv *pushSubscriptionService) Register(
	ctx context.Context,
	owner *uuid.UUID,
	input *usecase.RegisterSubscriptionInput,
) (*entity.PushSubscription, error) {
	ownerID := entity.SystemOwnerID
	switch {
	case owner != nil && *owner != uuid.Nil:
		ownerID = *owner
	case !srv.allowAnonymous:
		return nil, domainerrors.ErrSubscriptionOwnerRequired
	}

	subscription := &entity.PushSubscription{
		OwnerID:   ownerID,
		Endpoint:  strings.TrimSpace(input.Endpoint),
		P256dh:    strings.TrimSpace(input.P256dh),
		Auth:      strings.TrimSpace(input.Auth),
		UserAgent: input.UserAgent,
	}
	if subscription.Endpoint == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("endpoint is required")
	}
	if srv.transport == constants.PushTransportWebPush && (subscription.P256dh == "" || subscription.Auth == "") {
		return nil, domainerrors.ErrSubscriptionKeysRequired
	}

	if err := srv.subscriptionRepo.Upsert(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to register push subscription")
	}

	srv.log(ctx).InfoContext(ctx, "Push subscription registered",
		slog.String("subscriptionID", subscription.ID.String()),
		slog.Bool("anonymous", subscription.IsSystemOwned()),
	)

	return subscription, nil
}

// Unregister removes the subscription for endpoint.
func (srv *pushSubscriptionService) Unregister(ctx context.Context, endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return domainerrors.ErrValidationFailed.WithDetails("endpoint is required")
	}

	if err := srv.subscriptionRepo.RemoveByEndpoint(ctx, endpoint); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to unregister push subscription")
	}

	return nil
}
