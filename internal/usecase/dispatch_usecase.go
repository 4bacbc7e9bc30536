package usecase

import (
	"context"

	"fleetalert/internal/domain/entity"
)

// DispatchUsecase fans one alert message out to a subscription snapshot
type DispatchUsecase interface {
	// Dispatch sends a single message summarizing alerts to every subscription.
	// No transport call is made when alerts is empty. Individual delivery failures never fail the call;
	// subscriptions rejected as permanently invalid are removed from the store.
	// An error is returned only when no push transport is configured.
	Dispatch(ctx context.Context, alerts []entity.AlertEvent, subscriptions []*entity.PushSubscription) (*entity.DispatchReport, error)
}
