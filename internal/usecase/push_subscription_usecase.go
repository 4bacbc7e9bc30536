package usecase

import (
	"context"

	"fleetalert/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterSubscriptionInput is a device registration as received from a client
type RegisterSubscriptionInput struct {
	Endpoint  string `json:"endpoint" validate:"required,max=2048"`
	P256dh    string `json:"p256dh" validate:"omitempty,max=256"`
	Auth      string `json:"auth" validate:"omitempty,max=256"`
	UserAgent string `json:"user_agent" validate:"omitempty,max=512"`
}

// SubscriptionUsecase manages push subscriptions
type SubscriptionUsecase interface {
	// Register stores the subscription, replacing any previous registration of the same endpoint.
	// A nil owner registers the device for the system owner when anonymous registration is allowed.
	Register(ctx context.Context, owner *uuid.UUID, input *RegisterSubscriptionInput) (*entity.PushSubscription, error)

	// Unregister removes the subscription registered for endpoint.
	Unregister(ctx context.Context, endpoint string) error
}
