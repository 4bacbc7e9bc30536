// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fleetalert/internal/domain/entity"
	"fleetalert/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines the push subscription store.
type SubscriptionRepository interface {
	// ListAll retrieves every registered subscription.
	ListAll(ctx context.Context) ([]*entity.PushSubscription, error)

	// Remove deletes a subscription by its ID.
	Remove(ctx context.Context, id uuid.UUID) error

	// Upsert creates or replaces a subscription, using the endpoint as the conflict key.
	// The stored row (with its persisted ID) is written back into subscription.
	Upsert(ctx context.Context, subscription *entity.PushSubscription) error

	// RemoveByEndpoint deletes the subscription registered for endpoint.
	RemoveByEndpoint(ctx context.Context, endpoint string) error
}
