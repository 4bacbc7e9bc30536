// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"fleetalert/internal/domain/entity"
	domainerrors "fleetalert/internal/domain/errors"
	"fleetalert/internal/domain/repository"
	"fleetalert/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// ListAll retrieves every registered push subscription.
func (repo *subscriptionRepository) ListAll(ctx context.Context) ([]*entity.PushSubscription, error) {
	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list push subscriptions")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// Remove deletes a subscription by its ID.
func (repo *subscriptionRepository) Remove(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PushSubscriptionModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove push subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// Upsert inserts the subscription or, when the endpoint is already registered, refreshes its keys and owner.
func (repo *subscriptionRepository) Upsert(ctx context.Context, subscription *entity.PushSubscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "endpoint"}},
				DoUpdates: clause.AssignmentColumns([]string{"owner_id", "p256dh", "auth", "user_agent", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(subscriptionM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subscription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert push subscription")
	}

	// Update the entity with the stored values
	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// RemoveByEndpoint deletes the subscription registered for endpoint.
func (repo *subscriptionRepository) RemoveByEndpoint(ctx context.Context, endpoint string) error {
	result := repo.db.WithContext(ctx).
		Where("endpoint = ?", endpoint).
		Delete(&model.PushSubscriptionModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove push subscription by endpoint")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// toSubscriptionDomain converts a database model to a domain entity.
func toSubscriptionDomain(data *model.PushSubscriptionModel) *entity.PushSubscription {
	if data == nil {
		return nil
	}

	return &entity.PushSubscription{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Endpoint:  data.Endpoint,
		P256dh:    data.P256dh,
		Auth:      data.Auth,
		UserAgent: data.UserAgent,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain entity to a database model.
func fromSubscriptionDomain(data *entity.PushSubscription) *model.PushSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.PushSubscriptionModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Endpoint:  data.Endpoint,
		P256dh:    data.P256dh,
		Auth:      data.Auth,
		UserAgent: data.UserAgent,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
