package model

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscriptionModel is the GORM-specific struct for the 'push_subscriptions' table.
// Rows are hard-deleted when pruned so a re-registration starts clean.
type PushSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Endpoint  string    `gorm:"type:text;not null;uniqueIndex"`
	P256dh    string    `gorm:"type:text"`
	Auth      string    `gorm:"type:text"`
	UserAgent string    `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
