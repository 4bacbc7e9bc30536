// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SystemOwnerID owns subscriptions registered without an authenticated user.
var SystemOwnerID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// PushSubscription represents a device registered for push delivery.
// Endpoint is unique: for web push it is the push service URL, for FCM the registration token.
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`               // The Global Unique Identifier (GUID) for the subscription.
	OwnerID   uuid.UUID `json:"owner_id"`         // The user owning the device, or SystemOwnerID.
	Endpoint  string    `json:"endpoint"`         // Delivery endpoint, unique across subscriptions.
	P256dh    string    `json:"p256dh,omitempty"` // Client public key (web push only).
	Auth      string    `json:"auth,omitempty"`   // Client auth secret (web push only).
	UserAgent string    `json:"user_agent"`       // Registering client, informational.
	CreatedAt time.Time `json:"created_at"`       // Timestamp of when the subscription was first registered.
	UpdatedAt time.Time `json:"updated_at"`       // Timestamp of the last registration.
}

// IsSystemOwned reports whether the subscription was registered anonymously.
func (s *PushSubscription) IsSystemOwned() bool {
	return s.OwnerID == SystemOwnerID
}
