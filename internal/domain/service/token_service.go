package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeTrigger = "trigger"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTriggerToken mints a token accepted by the dispatch trigger endpoint.
	GenerateTriggerToken(subject string, ttl time.Duration) (string, error)

	// ValidateTriggerToken checks a trigger token.
	ValidateTriggerToken(tokenString string) (*Claims, error)

	// ValidateAccessToken checks a user access token issued by the admin application.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
