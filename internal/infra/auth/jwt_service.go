// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fleetalert/config"
	"fleetalert/internal/domain/service"
	"fleetalert/internal/errors"
)

const issuer = "fleetalert"

var (
	// ErrSecretNotConfigured is returned when the secret for a token type is empty.
	ErrSecretNotConfigured = errors.New("token secret is not configured")

	// ErrWrongTokenType is returned when a valid token is presented for another purpose.
	ErrWrongTokenType = errors.New("wrong token type")
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string // Secret shared with the admin application that issues user access tokens.
	triggerSecret string // Secret for signing dispatch trigger tokens.
}

// NewJWTService is the constructor for jwtService.
// Either secret may be empty; tokens of that type are then rejected.
func NewJWTService(cfg *config.Config) service.TokenService {
	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		triggerSecret: cfg.SecretKey.Trigger,
	}
}

// GenerateTriggerToken creates a token accepted by the dispatch trigger endpoint.
func (s *jwtService) GenerateTriggerToken(subject string, ttl time.Duration) (string, error) {
	if s.triggerSecret == "" {
		return "", ErrSecretNotConfigured
	}

	now := time.Now()
	claims := service.Claims{
		Type: service.TokenTypeTrigger,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.triggerSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign trigger token")
	}

	return signed, nil
}

// ValidateTriggerToken checks a trigger token.
func (s *jwtService) ValidateTriggerToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, s.triggerSecret, service.TokenTypeTrigger)
}

// ValidateAccessToken checks a user access token; its subject must be the user ID.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	claims, err := s.validate(tokenString, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in access token")
	}
	claims.UserID = userID

	return claims, nil
}

func (s *jwtService) validate(tokenString, secret, tokenType string) (*service.Claims, error) {
	if secret == "" {
		return nil, ErrSecretNotConfigured
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	if claims.Type != tokenType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}
