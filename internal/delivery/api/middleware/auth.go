package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"fleetalert/internal/delivery/api/response"
	deliverycontext "fleetalert/internal/delivery/context"
	"fleetalert/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID  = "userID"
	contextKeyTrigger = "triggeredBy"
	bearerPrefix      = "Bearer "
)

// AuthMiddleware validates bearer tokens for registration and trigger routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// OptionalOwner attaches the user ID of a valid access token to the context.
// Requests without an Authorization header pass through anonymously; a malformed or invalid token is rejected.
func (m *AuthMiddleware) OptionalOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			m.log(c).Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(contextKeyUserID, claims.UserID)

		return next(c)
	}
}

// RequireTrigger only lets requests carrying a valid trigger token through.
// Rejections use the same {"error": ...} shape as the trigger endpoint itself.
func (m *AuthMiddleware) RequireTrigger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateTriggerToken(tokenString)
		if err != nil {
			m.log(c).Warn("Rejected trigger token", slog.Any("error", err))

			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(contextKeyTrigger, claims.Subject)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithTriggeredBy(c.Request().Context(), claims.Subject)))

		return next(c)
	}
}

func (m *AuthMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	return token, token != ""
}

// GetUserID returns the owner set by OptionalOwner.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetTriggeredBy returns the subject of the trigger token.
func GetTriggeredBy(c echo.Context) string {
	subject, _ := c.Get(contextKeyTrigger).(string)

	return subject
}
