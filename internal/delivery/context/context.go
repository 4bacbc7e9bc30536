// Package context carries request and run provenance between the delivery layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	loggerKey
	triggeredByKey
)

const (
	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// echoRequestIDKey stores the request ID on echo.Context for response envelopes.
	echoRequestIDKey = "request_id"
)

// GetRequestID returns the request ID of c, falling back to the one in the request context.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID, empty when none was set.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger, nil when none was set.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithTriggeredBy records who asked for an alert run: a trigger token subject,
// the requester of a Pub/Sub run request, or the alertctl operator.
// A logger already stored in ctx gains a triggered_by attribute.
func WithTriggeredBy(ctx context.Context, triggeredBy string) context.Context {
	if triggeredBy == "" {
		return ctx
	}

	ctx = context.WithValue(ctx, triggeredByKey, triggeredBy)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("triggered_by", triggeredBy)))
	}

	return ctx
}

// GetTriggeredBy returns the run requester, empty for unattributed calls.
func GetTriggeredBy(ctx context.Context) string {
	triggeredBy, _ := ctx.Value(triggeredByKey).(string)

	return triggeredBy
}
