package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "fleetalert/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// headerCloudTraceContext is set by Cloud Scheduler and Pub/Sub push as "TRACE_ID/SPAN_ID;o=1".
	headerCloudTraceContext = "X-Cloud-Trace-Context"

	maxRequestIDLength = 128
)

// RequestIDMiddleware assigns every request an ID and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a caller supplied request ID, then the Cloud trace ID, and generates one otherwise.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		requestID := resolveRequestID(req.Header.Get(deliverycontext.HeaderXRequestID), req.Header.Get(headerCloudTraceContext))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(req.Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

func resolveRequestID(header, cloudTrace string) string {
	if isValidRequestID(header) {
		return header
	}

	traceID, _, _ := strings.Cut(cloudTrace, "/")
	if isValidRequestID(traceID) {
		return traceID
	}

	return uuid.New().String()
}

// isValidRequestID rejects IDs that would corrupt log lines or response headers.
func isValidRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}

	return true
}
