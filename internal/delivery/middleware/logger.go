package middleware

import (
	"log/slog"
	"time"

	"fleetalert/config"
	deliverycontext "fleetalert/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// referenceDateParam is the query parameter overriding an alert run's reference date.
const referenceDateParam = "date"

// LoggerMiddleware logs served requests. Failures are always logged,
// successful requests only in debug mode. Health and metrics scrapes are skipped.
// It logs through the request-scoped logger, so the request ID and the run
// requester set by the trigger check are attached.
type LoggerMiddleware struct {
	logger    *slog.Logger
	debug     bool
	skipPaths map[string]struct{}
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	skip := map[string]struct{}{"/health": {}}
	if cfg.Metrics != nil && cfg.Metrics.Path != "" {
		skip[cfg.Metrics.Path] = struct{}{}
	}

	return &LoggerMiddleware{
		logger:    logger,
		debug:     cfg.Env.Debug,
		skipPaths: skip,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, skip := m.skipPaths[c.Request().URL.Path]; skip {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// Render the error now so the logged status is the one sent.
			c.Error(err)
		}

		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	status := c.Response().Status

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	case !m.debug:
		return
	}

	req := c.Request()
	ctx := req.Context()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if date := c.QueryParam(referenceDateParam); date != "" {
		attrs = append(attrs, slog.String("reference_date", date))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "HTTP request", attrs...)
}
