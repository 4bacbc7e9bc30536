package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fleetalert/config"
	deliverycontext "fleetalert/internal/delivery/context"
	"fleetalert/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// maxLoggedSQL caps the statement length written to a log line.
const maxLoggedSQL = 1024

// storageLogger routes gorm logs through the request-scoped slog logger,
// so vehicle and subscription queries carry the request ID of the run that issued them.
type storageLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	slowThreshold := time.Duration(0)
	if cfg != nil && cfg.Storage != nil {
		slowThreshold = cfg.Storage.SlowQueryThreshold
	}

	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return &storageLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: slowThreshold,
	}
}

func (l *storageLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *storageLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *storageLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *storageLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *storageLogger) logf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, "Storage message", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *storageLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.from(ctx).LogAttrs(ctx, slog.LevelError, "Storage query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("slow_threshold", l.slowThreshold))
		l.from(ctx).LogAttrs(ctx, slog.LevelWarn, "Storage slow query", attrs...)
	case l.level >= logger.Info:
		l.from(ctx).LogAttrs(ctx, slog.LevelDebug, "Storage query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *storageLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger).With(slog.String("component", "storage"))
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.String("sql", compactSQL(sql)),
	}
	// gorm reports -1 when the statement has no row count.
	if rows >= 0 {
		attrs = append(attrs, slog.Int64("rows", rows))
	}

	return attrs
}

// compactSQL folds whitespace so a statement fits on one log line.
func compactSQL(sql string) string {
	sql = strings.Join(strings.Fields(sql), " ")
	if len(sql) > maxLoggedSQL {
		return sql[:maxLoggedSQL] + "..."
	}

	return sql
}
