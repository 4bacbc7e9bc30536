package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"fleetalert/config"
	"fleetalert/internal/domain/lifecycle"
	"fleetalert/internal/errors"
	"fleetalert/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client shared by the vehicle gateway and the subscription store.
// On start it pings the database, optionally migrates push_subscriptions and starts the pool monitor.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every write is a single statement
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	storage := params.Config.Storage
	if storage == nil {
		storage = &config.StorageConfig{}
	}
	monitor := newPoolMonitor(params.Logger, storage.PoolWaitWarnThreshold)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if storage.MigrateSubscriptions {
				if err := db.WithContext(ctx).AutoMigrate(&model.PushSubscriptionModel{}); err != nil {
					return errors.Wrap(err, "failed to migrate push subscriptions")
				}
				params.Logger.Info("Push subscription schema is up to date")
			}

			if storage.PoolMonitorInterval > 0 {
				go monitor.run(monitorCtx, sqlDB, storage.PoolMonitorInterval)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor reports runs and dashboard requests that queued for a pooled connection.
type poolMonitor struct {
	logger        *slog.Logger
	warnThreshold time.Duration
	prev          sql.DBStats
}

func newPoolMonitor(logger *slog.Logger, warnThreshold time.Duration) *poolMonitor {
	return &poolMonitor{logger: logger, warnThreshold: warnThreshold}
}

func (m *poolMonitor) run(ctx context.Context, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.prev = sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.observe(ctx, sqlDB.Stats())
		}
	}
}

// observe logs the waits accumulated since the previous sample.
func (m *poolMonitor) observe(ctx context.Context, cur sql.DBStats) {
	waitDelta := cur.WaitCount - m.prev.WaitCount
	waitDurationDelta := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur

	if waitDelta <= 0 {
		return
	}

	level := slog.LevelDebug
	msg := "Postgres pool wait observed"
	if waitDurationDelta >= m.warnThreshold {
		level = slog.LevelWarn
		msg = "Postgres pool wait detected"
	}

	m.logger.LogAttrs(ctx, level, msg,
		slog.String("component", "storage"),
		slog.Int64("wait_count", waitDelta),
		slog.Duration("wait_duration", waitDurationDelta),
		slog.Duration("avg_wait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
		slog.Int("in_use_conns", cur.InUse),
		slog.Int("idle_conns", cur.Idle),
	)
}
