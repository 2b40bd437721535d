package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	// Registerer receives the connection pool collector when metrics are wired.
	Registerer prometheus.Registerer `optional:"true"`
}

// New connects to the catalog database and returns the GORM handle shared by
// every repository. Startup pings the primary and applies pending
// migrations when migration.enabled is set.
func New(params Params) (*gorm.DB, error) {
	cfg := params.Config
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "connect postgres")
	}
	db.Config.TranslateError = true
	// Multi-statement work goes through txManager.Execute; single statements
	// need no implicit transaction.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, cfg),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "unwrap sql.DB")
	}

	if params.Registerer != nil {
		if err := params.Registerer.Register(collectors.NewDBStatsCollector(sqlDB, cfg.Env.ServiceName)); err != nil {
			params.Logger.Warn("Connection pool metrics not registered", slog.Any("error", err))
		}
	}

	watcher := newPoolWatcher(params.Logger, sqlDB, cfg.Database)
	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}

			if m := cfg.Migration; m != nil && m.Enabled {
				version, err := RunMigrations(m.DatabaseURL)
				if err != nil {
					return err
				}
				params.Logger.Info("Database schema is up to date", slog.Uint64("version", uint64(version)))
			}

			go watcher.run(watchCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolWatcher logs when requests had to wait for a free connection.
type poolWatcher struct {
	logger    *slog.Logger
	stats     func() sql.DBStats
	interval  time.Duration
	warnAfter time.Duration
}

func newPoolWatcher(logger *slog.Logger, sqlDB *sql.DB, cfg *config.DatabaseConfig) *poolWatcher {
	w := &poolWatcher{
		logger:    logger,
		stats:     sqlDB.Stats,
		interval:  5 * time.Second,
		warnAfter: 50 * time.Millisecond,
	}
	if cfg != nil {
		if cfg.PoolMonitorInterval > 0 {
			w.interval = cfg.PoolMonitorInterval
		}
		if cfg.PoolWaitWarnThreshold > 0 {
			w.warnAfter = cfg.PoolWaitWarnThreshold
		}
	}

	return w
}

func (w *poolWatcher) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	prev := w.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := w.stats()
			w.report(ctx, prev, cur)
			prev = cur
		}
	}
}

// report compares two snapshots and logs any new waits, at warn level once
// the waited time reaches warnAfter.
func (w *poolWatcher) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= w.warnAfter {
		level = slog.LevelWarn
	}
	w.logger.LogAttrs(ctx, level, "Connection pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
