package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slices"

	"github.com/trugenie/go-tally-extraction/internal/common/cache"
	"github.com/trugenie/go-tally-extraction/internal/common/graceful"
	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
	cMetrics "github.com/trugenie/go-tally-extraction/internal/common/metrics"
	"github.com/trugenie/go-tally-extraction/internal/common/retry"
	"github.com/trugenie/go-tally-extraction/internal/config"
	"github.com/trugenie/go-tally-extraction/internal/repositories"
	"github.com/trugenie/go-tally-extraction/internal/services"
)

// odbcDriverName is registered by odbc_driver.go on builds that carry the driver.
const odbcDriverName = "odbc"

type Setup struct {
	Config   config.Config
	ODBC     *sql.DB
	Redis    *redis.Client
	Cache    cache.Client[cache.Entry]
	Selector repositories.TransportSelector
	Service  *services.Services
	Metrics  cMetrics.Metrics
}

type options struct {
	searchPaths []string
	quietLog    bool
}

type Option func(*options)

// WithConfigSearchPaths overrides where config.{yaml,json} is looked up.
func WithConfigSearchPaths(paths ...string) Option {
	return func(o *options) { o.searchPaths = paths }
}

// WithQuietLog logs warnings and above to stderr, for commands whose stdout is the result.
func WithQuietLog() Option {
	return func(o *options) { o.quietLog = true }
}

func Init(command string, opts ...Option) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	o := options{searchPaths: []string{"/config", ".", "./config"}}
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := config.Load(o.searchPaths...)
	if err != nil {
		err = fmt.Errorf("failed to load config: %w", err)
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logLevel := xlog.DebugLogLevel()
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}

	if slices.Contains(excludedDebugLevelOnEnvs, cfg.App.Environment()) {
		logLevel = xlog.InfoLogLevel()
	}

	logOpts := []xlog.Option{
		xlog.WithLogToOption(cfg.App.LogOption),
		xlog.WithLogEnvOption(cfg.App.Env),
		xlog.WithCaller(true),
		xlog.AddCallerSkip(2),
		logLevel,
	}
	if o.quietLog {
		logOpts = append(logOpts, xlog.WarnLogLevel(), xlog.WithStderr())
	}
	xlog.Init(fmt.Sprintf("%s-%s", cfg.App.Name, command), logOpts...)

	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	// metrics
	mtc := cMetrics.New()
	setup.Metrics = mtc

	cacheClient, redisClient, err := setupCache(ctx, cfg, mtc)
	if err != nil {
		err = fmt.Errorf("failed to setup cache: %w", err)
		return
	}
	setup.Cache = cacheClient
	setup.Redis = redisClient
	if redisClient != nil {
		stopper = append(stopper, func(ctx context.Context) error { return redisClient.Close() })
	}

	// odbc is optional; without a driver or DSN the secondary channel reports itself unreachable
	db := setupODBC(ctx, cfg, mtc)
	setup.ODBC = db
	if db != nil {
		stopper = append(stopper, func(ctx context.Context) error {
			if err := db.Close(); err != nil {
				return fmt.Errorf("failed to close odbc pool: %w", err)
			}
			return nil
		})
	}

	primary := repositories.NewXMLAPIChannel(cfg.Tally, mtc)
	secondary := repositories.NewODBCChannel(db, cfg.Tally, mtc)
	setup.Selector = repositories.NewTransportSelector(primary, secondary,
		retry.NewConstantBackOff(retry.Config{
			MaxRetries: cfg.Tally.RetryCount,
			WaitTime:   cfg.Tally.RetryWaitTime,
		}), mtc)

	setup.Service, err = services.New(cfg, setup.Selector, cacheClient, mtc)
	if err != nil {
		err = fmt.Errorf("failed to setup services: %w", err)
		return
	}

	xlog.Info(ctx, "[SETUP] extraction engine ready",
		xlog.String("command", command),
		xlog.String("company", cfg.Tally.Company),
		xlog.String("transport_mode", cfg.Tally.TransportMode),
		xlog.String("cache_driver", cfg.Cache.Driver))

	return
}

func setupCache(ctx context.Context, cfg config.Config, mtc cMetrics.Metrics) (cache.Client[cache.Entry], *redis.Client, error) {
	if cfg.Cache.Driver != config.CacheDriverRedis {
		return cache.NewInMemoryClient[cache.Entry](cache.WithCleanupInterval(cfg.Cache.CleanupInterval)), nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, nil, errors.Join(err, client.Close())
	}
	if err := mtc.RegisterRedis(client, cfg.App.Name, "cache"); err != nil {
		xlog.Warn(ctx, "[SETUP] redis metrics not registered", xlog.Err(err))
	}
	return cache.NewRedisClient[cache.Entry](client, cache.KeyPrefix), client, nil
}

func setupODBC(ctx context.Context, cfg config.Config, mtc cMetrics.Metrics) *sql.DB {
	if cfg.Tally.ODBCDSN == "" || !slices.Contains(sql.Drivers(), odbcDriverName) {
		xlog.Warn(ctx, "[SETUP] odbc channel disabled",
			xlog.Bool("dsn_set", cfg.Tally.ODBCDSN != ""),
			xlog.Bool("driver_registered", slices.Contains(sql.Drivers(), odbcDriverName)))
		return nil
	}

	db, err := sql.Open(odbcDriverName, "DSN="+cfg.Tally.ODBCDSN)
	if err != nil {
		xlog.Warn(ctx, "[SETUP] odbc channel disabled", xlog.Err(err))
		return nil
	}
	db.SetMaxOpenConns(1)
	if err := mtc.RegisterDB(db, "secondary", "tally_odbc"); err != nil {
		xlog.Warn(ctx, "[SETUP] odbc metrics not registered", xlog.Err(err))
	}
	return db
}
