package setup

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slices"

	"github.com/punyakios/go-kios-client/internal/biometric"
	"github.com/punyakios/go-kios-client/internal/catalog"
	"github.com/punyakios/go-kios-client/internal/common/graceful"
	"github.com/punyakios/go-kios-client/internal/common/httpclient"
	"github.com/punyakios/go-kios-client/internal/common/localstorage"
	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	cMetrics "github.com/punyakios/go-kios-client/internal/common/metrics"
	"github.com/punyakios/go-kios-client/internal/config"
	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/repositories"
	"github.com/punyakios/go-kios-client/internal/services"
	"github.com/punyakios/go-kios-client/internal/session"
)

const (
	bucketCatalog = "catalog"
	bucketSession = "session"
)

// Device is the biometric hardware and notice surface of the host.
type Device struct {
	Authenticator biometric.Authenticator
	Notifier      biometric.Notifier
}

type Setup struct {
	Config   config.Config
	NewRelic *newrelic.Application
	Cache    *redis.Client
	Session  *session.State
	Loader   *catalog.Loader
	Gate     *biometric.Gate
	Service  *services.Services
	Metrics  cMetrics.Metrics
}

func Init(command string, device Device, opts ...config.LoadOption) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	defaultOpts := []config.LoadOption{
		config.WithConfigFileName("config"),
		config.WithConfigFileSearchPaths("/config", ".", "./config"),
		config.WithEnvFiles(".env"),
	}
	cfg, err := config.Load(append(defaultOpts, opts...)...)
	if err != nil {
		return
	}

	logLevel := xlog.DebugLevel
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}
	if slices.Contains(excludedDebugLevelOnEnvs, config.StringToEnvironment(cfg.App.Env)) {
		logLevel = xlog.InfoLevel
	}
	if cfg.App.LogLevel != "" {
		logLevel = xlog.ParseLevel(cfg.App.LogLevel)
	}

	err = xlog.Init(cfg.App.Name,
		xlog.WithOutput(cfg.App.LogOption),
		xlog.WithEnv(cfg.App.Env),
		xlog.WithCaller(true),
		xlog.AddCallerSkip(2),
		xlog.WithLevel(logLevel))
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)
	if newRelic != nil {
		stopper = append(stopper, func(ctx context.Context) error {
			newRelic.Shutdown(10 * time.Second)
			return nil
		})
	}

	// metrics
	mtc := cMetrics.New()

	// storage
	catalogStorage, sessionStorage, cache, storageStopper, err := setupStorage(ctx, cfg, command, mtc)
	stopper = append(stopper, storageStopper...)
	if err != nil {
		err = fmt.Errorf("failed to open local storage: %w", err)
		return
	}

	state := session.New(sessionStorage)

	// API clients, the transaction client never retries
	appInfo := httpclient.WithAppInfo(cfg.App.Version, cfg.App.Platform)
	catalogClient := httpclient.NewRequestWrapper(
		httpclient.NewRestyClient(cfg.API, httpclient.WithRetry()),
		mtc, "catalog", "[API-CLIENT]",
		httpclient.WithTokenSource(state), appInfo,
	)
	transactionClient := httpclient.NewRequestWrapper(
		httpclient.NewRestyClient(cfg.API),
		mtc, "transaction", "[API-CLIENT]",
		httpclient.WithTokenSource(state), appInfo,
	)

	// register repository
	catalogRepo := repositories.NewCatalogRepository(catalogClient)
	transactionRepo := repositories.NewTransactionRepository(transactionClient)
	profileRepo := repositories.NewProfileRepository(catalogClient)
	depositRepo := repositories.NewDepositRepository(transactionClient)
	appConfigRepo := repositories.NewAppConfigRepository(catalogClient)

	loader := catalog.NewFromConfig(cfg, catalogRepo, catalogStorage,
		catalog.WithMetrics(mtc.GetCachePrometheus()))
	stopper = append(stopper, func(ctx context.Context) error { return loader.Close() })

	gate := biometric.NewFromConfig(cfg, transactionRepo, state, device.Authenticator, device.Notifier,
		biometric.WithMetrics(mtc.GetGatePrometheus()))

	// register service
	srv := services.New(
		cfg,
		loader,
		gate,
		state,
		profileRepo,
		depositRepo,
		appConfigRepo,
	)

	return &Setup{
		Config:   cfg,
		NewRelic: newRelic,
		Cache:    cache,
		Session:  state,
		Loader:   loader,
		Gate:     gate,
		Service:  srv,
		Metrics:  mtc,
	}, stopper, nil
}

func setupStorage(ctx context.Context, cfg config.Config, command string, mtc cMetrics.Metrics) (
	catalogStorage localstorage.LocalStorage[models.CacheEnvelope],
	sessionStorage localstorage.LocalStorage[string],
	cache *redis.Client,
	stopper []graceful.ProcessStopper,
	err error,
) {
	if cfg.Storage.Driver == "redis" {
		cache = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Db,
		})
		if _, err = cache.Ping(ctx).Result(); err != nil {
			_ = cache.Close()
			return nil, nil, nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		stopper = append(stopper, func(ctx context.Context) error { return cache.Close() })

		// register redis prometheus metrics
		if err = mtc.RegisterRedis(cache, cfg.App.Name, command); err != nil {
			return nil, nil, nil, stopper, fmt.Errorf("failed register redis prometheus: %w", err)
		}

		catalogStorage = localstorage.NewRedisStorage[models.CacheEnvelope](cache, bucketCatalog)
		sessionStorage = localstorage.NewRedisStorage[string](cache, bucketSession)
		return catalogStorage, sessionStorage, cache, stopper, nil
	}

	opts := []localstorage.BadgerOption{localstorage.WithInMemory(cfg.Storage.InMemory)}
	if cfg.Storage.Dir != "" {
		opts = append(opts, localstorage.WithDir(filepath.Clean(cfg.Storage.Dir)))
	}

	catalogStorage, err = localstorage.NewBadgerStorage[models.CacheEnvelope](bucketCatalog, opts...)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	stopper = append(stopper, func(ctx context.Context) error { return catalogStorage.Close() })

	sessionStorage, err = localstorage.NewBadgerStorage[string](bucketSession, opts...)
	if err != nil {
		return nil, nil, nil, stopper, err
	}
	stopper = append(stopper, func(ctx context.Context) error { return sessionStorage.Close() })

	return catalogStorage, sessionStorage, nil, stopper, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if cfg.NewRelicLicenseKey == "" {
		return nil
	}
	if !config.IsProduction(cfg.App.Env) {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.Name),
		newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
		func(config *newrelic.Config) {
			config.Logger = nrzap.Transform(xlog.Logger())
		},
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
		return nil
	}
	if err = app.WaitForConnection(15 * time.Second); nil != err {
		xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
	}
	return app
}
