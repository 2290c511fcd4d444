package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/alumnet/internal/config"
	"github.com/MrSnakeDoc/alumnet/internal/directory"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver/deps"
	"github.com/MrSnakeDoc/alumnet/internal/logger"
	"github.com/MrSnakeDoc/alumnet/internal/scheduler"
	"github.com/MrSnakeDoc/alumnet/internal/store"
	"github.com/MrSnakeDoc/alumnet/internal/store/file"
	redisstore "github.com/MrSnakeDoc/alumnet/internal/store/redis"
	"github.com/MrSnakeDoc/alumnet/internal/store/sqlite"
	"github.com/MrSnakeDoc/alumnet/internal/version"
)

type App struct {
	cfg      *config.Config
	logger   logger.Logger
	server   *httpserver.Server
	store    *store.Store
	importer *scheduler.SeedImporter
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Open the storage backend early - fail fast if unavailable
	backend, err := openBackend(context.Background(), cfg, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to open %s store: %v", cfg.Store, err)
		os.Exit(1)
	}
	st := store.New(backend)

	if cfg.SeedEmpty {
		created, err := st.EnsureAll(context.Background())
		if err != nil {
			loggerClient.Errorf("Failed to initialise collections: %v", err)
			os.Exit(1)
		}
		for _, c := range created {
			loggerClient.Info("created empty collection", logger.String("collection", string(c)))
		}
	}
	loggerClient.Info("store initialized successfully", logger.String("backend", st.BackendName()))

	dir := directory.New(st)

	// Seed importer (if a seed file is configured)
	var importer *scheduler.SeedImporter
	var reloadTrigger chan struct{}
	if cfg.SeedFile != "" {
		loggerClient.Info("seed file configured, initializing importer",
			logger.String("file", cfg.SeedFile))
		reloadTrigger = make(chan struct{}, 1)
		importer = scheduler.NewSeedImporter(
			cfg.SeedFile,
			dir,
			loggerClient,
			cfg.ReloadInterval,
			reloadTrigger,
		)
	} else {
		loggerClient.Info("seed file not configured, seed import disabled")
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		Store:         st,
		Directory:     dir,
		StaticDir:     cfg.StaticDir,
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:      cfg,
		logger:   loggerClient,
		server:   server,
		store:    st,
		importer: importer,
	}
}

// openBackend builds the storage backend selected by cfg.Store.
func openBackend(ctx context.Context, cfg *config.Config, log logger.Logger) (store.Backend, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		return sqlite.New(cfg.SQLitePath)
	case config.StoreRedis:
		return redisstore.Dial(ctx, redisstore.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, log)
	default:
		return file.New(cfg.DataDir)
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting alumnet v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("alumnet %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start seed importer (imports once, then on interval and manual trigger)
	if a.importer != nil {
		if err := a.importer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start seed importer: %w", err)
		}
		a.logger.Info("seed importer started",
			logger.Duration("interval", a.cfg.ReloadInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.importer != nil {
		a.importer.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if err := a.store.Close(); err != nil {
		a.logger.Warnf("failed to close %s store: %v", a.store.BackendName(), err)
	} else {
		a.logger.Info("✅ Store closed cleanly")
	}

	a.logger.Info("✅ alumnet stopped cleanly")
	return nil
}
