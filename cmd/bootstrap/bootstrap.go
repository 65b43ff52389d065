package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blood-donor-registry/config"
	deliveryHttp "blood-donor-registry/internal/delivery/http"
	"blood-donor-registry/internal/delivery/http/handler"
	"blood-donor-registry/internal/delivery/http/middleware"
	"blood-donor-registry/internal/domain/repository"
	"blood-donor-registry/internal/infrastructure/cache"
	"blood-donor-registry/internal/infrastructure/database"
	"blood-donor-registry/internal/infrastructure/metrics"
	donorRepository "blood-donor-registry/internal/repository"
	"blood-donor-registry/internal/usecase"
	"blood-donor-registry/pkg/jwt"
	"blood-donor-registry/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App owns the long-lived resources of a running registry process.
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New loads configuration, applies migrations and connects the stores.
// Optional collaborators (Redis, identity verification) are only built when
// enabled.
func New() (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log, err := newLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, err
	}
	app.Log = log
	log.Info("Configuration loaded successfully")

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(cfg.DB, log); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	// Directory cache falls back to a no-op when Redis is off
	directoryCache := cache.NewNoopDirectoryCache()
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("directory cache: %w", err)
		}
		app.RedisClient = redisClient
		directoryCache = cache.NewRedisDirectoryCache(redisClient, cfg.Redis.CacheTTL)
		log.WithField("ttl", cfg.Redis.CacheTTL).Info("Directory cache backed by Redis")
	}

	// nil verifier trusts the email carried by the request
	var verifier middleware.IdentityVerifier
	if cfg.Identity.Enabled {
		identityService, err := jwt.NewIdentityService(cfg.Identity)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to initialize identity verification: %w", err)
		}
		verifier = identityService
		log.Info("Identity verification enabled")
	}

	app.Server = initializeServer(cfg, log, db, directoryCache, verifier)

	return app, nil
}

// newLogger builds the JSON logger shared by every layer.
func newLogger(level string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	log.SetLevel(lvl)

	return log, nil
}

// initializeServer wires repository, usecases and handlers behind the router.
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	db *gorm.DB,
	directoryCache repository.DirectoryCache,
	verifier middleware.IdentityVerifier,
) *http.Server {
	customValidator := validator.NewValidator()
	appMetrics := metrics.New()

	donorRepo := donorRepository.NewDonorRepository(db)

	registrationUsecase := usecase.NewDonorRegistrationUsecase(log, donorRepo, directoryCache, appMetrics)
	directoryUsecase := usecase.NewDonorDirectoryUsecase(log, donorRepo, directoryCache, appMetrics)
	profileUsecase := usecase.NewDonorProfileUsecase(log, donorRepo, directoryCache, appMetrics)

	donorHandler := handler.NewDonorHandler(registrationUsecase, directoryUsecase, profileUsecase, customValidator)

	identityMiddleware := middleware.NewIdentityMiddleware(verifier, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowedOrigin)
	requestLog := middleware.NewRequestLogMiddleware(log)
	metricsMiddleware := middleware.NewMetricsMiddleware(appMetrics)

	router := deliveryHttp.NewRouter(donorHandler, identityMiddleware, corsMiddleware, requestLog, metricsMiddleware, appMetrics)

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Draining HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Stopped")
}

// Close releases the database pool and the Redis client. Safe on a
// partially built App.
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
