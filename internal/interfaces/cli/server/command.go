package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/orris-inc/statsboard/internal/application/statistics"
	"github.com/orris-inc/statsboard/internal/application/statistics/query"
	"github.com/orris-inc/statsboard/internal/application/statistics/usecases"
	"github.com/orris-inc/statsboard/internal/infrastructure/auth"
	"github.com/orris-inc/statsboard/internal/infrastructure/cache"
	"github.com/orris-inc/statsboard/internal/infrastructure/config"
	"github.com/orris-inc/statsboard/internal/infrastructure/consoleapi"
	"github.com/orris-inc/statsboard/internal/infrastructure/format"
	"github.com/orris-inc/statsboard/internal/infrastructure/i18n"
	httpRouter "github.com/orris-inc/statsboard/internal/interfaces/http"
	"github.com/orris-inc/statsboard/internal/interfaces/http/handlers/admin"
	"github.com/orris-inc/statsboard/internal/interfaces/http/handlers/dashboard"
	"github.com/orris-inc/statsboard/internal/interfaces/http/middleware"
	"github.com/orris-inc/statsboard/internal/shared/goroutine"
	"github.com/orris-inc/statsboard/internal/shared/logger"
	"github.com/orris-inc/statsboard/internal/shared/version"
)

var (
	env        string
	configFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the statistics dashboard HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to the config file (defaults to configs/config.yaml)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := mapEnvToGinMode(env)

	cfg, err := config.Load(env, configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, ginMode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server",
		"environment", env,
		"version", version.Current,
		"query_backend", cfg.Query.Backend,
		"auth_enabled", cfg.Auth.Enabled())

	gin.SetMode(cfg.Server.Mode)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	var (
		queryCache  cache.QueryCache
		redisClient *redis.Client
	)
	if cfg.Query.UseRedis() {
		redisClient, err = initRedis(cfg, log)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		queryCache = cache.NewRedisQueryCache(redisClient, cfg.Query.KeyPrefix)
	} else {
		queryCache = cache.NewMemoryQueryCache()
	}

	consoleClient := consoleapi.NewClient(consoleapi.Options{
		BaseURL:         cfg.Upstream.BaseURL,
		ServerTotalPath: cfg.Upstream.ServerTotalPath,
		TicketPath:      cfg.Upstream.TicketPath,
		Token:           cfg.Upstream.Token,
		Timeout:         cfg.Upstream.Timeout(),
		MaxRetries:      cfg.Upstream.MaxRetries,
		RetryBase:       cfg.Upstream.RetryBase(),
		RetryCap:        cfg.Upstream.RetryCap(),
	}, logger.WithComponent("consoleapi"))

	queryClient := query.NewClient(queryCache, cfg.Query.StaleTime(), logger.WithComponent("query"))
	queryService := statistics.NewQueryService(consoleClient, queryClient, logger.WithComponent("statistics"))

	bundle, err := i18n.NewBundle(cfg.I18n.DefaultLang)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}
	presentation := usecases.Presentation{
		Localizer: bundle,
		Formatter: format.NewByteFormatter(cfg.Dashboard.ByteUnits),
		TickCount: cfg.Dashboard.TickCount,
	}

	statisticsUC := usecases.NewGetStatisticsUseCase(queryService, presentation, log)
	rankingUC := usecases.NewGetTrafficRankingUseCase(queryService, presentation, log)
	invalidateUC := usecases.NewInvalidateStatisticsUseCase(queryService, log)

	pageHandler, err := dashboard.NewPageHandler(statisticsUC, rankingUC, log)
	if err != nil {
		return err
	}

	var jwtService *auth.JWTService
	if cfg.Auth.Enabled() {
		jwtService = auth.NewJWTService(cfg.Auth.JWTSecret)
	} else {
		log.Warnw("auth.jwt_secret is empty, dashboard routes are not protected")
	}

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil && cfg.Query.InvalidateLimit > 0 {
		if cfg.Query.RateLimitOverlapsCache() {
			return fmt.Errorf("query.ratelimit_prefix %q must not start with query.key_prefix %q",
				cfg.Query.RateLimitPrefix, cfg.Query.KeyPrefix)
		}
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.Query.RateLimitPrefix, cfg.Query.InvalidateLimit, time.Minute, log)
	}

	router := httpRouter.NewRouter(httpRouter.RouterDeps{
		StatisticsHandler: admin.NewStatisticsHandler(statisticsUC, rankingUC, invalidateUC, log),
		PageHandler:       pageHandler,
		AuthMiddleware:    middleware.NewAuthMiddleware(jwtService, cfg.Auth.CookieName, log),
		RateLimiter:       rateLimiter,
	}, logger.WithComponent("http"))
	router.SetupRoutes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Query.PrefetchOnStart {
		goroutine.SafeGo(log, "statistics-prefetch", func() {
			queryService.Prefetch(ctx)
		})
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("Redis connection established successfully", "address", cfg.Redis.GetAddr())

	return redisClient, nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
