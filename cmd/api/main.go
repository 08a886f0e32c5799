package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/api/http"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/api/http/handlers"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/auth"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/config"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/events"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/observability"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/persistence"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/repository"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/service"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Admin.UsingDefaultPassword() {
		logger.Warn("ADMIN_PASSWORD is unset; using the default credential. Set ADMIN_PASSWORD before exposing this service.")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	devoteeRepo := repository.NewDevoteeRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	businessRepo := repository.NewBusinessRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	templeRepo := repository.NewTempleRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		DevoteeRepo: devoteeRepo,
		SessionRepo: sessionRepo,
	})
	businessService := service.NewBusinessService(service.BusinessDependencies{
		BusinessRepo: businessRepo,
		Dispatcher:   dispatcher,
	})
	eventService := service.NewEventService(service.EventDependencies{
		EventRepo:  eventRepo,
		Dispatcher: dispatcher,
	})
	templeService := service.NewTempleService(templeRepo)

	adminTokens := auth.NewAdminTokenManager(cfg.Admin.JWTSecret, cfg.Admin.SessionTTL())
	adminSessions := auth.NewAdminSessionManager(adminTokens, auth.NewAdminSessionStore(redis.Client))
	sessionMiddleware := auth.NewSessionMiddleware(sessionRepo, cfg.Auth.SessionCookieName)
	adminMiddleware := auth.NewAdminMiddleware(adminSessions, cfg.Admin.CookieName)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:          handlers.NewAuthHandler(authService, cfg.Auth),
		Business:      handlers.NewBusinessHandler(businessService),
		Events:        handlers.NewEventHandler(eventService),
		Temples:       handlers.NewTempleHandler(templeService),
		AdminAuth:     handlers.NewAdminAuthHandler(adminSessions, cfg.Admin, logger),
		AdminBusiness: handlers.NewAdminBusinessHandler(businessService),
		AdminEvents:   handlers.NewAdminEventHandler(eventService),
		Session:       sessionMiddleware,
		Admin:         adminMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
