package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/hablalab/academy-service/internal/api/http"
	"github.com/hablalab/academy-service/internal/api/http/handlers"
	"github.com/hablalab/academy-service/internal/auth"
	"github.com/hablalab/academy-service/internal/config"
	"github.com/hablalab/academy-service/internal/events"
	"github.com/hablalab/academy-service/internal/observability"
	"github.com/hablalab/academy-service/internal/persistence"
	"github.com/hablalab/academy-service/internal/repository"
	"github.com/hablalab/academy-service/internal/service"
	"github.com/hablalab/academy-service/internal/worker"
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
	userRepo := repository.NewUserRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	lessonRepo := repository.NewLessonRepository(pool)
	inscriptionRepo := repository.NewInscriptionRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	authService := service.NewAuthService(cfg.Auth, userRepo, dispatcher)
	receiptService := service.NewReceiptService(inscriptionRepo, paymentRepo, authService.TokenManager(), dispatcher)
	catalogService := service.NewCatalogService(courseRepo, lessonRepo, redis, cfg.Catalog.CacheTTL(), logger)
	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	extractor := auth.NewExtractor(authService.TokenManager())

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:      handlers.NewAuthHandler(authService, extractor, cfg.App.IsProduction()),
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Alumno:    handlers.NewAlumnoHandler(inscriptionRepo, paymentRepo, receiptService),
		Admin:     handlers.NewAdminHandler(userRepo, inscriptionRepo, paymentRepo, receiptService),
		Receipts:  handlers.NewReceiptsHandler(receiptService),
		Dashboard: handlers.NewDashboardHandler(inscriptionRepo),
		Extractor: extractor,
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
