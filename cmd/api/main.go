package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/event-booking/internal/api/http"
	"github.com/spec-kit/event-booking/internal/api/http/handlers"
	"github.com/spec-kit/event-booking/internal/auth"
	"github.com/spec-kit/event-booking/internal/config"
	"github.com/spec-kit/event-booking/internal/events"
	"github.com/spec-kit/event-booking/internal/observability"
	"github.com/spec-kit/event-booking/internal/persistence"
	"github.com/spec-kit/event-booking/internal/repository"
	"github.com/spec-kit/event-booking/internal/service"
	"github.com/spec-kit/event-booking/internal/worker"
)

func main() {
	seed := flag.Bool("seed", false, "insert demo data and exit")
	flag.Parse()

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
	eventRepo := repository.NewEventRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)

	if *seed {
		if err := seedDemoData(ctx, cfg, userRepo, eventRepo, bookingRepo, commentRepo, logger); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
		return
	}

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	tokenManager := auth.NewTokenManager(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL())
	sessionStore := auth.NewSessionStore(redis.Client, cfg.Auth.SessionTTL())

	accountService := service.NewAccountService(service.AccountDependencies{
		UserRepo:     userRepo,
		SessionStore: sessionStore,
		TokenManager: tokenManager,
		BcryptCost:   cfg.Auth.BcryptCost,
	})
	eventService := service.NewEventService(service.EventDependencies{
		EventRepo:   eventRepo,
		CommentRepo: commentRepo,
		Dispatcher:  dispatcher,
	})
	bookingService := service.NewBookingService(service.BookingDependencies{
		EventRepo:   eventRepo,
		BookingRepo: bookingRepo,
		Dispatcher:  dispatcher,
	})
	commentService := service.NewCommentService(service.CommentDependencies{
		EventRepo:   eventRepo,
		CommentRepo: commentRepo,
		Dispatcher:  dispatcher,
	})

	authMiddleware := auth.NewAuthMiddleware(tokenManager, sessionStore, userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Accounts:       handlers.NewAccountsHandler(accountService),
		Events:         handlers.NewEventsHandler(eventService),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		Comments:       handlers.NewCommentsHandler(commentService),
		AuthMiddleware: authMiddleware,
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
