package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"recados/internal/config"
	"recados/internal/handlers"
	"recados/internal/logging"
	"recados/internal/middleware"
	"recados/internal/repositories"
	"recados/internal/services"
	"recados/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// --- Optional RabbitMQ event publishing ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue}, logger)
		if err != nil {
			logger.Fatal("failed to initialize RabbitMQ client", zap.Error(err))
		}
		defer func() {
			if err := mqClient.Close(); err != nil {
				logger.Warn("failed to close RabbitMQ client", zap.Error(err))
			}
		}()
		publisher = mqClient

		// Audit consumer: every lifecycle event is read back and logged.
		if err := mqClient.ConsumeEvents(func(msg amqp.Delivery) error {
			logger.Info("event received",
				zap.String("event", msg.Type),
				zap.Uint64("delivery_tag", msg.DeliveryTag),
				zap.ByteString("body", msg.Body),
			)
			return nil
		}); err != nil {
			logger.Warn("failed to start RabbitMQ consumer", zap.Error(err))
		}
	}

	app, cleanup, err := newApp(cfg, logger, publisher)
	if err != nil {
		logger.Fatal("failed to create app", zap.Error(err))
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Warn("failed to release storage", zap.Error(err))
		}
	}()

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.AppPort), zap.String("storage", cfg.StorageDriver))
		if err := app.Listen(cfg.AppPort); err != nil {
			logger.Error("server stopped", zap.Error(err))
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	logger.Info("shutting down server")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("error during Fiber shutdown", zap.Error(err))
	}
	logger.Info("server gracefully stopped")
}

// newApp wires storage, services and handlers into a Fiber app. The returned
// cleanup releases the storage backend.
func newApp(cfg config.Config, logger *zap.Logger, publisher services.EventPublisher) (*fiber.App, func() error, error) {
	var (
		userRepo   repositories.UserRepository
		errandRepo repositories.ErrandRepository
		cleanup    = func() error { return nil }
	)

	switch cfg.StorageDriver {
	case config.StorageSQLite:
		db, err := repositories.OpenSQLite(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		userRepo = repositories.NewGORMUserRepository(db)
		errandRepo = repositories.NewGORMErrandRepository(db)
		cleanup = func() error { return repositories.CloseDB(db) }
	default:
		userRepo = repositories.NewMemoryUserRepository()
		errandRepo = repositories.NewMemoryErrandRepository()
	}

	// --- Initialize Services ---
	userService := services.NewUserService(userRepo, publisher, logger, cfg.BcryptCost)
	errandService := services.NewErrandService(errandRepo, userRepo, publisher, logger)

	// --- Initialize Handlers ---
	userHandler := handlers.NewUserHandler(userService, logger, cfg.HidePasswordHash)
	errandHandler := handlers.NewErrandHandler(errandService, logger)

	app := fiber.New(fiber.Config{
		AppName:               "recados",
		DisableStartupMessage: true,
		Immutable:             true,
		ErrorHandler:          handlers.ErrorHandler(logger),
	})

	// --- Middleware ---
	app.Use(middleware.RequestLogger(logger))
	app.Use(recover.New())

	// --- API Routes ---
	userHandler.RegisterRoutes(app)
	errandHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"storage": cfg.StorageDriver,
			"events":  publisher != nil,
		})
	})

	return app, cleanup, nil
}
