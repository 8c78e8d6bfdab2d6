package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/venuebook_bot/internal/api"
	"github.com/Freeeeeet/venuebook_bot/internal/app"
	"github.com/Freeeeeet/venuebook_bot/internal/config"
	"github.com/Freeeeeet/venuebook_bot/internal/controller"
	"github.com/Freeeeeet/venuebook_bot/internal/payment"
	"github.com/Freeeeeet/venuebook_bot/internal/service"
	"github.com/Freeeeeet/venuebook_bot/internal/session"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting venuebook bot",
		"environment", cfg.Environment,
		"api_base_url", cfg.APIBaseURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to init migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	if version, err := migrator.Version(ctx); err == nil {
		logger.Info("Database migrated", zap.Int64("version", version))
	}
	migrator.Close()

	client := api.NewClient(cfg.APIBaseURL, cfg.CallbackBaseURL, cfg.HTTPTimeout, logger)
	sessions := session.NewStore(pool)

	userService := service.NewUserService(client, sessions, logger)
	venueService := service.NewVenueService(client, logger)
	bookingService := service.NewBookingService(client, logger)

	registry := payment.NewRegistry()
	listener := payment.NewListener(cfg.CallbackListenAddr, registry, logger)
	go func() {
		if err := listener.Start(ctx); err != nil {
			logger.Error("Payment listener stopped", zap.Error(err))
			stop()
		}
	}()

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		botInstance,
		userService,
		venueService,
		bookingService,
		registry,
		client,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}
