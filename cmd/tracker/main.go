package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learning_tracker/internal/app"
	"learning_tracker/internal/domain/motivation"
	"learning_tracker/internal/infra/config"
	"learning_tracker/internal/infra/logger"
	"learning_tracker/internal/infra/scheduler"
	"learning_tracker/internal/infra/storage"
	"learning_tracker/internal/infra/telegram"
	"learning_tracker/internal/infra/web"

	"github.com/sirupsen/logrus"
)

const livePollInterval = 10 * time.Second

func main() {
	fmt.Println("Learning Tracker starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	mainLogger := logger.Component("main")
	mainLogger.WithField("store_driver", cfg.StoreDriver).Info("Configuration loaded")

	if err := run(cfg, mainLogger); err != nil {
		mainLogger.WithError(err).Fatal("Application stopped with error")
	}
	mainLogger.Info("Application shut down gracefully")
}

// run wires every component and blocks until SIGINT or SIGTERM. Deferred
// cleanup runs on every return path.
func run(cfg *config.AppConfig, mainLogger *logrus.Entry) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize storage
	store, closeStore, err := storage.Open(ctx, cfg, logger.Component("storage"))
	if err != nil {
		return fmt.Errorf("could not open progress store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			mainLogger.WithError(err).Error("Failed to close progress store")
		}
	}()

	// Initialize tracker and view
	tracker := app.NewTrackerService(store, cfg.ReminderHour, time.Now, logger.Component("tracker"))
	view := app.NewView(tracker, motivation.NewRotator(motivation.Quotes), logger.Component("view"))
	if err := view.Mount(ctx); err != nil {
		return fmt.Errorf("could not load tracker state: %w", err)
	}
	defer view.Unmount()
	mainLogger.Info("Tracker view mounted")

	// Initialize scheduler
	viewScheduler := scheduler.NewViewScheduler(
		view,
		logger.Component("scheduler"),
		cfg.CronSpecQuoteRotation,
		cfg.CronSpecCountdownRefresh,
	)
	if err := viewScheduler.Start(); err != nil {
		return fmt.Errorf("could not start scheduler: %w", err)
	}
	defer viewScheduler.Stop()
	nextQuote, nextCountdown := viewScheduler.NextRuns()
	mainLogger.WithFields(logrus.Fields{
		"next_quote_rotation":   nextQuote.Format(time.RFC3339),
		"next_countdown_update": nextCountdown.Format(time.RFC3339),
	}).Info("Periodic tasks scheduled")

	// Initialize web server
	server, err := web.NewServer(view, livePollInterval, logger.Component("web"))
	if err != nil {
		return fmt.Errorf("could not create web server: %w", err)
	}
	go func() {
		if err := server.Listen(cfg.HTTPAddr); err != nil {
			mainLogger.WithError(err).Error("Web server stopped")
		}
	}()
	defer func() {
		if err := server.Shutdown(); err != nil {
			mainLogger.WithError(err).Error("Web server shutdown failed")
		}
	}()

	// Initialize Telegram bot (optional)
	if cfg.TelegramEnabled() {
		bot, err := telegram.NewBot(cfg.TelegramToken, logger.Component("telegram"))
		if err != nil {
			return fmt.Errorf("could not create Telegram bot: %w", err)
		}
		telegram.NewHandlers(ctx, view, cfg.OwnerTelegramID, logger.Get().WithField("owner_id", cfg.OwnerTelegramID)).Register(bot)
		go bot.Start()
		defer bot.Stop()
		mainLogger.Info("Telegram bot started")
	} else {
		mainLogger.Info("TELEGRAM_TOKEN not set, bot disabled")
	}

	mainLogger.Info("Application setup complete")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	mainLogger.Info("Shutting down application...")
	return nil
}
