package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"tutorhub/internal/app"
	"tutorhub/internal/config"
	"tutorhub/internal/httpapi"
	"tutorhub/internal/notifier"
	"tutorhub/internal/repository"
	"tutorhub/internal/repository/jsonstore"
	"tutorhub/internal/repository/postgres"
	"tutorhub/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var repos *repository.Repositories
	if cfg.UsePostgres() {
		store, err := postgres.Open(ctx, cfg.DBDSN)
		if err != nil {
			logger.Fatal("Failed to open postgres store", zap.Error(err))
		}
		defer store.Close()

		migrator, err := app.NewMigrator(store.Pool(), "migrations")
		if err != nil {
			logger.Fatal("Failed to create migrator", zap.Error(err))
		}
		if err := migrator.Run(ctx); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		migrator.Close()

		repos = store.Repositories()
		logger.Info("Using postgres store")
	} else {
		store, err := jsonstore.Open(cfg.DataDir)
		if err != nil {
			logger.Fatal("Failed to open json store", zap.Error(err))
		}
		repos = store.Repositories()
		logger.Info("Using json store", zap.String("dir", cfg.DataDir))
	}

	var pusher service.Pusher
	if cfg.TelegramToken != "" {
		telegram, err := notifier.NewTelegram(cfg.TelegramToken, logger)
		if err != nil {
			logger.Fatal("Failed to create telegram notifier", zap.Error(err))
		}
		pusher = telegram
		logger.Info("Telegram notifications enabled")
	}

	services := service.New(repos, pusher, logger)

	sweeper := app.NewSweeper(services.Sessions, logger)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	server := httpapi.NewServer(services, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Listen(cfg.Addr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
		if err := server.Shutdown(); err != nil {
			logger.Error("Server shutdown failed", zap.Error(err))
		}
	case err := <-errChan:
		if err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}
}
