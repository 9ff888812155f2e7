package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/friday-rota/internal/config"
	"github.com/diegoclair/friday-rota/internal/domain/service"
	"github.com/diegoclair/friday-rota/internal/handlers"
	"github.com/diegoclair/friday-rota/internal/logger"
	"github.com/diegoclair/friday-rota/internal/notify"
	"github.com/diegoclair/friday-rota/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	if envErr != nil {
		log.Warn(".env file not found")
	}

	store := storage.New(cfg.ConfigPath, cfg.DefaultMembers)
	if _, err := store.Load(); err != nil {
		log.WithError(err).Fatal("Failed to load rota config")
	}

	services, err := service.NewInstance(store, notify.New(notify.DefaultTimeout), log, cfg.ReminderCron)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize services")
	}

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	if cfg.SlackSigningSecret == "" {
		log.Warn("SLACK_SIGNING_SECRET is not set, slash commands will be rejected")
	}

	router := handlers.NewRouter(
		log,
		handlers.NewAPIHandler(services.Rota, log),
		handlers.NewSlackHandler(services.Rota, cfg.SlackSigningSecret, log),
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
}
