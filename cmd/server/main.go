package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daybookhq/daybook/internal/activity"
	"github.com/daybookhq/daybook/internal/auth"
	"github.com/daybookhq/daybook/internal/config"
	"github.com/daybookhq/daybook/internal/crypto"
	"github.com/daybookhq/daybook/internal/database"
	"github.com/daybookhq/daybook/internal/logging"
	"github.com/daybookhq/daybook/internal/moods"
	"github.com/daybookhq/daybook/internal/notify"
	"github.com/daybookhq/daybook/internal/server"
	"github.com/daybookhq/daybook/internal/worker"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	if cfg.Env == "development" {
		if err := database.SeedDevData(db); err != nil {
			logger.Warn("Dev seed failed", "error", err.Error())
		}
	}

	catalog, err := moods.LoadCatalog()
	if err != nil {
		log.Fatalf("mood catalog failed to load: %v", err)
	}

	encryptor, err := crypto.NewTokenEncryptor(cfg.TokenEncryptionKey)
	if err != nil {
		log.Fatalf("token encryptor init failed: %v", err)
	}

	notifier := notify.NewClient(cfg.ResetWebhookURL, cfg.ResetWebhookSecret, cfg.ResetWebhookStub)

	auth.InitProviders(cfg)

	// Activity events are best-effort; run without them if Redis is down.
	publisher, err := activity.NewPublisher(cfg.RedisURL)
	if err != nil {
		logger.Warn("Activity publisher disabled", "error", err.Error())
		publisher = nil
	} else {
		defer publisher.Close()
	}

	if err := worker.InitClient(cfg.RedisURL); err != nil {
		log.Fatalf("worker client init failed: %v", err)
	}
	defer worker.CloseClient()

	stopWorker, err := worker.Start(cfg, db)
	if err != nil {
		log.Fatalf("worker start failed: %v", err)
	}
	defer stopWorker()

	stopScheduler, err := worker.StartScheduler(cfg)
	if err != nil {
		log.Fatalf("scheduler start failed: %v", err)
	}
	defer stopScheduler()

	router := server.NewRouter(server.Deps{
		DB:        db,
		Config:    cfg,
		Logger:    logger,
		Publisher: publisher,
		Catalog:   catalog,
		Notifier:  notifier,
		Encryptor: encryptor,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err.Error())
	}
}
