package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dog-walking/internal/adapters/storage/mongo"
	"dog-walking/internal/platform/config"
	"dog-walking/internal/platform/logger"
	"dog-walking/internal/platform/metrics"
	"dog-walking/internal/router"
)

// @title Dog Walking API
// @version 1.0
// @description Dueños, perros y reservas de paseo sobre MongoDB.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Sin config todavía no hay nivel/format: logger desde env.
		logger.NewFromEnv().Error("config load failed", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	db, err := mongo.Open(context.Background(), mongo.Options{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		log.Error("mongo connect failed", map[string]any{"error": err, "db": cfg.Mongo.Database})
		os.Exit(1)
	}
	log.Info("mongo connected", map[string]any{"db": cfg.Mongo.Database})

	r := router.NewRouter(router.Options{
		Owners:   mongo.NewOwnersRepo(db.Database),
		Dogs:     mongo.NewDogsRepo(db.Database),
		Bookings: mongo.NewBookingsRepo(db.Database, log),
		Ready:    db.Ping,
		Logger:   log,
		Metrics:  metrics.New(),
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.HTTPAddr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err})
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	log.Info("shutting down", map[string]any{"signal": sig.String()})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", map[string]any{"error": err})
	}
	if err := db.Close(ctx); err != nil {
		log.Error("mongo disconnect failed", map[string]any{"error": err})
	}
	log.Info("stopped", nil)
}
