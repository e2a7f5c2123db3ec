// @title Events API
// @version 1.0
// @description Events with locations, slugs and question/answer threads.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventsapi/config"
	_ "eventsapi/docs"
	httpdelivery "eventsapi/internal/delivery/http"
	"eventsapi/internal/delivery/http/controllers"
	"eventsapi/internal/delivery/http/middleware"
	"eventsapi/internal/jobs"
	"eventsapi/internal/repository/postgres"
	"eventsapi/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ContextTimeout)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		return err
	}

	if cfg.AutoMigrate {
		version, err := postgres.Migrate(ctx, db)
		if err != nil {
			return err
		}
		logger.Info("database migrated", "version", version)
	}

	store := postgres.NewStore(db)
	eventService := services.NewEventService(store, cfg.ContextTimeout, cfg.SlugMaxSuffix)

	housekeeper := jobs.NewHousekeeper(logger, eventService, cfg.EventRetention)
	if _, err := housekeeper.RunOnce(ctx); err != nil {
		// a failed startup purge is retried by the schedule, if any
		logger.Warn("startup purge failed", "err", err)
	}
	if err := housekeeper.Start(cfg.PurgeSchedule); err != nil {
		return err
	}

	router := httpdelivery.NewRouter(
		controllers.NewEventController(logger, eventService),
		controllers.NewHealthController(logger, db),
	)
	cors := middleware.NewCORS(middleware.CORSPolicy{
		AllowedOrigins: cfg.AllowedOrigins,
		ExposedHeaders: cfg.CORSExposeHeaders,
		MaxAge:         cfg.CORSMaxAge,
	})
	handler := middleware.LoggingMiddleware(logger, cors(router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	housekeeper.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server exited")
	return nil
}
