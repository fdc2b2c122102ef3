package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/cache"
	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/events"
	httpapi "task-tracker.com/task-tracker/internal/http"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task tracker HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}

		database, err := config.NewDatabaseClient(cfg)
		if err != nil {
			return err
		}
		if sqlDB, err := database.DB(); err == nil {
			defer sqlDB.Close()
		}

		if !skipMigrate {
			if err := config.Migrate(database); err != nil {
				return err
			}
		}

		listCache, closeCache, err := newTaskListCache(cfg, log)
		if err != nil {
			return err
		}
		defer closeCache()

		publisher, closePublisher, err := newPublisher(cfg, log)
		if err != nil {
			return err
		}
		defer closePublisher()

		taskRepo := repository.NewTaskRepository(database)
		taskService := services.NewTaskService(taskRepo, listCache, publisher)

		e := httpapi.NewServer(taskService, httpapi.ServerOptions{
			AllowOrigins:       cfg.FrontendURLs,
			RateLimitPerMinute: cfg.RateLimit,
			Logger:             log,
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		serverErr := make(chan error, 1)
		go func() {
			log.Info("HTTP server listening", "addr", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()

		select {
		case <-ctx.Done():
		case err := <-serverErr:
			return err
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server shutdown failed", "error", err)
		}

		log.Info("HTTP server shut down gracefully")
		return nil
	},
}

func newTaskListCache(cfg config.Config, log *slog.Logger) (cache.TaskListCache, func(), error) {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, task list cache disabled")
		return cache.NoopTaskListCache{}, func() {}, nil
	}

	client, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	return cache.NewRedisTaskListCache(client, ttl), client.Close, nil
}

func newPublisher(cfg config.Config, log *slog.Logger) (events.Publisher, func(), error) {
	if cfg.NatsURL == "" {
		log.Info("NATS_URL not set, task events disabled")
		return events.NoopPublisher{}, func() {}, nil
	}

	nc, err := config.NewNatsConnection(cfg.NatsURL)
	if err != nil {
		return nil, nil, err
	}

	closeConn := func() {
		if err := nc.Drain(); err != nil {
			log.Warn("nats drain failed", "error", err)
		}
	}
	return events.NewNATSPublisher(nc, cfg.NatsSubjectPrefix), closeConn, nil
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not run schema migration on start")
	rootCmd.AddCommand(serveCmd)
}
