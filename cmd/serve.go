package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/auth"
	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/events"
	httpapi "task-tracker.com/task-tracker/internal/http"
	"task-tracker.com/task-tracker/internal/queue"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Migrates the database and serves the task and timeline API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log := config.NewLogger(cfg.LogLevel, nil)

		database, err := config.NewDatabaseClient(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		if err := config.Migrate(database); err != nil {
			return err
		}

		taskRepo := repository.NewTaskRepository(database)
		timelineRepo := repository.NewTimelineRepository(database)

		var publishers []events.Publisher
		if cfg.RedisAddr != "" {
			redisClient, err := config.NewRedisClient(cfg.RedisAddr)
			if err != nil {
				return err
			}
			defer redisClient.Close()

			publishers = append(publishers, queue.NewRedisEventPublisher(redisClient, cfg.RedisEventsStream))
			log.Info().Str("addr", cfg.RedisAddr).Str("stream", cfg.RedisEventsStream).Msg("publishing timeline events to redis")
		}

		sink := events.NewFanOut(log, timelineRepo, publishers...)
		paginator := services.NewPaginator(cfg.PageSizeDefault, cfg.PageSizeMaximum)

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true

		httpapi.Register(e, httpapi.Dependencies{
			Tasks:              services.NewTaskService(taskRepo, sink, paginator),
			Timeline:           services.NewTimelineService(timelineRepo, paginator),
			Tokens:             auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL),
			Log:                log,
			RateLimitPerMinute: cfg.RateLimit,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Info().Str("addr", cfg.AppURL).Msg("HTTP server listening")
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("server stopped")
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("HTTP server shutdown timed out")
		}

		log.Info().Msg("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
