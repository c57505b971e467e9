package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"portfolio-backend/internal/handler/http/respond"
	pgRepo "portfolio-backend/internal/infra/adapter/persistence/postgres"
	"portfolio-backend/internal/infra/behance"
	"portfolio-backend/internal/infra/db"
	"portfolio-backend/internal/infra/notifier"
	workerPkg "portfolio-backend/internal/infra/worker"
	"portfolio-backend/internal/usecase/notify"
	syncUC "portfolio-backend/internal/usecase/sync"
)

func main() {
	logger := initLogger()
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workerMetrics := workerPkg.NewMetrics()
	workerConfig, err := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	if err != nil {
		logger.Error("failed to load worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("sync_schedule", workerConfig.SyncSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Int("notify_max_concurrent", workerConfig.NotifyMaxConcurrent),
		slog.Duration("sync_timeout", workerConfig.SyncTimeout),
		slog.Int("health_port", workerConfig.HealthPort))

	notifyService := setupNotifyService(logger, workerConfig.NotifyMaxConcurrent)

	startMetricsServer(ctx, logger, notifyService)

	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)

	syncSvc := setupSyncService(logger, database)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := healthServer.Start(gctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("health server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return runCronWorker(gctx, logger, syncSvc, notifyService, workerConfig, workerMetrics, healthServer)
	})

	if err := g.Wait(); err != nil {
		logger.Error("worker failed", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := notifyService.Shutdown(shutdownCtx); err != nil {
		logger.Error("notification service shutdown failed", slog.Any("error", err))
	}
	logger.Info("worker stopped")
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection and waits for the API server's
// migrations to complete.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	waitForMigrations(logger, database)
	return database
}

func waitForMigrations(logger *slog.Logger, db *sql.DB) {
	const probe = "SELECT 1 FROM portfolio_items LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := db.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

// setupSyncService wires the portfolio repository and the showcase API
// client into the reconciliation service.
func setupSyncService(logger *slog.Logger, database *sql.DB) *syncUC.Service {
	cfg := behance.ConfigFromEnv()
	client := behance.NewClient(cfg)
	if client.Configured() {
		logger.Info("showcase client configured", slog.String("base_url", cfg.BaseURL))
	} else {
		logger.Warn("showcase credentials not set, sync runs will be no-ops")
	}

	return syncUC.NewService(pgRepo.NewPortfolioRepo(database), client)
}

// setupNotifyService builds the notification service from environment
// configuration.
func setupNotifyService(logger *slog.Logger, maxConcurrent int) notify.Service {
	var channels []notify.Channel

	slackConfig := loadSlackConfig(logger)
	if slackConfig.Enabled {
		slackNotifier := notifier.NewSlackNotifier(slackConfig)
		channels = append(channels, notify.NewSlackChannel(slackNotifier, true))
		logger.Info("Slack channel initialized")
	} else {
		logger.Info("Slack channel disabled")
	}

	logger.Info("notification service initialized",
		slog.Int("channels", len(channels)),
		slog.Int("max_concurrent", maxConcurrent))
	return notify.NewService(channels, maxConcurrent)
}

// loadSlackConfig loads Slack webhook configuration from environment variables.
//
// Environment variables:
//   - SLACK_ENABLED: "true" enables Slack notifications (default: disabled)
//   - SLACK_WEBHOOK_URL: Slack webhook URL (required if enabled)
func loadSlackConfig(logger *slog.Logger) notifier.SlackConfig {
	if os.Getenv("SLACK_ENABLED") != "true" {
		return notifier.SlackConfig{Enabled: false}
	}

	webhookURL := os.Getenv("SLACK_WEBHOOK_URL")
	if webhookURL == "" {
		logger.Warn("Slack webhook URL is empty, disabling notifications")
		return notifier.SlackConfig{Enabled: false}
	}

	u, err := url.Parse(webhookURL)
	if err != nil {
		logger.Warn("invalid Slack webhook URL format, disabling notifications", slog.Any("error", err))
		return notifier.SlackConfig{Enabled: false}
	}
	if u.Scheme != "https" {
		logger.Warn("Slack webhook URL must use HTTPS, disabling notifications")
		return notifier.SlackConfig{Enabled: false}
	}
	if u.Host != "hooks.slack.com" || !strings.HasPrefix(u.Path, "/services/") {
		logger.Warn("invalid Slack webhook URL, disabling notifications", slog.String("host", u.Host))
		return notifier.SlackConfig{Enabled: false}
	}

	return notifier.SlackConfig{
		Enabled:    true,
		WebhookURL: webhookURL,
		Timeout:    30 * time.Second,
	}
}

// runCronWorker starts the cron scheduler, runs the sync job on schedule,
// and blocks until the context is cancelled.
func runCronWorker(ctx context.Context, logger *slog.Logger, svc *syncUC.Service, notifyService notify.Service, cfg *workerPkg.Config, metrics *workerPkg.Metrics, healthServer *workerPkg.HealthServer) error {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.SyncSchedule, func() {
		runSyncJob(logger, svc, notifyService, cfg, metrics)
	})
	if err != nil {
		return fmt.Errorf("add cron job: %w", err)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("worker started", slog.String("schedule", cfg.SyncSchedule), slog.String("timezone", cfg.Timezone))

	<-ctx.Done()
	logger.Info("stopping scheduler, waiting for running job")
	<-c.Stop().Done()
	return nil
}

// notifyTimeout bounds failure notifications independently of the sync
// timeout.
const notifyTimeout = 30 * time.Second

// runSyncJob executes a single reconciliation pass with timeout and error handling.
func runSyncJob(logger *slog.Logger, svc *syncUC.Service, notifyService notify.Service, cfg *workerPkg.Config, metrics *workerPkg.Metrics) {
	startTime := time.Now()
	logger.Info("portfolio sync job started")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.SyncTimeout)
	defer cancel()

	result, err := svc.Reconcile(ctx)
	if err != nil {
		if errors.Is(err, syncUC.ErrSyncInProgress) {
			logger.Warn("sync job skipped, previous run still in progress")
			metrics.RecordJobRun("skipped")
			return
		}

		logger.Error("sync job failed", slog.String("error", respond.SanitizeError(err)))
		metrics.RecordJobRun("failure")
		metrics.RecordJobDuration(time.Since(startTime).Seconds())

		// The sync context may already be past its deadline, which is
		// often why the job failed; the notification gets its own.
		notifyCtx, notifyCancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer notifyCancel()
		if notifyErr := notifyService.NotifySyncFailure(notifyCtx, err); notifyErr != nil {
			logger.Warn("sync failure notification failed", slog.Any("error", notifyErr))
		}
		return
	}

	metrics.RecordJobRun("success")
	metrics.RecordJobDuration(time.Since(startTime).Seconds())
	metrics.RecordItemsChanged(result.Created, result.Deleted)
	metrics.RecordLastSuccess()

	logger.Info("sync job completed",
		slog.Int("created", result.Created),
		slog.Int("deleted", result.Deleted),
		slog.Int("skipped", result.Skipped),
		slog.Duration("duration", result.Duration),
	)
}
