package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	pgRepo "portfolio-backend/internal/infra/adapter/persistence/postgres"
	"portfolio-backend/internal/infra/behance"
	"portfolio-backend/internal/infra/db"
	"portfolio-backend/internal/infra/notifier"
	pkgconfig "portfolio-backend/pkg/config"

	analyticsUC "portfolio-backend/internal/usecase/analytics"
	csUC "portfolio-backend/internal/usecase/casestudy"
	contactUC "portfolio-backend/internal/usecase/contact"
	contentUC "portfolio-backend/internal/usecase/content"
	"portfolio-backend/internal/usecase/notify"
	pfUC "portfolio-backend/internal/usecase/portfolio"
	syncUC "portfolio-backend/internal/usecase/sync"

	appconfig "portfolio-backend/internal/config"
	hhttp "portfolio-backend/internal/handler/http"
	hanalytics "portfolio-backend/internal/handler/http/analytics"
	hauth "portfolio-backend/internal/handler/http/auth"
	hcasestudy "portfolio-backend/internal/handler/http/casestudy"
	hcontact "portfolio-backend/internal/handler/http/contact"
	hcontent "portfolio-backend/internal/handler/http/content"
	hportfolio "portfolio-backend/internal/handler/http/portfolio"
	"portfolio-backend/internal/handler/http/requestid"
	"portfolio-backend/internal/observability/tracing"
	authservice "portfolio-backend/internal/service/auth"
)

const (
	serverAddr     = ":8080"
	requestTimeout = 30 * time.Second
	maxBodyBytes   = 1 << 20
)

func main() {
	logger := initLogger()
	policy := loadSecurityPolicy(logger)
	validateAdminCredentials(logger, policy)
	validateJWTSecret(logger)
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	notifyService := setupNotifyService(logger)
	handler := setupServer(logger, database, getVersion(), notifyService, policy)

	runServer(logger, handler, notifyService, getVersion())
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

// securityPolicy is the effective admin auth policy: compiled-in defaults,
// optionally overridden by a SECURITY_CONFIG_PATH YAML file.
type securityPolicy struct {
	minPasswordLength int
	weakPasswords     []string
	publicEndpoints   []string
}

func loadSecurityPolicy(logger *slog.Logger) securityPolicy {
	policy := securityPolicy{
		minPasswordLength: 12,
		weakPasswords:     weakPasswords(),
		publicEndpoints:   hauth.PublicEndpoints,
	}

	path := os.Getenv("SECURITY_CONFIG_PATH")
	if path == "" {
		return policy
	}

	cfg, err := appconfig.LoadSecurityConfig(path)
	if err != nil {
		logger.Error("failed to load security config", slog.String("path", path), slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.GetAuthProvider() != "basic" {
		logger.Error("unsupported auth provider", slog.String("provider", cfg.GetAuthProvider()))
		os.Exit(1)
	}

	policy.minPasswordLength = cfg.GetMinPasswordLength()
	if weak := cfg.GetWeakPasswords(); len(weak) > 0 {
		policy.weakPasswords = weak
	}
	if hours := cfg.GetJWTExpiryHours(); hours > 0 {
		hauth.SetTokenTTL(time.Duration(hours) * time.Hour)
	}
	if public := cfg.GetPublicEndpoints(); len(public) > 0 {
		policy.publicEndpoints = public
		// Authz consults the package-level list, so the override must land
		// there before any request is served.
		hauth.PublicEndpoints = public
	}
	logger.Info("security config loaded", slog.String("path", path))
	return policy
}

// validateAdminCredentials validates the admin credentials at startup.
// This prevents the server from starting with empty or weak admin credentials.
func validateAdminCredentials(logger *slog.Logger, policy securityPolicy) {
	provider := hauth.NewBasicAuthProvider(policy.minPasswordLength, policy.weakPasswords)
	creds := authservice.Credentials{
		Username: os.Getenv("ADMIN_USER"),
		Password: os.Getenv("ADMIN_USER_PASSWORD"),
	}
	if err := provider.ValidateCredentials(context.Background(), creds); err != nil {
		logger.Error("admin credentials validation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// validateJWTSecret validates the JWT_SECRET environment variable for security requirements.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	for _, weak := range []string{"secret", "password", "test", "admin", "default"} {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
}

func weakPasswords() []string {
	return []string{"password", "123456", "admin", "test", "secret"}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupNotifyService builds the notification service from environment
// configuration. With no channel configured the service still works; every
// dispatch simply has nowhere to go.
func setupNotifyService(logger *slog.Logger) notify.Service {
	var channels []notify.Channel

	slackConfig := loadSlackConfig(logger)
	if slackConfig.Enabled {
		slackNotifier := notifier.NewSlackNotifier(slackConfig)
		channels = append(channels, notify.NewSlackChannel(slackNotifier, true))
		logger.Info("Slack channel initialized")
	} else {
		logger.Info("Slack channel disabled")
	}

	maxConcurrent := pkgconfig.GetEnvInt("NOTIFY_MAX_CONCURRENT", 4)
	return notify.NewService(channels, maxConcurrent)
}

// loadSlackConfig loads Slack webhook configuration from environment variables.
// The webhook URL must be an HTTPS hooks.slack.com services URL; anything else
// disables the channel rather than failing startup.
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
	if u.Scheme != "https" || u.Host != "hooks.slack.com" || !strings.HasPrefix(u.Path, "/services/") {
		logger.Warn("invalid Slack webhook URL, disabling notifications", slog.String("host", u.Host))
		return notifier.SlackConfig{Enabled: false}
	}

	return notifier.SlackConfig{
		Enabled:    true,
		WebhookURL: webhookURL,
		Timeout:    30 * time.Second,
	}
}

// setupServer wires repositories, use cases, and HTTP handlers and returns
// the root handler with the full middleware chain applied.
func setupServer(logger *slog.Logger, database *sql.DB, version string, notifyService notify.Service, policy securityPolicy) http.Handler {
	portfolioRepo := pgRepo.NewPortfolioRepo(database)

	portfolioSvc := &pfUC.Service{Repo: portfolioRepo}
	caseStudySvc := &csUC.Service{Repo: pgRepo.NewCaseStudyRepo(database)}
	contentSvc := &contentUC.Service{Repo: pgRepo.NewSiteContentRepo(database)}
	contactSvc := contactUC.NewService(pgRepo.NewContactMessageRepo(database), notifyService)
	analyticsSvc := analyticsUC.NewService(pgRepo.NewPageViewRepo(database))

	showcase := behance.NewClient(behance.ConfigFromEnv())
	syncSvc := syncUC.NewService(portfolioRepo, showcase)

	authService := authservice.NewAuthService(
		hauth.NewBasicAuthProvider(policy.minPasswordLength, policy.weakPasswords),
		policy.publicEndpoints,
	)

	// Rate limit: token endpoint 5/min, public write endpoints 30/min, per IP.
	authLimiter := hhttp.NewRateLimiter(5, 1*time.Minute)
	writeLimiter := hhttp.NewRateLimiter(30, 1*time.Minute)

	mux := http.NewServeMux()
	mux.Handle("POST /auth/token", authLimiter.Limit(hauth.TokenHandler(authService)))

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version, Notifier: notifyService})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	hportfolio.Register(mux, portfolioSvc, syncSvc)
	hcasestudy.Register(mux, caseStudySvc)
	hcontent.Register(mux, contentSvc)
	hcontact.Register(mux, contactSvc, writeLimiter.Limit)
	hanalytics.Register(mux, analyticsSvc, writeLimiter.Limit)

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain, innermost first:
// metrics, body limit, timeout, logging, recovery, tracing, request ID.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := hhttp.MetricsMiddleware(handler)
	chain = hhttp.LimitRequestBody(maxBodyBytes)(chain)
	chain = hhttp.Timeout(requestTimeout)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, notifyService notify.Service, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", serverAddr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if err := notifyService.Shutdown(shutdownCtx); err != nil {
		logger.Error("notification service shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
