// Package worker holds the configuration, health server, and metrics for
// the portfolio sync worker process.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	"portfolio-backend/internal/pkg/config"
)

// Config holds the configuration for the sync worker.
//
// All fields have defaults and validation rules; loading follows a
// fail-open strategy so the worker can always start, falling back to
// defaults when an environment value is invalid.
type Config struct {
	// SyncSchedule is the cron expression for the periodic sync job.
	// Format: "minute hour day month weekday"
	// Default: "*/30 * * * *" (every 30 minutes)
	SyncSchedule string

	// Timezone is the IANA timezone name for cron scheduling.
	// Default: "UTC"
	Timezone string

	// NotifyMaxConcurrent caps concurrent notification deliveries.
	// Range: 1-50
	// Default: 10
	NotifyMaxConcurrent int

	// SyncTimeout bounds a single reconciliation run. The run is
	// cancelled when the timeout elapses.
	// Default: 10 minutes
	SyncTimeout time.Duration

	// HealthPort is the port for the worker's health check HTTP server.
	// Range: 1024-65535
	// Default: 9091
	HealthPort int
}

// DefaultConfig returns a Config with production defaults: a sync every
// 30 minutes, a 10-minute run timeout, and the health server on 9091.
func DefaultConfig() Config {
	return Config{
		SyncSchedule:        "*/30 * * * *",
		Timezone:            "UTC",
		NotifyMaxConcurrent: 10,
		SyncTimeout:         10 * time.Minute,
		HealthPort:          9091,
	}
}

// Validate checks all configuration values and returns the collected
// errors if any field is invalid.
func (c *Config) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.SyncSchedule); err != nil {
		errs = append(errs, fmt.Errorf("sync schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidateIntRange(c.NotifyMaxConcurrent, 1, 50); err != nil {
		errs = append(errs, fmt.Errorf("notify max concurrent: %w", err))
	}
	if err := config.ValidatePositiveDuration(c.SyncTimeout); err != nil {
		errs = append(errs, fmt.Errorf("sync timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv loads worker configuration from environment variables.
//
// Each field falls back to its default when the environment value fails
// validation; the fallback is logged and counted in the worker metrics.
// The returned configuration is therefore always valid and the error is
// always nil.
//
// Environment variables:
//   - SYNC_SCHEDULE: cron expression (default: "*/30 * * * *")
//   - WORKER_TIMEZONE: IANA timezone name (default: "UTC")
//   - NOTIFY_MAX_CONCURRENT: integer 1-50 (default: 10)
//   - SYNC_TIMEOUT: duration string, e.g. "10m" (default: 10 minutes)
//   - WORKER_HEALTH_PORT: integer 1024-65535 (default: 9091)
func LoadConfigFromEnv(logger *slog.Logger, metrics *Metrics) (*Config, error) {
	cfg := DefaultConfig()
	fallbackApplied := false

	recordFallback := func(field string, warnings []string) {
		fallbackApplied = true
		metrics.RecordValidationError(field)
		metrics.RecordFallback(field, "default")
		for _, warning := range warnings {
			logger.Warn("configuration fallback applied",
				slog.String("field", field),
				slog.String("warning", warning))
		}
	}

	result := config.LoadEnvWithFallback("SYNC_SCHEDULE", cfg.SyncSchedule, config.ValidateCronSchedule)
	cfg.SyncSchedule = result.Value.(string)
	if result.FallbackApplied {
		recordFallback("sync_schedule", result.Warnings)
	}

	result = config.LoadEnvWithFallback("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone)
	cfg.Timezone = result.Value.(string)
	if result.FallbackApplied {
		recordFallback("timezone", result.Warnings)
	}

	result = config.LoadEnvInt("NOTIFY_MAX_CONCURRENT", cfg.NotifyMaxConcurrent, func(v int) error {
		return config.ValidateIntRange(v, 1, 50)
	})
	cfg.NotifyMaxConcurrent = result.Value.(int)
	if result.FallbackApplied {
		recordFallback("notify_max_concurrent", result.Warnings)
	}

	result = config.LoadEnvDuration("SYNC_TIMEOUT", cfg.SyncTimeout, func(d time.Duration) error {
		return config.ValidateDuration(d, 1*time.Minute, 2*time.Hour)
	})
	cfg.SyncTimeout = result.Value.(time.Duration)
	if result.FallbackApplied {
		recordFallback("sync_timeout", result.Warnings)
	}

	result = config.LoadEnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
		return config.ValidateIntRange(v, 1024, 65535)
	})
	cfg.HealthPort = result.Value.(int)
	if result.FallbackApplied {
		recordFallback("health_port", result.Warnings)
	}

	metrics.SetFallbackActive("", fallbackApplied)
	metrics.RecordLoadTimestamp()

	return &cfg, nil
}
