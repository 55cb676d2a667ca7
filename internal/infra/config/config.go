package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization

	"github.com/joho/godotenv"
)

// Supported storage drivers
const (
	StoreDriverFile     = "file"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	LogLevel                 string
	Environment              string
	StoreDriver              string
	StorePath                string // File or sqlite database path
	DatabaseURL              string // Only for the postgres driver
	HTTPAddr                 string
	ReminderHour             int
	CronSpecQuoteRotation    string
	CronSpecCountdownRefresh string
	TelegramToken            string // Optional; enables the bot when set
	OwnerTelegramID          int64
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.StoreDriver = strings.ToLower(os.Getenv("STORE_DRIVER"))
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = StoreDriverFile
	}

	cfg.StorePath = os.Getenv("STORE_PATH")
	switch cfg.StoreDriver {
	case StoreDriverFile:
		if cfg.StorePath == "" {
			cfg.StorePath = "data/tracker.json"
		}
	case StoreDriverSQLite:
		if cfg.StorePath == "" {
			cfg.StorePath = "tracker.db"
		}
	case StoreDriverPostgres:
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is not set")
		}
	case StoreDriverMemory:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	cfg.HTTPAddr = os.Getenv("HTTP_ADDR")
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = "127.0.0.1:8000"
	}

	cfg.ReminderHour = 9
	if hourStr := os.Getenv("REMINDER_HOUR"); hourStr != "" {
		cfg.ReminderHour, err = strconv.Atoi(hourStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REMINDER_HOUR: %w", err)
		}
		if cfg.ReminderHour < 0 || cfg.ReminderHour > 23 {
			return nil, fmt.Errorf("invalid REMINDER_HOUR: %d is not in 0-23", cfg.ReminderHour)
		}
	}

	cfg.CronSpecQuoteRotation = os.Getenv("CRON_SPEC_QUOTE_ROTATION")
	if cfg.CronSpecQuoteRotation == "" {
		cfg.CronSpecQuoteRotation = "@every 10s"
	}

	cfg.CronSpecCountdownRefresh = os.Getenv("CRON_SPEC_COUNTDOWN_REFRESH")
	if cfg.CronSpecCountdownRefresh == "" {
		cfg.CronSpecCountdownRefresh = "@every 1m"
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken != "" {
		ownerIDStr := os.Getenv("OWNER_TELEGRAM_ID")
		if ownerIDStr == "" {
			return nil, fmt.Errorf("OWNER_TELEGRAM_ID is not set")
		}
		cfg.OwnerTelegramID, err = strconv.ParseInt(ownerIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid OWNER_TELEGRAM_ID: %w", err)
		}
	}

	return cfg, nil
}

// TelegramEnabled reports whether the bot surface should start.
func (c *AppConfig) TelegramEnabled() bool {
	return c.TelegramToken != ""
}
