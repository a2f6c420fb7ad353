package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	TelegramToken      string
	AdminTelegramIDs   []int64
	StorageDriver      string
	DatabaseURL        string // Postgres DSN, required for the postgres driver
	SQLitePath         string
	DefaultCountryCode string // Prepended to bare nine-digit numbers
	LogLevel           string
	Environment        string
	CronSpecDailyStats string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	adminIDsStr := os.Getenv("ADMIN_IDS")
	if adminIDsStr == "" {
		return nil, fmt.Errorf("ADMIN_IDS is not set")
	}
	for _, part := range strings.Split(adminIDsStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin ID %q in ADMIN_IDS: %w", part, err)
		}
		cfg.AdminTelegramIDs = append(cfg.AdminTelegramIDs, id)
	}
	if len(cfg.AdminTelegramIDs) == 0 {
		return nil, fmt.Errorf("ADMIN_IDS contains no valid IDs")
	}

	cfg.StorageDriver = strings.ToLower(os.Getenv("STORAGE_DRIVER"))
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = DriverPostgres
	}
	switch cfg.StorageDriver {
	case DriverPostgres:
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is not set")
		}
	case DriverSQLite:
		cfg.SQLitePath = os.Getenv("SQLITE_PATH")
		if cfg.SQLitePath == "" {
			cfg.SQLitePath = "users.db"
		}
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER: %s", cfg.StorageDriver)
	}

	cfg.DefaultCountryCode = os.Getenv("DEFAULT_COUNTRY_CODE")
	if cfg.DefaultCountryCode == "" {
		cfg.DefaultCountryCode = "998"
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpecDailyStats = os.Getenv("CRON_SPEC_DAILY_STATS")
	if cfg.CronSpecDailyStats == "" {
		cfg.CronSpecDailyStats = "0 9 * * *" // Default: 9:00 AM daily
	}

	return cfg, nil
}

// IsAdmin reports whether the given Telegram ID is in the admin allow-list.
func (c *AppConfig) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminTelegramIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}
