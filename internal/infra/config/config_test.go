package config_test

import (
	"testing"

	"phone_lookup_bot/internal/infra/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_TOKEN", "test-token")
	t.Setenv("ADMIN_IDS", "111,222")
	t.Setenv("DATABASE_URL", "postgres://localhost/bot")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load returned an error: %v", err)
		}
		if cfg.StorageDriver != config.DriverPostgres {
			t.Errorf("expected the postgres driver by default, got %s", cfg.StorageDriver)
		}
		if cfg.DefaultCountryCode != "998" {
			t.Errorf("expected default country code 998, got %s", cfg.DefaultCountryCode)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("expected default log level info, got %s", cfg.LogLevel)
		}
		if cfg.CronSpecDailyStats == "" {
			t.Error("expected a default daily stats cron spec")
		}
	})

	t.Run("admin IDs are parsed from the comma-separated list", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ADMIN_IDS", "111, 222 ,333")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load returned an error: %v", err)
		}
		if len(cfg.AdminTelegramIDs) != 3 {
			t.Fatalf("expected 3 admin IDs, got %d", len(cfg.AdminTelegramIDs))
		}
		for i, want := range []int64{111, 222, 333} {
			if cfg.AdminTelegramIDs[i] != want {
				t.Errorf("admin ID %d: expected %d, got %d", i, want, cfg.AdminTelegramIDs[i])
			}
		}
	})

	t.Run("missing token is an error", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TELEGRAM_TOKEN", "")

		if _, err := config.Load(); err == nil {
			t.Error("expected an error for a missing TELEGRAM_TOKEN")
		}
	})

	t.Run("missing database URL is an error for the postgres driver", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DATABASE_URL", "")

		if _, err := config.Load(); err == nil {
			t.Error("expected an error for a missing DATABASE_URL")
		}
	})

	t.Run("sqlite driver needs no database URL", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DATABASE_URL", "")
		t.Setenv("STORAGE_DRIVER", "sqlite")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load returned an error: %v", err)
		}
		if cfg.SQLitePath != "users.db" {
			t.Errorf("expected the default sqlite path, got %s", cfg.SQLitePath)
		}
	})

	t.Run("unknown storage driver is an error", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("STORAGE_DRIVER", "mongodb")

		if _, err := config.Load(); err == nil {
			t.Error("expected an error for an unsupported STORAGE_DRIVER")
		}
	})

	t.Run("malformed admin ID is an error", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ADMIN_IDS", "111,abc")

		if _, err := config.Load(); err == nil {
			t.Error("expected an error for a non-numeric admin ID")
		}
	})
}

func TestIsAdmin(t *testing.T) {
	cfg := &config.AppConfig{AdminTelegramIDs: []int64{111, 222}}

	if !cfg.IsAdmin(111) {
		t.Error("expected 111 to be an admin")
	}
	if cfg.IsAdmin(333) {
		t.Error("expected 333 not to be an admin")
	}
}
