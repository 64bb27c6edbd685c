//go:build !integration

package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TELEGRAM_TOKEN", "123:token")
	t.Setenv("BOT_ALIEXPRESS_APP_KEY", "pub")
	t.Setenv("BOT_ALIEXPRESS_APP_SECRET", "sec")
}

func TestLoad(t *testing.T) {
	t.Run("loads from environment with defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Bot.Token != "123:token" {
			t.Errorf("token = %q", cfg.Bot.Token)
		}
		if cfg.Aliexpress.TrackingID != "default" {
			t.Errorf("tracking id default = %q, want %q", cfg.Aliexpress.TrackingID, "default")
		}
		if cfg.Rates.TargetCurrency != "SAR" {
			t.Errorf("target currency default = %q, want SAR", cfg.Rates.TargetCurrency)
		}
		if cfg.Bot.Locale != "ar" {
			t.Errorf("locale default = %q, want ar", cfg.Bot.Locale)
		}
		if cfg.Pipeline.ResolveTimeout != 10*time.Second {
			t.Errorf("resolve timeout default = %v, want 10s", cfg.Pipeline.ResolveTimeout)
		}
		if cfg.WebhookMode() {
			t.Error("webhook mode must be off without a webhook url")
		}
	})

	t.Run("webhook url selects webhook mode", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BOT_WEBHOOK_URL", "https://bot.example/webhook")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !cfg.WebhookMode() {
			t.Error("expected webhook mode")
		}
	})

	t.Run("missing token fails", func(t *testing.T) {
		t.Setenv("BOT_TELEGRAM_TOKEN", "")
		t.Setenv("BOT_ALIEXPRESS_APP_KEY", "pub")
		t.Setenv("BOT_ALIEXPRESS_APP_SECRET", "sec")

		if _, err := Load(""); err == nil {
			t.Fatal("expected an error without a bot token")
		}
	})

	t.Run("missing api credentials fail", func(t *testing.T) {
		t.Setenv("BOT_TELEGRAM_TOKEN", "123:token")
		t.Setenv("BOT_ALIEXPRESS_APP_KEY", "")
		t.Setenv("BOT_ALIEXPRESS_APP_SECRET", "")

		if _, err := Load(""); err == nil {
			t.Fatal("expected an error without api credentials")
		}
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BOT_TARGET_CURRENCY", "AED")
		t.Setenv("BOT_WORKERS", "3")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Rates.TargetCurrency != "AED" {
			t.Errorf("target currency = %q, want AED", cfg.Rates.TargetCurrency)
		}
		if cfg.Bot.Workers != 3 {
			t.Errorf("workers = %d, want 3", cfg.Bot.Workers)
		}
	})
}
