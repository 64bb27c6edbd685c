package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type BotConfig struct {
	Token      string `mapstructure:"telegram_token"`
	WebhookURL string `mapstructure:"webhook_url"`
	Workers    int    `mapstructure:"workers"`
	Locale     string `mapstructure:"locale"`
}

type AliexpressConfig struct {
	AppKey     string `mapstructure:"aliexpress_app_key"`
	AppSecret  string `mapstructure:"aliexpress_app_secret"`
	TrackingID string `mapstructure:"aliexpress_tracking_id"`
	BaseURL    string `mapstructure:"aliexpress_base_url"`
}

type RatesConfig struct {
	BaseURL        string `mapstructure:"rates_base_url"`
	TargetCurrency string `mapstructure:"target_currency"`
}

type HTTPConfig struct {
	Port int `mapstructure:"http_port"`
}

type LogConfig struct {
	Level    string `mapstructure:"log_level"`
	Format   string `mapstructure:"log_format"` // json|console
	Sampling bool   `mapstructure:"log_sampling"`
}

type PipelineConfig struct {
	ResolveTimeout time.Duration `mapstructure:"resolve_timeout"`
	CallTimeout    time.Duration `mapstructure:"call_timeout"`
}

type Config struct {
	Bot        BotConfig        `mapstructure:",squash"`
	Aliexpress AliexpressConfig `mapstructure:",squash"`
	Rates      RatesConfig      `mapstructure:",squash"`
	HTTP       HTTPConfig       `mapstructure:",squash"`
	Log        LogConfig        `mapstructure:",squash"`
	Pipeline   PipelineConfig   `mapstructure:",squash"`
}

// WebhookMode reports whether the process should receive updates over a
// webhook instead of long polling.
func (c *Config) WebhookMode() bool {
	return c.Bot.WebhookURL != ""
}

// Load reads configuration from the environment (BOT_* variables) with an
// optional YAML file underneath. Environment values win over file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	// AutomaticEnv alone does not surface unset keys through Unmarshal, so
	// bind every known key explicitly.
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, cfg.validate()
}

var configKeys = []string{
	"telegram_token", "webhook_url", "workers", "locale",
	"aliexpress_app_key", "aliexpress_app_secret", "aliexpress_tracking_id", "aliexpress_base_url",
	"rates_base_url", "target_currency",
	"http_port",
	"log_level", "log_format", "log_sampling",
	"resolve_timeout", "call_timeout",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("workers", 8)
	v.SetDefault("locale", "ar")
	v.SetDefault("aliexpress_tracking_id", "default")
	v.SetDefault("aliexpress_base_url", "https://api-sg.aliexpress.com/sync")
	v.SetDefault("rates_base_url", "https://api.exchangerate-api.com")
	v.SetDefault("target_currency", "SAR")
	v.SetDefault("http_port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("resolve_timeout", 10*time.Second)
	v.SetDefault("call_timeout", 10*time.Second)
}

func (c *Config) validate() error {
	if c.Bot.Token == "" {
		return errors.New("telegram_token is required")
	}
	if c.Aliexpress.AppKey == "" || c.Aliexpress.AppSecret == "" {
		return errors.New("aliexpress_app_key and aliexpress_app_secret are required")
	}
	if c.Bot.Workers <= 0 {
		c.Bot.Workers = 8
	}
	if c.Pipeline.ResolveTimeout <= 0 {
		c.Pipeline.ResolveTimeout = 10 * time.Second
	}
	if c.Pipeline.CallTimeout <= 0 {
		c.Pipeline.CallTimeout = 10 * time.Second
	}
	return nil
}
