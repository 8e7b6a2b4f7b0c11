// Package config loads the process configuration from environment
// variables.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the bot needs to run. Secrets come in
// through the environment only.
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"kaiawatch"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Telemetry is optional: with no OTLP endpoint configured the
	// exporters are skipped entirely.
	TelemetryEnabled bool `envconfig:"TELEMETRY_ENABLED" default:"false"`

	TelegramBotToken string `envconfig:"BOT_TOKEN" required:"true"`

	KaiascanBaseURL  string        `envconfig:"KAIASCAN_BASE_URL" default:"https://mainnet-oapi.kaiascan.io"`
	KaiascanAPIToken string        `envconfig:"KAIASCAN_API_TOKEN" required:"true"`
	KaiascanTimeout  time.Duration `envconfig:"KAIASCAN_TIMEOUT" default:"10s"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	PollInterval         time.Duration `envconfig:"POLL_INTERVAL" default:"15s"`
	FetchTimeout         time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`
	MaxConcurrentFetches int           `envconfig:"MAX_CONCURRENT_FETCHES" default:"10"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
