package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode  bool   `env:"TEST_MODE" envDefault:"false"`
	BindAddress string `env:"BIND_ADDRESS" envDefault:"0.0.0.0:9090"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	RabbitmqReminderExchange   string `env:"RABBITMQ_REMINDER_EXCHANGE" envDefault:"reminder-events"`
	RabbitmqReminderRoutingKey string `env:"RABBITMQ_REMINDER_ROUTING_KEY" envDefault:"reminder-events"`

	NotifierInterval time.Duration `env:"NOTIFIER_INTERVAL" envDefault:"30s"`

	// Write operations per user per minute.
	ReminderWriteRateLimit uint16 `env:"REMINDER_WRITE_RATE_LIMIT" envDefault:"60"`

	CorsAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	return cfg, nil
}
