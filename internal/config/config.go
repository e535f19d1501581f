package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"crowdfund-lifecycle/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Scheduler configs.Scheduler `envPrefix:"SCHEDULER_"`
	Sweep     configs.Sweep     `envPrefix:"SWEEP_"`
	Notify    configs.Notify    `envPrefix:"NOTIFY_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory is read first when present; variables
// already set in the environment take precedence over it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values env parsing accepts but the service cannot run with.
func (c Config) Validate() error {
	if c.Sweep.Workers < 1 {
		return fmt.Errorf("SWEEP_WORKERS must be at least 1, got %d", c.Sweep.Workers)
	}
	if c.Sweep.ReminderWindow <= 0 {
		return fmt.Errorf("SWEEP_REMINDER_WINDOW must be positive, got %s", c.Sweep.ReminderWindow)
	}
	if _, err := c.Scheduler.Location(); err != nil {
		return fmt.Errorf("SCHEDULER_TIMEZONE: %w", err)
	}
	switch c.Notify.Driver {
	case "log":
	case "telegram":
		if c.Notify.TelegramToken == "" || c.Notify.TelegramChatID == 0 {
			return errors.New("NOTIFY_TELEGRAM_TOKEN and NOTIFY_TELEGRAM_CHAT_ID are required for the telegram driver")
		}
	default:
		return fmt.Errorf("unknown NOTIFY_DRIVER %q", c.Notify.Driver)
	}
	return nil
}
