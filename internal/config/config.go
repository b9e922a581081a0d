package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Допустимые значения CARD_STORE.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"error"`    // debug|info|warn|error
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"` // console|json

	// CardStore выбирает бэкенд таблицы карт: memory или sqlite (in-memory).
	CardStore string `env:"CARD_STORE" envDefault:"memory"`
}

// Значения по умолчанию.
const (
	DefaultLogLevel  = "error"
	DefaultLogFormat = "console"
	DefaultCardStore = StoreMemory
)

// Default returns the configuration used when the environment sets nothing.
func Default() *Config {
	return &Config{LogLevel: DefaultLogLevel, LogFormat: DefaultLogFormat, CardStore: DefaultCardStore}
}

// NewConfig reads the configuration from the environment, optionally preloaded from .env.
// There are no command-line flags. The returned Config is never nil: invalid values are
// replaced with their defaults and reported in the error, so the caller can warn and go on.
func NewConfig() (*Config, error) {
	// .env необязателен: отсутствие файла не ошибка
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return Default(), fmt.Errorf("parse env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.CardStore = strings.ToLower(strings.TrimSpace(cfg.CardStore))

	// пустые значения из окружения -> дефолты
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.CardStore == "" {
		cfg.CardStore = DefaultCardStore
	}

	// некорректные значения -> дефолты, ошибки копим
	var errs []error
	if err := validLogLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err)
		cfg.LogLevel = DefaultLogLevel
	}
	if err := validLogFormat(cfg.LogFormat); err != nil {
		errs = append(errs, err)
		cfg.LogFormat = DefaultLogFormat
	}
	if err := validCardStore(cfg.CardStore); err != nil {
		errs = append(errs, err)
		cfg.CardStore = DefaultCardStore
	}
	return cfg, errors.Join(errs...)
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	return errors.Join(validLogLevel(c.LogLevel), validLogFormat(c.LogFormat), validCardStore(c.CardStore))
}

func validLogLevel(v string) error {
	switch v {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", v)
}

func validLogFormat(v string) error {
	switch v {
	case "console", "json":
		return nil
	}
	return fmt.Errorf("invalid LOG_FORMAT %q (allowed: console, json)", v)
}

func validCardStore(v string) error {
	switch v {
	case StoreMemory, StoreSQLite:
		return nil
	}
	return fmt.Errorf("invalid CARD_STORE %q (allowed: %s, %s)", v, StoreMemory, StoreSQLite)
}
