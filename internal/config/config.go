package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	APIBaseURL    string
	DBDSN         string
	Environment   string

	// HTTPTimeout bounds every backend call; a hung request must not
	// leave a chat stuck on a loading message forever.
	HTTPTimeout time.Duration

	// CallbackListenAddr is where the payment return listener binds.
	// CallbackBaseURL is the public base the payment provider redirects to.
	CallbackListenAddr string
	CallbackBaseURL    string

	MigrationsPath string
}

func Load() (*Config, error) {
	// Load .env if present, otherwise rely on the environment
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := &Config{
		TelegramToken:      os.Getenv("TELEGRAM_TOKEN"),
		APIBaseURL:         os.Getenv("API_BASE_URL"),
		DBDSN:              os.Getenv("DB_DSN"),
		Environment:        os.Getenv("ENV"),
		CallbackListenAddr: os.Getenv("CALLBACK_LISTEN_ADDR"),
		CallbackBaseURL:    os.Getenv("CALLBACK_BASE_URL"),
		MigrationsPath:     os.Getenv("MIGRATIONS_PATH"),
	}

	// Defaults
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.CallbackListenAddr == "" {
		cfg.CallbackListenAddr = ":8091"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}
	cfg.HTTPTimeout = 15 * time.Second
	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = d
	}

	// Required fields
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required but not set")
	}
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.CallbackBaseURL == "" {
		return nil, fmt.Errorf("CALLBACK_BASE_URL is required but not set")
	}

	return cfg, nil
}
