package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string // HTTP listen address
	Environment   string
	DataDir       string // jsonstore directory (default backend)
	DBDSN         string // when set, the postgres backend is used instead
	TelegramToken string // when set, notifications also push to Telegram
}

func Load() (*Config, error) {
	// Try .env first, fall back to plain environment variables
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		Addr:          os.Getenv("ADDR"),
		Environment:   os.Getenv("ENV"),
		DataDir:       os.Getenv("DATA_DIR"),
		DBDSN:         os.Getenv("DB_DSN"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":4000"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}

	return cfg, nil
}

// UsePostgres reports whether the postgres backend was configured
func (c *Config) UsePostgres() bool {
	return c.DBDSN != ""
}
