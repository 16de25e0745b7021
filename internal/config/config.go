package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	HTTPAddr    string
	DatabaseURL string
	AMQPURL     string
	ImportQueue string
	LogLevel    string
}

// Load reads .env files (if any exist) and then the environment. A missing
// .env is not an error; the returned bool reports whether one was loaded.
func Load(files ...string) (Config, bool, error) {
	loaded := true
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, false, fmt.Errorf("load env file: %w", err)
		}
		loaded = false
	}
	return FromEnv(os.Getenv), loaded, nil
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		HTTPAddr:    getenv("HTTP_ADDR"),
		DatabaseURL: getenv("DATABASE_URL"),
		AMQPURL:     getenv("AMQP_URL"),
		ImportQueue: getenv("IMPORT_QUEUE"),
		LogLevel:    getenv("LOG_LEVEL"),
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.ImportQueue == "" {
		cfg.ImportQueue = "customer_imports"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			getenv("DB_USER"), getenv("DB_PASSWORD"), getenv("DB_HOST"), getenv("DB_PORT"), getenv("DB_NAME"),
		)
	}
	return cfg
}
