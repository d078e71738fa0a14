package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/mwhite7112/woodpantry-recipefetch/internal/clients"
)

type Config struct {
	Port        int
	BaseURL     string
	Endpoint    string
	LogLevel    string
	HTTPTimeout time.Duration
}

func Default() Config {
	return Config{
		Port:        8080,
		BaseURL:     clients.BaseURL,
		Endpoint:    "all",
		LogLevel:    "info",
		HTTPTimeout: 30 * time.Second,
	}
}

// Load reads an optional .env file from envFile (skipped when empty or
// missing), then overrides the defaults with RECIPES_* environment variables.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()

	if v := os.Getenv("RECIPES_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 || p > 65535 {
			return Config{}, fmt.Errorf("RECIPES_PORT must be a port number, got %q", v)
		}
		cfg.Port = p
	}
	if v := os.Getenv("RECIPES_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("RECIPES_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("RECIPES_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("RECIPES_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("RECIPES_HTTP_TIMEOUT must be a non-negative duration, got %q", v)
		}
		cfg.HTTPTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields that are not free-form.
func (c Config) Validate() error {
	if _, err := clients.EndpointByName(c.Endpoint); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// EndpointPath resolves Endpoint to its path. Call Validate first.
func (c Config) EndpointPath() string {
	path, _ := clients.EndpointByName(c.Endpoint)
	return path
}

func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}
