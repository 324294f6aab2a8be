package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	Environment string        `yaml:"environment" env:"LEADSDESK_ENV" env-default:"local"`
	API         APIConfig     `yaml:"api"`
	Session     SessionConfig `yaml:"session"`
	Logger      LogConfig     `yaml:"logger"`
}

type APIConfig struct {
	BaseURL        string        `yaml:"base_url" env:"LEADSDESK_BASE_URL" env-default:"http://127.0.0.1:8000/api/"`
	RefreshTimeout time.Duration `yaml:"refresh_timeout" env:"LEADSDESK_REFRESH_TIMEOUT" env-default:"0s"`
}

type SessionConfig struct {
	StoreURL string `yaml:"store_url" env:"LEADSDESK_SESSION" env-default:"~/.leadsdesk/session.json"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LEADSDESK_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LEADSDESK_LOG_FORMAT" env-default:"console"`
}

// Load reads .env (when present), then the optional YAML file at path, then
// LEADSDESK_* environment variables.
func Load(path string) (*Config, error) {
	envFile := os.Getenv("LEADSDESK_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load %v: %w", envFile, err)
	}

	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if cfg.Session.StoreURL, err = expandHome(cfg.Session.StoreURL); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func expandHome(location string) (string, error) {
	if location != "~" && !strings.HasPrefix(location, "~/") {
		return location, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(location, "~")), nil
}
