package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	APIBaseURL string        `envconfig:"API_BASE_URL" required:"true"`
	APITimeout time.Duration `envconfig:"API_TIMEOUT"  default:"10s"`
	AdminPort  string        `envconfig:"ADMIN_PORT"   default:":8080"`
	LogLevel   string        `envconfig:"LOG_LEVEL"    default:"info"`
	AuthToken  string        `envconfig:"AUTH_TOKEN"`
	TokenFile  string        `envconfig:"TOKEN_FILE"`
}

// Load reads an optional .env file from the working directory, then the
// process environment. Values already set in the environment win.
func Load(logger *logrus.Logger, envFiles ...string) (*Config, error) {
	err := godotenv.Load(envFiles...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Debug("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}
	if cfg.APITimeout <= 0 {
		return nil, fmt.Errorf("API_TIMEOUT must be positive, got %s", cfg.APITimeout)
	}

	logger.Debugf("Configuration loaded: API=%s, Timeout=%s, AdminPort=%s, LogLevel=%s",
		cfg.APIBaseURL, cfg.APITimeout, cfg.AdminPort, cfg.LogLevel)
	return &cfg, nil
}

// NewLogger builds the process logger at the given level, falling back to
// info on an unknown level.
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}
