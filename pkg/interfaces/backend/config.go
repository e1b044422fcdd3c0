package backend

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type BackendConfig struct {
	// API Endpoint
	BaseURL string

	// HTTP behavior
	HTTPTimeout time.Duration

	// Client-side rate limiting (requests per second, 0 disables)
	RateLimitRPS float64

	// General Config
	Logger *logrus.Logger
}

// NewBackendConfig loads configuration from the environment, honoring an
// optional .env file.
func NewBackendConfig() (*BackendConfig, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	timeoutSecs, _ := strconv.Atoi(getEnvOrDefault("TIKODEA_HTTP_TIMEOUT_SECONDS", "30"))
	rateLimit, _ := strconv.ParseFloat(getEnvOrDefault("TIKODEA_RATE_LIMIT_RPS", "0"), 64)

	config := &BackendConfig{
		BaseURL:      getEnvOrDefault("TIKODEA_API_BASE_URL", "http://localhost:8000"),
		HTTPTimeout:  time.Duration(timeoutSecs) * time.Second,
		RateLimitRPS: rateLimit,
		Logger:       logrus.New(),
	}

	return config, nil
}

func (c *BackendConfig) Validate() error {
	if c.Logger == nil {
		return fmt.Errorf("logger is required")
	}

	c.Logger.Debug("Validating backend configuration")

	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 30 * time.Second
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
