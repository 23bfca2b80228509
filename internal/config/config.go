// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/amaumene/gomoviefavs/internal/constants"
)

const (
	// Default configuration file name
	defaultConfigFile = "config.json"
	// Default dotenv file name
	defaultEnvFile = ".env"
)

// Config holds the application configuration.
// Sources, lowest precedence first: defaults, config file (JSON or YAML),
// environment (including a .env file).
type Config struct {
	// Base URL of the movies API, e.g. http://localhost:3000
	APIURL string `json:"MOVIES_API_URL" yaml:"movies_api_url"`

	Port     string `json:"PORT" yaml:"port"`
	LogLevel string `json:"LOG_LEVEL" yaml:"log_level"`

	// Per-call timeout towards the movies API
	RequestTimeout time.Duration `json:"-" yaml:"-"`
	// Seconds form of RequestTimeout, as found in files
	RequestTimeoutSeconds int `json:"REQUEST_TIMEOUT_SECONDS" yaml:"request_timeout_seconds"`

	AllowedOrigins []string `json:"ALLOWED_ORIGINS" yaml:"allowed_origins"`

	// Incoming request throttling
	RateLimit int64 `json:"RATE_LIMIT" yaml:"rate_limit"`
	RateBurst int64 `json:"RATE_BURST" yaml:"rate_burst"`
}

// Load reads configuration from the optional .env file, an optional config
// file and environment variables. Environment variables take precedence over
// file values. Returns an error if the configuration is invalid.
func Load() (*Config, error) {
	if err := godotenv.Load(getEnvOrDefault("ENV_FILE", defaultEnvFile)); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{}

	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		// Ignore file not found errors
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from a JSON or YAML file, chosen by extension.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	default:
		return json.Unmarshal(data, c)
	}
}

// loadFromEnv overrides fields with environment variables that are set.
func (c *Config) loadFromEnv() error {
	if v := os.Getenv("MOVIES_API_URL"); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}

	var err error
	if c.RequestTimeoutSeconds, err = intFromEnv("REQUEST_TIMEOUT_SECONDS", c.RequestTimeoutSeconds); err != nil {
		return err
	}
	rl, err := intFromEnv("RATE_LIMIT", int(c.RateLimit))
	if err != nil {
		return err
	}
	rb, err := intFromEnv("RATE_BURST", int(c.RateBurst))
	if err != nil {
		return err
	}
	c.RateLimit, c.RateBurst = int64(rl), int64(rb)

	return nil
}

// Validate checks if the configuration is valid.
// Sets default values for missing optional fields.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		c.APIURL = constants.DefaultAPIURL
	}
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("MOVIES_API_URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("MOVIES_API_URL must be an absolute http(s) URL, got %q", c.APIURL)
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")

	if c.Port == "" {
		c.Port = constants.DefaultPort
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = constants.DefaultLogLevel
	}

	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_SECONDS must not be negative")
	}
	if c.RequestTimeoutSeconds > 0 {
		c.RequestTimeout = time.Duration(c.RequestTimeoutSeconds) * time.Second
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = constants.DefaultRequestTimeout
	}

	if c.RateLimit <= 0 {
		c.RateLimit = constants.DefaultRateLimit
	}
	if c.RateBurst <= 0 {
		c.RateBurst = constants.DefaultRateBurst
	}

	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intFromEnv(key string, current int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return current, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
