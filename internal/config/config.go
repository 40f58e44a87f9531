// Package config loads genescope settings from built-in defaults, an optional
// YAML file, an optional .env file and the process environment, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the BioGRID interactions endpoint.
const DefaultBaseURL = "https://webservice.thebiogrid.org/interactions"

// DefaultEnvFile is loaded when present in the working directory.
const DefaultEnvFile = ".env"

type Config struct {
	BioGRID   BioGRID `yaml:"biogrid"`
	Render    Render  `yaml:"render"`
	Server    Server  `yaml:"server"`
	LogLevel  string  `yaml:"log_level" env:"GENESCOPE_LOG_LEVEL"`
	LogFormat string  `yaml:"log_format" env:"GENESCOPE_LOG_FORMAT"`
}

type BioGRID struct {
	BaseURL   string        `yaml:"base_url" env:"BIOGRID_BASE_URL"`
	AccessKey string        `yaml:"access_key" env:"BIOGRID_ACCESS_KEY"`
	Timeout   time.Duration `yaml:"timeout" env:"BIOGRID_TIMEOUT"`
}

type Render struct {
	OutputPath string `yaml:"output_path" env:"GENESCOPE_OUTPUT"`
	Open       bool   `yaml:"open" env:"GENESCOPE_OPEN"`
	Seed       uint64 `yaml:"seed" env:"GENESCOPE_SEED"`
	Width      int    `yaml:"width" env:"GENESCOPE_WIDTH"`
	Height     int    `yaml:"height" env:"GENESCOPE_HEIGHT"`
}

type Server struct {
	Addr              string `yaml:"addr" env:"GENESCOPE_ADDR"`
	CORSAllowedOrigin string `yaml:"cors_allowed_origin" env:"CORS_ALLOWED_ORIGIN"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BioGRID: BioGRID{
			BaseURL: DefaultBaseURL,
			Timeout: 10 * time.Second,
		},
		Render: Render{
			OutputPath: "interaction_network.svg",
			Open:       true,
			Seed:       42,
			Width:      1200,
			Height:     1000,
		},
		Server: Server{
			Addr:              ":8080",
			CORSAllowedOrigin: "*",
		},
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load builds a Config. path names an optional YAML file; an empty path skips
// it. A .env file in the working directory is applied when present.
func Load(path string) (*Config, error) {
	if err := loadEnvFile(DefaultEnvFile); err != nil {
		return nil, err
	}
	return LoadWithEnv(path, nil)
}

// LoadWithEnv is Load without the .env step. When environ is non-nil it
// replaces the process environment.
func LoadWithEnv(path string, environ map[string]string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.Parse(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	u, err := url.Parse(c.BioGRID.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		result = multierror.Append(result, fmt.Errorf("invalid biogrid base_url: %q", c.BioGRID.BaseURL))
	}
	if c.BioGRID.Timeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("biogrid timeout must be positive, got %s", c.BioGRID.Timeout))
	}

	if c.Render.OutputPath == "" {
		result = multierror.Append(result, errors.New("render output_path cannot be empty"))
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		result = multierror.Append(result, fmt.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height))
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		result = multierror.Append(result, fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		result = multierror.Append(result, fmt.Errorf("invalid log_format: %s (must be text or json)", c.LogFormat))
	}

	return result.ErrorOrNil()
}
