// Package config loads gobeam settings from defaults, an optional YAML file,
// an optional .env file and GOBEAM_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Environment variables that override file settings
const (
	EnvFactor      = "GOBEAM_FACTOR"
	EnvLogLevel    = "GOBEAM_LOG_LEVEL"
	EnvLogFormat   = "GOBEAM_LOG_FORMAT"
	EnvASCIIHeight = "GOBEAM_ASCII_HEIGHT"
)

// Config contains all gobeam settings
type Config struct {
	// Factor is the dimensionless factor used when a scenario does not set one
	Factor float64 `json:"factor" yaml:"factor"`

	// Chart contains diagram output settings
	Chart ChartConfig `json:"chart" yaml:"chart"`

	// Log contains logger settings
	Log LogConfig `json:"log" yaml:"log"`
}

// ChartConfig contains diagram output settings
type ChartConfig struct {
	WidthInches  float64 `json:"width_inches" yaml:"width_inches"`
	HeightInches float64 `json:"height_inches" yaml:"height_inches"`
	ASCIIHeight  int     `json:"ascii_height" yaml:"ascii_height"`
	ASCIIWidth   int     `json:"ascii_width" yaml:"ascii_width"`
}

// LogConfig contains logger settings
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // text or json
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Factor: beam.DefaultFactor,
		Chart: ChartConfig{
			WidthInches:  8,
			HeightInches: 6,
			ASCIIHeight:  15,
			ASCIIWidth:   70,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration. An empty path skips the YAML file.
// A missing .env file in the working directory is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvFactor); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFactor, err)
		}
		c.Factor = f
	}
	if v := os.Getenv(EnvASCIIHeight); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvASCIIHeight, err)
		}
		c.Chart.ASCIIHeight = h
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	return nil
}

// Validate checks the configuration values
func (c Config) Validate() error {
	if c.Factor == 0 {
		return errors.New("config: factor must not be zero")
	}
	if c.Chart.WidthInches <= 0 || c.Chart.HeightInches <= 0 {
		return errors.New("config: chart size must be positive")
	}
	if c.Chart.ASCIIHeight <= 0 || c.Chart.ASCIIWidth <= 0 {
		return errors.New("config: ascii chart size must be positive")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("config: unknown log level %q", s)
	}
	return level, nil
}
