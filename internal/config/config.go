// Package config loads the server's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// LogLevelEnv overrides logging.level when set.
const LogLevelEnv = "INPUT_DETECT_LOG_LEVEL"

// Config holds server configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Document DocumentConfig `yaml:"document"`
	Preview  PreviewConfig  `yaml:"preview"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// DocumentConfig preloads a document and selection at startup so the UI
// message works without a prior document_load call.
type DocumentConfig struct {
	Path      string   `yaml:"path"`
	Selection []string `yaml:"selection"` // node IDs or JSONPath expressions
}

type PreviewConfig struct {
	Scale     float64 `yaml:"scale"`
	Highlight string  `yaml:"highlight"` // hex color, e.g. "#ff3b30"
}

// Load reads configuration from a YAML file.
// If path is empty or the file doesn't exist, it returns the default config.
// The LogLevelEnv environment variable is applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if lvl := os.Getenv(LogLevelEnv); lvl != "" {
		cfg.Logging.Level = lvl
	}
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Preview: PreviewConfig{Scale: 1.0, Highlight: "#ff3b30"},
	}
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Preview.Scale == 0 {
		cfg.Preview.Scale = def.Preview.Scale
	}
	if cfg.Preview.Highlight == "" {
		cfg.Preview.Highlight = def.Preview.Highlight
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Preview.Scale <= 0 {
		return fmt.Errorf("preview.scale must be positive, got %v", c.Preview.Scale)
	}
	if _, err := colorful.Hex(c.Preview.Highlight); err != nil {
		return fmt.Errorf("preview.highlight %q is not a hex color: %w", c.Preview.Highlight, err)
	}
	if len(c.Document.Selection) > 0 && c.Document.Path == "" {
		return errors.New("document.selection requires document.path")
	}
	return nil
}

// SlogLevel maps logging.level to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown logging.level %q", c.Logging.Level)
}

// HighlightColor returns the parsed preview highlight color. A Config built
// without Load may hold an invalid color; the default highlight is used then.
func (c *Config) HighlightColor() colorful.Color {
	col, err := colorful.Hex(c.Preview.Highlight)
	if err != nil {
		col, _ = colorful.Hex(Default().Preview.Highlight)
	}
	return col
}
