package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when --config is not set.
const DefaultPath = "ropewalk.yaml"

// Config holds all ropewalk configuration.
type Config struct {
	// Chain lengths to simulate per input, one answer each.
	Parts []int `yaml:"parts"`

	Parser  ParserConfig  `yaml:"parser"`
	Render  RenderConfig  `yaml:"render"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// ParserConfig configures instruction parsing.
type ParserConfig struct {
	// Accept zero-count instructions as no-ops instead of rejecting them.
	AllowZeroCount bool `yaml:"allow_zero_count"`
}

// RenderConfig configures the grid renderer.
type RenderConfig struct {
	Color    bool `yaml:"color"`
	Segments int  `yaml:"segments"`
}

// WatchConfig configures the input watcher.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Parts: []int{2, 10},
		Render: RenderConfig{
			Segments: 10,
		},
		Watch: WatchConfig{
			Debounce: "200ms",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("ROPEWALK_PARTS"); v != "" {
		parts, err := ParseParts(v)
		if err != nil {
			return fmt.Errorf("ROPEWALK_PARTS: %w", err)
		}
		c.Parts = parts
	}
	if v := os.Getenv("ROPEWALK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ROPEWALK_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ROPEWALK_DEBUG: %w", err)
		}
		c.Logging.DebugMode = debug
	}
	return nil
}

// ParseParts parses a comma separated list of chain lengths such as "2,10".
func ParseParts(s string) ([]int, error) {
	var parts []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid chain length %q", f)
		}
		parts = append(parts, n)
	}
	return parts, nil
}

// GetDebounce returns the watch debounce as a duration.
func (c *Config) GetDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return 200 * time.Millisecond
	}
	return d
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Parts) == 0 {
		return fmt.Errorf("at least one chain length must be configured in parts")
	}
	for _, n := range c.Parts {
		if n < 2 {
			return fmt.Errorf("chain length must be >= 2, got %d", n)
		}
	}
	if c.Render.Segments != 0 && c.Render.Segments < 2 {
		return fmt.Errorf("render.segments must be >= 2, got %d", c.Render.Segments)
	}

	validLevel := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}

	return nil
}
