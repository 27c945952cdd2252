package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "lanternfish.yaml"

// Config holds all lanternfish configuration.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Trace      TraceConfig      `yaml:"trace"`
	Verify     VerifyConfig     `yaml:"verify"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig configures the population run.
type SimulationConfig struct {
	Ticks int  `yaml:"ticks"`
	Exact bool `yaml:"exact"` // always count with arbitrary precision
}

// TraceConfig configures the per-tick trace output.
type TraceConfig struct {
	Format string `yaml:"format"` // table, markdown, json
	Every  int    `yaml:"every"`
}

// VerifyConfig configures the cross-check against the per-fish model.
type VerifyConfig struct {
	Limit int `yaml:"limit"` // maximum fish the reference model may hold
}

// Puzzle presets for the two halves of the day 6 puzzle.
const (
	PartOneTicks = 80
	PartTwoTicks = 256
)

// TraceFormats lists the supported trace renderers.
var TraceFormats = []string{"table", "markdown", "json"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Ticks: PartTwoTicks,
		},
		Trace: TraceConfig{
			Format: "table",
			Every:  1,
		},
		Verify: VerifyConfig{
			Limit: 1_000_000,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
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

	// Override with environment variables
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
	if v := os.Getenv("LANTERNFISH_TICKS"); v != "" {
		ticks, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LANTERNFISH_TICKS %q: %w", v, err)
		}
		c.Simulation.Ticks = ticks
	}
	if v := os.Getenv("LANTERNFISH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LANTERNFISH_TRACE_FORMAT"); v != "" {
		c.Trace.Format = v
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Simulation.Ticks < 0 {
		return fmt.Errorf("simulation.ticks must not be negative, got %d", c.Simulation.Ticks)
	}
	if c.Trace.Every < 1 {
		return fmt.Errorf("trace.every must be at least 1, got %d", c.Trace.Every)
	}
	if c.Verify.Limit < 1 {
		return fmt.Errorf("verify.limit must be at least 1, got %d", c.Verify.Limit)
	}

	validFormat := false
	for _, f := range TraceFormats {
		if c.Trace.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return fmt.Errorf("invalid trace format: %s (valid: %v)", c.Trace.Format, TraceFormats)
	}

	return c.Logging.Validate()
}

// PartTicks returns the tick count for puzzle part 1 or 2.
func PartTicks(part int) (int, error) {
	switch part {
	case 1:
		return PartOneTicks, nil
	case 2:
		return PartTwoTicks, nil
	default:
		return 0, fmt.Errorf("unknown puzzle part %d (valid: 1, 2)", part)
	}
}
