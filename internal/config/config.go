package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CaseSensitiveEnv is the environment variable whose presence, with any
// value including the empty string, turns on case-sensitive matching.
const CaseSensitiveEnv = "CASE_SENSITIVE"

// Config represents minigrep configuration options
type Config struct {
	// CaseSensitive selects exact-case matching instead of lowercased comparison
	CaseSensitive bool `yaml:"case_sensitive"`

	// Color controls match highlighting (auto, always, never)
	Color string `yaml:"color"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs are written (empty = no log files)
	LogDir string `yaml:"log_dir"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		CaseSensitive: false,
		Color:         "auto",
		LogLevel:      "warn",
		LogDir:        "",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer for the bool so an explicit "case_sensitive: false" is
	// distinguishable from an absent key.
	type yamlConfig struct {
		CaseSensitive *bool  `yaml:"case_sensitive"`
		Color         string `yaml:"color"`
		LogLevel      string `yaml:"log_level"`
		LogDir        string `yaml:"log_dir"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.CaseSensitive != nil {
		cfg.CaseSensitive = *yamlCfg.CaseSensitive
	}
	if yamlCfg.Color != "" {
		cfg.Color = strings.ToLower(yamlCfg.Color)
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(yamlCfg.LogLevel)
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}

	return cfg, nil
}

// ApplyEnv overlays environment settings onto the configuration.
// lookup has the signature of os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if _, ok := lookup(CaseSensitiveEnv); ok {
		c.CaseSensitive = true
	}
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(caseSensitive *bool, color *string, logLevel *string, logDir *string) {
	if caseSensitive != nil {
		c.CaseSensitive = *caseSensitive
	}
	if color != nil {
		c.Color = strings.ToLower(*color)
	}
	if logLevel != nil {
		c.LogLevel = strings.ToLower(*logLevel)
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	validColors := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColors[c.Color] {
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	return nil
}
