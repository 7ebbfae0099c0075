package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/labelpath/cli/internal/rootcap"
)

// PrefixConfig is the serialized form of the prefix spec: either a literal
// string or a bracket pair wrapping the project label.
type PrefixConfig struct {
	Literal string `json:"literal,omitempty"`
	Bracket bool   `json:"bracket,omitempty"`
	Open    string `json:"open,omitempty"`
	Close   string `json:"close,omitempty"`
}

// UserConfig represents CLI configuration
type UserConfig struct {
	Prefix        PrefixConfig      `json:"prefix"`
	AbbrevLimit   int               `json:"abbrev_limit"`
	Abbrevs       map[string]string `json:"abbrevs,omitempty"`
	Resolvers     []string          `json:"resolvers"`
	Fallback      string            `json:"fallback"`
	FixedRoots    []string          `json:"fixed_roots,omitempty"`
	MarkerFiles   []string          `json:"marker_files,omitempty"`
	LogLevel      string            `json:"log_level"`
	ConfigVersion string            `json:"config_version"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Prefix:        PrefixConfig{Literal: "./"},
		AbbrevLimit:   24,
		Resolvers:     []string{"git", "markers"},
		Fallback:      "default",
		LogLevel:      "info",
		ConfigVersion: "1.0",
	}
}

// Load loads the configuration from disk, or returns default if not found
func Load() (*UserConfig, error) {
	configFile := GetConfigFile()

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var config UserConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save saves the configuration to disk with atomic write
func (c *UserConfig) Save() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configFile := GetConfigFile()

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	// Write to temporary file first (atomic write pattern)
	tempFile := configFile + ".tmp"
	if err := os.WriteFile(tempFile, data, 0600); err != nil {
		return err
	}

	if err := os.Rename(tempFile, configFile); err != nil {
		os.Remove(tempFile) // Clean up temp file on error
		return err
	}

	return nil
}

// Validate validates the configuration
func (c *UserConfig) Validate() error {
	if c.AbbrevLimit < 0 {
		return fmt.Errorf("abbrev_limit must be non-negative, got %d", c.AbbrevLimit)
	}

	switch c.Fallback {
	case "", "default", "absolute", "none":
	default:
		return fmt.Errorf("unknown fallback policy %q", c.Fallback)
	}

	known := make(map[string]bool, len(rootcap.Names))
	for _, name := range rootcap.Names {
		known[name] = true
	}
	for _, name := range c.Resolvers {
		if !known[name] {
			return fmt.Errorf("unknown root resolver %q", name)
		}
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if c.LogLevel != "" && !validLevels[c.LogLevel] {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	return nil
}
