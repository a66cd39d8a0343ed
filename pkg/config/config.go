// Package config handles configuration loading and management
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/larsvilhuber/acrodefs-maintenance/pkg/types"
	"github.com/larsvilhuber/acrodefs-maintenance/pkg/writer"
)

// Defaults for the minimal flagless contract
const (
	DefaultListFile   = "list.txt"
	DefaultOutputFile = "acrodefs.tex"
	DefaultLogLevel   = "info"
)

// Manager handles configuration operations
type Manager struct{}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{}
}

// LoadConfig loads configuration from a file
func (m *Manager) LoadConfig(path string) (*types.AcrodefsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg types.AcrodefsConfig

	// Try JSON first
	if err := json.Unmarshal(data, &cfg); err == nil {
		return m.validateConfig(&cfg)
	}

	// Try YAML
	var yamlData map[string]interface{}
	if err := yaml.Unmarshal(data, &yamlData); err == nil {
		// Convert YAML data to JSON, then unmarshal
		jsonData, err := json.Marshal(yamlData)
		if err == nil {
			if err := json.Unmarshal(jsonData, &cfg); err == nil {
				return m.validateConfig(&cfg)
			}
		}
	}

	return nil, fmt.Errorf("failed to parse config as JSON or YAML")
}

// ValidateConfig validates a configuration
func (m *Manager) ValidateConfig(cfg *types.AcrodefsConfig) error {
	if cfg.Version != "" && cfg.Version != "1.0" {
		return fmt.Errorf("unsupported config version: %s", cfg.Version)
	}

	if cfg.LogLevel != "" {
		switch cfg.LogLevel {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
		}
	}

	return nil
}

// ApplyDefaults fills unset fields with the contractual defaults
func (m *Manager) ApplyDefaults(cfg *types.AcrodefsConfig) {
	if cfg.ListFile == "" {
		cfg.ListFile = DefaultListFile
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	if cfg.StripPrefix == "" {
		cfg.StripPrefix = writer.StripPrefix
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// GetDefaultConfig returns the default configuration
func (m *Manager) GetDefaultConfig() *types.AcrodefsConfig {
	cfg := &types.AcrodefsConfig{Version: "1.0"}
	m.ApplyDefaults(cfg)
	return cfg
}

// Private methods

func (m *Manager) validateConfig(cfg *types.AcrodefsConfig) (*types.AcrodefsConfig, error) {
	if err := m.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	m.ApplyDefaults(cfg)
	return cfg, nil
}
