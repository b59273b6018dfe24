package config

import (
	"log/slog"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Manager holds the application configuration and provides thread-safe access to it.
type Manager struct {
	mu     sync.RWMutex
	config *Config
}

// NewManager creates a new Manager.
func NewManager(config *Config) *Manager {
	return &Manager{config: config}
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Update validates and swaps in a new configuration.
func (m *Manager) Update(config *Config) error {
	if err := Validate(config); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	oldConfig := m.config
	m.config = config

	if oldConfig != nil {
		slog.Debug("Configuration updated",
			"log_level_changed", oldConfig.Logger.Level != config.Logger.Level,
			"timezone_changed", oldConfig.Catalog.Timezone != config.Catalog.Timezone,
			"max_albums_changed", oldConfig.Catalog.MaxAlbums != config.Catalog.MaxAlbums,
			"metrics_enabled_changed", oldConfig.Metrics.Enabled != config.Metrics.Enabled,
		)
	}
	return nil
}

// Save writes the current configuration to the specified file path.
func (m *Manager) Save(path string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := saveConfig(path, m.config); err != nil {
		slog.Error("failed to save config", "path", path, "error", err)
		return err
	}
	return nil
}

// Location returns the catalog timezone, falling back to UTC when it cannot
// be loaded.
func (m *Manager) Location() *time.Location {
	tz := m.Get().Catalog.Timezone
	loc, err := time.LoadLocation(tz)
	if err != nil {
		slog.Warn("Invalid catalog timezone, using UTC", "timezone", tz, "error", err)
		return time.UTC
	}
	return loc
}

// GetYAML returns the current configuration as a YAML string.
func (m *Manager) GetYAML() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	yamlBytes, err := yaml.Marshal(m.config)
	if err != nil {
		slog.Error("failed to marshal config to YAML", "error", err)
		return err.Error()
	}
	return string(yamlBytes)
}
