package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	manager, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file was not written: %v", err)
	}
	cfg := manager.Get()
	if cfg.Catalog.Timezone != "UTC" || cfg.Logger.Level != "info" || !cfg.Metrics.Enabled {
		t.Errorf("unexpected defaults: %+v", cfg)
	}

	// the written file loads back to the same values
	again, err := Load(path)
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if *again.Get() != *cfg {
		t.Errorf("reloaded config = %+v, want %+v", again.Get(), cfg)
	}
}

func TestLoad_ReadsFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
logger:
  level: debug
  format: json
catalog:
  timezone: Europe/Madrid
  max_albums: 10
`)
	manager, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg := manager.Get()
	if cfg.Logger.Level != "debug" || cfg.Logger.Format != "json" {
		t.Errorf("logger = %+v", cfg.Logger)
	}
	if cfg.Catalog.MaxAlbums != 10 {
		t.Errorf("MaxAlbums = %d, want 10", cfg.Catalog.MaxAlbums)
	}
	// keys missing from the file keep their default
	if cfg.Metrics.Namespace != "pressing" {
		t.Errorf("Namespace = %q, want default", cfg.Metrics.Namespace)
	}
	if manager.Location().String() != "Europe/Madrid" {
		t.Errorf("Location() = %s, want Europe/Madrid", manager.Location())
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown timezone", "catalog:\n  timezone: Mars/Olympus\n"},
		{"empty timezone", "catalog:\n  timezone: \"\"\n"},
		{"negative max albums", "catalog:\n  max_albums: -1\n"},
		{"unknown level", "logger:\n  level: trace\n"},
		{"unknown format", "logger:\n  format: xml\n"},
		{"bad namespace", "metrics:\n  namespace: My-App\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), "config validation failed") {
				t.Errorf("Load() error = %v, want a validation error", err)
			}
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "logger: [unclosed\n")); err == nil {
		t.Error("expected a decode error")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PRESSING_LOG_LEVEL", "warn")
	t.Setenv("PRESSING_TIMEZONE", "America/New_York")

	manager, err := Load(writeConfig(t, "logger:\n  level: debug\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if manager.Get().Logger.Level != "warn" {
		t.Errorf("Level = %q, want warn", manager.Get().Logger.Level)
	}
	if manager.Get().Catalog.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q, want America/New_York", manager.Get().Catalog.Timezone)
	}
}

func TestManager_Update(t *testing.T) {
	manager := NewManager(Default())

	bad := Default()
	bad.Catalog.Timezone = "Nowhere/Land"
	if err := manager.Update(bad); err == nil {
		t.Fatal("Update() should reject an invalid configuration")
	}
	if manager.Get().Catalog.Timezone != "UTC" {
		t.Errorf("rejected update changed the timezone to %q", manager.Get().Catalog.Timezone)
	}

	good := Default()
	good.Catalog.MaxAlbums = 3
	if err := manager.Update(good); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if manager.Get().Catalog.MaxAlbums != 3 {
		t.Errorf("MaxAlbums = %d, want 3", manager.Get().Catalog.MaxAlbums)
	}
}

func TestManager_SaveAndYAML(t *testing.T) {
	cfg := Default()
	cfg.Catalog.Timezone = "Asia/Tokyo"
	manager := NewManager(cfg)

	if !strings.Contains(manager.GetYAML(), "timezone: Asia/Tokyo") {
		t.Errorf("GetYAML() = %q", manager.GetYAML())
	}

	path := filepath.Join(t.TempDir(), "saved.yaml")
	if err := manager.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Location().String() != "Asia/Tokyo" {
		t.Errorf("Location() = %s, want Asia/Tokyo", loaded.Location())
	}
}

func TestManager_LocationFallback(t *testing.T) {
	cfg := Default()
	cfg.Catalog.Timezone = "Not/AZone"
	manager := NewManager(cfg)
	if manager.Location() != time.UTC {
		t.Errorf("Location() = %s, want UTC", manager.Location())
	}
}
