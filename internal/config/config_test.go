package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Expected default quit key 'q', got %q", cfg.KeyMappings.Quit)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("Expected default accent color to be set")
	}
	if cfg.Database.Path != "" {
		t.Errorf("Expected empty database path, got %q", cfg.Database.Path)
	}
}

func TestLoadParsesFileAndFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "trains")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	content := []byte("database:\n  path: /tmp/custom.db\nkey_mappings:\n  quit: x\n")
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), content, 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("Expected configured db path, got %q", cfg.Database.Path)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Expected configured quit key 'x', got %q", cfg.KeyMappings.Quit)
	}
	// Unset keys fall back to defaults
	if cfg.KeyMappings.ScrollDown != "j" {
		t.Errorf("Expected default scroll_down 'j', got %q", cfg.KeyMappings.ScrollDown)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("Expected accent color default to be applied")
	}
}

func TestResolveDBPathPrecedence(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Path: "/from/config.db"}}

	tests := []struct {
		name string
		flag string
		env  string
		want string
	}{
		{"flag wins", "/from/flag.db", "/from/env.db", "/from/flag.db"},
		{"env beats config", "", "/from/env.db", "/from/env.db"},
		{"config beats default", "", "", "/from/config.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TRAINS_DB", tt.env)
			if got := cfg.ResolveDBPath(tt.flag); got != tt.want {
				t.Errorf("ResolveDBPath(%q) = %q, want %q", tt.flag, got, tt.want)
			}
		})
	}
}

func TestResolveDBPathDefault(t *testing.T) {
	t.Setenv("TRAINS_DB", "")
	cfg := &Config{}
	if got := cfg.ResolveDBPath(""); got != DefaultDBFile {
		t.Errorf("Expected %q, got %q", DefaultDBFile, got)
	}
}

func TestColorSchemePreset(t *testing.T) {
	scheme := ColorScheme{Preset: "monochrome"}
	scheme.ApplyDefaults()
	if scheme.Accent != "#FFFFFF" {
		t.Errorf("Expected monochrome accent, got %q", scheme.Accent)
	}

	// Custom values survive preset application
	custom := ColorScheme{Preset: "monochrome", Accent: "#123456"}
	custom.ApplyDefaults()
	if custom.Accent != "#123456" {
		t.Errorf("Expected custom accent to win, got %q", custom.Accent)
	}
}
