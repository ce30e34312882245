package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Expected defaults, got error: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("Expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Assets.Sprite != "kaiju.png" {
		t.Errorf("Expected sprite 'kaiju.png', got '%s'", cfg.Assets.Sprite)
	}
}

func TestLoadConfigMergesWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kaiju.json")
	jsonData := `{
		"window": {"width": 1024, "height": 768, "title": "Test", "resizable": false},
		"audio": {"enabled": false, "volume": 0.25, "sample_rate": 22050}
	}`
	if err := os.WriteFile(path, []byte(jsonData), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Title != "Test" || cfg.Window.Resizable {
		t.Errorf("Expected window from file, got %+v", cfg.Window)
	}
	if cfg.Audio.Enabled || cfg.Audio.Volume != 0.25 || cfg.Audio.SampleRate != 22050 {
		t.Errorf("Expected audio from file, got %+v", cfg.Audio)
	}
	if cfg.Assets.Directory != "assets" {
		t.Errorf("Expected default assets directory, got '%s'", cfg.Assets.Directory)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{"window": `},
		{"zero width", `{"window": {"width": 0}}`},
		{"loud", `{"audio": {"volume": 3}}`},
		{"opacity", `{"hud": {"opacity": -1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	if err := os.WriteFile(path, []byte(`{"window": {"title": "Custom"}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvAssetsDir, "/tmp/kaiju-assets")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "Custom" {
		t.Errorf("Expected title 'Custom', got '%s'", cfg.Window.Title)
	}
	if cfg.Assets.Directory != "/tmp/kaiju-assets" {
		t.Errorf("Expected assets override, got '%s'", cfg.Assets.Directory)
	}
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("KAIJU_TEST_UNSET_CHECK", "x")
	if got := GetEnv("KAIJU_TEST_UNSET_CHECK", "y"); got != "x" {
		t.Errorf("Expected 'x', got '%s'", got)
	}
	if got := GetEnv("KAIJU_TEST_DEFINITELY_MISSING", "y"); got != "y" {
		t.Errorf("Expected fallback 'y', got '%s'", got)
	}
}
