// Package config provides the startup settings for the game: window, assets,
// audio and HUD. Gameplay rules are fixed and not part of the config.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultPath is used when KAIJU_CONFIG is unset.
const DefaultPath = "kaiju.json"

// Config holds all startup settings
type Config struct {
	Window   WindowConfig   `json:"window"`
	Assets   AssetsConfig   `json:"assets"`
	Audio    AudioConfig    `json:"audio"`
	HUD      HUDConfig      `json:"hud"`
	Terminal TerminalConfig `json:"terminal"`
}

// WindowConfig defines the desktop window
type WindowConfig struct {
	Width     int    `json:"width"`     // Initial width in pixels
	Height    int    `json:"height"`    // Initial height in pixels
	Title     string `json:"title"`     // Window title
	Resizable bool   `json:"resizable"` // Allow resizing (re-centres the creature)
}

// AssetsConfig names the asset directory and the files inside it
type AssetsConfig struct {
	Directory string `json:"directory"` // Searched for the files below
	Sprite    string `json:"sprite"`    // Creature image (PNG)
	Fire      string `json:"fire"`      // Launch sound (WAV)
	Hit       string `json:"hit"`       // Hit sound (WAV)
	Explosion string `json:"explosion"` // Explosion sound (WAV)
}

// AudioConfig defines the speaker setup
type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	Volume     float64 `json:"volume"`      // 0 (silent) to 1 (full)
	SampleRate int     `json:"sample_rate"` // Speaker sample rate in Hz
}

// HUDConfig defines the overlay panel
type HUDConfig struct {
	Position string  `json:"position"` // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity  float64 `json:"opacity"`  // Background opacity (0-1)
}

// TerminalConfig defines the logical pixel size of one terminal cell
type TerminalConfig struct {
	CellWidth  int `json:"cell_width"`
	CellHeight int `json:"cell_height"`
}

// DefaultConfig returns the settings used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Kaiju",
			Resizable: true,
		},
		Assets: AssetsConfig{
			Directory: "assets",
			Sprite:    "kaiju.png",
			Fire:      "fire.wav",
			Hit:       "hit.wav",
			Explosion: "explosion.wav",
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.8,
			SampleRate: 44100,
		},
		HUD: HUDConfig{
			Position: "top-left",
			Opacity:  0.7,
		},
		Terminal: TerminalConfig{
			CellWidth:  12,
			CellHeight: 24,
		},
	}
}

// LoadConfig loads the config from a JSON file. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks that the settings are usable
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be in [0, 1], got %g", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.HUD.Opacity < 0 || c.HUD.Opacity > 1 {
		return fmt.Errorf("hud opacity must be in [0, 1], got %g", c.HUD.Opacity)
	}
	return nil
}
