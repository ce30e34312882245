// Package hud draws the score, hit counter and roar banner over the playfield.
package hud

import (
	"fmt"
	"image/color"
	"time"

	"chosenoffset.com/kaiju/internal/render"
)

// Config defines how the HUD is laid out
type Config struct {
	Position     string        `json:"position"`      // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity      float64       `json:"opacity"`       // Background opacity (0-1)
	HitThreshold int           `json:"hit_threshold"` // Shown as the hits denominator, 0 hides it
	RoarDuration time.Duration `json:"-"`
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *Config {
	return &Config{
		Position:     "top-left",
		Opacity:      0.7,
		RoarDuration: 500 * time.Millisecond,
	}
}

var (
	textColor = color.RGBA{255, 255, 200, 255}
	roarColor = color.RGBA{0xe7, 0x4c, 0x3c, 255}
)

const (
	panelWidth  = 170
	panelHeight = 48
	padding     = 10
	roarScale   = 4.0
)

// HUD holds the values pushed by the game and draws them each frame.
type HUD struct {
	config       *Config
	screenWidth  int
	screenHeight int

	score int
	hits  int

	roar      string
	roarUntil time.Time

	now func() time.Time
}

// New creates a new HUD with the given configuration
func New(config *Config, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		now:          time.Now,
	}
}

// SetClock replaces the wall clock, for tests.
func (h *HUD) SetClock(now func() time.Time) {
	h.now = now
}

// SetScore updates the displayed score.
func (h *HUD) SetScore(score int) {
	h.score = score
}

// SetHits updates the displayed hit count.
func (h *HUD) SetHits(hits int) {
	h.hits = hits
}

// Roar shows text on the banner. A roar during an earlier one replaces it
// and restarts the timer.
func (h *HUD) Roar(text string) {
	h.roar = text
	h.roarUntil = h.now().Add(h.config.RoarDuration)
}

// RoarVisible reports whether the banner is showing and its text.
func (h *HUD) RoarVisible() (string, bool) {
	if h.roar == "" || !h.now().Before(h.roarUntil) {
		return "", false
	}
	return h.roar, true
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Lines returns the counter text as drawn.
func (h *HUD) Lines() []string {
	hits := fmt.Sprintf("HITS:  %d", h.hits)
	if h.config.HitThreshold > 0 {
		hits = fmt.Sprintf("HITS:  %d/%d", h.hits, h.config.HitThreshold)
	}
	return []string{fmt.Sprintf("SCORE: %d", h.score), hits}
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(r render.Renderer, screen render.Image) {
	w, ht := screen.Size()
	if w != h.screenWidth || ht != h.screenHeight {
		h.SetScreenSize(w, ht)
	}

	x, y := h.calculatePosition()
	alpha := uint8(h.config.Opacity * 255)
	r.FillRect(screen, float32(x), float32(y), panelWidth, panelHeight, premultiply(color.RGBA{20, 20, 30, 255}, alpha))

	currentY := y + 8
	for _, line := range h.Lines() {
		r.DrawText(screen, line, x+8, currentY, textColor, 1.0)
		currentY += 16
	}

	if text, ok := h.RoarVisible(); ok {
		tw, _ := r.MeasureText(text, roarScale)
		r.DrawText(screen, text, (h.screenWidth-tw)/2, h.screenHeight/6, roarColor, roarScale)
	}
}

// calculatePosition returns the top-left corner of the panel
func (h *HUD) calculatePosition() (int, int) {
	switch h.config.Position {
	case "top-right":
		return h.screenWidth - panelWidth - padding, padding
	case "bottom-left":
		return padding, h.screenHeight - panelHeight - padding
	case "bottom-right":
		return h.screenWidth - panelWidth - padding, h.screenHeight - panelHeight - padding
	default: // "top-left"
		return padding, padding
	}
}

func premultiply(c color.RGBA, alpha uint8) color.RGBA {
	a := uint16(alpha)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: alpha,
	}
}
