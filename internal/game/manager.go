package game

import (
	"image/color"
	"log"

	"chosenoffset.com/kaiju/internal/render"
)

// Manager handles the overall game state, including pause and quit.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        State
	Game         *Game
	Renderer     render.Renderer
	InputMgr     render.InputManager
}

// NewManager creates a new game manager around a fresh session.
func NewManager(r render.Renderer, input render.InputManager, width, height int, opts ...Option) *Manager {
	session := NewSession(float64(width), float64(height), opts...)
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		State:        StatePlaying,
		Renderer:     r,
		InputMgr:     input,
		Game: &Game{
			Session:  session,
			Renderer: r,
		},
	}
}

// SetSprite sets the creature image.
func (m *Manager) SetSprite(img render.Image) {
	m.Game.Sprite = img
}

// SetOverlay sets what is drawn over the playfield.
func (m *Manager) SetOverlay(o Overlay) {
	m.Game.Overlay = o
}

// Update updates the game state.
func (m *Manager) Update() error {
	it := ReadInput(m.InputMgr)
	if it.Quit {
		log.Printf("Quit requested")
		return render.ErrTerminate
	}

	if it.Pause {
		if m.State == StatePaused {
			m.State = StatePlaying
		} else {
			m.State = StatePaused
		}
		log.Printf("Paused: %v", m.State == StatePaused)
	}

	switch m.State {
	case StatePaused:
		// Reset still works while paused; nothing else moves.
		if it.Reset {
			m.Game.Session.Reset()
		}
	case StatePlaying:
		return m.Game.Tick(it)
	}
	return nil
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	m.Game.Draw(screen)
	if m.State == StatePaused {
		m.drawPaused(screen)
	}
}

func (m *Manager) drawPaused(screen render.Image) {
	const msg = "PAUSED (P to resume)"
	const scale = 2.0
	w, h := m.Renderer.MeasureText(msg, scale)
	x := (m.ScreenWidth - w) / 2
	y := (m.ScreenHeight - h) / 2
	m.Renderer.DrawText(screen, msg, x, y, color.RGBA{255, 255, 255, 255}, scale)
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		m.Game.Layout(outsideWidth, outsideHeight)
		log.Printf("Resized to %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
