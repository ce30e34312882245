package game

import (
	"log"

	"chosenoffset.com/kaiju/internal/render"
)

// Game holds the session plus what it is drawn with. Input is read by the
// Manager and handed to Tick.
type Game struct {
	Session  *Session
	Renderer render.Renderer

	// Sprite is the creature image. When nil the creature is drawn as a box
	// and explosions produce no fragment tiles on screen.
	Sprite render.Image

	// Overlay draws on top of the playfield (score, hits, roar banner).
	Overlay Overlay
}

// Tick applies one tick's input and advances the session.
func (g *Game) Tick(it Intent) error {
	if it.Reset {
		log.Printf("Reset requested")
		g.Session.Reset()
	}
	if it.FireAt {
		g.Session.Fire(it.Target)
	}
	if it.FireAtActor {
		g.Session.FireAtActor()
	}

	g.Session.Step()
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if float64(outsideWidth) != g.Session.Width || float64(outsideHeight) != g.Session.Height {
		g.Session.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
