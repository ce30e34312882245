package game

import (
	"image/color"

	"chosenoffset.com/kaiju/internal/entity"
	"chosenoffset.com/kaiju/internal/render"
)

var (
	backgroundColor = color.RGBA{20, 20, 40, 255}
	reticleColor    = color.RGBA{0xf3, 0x9c, 0x12, 0xff}
)

const (
	reticleHalf  = 10
	reticleWidth = 3
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	dc := g.drawContext(screen)

	// The creature is hidden while it explodes
	if g.Session.Sequencer.Active() {
		g.Session.Actor.Draw(dc)
	}
	g.drawProjectiles(dc)
	g.drawEffects(dc)
	g.drawReticle(screen)

	if g.Overlay != nil {
		g.Overlay.Draw(g.Renderer, screen)
	}
}

func (g *Game) drawContext(screen render.Image) entity.DrawContext {
	sx, sy := entity.SpriteScale(g.Sprite, g.Session.Actor.Width, g.Session.Actor.Height)
	return entity.DrawContext{
		Renderer: g.Renderer,
		Screen:   screen,
		Sprite:   g.Sprite,
		ScaleX:   sx,
		ScaleY:   sy,
	}
}

func (g *Game) drawProjectiles(dc entity.DrawContext) {
	for _, p := range g.Session.Projectiles {
		p.Draw(dc)
	}
}

func (g *Game) drawEffects(dc entity.DrawContext) {
	for _, e := range g.Session.Effects {
		e.Draw(dc)
	}
}

// drawReticle draws the cross at the launch point.
func (g *Game) drawReticle(screen render.Image) {
	lp := g.Session.LaunchPoint()
	x, y := float32(lp.X), float32(lp.Y)
	g.Renderer.StrokeLine(screen, x-reticleHalf, y, x+reticleHalf, y, reticleWidth, reticleColor)
	g.Renderer.StrokeLine(screen, x, y-reticleHalf, x, y+reticleHalf, reticleWidth, reticleColor)
}
