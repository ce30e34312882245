// Package entity holds the moving things on the kaiju screen: the creature,
// the projectiles fired at it and the short-lived visual effects.
package entity

import (
	"image/color"

	"chosenoffset.com/kaiju/internal/render"
	"github.com/lucasb-eyer/go-colorful"
)

// Effect is a short-lived visual element (hit spark, explosion debris).
// Update advances one frame and reports whether the effect is still alive.
type Effect interface {
	Update() bool
	Draw(dc DrawContext)
}

// DrawContext carries what an entity needs to paint itself.
type DrawContext struct {
	Renderer render.Renderer
	Screen   render.Image

	// Sprite is the creature image, nil when none is loaded.
	Sprite render.Image

	// ScaleX and ScaleY map actor-space units to sprite pixels.
	ScaleX, ScaleY float64
}

func (dc DrawContext) scale() (float64, float64) {
	sx, sy := dc.ScaleX, dc.ScaleY
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	return sx, sy
}

// SpriteScale returns the actor-to-sprite scale for a sprite of the given
// pixel size drawn over an actor of the given size.
func SpriteScale(sprite render.Image, actorW, actorH float64) (float64, float64) {
	if sprite == nil || actorW <= 0 || actorH <= 0 {
		return 1, 1
	}
	w, h := sprite.Size()
	return float64(w) / actorW, float64(h) / actorH
}

// hslColor converts hue in degrees with full saturation and half lightness.
func hslColor(hue float64) color.RGBA {
	r, g, b := colorful.Hsl(hue, 1, 0.5).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// withAlpha returns c premultiplied by alpha in [0, 1].
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
