package entity

import (
	"image"
	"math"
	"math/rand"

	"chosenoffset.com/kaiju/internal/core/vec"
	"chosenoffset.com/kaiju/internal/render"
)

const (
	FragmentLife   = 60
	FragmentTile   = 50
	FragmentSpread = 20.0
)

// Fragment is a 50x50 tile of the creature sprite flying apart after an
// explosion. Src is the tile rectangle in actor space.
type Fragment struct {
	Pos  vec.Vec2
	Vel  vec.Vec2
	Life int
	Src  image.Rectangle
}

// NewFragment creates a fragment for the tile at (srcX, srcY) in actor space.
func NewFragment(rng *rand.Rand, pos vec.Vec2, srcX, srcY int) *Fragment {
	return &Fragment{
		Pos: pos,
		Vel: vec.Vec2{
			X: (rng.Float64() - 0.5) * FragmentSpread,
			Y: (rng.Float64() - 0.5) * FragmentSpread,
		},
		Life: FragmentLife,
		Src:  image.Rect(srcX, srcY, srcX+FragmentTile, srcY+FragmentTile),
	}
}

// Shatter splits an actor-sized box into a grid of tiles. Tiles start at
// every multiple of FragmentTile below the size, so the last row and column
// overflow the box when the size is not a multiple of the tile.
func Shatter(rng *rand.Rand, origin vec.Vec2, width, height float64) []*Fragment {
	var frags []*Fragment
	for i := 0; float64(i) < width; i += FragmentTile {
		for j := 0; float64(j) < height; j += FragmentTile {
			pos := origin.Add(vec.Vec2{X: float64(i), Y: float64(j)})
			frags = append(frags, NewFragment(rng, pos, i, j))
		}
	}
	return frags
}

// Update integrates one frame without damping and reports whether the
// fragment is alive.
func (f *Fragment) Update() bool {
	f.Pos = f.Pos.Add(f.Vel)
	f.Life--
	return f.Life > 0
}

// Alpha is the remaining life fraction.
func (f *Fragment) Alpha() float64 {
	return float64(f.Life) / FragmentLife
}

func (f *Fragment) Draw(dc DrawContext) {
	if dc.Sprite == nil {
		return
	}

	sx, sy := dc.scale()
	src := image.Rect(
		int(math.Floor(float64(f.Src.Min.X)*sx)),
		int(math.Floor(float64(f.Src.Min.Y)*sy)),
		int(math.Ceil(float64(f.Src.Max.X)*sx)),
		int(math.Ceil(float64(f.Src.Max.Y)*sy)),
	)
	tile := dc.Sprite.SubImage(src)
	tw, th := tile.Size()
	if tw == 0 || th == 0 {
		return
	}

	// The clipped edge tiles keep their actor-space scale.
	op := render.NewDrawImageOptions()
	op.GeoM.Scale(1/sx, 1/sy)
	op.GeoM.Translate(f.Pos.X, f.Pos.Y)
	op.Alpha = f.Alpha()
	dc.Screen.DrawImage(tile, op)
}
