// Package placeholders generates stand-in art and sounds so the game can
// run without an assets directory.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"chosenoffset.com/kaiju/internal/audio"
	"chosenoffset.com/kaiju/internal/config"
)

// Sprite dimensions, matching the creature's hit box
const (
	SpriteWidth  = 743
	SpriteHeight = 369
)

// ColorPalette defines the creature's colours
var ColorPalette = struct {
	Body  color.RGBA
	Belly color.RGBA
	Spine color.RGBA
	Eye   color.RGBA
}{
	Body:  color.RGBA{46, 139, 87, 255},  // Sea green
	Belly: Darken(color.RGBA{46, 139, 87, 255}, 0.7),
	Spine: Lighten(color.RGBA{46, 139, 87, 255}, 0.6),
	Eye:   color.RGBA{241, 196, 15, 255}, // Amber
}

type point struct{ x, y float32 }

// Side view, facing right
var (
	bodyOutline = []point{
		{30, 310}, {170, 262}, {260, 205}, {330, 158}, {430, 124}, {515, 112},
		{555, 62}, {640, 48}, {712, 78}, {714, 108}, {650, 124}, {596, 140},
		{588, 205}, {566, 282}, {548, 345}, {500, 345}, {482, 296}, {384, 304},
		{374, 348}, {322, 348}, {302, 304}, {200, 294},
	}
	bellyOutline = []point{
		{300, 290}, {400, 240}, {500, 190}, {585, 190}, {566, 280}, {482, 294},
	}
	armOutline = []point{
		{565, 180}, {628, 186}, {640, 204}, {622, 200}, {560, 204},
	}
	spineStart = point{250, 210}
	spineEnd   = point{525, 110}
	eyeCenter  = point{652, 76}
)

const (
	spineCount  = 7
	spineHeight = 46
	spineBase   = 34
	eyeRadius   = 9
)

// GenerateSprite draws the creature on a transparent background
func GenerateSprite() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SpriteWidth, SpriteHeight))

	// Spines first so the body overlaps their bases
	dx := (spineEnd.x - spineStart.x) / float32(spineCount-1)
	dy := (spineEnd.y - spineStart.y) / float32(spineCount-1)
	for i := 0; i < spineCount; i++ {
		bx := spineStart.x + dx*float32(i)
		by := spineStart.y + dy*float32(i)
		fillPolygon(img, []point{
			{bx - spineBase/2, by + 8},
			{bx - 4, by - spineHeight},
			{bx + spineBase/2, by + 8},
		}, ColorPalette.Spine)
	}

	fillPolygon(img, bodyOutline, ColorPalette.Body)
	fillPolygon(img, bellyOutline, ColorPalette.Belly)
	fillPolygon(img, armOutline, ColorPalette.Body)
	fillPolygon(img, circlePoints(eyeCenter, eyeRadius, 16), ColorPalette.Eye)

	return img
}

// fillPolygon rasterizes a closed polygon over img with anti-aliasing
func fillPolygon(img *image.RGBA, pts []point, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		z.LineTo(p.x, p.y)
	}
	z.ClosePath()
	z.Draw(img, b, image.NewUniform(col), image.Point{})
}

func circlePoints(c point, r float32, segments int) []point {
	pts := make([]point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = point{c.x + r*float32(math.Cos(a)), c.y + r*float32(math.Sin(a))}
	}
	return pts
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// GenerateSounds writes the synthesized clips as WAV files into dir
func GenerateSounds(dir string, names config.AssetsConfig, sampleRate int) error {
	rate := beep.SampleRate(sampleRate)
	clips := []struct {
		name     string
		streamer beep.Streamer
	}{
		{names.Fire, audio.FireSound(rate)},
		{names.Hit, audio.HitSound(rate)},
		{names.Explosion, audio.ExplosionSound(rate)},
	}

	for _, clip := range clips {
		path := filepath.Join(dir, clip.name)
		if err := audio.WriteWAV(path, clip.streamer, rate); err != nil {
			return fmt.Errorf("failed to save %s: %w", clip.name, err)
		}
		fmt.Printf("✓ Generated %s\n", path)
	}
	return nil
}

// GenerateAndSave writes the sprite and sounds into the configured assets
// directory, creating it if needed.
func GenerateAndSave(cfg *config.Config) error {
	fmt.Println("Generating placeholder assets...")

	assetsDir := cfg.Assets.Directory

	// Ensure assets directory exists
	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		return fmt.Errorf("failed to create assets directory: %w", err)
	}

	spritePath := filepath.Join(assetsDir, cfg.Assets.Sprite)
	if err := SavePNG(GenerateSprite(), spritePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", cfg.Assets.Sprite, err)
	}
	fmt.Printf("✓ Generated %s (%dx%d pixels)\n", spritePath, SpriteWidth, SpriteHeight)

	if err := GenerateSounds(assetsDir, cfg.Assets, cfg.Audio.SampleRate); err != nil {
		return err
	}

	fmt.Println("Placeholder assets generated successfully!")
	return nil
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
