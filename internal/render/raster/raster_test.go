package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/kaiju/internal/render"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func TestFillCircle(t *testing.T) {
	r := NewRenderer()
	img := NewImage(20, 20)
	img.Fill(black)

	r.FillCircle(img, 10, 10, 4, red)

	if got := img.At(10, 10); got != red {
		t.Errorf("Expected centre red, got %v", got)
	}
	if got := img.At(0, 0); got != black {
		t.Errorf("Expected corner untouched, got %v", got)
	}
	if got := img.At(10, 16); got != black {
		t.Errorf("Expected pixel outside radius untouched, got %v", got)
	}
}

func TestFillCircleClipsAtEdge(t *testing.T) {
	r := NewRenderer()
	img := NewImage(10, 10)

	// Must not panic when the circle hangs off the image.
	r.FillCircle(img, -2, -2, 5, red)

	if got := img.At(0, 0); got != red {
		t.Errorf("Expected clipped circle to cover the corner, got %v", got)
	}
}

func TestStrokeLine(t *testing.T) {
	r := NewRenderer()
	img := NewImage(30, 30)

	r.StrokeLine(img, 5, 15, 25, 15, 3, red)

	if got := img.At(15, 15); got != red {
		t.Errorf("Expected line pixel red, got %v", got)
	}
	if got := img.At(15, 20); got.A != 0 {
		t.Errorf("Expected pixel off the line transparent, got %v", got)
	}
}

func TestDrawImageTranslateAndAlpha(t *testing.T) {
	src := NewImage(4, 4)
	src.Fill(red)

	dst := NewImage(20, 20)
	dst.Fill(black)

	op := render.NewDrawImageOptions()
	op.GeoM.Translate(10, 10)
	op.Alpha = 0.5
	dst.DrawImage(src, op)

	got := dst.At(11, 11)
	if got.R < 120 || got.R > 135 || got.A != 255 {
		t.Errorf("Expected half-blended red, got %v", got)
	}
	if got := dst.At(9, 9); got != black {
		t.Errorf("Expected pixel before the translated image untouched, got %v", got)
	}
}

func TestDrawSubImageStartsAtOrigin(t *testing.T) {
	src := NewImage(10, 10)
	src.Fill(black)
	r := NewRenderer()
	r.FillRect(src, 5, 5, 5, 5, red)

	tile := src.SubImage(image.Rect(5, 5, 10, 10))
	if w, h := tile.Size(); w != 5 || h != 5 {
		t.Fatalf("Expected 5x5 tile, got %dx%d", w, h)
	}

	dst := NewImage(10, 10)
	dst.DrawImage(tile, nil)

	if got := dst.At(0, 0); got != red {
		t.Errorf("Expected tile drawn at origin, got %v", got)
	}
	if got := dst.At(6, 6); got.A != 0 {
		t.Errorf("Expected nothing past the tile, got %v", got)
	}
}

func TestSubImageClipsToBounds(t *testing.T) {
	img := NewImage(10, 10)
	sub := img.SubImage(image.Rect(8, 8, 20, 20))

	if w, h := sub.Size(); w != 2 || h != 2 {
		t.Errorf("Expected 2x2 clipped sub-image, got %dx%d", w, h)
	}
	empty := img.SubImage(image.Rect(50, 50, 60, 60))
	dst := NewImage(4, 4)
	dst.DrawImage(empty, nil)
}

func TestDrawImageGlow(t *testing.T) {
	src := NewImage(4, 4)
	src.Fill(red)

	dst := NewImage(20, 20)
	dst.Fill(black)

	op := render.NewDrawImageOptions()
	op.GeoM.Translate(8, 8)
	op.Glow = true
	dst.DrawImage(src, op)

	halo := dst.At(13, 9)
	if halo == black {
		t.Error("Expected halo pixel beside the image to be lit")
	}
	if got := dst.At(9, 9); got != red {
		t.Errorf("Expected image pixel red, got %v", got)
	}
}

func TestDrawText(t *testing.T) {
	r := NewRenderer()
	w, h := r.MeasureText("SCORE", 2)
	if w != 2*5*7 || h != 2*13 {
		t.Errorf("Expected 70x26, got %dx%d", w, h)
	}

	img := NewImage(100, 40)
	r.DrawText(img, "SCORE", 2, 2, color.White, 2)

	lit := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.At(x, y).A > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("Expected text pixels to be drawn")
	}
}

func TestLoaderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprite.png")
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, red)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, err := NewLoader().LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if w, h := img.Size(); w != 3 || h != 2 {
		t.Errorf("Expected 3x2, got %dx%d", w, h)
	}
	if got := img.(*Image).At(1, 1); got != red {
		t.Errorf("Expected red pixel, got %v", got)
	}

	if _, err := NewLoader().LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}
