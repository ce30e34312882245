// Package raster is a software implementation of the render interfaces on
// top of image.RGBA. It backs the terminal frontend and headless tests.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"chosenoffset.com/kaiju/internal/render"
)

// glowColor is a premultiplied translucent white, scaled by the draw alpha.
var glowColor = color.RGBA{90, 90, 90, 90}

var glowOffsets = []image.Point{
	{-4, 0}, {4, 0}, {0, -4}, {0, 4},
	{-3, -3}, {3, -3}, {-3, 3}, {3, 3},
}

// Renderer implements render.Renderer with pure Go rasterization.
type Renderer struct {
	face font.Face
}

// NewRenderer creates a software renderer using the 7x13 bitmap font.
func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

// NewImage creates a transparent image.
func (r *Renderer) NewImage(width, height int) render.Image {
	return NewImage(width, height)
}

// FillCircle draws a filled circle centred at (x, y).
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	if radius <= 0 {
		return
	}
	mask := &circle{cx: float64(x), cy: float64(y), r: float64(radius)}
	target(dst).fill(mask.Bounds(), clr, mask)
}

// FillRect draws an axis-aligned filled rectangle.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	rect := image.Rect(
		int(math.Round(float64(x))),
		int(math.Round(float64(y))),
		int(math.Round(float64(x+width))),
		int(math.Round(float64(y+height))),
	)
	target(dst).fill(rect, clr, nil)
}

// StrokeLine draws a segment with round caps.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	if strokeWidth <= 0 {
		return
	}
	mask := &segment{
		x0:   float64(x0),
		y0:   float64(y0),
		x1:   float64(x1),
		y1:   float64(y1),
		half: float64(strokeWidth) / 2,
	}
	target(dst).fill(mask.Bounds(), clr, mask)
}

// DrawText draws str with its top-left corner at (x, y).
func (r *Renderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	if str == "" {
		return
	}
	if scale <= 0 {
		scale = 1
	}

	w, h := r.MeasureText(str, 1)
	text := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  text,
		Src:  image.NewUniform(clr),
		Face: r.face,
		Dot:  fixed.P(0, r.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(str)

	op := render.NewDrawImageOptions()
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(wrap(text), op)
}

// MeasureText returns the pixel size of str at the given scale.
func (r *Renderer) MeasureText(str string, scale float64) (width, height int) {
	if scale <= 0 {
		scale = 1
	}
	adv := font.MeasureString(r.face, str).Ceil()
	m := r.face.Metrics()
	lineH := (m.Ascent + m.Descent).Ceil()
	return int(math.Ceil(float64(adv) * scale)), int(math.Ceil(float64(lineH) * scale))
}

// Image is a render.Image backed by an *image.RGBA. Sub-images share pixels
// with their parent and keep its coordinate space.
type Image struct {
	rgba *image.RGBA
	rect image.Rectangle
}

// NewImage creates a transparent width x height image.
func NewImage(width, height int) *Image {
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Image{rgba: rgba, rect: rgba.Bounds()}
}

// FromImage copies any image into a new raster image at the origin.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	return wrap(rgba)
}

func wrap(rgba *image.RGBA) *Image {
	return &Image{rgba: rgba, rect: rgba.Bounds()}
}

func target(img render.Image) *Image {
	return img.(*Image)
}

// RGBA returns the pixels inside the image bounds.
func (i *Image) RGBA() *image.RGBA {
	return i.rgba.SubImage(i.rect).(*image.RGBA)
}

func (i *Image) Bounds() image.Rectangle {
	return i.rect
}

func (i *Image) Size() (width, height int) {
	return i.rect.Dx(), i.rect.Dy()
}

func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{rgba: i.rgba, rect: r.Intersect(i.rect)}
}

func (i *Image) Fill(clr color.Color) {
	draw.Draw(i.rgba, i.rect, image.NewUniform(clr), image.Point{}, draw.Src)
}

func (i *Image) Clear() {
	draw.Draw(i.rgba, i.rect, image.Transparent, image.Point{}, draw.Src)
}

// Dispose is a no-op; the garbage collector owns the pixels.
func (i *Image) Dispose() {}

// At returns the colour at (x, y), transparent outside the bounds.
func (i *Image) At(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(i.rect) {
		return color.RGBA{}
	}
	return i.rgba.RGBAAt(x, y)
}

// DrawImage composites src using the options' transform, alpha and glow.
// The source's top-left corner maps to the transform's origin.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	s := target(src)
	if s.rect.Empty() {
		return
	}

	var geo render.GeoM
	if opts != nil {
		geo = opts.GeoM
	}
	alpha := opts.ClampedAlpha()
	if alpha == 0 {
		return
	}

	// Source to destination: GeoM after moving the sub-image to the origin.
	a, b, tx := geo.Element(0, 0), geo.Element(0, 1), geo.Element(0, 2)
	c, d, ty := geo.Element(1, 0), geo.Element(1, 1), geo.Element(1, 2)
	minX, minY := float64(s.rect.Min.X), float64(s.rect.Min.Y)
	s2d := f64.Aff3{
		a, b, tx - a*minX - b*minY,
		c, d, ty - c*minX - d*minY,
	}

	box := transformedBounds(geo, s.rect.Dx(), s.rect.Dy()).Intersect(i.rect.Inset(-8))
	if box.Empty() {
		return
	}

	// Resample into a scratch buffer, then composite with the alpha mask.
	tmp := image.NewRGBA(box)
	draw.NearestNeighbor.Transform(tmp, s2d, s.rgba, s.rect, draw.Src, nil)

	dst := i.RGBA()
	if opts != nil && opts.Glow {
		halo := image.NewUniform(scaleAlpha(glowColor, alpha))
		for _, off := range glowOffsets {
			draw.DrawMask(dst, box.Add(off), halo, image.Point{}, tmp, box.Min, draw.Over)
		}
	}

	var mask image.Image
	if alpha < 1 {
		mask = image.NewUniform(color.Alpha{A: uint8(math.Round(alpha * 255))})
	}
	draw.DrawMask(dst, box, tmp, box.Min, mask, image.Point{}, draw.Over)
}

// fill blends clr into rect through an optional coverage mask.
func (i *Image) fill(rect image.Rectangle, clr color.Color, mask image.Image) {
	rect = rect.Intersect(i.rect)
	if rect.Empty() {
		return
	}
	draw.DrawMask(i.rgba, rect, image.NewUniform(clr), image.Point{}, mask, rect.Min, draw.Over)
}

// transformedBounds is the integer bounding box of a w x h rectangle at the
// origin after geo.
func transformedBounds(geo render.GeoM, w, h int) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [][2]float64{{0, 0}, {float64(w), 0}, {0, float64(h)}, {float64(w), float64(h)}} {
		x, y := geo.Apply(p[0], p[1])
		minX, minY = math.Min(minX, x), math.Min(minY, y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}

func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
