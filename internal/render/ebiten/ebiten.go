package ebiten

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/kaiju/internal/render"
)

// Debug font cell size in pixels.
const (
	charWidth  = 6
	charHeight = 16
)

const maxTextCache = 64

// glowOffsets are the halo copies drawn around a glowing image.
var glowOffsets = [][2]float64{
	{-4, 0}, {4, 0}, {0, -4}, {0, 4},
	{-3, -3}, {3, -3}, {-3, 3}, {3, 3},
}

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct {
	// Rendered debug-font strings, reused across frames
	textCache map[string]*ebiten.Image
}

// NewRenderer creates a new Ebiten-based render.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{textCache: make(map[string]*ebiten.Image)}
}

// NewImage creates a new image with the given dimensions.
func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(unwrap(dst), x, y, radius, clr, true)
}

// FillRect draws a filled rectangle on the destination image.
func (r *EbitenRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(unwrap(dst), x, y, width, height, clr, true)
}

// StrokeLine draws a line segment on the destination image.
func (r *EbitenRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	vector.StrokeLine(unwrap(dst), x0, y0, x1, y1, strokeWidth, clr, true)
}

// DrawText draws text on the destination image using the debug font.
// The string is rendered once to an offscreen image, then scaled and tinted.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	if str == "" {
		return
	}
	if scale <= 0 {
		scale = 1
	}

	img, ok := r.textCache[str]
	if !ok {
		if len(r.textCache) >= maxTextCache {
			for k, cached := range r.textCache {
				cached.Dispose()
				delete(r.textCache, k)
			}
		}
		img = ebiten.NewImage(len(str)*charWidth+1, charHeight)
		ebitenutil.DebugPrint(img, str)
		r.textCache[str] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterNearest
	unwrap(dst).DrawImage(img, op)
}

// MeasureText measures the width and height of text with the given scale.
func (r *EbitenRenderer) MeasureText(str string, scale float64) (width, height int) {
	if scale <= 0 {
		scale = 1
	}
	return int(float64(len(str)*charWidth) * scale), int(charHeight * scale)
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// SubImage returns a sub-image of the image.
func (i *EbitenImage) SubImage(r image.Rectangle) render.Image {
	return &EbitenImage{img: i.img.SubImage(r).(*ebiten.Image)}
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image to transparent.
func (i *EbitenImage) Clear() {
	i.img.Clear()
}

// Dispose releases the image resources.
func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// DrawImage draws the source image onto this image.
func (i *EbitenImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	srcImg := unwrap(src)

	if opts == nil {
		i.img.DrawImage(srcImg, nil)
		return
	}

	geoM := toEbitenGeoM(opts.GeoM)
	alpha := float32(opts.ClampedAlpha())
	if alpha == 0 {
		return
	}

	if opts.Glow {
		for _, off := range glowOffsets {
			glow := &ebiten.DrawImageOptions{GeoM: geoM, Blend: ebiten.BlendLighter}
			glow.GeoM.Translate(off[0], off[1])
			glow.ColorScale.ScaleAlpha(0.35 * alpha)
			i.img.DrawImage(srcImg, glow)
		}
	}

	ebitenOpts := &ebiten.DrawImageOptions{GeoM: geoM}
	ebitenOpts.ColorScale.ScaleAlpha(alpha)
	i.img.DrawImage(srcImg, ebitenOpts)
}

// GetEbitenImage returns the underlying ebiten.Image.
// This is useful for interop with ebiten-specific code.
func (i *EbitenImage) GetEbitenImage() *ebiten.Image {
	return i.img
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Image.
func WrapEbitenImage(img *ebiten.Image) render.Image {
	return &EbitenImage{img: img}
}

func unwrap(img render.Image) *ebiten.Image {
	return img.(*EbitenImage).img
}

// toEbitenGeoM copies a render.GeoM into ebiten's matrix type.
func toEbitenGeoM(g render.GeoM) ebiten.GeoM {
	var m ebiten.GeoM
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			m.SetElement(row, col, g.Element(row, col))
		}
	}
	return m
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// KeyPressDuration returns how many ticks the key has been held.
func (m *EbitenInputManager) KeyPressDuration(key render.Key) int {
	return inpututil.KeyPressDuration(keyToEbitenKey(key))
}

// IsMouseButtonJustPressed returns whether the button was pressed this frame.
func (m *EbitenInputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButtonToEbiten(button))
}

// GetCursorPosition returns the current cursor position.
func (m *EbitenInputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeySpace:
		return ebiten.KeySpace
	case render.KeyR:
		return ebiten.KeyR
	case render.KeyP:
		return ebiten.KeyP
	case render.KeyEscape:
		return ebiten.KeyEscape
	default:
		return 0
	}
}

// mouseButtonToEbiten converts a render.MouseButton to an ebiten.MouseButton.
func mouseButtonToEbiten(button render.MouseButton) ebiten.MouseButton {
	switch button {
	case render.MouseButtonLeft:
		return ebiten.MouseButtonLeft
	case render.MouseButtonRight:
		return ebiten.MouseButtonRight
	case render.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// EbitenResourceLoader implements the ResourceLoader interface using Ebiten.
type EbitenResourceLoader struct{}

// NewResourceLoader creates a new Ebiten-based resource loader.
func NewResourceLoader() render.ResourceLoader {
	return &EbitenResourceLoader{}
}

// LoadImage loads an image from the specified file path.
func (l *EbitenResourceLoader) LoadImage(path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &EbitenImage{img: img}, nil
}

// FromImage uploads an in-memory image.
func (l *EbitenResourceLoader) FromImage(img image.Image) render.Image {
	return &EbitenImage{img: ebiten.NewImageFromImage(img)}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game.
// A game returning render.ErrTerminate ends the loop with a nil error.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrTerminate) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
