package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminate is returned from Game.Update to stop the engine loop cleanly.
var ErrTerminate = errors.New("render: terminate")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Sub-image extraction. The rectangle is intersected with Bounds.
	SubImage(r image.Rectangle) Image

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)

	// Resource management
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
// A nil *DrawImageOptions draws the source untransformed and opaque.
type DrawImageOptions struct {
	GeoM GeoM

	// Alpha multiplies the source opacity and is clamped to [0, 1].
	Alpha float64

	// Glow adds a bright halo around the drawn image (hit highlight).
	Glow bool
}

// NewDrawImageOptions returns options with an identity transform and full opacity.
func NewDrawImageOptions() *DrawImageOptions {
	return &DrawImageOptions{Alpha: 1}
}

// ClampedAlpha returns Alpha limited to [0, 1].
func (o *DrawImageOptions) ClampedAlpha() float64 {
	if o == nil {
		return 1
	}
	switch {
	case o.Alpha < 0:
		return 0
	case o.Alpha > 1:
		return 1
	}
	return o.Alpha
}

//go:generate go tool mockgen -destination=./mocks/input_mock.go -package=mocks . InputManager

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	// KeyPressDuration returns how many ticks the key has been held, 0 if released.
	KeyPressDuration(key Key) int
	IsMouseButtonJustPressed(button MouseButton) bool
	GetCursorPosition() (x, y int)
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game listens to
const (
	KeySpace Key = iota
	KeyR         // Full reset
	KeyP         // Pause toggle
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// ResourceLoader handles loading resources like images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)

	// FromImage uploads an in-memory image (e.g. a generated placeholder).
	FromImage(img image.Image) Image
}

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	// Returning ErrTerminate stops the engine without reporting an error.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
