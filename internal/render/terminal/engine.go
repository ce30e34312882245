// Package terminal runs a render.Game inside a terminal. Frames are drawn
// with the raster backend and shown as half-block character cells.
package terminal

import (
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/kaiju/internal/render"
	"chosenoffset.com/kaiju/internal/render/raster"
)

// Default logical pixels per terminal cell. Cells are twice as tall as wide.
const (
	DefaultCellWidth  = 12
	DefaultCellHeight = 24
)

const tickRate = 60

// Engine implements render.Engine on a tcell screen.
type Engine struct {
	screen tcell.Screen
	input  *Input
	cellW  int
	cellH  int
	title  string

	frame     *raster.Image
	presenter presenter
}

// NewEngine wraps an initialised screen.
func NewEngine(screen tcell.Screen, cellW, cellH int) *Engine {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &Engine{
		screen: screen,
		input:  NewInput(cellW, cellH),
		cellW:  cellW,
		cellH:  cellH,
	}
}

// Input returns the input manager fed by this engine.
func (e *Engine) Input() *Input {
	return e.input
}

// SetWindowSize is a no-op; the terminal decides the size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle records the title for the log.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// SetWindowResizable is a no-op; terminals always resize.
func (e *Engine) SetWindowResizable(resizable bool) {}

// LogicalSize is the canvas size for the current terminal size.
func (e *Engine) LogicalSize() (int, int) {
	cols, rows := e.screen.Size()
	return cols * e.cellW, rows * e.cellH
}

// RunGame runs the tick loop until the game returns an error. A game
// returning render.ErrTerminate ends the loop with a nil error.
func (e *Engine) RunGame(game render.Game) error {
	log.Printf("Running %q in terminal", e.title)

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go e.pollEvents(eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				e.screen.Sync()
				continue
			}
			e.input.HandleEvent(ev)

		case <-ticker.C:
			if err := e.Step(game); err != nil {
				if errors.Is(err, render.ErrTerminate) {
					return nil
				}
				return err
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func (e *Engine) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Step runs one Layout/Update/Draw cycle and presents the frame.
func (e *Engine) Step(game render.Game) error {
	w, h := game.Layout(e.LogicalSize())

	if err := game.Update(); err != nil {
		return err
	}
	e.input.Advance()

	if e.frame == nil || e.frame.Bounds().Dx() != w || e.frame.Bounds().Dy() != h {
		e.frame = raster.NewImage(w, h)
	}
	e.frame.Clear()
	game.Draw(e.frame)
	e.presenter.present(e.screen, e.frame.RGBA())
	return nil
}
