package terminal

import (
	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/kaiju/internal/render"
)

// holdTicks is how long a key counts as held after its last event.
// Terminals send no key-up events, only the OS auto-repeat stream, so a key
// is released once that stream has been quiet for this long.
const holdTicks = 36

// Input implements render.InputManager from tcell events. Cursor positions
// are reported in logical pixels at the centre of the cell.
type Input struct {
	cellW, cellH int

	tick      int
	lastSeen  map[render.Key]int
	pressedAt map[render.Key]int
	just      map[render.Key]bool

	buttons tcell.ButtonMask
	clicked map[render.MouseButton]bool
	cursorX int
	cursorY int
}

// NewInput creates an input manager for cells of cellW x cellH logical pixels.
func NewInput(cellW, cellH int) *Input {
	return &Input{
		cellW:     cellW,
		cellH:     cellH,
		lastSeen:  make(map[render.Key]int),
		pressedAt: make(map[render.Key]int),
		just:      make(map[render.Key]bool),
		clicked:   make(map[render.MouseButton]bool),
	}
}

// HandleEvent records a key or mouse event for the current tick.
func (in *Input) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if key, ok := mapKey(ev); ok {
			in.press(key)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		in.cursorX = x*in.cellW + in.cellW/2
		in.cursorY = y*in.cellH + in.cellH/2

		btns := ev.Buttons()
		for mask, button := range buttonMap {
			if btns&mask != 0 && in.buttons&mask == 0 {
				in.clicked[button] = true
			}
		}
		in.buttons = btns
	}
}

var buttonMap = map[tcell.ButtonMask]render.MouseButton{
	tcell.Button1: render.MouseButtonLeft,
	tcell.Button2: render.MouseButtonRight,
	tcell.Button3: render.MouseButtonMiddle,
}

func (in *Input) press(key render.Key) {
	if !in.held(key) {
		in.pressedAt[key] = in.tick
		in.just[key] = true
	}
	in.lastSeen[key] = in.tick
}

func (in *Input) held(key render.Key) bool {
	last, ok := in.lastSeen[key]
	return ok && in.tick-last <= holdTicks
}

// Advance ends the current tick: one-shot state is cleared and keys whose
// repeat stream stopped are released.
func (in *Input) Advance() {
	in.tick++
	clear(in.just)
	clear(in.clicked)
	for key := range in.lastSeen {
		if !in.held(key) {
			delete(in.lastSeen, key)
			delete(in.pressedAt, key)
		}
	}
}

func (in *Input) IsKeyJustPressed(key render.Key) bool {
	return in.just[key]
}

// KeyPressDuration counts ticks since the hold began, 1 on the first tick.
func (in *Input) KeyPressDuration(key render.Key) int {
	if !in.held(key) {
		return 0
	}
	return in.tick - in.pressedAt[key] + 1
}

func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return in.clicked[button]
}

func (in *Input) GetCursorPosition() (x, y int) {
	return in.cursorX, in.cursorY
}

func mapKey(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return render.KeySpace, true
		case 'r', 'R':
			return render.KeyR, true
		case 'p', 'P':
			return render.KeyP, true
		}
	}
	return 0, false
}
