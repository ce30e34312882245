package game

import (
	"chosenoffset.com/kaiju/internal/core/vec"
	"chosenoffset.com/kaiju/internal/render"
)

// Intent is what the player asked for during one tick.
type Intent struct {
	// FireAt is set on a left click; Target is the cursor in canvas coordinates.
	FireAt bool
	Target vec.Vec2

	// FireAtActor is set when Space fires, including auto-repeat.
	FireAtActor bool

	Reset bool
	Pause bool
	Quit  bool
}

// ReadInput polls the input manager once.
func ReadInput(in render.InputManager) Intent {
	var it Intent

	if in.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := in.GetCursorPosition()
		it.FireAt = true
		it.Target = vec.Vec2{X: float64(x), Y: float64(y)}
	}

	it.FireAtActor = repeating(in.KeyPressDuration(render.KeySpace))
	it.Reset = in.IsKeyJustPressed(render.KeyR)
	it.Pause = in.IsKeyJustPressed(render.KeyP)
	it.Quit = in.IsKeyJustPressed(render.KeyEscape)
	return it
}

// repeating reports whether a key held for d ticks fires this tick: once on
// press, then after KeyRepeatDelay every KeyRepeatInterval ticks.
func repeating(d int) bool {
	if d == 1 {
		return true
	}
	return d >= KeyRepeatDelay && (d-KeyRepeatDelay)%KeyRepeatInterval == 0
}
