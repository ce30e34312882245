package game

import (
	"chosenoffset.com/kaiju/internal/render"
)

// State is the top-level mode the manager is in.
type State int

const (
	StatePlaying State = iota
	StatePaused
)

// Overlay is anything drawn over the playfield after the entities.
type Overlay interface {
	Draw(r render.Renderer, screen render.Image)
}
