package game

import "time"

// Gameplay tuning. These are fixed; only window/asset/audio settings are
// configurable.
const (
	HitThreshold   = 100
	ExplosionPause = 120 // frames
	ScorePerHit    = 100

	MaxActorSpeed  = 8.0
	VelocityGrowth = 1.10
	FlashFrames    = 15

	HitParticles       = 15
	ExplosionParticles = 200

	LaunchOffset = 50
	AimJitter    = 100

	RoarDuration = 500 * time.Millisecond
)

// Creature start state, also restored by a full reset.
const (
	ActorWidth  = 743
	ActorHeight = 369
	StartX      = 400
	StartY      = 300
	StartVX     = 4
	StartVY     = 3
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Space auto-repeat timing in ticks.
const (
	KeyRepeatDelay    = 30
	KeyRepeatInterval = 4
)

// RoarTexts are shown on the banner when the creature is hit.
var RoarTexts = []string{"RARRR!", "ROAAAR!", "GRAAAH!", "ROOOOAR!"}
