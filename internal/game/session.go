package game

import (
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/kaiju/internal/core/vec"
	"chosenoffset.com/kaiju/internal/entity"
	"github.com/google/uuid"
)

// Session is the complete state of one game: the creature, everything in
// flight, and the counters. It is touched only from the game loop.
type Session struct {
	ID uuid.UUID

	Width, Height float64

	Actor       *entity.Actor
	Projectiles []*entity.Projectile
	Effects     []entity.Effect

	Score int
	Hits  int

	Sequencer Sequencer

	Scoreboard Scoreboard
	Sounds     SoundBoard

	rng *rand.Rand
}

// Option configures a Session.
type Option func(*Session)

// WithScoreboard routes score updates to sb.
func WithScoreboard(sb Scoreboard) Option {
	return func(s *Session) {
		if sb != nil {
			s.Scoreboard = sb
		}
	}
}

// WithSoundBoard routes sound cues to sb.
func WithSoundBoard(sb SoundBoard) Option {
	return func(s *Session) {
		if sb != nil {
			s.Sounds = sb
		}
	}
}

// WithRand sets the random source used for jitter, particles and roars.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// NewSession creates a session for a width x height canvas with the creature
// centred in it.
func NewSession(width, height float64, opts ...Option) *Session {
	s := &Session{
		ID:         uuid.New(),
		Width:      width,
		Height:     height,
		Actor:      entity.NewActor(StartX, StartY, StartVX, StartVY, ActorWidth, ActorHeight),
		Scoreboard: NopScoreboard{},
		Sounds:     NopSoundBoard{},
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Actor.CenterIn(width, height)
	s.publish()
	log.Printf("Session %s started (%.0fx%.0f)", s.ID, width, height)
	return s
}

// Reset starts the game over: counters zeroed, everything in flight removed
// and the creature back at its start position and speed. Calling it twice
// is the same as calling it once, apart from the session id.
func (s *Session) Reset() {
	s.ID = uuid.New()
	s.Score = 0
	s.Hits = 0
	s.Projectiles = nil
	s.Effects = nil
	s.Sequencer.Reset()

	s.Actor.X, s.Actor.Y = StartX, StartY
	s.Actor.VX, s.Actor.VY = StartVX, StartVY
	s.Actor.Flash = 0

	s.publish()
	log.Printf("Session reset, new id %s", s.ID)
}

// Resize changes the canvas size and re-centres the creature.
func (s *Session) Resize(width, height float64) {
	s.Width = width
	s.Height = height
	s.Actor.CenterIn(width, height)
}

// LaunchPoint is where every projectile starts.
func (s *Session) LaunchPoint() vec.Vec2 {
	return vec.Vec2{X: s.Width / 2, Y: s.Height - LaunchOffset}
}

// Fire launches a projectile at target.
func (s *Session) Fire(target vec.Vec2) {
	s.Projectiles = append(s.Projectiles, entity.NewProjectile(s.LaunchPoint(), target))
	s.Sounds.PlayFire()
}

// FireAtActor launches a projectile at the creature's centre with a random
// offset of up to AimJitter/2 on each axis.
func (s *Session) FireAtActor() {
	c := s.Actor.Center()
	s.Fire(vec.Vec2{
		X: c.X + (s.rng.Float64()-0.5)*AimJitter,
		Y: c.Y + (s.rng.Float64()-0.5)*AimJitter,
	})
}

// Step advances the whole session by one frame.
func (s *Session) Step() {
	if s.Sequencer.Active() {
		s.Actor.Update(s.Width, s.Height)
	} else {
		burst, done := s.Sequencer.Step()
		if burst {
			s.explode()
		}
		if done {
			s.Hits = 0
			s.Scoreboard.SetHits(s.Hits)
			log.Printf("Session %s: explosion over, score %d", s.ID, s.Score)
		}
	}

	s.stepProjectiles()
	s.stepEffects()
}

func (s *Session) stepProjectiles() {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if !p.Update(s.Width, s.Height) {
			continue
		}
		if s.collide(p) {
			continue
		}
		kept = append(kept, p)
	}
	clear(s.Projectiles[len(kept):])
	s.Projectiles = kept
}

func (s *Session) stepEffects() {
	kept := s.Effects[:0]
	for _, e := range s.Effects {
		if e.Update() {
			kept = append(kept, e)
		}
	}
	clear(s.Effects[len(kept):])
	s.Effects = kept
}

func (s *Session) spawnParticles(at vec.Vec2, n int, hueMin, hueSpan float64) {
	for i := 0; i < n; i++ {
		s.Effects = append(s.Effects, entity.NewParticle(s.rng, at, hueMin, hueSpan))
	}
}

func (s *Session) publish() {
	s.Scoreboard.SetScore(s.Score)
	s.Scoreboard.SetHits(s.Hits)
}
