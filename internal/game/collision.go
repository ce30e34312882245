package game

import (
	"log"

	"chosenoffset.com/kaiju/internal/entity"
)

// collide checks p against the creature and applies a hit. It reports
// whether p was consumed. Nothing can be hit while the creature explodes.
func (s *Session) collide(p *entity.Projectile) bool {
	if !s.Sequencer.Active() || !s.Actor.Contains(p.Pos.X, p.Pos.Y) {
		return false
	}

	s.Sounds.PlayHit()

	s.Hits++
	s.Score += ScorePerHit
	s.Scoreboard.SetHits(s.Hits)
	s.Scoreboard.SetScore(s.Score)
	s.Scoreboard.Roar(RoarTexts[s.rng.Intn(len(RoarTexts))])

	s.Actor.Flash = FlashFrames
	s.spawnParticles(p.Pos, HitParticles, entity.HitHueMin, entity.HitHueSpan)
	s.Actor.Accelerate(VelocityGrowth, MaxActorSpeed)

	if s.Hits >= HitThreshold && s.Sequencer.Arm() {
		log.Printf("Session %s: %d hits, creature exploding", s.ID, s.Hits)
	}
	return true
}

// explode emits the one-off burst at the start of an explosion.
func (s *Session) explode() {
	s.Sounds.PlayExplosion()
	s.spawnParticles(s.Actor.Center(), ExplosionParticles, entity.ExplosionHueMin, entity.ExplosionHueSpan)
	for _, f := range entity.Shatter(s.rng, s.Actor.Origin(), s.Actor.Width, s.Actor.Height) {
		s.Effects = append(s.Effects, f)
	}
}
