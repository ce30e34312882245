package game

//go:generate go tool mockgen -destination=./mocks/sinks_mock.go -package=mocks . Scoreboard,SoundBoard

// Scoreboard receives score changes. Implementations must not block.
type Scoreboard interface {
	SetScore(score int)
	SetHits(hits int)
	// Roar shows a banner for RoarDuration; a new roar restarts the window.
	Roar(text string)
}

// SoundBoard plays the game's sound cues. Calls are fire-and-forget.
type SoundBoard interface {
	PlayFire()
	PlayHit()
	PlayExplosion()
}

// NopScoreboard discards all updates.
type NopScoreboard struct{}

func (NopScoreboard) SetScore(int) {}
func (NopScoreboard) SetHits(int) {}
func (NopScoreboard) Roar(string) {}

// NopSoundBoard is silent.
type NopSoundBoard struct{}

func (NopSoundBoard) PlayFire() {}
func (NopSoundBoard) PlayHit() {}
func (NopSoundBoard) PlayExplosion() {}
