// Package audio plays the fire, hit and explosion sounds. Clips are loaded
// from WAV files when present and synthesized otherwise.
package audio

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// Clip identifies one of the game sounds
type Clip int

const (
	ClipFire Clip = iota
	ClipHit
	ClipExplosion
)

func (c Clip) String() string {
	switch c {
	case ClipFire:
		return "fire"
	case ClipHit:
		return "hit"
	case ClipExplosion:
		return "explosion"
	}
	return fmt.Sprintf("clip(%d)", int(c))
}

// resampleQuality is passed to beep.Resample for clips at a foreign rate
const resampleQuality = 4

// SoundManager manages all game audio. Every method is safe to call before
// Initialize or after Cleanup, in which case playback is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	clips       map[Clip]*beep.Buffer
	initialized bool
}

// NewSoundManager creates a sound manager at the given rate and volume.
func NewSoundManager(sampleRate int, volume float64) *SoundManager {
	return &SoundManager{
		rate:   beep.SampleRate(sampleRate),
		volume: volume,
		mixer:  &beep.Mixer{},
		clips:  make(map[Clip]*beep.Buffer),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// LoadClip decodes a WAV file into memory and uses it for c instead of the
// synthesized sound.
func (sm *SoundManager) LoadClip(c Clip, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s clip: %w", c, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode %s clip %s: %w", c, path, err)
	}
	defer streamer.Close()

	sm.mu.Lock()
	defer sm.mu.Unlock()

	var s beep.Streamer = streamer
	if format.SampleRate != sm.rate {
		s = beep.Resample(resampleQuality, format.SampleRate, sm.rate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: sm.rate, NumChannels: 2, Precision: 2})
	buffer.Append(s)
	sm.clips[c] = buffer
	return nil
}

// LoadClips loads every path that is non-empty. Failures are logged and the
// clip falls back to its synthesized sound.
func (sm *SoundManager) LoadClips(paths map[Clip]string) {
	for c, path := range paths {
		if path == "" {
			continue
		}
		if err := sm.LoadClip(c, path); err != nil {
			log.Printf("Warning: %v (using synthesized %s sound)", err, c)
		}
	}
}

// HasClip reports whether c was loaded from a file
func (sm *SoundManager) HasClip(c Clip) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	_, ok := sm.clips[c]
	return ok
}

// Streamer returns a fresh stream for c at the manager's volume
func (sm *SoundManager) Streamer(c Clip) beep.Streamer {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.streamer(c)
}

func (sm *SoundManager) streamer(c Clip) beep.Streamer {
	var s beep.Streamer
	if buffer, ok := sm.clips[c]; ok {
		s = buffer.Streamer(0, buffer.Len())
	} else {
		switch c {
		case ClipFire:
			s = FireSound(sm.rate)
		case ClipHit:
			s = HitSound(sm.rate)
		default:
			s = ExplosionSound(sm.rate)
		}
	}
	return newVolume(s, sm.volume)
}

func (sm *SoundManager) play(c Clip) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := sm.streamer(c)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayFire plays the launch sound
func (sm *SoundManager) PlayFire() { sm.play(ClipFire) }

// PlayHit plays the impact sound
func (sm *SoundManager) PlayHit() { sm.play(ClipHit) }

// PlayExplosion plays the explosion sound
func (sm *SoundManager) PlayExplosion() { sm.play(ClipExplosion) }
