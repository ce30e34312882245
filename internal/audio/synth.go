package audio

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length wave, optionally sweeping its pitch
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// noiseSeed gives every oscillator its own noise sequence
var noiseSeed atomic.Int64

// NewOscillator creates a wave generator that ends after duration.
func NewOscillator(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano() + noiseSeed.Add(1))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := math.Max(o.freq+o.sweep*t, 0)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream linearly to silence after a short attack
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

// NewDecay shapes s with a linear attack followed by a linear release that
// reaches zero at duration.
func NewDecay(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{
		streamer: s,
		attack:   rate.N(attack),
		total:    rate.N(duration),
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if d.position >= d.total {
			return i, i > 0
		}
		vol := 1.0
		if d.position < d.attack {
			vol = float64(d.position) / float64(d.attack)
		} else if rest := d.total - d.attack; rest > 0 {
			vol = float64(d.total-d.position) / float64(rest)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps s in a linear volume; 0 is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound durations
const (
	FireDuration      = 120 * time.Millisecond
	HitDuration       = 150 * time.Millisecond
	ExplosionDuration = 900 * time.Millisecond
)

// FireSound is a short descending blip.
func FireSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(880, -2400, FireDuration, WaveSquare, rate)
	return newVolume(NewDecay(osc, FireDuration, 5*time.Millisecond, rate), 0.25)
}

// HitSound is a thud of low sine and noise.
func HitSound(rate beep.SampleRate) beep.Streamer {
	thud := NewDecay(NewOscillator(160, -300, HitDuration, WaveSine, rate), HitDuration, 2*time.Millisecond, rate)
	crack := NewDecay(NewOscillator(0, 0, HitDuration/2, WaveNoise, rate), HitDuration/2, time.Millisecond, rate)
	return beep.Mix(newVolume(thud, 0.6), newVolume(crack, 0.3))
}

// ExplosionSound is a long noise burst over a falling rumble.
func ExplosionSound(rate beep.SampleRate) beep.Streamer {
	noise := NewDecay(NewOscillator(0, 0, ExplosionDuration, WaveNoise, rate), ExplosionDuration, 10*time.Millisecond, rate)
	rumble := NewDecay(NewOscillator(70, -40, ExplosionDuration, WaveSine, rate), ExplosionDuration, 20*time.Millisecond, rate)
	return beep.Mix(newVolume(noise, 0.5), newVolume(rumble, 0.45))
}
