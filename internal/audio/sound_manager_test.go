package audio

import (
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			if sample[0] < -1 || sample[0] > 1 || sample[1] < -1 || sample[1] > 1 {
				t.Fatalf("Sample out of range: %v", sample)
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("Expected stream to end")
	return total
}

func TestSynthesizedSoundsEnd(t *testing.T) {
	if got, want := drain(t, FireSound(testRate)), testRate.N(FireDuration); got != want {
		t.Errorf("Expected fire sound of %d samples, got %d", want, got)
	}

	tests := []struct {
		name     string
		streamer beep.Streamer
		max      int
	}{
		{"hit", HitSound(testRate), testRate.N(HitDuration)},
		{"explosion", ExplosionSound(testRate), testRate.N(ExplosionDuration)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drain(t, tt.streamer)
			if got == 0 || got > tt.max+512 {
				t.Errorf("Expected between 1 and %d samples, got %d", tt.max+512, got)
			}
		})
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 0, FireDuration, WaveSquare, testRate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Expected 50 samples, got %d (ok=%v)", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1 && v != 1 {
			t.Errorf("Square wave sample %d should be -1 or 1, got %f", i, v)
		}
	}
}

func TestNoiseDiffersBetweenOscillators(t *testing.T) {
	a := NewOscillator(0, 0, HitDuration, WaveNoise, testRate)
	b := NewOscillator(0, 0, HitDuration, WaveNoise, testRate)

	bufA := make([][2]float64, 512)
	bufB := make([][2]float64, 512)
	na, _ := a.Stream(bufA)
	nb, _ := b.Stream(bufB)
	if na != nb {
		t.Fatalf("Expected equal lengths, got %d and %d", na, nb)
	}

	same := 0
	for i := 0; i < na; i++ {
		if bufA[i] == bufB[i] {
			same++
		}
	}
	if same == na {
		t.Errorf("Expected two noise oscillators to differ, got %d identical samples", same)
	}
}

func TestDecayReachesSilence(t *testing.T) {
	osc := NewOscillator(0, 0, FireDuration, WaveSquare, testRate) // constant +1
	shaped := NewDecay(osc, FireDuration, 0, testRate)

	n := testRate.N(FireDuration)
	samples := make([][2]float64, n)
	got, _ := shaped.Stream(samples)
	if got != n {
		t.Fatalf("Expected %d samples, got %d", n, got)
	}
	if samples[0][0] != 1 {
		t.Errorf("Expected full volume at start, got %f", samples[0][0])
	}
	if last := samples[n-1][0]; last > 0.01 {
		t.Errorf("Expected near silence at end, got %f", last)
	}
}

func TestPlayBeforeInitializeIsNoop(t *testing.T) {
	sm := NewSoundManager(44100, 0.8)

	sm.PlayFire()
	sm.PlayHit()
	sm.PlayExplosion()
	sm.Cleanup()

	if sm.mixer.Len() != 0 {
		t.Errorf("Expected empty mixer, got %d streamers", sm.mixer.Len())
	}
}

func TestLoadClipRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fire.wav")
	if err := WriteWAV(path, FireSound(testRate), testRate); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	sm := NewSoundManager(int(testRate), 1)
	if sm.HasClip(ClipFire) {
		t.Fatal("Expected no clip before loading")
	}
	if err := sm.LoadClip(ClipFire, path); err != nil {
		t.Fatalf("LoadClip: %v", err)
	}
	if !sm.HasClip(ClipFire) {
		t.Fatal("Expected fire clip loaded")
	}
	if got, want := sm.clips[ClipFire].Len(), testRate.N(FireDuration); got != want {
		t.Errorf("Expected %d buffered samples, got %d", want, got)
	}
	if got := drain(t, sm.Streamer(ClipFire)); got != testRate.N(FireDuration) {
		t.Errorf("Expected clip stream of %d samples, got %d", testRate.N(FireDuration), got)
	}
}

func TestLoadClipResamples(t *testing.T) {
	low := beep.SampleRate(22050)
	path := filepath.Join(t.TempDir(), "hit.wav")
	if err := WriteWAV(path, FireSound(low), low); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	sm := NewSoundManager(int(testRate), 1)
	if err := sm.LoadClip(ClipHit, path); err != nil {
		t.Fatalf("LoadClip: %v", err)
	}

	want := testRate.N(FireDuration)
	if got := sm.clips[ClipHit].Len(); got < want-100 || got > want+100 {
		t.Errorf("Expected about %d samples after resampling, got %d", want, got)
	}
}

func TestLoadClipsFallsBackOnError(t *testing.T) {
	sm := NewSoundManager(int(testRate), 1)
	sm.LoadClips(map[Clip]string{
		ClipExplosion: filepath.Join(t.TempDir(), "missing.wav"),
		ClipHit:       "",
	})

	if sm.HasClip(ClipExplosion) || sm.HasClip(ClipHit) {
		t.Error("Expected no clips loaded")
	}
	if drain(t, sm.Streamer(ClipExplosion)) == 0 {
		t.Error("Expected synthesized explosion")
	}
}

func TestClipString(t *testing.T) {
	if ClipExplosion.String() != "explosion" {
		t.Errorf("Expected 'explosion', got '%s'", ClipExplosion.String())
	}
}
