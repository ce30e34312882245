package audio

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// WriteWAV renders s to a 16-bit stereo WAV file at rate.
func WriteWAV(path string, s beep.Streamer, rate beep.SampleRate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, s, format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
