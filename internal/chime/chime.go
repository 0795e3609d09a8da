// Package chime plays a short test tone so the smoke test also exercises
// the audio device.
package chime

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/render-smoke/internal/config"
)

// Tone returns a finite sine streamer of the given frequency and length.
// Amplitude starts at gain and fades linearly to zero.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, gain float64) beep.Streamer {
	total := sr.N(d)
	step := 2 * math.Pi * freq / float64(sr)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			env := gain * (1 - float64(pos)/float64(total))
			v := env * math.Sin(step*float64(pos))
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

// Play opens the speaker and queues the tone. It returns immediately.
func Play(c config.Chime) error {
	sr := beep.SampleRate(c.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(Tone(sr, c.Frequency, c.Duration, c.Gain))
	return nil
}

// Stop drops anything still queued on the speaker.
func Stop() {
	speaker.Clear()
}
