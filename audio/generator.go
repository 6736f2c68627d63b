package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Waveform selects the oscillator shape of a Cue
type Waveform uint8

const (
	WaveSine Waveform = iota
	WaveSquare
)

// Cue is a finite mono tone with an exponential frequency glide and linear fade-out
type Cue struct {
	sr        beep.SampleRate
	wave      Waveform
	startFreq float64
	endFreq   float64
	gain      float64
	samples   int

	pos   int
	phase float64
}

// NewCue creates a cue of n samples gliding from startFreq to endFreq
// Equal frequencies produce a steady tone
func NewCue(sr beep.SampleRate, wave Waveform, startFreq, endFreq, gain float64, n int) *Cue {
	return &Cue{
		sr:        sr,
		wave:      wave,
		startFreq: startFreq,
		endFreq:   endFreq,
		gain:      gain,
		samples:   n,
	}
}

// Stream fills samples until the cue is exhausted
func (c *Cue) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.samples {
		return 0, false
	}

	for i := range samples {
		if c.pos >= c.samples {
			return i, true
		}

		progress := float64(c.pos) / float64(c.samples)
		freq := c.startFreq * math.Pow(c.endFreq/c.startFreq, progress)
		c.phase += freq / float64(c.sr)
		c.phase -= math.Floor(c.phase)

		var v float64
		switch c.wave {
		case WaveSquare:
			if c.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		default:
			v = math.Sin(2 * math.Pi * c.phase)
		}

		// Linear release over the whole cue, short attack to avoid a click
		env := 1 - progress
		if attack := float64(c.pos) / (float64(c.sr) * 0.005); attack < 1 {
			env *= attack
		}

		v *= env * c.gain
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

// Err always returns nil
func (c *Cue) Err() error {
	return nil
}

// Len returns total length in samples
func (c *Cue) Len() int {
	return c.samples
}
