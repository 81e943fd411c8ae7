package sound

import (
	"math"

	"github.com/faiface/beep"
)

// tone is a decaying sine wave of a fixed length.
type tone struct {
	freq  float64
	sr    beep.SampleRate
	pos   int
	total int
	decay float64
}

func newTone(sr beep.SampleRate, freq float64, samples int) *tone {
	return &tone{
		freq:  freq,
		sr:    sr,
		total: samples,
		// amplitude falls to ~1% by the end
		decay: math.Log(100) / float64(samples),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		ts := float64(t.pos) / float64(t.sr)
		v := 0.5 * math.Sin(2*math.Pi*t.freq*ts) * math.Exp(-t.decay*float64(t.pos))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }
