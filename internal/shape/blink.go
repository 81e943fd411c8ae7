package shape

import (
	"image/color"
	"math"

	"github.com/iburimskiy/hanoi/internal/config"
)

// Blink is a periodic brightness oscillation. The zero value is inactive.
type Blink struct {
	phase  float64
	active bool
}

// Start begins the oscillation from phase 0.
func (b *Blink) Start() {
	b.phase = 0
	b.active = true
}

func (b *Blink) Stop() {
	b.phase = 0
	b.active = false
}

func (b *Blink) Active() bool { return b.active }

// Phase returns the current angle in [0, π).
func (b *Blink) Phase() float64 { return b.phase }

// Advance moves the phase one frame ahead, folding it back into [0, π).
func (b *Blink) Advance() {
	if !b.active {
		return
	}
	b.phase += config.BlinkSpeed
	if b.phase >= math.Pi {
		b.phase -= math.Pi
	}
}

// Tint returns c brightened for the current phase. An inactive blink returns c
// unchanged.
func (b *Blink) Tint(c color.RGBA) color.RGBA {
	if !b.active {
		return c
	}
	k := (config.BrightnessHigh - 1) * math.Abs(math.Sin(b.phase))
	return color.RGBA{
		R: brighten(c.R, k),
		G: brighten(c.G, k),
		B: brighten(c.B, k),
		A: c.A,
	}
}

func brighten(c uint8, k float64) uint8 {
	v := float64(c) + float64(c)*k
	return uint8(math.Min(v, 255))
}
