package anim

import (
	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/hanoi/internal/config"
)

// Pop is a damped spring scale used to bounce an overlay in and out.
type Pop struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func NewPop() *Pop {
	return &Pop{
		spring: harmonica.NewSpring(harmonica.FPS(config.FPS), config.SpringFrequency, config.SpringDamping),
	}
}

// Update moves the scale one frame towards 1 when shown, 0 otherwise.
func (p *Pop) Update(shown bool) {
	target := 0.0
	if shown {
		target = 1
	}
	p.pos, p.vel = p.spring.Update(p.pos, p.vel, target)
}

// Scale is the current scale factor, never negative.
func (p *Pop) Scale() float64 {
	if p.pos < 0 {
		return 0
	}
	return p.pos
}

// Visible reports whether drawing at the current scale shows anything.
func (p *Pop) Visible() bool { return p.Scale() > 0.01 }

// Reset hides the overlay immediately.
func (p *Pop) Reset() {
	p.pos, p.vel = 0, 0
}
