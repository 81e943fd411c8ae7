// Package anim holds frame-paced screen animations that do not depend on the
// renderer: the fade transition and the spring pop-in.
package anim

import "github.com/iburimskiy/hanoi/internal/config"

const opaque = 255

// Fader ramps the scene opacity by a fixed step every frame. A fade-out may
// carry an action that runs once the screen is fully hidden.
type Fader struct {
	alpha int
	dir   int
	then  func()
}

// NewFader returns a fader with the scene hidden and fading in.
func NewFader() *Fader {
	return &Fader{dir: 1}
}

// Out starts fading the scene out. then runs when the fade completes and may
// start a new fade itself.
func (f *Fader) Out(then func()) {
	f.dir = -1
	f.then = then
}

// In starts fading the scene back in.
func (f *Fader) In() {
	f.dir = 1
	f.then = nil
}

// Active reports whether a fade is in progress. Input is ignored meanwhile.
func (f *Fader) Active() bool { return f.dir != 0 }

// Alpha is the scene opacity in [0, 1].
func (f *Fader) Alpha() float32 { return float32(f.alpha) / opaque }

// Update advances the fade by one frame.
func (f *Fader) Update() {
	switch f.dir {
	case -1:
		f.alpha -= config.FadeStep
		if f.alpha <= 0 {
			f.alpha = 0
			f.dir = 0
			then := f.then
			f.then = nil
			if then != nil {
				then()
			}
		}
	case 1:
		f.alpha += config.FadeStep
		if f.alpha >= opaque {
			f.alpha = opaque
			f.dir = 0
		}
	}
}
