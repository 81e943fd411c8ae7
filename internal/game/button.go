package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/hanoi/internal/config"
	"github.com/iburimskiy/hanoi/internal/shape"
)

// Button is a blinking rounded rectangle with a caption and an action.
type Button struct {
	Rect    shape.Rect
	Color   color.RGBA
	Blink   shape.Blink
	Caption *label
	OnClick func()

	pressed bool
}

func (b *Button) ContainsPoint(p shape.Point) bool { return b.Rect.Contains(p) }

// Hover blinks the button while the pointer is over it.
func (b *Button) Hover(p shape.Point) bool {
	if b.ContainsPoint(p) {
		if !b.Blink.Active() {
			b.Blink.Start()
		}
		return true
	}
	b.Blink.Stop()
	return false
}

func (b *Button) Update() { b.Blink.Advance() }

func (b *Button) Draw(dst *ebiten.Image) {
	c := b.Color
	if b.pressed {
		c = shape.Blend(c, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.25)
	}
	drawRoundedRect(dst, b.Rect, c, &b.Blink, false)
	b.Caption.Rect.SetCenter(b.Rect.Center())
	b.Caption.Draw(dst)
}

// layoutButtons spreads n buttons evenly along the bottom edge.
func layoutButtons(n int) []shape.Rect {
	rects := make([]shape.Rect, n)
	for i := range rects {
		r := shape.NewRect(6*config.MinSize, 2*config.MinSize)
		r.SetCenterX(float64(int(config.WindowWidth / float64(n) * (float64(i) + 0.5))))
		r.SetBottom(config.WindowHeight - config.MinSize/2)
		rects[i] = r
	}
	return rects
}
