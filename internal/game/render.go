package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/hanoi/internal/config"
	"github.com/iburimskiy/hanoi/internal/hanoi"
	"github.com/iburimskiy/hanoi/internal/shape"
)

// fillRounded fills r with fully rounded short sides. With topOnly the
// bottom corners stay square, as for a rod standing on the base bar.
func fillRounded(dst *ebiten.Image, r shape.Rect, c color.Color, topOnly bool) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	rad := math.Min(r.W, r.H) / 2

	if topOnly {
		vector.DrawFilledCircle(dst, float32(r.CenterX()), float32(r.Y+rad), float32(rad), c, true)
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y+rad), float32(r.W), float32(r.H-rad), c, true)
		return
	}

	if r.W >= r.H {
		vector.DrawFilledRect(dst, float32(r.X+rad), float32(r.Y), float32(r.W-2*rad), float32(r.H), c, true)
		vector.DrawFilledCircle(dst, float32(r.X+rad), float32(r.CenterY()), float32(rad), c, true)
		vector.DrawFilledCircle(dst, float32(r.Right()-rad), float32(r.CenterY()), float32(rad), c, true)
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y+rad), float32(r.W), float32(r.H-2*rad), c, true)
	vector.DrawFilledCircle(dst, float32(r.CenterX()), float32(r.Y+rad), float32(rad), c, true)
	vector.DrawFilledCircle(dst, float32(r.CenterX()), float32(r.Bottom()-rad), float32(rad), c, true)
}

// drawRoundedRect draws r with a darker border around a main-colored inner
// rect. The blink, when given, brightens both colors for this draw only.
func drawRoundedRect(dst *ebiten.Image, r shape.Rect, c color.RGBA, b *shape.Blink, topOnly bool) {
	border := shape.Shade(c, config.BrightnessLow)
	if b != nil {
		c, border = b.Tint(c), b.Tint(border)
	}
	fillRounded(dst, r, border, topOnly)
	inner := r.Inset(config.BorderWidth)
	if topOnly {
		inner.H += config.BorderWidth
	}
	fillRounded(dst, inner, c, topOnly)
}

func drawDisk(dst *ebiten.Image, d *hanoi.Disk) {
	drawRoundedRect(dst, d.Rect, d.Color, &d.Blink, false)
}

func drawTower(dst *ebiten.Image, t *hanoi.Tower, c color.RGBA) {
	drawRoundedRect(dst, t.Rod, c, nil, true)
}
