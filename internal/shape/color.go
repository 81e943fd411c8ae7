package shape

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex converts a "#rrggbb" string into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustHex is ParseHex for compile-time palette constants.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Shade scales every channel of c by k (0..1), keeping alpha.
func Shade(c color.RGBA, k float64) color.RGBA {
	k = clamp01(k)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

// Blend mixes a and b in Lab space, t=0 gives a and t=1 gives b.
func Blend(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendLab(cb, clamp01(t)).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
