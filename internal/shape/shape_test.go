package shape

import (
	"image/color"
	"math"
	"testing"

	"github.com/iburimskiy/hanoi/internal/config"
)

func TestBlinkPhaseFolds(t *testing.T) {
	var b Blink
	b.Advance()
	if b.Phase() != 0 {
		t.Fatalf("inactive blink advanced")
	}

	b.Start()
	prev := math.Sin(b.Phase())
	for i := 0; i < 500; i++ {
		b.Advance()
		if b.Phase() < 0 || b.Phase() >= math.Pi {
			t.Fatalf("phase %v out of [0, π)", b.Phase())
		}
		// |sin| never jumps by more than one step.
		cur := math.Abs(math.Sin(b.Phase()))
		if math.Abs(cur-math.Abs(prev)) > config.BlinkSpeed+1e-9 {
			t.Fatalf("brightness jumped from %v to %v", prev, cur)
		}
		prev = cur
	}

	b.Stop()
	if b.Active() {
		t.Fatalf("stopped blink still active")
	}
}

func TestBlinkTint(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 0, A: 255}
	var b Blink
	if got := b.Tint(c); got != c {
		t.Fatalf("inactive tint changed the color: %v", got)
	}

	b.Start()
	if got := b.Tint(c); got != c {
		t.Fatalf("tint at phase 0 = %v, want unchanged", got)
	}

	// Drive the phase close to π/2 for peak brightness.
	for b.Phase() < math.Pi/2-config.BlinkSpeed {
		b.Advance()
	}
	got := b.Tint(c)
	if got.R != 255 {
		t.Fatalf("red channel must saturate, got %d", got.R)
	}
	if got.G <= c.G || got.G > 200 {
		t.Fatalf("green channel = %d, want within (100, 200]", got.G)
	}
	if got.B != 0 || got.A != 255 {
		t.Fatalf("zero channel or alpha changed: %v", got)
	}
}

func TestRectMidBottom(t *testing.T) {
	r := NewRect(60, 40)
	r.SetMidBottom(Point{X: 133, Y: 500})
	if r.X != 103 || r.Y != 460 {
		t.Fatalf("rect = %+v", r)
	}
	if r.MidBottom() != (Point{X: 133, Y: 500}) {
		t.Fatalf("mid-bottom = %+v", r.MidBottom())
	}
	if r.MidTop() != (Point{X: 133, Y: 460}) {
		t.Fatalf("mid-top = %+v", r.MidTop())
	}
	if !r.Contains(Point{X: 103, Y: 460}) || r.Contains(Point{X: 163, Y: 480}) {
		t.Fatalf("contains edges are wrong")
	}
	in := r.Inset(4)
	if in.Center() != r.Center() || in.W != 52 || in.H != 32 {
		t.Fatalf("inset = %+v", in)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#f44336")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != (color.RGBA{R: 0xf4, G: 0x43, B: 0x36, A: 255}) {
		t.Fatalf("color = %v", c)
	}
	if _, err := ParseHex("not a color"); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestShade(t *testing.T) {
	got := Shade(color.RGBA{R: 200, G: 101, B: 0, A: 255}, 0.5)
	if got != (color.RGBA{R: 100, G: 50, B: 0, A: 255}) {
		t.Fatalf("shade = %v", got)
	}
}
