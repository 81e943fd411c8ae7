package hanoi

import (
	"image/color"
	"math"

	"github.com/iburimskiy/hanoi/internal/config"
	"github.com/iburimskiy/hanoi/internal/shape"
)

// Phase is a stage of the disk flight animation.
type Phase int

const (
	Idle Phase = iota
	Starting
	Flying
	Landing
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Starting:
		return "starting"
	case Flying:
		return "flying"
	case Landing:
		return "landing"
	default:
		return "unknown"
	}
}

type flight struct {
	phase Phase
	start shape.Point
	land  shape.Point
	fly   shape.Point
	angle float64
	delta float64
}

// Disk is a blinkable rounded rectangle that can fly between towers.
type Disk struct {
	Rect  shape.Rect
	Color color.RGBA
	Blink shape.Blink

	flight *flight
}

func NewDisk(width, height float64, c color.RGBA) *Disk {
	return &Disk{
		Rect:  shape.NewRect(width, height),
		Color: c,
	}
}

func (d *Disk) Width() float64 { return d.Rect.W }

func (d *Disk) ContainsPoint(p shape.Point) bool { return d.Rect.Contains(p) }

// Move starts the flight animation. start, land and fly are mid-bottom points:
// the disk rises from start to the height of fly, arcs over to land.X and
// drops onto land. Calls made while the disk is already moving are ignored.
func (d *Disk) Move(start, land, fly shape.Point) {
	if d.IsMoving() {
		return
	}
	d.Rect.SetMidBottom(start)
	d.flight = &flight{
		phase: Starting,
		start: start,
		land:  land,
		fly:   fly,
	}
}

func (d *Disk) IsMoving() bool { return d.flight != nil }

// Phase reports the current animation stage.
func (d *Disk) Phase() Phase {
	if d.flight == nil {
		return Idle
	}
	return d.flight.phase
}

// Update advances the blink effect and the flight animation by one frame.
func (d *Disk) Update() {
	d.Blink.Advance()
	if d.flight == nil {
		return
	}

	f := d.flight
	switch f.phase {
	case Starting:
		d.Rect.Y -= config.MoveSpeed
		if d.Rect.Bottom() <= f.fly.Y {
			d.Rect.SetMidBottom(f.fly)
			dx := f.start.X - f.land.X
			if dx == 0 {
				d.Rect.SetCenterX(f.land.X)
				f.phase = Landing
				return
			}
			f.delta = 2 * config.MoveSpeed / dx
			if f.delta > 0 {
				f.angle = 0
			} else {
				f.angle = math.Pi
			}
			f.phase = Flying
		}

	case Flying:
		f.angle += f.delta
		radius := math.Abs(f.start.X-f.land.X) / 2
		x0 := (f.start.X + f.land.X) / 2
		d.Rect.SetCenterX(radius*math.Cos(f.angle) + x0)
		d.Rect.SetBottom(f.fly.Y - radius*math.Sin(f.angle)/2)

		if (f.delta > 0 && f.angle >= math.Pi) || (f.delta < 0 && f.angle <= 0) {
			d.Rect.SetCenterX(f.land.X)
			d.Rect.SetBottom(f.fly.Y)
			f.phase = Landing
		}

	case Landing:
		d.Rect.Y += config.MoveSpeed
		if d.Rect.Bottom() >= f.land.Y {
			d.Rect.SetMidBottom(f.land)
			d.flight = nil
		}
	}
}
