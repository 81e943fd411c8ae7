// Package shape holds the drawable geometry shared by every on-screen entity
// and the blink effect that can be attached to any of them.
package shape

// Point is a screen coordinate.
type Point struct {
	X, Y float64
}

// Rect is an axis aligned rectangle with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

func NewRect(w, h float64) Rect {
	return Rect{W: w, H: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

func (r Rect) MidBottom() Point { return Point{X: r.CenterX(), Y: r.Bottom()} }
func (r Rect) MidTop() Point    { return Point{X: r.CenterX(), Y: r.Top()} }
func (r Rect) Center() Point    { return Point{X: r.CenterX(), Y: r.CenterY()} }

func (r *Rect) SetCenterX(x float64) { r.X = x - r.W/2 }
func (r *Rect) SetBottom(y float64)  { r.Y = y - r.H }
func (r *Rect) SetTop(y float64)     { r.Y = y }

func (r *Rect) SetMidBottom(p Point) {
	r.SetCenterX(p.X)
	r.SetBottom(p.Y)
}

func (r *Rect) SetCenter(p Point) {
	r.SetCenterX(p.X)
	r.Y = p.Y - r.H/2
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Inset shrinks r by d on every side keeping its center.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}
