package hanoi

import (
	"slices"

	"github.com/iburimskiy/hanoi/internal/shape"
)

// Tower is a rod with a stack of disks, bottom to top. Disk widths strictly
// decrease upwards because Put refuses anything else.
type Tower struct {
	Rod   shape.Rect
	disks []*Disk
}

func NewTower(width, height float64) *Tower {
	return &Tower{Rod: shape.NewRect(width, height)}
}

// CanPut reports whether d may be placed on top of the tower.
func (t *Tower) CanPut(d *Disk) bool {
	top, ok := t.Peep()
	if !ok {
		return true
	}
	return top.Width() > d.Width() && !t.Contains(d)
}

// Put places d on the top of the tower if allowed.
func (t *Tower) Put(d *Disk) bool {
	if !t.CanPut(d) {
		return false
	}
	d.Rect.SetMidBottom(t.PeakPoint())
	t.disks = append(t.disks, d)
	return true
}

// Get removes and returns the top disk. ok is false for an empty tower.
func (t *Tower) Get() (d *Disk, ok bool) {
	if len(t.disks) == 0 {
		return nil, false
	}
	d = t.disks[len(t.disks)-1]
	t.disks[len(t.disks)-1] = nil
	t.disks = t.disks[:len(t.disks)-1]
	return d, true
}

// Peep returns the top disk without removing it.
func (t *Tower) Peep() (*Disk, bool) {
	if len(t.disks) == 0 {
		return nil, false
	}
	return t.disks[len(t.disks)-1], true
}

// PeakPoint is where the mid-bottom of the next disk lands.
func (t *Tower) PeakPoint() shape.Point {
	if top, ok := t.Peep(); ok {
		return top.Rect.MidTop()
	}
	return t.Rod.MidBottom()
}

// ContainsPoint hit-tests the rod and every disk on it.
func (t *Tower) ContainsPoint(p shape.Point) bool {
	if t.Rod.Contains(p) {
		return true
	}
	for _, d := range t.disks {
		if d.ContainsPoint(p) {
			return true
		}
	}
	return false
}

func (t *Tower) Contains(d *Disk) bool { return slices.Contains(t.disks, d) }

func (t *Tower) Len() int { return len(t.disks) }

// Disks returns a copy of the stack, bottom to top.
func (t *Tower) Disks() []*Disk { return slices.Clone(t.disks) }
