// Package hanoi implements the Tower of Hanoi rules, the disk flight
// animation and the solver, independent of any rendering backend.
package hanoi

import (
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/hanoi/internal/config"
	"github.com/iburimskiy/hanoi/internal/shape"
)

// Listener receives puzzle events. Every method is called from Update or
// SelectTower on the game goroutine.
type Listener interface {
	DiskSelected(d *Disk)
	DiskLaunched(d *Disk, from, to int)
	DiskLanded(d *Disk, steps int)
	PuzzleSolved(steps int)
}

// Cursor is the pointer feedback for whatever lies under it.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorNotAllowed
)

// Puzzle owns the whole game state: towers, disks, the current selection,
// pending autoplay moves and the step counter.
//
// Selection goes NoSelection -> DiskSelected -> Moving -> NoSelection. A disk
// is selected while it still sits on its source tower; choosing a target
// lifts it and starts the flight, and the placement happens in Update once
// the flight is over.
type Puzzle struct {
	towers []*Tower
	disks  []*Disk

	selected *Disk
	target   *Tower
	pending  []Move

	steps  int
	frames int

	hover    shape.Point
	hovering bool

	listener Listener
}

// NewPuzzle builds a puzzle in its initial state. l may be nil.
func NewPuzzle(l Listener) *Puzzle {
	p := &Puzzle{listener: l}
	p.Reset()
	return p
}

// Reset discards every disk and tower and stacks fresh disks on the first
// tower. Any flight, selection or autoplay in progress is abandoned.
func (p *Puzzle) Reset() {
	n := config.DisksCount
	p.disks = make([]*Disk, 0, n)
	for i := n - 1; i >= 0; i-- {
		p.disks = append(p.disks, NewDisk(
			float64(config.MinSize*(i+3)),
			2*config.MinSize,
			shape.MustHex(config.DiskColors[i]),
		))
	}

	rodHeight := float64(n)*p.disks[0].Rect.H + config.MinSize
	p.towers = make([]*Tower, config.TowersCount)
	for i := range p.towers {
		t := NewTower(config.MinSize, rodHeight)
		t.Rod.SetCenterX(float64(int(config.WindowWidth / float64(config.TowersCount) * (float64(i) + 0.5))))
		t.Rod.SetBottom(config.WindowHeight - 5*config.MinSize)
		p.towers[i] = t
	}
	for _, d := range p.disks {
		p.towers[0].Put(d)
	}

	p.selected = nil
	p.target = nil
	p.pending = nil
	p.steps = 0
	p.frames = 0
}

// Solve restarts the puzzle and queues the optimal solution for autoplay.
func (p *Puzzle) Solve() {
	p.Reset()
	last := len(p.towers) - 1
	p.pending = slices.Collect(Solve(len(p.disks), 0, last, 1))
	log.Info().Int("moves", len(p.pending)).Msg("autoplay queued")
}

// SelectTower feeds a tower selection into the state machine. An out of
// range index stands for "nothing under the pointer".
func (p *Puzzle) SelectTower(i int) {
	p.selectTower(p.tower(i))
}

// SelectAt selects whatever tower lies under pt.
func (p *Puzzle) SelectAt(pt shape.Point) {
	t, _ := p.TowerAt(pt)
	p.selectTower(t)
}

func (p *Puzzle) selectTower(t *Tower) {
	var top *Disk
	if t != nil {
		top, _ = t.Peep()
	}

	switch {
	case p.selected != nil && p.selected == top && p.target == nil:
		p.deselect()

	case p.selected == nil:
		if top == nil {
			return
		}
		if !top.Blink.Active() {
			top.Blink.Start()
		}
		p.selected = top
		if p.listener != nil {
			p.listener.DiskSelected(top)
		}

	case p.target == nil:
		if t != nil && t.CanPut(p.selected) {
			p.target = t
			p.launch()
		}
	}
}

// Cancel drops the current selection unless the disk is already in flight.
// It also stops autoplay.
func (p *Puzzle) Cancel() {
	if p.target == nil {
		p.deselect()
	}
	p.pending = nil
}

func (p *Puzzle) deselect() {
	if p.selected == nil {
		return
	}
	// Keep blinking while the pointer still rests on the disk.
	if !p.hovering || !p.selected.ContainsPoint(p.hover) {
		p.selected.Blink.Stop()
	}
	p.selected = nil
}

func (p *Puzzle) launch() {
	from := -1
	var source *Tower
	for i, t := range p.towers {
		if top, ok := t.Peep(); ok && top == p.selected {
			t.Get()
			from, source = i, t
			break
		}
	}
	if source == nil {
		// The selected disk is always the top of some tower.
		p.selected, p.target = nil, nil
		return
	}

	d := p.selected
	d.Blink.Stop()
	d.Move(d.Rect.MidBottom(), p.target.PeakPoint(), source.Rod.MidTop())
	if p.listener != nil {
		p.listener.DiskLaunched(d, from, p.indexOf(p.target))
	}
}

// Update runs one frame: it completes a finished flight, feeds the next
// autoplay move and advances every animation.
func (p *Puzzle) Update() {
	if p.selected != nil && p.target != nil && !p.selected.IsMoving() {
		d := p.selected
		p.target.Put(d)
		p.selected, p.target = nil, nil
		p.steps++
		if p.listener != nil {
			p.listener.DiskLanded(d, p.steps)
		}
		if p.Solved() {
			log.Info().Int("steps", p.steps).Msg("puzzle solved")
			if p.listener != nil {
				p.listener.PuzzleSolved(p.steps)
			}
		}
	}

	if p.selected == nil && len(p.pending) > 0 {
		m := p.pending[0]
		p.pending = p.pending[1:]
		p.SelectTower(m.From)
		if p.selected != nil {
			p.SelectTower(m.To)
		}
		if p.target == nil {
			log.Warn().Stringer("move", m).Msg("autoplay move rejected, autoplay stopped")
			p.deselect()
			p.pending = nil
		}
	}

	for _, d := range p.disks {
		d.Update()
	}

	if !p.Solved() {
		p.frames++
	}
}

// Hover records the pointer position and, while nothing is selected, blinks
// the top disk under it.
func (p *Puzzle) Hover(pt shape.Point) {
	p.hover = pt
	p.hovering = true
	if p.selected != nil {
		return
	}
	top, _ := p.TopDiskAt(pt)
	for _, d := range p.disks {
		if d == top {
			if !d.Blink.Active() {
				d.Blink.Start()
			}
			continue
		}
		d.Blink.Stop()
	}
}

// HoverCursor tells which pointer shape fits the tower under pt.
func (p *Puzzle) HoverCursor(pt shape.Point) Cursor {
	t, ok := p.TowerAt(pt)
	if !ok {
		return CursorDefault
	}
	top, hasTop := t.Peep()
	if p.selected != nil {
		if top == p.selected || t.CanPut(p.selected) {
			return CursorPointer
		}
		return CursorNotAllowed
	}
	if hasTop {
		return CursorPointer
	}
	return CursorDefault
}

// TowerAt returns the tower whose rod or disks cover pt.
func (p *Puzzle) TowerAt(pt shape.Point) (*Tower, bool) {
	for _, t := range p.towers {
		if t.ContainsPoint(pt) {
			return t, true
		}
	}
	return nil, false
}

// TopDiskAt returns the top disk of the tower under pt.
func (p *Puzzle) TopDiskAt(pt shape.Point) (*Disk, bool) {
	t, ok := p.TowerAt(pt)
	if !ok {
		return nil, false
	}
	return t.Peep()
}

// Solved reports whether the last tower holds every disk.
func (p *Puzzle) Solved() bool {
	return p.towers[len(p.towers)-1].Len() == len(p.disks)
}

func (p *Puzzle) Steps() int { return p.steps }

// Elapsed is the frame-paced play time since the last reset.
func (p *Puzzle) Elapsed() time.Duration {
	return time.Duration(p.frames) * time.Second / config.FPS
}

func (p *Puzzle) Selected() (*Disk, bool) { return p.selected, p.selected != nil }
func (p *Puzzle) Target() (*Tower, bool)  { return p.target, p.target != nil }

// Moving reports whether a disk is in flight towards its target.
func (p *Puzzle) Moving() bool { return p.selected != nil && p.target != nil }

// Autoplaying reports whether solver moves are still queued.
func (p *Puzzle) Autoplaying() bool { return len(p.pending) > 0 }

// Pending returns a copy of the queued autoplay moves.
func (p *Puzzle) Pending() []Move { return slices.Clone(p.pending) }

func (p *Puzzle) Towers() []*Tower { return p.towers }
func (p *Puzzle) Disks() []*Disk   { return p.disks }

func (p *Puzzle) Tower(i int) (*Tower, bool) {
	t := p.tower(i)
	return t, t != nil
}

func (p *Puzzle) tower(i int) *Tower {
	if i < 0 || i >= len(p.towers) {
		return nil
	}
	return p.towers[i]
}

func (p *Puzzle) indexOf(t *Tower) int {
	return slices.Index(p.towers, t)
}
