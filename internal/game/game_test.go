package game

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/hanoi/internal/config"
	"github.com/iburimskiy/hanoi/internal/shape"
)

func pressKeys(keys ...ebiten.Key) func() {
	old := appendJustPressed
	appendJustPressed = func(dst []ebiten.Key) []ebiten.Key { return append(dst, keys...) }
	return func() { appendJustPressed = old }
}

// pointer fakes the mouse and window for one test. released reports a left
// button release on every frame.
type pointer struct {
	x, y     int
	pressed  bool
	released bool
	closing  bool
	shape    ebiten.CursorShapeType
}

func fakePointer(p *pointer) func() {
	oldPos, oldReleased, oldPressed := cursorPosition, mouseJustReleased, mousePressed
	oldClosing, oldShape, oldKeys := windowClosing, setCursorShape, appendJustPressed
	cursorPosition = func() (int, int) { return p.x, p.y }
	mouseJustReleased = func() bool { return p.released }
	mousePressed = func() bool { return p.pressed }
	windowClosing = func() bool { return p.closing }
	setCursorShape = func(c ebiten.CursorShapeType) { p.shape = c }
	appendJustPressed = func(dst []ebiten.Key) []ebiten.Key { return dst }
	return func() {
		cursorPosition, mouseJustReleased, mousePressed = oldPos, oldReleased, oldPressed
		windowClosing, setCursorShape, appendJustPressed = oldClosing, oldShape, oldKeys
	}
}

func (p *pointer) moveTo(pt shape.Point) { p.x, p.y = int(pt.X), int(pt.Y) }

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(nil)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	for g.fade.Active() {
		g.fade.Update()
	}
	return g
}

func TestTowerForKey(t *testing.T) {
	cases := []struct {
		key   ebiten.Key
		tower int
		ok    bool
	}{
		{ebiten.KeyDigit1, 0, true},
		{ebiten.KeyNumpad2, 1, true},
		{ebiten.KeyDigit3, 2, true},
		{ebiten.KeyDigit4, 0, false},
		{ebiten.KeyA, 0, false},
	}
	for _, c := range cases {
		i, ok := towerForKey(c.key, config.TowersCount)
		if ok != c.ok || (ok && i != c.tower) {
			t.Fatalf("key %v: got %d,%v want %d,%v", c.key, i, ok, c.tower, c.ok)
		}
	}
}

func TestLayoutButtons(t *testing.T) {
	rects := layoutButtons(4)
	for i := range rects {
		if rects[i].Bottom() > config.WindowHeight {
			t.Fatalf("button %d below the window", i)
		}
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Right() > rects[j].Left() {
				t.Fatalf("buttons %d and %d overlap", i, j)
			}
		}
	}
}

func TestDigitKeysSelectTowers(t *testing.T) {
	g := newTestGame(t)
	defer pressKeys(ebiten.KeyDigit1)()
	g.handleKeys()
	if _, ok := g.puzzle.Selected(); !ok {
		t.Fatalf("digit 1 did not select the first tower")
	}
}

func TestResetKeyRunsAfterFadeOut(t *testing.T) {
	g := newTestGame(t)
	g.puzzle.SelectTower(0)
	g.puzzle.SelectTower(1)
	for g.puzzle.Moving() {
		g.puzzle.Update()
	}

	restore := pressKeys(ebiten.KeyF3)
	g.handleKeys()
	restore()
	if g.puzzle.Steps() != 1 {
		t.Fatalf("reset ran before the screen faded out")
	}
	for i := 0; g.fade.Active(); i++ {
		if i > 1000 {
			t.Fatalf("transition never finished")
		}
		g.fade.Update()
	}
	if g.puzzle.Steps() != 0 {
		t.Fatalf("reset did not run, steps=%d", g.puzzle.Steps())
	}
	if g.fade.Alpha() != 1 {
		t.Fatalf("screen not shown again, alpha=%v", g.fade.Alpha())
	}
}

func TestHelpKeyShowsHelp(t *testing.T) {
	g := newTestGame(t)
	restore := pressKeys(ebiten.KeyF1)
	g.handleKeys()
	restore()
	for g.fade.Active() {
		g.fade.Update()
	}
	if !g.showHelp {
		t.Fatalf("help screen not shown")
	}
	if len(g.help) == 0 {
		t.Fatalf("no help lines")
	}
}

func TestQuitKeyTerminates(t *testing.T) {
	g := newTestGame(t)
	restore := pressKeys(ebiten.KeyF4)
	g.handleKeys()
	restore()
	for g.fade.Active() {
		g.fade.Update()
	}
	if !g.done {
		t.Fatalf("quit did not finish")
	}
}

func TestClickSelectsTopDisk(t *testing.T) {
	ptr := &pointer{released: true}
	defer fakePointer(ptr)()
	g := newTestGame(t)

	tw, _ := g.puzzle.Tower(0)
	d, _ := tw.Peep()
	ptr.moveTo(d.Rect.Center())
	g.handlePointer()

	if got, ok := g.puzzle.Selected(); !ok || got != d {
		t.Fatalf("click did not select the top disk of the first tower")
	}
	if ptr.shape != ebiten.CursorShapePointer {
		t.Fatalf("cursor over the selected disk = %v", ptr.shape)
	}
}

func TestClickOnNothingKeepsState(t *testing.T) {
	ptr := &pointer{released: true}
	defer fakePointer(ptr)()
	g := newTestGame(t)

	ptr.moveTo(shape.Point{X: 1, Y: 1})
	g.handlePointer()
	if _, ok := g.puzzle.Selected(); ok {
		t.Fatalf("click on the background selected a disk")
	}
	if g.fade.Active() {
		t.Fatalf("click on the background started a transition")
	}
	if ptr.shape != ebiten.CursorShapeDefault {
		t.Fatalf("cursor over the background = %v", ptr.shape)
	}
}

func TestResetButtonRunsAfterFadeOut(t *testing.T) {
	ptr := &pointer{}
	defer fakePointer(ptr)()
	g := newTestGame(t)
	g.puzzle.SelectTower(0)
	g.puzzle.SelectTower(1)
	for g.puzzle.Moving() {
		g.puzzle.Update()
	}

	reset := g.buttons[2]
	if reset.Caption.text != config.ButtonReset {
		t.Fatalf("third button is %q", reset.Caption.text)
	}
	ptr.moveTo(reset.Rect.Center())
	ptr.released = true
	g.handlePointer()

	if !g.fade.Active() {
		t.Fatalf("reset button did not start a transition")
	}
	if g.puzzle.Steps() != 1 {
		t.Fatalf("reset ran before the screen faded out")
	}
	for i := 0; g.fade.Active(); i++ {
		if i > 1000 {
			t.Fatalf("transition never finished")
		}
		g.fade.Update()
	}
	if g.puzzle.Steps() != 0 {
		t.Fatalf("reset button did not reset, steps=%d", g.puzzle.Steps())
	}
}

func TestButtonHoverAndPress(t *testing.T) {
	ptr := &pointer{pressed: true}
	defer fakePointer(ptr)()
	g := newTestGame(t)

	b := g.buttons[0]
	ptr.moveTo(b.Rect.Center())
	g.handlePointer()
	if g.cursor != ebiten.CursorShapePointer || ptr.shape != ebiten.CursorShapePointer {
		t.Fatalf("cursor over a button = %v", g.cursor)
	}
	if !b.Blink.Active() || !b.pressed {
		t.Fatalf("hovered button: blink=%v pressed=%v", b.Blink.Active(), b.pressed)
	}
	for _, other := range g.buttons[1:] {
		if other.Blink.Active() || other.pressed {
			t.Fatalf("button %q reacts without the pointer", other.Caption.text)
		}
	}

	ptr.moveTo(shape.Point{X: 1, Y: 1})
	g.handlePointer()
	if g.cursor != ebiten.CursorShapeDefault || b.Blink.Active() || b.pressed {
		t.Fatalf("button state kept after the pointer left")
	}
}

func TestWindowCloseTerminates(t *testing.T) {
	ptr := &pointer{}
	defer fakePointer(ptr)()
	g := newTestGame(t)

	ptr.closing = true
	var err error
	for i := 0; err == nil; i++ {
		if i > 1000 {
			t.Fatalf("game never terminated")
		}
		err = g.Update()
		ptr.closing = false
	}
	if !errors.Is(err, ebiten.Termination) || !g.done {
		t.Fatalf("update returned %v, done=%v", err, g.done)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(125 * time.Second); got != "02:05" {
		t.Fatalf("got %q", got)
	}
}
