package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/hanoi/internal/hanoi"
	"github.com/iburimskiy/hanoi/internal/shape"
)

type action int

const (
	actionNone action = iota
	actionHelp
	actionSolve
	actionReset
	actionQuit
	actionFullscreen
	actionCancel
	actionMute
)

var actionKeys = map[ebiten.Key]action{
	ebiten.KeyF1:     actionHelp,
	ebiten.KeyF2:     actionSolve,
	ebiten.KeyF3:     actionReset,
	ebiten.KeyF4:     actionQuit,
	ebiten.KeyF11:    actionFullscreen,
	ebiten.KeyEscape: actionCancel,
	ebiten.KeyM:      actionMute,
}

// towerKeys[i] selects tower i.
var towerKeys = [][]ebiten.Key{
	{ebiten.KeyDigit1, ebiten.KeyNumpad1},
	{ebiten.KeyDigit2, ebiten.KeyNumpad2},
	{ebiten.KeyDigit3, ebiten.KeyNumpad3},
	{ebiten.KeyDigit4, ebiten.KeyNumpad4},
	{ebiten.KeyDigit5, ebiten.KeyNumpad5},
	{ebiten.KeyDigit6, ebiten.KeyNumpad6},
	{ebiten.KeyDigit7, ebiten.KeyNumpad7},
	{ebiten.KeyDigit8, ebiten.KeyNumpad8},
	{ebiten.KeyDigit9, ebiten.KeyNumpad9},
}

// towerForKey maps a digit key to a tower index below count.
func towerForKey(k ebiten.Key, count int) (int, bool) {
	for i, keys := range towerKeys {
		if i >= count {
			break
		}
		for _, tk := range keys {
			if tk == k {
				return i, true
			}
		}
	}
	return 0, false
}

// Overridden in tests.
var (
	cursorPosition    = ebiten.CursorPosition
	appendJustPressed = inpututil.AppendJustPressedKeys
	mouseJustReleased = func() bool { return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) }
	mousePressed      = func() bool { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }
	windowClosing     = ebiten.IsWindowBeingClosed
	setCursorShape    = ebiten.SetCursorShape
)

func cursorPoint() shape.Point {
	x, y := cursorPosition()
	return shape.Point{X: float64(x), Y: float64(y)}
}

func cursorShape(c hanoi.Cursor) ebiten.CursorShapeType {
	switch c {
	case hanoi.CursorPointer:
		return ebiten.CursorShapePointer
	case hanoi.CursorNotAllowed:
		return ebiten.CursorShapeNotAllowed
	default:
		return ebiten.CursorShapeDefault
	}
}
