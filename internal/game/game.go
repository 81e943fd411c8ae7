// Package game runs the puzzle inside an ebiten window: input, drawing,
// transitions and sound cues.
package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/hanoi/internal/anim"
	"github.com/iburimskiy/hanoi/internal/config"
	"github.com/iburimskiy/hanoi/internal/hanoi"
	"github.com/iburimskiy/hanoi/internal/shape"
	"github.com/iburimskiy/hanoi/internal/sound"
)

type palette struct {
	background color.RGBA
	rod        color.RGBA
	text       color.RGBA
	button     color.RGBA
	buttonText color.RGBA
	victory    color.RGBA
}

func loadPalette() (palette, error) {
	var p palette
	for _, c := range []struct {
		dst *color.RGBA
		hex string
	}{
		{&p.background, config.ColorBackground},
		{&p.rod, config.ColorRod},
		{&p.text, config.ColorText},
		{&p.button, config.ColorButton},
		{&p.buttonText, config.ColorButtonText},
		{&p.victory, config.ColorVictory},
	} {
		v, err := shape.ParseHex(c.hex)
		if err != nil {
			return palette{}, err
		}
		*c.dst = v
	}
	return p, nil
}

type Game struct {
	puzzle *hanoi.Puzzle
	sound  *sound.Player

	colors  palette
	buttons []*Button
	bar     shape.Rect
	steps   *label
	timer   *label
	victory *label
	help    []*label

	fade   *anim.Fader
	banner *anim.Pop

	showHelp bool
	quitting bool
	done     bool
	cursor   ebiten.CursorShapeType
	lastPos  shape.Point
	keys     []ebiten.Key
	canvas   *ebiten.Image
}

// New builds the game. player may be nil for a silent game.
func New(player *sound.Player) (*Game, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}
	colors, err := loadPalette()
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}

	g := &Game{
		sound:  player,
		colors: colors,
		fade:   anim.NewFader(),
		banner: anim.NewPop(),
		cursor: ebiten.CursorShapeDefault,
	}
	g.puzzle = hanoi.NewPuzzle(g)

	g.bar = shape.NewRect(config.WindowWidth-2*config.MinSize, 2*config.MinSize)
	g.bar.SetCenterX(config.WindowWidth / 2)
	tower, _ := g.puzzle.Tower(0)
	g.bar.SetTop(tower.Rod.Bottom())

	captions := []struct {
		text string
		act  action
	}{
		{config.ButtonHelp, actionHelp},
		{config.ButtonSolve, actionSolve},
		{config.ButtonReset, actionReset},
		{config.ButtonQuit, actionQuit},
	}
	for i, r := range layoutButtons(len(captions)) {
		act := captions[i].act
		g.buttons = append(g.buttons, &Button{
			Rect:    r,
			Color:   colors.button,
			Caption: newLabel(captions[i].text, f.button, colors.buttonText),
			OnClick: func() { g.do(act) },
		})
	}

	g.steps = newLabel(config.CounterPrefix+"0", f.basic, colors.text)
	g.steps.Rect.X, g.steps.Rect.Y = config.MinSize, config.MinSize
	g.timer = newLabel(config.TimerPrefix+formatDuration(0), f.basic, colors.text)
	g.timer.Rect.Y = config.MinSize

	g.victory = newLabel(config.VictoryText, f.victory, colors.victory)
	g.victory.Rect.SetCenterX(config.WindowWidth / 2)
	g.victory.Rect.SetTop(3 * config.MinSize)

	for i, line := range config.HelpLines {
		if line == "" {
			continue
		}
		l := newLabel(line, f.help, colors.text)
		l.Rect.SetCenterX(config.WindowWidth / 2)
		l.Rect.SetTop(float64(2 * config.MinSize * (i + 1)))
		g.help = append(g.help, l)
	}

	log.Info().Int("disks", config.DisksCount).Int("towers", config.TowersCount).Msg("puzzle ready")
	return g, nil
}

func (g *Game) Update() error {
	if g.done {
		return ebiten.Termination
	}
	if windowClosing() {
		g.do(actionQuit)
	}

	g.fade.Update()
	if g.done {
		return ebiten.Termination
	}

	// Input waits for transitions to finish.
	if !g.fade.Active() {
		if g.showHelp {
			g.updateHelp()
		} else {
			g.handlePointer()
			g.handleKeys()
		}
	}

	if !g.showHelp {
		g.puzzle.Update()
		for _, b := range g.buttons {
			b.Update()
		}
		g.banner.Update(g.puzzle.Solved())
		g.steps.SetText(fmt.Sprintf("%s%d", config.CounterPrefix, g.puzzle.Steps()))
		g.timer.SetText(config.TimerPrefix + formatDuration(g.puzzle.Elapsed()))
		g.timer.Rect.X = config.WindowWidth - config.MinSize - g.timer.Rect.W
	}
	return nil
}

func (g *Game) handlePointer() {
	pt := cursorPoint()
	pressed := mousePressed()

	if pt != g.lastPos {
		g.lastPos = pt
		g.puzzle.Hover(pt)
	}

	next := cursorShape(g.puzzle.HoverCursor(pt))
	for _, b := range g.buttons {
		if b.Hover(pt) {
			next = ebiten.CursorShapePointer
		}
		b.pressed = pressed && b.ContainsPoint(pt)
	}
	g.setCursor(next)

	if !mouseJustReleased() {
		return
	}
	g.puzzle.SelectAt(pt)
	for _, b := range g.buttons {
		if b.ContainsPoint(pt) && b.OnClick != nil {
			b.OnClick()
		}
	}
}

func (g *Game) handleKeys() {
	g.keys = appendJustPressed(g.keys[:0])
	for _, k := range g.keys {
		if a, ok := actionKeys[k]; ok {
			g.do(a)
			continue
		}
		if i, ok := towerForKey(k, len(g.puzzle.Towers())); ok {
			g.puzzle.SelectTower(i)
		}
	}
}

func (g *Game) updateHelp() {
	g.keys = appendJustPressed(g.keys[:0])
	if len(g.keys) == 0 && !mouseJustReleased() {
		return
	}
	g.transition(func() { g.showHelp = false })
}

func (g *Game) do(a action) {
	switch a {
	case actionHelp:
		g.transition(func() { g.showHelp = true })
	case actionSolve:
		g.transition(func() {
			g.banner.Reset()
			g.puzzle.Solve()
		})
	case actionReset:
		g.transition(func() {
			g.banner.Reset()
			g.puzzle.Reset()
			log.Info().Msg("puzzle reset")
		})
	case actionQuit:
		if g.quitting {
			return
		}
		g.quitting = true
		log.Info().Int("steps", g.puzzle.Steps()).Msg("quitting")
		// Overrides any transition in progress.
		g.fade.Out(func() { g.done = true })
	case actionFullscreen:
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	case actionCancel:
		g.puzzle.Cancel()
	case actionMute:
		muted := g.sound.ToggleMute()
		log.Info().Bool("muted", muted).Msg("sound toggled")
	}
}

// transition hides the screen, runs fn and shows the screen again.
func (g *Game) transition(fn func()) {
	g.fade.Out(func() {
		fn()
		g.fade.In()
	})
}

func (g *Game) setCursor(c ebiten.CursorShapeType) {
	if g.cursor == c {
		return
	}
	g.cursor = c
	setCursorShape(c)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.colors.background)
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(config.WindowWidth, config.WindowHeight)
	}
	g.canvas.Fill(g.colors.background)
	if g.showHelp {
		g.drawHelp(g.canvas)
	} else {
		g.drawScene(g.canvas)
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(g.fade.Alpha())
	screen.DrawImage(g.canvas, op)
}

func (g *Game) drawScene(dst *ebiten.Image) {
	drawRoundedRect(dst, g.bar, g.colors.rod, nil, false)
	for _, t := range g.puzzle.Towers() {
		drawTower(dst, t, g.colors.rod)
	}
	for _, d := range g.puzzle.Disks() {
		drawDisk(dst, d)
	}
	for _, b := range g.buttons {
		b.Draw(dst)
	}
	g.steps.Draw(dst)
	g.timer.Draw(dst)
	if g.banner.Visible() {
		g.victory.DrawScaled(dst, g.banner.Scale())
	}
}

func (g *Game) drawHelp(dst *ebiten.Image) {
	for _, l := range g.help {
		l.Draw(dst)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// hanoi.Listener

func (g *Game) DiskSelected(*hanoi.Disk) {
	g.sound.Play(sound.CueSelect)
}

func (g *Game) DiskLaunched(d *hanoi.Disk, from, to int) {
	log.Debug().Float64("width", d.Width()).Int("from", from+1).Int("to", to+1).Msg("disk launched")
}

func (g *Game) DiskLanded(d *hanoi.Disk, steps int) {
	log.Debug().Float64("width", d.Width()).Int("steps", steps).Msg("disk landed")
	g.sound.Play(sound.CueLand)
}

func (g *Game) PuzzleSolved(steps int) {
	g.sound.Play(sound.CueVictory)
}
