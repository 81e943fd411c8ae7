package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/hanoi/internal/config"
	"github.com/iburimskiy/hanoi/internal/shape"
)

type fonts struct {
	basic   text.Face
	help    text.Face
	button  text.Face
	victory text.Face
}

func loadFonts() (fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fonts{}, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fonts{}, fmt.Errorf("load bold font: %w", err)
	}
	return fonts{
		basic:   &text.GoTextFace{Source: bold, Size: config.BasicFontSize},
		help:    &text.GoTextFace{Source: regular, Size: config.BasicFontSize},
		button:  &text.GoTextFace{Source: bold, Size: config.ButtonFontSize},
		victory: &text.GoTextFace{Source: bold, Size: config.VictoryFontSize},
	}, nil
}

// label is a line of text measured once per content change.
type label struct {
	Rect  shape.Rect
	text  string
	face  text.Face
	color color.RGBA
}

func newLabel(s string, face text.Face, c color.RGBA) *label {
	l := &label{face: face, color: c}
	l.SetText(s)
	return l
}

// SetText replaces the content and re-measures it, keeping the top-left
// corner in place.
func (l *label) SetText(s string) {
	if s == l.text && l.Rect.W > 0 {
		return
	}
	l.text = s
	w, h := text.Measure(s, l.face, 0)
	l.Rect.W, l.Rect.H = w, h
}

func (l *label) Draw(dst *ebiten.Image) {
	l.DrawScaled(dst, 1)
}

// DrawScaled draws the label scaled around its center.
func (l *label) DrawScaled(dst *ebiten.Image, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(-l.Rect.W/2, -l.Rect.H/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(l.Rect.CenterX(), l.Rect.CenterY())
	op.ColorScale.ScaleWithColor(l.color)
	text.Draw(dst, l.text, l.face, op)
}
