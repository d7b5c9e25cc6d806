// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pattern

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/lcd"
)

// threshold is the luminance below which a rendered pixel turns a dot on.
const threshold = 0x8000

// Text shows a line of text, one pixel per dot, in the 7x13 fixed font.
// Text wider than the screen scrolls from right to left.
type Text struct {
	rows, cols int
	text       string
	face       font.Face
	width      int
	offset     int
	step       int
}

// NewText returns a text source. step is how many columns the text moves
// per frame when it scrolls; 0 keeps it still.
func NewText(rows, cols int, text string, step int) (*Text, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	face := basicfont.Face7x13
	return &Text{
		rows:  rows,
		cols:  cols,
		text:  text,
		face:  face,
		width: font.MeasureString(face, text).Ceil(),
		step:  max(step, 0),
	}, nil
}

// Next implements Source.
func (t *Text) Next() (*lcd.Bitmap, error) {
	x := 0
	if t.width > t.cols && t.step > 0 {
		// Enter from the right edge, leave past the left edge.
		span := t.cols + t.width
		x = t.cols - t.offset%span
		t.offset += t.step
	}
	return t.render(x)
}

// Shape implements Source.
func (t *Text) Shape() (rows, cols int) { return t.rows, t.cols }

func (t *Text) render(x int) (*lcd.Bitmap, error) {
	img := image.NewGray(image.Rect(0, 0, t.cols, t.rows))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	m := t.face.Metrics()
	// Center the line vertically.
	height := (m.Ascent + m.Descent).Ceil()
	baseline := (t.rows-height)/2 + m.Ascent.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: t.face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(t.text)
	return lcd.BitmapFromImage(img, t.rows, t.cols, threshold)
}
