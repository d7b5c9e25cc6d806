// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/gogpu/lcd"
)

// SVG shows a vector image scaled to the screen. Dark shapes become lit
// dots.
type SVG struct {
	bm *lcd.Bitmap
}

// NewSVG reads an SVG document and rasterizes it once at the screen's
// resolution, scale pixels per dot in each direction. A scale below 1 is
// treated as 1.
func NewSVG(rows, cols int, r io.Reader, scale int) (*SVG, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("pattern: read svg: %w", err)
	}

	scale = max(scale, 1)
	w, h := cols*scale, rows*scale
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	bm, err := lcd.BitmapFromImage(img, rows, cols, threshold)
	if err != nil {
		return nil, err
	}
	return &SVG{bm: bm}, nil
}

// Next implements Source.
func (s *SVG) Next() (*lcd.Bitmap, error) { return s.bm.Clone(), nil }

// Shape implements Source.
func (s *SVG) Shape() (rows, cols int) { return s.bm.Rows(), s.bm.Cols() }
