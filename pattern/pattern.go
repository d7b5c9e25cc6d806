// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pattern provides bitmap sources to show on a simulated LCD screen.
//
// Every source produces bitmaps of a fixed shape, one per frame:
//
//	src := pattern.NewLife(65, 120, nil)
//	for {
//	    bm, err := src.Next()
//	    ...
//	    screen.DrawBitmap(bm)
//	}
//
// Sources are not safe for concurrent use.
package pattern

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/gogpu/lcd"
)

// ErrShape is returned when a source is created with a non-positive size.
var ErrShape = errors.New("pattern: rows and cols must be positive")

// Source produces the bitmap for each frame.
type Source interface {
	// Next returns the bitmap for the next frame. The caller may keep it;
	// later calls do not modify it.
	Next() (*lcd.Bitmap, error)

	// Shape returns the rows and columns of every bitmap.
	Shape() (rows, cols int)
}

func checkShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrShape, rows, cols)
	}
	return nil
}

// newRand returns r, or a randomly seeded generator when r is nil.
func newRand(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// blank is a source of all-off bitmaps.
type blank struct {
	bm *lcd.Bitmap
}

// Blank returns a source that always shows every dot off.
func Blank(rows, cols int) (Source, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	return &blank{bm: lcd.NewBitmap(rows, cols)}, nil
}

func (b *blank) Next() (*lcd.Bitmap, error) { return b.bm.Clone(), nil }

func (b *blank) Shape() (rows, cols int) { return b.bm.Rows(), b.bm.Cols() }

// Random is a source of uniformly random bitmaps.
type Random struct {
	rows, cols int
	rng        *rand.Rand
}

// NewRandom returns a source where every dot is on with probability 1/2 in
// every frame. A nil rng uses a randomly seeded generator.
func NewRandom(rows, cols int, rng *rand.Rand) (*Random, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	return &Random{rows: rows, cols: cols, rng: newRand(rng)}, nil
}

// Next implements Source.
func (r *Random) Next() (*lcd.Bitmap, error) {
	return randomBitmap(r.rows, r.cols, r.rng), nil
}

// Shape implements Source.
func (r *Random) Shape() (rows, cols int) { return r.rows, r.cols }

func randomBitmap(rows, cols int, rng *rand.Rand) *lcd.Bitmap {
	bm := lcd.NewBitmap(rows, cols)
	var bits uint64
	n := 0
	for row := range rows {
		for col := range cols {
			if n == 0 {
				bits, n = rng.Uint64(), 64
			}
			bm.Set(row, col, bits&1 == 1)
			bits >>= 1
			n--
		}
	}
	return bm
}
