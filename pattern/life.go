// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pattern

import (
	"math/rand/v2"

	"github.com/gogpu/lcd"
)

// Life plays Conway's Game of Life on a bounded board. Cells beyond the
// edges count as dead; the board does not wrap around.
type Life struct {
	cur, next  *lcd.Bitmap
	generation int
}

// NewLife returns a game seeded with a random board. A nil rng uses a
// randomly seeded generator.
func NewLife(rows, cols int, rng *rand.Rand) (*Life, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	return NewLifeFrom(randomBitmap(rows, cols, newRand(rng)))
}

// NewLifeFrom returns a game starting from a copy of seed.
func NewLifeFrom(seed *lcd.Bitmap) (*Life, error) {
	if err := checkShape(seed.Rows(), seed.Cols()); err != nil {
		return nil, err
	}
	return &Life{
		cur:  seed.Clone(),
		next: lcd.NewBitmap(seed.Rows(), seed.Cols()),
	}, nil
}

// Next implements Source. It returns the current board and then advances
// the game by one generation.
func (l *Life) Next() (*lcd.Bitmap, error) {
	bm := l.cur.Clone()
	l.Step()
	return bm, nil
}

// Shape implements Source.
func (l *Life) Shape() (rows, cols int) { return l.cur.Rows(), l.cur.Cols() }

// Board returns a copy of the current board.
func (l *Life) Board() *lcd.Bitmap { return l.cur.Clone() }

// Generation returns how many steps have run.
func (l *Life) Generation() int { return l.generation }

// Step advances the game by one generation. A live cell with two or three
// live neighbours survives; a dead cell with exactly three becomes live.
func (l *Life) Step() {
	rows, cols := l.cur.Rows(), l.cur.Cols()
	for r := range rows {
		for c := range cols {
			n := l.Neighbours(r, c)
			if l.cur.At(r, c) {
				l.next.Set(r, c, n == 2 || n == 3)
			} else {
				l.next.Set(r, c, n == 3)
			}
		}
	}
	l.cur, l.next = l.next, l.cur
	l.generation++
}

// Neighbours counts the live cells among the up to eight cells around
// (r, c).
func (l *Life) Neighbours(r, c int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if (dr != 0 || dc != 0) && l.cur.At(r+dr, c+dc) {
				n++
			}
		}
	}
	return n
}
