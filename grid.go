package lcd

import (
	"fmt"
	"image"
	"math"
	"math/bits"
)

// MaxWindowDimension is the largest window width or height, in pixels, a
// screen may have. Rendering backends address pixels with signed 32-bit
// coordinates.
const MaxWindowDimension = math.MaxInt32

// MaxDots is the largest number of dots a screen may have.
const MaxDots = 1 << 24

// Dot is one cell of the simulated display.
type Dot struct {
	// Rect is the dot's area on the canvas, in pixels.
	Rect image.Rectangle

	// On reports whether the dot currently shows the on color.
	On bool
}

// Grid is a fixed rows x cols arrangement of dots, stored row-major.
//
// A Grid is created by the Screen and never resized. Its rectangles tile the
// window exactly: dot (r, c) covers [c*dw, c*dw+dw) x [r*dh, r*dh+dh).
type Grid struct {
	rows, cols int
	dotW, dotH int
	dots       []Dot
}

// mulDim returns a*b when both are positive, saturating at MaxUint64.
// Non-positive factors yield 0.
func mulDim(a, b int) uint64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// CheckGeometry validates that a grid of rows x cols dots, each
// dotWidth x dotHeight pixels, fits in a window. It returns the window size
// in pixels, or a *WindowWidthError, *WindowHeightError or *DotCountError.
func CheckGeometry(rows, cols, dotWidth, dotHeight int) (width, height int, err error) {
	w := mulDim(cols, dotWidth)
	if w < 1 || w > MaxWindowDimension {
		return 0, 0, &WindowWidthError{Width: w, Cols: cols, DotWidth: dotWidth}
	}
	h := mulDim(rows, dotHeight)
	if h < 1 || h > MaxWindowDimension {
		return 0, 0, &WindowHeightError{Height: h, Rows: rows, DotHeight: dotHeight}
	}
	if n := mulDim(rows, cols); n > MaxDots {
		return 0, 0, &DotCountError{Dots: n, Rows: rows, Cols: cols}
	}
	return int(w), int(h), nil
}

// newGrid builds the dots for a geometry already accepted by CheckGeometry.
func newGrid(rows, cols, dotW, dotH int) *Grid {
	g := &Grid{
		rows: rows,
		cols: cols,
		dotW: dotW,
		dotH: dotH,
		dots: make([]Dot, rows*cols),
	}
	bounds := g.Bounds()
	for r := range rows {
		for c := range cols {
			x, y := c*dotW, r*dotH
			rect := image.Rect(x, y, x+dotW, y+dotH)
			if !rect.In(bounds) {
				panic(fmt.Sprintf("lcd: dot (%d, %d) at %v lies outside %v; this cannot happen if the validated geometry holds",
					r, c, rect, bounds))
			}
			g.dots[r*cols+c] = Dot{Rect: rect}
		}
	}
	return g
}

// Rows returns the number of dot rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of dot columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of dots.
func (g *Grid) Len() int { return len(g.dots) }

// DotSize returns the pixel size of a single dot.
func (g *Grid) DotSize() (width, height int) { return g.dotW, g.dotH }

// Bounds returns the pixel area covered by the grid.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.cols*g.dotW, g.rows*g.dotH)
}

// At returns a copy of the dot at row r, column c.
// It panics if r or c is out of range.
func (g *Grid) At(r, c int) Dot {
	return g.dots[g.index(r, c)]
}

// Rect returns the pixel rectangle of the dot at row r, column c.
func (g *Grid) Rect(r, c int) image.Rectangle {
	return g.dots[g.index(r, c)].Rect
}

// On reports whether the dot at row r, column c is on.
// It panics if r or c is out of range.
func (g *Grid) On(r, c int) bool {
	return g.dots[g.index(r, c)].On
}

func (g *Grid) index(r, c int) int {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic(fmt.Sprintf("lcd: dot (%d, %d) out of range for %dx%d grid", r, c, g.rows, g.cols))
	}
	return r*g.cols + c
}
