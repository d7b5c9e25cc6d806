package lcd

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ErrInvalidBitmap is returned when a bitmap cannot be built from its input.
var ErrInvalidBitmap = errors.New("lcd: invalid bitmap")

// Bitmap is a rows x cols matrix of on/off values, stored row-major.
// It describes the desired state of every dot for one frame.
//
// The zero value is an empty 0x0 bitmap.
type Bitmap struct {
	rows, cols int
	bits       []bool
}

// NewBitmap returns an all-off bitmap. Negative dimensions are treated as zero.
func NewBitmap(rows, cols int) *Bitmap {
	rows, cols = max(rows, 0), max(cols, 0)
	return &Bitmap{rows: rows, cols: cols, bits: make([]bool, rows*cols)}
}

// BitmapFromRows converts a slice of rows into a Bitmap.
// Every row must have the same length; an empty input yields a 0x0 bitmap.
func BitmapFromRows(rows [][]bool) (*Bitmap, error) {
	if len(rows) == 0 {
		return NewBitmap(0, 0), nil
	}
	cols := len(rows[0])
	b := NewBitmap(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidBitmap, r, len(row), cols)
		}
		copy(b.bits[r*cols:], row)
	}
	return b, nil
}

// BitmapFromImage samples img down (or up) to rows x cols and turns on every
// dot whose luminance is below threshold (0..0xffff). Dark pixels become on
// dots, matching how an LCD shows ink. Transparent pixels are treated as off.
func BitmapFromImage(img image.Image, rows, cols int, threshold uint32) (*Bitmap, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidBitmap)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBitmap, rows, cols)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, cols, rows))
	draw.Draw(scaled, scaled.Bounds(), image.White, image.Point{}, draw.Src)
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)

	b := NewBitmap(rows, cols)
	for r := range rows {
		for c := range cols {
			y := color.Gray16Model.Convert(scaled.At(c, r)).(color.Gray16).Y
			b.bits[r*cols+c] = uint32(y) < threshold
		}
	}
	return b, nil
}

// Rows returns the number of rows.
func (b *Bitmap) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Bitmap) Cols() int { return b.cols }

// At reports whether the bit at row r, column c is set.
// Out-of-range positions report false.
func (b *Bitmap) At(r, c int) bool {
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		return false
	}
	return b.bits[r*b.cols+c]
}

// Set sets the bit at row r, column c. Out-of-range positions are ignored.
func (b *Bitmap) Set(r, c int, on bool) {
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		return
	}
	b.bits[r*b.cols+c] = on
}

// Fill sets every bit to on.
func (b *Bitmap) Fill(on bool) {
	for i := range b.bits {
		b.bits[i] = on
	}
}

// Count returns the number of set bits.
func (b *Bitmap) Count() int {
	n := 0
	for _, on := range b.bits {
		if on {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of b.
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{rows: b.rows, cols: b.cols, bits: make([]bool, len(b.bits))}
	copy(c.bits, b.bits)
	return c
}

// Equal reports whether b and o have the same shape and bits.
// A nil bitmap equals only nil.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.rows != o.rows || b.cols != o.cols {
		return false
	}
	for i := range b.bits {
		if b.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// String renders the bitmap with '#' for set bits and '.' for clear ones,
// one line per row.
func (b *Bitmap) String() string {
	buf := make([]byte, 0, b.rows*(b.cols+1))
	for r := range b.rows {
		for c := range b.cols {
			if b.bits[r*b.cols+c] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
