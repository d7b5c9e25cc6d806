package lcd

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewBitmap(t *testing.T) {
	b := NewBitmap(3, 4)
	if b.Rows() != 3 || b.Cols() != 4 {
		t.Fatalf("shape = %dx%d, want 3x4", b.Rows(), b.Cols())
	}
	if b.Count() != 0 {
		t.Errorf("Count() = %d, want 0", b.Count())
	}

	neg := NewBitmap(-1, 5)
	if neg.Rows() != 0 || neg.Cols() != 5 || neg.Count() != 0 {
		t.Errorf("NewBitmap(-1, 5) = %dx%d", neg.Rows(), neg.Cols())
	}
}

func TestBitmapFromRows(t *testing.T) {
	b, err := BitmapFromRows([][]bool{
		{true, false, false},
		{false, true, true},
	})
	if err != nil {
		t.Fatalf("BitmapFromRows() error = %v", err)
	}
	if b.Rows() != 2 || b.Cols() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", b.Rows(), b.Cols())
	}
	want := "#..\n.##\n"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBitmapFromRowsRagged(t *testing.T) {
	_, err := BitmapFromRows([][]bool{{true, false}, {true}})
	if !errors.Is(err, ErrInvalidBitmap) {
		t.Errorf("error = %v, want ErrInvalidBitmap", err)
	}
}

func TestBitmapFromRowsEmpty(t *testing.T) {
	b, err := BitmapFromRows(nil)
	if err != nil {
		t.Fatalf("BitmapFromRows(nil) error = %v", err)
	}
	if b.Rows() != 0 || b.Cols() != 0 {
		t.Errorf("shape = %dx%d, want 0x0", b.Rows(), b.Cols())
	}
}

func TestBitmapSetAt(t *testing.T) {
	b := NewBitmap(2, 2)
	b.Set(1, 0, true)
	b.Set(5, 5, true)
	b.Set(-1, 0, true)

	if !b.At(1, 0) {
		t.Error("At(1, 0) = false, want true")
	}
	if b.At(0, 1) {
		t.Error("At(0, 1) = true, want false")
	}
	if b.At(5, 5) {
		t.Error("At(5, 5) = true, want false for out of range")
	}
	if b.Count() != 1 {
		t.Errorf("Count() = %d, want 1", b.Count())
	}
}

func TestBitmapCloneEqual(t *testing.T) {
	b := NewBitmap(2, 3)
	b.Set(0, 2, true)
	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("Clone() not equal to source")
	}
	c.Set(1, 1, true)
	if b.Equal(c) {
		t.Error("modifying clone changed equality")
	}
	if b.At(1, 1) {
		t.Error("modifying clone changed source")
	}
	if b.Equal(NewBitmap(3, 2)) {
		t.Error("bitmaps of different shape compare equal")
	}
	if b.Equal(nil) {
		t.Error("Equal(nil) = true, want false")
	}
	var none *Bitmap
	if !none.Equal(nil) {
		t.Error("nil.Equal(nil) = false, want true")
	}
}

func TestBitmapFill(t *testing.T) {
	b := NewBitmap(3, 3)
	b.Fill(true)
	if b.Count() != 9 {
		t.Errorf("Count() after Fill(true) = %d, want 9", b.Count())
	}
	b.Fill(false)
	if b.Count() != 0 {
		t.Errorf("Count() after Fill(false) = %d, want 0", b.Count())
	}
}

func TestBitmapFromImage(t *testing.T) {
	// Left half black, right half white.
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := range 20 {
		for x := range 40 {
			c := color.RGBA{255, 255, 255, 255}
			if x < 20 {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}

	b, err := BitmapFromImage(img, 2, 4, 0x8000)
	if err != nil {
		t.Fatalf("BitmapFromImage() error = %v", err)
	}
	want := "##..\n##..\n"
	if got := b.String(); got != want {
		t.Errorf("BitmapFromImage() =\n%s\nwant\n%s", got, want)
	}
}

func TestBitmapFromImageTransparentIsOff(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	b, err := BitmapFromImage(img, 4, 4, 0x8000)
	if err != nil {
		t.Fatalf("BitmapFromImage() error = %v", err)
	}
	if b.Count() != 0 {
		t.Errorf("Count() = %d, want 0 for a transparent image", b.Count())
	}
}

func TestBitmapFromImageInvalid(t *testing.T) {
	if _, err := BitmapFromImage(nil, 2, 2, 0x8000); !errors.Is(err, ErrInvalidBitmap) {
		t.Errorf("nil image error = %v, want ErrInvalidBitmap", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if _, err := BitmapFromImage(img, 0, 2, 0x8000); !errors.Is(err, ErrInvalidBitmap) {
		t.Errorf("zero rows error = %v, want ErrInvalidBitmap", err)
	}
}
