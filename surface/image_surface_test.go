// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func openImageWindow(t *testing.T, w, h int) (*ImageDriver, *ImageWindow, Canvas) {
	t.Helper()
	d := NewImageDriver()
	if err := d.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	win, err := d.OpenWindow(WindowOptions{Title: "test", Width: w, Height: h})
	if err != nil {
		t.Fatalf("OpenWindow() error = %v", err)
	}
	c, err := win.Canvas()
	if err != nil {
		t.Fatalf("Canvas() error = %v", err)
	}
	t.Cleanup(func() { _ = win.Close() })
	return d, win.(*ImageWindow), c
}

func TestImageDriverRequiresInit(t *testing.T) {
	d := NewImageDriver()
	_, err := d.OpenWindow(WindowOptions{Width: 10, Height: 10})
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("OpenWindow() before Init error = %v, want ErrNotInitialized", err)
	}
}

func TestImageDriverInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewImageDriver()
			_ = d.Init()
			_, err := d.OpenWindow(WindowOptions{Width: tt.w, Height: tt.h})
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("error = %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestImageWindowAttributes(t *testing.T) {
	d, win, _ := openImageWindow(t, 30, 20)
	if d.Window() != win {
		t.Error("Window() does not return the opened window")
	}
	if win.Title() != "test" {
		t.Errorf("Title() = %q, want test", win.Title())
	}
	if w, h := win.Size(); w != 30 || h != 20 {
		t.Errorf("Size() = %dx%d, want 30x20", w, h)
	}
	if win.Frame() != nil {
		t.Error("Frame() before Present should be nil")
	}
	if win.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", win.Frames())
	}
}

func TestImageCanvasFillAndPresent(t *testing.T) {
	_, win, c := openImageWindow(t, 20, 20)

	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	c.SetDrawColor(blue)
	c.Clear()
	c.SetDrawColor(red)
	if err := c.FillRect(image.Rect(0, 0, 10, 10)); err != nil {
		t.Fatalf("FillRect() error = %v", err)
	}

	// Drawing is invisible until presented.
	if win.Frame() != nil {
		t.Fatal("frame visible before Present")
	}
	if err := c.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	f := win.Frame()
	if got := f.RGBAAt(5, 5); got != red {
		t.Errorf("pixel (5, 5) = %v, want %v", got, red)
	}
	if got := f.RGBAAt(15, 15); got != blue {
		t.Errorf("pixel (15, 15) = %v, want %v", got, blue)
	}
	if win.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", win.Frames())
	}

	// The front buffer is a snapshot.
	c.SetDrawColor(red)
	_ = c.FillRect(image.Rect(10, 10, 20, 20))
	if got := win.Frame().RGBAAt(15, 15); got != blue {
		t.Errorf("unpresented fill visible: pixel = %v", got)
	}
}

func TestImageCanvasEmptyRect(t *testing.T) {
	_, _, c := openImageWindow(t, 5, 5)
	if err := c.FillRect(image.Rectangle{}); err != nil {
		t.Errorf("FillRect(empty) error = %v", err)
	}
}

func TestImageWindowClosed(t *testing.T) {
	_, win, c := openImageWindow(t, 5, 5)
	if err := win.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := win.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	if err := c.FillRect(image.Rect(0, 0, 1, 1)); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("FillRect() error = %v, want ErrWindowClosed", err)
	}
	if err := c.Present(); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("Present() error = %v, want ErrWindowClosed", err)
	}
	if _, err := win.Canvas(); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("Canvas() error = %v, want ErrWindowClosed", err)
	}
}

func TestImageDriverOnPresent(t *testing.T) {
	d := NewImageDriver()
	var seen []int
	d.OnPresent = func(frame int, w *ImageWindow) error {
		seen = append(seen, frame)
		if frame == 2 {
			return ErrQuit
		}
		return nil
	}
	_ = d.Init()
	win, err := d.OpenWindow(WindowOptions{Width: 4, Height: 4})
	if err != nil {
		t.Fatal(err)
	}
	defer win.Close()
	c, _ := win.Canvas()

	if err := c.Present(); err != nil {
		t.Fatalf("first Present() error = %v", err)
	}
	if err := c.Present(); !errors.Is(err, ErrQuit) {
		t.Errorf("second Present() error = %v, want ErrQuit from callback", err)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("OnPresent frames = %v, want [1 2]", seen)
	}
}

func TestImageWindowEncode(t *testing.T) {
	_, win, c := openImageWindow(t, 8, 6)
	green := color.RGBA{0, 255, 0, 255}
	c.SetDrawColor(green)
	c.Clear()
	if err := c.Present(); err != nil {
		t.Fatal(err)
	}

	var pngBuf bytes.Buffer
	if err := win.EncodePNG(&pngBuf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&pngBuf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("PNG bounds = %v, want 8x6", b)
	}
	if r, g, b, _ := img.At(3, 3).RGBA(); r != 0 || g != 0xffff || b != 0 {
		t.Errorf("PNG pixel = %v, want green", img.At(3, 3))
	}

	var bmpBuf bytes.Buffer
	if err := win.EncodeBMP(&bmpBuf); err != nil {
		t.Fatalf("EncodeBMP() error = %v", err)
	}
	img, err = bmp.Decode(&bmpBuf)
	if err != nil {
		t.Fatalf("bmp.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("BMP bounds = %v, want 8x6", b)
	}
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want color.RGBA
	}{
		{"nil", nil, color.RGBA{A: 255}},
		{"rgba", color.RGBA{1, 2, 3, 255}, color.RGBA{1, 2, 3, 255}},
		{"gray", color.Gray{Y: 128}, color.RGBA{128, 128, 128, 255}},
		{"white", color.White, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rgba(tt.in); got != tt.want {
				t.Errorf("rgba(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
