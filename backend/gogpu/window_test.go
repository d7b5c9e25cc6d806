// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpu

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/gogpu/lcd"
	"github.com/gogpu/lcd/surface"
)

func newTestDriver(available bool) *Driver {
	return &Driver{available: func() bool { return available }}
}

func TestDriverInit(t *testing.T) {
	if err := newTestDriver(false).Init(); !errors.Is(err, ErrNoDisplay) {
		t.Errorf("Init() without display error = %v, want ErrNoDisplay", err)
	}
	if err := newTestDriver(true).Init(); err != nil {
		t.Errorf("Init() error = %v", err)
	}
}

func TestDriverOpenWindow(t *testing.T) {
	d := newTestDriver(true)
	if _, err := d.OpenWindow(surface.WindowOptions{Width: 10, Height: 10}); !errors.Is(err, surface.ErrNotInitialized) {
		t.Errorf("OpenWindow() before Init error = %v, want ErrNotInitialized", err)
	}
	_ = d.Init()
	if _, err := d.OpenWindow(surface.WindowOptions{Width: 0, Height: 10}); !errors.Is(err, surface.ErrInvalidDimensions) {
		t.Errorf("OpenWindow(0x10) error = %v, want ErrInvalidDimensions", err)
	}

	win, err := d.OpenWindow(surface.WindowOptions{Title: "LCD", Width: 30, Height: 20})
	if err != nil {
		t.Fatalf("OpenWindow() error = %v", err)
	}
	defer win.Close()

	w := win.(*Window)
	if w.Title() != "LCD" {
		t.Errorf("Title() = %q, want LCD", w.Title())
	}
	if width, height := w.Size(); width != 30 || height != 20 {
		t.Errorf("Size() = %dx%d, want 30x20", width, height)
	}
	if _, ok := win.(surface.Runner); !ok {
		t.Error("Window does not implement surface.Runner")
	}
}

func TestRegistered(t *testing.T) {
	entry, ok := surface.Get("gogpu")
	if !ok {
		t.Fatal("gogpu driver not registered")
	}
	if entry.Priority != 100 {
		t.Errorf("Priority = %d, want 100", entry.Priority)
	}
	if !slices.Contains(surface.List(), "gogpu") {
		t.Error("List() does not include gogpu")
	}
}

func TestCanvasPresentPublishesFrontBuffer(t *testing.T) {
	w := newWindow(surface.WindowOptions{Width: 20, Height: 10})
	defer w.Close()

	c, err := w.Canvas()
	if err != nil {
		t.Fatal(err)
	}
	if w.takeFront() != nil {
		t.Fatal("front buffer before Present")
	}

	red := color.RGBA{255, 0, 0, 255}
	c.SetDrawColor(color.Black)
	c.Clear()
	c.SetDrawColor(red)
	if err := c.FillRect(image.Rect(0, 0, 10, 10)); err != nil {
		t.Fatalf("FillRect() error = %v", err)
	}
	if err := c.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	front := w.takeFront()
	if front == nil {
		t.Fatal("takeFront() = nil after Present")
	}
	if got := front.RGBAAt(5, 5); got != red {
		t.Errorf("pixel (5, 5) = %v, want %v", got, red)
	}
	if got := front.RGBAAt(15, 5); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("pixel (15, 5) = %v, want black", got)
	}
	if w.takeFront() != nil {
		t.Error("takeFront() returned the same frame twice")
	}
	if w.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", w.Frames())
	}
}

func TestWindowClose(t *testing.T) {
	w := newWindow(surface.WindowOptions{Width: 4, Height: 4})
	c, _ := w.Canvas()

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := c.FillRect(image.Rect(0, 0, 1, 1)); !errors.Is(err, surface.ErrWindowClosed) {
		t.Errorf("FillRect() error = %v, want ErrWindowClosed", err)
	}
	if err := c.Present(); !errors.Is(err, surface.ErrWindowClosed) {
		t.Errorf("Present() error = %v, want ErrWindowClosed", err)
	}
	if _, err := w.Canvas(); !errors.Is(err, surface.ErrWindowClosed) {
		t.Errorf("Canvas() error = %v, want ErrWindowClosed", err)
	}
}

// TestScreenOnWindow drives a screen through the window without starting
// the native event loop.
func TestScreenOnWindow(t *testing.T) {
	drv := newTestDriver(true)
	s, err := lcd.New(drv, "LCD Example: Checkerboard", 2, 2,
		lcd.WithDotSize(10, 10),
		lcd.WithColors(color.White, color.Black))
	if err != nil {
		t.Fatalf("lcd.New() error = %v", err)
	}
	defer s.Close()

	bm, _ := lcd.BitmapFromRows([][]bool{{true, false}, {false, true}})
	if err := s.DrawBitmap(bm); err != nil {
		t.Fatalf("DrawBitmap() error = %v", err)
	}

	w := s.Window().(*Window)
	front := w.takeFront()
	if front == nil {
		t.Fatal("no frame published")
	}
	if r := front.RGBAAt(5, 5).R; r != 255 {
		t.Errorf("on dot R = %d, want 255", r)
	}
	if r := front.RGBAAt(15, 5).R; r != 0 {
		t.Errorf("off dot R = %d, want 0", r)
	}
	if w.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", w.Frames())
	}
}
