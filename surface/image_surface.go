// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"golang.org/x/image/bmp"
)

// ImageDriver is an offscreen driver rendering into CPU memory.
//
// It needs no display, so it is used for headless runs and tests. Each
// presented frame is copied to a front buffer that can be read with Frame.
//
// Example:
//
//	drv := surface.NewImageDriver()
//	screen, err := lcd.New(drv, "headless", 8, 8)
//	...
//	img := drv.Window().Frame()
type ImageDriver struct {
	// OnPresent, if set, is called after every present with the new frame
	// number and the window. It runs on the presenting goroutine.
	OnPresent func(frame int, w *ImageWindow) error

	mu          sync.Mutex
	initialized bool
	window      *ImageWindow
}

// NewImageDriver creates an offscreen driver.
func NewImageDriver() *ImageDriver {
	return &ImageDriver{}
}

// Init implements Driver.
func (d *ImageDriver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.initialized = true
	return nil
}

// OpenWindow implements Driver.
func (d *ImageDriver) OpenWindow(opts WindowOptions) (Window, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return nil, ErrNotInitialized
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	w := &ImageWindow{
		title:     opts.Title,
		width:     opts.Width,
		height:    opts.Height,
		onPresent: d.OnPresent,
	}
	d.window = w
	return w, nil
}

// Window returns the most recently opened window, or nil.
func (d *ImageDriver) Window() *ImageWindow {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.window
}

// ImageWindow is a window of an ImageDriver.
type ImageWindow struct {
	title         string
	width, height int
	onPresent     func(frame int, w *ImageWindow) error

	canvas *ImageCanvas
	closed bool
}

// Title returns the window title.
func (w *ImageWindow) Title() string { return w.title }

// Size implements Window.
func (w *ImageWindow) Size() (width, height int) { return w.width, w.height }

// Canvas implements Window. The canvas is created on first use.
func (w *ImageWindow) Canvas() (Canvas, error) {
	if w.closed {
		return nil, ErrWindowClosed
	}
	if w.canvas == nil {
		w.canvas = newImageCanvas(w)
	}
	return w.canvas, nil
}

// Frame returns a copy of the last presented frame, or nil before the first
// present.
func (w *ImageWindow) Frame() *image.RGBA {
	if w.canvas == nil {
		return nil
	}
	return w.canvas.Frame()
}

// Frames returns the number of frames presented so far.
func (w *ImageWindow) Frames() int {
	if w.canvas == nil {
		return 0
	}
	return w.canvas.Frames()
}

// Close implements Window.
func (w *ImageWindow) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.canvas != nil {
		return w.canvas.close()
	}
	return nil
}

// ImageCanvas is a Canvas backed by a gg.Context.
//
// Drawing goes to the context's pixmap; Present copies it to the front
// buffer.
type ImageCanvas struct {
	window *ImageWindow
	dc     *gg.Context
	color  color.Color

	mu     sync.RWMutex
	front  *image.RGBA
	frames int
}

func newImageCanvas(w *ImageWindow) *ImageCanvas {
	return &ImageCanvas{
		window: w,
		dc:     gg.NewContext(w.width, w.height),
		color:  color.Black,
	}
}

// SetDrawColor implements Canvas.
func (c *ImageCanvas) SetDrawColor(col color.Color) {
	c.color = col
}

// FillRect implements Canvas.
func (c *ImageCanvas) FillRect(r image.Rectangle) error {
	if c.window.closed {
		return ErrWindowClosed
	}
	r = r.Canon()
	if r.Empty() {
		return nil
	}
	c.dc.SetColor(c.color)
	c.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	return c.dc.Fill()
}

// Clear implements Canvas.
func (c *ImageCanvas) Clear() {
	if c.window.closed {
		return
	}
	c.dc.ClearWithColor(gg.FromColor(c.color))
}

// Present implements Canvas.
func (c *ImageCanvas) Present() error {
	if c.window.closed {
		return ErrWindowClosed
	}

	src := c.dc.Image()
	c.mu.Lock()
	if c.front == nil {
		c.front = image.NewRGBA(src.Bounds())
	}
	draw.Draw(c.front, c.front.Bounds(), src, src.Bounds().Min, draw.Src)
	c.frames++
	n := c.frames
	c.mu.Unlock()

	if c.window.onPresent != nil {
		return c.window.onPresent(n, c.window)
	}
	return nil
}

// Frame returns a copy of the last presented frame, or nil before the first
// present.
func (c *ImageCanvas) Frame() *image.RGBA {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.front == nil {
		return nil
	}
	out := image.NewRGBA(c.front.Bounds())
	copy(out.Pix, c.front.Pix)
	return out
}

// Frames returns the number of frames presented so far.
func (c *ImageCanvas) Frames() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frames
}

// EncodePNG writes the last presented frame as PNG.
func (w *ImageWindow) EncodePNG(out io.Writer) error {
	if w.canvas == nil {
		return ErrWindowClosed
	}
	return gg.NewContextForImage(w.canvas.frameOrBack()).EncodePNG(out)
}

// EncodeBMP writes the last presented frame as BMP.
func (w *ImageWindow) EncodeBMP(out io.Writer) error {
	if w.canvas == nil {
		return ErrWindowClosed
	}
	return bmp.Encode(out, w.canvas.frameOrBack())
}

func (c *ImageCanvas) frameOrBack() image.Image {
	if f := c.Frame(); f != nil {
		return f
	}
	return c.dc.Image()
}

func (c *ImageCanvas) close() error {
	return c.dc.Close()
}
