// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package serial

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/gogpu/lcd/surface"
)

// frameBlock is the size of one chunk of a frame on the wire.
const frameBlock = 64

// firstFrameDelay gives the panel time to switch to graphics mode.
const firstFrameDelay = 500 * commandDelay

var startFrame = []byte{0x1b, 0x47}

// Window is the panel area a screen draws into.
type Window struct {
	drv  *Driver
	opts surface.WindowOptions

	mu     sync.Mutex
	canvas *Canvas
	closed bool
}

func newWindow(d *Driver, opts surface.WindowOptions) *Window {
	return &Window{drv: d, opts: opts}
}

// Title returns the window title. The panel has no place to show it.
func (w *Window) Title() string { return w.opts.Title }

// Size implements surface.Window.
func (w *Window) Size() (width, height int) { return w.opts.Width, w.opts.Height }

// Canvas implements surface.Window.
func (w *Window) Canvas() (surface.Canvas, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil, surface.ErrWindowClosed
	}
	if w.canvas == nil {
		fb := image.NewGray(image.Rect(0, 0, PanelWidth, PanelHeight))
		draw.Draw(fb, fb.Bounds(), image.White, image.Point{}, draw.Src)
		w.canvas = &Canvas{window: w, fb: fb, gray: color.Gray{}}
	}
	return w.canvas, nil
}

// Close implements surface.Window. It closes the serial port.
func (w *Window) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()
	return w.drv.release()
}

func (w *Window) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Canvas is a grayscale framebuffer covering the whole panel.
type Canvas struct {
	window *Window
	fb     *image.Gray
	gray   color.Gray
	frames int
}

// SetDrawColor implements surface.Canvas. Colors are reduced to luminance.
func (c *Canvas) SetDrawColor(col color.Color) {
	if col == nil {
		col = color.Black
	}
	c.gray = color.GrayModel.Convert(col).(color.Gray)
}

// FillRect implements surface.Canvas. Pixels outside the window are clipped.
func (c *Canvas) FillRect(r image.Rectangle) error {
	if c.window.isClosed() {
		return surface.ErrWindowClosed
	}
	r = r.Canon().Intersect(image.Rect(0, 0, c.window.opts.Width, c.window.opts.Height))
	draw.Draw(c.fb, r, image.NewUniform(c.gray), image.Point{}, draw.Src)
	return nil
}

// Clear implements surface.Canvas.
func (c *Canvas) Clear() {
	if c.window.isClosed() {
		return
	}
	bounds := image.Rect(0, 0, c.window.opts.Width, c.window.opts.Height)
	draw.Draw(c.fb, bounds, image.NewUniform(c.gray), image.Point{}, draw.Src)
}

// Present implements surface.Canvas. It sends the framebuffer to the panel.
func (c *Canvas) Present() error {
	if c.window.isClosed() {
		return surface.ErrWindowClosed
	}
	d := c.window.drv

	if err := d.write(startFrame); err != nil {
		return err
	}
	if c.frames == 0 {
		d.sleep(firstFrameDelay)
	}
	for _, block := range frameBlocks(EncodeFrame(c.fb)) {
		if err := d.write(block); err != nil {
			return err
		}
	}
	c.frames++
	return nil
}

// Frame returns a copy of the framebuffer.
func (c *Canvas) Frame() *image.Gray {
	out := image.NewGray(c.fb.Bounds())
	copy(out.Pix, c.fb.Pix)
	return out
}

// EncodeFrame converts a panel framebuffer into page layout. Pixels with a
// gray level below 128 are lit. Pixels outside the panel are ignored.
func EncodeFrame(fb *image.Gray) []byte {
	out := make([]byte, PanelWidth*PanelHeight/8)
	b := fb.Bounds()
	for y := 0; y < PanelHeight; y++ {
		for x := 0; x < PanelWidth; x++ {
			p := image.Pt(b.Min.X+x, b.Min.Y+y)
			if !p.In(b) {
				continue
			}
			if fb.GrayAt(p.X, p.Y).Y < 128 {
				out[(y/8)*PanelWidth+x] |= 1 << (y % 8)
			}
		}
	}
	return out
}

// frameBlocks splits an encoded frame into wire order: even-indexed
// 64-byte blocks, then odd-indexed ones.
func frameBlocks(frame []byte) [][]byte {
	var even, odd [][]byte
	for i := 0; i < len(frame); i += frameBlock {
		block := frame[i:min(i+frameBlock, len(frame))]
		if (i/frameBlock)%2 == 0 {
			even = append(even, block)
		} else {
			odd = append(odd, block)
		}
	}
	return append(even, odd...)
}
