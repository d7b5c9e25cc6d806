// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpu

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/lcd"
	"github.com/gogpu/lcd/surface"
)

// Window is a native window. It implements surface.Window and
// surface.Runner.
type Window struct {
	opts   surface.WindowOptions
	canvas *Canvas

	mu     sync.Mutex
	front  *image.RGBA
	dirty  bool
	closed bool
	app    *gogpu.App
	frames int

	// gpu is only touched from the display callback.
	gpu *ggcanvas.Canvas
}

func newWindow(opts surface.WindowOptions) *Window {
	return &Window{opts: opts}
}

// Title returns the window title.
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
		w.canvas = &Canvas{
			window: w,
			dc:     gg.NewContext(w.opts.Width, w.opts.Height),
			color:  color.Black,
		}
	}
	return w.canvas, nil
}

// Frames returns the number of frames presented so far.
func (w *Window) Frames() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frames
}

// Close implements surface.Window. A running event loop is asked to quit.
func (w *Window) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	app := w.app
	c := w.canvas
	w.mu.Unlock()

	if app != nil {
		app.Quit()
	}
	if c != nil {
		return c.dc.Close()
	}
	return nil
}

func (w *Window) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// present publishes the back buffer as the next frame to display.
func (w *Window) present(src image.Image) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return surface.ErrWindowClosed
	}
	if w.front == nil {
		w.front = image.NewRGBA(src.Bounds())
	}
	draw.Draw(w.front, w.front.Bounds(), src, src.Bounds().Min, draw.Src)
	w.dirty = true
	w.frames++
	return nil
}

// takeFront returns a copy of the front buffer if it changed since the last
// call, or nil.
func (w *Window) takeFront() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dirty || w.front == nil {
		return nil
	}
	w.dirty = false
	out := image.NewRGBA(w.front.Bounds())
	copy(out.Pix, w.front.Pix)
	return out
}

// loopState tracks why an event loop stopped.
type loopState struct {
	mu      sync.Mutex
	stopped bool
	err     error
}

func (s *loopState) stop(err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return false
	}
	s.stopped = true
	s.err = err
	return true
}

func (s *loopState) done() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped, s.err
}

// Run implements surface.Runner. It opens the native window and calls frame
// once per display frame until the window is closed, Escape is pressed,
// frame fails, or ctx is done. Run must be called from the main goroutine.
func (w *Window) Run(ctx context.Context, frame func() error) error {
	if w.isClosed() {
		return surface.ErrWindowClosed
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(w.opts.Title).
		WithSize(w.opts.Width, w.opts.Height).
		WithContinuousRender(true))
	w.mu.Lock()
	w.app = app
	w.dirty = w.front != nil
	w.mu.Unlock()

	var st loopState
	stop := func(err error) {
		if st.stop(err) {
			app.Quit()
		}
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			stop(ctx.Err())
		case <-done:
		}
	}()

	app.OnDraw(func(dc *gogpu.Context) {
		if stopped, _ := st.done(); stopped {
			return
		}
		if err := frame(); err != nil {
			stop(err)
			return
		}
		if err := w.render(app, dc); err != nil {
			stop(err)
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key == gpucontext.KeyEscape {
			stop(surface.ErrQuit)
		}
	})

	app.OnClose(func() {
		if w.gpu != nil {
			if err := w.gpu.Close(); err != nil {
				lcd.Logger().Warn("gogpu: canvas close failed", "err", err)
			}
			w.gpu = nil
		}
		gg.CloseAccelerator()
	})

	lcd.Logger().Debug("gogpu: event loop starting", "title", w.opts.Title,
		"width", w.opts.Width, "height", w.opts.Height)
	runErr := app.Run()

	w.mu.Lock()
	w.app = nil
	w.mu.Unlock()

	if runErr != nil {
		return fmt.Errorf("gogpu: event loop: %w", runErr)
	}
	_, err := st.done()
	return err
}

// render uploads a changed front buffer and draws it to the window.
func (w *Window) render(app *gogpu.App, dc *gogpu.Context) error {
	if dc.Width() <= 0 || dc.Height() <= 0 {
		return nil
	}
	if w.gpu == nil {
		provider := app.GPUContextProvider()
		if provider == nil {
			return nil
		}
		c, err := ggcanvas.New(provider, w.opts.Width, w.opts.Height)
		if err != nil {
			return fmt.Errorf("gogpu: create canvas: %w", err)
		}
		w.gpu = c
		lcd.Logger().Debug("gogpu: canvas created", "width", w.opts.Width, "height", w.opts.Height)
	}

	if img := w.takeFront(); img != nil {
		buf := gg.ImageBufFromImage(img)
		if err := w.gpu.Draw(func(cc *gg.Context) {
			cc.DrawImage(buf, 0, 0)
		}); err != nil {
			return fmt.Errorf("gogpu: upload frame: %w", err)
		}
	}
	return w.gpu.RenderTo(dc.AsTextureDrawer())
}

// Canvas is the CPU back buffer of a Window.
type Canvas struct {
	window *Window
	dc     *gg.Context
	color  color.Color
}

// SetDrawColor implements surface.Canvas.
func (c *Canvas) SetDrawColor(col color.Color) {
	c.color = col
}

// FillRect implements surface.Canvas.
func (c *Canvas) FillRect(r image.Rectangle) error {
	if c.window.isClosed() {
		return surface.ErrWindowClosed
	}
	r = r.Canon()
	if r.Empty() {
		return nil
	}
	c.dc.SetColor(c.color)
	c.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	return c.dc.Fill()
}

// Clear implements surface.Canvas.
func (c *Canvas) Clear() {
	if c.window.isClosed() {
		return
	}
	c.dc.ClearWithColor(gg.FromColor(c.color))
}

// Present implements surface.Canvas. The frame is shown on the next display
// refresh.
func (c *Canvas) Present() error {
	if c.window.isClosed() {
		return surface.ErrWindowClosed
	}
	return c.window.present(c.dc.Image())
}
