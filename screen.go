package lcd

import (
	"errors"
	"image/color"
	"io"

	"github.com/gogpu/lcd/surface"
)

// Screen is a simulated dot-matrix LCD screen shown in a window.
//
// A Screen has a fixed number of dot rows and columns. Each call to
// DrawBitmap repaints only the dots whose state changed, then presents the
// window once.
//
// Screen is NOT safe for concurrent use. Serialize all calls to one Screen.
type Screen struct {
	grid    *Grid
	window  surface.Window
	canvas  surface.Canvas
	on, off color.Color
	stale   bool
	closed  bool
	width   int
	height  int
	title   string
}

// New creates a screen of rows x cols dots and opens its window.
//
// The window is width = cols*dotWidth by height = rows*dotHeight pixels.
// Dot size and colors default to 10x10 pixels, LCDDarkGreen on and
// LCDLightGreen off; see WithDotSize and WithColors.
//
// New validates the geometry before touching drv. It then initializes drv,
// opens a window titled title, fills it with the off color and presents it.
// All dots start off.
//
// Errors:
//   - *WindowWidthError when cols*dotWidth is outside [1, MaxWindowDimension]
//   - *WindowHeightError when rows*dotHeight is outside [1, MaxWindowDimension]
//   - *DotCountError when rows*cols exceeds MaxDots
//   - *VideoInitError when drv.Init fails
//   - *WindowBuildError when the window cannot be opened
//   - *CanvasBuildError when the window has no usable canvas
//   - *PresentError when the initial frame cannot be presented
//
// On error, every resource acquired so far has been released. A driver that
// implements io.Closer is closed when New fails after initializing it.
func New(drv surface.Driver, title string, rows, cols int, opts ...Option) (*Screen, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	width, height, err := CheckGeometry(rows, cols, o.dotW, o.dotH)
	if err != nil {
		return nil, err
	}
	if drv == nil {
		return nil, &VideoInitError{Err: errors.New("nil driver")}
	}
	grid := newGrid(rows, cols, o.dotW, o.dotH)

	if err := drv.Init(); err != nil {
		return nil, &VideoInitError{Err: err}
	}

	win, err := drv.OpenWindow(surface.WindowOptions{
		Title:    title,
		Width:    width,
		Height:   height,
		Centered: o.centered,
	})
	if err != nil {
		closeDriver(drv)
		return nil, &WindowBuildError{Err: err}
	}

	canvas, err := win.Canvas()
	if err != nil {
		closeWindow(win)
		closeDriver(drv)
		return nil, &CanvasBuildError{Err: err}
	}

	canvas.SetDrawColor(o.off)
	canvas.Clear()
	if err := canvas.Present(); err != nil {
		closeWindow(win)
		closeDriver(drv)
		return nil, &PresentError{Err: err}
	}

	s := &Screen{
		grid:   grid,
		window: win,
		canvas: canvas,
		on:     o.on,
		off:    o.off,
		width:  width,
		height: height,
		title:  title,
	}
	Logger().Info("lcd: screen opened", "title", title, "rows", rows, "cols", cols,
		"width", width, "height", height)
	return s, nil
}

func closeWindow(win surface.Window) {
	if err := win.Close(); err != nil {
		Logger().Warn("lcd: window close failed", "err", err)
	}
}

func closeDriver(drv surface.Driver) {
	c, ok := drv.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		Logger().Warn("lcd: driver close failed", "err", err)
	}
}

// DrawBitmap shows bm on the screen.
//
// Every dot whose state differs from bm is updated and repainted with the on
// or off color; unchanged dots are left alone. The window is then presented
// exactly once, even if no dot changed.
//
// bm must have the same number of rows and columns as the screen, otherwise
// a *ShapeError is returned and nothing is drawn.
//
// If painting a dot fails, DrawBitmap returns a *FillError without
// presenting. Dots visited before the failure, and the failing dot itself,
// already hold their new state although the window does not show it. The
// screen remembers this and repaints every dot on the next DrawBitmap.
func (s *Screen) DrawBitmap(bm *Bitmap) error {
	if s.closed {
		return ErrScreenClosed
	}
	if bm == nil {
		return &ShapeError{WantRows: s.grid.rows, WantCols: s.grid.cols}
	}
	if bm.rows != s.grid.rows || bm.cols != s.grid.cols {
		return &ShapeError{Rows: bm.rows, Cols: bm.cols, WantRows: s.grid.rows, WantCols: s.grid.cols}
	}

	full := s.stale
	changed := 0
	for i := range s.grid.dots {
		dot := &s.grid.dots[i]
		bit := bm.bits[i]
		if dot.On == bit && !full {
			continue
		}
		dot.On = bit
		if bit {
			s.canvas.SetDrawColor(s.on)
		} else {
			s.canvas.SetDrawColor(s.off)
		}
		if err := s.canvas.FillRect(dot.Rect); err != nil {
			s.stale = true
			return &FillError{Row: i / s.grid.cols, Col: i % s.grid.cols, Err: err}
		}
		changed++
	}

	if err := s.canvas.Present(); err != nil {
		s.stale = true
		return &PresentError{Err: err}
	}
	s.stale = false

	Logger().Debug("lcd: frame drawn", "changed", changed, "full", full)
	return nil
}

// Invalidate makes the next DrawBitmap repaint every dot.
func (s *Screen) Invalidate() {
	s.stale = true
}

// Rows returns the number of dot rows.
func (s *Screen) Rows() int { return s.grid.rows }

// Cols returns the number of dot columns.
func (s *Screen) Cols() int { return s.grid.cols }

// Size returns the window size in pixels.
func (s *Screen) Size() (width, height int) { return s.width, s.height }

// DotSize returns the pixel size of one dot.
func (s *Screen) DotSize() (width, height int) { return s.grid.DotSize() }

// Colors returns the on and off colors.
func (s *Screen) Colors() (on, off color.Color) { return s.on, s.off }

// Title returns the window title.
func (s *Screen) Title() string { return s.title }

// Grid returns the screen's dot grid. The grid is read-only to callers.
func (s *Screen) Grid() *Grid { return s.grid }

// Window returns the window the screen draws into.
func (s *Screen) Window() surface.Window { return s.window }

// Dot reports whether the dot at row r, column c is on.
// It panics if r or c is out of range.
func (s *Screen) Dot(r, c int) bool { return s.grid.On(r, c) }

// Snapshot returns the current dot states as a bitmap.
func (s *Screen) Snapshot() *Bitmap {
	b := NewBitmap(s.grid.rows, s.grid.cols)
	for i, d := range s.grid.dots {
		b.bits[i] = d.On
	}
	return b
}

// Close releases the window and its canvas.
// Close is idempotent; multiple calls are safe.
func (s *Screen) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.canvas = nil
	Logger().Info("lcd: screen closed", "title", s.title)
	return s.window.Close()
}
