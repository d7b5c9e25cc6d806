package lcd

import (
	"github.com/gogpu/lcd/surface"
)

// fakeDriver implements surface.Driver with injectable failures.
type fakeDriver struct {
	initErr   error
	openErr   error
	canvasErr  error
	presentErr error

	inits   int
	closes  int
	opened  []surface.WindowOptions
	windows []*fakeWindow
}

func (d *fakeDriver) Init() error {
	d.inits++
	return d.initErr
}

func (d *fakeDriver) Close() error {
	d.closes++
	return nil
}

func (d *fakeDriver) OpenWindow(opts surface.WindowOptions) (surface.Window, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	d.opened = append(d.opened, opts)
	w := &fakeWindow{
		opts:      opts,
		canvasErr: d.canvasErr,
		rec:       surface.NewRecorder(nil),
	}
	w.rec.PresentErr = d.presentErr
	d.windows = append(d.windows, w)
	return w, nil
}

// fakeWindow implements surface.Window with a recording canvas.
type fakeWindow struct {
	opts      surface.WindowOptions
	canvasErr error
	rec       *surface.Recorder
	closes    int
}

func (w *fakeWindow) Canvas() (surface.Canvas, error) {
	if w.canvasErr != nil {
		return nil, w.canvasErr
	}
	return w.rec, nil
}

func (w *fakeWindow) Size() (int, int) { return w.opts.Width, w.opts.Height }

func (w *fakeWindow) Close() error {
	w.closes++
	return nil
}

// newFakeScreen builds a screen on a fakeDriver and clears the recording of
// the initial frame.
func newFakeScreen(t interface {
	Helper()
	Fatalf(string, ...any)
}, rows, cols int, opts ...Option) (*Screen, *surface.Recorder) {
	t.Helper()
	drv := &fakeDriver{}
	s, err := New(drv, "test", rows, cols, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rec := drv.windows[0].rec
	rec.Reset()
	return s, rec
}
