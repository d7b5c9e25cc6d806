// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpu

import (
	"os"
	"runtime"
	"sync"

	"github.com/gogpu/lcd/surface"
)

// Driver opens native windows.
type Driver struct {
	mu          sync.Mutex
	initialized bool
	available   func() bool
}

// NewDriver creates a native window driver.
func NewDriver() *Driver {
	return &Driver{available: Available}
}

// Init implements surface.Driver. It fails when no display is reachable.
func (d *Driver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.available() {
		return ErrNoDisplay
	}
	d.initialized = true
	return nil
}

// OpenWindow implements surface.Driver. The native window itself appears
// when its event loop starts.
func (d *Driver) OpenWindow(opts surface.WindowOptions) (surface.Window, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		return nil, surface.ErrNotInitialized
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return newWindow(opts), nil
}

// Available reports whether native windows can be opened. On Linux and the
// BSDs this requires an X11 or Wayland display.
func Available() bool {
	switch runtime.GOOS {
	case "windows", "darwin", "ios", "android":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func init() {
	surface.Register("gogpu", 100, func(surface.Options) (surface.Driver, error) {
		return NewDriver(), nil
	}, Available)
}
