// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image/color"
)

// WindowOptions describes a window to open.
type WindowOptions struct {
	// Title is shown in the window's title bar.
	Title string

	// Width is the drawable width in pixels.
	Width int

	// Height is the drawable height in pixels.
	Height int

	// Centered places the window in the middle of the display.
	Centered bool
}

// Validate reports whether the window size is usable.
func (o WindowOptions) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, o.Width, o.Height)
	}
	return nil
}

// Options configures driver creation through the registry.
type Options struct {
	// Device is the device path for hardware drivers (e.g. "/dev/ttyS1").
	Device string

	// BaudRate is the line speed for serial drivers. Zero selects the default.
	BaudRate int

	// Custom holds options for specific drivers.
	Custom map[string]any
}

// rgba converts any color to non-premultiplied 8-bit RGBA.
func rgba(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 255}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}
