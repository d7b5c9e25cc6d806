// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"context"
	"errors"
	"image"
	"image/color"
)

// Driver is the windowing subsystem a screen renders through.
//
// A Driver is initialized once, then opens windows. Implementations may
// support only a single window. A driver that holds resources from Init
// until a window is closed, such as a serial port, should also implement
// io.Closer so callers can release it when no window was opened.
type Driver interface {
	// Init prepares the video subsystem. It must be called before OpenWindow.
	// Calling Init more than once is allowed and is a no-op after success.
	Init() error

	// OpenWindow creates a window with the requested title and pixel size.
	OpenWindow(opts WindowOptions) (Window, error)
}

// Window is an open window with a drawing canvas bound to it.
type Window interface {
	// Canvas returns the window's drawing canvas.
	// The canvas is owned by the window and released by Close.
	Canvas() (Canvas, error)

	// Size returns the window's drawable size in pixels.
	Size() (width, height int)

	// Close releases the window and its canvas.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Canvas is the drawing target of a window.
//
// Drawing goes to a back buffer; nothing is visible until Present.
// Canvases are NOT thread-safe. Each canvas should be used from a single
// goroutine, or external synchronization must be used.
type Canvas interface {
	// SetDrawColor sets the color used by FillRect and Clear.
	SetDrawColor(c color.Color)

	// FillRect fills r with the current draw color.
	FillRect(r image.Rectangle) error

	// Clear fills the whole canvas with the current draw color.
	Clear()

	// Present flushes the back buffer to the window as one frame.
	Present() error
}

// Runner is implemented by windows that own a native event loop.
// Run calls frame once per displayed frame until the window is closed,
// frame returns an error, or ctx is done.
type Runner interface {
	Run(ctx context.Context, frame func() error) error
}

// ErrQuit may be returned by a frame function to stop a Loop cleanly.
var ErrQuit = errors.New("surface: quit")

// Common errors returned by windows and canvases.
var (
	// ErrWindowClosed is returned when a closed window or its canvas is used.
	ErrWindowClosed = errors.New("surface: window is closed")

	// ErrInvalidDimensions is returned when a window size is not positive.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrNotInitialized is returned by OpenWindow before a successful Init.
	ErrNotInitialized = errors.New("surface: driver not initialized")
)
