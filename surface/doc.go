// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface defines the windowing and rendering capability a simulated
// LCD screen draws through.
//
// The abstraction has three levels that mirror a native windowing API:
//
//   - Driver: initializes the video subsystem and opens windows
//   - Window: an open window that owns a canvas
//   - Canvas: a back buffer supporting SetDrawColor, FillRect, Clear and
//     Present
//
// # Implementations
//
//   - ImageDriver: offscreen rendering into a gg.Context pixmap; presented
//     frames can be read back or encoded as PNG or BMP
//   - Recorder / RecordingDriver: records every canvas operation, optionally
//     forwarding to another canvas
//   - backend/gogpu: native GPU-backed windows
//   - backend/serial: a 128x64 serial graphic LCD
//
// # Registry
//
// Drivers register by name and priority:
//
//	surface.Register("gogpu", 100, factory, available)
//
//	drv, err := surface.NewDriverByName("image", surface.Options{})
//
// # Frame loops
//
// Loop runs a frame function either on a window's own event loop (windows
// implementing Runner) or on a ticker.
package surface
