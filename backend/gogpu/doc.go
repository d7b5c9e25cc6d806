// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gogpu provides a surface.Driver that shows screens in native
// GPU-accelerated windows.
//
// Drawing happens on the CPU into a gg.Context back buffer. Present copies
// the back buffer to a front buffer; on the next display frame the front
// buffer is uploaded to a GPU texture through ggcanvas and drawn to the
// window. The data flow is:
//
//	lcd.Screen -> gg.Context (back) -> front buffer -> ggcanvas.Canvas -> Window
//
// # Usage
//
// Importing the package registers the "gogpu" driver with priority 100:
//
//	import _ "github.com/gogpu/lcd/backend/gogpu"
//
//	drv, err := surface.NewDriverByName("gogpu", surface.Options{})
//
// The native event loop must run on the main goroutine. Windows implement
// surface.Runner, so surface.Loop hands control to it:
//
//	err := surface.Loop(ctx, screen.Window(), 60, 0, func() error {
//	    return screen.DrawBitmap(next())
//	})
//
// Pressing Escape or closing the window ends the loop.
//
// # Thread Safety
//
// Canvas calls must come from one goroutine at a time. Present and the
// display callback synchronize on the front buffer.
package gogpu
