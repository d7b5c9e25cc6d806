// Package lcd simulates a dot-matrix LCD screen in a window.
//
// # Overview
//
// A Screen is a fixed grid of rows x cols dots. Each dot is a rectangle of
// dotWidth x dotHeight pixels that shows either the on or the off color.
// Callers hand the screen a Bitmap of the same shape once per frame; the
// screen repaints only the dots that changed and presents the window once.
//
// # Quick Start
//
//	drv, err := surface.NewDriverByName("gogpu", surface.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	screen, err := lcd.New(drv, "LCD Example: Checkerboard", 2, 2,
//	    lcd.WithDotSize(100, 100))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer screen.Close()
//
//	bm, _ := lcd.BitmapFromRows([][]bool{{true, false}, {false, true}})
//	if err := screen.DrawBitmap(bm); err != nil {
//	    log.Fatal(err)
//	}
//
// # Geometry
//
// The window is cols*dotWidth pixels wide and rows*dotHeight pixels high.
// Both must lie in [1, MaxWindowDimension]; New checks this before the
// driver is touched and reports a *WindowWidthError or *WindowHeightError.
//
// # Bitmap Shape
//
// Rows and columns are runtime values stored on the Screen rather than part
// of the Bitmap type, so DrawBitmap checks every bitmap's shape and returns a
// *ShapeError on mismatch. BitmapFromRows is the checked conversion from
// [][]bool.
//
// # Rendering
//
// Rendering goes through the surface package's Driver, Window and Canvas
// interfaces. Drivers exist for native windows (backend/gogpu), offscreen
// images (surface.ImageDriver) and serial graphic LCDs (backend/serial).
//
// # Coordinate System
//
// Dot (0, 0) is the top-left dot. Rows grow downward, columns to the right.
// Dot (r, c) covers pixels [c*dotWidth, (c+1)*dotWidth) x
// [r*dotHeight, (r+1)*dotHeight).
package lcd

// Version is the current version of the library.
const Version = "0.1.0"
