package lcd

import (
	"errors"
	"fmt"
)

// ErrScreenClosed is returned when a Screen is used after Close.
var ErrScreenClosed = errors.New("lcd: screen is closed")

// VideoInitError reports that the driver's video subsystem failed to initialize.
type VideoInitError struct {
	Err error
}

func (e *VideoInitError) Error() string {
	return fmt.Sprintf("lcd: error initializing video subsystem: %v", e.Err)
}

func (e *VideoInitError) Unwrap() error { return e.Err }

// WindowBuildError reports that the driver could not create the window.
type WindowBuildError struct {
	Err error
}

func (e *WindowBuildError) Error() string {
	return fmt.Sprintf("lcd: error building window: %v", e.Err)
}

func (e *WindowBuildError) Unwrap() error { return e.Err }

// CanvasBuildError reports that the window could not provide a canvas.
type CanvasBuildError struct {
	Err error
}

func (e *CanvasBuildError) Error() string {
	return fmt.Sprintf("lcd: error building canvas: %v", e.Err)
}

func (e *CanvasBuildError) Unwrap() error { return e.Err }

// FillError reports that painting the dot at Row, Col failed.
// The draw call that returned it did not present.
type FillError struct {
	Row, Col int
	Err      error
}

func (e *FillError) Error() string {
	return fmt.Sprintf("lcd: error filling dot (%d, %d): %v", e.Row, e.Col, e.Err)
}

func (e *FillError) Unwrap() error { return e.Err }

// PresentError reports that flushing the canvas to the window failed.
type PresentError struct {
	Err error
}

func (e *PresentError) Error() string {
	return fmt.Sprintf("lcd: error presenting frame: %v", e.Err)
}

func (e *PresentError) Unwrap() error { return e.Err }

// WindowWidthError reports a screen too wide to display. Width is the
// requested pixel width (Cols * DotWidth), saturated at the maximum uint64
// and 0 when either factor is not positive.
type WindowWidthError struct {
	Width    uint64
	Cols     int
	DotWidth int
}

func (e *WindowWidthError) Error() string {
	return fmt.Sprintf("lcd: %d pixels is not a valid window width; window width must be between 1 and %d; "+
		"change the number of dot columns (%d) or the dot width (%d)",
		e.Width, MaxWindowDimension, e.Cols, e.DotWidth)
}

// WindowHeightError reports a screen too high to display. Height is the
// requested pixel height (Rows * DotHeight), saturated like WindowWidthError.
type WindowHeightError struct {
	Height    uint64
	Rows      int
	DotHeight int
}

func (e *WindowHeightError) Error() string {
	return fmt.Sprintf("lcd: %d pixels is not a valid window height; window height must be between 1 and %d; "+
		"change the number of dot rows (%d) or the dot height (%d)",
		e.Height, MaxWindowDimension, e.Rows, e.DotHeight)
}

// DotCountError reports a grid with more than MaxDots dots.
type DotCountError struct {
	Dots       uint64
	Rows, Cols int
}

func (e *DotCountError) Error() string {
	return fmt.Sprintf("lcd: %d dots is too many for a screen; a screen can have at most %d dots; "+
		"reduce the number of dot rows (%d) or columns (%d)",
		e.Dots, MaxDots, e.Rows, e.Cols)
}

// ShapeError reports a bitmap whose dimensions differ from the screen's grid.
type ShapeError struct {
	Rows, Cols         int
	WantRows, WantCols int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("lcd: bitmap is %dx%d, screen is %dx%d", e.Rows, e.Cols, e.WantRows, e.WantCols)
}
