// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"sync"
)

// CommandType identifies a recorded canvas operation.
type CommandType uint8

const (
	CmdSetDrawColor CommandType = iota // Set the draw color
	CmdFillRect                        // Fill a rectangle
	CmdClear                           // Clear the canvas
	CmdPresent                         // Present a frame
)

var commandTypeNames = [...]string{
	CmdSetDrawColor: "SetDrawColor",
	CmdFillRect:     "FillRect",
	CmdClear:        "Clear",
	CmdPresent:      "Present",
}

// String returns the command name.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return "Unknown"
}

// Command is one recorded canvas operation.
// Color is the draw color in effect when the command ran.
type Command struct {
	Type  CommandType
	Rect  image.Rectangle
	Color color.RGBA
}

// Recorder is a Canvas that records every operation and optionally forwards
// it to another canvas.
//
// Recorder is useful for asserting exactly which rectangles a screen paints
// and for counting work per frame.
type Recorder struct {
	// Next receives every operation after it is recorded. May be nil.
	Next Canvas

	// FillErr, if set, is called before each FillRect; a non-nil result
	// fails the fill without recording or forwarding it.
	FillErr func(r image.Rectangle) error

	// PresentErr, if set, is returned by Present instead of presenting.
	PresentErr error

	mu       sync.Mutex
	color    color.RGBA
	commands []Command
}

// NewRecorder returns a recorder forwarding to next, which may be nil.
func NewRecorder(next Canvas) *Recorder {
	return &Recorder{Next: next, color: color.RGBA{A: 255}}
}

// SetDrawColor implements Canvas.
func (r *Recorder) SetDrawColor(c color.Color) {
	r.mu.Lock()
	r.color = rgba(c)
	r.commands = append(r.commands, Command{Type: CmdSetDrawColor, Color: r.color})
	r.mu.Unlock()
	if r.Next != nil {
		r.Next.SetDrawColor(c)
	}
}

// FillRect implements Canvas.
func (r *Recorder) FillRect(rect image.Rectangle) error {
	if r.FillErr != nil {
		if err := r.FillErr(rect); err != nil {
			return err
		}
	}
	r.mu.Lock()
	r.commands = append(r.commands, Command{Type: CmdFillRect, Rect: rect, Color: r.color})
	r.mu.Unlock()
	if r.Next != nil {
		return r.Next.FillRect(rect)
	}
	return nil
}

// Clear implements Canvas.
func (r *Recorder) Clear() {
	r.mu.Lock()
	r.commands = append(r.commands, Command{Type: CmdClear, Color: r.color})
	r.mu.Unlock()
	if r.Next != nil {
		r.Next.Clear()
	}
}

// Present implements Canvas.
func (r *Recorder) Present() error {
	if r.PresentErr != nil {
		return r.PresentErr
	}
	r.mu.Lock()
	r.commands = append(r.commands, Command{Type: CmdPresent, Color: r.color})
	r.mu.Unlock()
	if r.Next != nil {
		return r.Next.Present()
	}
	return nil
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Fills returns the recorded FillRect commands.
func (r *Recorder) Fills() []Command {
	return r.filter(CmdFillRect)
}

// Presents returns how many frames were presented.
func (r *Recorder) Presents() int {
	return len(r.filter(CmdPresent))
}

// Reset discards all recorded commands. The draw color is kept.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.commands = r.commands[:0]
	r.mu.Unlock()
}

func (r *Recorder) filter(t CommandType) []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Command
	for _, c := range r.commands {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// RecordingWindow wraps a Window so its canvas is a Recorder.
type RecordingWindow struct {
	Window
	rec *Recorder
}

// NewRecordingWindow wraps w. The recorder is created on the first Canvas call.
func NewRecordingWindow(w Window) *RecordingWindow {
	return &RecordingWindow{Window: w}
}

// Canvas implements Window.
func (w *RecordingWindow) Canvas() (Canvas, error) {
	if w.rec != nil {
		return w.rec, nil
	}
	inner, err := w.Window.Canvas()
	if err != nil {
		return nil, err
	}
	w.rec = NewRecorder(inner)
	return w.rec, nil
}

// Recorder returns the window's recorder, or nil before Canvas is called.
func (w *RecordingWindow) Recorder() *Recorder { return w.rec }

// Unwrap returns the wrapped window.
func (w *RecordingWindow) Unwrap() Window { return w.Window }

// RecordingDriver wraps a Driver so every window it opens records.
type RecordingDriver struct {
	Driver

	mu      sync.Mutex
	windows []*RecordingWindow
}

// NewRecordingDriver wraps d.
func NewRecordingDriver(d Driver) *RecordingDriver {
	return &RecordingDriver{Driver: d}
}

// OpenWindow implements Driver.
func (d *RecordingDriver) OpenWindow(opts WindowOptions) (Window, error) {
	w, err := d.Driver.OpenWindow(opts)
	if err != nil {
		return nil, err
	}
	rw := NewRecordingWindow(w)
	d.mu.Lock()
	d.windows = append(d.windows, rw)
	d.mu.Unlock()
	return rw, nil
}

// Windows returns the windows opened so far.
func (d *RecordingDriver) Windows() []*RecordingWindow {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*RecordingWindow, len(d.windows))
	copy(out, d.windows)
	return out
}
