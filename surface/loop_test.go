// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"context"
	"errors"
	"testing"
	"time"
)

// runnerWindow is a window with its own event loop.
type runnerWindow struct {
	ImageWindow
	runs   int
	frames int
}

func (w *runnerWindow) Run(ctx context.Context, frame func() error) error {
	w.runs++
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := frame(); err != nil {
			return err
		}
		w.frames++
	}
}

func TestLoopMaxFrames(t *testing.T) {
	n := 0
	err := Loop(context.Background(), nil, 0, 5, func() error {
		n++
		return nil
	})
	if err != nil {
		t.Fatalf("Loop() error = %v", err)
	}
	if n != 5 {
		t.Errorf("frames = %d, want 5", n)
	}
}

func TestLoopFrameQuit(t *testing.T) {
	n := 0
	err := Loop(context.Background(), nil, 0, 0, func() error {
		n++
		if n == 3 {
			return ErrQuit
		}
		return nil
	})
	if err != nil {
		t.Errorf("Loop() error = %v, want nil on ErrQuit", err)
	}
	if n != 3 {
		t.Errorf("frames = %d, want 3", n)
	}
}

func TestLoopFrameError(t *testing.T) {
	boom := errors.New("boom")
	err := Loop(context.Background(), nil, 0, 0, func() error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("Loop() error = %v, want boom", err)
	}
}

func TestLoopContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	err := Loop(ctx, nil, 1000, 0, func() error {
		n++
		if n == 2 {
			cancel()
		}
		return nil
	})
	if err != nil {
		t.Errorf("Loop() error = %v, want nil on cancel", err)
	}
	if n != 2 {
		t.Errorf("frames = %d, want 2", n)
	}
}

func TestLoopPaced(t *testing.T) {
	start := time.Now()
	err := Loop(context.Background(), nil, 100, 3, func() error { return nil })
	if err != nil {
		t.Fatal(err)
	}
	// Three frames at 100 fps wait for at least two ticks.
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("Loop() took %v, want paced frames", elapsed)
	}
}

func TestLoopUsesRunner(t *testing.T) {
	w := &runnerWindow{}
	err := Loop(context.Background(), w, 60, 4, func() error { return nil })
	if err != nil {
		t.Fatal(err)
	}
	if w.runs != 1 {
		t.Errorf("Run called %d times, want 1", w.runs)
	}
	if w.frames != 4 {
		t.Errorf("runner frames = %d, want 4", w.frames)
	}
}

func TestLoopUnwrapsToRunner(t *testing.T) {
	w := &runnerWindow{}
	rw := NewRecordingWindow(w)
	if err := Loop(context.Background(), rw, 0, 2, func() error { return nil }); err != nil {
		t.Fatal(err)
	}
	if w.runs != 1 {
		t.Errorf("Run called %d times through wrapper, want 1", w.runs)
	}
}
