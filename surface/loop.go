// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"context"
	"errors"
	"time"
)

// Loop calls frame repeatedly until ctx is done, frame returns an error, or
// maxFrames frames have run (0 means no limit). A frame returning ErrQuit
// ends the loop without error.
//
// When win (or a window it wraps) implements Runner, the window's own event
// loop drives the frames and paces them. Otherwise frames run on a ticker at
// fps frames per second; fps <= 0 runs them back to back.
func Loop(ctx context.Context, win Window, fps, maxFrames int, frame func() error) error {
	n := 0
	counted := func() error {
		if maxFrames > 0 && n >= maxFrames {
			return ErrQuit
		}
		n++
		return frame()
	}

	var err error
	if r, ok := runnerOf(win); ok {
		err = r.Run(ctx, counted)
	} else {
		err = runTicker(ctx, fps, counted)
	}
	if errors.Is(err, ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runnerOf(w Window) (Runner, bool) {
	for w != nil {
		if r, ok := w.(Runner); ok {
			return r, true
		}
		u, ok := w.(interface{ Unwrap() Window })
		if !ok {
			return nil, false
		}
		w = u.Unwrap()
	}
	return nil, false
}

func runTicker(ctx context.Context, fps int, frame func() error) error {
	var tick <-chan time.Time
	if fps > 0 {
		t := time.NewTicker(time.Second / time.Duration(fps))
		defer t.Stop()
		tick = t.C
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := frame(); err != nil {
			return err
		}
		if tick == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
}
