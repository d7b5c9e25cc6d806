//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpu

import (
	"context"
	"testing"

	"github.com/gogpu/lcd"
	"github.com/gogpu/lcd/surface"
)

// TestRunNativeWindow opens a real window and shows a few frames.
func TestRunNativeWindow(t *testing.T) {
	if testing.Short() || !Available() {
		t.Skip("no display")
	}

	s, err := lcd.New(NewDriver(), "LCD Test", 8, 8)
	if err != nil {
		t.Fatalf("lcd.New() error = %v", err)
	}
	defer s.Close()

	bm := lcd.NewBitmap(8, 8)
	n := 0
	err = surface.Loop(context.Background(), s.Window(), 60, 5, func() error {
		bm.Set(n, n, true)
		n++
		return s.DrawBitmap(bm)
	})
	if err != nil {
		t.Fatalf("Loop() error = %v", err)
	}
	if n != 5 {
		t.Errorf("frames = %d, want 5", n)
	}
}
