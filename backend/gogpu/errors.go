// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpu

import "errors"

// Package errors for the gogpu driver.
var (
	// ErrNoDisplay is returned by Init when no display server is reachable.
	ErrNoDisplay = errors.New("gogpu: no display available")
)
