// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package serial provides a surface.Driver that shows screens on a 128x64
// monochrome graphic LCD attached to a serial port.
//
// The panel is driven with a small command set: ESC @ resets it, 0x0B and
// 0x0C prepare graphics mode, and ESC G starts a full frame. A frame is
// 1024 bytes in page layout: each byte holds 8 vertically stacked pixels of
// one column, least significant bit on top, and pages run top to bottom.
// Frames are sent as 64-byte blocks, even-indexed blocks first.
//
// Screens larger than the panel are rejected when the window is opened.
// Smaller screens are drawn in the top-left corner. Pixels darker than
// mid-gray are lit.
//
// Importing the package registers the "serial" driver with priority 50. It is
// available when the system lists at least one serial port.
package serial
