// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package serial

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/gogpu/lcd"
	"github.com/gogpu/lcd/surface"
)

// Panel geometry and line defaults.
const (
	PanelWidth      = 128
	PanelHeight     = 64
	DefaultDevice   = "/dev/ttyS1"
	DefaultBaudRate = 115200
)

// commandDelay separates panel commands during initialization.
const commandDelay = 5 * time.Millisecond

var (
	// ErrPanelTooSmall is returned when a window does not fit on the panel.
	ErrPanelTooSmall = errors.New("serial: window does not fit the 128x64 panel")

	// ErrWindowOpen is returned when a second window is opened on one port.
	ErrWindowOpen = errors.New("serial: panel already has a window")
)

// Option configures a Driver.
type Option func(*Driver)

// WithDevice sets the serial device path.
func WithDevice(device string) Option {
	return func(d *Driver) {
		if device != "" {
			d.device = device
		}
	}
}

// WithBaudRate sets the line speed.
func WithBaudRate(baud int) Option {
	return func(d *Driver) {
		if baud > 0 {
			d.baud = baud
		}
	}
}

// WithPort makes the driver use an already open port instead of opening
// the device. The driver takes ownership of p.
func WithPort(p io.WriteCloser) Option {
	return func(d *Driver) {
		d.open = func(string, *serial.Mode) (io.WriteCloser, error) { return p, nil }
	}
}

// Driver drives a serial graphic LCD.
type Driver struct {
	device string
	baud   int
	open   func(device string, mode *serial.Mode) (io.WriteCloser, error)
	sleep  func(time.Duration)

	mu     sync.Mutex
	port   io.WriteCloser
	window *Window
}

// NewDriver creates a serial LCD driver. The port is opened by Init.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{
		device: DefaultDevice,
		baud:   DefaultBaudRate,
		open:   openPort,
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func openPort(device string, mode *serial.Mode) (io.WriteCloser, error) {
	return serial.Open(device, mode)
}

// Device returns the serial device path.
func (d *Driver) Device() string { return d.device }

// Init implements surface.Driver. It opens the port and resets the panel.
// Calling Init again on an open port is a no-op.
func (d *Driver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.port != nil {
		return nil
	}

	port, err := d.open(d.device, &serial.Mode{
		BaudRate: d.baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return fmt.Errorf("serial: open %s: %w", d.device, err)
	}

	for _, cmd := range [][]byte{{0x1b, 0x40}, {0x0b}, {0x0c}} {
		if err := writeAll(port, cmd); err != nil {
			_ = port.Close()
			return fmt.Errorf("serial: reset panel: %w", err)
		}
		d.sleep(commandDelay)
	}

	d.port = port
	lcd.Logger().Info("serial: panel ready", "device", d.device, "baud", d.baud)
	return nil
}

// OpenWindow implements surface.Driver.
func (d *Driver) OpenWindow(opts surface.WindowOptions) (surface.Window, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.port == nil {
		return nil, surface.ErrNotInitialized
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Width > PanelWidth || opts.Height > PanelHeight {
		return nil, fmt.Errorf("%w: %dx%d", ErrPanelTooSmall, opts.Width, opts.Height)
	}
	if d.window != nil {
		return nil, ErrWindowOpen
	}

	d.window = newWindow(d, opts)
	return d.window, nil
}

// Close closes the port and forgets any open window. It is safe to call
// more than once; Init reopens the port.
func (d *Driver) Close() error {
	return d.release()
}

// release closes the port once its window is closed.
func (d *Driver) release() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.window = nil
	if d.port == nil {
		return nil
	}
	err := d.port.Close()
	d.port = nil
	return err
}

func (d *Driver) write(p []byte) error {
	d.mu.Lock()
	port := d.port
	d.mu.Unlock()
	if port == nil {
		return surface.ErrWindowClosed
	}
	return writeAll(port, p)
}

func writeAll(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return err
	}
	if n < len(p) {
		return fmt.Errorf("serial: wrote only %d of %d bytes", n, len(p))
	}
	return nil
}

// Available reports whether any serial port is present.
func Available() bool {
	ports, err := serial.GetPortsList()
	return err == nil && len(ports) > 0
}

func init() {
	surface.Register("serial", 50, func(opts surface.Options) (surface.Driver, error) {
		return NewDriver(WithDevice(opts.Device), WithBaudRate(opts.BaudRate)), nil
	}, Available)
}
