package main

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/gogpu/lcd"
)

// backendEnv overrides the default backend.
const backendEnv = "LCDDEMO_BACKEND"

// config holds the flags shared by all demos.
type config struct {
	backend   string
	device    string
	baud      int
	rows      int
	cols      int
	dotWidth  int
	dotHeight int
	fps       int
	frames    int
	on        string
	off       string
	out       string
	format    string
	debug     bool
}

func (c *config) bindFlags(root *cobra.Command) {
	f := root.PersistentFlags()
	f.StringVarP(&c.backend, "backend", "b", "", "driver to use (gogpu, serial, image); default: best available or $"+backendEnv)
	f.StringVar(&c.device, "device", "", "serial device for the serial backend")
	f.IntVar(&c.baud, "baud", 0, "serial line speed")
	f.IntVar(&c.rows, "rows", 0, "dot rows (default depends on the demo)")
	f.IntVar(&c.cols, "cols", 0, "dot columns (default depends on the demo)")
	f.IntVar(&c.dotWidth, "dot-width", 0, "dot width in pixels")
	f.IntVar(&c.dotHeight, "dot-height", 0, "dot height in pixels")
	f.IntVar(&c.fps, "fps", 60, "frames per second when the backend does not pace itself")
	f.IntVar(&c.frames, "frames", 0, "stop after this many frames (0 runs until quit)")
	f.StringVar(&c.on, "on", "", "on color: a name (green, white, black) or #rrggbb")
	f.StringVar(&c.off, "off", "", "off color: a name (green, white, black) or #rrggbb")
	f.StringVarP(&c.out, "out", "o", "", "directory to write frames to (image backend)")
	f.StringVar(&c.format, "format", "png", "frame file format: png or bmp")
	f.BoolVar(&c.debug, "debug", false, "debug logging and error stacks")
}

// demo describes the defaults of one demo.
type demo struct {
	title     string
	rows      int
	cols      int
	dotWidth  int
	dotHeight int
	on, off   color.Color
}

// settings is a demo with the user's flags applied.
type settings struct {
	demo
	backend string
}

func (c *config) resolve(cmd *cobra.Command, d demo) (settings, error) {
	flags := cmd.Flags()
	s := settings{demo: d, backend: c.backend}

	if flags.Changed("rows") {
		s.rows = c.rows
	}
	if flags.Changed("cols") {
		s.cols = c.cols
	}
	if flags.Changed("dot-width") {
		s.dotWidth = c.dotWidth
	}
	if flags.Changed("dot-height") {
		s.dotHeight = c.dotHeight
	}
	if s.rows <= 0 || s.cols <= 0 {
		return s, errors.Errorf("rows and cols must be positive, got %dx%d", s.rows, s.cols)
	}
	if c.on != "" {
		col, err := parseColor(c.on)
		if err != nil {
			return s, errors.WrapPrefix(err, "--on", 0)
		}
		s.on = col
	}
	if c.off != "" {
		col, err := parseColor(c.off)
		if err != nil {
			return s, errors.WrapPrefix(err, "--off", 0)
		}
		s.off = col
	}
	if s.backend == "" {
		s.backend = os.Getenv(backendEnv)
	}
	switch c.format {
	case "png", "bmp":
	default:
		return s, errors.Errorf("unknown frame format %q", c.format)
	}
	return s, nil
}

var namedColors = map[string]color.Color{
	"green":      lcd.LCDDarkGreen,
	"lightgreen": lcd.LCDLightGreen,
	"white":      color.White,
	"black":      color.Black,
}

// parseColor accepts a color name or #rgb / #rrggbb.
func parseColor(s string) (color.Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return nil, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
