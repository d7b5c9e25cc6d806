package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/gogpu/lcd"
	"github.com/gogpu/lcd/pattern"
	"github.com/gogpu/lcd/surface"
)

// sourceFunc creates the bitmap source for a screen of rows x cols dots.
type sourceFunc func(rows, cols int) (pattern.Source, error)

// runDemo opens a screen for d and shows bitmaps from newSource until the
// user quits or the frame budget is spent.
func (c *config) runDemo(cmd *cobra.Command, d demo, newSource sourceFunc) error {
	return run(cmd, c, func() error {
		s, err := c.resolve(cmd, d)
		if err != nil {
			return err
		}
		src, err := newSource(s.rows, s.cols)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		drv, err := c.openDriver(s.backend)
		if err != nil {
			return err
		}

		screen, err := lcd.New(drv, s.title, s.rows, s.cols,
			lcd.WithColors(s.on, s.off),
			lcd.WithDotSize(s.dotWidth, s.dotHeight))
		if err != nil {
			return errors.Wrap(err, 0)
		}
		defer screen.Close()

		frames := 0
		err = surface.Loop(cmd.Context(), screen.Window(), c.fps, c.frames, func() error {
			bm, err := src.Next()
			if err != nil {
				return err
			}
			frames++
			return screen.DrawBitmap(bm)
		})
		if err != nil {
			return errors.Wrap(err, 0)
		}
		lcd.Logger().Info("lcddemo: finished", "demo", s.title, "frames", frames)
		return nil
	})
}

// openDriver creates the named driver, or the best available one when name
// is empty.
func (c *config) openDriver(name string) (surface.Driver, error) {
	opts := surface.Options{Device: c.device, BaudRate: c.baud}

	var (
		drv surface.Driver
		err error
	)
	if name == "" {
		drv, err = surface.NewDriver(opts)
	} else {
		drv, err = surface.NewDriverByName(name, opts)
	}
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	if img, ok := drv.(*surface.ImageDriver); ok && c.out != "" {
		if err := os.MkdirAll(c.out, 0o755); err != nil {
			return nil, errors.Wrap(err, 0)
		}
		img.OnPresent = c.writeFrame
	}
	lcd.Logger().Debug("lcddemo: driver selected", "name", name, "type", fmt.Sprintf("%T", drv))
	return drv, nil
}

// writeFrame saves a presented frame into the output directory.
func (c *config) writeFrame(n int, w *surface.ImageWindow) error {
	path := filepath.Join(c.out, fmt.Sprintf("frame-%05d.%s", n, c.format))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if c.format == "bmp" {
		err = w.EncodeBMP(f)
	} else {
		err = w.EncodePNG(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
