package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/gogpu/lcd"
	"github.com/gogpu/lcd/pattern"
	"github.com/gogpu/lcd/surface"
)

// greenDemo returns defaults for a classic green panel.
func greenDemo(title string, rows, cols int) demo {
	return demo{
		title:     title,
		rows:      rows,
		cols:      cols,
		dotWidth:  10,
		dotHeight: 10,
		on:        lcd.LCDDarkGreen,
		off:       lcd.LCDLightGreen,
	}
}

func newBlankCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "blank",
		Short: "a blank 50x50 screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cfg.runDemo(cmd, greenDemo("LCD Example: Blank", 50, 50), pattern.Blank)
		},
	}
}

func newRandomCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "random dots, white on black",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := demo{
				title:     "LCD Example: Random",
				rows:      15,
				cols:      50,
				dotWidth:  20,
				dotHeight: 35,
				on:        color.White,
				off:       color.Black,
			}
			return cfg.runDemo(cmd, d, func(rows, cols int) (pattern.Source, error) {
				return pattern.NewRandom(rows, cols, nil)
			})
		},
	}
}

func newLifeCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "life",
		Short: "Conway's Game of Life from a random board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cfg.runDemo(cmd, greenDemo("LCD Example: Game of Life", 65, 120), func(rows, cols int) (pattern.Source, error) {
				return pattern.NewLife(rows, cols, nil)
			})
		},
	}
}

func newTextCmd(cfg *config) *cobra.Command {
	var step int
	cmd := &cobra.Command{
		Use:   "text [words...]",
		Short: "a line of text, scrolling when it does not fit",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text == "" {
				text = "gogpu lcd " + lcd.Version
			}
			d := greenDemo("LCD Example: Text", 16, 64)
			d.dotWidth, d.dotHeight = 8, 8
			return cfg.runDemo(cmd, d, func(rows, cols int) (pattern.Source, error) {
				return pattern.NewText(rows, cols, text, step)
			})
		},
	}
	cmd.Flags().IntVar(&step, "step", 1, "columns scrolled per frame")
	return cmd
}

func newGraphCmd(cfg *config, name, short string, sample pattern.Sampler) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := greenDemo("LCD Example: "+strings.ToUpper(name)+" load", 32, 64)
			d.dotWidth, d.dotHeight = 8, 8
			return cfg.runDemo(cmd, d, func(rows, cols int) (pattern.Source, error) {
				return pattern.NewGraph(rows, cols, sample)
			})
		},
	}
}

func newSVGCmd(cfg *config) *cobra.Command {
	var scale int
	cmd := &cobra.Command{
		Use:   "svg file.svg",
		Short: "a vector image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := greenDemo("LCD Example: "+args[0], 64, 64)
			d.dotWidth, d.dotHeight = 8, 8
			return cfg.runDemo(cmd, d, func(rows, cols int) (pattern.Source, error) {
				f, err := os.Open(args[0])
				if err != nil {
					return nil, err
				}
				defer f.Close()
				return pattern.NewSVG(rows, cols, f, scale)
			})
		},
	}
	cmd.Flags().IntVar(&scale, "scale", 4, "rasterization pixels per dot")
	return cmd
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "list registered drivers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, name := range surface.List() {
				entry, ok := surface.Get(name)
				if !ok {
					return errors.Errorf("driver %s vanished", name)
				}
				status := "available"
				if !entry.Available() {
					status = "unavailable"
				}
				fmt.Fprintf(w, "%-8s priority %3d  %s\n", name, entry.Priority, status)
			}
			return nil
		},
	}
}
