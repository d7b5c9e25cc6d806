// Command lcddemo shows animated patterns on a simulated dot-matrix LCD.
//
// Usage:
//
//	lcddemo life                      # Game of Life in a native window
//	lcddemo random --backend image --frames 10 --out frames/
//	lcddemo text "HELLO" --rows 16 --cols 64
//	lcddemo cpu --backend serial --device /dev/ttyUSB0 --dot-width 2 --dot-height 2
//
// Press Escape or close the window to quit.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator

	"github.com/gogpu/lcd"
	_ "github.com/gogpu/lcd/backend/gogpu"  // Register native windows
	_ "github.com/gogpu/lcd/backend/serial" // Register serial panels
	"github.com/gogpu/lcd/pattern"
)

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Each call returns independent flag
// state.
func newRootCmd() *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:          "lcddemo",
		Short:        "lcddemo shows patterns on a simulated LCD screen",
		Long:         "lcddemo shows patterns on a simulated dot-matrix LCD screen.",
		Version:      lcd.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogger(cmd.ErrOrStderr(), cfg.debug)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cfg.bindFlags(root)

	root.AddCommand(
		newBlankCmd(cfg),
		newRandomCmd(cfg),
		newLifeCmd(cfg),
		newTextCmd(cfg),
		newGraphCmd(cfg, "cpu", "scrolling CPU usage graph", pattern.CPUPercent),
		newGraphCmd(cfg, "mem", "scrolling memory usage graph", pattern.MemPercent),
		newSVGCmd(cfg),
		newBackendsCmd(),
	)
	return root
}

func setupLogger(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	lcd.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// run executes fn. With --debug, errors carrying a stack are printed with
// it; cobra reports the message itself.
func run(cmd *cobra.Command, cfg *config, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	if stackFramer, ok := err.(interface{ ErrorStack() string }); cfg.debug && ok {
		fmt.Fprintln(cmd.ErrOrStderr(), stackFramer.ErrorStack())
	}
	return err
}
