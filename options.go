package lcd

import "image/color"

// Option configures a Screen during creation.
//
// Example:
//
//	screen, err := lcd.New(drv, "LCD", 64, 96,
//	    lcd.WithColors(color.White, color.Black),
//	    lcd.WithDotSize(20, 35))
type Option func(*screenOptions)

// screenOptions holds optional configuration for Screen creation.
type screenOptions struct {
	on, off    color.Color
	dotW, dotH int
	centered   bool
}

// defaultOptions returns a green LCD panel with 10x10 pixel dots.
func defaultOptions() screenOptions {
	return screenOptions{
		on:       LCDDarkGreen,
		off:      LCDLightGreen,
		dotW:     10,
		dotH:     10,
		centered: true,
	}
}

// WithColors sets the colors of on and off dots.
// Nil colors keep the defaults.
func WithColors(on, off color.Color) Option {
	return func(o *screenOptions) {
		if on != nil {
			o.on = on
		}
		if off != nil {
			o.off = off
		}
	}
}

// WithDotSize sets the pixel width and height of each dot.
// Sizes are validated by New.
func WithDotSize(width, height int) Option {
	return func(o *screenOptions) {
		o.dotW = width
		o.dotH = height
	}
}

// WithCentered controls whether the window is centered on the display.
// Windows are centered by default.
func WithCentered(centered bool) Option {
	return func(o *screenOptions) {
		o.centered = centered
	}
}
