package lcd

import "image/color"

// Colors of a green backlit LCD panel.
var (
	// LCDDarkGreen is the on color of green backlit LCD screens.
	LCDDarkGreen = color.RGBA{R: 69, G: 75, B: 59, A: 255}

	// LCDLightGreen is the off color of green backlit LCD screens.
	LCDLightGreen = color.RGBA{R: 158, G: 171, B: 136, A: 255}
)
