package scene

import (
	"image/color"
	"math"
)

var (
	lightGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	gray      = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	darkGray  = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	offWhite  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	gold      = color.RGBA{R: 255, G: 203, B: 0, A: 255}
	maroon    = color.RGBA{R: 190, G: 33, B: 55, A: 255}
	steelBlue = color.RGBA{R: 70, G: 130, B: 180, A: 255}
)

// foreground picks a text color that reads on bg.
func foreground(bg color.RGBA) color.RGBA {
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma > 128 {
		return darkGray
	}
	return offWhite
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8(math.Round((r + m) * 255)), uint8(math.Round((g + m) * 255)), uint8(math.Round((b + m) * 255))
}
