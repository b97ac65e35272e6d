// Package colorutil provides the overlay colors used when drawing debug
// output onto pixel buffers.
package colorutil

import (
	"image/color"
)

// Common overlay colors.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Blue    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// Pixel converts c to a pixel of bpp bytes. Single-channel buffers get the
// luma value, two-channel buffers luma plus alpha.
func Pixel(c color.RGBA, bpp int) []byte {
	luma := byte(float64(c.R)*0.299 + float64(c.G)*0.587 + float64(c.B)*0.114)
	switch bpp {
	case 1:
		return []byte{luma}
	case 2:
		return []byte{luma, c.A}
	case 3:
		return []byte{c.R, c.G, c.B}
	default:
		px := make([]byte, bpp)
		copy(px, []byte{c.R, c.G, c.B, c.A})
		return px
	}
}

// Palette returns a deterministic color for index i, cycling through the
// overlay colors other than black and white.
func Palette(i int) color.RGBA {
	colors := []color.RGBA{Green, Magenta, Cyan, Yellow, Blue}
	return colors[((i%len(colors))+len(colors))%len(colors)]
}
