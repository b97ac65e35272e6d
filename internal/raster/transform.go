package raster

import (
	"fmt"
	"math"
)

// PixelTransform maps the pixel at (x,y) to a new value.
type PixelTransform interface {
	TransformPixel(x, y int, px []byte) []byte
}

// TransformFunc adapts a function to PixelTransform.
type TransformFunc func(x, y int, px []byte) []byte

// TransformPixel calls f.
func (f TransformFunc) TransformPixel(x, y int, px []byte) []byte {
	return f(x, y, px)
}

// PixelVisitor observes the pixel at (x,y).
type PixelVisitor interface {
	VisitPixel(x, y int, px []byte)
}

// VisitorFunc adapts a function to PixelVisitor.
type VisitorFunc func(x, y int, px []byte)

// VisitPixel calls f.
func (f VisitorFunc) VisitPixel(x, y int, px []byte) {
	f(x, y, px)
}

// Transform replaces every pixel with t's result, row by row.
func (b *Buffer) Transform(t PixelTransform) error {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if err := b.SetPixel(x, y, t.TransformPixel(x, y, b.Pixel(x, y))); err != nil {
				return fmt.Errorf("transform (%d,%d): %w", x, y, err)
			}
		}
	}
	return nil
}

// Each visits every pixel in row-major order. The slice passed to v is a copy.
func (b *Buffer) Each(v PixelVisitor) {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			v.VisitPixel(x, y, b.Pixel(x, y))
		}
	}
}

// Pad returns a copy of b surrounded by a border of the given width. The
// border color is the per-channel average of b's first and last rows.
func (b *Buffer) Pad(width int) *Buffer {
	bpp := b.BytesPerPixel
	sums := make([]int, bpp)
	samples := 0
	if b.Height > 0 {
		for x := 0; x < b.Width; x++ {
			top := b.Pixel(x, 0)
			bottom := b.Pixel(x, b.Height-1)
			for c := 0; c < bpp; c++ {
				sums[c] += int(top[c]) + int(bottom[c])
			}
			samples += 2
		}
	}

	border := make([]byte, bpp)
	if samples > 0 {
		for c := range border {
			border[c] = byte(sums[c] / samples)
		}
	}

	out := Fill(b.Width+2*width, b.Height+2*width, border)
	// Channel counts match by construction.
	_ = out.Merge(b, width, width)
	return out
}

var crossOffsets = [][2]int{
	{-3, 0}, {-2, 0}, {-1, 0}, {3, 0}, {2, 0}, {1, 0},
	{0, -3}, {0, -2}, {0, -1}, {0, 3}, {0, 2}, {0, 1},
}

// DrawCross marks (x,y) with a small plus sign. The center pixel itself is
// left untouched.
func (b *Buffer) DrawCross(x, y int, px []byte) error {
	for _, o := range crossOffsets {
		if err := b.SetPixel(x+o[0], y+o[1], px); err != nil {
			return err
		}
	}
	return nil
}

// DrawLine draws a straight segment from (x0,y0) towards (x1,y1).
func (b *Buffer) DrawLine(x0, y0, x1, y1 int, px []byte) error {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	dist := math.Round(math.Hypot(dx, dy))
	if dist == 0 {
		return b.SetPixel(x0, y0, px)
	}

	cos := dx / dist
	sin := dy / dist
	for d := 0; d < int(dist); d++ {
		x := x0 + int(math.Round(float64(d)*cos))
		y := y0 + int(math.Round(float64(d)*sin))
		if err := b.SetPixel(x, y, px); err != nil {
			return err
		}
	}
	return nil
}
