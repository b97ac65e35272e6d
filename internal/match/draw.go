package match

import (
	"fmt"

	"img-stitcher/internal/raster"
	"img-stitcher/pkg/colorutil"
)

// DrawPairs renders a and b side by side and joins every pair with a line.
// Both buffers must have the same channel count.
func DrawPairs(a, b *raster.Buffer, pairs []Pair) (*raster.Buffer, error) {
	if a.BytesPerPixel != b.BytesPerPixel {
		return nil, fmt.Errorf("draw pairs: %d vs %d channels: %w",
			a.BytesPerPixel, b.BytesPerPixel, raster.ErrPixelSizeMismatch)
	}

	out := raster.NewWithChannels(a.Width+b.Width, max(a.Height, b.Height), a.BytesPerPixel, 0)
	if err := out.Merge(a, 0, 0); err != nil {
		return nil, err
	}
	if err := out.Merge(b, a.Width, 0); err != nil {
		return nil, err
	}

	for i, p := range pairs {
		px := colorutil.Pixel(colorutil.Palette(i), out.BytesPerPixel)
		if err := out.DrawLine(p.A.X, p.A.Y, p.B.X+a.Width, p.B.Y, px); err != nil {
			return nil, err
		}
		if err := out.DrawCross(p.A.X, p.A.Y, px); err != nil {
			return nil, err
		}
		if err := out.DrawCross(p.B.X+a.Width, p.B.Y, px); err != nil {
			return nil, err
		}
	}
	return out, nil
}
