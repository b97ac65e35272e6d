package features

import (
	"image/color"

	"img-stitcher/internal/raster"
	"img-stitcher/pkg/colorutil"
)

// DrawMarkers draws a small cross at every point onto buf.
func DrawMarkers(buf *raster.Buffer, points []Point, c color.RGBA) error {
	px := colorutil.Pixel(c, buf.BytesPerPixel)
	for _, p := range points {
		if err := buf.DrawCross(p.X, p.Y, px); err != nil {
			return err
		}
	}
	return nil
}
