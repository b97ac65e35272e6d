package stitch

import (
	"fmt"
	"math"
	"time"

	"img-stitcher/internal/accel"
	"img-stitcher/internal/features"
	"img-stitcher/internal/match"
	"img-stitcher/internal/raster"
	"img-stitcher/pkg/geometry"

	log "github.com/sirupsen/logrus"
)

// CanvasFill is the byte value of canvas pixels covered by neither image.
const CanvasFill = 255

// Placer writes image src onto the canvas at displacement d.
type Placer interface {
	Place(canvas, src *raster.Buffer, d geometry.Point2D) error
}

// Rigid places every source pixel at round(p + d).
type Rigid struct{}

// Place implements Placer.
func (Rigid) Place(canvas, src *raster.Buffer, d geometry.Point2D) error {
	if canvas.BytesPerPixel != src.BytesPerPixel {
		return fmt.Errorf("place: %w", raster.ErrPixelSizeMismatch)
	}
	bpp := src.BytesPerPixel
	for y := 0; y < src.Height; y++ {
		dy := int(math.Round(float64(y) + d.Y))
		if dy < 0 || dy >= canvas.Height {
			continue
		}
		for x := 0; x < src.Width; x++ {
			dx := int(math.Round(float64(x) + d.X))
			if dx < 0 || dx >= canvas.Width {
				continue
			}
			so := (y*src.Width + x) * bpp
			do := (dy*canvas.Width + dx) * bpp
			copy(canvas.Pix[do:do+bpp], src.Pix[so:so+bpp])
		}
	}
	return nil
}

// Refined places src by the global displacement but samples each
// destination pixel through the local vector interpolated from Pairs
// across Axis. This absorbs slight rotation or skew between the images.
type Refined struct {
	Pairs []match.Pair
	Axis  features.Direction
}

// Place implements Placer. Without pairs it falls back to Rigid.
func (r Refined) Place(canvas, src *raster.Buffer, d geometry.Point2D) error {
	if len(r.Pairs) == 0 {
		return Rigid{}.Place(canvas, src, d)
	}
	if canvas.BytesPerPixel != src.BytesPerPixel {
		return fmt.Errorf("place: %w", raster.ErrPixelSizeMismatch)
	}

	// One vector per cross-axis line.
	cross := canvas.Height
	if r.Axis == features.Vertical {
		cross = canvas.Width
	}
	vectors := make([]geometry.Point2D, cross)
	for i := range vectors {
		vectors[i], _ = LocalVector(i, r.Pairs, r.Axis)
	}

	bpp := src.BytesPerPixel
	for y := 0; y < src.Height; y++ {
		fy := float64(y) + d.Y
		if fy < 0 || fy >= float64(canvas.Height) {
			continue
		}
		for x := 0; x < src.Width; x++ {
			fx := float64(x) + d.X
			if fx < 0 || fx >= float64(canvas.Width) {
				continue
			}
			dx, dy := int(math.Round(fx)), int(math.Round(fy))
			if dx >= canvas.Width || dy >= canvas.Height {
				continue
			}

			v := vectors[r.Axis.Along(dy, dx)]
			sx := int(math.Round(float64(dx) + v.X))
			sy := int(math.Round(float64(dy) + v.Y))
			if !src.In(sx, sy) {
				continue
			}
			so := (sy*src.Width + sx) * bpp
			do := (dy*canvas.Width + dx) * bpp
			copy(canvas.Pix[do:do+bpp], src.Pix[so:so+bpp])
		}
	}
	return nil
}

// TransitionSection returns the region of an image of size w x h that the
// second image covers once placed at d. Coordinates are truncated toward
// zero. An extent goes to 0 when d moves the second image past the first.
func TransitionSection(w, h int, d geometry.Point2D) geometry.RectInt {
	return geometry.RectInt{
		X:      sectionStart(d.X),
		Y:      sectionStart(d.Y),
		Width:  sectionExtent(w, d.X),
		Height: sectionExtent(h, d.Y),
	}
}

func sectionStart(v float64) int {
	if v < 0 {
		return 0
	}
	return int(v)
}

func sectionExtent(size int, v float64) int {
	switch {
	case float64(size)-v < 0:
		return 0
	case v < 0:
		return size
	default:
		return int(float64(size) - v)
	}
}

// Fuse feathers two equally sized buffers along axis. At normalized
// position p across the overlap the output is round(a*(1-p)) +
// round(b*p), clamped to 255, so the result starts as a and drifts
// toward b.
func Fuse(a, b *raster.Buffer, axis features.Direction) (*raster.Buffer, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return nil, fmt.Errorf("fuse %dx%d with %dx%d: %w",
			a.Width, a.Height, b.Width, b.Height, raster.ErrOutOfBounds)
	}
	if a.BytesPerPixel != b.BytesPerPixel {
		return nil, fmt.Errorf("fuse: %w", raster.ErrPixelSizeMismatch)
	}

	out := raster.NewWithChannels(a.Width, a.Height, a.BytesPerPixel, 0)
	extent := float64(axis.Along(a.Width, a.Height))
	bpp := a.BytesPerPixel
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			factor := 1 - float64(axis.Along(x, y))/extent
			o := (y*a.Width + x) * bpp
			for c := 0; c < bpp; c++ {
				v := math.Round(float64(a.Pix[o+c])*factor) + math.Round(float64(b.Pix[o+c])*(1-factor))
				out.Pix[o+c] = byte(geometry.Clamp(v, 0, 255))
			}
		}
	}
	return out, nil
}

// Canvas sizes the output for b placed at d next to a along axis. The
// cross-axis extent follows a.
func Canvas(a, b *raster.Buffer, d geometry.Point2D, axis features.Direction) *raster.Buffer {
	w, h := a.Width, a.Height
	if axis == features.Vertical {
		h = max(a.Height, int(d.Y)+b.Height)
	} else {
		w = max(a.Width, int(d.X)+b.Width)
	}
	return raster.NewWithChannels(w, h, a.BytesPerPixel, CanvasFill)
}

// Composite stitches b onto a. a is copied to the canvas origin, b is
// placed at d by placer (Rigid when nil), and the transition section is
// replaced by the feathered blend of both images' contributions.
func Composite(acc accel.Accelerator, a, b *raster.Buffer, d geometry.Point2D, axis features.Direction, placer Placer) (*raster.Buffer, error) {
	start := time.Now()
	if a.BytesPerPixel != b.BytesPerPixel {
		return nil, fmt.Errorf("composite %d-channel with %d-channel image: %w",
			a.BytesPerPixel, b.BytesPerPixel, raster.ErrPixelSizeMismatch)
	}
	if placer == nil {
		placer = Rigid{}
	}

	section := TransitionSection(a.Width, a.Height, d)
	if section.Empty() {
		return nil, fmt.Errorf("composite at %+v: %w", d, ErrNoOverlap)
	}

	canvas := Canvas(a, b, d, axis)
	if err := canvas.Merge(a, 0, 0); err != nil {
		return nil, err
	}
	fromA, err := canvas.Crop(acc, section)
	if err != nil {
		return nil, fmt.Errorf("composite: %w", err)
	}

	if err := placer.Place(canvas, b, d); err != nil {
		return nil, err
	}
	fromB, err := canvas.Crop(acc, section)
	if err != nil {
		return nil, fmt.Errorf("composite: %w", err)
	}

	fused, err := Fuse(fromA, fromB, axis)
	if err != nil {
		return nil, err
	}
	if err := canvas.Merge(fused, section.X, section.Y); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"size":    fmt.Sprintf("%dx%d", canvas.Width, canvas.Height),
		"section": section,
		"elapsed": time.Since(start),
	}).Debug("composite")
	return canvas, nil
}
