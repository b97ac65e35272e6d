// Package features finds FAST-style corners in grayscale buffers, thins them
// with non-maximum suppression and describes them with a 1024-bit binary
// descriptor.
package features

import (
	"time"

	"img-stitcher/internal/raster"
	"img-stitcher/pkg/geometry"

	log "github.com/sirupsen/logrus"
)

const (
	ringSize = 16

	// MinRun is the shortest run of ring samples beyond threshold that makes
	// a corner.
	MinRun = 10

	// DefaultThreshold is the intensity difference used by the stitcher.
	DefaultThreshold = 10

	// DefaultRadius is the suppression window radius (a 5x5 window).
	DefaultRadius = 2

	pairScale = 2
)

// Bresenham circle of radius 3, clockwise from the top.
var ring = [ringSize][2]int{
	{0, -3}, {1, -3}, {2, -2}, {3, -1},
	{3, 0}, {3, 1}, {2, 2}, {1, 3},
	{0, 3}, {-1, 3}, {-2, 2}, {-3, 1},
	{-3, 0}, {-3, -1}, {-2, -2}, {-1, -3},
}

// The ring is walked this far so runs that wrap past the start are counted.
const ringWalk = ringSize + ringSize/2

var cardinals = [4][2]int{{0, -3}, {3, 0}, {0, 3}, {-3, 0}}

// Candidates scans every coordinate of mask (clipped to the buffer) and
// returns the points that pass the corner test. Only the first channel of
// gray is read. Descriptors are left empty.
func Candidates(gray *raster.Buffer, mask geometry.RectInt, threshold int) []Point {
	area := gray.Bounds().Intersect(mask)
	var points []Point
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			if p, ok := testCorner(gray, x, y, threshold); ok {
				points = append(points, p)
			}
		}
	}
	return points
}

func testCorner(gray *raster.Buffer, x, y, threshold int) (Point, bool) {
	center := int(gray.Value(x, y))

	// Every cardinal sample must stand out before the full ring is read.
	for _, c := range cardinals {
		sx, sy := x+c[0], y+c[1]
		if !gray.In(sx, sy) {
			return Point{}, false
		}
		if geometry.Abs(int(gray.Value(sx, sy))-center) <= threshold {
			return Point{}, false
		}
	}

	p := Point{X: x, Y: y, Intensity: byte(center), Alive: true}
	run, longest := 0, 0
	for i := 0; i < ringWalk; i++ {
		o := ring[i%ringSize]
		sx, sy := x+o[0], y+o[1]
		if !gray.In(sx, sy) {
			return Point{}, false
		}
		delta := int(gray.Value(sx, sy)) - center
		if i < ringSize {
			p.Deltas[i] = int16(delta)
		}
		if geometry.Abs(delta) > threshold {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}

	if longest < MinRun {
		return Point{}, false
	}
	return p, true
}

// Describe fills p's descriptor from gray. Pairs with a sample outside the
// buffer stay indeterminate.
func Describe(gray *raster.Buffer, p *Point, dir Direction) {
	var d Descriptor
	for i := 0; i < DescriptorBits; i++ {
		adx, ady := dir.Orient(int(pairAX[i])*pairScale, int(pairAY[i])*pairScale)
		bdx, bdy := dir.Orient(int(pairBX[i])*pairScale, int(pairBY[i])*pairScale)
		ax, ay := p.X+adx, p.Y+ady
		bx, by := p.X+bdx, p.Y+bdy
		if !gray.In(ax, ay) || !gray.In(bx, by) {
			continue
		}
		d.set(i, gray.Value(ax, ay) > gray.Value(bx, by))
	}
	p.Descriptor = d
}

// Detect returns every corner in mask with its descriptor computed.
func Detect(gray *raster.Buffer, mask geometry.RectInt, threshold int, dir Direction) []Point {
	points := Candidates(gray, mask, threshold)
	for i := range points {
		Describe(gray, &points[i], dir)
	}
	return points
}

// Search is the detection pass used by the stitcher: corners are suppressed
// with the given window radius before descriptors are computed, and at most
// maxPoints of the strongest survivors are kept (0 means no cap).
func Search(gray *raster.Buffer, mask geometry.RectInt, threshold int, dir Direction, radius, maxPoints int) []Point {
	start := time.Now()
	points := Candidates(gray, mask, threshold)
	detected := len(points)

	points = Suppress(points, radius)
	if maxPoints > 0 && len(points) > maxPoints {
		points = Strongest(points, maxPoints)
	}
	for i := range points {
		Describe(gray, &points[i], dir)
	}

	log.WithFields(log.Fields{
		"mask":     mask,
		"detected": detected,
		"kept":     len(points),
		"elapsed":  time.Since(start),
	}).Debug("feature search")
	return points
}
