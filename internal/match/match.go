// Package match pairs feature points across two images by descriptor
// similarity and rejects pairs whose geometry disagrees with the majority.
package match

import (
	"errors"
	"math"
	"time"

	"img-stitcher/internal/features"
	"img-stitcher/pkg/geometry"

	log "github.com/sirupsen/logrus"
)

// ErrEmptyMatchSet is returned by operations that need at least one pair.
var ErrEmptyMatchSet = errors.New("empty match set")

// DefaultSimilarity is the minimum similarity the stitcher accepts. A match
// needs a score strictly above it.
const DefaultSimilarity = 900

// Pair is a correspondence between a point in image A and one in image B.
type Pair struct {
	A features.Point
	B features.Point
}

// Vector returns A - B, the translation that carries B onto A.
func (p Pair) Vector() geometry.Point2D {
	return p.A.Coord().Sub(p.B.Coord())
}

// Distance is the Euclidean length of the pair's displacement.
func (p Pair) Distance() float64 {
	return p.Vector().Length()
}

// Angle is the slope angle of the line through A and B, in [-pi/2, pi/2].
// It is not a heading: opposite displacements share an angle. Vertical
// lines report pi/2 and coincident points 0.
func (p Pair) Angle() float64 {
	v := p.Vector()
	if v.X == 0 {
		if v.Y == 0 {
			return 0
		}
		return math.Pi / 2
	}
	return math.Atan(v.Y / v.X)
}

// BestHamming matches every point of setA to the point of setB with the
// strictly greatest descriptor similarity, keeping the pair only when that
// similarity exceeds threshold. Matching is one-directional and compares
// every point of setA with every point of setB.
func BestHamming(setA, setB []features.Point, threshold int) []Pair {
	start := time.Now()
	var pairs []Pair
	for _, a := range setA {
		best, bestScore := -1, 0
		for j := range setB {
			if s := a.Descriptor.Similarity(setB[j].Descriptor); s > bestScore {
				best, bestScore = j, s
			}
		}
		if best < 0 || bestScore <= threshold {
			continue
		}
		pairs = append(pairs, Pair{A: a, B: setB[best]})
	}

	log.WithFields(log.Fields{
		"a":       len(setA),
		"b":       len(setB),
		"pairs":   len(pairs),
		"elapsed": time.Since(start),
	}).Debug("hamming match")
	return pairs
}

// Match runs BestHamming followed by FilterOutliers. No candidate pairs is
// not an error: the result is simply empty.
func Match(setA, setB []features.Point, threshold int) ([]Pair, error) {
	pairs := BestHamming(setA, setB, threshold)
	if len(pairs) == 0 {
		return nil, nil
	}
	return FilterOutliers(pairs)
}
