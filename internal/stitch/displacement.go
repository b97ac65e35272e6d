// Package stitch estimates the offset between two overlapping images from
// matched features and composites them into one seamless buffer.
package stitch

import (
	"errors"
	"fmt"

	"img-stitcher/internal/features"
	"img-stitcher/internal/match"
	"img-stitcher/pkg/geometry"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyMatchSet is returned when no matched pairs are available to
	// estimate a displacement from.
	ErrEmptyMatchSet = match.ErrEmptyMatchSet

	// ErrNoOverlap is returned when the displacement leaves no region
	// shared by both images.
	ErrNoOverlap = errors.New("images do not overlap")
)

// EstimateDisplacement returns the mean of A - B over all pairs: the
// translation that places image B in image A's coordinate space.
func EstimateDisplacement(pairs []match.Pair) (geometry.Point2D, error) {
	if len(pairs) == 0 {
		return geometry.Point2D{}, fmt.Errorf("estimate displacement: %w", ErrEmptyMatchSet)
	}
	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	for i, p := range pairs {
		v := p.Vector()
		xs[i], ys[i] = v.X, v.Y
	}
	return geometry.Point2D{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil)}, nil
}

// LocalVector interpolates the B - A vector at position pos across the
// stitching axis (the row for horizontal stitching, the column for
// vertical). The two pairs bracketing pos are blended linearly by distance;
// outside the span of the pairs the nearest pair's vector is used as is.
// The second result is false when pairs is empty.
func LocalVector(pos int, pairs []match.Pair, axis features.Direction) (geometry.Point2D, bool) {
	key := func(p match.Pair) int {
		// Across the axis: y for horizontal, x for vertical.
		return axis.Along(p.A.Y, p.A.X)
	}

	var left, right *match.Pair
	for i := range pairs {
		k := key(pairs[i])
		if k <= pos && (left == nil || k > key(*left)) {
			left = &pairs[i]
		}
		if k > pos && (right == nil || k < key(*right)) {
			right = &pairs[i]
		}
	}

	switch {
	case left == nil && right == nil:
		return geometry.Point2D{}, false
	case left == nil:
		return right.Vector().Scale(-1), true
	case right == nil:
		return left.Vector().Scale(-1), true
	}

	span := float64(key(*right) - key(*left))
	rightWeight := float64(pos-key(*left)) / span
	leftWeight := float64(key(*right)-pos) / span
	return left.Vector().Scale(-leftWeight).Add(right.Vector().Scale(-rightWeight)), true
}
