package features

import (
	"sort"

	"img-stitcher/pkg/geometry"

	"github.com/samber/lo"
)

// Suppress performs non-maximum suppression. Every pair of distinct input
// points within radius of each other on both axes is compared, and the one
// whose score does not reach the other's is marked dead. Equal scores mark
// both. Points that arrive already dead take no part. The comparison is
// all-pairs, so the cost is quadratic in len(points).
func Suppress(points []Point, radius int) []Point {
	live := lo.Filter(points, func(p Point, _ int) bool { return p.Alive })
	scores := lo.Map(live, func(p Point, _ int) int { return p.Score() })

	for i := range live {
		for j := range live {
			if i == j || (live[i].X == live[j].X && live[i].Y == live[j].Y) {
				continue
			}
			if geometry.Abs(live[i].X-live[j].X) > radius || geometry.Abs(live[i].Y-live[j].Y) > radius {
				continue
			}
			if scores[i] >= scores[j] {
				live[j].Alive = false
			}
		}
	}

	return lo.Filter(live, func(p Point, _ int) bool { return p.Alive })
}

// Strongest returns the n highest-scoring points, keeping scan order among
// equal scores.
func Strongest(points []Point, n int) []Point {
	if n >= len(points) {
		return points
	}
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score() > sorted[j].Score()
	})
	return sorted[:n]
}
