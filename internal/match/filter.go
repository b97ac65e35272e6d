package match

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

const (
	// AngleTolerance is the largest accepted |angle - mean| / pi.
	AngleTolerance = 0.05
	// DistanceTolerance is the largest accepted |distance - mean| / mean.
	DistanceTolerance = 0.2
)

// FilterOutliers keeps the pairs whose line angle and displacement length
// agree with the mean over the kept set. The pair deviating furthest beyond
// tolerance is dropped and the means recomputed until every remaining pair
// passes, so a single gross outlier cannot drag the means away from the
// majority.
func FilterOutliers(pairs []Pair) ([]Pair, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("filter outliers: %w", ErrEmptyMatchSet)
	}

	kept := make([]Pair, len(pairs))
	copy(kept, pairs)
	angles := make([]float64, len(kept))
	dists := make([]float64, len(kept))
	for i, p := range kept {
		angles[i] = p.Angle()
		dists[i] = p.Distance()
	}

	for {
		meanAngle := stat.Mean(angles, nil)
		meanDist := stat.Mean(dists, nil)

		worst, worstScore := -1, 1.0
		for i := range kept {
			score := deviation(angles[i], dists[i], meanAngle, meanDist)
			if score >= worstScore && (worst < 0 || score > worstScore) {
				worst, worstScore = i, score
			}
		}
		if worst < 0 {
			return kept, nil
		}

		kept = append(kept[:worst], kept[worst+1:]...)
		angles = append(angles[:worst], angles[worst+1:]...)
		dists = append(dists[:worst], dists[worst+1:]...)
	}
}

// deviation scales a pair's angle and distance error by their tolerances.
// Values at or above 1 fail.
func deviation(angle, dist, meanAngle, meanDist float64) float64 {
	a := math.Abs(angle-meanAngle) / math.Pi / AngleTolerance
	var d float64
	if meanDist > 0 {
		d = math.Abs(dist-meanDist) / meanDist / DistanceTolerance
	}
	return math.Max(a, d)
}
