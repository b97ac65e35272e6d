package match

import (
	"math"
	"math/rand"
	"testing"

	"img-stitcher/internal/features"
	"img-stitcher/internal/raster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func described(t *testing.T, seed int64, coords ...[2]int) []features.Point {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	gray := raster.NewWithChannels(200, 200, 1, 0)
	for i := range gray.Pix {
		gray.Pix[i] = byte(rng.Intn(256))
	}

	points := make([]features.Point, len(coords))
	for i, c := range coords {
		points[i] = features.Point{X: c[0], Y: c[1], Alive: true}
		features.Describe(gray, &points[i], features.Horizontal)
	}
	return points
}

func pair(ax, ay, bx, by int) Pair {
	return Pair{A: features.Point{X: ax, Y: ay}, B: features.Point{X: bx, Y: by}}
}

func TestPairGeometry(t *testing.T) {
	p := pair(50, 20, 10, 50)
	assert.Equal(t, 40.0, p.Vector().X)
	assert.Equal(t, -30.0, p.Vector().Y)
	assert.InDelta(t, 50, p.Distance(), 1e-9)
	assert.InDelta(t, math.Atan(-0.75), p.Angle(), 1e-9)

	assert.InDelta(t, math.Pi/2, pair(5, 10, 5, 0).Angle(), 1e-9)
	assert.Zero(t, pair(5, 5, 5, 5).Angle())
}

func TestBestHammingSameSet(t *testing.T) {
	set := described(t, 1, [2]int{50, 70}, [2]int{100, 100}, [2]int{140, 130}, [2]int{60, 120})

	pairs := BestHamming(set, set, DefaultSimilarity)
	require.Len(t, pairs, len(set))
	for i, p := range pairs {
		assert.Equal(t, set[i].Coord(), p.A.Coord())
		assert.Equal(t, set[i].Coord(), p.B.Coord())
	}

	// A match must score strictly above the threshold.
	assert.Empty(t, BestHamming(set, set, features.DescriptorBits))
}

func TestBestHammingPicksStrongest(t *testing.T) {
	setA := described(t, 2, [2]int{100, 100})
	setB := append(described(t, 3, [2]int{100, 100}, [2]int{80, 90}), setA[0])

	pairs := BestHamming(setA, setB, 0)
	require.Len(t, pairs, 1)
	assert.Equal(t, setA[0].Descriptor, pairs[0].B.Descriptor)
}

func TestMatch(t *testing.T) {
	set := described(t, 4, [2]int{50, 70}, [2]int{100, 100}, [2]int{140, 130})
	pairs, err := Match(set, set, DefaultSimilarity)
	require.NoError(t, err)
	assert.Len(t, pairs, 3)

	pairs, err = Match(set, nil, DefaultSimilarity)
	assert.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestFilterOutliersRejectsGrossOutlier(t *testing.T) {
	var pairs []Pair
	for i := 0; i < 9; i++ {
		x, y := 20+i*13, 30+i*17
		pairs = append(pairs, pair(x+40, y, x, y))
	}
	outlier := pair(10, 300, 310, 50)
	pairs = append(pairs[:4], append([]Pair{outlier}, pairs[4:]...)...)

	kept, err := FilterOutliers(pairs)
	require.NoError(t, err)
	require.Len(t, kept, 9)
	for _, p := range kept {
		assert.Equal(t, 40.0, p.Vector().X)
		assert.Equal(t, 0.0, p.Vector().Y)
	}
	assert.Len(t, pairs, 10, "input is not modified")
	assert.Equal(t, outlier, pairs[4])
}

func TestFilterOutliersKeepsConsistentSet(t *testing.T) {
	pairs := []Pair{
		pair(140, 10, 100, 10),
		pair(141, 20, 100, 20),
		pair(139, 31, 100, 30),
	}
	kept, err := FilterOutliers(pairs)
	require.NoError(t, err)
	assert.Equal(t, pairs, kept)

	zero := []Pair{pair(5, 5, 5, 5), pair(9, 9, 9, 9)}
	kept, err = FilterOutliers(zero)
	require.NoError(t, err)
	assert.Len(t, kept, 2)
}

func TestFilterOutliersEmpty(t *testing.T) {
	_, err := FilterOutliers(nil)
	assert.ErrorIs(t, err, ErrEmptyMatchSet)
}

func TestDrawPairs(t *testing.T) {
	a := raster.New(30, 20, 0)
	b := raster.New(25, 24, 0)
	out, err := DrawPairs(a, b, []Pair{pair(10, 10, 5, 12)})
	require.NoError(t, err)
	assert.Equal(t, 55, out.Width)
	assert.Equal(t, 24, out.Height)
	assert.NotEqual(t, []byte{0, 0, 0}, out.Pixel(7, 10))
	assert.NotEqual(t, []byte{0, 0, 0}, out.Pixel(38, 12))

	_, err = DrawPairs(a, raster.NewWithChannels(5, 5, 1, 0), nil)
	assert.ErrorIs(t, err, raster.ErrPixelSizeMismatch)
}
