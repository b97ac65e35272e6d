package features

import (
	"math/rand"
	"testing"

	"img-stitcher/internal/raster"
	"img-stitcher/pkg/colorutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noise(w, h int, seed int64) *raster.Buffer {
	rng := rand.New(rand.NewSource(seed))
	b := raster.NewWithChannels(w, h, 1, 0)
	for i := range b.Pix {
		b.Pix[i] = byte(rng.Intn(256))
	}
	return b
}

func point(x, y, score int) Point {
	p := Point{X: x, Y: y, Alive: true}
	p.Deltas[0] = int16(score)
	return p
}

func TestUniformHasNoCorners(t *testing.T) {
	gray := raster.NewWithChannels(32, 32, 1, 128)
	assert.Empty(t, Candidates(gray, gray.Bounds(), DefaultThreshold))
	assert.Empty(t, Search(gray, gray.Bounds(), DefaultThreshold, Horizontal, DefaultRadius, 0))
}

func TestBrightBlock(t *testing.T) {
	gray := raster.NewWithChannels(21, 21, 1, 50)
	for y := 9; y <= 11; y++ {
		for x := 9; x <= 11; x++ {
			require.NoError(t, gray.SetPixel(x, y, []byte{200}))
		}
	}

	points := Candidates(gray, gray.Bounds(), DefaultThreshold)
	require.NotEmpty(t, points)
	var center bool
	for _, p := range points {
		assert.True(t, p.X >= 9 && p.X <= 11 && p.Y >= 9 && p.Y <= 11, "corner at (%d,%d)", p.X, p.Y)
		if p.X == 10 && p.Y == 10 {
			center = true
			assert.Equal(t, byte(200), p.Intensity)
			assert.Equal(t, 16*150, p.Score())
		}
	}
	assert.True(t, center)
}

func TestSinglePixelCorner(t *testing.T) {
	gray := raster.NewWithChannels(21, 21, 1, 50)
	require.NoError(t, gray.SetPixel(7, 12, []byte{200}))

	points := Search(gray, gray.Bounds(), DefaultThreshold, Horizontal, DefaultRadius, 0)
	require.Len(t, points, 1)
	assert.Equal(t, 7, points[0].X)
	assert.Equal(t, 12, points[0].Y)
	assert.Equal(t, int16(-150), points[0].Deltas[3])

	// Too faint for a higher threshold.
	assert.Empty(t, Candidates(gray, gray.Bounds(), 150))
}

func TestCandidatesRespectMask(t *testing.T) {
	gray := raster.NewWithChannels(21, 21, 1, 50)
	require.NoError(t, gray.SetPixel(7, 12, []byte{200}))
	require.NoError(t, gray.SetPixel(14, 5, []byte{200}))

	points := Candidates(gray, raster.NewWithChannels(10, 21, 1, 0).Bounds(), DefaultThreshold)
	require.Len(t, points, 1)
	assert.Equal(t, 7, points[0].X)
}

func TestDescriptorValidity(t *testing.T) {
	gray := noise(200, 200, 1)

	p := Point{X: 40, Y: 100}
	Describe(gray, &p, Horizontal)
	assert.Equal(t, DescriptorBits, p.Descriptor.Len())
	assert.Equal(t, DescriptorBits, p.Descriptor.Similarity(p.Descriptor))

	q := Point{X: 40, Y: 100}
	Describe(gray, &q, Vertical)
	assert.Less(t, q.Descriptor.Len(), DescriptorBits)
	assert.Equal(t, q.Descriptor.Len(), q.Descriptor.Similarity(q.Descriptor))

	corner := Point{X: 0, Y: 0}
	Describe(gray, &corner, Horizontal)
	assert.Less(t, corner.Descriptor.Len(), DescriptorBits/2)
	assert.LessOrEqual(t, corner.Descriptor.Similarity(p.Descriptor), corner.Descriptor.Len())
}

func TestVerticalIsTransposedHorizontal(t *testing.T) {
	gray := noise(160, 160, 2)
	transposed := raster.NewWithChannels(160, 160, 1, 0)
	for y := 0; y < 160; y++ {
		for x := 0; x < 160; x++ {
			require.NoError(t, transposed.SetPixel(y, x, gray.Pixel(x, y)))
		}
	}

	v := Point{X: 70, Y: 90}
	Describe(gray, &v, Vertical)
	h := Point{X: 90, Y: 70}
	Describe(transposed, &h, Horizontal)
	assert.Equal(t, h.Descriptor, v.Descriptor)
}

func TestSimilarityIgnoresIndeterminateBits(t *testing.T) {
	var a, b Descriptor
	a.set(0, true)
	b.set(0, true)
	a.set(1, true)
	b.set(1, false)
	a.set(2, false)

	assert.Equal(t, 1, a.Similarity(b))
	value, ok := b.Bit(2)
	assert.False(t, value)
	assert.False(t, ok)
}

func TestSuppress(t *testing.T) {
	points := []Point{
		point(10, 10, 100),
		point(11, 12, 50),
		point(30, 30, 80),
		point(31, 31, 80),
		point(50, 50, 10),
	}

	kept := Suppress(points, DefaultRadius)
	require.Len(t, kept, 2)
	assert.Equal(t, 10, kept[0].X)
	assert.Equal(t, 50, kept[1].X)
	assert.True(t, points[1].Alive, "input is not modified")

	assert.Equal(t, kept, Suppress(kept, DefaultRadius))
}

func TestSuppressIgnoresDeadInput(t *testing.T) {
	dead := point(10, 10, 500)
	dead.Alive = false
	kept := Suppress([]Point{dead, point(11, 11, 20)}, DefaultRadius)
	require.Len(t, kept, 1)
	assert.Equal(t, 11, kept[0].X)
}

func TestStrongest(t *testing.T) {
	points := []Point{point(0, 0, 5), point(1, 0, 9), point(2, 0, 5), point(3, 0, 7)}
	top := Strongest(points, 3)
	require.Len(t, top, 3)
	assert.Equal(t, []int{1, 3, 0}, []int{top[0].X, top[1].X, top[2].X})
	assert.Len(t, Strongest(points, 10), 4)
}

func TestDirection(t *testing.T) {
	d, err := ParseDirection("V")
	require.NoError(t, err)
	assert.Equal(t, Vertical, d)

	_, err = ParseDirection("diagonal")
	assert.Error(t, err)

	text, err := Vertical.MarshalText()
	require.NoError(t, err)
	var back Direction
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, Vertical, back)

	x, y := Vertical.Orient(3, -5)
	assert.Equal(t, []int{-5, 3}, []int{x, y})
	assert.Equal(t, 7, Vertical.Along(2, 7))
	assert.Equal(t, 2, Horizontal.Along(2, 7))
}

func TestDrawMarkers(t *testing.T) {
	buf := raster.New(20, 20, 0)
	require.NoError(t, DrawMarkers(buf, []Point{point(10, 10, 1)}, colorutil.Magenta))
	assert.Equal(t, []byte{255, 0, 255}, buf.Pixel(7, 10))
	assert.Equal(t, []byte{0, 0, 0}, buf.Pixel(10, 10))
}
