package raster

import (
	"testing"

	"img-stitcher/internal/accel"
	"img-stitcher/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(w, h, bpp int) *Buffer {
	b := NewWithChannels(w, h, bpp, 0)
	for i := range b.Pix {
		b.Pix[i] = byte(i)
	}
	return b
}

func TestNew(t *testing.T) {
	b := New(4, 3, 7)
	assert.Equal(t, 3, b.BytesPerPixel)
	assert.Len(t, b.Pix, 36)
	assert.Equal(t, []byte{7, 7, 7}, b.Pixel(3, 2))

	f := Fill(2, 2, []byte{1, 2})
	assert.Equal(t, []byte{1, 2, 1, 2, 1, 2, 1, 2}, f.Pix)
}

func TestSetPixel(t *testing.T) {
	b := New(4, 3, 0)
	require.NoError(t, b.SetPixel(1, 2, []byte{9, 8, 7}))
	assert.Equal(t, []byte{9, 8, 7}, b.Pixel(1, 2))

	// Out of range writes are dropped, out of range reads are zero.
	require.NoError(t, b.SetPixel(4, 0, []byte{1, 1, 1}))
	require.NoError(t, b.SetPixel(-1, 0, []byte{1, 1, 1}))
	assert.Equal(t, []byte{0, 0, 0}, b.Pixel(4, 0))
	assert.Equal(t, New(4, 3, 0).Pix[:27], b.Pix[:27])

	err := b.SetPixel(0, 0, []byte{1})
	assert.ErrorIs(t, err, ErrPixelSizeMismatch)
}

func TestFromBytes(t *testing.T) {
	raw := []byte{1, 2, 3, 255, 4, 5, 6, 128}
	b, err := FromBytes(raw, 2, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, b.BytesPerPixel)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, b.Pix)

	b, err = FromBytes([]byte{10, 200, 20, 100}, 2, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, b.BytesPerPixel)
	assert.Equal(t, []byte{10, 20}, b.Pix)

	_, err = FromBytes(raw, 3, 1, 4)
	assert.ErrorIs(t, err, ErrPixelSizeMismatch)
}

func TestMerge(t *testing.T) {
	dst := NewWithChannels(4, 4, 1, 0)
	src := NewWithChannels(3, 3, 1, 5)

	require.NoError(t, dst.Merge(src, 2, -1))
	assert.Equal(t, byte(5), dst.Value(2, 0))
	assert.Equal(t, byte(5), dst.Value(3, 1))
	assert.Equal(t, byte(0), dst.Value(2, 2))
	assert.Equal(t, byte(0), dst.Value(1, 0))

	require.NoError(t, dst.Merge(src, 10, 10))
	assert.ErrorIs(t, dst.Merge(New(1, 1, 0), 0, 0), ErrPixelSizeMismatch)
}

func TestCrop(t *testing.T) {
	b := numbered(4, 3, 2)
	c, err := b.Crop(accel.NewSoftware(), geometry.NewRectInt(1, 1, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Width)
	assert.Equal(t, b.Pixel(1, 1), c.Pixel(0, 0))
	assert.Equal(t, b.Pixel(2, 2), c.Pixel(1, 1))

	_, err = b.Crop(accel.NewSoftware(), geometry.NewRectInt(3, 0, 2, 1))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestGray(t *testing.T) {
	b := Fill(3, 2, []byte{100, 100, 100})
	g, err := b.Gray(accel.NewSoftware())
	require.NoError(t, err)
	assert.Equal(t, 1, g.BytesPerPixel)
	for _, v := range g.Pix {
		assert.InDelta(t, 100, int(v), 1)
	}

	single := numbered(3, 2, 1)
	g, err = single.Gray(accel.NewSoftware())
	require.NoError(t, err)
	assert.True(t, single.Equal(g))
	g.Pix[0] = 99
	assert.Equal(t, byte(0), single.Pix[0])
}

func TestChannel(t *testing.T) {
	b := numbered(2, 2, 3)
	c, err := b.Channel(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 4, 7, 10}, c.Pix)

	_, err = b.Channel(3)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestTransformAndEach(t *testing.T) {
	b := numbered(3, 2, 1)
	require.NoError(t, b.Transform(TransformFunc(func(x, y int, px []byte) []byte {
		return []byte{255 - px[0]}
	})))
	assert.Equal(t, byte(250), b.Value(2, 1))

	var sum int
	b.Each(VisitorFunc(func(x, y int, px []byte) { sum += int(px[0]) }))
	assert.Equal(t, 6*255-15, sum)

	err := b.Transform(TransformFunc(func(x, y int, px []byte) []byte { return nil }))
	assert.ErrorIs(t, err, ErrPixelSizeMismatch)
}

func TestPad(t *testing.T) {
	b := NewWithChannels(2, 3, 1, 0)
	copy(b.Pix, []byte{10, 20, 50, 50, 30, 40})

	p := b.Pad(2)
	assert.Equal(t, 6, p.Width)
	assert.Equal(t, 7, p.Height)
	assert.Equal(t, byte(25), p.Value(0, 0))
	assert.Equal(t, byte(25), p.Value(5, 6))
	assert.Equal(t, byte(10), p.Value(2, 2))
	assert.Equal(t, byte(40), p.Value(3, 4))
}

func TestDraw(t *testing.T) {
	b := NewWithChannels(10, 10, 1, 0)
	require.NoError(t, b.DrawCross(5, 5, []byte{1}))
	assert.Equal(t, byte(0), b.Value(5, 5))
	assert.Equal(t, byte(1), b.Value(2, 5))
	assert.Equal(t, byte(1), b.Value(5, 8))

	l := NewWithChannels(10, 10, 1, 0)
	require.NoError(t, l.DrawLine(0, 0, 9, 0, []byte{1}))
	for x := 0; x < 9; x++ {
		assert.Equal(t, byte(1), l.Value(x, 0))
	}
	assert.Equal(t, byte(0), l.Value(0, 1))
	assert.ErrorIs(t, l.DrawLine(0, 0, 3, 3, []byte{1, 2}), ErrPixelSizeMismatch)
}
