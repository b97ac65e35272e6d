package accel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGray(t *testing.T) {
	s := NewSoftware()
	gray, err := s.ToGray([]byte{255, 0, 0, 0, 255, 0, 0, 0, 255}, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{76, 149, 29}, gray)

	gray, err = s.ToGray([]byte{10, 200, 20, 100}, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 20}, gray)

	_, err = s.ToGray([]byte{1, 2, 3, 4}, 3)
	assert.ErrorIs(t, err, ErrAcceleratorFailure)
}

func TestCrop(t *testing.T) {
	s := NewSoftware()
	pix := []byte{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}
	out, err := s.Crop(pix, 4, 1, 1, 2, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 6, 9, 10}, out)

	_, err = s.Crop(pix, 4, 3, 0, 2, 1, 1)
	assert.ErrorIs(t, err, ErrAcceleratorFailure)
}

func TestNormalizeRecover(t *testing.T) {
	s := NewSoftware()
	norm, err := s.Normalize([]byte{0, 51, 255}, 255)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{0, 0.2, 1}, norm, 1e-6)

	_, err = s.Normalize([]byte{1}, 0)
	assert.ErrorIs(t, err, ErrAcceleratorFailure)

	rec, err := s.Recover([]float32{-0.8, 0.4, 100}, 255)
	require.NoError(t, err)
	assert.Equal(t, []byte{25, 12, 255}, rec)
}

func TestConvolve(t *testing.T) {
	s := NewSoftware()

	flat := make([]float32, 25)
	for i := range flat {
		flat[i] = 0.5
	}
	out, err := s.Convolve(flat, 5, 5, Laplace8())
	require.NoError(t, err)
	require.Len(t, out, 9)
	for _, v := range out {
		assert.InDelta(t, 0, v, 1e-6)
	}

	spike := make([]float32, 9)
	spike[4] = 1
	out, err = s.Convolve(spike, 3, 3, Laplace4())
	require.NoError(t, err)
	assert.Equal(t, []float32{-4}, out)

	_, err = s.Convolve(spike, 3, 3, Laplace12())
	assert.ErrorIs(t, err, ErrAcceleratorFailure)
}

func TestKernelByName(t *testing.T) {
	k, err := KernelByName("laplace12")
	require.NoError(t, err)
	assert.Equal(t, 4, k.Size)
	assert.Equal(t, float32(-3), k.At(1, 2))

	k, err = KernelByName("")
	require.NoError(t, err)
	assert.Equal(t, Laplace8(), k)

	_, err = KernelByName("sobel")
	assert.Error(t, err)

	_, err = NewKernel([][]float32{{1, 2}, {3}})
	assert.Error(t, err)
}

func TestLaplacian(t *testing.T) {
	s := NewSoftware()

	flat := make([]byte, 8*8)
	for i := range flat {
		flat[i] = 120
	}
	res, err := Laplacian(s, flat, 8, 8, 1, Laplace8())
	require.NoError(t, err)
	assert.Equal(t, 6, res.Width)
	assert.Equal(t, 6, res.Height)
	assert.Zero(t, res.StdDev)

	checker := make([]byte, 8*8)
	for i := range checker {
		if (i%8+i/8)%2 == 0 {
			checker[i] = 255
		}
	}
	sharp, err := Laplacian(s, checker, 8, 8, 1, Laplace4())
	require.NoError(t, err)
	assert.Zero(t, sharp.StdDev)
	assert.Equal(t, byte(127), sharp.Pix[0])

	half := make([]byte, 8*8)
	for i := range half {
		if i%8 >= 4 {
			half[i] = 255
		}
	}
	edge, err := Laplacian(s, half, 8, 8, 1, Laplace4())
	require.NoError(t, err)
	assert.Greater(t, edge.StdDev, 0.0)
}
