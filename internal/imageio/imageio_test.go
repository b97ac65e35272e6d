package imageio

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"img-stitcher/internal/raster"
	"img-stitcher/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(bpp int) *raster.Buffer {
	buf := raster.NewWithChannels(16, 8, bpp, 0)
	for i := range buf.Pix {
		buf.Pix[i] = byte(i * 7)
	}
	return buf
}

func TestSaveLoadLossless(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.bmp", "out.tiff"} {
		t.Run(name, func(t *testing.T) {
			want := gradient(3)
			path := filepath.Join(dir, name)
			require.NoError(t, Save(path, want))

			got, err := Load(path)
			require.NoError(t, err)
			assert.True(t, want.Equal(got))
		})
	}
}

func TestSaveLoadGray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gray.png")
	want := gradient(1)
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, got.BytesPerPixel)
	assert.True(t, want.Equal(got))
}

func TestSaveUnsupported(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "out.gif"), gradient(3))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestFromImageDropsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	img.SetNRGBA(1, 0, color.NRGBA{R: 40, G: 50, B: 60, A: 128})

	buf := FromImage(img)
	assert.Equal(t, 3, buf.BytesPerPixel)
	assert.Equal(t, []byte{10, 20, 30, 40, 50, 60}, buf.Pix)
}

func TestToImageChannels(t *testing.T) {
	buf := raster.NewWithChannels(1, 1, 4, 0)
	copy(buf.Pix, []byte{1, 2, 3, 4})
	img := ToImage(buf).(*image.NRGBA)
	assert.Equal(t, []byte{1, 2, 3, 4}, img.Pix)

	buf = raster.NewWithChannels(1, 1, 2, 0)
	copy(buf.Pix, []byte{9, 200})
	img = ToImage(buf).(*image.NRGBA)
	assert.Equal(t, []byte{9, 9, 9, 200}, img.Pix)
}

func TestReadRects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rects.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[10, 20, 50, 60], [30, 40, 5, 8]]`), 0o644))

	rects, err := ReadRects(path)
	require.NoError(t, err)
	assert.Equal(t, []geometry.RectInt{
		geometry.NewRectInt(10, 20, 40, 40),
		geometry.NewRectInt(5, 8, 25, 32),
	}, rects)

	require.NoError(t, os.WriteFile(path, []byte(`{"x": 1}`), 0o644))
	_, err = ReadRects(path)
	assert.Error(t, err)
}
