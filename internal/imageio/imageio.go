// Package imageio loads image files into raster buffers and writes them back.
package imageio

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"img-stitcher/internal/raster"
	"img-stitcher/pkg/geometry"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for file extensions Save cannot encode.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// JPEGQuality is used when saving .jpg files.
const JPEGQuality = 95

// Load decodes the image at path. Grayscale images become 1-channel
// buffers; everything else becomes 3-channel RGB with any alpha dropped.
func Load(path string) (*raster.Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage converts img to a buffer.
func FromImage(img image.Image) *raster.Buffer {
	r := img.Bounds()
	w, h := r.Dx(), r.Dy()

	switch src := img.(type) {
	case *image.Gray:
		buf := raster.NewWithChannels(w, h, 1, 0)
		for y := 0; y < h; y++ {
			copy(buf.Pix[y*w:(y+1)*w], src.Pix[y*src.Stride:])
		}
		return buf
	case *image.NRGBA:
		buf := raster.NewWithChannels(w, h, 3, 0)
		for y := 0; y < h; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < w; x++ {
				copy(buf.Pix[(y*w+x)*3:], row[x*4:x*4+3])
			}
		}
		return buf
	}

	buf := raster.NewWithChannels(w, h, 3, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(r.Min.X+x, r.Min.Y+y)).(color.NRGBA)
			o := (y*w + x) * 3
			buf.Pix[o], buf.Pix[o+1], buf.Pix[o+2] = c.R, c.G, c.B
		}
	}
	return buf
}

// ToImage converts buf for encoding. 1-channel buffers become *image.Gray,
// all others *image.NRGBA. A 2-channel buffer is read as gray plus alpha.
func ToImage(buf *raster.Buffer) image.Image {
	rect := image.Rect(0, 0, buf.Width, buf.Height)
	if buf.BytesPerPixel == 1 {
		img := image.NewGray(rect)
		copy(img.Pix, buf.Pix)
		return img
	}

	img := image.NewNRGBA(rect)
	for i := 0; i < buf.Width*buf.Height; i++ {
		px := buf.Pix[i*buf.BytesPerPixel : (i+1)*buf.BytesPerPixel]
		o := i * 4
		switch buf.BytesPerPixel {
		case 2:
			img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3] = px[0], px[0], px[0], px[1]
		case 3:
			img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3] = px[0], px[1], px[2], 255
		default:
			copy(img.Pix[o:o+4], px[:4])
		}
	}
	return img
}

// Save encodes buf to path, choosing the codec from the extension.
func Save(path string, buf *raster.Buffer) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupportedFormat(path) {
		return fmt.Errorf("save %s: %w", ext, ErrUnsupportedFormat)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	img := ToImage(buf)
	switch ext {
	case ".png":
		err = png.Encode(file, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, &jpeg.Options{Quality: JPEGQuality})
	case ".bmp":
		err = bmp.Encode(file, img)
	case ".tif", ".tiff":
		err = tiff.Encode(file, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

// SupportedFormats returns the list of supported image extensions.
func SupportedFormats() []string {
	return []string{".tiff", ".tif", ".png", ".jpg", ".jpeg", ".bmp"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}

// ReadRects parses a JSON list of [x0, y0, x1, y1] corner quadruples into
// rectangles. Corners may be given in either order.
func ReadRects(path string) ([]geometry.RectInt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rects: %w", err)
	}
	var corners [][4]int
	if err := json.Unmarshal(data, &corners); err != nil {
		return nil, fmt.Errorf("failed to parse rects %s: %w", path, err)
	}

	rects := make([]geometry.RectInt, len(corners))
	for i, c := range corners {
		x0, x1 := min(c[0], c[2]), max(c[0], c[2])
		y0, y1 := min(c[1], c[3]), max(c[1], c[3])
		rects[i] = geometry.NewRectInt(x0, y0, x1-x0, y1-y0)
	}
	return rects, nil
}
