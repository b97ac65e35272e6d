// Package raster provides the flat row-major pixel buffer shared by every
// stage of the stitching pipeline.
package raster

import (
	"bytes"
	"errors"
	"fmt"

	"img-stitcher/internal/accel"
	"img-stitcher/pkg/geometry"
)

var (
	// ErrPixelSizeMismatch is returned when a pixel's byte count does not
	// match the buffer's bytes per pixel.
	ErrPixelSizeMismatch = errors.New("pixel size mismatch")

	// ErrOutOfBounds is returned when a region does not fit the buffer.
	ErrOutOfBounds = errors.New("region out of bounds")
)

// Buffer is a raster image stored as Width*Height pixels of BytesPerPixel
// bytes each. Pixel (x,y) occupies Pix[(y*Width+x)*BytesPerPixel:][:BytesPerPixel].
type Buffer struct {
	Width         int
	Height        int
	BytesPerPixel int
	Pix           []byte
}

// New creates a 3-channel buffer with every byte set to fill.
func New(width, height int, fill byte) *Buffer {
	return NewWithChannels(width, height, 3, fill)
}

// NewWithChannels creates a buffer with the given channel count, every byte
// set to fill.
func NewWithChannels(width, height, bpp int, fill byte) *Buffer {
	width = max(width, 0)
	height = max(height, 0)
	pix := make([]byte, width*height*bpp)
	if fill != 0 {
		for i := range pix {
			pix[i] = fill
		}
	}
	return &Buffer{Width: width, Height: height, BytesPerPixel: bpp, Pix: pix}
}

// Fill creates a buffer where every pixel equals pixel. The channel count is
// len(pixel).
func Fill(width, height int, pixel []byte) *Buffer {
	b := NewWithChannels(width, height, len(pixel), 0)
	for i := 0; i < len(b.Pix); i += len(pixel) {
		copy(b.Pix[i:], pixel)
	}
	return b
}

// FromBytes wraps decoded pixel bytes. Two- and four-byte pixels (gray+alpha,
// RGBA, CMYK) are reduced to their leading bpp-1 channels.
func FromBytes(raw []byte, width, height, bpp int) (*Buffer, error) {
	if width < 0 || height < 0 || bpp <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%dx%d", width, height, bpp)
	}
	if len(raw) != width*height*bpp {
		return nil, fmt.Errorf("have %d bytes, want %d for %dx%dx%d: %w",
			len(raw), width*height*bpp, width, height, bpp, ErrPixelSizeMismatch)
	}
	if bpp != 2 && bpp != 4 {
		return &Buffer{Width: width, Height: height, BytesPerPixel: bpp, Pix: raw}, nil
	}

	keep := bpp - 1
	pix := make([]byte, width*height*keep)
	for i, j := 0, 0; i < len(raw); i, j = i+bpp, j+keep {
		copy(pix[j:j+keep], raw[i:i+keep])
	}
	return &Buffer{Width: width, Height: height, BytesPerPixel: keep, Pix: pix}, nil
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, BytesPerPixel: b.BytesPerPixel, Pix: pix}
}

// Equal reports whether two buffers have identical geometry and contents.
func (b *Buffer) Equal(other *Buffer) bool {
	return b.Width == other.Width && b.Height == other.Height &&
		b.BytesPerPixel == other.BytesPerPixel && bytes.Equal(b.Pix, other.Pix)
}

// Bounds returns the buffer extent as a rectangle at the origin.
func (b *Buffer) Bounds() geometry.RectInt {
	return geometry.RectInt{Width: b.Width, Height: b.Height}
}

// In reports whether (x,y) is inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

func (b *Buffer) offset(x, y int) int {
	return (y*b.Width + x) * b.BytesPerPixel
}

// Pixel returns a copy of the pixel at (x,y). Coordinates outside the buffer
// yield an all-zero pixel.
func (b *Buffer) Pixel(x, y int) []byte {
	px := make([]byte, b.BytesPerPixel)
	if !b.In(x, y) {
		return px
	}
	o := b.offset(x, y)
	copy(px, b.Pix[o:o+b.BytesPerPixel])
	return px
}

// Value returns the first channel of (x,y). The caller guarantees the
// coordinate is in bounds.
func (b *Buffer) Value(x, y int) byte {
	return b.Pix[b.offset(x, y)]
}

// SetPixel overwrites the pixel at (x,y). Writes outside the buffer are
// ignored.
func (b *Buffer) SetPixel(x, y int, px []byte) error {
	if len(px) != b.BytesPerPixel {
		return fmt.Errorf("pixel has %d bytes, buffer has %d: %w",
			len(px), b.BytesPerPixel, ErrPixelSizeMismatch)
	}
	if !b.In(x, y) {
		return nil
	}
	copy(b.Pix[b.offset(x, y):], px)
	return nil
}

// Merge copies every pixel of other into b with other's origin at (atX,atY).
// Pixels landing outside b are dropped; no blending takes place.
func (b *Buffer) Merge(other *Buffer, atX, atY int) error {
	if other.BytesPerPixel != b.BytesPerPixel {
		return fmt.Errorf("merge %d-channel into %d-channel buffer: %w",
			other.BytesPerPixel, b.BytesPerPixel, ErrPixelSizeMismatch)
	}

	dst := b.Bounds().Intersect(geometry.RectInt{X: atX, Y: atY, Width: other.Width, Height: other.Height})
	if dst.Empty() {
		return nil
	}

	rowBytes := dst.Width * b.BytesPerPixel
	for y := dst.Y; y < dst.Y+dst.Height; y++ {
		so := other.offset(dst.X-atX, y-atY)
		do := b.offset(dst.X, y)
		copy(b.Pix[do:do+rowBytes], other.Pix[so:so+rowBytes])
	}
	return nil
}

// Crop returns the w x h region at (x,y). The copy is performed by acc.
func (b *Buffer) Crop(acc accel.Accelerator, r geometry.RectInt) (*Buffer, error) {
	if !r.Within(b.Width, b.Height) {
		return nil, fmt.Errorf("crop %+v from %dx%d: %w", r, b.Width, b.Height, ErrOutOfBounds)
	}
	if r.Empty() {
		return NewWithChannels(r.Width, r.Height, b.BytesPerPixel, 0), nil
	}

	pix, err := acc.Crop(b.Pix, b.Width, r.X, r.Y, r.Width, r.Height, b.BytesPerPixel)
	if err != nil {
		return nil, fmt.Errorf("crop: %w", err)
	}
	return &Buffer{Width: r.Width, Height: r.Height, BytesPerPixel: b.BytesPerPixel, Pix: pix}, nil
}

// Gray returns a single-channel luma copy of the buffer computed by acc.
func (b *Buffer) Gray(acc accel.Accelerator) (*Buffer, error) {
	if b.BytesPerPixel == 1 {
		return b.Clone(), nil
	}
	pix, err := acc.ToGray(b.Pix, b.BytesPerPixel)
	if err != nil {
		return nil, fmt.Errorf("grayscale: %w", err)
	}
	if len(pix) != b.Width*b.Height {
		return nil, fmt.Errorf("grayscale returned %d bytes for %dx%d: %w",
			len(pix), b.Width, b.Height, accel.ErrAcceleratorFailure)
	}
	return &Buffer{Width: b.Width, Height: b.Height, BytesPerPixel: 1, Pix: pix}, nil
}

// Channel extracts channel i as a single-channel buffer.
func (b *Buffer) Channel(i int) (*Buffer, error) {
	if i < 0 || i >= b.BytesPerPixel {
		return nil, fmt.Errorf("channel %d of %d: %w", i, b.BytesPerPixel, ErrOutOfBounds)
	}
	out := NewWithChannels(b.Width, b.Height, 1, 0)
	for p := range out.Pix {
		out.Pix[p] = b.Pix[p*b.BytesPerPixel+i]
	}
	return out, nil
}
