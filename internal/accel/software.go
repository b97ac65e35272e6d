package accel

import (
	"math"

	"img-stitcher/pkg/geometry"
)

// Software is the pure-Go Accelerator. The zero value is ready to use.
type Software struct{}

// NewSoftware returns a Software accelerator.
func NewSoftware() *Software {
	return &Software{}
}

// ToGray implements Accelerator.
func (s *Software) ToGray(pix []byte, channels int) ([]byte, error) {
	if channels <= 0 || len(pix)%channels != 0 {
		return nil, failure("to_gray", "%d bytes is not a multiple of %d channels", len(pix), channels)
	}

	n := len(pix) / channels
	out := make([]byte, n)
	if channels < 3 {
		for i := range out {
			out[i] = pix[i*channels]
		}
		return out, nil
	}

	for i := range out {
		p := pix[i*channels : i*channels+3]
		out[i] = byte(float64(p[0])*0.299 + float64(p[1])*0.587 + float64(p[2])*0.114)
	}
	return out, nil
}

// Crop implements Accelerator.
func (s *Software) Crop(pix []byte, srcWidth, x, y, w, h, channels int) ([]byte, error) {
	if channels <= 0 || srcWidth <= 0 || len(pix)%(srcWidth*channels) != 0 {
		return nil, failure("crop", "bad source geometry: %d bytes, width %d, %d channels", len(pix), srcWidth, channels)
	}
	srcHeight := len(pix) / (srcWidth * channels)
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > srcWidth || y+h > srcHeight {
		return nil, failure("crop", "rect (%d,%d %dx%d) outside %dx%d", x, y, w, h, srcWidth, srcHeight)
	}

	out := make([]byte, w*h*channels)
	rowBytes := w * channels
	for row := 0; row < h; row++ {
		src := ((y+row)*srcWidth + x) * channels
		copy(out[row*rowBytes:(row+1)*rowBytes], pix[src:src+rowBytes])
	}
	return out, nil
}

// Normalize implements Accelerator.
func (s *Software) Normalize(data []byte, max float32) ([]float32, error) {
	if max == 0 {
		return nil, failure("normalize", "max is zero")
	}
	out := make([]float32, len(data))
	for i, v := range data {
		out[i] = float32(v) / max
	}
	return out, nil
}

// Convolve implements Accelerator.
func (s *Software) Convolve(data []float32, width, height int, k Kernel) ([]float32, error) {
	if k.Size <= 0 || len(k.Values) != k.Size*k.Size {
		return nil, failure("convolve", "malformed %dx%d kernel", k.Size, k.Size)
	}
	if width < k.Size || height < k.Size || len(data) != width*height {
		return nil, failure("convolve", "%d values for %dx%d input with %d kernel", len(data), width, height, k.Size)
	}

	outW := width - k.Size + 1
	outH := height - k.Size + 1
	out := make([]float32, outW*outH)
	for oy := 0; oy < outH; oy++ {
		for ox := 0; ox < outW; ox++ {
			var sum float32
			for ky := 0; ky < k.Size; ky++ {
				row := (oy+ky)*width + ox
				for kx := 0; kx < k.Size; kx++ {
					sum += k.Values[ky*k.Size+kx] * data[row+kx]
				}
			}
			out[oy*outW+ox] = sum
		}
	}
	return out, nil
}

// Recover implements Accelerator.
func (s *Software) Recover(data []float32, max float32) ([]byte, error) {
	out := make([]byte, len(data))
	for i, v := range data {
		out[i] = byte(geometry.Clamp(math.Abs(float64(v))/8*float64(max), 0, 255))
	}
	return out, nil
}
