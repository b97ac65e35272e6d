// Package cvaccel implements accel.Accelerator on top of OpenCV via GoCV.
//
// OpenCV rounds where the software backend truncates, so grayscale and
// recovered bytes may differ from accel.Software by one.
package cvaccel

import (
	"fmt"
	"image"

	"img-stitcher/internal/accel"

	"gocv.io/x/gocv"
)

// Accelerator is an OpenCV-backed accel.Accelerator.
type Accelerator struct{}

// New returns an OpenCV accelerator.
func New() *Accelerator {
	return &Accelerator{}
}

func wrap(op string, err error) error {
	return fmt.Errorf("opencv %s: %v: %w", op, err, accel.ErrAcceleratorFailure)
}

func matType(channels int) (gocv.MatType, error) {
	switch channels {
	case 1:
		return gocv.MatTypeCV8UC1, nil
	case 2:
		return gocv.MatTypeCV8UC2, nil
	case 3:
		return gocv.MatTypeCV8UC3, nil
	case 4:
		return gocv.MatTypeCV8UC4, nil
	default:
		return 0, fmt.Errorf("unsupported channel count %d", channels)
	}
}

// ToGray implements accel.Accelerator.
func (a *Accelerator) ToGray(pix []byte, channels int) ([]byte, error) {
	if channels <= 0 || len(pix)%channels != 0 {
		return nil, wrap("to_gray", fmt.Errorf("%d bytes for %d channels", len(pix), channels))
	}
	n := len(pix) / channels
	if channels < 3 {
		out := make([]byte, n)
		for i := range out {
			out[i] = pix[i*channels]
		}
		return out, nil
	}

	mt, err := matType(channels)
	if err != nil {
		return nil, wrap("to_gray", err)
	}
	src, err := gocv.NewMatFromBytes(1, n, mt, pix)
	if err != nil {
		return nil, wrap("to_gray", err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	code := gocv.ColorRGBToGray
	if channels == 4 {
		code = gocv.ColorRGBAToGray
	}
	gocv.CvtColor(src, &dst, code)
	if dst.Empty() {
		return nil, wrap("to_gray", fmt.Errorf("empty result"))
	}
	return dst.ToBytes(), nil
}

// Crop implements accel.Accelerator.
func (a *Accelerator) Crop(pix []byte, srcWidth, x, y, w, h, channels int) ([]byte, error) {
	mt, err := matType(channels)
	if err != nil {
		return nil, wrap("crop", err)
	}
	if srcWidth <= 0 || len(pix)%(srcWidth*channels) != 0 {
		return nil, wrap("crop", fmt.Errorf("%d bytes for width %d", len(pix), srcWidth))
	}
	srcHeight := len(pix) / (srcWidth * channels)
	if x < 0 || y < 0 || w <= 0 || h <= 0 || x+w > srcWidth || y+h > srcHeight {
		return nil, wrap("crop", fmt.Errorf("rect (%d,%d %dx%d) outside %dx%d", x, y, w, h, srcWidth, srcHeight))
	}

	src, err := gocv.NewMatFromBytes(srcHeight, srcWidth, mt, pix)
	if err != nil {
		return nil, wrap("crop", err)
	}
	defer src.Close()

	region := src.Region(image.Rect(x, y, x+w, y+h))
	defer region.Close()
	// Region shares memory with src; clone to get a continuous copy.
	out := region.Clone()
	defer out.Close()
	return out.ToBytes(), nil
}

// Normalize implements accel.Accelerator.
func (a *Accelerator) Normalize(data []byte, max float32) ([]float32, error) {
	if max == 0 {
		return nil, wrap("normalize", fmt.Errorf("max is zero"))
	}
	if len(data) == 0 {
		return []float32{}, nil
	}
	src, err := gocv.NewMatFromBytes(1, len(data), gocv.MatTypeCV8UC1, data)
	if err != nil {
		return nil, wrap("normalize", err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	src.ConvertToWithParams(&dst, gocv.MatTypeCV32F, 1/max, 0)
	return copyFloats(dst)
}

// Convolve implements accel.Accelerator.
func (a *Accelerator) Convolve(data []float32, width, height int, k accel.Kernel) ([]float32, error) {
	if k.Size <= 0 || len(k.Values) != k.Size*k.Size {
		return nil, wrap("convolve", fmt.Errorf("malformed kernel"))
	}
	if width < k.Size || height < k.Size || len(data) != width*height {
		return nil, wrap("convolve", fmt.Errorf("%d values for %dx%d", len(data), width, height))
	}

	src, err := floatMat(data, height, width)
	if err != nil {
		return nil, wrap("convolve", err)
	}
	defer src.Close()
	kern, err := floatMat(k.Values, k.Size, k.Size)
	if err != nil {
		return nil, wrap("convolve", err)
	}
	defer kern.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	// With the anchor at the kernel origin, dst(x,y) is the valid-mode
	// response for every x < width-k+1, y < height-k+1.
	gocv.Filter2D(src, &dst, gocv.MatTypeCV32F, kern, image.Point{}, 0, gocv.BorderReplicate)

	valid := dst.Region(image.Rect(0, 0, width-k.Size+1, height-k.Size+1))
	defer valid.Close()
	out := valid.Clone()
	defer out.Close()
	return copyFloats(out)
}

// Recover implements accel.Accelerator.
func (a *Accelerator) Recover(data []float32, max float32) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	src, err := floatMat(data, 1, len(data))
	if err != nil {
		return nil, wrap("recover", err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.ConvertScaleAbs(src, &dst, float64(max)/8, 0)
	return dst.ToBytes(), nil
}

func floatMat(values []float32, rows, cols int) (gocv.Mat, error) {
	m := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV32F)
	ptr, err := m.DataPtrFloat32()
	if err != nil {
		m.Close()
		return gocv.Mat{}, err
	}
	copy(ptr, values)
	return m, nil
}

func copyFloats(m gocv.Mat) ([]float32, error) {
	ptr, err := m.DataPtrFloat32()
	if err != nil {
		return nil, wrap("read", err)
	}
	out := make([]float32, len(ptr))
	copy(out, ptr)
	return out, nil
}

var _ accel.Accelerator = (*Accelerator)(nil)
