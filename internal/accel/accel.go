// Package accel defines the compute backend used for bulk pixel operations
// (grayscale conversion, cropping and convolution) and a pure-Go
// implementation of it.
package accel

import (
	"errors"
	"fmt"
)

// ErrAcceleratorFailure wraps every error reported by a backend.
var ErrAcceleratorFailure = errors.New("accelerator failure")

// Accelerator performs bulk pixel operations on raw row-major buffers.
// Calls block until the result is available. Implementations must be
// referentially transparent: equal inputs give equal outputs.
type Accelerator interface {
	// ToGray returns one luma byte per source pixel,
	// 0.299R + 0.587G + 0.114B truncated.
	ToGray(pix []byte, channels int) ([]byte, error)

	// Crop copies the w x h rectangle at (x,y) out of a buffer srcWidth
	// pixels wide.
	Crop(pix []byte, srcWidth, x, y, w, h, channels int) ([]byte, error)

	// Normalize divides every value by max.
	Normalize(data []byte, max float32) ([]float32, error)

	// Convolve runs a valid-mode 2-D cross-correlation. The result is
	// (width-k+1) x (height-k+1).
	Convolve(data []float32, width, height int, k Kernel) ([]float32, error)

	// Recover maps every value to abs(v)/8*max, truncated to the byte range.
	Recover(data []float32, max float32) ([]byte, error)
}

func failure(op string, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrAcceleratorFailure)
}
