package accel

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// LaplacianResult is the edge response of an image and its spread.
type LaplacianResult struct {
	Width  int
	Height int
	Pix    []byte
	// StdDev is the population standard deviation of Pix. Blurry images
	// score low.
	StdDev float64
}

// Laplacian runs gray -> normalize -> convolve -> recover on a raw buffer and
// reports the standard deviation of the recovered response.
func Laplacian(acc Accelerator, pix []byte, width, height, channels int, k Kernel) (*LaplacianResult, error) {
	gray, err := acc.ToGray(pix, channels)
	if err != nil {
		return nil, fmt.Errorf("laplacian gray: %w", err)
	}
	norm, err := acc.Normalize(gray, 255)
	if err != nil {
		return nil, fmt.Errorf("laplacian normalize: %w", err)
	}
	conv, err := acc.Convolve(norm, width, height, k)
	if err != nil {
		return nil, fmt.Errorf("laplacian convolve: %w", err)
	}
	rec, err := acc.Recover(conv, 255)
	if err != nil {
		return nil, fmt.Errorf("laplacian recover: %w", err)
	}

	values := make([]float64, len(rec))
	for i, v := range rec {
		values[i] = float64(v)
	}
	var sd float64
	if len(values) > 0 {
		_, sd = stat.PopMeanStdDev(values, nil)
	}

	return &LaplacianResult{
		Width:  width - k.Size + 1,
		Height: height - k.Size + 1,
		Pix:    rec,
		StdDev: sd,
	}, nil
}
