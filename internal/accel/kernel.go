package accel

import "fmt"

// Kernel is a square convolution kernel stored row-major.
type Kernel struct {
	Size   int
	Values []float32
}

// NewKernel builds a kernel from its rows. All rows must have len(rows)
// entries.
func NewKernel(rows [][]float32) (Kernel, error) {
	n := len(rows)
	values := make([]float32, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return Kernel{}, fmt.Errorf("kernel row %d has %d values, want %d", i, len(row), n)
		}
		values = append(values, row...)
	}
	return Kernel{Size: n, Values: values}, nil
}

func mustKernel(rows [][]float32) Kernel {
	k, err := NewKernel(rows)
	if err != nil {
		panic(err)
	}
	return k
}

// At returns the weight at column x, row y.
func (k Kernel) At(x, y int) float32 {
	return k.Values[y*k.Size+x]
}

// Laplace4 is the 4-neighbour Laplacian.
func Laplace4() Kernel {
	return mustKernel([][]float32{
		{0, 1, 0},
		{1, -4, 1},
		{0, 1, 0},
	})
}

// Laplace8 is the 8-neighbour Laplacian.
func Laplace8() Kernel {
	return mustKernel([][]float32{
		{1, 1, 1},
		{1, -8, 1},
		{1, 1, 1},
	})
}

// Laplace12 is a 4x4 Laplacian variant with a 2x2 center.
func Laplace12() Kernel {
	return mustKernel([][]float32{
		{1, 1, 1, 1},
		{1, -3, -3, 1},
		{1, -3, -3, 1},
		{1, 1, 1, 1},
	})
}

// KernelByName resolves "laplace4", "laplace8" or "laplace12".
func KernelByName(name string) (Kernel, error) {
	switch name {
	case "laplace4":
		return Laplace4(), nil
	case "laplace8", "":
		return Laplace8(), nil
	case "laplace12":
		return Laplace12(), nil
	default:
		return Kernel{}, fmt.Errorf("unknown kernel %q", name)
	}
}
