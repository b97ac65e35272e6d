package features

import (
	"img-stitcher/pkg/geometry"

	"github.com/steakknife/hamming"
)

// DescriptorBits is the nominal descriptor length.
const DescriptorBits = 1024

const descriptorWords = DescriptorBits / 64

// Descriptor is a fixed-length binary descriptor. A bit whose sample pair
// fell outside the image is indeterminate: its Valid bit is clear and it
// never contributes to a similarity score.
type Descriptor struct {
	Bits  [descriptorWords]uint64
	Valid [descriptorWords]uint64
}

func (d *Descriptor) set(i int, v bool) {
	w, m := i/64, uint64(1)<<(i%64)
	d.Valid[w] |= m
	if v {
		d.Bits[w] |= m
	}
}

// Bit reports the value of bit i and whether it is determinate.
func (d Descriptor) Bit(i int) (value, ok bool) {
	w, m := i/64, uint64(1)<<(i%64)
	return d.Bits[w]&m != 0, d.Valid[w]&m != 0
}

// Len returns the number of determinate bits.
func (d Descriptor) Len() int {
	n := 0
	for _, v := range d.Valid {
		n += hamming.CountBitsUint64(v)
	}
	return n
}

// Similarity counts positions that are determinate in both descriptors and
// hold the same value.
func (d Descriptor) Similarity(other Descriptor) int {
	s := 0
	for i := range d.Bits {
		both := d.Valid[i] & other.Valid[i]
		s += hamming.CountBitsUint64(^(d.Bits[i] ^ other.Bits[i]) & both)
	}
	return s
}

// Point is a detected corner.
type Point struct {
	X, Y int
	// Intensity is the grayscale value at (X,Y).
	Intensity byte
	// Deltas holds the signed ring sample differences from Intensity.
	Deltas     [ringSize]int16
	Descriptor Descriptor
	// Alive is cleared by non-maximum suppression.
	Alive bool
}

// Coord returns the point's position.
func (p Point) Coord() geometry.PointInt {
	return geometry.PointInt{X: p.X, Y: p.Y}
}

// Score is the corner response: the sum of absolute ring deltas.
func (p Point) Score() int {
	s := 0
	for _, d := range p.Deltas {
		s += int(geometry.Abs(d))
	}
	return s
}
