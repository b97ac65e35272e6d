package features

import (
	"fmt"
	"strings"
)

// Direction is the stitching axis. It also selects the orientation of the
// descriptor sampling pattern: Vertical swaps the x and y roles of every
// offset, which emulates a 90 degree rotation.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Orient maps a pattern offset into image space.
func (d Direction) Orient(dx, dy int) (int, int) {
	if d == Vertical {
		return dy, dx
	}
	return dx, dy
}

// Along returns the component of (x,y) that runs along the axis.
func (d Direction) Along(x, y int) int {
	if d == Vertical {
		return y
	}
	return x
}

// ParseDirection accepts "horizontal"/"h" and "vertical"/"v".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h", "left-right", "":
		return Horizontal, nil
	case "vertical", "v", "top-bottom":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown direction %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
