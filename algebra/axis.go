package algebra

import "fmt"

// Axis is one of the four spacetime basis directions. AxisT is temporal;
// AxisX, AxisY and AxisZ are spatial. Axes are ordered T < X < Y < Z and
// render as the indices "0".."3".
type Axis int

const (
	// AxisT is the temporal axis (index 0). It squares to +p under the metric.
	AxisT Axis = iota

	// AxisX is the first spatial axis (index 1).
	AxisX

	// AxisY is the second spatial axis (index 2).
	AxisY

	// AxisZ is the third spatial axis (index 3).
	AxisZ
)

// AxisFromIndex converts a numeric index 0..3 into an Axis.
// Returns ErrInvalidAxis for anything else.
// Complexity: O(1)
func AxisFromIndex(n int) (Axis, error) {
	if n < 0 || n > 3 {
		return AxisT, fmt.Errorf("%w: got %d", ErrInvalidAxis, n)
	}

	return Axis(n), nil
}

// IsSpatial reports whether the axis is one of X, Y, Z.
// Spatial axes square to -p under the +--- metric.
func (a Axis) IsSpatial() bool {
	return a != AxisT
}

// String renders the axis as its index: "0", "1", "2" or "3".
func (a Axis) String() string {
	return [...]string{"0", "1", "2", "3"}[a]
}
