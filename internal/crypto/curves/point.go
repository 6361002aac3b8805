package curves

import (
	"fmt"
	"math/big"
)

// Point is an affine point on a short Weierstrass curve, or the point at infinity.
// The zero value is the point at infinity: a point with a nil coordinate is the identity.
// Points are values: arithmetic never mutates its operands.
type Point struct {
	X, Y *big.Int
}

// Infinity returns the group identity.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the finite point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
	}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.X == nil || p.Y == nil
}

// Equal compares two points. All representations of infinity are equal.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

func (p Point) String() string {
	if p.IsInfinity() {
		return "(infinity)"
	}
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}
