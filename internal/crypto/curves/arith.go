package curves

import (
	"math/big"

	"github.com/smallyu/go-ecplot/internal/crypto/modmath"
	"github.com/smallyu/go-ecplot/pkg/ecc"
)

// Neg returns -p.
func (c *Curve) Neg(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	y := new(big.Int).Neg(p.Y)
	return Point{X: new(big.Int).Set(p.X), Y: y.Mod(y, c.P)}
}

// Add returns p1 + p2.
//
// Infinity is the identity, p + p is routed to Double and p + (-p) is infinity.
// Two points that share an x coordinate but are neither equal nor opposite
// cannot both lie on the curve and yield ecc.InvalidPoint.
func (c *Curve) Add(p1, p2 Point) (Point, error) {
	if p1.IsInfinity() {
		return p2, nil
	}
	if p2.IsInfinity() {
		return p1, nil
	}

	dx := new(big.Int).Sub(p2.X, p1.X)
	dx.Mod(dx, c.P)
	if dx.Sign() == 0 {
		dy := new(big.Int).Sub(p2.Y, p1.Y)
		if dy.Mod(dy, c.P).Sign() == 0 {
			return c.Double(p1)
		}
		sy := new(big.Int).Add(p1.Y, p2.Y)
		if sy.Mod(sy, c.P).Sign() == 0 {
			return Infinity(), nil
		}
		return Point{}, ecc.NewError("add", ecc.InvalidPoint, "%s and %s share x but are not opposite", p1, p2)
	}

	// m = (y2 - y1) / (x2 - x1)
	invDx, err := modmath.ModInv(dx, c.P)
	if err != nil {
		return Point{}, err
	}
	m := new(big.Int).Sub(p2.Y, p1.Y)
	m.Mul(m, invDx)
	m.Mod(m, c.P)

	return c.chord(m, p1, p2.X), nil
}

// Double returns 2p. A point with y = 0 has order two and doubles to infinity.
func (c *Curve) Double(p Point) (Point, error) {
	if p.IsInfinity() {
		return p, nil
	}

	// m = (3x^2 + a) / 2y
	dy := new(big.Int).Mul(p.X, p.X)
	dy.Mul(dy, three)
	dy.Add(dy, c.A)
	dy.Mod(dy, c.P)

	dx := new(big.Int).Lsh(p.Y, 1)
	dx.Mod(dx, c.P)
	if dx.Sign() == 0 {
		return Infinity(), nil
	}

	invDx, err := modmath.ModInv(dx, c.P)
	if err != nil {
		return Point{}, err
	}
	m := dy.Mul(dy, invDx)
	m.Mod(m, c.P)

	return c.chord(m, p, p.X), nil
}

// chord finishes addition and doubling from the slope m:
// x = m^2 - x1 - x2, y = m(x1 - x) - y1, both reduced into [0, p).
func (c *Curve) chord(m *big.Int, p1 Point, x2 *big.Int) Point {
	x := new(big.Int).Mul(m, m)
	x.Sub(x, p1.X)
	x.Sub(x, x2)
	x.Mod(x, c.P)

	y := new(big.Int).Sub(p1.X, x)
	y.Mul(y, m)
	y.Sub(y, p1.Y)
	y.Mod(y, c.P)

	return Point{X: x, Y: y}
}

// ScalarMult returns k*p by most-significant-bit-first double-and-add starting
// from infinity. k = 0 gives infinity and a negative k multiplies -p.
func (c *Curve) ScalarMult(k *big.Int, p Point) (Point, error) {
	if k.Sign() < 0 {
		return c.ScalarMult(new(big.Int).Neg(k), c.Neg(p))
	}

	q := Infinity()
	var err error
	for i := k.BitLen() - 1; i >= 0; i-- {
		if q, err = c.Double(q); err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			if q, err = c.Add(q, p); err != nil {
				return Point{}, err
			}
		}
	}
	return q, nil
}

// ScalarBaseMult returns k*G.
func (c *Curve) ScalarBaseMult(k *big.Int) (Point, error) {
	return c.ScalarMult(k, c.G)
}

// Sum is the naive accumulation step: 2p when acc is nil, p + acc otherwise.
func (c *Curve) Sum(p Point, acc *Point) (Point, error) {
	if acc == nil {
		return c.Double(p)
	}
	return c.Add(p, *acc)
}
