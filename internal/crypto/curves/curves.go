package curves

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecplot/internal/crypto/modmath"
	"github.com/smallyu/go-ecplot/pkg/ecc"
)

var (
	zero  = big.NewInt(0)
	three = big.NewInt(3)
)

// Curve is y^2 = x^3 + A*x + B over the prime field F_P, together with a
// generator G of order N.
// P is assumed prime. CheckPrime verifies it on request, nothing else does.
type Curve struct {
	Name string
	P    *big.Int // Field modulus
	A, B *big.Int // Curve coefficients, reduced mod P
	G    Point    // Generator
	N    *big.Int // Order of G
}

// NewCurve builds a curve from its parameters, reducing A, B and the generator mod p.
func NewCurve(name string, p, a, b, gx, gy, n *big.Int) *Curve {
	mod := func(v *big.Int) *big.Int {
		return new(big.Int).Mod(v, p)
	}
	return &Curve{
		Name: name,
		P:    new(big.Int).Set(p),
		A:    mod(a),
		B:    mod(b),
		G:    Point{X: mod(gx), Y: mod(gy)},
		N:    new(big.Int).Set(n),
	}
}

// Secp256k1 returns the secp256k1 parameters: a = 0, b = 7 over the standard prime.
func Secp256k1() *Curve {
	params := secp256k1.S256().Params()
	return NewCurve("secp256k1", params.P, zero, params.B, params.Gx, params.Gy, params.N)
}

// ByName returns a built-in curve.
func ByName(name string) (*Curve, error) {
	switch name {
	case "secp256k1":
		return Secp256k1(), nil
	}
	return nil, fmt.Errorf("unknown curve %q", name)
}

// FromParameters validates params and returns the configured curve after
// checking its field modulus with params.Certainty rounds of Miller-Rabin.
func FromParameters(params *ecc.Parameters) (*Curve, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	c, err := ByName(params.Curve)
	if err != nil {
		return nil, err
	}
	if err := c.CheckPrime(params.Certainty); err != nil {
		return nil, err
	}
	return c, nil
}

// Discriminant returns 4a^3 + 27b^2 mod p. The curve is singular when it is zero.
func (c *Curve) Discriminant() *big.Int {
	a3 := new(big.Int).Exp(c.A, three, c.P)
	a3.Lsh(a3, 2)

	b2 := new(big.Int).Mul(c.B, c.B)
	b2.Mul(b2, big.NewInt(27))

	d := a3.Add(a3, b2)
	return d.Mod(d, c.P)
}

// Validate rejects singular curves.
func (c *Curve) Validate() error {
	if c.Discriminant().Sign() == 0 {
		return ecc.NewError("validate", ecc.SingularCurve, "4a^3 + 27b^2 = 0 mod %s", c.P)
	}
	return nil
}

// CheckPrime runs Miller-Rabin on P.
func (c *Curve) CheckPrime(certainty int) error {
	if !modmath.IsProbablePrime(c.P, certainty) {
		return ecc.NewError("validate", ecc.InvalidModulus, "%s is not prime", c.P)
	}
	return nil
}

// IsOnCurve reports whether p satisfies the curve equation. Infinity is on every curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	if p.X.Sign() < 0 || p.X.Cmp(c.P) >= 0 || p.Y.Sign() < 0 || p.Y.Cmp(c.P) >= 0 {
		return false
	}

	y2 := new(big.Int).Mul(p.Y, p.Y)
	y2.Mod(y2, c.P)

	rhs := new(big.Int).Exp(p.X, three, c.P)
	ax := new(big.Int).Mul(c.A, p.X)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, c.B)
	rhs.Mod(rhs, c.P)

	return y2.Cmp(rhs) == 0
}
