// Package modmath implements modular arithmetic over prime fields on top of math/big:
// inversion, square roots and probabilistic primality testing.
package modmath

import (
	"math/big"

	"github.com/smallyu/go-ecplot/pkg/ecc"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// ModInv returns a^-1 mod p using the extended Euclidean algorithm on (p, a).
// The result is in [0, p).
func ModInv(a, p *big.Int) (*big.Int, error) {
	if p.Cmp(one) <= 0 {
		return nil, ecc.NewError("modinv", ecc.InvalidModulus, "modulus %s", p)
	}

	t, newT := new(big.Int), big.NewInt(1)
	r, newR := new(big.Int).Set(p), new(big.Int).Mod(a, p)
	q, tmp := new(big.Int), new(big.Int)

	for newR.Sign() != 0 {
		q.Quo(r, newR)

		// (t, newT) = (newT, t - q*newT)
		tmp.Mul(q, newT)
		t.Sub(t, tmp)
		t, newT = newT, t

		// (r, newR) = (newR, r - q*newR)
		tmp.Mul(q, newR)
		r.Sub(r, tmp)
		r, newR = newR, r
	}

	if r.Cmp(one) > 0 {
		return nil, ecc.NewError("modinv", ecc.NotInvertible, "gcd(%s, %s) = %s", a, p, r)
	}

	return t.Mod(t, p), nil
}

// Coprime reports whether gcd(a, n) == 1.
func Coprime(a, n *big.Int) bool {
	return new(big.Int).GCD(nil, nil, a, n).Cmp(one) == 0
}

// Legendre evaluates Euler's criterion a^((p-1)/2) mod p and maps it to 1, 0 or -1.
// Any value other than 0 or 1 counts as -1, so a composite p never yields a false residue.
func Legendre(a, p *big.Int) int {
	e := new(big.Int).Sub(p, one)
	e.Rsh(e, 1)
	v := new(big.Int).Exp(new(big.Int).Mod(a, p), e, p)
	switch {
	case v.Sign() == 0:
		return 0
	case v.Cmp(one) == 0:
		return 1
	default:
		return -1
	}
}
