package modmath

import (
	"math/big"

	"github.com/smallyu/go-ecplot/pkg/ecc"
)

// TonelliShanks holds the values derived from an odd prime P:
// P - 1 = Q * 2^S with Q odd, and Z a quadratic non-residue mod P.
// They depend on P alone and can be reused for any square root against P.
type TonelliShanks struct {
	P *big.Int
	Q *big.Int
	S int
	Z *big.Int
}

// DeriveTonelliShanks computes Q, S and Z for the odd prime p.
// Z is the first value found by linear scan from 2 whose Euler criterion is -1.
func DeriveTonelliShanks(p *big.Int) (TonelliShanks, error) {
	if err := checkOddModulus("tonelli-shanks", p); err != nil {
		return TonelliShanks{}, err
	}

	pMinus1 := new(big.Int).Sub(p, one)
	q := new(big.Int).Set(pMinus1)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	e := new(big.Int).Rsh(pMinus1, 1)
	v := new(big.Int)
	for z := big.NewInt(2); z.Cmp(p) < 0; z.Add(z, one) {
		if v.Exp(z, e, p).Cmp(pMinus1) == 0 {
			return TonelliShanks{
				P: new(big.Int).Set(p),
				Q: q,
				S: s,
				Z: z,
			}, nil
		}
	}

	return TonelliShanks{}, ecc.NewError("tonelli-shanks", ecc.InvalidModulus, "no quadratic non-residue mod %s", p)
}

// Sqrt returns a square root r of a mod ts.P. The other root is P - r.
func (ts TonelliShanks) Sqrt(a *big.Int) (*big.Int, error) {
	if Legendre(a, ts.P) != 1 {
		return nil, ecc.NewError("modsqrt", ecc.NotQuadraticResidue, "%s mod %s", a, ts.P)
	}
	return ts.sqrt(new(big.Int).Mod(a, ts.P))
}

func (ts TonelliShanks) sqrt(a *big.Int) (*big.Int, error) {
	p := ts.P

	m := ts.S
	c := new(big.Int).Exp(ts.Z, ts.Q, p)
	t := new(big.Int).Exp(a, ts.Q, p)
	e := new(big.Int).Add(ts.Q, one)
	r := new(big.Int).Exp(a, e.Rsh(e, 1), p)

	tmp, b := new(big.Int), new(big.Int)
	for t.Sign() != 0 && t.Cmp(one) != 0 {
		// smallest k in [1, m) with t^(2^k) == 1
		k := 1
		tmp.Mul(t, t).Mod(tmp, p)
		for ; k < m && tmp.Cmp(one) != 0; k++ {
			tmp.Mul(tmp, tmp).Mod(tmp, p)
		}
		if k >= m {
			return nil, ecc.NewError("modsqrt", ecc.InvalidModulus, "%s is not prime", p)
		}

		// b = c^(2^(m-k-1))
		b.Set(c)
		for i := 0; i < m-k-1; i++ {
			b.Mul(b, b).Mod(b, p)
		}

		m = k
		c.Mul(b, b).Mod(c, p)
		t.Mul(t, c).Mod(t, p)
		r.Mul(r, b).Mod(r, p)
	}

	return r, nil
}

// ModSqrt returns a square root of a mod the odd prime p using Tonelli-Shanks.
// a must pass Euler's criterion with exactly 1, so a = 0 is rejected.
// Every call derives its own TonelliShanks values.
func ModSqrt(a, p *big.Int) (*big.Int, error) {
	if p.Cmp(two) == 0 {
		return new(big.Int).Mod(a, p), nil
	}
	if err := checkOddModulus("modsqrt", p); err != nil {
		return nil, err
	}
	if Legendre(a, p) != 1 {
		return nil, ecc.NewError("modsqrt", ecc.NotQuadraticResidue, "%s mod %s", a, p)
	}

	ts, err := DeriveTonelliShanks(p)
	if err != nil {
		return nil, err
	}
	return ts.sqrt(new(big.Int).Mod(a, p))
}

func checkOddModulus(op string, p *big.Int) error {
	if p.Cmp(three) < 0 || p.Bit(0) == 0 {
		return ecc.NewError(op, ecc.InvalidModulus, "%s is not an odd prime", p)
	}
	return nil
}
