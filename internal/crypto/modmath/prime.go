package modmath

import (
	"crypto/rand"
	"io"
	"math/big"
)

// ProbablyPrime runs certainty rounds of Miller-Rabin on n, drawing every witness
// uniformly from [2, n-2] out of random. A composite survives with probability at
// most 4^-certainty. The error is non-nil only when random fails.
func ProbablyPrime(random io.Reader, n *big.Int, certainty int) (bool, error) {
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true, nil
	}
	if n.Cmp(two) < 0 || n.Bit(0) == 0 {
		return false, nil
	}

	// n - 1 = 2^s * d with d odd
	nMinus1 := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinus1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	nMinus2 := new(big.Int).Sub(n, two)
	x := new(big.Int)

	for i := 0; i < certainty; i++ {
		a, err := witness(random, nMinus2)
		if err != nil {
			return false, err
		}

		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		passed := false
		for r := 1; r < s; r++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(one) == 0 {
				return false, nil
			}
			if x.Cmp(nMinus1) == 0 {
				passed = true
				break
			}
		}
		if !passed {
			return false, nil
		}
	}

	return true, nil
}

// IsProbablePrime is ProbablyPrime backed by crypto/rand.
func IsProbablePrime(n *big.Int, certainty int) bool {
	ok, err := ProbablyPrime(rand.Reader, n, certainty)
	return err == nil && ok
}

// witness draws a value in [2, hi] by rejection sampling. Each draw has the bit
// length of hi, so at least a quarter of the draws are accepted once hi >= 3.
func witness(random io.Reader, hi *big.Int) (*big.Int, error) {
	bitLen := hi.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	mask := byte(0xff) >> uint(8*len(buf)-bitLen)

	a := new(big.Int)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, err
		}
		buf[0] &= mask
		a.SetBytes(buf)
		if a.Cmp(two) >= 0 && a.Cmp(hi) <= 0 {
			return a, nil
		}
	}
}
