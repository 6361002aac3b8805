package modmath

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cycleReader replays a fixed byte sequence forever.
type cycleReader struct {
	data []byte
	pos  int
}

func (r *cycleReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.data[r.pos%len(r.data)]
		r.pos++
	}
	return len(p), nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source exhausted")
}

func TestIsProbablePrimeSmall(t *testing.T) {
	for _, p := range []int64{2, 3, 5, 7, 97, 7919, 65537} {
		assert.True(t, IsProbablePrime(bi(p), 20), "%d should be prime", p)
	}
	for _, c := range []int64{-7, 0, 1, 4, 9, 100, 561, 7921, 41041, 65535} {
		assert.False(t, IsProbablePrime(bi(c), 20), "%d should be composite", c)
	}
}

func TestIsProbablePrimeLarge(t *testing.T) {
	for _, p := range []*big.Int{secp256k1P, secp256k1N, curve25519P} {
		assert.True(t, IsProbablePrime(p, 20), "%s should be prime", p)
		assert.True(t, p.ProbablyPrime(20))
	}

	composite := new(big.Int).Mul(secp256k1P, curve25519P)
	assert.False(t, IsProbablePrime(composite, 20))
}

func TestProbablyPrimeAgreesWithMathBig(t *testing.T) {
	for n := int64(0); n < 2000; n++ {
		N := bi(n)
		assert.Equal(t, N.ProbablyPrime(20), IsProbablePrime(N, 20), "n = %d", n)
	}
}

func TestProbablyPrimeInjectedWitness(t *testing.T) {
	// 2047 = 23 * 89 is a strong pseudoprime to base 2.
	// Witness bytes {0x00, 0x02} decode to 2 under the 11-bit mask.
	liar := &cycleReader{data: []byte{0x00, 0x02}}
	ok, err := ProbablyPrime(liar, bi(2047), 5)
	require.NoError(t, err)
	assert.True(t, ok, "base 2 alone cannot expose 2047")

	// base 3 exposes it
	ok, err = ProbablyPrime(&cycleReader{data: []byte{0x00, 0x03}}, bi(2047), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProbablyPrimeRejectsOutOfRangeDraws(t *testing.T) {
	// 0x07ff masks to 2047 which is above n-2 and must be redrawn; 0x0005 is accepted.
	r := &cycleReader{data: []byte{0xff, 0xff, 0x00, 0x05}}
	ok, err := ProbablyPrime(r, bi(2039), 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, r.pos)
}

func TestProbablyPrimeReaderFailure(t *testing.T) {
	_, err := ProbablyPrime(failingReader{}, bi(7919), 3)
	assert.Error(t, err)

	// trivial cases never touch the reader
	ok, err := ProbablyPrime(failingReader{}, bi(3), 3)
	require.NoError(t, err)
	assert.True(t, ok)

	// zero rounds accept any odd n > 3
	assert.True(t, IsProbablePrime(bi(9), 0))
}
