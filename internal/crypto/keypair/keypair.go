package keypair

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/smallyu/go-ecplot/internal/crypto/curves"
	"github.com/smallyu/go-ecplot/pkg/ecc"
)

var one = big.NewInt(1)

// KeyPair is a secret scalar and its public point Public = Secret * G.
type KeyPair struct {
	Secret *big.Int
	Public curves.Point
}

// GenerateKeyPair derives the public key for sk on curve c.
// sk must be in [1, N) and the curve must be non-singular.
func GenerateKeyPair(c *curves.Curve, sk *big.Int) (*KeyPair, error) {
	if sk == nil || sk.Cmp(one) < 0 || sk.Cmp(c.N) >= 0 {
		return nil, ecc.NewError("keygen", ecc.InvalidSecretKey, "secret key not in [1, %s)", c.N)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	pub, err := c.ScalarBaseMult(sk)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		Secret: new(big.Int).Set(sk),
		Public: pub,
	}, nil
}

// Secp256k1KeyPair derives the secp256k1 public key for sk.
func Secp256k1KeyPair(sk *big.Int) (*KeyPair, error) {
	return GenerateKeyPair(curves.Secp256k1(), sk)
}

// NewSecretKey draws a secret key uniformly from [1, N).
func NewSecretKey(random io.Reader, c *curves.Curve) (*big.Int, error) {
	if c.N.Cmp(big.NewInt(2)) < 0 {
		return nil, ecc.NewError("keygen", ecc.InvalidSecretKey, "group order %s too small", c.N)
	}

	// Generate random integer in [0, N-2], then shift by one
	nMinus1 := new(big.Int).Sub(c.N, one)
	k, err := rand.Int(random, nMinus1)
	if err != nil {
		return nil, err
	}
	return k.Add(k, one), nil
}

// GenerateRandom creates a key pair from a fresh secret key.
func GenerateRandom(random io.Reader, c *curves.Curve) (*KeyPair, error) {
	sk, err := NewSecretKey(random, c)
	if err != nil {
		return nil, err
	}
	return GenerateKeyPair(c, sk)
}
