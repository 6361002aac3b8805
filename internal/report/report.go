// Package report renders curve values as JSON documents for the command line
// and wasm front-ends.
package report

import (
	"math/big"

	fasthex "github.com/tmthrgd/go-hex"

	"github.com/smallyu/go-ecplot/internal/crypto/curves"
	"github.com/smallyu/go-ecplot/internal/crypto/keypair"
	"github.com/smallyu/go-ecplot/internal/plot"
	"github.com/smallyu/go-ecplot/internal/pow"
)

// Point is the JSON form of a curve point. Coordinates are zero-padded hex.
// Infinity has no coordinates.
type Point struct {
	X        string `json:"x,omitempty"`
	Y        string `json:"y,omitempty"`
	Infinity bool   `json:"infinity,omitempty"`
}

type KeyPair struct {
	Curve  string `json:"curve"`
	Secret string `json:"secret"`
	Public Point  `json:"public"`
}

type Points struct {
	Curve  string       `json:"curve"`
	Count  int          `json:"count"`
	Points []Point      `json:"points"`
	Pixels []plot.Pixel `json:"pixels,omitempty"`
}

type Mining struct {
	Difficulty uint64 `json:"difficulty"`
	Target     string `json:"target"`
	Nonce      uint64 `json:"nonce"`
	Hash       string `json:"hash"`
}

// Hex encodes v big-endian, left padded to size bytes.
func Hex(v *big.Int, size int) string {
	buf := make([]byte, size)
	v.FillBytes(buf)
	return fasthex.EncodeToString(buf)
}

// ParseHex decodes a hex scalar. An optional 0x prefix is accepted and odd
// lengths are left padded.
func ParseHex(s string) (*big.Int, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := fasthex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

func fieldSize(c *curves.Curve) int {
	return (c.P.BitLen() + 7) / 8
}

func NewPoint(c *curves.Curve, p curves.Point) Point {
	if p.IsInfinity() {
		return Point{Infinity: true}
	}
	size := fieldSize(c)
	return Point{X: Hex(p.X, size), Y: Hex(p.Y, size)}
}

func NewKeyPair(c *curves.Curve, kp *keypair.KeyPair) KeyPair {
	return KeyPair{
		Curve:  c.Name,
		Secret: Hex(kp.Secret, (c.N.BitLen()+7)/8),
		Public: NewPoint(c, kp.Public),
	}
}

func NewPoints(c *curves.Curve, points []curves.Point, pixels []plot.Pixel) Points {
	out := Points{
		Curve:  c.Name,
		Count:  len(points),
		Points: make([]Point, len(points)),
		Pixels: pixels,
	}
	for i, p := range points {
		out.Points[i] = NewPoint(c, p)
	}
	return out
}

func NewMining(difficulty uint64, target *big.Int, res pow.Result) Mining {
	return Mining{
		Difficulty: difficulty,
		Target:     Hex(target, 32),
		Nonce:      res.Nonce,
		Hash:       res.Hash.String(),
	}
}
