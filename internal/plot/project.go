package plot

import (
	"math/big"

	"github.com/smallyu/go-ecplot/internal/crypto/curves"
)

// Pixel is a position on the drawing surface. Origin is the top-left corner.
type Pixel struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Project scales field coordinates in [0, p) onto a width x height surface:
// px = x * width / p, py = y * height / p. The identity has no position and is skipped.
func Project(points []curves.Point, p *big.Int, width, height int) []Pixel {
	w := big.NewInt(int64(width))
	h := big.NewInt(int64(height))

	pixels := make([]Pixel, 0, len(points))
	t := new(big.Int)
	for _, pt := range points {
		if pt.IsInfinity() {
			continue
		}
		px := int(t.Quo(t.Mul(pt.X, w), p).Int64())
		py := int(t.Quo(t.Mul(pt.Y, h), p).Int64())
		pixels = append(pixels, Pixel{X: px, Y: py})
	}
	return pixels
}
