// Package plot produces the point sets drawn by the visualisers and maps them
// onto a pixel surface.
package plot

import (
	"github.com/smallyu/go-ecplot/internal/crypto/curves"
)

// Enumerate returns g, 2g, 3g, ... by repeated naive addition.
// It returns at most k points and stops before the sequence wraps to the identity,
// so a generator of order n yields at most n-1 points. k < 1 returns an empty slice.
//
// Each step is a full field addition, so this is only meant for small k.
func Enumerate(c *curves.Curve, g curves.Point, k int) ([]curves.Point, error) {
	if k < 1 || g.IsInfinity() {
		return []curves.Point{}, nil
	}

	points := make([]curves.Point, 0, k)
	points = append(points, g)

	var acc *curves.Point
	for len(points) < k {
		next, err := c.Sum(g, acc)
		if err != nil {
			return nil, err
		}
		if next.IsInfinity() {
			break
		}
		points = append(points, next)
		acc = &next
	}
	return points, nil
}

// SumPoints returns k*g computed the slow way, one addition per step.
func SumPoints(c *curves.Curve, g curves.Point, k int) (curves.Point, error) {
	if k < 1 {
		return curves.Infinity(), nil
	}

	acc := g
	for i := 1; i < k; i++ {
		var err error
		if acc, err = c.Add(acc, g); err != nil {
			return curves.Point{}, err
		}
	}
	return acc, nil
}
