package plot_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecplot/internal/crypto/curves"
	"github.com/smallyu/go-ecplot/internal/plot"
	"github.com/smallyu/go-ecplot/pkg/ecc"
)

func bi(v int64) *big.Int { return big.NewInt(v) }

func TestEnumerate(t *testing.T) {
	spec.Run(t, "Enumerate", func(t *testing.T, when spec.G, it spec.S) {
		var (
			secp = curves.Secp256k1()
			toy  = curves.NewCurve("toy17", bi(17), bi(2), bi(2), bi(5), bi(1), bi(19))
		)

		when("k is small", func() {
			it("returns k points starting at G", func() {
				points, err := plot.Enumerate(secp, secp.G, 5)
				require.NoError(t, err)
				require.Len(t, points, 5)
				assert.True(t, points[0].Equal(secp.G))

				for i, p := range points {
					want, err := secp.ScalarBaseMult(bi(int64(i + 1)))
					require.NoError(t, err)
					assert.True(t, p.Equal(want), "point %d", i)
				}
			})

			it("returns G alone for k = 1", func() {
				points, err := plot.Enumerate(secp, secp.G, 1)
				require.NoError(t, err)
				require.Len(t, points, 1)
				assert.True(t, points[0].Equal(secp.G))
			})
		})

		when("k exceeds the order of G", func() {
			it("stops before the identity", func() {
				points, err := plot.Enumerate(toy, toy.G, 100)
				require.NoError(t, err)
				require.Len(t, points, 18)
				assert.True(t, points[17].Equal(toy.Neg(toy.G)))
				for _, p := range points {
					assert.False(t, p.IsInfinity())
					assert.True(t, toy.IsOnCurve(p))
				}
			})
		})

		when("k is not positive", func() {
			it("returns nothing", func() {
				for _, k := range []int{0, -1} {
					points, err := plot.Enumerate(secp, secp.G, k)
					require.NoError(t, err)
					assert.Empty(t, points)
				}
			})
		})

		when("the start point is the identity", func() {
			it("returns nothing", func() {
				points, err := plot.Enumerate(toy, curves.Infinity(), 10)
				require.NoError(t, err)
				assert.Empty(t, points)
			})
		})
	}, spec.Report(report.Terminal{}), spec.Parallel())
}

func TestSumPoints(t *testing.T) {
	spec.Run(t, "SumPoints", func(t *testing.T, when spec.G, it spec.S) {
		toy := curves.NewCurve("toy17", bi(17), bi(2), bi(2), bi(5), bi(1), bi(19))

		it("agrees with double-and-add", func() {
			for k := 1; k <= 40; k++ {
				slow, err := plot.SumPoints(toy, toy.G, k)
				require.NoError(t, err)
				fast, err := toy.ScalarBaseMult(bi(int64(k)))
				require.NoError(t, err)
				assert.True(t, slow.Equal(fast), "k = %d", k)
			}
		})

		it("returns the identity for k = 0", func() {
			p, err := plot.SumPoints(toy, toy.G, 0)
			require.NoError(t, err)
			assert.True(t, p.IsInfinity())
		})
	}, spec.Report(report.Terminal{}))
}

func TestLoopCount(t *testing.T) {
	spec.Run(t, "LoopCount", func(t *testing.T, when spec.G, it spec.S) {
		it("accepts the allowed range", func() {
			for _, n := range []int{1, 100, ecc.MaxLoops} {
				assert.NoError(t, plot.ValidateLoopCount(n))
			}
		})

		it("rejects out of range counts", func() {
			for _, n := range []int{0, -7, ecc.MaxLoops + 1} {
				err := plot.ValidateLoopCount(n)
				assert.True(t, errors.Is(err, ecc.ErrInvalidLoopCount), "n = %d", n)
			}
		})

		it("parses user input", func() {
			n, err := plot.ParseLoopCount(" 250 ")
			require.NoError(t, err)
			assert.Equal(t, 250, n)

			for _, s := range []string{"", "abc", "1.5", "10001"} {
				_, err := plot.ParseLoopCount(s)
				assert.Equal(t, ecc.InvalidLoopCount, ecc.KindOf(err), "s = %q", s)
			}
		})
	}, spec.Report(report.Terminal{}))
}

func TestProject(t *testing.T) {
	spec.Run(t, "Project", func(t *testing.T, when spec.G, it spec.S) {
		it("scales coordinates onto the surface", func() {
			points := []curves.Point{
				curves.NewPoint(bi(0), bi(0)),
				curves.NewPoint(bi(50), bi(25)),
				curves.NewPoint(bi(99), bi(99)),
			}
			pixels := plot.Project(points, bi(100), 200, 400)
			assert.Equal(t, []plot.Pixel{{0, 0}, {100, 100}, {198, 396}}, pixels)
		})

		it("skips the identity", func() {
			points := []curves.Point{curves.Infinity(), curves.NewPoint(bi(3), bi(4))}
			pixels := plot.Project(points, bi(17), 17, 17)
			assert.Equal(t, []plot.Pixel{{3, 4}}, pixels)
		})

		it("keeps secp256k1 points inside the surface", func() {
			secp := curves.Secp256k1()
			points, err := plot.Enumerate(secp, secp.G, 50)
			require.NoError(t, err)
			for _, px := range plot.Project(points, secp.P, 800, 600) {
				assert.True(t, px.X >= 0 && px.X < 800, "x = %d", px.X)
				assert.True(t, px.Y >= 0 && px.Y < 600, "y = %d", px.Y)
			}
		})
	}, spec.Report(report.Terminal{}))
}
