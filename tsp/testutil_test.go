// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ilstsp/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is a deterministic seed (0 maps to the internal default seed).
	seedDet = int64(0)

	// idleTest is large enough that small instances reach their local optimum
	// with overwhelming probability.
	idleTest = 50

	// circleN is the default instance size for rippled-circle tests.
	circleN = 40
)

// unitSquare lists the corners of the unit square in cyclic order; the optimal
// tour is the perimeter, length 4.
var unitSquare = [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// collinear5 places five cities on the x axis at 0..4 in scrambled input order;
// the optimal tour goes out and back, length 8.
var collinear5 = [][2]float64{{0, 0}, {3, 0}, {1, 0}, {2, 0}, {4, 0}}

// -----------------------------------------------------------------------------
// Builders
// -----------------------------------------------------------------------------

// mustProblem builds a Problem or fails the test.
func mustProblem(t testing.TB, label string, xy [][2]float64) *tsp.Problem {
	t.Helper()
	p, err := tsp.NewProblem(label, tsp.CitiesFromXY(xy))
	require.NoError(t, err)

	return p
}

// mustMatrix builds a DistanceMatrix or fails the test.
func mustMatrix(t testing.TB, xy [][2]float64) *tsp.DistanceMatrix {
	t.Helper()
	dm, err := tsp.NewDistanceMatrix(tsp.CitiesFromXY(xy))
	require.NoError(t, err)

	return dm
}

// rippledCircle returns n points on a circle whose radius varies slightly with
// the index, which avoids distance ties. Points are emitted in a shuffled
// order so that identity is not already a good tour.
func rippledCircle(n int) [][2]float64 {
	pts := make([][2]float64, n)
	perm := rand.New(rand.NewSource(42)).Perm(n)

	var (
		i     int
		th, r float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(perm[i]) / float64(n)
		r = 100 + 3*float64(perm[i]%3)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}

	return pts
}

// newRNG returns a fresh deterministic generator.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// identity returns the tour 0..n-1.
func identity(n int) tsp.Tour {
	t := make(tsp.Tour, n)
	var i int
	for i = range t {
		t[i] = i
	}

	return t
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requirePermutation asserts that tour visits every city of n exactly once.
func requirePermutation(t testing.TB, tour tsp.Tour, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(tour, n), "tour %s", tsp.DebugString(tour))
}

// requireNonIncreasing asserts xs[i+1] <= xs[i] for all i.
func requireNonIncreasing(t testing.TB, xs []float64) {
	t.Helper()
	var i int
	for i = 1; i < len(xs); i++ {
		require.LessOrEqual(t, xs[i], xs[i-1], "index %d", i)
	}
}

// requireDecreasing asserts xs[i+1] < xs[i] for all i.
func requireDecreasing(t testing.TB, xs []float64) {
	t.Helper()
	var i int
	for i = 1; i < len(xs); i++ {
		require.Less(t, xs[i], xs[i-1], "index %d", i)
	}
}

// Repeat runs fn n times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}
