package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ilstsp/tsp"
)

func TestGreedyNearestNeighbor_Collinear(t *testing.T) {
	dm := mustMatrix(t, collinear5)

	got := tsp.GreedyNearestNeighbor{}.Construct(dm, nil)
	assert.Equal(t, tsp.Tour{0, 2, 3, 1, 4}, got)
	assert.Equal(t, 8.0, tsp.TourLength(dm, got))
}

// Equal distances from the current city go to the lowest index, whichever
// side of the start it lies on.
func TestGreedyNearestNeighbor_TieGoesToLowestIndex(t *testing.T) {
	for _, pts := range [][][2]float64{
		{{0, 0}, {1, 0}, {-1, 0}, {0, 5}},
		{{0, 0}, {-1, 0}, {1, 0}, {0, 5}},
	} {
		dm := mustMatrix(t, pts)
		assert.Equal(t, tsp.Tour{0, 1, 2, 3}, tsp.GreedyNearestNeighbor{}.Construct(dm, nil))
	}
}

func TestGreedyNearestNeighbor_Small(t *testing.T) {
	assert.Equal(t, tsp.Tour{0}, tsp.GreedyNearestNeighbor{}.Construct(mustMatrix(t, [][2]float64{{1, 1}}), nil))
	assert.Equal(t, tsp.Tour{0, 1}, tsp.GreedyNearestNeighbor{}.Construct(mustMatrix(t, [][2]float64{{1, 1}, {2, 2}}), nil))
}

func TestRandomPermutation(t *testing.T) {
	dm := mustMatrix(t, rippledCircle(circleN))

	a := tsp.RandomPermutation{}.Construct(dm, newRNG(5))
	b := tsp.RandomPermutation{}.Construct(dm, newRNG(5))
	c := tsp.RandomPermutation{}.Construct(dm, newRNG(6))

	requirePermutation(t, a, circleN)
	requirePermutation(t, c, circleN)
	assert.Equal(t, 0, a[0], "city 0 fixes the rotation")
	assert.Equal(t, a, b, "same generator state gives the same tour")
	assert.NotEqual(t, a, c)
}

func TestRandomPermutation_Small(t *testing.T) {
	for n := 1; n <= 3; n++ {
		dm := mustMatrix(t, unitSquare[:n])
		got := tsp.RandomPermutation{}.Construct(dm, newRNG(1))
		requirePermutation(t, got, n)
		assert.Equal(t, 0, got[0])
	}
}

func TestParseConstructorKind(t *testing.T) {
	cases := map[string]tsp.ConstructorKind{
		"":                 tsp.RandomConstructor,
		"random":           tsp.RandomConstructor,
		" Random ":         tsp.RandomConstructor,
		"greedy":           tsp.GreedyConstructor,
		"nearest-neighbor": tsp.GreedyConstructor,
		"NN":               tsp.GreedyConstructor,
	}
	for in, want := range cases {
		got, err := tsp.ParseConstructorKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := tsp.ParseConstructorKind("christofides")
	require.ErrorIs(t, err, tsp.ErrUnknownConstructor)
	require.ErrorIs(t, err, tsp.ErrConfig)
}

func TestConstructorKind_RoundTrip(t *testing.T) {
	for _, k := range []tsp.ConstructorKind{tsp.RandomConstructor, tsp.GreedyConstructor} {
		got, err := tsp.ParseConstructorKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)

		c, err := tsp.NewConstructor(k)
		require.NoError(t, err)
		require.NotNil(t, c)
	}

	_, err := tsp.NewConstructor(tsp.ConstructorKind(9))
	require.ErrorIs(t, err, tsp.ErrUnknownConstructor)
	assert.Equal(t, "constructor(9)", tsp.ConstructorKind(9).String())
}
