// Package tsp - Euclidean distance matrix.
//
// The matrix is built once per problem and never mutated afterwards; every
// solver stage reads it concurrently-safe by construction (no writers).
//
// Design:
//   - Storage is a gonum mat.SymDense, so d(i,j) == d(j,i) holds structurally.
//   - Entries are rounded to Precision decimal digits via scalar.Round.
//   - The diagonal is left at its zero value.
//
// Complexity:
//   - Construction: O(n²) time, O(n²) space (packed upper triangle + flat cache).
//   - At: O(1).
package tsp

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix is an immutable n×n table of rounded Euclidean distances.
type DistanceMatrix struct {
	n    int
	sym  *mat.SymDense
	flat []float64 // row-major mirror of sym for the evaluation hot path
}

// NewDistanceMatrix validates cities and builds their distance table.
//
// Errors:
//   - ErrEmptyProblem if cities is empty.
//   - ErrNonFiniteCoordinate if any coordinate is NaN or ±Inf.
//   - ErrCityIndex if cities[i].Index != i.
//
// Validation completes before any allocation of the table.
func NewDistanceMatrix(cities []City) (*DistanceMatrix, error) {
	if err := validateCities(cities); err != nil {
		return nil, err
	}

	n := len(cities)
	sym := mat.NewSymDense(n, nil)
	flat := make([]float64, n*n)

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = euclid(cities[i], cities[j])
			sym.SetSym(i, j, d)
			flat[i*n+j] = d
			flat[j*n+i] = d
		}
	}

	return &DistanceMatrix{n: n, sym: sym, flat: flat}, nil
}

// euclid returns the rounded straight-line distance between a and b.
func euclid(a, b City) float64 {
	return scalar.Round(math.Hypot(a.X-b.X, a.Y-b.Y), Precision)
}

// Len returns the number of cities n.
func (m *DistanceMatrix) Len() int { return m.n }

// At returns d(i,j). It panics on out-of-range indices, like slice indexing.
func (m *DistanceMatrix) At(i, j int) float64 { return m.flat[i*m.n+j] }

// Symmetric exposes the underlying read-only gonum view, e.g. for linear
// algebra or export. Callers must not mutate it.
func (m *DistanceMatrix) Symmetric() mat.Symmetric { return m.sym }
