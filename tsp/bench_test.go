// Package tsp_test - benchmarks for the ILS engine.
// Scope:
//   - Distance matrix construction (O(n²)).
//   - Tour evaluation (O(n)).
//   - One LocalSearch call from a random start.
//   - A full Solve with a small iteration budget.
//
// Policy:
//   - Deterministic geometry (rippled circles) and fixed seeds.
//   - Inputs are built outside the timer.
package tsp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ilstsp/tsp"
)

func BenchmarkNewDistanceMatrix_n200(b *testing.B) {
	cities := tsp.CitiesFromXY(rippledCircle(200))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.NewDistanceMatrix(cities); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTourLength_n200(b *testing.B) {
	dm := mustMatrix(b, rippledCircle(200))
	tour := identity(200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tsp.TourLength(dm, tour)
	}
}

func BenchmarkLocalSearch_n100(b *testing.B) {
	dm := mustMatrix(b, rippledCircle(100))
	start := tsp.NewSolution(dm, tsp.RandomPermutation{}.Construct(dm, newRNG(1)), 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tsp.LocalSearch(dm, start, tsp.DefaultIdleLimit, newRNG(int64(i)))
	}
}

func BenchmarkSolve_n60(b *testing.B) {
	p := mustProblem(b, "circle", rippledCircle(60))
	opts := tsp.DefaultOptions()
	opts.IterationLimit = 20
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(context.Background(), p, opts); err != nil {
			b.Fatal(err)
		}
	}
}
