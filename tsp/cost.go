// Package tsp - tour evaluation.
//
// TourLength is the single place where tour distances are computed; every
// Solution.Distance in the package comes from it.
//
// Design:
//   - Total function: degenerate tours (length 0 or 1) evaluate to 0.
//   - Stable result: the sum is rounded to Precision digits, so two tours
//     whose lengths differ only by summation noise compare equal.
package tsp

import "gonum.org/v1/gonum/floats/scalar"

// TourLength returns the cyclic length of tour: the sum of d(t[i], t[i+1])
// plus the closing edge d(t[n-1], t[0]).
//
// Contract: every entry of tour is a valid index into dm.
//
// Complexity: O(n) time, O(1) space.
func TourLength(dm *DistanceMatrix, tour Tour) float64 {
	n := len(tour)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += dm.At(tour[i], tour[i+1])
	}
	sum += dm.At(tour[n-1], tour[0])

	return scalar.Round(sum, Precision)
}
