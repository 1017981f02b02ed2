// Package tsp - validation utilities shared by the matrix builder, the
// controller and tests.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Input problems are rejected before any search iteration is counted.
package tsp

import "math"

// validateCities enforces a non-empty list of finite coordinates whose
// Index fields match their positions.
//
// Complexity: O(n).
func validateCities(cities []City) error {
	if len(cities) == 0 {
		return ErrEmptyProblem
	}

	var (
		i int
		c City
	)
	for i, c = range cities {
		if c.Index != i {
			return ErrCityIndex
		}
		if !finite(c.X) || !finite(c.Y) {
			return ErrNonFiniteCoordinate
		}
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// validateOptions checks run limits and the constructor name.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.IterationLimit <= 0 {
		return ErrIterationLimit
	}
	if opts.IdleLimit <= 0 {
		return ErrIdleLimit
	}
	switch opts.Constructor {
	case RandomConstructor, GreedyConstructor:
	default:
		return ErrUnknownConstructor
	}

	return nil
}

// ValidateTour reports ErrInvalidTour unless tour is a permutation of 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour Tour, n int) error {
	if len(tour) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var v int
	for _, v = range tour {
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}
