// Package tsp computes near-optimal closed tours for the Euclidean
// Travelling Salesman Problem with an iterated local search (ILS).
//
// The engine is built from small, composable pieces:
//
//   - DistanceMatrix   - symmetric pairwise distances, rounded to Precision digits.
//
//   - TourLength       - total cyclic length of a tour (wrap-around edge included).
//
//   - Constructor      - initial tour: GreedyNearestNeighbor or RandomPermutation.
//
//   - LocalSearch      - stochastic 2-opt hill climbing bounded by an idle limit.
//
//   - DoubleBridge     - 4-opt perturbation used to leave 2-opt local optima.
//
//   - OneTreeBound     - Held–Karp lower bound for reporting the gap of a tour.
//
//   - Solve            - the ILS controller tying everything together:
//
//     Init → Constructing → LocalSearching → (Perturbing → LocalSearching)* → Done
//
// Determinism:
//
//	Every random decision is drawn from an explicitly passed *rand.Rand
//	(Options.Rand) or from a generator seeded with Options.Seed. Two runs
//	with the same seed, problem and limits produce identical tours.
//
// Tours are open permutations of 0..n-1; the closing edge from the last
// city back to the first is implied. Transformations never mutate their
// input: each returns a fresh Tour.
//
// Use this package for tens to low hundreds of cities; distance evaluation
// is O(n) per candidate and the matrix is O(n²).
package tsp
