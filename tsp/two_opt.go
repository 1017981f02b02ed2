// Package tsp - stochastic 2-opt local search.
//
// LocalSearch is a pure hill climber: it draws random 2-opt moves, keeps a
// candidate only when its length is strictly below the current one, and stops
// after IdleLimit consecutive non-improving draws.
//
// Move realisation (array form):
//
//	c1 < c2 cut points in [0..n]; reverse t[c1:c2], then reverse the whole tour.
//
// The second reversal flips the orientation of the cycle, which does not change
// its length; the net effect is the classic exchange of edges
// (t[c1-1],t[c1]) and (t[c2-1],t[c2]).
//
// Valid cuts satisfy 2 ≤ c2-c1 ≤ n-2. Shorter segments are no-ops, and a
// segment covering n-1 or n cities only flips the tour direction.
//
// Comparisons use distances already rounded to Precision, so floating-point
// noise never counts as an improvement.
//
// Complexity:
//   - One draw: O(n) (copy + reversal + evaluation), no allocation.
//   - One call: O(draws·n); draws ≤ IdleLimit·(accepted+1).
package tsp

import "math/rand"

// LocalSearchResult is the outcome of one LocalSearch call.
type LocalSearchResult struct {
	// Solution is the local optimum reached; it keeps the input Iteration.
	Solution Solution

	// Draws counts every evaluated candidate.
	Draws int

	// Accepted holds the distance after each accepted move, strictly decreasing.
	Accepted []float64
}

// TwoOptMove returns a new tour with the 2-opt move (c1, c2) applied.
// The cut points may be given in either order. The input is not modified.
//
// Complexity: O(n) time, O(n) space.
func TwoOptMove(t Tour, c1, c2 int) Tour {
	out := make(Tour, len(t))
	applyTwoOpt(out, t, c1, c2)

	return out
}

// applyTwoOpt writes the moved tour into dst (len(dst) == len(src)).
func applyTwoOpt(dst, src Tour, c1, c2 int) {
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	copy(dst, src)
	reverseInPlace(dst, c1, c2)
	reverseInPlace(dst, 0, len(dst))
}

// validCut reports whether the segment [c1, c2) gives a non-trivial move on n cities.
func validCut(n, c1, c2 int) bool {
	l := c2 - c1
	if l < 0 {
		l = -l
	}

	return l >= 2 && l <= n-2
}

// drawCuts picks c1 uniformly from [0..n], then redraws c2 from [0..n] until
// the pair is valid. For n ≥ 4 every c1 admits a partner at distance 2, so the
// loop terminates with probability 1.
func drawCuts(n int, rng *rand.Rand) (int, int) {
	c1 := rng.Intn(n + 1)
	c2 := rng.Intn(n + 1)
	for !validCut(n, c1, c2) {
		c2 = rng.Intn(n + 1)
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}

	return c1, c2
}

// LocalSearch improves start with random 2-opt moves until idleLimit
// consecutive draws fail to improve it. Tours with fewer than four cities have
// no non-trivial move and are returned as they are.
//
// The start tour is never modified; the result owns a fresh tour.
func LocalSearch(dm *DistanceMatrix, start Solution, idleLimit int, rng *rand.Rand) LocalSearchResult {
	n := len(start.Tour)
	cur := start
	cur.Tour = start.Tour.Clone()
	res := LocalSearchResult{Solution: cur}
	if n < minMoveSize || idleLimit <= 0 {
		return res
	}

	var (
		cand   = make(Tour, n)
		idle   int
		c1, c2 int
		d      float64
	)
	for idle < idleLimit {
		c1, c2 = drawCuts(n, rng)
		applyTwoOpt(cand, cur.Tour, c1, c2)
		d = TourLength(dm, cand)
		res.Draws++

		if d < cur.Distance {
			// Swap buffers: the candidate becomes current, the old tour is scratch.
			cur.Tour, cand = cand, cur.Tour
			cur.Distance = d
			res.Accepted = append(res.Accepted, d)
			idle = 0
			continue
		}
		idle++
	}
	res.Solution = cur

	return res
}
