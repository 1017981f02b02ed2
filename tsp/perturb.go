// Package tsp - double-bridge perturbation.
//
// DoubleBridge cuts the tour at p1 < p2 < p3 into
//
//	A = t[0:p1], B = t[p1:p2], C = t[p2:p3], D = t[p3:]
//
// and reassembles A + D + C + B. No segment is reversed, so with segments of
// realistic size the move replaces four edges at once and a single 2-opt
// exchange cannot undo it.
//
// Cut policy: each offset is 1 + rng.Intn(n/4) and offsets accumulate, so
// p3 ≤ 3·(n/4) < n and all four segments are non-empty.
//
// Complexity: O(n) time, O(n) space.
package tsp

import "math/rand"

// DoubleBridge returns a perturbed copy of t. Tours with fewer than four
// cities are returned as an unchanged copy.
func DoubleBridge(t Tour, rng *rand.Rand) Tour {
	n := len(t)
	if n < minMoveSize {
		return t.Clone()
	}
	p1, p2, p3 := drawBridge(n, rng)

	return DoubleBridgeAt(t, p1, p2, p3)
}

// drawBridge draws the three cumulative cut positions.
func drawBridge(n int, rng *rand.Rand) (int, int, int) {
	q := n / 4
	p1 := 1 + rng.Intn(q)
	p2 := p1 + 1 + rng.Intn(q)
	p3 := p2 + 1 + rng.Intn(q)

	return p1, p2, p3
}

// DoubleBridgeAt reassembles t as A + D + C + B for explicit cuts.
// It requires 0 < p1 < p2 < p3 < len(t); other inputs yield an unchanged copy.
func DoubleBridgeAt(t Tour, p1, p2, p3 int) Tour {
	n := len(t)
	if !(0 < p1 && p1 < p2 && p2 < p3 && p3 < n) {
		return t.Clone()
	}
	out := make(Tour, 0, n)
	out = append(out, t[:p1]...)
	out = append(out, t[p3:]...)
	out = append(out, t[p2:p3]...)
	out = append(out, t[p1:p2]...)

	return out
}
