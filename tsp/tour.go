// Package tsp - tour utilities shared by the local search, the perturbation
// and tests.
//
// Provided helpers:
//   - reverseInPlace: in-place reversal of a half-open segment (2-opt core).
//   - SameCycle: equality of two tours as undirected cycles.
//   - Canonical: unique rotation/orientation of a cycle.
//   - DebugString: compact printable representation for tests/debug.
//
// Design:
//   - No logging, no panics on user input.
//   - O(n) time for every helper.
package tsp

import (
	"strconv"
	"strings"
)

// reverseInPlace reverses t[i:k] in place.
//
// Complexity: O(k-i) time, O(1) space.
func reverseInPlace(t []int, i, k int) {
	for k--; i < k; i, k = i+1, k-1 {
		t[i], t[k] = t[k], t[i]
	}
}

// SameCycle reports whether a and b visit the same cyclic sequence, allowing
// any rotation and either direction. Two such tours have identical length.
//
// Complexity: O(n) time.
func SameCycle(a, b Tour) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	if n == 0 {
		return true
	}

	p := -1
	var j int
	for j = 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	forward, backward := true, true
	var i int
	for i = 0; i < n && (forward || backward); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[(p-i+n)%n] {
			backward = false
		}
	}

	return forward || backward
}

// Canonical returns a copy of t rotated so that the smallest city comes first
// and oriented so that its right neighbour is not larger than its left one.
// Every tour of one cycle maps to the same canonical form.
//
// Complexity: O(n) time, O(n) space.
func Canonical(t Tour) Tour {
	n := len(t)
	out := make(Tour, n)
	if n == 0 {
		return out
	}

	var p, i int
	for i = 1; i < n; i++ {
		if t[i] < t[p] {
			p = i
		}
	}
	for i = 0; i < n; i++ {
		out[i] = t[(p+i)%n]
	}
	if n > 2 && out[1] > out[n-1] {
		reverseInPlace(out, 1, n)
	}

	return out
}

// DebugString returns a compact representation such as "[0 3 1 2 | 0]",
// where the vertical bar marks the implied closing edge.
func DebugString(t Tour) string {
	if len(t) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(t[0]))
	sb.WriteByte(']')

	return sb.String()
}
