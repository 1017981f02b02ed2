// Package tsp - initial tour constructors.
//
// Two interchangeable strategies implement Constructor:
//   - GreedyNearestNeighbor: deterministic walk from city 0 to the closest
//     unvisited city; ties go to the lowest index.
//   - RandomPermutation: city 0 first (fixes rotation), the rest uniformly shuffled.
//
// Both return a fresh permutation of 0..n-1; the closing edge is implied.
package tsp

import (
	"fmt"
	"math/rand"
	"strings"
)

// Constructor produces an initial tour for a distance matrix.
type Constructor interface {
	Construct(dm *DistanceMatrix, rng *rand.Rand) Tour
}

// ConstructorKind selects a Constructor by name in configuration.
type ConstructorKind int

const (
	// RandomConstructor selects RandomPermutation (controller default).
	RandomConstructor ConstructorKind = iota

	// GreedyConstructor selects GreedyNearestNeighbor.
	GreedyConstructor
)

// String implements fmt.Stringer; the value round-trips through ParseConstructorKind.
func (k ConstructorKind) String() string {
	switch k {
	case RandomConstructor:
		return "random"
	case GreedyConstructor:
		return "greedy"
	default:
		return fmt.Sprintf("constructor(%d)", int(k))
	}
}

// ParseConstructorKind maps "random" / "greedy" (case-insensitive) to a kind.
// The empty string selects RandomConstructor.
func ParseConstructorKind(s string) (ConstructorKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random":
		return RandomConstructor, nil
	case "greedy", "nearest-neighbor", "nn":
		return GreedyConstructor, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownConstructor, s)
	}
}

// NewConstructor returns the strategy for kind.
func NewConstructor(kind ConstructorKind) (Constructor, error) {
	switch kind {
	case RandomConstructor:
		return RandomPermutation{}, nil
	case GreedyConstructor:
		return GreedyNearestNeighbor{}, nil
	default:
		return nil, ErrUnknownConstructor
	}
}

// GreedyNearestNeighbor builds the nearest-neighbour tour from city 0.
// It ignores the generator.
type GreedyNearestNeighbor struct{}

// Construct implements Constructor.
//
// Tie policy: among unvisited cities at equal distance the lowest index wins
// (strict '<' in an ascending scan).
//
// Complexity: O(n²) time, O(n) space.
func (GreedyNearestNeighbor) Construct(dm *DistanceMatrix, _ *rand.Rand) Tour {
	n := dm.Len()
	tour := make(Tour, 0, n)
	if n == 0 {
		return tour
	}
	visited := make([]bool, n)

	var (
		cur  = 0
		next int
		best float64
		d    float64
		j    int
	)
	tour = append(tour, cur)
	visited[cur] = true
	for len(tour) < n {
		next = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d = dm.At(cur, j)
			if next == -1 || d < best {
				next, best = j, d
			}
		}
		tour = append(tour, next)
		visited[next] = true
		cur = next
	}

	return tour
}

// RandomPermutation keeps city 0 at position 0 and shuffles cities 1..n-1.
type RandomPermutation struct{}

// Construct implements Constructor.
//
// Complexity: O(n) time, O(n) space.
func (RandomPermutation) Construct(dm *DistanceMatrix, rng *rand.Rand) Tour {
	n := dm.Len()
	tour := make(Tour, n)

	var i int
	for i = 0; i < n; i++ {
		tour[i] = i
	}
	if n > 2 {
		shuffleIntsInPlace(tour[1:], rng)
	}

	return tour
}
