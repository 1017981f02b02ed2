// Package tsp - Held–Karp 1-tree lower bound.
//
// The bound reports how far a heuristic tour can at most be from the optimum;
// it never feeds back into the search.
//
//   - For multipliers π define reduced costs c'_{ij} = c_{ij} + π_i + π_j.
//   - A minimum 1-tree T(π) is an MST on V\{0} under c' plus the two cheapest
//     edges incident to city 0.
//   - L(π) = cost_c'(T(π)) − 2·Σπ_i is a lower bound on every tour for every π.
//   - π is improved by subgradient ascent with s_i = deg_T(i) − 2.
//
// The instance is a complete Euclidean graph, so a 1-tree always exists for
// n ≥ 3. Smaller instances have a single tour and its length is returned.
//
// Determinism: no RNG; Prim and the root-edge selection break ties by index.
//
// Complexity: O(MaxIter · n²) time, O(n) working memory on top of the matrix.
package tsp

import "math"

// BoundOptions controls the subgradient loop.
type BoundOptions struct {
	// MaxIter is the number of subgradient iterations (≥ 1).
	MaxIter int

	// Alpha ∈ (0, 2) scales the step.
	Alpha float64

	// UpperBound is an incumbent tour length. When positive and finite the
	// step is α·(UB − L)/‖s‖², otherwise α/(1+iter).
	UpperBound float64
}

// DefaultBoundOptions returns a compact deterministic schedule without
// incumbent feedback.
func DefaultBoundOptions() BoundOptions {
	return BoundOptions{
		MaxIter:    64,
		Alpha:      0.9,
		UpperBound: math.Inf(1),
	}
}

// OneTreeBound returns the best Held–Karp bound found, truncated (not
// rounded) to Precision digits so that it never exceeds the true bound.
func OneTreeBound(dm *DistanceMatrix, opts BoundOptions) float64 {
	n := dm.Len()
	switch {
	case n < 2:
		return 0
	case n == 2:
		return 2 * dm.At(0, 1)
	}
	if opts.MaxIter <= 0 {
		opts.MaxIter = 1
	}
	if opts.Alpha <= 0 || opts.Alpha >= 2 {
		opts.Alpha = 0.9
	}

	eng := oneTreeEngine{
		dm:     dm,
		n:      n,
		pi:     make([]float64, n),
		deg:    make([]int, n),
		inTree: make([]bool, n),
		parent: make([]int, n),
		key:    make([]float64, n),
	}

	var (
		best    = math.Inf(-1)
		haveUB  = opts.UpperBound > 0 && !math.IsInf(opts.UpperBound, 0)
		iter, i int
		sumPi   float64
		norm2   float64
		bound   float64
		step    float64
		s       int
	)
	for iter = 0; iter < opts.MaxIter; iter++ {
		bound = eng.build()
		sumPi = 0
		for i = 0; i < n; i++ {
			sumPi += eng.pi[i]
		}
		bound -= 2 * sumPi
		if bound > best {
			best = bound
		}

		norm2 = 0
		for i = 0; i < n; i++ {
			s = eng.deg[i] - 2
			norm2 += float64(s * s)
		}
		if norm2 == 0 {
			// T(π) is a tour, so the bound is tight.
			break
		}

		if haveUB {
			step = math.Max(opts.UpperBound-bound, 0) * opts.Alpha / norm2
		} else {
			step = opts.Alpha / (1 + float64(iter))
		}
		if step == 0 {
			break
		}
		for i = 0; i < n; i++ {
			eng.pi[i] += step * float64(eng.deg[i]-2)
		}
	}

	return math.Floor(best*100+1e-9) / 100
}

// Gap returns (distance − bound) / bound, the relative excess of a tour over
// a lower bound, or 0 when the bound is not positive.
func Gap(distance, bound float64) float64 {
	if bound <= 0 {
		return 0
	}

	return (distance - bound) / bound
}

// oneTreeEngine holds the buffers reused across subgradient iterations.
// City 0 is the distinguished root.
type oneTreeEngine struct {
	dm *DistanceMatrix
	n  int

	pi     []float64
	deg    []int
	inTree []bool
	parent []int
	key    []float64
}

func (e *oneTreeEngine) reduced(u, v int) float64 {
	return e.dm.At(u, v) + e.pi[u] + e.pi[v]
}

// build constructs a minimum 1-tree under reduced costs, fills e.deg and
// returns its reduced cost. Requires n ≥ 3.
func (e *oneTreeEngine) build() float64 {
	var (
		inf     = math.Inf(1)
		v, best int
		iter    int
		c, cost float64
	)
	for v = 0; v < e.n; v++ {
		e.deg[v] = 0
		e.inTree[v] = false
		e.parent[v] = -1
		e.key[v] = inf
	}

	// Prim over V\{0}, seeded at city 1.
	e.key[1] = 0
	for iter = 0; iter < e.n-1; iter++ {
		best = -1
		for v = 1; v < e.n; v++ {
			if e.inTree[v] {
				continue
			}
			if best == -1 || e.key[v] < e.key[best] {
				best = v
			}
		}
		e.inTree[best] = true
		if e.parent[best] != -1 {
			cost += e.reduced(best, e.parent[best])
			e.deg[best]++
			e.deg[e.parent[best]]++
		}
		for v = 1; v < e.n; v++ {
			if e.inTree[v] {
				continue
			}
			c = e.reduced(best, v)
			if c < e.key[v] {
				e.key[v] = c
				e.parent[v] = best
			}
		}
	}

	// Two cheapest root edges.
	var (
		m1, m2     = inf, inf
		m1To, m2To = -1, -1
	)
	for v = 1; v < e.n; v++ {
		c = e.reduced(0, v)
		if c < m1 {
			m2, m2To = m1, m1To
			m1, m1To = c, v
		} else if c < m2 {
			m2, m2To = c, v
		}
	}
	cost += m1 + m2
	e.deg[0] += 2
	e.deg[m1To]++
	e.deg[m2To]++

	return cost
}
