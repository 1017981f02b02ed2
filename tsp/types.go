// Package tsp - core types, sentinel errors and run options.
package tsp

import (
	"errors"
	"fmt"
	"math/rand"
)

// Precision is the number of decimal digits kept for every distance.
// Matrix entries and tour lengths are rounded to it so that comparisons
// are reproducible across floating-point environments.
const Precision = 2

const (
	// DefaultIterationLimit is the number of ILS rounds when none is configured.
	DefaultIterationLimit = 200

	// DefaultIdleLimit is the number of consecutive non-improving 2-opt draws
	// tolerated by one LocalSearch call.
	DefaultIdleLimit = 50

	// minMoveSize is the smallest instance on which 2-opt and double-bridge
	// moves are defined; smaller tours are returned unchanged.
	minMoveSize = 4
)

// Error kinds. Every error returned by this package matches one of them
// under errors.Is.
var (
	// ErrData reports malformed or empty coordinate input.
	ErrData = errors.New("tsp: invalid problem data")

	// ErrConfig reports invalid run limits or strategy names.
	ErrConfig = errors.New("tsp: invalid configuration")

	// ErrCanceled is returned when the context ends between ILS rounds.
	ErrCanceled = errors.New("tsp: search canceled")
)

// Specific sentinels, each wrapping its kind.
var (
	ErrEmptyProblem        = fmt.Errorf("%w: no cities", ErrData)
	ErrNonFiniteCoordinate = fmt.Errorf("%w: coordinate is NaN or Inf", ErrData)
	ErrCityIndex           = fmt.Errorf("%w: city index does not match its position", ErrData)
	ErrInvalidTour         = fmt.Errorf("%w: tour is not a permutation of the cities", ErrData)

	ErrIterationLimit     = fmt.Errorf("%w: iteration limit must be positive", ErrConfig)
	ErrIdleLimit          = fmt.Errorf("%w: idle limit must be positive", ErrConfig)
	ErrUnknownConstructor = fmt.Errorf("%w: unknown constructor", ErrConfig)
	ErrNilProblem         = fmt.Errorf("%w: problem is nil", ErrConfig)
	ErrRunCount           = fmt.Errorf("%w: number of runs must be positive", ErrConfig)
)

// City is a node of the problem: its position in the input and a 2-D coordinate.
type City struct {
	Index int
	X     float64
	Y     float64
}

// Tour is an ordered permutation of city indices 0..n-1, read as a cycle.
type Tour []int

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// Solution pairs a tour with its length and the ILS round that produced it.
// Distance always equals TourLength(dm, Tour); build values with NewSolution.
type Solution struct {
	Tour      Tour
	Distance  float64
	Iteration int
}

// NewSolution evaluates tour against dm and stamps it with iteration.
// The tour is stored as given; callers hand over ownership.
func NewSolution(dm *DistanceMatrix, tour Tour, iteration int) Solution {
	return Solution{Tour: tour, Distance: TourLength(dm, tour), Iteration: iteration}
}

// Phase names the controller state.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseConstructing
	PhaseLocalSearching
	PhasePerturbing
	PhaseDone
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseConstructing:
		return "constructing"
	case PhaseLocalSearching:
		return "local-searching"
	case PhasePerturbing:
		return "perturbing"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Options configures one ILS run.
//
// IterationLimit – total ILS rounds including the first local search (> 0).
// IdleLimit      – consecutive non-improving 2-opt draws per LocalSearch (> 0).
// Constructor    – initial tour strategy; the controller defaults to RandomConstructor.
// Seed           – seed for the run generator when Rand is nil (0 ⇒ default seed).
// Rand           – explicit generator; takes precedence over Seed. Not goroutine-safe.
// OnPhase        – optional hook called on every state transition with the round index.
// OnImprove      – optional hook called whenever the best solution improves.
//
// Hooks run on the search goroutine and must not retain Solution.Tour.
type Options struct {
	IterationLimit int
	IdleLimit      int
	Constructor    ConstructorKind
	Seed           int64
	Rand           *rand.Rand

	OnPhase   func(phase Phase, iteration int)
	OnImprove func(best Solution)
}

// DefaultOptions returns the documented defaults:
//   - IterationLimit: DefaultIterationLimit (200).
//   - IdleLimit:      DefaultIdleLimit (50).
//   - Constructor:    RandomConstructor.
//   - Seed:           0 (the fixed default seed).
func DefaultOptions() Options {
	return Options{
		IterationLimit: DefaultIterationLimit,
		IdleLimit:      DefaultIdleLimit,
		Constructor:    RandomConstructor,
	}
}
