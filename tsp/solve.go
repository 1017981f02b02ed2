// Package tsp - iterated local search controller.
//
// Solve drives one run through the states
//
//	Init → Constructing → LocalSearching → (Perturbing → LocalSearching)* → Done
//
// Round 1 is the constructed tour brought to a 2-opt local optimum. Every later
// round perturbs the current best with a double bridge, re-optimises it, and
// replaces the best only when strictly shorter. Every local optimum, accepted or
// not, is appended to the run history.
//
// Design principles:
//   - One fresh searchState per call; Problem and DistanceMatrix stay immutable.
//   - Deterministic for a fixed generator, problem and limits.
//   - Cancellation is cooperative and checked between rounds only.
//   - Input and configuration errors are reported before round 1; after that a
//     run always yields a best Solution.
package tsp

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Result is everything a run hands back to its host.
type Result struct {
	// Best is the shortest tour found, in Canonical form.
	Best Solution

	// Record is the summary for logging sinks.
	Record RunRecord

	// History holds every local optimum in evaluation order (round 1 first).
	History []Solution

	// Trace[i] is the best distance after round i+1; it never increases.
	Trace []float64

	Stats RunStats
}

// searchState is owned by exactly one Solve call.
type searchState struct {
	problem *Problem
	dm      *DistanceMatrix
	opts    Options
	rng     *rand.Rand
	build   Constructor

	start     time.Time
	startedAt time.Time
	best      Solution
	bestAt    time.Duration
	iteration int

	history []Solution
	trace   []float64
	stats   RunStats
}

// Solve runs the iterated local search on p.
//
// Errors:
//   - ErrNilProblem, ErrIterationLimit, ErrIdleLimit, ErrUnknownConstructor
//     before anything runs (result is nil).
//   - ErrCanceled (also matching ctx.Err()) when ctx ends; the result then holds
//     the best solution of the rounds completed so far.
//
// Complexity: O(IterationLimit · draws · n) with draws per LocalSearch bounded
// by IdleLimit·(accepted moves + 1).
func Solve(ctx context.Context, p *Problem, opts Options) (*Result, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	build, err := NewConstructor(opts.Constructor)
	if err != nil {
		return nil, err
	}

	st := &searchState{
		problem: p,
		dm:      p.Distances(),
		opts:    opts,
		rng:     runRNG(opts),
		build:   build,
	}
	st.enter(PhaseInit)
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	st.start = time.Now()
	st.startedAt = st.start
	st.firstRound()

	var i int
	for i = 2; i <= opts.IterationLimit; i++ {
		if err = ctx.Err(); err != nil {
			return st.finish(), fmt.Errorf("%w after %d of %d rounds: %w", ErrCanceled, st.iteration, opts.IterationLimit, err)
		}
		st.round(i)
	}

	return st.finish(), nil
}

// firstRound constructs the initial tour and brings it to a local optimum.
func (st *searchState) firstRound() {
	st.enter(PhaseConstructing)
	initial := NewSolution(st.dm, st.build.Construct(st.dm, st.rng), 1)
	st.stats.InitialDistance = initial.Distance

	st.iteration = 1
	st.enter(PhaseLocalSearching)
	opt := st.localSearch(initial)
	st.improve(opt)
}

// round performs one Perturbing → LocalSearching cycle with acceptance.
func (st *searchState) round(i int) {
	st.iteration = i
	st.enter(PhasePerturbing)
	cand := NewSolution(st.dm, DoubleBridge(st.best.Tour, st.rng), i)

	st.enter(PhaseLocalSearching)
	opt := st.localSearch(cand)
	if opt.Distance < st.best.Distance {
		st.stats.Improvements++
		st.improve(opt)
		return
	}
	st.trace = append(st.trace, st.best.Distance)
}

func (st *searchState) localSearch(s Solution) Solution {
	ls := LocalSearch(st.dm, s, st.opts.IdleLimit, st.rng)
	st.stats.Draws += ls.Draws
	st.stats.AcceptedMoves += len(ls.Accepted)
	st.history = append(st.history, ls.Solution)

	return ls.Solution
}

// improve installs s as the new best and records when it was found.
func (st *searchState) improve(s Solution) {
	st.best = s
	st.bestAt = time.Since(st.start)
	st.trace = append(st.trace, s.Distance)
	if st.opts.OnImprove != nil {
		st.opts.OnImprove(s)
	}
}

func (st *searchState) enter(ph Phase) {
	if st.opts.OnPhase != nil {
		st.opts.OnPhase(ph, st.iteration)
	}
}

// finish moves the state into Done and assembles the Result.
func (st *searchState) finish() *Result {
	st.enter(PhaseDone)
	runtime := time.Since(st.start)

	best := st.best
	best.Tour = Canonical(best.Tour)
	historyStats(&st.stats, st.history)

	return &Result{
		Best: best,
		Record: RunRecord{
			RunID:          uuid.New(),
			Label:          st.problem.Label(),
			Cities:         st.problem.Len(),
			StartedAt:      st.startedAt,
			Runtime:        runtime,
			RuntimeToBest:  st.bestAt,
			Iterations:     st.iteration,
			BestIteration:  best.Iteration,
			BestDistance:   best.Distance,
			IterationLimit: st.opts.IterationLimit,
			IdleLimit:      st.opts.IdleLimit,
			Constructor:    st.opts.Constructor.String(),
			Seed:           st.opts.Seed,
		},
		History: st.history,
		Trace:   st.trace,
		Stats:   st.stats,
	}
}

// SolveSeries performs runs independent runs of p. Run k draws from its own
// stream derived from the base generator (Options.Rand or Options.Seed), so the
// whole series is reproducible and runs do not share generator state.
//
// On error the results of the completed runs are returned alongside it.
func SolveSeries(ctx context.Context, p *Problem, opts Options, runs int) ([]*Result, error) {
	if runs <= 0 {
		return nil, ErrRunCount
	}
	base := runRNG(opts)
	out := make([]*Result, 0, runs)

	var k int
	for k = 0; k < runs; k++ {
		o := opts
		o.Rand = deriveRNG(base, uint64(k))
		res, err := Solve(ctx, p, o)
		if res != nil {
			out = append(out, res)
		}
		if err != nil {
			return out, err
		}
	}

	return out, nil
}
