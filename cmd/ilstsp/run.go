package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/katalvlaran/ilstsp/config"
	"github.com/katalvlaran/ilstsp/render"
	"github.com/katalvlaran/ilstsp/runlog"
	"github.com/katalvlaran/ilstsp/tsp"
	"github.com/katalvlaran/ilstsp/tsplib"
)

// loadProblem builds the instance from inline cities or the TSPLIB file.
func loadProblem(cfg *config.Config) (*tsp.Problem, error) {
	if len(cfg.Cities) > 0 {
		label := cfg.Label
		if label == "" {
			label = "inline"
		}
		return tsp.NewProblem(label, tsp.CitiesFromXY(cfg.Cities))
	}

	inst, err := tsplib.Load(cfg.Problem)
	if err != nil {
		return nil, err
	}
	if cfg.Label != "" {
		inst.Name = cfg.Label
	}

	return inst.Problem()
}

// openSinks returns the configured record sinks and a function closing them.
func openSinks(cfg *config.Config) (runlog.Sink, func(), error) {
	var (
		sinks []runlog.Sink
		store *runlog.Store
	)
	if cfg.Output.CSVDir != "" {
		sinks = append(sinks, runlog.NewCSVLog(cfg.Output.CSVDir))
	}
	if cfg.Output.SQLite != "" {
		var err error
		if store, err = runlog.Open(cfg.Output.SQLite); err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, store)
	}

	closeFn := func() {
		if store != nil {
			if err := store.Close(); err != nil {
				log.Printf("Failed to close run store: %v", err)
			}
		}
	}

	return runlog.Multi(sinks...), closeFn, nil
}

// run solves cfg.Runs independent runs and persists each result. Results of
// an interrupted series are still persisted before the error is returned.
func run(ctx context.Context, cfg *config.Config) error {
	problem, err := loadProblem(cfg)
	if err != nil {
		return fmt.Errorf("loading problem: %w", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.OnImprove = func(best tsp.Solution) {
		log.Printf("[%s] iteration %d: new best %s", problem.Label(), best.Iteration, tsp.FormatDistance(best.Distance))
	}

	sink, closeSinks, err := openSinks(cfg)
	if err != nil {
		return err
	}
	defer closeSinks()

	log.Printf("Solving %s: %d cities, %d run(s), iteration limit %d, idle limit %d, constructor %s, seed %d",
		problem.Label(), problem.Len(), cfg.Runs, opts.IterationLimit, opts.IdleLimit, opts.Constructor, opts.Seed)

	results, solveErr := tsp.SolveSeries(ctx, problem, opts, cfg.Runs)

	// Persist with a fresh context so an interrupted series still gets recorded.
	persistCtx := context.WithoutCancel(ctx)
	var errs []error
	for i, res := range results {
		rec := res.Record
		log.Printf("Run %d/%d: distance %s at iteration %d of %d in %s (best after %s)",
			i+1, cfg.Runs, tsp.FormatDistance(rec.BestDistance), rec.BestIteration, rec.Iterations,
			rec.Runtime, rec.RuntimeToBest)

		if err := sink.Write(persistCtx, rec); err != nil {
			errs = append(errs, fmt.Errorf("recording run %d: %w", i+1, err))
		}
		if cfg.Output.FiguresDir != "" {
			if err := saveFigure(cfg.Output.FiguresDir, problem, res); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if cfg.Output.ConvergenceHTML != "" && len(results) > 0 {
		if err := writeConvergence(cfg.Output.ConvergenceHTML, results[len(results)-1]); err != nil {
			errs = append(errs, err)
		}
	}

	if cfg.LowerBound && len(results) > 0 {
		reportBound(problem, results)
	}

	if solveErr != nil {
		errs = append([]error{solveErr}, errs...)
	}

	return errors.Join(errs...)
}

// reportBound logs the Held–Karp bound and how far the best run is above it.
func reportBound(problem *tsp.Problem, results []*tsp.Result) {
	best := results[0].Best.Distance
	for _, res := range results[1:] {
		best = min(best, res.Best.Distance)
	}
	opts := tsp.DefaultBoundOptions()
	opts.UpperBound = best
	lb := tsp.OneTreeBound(problem.Distances(), opts)
	log.Printf("Lower bound %s, best %s, gap %.2f%%",
		tsp.FormatDistance(lb), tsp.FormatDistance(best), 100*tsp.Gap(best, lb))
}

func saveFigure(dir string, problem *tsp.Problem, res *tsp.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating figures directory: %w", err)
	}
	path := filepath.Join(dir, res.Record.FigureName())
	if err := render.SaveTour(path, problem.Cities(), res.Best.Tour, render.Title(res.Record)); err != nil {
		return err
	}
	log.Printf("Tour figure saved to %s", path)

	return nil
}

func writeConvergence(path string, res *tsp.Result) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating chart directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := render.WriteConvergenceHTML(f, res); err != nil {
		return err
	}
	log.Printf("Convergence chart written to %s", path)

	return nil
}
