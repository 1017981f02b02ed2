// Command ilstsp solves a Euclidean TSP instance with iterated local search
// and records every run to CSV, SQLite and tour figures.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/ilstsp/config"
	"github.com/katalvlaran/ilstsp/tsp"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to YAML config file")
		problem     = flag.String("problem", "", "Path to a TSPLIB EUC_2D instance")
		label       = flag.String("label", "", "Run label (defaults to the instance name)")
		seed        = flag.Int64("seed", 0, "Random seed (0 selects the fixed default seed)")
		iterations  = flag.Int("iterations", tsp.DefaultIterationLimit, "Number of ILS rounds")
		idle        = flag.Int("idle", tsp.DefaultIdleLimit, "Consecutive non-improving 2-opt draws before local search stops")
		constructor = flag.String("constructor", "random", "Initial tour: random or greedy")
		runs        = flag.Int("runs", 1, "Number of independent runs")
		bound       = flag.Bool("bound", false, "Report the 1-tree lower bound and the gap of the best tour")
		logDir      = flag.String("log-dir", "", "Directory for per-label CSV run logs")
		dbPath      = flag.String("db", "", "SQLite run store path (empty disables)")
		figuresDir  = flag.String("figures", "", "Directory for best-tour figures")
		htmlPath    = flag.String("html", "", "Write a convergence chart of the last run to this HTML file")
		writeConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Only flags given on the command line override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "problem":
			cfg.Problem = *problem
			cfg.Cities = nil
		case "label":
			cfg.Label = *label
		case "seed":
			cfg.Seed = *seed
		case "iterations":
			cfg.IterationLimit = *iterations
		case "idle":
			cfg.IdleLimit = *idle
		case "constructor":
			cfg.Constructor = *constructor
		case "runs":
			cfg.Runs = *runs
		case "bound":
			cfg.LowerBound = *bound
		case "log-dir":
			cfg.Output.CSVDir = *logDir
		case "db":
			cfg.Output.SQLite = *dbPath
		case "figures":
			cfg.Output.FiguresDir = *figuresDir
		case "html":
			cfg.Output.ConvergenceHTML = *htmlPath
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *writeConfig != "" {
		if err := config.Save(*writeConfig, cfg); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Config written to %s", *writeConfig)
		return
	}

	if !cfg.HasProblem() {
		fmt.Fprintln(os.Stderr, "ilstsp: no problem given; use -problem or a config file with problem/cities")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, cfg)
	stop()
	if err != nil {
		if errors.Is(err, tsp.ErrCanceled) {
			log.Printf("Interrupted: %v", err)
			os.Exit(130)
		}
		log.Fatalf("ilstsp: %v", err)
	}
}
