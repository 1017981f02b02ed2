// Package ilstsp solves the Euclidean Travelling Salesman Problem with an
// iterated local search and keeps a record of every run.
//
// What is in the module:
//
//	• Engine: distance matrix, greedy and random start tours, stochastic
//	  2-opt, double-bridge perturbation, the ILS controller
//	• Input: TSPLIB EUC_2D files or inline coordinates
//	• Records: per-label CSV logs and an SQLite run table
//	• Figures: best tour as PNG, convergence as an HTML chart
//
// Everything is organized under these packages:
//
//	tsp/        - problem, tours, local search, perturbation, Solve / SolveSeries
//	tsplib/     - TSPLIB reader producing tsp.Problem values
//	runlog/     - run sinks: CSV log, SQLite store with embedded migrations
//	render/     - gonum/plot tour figures and go-echarts convergence charts
//	config/     - YAML run configuration
//	cmd/ilstsp/ - command-line host wiring the packages together
//
// Quick example (unit square, optimum 4):
//
//	(0,1)───(1,1)
//	  │       │
//	(0,0)───(1,0)
//
//	p, _ := tsp.NewProblem("square", tsp.CitiesFromXY([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}))
//	res, _ := tsp.Solve(ctx, p, tsp.DefaultOptions())
//	fmt.Println(res.Best.Tour, res.Best.Distance) // [0 1 2 3] 4
//
//	go install github.com/katalvlaran/ilstsp/cmd/ilstsp@latest
package ilstsp
