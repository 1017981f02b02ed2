// Package tsp - run records and statistics emitted by the controller.
package tsp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RunRecord summarises one completed (or canceled) run for a logging sink.
type RunRecord struct {
	// RunID correlates log lines, stored rows and figures. It is random and
	// not part of the deterministic output of a run.
	RunID uuid.UUID

	Label     string
	Cities    int
	StartedAt time.Time

	// Runtime is the whole run; RuntimeToBest stops when the best was found.
	Runtime       time.Duration
	RuntimeToBest time.Duration

	Iterations    int
	BestIteration int
	BestDistance  float64

	IterationLimit int
	IdleLimit      int
	Constructor    string
	Seed           int64
}

// FigureName returns the artifact file name "<label>_<bestIteration>_<distance>.png"
// used to correlate a plotted tour with its log line. Path separators and
// spaces in the label are replaced by '-'.
func (r RunRecord) FigureName() string {
	label := r.Label
	if label == "" {
		label = "tour"
	}
	label = strings.Map(func(c rune) rune {
		switch c {
		case '/', '\\', ' ', ':':
			return '-'
		}
		return c
	}, label)

	return fmt.Sprintf("%s_%d_%s.png", label, r.BestIteration, FormatDistance(r.BestDistance))
}

// FormatDistance renders a distance with the shortest exact decimal form,
// e.g. 7544.37 or 8.
func FormatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// RunStats aggregates what happened during a run.
type RunStats struct {
	// Evaluated is the number of local optima recorded in the history.
	Evaluated int

	// Draws and AcceptedMoves sum the 2-opt activity of every LocalSearch call.
	Draws         int
	AcceptedMoves int

	// Improvements counts rounds after the first that lowered the best distance.
	Improvements int

	// InitialDistance is the length of the constructed tour before any search.
	InitialDistance float64

	// Distribution of the local optima distances.
	MeanDistance   float64
	StdDevDistance float64
	WorstDistance  float64
}

// historyStats fills the distribution fields of s from history.
func historyStats(s *RunStats, history []Solution) {
	s.Evaluated = len(history)
	if len(history) == 0 {
		return
	}
	xs := make([]float64, len(history))
	var i int
	for i = range history {
		xs[i] = history[i].Distance
	}

	s.WorstDistance = floats.Max(xs)
	if len(xs) < 2 {
		s.MeanDistance = xs[0]
		return
	}
	s.MeanDistance, s.StdDevDistance = stat.MeanStdDev(xs, nil)
}
