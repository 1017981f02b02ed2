package render_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ilstsp/render"
	"github.com/katalvlaran/ilstsp/tsp"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func squareResult(t *testing.T) (*tsp.Problem, *tsp.Result) {
	t.Helper()
	p, err := tsp.NewProblem("square", tsp.CitiesFromXY([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 2}}))
	require.NoError(t, err)
	opts := tsp.DefaultOptions()
	opts.IterationLimit = 5
	res, err := tsp.Solve(context.Background(), p, opts)
	require.NoError(t, err)

	return p, res
}

func TestWriteTourPNG(t *testing.T) {
	p, res := squareResult(t)

	var buf bytes.Buffer
	require.NoError(t, render.WriteTourPNG(&buf, p.Cities(), res.Best.Tour, render.Title(res.Record)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestSaveTour(t *testing.T) {
	p, res := squareResult(t)
	path := filepath.Join(t.TempDir(), res.Record.FigureName())

	require.NoError(t, render.SaveTour(path, p.Cities(), res.Best.Tour, "best"))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, pngMagic))
}

func TestTourPlot_RejectsInvalidTour(t *testing.T) {
	p, _ := squareResult(t)

	_, err := render.TourPlot(p.Cities(), tsp.Tour{0, 1, 1, 2, 3}, "bad")
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
	_, err = render.TourPlot(p.Cities(), tsp.Tour{0, 1}, "short")
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
}

func TestTourPlot_Large(t *testing.T) {
	xy := make([][2]float64, render.MaxLabeledCities+10)
	for i := range xy {
		xy[i] = [2]float64{float64(i % 9), float64(i / 9)}
	}
	cities := tsp.CitiesFromXY(xy)
	tour := make(tsp.Tour, len(cities))
	for i := range tour {
		tour[i] = i
	}

	p, err := render.TourPlot(cities, tour, "grid")
	require.NoError(t, err)
	assert.Equal(t, "grid", p.Title.Text)
}

func TestWriteConvergenceHTML(t *testing.T) {
	_, res := squareResult(t)

	var buf bytes.Buffer
	require.NoError(t, render.WriteConvergenceHTML(&buf, res))
	out := buf.String()
	assert.True(t, strings.Contains(out, "<html"), "renders a full page")
	assert.Contains(t, out, "square convergence")
	assert.Contains(t, out, "local optimum")
}

func TestTitle(t *testing.T) {
	rec := tsp.RunRecord{Label: "berlin52", BestDistance: 7544.37, BestIteration: 17, Iterations: 200}
	assert.Equal(t, "berlin52: 7544.37 (iteration 17 of 200)", render.Title(rec))
}
